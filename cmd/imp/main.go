package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

// Set via ldflags at build time.
var version = "dev"

func main() {
	if err := newRootCmd().Execute(); err != nil {
		var ee *exitError
		if errors.As(err, &ee) {
			os.Exit(ee.code)
		}
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:   "imp",
		Short: "Imp language interpreter",
		Long:  "imp — run and validate Imp program documents over the tree-walking evaluation core.",
		// SilenceUsage prevents printing usage on every error
		SilenceUsage: true,
	}
	root.Version = version
	root.SetVersionTemplate(fmt.Sprintf("imp version %s\n", version))

	root.AddCommand(newRunCmd())
	root.AddCommand(newCheckCmd())
	return root
}
