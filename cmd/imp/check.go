package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"imp/interpreter-go/pkg/driver"
)

func newCheckCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "check <program.yml>",
		Short: "Validate a program document without executing it",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			prog, err := driver.LoadProgram(args[0])
			if err != nil {
				return failf(exitValidation, "%v", err)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s: ok\n", prog.Name)
			return nil
		},
	}
}
