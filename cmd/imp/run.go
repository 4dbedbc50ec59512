package main

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"imp/interpreter-go/pkg/ast"
	"imp/interpreter-go/pkg/driver"
	"imp/interpreter-go/pkg/interpreter"
)

func newRunCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "run <program.yml>",
		Short: "Execute a program document and print the final environment",
		Args:  cobra.ExactArgs(1),
		RunE:  runRun,
	}
	cmd.Flags().Duration("timeout", 0, "Abort execution after this duration (0 = no limit)")
	cmd.Flags().Int("max-steps", 0, "Abort after this many statement steps (0 = no limit)")
	cmd.Flags().Bool("check", false, "Verify the document's expect block after running")
	return cmd
}

func runRun(cmd *cobra.Command, args []string) error {
	prog, err := driver.LoadProgram(args[0])
	if err != nil {
		return failf(exitValidation, "%v", err)
	}

	timeout, _ := cmd.Flags().GetDuration("timeout")
	maxSteps, _ := cmd.Flags().GetInt("max-steps")
	verify, _ := cmd.Flags().GetBool("check")

	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}
	if timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, timeout)
		defer cancel()
	}

	env, err := prog.RunContext(ctx, interpreter.New(), interpreter.Budget{MaxSteps: maxSteps})
	if err != nil {
		return failf(exitRuntime, "%s: %v", prog.Name, err)
	}

	for _, name := range env.Keys() {
		value, _ := env.Lookup(name)
		fmt.Fprintf(cmd.OutOrStdout(), "%s = %s\n", name, ast.FormatConstant(value))
	}

	if verify {
		if err := prog.Check(env); err != nil {
			return failf(exitRuntime, "%s: %v", prog.Name, err)
		}
		fmt.Fprintf(cmd.OutOrStdout(), "%s: expectations satisfied\n", prog.Name)
	}
	return nil
}
