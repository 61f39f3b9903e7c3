package cmd

import (
	"fmt"

	"github.com/alglobo/exgen/pkg/fixture"
	"github.com/spf13/cobra"
)

func newVerifyCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "verify <file>",
		Short: "Check a fixture file the way alglobo reads it",
		Long: `Reads a fixture file with the row format alglobo accepts and reports
skipped lines, duplicated ids and gaps in the id sequence.
Exits non-zero if the file is not exactly the payments 1..n.`,
		Args: func(cmd *cobra.Command, args []string) error {
			if len(args) != 1 {
				return &fixture.InvalidArgumentError{Arg: "file", Reason: "expected exactly one fixture file"}
			}
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			rep, err := fixture.Verify(args[0])
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "lines:      %d\n", rep.Lines)
			fmt.Fprintf(cmd.OutOrStdout(), "payments:   %d\n", rep.Payments)
			fmt.Fprintf(cmd.OutOrStdout(), "skipped:    %d\n", rep.Skipped)
			fmt.Fprintf(cmd.OutOrStdout(), "duplicates: %v\n", rep.Duplicates)
			fmt.Fprintf(cmd.OutOrStdout(), "missing:    %d\n", rep.Missing)
			if !rep.OK() {
				return fmt.Errorf("%s is not a valid fixture", args[0])
			}
			return nil
		},
	}
}
