package cmd

import (
	"fmt"

	"github.com/alglobo/exgen/internal/version"
	"github.com/spf13/cobra"
)

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version information and quit",
		Long:  `Print version information and quit`,
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "version: %s\n", version.Version)
		},
	}
}
