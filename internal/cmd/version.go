package cmd

import (
	"github.com/dendrascience/dirbench/version"
	"github.com/spf13/cobra"
)

// NewVersionCmd prints build metadata.
func NewVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Show version information",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			version.Fprint(cmd.OutOrStdout())
		},
	}
}
