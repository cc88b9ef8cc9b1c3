package cmd

import (
	"github.com/dendrascience/dirbench/version"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// NewRootCmd creates the dirbench root command with every subcommand
// attached.
func NewRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "dirbench",
		Short: "dirbench - block-structured directory lookup benchmarks",
		Long: `dirbench builds H-tree directories out of fixed-size 4096-byte blocks and
compares their insert and lookup cost with a linked list and a binary
search tree.

Use subcommands to perform different operations:
  - demo: insert and find a few names
  - bench: time inserts and random lookups across implementations
  - stats: show block usage, validation and hash distribution
  - walk: load the basenames of a real directory tree
  - names: print generated filenames
  - shell: interactive directory session`,
		Version:       version.GetFullVersion(),
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	groupBenchmarks := "benchmarks"
	groupUtilities := "utilities"

	rootCmd.AddGroup(&cobra.Group{
		ID:    groupBenchmarks,
		Title: "Benchmarks",
	})
	rootCmd.AddGroup(&cobra.Group{
		ID:    groupUtilities,
		Title: "Utility Commands",
	})

	demoCmd := NewDemoCmd()
	benchCmd := NewBenchCmd()
	statsCmd := NewStatsCmd()
	walkCmd := NewWalkCmd()
	namesCmd := NewNamesCmd()
	shellCmd := NewShellCmd()
	versionCmd := NewVersionCmd()

	demoCmd.GroupID = groupBenchmarks
	benchCmd.GroupID = groupBenchmarks
	statsCmd.GroupID = groupBenchmarks
	walkCmd.GroupID = groupUtilities
	namesCmd.GroupID = groupUtilities
	shellCmd.GroupID = groupUtilities
	versionCmd.GroupID = groupUtilities

	rootCmd.AddCommand(demoCmd, benchCmd, statsCmd, walkCmd, namesCmd, shellCmd, versionCmd)

	return rootCmd
}

// newLogger returns a development logger when verbose is set and a no-op
// logger otherwise.
func newLogger(verbose bool) (*zap.Logger, error) {
	if !verbose {
		return zap.NewNop(), nil
	}
	return zap.NewDevelopment()
}
