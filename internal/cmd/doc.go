// Package cmd provides the command-line interface implementation for dirbench.
//
// This package contains all the subcommand implementations for the dirbench
// CLI tool. It uses the Cobra library for command structure and Fang for
// styled help and error output.
//
// The package is organized into the following commands:
//   - root: Main command coordinator, command groups and version string
//   - demo: The three-file scenario with block statistics and lookups
//   - bench: Timed inserts and random lookups across all implementations
//   - stats: Block usage, invariant validation and hash bucket spread
//   - walk: Loads the basenames of a real directory tree into an H-tree
//   - names: Generated filenames, printed or created as files
//   - shell: Interactive session against one in-memory H-tree
//   - version: Build metadata
//
// Benchmarks:
// bench, demo and stats sit in the "Benchmarks" group. bench compares the
// htree (first-fit), htree-hashed, list and bst implementations on the same
// names and the same lookup sequence, and can save the report as JSON.
//
// Flags:
// walk, stats and shell share --placement, --buckets and --max-blocks for
// building the directory. Out-of-range values (negative counts, a bucket
// count outside 1 to htree.MaxBuckets) are rejected before any work starts.
//
// Each command is implemented as a separate file with its own constructor
// function that returns a *cobra.Command. Commands write to
// cmd.OutOrStdout so their output can be captured in tests, and build a zap
// development logger only when --verbose is given.
package cmd
