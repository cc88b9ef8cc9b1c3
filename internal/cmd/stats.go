package cmd

import (
	"errors"
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/dendrascience/dirbench/bench"
	"github.com/dendrascience/dirbench/htree"
	"github.com/hashicorp/go-multierror"
	"github.com/spf13/cobra"
)

// NewStatsCmd fills an H-tree with generated names and reports its shape.
func NewStatsCmd() *cobra.Command {
	var (
		hf      htreeFlags
		files   int
		seed    uint64
		style   string
		blocks  bool
		verbose bool
	)

	cmd := &cobra.Command{
		Use:   "stats",
		Short: "Show block usage, validation and hash distribution",
		Long: `Insert generated names into an H-tree directory and report how the
records are spread over entry blocks, whether every block and routing
invariant holds, and how evenly the names fall into hash buckets.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			log, err := newLogger(verbose)
			if err != nil {
				return err
			}
			defer log.Sync()

			if files < 0 {
				return fmt.Errorf("--files: %w", bench.ErrInvalidCount)
			}
			gen, err := bench.NewGenerator(bench.Style(style), seed)
			if err != nil {
				return err
			}
			d, err := hf.newDirectory(log)
			if err != nil {
				return err
			}
			defer d.Close()

			names := gen.Names(files)
			for i, n := range names {
				if err := d.Insert(n, uint32(i+1000)); err != nil {
					return err
				}
			}
			return printStats(cmd.OutOrStdout(), d, names, hf.buckets, blocks)
		},
	}

	hf.register(cmd)
	cmd.Flags().IntVarP(&files, "files", "n", bench.DefaultFiles, "Number of names to insert")
	cmd.Flags().Uint64Var(&seed, "seed", 0, "Random seed (0 picks one at random)")
	cmd.Flags().StringVar(&style, "style", string(bench.StyleRandom), "Filename style (random, uuid, hex)")
	cmd.Flags().BoolVar(&blocks, "blocks", false, "List the record count of every entry block")
	cmd.Flags().BoolVarP(&verbose, "verbose", "v", false, "Enable verbose logging")

	return cmd
}

func printStats(w io.Writer, d *htree.Directory, names []string, buckets int, blocks bool) error {
	s := d.Stats()
	fmt.Fprintf(w, "Placement: %s\n", s.Placement)
	fmt.Fprintf(w, "Records: %d\n", s.Records)
	fmt.Fprintf(w, "Entry blocks: %d (%d full)\n", s.EntryBlocks, s.FullBlocks)
	fmt.Fprintf(w, "Index blocks: %d (%d root records)\n", s.IndexBlocks, s.RootRecords)
	fmt.Fprintf(w, "Block memory: %d bytes\n", s.BlockBytes)
	fmt.Fprintf(w, "Fill ratio: %.1f%%\n", s.FillRatio*100)
	if s.Buckets > 0 {
		fmt.Fprintf(w, "Buckets in use: %d/%d\n", s.BucketsInUse, s.Buckets)
	}
	if blocks {
		for i, c := range s.BlockCounts {
			fmt.Fprintf(w, "  block %d: %d/%d\n", i, c, htree.EntriesPerBlock)
		}
	}

	if err := d.Validate(); err != nil {
		var merr *multierror.Error
		if errors.As(err, &merr) {
			fmt.Fprintf(w, "Validation: %d violations\n", len(merr.Errors))
			for _, e := range merr.Errors {
				fmt.Fprintf(w, "  - %v\n", e)
			}
		} else {
			fmt.Fprintf(w, "Validation: %v\n", err)
		}
	} else {
		fmt.Fprintln(w, "Validation: ok")
	}

	fmt.Fprintf(w, "\nHash distribution over %d buckets:\n", buckets)
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "HASH\tMIN\tMAX\tMEAN\tSTDDEV\tEMPTY")
	for _, sp := range bench.Distribution(names, buckets) {
		fmt.Fprintf(tw, "%s\t%d\t%d\t%.2f\t%.2f\t%d\n", sp.Hash, sp.Min, sp.Max, sp.Mean, sp.StdDev, sp.Empty)
	}
	return tw.Flush()
}
