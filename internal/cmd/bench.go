package cmd

import (
	"context"
	"fmt"
	"io"

	"github.com/dendrascience/dirbench/bench"
	"github.com/dendrascience/dirbench/htree"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

type benchOptions struct {
	files   int
	lookups int
	seed    uint64
	style   string
	impls   []string
	buckets int
	output  string
	verbose bool
}

// NewBenchCmd runs the insert and lookup benchmark.
func NewBenchCmd() *cobra.Command {
	var opts benchOptions

	cmd := &cobra.Command{
		Use:   "bench",
		Short: "Time inserts and random lookups across directory implementations",
		Long: `Generate random filenames, insert them into every selected directory
implementation, then time a fixed sequence of random lookups against each.

Every implementation sees the same names in the same order and the same
lookup sequence. Pass --seed to make a run reproducible and --output to
save the report as JSON.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runBench(cmd.Context(), cmd.OutOrStdout(), opts)
		},
	}

	cmd.Flags().IntVarP(&opts.files, "files", "n", bench.DefaultFiles, "Number of files to insert")
	cmd.Flags().IntVarP(&opts.lookups, "lookups", "l", bench.DefaultLookups, "Number of random lookups")
	cmd.Flags().Uint64Var(&opts.seed, "seed", 0, "Random seed (0 picks one at random)")
	cmd.Flags().StringVar(&opts.style, "style", string(bench.StyleRandom), "Filename style (random, uuid, hex)")
	cmd.Flags().StringSliceVarP(&opts.impls, "impl", "i", nil, "Implementation to run, repeatable (default all)")
	cmd.Flags().IntVar(&opts.buckets, "buckets", htree.DefaultBuckets, "Hash buckets for htree-hashed")
	cmd.Flags().StringVarP(&opts.output, "output", "o", "", "Write the JSON report to this file or directory")
	cmd.Flags().BoolVarP(&opts.verbose, "verbose", "v", false, "Enable verbose logging")

	return cmd
}

func runBench(ctx context.Context, w io.Writer, opts benchOptions) error {
	if ctx == nil {
		ctx = context.Background()
	}
	log, err := newLogger(opts.verbose)
	if err != nil {
		return err
	}
	defer log.Sync()

	if err := htree.ValidateBuckets(opts.buckets); err != nil {
		return fmt.Errorf("--buckets: %w", err)
	}

	cfg := bench.DefaultConfig()
	cfg.Files = opts.files
	cfg.Lookups = opts.lookups
	cfg.Seed = opts.seed
	cfg.Style = bench.Style(opts.style)
	cfg.Buckets = opts.buckets
	cfg.Logger = log
	if len(opts.impls) > 0 {
		cfg.Impls = cfg.Impls[:0]
		for _, s := range opts.impls {
			impl, err := bench.ParseImpl(s)
			if err != nil {
				return err
			}
			cfg.Impls = append(cfg.Impls, impl)
		}
	}

	fmt.Fprintln(w, "Running directory lookup benchmark...")
	report, err := bench.Run(ctx, cfg)
	if err != nil {
		return err
	}
	if err := report.Print(w); err != nil {
		return err
	}

	if opts.output != "" {
		if err := report.Save(opts.output); err != nil {
			return fmt.Errorf("saving report: %w", err)
		}
		log.Info("saved report", zap.String("path", opts.output))
	}
	return nil
}
