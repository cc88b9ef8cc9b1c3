package cmd

import (
	"fmt"

	"github.com/dendrascience/dirbench/htree"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// htreeFlags are the directory construction flags shared by walk, stats
// and shell.
type htreeFlags struct {
	placement string
	buckets   int
	maxBlocks int
}

func (f *htreeFlags) register(cmd *cobra.Command) {
	cmd.Flags().StringVar(&f.placement, "placement", "first-fit", "Entry block placement (first-fit, hashed)")
	cmd.Flags().IntVar(&f.buckets, "buckets", htree.DefaultBuckets, "Hash buckets for hashed placement")
	cmd.Flags().IntVar(&f.maxBlocks, "max-blocks", 0, "Cap on allocated blocks (0 for no cap)")
}

func (f *htreeFlags) newDirectory(log *zap.Logger) (*htree.Directory, error) {
	p, err := htree.ParsePlacement(f.placement)
	if err != nil {
		return nil, err
	}
	if err := htree.ValidateBuckets(f.buckets); err != nil {
		return nil, fmt.Errorf("--buckets: %w", err)
	}
	if f.maxBlocks < 0 {
		return nil, fmt.Errorf("--max-blocks must not be negative, got %d", f.maxBlocks)
	}
	return htree.New(
		htree.WithPlacement(p),
		htree.WithBuckets(f.buckets),
		htree.WithMaxBlocks(f.maxBlocks),
		htree.WithLogger(log),
	)
}
