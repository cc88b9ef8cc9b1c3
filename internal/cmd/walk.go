package cmd

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"path/filepath"

	"github.com/dendrascience/dirbench/dirent"
	"github.com/dendrascience/dirbench/htree"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// NewWalkCmd loads the basenames of a directory tree into an H-tree.
func NewWalkCmd() *cobra.Command {
	var (
		hf           htreeFlags
		showProgress bool
		verbose      bool
	)

	cmd := &cobra.Command{
		Use:   "walk [PATH]",
		Short: "Load a directory tree's file names into an H-tree",
		Long: `Recursively walk PATH and insert the basename of every entry into a single
H-tree directory, the way a flattened listing would be stored.

Regular files, directories and symlinks keep their kind. Names longer than
254 bytes are counted as skipped. Prints the resulting block usage.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			path := "./"
			if len(args) > 0 {
				path = args[0]
			}
			log, err := newLogger(verbose)
			if err != nil {
				return err
			}
			defer log.Sync()

			d, err := hf.newDirectory(log)
			if err != nil {
				return err
			}
			defer d.Close()

			res, err := walkInto(d, path, cmd.OutOrStdout(), showProgress, log)
			if err != nil {
				return fmt.Errorf("walking %s: %w", path, err)
			}
			printWalk(cmd.OutOrStdout(), d, res)
			return nil
		},
	}

	hf.register(cmd)
	cmd.Flags().BoolVar(&showProgress, "progress", false, "Show progress every 10,000 entries")
	cmd.Flags().BoolVarP(&verbose, "verbose", "v", false, "Enable verbose logging")

	return cmd
}

type walkResult struct {
	inserted int
	skipped  int
	dirs     int
}

func walkInto(d *htree.Directory, root string, w io.Writer, showProgress bool, log *zap.Logger) (walkResult, error) {
	var res walkResult
	err := filepath.WalkDir(root, func(path string, e fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if path == root {
			return nil
		}

		kind := dirent.KindRegular
		switch {
		case e.IsDir():
			kind = dirent.KindDir
			res.dirs++
		case e.Type()&fs.ModeSymlink != 0:
			kind = dirent.KindSymlink
		}

		err = d.InsertKind(e.Name(), uint32(res.inserted+1), kind)
		switch {
		case err == nil:
			res.inserted++
		case errors.Is(err, htree.ErrInvalidName):
			res.skipped++
			log.Debug("skipping name", zap.String("path", path), zap.Error(err))
		default:
			return err
		}

		if showProgress && res.inserted%10000 == 0 && res.inserted > 0 {
			fmt.Fprintf(w, "Progress: %d entries inserted\n", res.inserted)
		}
		return nil
	})
	return res, err
}

func printWalk(w io.Writer, d *htree.Directory, res walkResult) {
	s := d.Stats()
	fmt.Fprintf(w, "Total entries: %d (%d directories)\n", res.inserted, res.dirs)
	if res.skipped > 0 {
		fmt.Fprintf(w, "Skipped names: %d\n", res.skipped)
	}
	fmt.Fprintf(w, "Entry blocks: %d\n", s.EntryBlocks)
	if s.IndexBlocks > 0 {
		fmt.Fprintf(w, "Index blocks: %d\n", s.IndexBlocks)
	}
	fmt.Fprintf(w, "Block memory: %d bytes\n", s.BlockBytes)
	fmt.Fprintf(w, "Fill ratio: %.1f%%\n", s.FillRatio*100)
}
