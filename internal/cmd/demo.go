package cmd

import (
	"fmt"
	"io"

	"github.com/dendrascience/dirbench/bench"
	"github.com/dendrascience/dirbench/htree"
	"github.com/spf13/cobra"
)

// NewDemoCmd inserts file1.txt through file3.txt and looks two names up.
func NewDemoCmd() *cobra.Command {
	var impl string

	cmd := &cobra.Command{
		Use:   "demo",
		Short: "Insert three files and look them up",
		Long: `Insert file1.txt, file2.txt and file3.txt with inode numbers 1001 to 1003,
print the directory's block statistics, then look up file2.txt and a name
that was never inserted.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runDemo(cmd.OutOrStdout(), impl)
		},
	}

	cmd.Flags().StringVarP(&impl, "impl", "i", string(bench.ImplHTree), "Directory implementation (htree, htree-hashed, list, bst)")

	return cmd
}

func runDemo(w io.Writer, implName string) error {
	impl, err := bench.ParseImpl(implName)
	if err != nil {
		return err
	}
	dir, err := bench.NewDirectory(impl, htree.DefaultBuckets, nil)
	if err != nil {
		return err
	}
	defer dir.Close()

	for i, name := range []string{"file1.txt", "file2.txt", "file3.txt"} {
		if err := dir.Insert(name, uint32(1001+i)); err != nil {
			return err
		}
	}

	if h, ok := dir.(*htree.Directory); ok {
		fmt.Fprintln(w, "Directory statistics:")
		fmt.Fprintf(w, "Number of entry blocks: %d\n", h.EntryBlocks())
		if b, ok := h.EntryBlock(0); ok {
			fmt.Fprintf(w, "First block entries: %d\n", b.Len())
		}
	} else {
		fmt.Fprintf(w, "Directory entries: %d\n", dir.Len())
	}

	for _, name := range []string{"file2.txt", "missing.txt"} {
		if rec, ok := dir.Find(name); ok {
			fmt.Fprintf(w, "Found file: %s (inode: %d)\n", rec.Name, rec.ID)
		} else {
			fmt.Fprintf(w, "File not found: %s\n", name)
		}
	}
	return nil
}
