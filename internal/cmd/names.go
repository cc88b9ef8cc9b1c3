package cmd

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/dendrascience/dirbench/bench"
	"github.com/google/uuid"
	"github.com/spf13/cobra"
)

// NewNamesCmd prints generated filenames or creates them as files.
func NewNamesCmd() *cobra.Command {
	var (
		count   int
		style   string
		seed    uint64
		output  string
		dir     string
		verbose bool
	)

	cmd := &cobra.Command{
		Use:   "names",
		Short: "Generate random filenames",
		Long: `Generate filenames in the styles used by the benchmark.

Names go to stdout, or to --output one per line. With --dir each name is
created as a file holding a single UUID line, which gives walk a realistic
tree to load.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if count < 0 {
				return fmt.Errorf("--count: %w", bench.ErrInvalidCount)
			}
			gen, err := bench.NewGenerator(bench.Style(style), seed)
			if err != nil {
				return err
			}
			names := gen.Names(count)

			if dir != "" {
				return createFiles(cmd.OutOrStdout(), dir, names, verbose)
			}
			if output == "" {
				return writeNames(cmd.OutOrStdout(), names)
			}
			f, err := os.Create(output)
			if err != nil {
				return err
			}
			defer f.Close()
			if err := writeNames(f, names); err != nil {
				return err
			}
			if verbose {
				fmt.Fprintf(cmd.OutOrStdout(), "Wrote %d names to %s\n", len(names), output)
			}
			return f.Close()
		},
	}

	cmd.Flags().IntVarP(&count, "count", "c", 10, "Number of names to generate")
	cmd.Flags().StringVar(&style, "style", string(bench.StyleRandom), "Filename style (random, uuid, hex)")
	cmd.Flags().Uint64Var(&seed, "seed", 0, "Random seed (0 picks one at random)")
	cmd.Flags().StringVarP(&output, "output", "o", "", "Write names to this file instead of stdout")
	cmd.Flags().StringVarP(&dir, "dir", "d", "", "Create the names as files in this directory")
	cmd.Flags().BoolVarP(&verbose, "verbose", "v", false, "Enable verbose output")

	return cmd
}

func writeNames(w io.Writer, names []string) error {
	bw := bufio.NewWriter(w)
	for _, n := range names {
		if _, err := fmt.Fprintln(bw, n); err != nil {
			return err
		}
	}
	return bw.Flush()
}

// createFiles writes each name as a file under dir. Names that already
// exist are skipped.
func createFiles(w io.Writer, dir string, names []string, verbose bool) error {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("creating output directory: %w", err)
	}

	// Contents are drawn from a small pool, like the archive seed data.
	pool := make([]string, 50)
	for i := range pool {
		pool[i] = uuid.NewString()
	}

	created := 0
	for i, name := range names {
		path := filepath.Join(dir, name)
		if _, err := os.Stat(path); err == nil {
			continue
		}
		if err := os.WriteFile(path, []byte(pool[i%len(pool)]+"\n"), 0o644); err != nil {
			return err
		}
		created++
		if verbose && created%1000 == 0 {
			fmt.Fprintf(w, "Created %d/%d files...\n", created, len(names))
		}
	}
	fmt.Fprintf(w, "Created %d files in %s\n", created, dir)
	return nil
}
