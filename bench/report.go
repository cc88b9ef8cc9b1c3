package bench

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"text/tabwriter"
	"time"

	"github.com/dendrascience/dirbench/htree"
	"github.com/dendrascience/dirbench/version"
)

// Report is the outcome of a benchmark run.
type Report struct {
	Version         string    `json:"dirbench_version"`
	Generated       time.Time `json:"generated"`
	BlockSize       int       `json:"block_size"`
	EntriesPerBlock int       `json:"entries_per_block"`
	Config          Config    `json:"config"`
	Results         []Result  `json:"results"`
}

// NewReport returns an empty report for cfg.
func NewReport(cfg Config) Report {
	return Report{
		Version:         version.GetVersion(),
		Generated:       time.Now().UTC(),
		BlockSize:       htree.BlockSize,
		EntriesPerBlock: htree.EntriesPerBlock,
		Config:          cfg,
	}
}

// Result returns the result for impl.
func (r Report) Result(impl Impl) (Result, bool) {
	for _, res := range r.Results {
		if res.Impl == impl {
			return res, true
		}
	}
	return Result{}, false
}

// Save writes the report as JSON. A path not ending in ".json" names a
// directory, created if missing, and the report is written to report.json
// inside it.
func (r Report) Save(path string) error {
	if !strings.HasSuffix(path, ".json") {
		if err := os.MkdirAll(path, 0o755); err != nil {
			return err
		}
		path = filepath.Join(path, "report.json")
	}
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()
	je := json.NewEncoder(f)
	je.SetIndent("", "  ")
	return je.Encode(r)
}

// LoadReport reads a report written by Save.
func LoadReport(path string) (Report, error) {
	var r Report
	f, err := os.Open(path)
	if err != nil {
		return r, err
	}
	defer f.Close()
	err = json.NewDecoder(f).Decode(&r)
	return r, err
}

// Print writes a human-readable summary of the report.
func (r Report) Print(w io.Writer) error {
	fmt.Fprintf(w, "Configuration:\n")
	fmt.Fprintf(w, "- Number of files: %d\n", r.Config.Files)
	fmt.Fprintf(w, "- Random lookups: %d\n", r.Config.Lookups)
	fmt.Fprintf(w, "- Block size: %d bytes\n", r.BlockSize)
	fmt.Fprintf(w, "- Max entries per block: %d\n", r.EntriesPerBlock)
	fmt.Fprintf(w, "- Name style: %s\n\n", r.Config.Style)

	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "IMPL\tINSERT\tPER INSERT\tSEARCH\tPER LOOKUP\tMISSES\tSTORED\tMEMORY")
	for _, res := range r.Results {
		fmt.Fprintf(tw, "%s\t%s\t%s\t%s\t%s\t%d\t%d\t%s\n",
			res.Impl,
			res.InsertTime.Round(time.Microsecond),
			res.AvgInsert(),
			res.SearchTime.Round(time.Microsecond),
			res.AvgSearch(),
			res.Misses,
			res.Stored,
			formatBytes(res.MemoryBytes),
		)
	}
	if err := tw.Flush(); err != nil {
		return err
	}

	for _, res := range r.Results {
		if res.HTree == nil {
			continue
		}
		fmt.Fprintf(w, "\n%s: %d entry blocks, %d index blocks, fill %.1f%%",
			res.Impl, res.HTree.EntryBlocks, res.HTree.IndexBlocks, res.HTree.FillRatio*100)
		if res.HTree.Buckets > 0 {
			fmt.Fprintf(w, ", %d/%d buckets in use", res.HTree.BucketsInUse, res.HTree.Buckets)
		}
		fmt.Fprintln(w)
	}
	return nil
}

func formatBytes(n int) string {
	switch {
	case n >= 1<<20:
		return fmt.Sprintf("%.2f MB", float64(n)/(1<<20))
	case n >= 1<<10:
		return fmt.Sprintf("%.2f KB", float64(n)/(1<<10))
	default:
		return fmt.Sprintf("%d B", n)
	}
}
