package bench

import (
	"context"
	"fmt"
	"time"

	"github.com/dendrascience/dirbench/bstdir"
	"github.com/dendrascience/dirbench/dirent"
	"github.com/dendrascience/dirbench/htree"
	"github.com/dendrascience/dirbench/listdir"
	"go.uber.org/zap"
)

// Impl names a directory implementation.
type Impl string

const (
	ImplHTree       Impl = "htree"        // H-tree, first-fit placement
	ImplHTreeHashed Impl = "htree-hashed" // H-tree, hashed placement
	ImplList        Impl = "list"
	ImplBST         Impl = "bst"
)

// Impls lists every implementation in report order.
func Impls() []Impl {
	return []Impl{ImplHTree, ImplHTreeHashed, ImplList, ImplBST}
}

// Defaults mirror the original benchmark run.
const (
	DefaultFiles   = 10000
	DefaultLookups = 1000
)

// checkEvery is how many operations run between context checks.
const checkEvery = 1024

// Config controls a benchmark run.
type Config struct {
	Files   int    `json:"files"`
	Lookups int    `json:"lookups"`
	Seed    uint64 `json:"seed"`
	Style   Style  `json:"style"`
	Impls   []Impl `json:"impls"`
	Buckets int    `json:"buckets"` // 0 selects htree.DefaultBuckets

	// Names, when set, replaces generated names; Files is ignored.
	Names []string `json:"-"`

	Logger *zap.Logger `json:"-"`
}

// DefaultConfig returns the configuration of the original benchmark run:
// 10000 random 20-byte names and 1000 random lookups, on every
// implementation.
func DefaultConfig() Config {
	return Config{
		Files:   DefaultFiles,
		Lookups: DefaultLookups,
		Style:   StyleRandom,
		Impls:   Impls(),
		Buckets: htree.DefaultBuckets,
	}
}

// Result holds the measurements for one implementation.
type Result struct {
	Impl        Impl          `json:"impl"`
	Files       int           `json:"files"`
	Stored      int           `json:"stored"`
	Lookups     int           `json:"lookups"`
	Misses      int           `json:"misses"`
	InsertTime  time.Duration `json:"insert_ns"`
	SearchTime  time.Duration `json:"search_ns"`
	MemoryBytes int           `json:"memory_bytes"`
	HTree       *htree.Stats  `json:"htree,omitempty"`
}

// AvgInsert returns the mean time per insert.
func (r Result) AvgInsert() time.Duration {
	if r.Files == 0 {
		return 0
	}
	return r.InsertTime / time.Duration(r.Files)
}

// AvgSearch returns the mean time per lookup.
func (r Result) AvgSearch() time.Duration {
	if r.Lookups == 0 {
		return 0
	}
	return r.SearchTime / time.Duration(r.Lookups)
}

// ParseImpl validates an implementation name.
func ParseImpl(s string) (Impl, error) {
	for _, impl := range Impls() {
		if string(impl) == s {
			return impl, nil
		}
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownImpl, s)
}

// NewDirectory creates an empty directory for impl.
func NewDirectory(impl Impl, buckets int, logger *zap.Logger) (dirent.Directory, error) {
	var opts []htree.Option
	switch impl {
	case ImplHTree:
		opts = append(opts, htree.WithPlacement(htree.FirstFit))
	case ImplHTreeHashed:
		opts = append(opts, htree.WithPlacement(htree.Hashed), htree.WithBuckets(buckets))
	case ImplList:
		return listdir.New(), nil
	case ImplBST:
		return bstdir.New(), nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownImpl, impl)
	}

	d, err := htree.New(append(opts, htree.WithLogger(logger))...)
	if err != nil {
		return nil, err
	}
	return d, nil
}

// Run benchmarks every implementation in cfg.Impls against the same names
// and the same lookup sequence.
func Run(ctx context.Context, cfg Config) (Report, error) {
	log := cfg.Logger
	if log == nil {
		log = zap.NewNop()
	}
	if len(cfg.Impls) == 0 {
		cfg.Impls = Impls()
	}
	for _, impl := range cfg.Impls {
		if _, err := ParseImpl(string(impl)); err != nil {
			return Report{}, err
		}
	}
	if cfg.Names == nil && cfg.Files < 0 {
		return Report{}, fmt.Errorf("%w: files %d", ErrInvalidCount, cfg.Files)
	}
	if cfg.Lookups < 0 {
		return Report{}, fmt.Errorf("%w: lookups %d", ErrInvalidCount, cfg.Lookups)
	}
	if cfg.Buckets != 0 {
		if err := htree.ValidateBuckets(cfg.Buckets); err != nil {
			return Report{}, err
		}
	}

	gen, err := NewGenerator(cfg.Style, cfg.Seed)
	if err != nil {
		return Report{}, err
	}
	names := cfg.Names
	if names == nil {
		names = gen.Names(cfg.Files)
	}
	if len(names) == 0 {
		return Report{}, ErrNoNames
	}
	cfg.Files = len(names)

	probes := make([]int, cfg.Lookups)
	for i := range probes {
		probes[i] = gen.Intn(len(names))
	}

	report := NewReport(cfg)
	for _, impl := range cfg.Impls {
		if err := ctx.Err(); err != nil {
			return report, err
		}
		log.Info("benchmarking", zap.String("impl", string(impl)), zap.Int("files", len(names)))

		res, err := runOne(ctx, impl, cfg, names, probes, log)
		if err != nil {
			return report, fmt.Errorf("benchmarking %s: %w", impl, err)
		}
		log.Info("finished",
			zap.String("impl", string(impl)),
			zap.Duration("insert", res.InsertTime),
			zap.Duration("search", res.SearchTime),
			zap.Int("misses", res.Misses),
		)
		report.Results = append(report.Results, res)
	}
	return report, nil
}

func runOne(ctx context.Context, impl Impl, cfg Config, names []string, probes []int, log *zap.Logger) (Result, error) {
	dir, err := NewDirectory(impl, cfg.Buckets, log)
	if err != nil {
		return Result{}, err
	}
	defer dir.Close()

	res := Result{Impl: impl, Files: len(names), Lookups: len(probes)}

	start := time.Now()
	for i, name := range names {
		if i%checkEvery == 0 {
			if err := ctx.Err(); err != nil {
				return res, err
			}
		}
		if err := dir.Insert(name, uint32(i+1000)); err != nil {
			return res, err
		}
	}
	res.InsertTime = time.Since(start)

	start = time.Now()
	for i, p := range probes {
		if i%checkEvery == 0 {
			if err := ctx.Err(); err != nil {
				return res, err
			}
		}
		if _, ok := dir.Find(names[p]); !ok {
			res.Misses++
		}
	}
	res.SearchTime = time.Since(start)

	res.Stored = dir.Len()
	if m, ok := dir.(interface{ MemoryBytes() int }); ok {
		res.MemoryBytes = m.MemoryBytes()
	}
	if h, ok := dir.(*htree.Directory); ok {
		stats := h.Stats()
		stats.BlockCounts = nil
		res.HTree = &stats
	}
	return res, nil
}
