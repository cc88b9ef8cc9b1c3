package htree

import (
	"fmt"

	"go.uber.org/zap"
)

// Placement selects how Insert chooses an entry block and how Find searches.
type Placement int

const (
	// FirstFit places a record in the first entry block with a free slot,
	// in creation order, and looks names up with a full scan.
	FirstFit Placement = iota
	// Hashed places a record in an entry block of the bucket selected by
	// the name hash and looks names up through the index blocks.
	Hashed
)

func (p Placement) String() string {
	switch p {
	case FirstFit:
		return "first-fit"
	case Hashed:
		return "hashed"
	default:
		return fmt.Sprintf("Placement(%d)", int(p))
	}
}

// ParsePlacement converts a placement name as printed by String back into
// a Placement.
func ParsePlacement(s string) (Placement, error) {
	switch s {
	case "first-fit", "firstfit", "":
		return FirstFit, nil
	case "hashed":
		return Hashed, nil
	default:
		return FirstFit, fmt.Errorf("unknown placement %q", s)
	}
}

// DefaultBuckets is the number of hash buckets used by Hashed placement
// when WithBuckets is not given.
const DefaultBuckets = 64

// MaxBuckets is the largest bucket count WithBuckets accepts: one bucket per
// entry block the root and its index blocks can route.
const MaxBuckets = IndexEntriesPerBlock * IndexEntriesPerBlock

// ValidateBuckets reports ErrInvalidBuckets unless 1 <= n <= MaxBuckets.
func ValidateBuckets(n int) error {
	if n < 1 || n > MaxBuckets {
		return fmt.Errorf("%w: %d, want 1 to %d", ErrInvalidBuckets, n, MaxBuckets)
	}
	return nil
}

// Option configures a Directory.
type Option func(*options)

type options struct {
	placement Placement
	buckets   uint32
	maxBlocks int
	logger    *zap.Logger
}

func defaultOptions() *options {
	return &options{
		placement: FirstFit,
		buckets:   DefaultBuckets,
		maxBlocks: 0,
		logger:    zap.NewNop(),
	}
}

// WithPlacement sets the placement strategy.
func WithPlacement(p Placement) Option {
	return func(o *options) {
		if p == FirstFit || p == Hashed {
			o.placement = p
		}
	}
}

// WithBuckets sets the number of hash buckets for Hashed placement.
// Values outside 1 to MaxBuckets are ignored.
func WithBuckets(n int) Option {
	return func(o *options) {
		if ValidateBuckets(n) == nil {
			o.buckets = uint32(n)
		}
	}
}

// WithMaxBlocks caps the number of blocks (root, index and entry) the
// directory may hold. Allocations past the cap fail with ErrOutOfMemory.
// Zero means unlimited.
func WithMaxBlocks(n int) Option {
	return func(o *options) {
		if n >= 0 {
			o.maxBlocks = n
		}
	}
}

// WithLogger sets the logger used for block allocation events.
func WithLogger(l *zap.Logger) Option {
	return func(o *options) {
		if l != nil {
			o.logger = l
		}
	}
}
