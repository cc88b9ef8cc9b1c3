package bench

import "errors"

// Sentinel errors for package bench.
var (
	ErrUnknownStyle = errors.New("unknown name style")
	ErrUnknownImpl  = errors.New("unknown directory implementation")
	ErrNoNames      = errors.New("no names to benchmark")
	ErrInvalidCount = errors.New("count must not be negative")
)
