package dirent

import "errors"

// Sentinel errors shared by all directory implementations.
// These errors can be checked with errors.Is() for specific error handling.
var (
	// ErrInvalidName is returned when a name exceeds MaxNameLen bytes.
	ErrInvalidName = errors.New("invalid name")

	// ErrOutOfMemory is returned when storage for a new block or for growing
	// a block collection could not be obtained.
	ErrOutOfMemory = errors.New("out of memory")

	// ErrClosed is returned when operating on a directory after Close.
	ErrClosed = errors.New("directory is closed")
)
