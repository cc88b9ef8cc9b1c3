package htree

import (
	"errors"

	"github.com/dendrascience/dirbench/dirent"
)

// Errors returned by package htree. ErrInvalidName, ErrOutOfMemory and
// ErrClosed are the shared dirent sentinels so callers can match them
// without caring which implementation they hold.
var (
	ErrInvalidName = dirent.ErrInvalidName
	ErrOutOfMemory = dirent.ErrOutOfMemory
	ErrClosed      = dirent.ErrClosed

	// Block errors
	ErrBlockFull      = errors.New("block is full")
	ErrWrongBlockType = errors.New("wrong block type for record")

	// Option errors
	ErrInvalidBuckets = errors.New("invalid bucket count")
)
