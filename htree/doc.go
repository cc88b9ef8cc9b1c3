// Package htree implements a hash-indexed directory ("H-tree") loosely
// modeled on the indexed directories of extent-based filesystems.
//
// A Directory is built from fixed-size 4096-byte blocks. Each block starts
// with a 12-byte header (type, entry count, free space) followed by an array
// of fixed-width records: directory records in entry blocks, and
// hash-key/block-reference index records in root and index blocks. Blocks
// are held in memory only; their byte image is the shape an on-disk
// directory page would have, but nothing is ever written to storage.
//
// # Placement
//
// Two placement strategies are available and are kept strictly apart:
//
//   - FirstFit (the default): a new record goes to the first entry block, in
//     creation order, with a free slot. Lookups scan every entry block. The
//     hash of the name is computed but does not influence placement. This is
//     the behaviour benchmark numbers are compared against.
//   - Hashed: the name hash selects one of a fixed number of buckets. Index
//     blocks route each bucket to its entry blocks and lookups only visit the
//     entry blocks of the queried name's bucket.
//
// Blocks are never split, merged or freed individually; a full block stays
// full for the lifetime of the directory.
//
// # Components
//
//   - Hash: the h*33+b rolling hash that selects a bucket
//   - Block: one page with its header and record accessors
//   - Directory: the root block plus index and entry blocks, with Insert,
//     Find, Count, Records and Close
//   - Stats and Validate: occupancy figures and a full invariant check that
//     reports every violation at once through go-multierror
//
// # Limits
//
// Names are at most MaxNameLen (254) bytes; longer names fail with
// ErrInvalidName and are never truncated. WithMaxBlocks caps the number of
// blocks a directory may hold; an Insert that would pass the cap fails with
// ErrOutOfMemory and leaves every block unchanged. WithBuckets accepts 1 to
// MaxBuckets buckets.
//
// # Usage
//
//	dir, err := htree.New()
//	if err != nil {
//		return err
//	}
//	defer dir.Close()
//
//	if err := dir.Insert("file1.txt", 1001); err != nil {
//		return err
//	}
//	rec, ok := dir.Find("file1.txt")
//
// A Directory is not safe for concurrent use.
package htree
