package htree

import "github.com/dendrascience/dirbench/dirent"

// Block geometry. All sizes are in bytes and fixed at compile time.
const (
	// BlockSize is the size of every block page.
	BlockSize = 4096

	// HeaderSize is the encoded size of a BlockHeader:
	// block_type u32, entry_count u32, free_space u32.
	HeaderSize = 12

	// MaxFilename is the width of the name field of a directory record.
	MaxFilename = 255

	// MaxNameLen is the longest name accepted by Insert.
	MaxNameLen = dirent.MaxNameLen

	// DirRecordSize is the encoded size of a directory record:
	// id u32, rec_len u16, name_len u8, kind u8, name [255]byte, padded to a
	// 4-byte boundary.
	DirRecordSize = (8 + MaxFilename + 3) &^ 3

	// IndexRecordSize is the encoded size of an index record:
	// hash u32, block u32.
	IndexRecordSize = 8

	// EntriesPerBlock is the directory record capacity of an entry block.
	EntriesPerBlock = (BlockSize - HeaderSize) / DirRecordSize

	// IndexEntriesPerBlock is the index record capacity of a root or index block.
	IndexEntriesPerBlock = (BlockSize - HeaderSize) / IndexRecordSize

	// blockPayload is the number of bytes available for records.
	blockPayload = BlockSize - HeaderSize
)

// Directory record field offsets, relative to the start of the record.
const (
	dirOffID      = 0
	dirOffRecLen  = 4
	dirOffNameLen = 6
	dirOffKind    = 7
	dirOffName    = 8
)

// Index record field offsets, relative to the start of the record.
const (
	idxOffHash  = 0
	idxOffBlock = 4
)
