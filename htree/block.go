package htree

import (
	"encoding/binary"
	"fmt"
	"iter"

	"github.com/dendrascience/dirbench/dirent"
)

// BlockType identifies the payload a block carries.
type BlockType uint32

const (
	BlockRoot  BlockType = 1
	BlockIndex BlockType = 2
	BlockEntry BlockType = 3
)

func (t BlockType) String() string {
	switch t {
	case BlockRoot:
		return "root"
	case BlockIndex:
		return "index"
	case BlockEntry:
		return "entry"
	default:
		return fmt.Sprintf("BlockType(%d)", uint32(t))
	}
}

// BlockHeader describes the occupancy of a block.
type BlockHeader struct {
	Type       BlockType
	EntryCount uint32
	FreeSpace  uint32
}

// IndexRecord routes a hash key to a block.
type IndexRecord struct {
	HashKey  uint32
	BlockRef uint32
}

// Block is one fixed-size directory page. The header and the records are
// encoded little-endian into the page; root and index blocks carry
// IndexRecords, entry blocks carry directory records.
type Block struct {
	page [BlockSize]byte
}

func newBlock(kind BlockType) *Block {
	b := new(Block)
	b.setHeader(BlockHeader{
		Type:       kind,
		EntryCount: 0,
		FreeSpace:  blockPayload,
	})
	return b
}

// Header decodes the block header.
func (b *Block) Header() BlockHeader {
	return BlockHeader{
		Type:       BlockType(binary.LittleEndian.Uint32(b.page[0:])),
		EntryCount: binary.LittleEndian.Uint32(b.page[4:]),
		FreeSpace:  binary.LittleEndian.Uint32(b.page[8:]),
	}
}

func (b *Block) setHeader(h BlockHeader) {
	binary.LittleEndian.PutUint32(b.page[0:], uint32(h.Type))
	binary.LittleEndian.PutUint32(b.page[4:], h.EntryCount)
	binary.LittleEndian.PutUint32(b.page[8:], h.FreeSpace)
}

// Type returns the block type.
func (b *Block) Type() BlockType {
	return BlockType(binary.LittleEndian.Uint32(b.page[0:]))
}

// Len returns the number of records in the block.
func (b *Block) Len() int {
	return int(binary.LittleEndian.Uint32(b.page[4:]))
}

// FreeSpace returns the number of payload bytes not yet used by records.
func (b *Block) FreeSpace() uint32 {
	return binary.LittleEndian.Uint32(b.page[8:])
}

// RecordSize returns the encoded size of one record of this block's type.
func (b *Block) RecordSize() int {
	if b.Type() == BlockEntry {
		return DirRecordSize
	}
	return IndexRecordSize
}

// Capacity returns the maximum number of records the block can hold.
func (b *Block) Capacity() int {
	if b.Type() == BlockEntry {
		return EntriesPerBlock
	}
	return IndexEntriesPerBlock
}

// Full reports whether the block has no free record slot.
func (b *Block) Full() bool {
	return b.Len() >= b.Capacity()
}

// Bytes returns a copy of the block's page image.
func (b *Block) Bytes() []byte {
	out := make([]byte, BlockSize)
	copy(out, b.page[:])
	return out
}

func (b *Block) slot(i int) []byte {
	size := b.RecordSize()
	off := HeaderSize + i*size
	return b.page[off : off+size]
}

// commit accounts for one record written into slot EntryCount.
func (b *Block) commit() {
	h := b.Header()
	h.EntryCount++
	h.FreeSpace -= uint32(b.RecordSize())
	b.setHeader(h)
}

func (b *Block) appendDir(rec dirent.Record) error {
	if b.Type() != BlockEntry {
		return fmt.Errorf("%w: cannot store a directory record in a %s block", ErrWrongBlockType, b.Type())
	}
	if b.Full() {
		return ErrBlockFull
	}
	if len(rec.Name) > MaxNameLen {
		return fmt.Errorf("%w: %d bytes", ErrInvalidName, len(rec.Name))
	}

	s := b.slot(b.Len())
	binary.LittleEndian.PutUint32(s[dirOffID:], rec.ID)
	binary.LittleEndian.PutUint16(s[dirOffRecLen:], DirRecordSize)
	s[dirOffNameLen] = uint8(len(rec.Name))
	s[dirOffKind] = uint8(rec.Kind)
	n := copy(s[dirOffName:dirOffName+MaxFilename], rec.Name)
	clear(s[dirOffName+n : dirOffName+MaxFilename])

	b.commit()
	return nil
}

func (b *Block) appendIndex(rec IndexRecord) error {
	if b.Type() == BlockEntry {
		return fmt.Errorf("%w: cannot store an index record in an entry block", ErrWrongBlockType)
	}
	if b.Full() {
		return ErrBlockFull
	}

	s := b.slot(b.Len())
	binary.LittleEndian.PutUint32(s[idxOffHash:], rec.HashKey)
	binary.LittleEndian.PutUint32(s[idxOffBlock:], rec.BlockRef)

	b.commit()
	return nil
}

// name returns the stored name of directory record i without copying it.
func (b *Block) name(i int) []byte {
	s := b.slot(i)
	n := int(s[dirOffNameLen])
	return s[dirOffName : dirOffName+n]
}

func (b *Block) decodeDir(i int) dirent.Record {
	s := b.slot(i)
	return dirent.Record{
		ID:           binary.LittleEndian.Uint32(s[dirOffID:]),
		RecordLength: binary.LittleEndian.Uint16(s[dirOffRecLen:]),
		NameLength:   s[dirOffNameLen],
		Kind:         dirent.Kind(s[dirOffKind]),
		Name:         string(b.name(i)),
	}
}

func (b *Block) decodeIndex(i int) IndexRecord {
	s := b.slot(i)
	return IndexRecord{
		HashKey:  binary.LittleEndian.Uint32(s[idxOffHash:]),
		BlockRef: binary.LittleEndian.Uint32(s[idxOffBlock:]),
	}
}

// Record returns directory record i of an entry block.
func (b *Block) Record(i int) (dirent.Record, bool) {
	if b.Type() != BlockEntry || i < 0 || i >= b.Len() {
		return dirent.Record{}, false
	}
	return b.decodeDir(i), true
}

// IndexRecord returns index record i of a root or index block.
func (b *Block) IndexRecord(i int) (IndexRecord, bool) {
	if b.Type() == BlockEntry || i < 0 || i >= b.Len() {
		return IndexRecord{}, false
	}
	return b.decodeIndex(i), true
}

// Records iterates the directory records of an entry block in insertion
// order. It yields nothing for root and index blocks.
func (b *Block) Records() iter.Seq[dirent.Record] {
	return func(yield func(dirent.Record) bool) {
		if b.Type() != BlockEntry {
			return
		}
		for i := range b.Len() {
			if !yield(b.decodeDir(i)) {
				return
			}
		}
	}
}

// IndexRecords iterates the index records of a root or index block in
// insertion order. It yields nothing for entry blocks.
func (b *Block) IndexRecords() iter.Seq[IndexRecord] {
	return func(yield func(IndexRecord) bool) {
		if b.Type() == BlockEntry {
			return
		}
		for i := range b.Len() {
			if !yield(b.decodeIndex(i)) {
				return
			}
		}
	}
}

// find returns the slot of the first record named name.
func (b *Block) find(name string) (int, bool) {
	for i := range b.Len() {
		if string(b.name(i)) == name {
			return i, true
		}
	}
	return 0, false
}

// count returns the number of records named name.
func (b *Block) count(name string) int {
	n := 0
	for i := range b.Len() {
		if string(b.name(i)) == name {
			n++
		}
	}
	return n
}
