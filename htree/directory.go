package htree

import (
	"fmt"
	"iter"

	"github.com/dendrascience/dirbench/dirent"
	"go.uber.org/zap"
)

// Directory is a block-structured directory. It owns one root block plus
// the index and entry blocks it allocates; no block is shared with any
// other Directory.
type Directory struct {
	root    *Block
	index   []*Block
	entries []*Block
	records int

	opts *options
	log  *zap.Logger
}

var _ dirent.Directory = (*Directory)(nil)

// New creates an empty directory holding only its root block.
func New(opts ...Option) (*Directory, error) {
	o := defaultOptions()
	for _, opt := range opts {
		opt(o)
	}

	d := &Directory{opts: o, log: o.logger}
	if err := d.reserve(1); err != nil {
		return nil, fmt.Errorf("creating root block: %w", err)
	}
	d.root = newBlock(BlockRoot)
	d.log.Debug("created directory",
		zap.Stringer("placement", o.placement),
		zap.Uint32("buckets", o.buckets),
		zap.Int("max_blocks", o.maxBlocks),
	)
	return d, nil
}

// Insert adds a regular file record. Names longer than MaxNameLen bytes are
// rejected with ErrInvalidName. Duplicate names are stored as independent
// records. A failed Insert leaves the directory unchanged.
func (d *Directory) Insert(name string, id uint32) error {
	return d.InsertKind(name, id, dirent.KindRegular)
}

// InsertKind is Insert with an explicit entry kind.
func (d *Directory) InsertKind(name string, id uint32, kind dirent.Kind) error {
	if d.closed() {
		return ErrClosed
	}
	if err := dirent.ValidateName(name); err != nil {
		return err
	}

	b, err := d.findOrCreateEntryBlock(Hash(name))
	if err != nil {
		return fmt.Errorf("inserting %q: %w", name, err)
	}
	err = b.appendDir(dirent.Record{
		ID:           id,
		RecordLength: DirRecordSize,
		NameLength:   uint8(len(name)),
		Kind:         kind,
		Name:         name,
	})
	if err != nil {
		return fmt.Errorf("inserting %q: %w", name, err)
	}
	d.records++
	return nil
}

// Find returns the first record named name, visiting entry blocks in
// creation order and records in insertion order.
func (d *Directory) Find(name string) (dirent.Record, bool) {
	if d.closed() || len(name) > MaxNameLen {
		return dirent.Record{}, false
	}
	for b := range d.candidates(name) {
		if i, ok := b.find(name); ok {
			return b.decodeDir(i), true
		}
	}
	return dirent.Record{}, false
}

// Count returns the number of records named name.
func (d *Directory) Count(name string) int {
	if d.closed() || len(name) > MaxNameLen {
		return 0
	}
	n := 0
	for b := range d.candidates(name) {
		n += b.count(name)
	}
	return n
}

// candidates yields the entry blocks that may hold name: all of them for
// FirstFit, only the blocks of the name's bucket for Hashed.
func (d *Directory) candidates(name string) iter.Seq[*Block] {
	return func(yield func(*Block) bool) {
		if d.opts.placement == Hashed {
			for ref := range d.bucketBlocks(Hash(name) % d.opts.buckets) {
				if !yield(d.entries[ref]) {
					return
				}
			}
			return
		}
		for _, b := range d.entries {
			if !yield(b) {
				return
			}
		}
	}
}

// Records iterates every record, entry blocks in creation order and records
// in insertion order.
func (d *Directory) Records() iter.Seq[dirent.Record] {
	return func(yield func(dirent.Record) bool) {
		for _, b := range d.entries {
			for rec := range b.Records() {
				if !yield(rec) {
					return
				}
			}
		}
	}
}

// Len returns the total number of records.
func (d *Directory) Len() int {
	return d.records
}

// EntryBlocks returns the number of entry blocks.
func (d *Directory) EntryBlocks() int {
	return len(d.entries)
}

// IndexBlocks returns the number of index blocks.
func (d *Directory) IndexBlocks() int {
	return len(d.index)
}

// EntryBlock returns entry block i in creation order.
func (d *Directory) EntryBlock(i int) (*Block, bool) {
	if i < 0 || i >= len(d.entries) {
		return nil, false
	}
	return d.entries[i], true
}

// Root returns the root block, or nil after Close.
func (d *Directory) Root() *Block {
	return d.root
}

// Pages returns a copy of every block's page image: the root first, then
// index blocks and entry blocks in creation order.
func (d *Directory) Pages() [][]byte {
	if d.closed() {
		return nil
	}
	pages := make([][]byte, 0, d.blockCount())
	pages = append(pages, d.root.Bytes())
	for _, b := range d.index {
		pages = append(pages, b.Bytes())
	}
	for _, b := range d.entries {
		pages = append(pages, b.Bytes())
	}
	return pages
}

// Placement returns the placement strategy the directory was created with.
func (d *Directory) Placement() Placement {
	return d.opts.placement
}

// Close releases the root block, every index block and every entry block.
// Closing twice returns ErrClosed.
func (d *Directory) Close() error {
	if d.closed() {
		return ErrClosed
	}
	d.log.Debug("closing directory",
		zap.Int("entry_blocks", len(d.entries)),
		zap.Int("index_blocks", len(d.index)),
		zap.Int("records", d.records),
	)
	clear(d.entries)
	clear(d.index)
	d.root = nil
	d.index = nil
	d.entries = nil
	d.records = 0
	return nil
}

func (d *Directory) closed() bool {
	return d.root == nil
}
