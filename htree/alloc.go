package htree

import (
	"fmt"
	"iter"

	"go.uber.org/zap"
)

// blockCount returns the number of blocks the directory currently holds.
func (d *Directory) blockCount() int {
	n := len(d.index) + len(d.entries)
	if d.root != nil {
		n++
	}
	return n
}

// reserve reports ErrOutOfMemory if n more blocks would exceed the block cap.
// It never mutates the directory.
func (d *Directory) reserve(n int) error {
	if d.opts.maxBlocks == 0 {
		return nil
	}
	if d.blockCount()+n > d.opts.maxBlocks {
		return fmt.Errorf("%w: need %d more block(s), limit is %d", ErrOutOfMemory, n, d.opts.maxBlocks)
	}
	return nil
}

// findOrCreateEntryBlock returns an entry block with at least one free slot,
// allocating and linking a new one when none qualifies. Either the new
// block (and any routing it needs) is fully linked in, or nothing changes.
func (d *Directory) findOrCreateEntryBlock(hashKey uint32) (*Block, error) {
	if d.opts.placement == Hashed {
		return d.findOrCreateHashed(hashKey % d.opts.buckets)
	}
	return d.findOrCreateFirstFit()
}

// findOrCreateFirstFit returns the first entry block, in creation order,
// with a free slot.
func (d *Directory) findOrCreateFirstFit() (*Block, error) {
	for _, b := range d.entries {
		if !b.Full() {
			return b, nil
		}
	}
	if err := d.reserve(1); err != nil {
		return nil, err
	}
	b := newBlock(BlockEntry)
	d.entries = append(d.entries, b)
	d.log.Debug("allocated entry block",
		zap.Int("block", len(d.entries)-1),
		zap.Stringer("placement", d.opts.placement),
	)
	return b, nil
}

// findOrCreateHashed returns the first non-full entry block routed to
// bucket. A new entry block is routed through the last index block, and a
// new index block is registered in the root when that one is full.
func (d *Directory) findOrCreateHashed(bucket uint32) (*Block, error) {
	for ref := range d.bucketBlocks(bucket) {
		if b := d.entries[ref]; !b.Full() {
			return b, nil
		}
	}

	// The routing record for the new entry block goes into the last index
	// block, or into a fresh one registered in the root.
	needIndex := d.lastIndex() == nil || d.lastIndex().Full()
	if needIndex && d.root.Full() {
		return nil, fmt.Errorf("%w: root index holds %d index blocks", ErrOutOfMemory, IndexEntriesPerBlock)
	}
	need := 1
	if needIndex {
		need++
	}
	if err := d.reserve(need); err != nil {
		return nil, err
	}

	entry := newBlock(BlockEntry)
	entryRef := uint32(len(d.entries))

	// Routing records are written before anything is linked in. A rejected
	// write into the fresh, still unlinked index block, or into the root
	// ahead of linking, leaves the directory as it was.
	target := d.lastIndex()
	if needIndex {
		target = newBlock(BlockIndex)
	}
	if err := target.appendIndex(IndexRecord{HashKey: bucket, BlockRef: entryRef}); err != nil {
		return nil, err
	}
	if needIndex {
		indexRef := uint32(len(d.index))
		if err := d.root.appendIndex(IndexRecord{HashKey: bucket, BlockRef: indexRef}); err != nil {
			return nil, err
		}
		d.index = append(d.index, target)
		d.log.Debug("allocated index block",
			zap.Uint32("block", indexRef),
			zap.Uint32("bucket", bucket),
		)
	}
	d.entries = append(d.entries, entry)
	d.log.Debug("allocated entry block",
		zap.Uint32("block", entryRef),
		zap.Uint32("bucket", bucket),
		zap.Stringer("placement", d.opts.placement),
	)
	return entry, nil
}

func (d *Directory) lastIndex() *Block {
	if len(d.index) == 0 {
		return nil
	}
	return d.index[len(d.index)-1]
}

// bucketBlocks yields, in creation order, the numbers of the entry blocks
// routed to bucket by the index blocks.
func (d *Directory) bucketBlocks(bucket uint32) iter.Seq[int] {
	return func(yield func(int) bool) {
		for rr := range d.root.IndexRecords() {
			for ir := range d.index[rr.BlockRef].IndexRecords() {
				if ir.HashKey != bucket {
					continue
				}
				if !yield(int(ir.BlockRef)) {
					return
				}
			}
		}
	}
}
