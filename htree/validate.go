package htree

import (
	"fmt"
	"slices"

	"github.com/hashicorp/go-multierror"
)

// Validate checks the structural invariants of every block:
//   - the header type matches the collection holding the block
//   - entry_count <= capacity
//   - free_space == BlockSize - HeaderSize - entry_count*record_size
//   - stored names are at most MaxNameLen bytes
//   - with Hashed placement, every entry block is routed exactly once, to
//     the bucket of every name it holds
//
// All violations found are returned together.
func (d *Directory) Validate() error {
	if d.closed() {
		return ErrClosed
	}

	var result *multierror.Error
	result = multierror.Append(result, validateBlock("root", d.root, BlockRoot)...)
	for i, b := range d.index {
		result = multierror.Append(result, validateBlock(fmt.Sprintf("index block %d", i), b, BlockIndex)...)
	}

	total := 0
	for i, b := range d.entries {
		label := fmt.Sprintf("entry block %d", i)
		result = multierror.Append(result, validateBlock(label, b, BlockEntry)...)
		for j := range min(b.Len(), b.Capacity()) {
			if n := int(b.slot(j)[dirOffNameLen]); n > MaxNameLen {
				result = multierror.Append(result, fmt.Errorf("%s record %d: name length %d exceeds %d", label, j, n, MaxNameLen))
			}
		}
		total += b.Len()
	}
	if total != d.records {
		result = multierror.Append(result, fmt.Errorf("record count %d does not match blocks holding %d", d.records, total))
	}

	if d.opts.placement == Hashed {
		result = multierror.Append(result, d.validateRouting()...)
	} else if d.root.Len() != 0 || len(d.index) != 0 {
		result = multierror.Append(result, fmt.Errorf("first-fit directory has %d root records and %d index blocks", d.root.Len(), len(d.index)))
	}

	return result.ErrorOrNil()
}

func validateBlock(label string, b *Block, want BlockType) []error {
	var errs []error
	h := b.Header()
	if h.Type != want {
		errs = append(errs, fmt.Errorf("%s: type %s, want %s", label, h.Type, want))
	}
	if int(h.EntryCount) > b.Capacity() {
		errs = append(errs, fmt.Errorf("%s: entry count %d exceeds capacity %d", label, h.EntryCount, b.Capacity()))
	}
	wantFree := blockPayload - int(h.EntryCount)*b.RecordSize()
	if int(h.FreeSpace) != wantFree {
		errs = append(errs, fmt.Errorf("%s: free space %d, want %d", label, h.FreeSpace, wantFree))
	}
	return errs
}

func (d *Directory) validateRouting() []error {
	var errs []error
	routed := make(map[uint32]uint32, len(d.entries))

	for i, rr := range slices.Collect(d.root.IndexRecords()) {
		if int(rr.BlockRef) >= len(d.index) {
			errs = append(errs, fmt.Errorf("root record %d: index block %d out of range", i, rr.BlockRef))
			continue
		}
		for ir := range d.index[rr.BlockRef].IndexRecords() {
			if int(ir.BlockRef) >= len(d.entries) {
				errs = append(errs, fmt.Errorf("index block %d: entry block %d out of range", rr.BlockRef, ir.BlockRef))
				continue
			}
			if _, dup := routed[ir.BlockRef]; dup {
				errs = append(errs, fmt.Errorf("entry block %d routed more than once", ir.BlockRef))
			}
			routed[ir.BlockRef] = ir.HashKey
		}
	}
	if d.root.Len() != len(d.index) {
		errs = append(errs, fmt.Errorf("root routes %d index blocks, directory holds %d", d.root.Len(), len(d.index)))
	}

	for i, b := range d.entries {
		bucket, ok := routed[uint32(i)]
		if !ok {
			errs = append(errs, fmt.Errorf("entry block %d is not routed", i))
			continue
		}
		for rec := range b.Records() {
			if got := Hash(rec.Name) % d.opts.buckets; got != bucket {
				errs = append(errs, fmt.Errorf("entry block %d: %q hashes to bucket %d, block routed to %d", i, rec.Name, got, bucket))
			}
		}
	}
	return errs
}
