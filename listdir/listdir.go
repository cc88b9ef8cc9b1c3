// Package listdir implements a directory as a singly linked list of
// entries, the traditional unindexed directory layout.
//
// New entries are pushed at the head, so lookups return the most recently
// inserted record of a duplicated name. Lookup cost is linear in the number
// of entries.
package listdir

import (
	"unsafe"

	"github.com/dendrascience/dirbench/dirent"
)

type entry struct {
	id   uint32
	kind dirent.Kind
	name string
	next *entry
}

// RecordSize is the in-memory size of one list node header, reported as the
// record length of returned records.
const RecordSize = uint16(unsafe.Sizeof(entry{}))

// Directory is a linked list directory. It is not safe for concurrent use.
type Directory struct {
	head      *entry
	size      int
	nameBytes int
	closed    bool
}

var _ dirent.Directory = (*Directory)(nil)

// New returns an empty directory.
func New() *Directory {
	return &Directory{}
}

// Insert pushes a regular file record at the head of the list.
func (d *Directory) Insert(name string, id uint32) error {
	if d.closed {
		return dirent.ErrClosed
	}
	if err := dirent.ValidateName(name); err != nil {
		return err
	}
	d.head = &entry{id: id, kind: dirent.KindRegular, name: name, next: d.head}
	d.size++
	d.nameBytes += len(name)
	return nil
}

// Find walks the list from the head and returns the first match.
func (d *Directory) Find(name string) (dirent.Record, bool) {
	for e := d.head; e != nil; e = e.next {
		if e.name == name {
			return e.record(), true
		}
	}
	return dirent.Record{}, false
}

// Len returns the number of entries.
func (d *Directory) Len() int {
	return d.size
}

// MemoryBytes estimates the memory held by the list: one node per entry
// plus the name bytes.
func (d *Directory) MemoryBytes() int {
	return d.size*int(RecordSize) + d.nameBytes
}

// Close drops every entry.
func (d *Directory) Close() error {
	if d.closed {
		return dirent.ErrClosed
	}
	d.head = nil
	d.size = 0
	d.nameBytes = 0
	d.closed = true
	return nil
}

func (e *entry) record() dirent.Record {
	return dirent.Record{
		ID:           e.id,
		RecordLength: RecordSize,
		NameLength:   uint8(len(e.name)),
		Kind:         e.kind,
		Name:         e.name,
	}
}
