// Package bstdir implements a directory as an unbalanced binary search tree
// ordered by byte-wise name comparison.
//
// Inserting a name that is already present is accepted and leaves the
// existing node untouched. The tree is never rebalanced, so sorted input
// degrades it into a list.
package bstdir

import (
	"strings"
	"unsafe"

	"github.com/dendrascience/dirbench/dirent"
)

type node struct {
	id          uint32
	kind        dirent.Kind
	name        string
	left, right *node
}

// RecordSize is the in-memory size of one tree node header, reported as the
// record length of returned records.
const RecordSize = uint16(unsafe.Sizeof(node{}))

// Directory is a binary search tree directory. It is not safe for
// concurrent use.
type Directory struct {
	root      *node
	size      int
	nameBytes int
	closed    bool
}

var _ dirent.Directory = (*Directory)(nil)

// New returns an empty directory.
func New() *Directory {
	return &Directory{}
}

// Insert adds a regular file record. A name already in the tree is ignored.
func (d *Directory) Insert(name string, id uint32) error {
	if d.closed {
		return dirent.ErrClosed
	}
	if err := dirent.ValidateName(name); err != nil {
		return err
	}

	link := &d.root
	for *link != nil {
		switch c := strings.Compare(name, (*link).name); {
		case c < 0:
			link = &(*link).left
		case c > 0:
			link = &(*link).right
		default:
			return nil
		}
	}
	*link = &node{id: id, kind: dirent.KindRegular, name: name}
	d.size++
	d.nameBytes += len(name)
	return nil
}

// Find descends from the root comparing names.
func (d *Directory) Find(name string) (dirent.Record, bool) {
	n := d.root
	for n != nil {
		switch c := strings.Compare(name, n.name); {
		case c < 0:
			n = n.left
		case c > 0:
			n = n.right
		default:
			return dirent.Record{
				ID:           n.id,
				RecordLength: RecordSize,
				NameLength:   uint8(len(n.name)),
				Kind:         n.kind,
				Name:         n.name,
			}, true
		}
	}
	return dirent.Record{}, false
}

// Len returns the number of nodes in the tree.
func (d *Directory) Len() int {
	return d.size
}

// Height returns the number of nodes on the longest root to leaf path.
func (d *Directory) Height() int {
	type frame struct {
		n     *node
		depth int
	}
	height := 0
	stack := []frame{{d.root, 1}}
	for len(stack) > 0 {
		f := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		if f.n == nil {
			continue
		}
		height = max(height, f.depth)
		stack = append(stack, frame{f.n.left, f.depth + 1}, frame{f.n.right, f.depth + 1})
	}
	return height
}

// MemoryBytes estimates the memory held by the tree: one node per entry
// plus the name bytes.
func (d *Directory) MemoryBytes() int {
	return d.size*int(RecordSize) + d.nameBytes
}

// Close drops every node.
func (d *Directory) Close() error {
	if d.closed {
		return dirent.ErrClosed
	}
	d.root = nil
	d.size = 0
	d.nameBytes = 0
	d.closed = true
	return nil
}
