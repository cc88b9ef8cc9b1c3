package dirent

import "fmt"

// MaxNameLen is the longest name, in bytes, a directory accepts.
// The on-block name field is 255 bytes wide; one byte is kept in reserve so
// a stored name is always followed by at least one zero byte.
const MaxNameLen = 254

// Kind is the file type recorded alongside a name. Values follow the ext
// family's directory entry file_type codes.
type Kind uint8

const (
	KindUnknown Kind = 0
	KindRegular Kind = 1
	KindDir     Kind = 2
	KindSymlink Kind = 7
)

func (k Kind) String() string {
	switch k {
	case KindRegular:
		return "regular"
	case KindDir:
		return "dir"
	case KindSymlink:
		return "symlink"
	default:
		return "unknown"
	}
}

// Record is one name to identifier mapping as returned by a lookup.
type Record struct {
	ID           uint32 // opaque identifier, e.g. an inode number
	RecordLength uint16 // bytes occupied by the record in its container
	NameLength   uint8  // length of Name in bytes
	Kind         Kind   // entry file type
	Name         string // entry name
}

func (r Record) String() string {
	return fmt.Sprintf("%s (id: %d, kind: %s, rec_len: %d)", r.Name, r.ID, r.Kind, r.RecordLength)
}

// Directory is the contract every directory implementation satisfies so the
// benchmark harness can swap them freely.
type Directory interface {
	// Insert adds a name to identifier mapping. Duplicate names are allowed.
	Insert(name string, id uint32) error
	// Find returns the record for name, reporting false if none exists.
	Find(name string) (Record, bool)
	// Len returns the number of records stored.
	Len() int
	// Close releases every resource held by the directory.
	Close() error
}

// ValidateName reports ErrInvalidName if name is longer than MaxNameLen.
func ValidateName(name string) error {
	if len(name) > MaxNameLen {
		return fmt.Errorf("%w: %d bytes exceeds maximum of %d", ErrInvalidName, len(name), MaxNameLen)
	}
	return nil
}
