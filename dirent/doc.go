// Package dirent defines the directory entry contract shared by every
// directory implementation in dirbench.
//
// A directory maps a bounded byte-sequence name to an opaque numeric
// identifier (an inode number in a real filesystem). The three
// implementations compared by the benchmark harness are:
//
//   - htree: fixed-size 4096-byte blocks with a header/record layout
//   - listdir: a singly linked list of entries
//   - bstdir: an unbalanced binary search tree ordered by name
//
// All of them accept names of at most MaxNameLen bytes and reject longer
// names with ErrInvalidName instead of truncating them.
package dirent
