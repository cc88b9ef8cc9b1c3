// Command dirbench builds and benchmarks block-structured directories.
//
// An H-tree directory stores fixed-size entry records in 4096-byte blocks,
// 15 to a block, and finds names by scanning those blocks. dirbench compares
// it with an in-memory linked list and an unbalanced binary search tree:
//
//	dirbench demo                      insert and look up a few names
//	dirbench bench --files 10000       time inserts and random lookups
//	dirbench names --style uuid -n 5   print generated filenames
//	dirbench walk ./data               load a real directory tree
//	dirbench stats --placement hashed  show block usage and hash spread
//	dirbench shell                     interactive directory session
package main
