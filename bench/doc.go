// Package bench compares directory implementations by wall-clock time.
//
// A Generator produces random filenames, Run inserts them into each
// selected implementation and then times a batch of random lookups, and the
// resulting Report can be printed or saved as JSON. Distribution reports how
// evenly a set of names spreads over hash buckets.
package bench
