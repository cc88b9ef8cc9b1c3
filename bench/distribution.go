package bench

import (
	"math"

	"github.com/dendrascience/dirbench/htree"
	"github.com/taigrr/colorhash"
)

// Spread describes how a set of names falls into hash buckets.
type Spread struct {
	Hash    string  `json:"hash"`
	Buckets int     `json:"buckets"`
	Names   int     `json:"names"`
	Empty   int     `json:"empty"`
	Min     int     `json:"min"`
	Max     int     `json:"max"`
	Mean    float64 `json:"mean"`
	StdDev  float64 `json:"stddev"`
	Counts  []int   `json:"-"`
}

// Distribution buckets names with the H-tree hash and, as a reference,
// with colorhash as a reference string hash. buckets is clamped to the
// range htree.WithBuckets accepts.
func Distribution(names []string, buckets int) []Spread {
	buckets = min(max(buckets, 1), htree.MaxBuckets)
	return []Spread{
		spread("htree", names, buckets, func(s string) uint64 { return uint64(htree.Hash(s)) }),
		spread("colorhash", names, buckets, func(s string) uint64 { return uint64(colorhash.HashString(s)) }),
	}
}

func spread(label string, names []string, buckets int, hash func(string) uint64) Spread {
	s := Spread{Hash: label, Buckets: buckets, Names: len(names), Counts: make([]int, buckets)}
	for _, n := range names {
		s.Counts[hash(n)%uint64(buckets)]++
	}

	s.Min = math.MaxInt
	for _, c := range s.Counts {
		if c == 0 {
			s.Empty++
		}
		s.Min = min(s.Min, c)
		s.Max = max(s.Max, c)
	}
	s.Mean = float64(len(names)) / float64(buckets)
	var sq float64
	for _, c := range s.Counts {
		d := float64(c) - s.Mean
		sq += d * d
	}
	s.StdDev = math.Sqrt(sq / float64(buckets))
	return s
}
