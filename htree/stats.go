package htree

// Stats summarizes the shape of a directory.
type Stats struct {
	Placement    string  `json:"placement"`
	Buckets      int     `json:"buckets,omitempty"`
	Records      int     `json:"records"`
	RootRecords  int     `json:"root_records"`
	IndexBlocks  int     `json:"index_blocks"`
	EntryBlocks  int     `json:"entry_blocks"`
	BlockBytes   int     `json:"block_bytes"` // (1 + index + entry) * BlockSize
	FillRatio    float64 `json:"fill_ratio"`  // records / entry slots
	FullBlocks   int     `json:"full_blocks"`
	BlockCounts  []int   `json:"block_counts"` // records per entry block, creation order
	BucketsInUse int     `json:"buckets_in_use,omitempty"`
}

// Stats returns block and record counts for the directory.
func (d *Directory) Stats() Stats {
	s := Stats{
		Placement:   d.opts.placement.String(),
		Records:     d.records,
		IndexBlocks: len(d.index),
		EntryBlocks: len(d.entries),
		BlockBytes:  d.blockCount() * BlockSize,
		BlockCounts: make([]int, 0, len(d.entries)),
	}
	if d.root != nil {
		s.RootRecords = d.root.Len()
	}
	for _, b := range d.entries {
		s.BlockCounts = append(s.BlockCounts, b.Len())
		if b.Full() {
			s.FullBlocks++
		}
	}
	if len(d.entries) > 0 {
		s.FillRatio = float64(d.records) / float64(len(d.entries)*EntriesPerBlock)
	}

	if d.opts.placement == Hashed {
		s.Buckets = int(d.opts.buckets)
		seen := make(map[uint32]bool)
		for _, ib := range d.index {
			for ir := range ib.IndexRecords() {
				seen[ir.HashKey] = true
			}
		}
		s.BucketsInUse = len(seen)
	}
	return s
}

// MemoryBytes returns the memory held by the directory's blocks.
func (d *Directory) MemoryBytes() int {
	return d.blockCount() * BlockSize
}
