package htree

import (
	"errors"
	"fmt"
	"testing"

	"github.com/hashicorp/go-multierror"
)

func TestValidate_ReportsEveryViolation(t *testing.T) {
	d := newTestDirectory(t)
	for i := range EntriesPerBlock * 3 {
		if err := d.Insert(fmt.Sprintf("v%d", i), uint32(i)); err != nil {
			t.Fatal(err)
		}
	}
	if err := d.Validate(); err != nil {
		t.Fatalf("Validate() on healthy directory = %v", err)
	}

	// Corrupt two blocks independently.
	b0 := d.entries[0]
	h := b0.Header()
	h.FreeSpace += 4
	b0.setHeader(h)

	b2 := d.entries[2]
	h = b2.Header()
	h.Type = BlockIndex
	b2.setHeader(h)

	err := d.Validate()
	if err == nil {
		t.Fatal("Validate() should fail on corrupted blocks")
	}
	var merr *multierror.Error
	if !errors.As(err, &merr) {
		t.Fatalf("Validate() error type = %T, want *multierror.Error", err)
	}
	// Block 0: free space. Block 2: type, and as an index-typed block its
	// capacity and record size no longer match its header.
	if len(merr.Errors) < 2 {
		t.Errorf("Validate() reported %d violations, want at least 2: %v", len(merr.Errors), err)
	}
}

func TestValidate_RecordCountMismatch(t *testing.T) {
	d := newTestDirectory(t)
	if err := d.Insert("a", 1); err != nil {
		t.Fatal(err)
	}
	d.records = 5
	if err := d.Validate(); err == nil {
		t.Error("Validate() should report a record count mismatch")
	}
}

func TestValidate_HashedRouting(t *testing.T) {
	const buckets = 8
	d := newTestDirectory(t, WithPlacement(Hashed), WithBuckets(buckets))
	names := namesInBuckets(t, buckets, 2)
	for i, n := range names {
		if err := d.Insert(n, uint32(i)); err != nil {
			t.Fatal(err)
		}
	}
	if err := d.Validate(); err != nil {
		t.Fatalf("Validate() = %v", err)
	}

	// Store a name in the wrong bucket's block behind the allocator's back.
	wrong := namesInBucket(t, buckets, (Hash(names[0])+1)%buckets, 1)[0]
	b0 := d.entries[0]
	if err := b0.appendDir(recordFor(wrong, 99)); err != nil {
		t.Fatal(err)
	}
	d.records++
	if err := d.Validate(); err == nil {
		t.Error("Validate() should report a misrouted record")
	}
}
