package bstdir

import (
	"errors"
	"fmt"
	"strings"
	"testing"

	"github.com/dendrascience/dirbench/dirent"
)

func TestDirectory_InsertFind(t *testing.T) {
	d := New()
	for i, name := range []string{"file2.txt", "file1.txt", "file3.txt"} {
		if err := d.Insert(name, uint32(1001+i)); err != nil {
			t.Fatalf("Insert(%q) error = %v", name, err)
		}
	}

	tests := []struct {
		name   string
		wantID uint32
		wantOK bool
	}{
		{"file2.txt", 1001, true},
		{"file1.txt", 1002, true},
		{"file3.txt", 1003, true},
		{"missing.txt", 0, false},
		{"file", 0, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec, ok := d.Find(tt.name)
			if ok != tt.wantOK {
				t.Fatalf("Find(%q) ok = %v, want %v", tt.name, ok, tt.wantOK)
			}
			if ok && rec.ID != tt.wantID {
				t.Errorf("Find(%q).ID = %d, want %d", tt.name, rec.ID, tt.wantID)
			}
		})
	}
	if d.Height() != 2 {
		t.Errorf("Height() = %d, want 2", d.Height())
	}
}

func TestDirectory_DuplicateKeepsFirst(t *testing.T) {
	d := New()
	d.Insert("dup", 1)
	if err := d.Insert("dup", 2); err != nil {
		t.Fatalf("duplicate Insert() error = %v", err)
	}
	rec, ok := d.Find("dup")
	if !ok || rec.ID != 1 {
		t.Errorf("Find(dup) = %v, %v, want id 1", rec, ok)
	}
	if d.Len() != 1 {
		t.Errorf("Len() = %d, want 1", d.Len())
	}
}

func TestDirectory_SortedInputDegenerates(t *testing.T) {
	d := New()
	for i := range 200 {
		if err := d.Insert(fmt.Sprintf("%05d", i), uint32(i)); err != nil {
			t.Fatal(err)
		}
	}
	if d.Height() != 200 {
		t.Errorf("Height() = %d, want 200", d.Height())
	}
	if rec, ok := d.Find("00199"); !ok || rec.ID != 199 {
		t.Errorf("Find(00199) = %v, %v", rec, ok)
	}
}

func TestDirectory_InvalidName(t *testing.T) {
	d := New()
	err := d.Insert(strings.Repeat("x", dirent.MaxNameLen+1), 1)
	if !errors.Is(err, dirent.ErrInvalidName) {
		t.Fatalf("Insert() error = %v, want ErrInvalidName", err)
	}
	if d.Len() != 0 || d.Height() != 0 {
		t.Errorf("rejected insert changed the tree: len %d height %d", d.Len(), d.Height())
	}
}

func TestDirectory_Close(t *testing.T) {
	d := New()
	d.Insert("a", 1)
	if err := d.Close(); err != nil {
		t.Fatal(err)
	}
	if _, ok := d.Find("a"); ok {
		t.Error("Find after Close should report not found")
	}
	if err := d.Close(); !errors.Is(err, dirent.ErrClosed) {
		t.Errorf("second Close() error = %v, want ErrClosed", err)
	}
}
