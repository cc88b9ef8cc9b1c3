package listdir

import (
	"errors"
	"fmt"
	"strings"
	"testing"

	"github.com/dendrascience/dirbench/dirent"
)

func TestDirectory_InsertFind(t *testing.T) {
	d := New()
	files := map[string]uint32{"file1.txt": 1001, "file2.txt": 1002, "file3.txt": 1003}
	for name, id := range files {
		if err := d.Insert(name, id); err != nil {
			t.Fatalf("Insert(%q) error = %v", name, err)
		}
	}

	tests := []struct {
		name   string
		wantID uint32
		wantOK bool
	}{
		{"file1.txt", 1001, true},
		{"file2.txt", 1002, true},
		{"file3.txt", 1003, true},
		{"missing.txt", 0, false},
		{"", 0, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec, ok := d.Find(tt.name)
			if ok != tt.wantOK {
				t.Fatalf("Find(%q) ok = %v, want %v", tt.name, ok, tt.wantOK)
			}
			if ok && (rec.ID != tt.wantID || rec.Name != tt.name || rec.Kind != dirent.KindRegular) {
				t.Errorf("Find(%q) = %v", tt.name, rec)
			}
		})
	}
	if d.Len() != 3 {
		t.Errorf("Len() = %d, want 3", d.Len())
	}
}

func TestDirectory_DuplicateReturnsLatest(t *testing.T) {
	d := New()
	d.Insert("dup", 1)
	d.Insert("other", 2)
	d.Insert("dup", 3)

	rec, ok := d.Find("dup")
	if !ok || rec.ID != 3 {
		t.Errorf("Find(dup) = %v, %v, want id 3", rec, ok)
	}
	if d.Len() != 3 {
		t.Errorf("Len() = %d, want 3", d.Len())
	}
}

func TestDirectory_InvalidName(t *testing.T) {
	d := New()
	err := d.Insert(strings.Repeat("x", dirent.MaxNameLen+1), 1)
	if !errors.Is(err, dirent.ErrInvalidName) {
		t.Fatalf("Insert() error = %v, want ErrInvalidName", err)
	}
	if d.Len() != 0 {
		t.Errorf("Len() = %d after rejected insert", d.Len())
	}
}

func TestDirectory_Close(t *testing.T) {
	d := New()
	for i := range 10 {
		d.Insert(fmt.Sprintf("f%d", i), uint32(i))
	}
	if err := d.Close(); err != nil {
		t.Fatal(err)
	}
	if _, ok := d.Find("f1"); ok {
		t.Error("Find after Close should report not found")
	}
	if err := d.Insert("x", 1); !errors.Is(err, dirent.ErrClosed) {
		t.Errorf("Insert after Close error = %v, want ErrClosed", err)
	}
	if err := d.Close(); !errors.Is(err, dirent.ErrClosed) {
		t.Errorf("second Close() error = %v, want ErrClosed", err)
	}
}

func TestDirectory_MemoryBytes(t *testing.T) {
	d := New()
	d.Insert("abc", 1)
	d.Insert("de", 2)
	if got, want := d.MemoryBytes(), 2*int(RecordSize)+5; got != want {
		t.Errorf("MemoryBytes() = %d, want %d", got, want)
	}
}
