package htree

import (
	"encoding/binary"
	"errors"
	"fmt"
	"strings"
	"testing"

	"github.com/dendrascience/dirbench/dirent"
)

func TestLayoutConstants(t *testing.T) {
	tests := []struct {
		name string
		got  int
		want int
	}{
		{"DirRecordSize", DirRecordSize, 264},
		{"IndexRecordSize", IndexRecordSize, 8},
		{"EntriesPerBlock", EntriesPerBlock, 15},
		{"IndexEntriesPerBlock", IndexEntriesPerBlock, 510},
	}
	for _, tt := range tests {
		if tt.got != tt.want {
			t.Errorf("%s = %d, want %d", tt.name, tt.got, tt.want)
		}
	}
	if HeaderSize+EntriesPerBlock*DirRecordSize > BlockSize {
		t.Errorf("entry block overflows page: %d > %d", HeaderSize+EntriesPerBlock*DirRecordSize, BlockSize)
	}
	if HeaderSize+IndexEntriesPerBlock*IndexRecordSize > BlockSize {
		t.Errorf("index block overflows page: %d > %d", HeaderSize+IndexEntriesPerBlock*IndexRecordSize, BlockSize)
	}
}

func TestNewBlock(t *testing.T) {
	for _, kind := range []BlockType{BlockRoot, BlockIndex, BlockEntry} {
		t.Run(kind.String(), func(t *testing.T) {
			b := newBlock(kind)
			h := b.Header()
			if h.Type != kind {
				t.Errorf("Type = %s, want %s", h.Type, kind)
			}
			if h.EntryCount != 0 {
				t.Errorf("EntryCount = %d, want 0", h.EntryCount)
			}
			if h.FreeSpace != BlockSize-HeaderSize {
				t.Errorf("FreeSpace = %d, want %d", h.FreeSpace, BlockSize-HeaderSize)
			}
		})
	}
}

func TestBlock_AppendDir(t *testing.T) {
	b := newBlock(BlockEntry)

	for i := range EntriesPerBlock {
		rec := dirent.Record{ID: uint32(100 + i), Kind: dirent.KindRegular, Name: fmt.Sprintf("name-%02d", i)}
		if err := b.appendDir(rec); err != nil {
			t.Fatalf("appendDir(%d) error = %v", i, err)
		}
		h := b.Header()
		if int(h.EntryCount) != i+1 {
			t.Fatalf("after %d appends EntryCount = %d", i+1, h.EntryCount)
		}
		wantFree := uint32(BlockSize - HeaderSize - (i+1)*DirRecordSize)
		if h.FreeSpace != wantFree {
			t.Fatalf("after %d appends FreeSpace = %d, want %d", i+1, h.FreeSpace, wantFree)
		}
	}

	if !b.Full() {
		t.Fatal("block should be full")
	}
	err := b.appendDir(dirent.Record{ID: 1, Name: "overflow"})
	if !errors.Is(err, ErrBlockFull) {
		t.Errorf("appendDir on full block error = %v, want ErrBlockFull", err)
	}
	if b.Len() != EntriesPerBlock {
		t.Errorf("Len after rejected append = %d, want %d", b.Len(), EntriesPerBlock)
	}

	i := 0
	for rec := range b.Records() {
		want := fmt.Sprintf("name-%02d", i)
		if rec.Name != want || rec.ID != uint32(100+i) {
			t.Errorf("record %d = %v, want %s id %d", i, rec, want, 100+i)
		}
		if rec.RecordLength != DirRecordSize {
			t.Errorf("record %d RecordLength = %d, want %d", i, rec.RecordLength, DirRecordSize)
		}
		if int(rec.NameLength) != len(want) {
			t.Errorf("record %d NameLength = %d, want %d", i, rec.NameLength, len(want))
		}
		i++
	}
	if i != EntriesPerBlock {
		t.Errorf("Records yielded %d records, want %d", i, EntriesPerBlock)
	}
}

func TestBlock_WrongPayload(t *testing.T) {
	entry := newBlock(BlockEntry)
	if err := entry.appendIndex(IndexRecord{HashKey: 1, BlockRef: 2}); !errors.Is(err, ErrWrongBlockType) {
		t.Errorf("appendIndex on entry block error = %v, want ErrWrongBlockType", err)
	}

	for _, kind := range []BlockType{BlockRoot, BlockIndex} {
		b := newBlock(kind)
		if err := b.appendDir(dirent.Record{Name: "x"}); !errors.Is(err, ErrWrongBlockType) {
			t.Errorf("appendDir on %s block error = %v, want ErrWrongBlockType", kind, err)
		}
		if _, ok := b.Record(0); ok {
			t.Errorf("Record on %s block should report false", kind)
		}
		for range b.Records() {
			t.Errorf("Records on %s block should yield nothing", kind)
		}
	}
}

func TestBlock_AppendIndex(t *testing.T) {
	b := newBlock(BlockIndex)
	for i := range IndexEntriesPerBlock {
		if err := b.appendIndex(IndexRecord{HashKey: uint32(i % 7), BlockRef: uint32(i)}); err != nil {
			t.Fatalf("appendIndex(%d) error = %v", i, err)
		}
	}
	if b.FreeSpace() != BlockSize-HeaderSize-IndexEntriesPerBlock*IndexRecordSize {
		t.Errorf("FreeSpace = %d", b.FreeSpace())
	}
	if err := b.appendIndex(IndexRecord{}); !errors.Is(err, ErrBlockFull) {
		t.Errorf("appendIndex on full block error = %v, want ErrBlockFull", err)
	}
	rec, ok := b.IndexRecord(509)
	if !ok || rec.HashKey != 509%7 || rec.BlockRef != 509 {
		t.Errorf("IndexRecord(509) = %+v, %v", rec, ok)
	}
	if _, ok := b.IndexRecord(510); ok {
		t.Error("IndexRecord(510) should be out of range")
	}
}

func TestBlock_ByteLayout(t *testing.T) {
	b := newBlock(BlockEntry)
	if err := b.appendDir(dirent.Record{ID: 0x01020304, Kind: dirent.KindRegular, Name: "file1.txt"}); err != nil {
		t.Fatal(err)
	}
	page := b.Bytes()
	if len(page) != BlockSize {
		t.Fatalf("len(Bytes()) = %d, want %d", len(page), BlockSize)
	}

	if got := binary.LittleEndian.Uint32(page[0:]); got != uint32(BlockEntry) {
		t.Errorf("header type = %d, want %d", got, BlockEntry)
	}
	if got := binary.LittleEndian.Uint32(page[4:]); got != 1 {
		t.Errorf("header count = %d, want 1", got)
	}
	if got := binary.LittleEndian.Uint32(page[8:]); got != BlockSize-HeaderSize-DirRecordSize {
		t.Errorf("header free = %d", got)
	}

	rec := page[HeaderSize:]
	if got := binary.LittleEndian.Uint32(rec[0:]); got != 0x01020304 {
		t.Errorf("record id = %#x", got)
	}
	if got := binary.LittleEndian.Uint16(rec[4:]); got != DirRecordSize {
		t.Errorf("record rec_len = %d", got)
	}
	if rec[6] != 9 || rec[7] != uint8(dirent.KindRegular) {
		t.Errorf("record name_len/kind = %d/%d", rec[6], rec[7])
	}
	if got := string(rec[8:17]); got != "file1.txt" {
		t.Errorf("record name = %q", got)
	}

	// Bytes returns a copy.
	page[0] = 0xEE
	if b.Type() != BlockEntry {
		t.Error("mutating Bytes() result changed the block")
	}
}

func TestBlock_MaxLengthName(t *testing.T) {
	b := newBlock(BlockEntry)
	name := strings.Repeat("n", MaxNameLen)
	if err := b.appendDir(dirent.Record{ID: 7, Name: name}); err != nil {
		t.Fatalf("appendDir(254-byte name) error = %v", err)
	}
	rec, ok := b.Record(0)
	if !ok || rec.Name != name || rec.NameLength != MaxNameLen {
		t.Errorf("Record(0) = %q (len %d), %v", rec.Name, rec.NameLength, ok)
	}
	if err := b.appendDir(dirent.Record{ID: 8, Name: name + "n"}); !errors.Is(err, ErrInvalidName) {
		t.Errorf("appendDir(255-byte name) error = %v, want ErrInvalidName", err)
	}
}

func TestBlock_Find(t *testing.T) {
	b := newBlock(BlockEntry)
	for i, n := range []string{"alpha", "beta", "alpha", "gamma"} {
		if err := b.appendDir(dirent.Record{ID: uint32(i), Name: n}); err != nil {
			t.Fatal(err)
		}
	}
	if i, ok := b.find("alpha"); !ok || i != 0 {
		t.Errorf("find(alpha) = %d, %v, want 0, true", i, ok)
	}
	if _, ok := b.find("alph"); ok {
		t.Error("find(alph) matched a prefix")
	}
	if _, ok := b.find("alphabet"); ok {
		t.Error("find(alphabet) matched a longer name")
	}
	if got := b.count("alpha"); got != 2 {
		t.Errorf("count(alpha) = %d, want 2", got)
	}
}

func recordFor(name string, id uint32) dirent.Record {
	return dirent.Record{ID: id, Kind: dirent.KindRegular, Name: name}
}
