package main

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"
)

func TestSplitColumnsExactFit(t *testing.T) {
	data := []byte("0123456789ABCDEF") // 16 bytes
	cols := splitColumns(data, 4)
	if len(cols) != 4 {
		t.Fatalf("len(cols) = %d, want 4", len(cols))
	}
	for _, c := range cols {
		if len(c) != 4 {
			t.Fatalf("column length = %d, want 4", len(c))
		}
	}
	if !bytes.Equal(cols[0], []byte("0123")) {
		t.Fatalf("cols[0] = %q, want %q", cols[0], "0123")
	}
}

func TestSplitColumnsShortFinal(t *testing.T) {
	data := []byte("0123456789")
	cols := splitColumns(data, 4) // symbolLen = ceil(10/4) = 3
	if len(cols) != 4 {
		t.Fatalf("len(cols) = %d, want 4", len(cols))
	}
	total := 0
	for _, c := range cols {
		total += len(c)
	}
	if total != len(data) {
		t.Fatalf("columns total %d bytes, want %d", total, len(data))
	}
	if len(cols[3]) == 0 || len(cols[3]) >= 3 {
		t.Fatalf("final column length = %d, want 1..2", len(cols[3]))
	}
}

func TestManifestRoundTrip(t *testing.T) {
	dir := t.TempDir()
	m := manifest{N: 12, TotalBytes: 4096, Compressed: true}
	if err := writeManifest(dir, m); err != nil {
		t.Fatalf("writeManifest: %v", err)
	}
	if _, err := os.Stat(filepath.Join(dir, "manifest.json")); err != nil {
		t.Fatalf("manifest.json not written: %v", err)
	}
	got, err := readManifest(dir)
	if err != nil {
		t.Fatalf("readManifest: %v", err)
	}
	if got != m {
		t.Fatalf("readManifest = %+v, want %+v", got, m)
	}
}
