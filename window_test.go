package fecal

import "testing"

func makeOriginals(n, symbolLen int) [][]byte {
	cols := make([][]byte, n)
	for i := range cols {
		buf := make([]byte, symbolLen)
		for j := range buf {
			buf[j] = byte((i*31 + j*7) & 0xFF)
		}
		cols[i] = buf
	}
	return cols
}

func TestNewWindowExactFit(t *testing.T) {
	cols := makeOriginals(4, 10)
	w, err := newWindow(cols, 40)
	if err != nil {
		t.Fatalf("newWindow: %v", err)
	}
	if w.symbolLen != 10 || w.finalLen != 10 {
		t.Fatalf("symbolLen=%d finalLen=%d, want 10,10", w.symbolLen, w.finalLen)
	}
}

func TestNewWindowShortFinalColumn(t *testing.T) {
	cols := [][]byte{
		make([]byte, 10),
		make([]byte, 10),
		make([]byte, 8), // short final column
	}
	w, err := newWindow(cols, 28)
	if err != nil {
		t.Fatalf("newWindow: %v", err)
	}
	if w.symbolLen != 10 {
		t.Fatalf("symbolLen = %d, want 10", w.symbolLen)
	}
	if w.finalLen != 8 {
		t.Fatalf("finalLen = %d, want 8", w.finalLen)
	}
	if !w.isFinalColumn(2) {
		t.Fatal("column 2 should be the final column")
	}
	if w.isFinalColumn(1) {
		t.Fatal("column 1 should not be the final column")
	}
}

func TestNewWindowRejectsEmpty(t *testing.T) {
	if _, err := newWindow(nil, 0); err != ErrInvalidInput {
		t.Fatalf("newWindow(nil, 0) = %v, want ErrInvalidInput", err)
	}
}

func TestNewWindowRejectsTotalBytesTooSmall(t *testing.T) {
	cols := makeOriginals(4, 10)
	if _, err := newWindow(cols, 2); err != ErrInvalidInput {
		t.Fatalf("newWindow with totalBytes < n = %v, want ErrInvalidInput", err)
	}
}

func TestNewWindowRejectsNilColumn(t *testing.T) {
	cols := makeOriginals(4, 10)
	cols[2] = nil
	if _, err := newWindow(cols, 40); err != ErrInvalidInput {
		t.Fatalf("newWindow with nil column = %v, want ErrInvalidInput", err)
	}
}

func TestIsFinalColumn(t *testing.T) {
	if !IsFinalColumn(5, 4) {
		t.Fatal("column 4 of 5 should be final")
	}
	if IsFinalColumn(5, 3) {
		t.Fatal("column 3 of 5 should not be final")
	}
}

func TestCopyColumnZeroPadsShortFinalColumn(t *testing.T) {
	cols := [][]byte{
		{1, 2, 3, 4},
		{5, 6, 7}, // short final column, symbolLen=4, finalLen=3
	}
	w, err := newWindow(cols, 7)
	if err != nil {
		t.Fatalf("newWindow: %v", err)
	}
	dst := make([]byte, w.symbolLen)
	w.copyColumn(dst, 1)
	want := []byte{5, 6, 7, 0}
	for i, v := range want {
		if dst[i] != v {
			t.Fatalf("copyColumn: byte %d = %d, want %d", i, dst[i], v)
		}
	}
}

func TestEffectiveLen(t *testing.T) {
	cols := [][]byte{
		{1, 2, 3, 4},
		{5, 6, 7},
	}
	w, err := newWindow(cols, 7)
	if err != nil {
		t.Fatalf("newWindow: %v", err)
	}
	if got := w.effectiveLen(0); got != 4 {
		t.Fatalf("effectiveLen(0) = %d, want 4", got)
	}
	if got := w.effectiveLen(1); got != 3 {
		t.Fatalf("effectiveLen(1) = %d, want 3", got)
	}
}
