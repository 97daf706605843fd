package fecal_test

import (
	"bytes"
	"testing"

	"github.com/xtaci/fecal"
	"github.com/xtaci/fecal/decoder"
)

func buildOriginals(n, symbolLen int, seed byte) [][]byte {
	cols := make([][]byte, n)
	for i := range cols {
		buf := make([]byte, symbolLen)
		for j := range buf {
			buf[j] = byte(int(seed) + i*17 + j*3)
		}
		cols[i] = buf
	}
	return cols
}

func TestRoundTripRecoversLostOriginals(t *testing.T) {
	n, symbolLen, losses := 24, 32, 5
	originals := buildOriginals(n, symbolLen, 11)

	enc, err := fecal.NewEncoder(originals, n*symbolLen)
	if err != nil {
		t.Fatalf("NewEncoder: %v", err)
	}
	defer enc.Close()

	var recovered []fecal.Symbol
	for row := uint32(0); row < uint32(losses+2); row++ {
		sym, err := enc.Encode(row)
		if err != nil {
			t.Fatalf("Encode(%d): %v", row, err)
		}
		data := append([]byte(nil), sym.Data...)
		recovered = append(recovered, fecal.Symbol{Data: data, Row: sym.Row})
	}

	present := make([][]byte, n)
	copy(present, originals)
	want := make(map[int][]byte, losses)
	for i := 0; i < losses; i++ {
		want[i] = present[i]
		present[i] = nil
	}

	if err := decoder.Reconstruct(present, symbolLen, recovered); err != nil {
		t.Fatalf("Reconstruct: %v", err)
	}

	for i, orig := range want {
		if !bytes.Equal(present[i][:symbolLen], orig) {
			t.Fatalf("column %d not recovered: got %v want %v", i, present[i], orig)
		}
	}
}

func TestRoundTripShortFinalColumn(t *testing.T) {
	n, symbolLen := 10, 16
	originals := buildOriginals(n, symbolLen, 3)
	originals[n-1] = originals[n-1][:9] // short final column
	totalBytes := (n-1)*symbolLen + 9

	enc, err := fecal.NewEncoder(originals, totalBytes)
	if err != nil {
		t.Fatalf("NewEncoder: %v", err)
	}
	defer enc.Close()

	var recovered []fecal.Symbol
	for row := uint32(0); row < 3; row++ {
		sym, err := enc.Encode(row)
		if err != nil {
			t.Fatalf("Encode(%d): %v", row, err)
		}
		data := append([]byte(nil), sym.Data...)
		recovered = append(recovered, fecal.Symbol{Data: data, Row: sym.Row})
	}

	present := make([][]byte, n)
	copy(present, originals)
	lostIdx := n - 1
	want := present[lostIdx]
	present[lostIdx] = nil

	if err := decoder.Reconstruct(present, symbolLen, recovered); err != nil {
		t.Fatalf("Reconstruct: %v", err)
	}
	if !bytes.Equal(present[lostIdx][:len(want)], want) {
		t.Fatalf("short final column not recovered: got %v want %v", present[lostIdx][:len(want)], want)
	}
}

func TestRoundTripNotEnoughSymbols(t *testing.T) {
	n, symbolLen := 8, 8
	originals := buildOriginals(n, symbolLen, 1)
	enc, err := fecal.NewEncoder(originals, n*symbolLen)
	if err != nil {
		t.Fatalf("NewEncoder: %v", err)
	}
	defer enc.Close()

	sym, _ := enc.Encode(0)
	recovered := []fecal.Symbol{{Data: append([]byte(nil), sym.Data...), Row: sym.Row}}

	present := make([][]byte, n)
	copy(present, originals)
	present[0] = nil
	present[1] = nil

	if err := decoder.Reconstruct(present, symbolLen, recovered); err != decoder.ErrNotEnoughSymbols {
		t.Fatalf("Reconstruct with too few symbols = %v, want ErrNotEnoughSymbols", err)
	}
}
