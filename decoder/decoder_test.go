package decoder

import (
	"testing"

	"github.com/xtaci/fecal"
)

func TestReconstructNoopWhenNothingMissing(t *testing.T) {
	present := [][]byte{{1, 2}, {3, 4}}
	before := append([]byte(nil), present[0]...)
	if err := Reconstruct(present, 2, nil); err != nil {
		t.Fatalf("Reconstruct: %v", err)
	}
	if present[0][0] != before[0] || present[0][1] != before[1] {
		t.Fatal("Reconstruct mutated present when nothing was missing")
	}
}

func TestReconstructSingularSystemRejected(t *testing.T) {
	n, symbolLen := 6, 4
	cols := make([][]byte, n)
	for i := range cols {
		buf := make([]byte, symbolLen)
		for j := range buf {
			buf[j] = byte(i*7 + j*3 + 1)
		}
		cols[i] = buf
	}
	enc, err := fecal.NewEncoder(cols, n*symbolLen)
	if err != nil {
		t.Fatalf("NewEncoder: %v", err)
	}
	defer enc.Close()

	// Two copies of the exact same row are linearly dependent and
	// cannot resolve two independent unknowns.
	sym, _ := enc.Encode(0)
	dup := fecal.Symbol{Data: append([]byte(nil), sym.Data...), Row: sym.Row}
	recovered := []fecal.Symbol{dup, dup}

	present := make([][]byte, n)
	copy(present, cols)
	present[0] = nil
	present[1] = nil

	if err := Reconstruct(present, symbolLen, recovered); err == nil {
		t.Fatal("Reconstruct with duplicate rows should fail, got nil error")
	}
}
