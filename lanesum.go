package fecal

import "github.com/xtaci/fecal/internal/gf256"

// laneSums is LaneSums[lane][k] from the design: for each lane
// (column residue class mod kColumnLaneCount) and each polynomial
// degree k in 0..kColumnSumCount-1, the GF(256) sum over all columns
// c in that lane of CX(c)^k * Original[c].
type laneSums [kColumnLaneCount][kColumnSumCount][]byte

// buildLaneSums allocates and fills the lane sum table for w. It is
// the only place in the encoder that allocates on the hot path's
// behalf; once built, Encode never mutates or reallocates it.
func buildLaneSums(w *window) (*laneSums, error) {
	var sums laneSums
	for lane := 0; lane < kColumnLaneCount; lane++ {
		for k := 0; k < kColumnSumCount; k++ {
			buf := make([]byte, w.symbolLen)
			if buf == nil {
				return nil, ErrOutOfMemory
			}
			sums[lane][k] = buf
		}
	}

	for c := 0; c < w.n; c++ {
		lane := c % kColumnLaneCount
		cx := GetColumnValue(c)
		cx2 := gf256.Square(cx)
		src := w.originals[c][:w.effectiveLen(c)]

		gf256.Add(sums[lane][0][:w.effectiveLen(c)], src)
		gf256.MulAdd(sums[lane][1], cx, src)
		gf256.MulAdd(sums[lane][2], cx2, src)
	}

	return &sums, nil
}
