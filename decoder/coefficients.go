// Package decoder reconstructs missing originals from a window of N
// received symbols (a mix of originals and recovery symbols of known
// row index) by Gaussian elimination over GF(256). It is not part of
// the core encoder — the encoder never inverts anything — but it
// consumes the encoder's stable, wire-format row recipe
// (fecal.GetColumnValue / GetRowValue / GetRowOpcode and the three
// tuning constants) to rebuild, for any row, the exact linear
// combination of originals that row's recovery symbol represents.
package decoder

import (
	"github.com/xtaci/fecal"
	"github.com/xtaci/fecal/internal/gf256"
	"github.com/xtaci/fecal/internal/prng"
)

// RowCoefficients returns, for a window of n originals, the length-n
// vector of GF(256) scalars such that recovery symbol `row` equals
// the XOR, over all columns c, of coeff[c] * Original[c]. This is
// derived analytically from the same pair-overlay/lane-mixing recipe
// Encoder.Encode runs at the byte level — every step in that recipe
// is GF(256)-linear in the originals, so the coefficient of column c
// can be computed without touching any symbol bytes.
func RowCoefficients(n int, row uint32) []byte {
	sumCoeff := make([]byte, n)
	productCoeff := make([]byte, n)

	src := prng.New(row, uint32(n))
	pairCount := (n + fecal.PairAddRate - 1) / fecal.PairAddRate
	for i := 0; i < pairCount; i++ {
		e1 := int(src.Uintn(uint32(n)))
		eRX := int(src.Uintn(uint32(n)))
		sumCoeff[e1] ^= 1
		productCoeff[eRX] ^= 1
	}

	for lane := 0; lane < fecal.ColumnLaneCount; lane++ {
		opcode := fecal.GetRowOpcode(lane, row)
		for c := lane; c < n; c += fecal.ColumnLaneCount {
			cx := fecal.GetColumnValue(c)
			pow := byte(1) // CX(c)^0
			for k := 0; k < fecal.ColumnSumCount; k++ {
				if opcode&(1<<uint(k)) != 0 {
					sumCoeff[c] ^= pow
				}
				if opcode&(1<<uint(fecal.ColumnSumCount+k)) != 0 {
					productCoeff[c] ^= pow
				}
				pow = gf256.Mul(pow, cx)
			}
		}
	}

	rx := fecal.GetRowValue(row)
	coeff := make([]byte, n)
	for c := 0; c < n; c++ {
		coeff[c] = sumCoeff[c] ^ gf256.Mul(rx, productCoeff[c])
	}
	return coeff
}
