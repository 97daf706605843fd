package fecal

import (
	"github.com/xtaci/fecal/internal/gf256"
	"github.com/xtaci/fecal/internal/prng"
)

// columnValueStride and rowValueStride/rowValueOffset are the fixed
// multipliers used to scramble column/row indices across the
// GF(256) exponent table into a permutation-like nonzero coefficient.
// They are part of the wire format: changing them changes every
// recovery symbol this codec has ever produced.
const (
	columnValueStride = 167
	columnValueOffset = 1
	rowValueStride    = 199
	rowValueOffset    = 37
)

// GetColumnValue returns the fixed GF(256) coefficient CX assigned to
// column c. It is nonzero (hence invertible) for every c >= 0, and
// stable across processes and architectures: two encoders configured
// with the same N must compute the same CX(c) for every c.
func GetColumnValue(column int) byte {
	idx := (column*columnValueStride + columnValueOffset) % gf256.ExpTableSize
	return gf256.Exp(idx)
}

// GetRowValue returns the fixed GF(256) coefficient RX that blends
// Product into Sum for row r.
func GetRowValue(row uint32) byte {
	idx := (int(row)*rowValueStride + rowValueOffset) % gf256.ExpTableSize
	return gf256.Exp(idx)
}

// GetRowOpcode returns the 2K-bit (6-bit) mask selecting, for the
// given lane and row, which LaneSums[lane][k] cells feed Sum (bits
// 0..K-1) versus Product (bits K..2K-1). It is derived from the same
// small-state generator used for the LDPC pair overlay, seeded
// independently per (row, lane) so that opcode selection and pair
// selection never share state.
func GetRowOpcode(lane int, row uint32) uint32 {
	src := prng.New(row, uint32(lane))
	return src.Next() & opcodeMask
}

const opcodeMask = (1 << (2 * kColumnSumCount)) - 1
