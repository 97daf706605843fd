package decoder

import (
	"github.com/pkg/errors"
	"github.com/xtaci/fecal"
	"github.com/xtaci/fecal/internal/gf256"
	"github.com/xtaci/fecal/internal/metrics"
)

// ErrNotEnoughSymbols is returned when fewer recovery symbols are
// supplied than there are missing originals.
var ErrNotEnoughSymbols = errors.New("decoder: not enough symbols to reconstruct")

// Reconstruct fills in the missing entries of present (a length-N
// slice where a nil entry means "this original was lost") using
// recovered recovery symbols. present is mutated in place; on success
// every entry is non-nil, and each formerly nil entry holds a new
// symbolLen-byte buffer (entries that were present are left as they
// were, including a short final column). recovered must
// supply at least as many symbols as there are nil entries in
// present; if more are supplied, only as many as are needed are used.
//
// The technique is classic Gauss-Jordan elimination over GF(256),
// generalized from the fixed-matrix Reed-Solomon case (where row
// coefficients come from a Cauchy/Vandermonde formula) to this
// codec's per-row pseudo-random recipe: RowCoefficients recovers the
// same coefficient vector Encoder.Encode used, for any row, without
// touching symbol bytes.
func Reconstruct(present [][]byte, symbolLen int, recovered []fecal.Symbol) error {
	n := len(present)
	var missing []int
	for c, data := range present {
		if data == nil {
			missing = append(missing, c)
		}
	}
	if len(missing) == 0 {
		return nil
	}
	metrics.Default.DecodeCalls.Add(1)
	if len(recovered) < len(missing) {
		metrics.Default.DecodeErrs.Add(1)
		return ErrNotEnoughSymbols
	}

	m := len(missing)
	use := recovered[:m]

	// Build the augmented system: m equations, m unknowns (one per
	// missing column), each row carries its RHS as a symbolLen byte
	// buffer so elimination transforms knowns and RHS together.
	coeffs := make([][]byte, m)
	rhs := make([][]byte, m)
	for i, sym := range use {
		full := RowCoefficients(n, sym.Row)
		row := make([]byte, m)
		for j, c := range missing {
			row[j] = full[c]
		}
		coeffs[i] = row

		r := make([]byte, symbolLen)
		copy(r, sym.Data)
		for c := 0; c < n; c++ {
			if present[c] != nil && full[c] != 0 {
				gf256.MulAdd(r, full[c], present[c])
			}
		}
		rhs[i] = r
	}

	if err := gaussJordan(coeffs, rhs, m); err != nil {
		metrics.Default.DecodeErrs.Add(1)
		return err
	}

	for i, c := range missing {
		present[c] = rhs[i]
	}
	metrics.Default.DecodeRecovered.Add(uint64(m))
	return nil
}

// gaussJordan reduces the m x m coefficient matrix to the identity in
// place, applying every row operation to the parallel rhs buffers as
// well (so rhs[i] ends up holding the solved value for unknown i).
func gaussJordan(coeffs [][]byte, rhs [][]byte, m int) error {
	for col := 0; col < m; col++ {
		pivot := -1
		for row := col; row < m; row++ {
			if coeffs[row][col] != 0 {
				pivot = row
				break
			}
		}
		if pivot == -1 {
			return errors.New("decoder: singular system, symbols are not independent")
		}
		coeffs[col], coeffs[pivot] = coeffs[pivot], coeffs[col]
		rhs[col], rhs[pivot] = rhs[pivot], rhs[col]

		inv := gf256.Inverse(coeffs[col][col])
		scaleRow(coeffs[col], inv)
		gf256.Mulc(rhs[col], inv, rhs[col])

		for row := 0; row < m; row++ {
			if row == col {
				continue
			}
			factor := coeffs[row][col]
			if factor == 0 {
				continue
			}
			gf256.MulAdd(coeffs[row], factor, coeffs[col])
			gf256.MulAdd(rhs[row], factor, rhs[col])
		}
	}
	return nil
}

func scaleRow(row []byte, c byte) {
	gf256.Mulc(row, c, row)
}
