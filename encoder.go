package fecal

import (
	"github.com/xtaci/fecal/internal/gf256"
	"github.com/xtaci/fecal/internal/metrics"
	"github.com/xtaci/fecal/internal/prng"
	"github.com/xtaci/fecal/internal/xoraccum"
)

// Encoder generates recovery symbols for one fixed window of
// originals. It is created once via NewEncoder, then answers
// arbitrary Encode(row) calls until Close. An Encoder is not safe for
// concurrent use: Encode overwrites the workspace buffers that back
// the previously returned Symbol.
type Encoder struct {
	w       *window
	lanes   *laneSums
	sum     []byte
	product []byte
	symbol  Symbol
}

// NewEncoder builds the lane sum table over originals and returns a
// ready-to-use encoder. originals is borrowed, not copied: the caller
// must keep every entry alive and unmodified (within its effective
// length) for as long as the encoder may be called. totalBytes is the
// true combined length of the payload the originals represent; it may
// be less than len(originals)*symbolLen, since the final original may
// be short.
func NewEncoder(originals [][]byte, totalBytes int) (*Encoder, error) {
	gf256.Init()

	w, err := newWindow(originals, totalBytes)
	if err != nil {
		return nil, err
	}

	lanes, err := buildLaneSums(w)
	if err != nil {
		return nil, err
	}

	metrics.Default.InitCalls.Add(1)
	metrics.Default.BytesProtected.Add(uint64(totalBytes))

	e := &Encoder{
		w:       w,
		lanes:   lanes,
		sum:     make([]byte, w.symbolLen),
		product: make([]byte, w.symbolLen),
	}
	return e, nil
}

// SymbolLen returns S, the fixed byte length of every original and
// recovery symbol produced by this encoder.
func (e *Encoder) SymbolLen() int {
	return e.w.symbolLen
}

// N returns the number of originals in the window.
func (e *Encoder) N() int {
	return e.w.n
}

// Encode generates the recovery symbol for row. The returned Symbol's
// Data aliases internal storage and is invalidated by the next
// Encode or Close call. Encode is pure with respect to (row,
// originals): repeated calls with the same row and unmodified
// originals return byte-identical data.
func (e *Encoder) Encode(row uint32) (*Symbol, error) {
	if e.lanes == nil {
		return nil, ErrInvalidInput
	}
	w := e.w

	for i := range e.sum {
		e.sum[i] = 0
	}
	for i := range e.product {
		e.product[i] = 0
	}

	src := prng.New(row, uint32(w.n))
	pairCount := (w.n + kPairAddRate - 1) / kPairAddRate
	for i := 0; i < pairCount; i++ {
		e1 := int(src.Uintn(uint32(w.n)))
		eRX := int(src.Uintn(uint32(w.n)))
		if i == 0 {
			w.copyColumn(e.sum, e1)
			w.copyColumn(e.product, eRX)
		} else {
			addColumn(e.sum, w, e1)
			addColumn(e.product, w, eRX)
		}
	}

	sumAcc := xoraccum.New(e.sum)
	productAcc := xoraccum.New(e.product)
	for lane := 0; lane < kColumnLaneCount; lane++ {
		opcode := GetRowOpcode(lane, row)
		for k := 0; k < kColumnSumCount; k++ {
			if opcode&(1<<uint(k)) != 0 {
				sumAcc.Add(e.lanes[lane][k])
			}
		}
		for k := 0; k < kColumnSumCount; k++ {
			if opcode&(1<<uint(kColumnSumCount+k)) != 0 {
				productAcc.Add(e.lanes[lane][k])
			}
		}
	}
	sumAcc.Finalize()
	productAcc.Finalize()

	rx := GetRowValue(row)
	gf256.MulAdd(e.sum, rx, e.product)

	metrics.Default.EncodeCalls.Add(1)

	e.symbol.Data = e.sum
	e.symbol.Row = row
	return &e.symbol, nil
}

// Close releases the encoder's owned buffers (LaneSums, Sum,
// Product). It does not touch originals, which the encoder never
// owned. Close is safe to call on a nil *Encoder.
func (e *Encoder) Close() {
	if e == nil {
		return
	}
	e.lanes = nil
	e.sum = nil
	e.product = nil
}

// addColumn XORs the effective (non-zero-padded) bytes of column c
// into dst, leaving any high tail of dst untouched.
func addColumn(dst []byte, w *window, c int) {
	n := w.effectiveLen(c)
	gf256.Add(dst[:n], w.originals[c][:n])
}
