package fecal

// Tuning constants. These are part of the wire format: two encoders
// (or an encoder and a decoder) must agree on all three to produce or
// consume compatible recovery symbols.
const (
	// kColumnLaneCount is the number of column-residue lanes (L).
	kColumnLaneCount = 8
	// kColumnSumCount is the number of polynomial degrees per lane,
	// k = 0..2 (K).
	kColumnSumCount = 3
	// kPairAddRate is the number of originals per LDPC pair-add: one
	// (e1, eRX) pair is drawn per kPairAddRate originals in the
	// window.
	kPairAddRate = 16
)

// Exported aliases. These three constants are part of the wire
// format (spec'd as such): any implementation that disagrees with
// these values cannot interoperate, which is why a reconstruction
// path (the decoder package) needs to see them too.
const (
	ColumnLaneCount = kColumnLaneCount
	ColumnSumCount  = kColumnSumCount
	PairAddRate     = kPairAddRate
)

