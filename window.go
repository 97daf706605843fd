package fecal

// window holds the parameters and borrowed original data for one
// encoder instance: input count N, per-symbol byte length S, the
// short length F of the final column, and the borrowed original
// pointers themselves. window never copies or frees originals; the
// caller guarantees they outlive the encoder.
type window struct {
	n         int
	symbolLen int // S
	finalLen  int // F, 1 <= finalLen <= symbolLen
	originals [][]byte
}

// newWindow validates and constructs a window from N borrowed
// original buffers and the true total byte length of the payload they
// represent (which may be less than n*symbolLen, since the final
// column may be short).
func newWindow(originals [][]byte, totalBytes int) (*window, error) {
	n := len(originals)
	if n == 0 {
		return nil, ErrInvalidInput
	}
	if totalBytes < n {
		return nil, ErrInvalidInput
	}
	for _, o := range originals {
		if o == nil {
			return nil, ErrInvalidInput
		}
	}

	symbolLen := (totalBytes + n - 1) / n
	finalLen := totalBytes - (n-1)*symbolLen
	if finalLen < 1 || finalLen > symbolLen {
		return nil, ErrInvalidInput
	}

	return &window{
		n:         n,
		symbolLen: symbolLen,
		finalLen:  finalLen,
		originals: originals,
	}, nil
}

// IsFinalColumn reports whether c is the last column of an n-column
// window, the only column whose original data may be shorter than
// the window's symbol length.
func IsFinalColumn(n, c int) bool {
	return c == n-1
}

// isFinalColumn reports whether c is the last column in the window,
// the only column whose original data may be shorter than symbolLen.
func (w *window) isFinalColumn(c int) bool {
	return IsFinalColumn(w.n, c)
}

// effectiveLen returns how many bytes of column c are real data; the
// rest (only possible on the final column) are implicit zeros that
// must never be read from caller memory.
func (w *window) effectiveLen(c int) int {
	if w.isFinalColumn(c) {
		return w.finalLen
	}
	return w.symbolLen
}

// copyColumn writes the effective bytes of column c into dst (which
// must be symbolLen bytes) and zero-fills the remainder, used to seed
// Sum/Product from the first LDPC pair without reading past the
// caller's final-column buffer.
func (w *window) copyColumn(dst []byte, c int) {
	n := copy(dst, w.originals[c][:w.effectiveLen(c)])
	for i := n; i < len(dst); i++ {
		dst[i] = 0
	}
}
