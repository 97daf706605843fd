// Package xoraccum implements the batched XOR accumulator described
// in the encoder design: a destination buffer plus a small queue of
// pending source buffers, flushed as one fused XOR via
// templexxx/xorsimd instead of one XOR per source. The batched path
// is a performance optimization only; its output must always match a
// plain sequential XOR loop.
package xoraccum

import "github.com/templexxx/xorsimd"

// queueDepth is how many pending sources the accumulator batches
// before it must flush. A handful of lane-sum cells are typically
// folded into Sum or Product per Encode call, so a small fixed queue
// covers the common case without a heap allocation per Add.
const queueDepth = 8

// Accumulator batches dst ^= src1 ^ src2 ^ ... into as few fused XOR
// passes over memory as possible.
type Accumulator struct {
	dst     []byte
	pending [queueDepth][]byte
	n       int
}

// New returns an accumulator that folds additions into dst in place.
// dst is not cleared; Add calls XOR into its current contents.
func New(dst []byte) *Accumulator {
	return &Accumulator{dst: dst}
}

// Add enqueues src for XOR-ing into the destination. When the queue
// fills, Add flushes automatically.
func (a *Accumulator) Add(src []byte) {
	a.pending[a.n] = src
	a.n++
	if a.n == queueDepth {
		a.flush()
	}
}

// Finalize flushes any queued sources. After Finalize, dst equals its
// state at New() XORed with every source submitted to Add.
func (a *Accumulator) Finalize() {
	if a.n > 0 {
		a.flush()
	}
}

func (a *Accumulator) flush() {
	srcs := make([][]byte, 0, a.n+1)
	srcs = append(srcs, a.dst)
	srcs = append(srcs, a.pending[:a.n]...)
	xorsimd.Encode(a.dst, srcs)
	a.n = 0
}

// AddScalar is the non-batched reference path: it XORs src into dst
// immediately, one source at a time. Its output must match the
// batched path bit for bit; tests in this package enforce that.
func AddScalar(dst, src []byte) {
	xorsimd.Bytes(dst, dst, src)
}
