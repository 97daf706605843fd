// Package fecal implements a row-addressable forward error correction
// codec over GF(256). Given a fixed window of N equal-length
// originals, an Encoder produces an unbounded stream of recovery
// symbols, each generated on demand from a pseudo-random recipe keyed
// by a row index rather than from a precomputed parity matrix.
//
// The codec is convolutional/fountain-style, not maximum-distance
// separable: recovering k losses from k+δ recovery symbols has a
// small, usually-zero overhead δ that grows slowly with k. It targets
// small numbers of losses (tens, not thousands) per window.
//
// A companion decoder package performs the Gaussian-elimination
// reconstruction; it is not part of this package because the encoder
// never needs to invert anything.
package fecal
