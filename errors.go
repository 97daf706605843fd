package fecal

import "github.com/pkg/errors"

// Sentinel errors covering the flat three-valued result taxonomy from
// the design: Success is the absence of an error, InvalidInput and
// OutOfMemory are these two. Callers should compare with
// errors.Cause(err) == ErrInvalidInput (or use errors.Is once wrapped
// with %w-compatible wrapping) rather than string-matching.
var (
	// ErrInvalidInput covers N == 0, totalBytes < N, a nil original
	// pointer, or calling Encode before the lane sum table exists.
	ErrInvalidInput = errors.New("fecal: invalid input")
	// ErrOutOfMemory covers allocation failure while building the
	// lane sum table. Encode never allocates, so it cannot return
	// this error.
	ErrOutOfMemory = errors.New("fecal: out of memory")
)
