package fecal

import "github.com/xtaci/fecal/internal/gf256"

// Init performs one-time, process-wide initialization of the GF(256)
// tables the codec relies on. It is idempotent and safe to call from
// multiple goroutines; NewEncoder calls it automatically, so most
// callers never need to call it directly. It always succeeds.
func Init() error {
	gf256.Init()
	return nil
}
