package fecal

// Symbol is one recovery symbol: S raw bytes plus the row index that
// produced them. Data aliases the Encoder's internal Sum buffer — it
// is only valid until the next Encode or Close call on that encoder.
// Callers that need to keep a symbol around must copy Data before
// calling Encode again.
type Symbol struct {
	Data []byte
	Row  uint32
}
