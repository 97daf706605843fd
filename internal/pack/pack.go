// Package pack provides optional snappy compression for payloads
// before they are split into a fecal window, and decompression after
// reconstruction. It generalizes kcptun's std.CompStream (a net.Conn
// wrapper) to a plain io.Reader/io.Writer pair, since the CLI has
// files, not connections, to compress.
package pack

import (
	"bytes"
	"io"

	"github.com/golang/snappy"
	"github.com/pkg/errors"
)

// Compress reads all of r, snappy-compresses it, and returns the
// compressed bytes.
func Compress(r io.Reader) ([]byte, error) {
	var buf bytes.Buffer
	w := snappy.NewBufferedWriter(&buf)
	if _, err := io.Copy(w, r); err != nil {
		return nil, errors.WithStack(err)
	}
	if err := w.Close(); err != nil {
		return nil, errors.WithStack(err)
	}
	return buf.Bytes(), nil
}

// Decompress reverses Compress.
func Decompress(data []byte) ([]byte, error) {
	r := snappy.NewReader(bytes.NewReader(data))
	out, err := io.ReadAll(r)
	if err != nil {
		return nil, errors.WithStack(err)
	}
	return out, nil
}
