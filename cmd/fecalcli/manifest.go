package main

import (
	"encoding/json"
	"os"
	"path/filepath"

	"github.com/pkg/errors"
)

// manifest records the parameters decode needs to reverse what encode
// did: window size, true payload length, and whether the payload was
// snappy-compressed before windowing.
type manifest struct {
	N          int  `json:"n"`
	TotalBytes int  `json:"totalBytes"`
	Compressed bool `json:"compressed"`
}

func writeManifest(dir string, m manifest) error {
	f, err := os.Create(filepath.Join(dir, "manifest.json"))
	if err != nil {
		return errors.WithStack(err)
	}
	defer f.Close()
	enc := json.NewEncoder(f)
	enc.SetIndent("", "  ")
	return errors.WithStack(enc.Encode(m))
}

func readManifest(dir string) (manifest, error) {
	var m manifest
	data, err := os.ReadFile(filepath.Join(dir, "manifest.json"))
	if err != nil {
		return m, errors.WithStack(err)
	}
	if err := json.Unmarshal(data, &m); err != nil {
		return m, errors.WithStack(err)
	}
	return m, nil
}

// splitColumns divides data into n columns of equal length except the
// last, which takes whatever remains (1..symbolLen bytes), matching
// the codec's symbol-length derivation: S = ceil(len(data)/n).
func splitColumns(data []byte, n int) [][]byte {
	total := len(data)
	symbolLen := (total + n - 1) / n
	cols := make([][]byte, n)
	for i := 0; i < n; i++ {
		start := i * symbolLen
		end := start + symbolLen
		if end > total {
			end = total
		}
		cols[i] = data[start:end]
	}
	return cols
}
