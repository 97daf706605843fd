package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/fatih/color"
	"github.com/pkg/errors"
	"github.com/urfave/cli"
	"github.com/xtaci/fecal"
	"github.com/xtaci/fecal/decoder"
	"github.com/xtaci/fecal/internal/pack"
)

func decodeCommand() cli.Command {
	return cli.Command{
		Name:  "decode",
		Usage: "reconstruct a file from whatever originals/recovery symbols are present in a directory",
		Flags: []cli.Flag{
			cli.StringFlag{Name: "dir", Value: "./fecal-out", Usage: "directory produced by encode"},
			cli.StringFlag{Name: "out", Usage: "path to write the reconstructed file"},
		},
		Action: func(c *cli.Context) error {
			dir := c.String("dir")
			out := c.String("out")
			if out == "" {
				return errors.New("decode: -out is required")
			}

			m, err := readManifest(dir)
			if err != nil {
				return err
			}

			present := make([][]byte, m.N)
			have := 0
			for i := 0; i < m.N; i++ {
				path := filepath.Join(dir, fmt.Sprintf("orig-%04d.bin", i))
				data, err := os.ReadFile(path)
				if err == nil {
					present[i] = data
					have++
				} else if !os.IsNotExist(err) {
					return errors.WithStack(err)
				}
			}

			symbolLen := (m.TotalBytes + m.N - 1) / m.N
			var recovered []fecal.Symbol
			entries, err := os.ReadDir(dir)
			if err != nil {
				return errors.WithStack(err)
			}
			for _, entry := range entries {
				var row uint32
				if n, scanErr := fmt.Sscanf(entry.Name(), "recovery-%04d.bin", &row); scanErr == nil && n == 1 {
					data, err := os.ReadFile(filepath.Join(dir, entry.Name()))
					if err != nil {
						return errors.WithStack(err)
					}
					recovered = append(recovered, fecal.Symbol{Data: data, Row: row})
				}
			}

			if have < m.N {
				if err := decoder.Reconstruct(present, symbolLen, recovered); err != nil {
					return err
				}
				color.Yellow("reconstructed %d missing originals from %d recovery symbols", m.N-have, len(recovered))
			}

			payload := make([]byte, 0, m.TotalBytes)
			for i, col := range present {
				end := symbolLen
				if fecal.IsFinalColumn(m.N, i) {
					end = m.TotalBytes - (m.N-1)*symbolLen
				}
				payload = append(payload, col[:end]...)
			}

			if m.Compressed {
				unpacked, err := pack.Decompress(payload)
				if err != nil {
					return err
				}
				payload = unpacked
			}

			if err := os.WriteFile(out, payload, 0644); err != nil {
				return errors.WithStack(err)
			}
			color.Green("wrote %d bytes to %s", len(payload), out)
			return nil
		},
	}
}
