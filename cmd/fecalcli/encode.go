package main

import (
	"bytes"
	"fmt"
	"log"
	"os"
	"path/filepath"

	"github.com/fatih/color"
	"github.com/pkg/errors"
	"github.com/urfave/cli"
	"github.com/xtaci/fecal"
	"github.com/xtaci/fecal/internal/pack"
)

func encodeCommand() cli.Command {
	return cli.Command{
		Name:  "encode",
		Usage: "window a file and emit N originals plus R recovery symbols",
		Flags: []cli.Flag{
			cli.StringFlag{Name: "in", Usage: "input file"},
			cli.StringFlag{Name: "out", Value: "./fecal-out", Usage: "output directory"},
			cli.IntFlag{Name: "n", Value: 16, Usage: "number of originals (window size)"},
			cli.IntFlag{Name: "recovery, r", Value: 16, Usage: "number of recovery symbols to emit"},
			cli.BoolFlag{Name: "compress", Usage: "snappy-compress the payload before windowing"},
		},
		Action: func(c *cli.Context) error {
			in := c.String("in")
			out := c.String("out")
			n := c.Int("n")
			recovery := c.Int("recovery")
			if in == "" {
				return errors.New("encode: -in is required")
			}
			if n <= 0 {
				return errors.New("encode: -n must be positive")
			}

			payload, err := os.ReadFile(in)
			if err != nil {
				return errors.WithStack(err)
			}

			compressed := c.Bool("compress")
			if compressed {
				packed, err := pack.Compress(bytes.NewReader(payload))
				if err != nil {
					return err
				}
				payload = packed
			}

			if len(payload) < n {
				return errors.Errorf("encode: payload of %d bytes is too small for %d originals", len(payload), n)
			}

			if err := os.MkdirAll(out, 0755); err != nil {
				return errors.WithStack(err)
			}

			cols := splitColumns(payload, n)
			enc, err := fecal.NewEncoder(cols, len(payload))
			if err != nil {
				return err
			}
			defer enc.Close()

			for i, col := range cols {
				path := filepath.Join(out, fmt.Sprintf("orig-%04d.bin", i))
				if err := os.WriteFile(path, col, 0644); err != nil {
					return errors.WithStack(err)
				}
			}

			for row := 0; row < recovery; row++ {
				sym, err := enc.Encode(uint32(row))
				if err != nil {
					return err
				}
				path := filepath.Join(out, fmt.Sprintf("recovery-%04d.bin", sym.Row))
				if err := os.WriteFile(path, sym.Data, 0644); err != nil {
					return errors.WithStack(err)
				}
			}

			if err := writeManifest(out, manifest{N: n, TotalBytes: len(payload), Compressed: compressed}); err != nil {
				return err
			}

			color.Green("wrote %d originals + %d recovery symbols (S=%d bytes) to %s", n, recovery, enc.SymbolLen(), out)
			log.Printf("window: N=%d totalBytes=%d symbolLen=%d", n, len(payload), enc.SymbolLen())
			return nil
		},
	}
}
