// Copyright 2017 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"
	"strings"

	"github.com/hoggorm/mvplot/smi"
)

func init() {
	registerSubcommand("smi", "[flags] <SMI file> - draw an SMI diamond plot", cmdSMI)
}

func cmdSMI(args []string) error {
	f := newFlagSet("smi", "[flags] <SMI file>")
	var (
		flagPC        = f.String("pc", "", "`n1,n2` components of X1 and X2 to show (default all)")
		flagNoSig     = f.Bool("nosig", false, "omit significance markers")
		flagX1        = f.String("x1", "X1", "`name` of the first data set")
		flagX2        = f.String("x2", "X2", "`name` of the second data set")
		flagB         = f.Int("B", smi.DefaultPermutations, "`number` of permutations for the significance test")
		flagFontScale = f.Float64("fontscale", 1, "scale markers and component labels by `factor`")
		flagOut       = f.String("o", "smi.svg", "write plot to `file`; a .png extension writes a PNG image")
		flagWidth     = f.Int("width", 640, "image `width` in pixels")
		flagHeight    = f.Int("height", 480, "image `height` in pixels")
	)
	if err := parseFlags(f, args); err != nil {
		return err
	}
	if f.NArg() != 1 {
		f.Usage()
		return errUsage
	}

	opts := &smi.Options{
		NoSignificance: *flagNoSig,
		X1Name:         *flagX1,
		X2Name:         *flagX2,
		Permutations:   *flagB,
		FontScale:      *flagFontScale,
	}
	if *flagPC != "" {
		pc, err := parseInts(*flagPC)
		if err != nil || len(pc) != 2 {
			return fmt.Errorf("-pc: want two component counts, got %q", *flagPC)
		}
		opts.PC = [2]int{pc[0], pc[1]}
	}

	res, err := smi.LoadFile(f.Arg(0))
	if err != nil {
		return err
	}
	d, err := smi.Layout(res, opts)
	if err != nil {
		return err
	}

	out, err := os.Create(*flagOut)
	if err != nil {
		return err
	}
	render := d.WriteSVG
	if strings.EqualFold(filepath.Ext(*flagOut), ".png") {
		render = d.WritePNG
	}
	if err := writeTo(out, render, *flagWidth, *flagHeight); err != nil {
		return fmt.Errorf("%s: %w", *flagOut, err)
	}
	log.Printf("wrote %s", *flagOut)
	return nil
}

// writeTo renders to w and closes it.
func writeTo(w io.WriteCloser, render func(io.Writer, int, int) error, width, height int) error {
	if err := render(w, width, height); err != nil {
		w.Close()
		return err
	}
	return w.Close()
}
