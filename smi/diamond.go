// Copyright 2017 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package smi

import (
	"errors"
	"fmt"
	"math"
)

// DefaultPermutations is the number of permutations used for the
// significance test if Options.Permutations is 0.
const DefaultPermutations = 10000

// Options control the layout of a diamond plot. The zero value gives
// the default plot.
type Options struct {
	// PC is the number of components of X1 and X2 to show. A zero
	// count shows all components of that data set.
	PC [2]int

	// NoSignificance omits the significance markers.
	NoSignificance bool

	// X1Name and X2Name label the data sets. They default to "X1"
	// and "X2".
	X1Name, X2Name string

	Permutations int

	// FontScale scales the markers and component labels. It
	// defaults to 1.
	FontScale float64
}

// Align is the horizontal alignment of a text.
type Align int

const (
	AlignLeft Align = iota
	AlignCenter
	AlignRight
)

// A Text is a string drawn vertically centered at (X, Y). Size is the
// font size in points.
type Text struct {
	X, Y  float64
	S     string
	Align Align
	Size  float64
}

// A Cell is the diamond of one similarity entry.
type Cell struct {
	Row, Col int
	Value    float64

	// X and Y are the bottom, right, top and left vertices.
	X, Y [4]float64

	// Symbol is the significance marker, or "" if significance
	// is not shown.
	Symbol string
}

// Center returns the center of c.
func (c *Cell) Center() (x, y float64) {
	return c.X[0], (c.Y[0] + c.Y[2]) / 2
}

// A Diamond is a laid-out SMI diamond plot in data coordinates, with
// y increasing upward.
type Diamond struct {
	PC    [2]int
	Cells []Cell

	// Texts holds the markers, component labels and data set
	// names.
	Texts []Text

	XMin, XMax, YMin, YMax float64
}

// nameSize is the font size of the data set names.
const nameSize = 10

// Layout lays out the diamond plot of src. If src has no p-values,
// the plot is drawn without significance markers and a message goes
// to Notice.
func Layout(src Source, opts *Options) (*Diamond, error) {
	o := Options{}
	if opts != nil {
		o = *opts
	}
	if o.X1Name == "" {
		o.X1Name = "X1"
	}
	if o.X2Name == "" {
		o.X2Name = "X2"
	}
	if o.Permutations == 0 {
		o.Permutations = DefaultPermutations
	}
	if o.FontScale == 0 {
		o.FontScale = 1
	}

	sim := src.Similarity()
	if sim == nil {
		return nil, fmt.Errorf("no similarity matrix")
	}
	if err := Validate(sim); err != nil {
		return nil, err
	}
	rows, cols := sim.Dims()
	pc := o.PC
	for k, max := range [2]int{rows, cols} {
		if pc[k] == 0 {
			pc[k] = max
		}
		if pc[k] < 0 || pc[k] > max {
			return nil, fmt.Errorf("X%d components %d not in 1..%d: %w", k+1, pc[k], max, ErrOutOfRange)
		}
	}

	var pval interface{ At(i, j int) float64 }
	if !o.NoSignificance {
		p, err := src.Significance(o.Permutations)
		if err == nil && p == nil {
			err = ErrNoPValues
		}
		switch {
		case errors.Is(err, ErrNoPValues):
			Notice.Printf("drawing without significance markers: %v", err)
		case err != nil:
			return nil, fmt.Errorf("significance: %w", err)
		default:
			if pr, pcols := p.Dims(); pr < pc[0] || pcols < pc[1] {
				return nil, fmt.Errorf("p-values are %d×%d, want at least %d×%d", pr, pcols, pc[0], pc[1])
			}
			pval = p
		}
	}

	maxpc := float64(pc[0])
	if pc[1] > pc[0] {
		maxpc = float64(pc[1])
	}
	size := 10 * 7 / maxpc * o.FontScale
	d := &Diamond{
		PC:   pc,
		XMin: -maxpc / 2, XMax: maxpc / 2,
		YMin: 0, YMax: maxpc,
	}

	for i := 0; i < pc[0]; i++ {
		for j := 0; j < pc[1]; j++ {
			x, y := float64(j-i)/2, float64(i+j)/2
			c := Cell{
				Row: i, Col: j,
				Value: sim.At(i, j),
				X:     [4]float64{x, x + 0.5, x, x - 0.5},
				Y:     [4]float64{y, y + 0.5, y + 1, y + 0.5},
			}
			if pval != nil {
				c.Symbol = Symbol(pval.At(i, j), i, j)
				cx, cy := c.Center()
				d.Texts = append(d.Texts, Text{cx, cy, c.Symbol, AlignCenter, size})
			}
			d.Cells = append(d.Cells, c)
		}
	}

	off := 0.015 * maxpc
	for i := 0; i < pc[0]; i++ {
		fi := float64(i)
		d.Texts = append(d.Texts, Text{-fi/2 - 0.25 - off, fi/2 - off, fmt.Sprint(i + 1), AlignRight, size})
	}
	for j := 0; j < pc[1]; j++ {
		fj := float64(j)
		d.Texts = append(d.Texts, Text{fj/2 + 0.25 + off, fj/2 - off, fmt.Sprint(j + 1), AlignLeft, size})
	}

	ny := float64(pc[0]+pc[1]+4) / 16
	d.Texts = append(d.Texts,
		Text{-float64(pc[0]+3) / 4, ny, o.X1Name, AlignRight, nameSize},
		Text{float64(pc[1]+3) / 4, ny, o.X2Name, AlignLeft, nameSize},
	)
	return d, nil
}

// gray returns the 8-bit gray level of similarity v.
func gray(v float64) uint8 {
	return uint8(math.Round(v * 255))
}
