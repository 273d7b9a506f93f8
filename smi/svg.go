// Copyright 2017 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package smi

import (
	"fmt"
	"io"
	"math"

	svg "github.com/ajstarks/svgo"
)

// WriteSVG renders d as an SVG image of the given size.
func (d *Diamond) WriteSVG(w io.Writer, width, height int) error {
	ew := &errWriter{w: w}
	f := newFrame(d, width, height)
	c := svg.New(ew)
	c.Start(width, height)
	c.Def()
	c.LinearGradient("smi-gray", 0, 100, 0, 0, []svg.Offcolor{
		{Offset: 0, Color: "black", Opacity: 1},
		{Offset: 100, Color: "white", Opacity: 1},
	})
	c.DefEnd()
	c.Rect(0, 0, width, height, "fill:white")

	for i := range d.Cells {
		cell := &d.Cells[i]
		var xs, ys [4]int
		for k := range xs {
			x, y := f.pt(cell.X[k], cell.Y[k])
			xs[k], ys[k] = iround(x), iround(y)
		}
		g := gray(cell.Value)
		c.Polygon(xs[:], ys[:], fmt.Sprintf("fill:rgb(%d,%d,%d);stroke:black;stroke-width:1", g, g, g))
	}
	for _, t := range d.Texts {
		x, y := f.pt(t.X, t.Y)
		c.Text(iround(x), iround(y), t.S, textStyle(t.Align, f.fontPixels(t.Size), symbolColor(d, t)))
	}

	// Color bar.
	bx, by, bw, bh := iround(f.barX), iround(f.barY), iround(f.barW), iround(f.barH)
	c.Rect(bx, by, bw, bh, "fill:url(#smi-gray);stroke:black;stroke-width:1")
	size := f.fontPixels(nameSize)
	for _, v := range barTicks {
		ty := iround(f.barTick(v))
		c.Line(bx+bw, ty, bx+bw+4, ty, "stroke:black;stroke-width:1")
		c.Text(bx+bw+6, ty, fmt.Sprintf("%.1f", v), textStyle(AlignLeft, size, "black"))
	}
	lx, ly := bx+bw+iround(3.5*size), by+bh/2
	c.Text(lx, ly, "SMI", fmt.Sprintf(`transform="rotate(-90 %d %d)"`, lx, ly), textStyle(AlignCenter, size, "black"))

	c.End()
	return ew.err
}

// symbolColor returns the text color of t. Markers on dark cells are
// drawn in white.
func symbolColor(d *Diamond, t Text) string {
	if t.Align != AlignCenter {
		return "black"
	}
	for i := range d.Cells {
		x, y := d.Cells[i].Center()
		if x == t.X && y == t.Y && d.Cells[i].Value < 0.5 {
			return "white"
		}
	}
	return "black"
}

func textStyle(a Align, px float64, color string) string {
	anchor := "start"
	switch a {
	case AlignCenter:
		anchor = "middle"
	case AlignRight:
		anchor = "end"
	}
	return fmt.Sprintf("font-family:sans-serif;font-size:%.1fpx;text-anchor:%s;dominant-baseline:middle;fill:%s", px, anchor, color)
}

func iround(x float64) int {
	return int(math.Round(x))
}

// errWriter records the first error of its underlying writer.
type errWriter struct {
	w   io.Writer
	err error
}

func (e *errWriter) Write(p []byte) (int, error) {
	if e.err != nil {
		return len(p), nil
	}
	n, err := e.w.Write(p)
	if err != nil {
		e.err = err
	}
	return n, err
}
