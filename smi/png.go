// Copyright 2017 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package smi

import (
	"fmt"
	"image"
	"image/color"
	"image/png"
	"io"
	"math"
	"strings"

	"golang.org/x/image/draw"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"
	"golang.org/x/image/vector"
)

// supersample is the factor shapes are rasterized at before scaling
// down to the output size.
const supersample = 2

// asciiSymbols replaces the markers basicfont cannot draw.
var asciiSymbols = strings.NewReplacer("·", ".", "⊃", ">", "⊂", "<")

// WritePNG renders d as a PNG image of the given size. Text is drawn
// in a fixed 7×13 pixel font, so font sizes are ignored.
func (d *Diamond) WritePNG(w io.Writer, width, height int) error {
	return png.Encode(w, d.Image(width, height))
}

// Image renders d as an image of the given size.
func (d *Diamond) Image(width, height int) *image.RGBA {
	// Shapes are drawn large and scaled down to smooth their
	// edges.
	big := image.NewRGBA(image.Rect(0, 0, width*supersample, height*supersample))
	draw.Draw(big, big.Bounds(), image.White, image.Point{}, draw.Src)
	f := newFrame(d, width*supersample, height*supersample)
	z := vector.NewRasterizer(big.Bounds().Dx(), big.Bounds().Dy())
	lw := float32(supersample)

	for i := range d.Cells {
		cell := &d.Cells[i]
		var xs, ys [4]float32
		for k := range xs {
			x, y := f.pt(cell.X[k], cell.Y[k])
			xs[k], ys[k] = float32(x), float32(y)
		}
		z.Reset(big.Bounds().Dx(), big.Bounds().Dy())
		z.MoveTo(xs[0], ys[0])
		for k := 1; k < 4; k++ {
			z.LineTo(xs[k], ys[k])
		}
		z.ClosePath()
		z.Draw(big, big.Bounds(), image.NewUniform(color.Gray{gray(cell.Value)}), image.Point{})

		for k := range xs {
			n := (k + 1) % 4
			stroke(z, big, xs[k], ys[k], xs[n], ys[n], lw)
		}
	}

	// Color bar.
	bx, by, bw, bh := iround(f.barX), iround(f.barY), iround(f.barW), iround(f.barH)
	for y := by; y < by+bh; y++ {
		v := 1 - float64(y-by)/float64(bh)
		draw.Draw(big, image.Rect(bx, y, bx+bw, y+1), image.NewUniform(color.Gray{gray(v)}), image.Point{}, draw.Src)
	}
	fx, fy, fw, fh := float32(bx), float32(by), float32(bw), float32(bh)
	stroke(z, big, fx, fy, fx+fw, fy, lw)
	stroke(z, big, fx+fw, fy, fx+fw, fy+fh, lw)
	stroke(z, big, fx+fw, fy+fh, fx, fy+fh, lw)
	stroke(z, big, fx, fy+fh, fx, fy, lw)
	for _, v := range barTicks {
		ty := float32(f.barTick(v))
		stroke(z, big, fx+fw, ty, fx+fw+4*lw, ty, lw)
	}

	dst := image.NewRGBA(image.Rect(0, 0, width, height))
	draw.BiLinear.Scale(dst, dst.Bounds(), big, big.Bounds(), draw.Src, nil)

	// Text is drawn at the output size.
	f = newFrame(d, width, height)
	for _, t := range d.Texts {
		x, y := f.pt(t.X, t.Y)
		col := image.Black
		if symbolColor(d, t) == "white" {
			col = image.White
		}
		drawText(dst, col, x, y, asciiSymbols.Replace(t.S), t.Align)
	}
	bx, bw = iround(f.barX), iround(f.barW)
	for _, v := range barTicks {
		drawText(dst, image.Black, float64(bx+bw+6), f.barTick(v), fmt.Sprintf("%.1f", v), AlignLeft)
	}
	drawText(dst, image.Black, float64(bx+bw+30), f.barY-10, "SMI", AlignLeft)
	return dst
}

// stroke draws a line of width lw from (x0, y0) to (x1, y1).
func stroke(z *vector.Rasterizer, dst draw.Image, x0, y0, x1, y1, lw float32) {
	dx, dy := x1-x0, y1-y0
	n := float32(math.Hypot(float64(dx), float64(dy)))
	if n == 0 {
		return
	}
	// Offset perpendicular to the line by half the width.
	ox, oy := -dy/n*lw/2, dx/n*lw/2
	b := dst.Bounds()
	z.Reset(b.Dx(), b.Dy())
	z.MoveTo(x0+ox, y0+oy)
	z.LineTo(x1+ox, y1+oy)
	z.LineTo(x1-ox, y1-oy)
	z.LineTo(x0-ox, y0-oy)
	z.ClosePath()
	z.Draw(dst, b, image.Black, image.Point{})
}

// drawText draws s vertically centered at (x, y).
func drawText(dst draw.Image, src image.Image, x, y float64, s string, a Align) {
	face := basicfont.Face7x13
	m := face.Metrics()
	adv := font.MeasureString(face, s)
	dot := fixed.Point26_6{
		X: fixed.Int26_6(x * 64),
		Y: fixed.Int26_6(y*64) + (m.Ascent-m.Descent)/2,
	}
	switch a {
	case AlignCenter:
		dot.X -= adv / 2
	case AlignRight:
		dot.X -= adv
	}
	fd := font.Drawer{Dst: dst, Src: src, Face: face, Dot: dot}
	fd.DrawString(s)
}
