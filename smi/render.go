// Copyright 2017 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package smi

import "math"

// frame maps the data coordinates of a diamond plot to pixels. The
// diamond keeps an aspect ratio of 1 in the left 70% of the image and
// the color bar occupies a strip on the right.
type frame struct {
	d          *Diamond
	w, h       float64
	ox, oy, px float64 // pixel origin of (XMin, YMax) and pixels per unit

	// Color bar rectangle.
	barX, barY, barW, barH float64
}

func newFrame(d *Diamond, width, height int) *frame {
	w, h := float64(width), float64(height)
	f := &frame{d: d, w: w, h: h}

	left, right := 0.05*w, 0.7*w
	top, bottom := 0.05*h, 0.95*h
	vw, vh := d.XMax-d.XMin, d.YMax-d.YMin
	f.px = math.Min((right-left)/vw, (bottom-top)/vh)
	f.ox = left + ((right-left)-vw*f.px)/2
	f.oy = top + ((bottom-top)-vh*f.px)/2

	f.barX, f.barW = 0.85*w, 0.05*w
	f.barY, f.barH = 0.15*h, 0.7*h
	return f
}

// pt returns the pixel position of (x, y).
func (f *frame) pt(x, y float64) (float64, float64) {
	return f.ox + (x-f.d.XMin)*f.px, f.oy + (f.d.YMax-y)*f.px
}

// fontPixels returns the pixel height of a font of size points,
// taking the image height to be 4.8in at 100dpi.
func (f *frame) fontPixels(size float64) float64 {
	return size * f.h / 480 * 100 / 72
}

// barTicks are the labeled values of the color bar.
var barTicks = []float64{0, 0.2, 0.4, 0.6, 0.8, 1}

// barTick returns the pixel y of value v on the color bar.
func (f *frame) barTick(v float64) float64 {
	return f.barY + (1-v)*f.barH
}
