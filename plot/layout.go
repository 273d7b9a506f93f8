// Copyright 2017 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package plot

import (
	"math"

	"github.com/aclements/go-moremath/stats"
	"github.com/aclements/go-moremath/vec"
	"github.com/gonum/floats"
)

// Range is a closed interval of data coordinates.
type Range struct {
	Min, Max float64
}

// Width returns r.Max - r.Min.
func (r Range) Width() float64 {
	return r.Max - r.Min
}

// Axis is the geometry of one axis of a figure.
type Axis struct {
	// Line is the extent of the dashed guide line drawn along
	// this axis through the origin.
	Line Range

	// View is the visible part of the axis. If View is empty, the
	// renderer fits the axis to the data.
	View Range
}

// fixed reports whether the view of a has been set.
func (a Axis) fixed() bool {
	return a.View.Max > a.View.Min
}

// Padding returns how far the guide line and the view extend beyond
// data spanning [min, max] on either side. Both are proportional to
// the larger-magnitude extreme: the line extends by 40% of it and the
// view by 30%.
func Padding(min, max float64) (line, view float64) {
	e := math.Max(math.Abs(max), math.Abs(min))
	return 0.4 * e, 0.3 * e
}

// PadAxis returns the padded axis for data spanning [min, max].
func PadAxis(min, max float64) Axis {
	line, view := Padding(min, max)
	return Axis{
		Line: Range{min - line, max + line},
		View: Range{min - view, max + view},
	}
}

// padAxisOf returns the padded axis for the values in xs.
func padAxisOf(xs []float64) Axis {
	return PadAxis(stats.Bounds(xs))
}

// lineAxis returns the x axis of a line plot of n values drawn at
// 0 through n-1.
func lineAxis(n int) Axis {
	r := Range{0, 1.05 * float64(n)}
	return Axis{Line: r, View: r}
}

// index returns 0, 1, ..., n-1 as float64s.
func index(n int) []float64 {
	if n == 0 {
		return nil
	}
	return vec.Linspace(0, float64(n-1), n)
}

// circle returns n points on the circle of radius r around the origin.
func circle(r float64, n int) (xs, ys []float64) {
	xs = make([]float64, n)
	ys = make([]float64, n)
	for i, t := range vec.Linspace(0, 2*math.Pi, n) {
		xs[i] = r * math.Cos(t)
		ys[i] = r * math.Sin(t)
	}
	return
}

// Correlation loadings geometry.
const (
	corrLine     = 1.2
	corrView     = 1.1
	circlePoints = 100
)

// corrAxis returns the fixed axis of a correlation loadings plot.
func corrAxis() Axis {
	return Axis{
		Line: Range{-corrLine, corrLine},
		View: Range{-corrView, corrView},
	}
}

// labelOffset returns the offset of variable labels from their points
// in a loadings scatter plot, given the largest x and y values.
func labelOffset(xMax, yMax float64) (dx, dy float64) {
	return xMax / 100 * 5, yMax / 100 * 4
}

// biplotGeometry computes the shared axes of a biplot of the score
// columns sx, sy and loading columns lx, ly. The score range r spans
// from the most negative column minimum to the most positive column
// maximum, and both axes are derived from it. ratio is the largest
// ratio between the loading range and the score range, so dividing
// loadings by ratio maps them into the score range.
func biplotGeometry(sx, sy, lx, ly []float64) (x, y Axis, ratio float64) {
	sxMin, sxMax := stats.Bounds(sx)
	syMin, syMax := stats.Bounds(sy)
	r := Range{
		math.Min(-math.Abs(sxMin), -math.Abs(syMin)),
		math.Max(math.Abs(sxMax), math.Abs(syMax)),
	}
	d := r.Width()

	x = Axis{
		Line: Range{r.Min - 0.1*d, r.Max + 0.2*d},
		View: Range{r.Min - 0.05*d, r.Max + 0.15*d},
	}
	y = Axis{
		Line: Range{r.Min - 0.1*d, r.Max + 0.1*d},
		View: Range{r.Min - 0.05*d, r.Max + 0.05*d},
	}

	for _, l := range [][]float64{lx, ly} {
		lMin, lMax := stats.Bounds(l)
		if r.Min != 0 {
			ratio = math.Max(ratio, -math.Abs(lMin)/r.Min)
		}
		if r.Max != 0 {
			ratio = math.Max(ratio, math.Abs(lMax)/r.Max)
		}
	}
	if ratio == 0 {
		ratio = 1
	}
	return
}

// increments converts a cumulative series into per-step increments.
// The first element is kept as is.
func increments(cum []float64) []float64 {
	out := make([]float64, len(cum))
	if len(cum) == 0 {
		return out
	}
	out[0] = cum[0]
	floats.SubTo(out[1:], cum[1:], cum[:len(cum)-1])
	return out
}
