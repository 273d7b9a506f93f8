// Copyright 2017 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package plot

import (
	"image/color"
	"io"
	"math"

	"github.com/aclements/go-gg/gg"
	"github.com/aclements/go-gg/table"
)

// dashLength is the length of a dash, as a fraction of the width of
// the axis view.
const dashLength = 0.015

// GG returns a go-gg plot of f.
func (f *Figure) GG() *gg.Plot {
	p := gg.NewPlot(new(table.Builder).Add("x", []float64{}).Add("y", []float64{}).Done())

	// Scales must be fixed before any layer uses them.
	if f.X.fixed() {
		p.SetScale("x", gg.NewLinearScaler().SetMin(f.X.View.Min).SetMax(f.X.View.Max))
	}
	if f.Y.fixed() {
		p.SetScale("y", gg.NewLinearScaler().SetMin(f.Y.View.Min).SetMax(f.Y.View.Max))
	}

	for _, l := range f.Lines {
		p.Save()
		p.SetData(f.lineTable(l))
		p.GroupBy("segment")
		p.Add(gg.LayerPaths{X: "x", Y: "y", Color: "color"})
		p.Restore()

		if l.Name != "" && len(l.X) > 0 {
			last := len(l.X) - 1
			p.Save()
			p.SetData(tagTable([]float64{l.X[last]}, []float64{l.Y[last]}, []string{l.Name}))
			p.Add(gg.LayerTags{X: "x", Y: "y", Label: "label"})
			p.Restore()
		}
	}

	for _, ps := range f.Points {
		colors := make([]color.RGBA, len(ps.X))
		for i := range colors {
			colors[i] = ps.Color
		}
		p.Save()
		p.SetData(new(table.Builder).Add("x", ps.X).Add("y", ps.Y).Add("color", colors).Done())
		p.Add(gg.LayerPoints{X: "x", Y: "y", Color: "color"})
		p.Restore()

		if len(ps.Labels) > 0 {
			tx := make([]float64, len(ps.X))
			ty := make([]float64, len(ps.Y))
			for i := range tx {
				tx[i], ty[i] = ps.X[i]+ps.LabelDX, ps.Y[i]+ps.LabelDY
			}
			p.Save()
			p.SetData(tagTable(tx, ty, ps.Labels))
			p.Add(gg.LayerTags{X: "x", Y: "y", Label: "label"})
			p.Restore()
		}
	}

	p.Add(gg.Title(f.Title))
	if f.XLabel != "" {
		p.Add(gg.AxisLabel("x", f.XLabel))
	}
	if f.YLabel != "" {
		p.Add(gg.AxisLabel("y", f.YLabel))
	}
	return p
}

// WriteSVG renders f as an SVG image of the given size.
func (f *Figure) WriteSVG(w io.Writer, width, height int) error {
	return f.GG().WriteSVG(w, width, height)
}

func tagTable(xs, ys []float64, labels []string) *table.Table {
	return new(table.Builder).Add("x", xs).Add("y", ys).Add("label", labels).Done()
}

// lineTable returns the vertices of l as a table. Each solid line is a
// single segment. A dashed line is cut into alternating dashes and
// gaps, and each dash is a separate segment.
func (f *Figure) lineTable(l Line) *table.Table {
	var xs, ys []float64
	var segs []int
	if !l.Dashed {
		xs, ys = l.X, l.Y
		segs = make([]int, len(xs))
	} else {
		xs, ys, segs = f.dashes(l)
	}
	colors := make([]color.RGBA, len(xs))
	for i := range colors {
		colors[i] = l.Color
	}
	return new(table.Builder).
		Add("x", xs).Add("y", ys).
		Add("segment", segs).
		Add("color", colors).
		Done()
}

// dashes splits l into dashes of dashLength, measured in the
// figure's view coordinates so dashes look the same along both axes.
func (f *Figure) dashes(l Line) (xs, ys []float64, segs []int) {
	sx, sy := viewWidth(f.X, l.X), viewWidth(f.Y, l.Y)
	seg, on, left := 0, true, dashLength
	emit := func(x, y float64) {
		if on {
			xs, ys, segs = append(xs, x), append(ys, y), append(segs, seg)
		}
	}
	for i := 0; i+1 < len(l.X); i++ {
		x0, y0, x1, y1 := l.X[i], l.Y[i], l.X[i+1], l.Y[i+1]
		n := math.Hypot((x1-x0)/sx, (y1-y0)/sy)
		if i == 0 {
			emit(x0, y0)
		}
		pos := 0.0
		for n-pos > left {
			pos += left
			t := pos / n
			emit(x0+t*(x1-x0), y0+t*(y1-y0))
			if on {
				seg++
			}
			on, left = !on, dashLength
			emit(x0+t*(x1-x0), y0+t*(y1-y0))
		}
		left -= n - pos
		emit(x1, y1)
	}
	return
}

// viewWidth returns the width of a's view, or the span of vals if a
// has no fixed view.
func viewWidth(a Axis, vals []float64) float64 {
	w := a.View.Width()
	if !a.fixed() {
		lo, hi := math.Inf(1), math.Inf(-1)
		for _, v := range vals {
			lo, hi = math.Min(lo, v), math.Max(hi, v)
		}
		w = hi - lo
	}
	if w <= 0 || math.IsInf(w, 0) || math.IsNaN(w) {
		return 1
	}
	return w
}
