// Copyright 2017 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package plot draws diagnostic plots of fitted multivariate models.
//
// Plot resolves a list of plot kinds against a model, fetches the
// results each plot needs and lays them out as Figures. A Figure is
// independent of any drawing library; Figure.GG converts it to a go-gg
// plot for rendering.
package plot

import (
	"errors"
	"fmt"
	"image/color"

	"github.com/gonum/matrix/mat64"
	"github.com/hoggorm/mvplot/model"
)

// A Figure is one laid-out plot.
type Figure struct {
	Kind Kind

	// Name distinguishes figures of the same Kind, for example
	// "x" and "y" for the two blocks of a scores plot. It may be
	// empty.
	Name string

	Title, XLabel, YLabel string

	X, Y Axis

	Points []PointSet
	Lines  []Line
}

// A PointSet is a set of labeled points drawn in one color.
type PointSet struct {
	Name string
	X, Y []float64

	// Labels, if non-nil, has one label per point. Each label is
	// drawn at its point offset by (LabelDX, LabelDY).
	Labels           []string
	LabelDX, LabelDY float64

	Color color.RGBA
}

// A Line is a polyline. Named lines are labeled at their last point.
type Line struct {
	Name   string
	X, Y   []float64
	Color  color.RGBA
	Dashed bool
}

var (
	black   = color.RGBA{0, 0, 0, 255}
	blue    = color.RGBA{0, 0, 255, 255}
	red     = color.RGBA{255, 0, 0, 255}
	green   = color.RGBA{0, 128, 0, 255}
	magenta = color.RGBA{191, 0, 191, 255}
	grey    = color.RGBA{128, 128, 128, 255}
	guide   = color.RGBA{102, 102, 102, 255}
)

// seriesColors is the color cycle of per-variable lines. Lines after
// the first len(seriesColors) are dashed.
var seriesColors = []color.RGBA{blue, red, black, green, magenta}

// Plot lays out the plots of m given by kinds. Each kind may produce
// several figures, for example one per block or one per Y variable.
//
// A figure that needs results m does not provide is skipped with a
// message to Notice. All other errors are returned.
func Plot(m model.Model, kinds []Kind, opts *Options) ([]*Figure, error) {
	if opts == nil {
		opts = &Options{}
	}
	reqs, err := Resolve(m, kinds, opts)
	if err != nil {
		return nil, err
	}
	b, err := newBuilder(m, opts)
	if err != nil {
		return nil, err
	}
	var figs []*Figure
	for _, req := range reqs {
		f, err := b.build(req)
		if err != nil {
			return nil, fmt.Errorf("%s plot: %w", req.Kind, err)
		}
		figs = append(figs, f...)
	}
	return figs, nil
}

// builder lays out figures for one model.
type builder struct {
	m    model.Model
	opts *Options

	objNames, newObjNames []string
	xNames, yNames        []string
}

func newBuilder(m model.Model, opts *Options) (*builder, error) {
	b := &builder{m: m, opts: opts}
	nx, err := m.NumVars(model.X)
	if err != nil {
		return nil, err
	}
	if b.objNames, err = DefaultLabels("Obj", opts.ObjNames, m.NumObjects()); err != nil {
		return nil, err
	}
	if b.xNames, err = DefaultLabels("Var", opts.XVarNames, nx); err != nil {
		return nil, err
	}
	if m.Family().HasY() {
		ny, err := m.NumVars(model.Y)
		if err != nil {
			return nil, err
		}
		if b.yNames, err = DefaultLabels("Var", opts.YVarNames, ny); err != nil {
			return nil, err
		}
	}
	if opts.NewX != nil {
		n, _ := opts.NewX.Dims()
		if b.newObjNames, err = DefaultLabels("Obj", opts.NewObjNames, n); err != nil {
			return nil, err
		}
	}
	return b, nil
}

func (b *builder) build(req Request) ([]*Figure, error) {
	switch req.Kind {
	case KindScores:
		if b.opts.NewX != nil {
			return b.each(req, []model.Block{model.X}, b.newScores)
		}
		return b.each(req, req.Block.Blocks(), b.scores)
	case KindLoadings:
		return b.each(req, req.Block.Blocks(), b.loadings)
	case KindCorrelationLoadings:
		return b.each(req, []model.Block{req.Block}, b.corrLoadings)
	case KindBiplot:
		return b.each(req, []model.Block{req.Block}, b.biplot)
	case KindCoefficients:
		figs, err := b.coefficients(req)
		return b.skip(req, figs, err)
	case KindExplainedVariance:
		if b.opts.Individual {
			return b.each(req, req.Block.Blocks(), b.explVarInd)
		}
		return b.each(req, req.Block.Blocks(), b.explVar)
	case KindPrediction:
		figs, err := b.prediction(req)
		return b.skip(req, figs, err)
	}
	return nil, fmt.Errorf("%v: %w", req.Kind, ErrUnknownPlotKind)
}

// each builds one figure per block, skipping blocks whose results
// are not available.
func (b *builder) each(req Request, blocks []model.Block, f func(Request, model.Block) (*Figure, error)) ([]*Figure, error) {
	var figs []*Figure
	for _, blk := range blocks {
		fig, err := f(req, blk)
		if errors.Is(err, model.ErrNotApplicable) {
			Notice.Printf("skipping %s plot of %s: %v", req.Kind, blk, err)
			continue
		} else if err != nil {
			return nil, err
		}
		figs = append(figs, fig)
	}
	return figs, nil
}

// skip passes on figs and err, turning results the model does not
// provide into a notice.
func (b *builder) skip(req Request, figs []*Figure, err error) ([]*Figure, error) {
	if errors.Is(err, model.ErrNotApplicable) {
		Notice.Printf("skipping %s plot: %v", req.Kind, err)
		return nil, nil
	}
	return figs, err
}

// names returns the variable labels of block blk.
func (b *builder) names(blk model.Block) []string {
	if blk == model.Y {
		return b.yNames
	}
	return b.xNames
}

// col returns the 1-based column c of m.
func col(m *mat64.Dense, c int) []float64 {
	return mat64.Col(nil, c-1, m)
}

// pcExplVar returns the calibrated explained variance of each
// component of block blk, or nil if the model does not provide it.
func (b *builder) pcExplVar(blk model.Block) ([]float64, error) {
	ev, err := b.m.CalExplVar(blk)
	if errors.Is(err, model.ErrNotApplicable) {
		return nil, nil
	}
	return ev, err
}

// pcLabel formats the axis label of component c, followed by the
// explained variance of that component in each of evs that is known.
func pcLabel(prefix string, c int, evs ...[]float64) string {
	s := fmt.Sprintf("%sPC%d", prefix, c)
	sep := " ("
	for _, ev := range evs {
		if ev == nil {
			continue
		}
		s += fmt.Sprintf("%s%.1f%%", sep, ev[c-1])
		sep = ", "
	}
	if sep == ", " {
		s += ")"
	}
	return s
}

// originGuides returns the dashed lines through the origin along both
// axes.
func originGuides(x, y Axis) []Line {
	return []Line{
		{X: []float64{0, 0}, Y: []float64{y.Line.Min, y.Line.Max}, Color: guide, Dashed: true},
		{X: []float64{x.Line.Min, x.Line.Max}, Y: []float64{0, 0}, Color: guide, Dashed: true},
	}
}

// zeroGuide returns the dashed horizontal line at y=0 across x.
func zeroGuide(x Axis) Line {
	return Line{X: []float64{x.Line.Min, x.Line.Max}, Y: []float64{0, 0}, Color: guide, Dashed: true}
}

func blockName(blk model.Block) string {
	switch blk {
	case model.X:
		return "x"
	case model.Y:
		return "y"
	}
	return ""
}
