// Copyright 2017 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package plot

import (
	"errors"
	"fmt"
	"math"
	"strings"

	"github.com/aclements/go-moremath/stats"
	"github.com/gonum/floats"
	"github.com/gonum/matrix/mat64"
	"github.com/hoggorm/mvplot/model"
)

func (b *builder) scores(req Request, blk model.Block) (*Figure, error) {
	s, err := b.m.Scores(blk)
	if err != nil {
		return nil, err
	}
	return b.scoreFigure(req, blk, s, b.objNames)
}

// newScores plots the projection of the new X data onto the model.
func (b *builder) newScores(req Request, _ model.Block) (*Figure, error) {
	s, err := b.m.ProjectScores(b.opts.NewX)
	if err != nil {
		return nil, err
	}
	fig, err := b.scoreFigure(req, model.X, s, b.newObjNames)
	if err != nil {
		return nil, err
	}
	fig.Name = "new"
	return fig, nil
}

func (b *builder) scoreFigure(req Request, blk model.Block, s *mat64.Dense, labels []string) (*Figure, error) {
	c0, c1 := req.Comp[0], req.Comp[1]
	sx, sy := col(s, c0), col(s, c1)
	if len(sx) != len(labels) {
		return nil, fmt.Errorf("%d labels for %d objects: %w", len(labels), len(sx), ErrLabelCount)
	}
	evs, err := b.modelExplVar()
	if err != nil {
		return nil, err
	}
	x, y := padAxisOf(sx), padAxisOf(sy)
	return &Figure{
		Kind:   KindScores,
		Name:   blockName(blk),
		Title:  fmt.Sprintf("%s scores plot", blk),
		XLabel: pcLabel("", c0, evs...),
		YLabel: pcLabel("", c1, evs...),
		X:      x,
		Y:      y,
		Lines:  originGuides(x, y),
		Points: []PointSet{{X: sx, Y: sy, Labels: labels, Color: grey}},
	}, nil
}

// modelExplVar returns the per-component explained variance of X
// and, for models with a Y block, of Y.
func (b *builder) modelExplVar() ([][]float64, error) {
	xev, err := b.pcExplVar(model.X)
	if err != nil {
		return nil, err
	}
	if !b.m.Family().HasY() {
		return [][]float64{xev}, nil
	}
	yev, err := b.pcExplVar(model.Y)
	if err != nil {
		return nil, err
	}
	return [][]float64{xev, yev}, nil
}

func (b *builder) loadings(req Request, blk model.Block) (*Figure, error) {
	weights := b.opts.Weights && blk == model.X
	var l *mat64.Dense
	var err error
	if weights {
		l, err = b.m.LoadingWeights(blk)
	} else {
		l, err = b.m.Loadings(blk)
	}
	if err != nil {
		return nil, err
	}

	c0, c1 := req.Comp[0], req.Comp[1]
	lx, ly := col(l, c0), col(l, c1)
	fig := &Figure{
		Kind:  KindLoadings,
		Name:  blockName(blk),
		Title: "Loadings plot",
	}
	what := "Loading"
	if weights {
		fig.Title = "Loading weights plot"
		what = "Loading weight"
	}

	if b.opts.Line {
		xs := index(len(lx))
		fig.X = lineAxis(len(lx))
		fig.XLabel, fig.YLabel = "Variable", what
		fig.Lines = []Line{
			zeroGuide(fig.X),
			{Name: fmt.Sprintf("PC%d", c0), X: xs, Y: lx, Color: blue},
			{Name: fmt.Sprintf("PC%d", c1), X: xs, Y: ly, Color: red},
		}
		return fig, nil
	}

	ev, err := b.pcExplVar(blk)
	if err != nil {
		return nil, err
	}
	fig.X, fig.Y = padAxisOf(lx), padAxisOf(ly)
	fig.XLabel, fig.YLabel = pcLabel("", c0, ev), pcLabel("", c1, ev)
	dx, dy := labelOffset(floats.Max(lx), floats.Max(ly))
	fig.Lines = originGuides(fig.X, fig.Y)
	fig.Points = []PointSet{{
		X: lx, Y: ly,
		Labels:  b.names(blk),
		LabelDX: dx, LabelDY: dy,
		Color: grey,
	}}
	return fig, nil
}

func (b *builder) corrLoadings(req Request, blk model.Block) (*Figure, error) {
	c0, c1 := req.Comp[0], req.Comp[1]
	fig := &Figure{
		Kind:  KindCorrelationLoadings,
		Name:  blockName(blk),
		Title: "X & Y correlation loadings plot",
		X:     corrAxis(),
		Y:     corrAxis(),
	}
	if blk != model.Both {
		fig.Title = fmt.Sprintf("%s correlation loadings plot", blk)
	}
	fig.Lines = originGuides(fig.X, fig.Y)
	for _, r := range []float64{math.Sqrt(0.5), 1} {
		xs, ys := circle(r, circlePoints)
		fig.Lines = append(fig.Lines, Line{X: xs, Y: ys, Color: black})
	}

	// With both blocks, X is red and Y is blue. A single block is
	// always blue.
	xColor := blue
	if blk == model.Both {
		xColor = red
	}
	var evs [][]float64
	for _, pb := range blk.Blocks() {
		cl, err := b.m.CorrLoadings(pb)
		if err != nil {
			return nil, err
		}
		ev, err := b.pcExplVar(pb)
		if err != nil {
			return nil, err
		}
		evs = append(evs, ev)
		c := blue
		if pb == model.X {
			c = xColor
		}
		fig.Points = append(fig.Points, PointSet{
			Name:   pb.String(),
			X:      col(cl, c0),
			Y:      col(cl, c1),
			Labels: b.names(pb),
			Color:  c,
		})
	}
	fig.XLabel, fig.YLabel = pcLabel("", c0, evs...), pcLabel("", c1, evs...)
	return fig, nil
}

func (b *builder) biplot(req Request, blk model.Block) (*Figure, error) {
	s, err := b.m.Scores(blk)
	if err != nil {
		return nil, err
	}
	l, err := b.m.Loadings(blk)
	if err != nil {
		return nil, err
	}
	ev, err := b.pcExplVar(blk)
	if err != nil {
		return nil, err
	}

	c0, c1 := req.Comp[0], req.Comp[1]
	sx, sy := col(s, c0), col(s, c1)
	lx, ly := col(l, c0), col(l, c1)
	x, y, ratio := biplotGeometry(sx, sy, lx, ly)

	// Draw loadings in score coordinates.
	floats.Scale(1/ratio, lx)
	floats.Scale(1/ratio, ly)

	return &Figure{
		Kind:   KindBiplot,
		Name:   blockName(blk),
		Title:  fmt.Sprintf("%s biplot (loadings scaled by 1/%.3g)", blk, ratio),
		XLabel: pcLabel("", c0, ev),
		YLabel: pcLabel("", c1, ev),
		X:      x,
		Y:      y,
		Lines:  originGuides(x, y),
		Points: []PointSet{
			{Name: "scores", X: sx, Y: sy, Labels: b.objNames, Color: grey},
			{Name: "loadings", X: lx, Y: ly, Labels: b.names(blk), Color: red},
		},
	}, nil
}

func (b *builder) coefficients(req Request) ([]*Figure, error) {
	comp := req.Comp[0]
	coef, err := b.m.RegressionCoefficients(comp)
	if err != nil {
		return nil, err
	}
	p, q := coef.Dims()
	xs, ax := index(p), lineAxis(p)
	var figs []*Figure
	for j := 0; j < q; j++ {
		line := Line{X: xs, Y: mat64.Col(nil, j, coef), Color: blue}
		fig := &Figure{
			Kind:   KindCoefficients,
			Title:  "Regression coefficients",
			XLabel: "Variable",
			YLabel: fmt.Sprintf("Coefficient (%d comp.)", comp),
			X:      ax,
		}
		if q > 1 {
			line.Name = b.yNames[j]
			fig.Name = fmt.Sprintf("y%d", j+1)
		}
		fig.Lines = []Line{zeroGuide(ax), line}
		figs = append(figs, fig)
	}
	return figs, nil
}

// explVar plots the calibrated and validated explained variance of
// block blk.
func (b *builder) explVar(req Request, blk model.Block) (*Figure, error) {
	cal, err := b.m.CumExplVar(blk, false)
	if err != nil {
		return nil, err
	}
	val, err := b.m.CumExplVar(blk, true)
	if errors.Is(err, model.ErrNotApplicable) {
		Notice.Printf("%s plot of %s: no validated explained variance", req.Kind, blk)
		val = nil
	} else if err != nil {
		return nil, err
	}
	if b.opts.Incremental {
		cal = increments(cal)
		if val != nil {
			val = increments(val)
		}
	}

	xs := index(len(cal))
	fig := &Figure{
		Kind:   KindExplainedVariance,
		Name:   blockName(blk),
		Title:  fmt.Sprintf("Explained variance in %s", blk),
		XLabel: "# of components",
		YLabel: "Explained variance [%]",
		Lines:  []Line{{Name: "Calibrated", X: xs, Y: cal, Color: blue}},
	}
	if val != nil {
		fig.Lines = append(fig.Lines, Line{Name: "Validated", X: xs, Y: val, Color: red})
	}
	return fig, nil
}

// explVarInd plots the explained variance of each variable of block
// blk.
func (b *builder) explVarInd(req Request, blk model.Block) (*Figure, error) {
	ev, err := b.m.CumExplVarIndVar(blk, req.Validated)
	if err != nil {
		return nil, err
	}
	what, suffix := "CALIBRATED", "CAL"
	if req.Validated {
		what, suffix = "VALIDATED", "VAL"
	}
	names := b.names(blk)
	n, p := ev.Dims()
	if p != len(names) {
		return nil, fmt.Errorf("%d labels for %d variables: %w", len(names), p, ErrLabelCount)
	}

	xs := index(n)
	fig := &Figure{
		Kind:   KindExplainedVariance,
		Name:   blockName(blk) + "-" + strings.ToLower(suffix),
		Title:  fmt.Sprintf("%s Explained variance of individual variables in %s", what, blk),
		XLabel: "# of components",
		YLabel: "Explained variance [%]",
	}
	for k := 0; k < p; k++ {
		v := mat64.Col(nil, k, ev)
		if b.opts.Incremental {
			v = increments(v)
		}
		fig.Lines = append(fig.Lines, Line{
			Name:   names[k] + " " + suffix,
			X:      xs,
			Y:      v,
			Color:  seriesColors[k%len(seriesColors)],
			Dashed: k%(2*len(seriesColors)) >= len(seriesColors),
		})
	}
	return fig, nil
}

// prediction plots predicted against reference values of each Y
// variable, using the calibration data or the new data.
func (b *builder) prediction(req Request) ([]*Figure, error) {
	comp := req.Comp[0]
	x, ref, labels := b.opts.NewX, b.opts.NewY, b.newObjNames
	if x == nil {
		var err error
		if ref, err = b.m.Response(); err != nil {
			return nil, err
		}
		if x, err = b.m.Input(); err != nil {
			return nil, err
		}
		labels = b.objNames
	}
	pred, err := b.m.PredictY(x, comp)
	if err != nil {
		return nil, err
	}
	n, q := ref.Dims()
	if pn, pq := pred.Dims(); pn != n || pq != q {
		return nil, fmt.Errorf("reference Y is %d×%d but prediction is %d×%d: %w", n, q, pn, pq, model.ErrShape)
	}
	if q != len(b.yNames) {
		return nil, fmt.Errorf("%d labels for %d Y variables: %w", len(b.yNames), q, ErrLabelCount)
	}

	var figs []*Figure
	for j := 0; j < q; j++ {
		yr, yp := mat64.Col(nil, j, ref), mat64.Col(nil, j, pred)
		rMin, rMax := stats.Bounds(yr)
		pMin, pMax := stats.Bounds(yp)
		ax := PadAxis(math.Min(rMin, pMin), math.Max(rMax, pMax))
		fig := &Figure{
			Kind:   KindPrediction,
			Title:  "Prediction plot",
			XLabel: "Reference",
			YLabel: fmt.Sprintf("Predicted (%d comp.)", comp),
			X:      ax,
			Y:      ax,
			Lines: []Line{{
				X:      []float64{ax.Line.Min, ax.Line.Max},
				Y:      []float64{ax.Line.Min, ax.Line.Max},
				Color:  guide,
				Dashed: true,
			}},
			Points: []PointSet{{X: yr, Y: yp, Labels: labels, Color: grey}},
		}
		if q > 1 {
			fig.Title = fmt.Sprintf("Prediction plot (%s)", b.yNames[j])
			fig.Name = fmt.Sprintf("y%d", j+1)
		}
		figs = append(figs, fig)
	}
	return figs, nil
}
