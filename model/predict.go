// Copyright 2017 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package model

import (
	"fmt"

	"github.com/gonum/matrix/mat64"
)

// PredictY predicts the response for new X data using the regression
// coefficients of a comp-component model.
func (r *Results) PredictY(x *mat64.Dense, comp int) (*mat64.Dense, error) {
	b, err := r.RegressionCoefficients(comp)
	if err != nil {
		return nil, err
	}
	xm, _ := r.block(X)
	ym, _ := r.block(Y)

	xs, err := standardize(x, xm)
	if err != nil {
		return nil, fmt.Errorf("%s model: predicting Y: %w", r.ModelFamily, err)
	}
	var y mat64.Dense
	y.Mul(xs, b)

	n, q := y.Dims()
	for j := 0; j < q; j++ {
		s, mu := 1.0, 0.0
		if ym.std != nil {
			s = ym.std[j]
		}
		if ym.mean != nil {
			mu = ym.mean[j]
		}
		for i := 0; i < n; i++ {
			y.Set(i, j, y.At(i, j)*s+mu)
		}
	}
	return &y, nil
}

// ProjectScores projects new X data onto the model's components. It
// uses the X rotation from the results if present and otherwise the X
// loadings.
func (r *Results) ProjectScores(x *mat64.Dense) (*mat64.Dense, error) {
	xm, err := r.block(X)
	if err != nil {
		return nil, err
	}
	rot := xm.rotation
	if rot == nil {
		if r.ModelFamily == PLS1 || r.ModelFamily == PLS2 {
			return nil, notApplicable(r.ModelFamily, "projecting new X requires an X rotation")
		}
		rot = xm.loadings
	}
	xs, err := standardize(x, xm)
	if err != nil {
		return nil, fmt.Errorf("%s model: projecting scores: %w", r.ModelFamily, err)
	}
	var t mat64.Dense
	t.Mul(xs, rot)
	return &t, nil
}

// standardize returns a copy of x centered and scaled by the block's
// mean and standard deviation.
func standardize(x *mat64.Dense, m *blockMats) (*mat64.Dense, error) {
	_, p := m.input.Dims()
	n, c := x.Dims()
	if c != p {
		return nil, fmt.Errorf("new data has %d variables, want %d: %w", c, p, ErrShape)
	}
	out := mat64.NewDense(n, c, nil)
	for i := 0; i < n; i++ {
		for j := 0; j < c; j++ {
			v := x.At(i, j)
			if m.mean != nil {
				v -= m.mean[j]
			}
			if m.std != nil {
				v /= m.std[j]
			}
			out.Set(i, j, v)
		}
	}
	return out, nil
}
