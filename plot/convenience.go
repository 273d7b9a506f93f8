// Copyright 2017 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package plot

import "github.com/hoggorm/mvplot/model"

// The functions below lay out a single kind of plot. opts may be nil.

// Scores plots the scores of two components.
func Scores(m model.Model, opts *Options) ([]*Figure, error) {
	return Plot(m, []Kind{KindScores}, opts)
}

// Loadings plots the loadings of two components as a scatter plot
// or, with opts.Line, as lines over the variables.
func Loadings(m model.Model, opts *Options) ([]*Figure, error) {
	return Plot(m, []Kind{KindLoadings}, opts)
}

// LoadingWeights is like Loadings, but plots X loading weights.
func LoadingWeights(m model.Model, opts *Options) ([]*Figure, error) {
	o := Options{}
	if opts != nil {
		o = *opts
	}
	o.Weights = true
	return Plot(m, []Kind{KindLoadings}, &o)
}

// CorrelationLoadings plots correlation loadings inside the unit
// circle and the circle of 50% explained variance.
func CorrelationLoadings(m model.Model, opts *Options) ([]*Figure, error) {
	return Plot(m, []Kind{KindCorrelationLoadings}, opts)
}

// Biplot plots scores and loadings scaled into the same range.
func Biplot(m model.Model, opts *Options) ([]*Figure, error) {
	return Plot(m, []Kind{KindBiplot}, opts)
}

// Coefficients plots the regression coefficients of each Y variable.
func Coefficients(m model.Model, opts *Options) ([]*Figure, error) {
	return Plot(m, []Kind{KindCoefficients}, opts)
}

// ExplainedVariance plots the explained variance by component.
func ExplainedVariance(m model.Model, opts *Options) ([]*Figure, error) {
	return Plot(m, []Kind{KindExplainedVariance}, opts)
}

// Predict plots predicted against reference values of each Y
// variable.
func Predict(m model.Model, opts *Options) ([]*Figure, error) {
	return Plot(m, []Kind{KindPrediction}, opts)
}
