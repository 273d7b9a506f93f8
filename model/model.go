// Copyright 2017 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package model describes fitted multivariate models (PCA, PCR, PLS1
// and PLS2) as seen by the plotting code.
//
// Models are fitted elsewhere. This package only defines the set of
// results a plot may ask a model for, and provides Results, a model
// decoded from a results file exported by the modeling library.
//
// Every family exposes the same capability set. A capability a family
// does not have (for example, Y scores of a PCA model) is reported as
// an error wrapping ErrNotApplicable rather than being missing from
// the type.
package model

import (
	"errors"
	"fmt"
	"strings"

	"github.com/gonum/matrix/mat64"
)

// ErrNotApplicable is returned by Model methods for results that the
// model's family does not have or that were not exported with the
// model.
var ErrNotApplicable = errors.New("not applicable")

// ErrShape indicates that model results have inconsistent dimensions.
var ErrShape = errors.New("inconsistent shape")

// Family is the kind of a fitted model.
type Family int

const (
	PCA Family = iota
	PCR
	PLS1
	PLS2
)

var familyNames = []string{"PCA", "PCR", "PLS1", "PLS2"}

func (f Family) String() string {
	if f < 0 || int(f) >= len(familyNames) {
		return fmt.Sprintf("Family(%d)", int(f))
	}
	return familyNames[f]
}

// HasY reports whether models of family f have a response (Y) block.
func (f Family) HasY() bool {
	return f != PCA
}

// ParseFamily parses a family name. It accepts the canonical names
// as well as the PLSR1 and PLSR2 spellings, in any case.
func ParseFamily(s string) (Family, error) {
	switch strings.ToUpper(strings.TrimSpace(s)) {
	case "PCA":
		return PCA, nil
	case "PCR":
		return PCR, nil
	case "PLS1", "PLSR1":
		return PLS1, nil
	case "PLS2", "PLSR2":
		return PLS2, nil
	}
	return 0, fmt.Errorf("unknown model family %q", s)
}

// Block selects the predictor (X) block, the response (Y) block, or
// both.
type Block int

const (
	X Block = iota
	Y
	Both
)

func (b Block) String() string {
	switch b {
	case X:
		return "X"
	case Y:
		return "Y"
	case Both:
		return "Both"
	}
	return fmt.Sprintf("Block(%d)", int(b))
}

// Blocks returns the individual blocks selected by b, in X, Y order.
func (b Block) Blocks() []Block {
	if b == Both {
		return []Block{X, Y}
	}
	return []Block{b}
}

// ParseBlock parses "X", "Y" or "Both", ignoring case.
func ParseBlock(s string) (Block, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "x":
		return X, nil
	case "y":
		return Y, nil
	case "both":
		return Both, nil
	}
	return 0, fmt.Errorf("unknown block %q (want X, Y or Both)", s)
}

// Model is the set of results a fitted model exposes.
//
// Component arguments are 1-based, as they are presented to users.
// Block arguments must be X or Y; Both is rejected. Returned matrices
// are copies and may be modified by the caller.
type Model interface {
	Family() Family

	// NumComp returns the number of components the model was
	// fitted with.
	NumComp() int

	// NumObjects returns the number of calibration objects (rows
	// of the X block), or 0 if the results are invalid.
	NumObjects() int

	// NumVars returns the number of variables (columns) in a
	// block.
	NumVars(b Block) (int, error)

	// Scores returns the objects × components score matrix.
	Scores(b Block) (*mat64.Dense, error)

	// Loadings returns the variables × components loading matrix.
	Loadings(b Block) (*mat64.Dense, error)

	// LoadingWeights returns the variables × components X loading
	// weights. Only PLS models have loading weights.
	LoadingWeights(b Block) (*mat64.Dense, error)

	// CorrLoadings returns the variables × components correlation
	// loadings.
	CorrLoadings(b Block) (*mat64.Dense, error)

	// CalExplVar returns the calibrated explained variance of
	// each component, in percent.
	CalExplVar(b Block) ([]float64, error)

	// CumExplVar returns the cumulative explained variance in
	// percent for 0..NumComp components. The first element is 0.
	CumExplVar(b Block, validated bool) ([]float64, error)

	// CumExplVarIndVar returns the cumulative explained variance
	// of each variable as a (NumComp+1) × variables matrix.
	CumExplVarIndVar(b Block, validated bool) (*mat64.Dense, error)

	// RegressionCoefficients returns the X variables × Y variables
	// regression coefficients of the model truncated to comp
	// components.
	RegressionCoefficients(comp int) (*mat64.Dense, error)

	// Input returns the calibration X data.
	Input() (*mat64.Dense, error)

	// Response returns the calibration Y data.
	Response() (*mat64.Dense, error)

	// PredictY predicts Y for new X data using comp components.
	PredictY(x *mat64.Dense, comp int) (*mat64.Dense, error)

	// ProjectScores projects new X data onto the model's
	// components, returning an objects × NumComp score matrix.
	ProjectScores(x *mat64.Dense) (*mat64.Dense, error)
}

// notApplicable returns an error wrapping ErrNotApplicable that names
// the family and the result that was requested.
func notApplicable(f Family, what string) error {
	return fmt.Errorf("%s model: %s: %w", f, what, ErrNotApplicable)
}
