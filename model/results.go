// Copyright 2017 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package model

import (
	"fmt"
	"io"
	"os"

	"github.com/gonum/matrix/mat64"
	"gopkg.in/yaml.v3"
)

// Results is a fitted model as exported by the modeling library. It
// is typically decoded from a YAML or JSON results file with Load.
//
// Matrices are stored as lists of rows. Everything other than the X
// input, scores and loadings is optional; results that are missing
// are reported as ErrNotApplicable by the Model methods.
type Results struct {
	ModelFamily Family `yaml:"family"`

	// Comp is the number of fitted components.
	Comp int `yaml:"ncomp"`

	X BlockResults  `yaml:"x"`
	Y *BlockResults `yaml:"y,omitempty"`

	// Coefficients holds one X variables × Y variables matrix of
	// regression coefficients for each number of components,
	// 1..Comp. The coefficients apply to centered (and, if Std is
	// given, standardized) X and give centered (standardized) Y.
	Coefficients [][][]float64 `yaml:"coefficients,omitempty"`

	mats map[Block]*blockMats
	coef []*mat64.Dense
}

// BlockResults holds the results for one block of a model.
type BlockResults struct {
	Input [][]float64 `yaml:"input"`

	// Mean and Std are the column centering and scaling applied
	// before fitting. If omitted, they are 0 and 1.
	Mean []float64 `yaml:"mean,omitempty"`
	Std  []float64 `yaml:"std,omitempty"`

	Scores         [][]float64 `yaml:"scores"`
	Loadings       [][]float64 `yaml:"loadings"`
	LoadingWeights [][]float64 `yaml:"loadingWeights,omitempty"`
	CorrLoadings   [][]float64 `yaml:"corrLoadings,omitempty"`

	// Rotation maps centered data to scores (T = X R). For PCA and
	// PCR it may be omitted, in which case the loadings are used.
	Rotation [][]float64 `yaml:"rotation,omitempty"`

	CumCalExplVar       []float64   `yaml:"cumCalExplVar,omitempty"`
	CumValExplVar       []float64   `yaml:"cumValExplVar,omitempty"`
	CumCalExplVarIndVar [][]float64 `yaml:"cumCalExplVarIndVar,omitempty"`
	CumValExplVarIndVar [][]float64 `yaml:"cumValExplVarIndVar,omitempty"`
}

type blockMats struct {
	input, scores, loadings, weights, corr, rotation *mat64.Dense
	cumCalInd, cumValInd                             *mat64.Dense
	mean, std, cumCal, cumVal                        []float64
}

// Load decodes a results document from r. Since YAML is a superset of
// JSON, both formats are accepted. The decoded results are validated
// before Load returns.
func Load(r io.Reader) (*Results, error) {
	var res Results
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&res); err != nil {
		return nil, fmt.Errorf("decoding model results: %w", err)
	}
	if err := res.Validate(); err != nil {
		return nil, err
	}
	return &res, nil
}

// LoadFile is like Load, but reads the named file.
func LoadFile(path string) (*Results, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	res, err := Load(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return res, nil
}

// UnmarshalYAML decodes a family from its name.
func (f *Family) UnmarshalYAML(value *yaml.Node) error {
	var s string
	if err := value.Decode(&s); err != nil {
		return err
	}
	fam, err := ParseFamily(s)
	if err != nil {
		return err
	}
	*f = fam
	return nil
}

// Validate checks that the dimensions of all results are consistent
// with each other and with the model family. It must be called after
// modifying r and before using r as a Model; Load calls it.
func (r *Results) Validate() error {
	if r.ModelFamily < PCA || r.ModelFamily > PLS2 {
		return fmt.Errorf("invalid model family %d", int(r.ModelFamily))
	}
	if r.Comp < 1 {
		return fmt.Errorf("%s model: ncomp must be at least 1, got %d", r.ModelFamily, r.Comp)
	}

	mats := make(map[Block]*blockMats)
	xm, err := r.validateBlock(X, &r.X, -1)
	if err != nil {
		return err
	}
	mats[X] = xm
	nobj, _ := xm.input.Dims()

	switch {
	case r.ModelFamily.HasY() && r.Y == nil:
		return fmt.Errorf("%s model: missing Y block: %w", r.ModelFamily, ErrShape)
	case !r.ModelFamily.HasY() && r.Y != nil:
		return fmt.Errorf("%s model: unexpected Y block: %w", r.ModelFamily, ErrShape)
	case r.Y != nil:
		ym, err := r.validateBlock(Y, r.Y, nobj)
		if err != nil {
			return err
		}
		mats[Y] = ym
		if _, ny := ym.input.Dims(); r.ModelFamily == PLS1 && ny != 1 {
			return fmt.Errorf("PLS1 model: Y has %d variables, want 1: %w", ny, ErrShape)
		}
	}

	var coef []*mat64.Dense
	if len(r.Coefficients) > 0 {
		if !r.ModelFamily.HasY() {
			return fmt.Errorf("%s model: unexpected regression coefficients: %w", r.ModelFamily, ErrShape)
		}
		if len(r.Coefficients) != r.Comp {
			return fmt.Errorf("%s model: %d coefficient matrices for %d components: %w", r.ModelFamily, len(r.Coefficients), r.Comp, ErrShape)
		}
		_, nx := xm.input.Dims()
		_, ny := mats[Y].input.Dims()
		for i, rows := range r.Coefficients {
			m, err := checkedDense(fmt.Sprintf("coefficients[%d]", i), rows, nx, ny)
			if err != nil {
				return err
			}
			coef = append(coef, m)
		}
	}

	r.mats, r.coef = mats, coef
	return nil
}

func (r *Results) validateBlock(b Block, br *BlockResults, nobj int) (*blockMats, error) {
	prefix := fmt.Sprintf("%s model: %s", r.ModelFamily, b)
	wrap := func(err error) error {
		return fmt.Errorf("%s: %w", prefix, err)
	}

	input, err := dense("input", br.Input)
	if err != nil {
		return nil, wrap(err)
	}
	if input == nil {
		return nil, wrap(fmt.Errorf("missing input data: %w", ErrShape))
	}
	n, p := input.Dims()
	if nobj >= 0 && n != nobj {
		return nil, wrap(fmt.Errorf("input has %d objects, want %d: %w", n, nobj, ErrShape))
	}

	m := &blockMats{input: input}
	for _, f := range []struct {
		name     string
		rows     [][]float64
		r, c     int
		dst      **mat64.Dense
		required bool
	}{
		{"scores", br.Scores, n, r.Comp, &m.scores, b == X},
		{"loadings", br.Loadings, p, r.Comp, &m.loadings, b == X},
		{"loadingWeights", br.LoadingWeights, p, r.Comp, &m.weights, false},
		{"corrLoadings", br.CorrLoadings, p, r.Comp, &m.corr, false},
		{"rotation", br.Rotation, p, r.Comp, &m.rotation, false},
		{"cumCalExplVarIndVar", br.CumCalExplVarIndVar, r.Comp + 1, p, &m.cumCalInd, false},
		{"cumValExplVarIndVar", br.CumValExplVarIndVar, r.Comp + 1, p, &m.cumValInd, false},
	} {
		if f.rows == nil {
			if f.required {
				return nil, wrap(fmt.Errorf("missing %s: %w", f.name, ErrShape))
			}
			continue
		}
		d, err := checkedDense(f.name, f.rows, f.r, f.c)
		if err != nil {
			return nil, wrap(err)
		}
		*f.dst = d
	}

	for _, f := range []struct {
		name string
		v    []float64
		n    int
		dst  *[]float64
	}{
		{"mean", br.Mean, p, &m.mean},
		{"std", br.Std, p, &m.std},
		{"cumCalExplVar", br.CumCalExplVar, r.Comp + 1, &m.cumCal},
		{"cumValExplVar", br.CumValExplVar, r.Comp + 1, &m.cumVal},
	} {
		if f.v == nil {
			continue
		}
		if len(f.v) != f.n {
			return nil, wrap(fmt.Errorf("%s has length %d, want %d: %w", f.name, len(f.v), f.n, ErrShape))
		}
		*f.dst = append([]float64(nil), f.v...)
	}
	for j, s := range m.std {
		if s == 0 {
			return nil, wrap(fmt.Errorf("std[%d] is zero", j))
		}
	}
	return m, nil
}

// dense converts a list of rows to a matrix. It returns nil for an
// empty list.
func dense(name string, rows [][]float64) (*mat64.Dense, error) {
	if len(rows) == 0 {
		return nil, nil
	}
	c := len(rows[0])
	if c == 0 {
		return nil, fmt.Errorf("%s: empty rows: %w", name, ErrShape)
	}
	data := make([]float64, 0, len(rows)*c)
	for i, row := range rows {
		if len(row) != c {
			return nil, fmt.Errorf("%s: row %d has %d columns, want %d: %w", name, i, len(row), c, ErrShape)
		}
		data = append(data, row...)
	}
	return mat64.NewDense(len(rows), c, data), nil
}

func checkedDense(name string, rows [][]float64, r, c int) (*mat64.Dense, error) {
	m, err := dense(name, rows)
	if err != nil {
		return nil, err
	}
	if m == nil {
		return nil, fmt.Errorf("%s: empty matrix: %w", name, ErrShape)
	}
	if mr, mc := m.Dims(); mr != r || mc != c {
		return nil, fmt.Errorf("%s is %d×%d, want %d×%d: %w", name, mr, mc, r, c, ErrShape)
	}
	return m, nil
}

func (r *Results) block(b Block) (*blockMats, error) {
	if r.mats == nil {
		if err := r.Validate(); err != nil {
			return nil, err
		}
	}
	switch b {
	case X:
		return r.mats[X], nil
	case Y:
		if !r.ModelFamily.HasY() {
			return nil, notApplicable(r.ModelFamily, "Y block")
		}
		return r.mats[Y], nil
	}
	return nil, fmt.Errorf("%s model: results need block X or Y, got %s", r.ModelFamily, b)
}

func copyOf(m *mat64.Dense) *mat64.Dense {
	return mat64.DenseCopyOf(m)
}

// Family returns the model family of the results.
func (r *Results) Family() Family { return r.ModelFamily }

// NumComp returns the number of components in the results.
func (r *Results) NumComp() int { return r.Comp }

// NumObjects returns the number of rows of the X input, or 0 if r
// does not validate.
func (r *Results) NumObjects() int {
	m, err := r.block(X)
	if err != nil {
		return 0
	}
	n, _ := m.input.Dims()
	return n
}

// NumVars returns the number of columns of the input of block b.
func (r *Results) NumVars(b Block) (int, error) {
	m, err := r.block(b)
	if err != nil {
		return 0, err
	}
	_, p := m.input.Dims()
	return p, nil
}

// Scores returns the scores of block b. Y scores are optional in
// the results.
func (r *Results) Scores(b Block) (*mat64.Dense, error) {
	m, err := r.block(b)
	if err != nil {
		return nil, err
	}
	if m.scores == nil {
		return nil, notApplicable(r.ModelFamily, fmt.Sprintf("%s scores not in results", b))
	}
	return copyOf(m.scores), nil
}

// Loadings returns the loadings of block b. Y loadings are optional
// in the results.
func (r *Results) Loadings(b Block) (*mat64.Dense, error) {
	m, err := r.block(b)
	if err != nil {
		return nil, err
	}
	if m.loadings == nil {
		return nil, notApplicable(r.ModelFamily, fmt.Sprintf("%s loadings not in results", b))
	}
	return copyOf(m.loadings), nil
}

// LoadingWeights returns the X loading weights of a PLS model.
func (r *Results) LoadingWeights(b Block) (*mat64.Dense, error) {
	if r.ModelFamily == PCA || r.ModelFamily == PCR {
		return nil, notApplicable(r.ModelFamily, "loading weights")
	}
	if b == Y {
		return nil, notApplicable(r.ModelFamily, "Y loading weights")
	}
	m, err := r.block(b)
	if err != nil {
		return nil, err
	}
	if m.weights == nil {
		return nil, notApplicable(r.ModelFamily, "loading weights not in results")
	}
	return copyOf(m.weights), nil
}

// CorrLoadings returns the correlation loadings of block b.
func (r *Results) CorrLoadings(b Block) (*mat64.Dense, error) {
	m, err := r.block(b)
	if err != nil {
		return nil, err
	}
	if m.corr == nil {
		return nil, notApplicable(r.ModelFamily, fmt.Sprintf("%s correlation loadings not in results", b))
	}
	return copyOf(m.corr), nil
}

// CalExplVar returns the calibrated explained variance of each
// component, derived from the cumulative values.
func (r *Results) CalExplVar(b Block) ([]float64, error) {
	cum, err := r.CumExplVar(b, false)
	if err != nil {
		return nil, err
	}
	out := make([]float64, len(cum)-1)
	for i := range out {
		out[i] = cum[i+1] - cum[i]
	}
	return out, nil
}

// CumExplVar returns the cumulative explained variance of block b.
func (r *Results) CumExplVar(b Block, validated bool) ([]float64, error) {
	m, err := r.block(b)
	if err != nil {
		return nil, err
	}
	v, what := m.cumCal, "calibrated"
	if validated {
		v, what = m.cumVal, "validated"
	}
	if v == nil {
		return nil, notApplicable(r.ModelFamily, fmt.Sprintf("%s %s explained variance not in results", what, b))
	}
	return append([]float64(nil), v...), nil
}

// CumExplVarIndVar returns the cumulative explained variance of
// each variable of block b. PLS1 results never have it for Y.
func (r *Results) CumExplVarIndVar(b Block, validated bool) (*mat64.Dense, error) {
	what := "calibrated"
	if validated {
		what = "validated"
	}
	if r.ModelFamily == PLS1 && b == Y {
		return nil, notApplicable(r.ModelFamily, fmt.Sprintf("%s explained variance of individual Y variables", what))
	}
	m, err := r.block(b)
	if err != nil {
		return nil, err
	}
	v := m.cumCalInd
	if validated {
		v = m.cumValInd
	}
	if v == nil {
		return nil, notApplicable(r.ModelFamily, fmt.Sprintf("%s explained variance of individual %s variables not in results", what, b))
	}
	return copyOf(v), nil
}

// RegressionCoefficients returns the coefficients of the
// comp-component model.
func (r *Results) RegressionCoefficients(comp int) (*mat64.Dense, error) {
	if !r.ModelFamily.HasY() {
		return nil, notApplicable(r.ModelFamily, "regression coefficients")
	}
	if err := r.checkComp(comp); err != nil {
		return nil, err
	}
	if r.coef == nil {
		return nil, notApplicable(r.ModelFamily, "regression coefficients not in results")
	}
	return copyOf(r.coef[comp-1]), nil
}

// Input returns the calibration X data.
func (r *Results) Input() (*mat64.Dense, error) {
	m, err := r.block(X)
	if err != nil {
		return nil, err
	}
	return copyOf(m.input), nil
}

// Response returns the calibration Y data.
func (r *Results) Response() (*mat64.Dense, error) {
	m, err := r.block(Y)
	if err != nil {
		return nil, err
	}
	return copyOf(m.input), nil
}

func (r *Results) checkComp(comp int) error {
	if comp < 1 || comp > r.Comp {
		return fmt.Errorf("%s model: component %d not in 1..%d", r.ModelFamily, comp, r.Comp)
	}
	return nil
}
