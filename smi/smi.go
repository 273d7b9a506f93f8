// Copyright 2017 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package smi draws the diamond plot of a similarity of matrices
// index (SMI).
//
// An SMI compares the component subspaces of two data sets. Entry
// (i,j) of the similarity matrix is the similarity of the first i+1
// components of X1 with the first j+1 components of X2, and lies in
// [0,1]. The diamond plot tiles these entries as a 45° rotated grid,
// shades each cell by its similarity and marks it with its
// permutation-test significance.
package smi

import (
	"errors"
	"fmt"
	"io"
	"log"
	"math"
	"os"

	"github.com/gonum/matrix/mat64"
	"gopkg.in/yaml.v3"
)

var (
	// ErrOutOfRange is returned for similarity values outside
	// [0,1] and component counts outside the similarity matrix.
	ErrOutOfRange = errors.New("out of range")

	// ErrNoPValues is returned by Result.Significance when the
	// results carry no p-values.
	ErrNoPValues = errors.New("no significance p-values")
)

// Notice receives non-fatal messages about a plot.
var Notice = log.New(os.Stderr, "[smi] ", 0)

// A Source provides the similarity matrix of an SMI and its
// significance. Computing the index and running the permutation test
// is left to the modeling library.
type Source interface {
	// Similarity returns the similarity matrix, one row per
	// component count of X1 and one column per component count
	// of X2.
	Similarity() *mat64.Dense

	// Significance returns the p-value of each entry of the
	// similarity matrix using the given number of permutations.
	Significance(permutations int) (*mat64.Dense, error)
}

// Result is an SMI exported by the modeling library, with p-values
// precomputed. It is typically decoded from a YAML or JSON file with
// Load.
type Result struct {
	SMI [][]float64 `yaml:"smi"`

	// PValues, if present, has the shape of SMI.
	PValues [][]float64 `yaml:"pvalues,omitempty"`

	// Permutations is the number of permutations PValues were
	// computed with, or 0 if unknown.
	Permutations int `yaml:"permutations,omitempty"`

	sim, p *mat64.Dense
}

// Load decodes an SMI result from r and checks its shape and values.
func Load(r io.Reader) (*Result, error) {
	var res Result
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&res); err != nil {
		return nil, fmt.Errorf("decoding SMI results: %w", err)
	}
	if err := res.init(); err != nil {
		return nil, err
	}
	if err := Validate(res.sim); err != nil {
		return nil, err
	}
	return &res, nil
}

// LoadFile is like Load, but reads the named file.
func LoadFile(path string) (*Result, error) {
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

func (r *Result) init() error {
	var err error
	if r.sim, err = dense("smi", r.SMI); err != nil {
		return err
	}
	if r.PValues == nil {
		return nil
	}
	if r.p, err = dense("pvalues", r.PValues); err != nil {
		return err
	}
	pr, pc := r.p.Dims()
	sr, sc := r.sim.Dims()
	if pr != sr || pc != sc {
		return fmt.Errorf("pvalues are %d×%d, want %d×%d", pr, pc, sr, sc)
	}
	return nil
}

func dense(name string, rows [][]float64) (*mat64.Dense, error) {
	if len(rows) == 0 || len(rows[0]) == 0 {
		return nil, fmt.Errorf("%s is empty", name)
	}
	n := len(rows[0])
	data := make([]float64, 0, len(rows)*n)
	for i, row := range rows {
		if len(row) != n {
			return nil, fmt.Errorf("%s row %d has %d columns, want %d", name, i+1, len(row), n)
		}
		data = append(data, row...)
	}
	return mat64.NewDense(len(rows), n, data), nil
}

// Similarity returns a copy of the similarity matrix.
func (r *Result) Similarity() *mat64.Dense {
	if r.sim == nil {
		if err := r.init(); err != nil {
			return nil
		}
	}
	return mat64.DenseCopyOf(r.sim)
}

// Significance returns a copy of the precomputed p-values. If they
// were computed with a different number of permutations, it says so
// on Notice.
func (r *Result) Significance(permutations int) (*mat64.Dense, error) {
	if r.sim == nil {
		if err := r.init(); err != nil {
			return nil, err
		}
	}
	if r.p == nil {
		return nil, ErrNoPValues
	}
	if r.Permutations > 0 && permutations > 0 && r.Permutations != permutations {
		Notice.Printf("using p-values from %d permutations instead of %d", r.Permutations, permutations)
	}
	return mat64.DenseCopyOf(r.p), nil
}

// Validate checks that every entry of sim lies in [0,1].
func Validate(sim mat64.Matrix) error {
	rows, cols := sim.Dims()
	for i := 0; i < rows; i++ {
		for j := 0; j < cols; j++ {
			v := sim.At(i, j)
			if math.IsNaN(v) || v < 0 || v > 1 {
				return fmt.Errorf("similarity (%d,%d) = %g: %w", i+1, j+1, v, ErrOutOfRange)
			}
		}
	}
	return nil
}

// Symbol returns the significance marker of entry (i,j) with p-value
// p. Significant entries get stars or a dot. Other entries show how
// the subspaces relate: "=" on the diagonal, "⊃" where X1 has more
// components and "⊂" where X2 has more.
func Symbol(p float64, i, j int) string {
	switch {
	case p < 0.001:
		return "***"
	case p < 0.01:
		return "**"
	case p < 0.05:
		return "*"
	case p < 0.1:
		return "·"
	case i == j:
		return "="
	case i > j:
		return "⊃"
	}
	return "⊂"
}
