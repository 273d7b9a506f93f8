// Copyright 2017 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package model

import (
	"errors"
	"reflect"
	"strings"
	"testing"

	"github.com/gonum/matrix/mat64"
)

func mustLoad(t *testing.T, path string) *Results {
	t.Helper()
	res, err := LoadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	return res
}

func rows(m *mat64.Dense) [][]float64 {
	r, c := m.Dims()
	out := make([][]float64, r)
	for i := range out {
		out[i] = make([]float64, c)
		for j := range out[i] {
			out[i][j] = m.At(i, j)
		}
	}
	return out
}

func TestParseFamily(t *testing.T) {
	for _, test := range []struct {
		in   string
		want Family
	}{
		{"PCA", PCA}, {"pcr", PCR}, {"PLS1", PLS1}, {"plsr1", PLS1},
		{"PLS2", PLS2}, {" PLSR2 ", PLS2},
	} {
		got, err := ParseFamily(test.in)
		if err != nil || got != test.want {
			t.Errorf("ParseFamily(%q) = %v, %v; want %v", test.in, got, err, test.want)
		}
	}
	if _, err := ParseFamily("LDA"); err == nil {
		t.Errorf("ParseFamily(LDA) succeeded")
	}
}

func TestParseBlock(t *testing.T) {
	for in, want := range map[string]Block{"X": X, "y": Y, "both": Both, "Both": Both} {
		got, err := ParseBlock(in)
		if err != nil || got != want {
			t.Errorf("ParseBlock(%q) = %v, %v; want %v", in, got, err, want)
		}
	}
	if _, err := ParseBlock("Z"); err == nil {
		t.Errorf("ParseBlock(Z) succeeded")
	}
	if got := Both.Blocks(); !reflect.DeepEqual(got, []Block{X, Y}) {
		t.Errorf("Both.Blocks() = %v", got)
	}
}

func TestLoadPLS1(t *testing.T) {
	res := mustLoad(t, "testdata/pls1.yaml")
	if res.Family() != PLS1 || res.NumComp() != 2 || res.NumObjects() != 3 {
		t.Fatalf("got %v/%d comp/%d objects", res.Family(), res.NumComp(), res.NumObjects())
	}
	if n, err := res.NumVars(Y); err != nil || n != 1 {
		t.Errorf("NumVars(Y) = %d, %v; want 1", n, err)
	}

	w, err := res.LoadingWeights(X)
	if err != nil {
		t.Fatal(err)
	}
	if want := [][]float64{{0.71, 0.2}, {0.70, -0.2}}; !reflect.DeepEqual(rows(w), want) {
		t.Errorf("LoadingWeights(X) = %v; want %v", rows(w), want)
	}

	cal, err := res.CalExplVar(X)
	if err != nil {
		t.Fatal(err)
	}
	if want := []float64{80, 15}; !reflect.DeepEqual(cal, want) {
		t.Errorf("CalExplVar(X) = %v; want %v", cal, want)
	}
	val, err := res.CumExplVar(Y, true)
	if err != nil {
		t.Fatal(err)
	}
	if want := []float64{0, 85, 97}; !reflect.DeepEqual(val, want) {
		t.Errorf("CumExplVar(Y, true) = %v; want %v", val, want)
	}
}

func TestNotApplicable(t *testing.T) {
	pls1 := mustLoad(t, "testdata/pls1.yaml")
	pca := mustLoad(t, "testdata/pca.json")

	for _, test := range []struct {
		name string
		f    func() error
	}{
		{"PLS1 Y loading weights", func() error { _, err := pls1.LoadingWeights(Y); return err }},
		{"PLS1 Y individual variance", func() error { _, err := pls1.CumExplVarIndVar(Y, false); return err }},
		{"PCA Y scores", func() error { _, err := pca.Scores(Y); return err }},
		{"PCA response", func() error { _, err := pca.Response(); return err }},
		{"PCA loading weights", func() error { _, err := pca.LoadingWeights(X); return err }},
		{"PCA coefficients", func() error { _, err := pca.RegressionCoefficients(1); return err }},
		{"PCA validated variance", func() error { _, err := pca.CumExplVar(X, true); return err }},
		{"PCA corr loadings", func() error { _, err := pca.CorrLoadings(X); return err }},
	} {
		if err := test.f(); !errors.Is(err, ErrNotApplicable) {
			t.Errorf("%s: got %v, want ErrNotApplicable", test.name, err)
		}
	}
}

func TestAccessorsCopy(t *testing.T) {
	res := mustLoad(t, "testdata/pca.json")
	s, err := res.Scores(X)
	if err != nil {
		t.Fatal(err)
	}
	s.Set(0, 0, 42)
	s2, _ := res.Scores(X)
	if s2.At(0, 0) != -1 {
		t.Errorf("modifying returned scores changed the model")
	}
}

func TestValidateShape(t *testing.T) {
	for _, test := range []struct {
		name string
		doc  string
	}{
		{"ragged input", `
family: PCA
ncomp: 1
x: {input: [[1, 2], [3]], scores: [[1], [2]], loadings: [[1], [0]]}`},
		{"scores rows", `
family: PCA
ncomp: 1
x: {input: [[1, 2], [3, 4]], scores: [[1]], loadings: [[1], [0]]}`},
		{"missing loadings", `
family: PCA
ncomp: 1
x: {input: [[1, 2], [3, 4]], scores: [[1], [2]]}`},
		{"PCA with Y", `
family: PCA
ncomp: 1
x: {input: [[1, 2], [3, 4]], scores: [[1], [2]], loadings: [[1], [0]]}
y: {input: [[1], [2]], scores: [[1], [2]], loadings: [[1]]}`},
		{"PCR without Y", `
family: PCR
ncomp: 1
x: {input: [[1, 2], [3, 4]], scores: [[1], [2]], loadings: [[1], [0]]}`},
		{"explained variance length", `
family: PCA
ncomp: 1
x: {input: [[1, 2], [3, 4]], scores: [[1], [2]], loadings: [[1], [0]], cumCalExplVar: [0, 50, 100]}`},
		{"Y object count", `
family: PCR
ncomp: 1
x: {input: [[1, 2], [3, 4]], scores: [[1], [2]], loadings: [[1], [0]]}
y: {input: [[1]], scores: [[1]], loadings: [[1]]}`},
	} {
		_, err := Load(strings.NewReader(test.doc))
		if !errors.Is(err, ErrShape) {
			t.Errorf("%s: got %v, want ErrShape", test.name, err)
		}
	}
}

func TestLoadErrors(t *testing.T) {
	for _, doc := range []string{
		"family: LDA\nncomp: 1\n",
		"family: PCA\nncomp: 0\n",
		"family: PCA\nncomp: 1\nbogus: 1\n",
	} {
		if _, err := Load(strings.NewReader(doc)); err == nil {
			t.Errorf("Load(%q) succeeded", doc)
		}
	}
}

func TestOptionalYResults(t *testing.T) {
	res, err := Load(strings.NewReader(`
family: PCR
ncomp: 1
x: {input: [[1, 2], [3, 4]], scores: [[1], [2]], loadings: [[1], [0]]}
y: {input: [[1], [2]]}
coefficients: [[[1], [0]]]`))
	if err != nil {
		t.Fatal(err)
	}
	if _, err := res.Scores(X); err != nil {
		t.Errorf("Scores(X): %v", err)
	}
	for _, test := range []struct {
		name string
		f    func() error
	}{
		{"Y scores", func() error { _, err := res.Scores(Y); return err }},
		{"Y loadings", func() error { _, err := res.Loadings(Y); return err }},
	} {
		if err := test.f(); !errors.Is(err, ErrNotApplicable) {
			t.Errorf("%s: got %v, want ErrNotApplicable", test.name, err)
		}
	}
	if y, err := res.Response(); err != nil || !reflect.DeepEqual(rows(y), [][]float64{{1}, {2}}) {
		t.Errorf("Response() = %v, %v", y, err)
	}
}

func TestInvalidResults(t *testing.T) {
	res := &Results{ModelFamily: PCA, Comp: 1}
	if _, err := res.Input(); !errors.Is(err, ErrShape) {
		t.Errorf("Input: got %v, want ErrShape", err)
	}
	if n := res.NumObjects(); n != 0 {
		t.Errorf("NumObjects() = %d, want 0", n)
	}
	if _, err := res.NumVars(X); !errors.Is(err, ErrShape) {
		t.Errorf("NumVars: got %v, want ErrShape", err)
	}
}
