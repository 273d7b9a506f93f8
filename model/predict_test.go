// Copyright 2017 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package model

import (
	"errors"
	"reflect"
	"testing"

	"github.com/gonum/matrix/mat64"
)

func TestPredictY(t *testing.T) {
	res := mustLoad(t, "testdata/pls1.yaml")
	for _, test := range []struct {
		x    []float64
		comp int
		want [][]float64
	}{
		{[]float64{5, 4}, 1, [][]float64{{3}}},
		{[]float64{5, 6}, 2, [][]float64{{5}}},
		{[]float64{3, 4, 1, 2}, 1, [][]float64{{2}, {1}}},
	} {
		x := mat64.NewDense(len(test.x)/2, 2, test.x)
		got, err := res.PredictY(x, test.comp)
		if err != nil {
			t.Errorf("PredictY(%v, %d): %v", test.x, test.comp, err)
			continue
		}
		if !reflect.DeepEqual(rows(got), test.want) {
			t.Errorf("PredictY(%v, %d) = %v; want %v", test.x, test.comp, rows(got), test.want)
		}
	}

	if _, err := res.PredictY(mat64.NewDense(1, 3, nil), 1); !errors.Is(err, ErrShape) {
		t.Errorf("PredictY with 3 variables: got %v, want ErrShape", err)
	}
	if _, err := res.PredictY(mat64.NewDense(1, 2, nil), 3); err == nil {
		t.Errorf("PredictY with 3 components succeeded")
	}
}

func TestProjectScores(t *testing.T) {
	pls1 := mustLoad(t, "testdata/pls1.yaml")
	got, err := pls1.ProjectScores(mat64.NewDense(1, 2, []float64{5, 6}))
	if err != nil {
		t.Fatal(err)
	}
	if want := [][]float64{{2, 0}}; !reflect.DeepEqual(rows(got), want) {
		t.Errorf("PLS1 projection = %v; want %v", rows(got), want)
	}

	pca := mustLoad(t, "testdata/pca.json")
	got, err = pca.ProjectScores(mat64.NewDense(1, 2, []float64{4, 10}))
	if err != nil {
		t.Fatal(err)
	}
	if want := [][]float64{{1}}; !reflect.DeepEqual(rows(got), want) {
		t.Errorf("PCA projection = %v; want %v", rows(got), want)
	}
}
