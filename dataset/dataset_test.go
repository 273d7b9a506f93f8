// Copyright 2017 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package dataset

import (
	"reflect"
	"strings"
	"testing"

	"github.com/gonum/matrix/mat64"
)

func TestRead(t *testing.T) {
	for _, test := range []struct {
		input string
		rows  []string
		cols  []string
		data  []float64
	}{
		// Test basic table.
		{`Country	Lung	Breast
Norway	12.5	30
Sweden	10	28.25`,
			[]string{"Norway", "Sweden"},
			[]string{"Lung", "Breast"},
			[]float64{12.5, 30, 10, 28.25},
		},

		// Test blank lines and CRLF line endings.
		{"\nid\tA\r\n\n o1 \t-1e-3\r\n\t\n o2\t4\n",
			[]string{"o1", "o2"},
			[]string{"A"},
			[]float64{-0.001, 4},
		},

		// Test empty header cell.
		{"\tv1\tv2\n1\t1\t2\n",
			[]string{"1"},
			[]string{"v1", "v2"},
			[]float64{1, 2},
		},
	} {
		tab, err := Read(strings.NewReader(test.input))
		if err != nil {
			t.Errorf("parsing %q: %v", test.input, err)
			continue
		}
		if !reflect.DeepEqual(tab.RowNames, test.rows) {
			t.Errorf("parsing %q: rows %q, want %q", test.input, tab.RowNames, test.rows)
		}
		if !reflect.DeepEqual(tab.ColNames, test.cols) {
			t.Errorf("parsing %q: columns %q, want %q", test.input, tab.ColNames, test.cols)
		}
		want := mat64.NewDense(len(test.rows), len(test.cols), test.data)
		if !mat64.Equal(tab.Data, want) {
			t.Errorf("parsing %q: data %v, want %v", test.input, tab.Data.RawMatrix().Data, test.data)
		}
	}
}

func TestReadErrors(t *testing.T) {
	for _, test := range []struct {
		input string
		want  string
	}{
		{"", "empty table"},
		{"\n\n", "empty table"},
		{"id\n1\n", "line 1: header has no columns"},
		{"id\ta\tb\n", "no rows"},
		{"id\ta\tb\nr1\t1\t2\n\nr2\t3\n", "line 4: got 1 values, want 2"},
		{"id\ta\tb\nr1\t1\t2\t3\n", "line 2: got 3 values, want 2"},
		{"id\ta\tb\nr1\t1\tNA\n", `line 2: column "b": "NA" is not a number`},
	} {
		_, err := Read(strings.NewReader(test.input))
		if err == nil {
			t.Errorf("parsing %q: no error", test.input)
		} else if !strings.Contains(err.Error(), test.want) {
			t.Errorf("parsing %q: got %q, want %q", test.input, err, test.want)
		}
	}
}

func TestColumn(t *testing.T) {
	tab, err := Read(strings.NewReader("id\tx\ty\na\t1\t2\nb\t3\t4\n"))
	if err != nil {
		t.Fatal(err)
	}
	if got := tab.Column("y"); !reflect.DeepEqual(got, []float64{2, 4}) {
		t.Errorf("Column(y) = %v, want [2 4]", got)
	}
	if got := tab.Column("z"); got != nil {
		t.Errorf("Column(z) = %v, want nil", got)
	}
}
