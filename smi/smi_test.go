// Copyright 2017 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package smi

import (
	"bytes"
	"errors"
	"image/png"
	"math"
	"strings"
	"testing"
)

func TestSymbol(t *testing.T) {
	for _, test := range []struct {
		p    float64
		i, j int
		want string
	}{
		{0.0005, 0, 0, "***"},
		{0.0005, 2, 1, "***"},
		{0.001, 0, 0, "**"},
		{0.005, 1, 0, "**"},
		{0.02, 0, 1, "*"},
		{0.03, 1, 1, "*"},
		{0.05, 0, 0, "·"},
		{0.08, 0, 2, "·"},
		{0.1, 1, 1, "="},
		{0.5, 0, 0, "="},
		{0.5, 2, 1, "⊃"},
		{0.5, 1, 2, "⊂"},
	} {
		if got := Symbol(test.p, test.i, test.j); got != test.want {
			t.Errorf("Symbol(%g, %d, %d) = %q, want %q", test.p, test.i, test.j, got, test.want)
		}
	}
}

func newResult(t *testing.T, doc string) *Result {
	t.Helper()
	res, err := Load(strings.NewReader(doc))
	if err != nil {
		t.Fatal(err)
	}
	return res
}

func TestValidate(t *testing.T) {
	for _, test := range []struct {
		doc string
		ok  bool
	}{
		{"smi: [[0, 1], [0.5, 0.25]]", true},
		{"smi: [[0, 1.1], [0.5, 0.25]]", false},
		{"smi: [[0, 1], [-0.01, 0.25]]", false},
		{"smi: [[0, .nan], [0.5, 0.25]]", false},
	} {
		_, err := Load(strings.NewReader(test.doc))
		if test.ok && err != nil {
			t.Errorf("%s: %v", test.doc, err)
		} else if !test.ok && !errors.Is(err, ErrOutOfRange) {
			t.Errorf("%s: got %v, want ErrOutOfRange", test.doc, err)
		}
	}
}

func TestLoadErrors(t *testing.T) {
	for _, doc := range []string{
		"smi: []",
		"smi: [[0, 1], [0.5]]",
		"smi: [[0, 1], [0.5, 0.25]]\npvalues: [[0.1, 0.2]]",
		"smi: [[0.5]]\nextra: 1",
	} {
		if _, err := Load(strings.NewReader(doc)); err == nil {
			t.Errorf("%q: no error", doc)
		}
	}
}

func TestSignificance(t *testing.T) {
	res, err := LoadFile("testdata/smi.yaml")
	if err != nil {
		t.Fatal(err)
	}
	var buf bytes.Buffer
	old := Notice.Writer()
	Notice.SetOutput(&buf)
	defer Notice.SetOutput(old)

	p, err := res.Significance(1000)
	if err != nil {
		t.Fatal(err)
	}
	if got := p.At(1, 0); got != 0.07 {
		t.Errorf("p(1,0) = %g, want 0.07", got)
	}
	if buf.Len() != 0 {
		t.Errorf("unexpected notice %q", buf.String())
	}
	// The copy is not shared.
	p.Set(1, 0, 1)
	if p, _ := res.Significance(1000); p.At(1, 0) != 0.07 {
		t.Errorf("Significance returned shared storage")
	}

	if _, err := res.Significance(DefaultPermutations); err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(buf.String(), "1000 permutations instead of 10000") {
		t.Errorf("notice %q", buf.String())
	}

	bare := newResult(t, "smi: [[0.5]]")
	if _, err := bare.Significance(10); !errors.Is(err, ErrNoPValues) {
		t.Errorf("got %v, want ErrNoPValues", err)
	}
}

func near(a, b float64) bool {
	return math.Abs(a-b) < 1e-9
}

func TestLayoutGeometry(t *testing.T) {
	res := newResult(t, "smi: [[1, 0.5], [0.25, 0]]")
	d, err := Layout(res, &Options{NoSignificance: true})
	if err != nil {
		t.Fatal(err)
	}
	if d.XMin != -1 || d.XMax != 1 || d.YMin != 0 || d.YMax != 2 {
		t.Errorf("view [%g,%g]×[%g,%g], want [-1,1]×[0,2]", d.XMin, d.XMax, d.YMin, d.YMax)
	}
	if len(d.Cells) != 4 {
		t.Fatalf("got %d cells, want 4", len(d.Cells))
	}
	c := d.Cells[2]
	if c.Row != 1 || c.Col != 0 || c.Value != 0.25 {
		t.Errorf("cell 2 is (%d,%d) = %g", c.Row, c.Col, c.Value)
	}
	if want := [4]float64{-0.5, 0, -0.5, -1}; c.X != want {
		t.Errorf("cell (1,0) x %v, want %v", c.X, want)
	}
	if want := [4]float64{0.5, 1, 1.5, 1}; c.Y != want {
		t.Errorf("cell (1,0) y %v, want %v", c.Y, want)
	}
	if c.Symbol != "" {
		t.Errorf("symbol %q without significance", c.Symbol)
	}

	// Two row labels, two column labels and two names.
	if len(d.Texts) != 6 {
		t.Fatalf("got %d texts, want 6", len(d.Texts))
	}
	row2 := d.Texts[1]
	if row2.S != "2" || row2.Align != AlignRight || !near(row2.X, -0.78) || !near(row2.Y, 0.47) {
		t.Errorf("row label 2: %+v", row2)
	}
	col1 := d.Texts[2]
	if col1.S != "1" || col1.Align != AlignLeft || !near(col1.X, 0.28) || !near(col1.Y, -0.03) {
		t.Errorf("column label 1: %+v", col1)
	}
	if !near(row2.Size, 35) {
		t.Errorf("font size %g, want 35", row2.Size)
	}
	x1, x2 := d.Texts[4], d.Texts[5]
	if x1.S != "X1" || !near(x1.X, -1.25) || !near(x1.Y, 0.5) || x1.Align != AlignRight {
		t.Errorf("X1 name: %+v", x1)
	}
	if x2.S != "X2" || !near(x2.X, 1.25) || x2.Align != AlignLeft {
		t.Errorf("X2 name: %+v", x2)
	}
}

func TestLayoutSymbols(t *testing.T) {
	res, err := LoadFile("testdata/smi.yaml")
	if err != nil {
		t.Fatal(err)
	}
	d, err := Layout(res, &Options{Permutations: 1000, X1Name: "Sensory", FontScale: 0.5})
	if err != nil {
		t.Fatal(err)
	}
	want := []string{"***", "**", "*", "·", "***", "⊂", "⊃", "⊃", "="}
	for k, c := range d.Cells {
		if c.Symbol != want[k] {
			t.Errorf("cell (%d,%d): symbol %q, want %q", c.Row, c.Col, c.Symbol, want[k])
		}
	}
	// Markers come first and sit at the cell centers.
	m := d.Texts[5]
	if cx, cy := d.Cells[5].Center(); m.S != "⊂" || m.X != cx || m.Y != cy || m.Align != AlignCenter {
		t.Errorf("marker 5: %+v", m)
	}
	if !near(m.Size, 10*7/3.0*0.5) {
		t.Errorf("marker size %g", m.Size)
	}
	if name := d.Texts[len(d.Texts)-2]; name.S != "Sensory" {
		t.Errorf("X1 name %q", name.S)
	}
}

func TestLayoutComponents(t *testing.T) {
	res, err := LoadFile("testdata/smi.yaml")
	if err != nil {
		t.Fatal(err)
	}
	d, err := Layout(res, &Options{PC: [2]int{2, 1}, Permutations: 1000})
	if err != nil {
		t.Fatal(err)
	}
	if len(d.Cells) != 2 || d.XMax != 1 || d.YMax != 2 || d.PC != [2]int{2, 1} {
		t.Errorf("got %d cells, view x≤%g y≤%g, pc %v", len(d.Cells), d.XMax, d.YMax, d.PC)
	}
	if _, err := Layout(res, &Options{PC: [2]int{4, 0}}); !errors.Is(err, ErrOutOfRange) {
		t.Errorf("4 components: got %v, want ErrOutOfRange", err)
	}
}

func TestLayoutWithoutPValues(t *testing.T) {
	var buf bytes.Buffer
	old := Notice.Writer()
	Notice.SetOutput(&buf)
	defer Notice.SetOutput(old)

	bare := newResult(t, "smi: [[0.5, 0.2], [0.1, 0.9]]")
	d, err := Layout(bare, nil)
	if err != nil {
		t.Fatal(err)
	}
	if len(d.Cells) != 4 {
		t.Errorf("got %d cells, want 4", len(d.Cells))
	}
	for _, c := range d.Cells {
		if c.Symbol != "" {
			t.Errorf("cell (%d,%d) has marker %q", c.Row, c.Col, c.Symbol)
		}
	}
	// Only the component labels and the two names remain.
	if len(d.Texts) != 2+2+2 {
		t.Errorf("got %d texts, want 6", len(d.Texts))
	}
	if !strings.Contains(buf.String(), "without significance markers") {
		t.Errorf("notice %q", buf.String())
	}
}

func testDiamond(t *testing.T) *Diamond {
	res, err := LoadFile("testdata/smi.yaml")
	if err != nil {
		t.Fatal(err)
	}
	d, err := Layout(res, &Options{Permutations: 1000})
	if err != nil {
		t.Fatal(err)
	}
	return d
}

func TestWriteSVG(t *testing.T) {
	var buf bytes.Buffer
	if err := testDiamond(t).WriteSVG(&buf, 400, 300); err != nil {
		t.Fatal(err)
	}
	out := buf.String()
	if n := strings.Count(out, "<polygon"); n != 9 {
		t.Errorf("got %d polygons, want 9", n)
	}
	for _, s := range []string{"<svg", "SMI", "⊃", "***", "rgb(250,250,250)", "X2"} {
		if !strings.Contains(out, s) {
			t.Errorf("output does not contain %q", s)
		}
	}
}

func TestImage(t *testing.T) {
	d := testDiamond(t)
	img := d.Image(400, 300)
	if b := img.Bounds(); b.Dx() != 400 || b.Dy() != 300 {
		t.Fatalf("bounds %v", b)
	}
	if r, g, b, _ := img.At(1, 1).RGBA(); r>>8 != 255 || g>>8 != 255 || b>>8 != 255 {
		t.Errorf("background is not white")
	}

	// Sample cell (2,0) between its center and bottom vertex.
	f := newFrame(d, 400, 300)
	c := d.Cells[6]
	cx, cy := c.Center()
	x, y := f.pt(cx, cy-0.25)
	r, _, _, _ := img.At(iround(x), iround(y)).RGBA()
	if want := int(gray(c.Value)); math.Abs(float64(int(r>>8)-want)) > 8 {
		t.Errorf("cell (2,0) gray level %d, want %d", r>>8, want)
	}

	var buf bytes.Buffer
	if err := d.WritePNG(&buf, 400, 300); err != nil {
		t.Fatal(err)
	}
	if _, err := png.Decode(&buf); err != nil {
		t.Errorf("decoding PNG: %v", err)
	}
}
