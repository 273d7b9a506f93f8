// Copyright 2017 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package dataset reads tab-delimited data tables.
//
// The first line of a table holds a header cell for the row names
// followed by the column names. Each following line holds a row name
// followed by one number per column. Blank lines are ignored.
package dataset

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/gonum/matrix/mat64"
)

// Table is a named numeric table, such as the X or Y block of a
// model.
type Table struct {
	// Index is the header of the row name column.
	Index string

	RowNames []string
	ColNames []string

	// Data has one row per row name and one column per column
	// name.
	Data *mat64.Dense
}

// Read parses a tab-delimited table from r.
func Read(r io.Reader) (*Table, error) {
	t := new(Table)
	var data []float64
	lineNo := 0
	scanner := bufio.NewScanner(r)
	scanner.Buffer(nil, 1<<20)
	for scanner.Scan() {
		lineNo++
		line := strings.TrimRight(scanner.Text(), "\r")
		if strings.TrimSpace(line) == "" {
			continue
		}
		f := strings.Split(line, "\t")

		// Header line.
		if t.ColNames == nil {
			if len(f) < 2 {
				return nil, fmt.Errorf("line %d: header has no columns", lineNo)
			}
			t.Index = strings.TrimSpace(f[0])
			for _, name := range f[1:] {
				t.ColNames = append(t.ColNames, strings.TrimSpace(name))
			}
			continue
		}

		// Data lines.
		if len(f) != len(t.ColNames)+1 {
			return nil, fmt.Errorf("line %d: got %d values, want %d", lineNo, len(f)-1, len(t.ColNames))
		}
		t.RowNames = append(t.RowNames, strings.TrimSpace(f[0]))
		for i, cell := range f[1:] {
			v, err := strconv.ParseFloat(strings.TrimSpace(cell), 64)
			if err != nil {
				return nil, fmt.Errorf("line %d: column %q: %q is not a number", lineNo, t.ColNames[i], cell)
			}
			data = append(data, v)
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	if t.ColNames == nil {
		return nil, fmt.Errorf("empty table")
	}
	if len(t.RowNames) == 0 {
		return nil, fmt.Errorf("table has no rows")
	}
	t.Data = mat64.NewDense(len(t.RowNames), len(t.ColNames), data)
	return t, nil
}

// ReadFile is like Read, but reads the named file.
func ReadFile(path string) (*Table, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	t, err := Read(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return t, nil
}

// Column returns the values of the named column, or nil if there is
// no such column.
func (t *Table) Column(name string) []float64 {
	for j, n := range t.ColNames {
		if n == name {
			return mat64.Col(nil, j, t.Data)
		}
	}
	return nil
}
