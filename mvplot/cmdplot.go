// Copyright 2017 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/gonum/matrix/mat64"
	"github.com/hoggorm/mvplot/dataset"
	"github.com/hoggorm/mvplot/model"
	"github.com/hoggorm/mvplot/plot"
)

func init() {
	registerSubcommand("plot", "[flags] <results file> - plot model results", cmdPlot)
}

func cmdPlot(args []string) error {
	f := newFlagSet("plot", "[flags] <results file>")
	var (
		flagPlots       = f.String("plots", "scores,loadings,correlationLoadings,biplot", "comma-separated plot `kinds`, by name or number 1-7")
		flagComp        = f.String("comp", "1,2", "comma-separated `components` to plot")
		flagWhich       = f.String("which", "", "comma-separated `blocks` (X, Y or Both) for each plot (default depends on plot)")
		flagValidated   = f.String("validated", "", "comma-separated `bools` selecting validated results for each plot (default depends on plot)")
		flagLine        = f.Bool("line", false, "plot loadings as lines instead of a scatter plot")
		flagWeights     = f.Bool("weights", false, "plot loading weights instead of loadings")
		flagIncremental = f.Bool("incremental", false, "plot explained variance per component instead of cumulatively")
		flagIndividual  = f.Bool("individual", false, "plot explained variance per variable instead of per block")
		flagX           = f.String("x", "", "read object and X variable names from data table `file`")
		flagY           = f.String("y", "", "read Y variable names from data table `file`")
		flagNewX        = f.String("newx", "", "project and predict new X data from table `file`")
		flagNewY        = f.String("newy", "", "compare predictions of -newx to new Y data from table `file`")
		flagYCols       = f.String("ycols", "", "comma-separated `columns` of the -newy table to use, in model order (default all)")
		flagOut         = f.String("o", ".", "write SVG files to `directory`")
		flagWidth       = f.Int("width", 640, "image `width` in pixels")
		flagHeight      = f.Int("height", 480, "image `height` in pixels")
	)
	if err := parseFlags(f, args); err != nil {
		return err
	}
	if f.NArg() != 1 {
		f.Usage()
		return errUsage
	}

	m, err := model.LoadFile(f.Arg(0))
	if err != nil {
		return err
	}
	kinds, err := plot.ParseKinds(*flagPlots)
	if err != nil {
		return err
	}

	opts := &plot.Options{
		Line:        *flagLine,
		Weights:     *flagWeights,
		Incremental: *flagIncremental,
		Individual:  *flagIndividual,
	}
	if opts.Comp, err = parseInts(*flagComp); err != nil {
		return fmt.Errorf("-comp: %w", err)
	}
	if opts.Which, err = parseBlocks(*flagWhich); err != nil {
		return fmt.Errorf("-which: %w", err)
	}
	if opts.Validated, err = parseBools(*flagValidated); err != nil {
		return fmt.Errorf("-validated: %w", err)
	}
	if *flagX != "" {
		t, err := dataset.ReadFile(*flagX)
		if err != nil {
			return err
		}
		opts.ObjNames, opts.XVarNames = t.RowNames, t.ColNames
	}
	if *flagY != "" {
		t, err := dataset.ReadFile(*flagY)
		if err != nil {
			return err
		}
		opts.YVarNames = t.ColNames
	}
	if *flagNewX != "" {
		t, err := dataset.ReadFile(*flagNewX)
		if err != nil {
			return err
		}
		opts.NewX, opts.NewObjNames = t.Data, t.RowNames
	}
	if *flagNewY != "" {
		t, err := dataset.ReadFile(*flagNewY)
		if err != nil {
			return err
		}
		if opts.NewY, err = selectColumns(t, splitList(*flagYCols)); err != nil {
			return fmt.Errorf("%s: %w", *flagNewY, err)
		}
	} else if *flagYCols != "" {
		return fmt.Errorf("-ycols requires -newy")
	}

	figs, err := plot.Plot(m, kinds, opts)
	if err != nil {
		return err
	}
	if err := os.MkdirAll(*flagOut, 0777); err != nil {
		return err
	}
	for i, fig := range figs {
		path := filepath.Join(*flagOut, figureFile(i, fig))
		if err := writeFigure(path, fig, *flagWidth, *flagHeight); err != nil {
			return err
		}
		log.Printf("wrote %s", path)
	}
	return nil
}

// figureFile returns the file name of the i'th figure of a run.
func figureFile(i int, fig *plot.Figure) string {
	name := fmt.Sprintf("%02d-%s", i+1, fig.Kind)
	if fig.Name != "" {
		name += "-" + fig.Name
	}
	return name + ".svg"
}

func writeFigure(path string, fig *plot.Figure, width, height int) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := fig.WriteSVG(f, width, height); err != nil {
		f.Close()
		return fmt.Errorf("%s: %w", path, err)
	}
	return f.Close()
}

// selectColumns returns the named columns of t, in order. If names is
// empty, it returns all of t.
func selectColumns(t *dataset.Table, names []string) (*mat64.Dense, error) {
	if len(names) == 0 {
		return t.Data, nil
	}
	n := len(t.RowNames)
	m := mat64.NewDense(n, len(names), nil)
	for j, name := range names {
		col := t.Column(name)
		if col == nil {
			return nil, fmt.Errorf("no column %q", name)
		}
		for i, v := range col {
			m.Set(i, j, v)
		}
	}
	return m, nil
}

// splitList splits a comma-separated list, dropping blank elements.
func splitList(s string) []string {
	var out []string
	for _, x := range strings.Split(s, ",") {
		if x = strings.TrimSpace(x); x != "" {
			out = append(out, x)
		}
	}
	return out
}

func parseInts(s string) ([]int, error) {
	var out []int
	for _, x := range splitList(s) {
		n, err := strconv.Atoi(x)
		if err != nil {
			return nil, err
		}
		out = append(out, n)
	}
	return out, nil
}

func parseBlocks(s string) ([]model.Block, error) {
	var out []model.Block
	for _, x := range splitList(s) {
		b, err := model.ParseBlock(x)
		if err != nil {
			return nil, err
		}
		out = append(out, b)
	}
	return out, nil
}

func parseBools(s string) ([]bool, error) {
	var out []bool
	for _, x := range splitList(s) {
		v, err := strconv.ParseBool(x)
		if err != nil {
			return nil, err
		}
		out = append(out, v)
	}
	return out, nil
}
