// Copyright 2017 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"fmt"
	"io"
	"math"
	"os"
	"time"

	"github.com/gonum/matrix/mat64"
	"golang.org/x/crypto/ssh/terminal"
)

// statusReporter shows the progress of a batch script on a single
// terminal line, with an estimate of the time left. If stdout is not
// a terminal, it shows nothing.
type statusReporter struct {
	w   io.Writer
	tty bool

	// times are seconds since t0.
	t0              time.Time
	times, progress []float64
}

func newStatusReporter() *statusReporter {
	return &statusReporter{
		w:   os.Stdout,
		tty: os.Getenv("TERM") != "dumb" && terminal.IsTerminal(int(os.Stdout.Fd())),
		t0:  time.Now(),
	}
}

const (
	resetLine = "\r\x1b[2K"
	wrapOff   = "\x1b[?7l"
	wrapOn    = "\x1b[?7h"
)

// Progress records that frac of the work is done and shows msg.
func (sr *statusReporter) Progress(msg string, frac float64) {
	now := time.Now()
	sr.times = append(sr.times, now.Sub(sr.t0).Seconds())
	sr.progress = append(sr.progress, frac)
	if !sr.tty {
		return
	}
	eta := "unknown"
	if end := sr.end(); !end.IsZero() {
		d := end.Sub(now)
		d -= d % time.Second
		if d < 0 {
			d = 0
		}
		eta = d.String()
	}
	fmt.Fprintf(sr.w, "%s%s%s, ETA %s%s", resetLine, wrapOff, msg, eta, wrapOn)
}

// Stop clears the status line.
func (sr *statusReporter) Stop() {
	if sr.tty {
		fmt.Fprint(sr.w, resetLine)
	}
}

// end estimates when the work will be done, or returns the zero Time
// if there is not enough progress to tell. Recent progress counts the
// most.
func (sr *statusReporter) end() time.Time {
	const halfLife = 150 // seconds
	if len(sr.times) < 2 {
		return time.Time{}
	}
	now := sr.times[len(sr.times)-1]
	weights := make([]float64, len(sr.times))
	for i, t := range sr.times {
		weights[i] = math.Exp(-math.Ln2 / halfLife * (now - t))
	}
	a, b := linearFit(sr.times, sr.progress, weights)
	if b <= 0 || math.IsNaN(a) || math.IsNaN(b) {
		return time.Time{}
	}
	// a + b*t reaches 1 at the end.
	return sr.t0.Add(time.Duration((1 - a) / b * float64(time.Second)))
}

// linearFit returns the weighted least squares fit a + b*x to the
// points (xs[i], ys[i]). It returns NaNs if the fit is not unique.
func linearFit(xs, ys, weights []float64) (a, b float64) {
	// Solve the normal equations (XᵀWX)β = XᵀWy.
	n := len(xs)
	xtVals := make([]float64, 2*n)
	for i, x := range xs {
		xtVals[i], xtVals[n+i] = 1, x
	}
	xt := mat64.NewDense(2, n, xtVals)

	// W is diagonal, so scale the rows of Xᵀ directly.
	xtw := mat64.DenseCopyOf(xt)
	w := mat64.NewVector(n, weights)
	for row := 0; row < 2; row++ {
		v := xtw.RowView(row)
		v.MulElemVec(v, w)
	}

	lhs := mat64.NewDense(2, 2, nil)
	lhs.Mul(xtw, xt.T())
	rhs := mat64.NewVector(2, nil)
	rhs.MulVec(xtw, mat64.NewVector(n, ys))

	beta := make([]float64, 2)
	if err := mat64.NewVector(2, beta).SolveVec(lhs, rhs); err != nil {
		return math.NaN(), math.NaN()
	}
	return beta[0], beta[1]
}
