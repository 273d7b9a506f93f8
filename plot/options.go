// Copyright 2017 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package plot

import (
	"fmt"

	"github.com/gonum/matrix/mat64"
	"github.com/hoggorm/mvplot/model"
)

// Options controls how a set of plots is drawn. The zero value
// selects the defaults for every plot kind.
type Options struct {
	// Comp is the pair of 1-based components to plot against each
	// other. Plots of a single component (coefficients and
	// predictions) use Comp[0]. If Comp is empty, it defaults to
	// [1, 2].
	Comp []int

	// Which selects the block of each plot. It must be empty, have
	// one element that applies to every plot, or have one element
	// per plot. Empty selects the per-kind defaults.
	Which []model.Block

	// Validated selects validated rather than calibrated explained
	// variance. Like Which, it is empty, a single value, or one
	// value per plot.
	Validated []bool

	// Line draws loadings as one line per component rather than
	// as a scatter plot.
	Line bool

	// Weights plots X loading weights instead of X loadings.
	Weights bool

	// Incremental plots the explained variance of each component
	// rather than the cumulative explained variance.
	Incremental bool

	// Individual plots the explained variance of each variable
	// rather than of the whole block.
	Individual bool

	ObjNames, XVarNames, YVarNames []string

	// NewX and NewY are new data to project or predict. Scores
	// plots show the projection of NewX. Prediction plots compare
	// NewY with the prediction from NewX, and need both.
	NewX, NewY  *mat64.Dense
	NewObjNames []string
}

// Request is a single plot after defaults have been applied.
type Request struct {
	Kind Kind

	// Block is the block to plot. Coefficient and prediction plots
	// always use Y.
	Block model.Block

	// Validated selects validated explained variance.
	Validated bool

	// Comp holds the 1-based components the plot uses: two for
	// scatter plots and one for coefficient and prediction plots.
	// It is empty for explained variance plots.
	Comp []int
}

// Resolve applies defaults to opts for each plot in kinds and checks
// the result against m.
func Resolve(m model.Model, kinds []Kind, opts *Options) ([]Request, error) {
	if opts == nil {
		opts = &Options{}
	}
	n := len(kinds)
	if k := len(opts.Which); k > 1 && k != n {
		return nil, fmt.Errorf("%d blocks given for %d plots", k, n)
	}
	if k := len(opts.Validated); k > 1 && k != n {
		return nil, fmt.Errorf("%d validated flags given for %d plots", k, n)
	}
	if (opts.NewX == nil) != (opts.NewY == nil) {
		for _, k := range kinds {
			if k == KindPrediction {
				return nil, fmt.Errorf("prediction needs both new X and new Y")
			}
		}
	}
	comp := opts.Comp
	if len(comp) == 0 {
		comp = []int{1, 2}
	}

	fam := m.Family()
	reqs := make([]Request, 0, n)
	for i, k := range kinds {
		if !k.valid() {
			return nil, fmt.Errorf("plot %d: %v: %w", i+1, k, ErrUnknownPlotKind)
		}
		req := Request{Kind: k}

		switch k {
		case KindCoefficients, KindPrediction:
			if !fam.HasY() {
				return nil, fmt.Errorf("%s plot of %s model: %w", k, fam, ErrUnsupportedBlock)
			}
			req.Block = model.Y
		default:
			req.Block = defaultBlock(k, fam)
			if len(opts.Which) > 0 {
				req.Block = opts.Which[i%len(opts.Which)]
				if !fam.HasY() && req.Block != model.X {
					return nil, fmt.Errorf("%s plot of %s block of %s model: %w", k, req.Block, fam, ErrUnsupportedBlock)
				}
			}
			if k == KindBiplot && req.Block == model.Both {
				return nil, fmt.Errorf("biplot of both blocks: %w", ErrUnsupportedBlock)
			}
		}

		req.Validated = k != KindScores
		if len(opts.Validated) > 0 {
			req.Validated = opts.Validated[i%len(opts.Validated)]
		}

		need := 0
		switch k {
		case KindScores, KindLoadings, KindCorrelationLoadings, KindBiplot:
			need = 2
		case KindCoefficients, KindPrediction:
			need = 1
		}
		if len(comp) < need {
			return nil, fmt.Errorf("%s plot needs %d components, got %d", k, need, len(comp))
		}
		for _, c := range comp[:need] {
			if c < 1 || c > m.NumComp() {
				return nil, fmt.Errorf("%s plot: component %d not in 1..%d: %w", k, c, m.NumComp(), ErrComponentOutOfRange)
			}
		}
		req.Comp = append([]int(nil), comp[:need]...)

		reqs = append(reqs, req)
	}
	return reqs, nil
}

// defaultBlock returns the block plotted by kind k if none is given.
func defaultBlock(k Kind, fam model.Family) model.Block {
	if !fam.HasY() {
		return model.X
	}
	switch k {
	case KindCorrelationLoadings:
		return model.Both
	case KindExplainedVariance:
		return model.Y
	}
	return model.X
}
