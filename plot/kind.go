// Copyright 2017 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package plot

import (
	"fmt"
	"strconv"
	"strings"
)

// Kind is a kind of diagnostic plot.
type Kind int

const (
	KindScores Kind = 1 + iota
	KindLoadings
	KindCorrelationLoadings
	KindBiplot
	KindCoefficients
	KindExplainedVariance
	KindPrediction
)

// kindNames are the names accepted by ParseKind, indexed by Kind.
var kindNames = [...]string{
	KindScores:              "scores",
	KindLoadings:            "loadings",
	KindCorrelationLoadings: "correlationLoadings",
	KindBiplot:              "biplot",
	KindCoefficients:        "coeffs",
	KindExplainedVariance:   "explainedVariance",
	KindPrediction:          "predict",
}

// Kinds returns all plot kinds in order.
func Kinds() []Kind {
	ks := make([]Kind, 0, len(kindNames)-1)
	for k := KindScores; k <= KindPrediction; k++ {
		ks = append(ks, k)
	}
	return ks
}

func (k Kind) valid() bool {
	return k >= KindScores && k <= KindPrediction
}

func (k Kind) String() string {
	if !k.valid() {
		return fmt.Sprintf("Kind(%d)", int(k))
	}
	return kindNames[k]
}

// ParseKind returns the plot kind named by s. s may be one of the
// names returned by Kind.String (compared without regard to case) or
// the kind's number, 1 through 7.
func ParseKind(s string) (Kind, error) {
	s = strings.TrimSpace(s)
	if n, err := strconv.Atoi(s); err == nil {
		if k := Kind(n); k.valid() {
			return k, nil
		}
		return 0, fmt.Errorf("plot kind %d: %w", n, ErrUnknownPlotKind)
	}
	for k := KindScores; k <= KindPrediction; k++ {
		if strings.EqualFold(s, kindNames[k]) {
			return k, nil
		}
	}
	return 0, fmt.Errorf("plot kind %q: %w", s, ErrUnknownPlotKind)
}

// ParseKinds parses a comma-separated list of plot kinds.
func ParseKinds(s string) ([]Kind, error) {
	var ks []Kind
	for _, f := range strings.Split(s, ",") {
		if strings.TrimSpace(f) == "" {
			continue
		}
		k, err := ParseKind(f)
		if err != nil {
			return nil, err
		}
		ks = append(ks, k)
	}
	return ks, nil
}
