// Copyright 2017 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package plot

import (
	"errors"
	"log"
	"os"
)

var (
	// ErrUnknownPlotKind is returned for plot kind names and
	// numbers that do not name a Kind.
	ErrUnknownPlotKind = errors.New("unknown plot kind")

	// ErrComponentOutOfRange is returned when a requested component
	// is less than 1 or greater than the number of components the
	// model was fitted with.
	ErrComponentOutOfRange = errors.New("component out of range")

	// ErrUnsupportedBlock is returned when a plot asks for a block
	// the model does not have or the plot cannot show.
	ErrUnsupportedBlock = errors.New("unsupported block for model")

	// ErrLabelCount is returned when the number of supplied labels
	// does not match the data.
	ErrLabelCount = errors.New("wrong number of labels")
)

// Notice is a logger for figures that were skipped because the model
// does not provide the results they need.
var Notice = log.New(os.Stderr, "[plot] ", 0)
