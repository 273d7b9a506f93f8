// Copyright 2017 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package plot

import "fmt"

// DefaultLabels returns n labels for a plot. If names is empty, the
// labels are "prefix 1" through "prefix n". Otherwise they are a copy
// of names, which must have exactly n elements.
//
// DefaultLabels never modifies or retains names.
func DefaultLabels(prefix string, names []string, n int) ([]string, error) {
	if len(names) == 0 {
		out := make([]string, n)
		for i := range out {
			out[i] = fmt.Sprintf("%s %d", prefix, i+1)
		}
		return out, nil
	}
	if len(names) != n {
		return nil, fmt.Errorf("%d names for %d %s labels: %w", len(names), n, prefix, ErrLabelCount)
	}
	return append([]string(nil), names...), nil
}
