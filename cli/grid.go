// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package cli

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// maxGrid is the largest number of orders or arguments in a grid.
const maxGrid = 1 << 16

// ParseOrders parses an order specification: a single order ("3"),
// an inclusive range ("-2:4"), or a comma separated list ("0,2,5").
func ParseOrders(s string) ([]int, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil, fmt.Errorf("empty order specification")
	}
	if lo, hi, ok := strings.Cut(s, ":"); ok {
		l, err := strconv.Atoi(strings.TrimSpace(lo))
		if err != nil {
			return nil, fmt.Errorf("invalid order range %q: %w", s, err)
		}
		h, err := strconv.Atoi(strings.TrimSpace(hi))
		if err != nil {
			return nil, fmt.Errorf("invalid order range %q: %w", s, err)
		}
		if h < l {
			return nil, fmt.Errorf("invalid order range %q: %d < %d", s, h, l)
		}
		// h >= l, so the wrapped difference is exact as an unsigned value
		if uint64(h-l) >= maxGrid {
			return nil, fmt.Errorf("order range %q has more than %d orders", s, maxGrid)
		}
		orders := make([]int, h-l+1)
		for i := range orders {
			orders[i] = l + i
		}
		return orders, nil
	}
	var orders []int
	for _, f := range strings.Split(s, ",") {
		n, err := strconv.Atoi(strings.TrimSpace(f))
		if err != nil {
			return nil, fmt.Errorf("invalid order %q: %w", f, err)
		}
		orders = append(orders, n)
	}
	return orders, nil
}

// Grid returns the arguments from, from+step, ... up to and including to.
// Each argument is computed from its index, so rounding errors do not
// accumulate.
func Grid(from, to, step float32) ([]float32, error) {
	switch {
	case isNonFinite(from) || isNonFinite(to) || isNonFinite(step):
		return nil, fmt.Errorf("grid bounds must be finite")
	case to < from:
		return nil, fmt.Errorf("grid end %v is before its start %v", to, from)
	case to == from:
		return []float32{from}, nil
	case step <= 0:
		return nil, fmt.Errorf("grid step must be positive, not %v", step)
	}
	n := math.Floor(float64(to-from)/float64(step)+1e-6) + 1
	if n > maxGrid {
		return nil, fmt.Errorf("grid has more than %d arguments", maxGrid)
	}
	xs := make([]float32, int(n))
	for i := range xs {
		xs[i] = float32(float64(from) + float64(i)*float64(step))
	}
	return xs, nil
}

// ParseArg parses an argument, accepting Inf, +Inf, -Inf and NaN.
func ParseArg(s string) (float32, error) {
	f, err := strconv.ParseFloat(strings.TrimSpace(s), 32)
	if err != nil {
		return 0, fmt.Errorf("invalid argument %q: %w", s, err)
	}
	return float32(f), nil
}

func isNonFinite(f float32) bool {
	return math.IsNaN(float64(f)) || math.IsInf(float64(f), 0)
}
