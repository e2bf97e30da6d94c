// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package minmax provides a struct that holds Min and Max values.
package minmax

import (
	"math"

	"golang.org/x/exp/constraints"
)

// Float represents a min / max range for floating point values.
// Supports fitting values and other ranges.
type Float[T constraints.Float] struct {
	Min T
	Max T
}

// F32 is a min / max range for float32 values.
type F32 = Float[float32]

// F64 is a min / max range for float64 values.
type F64 = Float[float64]

// SetInfinity sets the Min to +Inf, Max to -Inf -- suitable for
// iteratively calling FitValInRange
func (mr *Float[T]) SetInfinity() {
	mr.Min = T(math.Inf(1))
	mr.Max = T(math.Inf(-1))
}

// IsValid returns true if Min <= Max
func (mr *Float[T]) IsValid() bool {
	return mr.Min <= mr.Max
}

// FitValInRange adjusts our Min, Max to fit given value within Min, Max range
// returns true if we had to adjust to fit. NaN values are ignored.
func (mr *Float[T]) FitValInRange(val T) bool {
	adj := false
	if val < mr.Min {
		mr.Min = val
		adj = true
	}
	if val > mr.Max {
		mr.Max = val
		adj = true
	}
	return adj
}

// FitInRange adjusts our Min, Max to fit within those of other range
// returns true if we had to adjust to fit.
func (mr *Float[T]) FitInRange(oth Float[T]) bool {
	adj := false
	if oth.Min < mr.Min {
		mr.Min = oth.Min
		adj = true
	}
	if oth.Max > mr.Max {
		mr.Max = oth.Max
		adj = true
	}
	return adj
}
