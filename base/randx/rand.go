// Copyright (c) 2019, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package randx provides a seedable random source and helpers for
// drawing float32 arguments from a range.
package randx

import (
	"math/rand"
	"slices"
)

// Rand is the source of the uniform draws used by [Uniform] and
// [Samples]; *rand.Rand and [SysRand] implement it.
type Rand interface {

	// Float64 returns, as a float64, a pseudo-random number in [0.0,1.0).
	Float64() float64
}

// SysRand supports the system random number generator
// for either a separate rand.Rand source, or, if that
// is nil (the zero value), the global rand stream.
type SysRand struct {

	// if non-nil, use this random number source instead of the global default one
	Rand *rand.Rand
}

// NewSysRand returns a new SysRand with a new
// rand.Rand random source with given initial seed.
func NewSysRand(seed int64) *SysRand {
	r := &SysRand{}
	r.NewRand(seed)
	return r
}

// NewRand sets Rand to a new rand.Rand source using given seed.
func (r *SysRand) NewRand(seed int64) {
	r.Rand = rand.New(rand.NewSource(seed))
}

func (r *SysRand) Float64() float64 {
	if r.Rand == nil {
		return rand.Float64()
	}
	return r.Rand.Float64()
}

// Uniform returns a value drawn uniformly from [lo, hi].
// The result is clamped to the range, which float32 rounding
// of the scaled draw could otherwise leave.
func Uniform(lo, hi float32, r Rand) float32 {
	v := lo + float32(r.Float64()*(float64(hi)-float64(lo)))
	return min(max(v, lo), hi)
}

// Samples returns n values drawn uniformly from [lo, hi], sorted
// in increasing order.
func Samples(n int, lo, hi float32, r Rand) []float32 {
	xs := make([]float32, n)
	for i := range xs {
		xs[i] = Uniform(lo, hi, r)
	}
	slices.Sort(xs)
	return xs
}
