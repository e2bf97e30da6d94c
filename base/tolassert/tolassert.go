// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package tolassert provides functions for asserting the equality of numbers
// with tolerance (in other words, it checks whether numbers are about equal).
package tolassert

import (
	"math"

	"github.com/stretchr/testify/assert"
	"golang.org/x/exp/constraints"
)

// Equal asserts that the given two numbers are about equal to each other,
// using a default tolerance of 0.001.
func Equal[T constraints.Float](t assert.TestingT, expected T, actual T, msgAndArgs ...any) bool {
	if h, ok := t.(interface{ Helper() }); ok {
		h.Helper()
	}
	return EqualTol(t, expected, actual, 0.001, msgAndArgs...)
}

// EqualTol asserts that the given two numbers are about equal to each other,
// using the given absolute tolerance value. Two NaN values are considered equal,
// as are two infinities of the same sign.
func EqualTol[T constraints.Float](t assert.TestingT, expected T, actual T, tolerance T, msgAndArgs ...any) bool {
	if h, ok := t.(interface{ Helper() }); ok {
		h.Helper()
	}
	e, a := float64(expected), float64(actual)
	if math.IsNaN(e) && math.IsNaN(a) || e == a {
		return true
	}
	if math.Abs(e-a) > float64(tolerance) || math.IsNaN(e-a) {
		return assert.Equal(t, expected, actual, msgAndArgs...)
	}
	return true
}

// EqualRelTol asserts that the given two numbers are about equal to each other
// to within the given tolerance relative to the magnitude of expected, plus
// the given absolute floor for values near zero.
func EqualRelTol[T constraints.Float](t assert.TestingT, expected T, actual T, relative, floor T, msgAndArgs ...any) bool {
	if h, ok := t.(interface{ Helper() }); ok {
		h.Helper()
	}
	tol := relative*T(math.Abs(float64(expected))) + floor
	return EqualTol(t, expected, actual, tol, msgAndArgs...)
}
