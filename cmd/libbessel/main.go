// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Command libbessel builds the Bessel functions of the math32 package
// as a C shared library:
//
//	go build -buildmode=c-shared -o libbessel.so ./cmd/libbessel
//
// The generated header declares
//
//	GoFloat32 bessel_j(GoInt32 order, GoFloat32 x);
//	GoFloat32 bessel_y(GoInt32 order, GoFloat32 x);
//
// where GoInt32 and GoFloat32 are int and float, along with the
// __l2math_* entry points of the math library these functions came from.
package main

import "C"

import (
	"math"

	"cogentcore.org/bessel/math32"
)

//export bessel_j
func bessel_j(order int32, x float32) float32 {
	return math32.Jn(int(order), x)
}

//export bessel_y
func bessel_y(order int32, x float32) float32 {
	return math32.Yn(int(order), x)
}

//export __l2math_jnf
func __l2math_jnf(n int32, x float32) float32 {
	return math32.Jn(int(n), x)
}

//export __l2math_ynf
func __l2math_ynf(n int32, x float32) float32 {
	return math32.Yn(int(n), x)
}

//export __l2math_fabsf
func __l2math_fabsf(x float32) float32 {
	return math32.Abs(x)
}

//export __l2math_atanhf
func __l2math_atanhf(x float32) float32 {
	return math32.Atanh(x)
}

//export __l2math_fabs
func __l2math_fabs(x float64) float64 {
	return math.Abs(x)
}

//export __l2math_fmod
func __l2math_fmod(x, y float64) float64 {
	return math.Mod(x, y)
}

//export __l2math_rint
func __l2math_rint(x float64) float64 {
	return math.RoundToEven(x)
}

//export __l2math_sinh
func __l2math_sinh(x float64) float64 {
	return math.Sinh(x)
}

//export __l2math_tanh
func __l2math_tanh(x float64) float64 {
	return math.Tanh(x)
}

func main() {}
