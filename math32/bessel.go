// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// The algorithms in this file are derived from the FreeBSD file
// /usr/src/lib/msun/src/e_jnf.c, with float conversion by
// Ian Lance Taylor, Cygnus Support, and came with this notice.
//
// ====================================================
// Copyright (C) 1993 by Sun Microsystems, Inc. All rights reserved.
//
// Developed at SunPro, a Sun Microsystems, Inc. business.
// Permission to use, copy, modify, and distribute this
// software is freely granted, provided that this notice
// is preserved.
// ====================================================

package math32

const (
	// tinyArg is 2**-20. Below it Jn is the leading term of its power series.
	tinyArg = 0x1p-20

	// seriesMaxOrder caps n-1 in the power series; higher orders
	// underflow to zero for arguments below tinyArg.
	seriesMaxOrder = 8

	// fractionBound is the size Q(k) must reach before the continued
	// fraction is accurate enough for single precision
	// (1e9 would do for double, 1e17 for quadruple).
	fractionBound = 1e4

	// overflowBound is log(MaxFloat32). When n*log(2n/x) exceeds it,
	// the backward recurrence may overflow and must be rescaled.
	overflowBound = 88.72168

	// rescaleBound is 2**60, the magnitude at which the backward
	// recurrence values are renormalized.
	rescaleBound = 0x1p60
)

// Jn returns the order-n Bessel function of the first kind.
//
// Special cases are:
//
//	Jn(n, ±Inf) = 0
//	Jn(n, NaN) = NaN
func Jn(n int, x float32) float32 {
	if IsNaN(x) {
		return x
	}
	if n == 0 {
		return J0(x)
	}
	sign := Signbit(x)
	// J(-n, x) = J(n, -x); use |n|-1 so that -n cannot overflow
	var nm1 int
	if n < 0 {
		nm1 = -(n + 1)
		x = -x
		sign = !sign
	} else {
		nm1 = n - 1
	}
	if nm1 == 0 {
		return J1(x)
	}

	// even n: positive; odd n: sign of x
	sign = sign && n&1 != 0
	x = Abs(x)

	var b float32
	switch {
	case x == 0 || IsInf(x, 1):
		b = 0
	case float32(nm1) < x:
		b = jnForward(nm1, x)
	case x < tinyArg:
		b = jnSeries(nm1, x)
	default:
		b = jnBackward(nm1, x)
	}
	if sign {
		return -b
	}
	return b
}

// jnForward returns J(nm1+1, x) by the recurrence
// J(n+1, x) = 2n/x * J(n, x) - J(n-1, x), which is stable for nm1 < x.
func jnForward(nm1 int, x float32) float32 {
	a := J0(x)
	b := J1(x)
	for i := 1; i <= nm1; i++ {
		a, b = b, b*(2*float32(i)/x)-a
	}
	return b
}

// jnSeries returns the first term of the power series of J(nm1+1, x),
// J(n, x) = (x/2)**n / n!, for tiny x.
func jnSeries(nm1 int, x float32) float32 {
	nm1 = min(nm1, seriesMaxOrder)
	half := 0.5 * x
	b := half       // (x/2)**n
	a := float32(1) // n!
	for i := 2; i <= nm1+1; i++ {
		a *= float32(i)
		b *= half
	}
	return b / a
}

// jnBackward returns J(nm1+1, x) by backward recurrence (Miller's algorithm),
// started from the continued fraction
//
//	                   x      x^2      x^2
//	J(n,x)/J(n-1,x) = ----   ------   ------   .....
//	                   2n  - 2(n+1) - 2(n+2)
//
// With w = 2n/x and h = 2/x this is 1/(w - 1/(w+h - 1/(w+2h - ...))).
// The depth k is the first for which Q(k) >= fractionBound, where
// Q(0) = w, Q(1) = w(w+h) - 1 and Q(k) = (w+k*h)*Q(k-1) - Q(k-2).
func jnBackward(nm1 int, x float32) float32 {
	nf := float32(nm1) + 1
	w := 2 * nf / x
	h := 2 / x
	z := w + h
	q0 := w
	q1 := w*z - 1
	k := 1
	for q1 < fractionBound {
		k++
		z += h
		q0, q1 = q1, z*q1-q0
	}

	var t float32
	for i := k; i >= 0; i-- {
		t = 1 / (2*(float32(i)+nf)/x - t)
	}

	a := t
	b := float32(1)
	// log((2/x)**n * n!) is about n*log(2n/x); beyond overflowBound
	// the recurrence values can overflow and the result likely underflows.
	if nf*Log(Abs(w)) < overflowBound {
		for i := nm1; i > 0; i-- {
			a, b = b, 2*float32(i)*b/x-a
		}
	} else {
		for i := nm1; i > 0; i-- {
			a, b = b, 2*float32(i)*b/x-a
			if b > rescaleBound {
				a /= b
				t /= b
				b = 1
			}
		}
	}

	// normalize against whichever of J0 and J1 is larger
	j0 := J0(x)
	j1 := J1(x)
	if Abs(j0) >= Abs(j1) {
		return t * j0 / b
	}
	return t * j1 / a
}

// Yn returns the order-n Bessel function of the second kind.
//
// Special cases are:
//
//	Yn(n, +Inf) = 0
//	Yn(n ≥ 0, 0) = -Inf
//	Yn(n < 0, 0) = +Inf if n is odd, -Inf if n is even
//	Yn(n, x < 0) = NaN
//	Yn(n, NaN) = NaN
func Yn(n int, x float32) float32 {
	switch {
	case IsNaN(x):
		return x
	case x < 0:
		return NaN()
	case IsInf(x, 1):
		return 0
	}

	if n == 0 {
		return Y0(x)
	}
	var nm1 int
	sign := false
	if n < 0 {
		nm1 = -(n + 1)
		sign = n&1 != 0
	} else {
		nm1 = n - 1
	}
	if nm1 == 0 {
		if sign {
			return -Y1(x)
		}
		return Y1(x)
	}

	a := Y0(x)
	b := Y1(x)
	// quit if b is -Inf; carrying it on only produces NaN
	for i := 1; i <= nm1 && !IsInf(b, -1); i++ {
		a, b = b, (2*float32(i)/x)*b-a
	}
	if sign {
		return -b
	}
	return b
}
