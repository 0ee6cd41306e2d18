// Copyright 2025 The A2D-Shells Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package num defines the scalar type duality used by all numerical kernels.
// Every element and assembler routine is generic over Scalar so that the same
// code path runs in real mode (float64) and in complex mode (complex128) for
// derivative verification via the complex-step method.
package num

import (
	"math"
	"math/cmplx"
)

// Scalar is the numeric type of all state and output values. The real/complex
// choice is made at instantiation time; no runtime branching occurs inside
// numerical loops.
type Scalar interface {
	float64 | complex128
}

// FromFloat converts a float64 value to the active scalar type
func FromFloat[T Scalar](v float64) (res T) {
	switch p := any(&res).(type) {
	case *float64:
		*p = v
	case *complex128:
		*p = complex(v, 0)
	}
	return
}

// Real returns the real part of x
func Real[T Scalar](x T) float64 {
	switch v := any(x).(type) {
	case float64:
		return v
	case complex128:
		return real(v)
	}
	return 0
}

// Imag returns the imaginary part of x (zero in real mode)
func Imag[T Scalar](x T) float64 {
	if v, ok := any(x).(complex128); ok {
		return imag(v)
	}
	return 0
}

// Abs returns the absolute value (modulus) of x
func Abs[T Scalar](x T) float64 {
	switch v := any(x).(type) {
	case float64:
		return math.Abs(v)
	case complex128:
		return cmplx.Abs(v)
	}
	return 0
}

// Sqrt returns the square root of x in the active scalar type
func Sqrt[T Scalar](x T) (res T) {
	switch v := any(x).(type) {
	case float64:
		res = any(math.Sqrt(v)).(T)
	case complex128:
		res = any(cmplx.Sqrt(v)).(T)
	}
	return
}

// Fill sets all entries of v to val
func Fill[T Scalar](v []T, val T) {
	for i := range v {
		v[i] = val
	}
}

// Dot returns the (unconjugated) dot product of a and b
func Dot[T Scalar](a, b []T) (res T) {
	for i := 0; i < len(a); i++ {
		res += a[i] * b[i]
	}
	return
}

// MaxAbsDiff returns the largest absolute component of a-b
func MaxAbsDiff[T Scalar](a, b []T) (max float64) {
	for i := 0; i < len(a); i++ {
		diff := Abs(a[i] - b[i])
		if diff > max {
			max = diff
		}
	}
	return
}
