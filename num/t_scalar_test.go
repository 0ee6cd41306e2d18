// Copyright 2025 The A2D-Shells Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package num

import (
	"testing"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"
)

func verbose() {
	io.Verbose = true
	chk.Verbose = true
}

func Test_scalar01(tst *testing.T) {

	//verbose()
	chk.PrintTitle("scalar01. real mode")

	a := FromFloat[float64](1.5)
	chk.Float64(tst, "a", 1e-17, a, 1.5)
	chk.Float64(tst, "Real(a)", 1e-17, Real(a), 1.5)
	chk.Float64(tst, "Imag(a)", 1e-17, Imag(a), 0)
	chk.Float64(tst, "Abs(-a)", 1e-17, Abs(-a), 1.5)
	chk.Float64(tst, "Sqrt(4)", 1e-15, Sqrt(4.0), 2.0)

	v := []float64{1, 2, 3}
	Fill(v, -1)
	chk.Array(tst, "v", 1e-17, v, []float64{-1, -1, -1})

	chk.Float64(tst, "dot", 1e-15, Dot([]float64{1, 2, 3}, []float64{4, 5, 6}), 32)
	chk.Float64(tst, "maxAbsDiff", 1e-15, MaxAbsDiff([]float64{1, 2}, []float64{1, 2.5}), 0.5)
}

func Test_scalar02(tst *testing.T) {

	//verbose()
	chk.PrintTitle("scalar02. complex mode")

	a := FromFloat[complex128](1.5)
	chk.Float64(tst, "real(a)", 1e-17, real(a), 1.5)
	chk.Float64(tst, "imag(a)", 1e-17, imag(a), 0)

	b := complex(3, 4)
	chk.Float64(tst, "Real(b)", 1e-17, Real(b), 3)
	chk.Float64(tst, "Imag(b)", 1e-17, Imag(b), 4)
	chk.Float64(tst, "Abs(b)", 1e-15, Abs(b), 5)

	s := Sqrt(complex(-4, 0))
	chk.Float64(tst, "real(sqrt(-4))", 1e-15, real(s), 0)
	chk.Float64(tst, "imag(sqrt(-4))", 1e-15, imag(s), 2)

	// the unconjugated product feeds the complex-step method
	d := Dot([]complex128{complex(1, 1)}, []complex128{complex(1, 1)})
	chk.Float64(tst, "real(dot)", 1e-15, real(d), 0)
	chk.Float64(tst, "imag(dot)", 1e-15, imag(d), 2)
}
