// Copyright 2025 The A2D-Shells Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package fem

import (
	"github.com/SeiyonArulampalam/a2d-shells/num"
)

// Solution holds the solution data @ nodes: the degrees of freedom and their
// first and second time derivatives
type Solution[T num.Scalar] struct {
	T      float64 // current time
	Y      []T     // DOFs (solution variables)
	Dydt   []T     // dy/dt
	D2ydt2 []T     // d²y/dt²
}

// NewSolution returns a zeroed solution with ny equations
func NewSolution[T num.Scalar](ny int) *Solution[T] {
	return &Solution[T]{
		Y:      make([]T, ny),
		Dydt:   make([]T, ny),
		D2ydt2: make([]T, ny),
	}
}

// Reset clears all values
func (o *Solution[T]) Reset() {
	o.T = 0
	num.Fill[T](o.Y, 0)
	num.Fill[T](o.Dydt, 0)
	num.Fill[T](o.D2ydt2, 0)
}
