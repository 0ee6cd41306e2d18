// Copyright 2025 The A2D-Shells Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package fem

import (
	"github.com/cpmech/gosl/chk"

	"github.com/SeiyonArulampalam/a2d-shells/num"
)

// Triplet holds a sparse matrix in coordinate (triplet) format, generic over
// the scalar type. Duplicate (i,j) entries are kept and summed on conversion,
// which makes Put a pure accumulation suitable for element assembly.
type Triplet[T num.Scalar] struct {
	i, j []int
	x    []T
	pos  int
	max  int
	m, n int
}

// NewTriplet returns a new matrix with m rows, n columns and space for max entries
func NewTriplet[T num.Scalar](m, n, max int) (o *Triplet[T]) {
	o = new(Triplet[T])
	o.Init(m, n, max)
	return
}

// Init (re)allocates the triplet storage
func (o *Triplet[T]) Init(m, n, max int) {
	o.m, o.n, o.pos, o.max = m, n, 0, max
	o.i = make([]int, max)
	o.j = make([]int, max)
	o.x = make([]T, max)
}

// Start resets the position to restart filling
func (o *Triplet[T]) Start() {
	o.pos = 0
}

// Put inserts a new entry, growing the storage if needed
func (o *Triplet[T]) Put(i, j int, x T) {
	if i < 0 || i >= o.m || j < 0 || j >= o.n {
		chk.Panic("cannot put entry at (%d,%d) in %d×%d matrix", i, j, o.m, o.n)
	}
	if o.pos == o.max {
		o.grow()
	}
	o.i[o.pos], o.j[o.pos], o.x[o.pos] = i, j, x
	o.pos++
}

// Len returns the number of entries currently stored
func (o *Triplet[T]) Len() int { return o.pos }

// Size returns the dimensions of the matrix
func (o *Triplet[T]) Size() (m, n int) { return o.m, o.n }

// Entry returns the k-th stored entry
func (o *Triplet[T]) Entry(k int) (i, j int, x T) {
	return o.i[k], o.j[k], o.x[k]
}

// ToDense converts the triplet to a dense row-major representation, summing
// duplicate entries
func (o *Triplet[T]) ToDense() (a [][]T) {
	a = make([][]T, o.m)
	for i := 0; i < o.m; i++ {
		a[i] = make([]T, o.n)
	}
	for k := 0; k < o.pos; k++ {
		a[o.i[k]][o.j[k]] += o.x[k]
	}
	return
}

// MulVecAdd accumulates A·px into py
func (o *Triplet[T]) MulVecAdd(px, py []T) {
	for k := 0; k < o.pos; k++ {
		py[o.i[k]] += o.x[k] * px[o.j[k]]
	}
}

func (o *Triplet[T]) grow() {
	if o.max == 0 {
		o.max = 16
	} else {
		o.max *= 2
	}
	i := make([]int, o.max)
	j := make([]int, o.max)
	x := make([]T, o.max)
	copy(i, o.i)
	copy(j, o.j)
	copy(x, o.x)
	o.i, o.j, o.x = i, j, x
}
