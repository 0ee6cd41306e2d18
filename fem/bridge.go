// Copyright 2025 The A2D-Shells Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package fem

import (
	"github.com/cpmech/gosl/la"
	"github.com/james-bowman/sparse"
	"gonum.org/v1/gonum/mat"
)

// Real-mode bridges: solver backends work on float64 matrices, so the
// conversions below are defined for Triplet[float64] only. Complex-valued
// assemblies exist for derivative verification and stay in Triplet form.

// ToLaTriplet copies the assembled matrix into a gosl triplet ready for the
// direct sparse solvers
func ToLaTriplet(t *Triplet[float64]) *la.Triplet {
	m, n := t.Size()
	o := new(la.Triplet)
	o.Init(m, n, t.Len())
	for k := 0; k < t.Len(); k++ {
		i, j, x := t.Entry(k)
		o.Put(i, j, x)
	}
	return o
}

// ToCSR converts the assembled matrix to compressed sparse row format,
// summing duplicate entries, for iterative solvers and fast mat-vec products
func ToCSR(t *Triplet[float64]) *sparse.CSR {
	m, n := t.Size()
	dok := sparse.NewDOK(m, n)
	for k := 0; k < t.Len(); k++ {
		i, j, x := t.Entry(k)
		dok.Set(i, j, dok.At(i, j)+x)
	}
	return dok.ToCSR()
}

// ToGonumDense converts the assembled matrix to a dense gonum matrix; meant
// for small verification problems, eigenanalysis and test comparisons
func ToGonumDense(t *Triplet[float64]) *mat.Dense {
	m, n := t.Size()
	d := mat.NewDense(m, n, nil)
	for k := 0; k < t.Len(); k++ {
		i, j, x := t.Entry(k)
		d.Set(i, j, d.At(i, j)+x)
	}
	return d
}
