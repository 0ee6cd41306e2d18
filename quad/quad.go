// Copyright 2025 The A2D-Shells Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package quad implements Gauss-Legendre integration rules for element
// volumes and faces
package quad

import (
	"github.com/cpmech/gosl/chk"
	"gonum.org/v1/gonum/integrate/quad"
)

// Point holds one volume integration point: {r, s, t, w}. Unused natural
// coordinates are zero; the weight is always stored at index 3.
type Point []float64

// Coords copies the natural coordinates into pt and returns the weight.
// pt must have length >= the parametric dimension of the rule.
func (o Point) Coords(pt []float64) float64 {
	for i := 0; i < len(pt); i++ {
		pt[i] = o[i]
	}
	return o[3]
}

// W returns the weight of this point
func (o Point) W() float64 { return o[3] }

// GaussLegendre returns the 1D Gauss-Legendre abscissae and weights with n
// points on [-1,1]. The abscissae are in ascending order.
func GaussLegendre(n int) (x, w []float64) {
	if n < 1 {
		chk.Panic("Gauss-Legendre rule needs at least one point. n=%d is invalid", n)
	}
	x = make([]float64, n)
	w = make([]float64, n)
	quad.Legendre{}.FixedLocations(x, w, -1, 1)

	// gonum fills the locations in descending order; flip them, keeping each
	// weight zipped to its node
	for i, j := 0, n-1; i < j; i, j = i+1, j-1 {
		x[i], x[j] = x[j], x[i]
		w[i], w[j] = w[j], w[i]
	}
	return
}

// Line returns the integration points of a 1D reference element [-1,1]
// with n points
func Line(n int) (pts []Point) {
	x, w := GaussLegendre(n)
	pts = make([]Point, n)
	for i := 0; i < n; i++ {
		pts[i] = Point{x[i], 0, 0, w[i]}
	}
	return
}

// Qua returns the tensor-product integration points of the reference
// quadrilateral [-1,1]² with n points per direction
func Qua(n int) (pts []Point) {
	x, w := GaussLegendre(n)
	pts = make([]Point, 0, n*n)
	for j := 0; j < n; j++ {
		for i := 0; i < n; i++ {
			pts = append(pts, Point{x[i], x[j], 0, w[i] * w[j]})
		}
	}
	return
}

// Hex returns the tensor-product integration points of the reference
// hexahedron [-1,1]³ with n points per direction
func Hex(n int) (pts []Point) {
	x, w := GaussLegendre(n)
	pts = make([]Point, 0, n*n*n)
	for k := 0; k < n; k++ {
		for j := 0; j < n; j++ {
			for i := 0; i < n; i++ {
				pts = append(pts, Point{x[i], x[j], x[k], w[i] * w[j] * w[k]})
			}
		}
	}
	return
}
