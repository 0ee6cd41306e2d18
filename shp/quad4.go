// Copyright 2025 The A2D-Shells Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package shp implements shape structures/routines generic over the scalar
// type, so that derivative checks can run the same code in complex mode
package shp

import (
	"github.com/cpmech/gosl/chk"

	"github.com/SeiyonArulampalam/a2d-shells/num"
)

// MinDet is the minimum determinant allowed for dxdR
const MinDet = 1.0e-14

// natural coordinates of the 4 corner nodes of the reference quadrilateral
var quad4NatCoords = [4][2]float64{{-1, -1}, {+1, -1}, {+1, +1}, {-1, +1}}

// Quad4 holds geometry data and the scratchpad of the 4-node quadrilateral.
// Coordinates arrive as a flat xpts array with ndim=2 entries per node.
type Quad4[T num.Scalar] struct {

	// scratchpad: set by CalcAtPoint
	S    [4]T    // shape functions
	DSdR [4][2]T // derivatives of S w.r.t natural coordinates
	DxdR [2][2]T // derivatives of real coordinates w.r.t natural coordinates
	G    [4][2]T // G == dSdx. derivative of shape function
	DetJ T       // determinant of dxdR
}

// CalcAtPoint calculates S, and with derivs also DxdR, DetJ and G, at the
// natural coordinates (r,s)
func (o *Quad4[T]) CalcAtPoint(r, s float64, xpts []T, derivs bool) (err error) {

	// S and dSdR
	for m := 0; m < 4; m++ {
		rm, sm := quad4NatCoords[m][0], quad4NatCoords[m][1]
		o.S[m] = num.FromFloat[T](0.25 * (1 + r*rm) * (1 + s*sm))
		o.DSdR[m][0] = num.FromFloat[T](0.25 * rm * (1 + s*sm))
		o.DSdR[m][1] = num.FromFloat[T](0.25 * sm * (1 + r*rm))
	}
	if !derivs {
		return
	}

	// dxdR := sum_m x^m_i * dS^m/dR_j
	for i := 0; i < 2; i++ {
		for j := 0; j < 2; j++ {
			o.DxdR[i][j] = 0
			for m := 0; m < 4; m++ {
				o.DxdR[i][j] += xpts[m*2+i] * o.DSdR[m][j]
			}
		}
	}
	o.DetJ = o.DxdR[0][0]*o.DxdR[1][1] - o.DxdR[0][1]*o.DxdR[1][0]
	if num.Abs(o.DetJ) < MinDet {
		return chk.Err("degenerate cell: det(dxdR) = %v is too small", o.DetJ)
	}

	// G := dSdR * inv(dxdR)
	idet := num.FromFloat[T](1) / o.DetJ
	dRdx := [2][2]T{
		{o.DxdR[1][1] * idet, -o.DxdR[0][1] * idet},
		{-o.DxdR[1][0] * idet, o.DxdR[0][0] * idet},
	}
	for m := 0; m < 4; m++ {
		for i := 0; i < 2; i++ {
			o.G[m][i] = o.DSdR[m][0]*dRdx[0][i] + o.DSdR[m][1]*dRdx[1][i]
		}
	}
	return
}

// RealCoords interpolates the real coordinates at the last point passed to
// CalcAtPoint
func (o *Quad4[T]) RealCoords(xpts []T) (x, y T) {
	for m := 0; m < 4; m++ {
		x += o.S[m] * xpts[m*2+0]
		y += o.S[m] * xpts[m*2+1]
	}
	return
}

// TransformTangent maps the parametric edge direction d through DxdR,
// returning the transformed tangent. Must be called after CalcAtPoint with
// derivs=true. The clockwise rotation (ty, -tx) of the result is the
// (non-normalized) outward normal for counter-clockwise edge traversal.
func (o *Quad4[T]) TransformTangent(d []float64) (tx, ty T) {
	d0 := num.FromFloat[T](d[0])
	d1 := num.FromFloat[T](d[1])
	tx = o.DxdR[0][0]*d0 + o.DxdR[0][1]*d1
	ty = o.DxdR[1][0]*d0 + o.DxdR[1][1]*d1
	return
}
