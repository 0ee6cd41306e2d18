// Copyright 2025 The A2D-Shells Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package quad

import (
	"math"
	"testing"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"
)

func verbose() {
	io.Verbose = true
	chk.Verbose = true
}

func Test_gauss01(tst *testing.T) {

	//verbose()
	chk.PrintTitle("gauss01. 1D Gauss-Legendre rules")

	// weights sum to the measure of [-1,1] and abscissae are symmetric and
	// sorted in ascending order
	for n := 1; n <= 5; n++ {
		x, w := GaussLegendre(n)
		sum := 0.0
		for i := 0; i < n; i++ {
			sum += w[i]
			chk.Float64(tst, io.Sf("n=%d symmetry", n), 1e-14, x[i], -x[n-1-i])
			if i > 0 && x[i] <= x[i-1] {
				tst.Errorf("n=%d abscissae are not ascending: x[%d]=%v <= x[%d]=%v", n, i, x[i], i-1, x[i-1])
				return
			}
		}
		chk.Float64(tst, io.Sf("n=%d Σw", n), 1e-14, sum, 2.0)
	}

	// the 2-point rule is ±1/√3 with unit weights
	x, w := GaussLegendre(2)
	chk.Array(tst, "x", 1e-15, x, []float64{-1.0 / math.Sqrt(3.0), 1.0 / math.Sqrt(3.0)})
	chk.Array(tst, "w", 1e-15, w, []float64{1, 1})

	// the 2-point rule integrates cubics exactly: ∫ r³+r²+r+1 dr = 8/3
	sum := 0.0
	for i := range x {
		r := x[i]
		sum += w[i] * (r*r*r + r*r + r + 1)
	}
	chk.Float64(tst, "∫cubic", 1e-14, sum, 8.0/3.0)
}

func Test_rules01(tst *testing.T) {

	//verbose()
	chk.PrintTitle("rules01. tensor-product rules")

	lin := Line(3)
	chk.IntAssert(len(lin), 3)

	qua := Qua(2)
	chk.IntAssert(len(qua), 4)
	sum := 0.0
	pt := make([]float64, 2)
	for _, p := range qua {
		w := p.Coords(pt)
		chk.Float64(tst, "W==Coords weight", 1e-17, w, p.W())
		sum += w
	}
	chk.Float64(tst, "qua Σw", 1e-14, sum, 4.0)

	hex := Hex(2)
	chk.IntAssert(len(hex), 8)
	sum = 0.0
	for _, p := range hex {
		sum += p.W()
	}
	chk.Float64(tst, "hex Σw", 1e-14, sum, 8.0)
}

func Test_faces01(tst *testing.T) {

	//verbose()
	chk.PrintTitle("faces01. edge rules of the quadrilateral")

	faces := QuaFaces(2)
	chk.IntAssert(len(faces), 4)
	for f, pts := range faces {
		chk.IntAssert(len(pts), 2)
		sum := 0.0
		for _, fp := range pts {
			sum += fp.W

			// the rotated tangent must point away from the element centre
			nx, ny := fp.Tangent[1], -fp.Tangent[0]
			dot := nx*fp.Pt[0] + ny*fp.Pt[1]
			if dot < 1e-14 {
				tst.Errorf("face %d: normal (%g,%g) at (%g,%g) is not outward", f, nx, ny, fp.Pt[0], fp.Pt[1])
				return
			}
		}
		chk.Float64(tst, io.Sf("face %d Σw", f), 1e-14, sum, 2.0)
	}
}

func Test_faces02(tst *testing.T) {

	//verbose()
	chk.PrintTitle("faces02. face rules of the hexahedron")

	faces := HexFaces(2)
	chk.IntAssert(len(faces), 6)
	for f, pts := range faces {
		chk.IntAssert(len(pts), 4)
		sum := 0.0
		for _, fp := range pts {
			sum += fp.W

			// cross(d1,d2) must point away from the element centre
			d1 := fp.Tangent[0:3]
			d2 := fp.Tangent[3:6]
			nx := d1[1]*d2[2] - d1[2]*d2[1]
			ny := d1[2]*d2[0] - d1[0]*d2[2]
			nz := d1[0]*d2[1] - d1[1]*d2[0]
			dot := nx*fp.Pt[0] + ny*fp.Pt[1] + nz*fp.Pt[2]
			if dot < 1e-14 {
				tst.Errorf("face %d: normal (%g,%g,%g) is not outward", f, nx, ny, nz)
				return
			}
		}
		chk.Float64(tst, io.Sf("face %d Σw", f), 1e-14, sum, 4.0)
	}
}

func Test_faces03(tst *testing.T) {

	//verbose()
	chk.PrintTitle("faces03. end points of the line")

	faces := LineFaces()
	chk.IntAssert(len(faces), 2)
	chk.Float64(tst, "left", 1e-17, faces[0][0].Pt[0], -1)
	chk.Float64(tst, "right", 1e-17, faces[1][0].Pt[0], +1)
	chk.IntAssert(len(faces[0][0].Tangent), 0)
}
