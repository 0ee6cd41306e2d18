// Copyright 2025 The A2D-Shells Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package quad

// FacePoint holds one face/edge integration point in the parametric space of
// the parent element. Tangent holds 0, 1 or 2 parametric direction(s) parallel
// to the face, stored row-major with ndim components each. The tangents obey
// the right-hand rule: for a 3D face, cross(Xd*d1, Xd*d2) points outward from
// the element volume; for a 2D edge with tangent d, the outward normal is
// obtained by rotating Xd*d clockwise, i.e. n = (t[1], -t[0]).
type FacePoint struct {
	W       float64   // weight
	Pt      []float64 // [3] point in the parent element's parametric space
	Tangent []float64 // [ntan*ndim] tangent direction(s), row-major
}

// LineFaces returns the two end "faces" of the 1D reference element [-1,1].
// End faces are points, so they carry a single unit-weight location and no
// tangent directions.
func LineFaces() (faces [][]FacePoint) {
	return [][]FacePoint{
		{{W: 1, Pt: []float64{-1, 0, 0}}},
		{{W: 1, Pt: []float64{+1, 0, 0}}},
	}
}

// quaFaceData defines the edges of the reference quadrilateral traversed
// counter-clockwise: origin, direction of traversal (= tangent)
var quaFaceData = []struct {
	orig, tang [2]float64
}{
	{[2]float64{0, -1}, [2]float64{+1, 0}}, // eta = -1
	{[2]float64{+1, 0}, [2]float64{0, +1}}, // xi  = +1
	{[2]float64{0, +1}, [2]float64{-1, 0}}, // eta = +1
	{[2]float64{-1, 0}, [2]float64{0, -1}}, // xi  = -1
}

// QuaFaces returns the integration points of the 4 edges of the reference
// quadrilateral with n points per edge. Edges are traversed counter-clockwise
// so that the clockwise rotation of the transformed tangent is outward.
func QuaFaces(n int) (faces [][]FacePoint) {
	x, w := GaussLegendre(n)
	faces = make([][]FacePoint, 4)
	for f, d := range quaFaceData {
		faces[f] = make([]FacePoint, n)
		for i := 0; i < n; i++ {
			faces[f][i] = FacePoint{
				W:       w[i],
				Pt:      []float64{d.orig[0] + x[i]*d.tang[0], d.orig[1] + x[i]*d.tang[1], 0},
				Tangent: []float64{d.tang[0], d.tang[1]},
			}
		}
	}
	return
}

// hexFaceData defines the six faces of the reference hexahedron: fixed axis,
// fixed value, and the two tangent directions with cross(d1,d2) outward
var hexFaceData = []struct {
	axis   int
	val    float64
	d1, d2 [3]float64
}{
	{2, -1, [3]float64{0, 1, 0}, [3]float64{1, 0, 0}}, // zeta = -1
	{2, +1, [3]float64{1, 0, 0}, [3]float64{0, 1, 0}}, // zeta = +1
	{1, -1, [3]float64{1, 0, 0}, [3]float64{0, 0, 1}}, // eta  = -1
	{1, +1, [3]float64{0, 0, 1}, [3]float64{1, 0, 0}}, // eta  = +1
	{0, -1, [3]float64{0, 0, 1}, [3]float64{0, 1, 0}}, // xi   = -1
	{0, +1, [3]float64{0, 1, 0}, [3]float64{0, 0, 1}}, // xi   = +1
}

// HexFaces returns the integration points of the 6 faces of the reference
// hexahedron with n points per direction on each face
func HexFaces(n int) (faces [][]FacePoint) {
	x, w := GaussLegendre(n)
	faces = make([][]FacePoint, 6)
	for f, d := range hexFaceData {
		pts := make([]FacePoint, 0, n*n)
		for j := 0; j < n; j++ {
			for i := 0; i < n; i++ {
				pt := []float64{0, 0, 0}
				pt[d.axis] = d.val
				for k := 0; k < 3; k++ {
					pt[k] += x[i]*d.d1[k] + x[j]*d.d2[k]
				}
				pts = append(pts, FacePoint{
					W:  w[i] * w[j],
					Pt: pt,
					Tangent: []float64{
						d.d1[0], d.d1[1], d.d1[2],
						d.d2[0], d.d2[1], d.d2[2],
					},
				})
			}
		}
		faces[f] = pts
	}
	return
}
