// Copyright 2025 The A2D-Shells Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package heat implements a 4-node quadrilateral for transient heat
// conduction with one temperature degree of freedom per node
package heat

import (
	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/fun/dbf"

	"github.com/SeiyonArulampalam/a2d-shells/ele"
	"github.com/SeiyonArulampalam/a2d-shells/inp"
	"github.com/SeiyonArulampalam/a2d-shells/num"
	"github.com/SeiyonArulampalam/a2d-shells/quad"
	"github.com/SeiyonArulampalam/a2d-shells/shp"
)

// Heat implements the conduction equation
//
//	ρc ∂u/∂t + div(-k ∇u) = s
//
// The residual is res = Ke*vars + Ce*dvars - fs - fq with the conductivity
// matrix Ke, the capacity matrix Ce, the source vector fs and the boundary
// flux vector fq
type Heat[T num.Scalar] struct {
	ele.Meta

	// material
	Kcond float64 // isotropic conductivity
	RhoC  float64 // volumetric heat capacity ρc

	// conditions
	Sfun   dbf.T            // source function s(t,x); may be nil
	NatBcs []*ele.NaturalBc // face flux conditions

	// integration rules
	ips   []quad.Point
	faces [][]quad.FacePoint
}

// register element
func init() {
	ele.SetInfoFunc("heat", func(edat *inp.ElemData) *ele.Info {
		return &ele.Info{VarsPerNode: 1, NumNodes: 4}
	})
	ele.SetAllocator("heat", func(edat *inp.ElemData) ele.Element[float64] {
		return New[float64](edat.Prms["k"], edat.Prms["rhoc"], edat.Nip)
	})
}

// New returns a heat conduction quadrilateral with an nip × nip Gauss rule
func New[T num.Scalar](k, rhoc float64, nip int) *Heat[T] {
	if nip < 1 {
		chk.Panic("cannot allocate heat element with nip=%d", nip)
	}
	return &Heat[T]{
		Kcond: k, RhoC: rhoc,
		ips:   quad.Qua(nip),
		faces: quad.QuaFaces(nip),
	}
}

// SetCondition sets an element condition such as the source term "s"
func (o *Heat[T]) SetCondition(key string, f dbf.T, extra string) (err error) {
	if key == "s" {
		o.Sfun = f
		return
	}
	return chk.Err("heat element does not support condition %q", key)
}

// SetNaturalBc adds a face flux boundary condition with key "qb"
func (o *Heat[T]) SetNaturalBc(nbc *ele.NaturalBc) {
	o.NatBcs = append(o.NatBcs, nbc)
}

// VarsPerNode returns the number of degrees of freedom per node
func (o *Heat[T]) VarsPerNode() int { return 1 }

// NumNodes returns the number of nodes
func (o *Heat[T]) NumNodes() int { return 4 }

// NumQuadraturePoints returns the number of volume integration points
func (o *Heat[T]) NumQuadraturePoints() int { return len(o.ips) }

// QuadratureWeight returns the weight of the n-th integration point
func (o *Heat[T]) QuadratureWeight(n int) float64 { return o.ips[n].W() }

// QuadraturePoint fills pt with the n-th integration point and returns its weight
func (o *Heat[T]) QuadraturePoint(n int, pt []float64) float64 { return o.ips[n].Coords(pt) }

// NumElementFaces returns the number of edges
func (o *Heat[T]) NumElementFaces() int { return len(o.faces) }

// NumFaceQuadraturePoints returns the number of integration points on an edge
func (o *Heat[T]) NumFaceQuadraturePoints(face int) int { return len(o.faces[face]) }

// FaceQuadraturePoint fills pt and tangent for the n-th point on a face and
// returns the weight
func (o *Heat[T]) FaceQuadraturePoint(face, n int, pt, tangent []float64) float64 {
	fp := o.faces[face][n]
	copy(pt, fp.Pt[:len(pt)])
	copy(tangent, fp.Tangent)
	return fp.W
}

// AddResidual adds Ke*vars + Ce*dvars - fs - fq into res
func (o *Heat[T]) AddResidual(elemIndex int, time float64, xpts, vars, dvars, ddvars, res []T) (err error) {
	var sf shp.Quad4[T]
	pt := make([]float64, 2)
	for n := range o.ips {
		w := o.QuadraturePoint(n, pt)
		err = sf.CalcAtPoint(pt[0], pt[1], xpts, true)
		if err != nil {
			return
		}
		coef := num.FromFloat[T](w) * sf.DetJ

		// gradient and rate at this point
		var gx, gy, dudt T
		for m := 0; m < 4; m++ {
			gx += sf.G[m][0] * vars[m]
			gy += sf.G[m][1] * vars[m]
			dudt += sf.S[m] * dvars[m]
		}

		// source
		var sval T
		if o.Sfun != nil {
			x, y := sf.RealCoords(xpts)
			sval = num.FromFloat[T](o.Sfun.F(time, []float64{num.Real(x), num.Real(y)}))
		}

		kc := num.FromFloat[T](o.Kcond)
		rc := num.FromFloat[T](o.RhoC)
		for m := 0; m < 4; m++ {
			res[m] += coef * (kc*(sf.G[m][0]*gx+sf.G[m][1]*gy) + sf.S[m]*(rc*dudt-sval))
		}
	}

	// contribution from natural boundary conditions
	if len(o.NatBcs) > 0 {
		return o.addNatBcs(elemIndex, time, xpts, res)
	}
	return
}

// AddJacobian adds the residual into res and alpha*Ke + beta*Ce into mat
func (o *Heat[T]) AddJacobian(elemIndex int, time float64, alpha, beta, gamma T, xpts, vars, dvars, ddvars, res, mat []T) (err error) {
	err = o.AddResidual(elemIndex, time, xpts, vars, dvars, ddvars, res)
	if err != nil {
		return
	}
	var sf shp.Quad4[T]
	doK := num.Abs(alpha) > 0
	doC := num.Abs(beta) > 0 && o.RhoC > 0
	if !doK && !doC {
		return
	}
	pt := make([]float64, 2)
	for n := range o.ips {
		w := o.QuadraturePoint(n, pt)
		err = sf.CalcAtPoint(pt[0], pt[1], xpts, true)
		if err != nil {
			return
		}
		coef := num.FromFloat[T](w) * sf.DetJ
		kc := alpha * coef * num.FromFloat[T](o.Kcond)
		cc := beta * coef * num.FromFloat[T](o.RhoC)
		for m := 0; m < 4; m++ {
			for l := 0; l < 4; l++ {
				if doK {
					mat[m*4+l] += kc * (sf.G[m][0]*sf.G[l][0] + sf.G[m][1]*sf.G[l][1])
				}
				if doC {
					mat[m*4+l] += cc * sf.S[m] * sf.S[l]
				}
			}
		}
	}
	return
}

// EvalPointQuantity evaluates the flux magnitude |k·∇u| at one integration point
func (o *Heat[T]) EvalPointQuantity(elemIndex, quantityType int, time float64, n int, pt []float64, xpts, vars, dvars, ddvars []T, detXd *T, quantity []T) int {
	if quantityType != ele.QtyFluxNorm {
		return 0
	}
	if quantity == nil {
		return 1 // count query only
	}
	var sf shp.Quad4[T]
	err := sf.CalcAtPoint(pt[0], pt[1], xpts, true)
	if err != nil {
		return 0
	}
	if detXd != nil {
		*detXd = sf.DetJ
	}
	var gx, gy T
	for m := 0; m < 4; m++ {
		gx += sf.G[m][0] * vars[m]
		gy += sf.G[m][1] * vars[m]
	}
	kc := num.FromFloat[T](o.Kcond)
	quantity[0] = num.Sqrt(kc * kc * (gx*gx + gy*gy))
	return 1
}

// addNatBcs adds the boundary flux terms -∫ N·qb dΓ to the residual
func (o *Heat[T]) addNatBcs(elemIndex int, time float64, xpts, res []T) (err error) {
	var sf shp.Quad4[T]
	pt := make([]float64, 2)
	tangent := make([]float64, 2)
	for _, nbc := range o.NatBcs {
		if nbc.Key != "qb" {
			return chk.Err("heat element does not support natural boundary condition %q", nbc.Key)
		}
		face := nbc.IdxFace
		for n := 0; n < o.NumFaceQuadraturePoints(face); n++ {
			w := o.FaceQuadraturePoint(face, n, pt, tangent)
			err = sf.CalcAtPoint(pt[0], pt[1], xpts, true)
			if err != nil {
				return
			}

			// measure of the transformed edge
			tx, ty := sf.TransformTangent(tangent)
			jf := num.Sqrt(tx*tx + ty*ty)

			// prescribed flux at the real coordinates of this point
			x, y := sf.RealCoords(xpts)
			qb := num.FromFloat[T](nbc.Fcn.F(time, []float64{num.Real(x), num.Real(y)}))

			coef := num.FromFloat[T](w) * jf * qb
			for m := 0; m < 4; m++ {
				res[m] -= coef * sf.S[m]
			}
		}
	}
	return
}
