// Copyright 2025 The A2D-Shells Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package plane implements a 4-node plane-stress quadrilateral element with
// two displacement degrees of freedom per node
package plane

import (
	"github.com/cpmech/gosl/chk"

	"github.com/SeiyonArulampalam/a2d-shells/ele"
	"github.com/SeiyonArulampalam/a2d-shells/inp"
	"github.com/SeiyonArulampalam/a2d-shells/num"
	"github.com/SeiyonArulampalam/a2d-shells/quad"
	"github.com/SeiyonArulampalam/a2d-shells/shp"
)

// Plane implements the linear-elastic plane-stress quadrilateral. The
// residual is
//
//	res = Ke*vars + Me*ddvars
//
// with the consistent mass Me and the stiffness Ke = ∫ Bᵀ·D·B t dA
type Plane[T num.Scalar] struct {
	ele.Meta

	// material and geometry
	E     float64 // Young's modulus
	Nu    float64 // Poisson's coefficient
	Rho   float64 // density
	Thick float64 // out-of-plane thickness

	// integration rules
	ips   []quad.Point
	faces [][]quad.FacePoint
}

// register element
func init() {
	ele.SetInfoFunc("plane", func(edat *inp.ElemData) *ele.Info {
		return &ele.Info{VarsPerNode: 2, NumNodes: 4}
	})
	ele.SetAllocator("plane", func(edat *inp.ElemData) ele.Element[float64] {
		return New[float64](
			edat.Prms["E"],
			edat.Prms["nu"],
			edat.Prms["rho"],
			edat.Prms["thick"],
			edat.Nip,
		)
	})
}

// New returns a plane-stress quadrilateral with an nip × nip Gauss rule
func New[T num.Scalar](e, nu, rho, thick float64, nip int) *Plane[T] {
	if thick <= 0 {
		thick = 1
	}
	if nip < 1 {
		chk.Panic("cannot allocate plane element with nip=%d", nip)
	}
	return &Plane[T]{
		E: e, Nu: nu, Rho: rho, Thick: thick,
		ips:   quad.Qua(nip),
		faces: quad.QuaFaces(nip),
	}
}

// VarsPerNode returns the number of degrees of freedom per node
func (o *Plane[T]) VarsPerNode() int { return 2 }

// NumNodes returns the number of nodes
func (o *Plane[T]) NumNodes() int { return 4 }

// NumQuadraturePoints returns the number of volume integration points
func (o *Plane[T]) NumQuadraturePoints() int { return len(o.ips) }

// QuadratureWeight returns the weight of the n-th integration point
func (o *Plane[T]) QuadratureWeight(n int) float64 { return o.ips[n].W() }

// QuadraturePoint fills pt with the n-th integration point and returns its weight
func (o *Plane[T]) QuadraturePoint(n int, pt []float64) float64 { return o.ips[n].Coords(pt) }

// NumElementFaces returns the number of edges
func (o *Plane[T]) NumElementFaces() int { return len(o.faces) }

// NumFaceQuadraturePoints returns the number of integration points on an edge
func (o *Plane[T]) NumFaceQuadraturePoints(face int) int { return len(o.faces[face]) }

// FaceQuadraturePoint fills pt and tangent for the n-th point on a face and
// returns the weight
func (o *Plane[T]) FaceQuadraturePoint(face, n int, pt, tangent []float64) float64 {
	fp := o.faces[face][n]
	copy(pt, fp.Pt[:len(pt)])
	copy(tangent, fp.Tangent)
	return fp.W
}

// AddResidual adds Ke*vars + Me*ddvars into res
func (o *Plane[T]) AddResidual(elemIndex int, time float64, xpts, vars, dvars, ddvars, res []T) (err error) {
	var sf shp.Quad4[T]
	var eps, sig [3]T
	pt := make([]float64, 2)
	for n := range o.ips {
		w := o.QuadraturePoint(n, pt)
		err = sf.CalcAtPoint(pt[0], pt[1], xpts, true)
		if err != nil {
			return
		}
		coef := num.FromFloat[T](w*o.Thick) * sf.DetJ

		// stress at this point
		o.strain(&sf, vars, &eps)
		o.stress(&eps, &sig)

		// internal forces: Bᵀ·σ
		for m := 0; m < 4; m++ {
			res[m*2+0] += coef * (sf.G[m][0]*sig[0] + sf.G[m][1]*sig[2])
			res[m*2+1] += coef * (sf.G[m][1]*sig[1] + sf.G[m][0]*sig[2])
		}

		// inertial forces: ρ·N·Nᵀ·ddvars
		if o.Rho > 0 {
			rc := coef * num.FromFloat[T](o.Rho)
			for i := 0; i < 2; i++ {
				var acc T
				for m := 0; m < 4; m++ {
					acc += sf.S[m] * ddvars[m*2+i]
				}
				for m := 0; m < 4; m++ {
					res[m*2+i] += rc * sf.S[m] * acc
				}
			}
		}
	}
	return
}

// AddJacobian adds the residual into res and alpha*Ke + gamma*Me into mat
func (o *Plane[T]) AddJacobian(elemIndex int, time float64, alpha, beta, gamma T, xpts, vars, dvars, ddvars, res, mat []T) (err error) {
	err = o.AddResidual(elemIndex, time, xpts, vars, dvars, ddvars, res)
	if err != nil {
		return
	}
	return o.addKeMe(alpha, gamma, xpts, mat)
}

// MatType computes a named element matrix, overwriting mat
func (o *Plane[T]) MatType(mtype ele.ElementMatrixType, elemIndex int, time float64, xpts, vars, mat []T) error {
	num.Fill[T](mat, 0)
	one := num.FromFloat[T](1)
	switch mtype {
	case ele.StiffnessMatrix:
		return o.addKeMe(one, 0, xpts, mat)
	case ele.MassMatrix:
		return o.addKeMe(0, one, xpts, mat)
	}
	return nil // geometric stiffness not provided; zero signals absence
}

// ComputeEnergies returns the kinetic and potential (strain) energies
func (o *Plane[T]) ComputeEnergies(elemIndex int, time float64, xpts, vars, dvars []T) (Te, Pe T, err error) {
	var sf shp.Quad4[T]
	var eps, sig [3]T
	half := num.FromFloat[T](0.5)
	pt := make([]float64, 2)
	for n := range o.ips {
		w := o.QuadraturePoint(n, pt)
		err = sf.CalcAtPoint(pt[0], pt[1], xpts, true)
		if err != nil {
			return
		}
		coef := num.FromFloat[T](w*o.Thick) * sf.DetJ

		// strain energy: ½ εᵀ·D·ε
		o.strain(&sf, vars, &eps)
		o.stress(&eps, &sig)
		Pe += half * coef * (eps[0]*sig[0] + eps[1]*sig[1] + eps[2]*sig[2])

		// kinetic energy: ½ ρ |v|²
		if o.Rho > 0 {
			var vx, vy T
			for m := 0; m < 4; m++ {
				vx += sf.S[m] * dvars[m*2+0]
				vy += sf.S[m] * dvars[m*2+1]
			}
			Te += half * coef * num.FromFloat[T](o.Rho) * (vx*vx + vy*vy)
		}
	}
	return
}

// MatVecDataSizes returns the sizes for the matrix-free path: the full
// element matrix and one local vector of scratch
func (o *Plane[T]) MatVecDataSizes(mtype ele.ElementMatrixType, elemIndex int) (dataSize, tempSize int) {
	nvar := ele.NumVariables[T](o)
	return nvar * nvar, nvar
}

// MatVecProductData precomputes the element matrix used by AddMatVecProduct
func (o *Plane[T]) MatVecProductData(mtype ele.ElementMatrixType, elemIndex int, time float64, xpts, vars, dvars, ddvars, data []T) error {
	return o.MatType(mtype, elemIndex, time, xpts, vars, data)
}

// AddMatVecProduct accumulates data·px into py using temp as scratch
func (o *Plane[T]) AddMatVecProduct(mtype ele.ElementMatrixType, elemIndex int, data, temp, px, py []T) {
	nvar := ele.NumVariables[T](o)
	for i := 0; i < nvar; i++ {
		temp[i] = 0
		for j := 0; j < nvar; j++ {
			temp[i] += data[i*nvar+j] * px[j]
		}
	}
	for i := 0; i < nvar; i++ {
		py[i] += temp[i]
	}
}

// EvalPointQuantity evaluates the von Mises stress at one integration point
func (o *Plane[T]) EvalPointQuantity(elemIndex, quantityType int, time float64, n int, pt []float64, xpts, vars, dvars, ddvars []T, detXd *T, quantity []T) int {
	if quantityType != ele.QtyVonMises {
		return 0
	}
	if quantity == nil {
		return 1 // count query only
	}
	var sf shp.Quad4[T]
	var eps, sig [3]T
	err := sf.CalcAtPoint(pt[0], pt[1], xpts, true)
	if err != nil {
		return 0
	}
	if detXd != nil {
		*detXd = sf.DetJ
	}
	o.strain(&sf, vars, &eps)
	o.stress(&eps, &sig)

	// plane stress: σvm² = σx² - σx·σy + σy² + 3·τ²
	sx, sy, txy := sig[0], sig[1], sig[2]
	quantity[0] = num.Sqrt(sx*sx - sx*sy + sy*sy + num.FromFloat[T](3)*txy*txy)
	return 1
}

// strain computes {εx, εy, γxy} from nodal displacements
func (o *Plane[T]) strain(sf *shp.Quad4[T], vars []T, eps *[3]T) {
	eps[0], eps[1], eps[2] = 0, 0, 0
	for m := 0; m < 4; m++ {
		ux, uy := vars[m*2+0], vars[m*2+1]
		eps[0] += sf.G[m][0] * ux
		eps[1] += sf.G[m][1] * uy
		eps[2] += sf.G[m][1]*ux + sf.G[m][0]*uy
	}
}

// stress applies the plane-stress constitutive matrix to the strain
func (o *Plane[T]) stress(eps, sig *[3]T) {
	c := o.E / (1 - o.Nu*o.Nu)
	d00 := num.FromFloat[T](c)
	d01 := num.FromFloat[T](c * o.Nu)
	d22 := num.FromFloat[T](c * (1 - o.Nu) / 2)
	sig[0] = d00*eps[0] + d01*eps[1]
	sig[1] = d01*eps[0] + d00*eps[1]
	sig[2] = d22 * eps[2]
}

// addKeMe accumulates ak*Ke + am*Me into the row-major mat
func (o *Plane[T]) addKeMe(ak, am T, xpts []T, mat []T) (err error) {
	var sf shp.Quad4[T]
	doK := num.Abs(ak) > 0
	doM := num.Abs(am) > 0 && o.Rho > 0
	if !doK && !doM {
		return
	}
	c := o.E / (1 - o.Nu*o.Nu)
	d00 := num.FromFloat[T](c)
	d01 := num.FromFloat[T](c * o.Nu)
	d22 := num.FromFloat[T](c * (1 - o.Nu) / 2)
	pt := make([]float64, 2)
	for n := range o.ips {
		w := o.QuadraturePoint(n, pt)
		err = sf.CalcAtPoint(pt[0], pt[1], xpts, true)
		if err != nil {
			return
		}
		coef := num.FromFloat[T](w*o.Thick) * sf.DetJ

		if doK {
			kc := ak * coef
			for m := 0; m < 4; m++ {
				for l := 0; l < 4; l++ {
					gm0, gm1 := sf.G[m][0], sf.G[m][1]
					gl0, gl1 := sf.G[l][0], sf.G[l][1]
					r, q := m*2, l*2
					mat[(r+0)*8+q+0] += kc * (gm0*d00*gl0 + gm1*d22*gl1)
					mat[(r+0)*8+q+1] += kc * (gm0*d01*gl1 + gm1*d22*gl0)
					mat[(r+1)*8+q+0] += kc * (gm1*d01*gl0 + gm0*d22*gl1)
					mat[(r+1)*8+q+1] += kc * (gm1*d00*gl1 + gm0*d22*gl0)
				}
			}
		}

		if doM {
			mc := am * coef * num.FromFloat[T](o.Rho)
			for m := 0; m < 4; m++ {
				for l := 0; l < 4; l++ {
					v := mc * sf.S[m] * sf.S[l]
					mat[(m*2+0)*8+l*2+0] += v
					mat[(m*2+1)*8+l*2+1] += v
				}
			}
		}
	}
	return
}
