// Copyright 2025 The A2D-Shells Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package ele defines the contract implemented by all finite elements and the
// machinery to derive the optional operations from the required ones
package ele

import (
	"github.com/SeiyonArulampalam/a2d-shells/num"
)

// ElementMatrixType selects which bilinear form an element computes on request
type ElementMatrixType int

const (
	StiffnessMatrix          ElementMatrixType = iota // tangent stiffness
	MassMatrix                                        // consistent mass
	GeometricStiffnessMatrix                          // initial-stress (geometric) stiffness
)

// point quantity types for EvalPointQuantity
const (
	QtyVonMises = iota // equivalent (von Mises) stress
	QtyFluxNorm        // magnitude of the flux vector
)

// Element defines what all elements must implement. An element instance
// represents one element type/configuration and is shared across all mesh
// entities using it; per-entity data arrives through elemIndex and the state
// arrays.
//
// State arrays are flat: xpts has ndim*NumNodes() coordinates and vars, dvars,
// ddvars have NumNodes()*VarsPerNode() entries. Residual and Jacobian
// operations ADD their contribution into caller-owned buffers and never
// overwrite, so that multiple physics can accumulate into the same storage.
//
// Quadrature point indices are a caller contract: out-of-range n is not
// checked here.
type Element[T num.Scalar] interface {

	// grouping tag for visualization/selection
	ComponentNum() int
	SetComponentNum(cnum int)

	// fixed degree-of-freedom layout
	VarsPerNode() int
	NumNodes() int

	// volume integration rule
	NumQuadraturePoints() int
	QuadratureWeight(n int) float64
	QuadraturePoint(n int, pt []float64) float64 // fills pt; returns weight

	// face/edge integration rules. tangent receives 0, 1 or 2 parametric
	// direction(s) parallel to the face, row-major, obeying the right-hand
	// rule so that the transformed tangents yield an outward normal
	NumElementFaces() int
	NumFaceQuadraturePoints(face int) int
	FaceQuadraturePoint(face, n int, pt, tangent []float64) float64

	// AddResidual adds this element's residual contribution into res
	AddResidual(elemIndex int, time float64, xpts, vars, dvars, ddvars, res []T) error
}

// HasMultiplier is implemented by elements owning a Lagrange multiplier node
type HasMultiplier interface {
	MultiplierIndex() int // local node index; -1 when none
}

// HasInitConditions is implemented by elements with non-trivial initial state
type HasInitConditions[T num.Scalar] interface {
	InitConditions(elemIndex int, xpts, vars, dvars, ddvars []T)
}

// HasEnergies is implemented by elements that can report kinetic and
// potential energy, used for conservation/regression checks
type HasEnergies[T num.Scalar] interface {
	ComputeEnergies(elemIndex int, time float64, xpts, vars, dvars []T) (Te, Pe T, err error)
}

// HasJacobian is implemented by elements providing an analytic Jacobian.
// AddJacobian adds the residual into res and the combination
//
//	mat += alpha*dres/dvars + beta*dres/d(dvars) + gamma*dres/d(ddvars)
//
// into the row-major mat, sized numVariables².
type HasJacobian[T num.Scalar] interface {
	AddJacobian(elemIndex int, time float64, alpha, beta, gamma T, xpts, vars, dvars, ddvars, res, mat []T) error
}

// HasMatType is implemented by elements computing named bilinear forms
// directly, independent of the residual/Jacobian accumulation path. The
// row-major mat is fully overwritten.
type HasMatType[T num.Scalar] interface {
	MatType(mtype ElementMatrixType, elemIndex int, time float64, xpts, vars, mat []T) error
}

// HasMatVecProduct is implemented by elements supporting the matrix-free
// path: data is precomputed once per element (sized dataSize) and the
// operator is then applied repeatedly with AddMatVecProduct, using the
// caller-owned scratch temp (sized tempSize) to avoid reallocation
type HasMatVecProduct[T num.Scalar] interface {
	MatVecDataSizes(mtype ElementMatrixType, elemIndex int) (dataSize, tempSize int)
	MatVecProductData(mtype ElementMatrixType, elemIndex int, time float64, xpts, vars, dvars, ddvars, data []T) error
	AddMatVecProduct(mtype ElementMatrixType, elemIndex int, data, temp, px, py []T)
}

// HasPointQuantity is implemented by elements that evaluate named quantities
// (stress, flux, ...) at a quadrature point. The return value is the number
// of quantity components, 0 when the quantity is unsupported. Callers may
// pass a nil quantity slice to query the count only.
type HasPointQuantity[T num.Scalar] interface {
	EvalPointQuantity(elemIndex, quantityType int, time float64, n int, pt []float64, xpts, vars, dvars, ddvars []T, detXd *T, quantity []T) int
}

// Meta carries the data common to all elements; embed it in element variants
type Meta struct {
	compNum int
}

// ComponentNum returns the grouping tag of this element
func (o *Meta) ComponentNum() int { return o.compNum }

// SetComponentNum sets the grouping tag of this element
func (o *Meta) SetComponentNum(cnum int) { o.compNum = cnum }

// NumVariables returns the number of variables owned by the element;
// always NumNodes()*VarsPerNode()
func NumVariables[T num.Scalar](e Element[T]) int {
	return e.NumNodes() * e.VarsPerNode()
}

// MultiplierIndex returns the local node index of a Lagrange multiplier,
// or -1 when the element defines none
func MultiplierIndex[T num.Scalar](e Element[T]) int {
	if m, ok := e.(HasMultiplier); ok {
		return m.MultiplierIndex()
	}
	return -1
}

// InitConditions fills the initial state of an element. Elements not
// implementing HasInitConditions start at rest: vars, dvars and ddvars are
// fully overwritten with zeros.
func InitConditions[T num.Scalar](e Element[T], elemIndex int, xpts, vars, dvars, ddvars []T) {
	if ic, ok := e.(HasInitConditions[T]); ok {
		ic.InitConditions(elemIndex, xpts, vars, dvars, ddvars)
		return
	}
	num.Fill[T](vars, 0)
	num.Fill[T](dvars, 0)
	num.Fill[T](ddvars, 0)
}

// ComputeEnergies returns the kinetic and potential energy of an element;
// zero for elements not implementing HasEnergies
func ComputeEnergies[T num.Scalar](e Element[T], elemIndex int, time float64, xpts, vars, dvars []T) (Te, Pe T, err error) {
	if en, ok := e.(HasEnergies[T]); ok {
		return en.ComputeEnergies(elemIndex, time, xpts, vars, dvars)
	}
	return
}

// EvalPointQuantity evaluates a named quantity at one quadrature point,
// returning the number of components defined (0 when unsupported)
func EvalPointQuantity[T num.Scalar](e Element[T], elemIndex, quantityType int, time float64, n int, pt []float64, xpts, vars, dvars, ddvars []T, detXd *T, quantity []T) int {
	if pq, ok := e.(HasPointQuantity[T]); ok {
		return pq.EvalPointQuantity(elemIndex, quantityType, time, n, pt, xpts, vars, dvars, ddvars, detXd, quantity)
	}
	return 0
}
