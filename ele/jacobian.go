// Copyright 2025 The A2D-Shells Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package ele

import (
	"github.com/cpmech/gosl/chk"

	"github.com/SeiyonArulampalam/a2d-shells/num"
)

// DefaultFdOrder is the finite differencing order used when deriving a
// Jacobian from a residual-only element: 2 = central differences (twice the
// residual evaluations per perturbed variable, better accuracy), 1 = forward
// differences. Tunable policy, not a fixed behavior.
const DefaultFdOrder = 2

// fdStep is the perturbation applied to each variable and its time
// derivatives when finite differencing the residual
const fdStep = 1e-6

// AddJacobian adds the residual of e into res and the linear combination
//
//	mat += alpha*dres/dvars + beta*dres/d(dvars) + gamma*dres/d(ddvars)
//
// into the row-major mat. Elements implementing HasJacobian supply the
// derivative analytically; any other element gets it by finite differencing
// its residual with the given fdOrder (1 or 2).
func AddJacobian[T num.Scalar](e Element[T], fdOrder int, elemIndex int, time float64, alpha, beta, gamma T, xpts, vars, dvars, ddvars, res, mat []T) error {
	if j, ok := e.(HasJacobian[T]); ok {
		return j.AddJacobian(elemIndex, time, alpha, beta, gamma, xpts, vars, dvars, ddvars, res, mat)
	}
	return AddFdJacobian(e, fdOrder, elemIndex, time, alpha, beta, gamma, xpts, vars, dvars, ddvars, res, mat)
}

// AddFdJacobian derives the Jacobian combination of any element by
// perturbing each variable and its first/second time derivatives, and adds
// it into mat. The unperturbed residual is added into res.
func AddFdJacobian[T num.Scalar](e Element[T], fdOrder int, elemIndex int, time float64, alpha, beta, gamma T, xpts, vars, dvars, ddvars, res, mat []T) (err error) {
	if fdOrder != 1 && fdOrder != 2 {
		return chk.Err("finite differencing order must be 1 or 2. fdOrder=%d is invalid", fdOrder)
	}
	nvar := NumVariables(e)
	if len(res) != nvar || len(mat) != nvar*nvar {
		return chk.Err("residual and Jacobian buffers have wrong sizes. %d and %d do not match nvar=%d", len(res), len(mat), nvar)
	}

	// unperturbed residual: accumulated into res and reused by the
	// forward-difference quotient
	r0 := make([]T, nvar)
	err = e.AddResidual(elemIndex, time, xpts, vars, dvars, ddvars, r0)
	if err != nil {
		return
	}
	for i := 0; i < nvar; i++ {
		res[i] += r0[i]
	}

	// working copies; the caller's state must come back untouched
	pvars := append([]T{}, vars...)
	pdvars := append([]T{}, dvars...)
	pddvars := append([]T{}, ddvars...)
	rp := make([]T, nvar)
	rm := make([]T, nvar)

	h := num.FromFloat[T](fdStep)
	groups := []struct {
		coef T
		pert []T
	}{
		{alpha, pvars},
		{beta, pdvars},
		{gamma, pddvars},
	}

	for _, g := range groups {
		if num.Abs(g.coef) == 0 {
			continue
		}
		for j := 0; j < nvar; j++ {
			orig := g.pert[j]

			// difference quotient of the residual w.r.t. variable j
			g.pert[j] = orig + h
			num.Fill[T](rp, 0)
			err = e.AddResidual(elemIndex, time, xpts, pvars, pdvars, pddvars, rp)
			if err != nil {
				return
			}
			var den T
			if fdOrder == 2 {
				g.pert[j] = orig - h
				num.Fill[T](rm, 0)
				err = e.AddResidual(elemIndex, time, xpts, pvars, pdvars, pddvars, rm)
				if err != nil {
					return
				}
				den = num.FromFloat[T](1.0 / (2.0 * fdStep))
			} else {
				copy(rm, r0)
				den = num.FromFloat[T](1.0 / fdStep)
			}
			g.pert[j] = orig

			for i := 0; i < nvar; i++ {
				mat[i*nvar+j] += g.coef * (rp[i] - rm[i]) * den
			}
		}
	}
	return
}

// FdJacobian decorates a residual-only element with a finite-difference
// Jacobian so that it satisfies HasJacobian. Order 0 selects DefaultFdOrder.
type FdJacobian[T num.Scalar] struct {
	Element[T]
	Order int
}

// WithFdJacobian wraps e into an element whose AddJacobian is synthesized by
// finite differencing AddResidual
func WithFdJacobian[T num.Scalar](e Element[T], order int) *FdJacobian[T] {
	if order == 0 {
		order = DefaultFdOrder
	}
	return &FdJacobian[T]{Element: e, Order: order}
}

// AddJacobian implements HasJacobian by finite differencing
func (o *FdJacobian[T]) AddJacobian(elemIndex int, time float64, alpha, beta, gamma T, xpts, vars, dvars, ddvars, res, mat []T) error {
	return AddFdJacobian(o.Element, o.Order, elemIndex, time, alpha, beta, gamma, xpts, vars, dvars, ddvars, res, mat)
}
