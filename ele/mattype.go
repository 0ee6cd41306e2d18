// Copyright 2025 The A2D-Shells Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package ele

import (
	"github.com/cpmech/gosl/chk"

	"github.com/SeiyonArulampalam/a2d-shells/num"
)

// GetMatType computes a named element matrix into the row-major mat,
// overwriting it. Elements implementing HasMatType compute the form directly;
// otherwise the matrix is derived from the Jacobian combination evaluated
// about a stationary state: stiffness with alpha=1, mass with gamma=1.
// fdOrder selects the differencing order when the derived path falls back to
// finite differences. Unsupported types leave mat zeroed (sentinel for "no
// contribution").
func GetMatType[T num.Scalar](e Element[T], fdOrder int, mtype ElementMatrixType, elemIndex int, time float64, xpts, vars, mat []T) (err error) {
	nvar := NumVariables(e)
	if len(mat) != nvar*nvar {
		return chk.Err("matrix buffer has wrong size. %d does not match nvar²=%d", len(mat), nvar*nvar)
	}
	num.Fill[T](mat, 0)
	if mt, ok := e.(HasMatType[T]); ok {
		return mt.MatType(mtype, elemIndex, time, xpts, vars, mat)
	}

	// derived path: pick the coefficient selecting the requested form
	var alpha, beta, gamma T
	switch mtype {
	case StiffnessMatrix:
		alpha = num.FromFloat[T](1)
	case MassMatrix:
		gamma = num.FromFloat[T](1)
	default:
		return // not derivable; zero matrix signals absence
	}
	zero := make([]T, nvar)
	res := make([]T, nvar)
	return AddJacobian(e, fdOrder, elemIndex, time, alpha, beta, gamma, xpts, vars, zero, zero, res, mat)
}
