// Copyright 2025 The A2D-Shells Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package ele

import (
	"github.com/SeiyonArulampalam/a2d-shells/num"
)

// MatVecDataSizes returns the data and scratch sizes needed by the
// matrix-free path of e. Elements without matrix-free support report (0, 0);
// callers must treat that as absence, not failure.
func MatVecDataSizes[T num.Scalar](e Element[T], mtype ElementMatrixType, elemIndex int) (dataSize, tempSize int) {
	if mv, ok := e.(HasMatVecProduct[T]); ok {
		return mv.MatVecDataSizes(mtype, elemIndex)
	}
	return 0, 0
}

// MatVecProductData precomputes the element data used by AddMatVecProduct.
// No-op for elements without matrix-free support.
func MatVecProductData[T num.Scalar](e Element[T], mtype ElementMatrixType, elemIndex int, time float64, xpts, vars, dvars, ddvars, data []T) error {
	if mv, ok := e.(HasMatVecProduct[T]); ok {
		return mv.MatVecProductData(mtype, elemIndex, time, xpts, vars, dvars, ddvars, data)
	}
	return nil
}

// AddMatVecProduct applies the element operator to px, accumulating into py.
// No-op (py unchanged) for elements without matrix-free support.
func AddMatVecProduct[T num.Scalar](e Element[T], mtype ElementMatrixType, elemIndex int, data, temp, px, py []T) {
	if mv, ok := e.(HasMatVecProduct[T]); ok {
		mv.AddMatVecProduct(mtype, elemIndex, data, temp, px, py)
	}
}
