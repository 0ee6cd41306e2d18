// Copyright 2025 The A2D-Shells Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package fem

import (
	"github.com/SeiyonArulampalam/a2d-shells/ele"
	"github.com/SeiyonArulampalam/a2d-shells/num"
)

// MatFreeOperator applies a named global matrix without ever assembling it:
// each element precomputes its own data once and the product runs cell by
// cell, gathering from px and scatter-adding into py. Elements reporting a
// zero data size do not support the matrix-free path and contribute nothing.
type MatFreeOperator[T num.Scalar] struct {
	dom   *Domain[T]
	mtype ele.ElementMatrixType
	data  [][]T // [ncells] precomputed element data; nil when unsupported
	temp  []T   // shared element scratch, sized for the largest tempSize
	px    []T   // gathered local input
	py    []T   // local output before scatter
}

// NewMatFreeOperator precomputes the element data of the named matrix at the
// given solution state
func NewMatFreeOperator[T num.Scalar](dom *Domain[T], mtype ele.ElementMatrixType, sol *Solution[T]) (o *MatFreeOperator[T], err error) {
	o = &MatFreeOperator[T]{dom: dom, mtype: mtype}
	o.data = make([][]T, len(dom.Elems))

	nvar, _ := dom.maxNvar()
	o.px = make([]T, nvar)
	o.py = make([]T, nvar)

	s := dom.newScratch()
	maxTemp := 0
	for cid, e := range dom.Elems {
		mv, ok := e.(ele.HasMatVecProduct[T])
		if !ok {
			continue
		}
		dataSize, tempSize := mv.MatVecDataSizes(mtype, cid)
		if dataSize == 0 {
			continue // element opts out of this matrix type
		}
		if tempSize > maxTemp {
			maxTemp = tempSize
		}
		n := ele.NumVariables(e)
		s.gather(dom, cid, sol, e)
		data := make([]T, dataSize)
		err = mv.MatVecProductData(mtype, cid, sol.T, s.xpts[:dom.Msh.Ndim*e.NumNodes()], s.vars[:n], s.dvars[:n], s.ddvars[:n], data)
		if err != nil {
			return
		}
		o.data[cid] = data
	}
	o.temp = make([]T, maxTemp)
	return
}

// MulVecAdd accumulates the operator applied to px into py, both global
// vectors of size Ny
func (o *MatFreeOperator[T]) MulVecAdd(px, py []T) {
	o.dom.checkVector("px", px)
	o.dom.checkVector("py", py)
	for cid, e := range o.dom.Elems {
		data := o.data[cid]
		if data == nil {
			continue
		}
		mv := e.(ele.HasMatVecProduct[T])
		n := ele.NumVariables(e)
		eqs := o.dom.Eqs[cid]
		for i, eq := range eqs {
			o.px[i] = px[eq]
		}
		num.Fill[T](o.py[:n], 0)
		mv.AddMatVecProduct(o.mtype, cid, data, o.temp, o.px[:n], o.py[:n])
		for i, eq := range eqs {
			py[eq] += o.py[i]
		}
	}
}
