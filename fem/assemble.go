// Copyright 2025 The A2D-Shells Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package fem

import (
	"strconv"

	"github.com/SeiyonArulampalam/a2d-shells/ele"
	"github.com/SeiyonArulampalam/a2d-shells/num"
)

// AddResiduals gathers the state of each cell, evaluates its element residual
// and scatter-adds the local contribution into fb. fb is not cleared here;
// contributions accumulate on whatever the caller already put there.
func (o *Domain[T]) AddResiduals(sol *Solution[T], fb []T) (err error) {
	o.checkVector("fb", fb)
	s := o.newScratch()
	for cid, e := range o.Elems {
		n := ele.NumVariables(e)
		s.gather(o, cid, sol, e)
		num.Fill[T](s.res[:n], 0)
		err = e.AddResidual(cid, sol.T, s.xpts[:o.Msh.Ndim*e.NumNodes()], s.vars[:n], s.dvars[:n], s.ddvars[:n], s.res[:n])
		if err != nil {
			return
		}
		for i, eq := range o.Eqs[cid] {
			fb[eq] += s.res[i]
		}
	}
	return
}

// AddJacobians assembles the global residual into fb and the combination
//
//	Kb += alpha*dR/dy + beta*dR/d(dy/dt) + gamma*dR/d(d²y/dt²)
//
// into the sparse Kb. Elements without an analytic Jacobian are finite
// differenced with the domain's FdOrder.
func (o *Domain[T]) AddJacobians(sol *Solution[T], alpha, beta, gamma T, fb []T, kb *Triplet[T]) (err error) {
	o.checkVector("fb", fb)
	s := o.newScratch()
	for cid, e := range o.Elems {
		n := ele.NumVariables(e)
		s.gather(o, cid, sol, e)
		num.Fill[T](s.res[:n], 0)
		num.Fill[T](s.mat[:n*n], 0)
		err = ele.AddJacobian(e, o.FdOrder, cid, sol.T, alpha, beta, gamma,
			s.xpts[:o.Msh.Ndim*e.NumNodes()], s.vars[:n], s.dvars[:n], s.ddvars[:n], s.res[:n], s.mat[:n*n])
		if err != nil {
			return
		}
		eqs := o.Eqs[cid]
		for i, I := range eqs {
			fb[I] += s.res[i]
			for j, J := range eqs {
				kb.Put(I, J, s.mat[i*n+j])
			}
		}
	}
	return
}

// AssembleMatType assembles a named matrix (stiffness, mass, geometric
// stiffness) into kb, which is restarted first. Elements not supporting the
// requested form contribute nothing; forms derived from the Jacobian use the
// domain's FdOrder.
func (o *Domain[T]) AssembleMatType(mtype ele.ElementMatrixType, sol *Solution[T], kb *Triplet[T]) (err error) {
	kb.Start()
	s := o.newScratch()
	for cid, e := range o.Elems {
		n := ele.NumVariables(e)
		s.gather(o, cid, sol, e)
		err = ele.GetMatType(e, o.FdOrder, mtype, cid, sol.T, s.xpts[:o.Msh.Ndim*e.NumNodes()], s.vars[:n], s.mat[:n*n])
		if err != nil {
			return
		}
		eqs := o.Eqs[cid]
		for i, I := range eqs {
			for j, J := range eqs {
				kb.Put(I, J, s.mat[i*n+j])
			}
		}
	}
	return
}

// Energies sums the kinetic and potential energies over all elements
func (o *Domain[T]) Energies(sol *Solution[T]) (Te, Pe T, err error) {
	s := o.newScratch()
	for cid, e := range o.Elems {
		n := ele.NumVariables(e)
		s.gather(o, cid, sol, e)
		te, pe, err2 := ele.ComputeEnergies(e, cid, sol.T, s.xpts[:o.Msh.Ndim*e.NumNodes()], s.vars[:n], s.dvars[:n])
		if err2 != nil {
			return Te, Pe, err2
		}
		Te += te
		Pe += pe
	}
	return
}

// EvalPointQuantities evaluates a named quantity at all volume quadrature
// points of all elements and stores each component into an integration-points
// map keyed "q0", "q1", ... . Elements not supporting the quantity are
// skipped; the stored values run over the points of supporting elements, in
// cell order.
func (o *Domain[T]) EvalPointQuantities(quantityType int, sol *Solution[T]) (vals *ele.IpsMap, err error) {
	s := o.newScratch()
	pt := make([]float64, 3)

	// first pass: number of components and total number of points
	nq, total := 0, 0
	for cid, e := range o.Elems {
		n := ele.NumVariables(e)
		s.gather(o, cid, sol, e)
		c := ele.EvalPointQuantity(e, cid, quantityType, sol.T, 0, pt,
			s.xpts[:o.Msh.Ndim*e.NumNodes()], s.vars[:n], s.dvars[:n], s.ddvars[:n], nil, nil)
		if c == 0 {
			continue
		}
		if c > nq {
			nq = c
		}
		total += e.NumQuadraturePoints()
	}
	vals = ele.NewIpsMap()

	q := make([]T, nq)
	var detXd T
	idx := 0
	for cid, e := range o.Elems {
		n := ele.NumVariables(e)
		s.gather(o, cid, sol, e)
		for ip := 0; ip < e.NumQuadraturePoints(); ip++ {
			e.QuadraturePoint(ip, pt[:o.Msh.Ndim])
			c := ele.EvalPointQuantity(e, cid, quantityType, sol.T, ip, pt,
				s.xpts[:o.Msh.Ndim*e.NumNodes()], s.vars[:n], s.dvars[:n], s.ddvars[:n], &detXd, q)
			if c == 0 {
				break
			}
			for k := 0; k < c; k++ {
				vals.Set(qtyKey(k), idx, total, num.Real(q[k]))
			}
			idx++
		}
	}
	return
}

// qtyKey returns the map key of the k-th quantity component
func qtyKey(k int) string {
	return "q" + strconv.Itoa(k)
}

// scratch holds per-element work arrays sized for the largest element, so the
// assembly loops never allocate inside the hot path
type scratch[T num.Scalar] struct {
	xpts   []T
	vars   []T
	dvars  []T
	ddvars []T
	res    []T
	mat    []T
}

func (o *Domain[T]) newScratch() *scratch[T] {
	nvar, nnode := o.maxNvar()
	return &scratch[T]{
		xpts:   make([]T, nnode*o.Msh.Ndim),
		vars:   make([]T, nvar),
		dvars:  make([]T, nvar),
		ddvars: make([]T, nvar),
		res:    make([]T, nvar),
		mat:    make([]T, nvar*nvar),
	}
}

// gather fills the scratchpad with the coordinates and state of one cell
func (s *scratch[T]) gather(o *Domain[T], cid int, sol *Solution[T], e ele.Element[T]) {
	n := ele.NumVariables(e)
	o.GatherXpts(cid, s.xpts)
	o.GatherState(cid, sol, s.vars[:n], s.dvars[:n], s.ddvars[:n])
}
