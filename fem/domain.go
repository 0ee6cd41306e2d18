// Copyright 2025 The A2D-Shells Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package fem

import (
	"github.com/cpmech/gosl/chk"

	"github.com/SeiyonArulampalam/a2d-shells/ele"
	"github.com/SeiyonArulampalam/a2d-shells/num"
)

// Domain holds the mesh, the elements attached to its cells and the
// local-to-global equation maps used to gather state and scatter-add
// contributions. Element instances may be shared by many cells; the cell id
// is passed to the element as elemIndex.
type Domain[T num.Scalar] struct {

	// input
	Msh     *Mesh            // mesh data
	Elems   []ele.Element[T] // [ncells] element of each cell
	FdOrder int              // finite differencing order for derived Jacobians

	// equation numbering
	NodeVpn []int   // [nverts] number of DOFs per node; 0 for unused nodes
	NodeEq0 []int   // [nverts] first equation of each node
	Eqs     [][]int // [ncells][nvar] local-to-global equation map
	Ny      int     // total number of equations
	NnzKb   int     // upper bound for the number of nonzeros in Kb
}

// NewDomain builds the equation maps for a mesh with one element per cell.
// Elements sharing a node must agree on its number of DOFs; a mismatch is an
// integration error and fails here, before any assembly.
func NewDomain[T num.Scalar](msh *Mesh, elems []ele.Element[T]) (o *Domain[T], err error) {
	err = msh.Check()
	if err != nil {
		return
	}
	if len(elems) != msh.NumCells() {
		return nil, chk.Err("one element per cell is required. %d != %d", len(elems), msh.NumCells())
	}

	o = &Domain[T]{Msh: msh, Elems: elems, FdOrder: ele.DefaultFdOrder}
	o.NodeVpn = make([]int, msh.NumVerts())
	for cid, cell := range msh.Cells {
		e := elems[cid]
		if e.NumNodes() != len(cell) {
			return nil, chk.Err("cell %d has %d vertices but its element needs %d nodes", cid, len(cell), e.NumNodes())
		}
		vpn := e.VarsPerNode()
		for _, v := range cell {
			if o.NodeVpn[v] != 0 && o.NodeVpn[v] != vpn {
				return nil, chk.Err("elements sharing vertex %d disagree on its number of DOFs. %d != %d", v, o.NodeVpn[v], vpn)
			}
			o.NodeVpn[v] = vpn
		}
	}

	// equation numbers
	o.NodeEq0 = make([]int, msh.NumVerts())
	eq := 0
	for v, vpn := range o.NodeVpn {
		o.NodeEq0[v] = eq
		eq += vpn
	}
	o.Ny = eq

	// local-to-global maps
	o.Eqs = make([][]int, msh.NumCells())
	for cid, cell := range msh.Cells {
		nvar := ele.NumVariables(elems[cid])
		o.Eqs[cid] = make([]int, 0, nvar)
		for _, v := range cell {
			for d := 0; d < o.NodeVpn[v]; d++ {
				o.Eqs[cid] = append(o.Eqs[cid], o.NodeEq0[v]+d)
			}
		}
		o.NnzKb += nvar * nvar
	}
	return
}

// GatherXpts fills the flat coordinates array of a cell
func (o *Domain[T]) GatherXpts(cid int, xpts []T) {
	ndim := o.Msh.Ndim
	for j, v := range o.Msh.Cells[cid] {
		for i := 0; i < ndim; i++ {
			xpts[j*ndim+i] = num.FromFloat[T](o.Msh.Coords[v][i])
		}
	}
}

// GatherState fills the flat state arrays of a cell from the solution
func (o *Domain[T]) GatherState(cid int, sol *Solution[T], vars, dvars, ddvars []T) {
	for i, eq := range o.Eqs[cid] {
		vars[i] = sol.Y[eq]
		dvars[i] = sol.Dydt[eq]
		ddvars[i] = sol.D2ydt2[eq]
	}
}

// SetInitConditions fills the solution with each element's initial state;
// elements without initial conditions contribute zeros
func (o *Domain[T]) SetInitConditions(sol *Solution[T]) {
	for cid, e := range o.Elems {
		nvar := ele.NumVariables(e)
		xpts := make([]T, o.Msh.Ndim*e.NumNodes())
		vars := make([]T, nvar)
		dvars := make([]T, nvar)
		ddvars := make([]T, nvar)
		o.GatherXpts(cid, xpts)
		ele.InitConditions(e, cid, xpts, vars, dvars, ddvars)
		for i, eq := range o.Eqs[cid] {
			sol.Y[eq] = vars[i]
			sol.Dydt[eq] = dvars[i]
			sol.D2ydt2[eq] = ddvars[i]
		}
	}
}

// maxNvar returns the largest number of element variables and nodes over all cells
func (o *Domain[T]) maxNvar() (nvar, nnode int) {
	for _, e := range o.Elems {
		if n := ele.NumVariables(e); n > nvar {
			nvar = n
		}
		if n := e.NumNodes(); n > nnode {
			nnode = n
		}
	}
	return
}

// checkVector panics when a global vector has the wrong size; size mismatches
// at the contract boundary are programmer errors, not runtime conditions
func (o *Domain[T]) checkVector(name string, v []T) {
	if len(v) != o.Ny {
		chk.Panic("global vector %q has size %d instead of ny=%d", name, len(v), o.Ny)
	}
}
