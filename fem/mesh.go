// Copyright 2025 The A2D-Shells Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package fem implements the global assembler: it gathers per-element state
// via connectivity, invokes the element contract and scatter-adds local
// contributions into global residual/Jacobian storage
package fem

import (
	"github.com/cpmech/gosl/chk"
)

// Mesh holds nodal coordinates and connectivity. Parsing mesh files is an
// external concern; the assembler consumes this structure ready-made.
type Mesh struct {
	Ndim   int         // space dimension
	Coords [][]float64 // [nverts][ndim] nodal coordinates
	Cells  [][]int     // [ncells][nnodes] vertex ids of each cell
}

// NumVerts returns the number of vertices
func (o *Mesh) NumVerts() int { return len(o.Coords) }

// NumCells returns the number of cells
func (o *Mesh) NumCells() int { return len(o.Cells) }

// Check validates coordinates and connectivity
func (o *Mesh) Check() (err error) {
	if o.Ndim < 1 || o.Ndim > 3 {
		return chk.Err("space dimension must be 1, 2 or 3. ndim=%d is invalid", o.Ndim)
	}
	for i, x := range o.Coords {
		if len(x) != o.Ndim {
			return chk.Err("vertex %d has %d coordinates instead of ndim=%d", i, len(x), o.Ndim)
		}
	}
	for cid, cell := range o.Cells {
		for _, v := range cell {
			if v < 0 || v >= len(o.Coords) {
				return chk.Err("cell %d references inexistent vertex %d", cid, v)
			}
		}
	}
	return
}
