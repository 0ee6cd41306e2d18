// Copyright 2025 The A2D-Shells Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package fem

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/SeiyonArulampalam/a2d-shells/ele"
	"github.com/SeiyonArulampalam/a2d-shells/ele/heat"
)

// gridMesh returns an nx × ny grid of unit quadrilaterals
func gridMesh(nx, ny int) *Mesh {
	msh := &Mesh{Ndim: 2}
	for j := 0; j <= ny; j++ {
		for i := 0; i <= nx; i++ {
			msh.Coords = append(msh.Coords, []float64{float64(i), float64(j)})
		}
	}
	for j := 0; j < ny; j++ {
		for i := 0; i < nx; i++ {
			v0 := j*(nx+1) + i
			msh.Cells = append(msh.Cells, []int{v0, v0 + 1, v0 + nx + 2, v0 + nx + 1})
		}
	}
	return msh
}

func TestColorCells(t *testing.T) {
	msh := gridMesh(4, 3)
	groups := ColorCells(msh)

	// every cell appears exactly once
	seen := make(map[int]bool)
	for _, cells := range groups {
		for _, cid := range cells {
			assert.False(t, seen[cid], "cell %d colored twice", cid)
			seen[cid] = true
		}
	}
	assert.Equal(t, msh.NumCells(), len(seen))

	// no two cells of one group share a vertex
	for g, cells := range groups {
		used := make(map[int]bool)
		for _, cid := range cells {
			for _, v := range msh.Cells[cid] {
				assert.False(t, used[v], "group %d reuses vertex %d", g, v)
				used[v] = true
			}
		}
	}
}

func TestParallelResiduals(t *testing.T) {
	msh := gridMesh(4, 3)
	elems := make([]ele.Element[float64], msh.NumCells())
	for i := range elems {
		elems[i] = heat.New[float64](2.0, 5.0, 2)
	}
	dom, err := NewDomain(msh, elems)
	require.NoError(t, err)

	sol := NewSolution[float64](dom.Ny)
	for i := 0; i < dom.Ny; i++ {
		sol.Y[i] = 0.01 * float64(i*i)
		sol.Dydt[i] = -0.02 * float64(i)
	}

	ref := make([]float64, dom.Ny)
	require.NoError(t, dom.AddResiduals(sol, ref))

	for _, nw := range []int{1, 2, 4, 0} {
		fb := make([]float64, dom.Ny)
		require.NoError(t, dom.AddResidualsParallel(nw, sol, fb))
		for i := range ref {
			assert.InDelta(t, ref[i], fb[i], 1e-12, "nworkers=%d eq=%d", nw, i)
		}
	}
}
