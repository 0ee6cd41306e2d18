// Copyright 2025 The A2D-Shells Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package fem

// ColorCells partitions the cells into groups such that no two cells in the
// same group share a vertex. Cells of one group can then scatter-add into
// global storage concurrently without locks. Greedy first-fit over the
// vertex-adjacency relation; the number of groups is bounded by the maximum
// number of cells around a vertex times the cell valency, which is small for
// meshes of practical interest.
func ColorCells(msh *Mesh) (groups [][]int) {
	nverts := msh.NumVerts()
	ncells := msh.NumCells()

	// cells around each vertex
	v2c := make([][]int, nverts)
	for cid, cell := range msh.Cells {
		for _, v := range cell {
			v2c[v] = append(v2c[v], cid)
		}
	}

	color := make([]int, ncells)
	for i := range color {
		color[i] = -1
	}

	used := []bool{} // scratch: colors taken by neighbors
	ncolors := 0
	for cid, cell := range msh.Cells {
		for i := range used {
			used[i] = false
		}
		for _, v := range cell {
			for _, other := range v2c[v] {
				if c := color[other]; c >= 0 {
					used[c] = true
				}
			}
		}
		c := 0
		for c < len(used) && used[c] {
			c++
		}
		color[cid] = c
		if c == ncolors {
			ncolors++
			used = append(used, false)
		}
	}

	groups = make([][]int, ncolors)
	for cid, c := range color {
		groups[c] = append(groups[c], cid)
	}
	return
}
