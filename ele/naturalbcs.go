// Copyright 2025 The A2D-Shells Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package ele

import "github.com/cpmech/gosl/fun/dbf"

// NaturalBc holds information on natural boundary conditions such as
// distributed loads or fluxes acting on element faces
type NaturalBc struct {
	Key     string // key such as qn, qb, etc...
	IdxFace int    // local index of face
	Fcn     dbf.T  // function callback giving the magnitude at (t, x)
	Extra   string // extra information
}
