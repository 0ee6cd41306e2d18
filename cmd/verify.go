// Copyright 2025 The A2D-Shells Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package cmd

import (
	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"
	"github.com/spf13/cobra"

	"github.com/SeiyonArulampalam/a2d-shells/ele"
	"github.com/SeiyonArulampalam/a2d-shells/fem"
	"github.com/SeiyonArulampalam/a2d-shells/inp"

	// register element types with the factory
	_ "github.com/SeiyonArulampalam/a2d-shells/ele/heat"
	_ "github.com/SeiyonArulampalam/a2d-shells/ele/plane"
)

// verifyCmd assembles a structured grid and cross-checks the analytic
// Jacobian against the finite-difference one
var verifyCmd = &cobra.Command{
	Use:   "verify",
	Short: "Assemble a grid and compare analytic and derived Jacobians",
	Long: `
Builds an nx × ny grid of quadrilaterals with the first element type of the
parameters file, assembles the Jacobian combination twice (analytic path and
forced finite differencing) and reports the largest discrepancy.`,
	Run: func(cmd *cobra.Command, args []string) {
		fname, _ := cmd.Flags().GetString("params")
		nx, _ := cmd.Flags().GetInt("nx")
		ny, _ := cmd.Flags().GetInt("ny")
		if err := runVerify(fname, nx, ny); err != nil {
			chk.Panic("verification failed:\n%v", err)
		}
	},
}

func init() {
	rootCmd.AddCommand(verifyCmd)
	verifyCmd.Flags().StringP("params", "p", "params.yaml", "YAML parameters file")
	verifyCmd.Flags().Int("nx", 4, "number of cells along x")
	verifyCmd.Flags().Int("ny", 4, "number of cells along y")
}

func runVerify(fname string, nx, ny int) (err error) {
	prms, err := inp.Read(fname)
	if err != nil {
		return
	}
	prms.Print()
	if len(prms.Elements) == 0 {
		return chk.Err("parameters file %q has no elements", fname)
	}

	dom, err := buildGridDomain(prms, nx, ny)
	if err != nil {
		return
	}
	dom.FdOrder = prms.FdOrder
	io.Pf("grid %d × %d: %d cells, %d equations\n", nx, ny, dom.Msh.NumCells(), dom.Ny)

	sol := fem.NewSolution[float64](dom.Ny)
	dom.SetInitConditions(sol)
	for i := 0; i < dom.Ny; i++ {
		sol.Y[i] += 0.01 * float64(i%7)
	}

	alpha, beta, gamma := prms.Alpha, prms.Beta, prms.Gamma

	// analytic (or element-preferred) path
	fb := make([]float64, dom.Ny)
	kb := fem.NewTriplet[float64](dom.Ny, dom.Ny, dom.NnzKb)
	err = dom.AddJacobians(sol, alpha, beta, gamma, fb, kb)
	if err != nil {
		return
	}

	// forced finite differencing on every element
	fdElems := make([]ele.Element[float64], len(dom.Elems))
	for i, e := range dom.Elems {
		fdElems[i] = ele.WithFdJacobian[float64](e, prms.FdOrder)
	}
	fdDom, err := fem.NewDomain(dom.Msh, fdElems)
	if err != nil {
		return
	}
	fbFd := make([]float64, fdDom.Ny)
	kbFd := fem.NewTriplet[float64](fdDom.Ny, fdDom.Ny, fdDom.NnzKb)
	err = fdDom.AddJacobians(sol, alpha, beta, gamma, fbFd, kbFd)
	if err != nil {
		return
	}

	an := kb.ToDense()
	fd := kbFd.ToDense()
	maxDiff := 0.0
	for i := 0; i < dom.Ny; i++ {
		for j := 0; j < dom.Ny; j++ {
			if d := an[i][j] - fd[i][j]; d > maxDiff {
				maxDiff = d
			} else if -d > maxDiff {
				maxDiff = -d
			}
		}
	}
	io.Pf("max |analytic - finite difference| = %g\n", maxDiff)
	return
}

// buildGridDomain creates an nx × ny grid of unit quadrilaterals, all using
// the first element type of the parameters file
func buildGridDomain(prms *inp.Parameters, nx, ny int) (dom *fem.Domain[float64], err error) {
	if nx < 1 || ny < 1 {
		return nil, chk.Err("grid dimensions %d × %d are invalid", nx, ny)
	}
	msh := &fem.Mesh{Ndim: 2}
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

	edat := prms.Elements[0]
	elems := make([]ele.Element[float64], msh.NumCells())
	for cid := range elems {
		e, err := ele.New(edat)
		if err != nil {
			return nil, err
		}
		e.SetComponentNum(edat.Tag)
		elems[cid] = e
	}
	return fem.NewDomain(msh, elems)
}
