// Copyright 2025 The A2D-Shells Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package heat

import (
	"testing"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/fun/dbf"
	"github.com/cpmech/gosl/io"

	"github.com/SeiyonArulampalam/a2d-shells/ele"
	"github.com/SeiyonArulampalam/a2d-shells/inp"
)

func verbose() {
	io.Verbose = true
	chk.Verbose = true
}

// unit square; area = 1
var squareXpts = []float64{0, 0, 1, 0, 1, 1, 0, 1}

func Test_heat01(tst *testing.T) {

	//verbose()
	chk.PrintTitle("heat01. factory and layout")

	edat := &inp.ElemData{Type: "heat", Tag: -1, Nip: 2, Prms: map[string]float64{
		"k": 2.0, "rhoc": 5.0,
	}}
	info, err := ele.GetInfo(edat)
	if err != nil {
		tst.Errorf("GetInfo failed: %v", err)
		return
	}
	chk.IntAssert(info.VarsPerNode, 1)
	chk.IntAssert(info.NumNodes, 4)

	e, err := ele.New(edat)
	if err != nil {
		tst.Errorf("New failed: %v", err)
		return
	}
	h := e.(*Heat[float64])
	chk.Float64(tst, "k", 1e-17, h.Kcond, 2.0)
	chk.Float64(tst, "rhoc", 1e-17, h.RhoC, 5.0)
	chk.IntAssert(ele.NumVariables[float64](e), 4)
}

func Test_heat02(tst *testing.T) {

	//verbose()
	chk.PrintTitle("heat02. uniform temperature conducts nothing")

	e := New[float64](2.0, 0, 2)
	vars := []float64{7, 7, 7, 7}
	zero := make([]float64, 4)
	res := make([]float64, 4)
	err := e.AddResidual(0, 0, squareXpts, vars, zero, zero, res)
	if err != nil {
		tst.Errorf("AddResidual failed: %v", err)
		return
	}
	chk.Array(tst, "res", 1e-12, res, nil)
}

func Test_heat03(tst *testing.T) {

	//verbose()
	chk.PrintTitle("heat03. capacity term for a uniform rate")

	rhoc, rate := 5.0, 3.0
	e := New[float64](2.0, rhoc, 2)
	zero := make([]float64, 4)
	vars := []float64{1, 1, 1, 1} // uniform => no conduction
	dvars := []float64{rate, rate, rate, rate}
	res := make([]float64, 4)
	err := e.AddResidual(0, 0, squareXpts, vars, dvars, zero, res)
	if err != nil {
		tst.Errorf("AddResidual failed: %v", err)
		return
	}

	// res[m] = ρc·rate·∫N_m dA = ρc·rate·area/4 on the square
	ref := rhoc * rate * 0.25
	chk.Array(tst, "res", 1e-13, res, []float64{ref, ref, ref, ref})
}

func Test_heat04(tst *testing.T) {

	//verbose()
	chk.PrintTitle("heat04. analytic Jacobian vs finite differences")

	e := New[float64](2.0, 5.0, 2)
	xpts := []float64{0, 0, 2, 0.2, 2.2, 1.8, -0.1, 1.5}
	vars := []float64{1, 2, -1, 0.5}
	dvars := []float64{0.1, -0.3, 0.2, 0}
	zero := make([]float64, 4)

	resAn := make([]float64, 4)
	matAn := make([]float64, 16)
	err := e.AddJacobian(0, 0, 1.2, 0.7, 0, xpts, vars, dvars, zero, resAn, matAn)
	if err != nil {
		tst.Errorf("AddJacobian failed: %v", err)
		return
	}

	resFd := make([]float64, 4)
	matFd := make([]float64, 16)
	err = ele.AddFdJacobian[float64](e, 2, 0, 0, 1.2, 0.7, 0, xpts, vars, dvars, zero, resFd, matFd)
	if err != nil {
		tst.Errorf("AddFdJacobian failed: %v", err)
		return
	}
	chk.Array(tst, "res", 1e-14, resAn, resFd)
	chk.Array(tst, "mat", 1e-6, matAn, matFd)
}

func Test_heat05(tst *testing.T) {

	//verbose()
	chk.PrintTitle("heat05. boundary flux on one edge")

	e := New[float64](2.0, 0, 2)
	qb := 10.0
	fcn := dbf.New("cte", []*dbf.P{{N: "c", V: qb}})
	e.SetNaturalBc(&ele.NaturalBc{
		Key:     "qb",
		IdxFace: 0, // bottom edge, from (0,0) to (1,0)
		Fcn:     fcn,
	})

	vars := make([]float64, 4)
	zero := make([]float64, 4)
	res := make([]float64, 4)
	err := e.AddResidual(0, 0, squareXpts, vars, zero, zero, res)
	if err != nil {
		tst.Errorf("AddResidual failed: %v", err)
		return
	}

	// the flux integral puts -qb·len/2 on each node of the unit-length edge
	chk.Array(tst, "res", 1e-13, res, []float64{-qb / 2, -qb / 2, 0, 0})
}

func Test_heat06(tst *testing.T) {

	//verbose()
	chk.PrintTitle("heat06. source term")

	s := 4.0
	e := New[float64](2.0, 0, 2)
	fcn := dbf.New("cte", []*dbf.P{{N: "c", V: s}})
	err := e.SetCondition("s", fcn, "")
	if err != nil {
		tst.Errorf("SetCondition failed: %v", err)
		return
	}
	err = e.SetCondition("unknown", nil, "")
	if err == nil {
		tst.Errorf("unknown condition not detected")
		return
	}

	vars := make([]float64, 4)
	zero := make([]float64, 4)
	res := make([]float64, 4)
	err = e.AddResidual(0, 0, squareXpts, vars, zero, zero, res)
	if err != nil {
		tst.Errorf("AddResidual failed: %v", err)
		return
	}

	// res[m] = -s·∫N_m dA = -s·area/4
	ref := -s * 0.25
	chk.Array(tst, "res", 1e-13, res, []float64{ref, ref, ref, ref})
}

func Test_heat07(tst *testing.T) {

	//verbose()
	chk.PrintTitle("heat07. derived operations and defaults")

	e := New[float64](2.0, 5.0, 2)

	// no analytic MatType: the stiffness is derived from the Jacobian
	matDer := make([]float64, 16)
	err := ele.GetMatType[float64](e, ele.DefaultFdOrder, ele.StiffnessMatrix, 0, 0, squareXpts, make([]float64, 4), matDer)
	if err != nil {
		tst.Errorf("GetMatType failed: %v", err)
		return
	}
	zero := make([]float64, 4)
	resAn := make([]float64, 4)
	matAn := make([]float64, 16)
	err = e.AddJacobian(0, 0, 1, 0, 0, squareXpts, zero, zero, zero, resAn, matAn)
	if err != nil {
		tst.Errorf("AddJacobian failed: %v", err)
		return
	}
	chk.Array(tst, "Ke", 1e-13, matDer, matAn)

	// no matrix-free support, no multiplier, zero energies
	dataSize, tempSize := ele.MatVecDataSizes[float64](e, ele.StiffnessMatrix, 0)
	chk.IntAssert(dataSize, 0)
	chk.IntAssert(tempSize, 0)
	chk.IntAssert(ele.MultiplierIndex[float64](e), -1)
	Te, Pe, err := ele.ComputeEnergies[float64](e, 0, 0, squareXpts, zero, zero)
	if err != nil {
		tst.Errorf("ComputeEnergies failed: %v", err)
		return
	}
	chk.Float64(tst, "Te", 1e-17, Te, 0)
	chk.Float64(tst, "Pe", 1e-17, Pe, 0)
}

func Test_heat08(tst *testing.T) {

	//verbose()
	chk.PrintTitle("heat08. flux magnitude at a point")

	k := 2.0
	e := New[float64](k, 0, 2)

	// linear field u = a·x: flux = -k·a·ex, magnitude k·a
	a := 3.0
	vars := []float64{0, a, a, 0}

	chk.IntAssert(e.EvalPointQuantity(0, ele.QtyFluxNorm, 0, 0, []float64{0, 0}, squareXpts, vars, nil, nil, nil, nil), 1)
	chk.IntAssert(e.EvalPointQuantity(0, ele.QtyVonMises, 0, 0, []float64{0, 0}, squareXpts, vars, nil, nil, nil, nil), 0)

	q := make([]float64, 1)
	n := e.EvalPointQuantity(0, ele.QtyFluxNorm, 0, 0, []float64{0, 0}, squareXpts, vars, nil, nil, nil, q)
	chk.IntAssert(n, 1)
	chk.Float64(tst, "|flux|", 1e-12, q[0], k*a)
}
