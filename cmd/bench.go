// Copyright 2025 The A2D-Shells Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package cmd

import (
	"time"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"
	"github.com/pkg/profile"
	"github.com/spf13/cobra"

	"github.com/SeiyonArulampalam/a2d-shells/fem"
	"github.com/SeiyonArulampalam/a2d-shells/inp"
)

// benchCmd times serial vs parallel residual assembly on a structured grid
var benchCmd = &cobra.Command{
	Use:   "bench",
	Short: "Time serial and parallel residual assembly",
	Run: func(cmd *cobra.Command, args []string) {
		fname, _ := cmd.Flags().GetString("params")
		nx, _ := cmd.Flags().GetInt("nx")
		ny, _ := cmd.Flags().GetInt("ny")
		reps, _ := cmd.Flags().GetInt("reps")
		prof, _ := cmd.Flags().GetBool("cpuprofile")
		if prof {
			defer profile.Start(profile.CPUProfile, profile.ProfilePath(".")).Stop()
		}
		if err := runBench(fname, nx, ny, reps); err != nil {
			chk.Panic("benchmark failed:\n%v", err)
		}
	},
}

func init() {
	rootCmd.AddCommand(benchCmd)
	benchCmd.Flags().StringP("params", "p", "params.yaml", "YAML parameters file")
	benchCmd.Flags().Int("nx", 100, "number of cells along x")
	benchCmd.Flags().Int("ny", 100, "number of cells along y")
	benchCmd.Flags().Int("reps", 10, "number of assembly repetitions")
	benchCmd.Flags().Bool("cpuprofile", false, "write a CPU profile to the working directory")
}

func runBench(fname string, nx, ny, reps int) (err error) {
	prms, err := inp.Read(fname)
	if err != nil {
		return
	}
	if len(prms.Elements) == 0 {
		return chk.Err("parameters file %q has no elements", fname)
	}

	dom, err := buildGridDomain(prms, nx, ny)
	if err != nil {
		return
	}
	io.Pf("grid %d × %d: %d cells, %d equations\n", nx, ny, dom.Msh.NumCells(), dom.Ny)

	sol := fem.NewSolution[float64](dom.Ny)
	dom.SetInitConditions(sol)
	fb := make([]float64, dom.Ny)

	start := time.Now()
	for r := 0; r < reps; r++ {
		if err = dom.AddResiduals(sol, fb); err != nil {
			return
		}
	}
	serial := time.Since(start)
	io.Pf("serial:   %v (%d reps)\n", serial, reps)

	start = time.Now()
	for r := 0; r < reps; r++ {
		if err = dom.AddResidualsParallel(prms.NumWorkers, sol, fb); err != nil {
			return
		}
	}
	parallel := time.Since(start)
	io.Pf("parallel: %v (%d reps, %d workers)\n", parallel, reps, prms.NumWorkers)
	return
}
