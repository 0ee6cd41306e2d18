// Copyright 2025 The A2D-Shells Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package fem

import (
	"runtime"
	"sync"

	"github.com/SeiyonArulampalam/a2d-shells/ele"
	"github.com/SeiyonArulampalam/a2d-shells/num"
)

// AddResidualsParallel assembles the global residual into fb with nworkers
// goroutines. Cells are processed color by color (see ColorCells) so that no
// two concurrent cells touch the same entries of fb; within a color the cells
// are dealt to the workers in strides. nworkers < 1 selects runtime.NumCPU().
// The result is identical to AddResiduals.
func (o *Domain[T]) AddResidualsParallel(nworkers int, sol *Solution[T], fb []T) (err error) {
	o.checkVector("fb", fb)
	if nworkers < 1 {
		nworkers = runtime.NumCPU()
	}
	if nworkers == 1 || len(o.Elems) < 2*nworkers {
		return o.AddResiduals(sol, fb)
	}

	groups := ColorCells(o.Msh)
	errs := make([]error, nworkers)
	for _, cells := range groups {
		var wg sync.WaitGroup
		for w := 0; w < nworkers; w++ {
			wg.Add(1)
			go func(w int) {
				defer wg.Done()
				s := o.newScratch()
				for k := w; k < len(cells); k += nworkers {
					cid := cells[k]
					e := o.Elems[cid]
					n := ele.NumVariables(e)
					s.gather(o, cid, sol, e)
					num.Fill[T](s.res[:n], 0)
					e2 := e.AddResidual(cid, sol.T, s.xpts[:o.Msh.Ndim*e.NumNodes()], s.vars[:n], s.dvars[:n], s.ddvars[:n], s.res[:n])
					if e2 != nil {
						errs[w] = e2
						return
					}
					for i, eq := range o.Eqs[cid] {
						fb[eq] += s.res[i]
					}
				}
			}(w)
		}
		wg.Wait()
		for _, e2 := range errs {
			if e2 != nil {
				return e2
			}
		}
	}
	return
}
