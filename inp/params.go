// Copyright 2025 The A2D-Shells Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package inp implements the analysis parameters read from a YAML input file
package inp

import (
	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"
	"github.com/ghodss/yaml"
)

// ElemData holds the configuration of one element type in the mesh
type ElemData struct {
	Type string             `yaml:"Type"` // registered element name; e.g. "plane", "heat"
	Tag  int                `yaml:"Tag"`  // cell tag selecting which cells use this element
	Nip  int                `yaml:"Nip"`  // number of integration points per direction
	Prms map[string]float64 `yaml:"Prms"` // material/geometry parameters; e.g. E, nu, rho
}

// Parameters holds the data controlling one assembly/analysis run
type Parameters struct {
	Title      string      `yaml:"Title"`
	Alpha      float64     `yaml:"Alpha"`      // coefficient of dres/dvars in the Jacobian
	Beta       float64     `yaml:"Beta"`       // coefficient of dres/d(dvars)
	Gamma      float64     `yaml:"Gamma"`      // coefficient of dres/d(ddvars)
	FdOrder    int         `yaml:"FdOrder"`    // finite differencing order for derived Jacobians: 1 or 2
	NumWorkers int         `yaml:"NumWorkers"` // goroutines used for parallel assembly; 0 = serial
	Elements   []*ElemData `yaml:"Elements"`
}

// Parse decodes YAML data into the parameters, applying defaults
func (o *Parameters) Parse(data []byte) (err error) {
	err = yaml.Unmarshal(data, o)
	if err != nil {
		return chk.Err("cannot parse parameters:\n%v", err)
	}
	o.setDefaults()
	return
}

// Read loads parameters from a YAML file. A missing or unreadable file
// panics inside io.ReadFile
func Read(fname string) (prms *Parameters, err error) {
	b := io.ReadFile(fname)
	prms = new(Parameters)
	err = prms.Parse(b)
	return
}

// Print shows the parameters
func (o *Parameters) Print() {
	io.Pf("%q\t= Title\n", o.Title)
	io.Pf("%8.5f\t= Alpha\n", o.Alpha)
	io.Pf("%8.5f\t= Beta\n", o.Beta)
	io.Pf("%8.5f\t= Gamma\n", o.Gamma)
	io.Pf("%8d\t= FdOrder\n", o.FdOrder)
	io.Pf("%8d\t= NumWorkers\n", o.NumWorkers)
	for _, edat := range o.Elements {
		io.Pf("element %q tag=%d nip=%d prms=%v\n", edat.Type, edat.Tag, edat.Nip, edat.Prms)
	}
}

func (o *Parameters) setDefaults() {
	if o.FdOrder == 0 {
		o.FdOrder = 2
	}
	for _, edat := range o.Elements {
		if edat.Nip == 0 {
			edat.Nip = 2
		}
	}
}
