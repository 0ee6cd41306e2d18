// Copyright 2025 The A2D-Shells Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package ele

import (
	"github.com/cpmech/gosl/chk"

	"github.com/SeiyonArulampalam/a2d-shells/inp"
)

// Info holds the fixed degree-of-freedom layout of an element type, available
// before the element itself is allocated
type Info struct {
	VarsPerNode int // degrees of freedom per node
	NumNodes    int // nodes per element
}

// InfoFuncType defines a function that returns information about a certain element type
type InfoFuncType func(edat *inp.ElemData) *Info

// AllocatorType defines a function that allocates an element for real-mode analysis
type AllocatorType func(edat *inp.ElemData) Element[float64]

// GetInfo returns information about an element type from the factory
func GetInfo(edat *inp.ElemData) (info *Info, err error) {
	fcn, ok := infofactory[edat.Type]
	if !ok {
		err = chk.Err("cannot get info for element {type=%q, tag=%d}", edat.Type, edat.Tag)
		return
	}
	info = fcn(edat)
	if info == nil {
		err = chk.Err("info for element {type=%q, tag=%d} is not available", edat.Type, edat.Tag)
	}
	return
}

// New returns a new element from the factory
func New(edat *inp.ElemData) (element Element[float64], err error) {
	fcn, ok := allocators[edat.Type]
	if !ok {
		err = chk.Err("cannot get allocator for element {type=%q, tag=%d}", edat.Type, edat.Tag)
		return
	}
	element = fcn(edat)
	if element == nil {
		err = chk.Err("element {type=%q, tag=%d} is not available", edat.Type, edat.Tag)
	}
	return
}

// SetInfoFunc sets a new callback function to return information about an element
func SetInfoFunc(elementName string, fcn InfoFuncType) {
	if _, ok := infofactory[elementName]; ok {
		chk.Panic("cannot set information function for %q because element name exists already", elementName)
	}
	infofactory[elementName] = fcn
}

// SetAllocator sets a new callback function to allocate an element
func SetAllocator(elementName string, fcn AllocatorType) {
	if _, ok := allocators[elementName]; ok {
		chk.Panic("cannot set allocator function for %q because element name exists already", elementName)
	}
	allocators[elementName] = fcn
}

// Registered returns the names of all registered element types
func Registered() (names []string) {
	for name := range allocators {
		names = append(names, name)
	}
	return
}

// infofactory holds all functions that return information about an element
var infofactory = make(map[string]InfoFuncType)

// allocators holds all element allocators
var allocators = make(map[string]AllocatorType)
