// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package mesh

import "github.com/cpmech/gosl/chk"

// Box holds an axis-aligned bounding box
//  JSON: {"min":[x,y,z], "max":[x,y,z]}
type Box struct {
	Min [3]float64 `json:"min"` // min corner
	Max [3]float64 `json:"max"` // max corner
}

// NewBox returns a new box
func NewBox(xmin, ymin, zmin, xmax, ymax, zmax float64) *Box {
	return &Box{Min: [3]float64{xmin, ymin, zmin}, Max: [3]float64{xmax, ymax, zmax}}
}

// Contains tells whether x lies in the box; the six faces are included
//  Note: a nil box contains nothing
func (o *Box) Contains(x []float64) bool {
	if o == nil {
		return false
	}
	for i := 0; i < 3; i++ {
		if x[i] < o.Min[i] || x[i] > o.Max[i] {
			return false
		}
	}
	return true
}

// Check checks whether min corner is not greater than max corner
func (o *Box) Check() error {
	if o == nil {
		return nil
	}
	for i := 0; i < 3; i++ {
		if o.Min[i] > o.Max[i] {
			return chk.Err("box: min corner %v is greater than max corner %v along direction %d", o.Min, o.Max, i)
		}
	}
	return nil
}
