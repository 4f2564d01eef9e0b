// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package cell

import "math"

func init() {
	register(&Info{Name: "honeycomb", Nstruts: 6, Ncorners: 7, gen: honeycomb})
}

// honeycomb generates two Y-junctions of a honeycomb made of pointy-top hexagons with
// circumradius r = Length/2 (edge length r). With c = r·cos(30°) and (X,Y) the centre of the
// first hexagon, the junctions are at
//  A1 = (X, Y+r)    with struts 0, 1, 2 to (X+c, Y+r/2), (X-c, Y+r/2) and (X, Y+2r)
//  A2 = (X+c, Y+2.5r) with struts 3, 4, 5 to (X+2c, Y+2r), (X, Y+2r) and (X+c, Y+3.5r)
// Every wall of the honeycomb has exactly one junction of this kind at one of its ends; thus,
// repeating the cell with basis (2c,0) and (2c,3r) generates each wall once
func honeycomb(o *Cell, prm Params) {
	r := prm.Length / 2.0
	c := r * math.Cos(math.Pi/6.0)
	x, y, z := prm.X, prm.Y, prm.Z
	a1 := o.addNode(x, y+r, z, true)
	o.legTo(0, a1, []float64{x + c, y + r/2.0, z})
	o.legTo(1, a1, []float64{x - c, y + r/2.0, z})
	top := o.legTo(2, a1, []float64{x, y + 2.0*r, z})
	a2 := o.addNode(x+c, y+2.5*r, z, true)
	o.legTo(3, a2, []float64{x + 2.0*c, y + 2.0*r, z})
	o.legBetween(4, a2, top)
	o.legTo(5, a2, []float64{x + c, y + 3.5*r, z})
}
