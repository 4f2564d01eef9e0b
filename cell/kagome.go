// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package cell

import "math"

func init() {
	register(&Info{Name: "kagome", Nstruts: 6, Ncorners: 6, Angle: true, gen: kagome})
}

// kagome generates six struts radiating from the centroid (local node 0) to the vertices of a
// hexagon with radius Length/2. The vertices are located along the directions
//  0, θ, π-θ, π, π+θ, -θ
// where θ is the strut angle; thus θ=60° yields a regular hexagon
func kagome(o *Cell, prm Params) {
	r := prm.Length / 2.0
	θ := prm.AngleDeg * math.Pi / 180.0
	dirs := []float64{0, θ, math.Pi - θ, math.Pi, math.Pi + θ, -θ}
	c := o.addNode(prm.X, prm.Y, prm.Z, false)
	for slot, α := range dirs {
		o.legTo(slot, c, []float64{prm.X + r*math.Cos(α), prm.Y + r*math.Sin(α), prm.Z})
	}
}
