// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package cell

func init() {
	register(&Info{Name: "voxel", Nstruts: 12, Ncorners: 6, gen: voxel})
}

// voxel generates the octahedral voxel: six corners at the face centres of a cube with edge
// Length and twelve face-diagonal struts joining them. Legs 1-4 form the ring in the xz-plane
//  +x → -z → -x → +z → +x
// legs 5-8 join the ring to +y and legs 9-12 join the ring to -y.
// Shareable (corner) nodes are ordered as [+x, -z, -x, +z, +y, -y]
func voxel(o *Cell, prm Params) {
	x, y, z := prm.X, prm.Y, prm.Z
	h := prm.Length / 2.0

	// ring in xz-plane
	px := o.addNode(x+h, y, z, true)
	mz := o.legTo(0, px, []float64{x, y, z - h})
	mx := o.legTo(1, mz, []float64{x - h, y, z})
	pz := o.legTo(2, mx, []float64{x, y, z + h})
	o.legBetween(3, pz, px)

	// legs to +y
	py := o.legTo(4, px, []float64{x, y + h, z})
	o.legBetween(5, mz, py)
	o.legBetween(6, mx, py)
	o.legBetween(7, pz, py)

	// legs to -y
	my := o.legTo(8, px, []float64{x, y - h, z})
	o.legBetween(9, mz, my)
	o.legBetween(10, mx, my)
	o.legBetween(11, pz, my)
}
