// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package cell implements the unit cells (super elements) of truss lattices
package cell

import (
	"errors"
	"sort"

	"github.com/cpmech/gosl/chk"
)

// ErrInvalidGeometry indicates invalid unit cell parameters
var ErrInvalidGeometry = errors.New("invalid geometry parameter")

// Params holds the placement and size parameters of a unit cell
type Params struct {
	X, Y, Z  float64 // origin (centroid) of cell
	Nsub     int     // number of beam elements per strut
	Length   float64 // edge length (Voxel pitch; Kagome/Honeycomb diameter of bounding circle)
	AngleDeg float64 // strut angle in degrees (Kagome only)
}

// Cell holds the local geometry of one unit cell
//  Note: Cell is transient; it is consumed by one mesh merge and then discarded
type Cell struct {
	Kind      string      // kind of cell; e.g. "kagome"
	Nodes     [][]float64 // [nnodes][3] local nodes coordinates
	Elems     [][2]int    // [nelems] local beam elements (2 nodes)
	Shareable []int       // local ids of corner nodes that may be merged with other cells
	Centroid  []float64   // [3] centroid of cell
	Sections  [][]int     // [nstruts][nsub] local element ids grouped by strut
	nsub      int         // number of beam elements per strut
}

// Info holds the descriptor of one kind of unit cell
type Info struct {
	Name     string              // name of kind
	Nstruts  int                 // number of struts => number of sections slots
	Ncorners int                 // number of shareable corner nodes
	Angle    bool                // kind requires a strut angle
	gen      func(*Cell, Params) // geometry generator
}

// factory holds all kinds of cells available
var factory = make(map[string]*Info)

// register adds a new kind of cell to factory
func register(info *Info) {
	if _, ok := factory[info.Name]; ok {
		panic("cell: kind " + info.Name + " registered twice")
	}
	factory[info.Name] = info
}

// GetInfo returns the descriptor of a kind of cell
//  Note: returns nil if kind is not available
func GetInfo(kind string) *Info {
	return factory[kind]
}

// Kinds returns the (sorted) names of all kinds available
func Kinds() (names []string) {
	for name := range factory {
		names = append(names, name)
	}
	sort.Strings(names)
	return
}

// New generates a new unit cell
func New(kind string, prm Params) (o *Cell, err error) {
	info := factory[kind]
	if info == nil {
		return nil, chk.Err("%w: cannot find cell kind %q; available: %v", ErrInvalidGeometry, kind, Kinds())
	}
	if err = prm.Check(info.Angle); err != nil {
		return nil, chk.Err("%s: %w", kind, err)
	}
	o = &Cell{
		Kind:     kind,
		Centroid: []float64{prm.X, prm.Y, prm.Z},
		Sections: make([][]int, info.Nstruts),
		nsub:     prm.Nsub,
	}
	info.gen(o, prm)
	return
}

// Check checks parameters
func (o Params) Check(withAngle bool) error {
	if o.Nsub < 1 {
		return chk.Err("%w: number of beams per strut must be at least 1 (nsub=%d)", ErrInvalidGeometry, o.Nsub)
	}
	if !(o.Length > 0) {
		return chk.Err("%w: length must be positive (length=%g)", ErrInvalidGeometry, o.Length)
	}
	if withAngle && !(o.AngleDeg > 0 && o.AngleDeg < 180) {
		return chk.Err("%w: strut angle must be in (0,180) degrees (angle=%g)", ErrInvalidGeometry, o.AngleDeg)
	}
	return nil
}

// Nsub returns the number of beam elements per strut
func (o *Cell) Nsub() int { return o.nsub }

// IsShareable tells whether local node is a corner node
func (o *Cell) IsShareable(lid int) bool {
	for _, id := range o.Shareable {
		if id == lid {
			return true
		}
	}
	return false
}

// auxiliary /////////////////////////////////////////////////////////////////////////////////////

// addNode appends a local node and returns its local id
func (o *Cell) addNode(x, y, z float64, shareable bool) (lid int) {
	lid = len(o.Nodes)
	o.Nodes = append(o.Nodes, []float64{x, y, z})
	if shareable {
		o.Shareable = append(o.Shareable, lid)
	}
	return
}

// addElem appends a beam element to strut section slot
func (o *Cell) addElem(slot, a, b int) {
	o.Elems = append(o.Elems, [2]int{a, b})
	o.Sections[slot] = append(o.Sections[slot], len(o.Elems)-1)
}

// interior adds the nsub-1 interior nodes and elements of the strut starting at node a and
// ending at xb. It returns the local id of the last node added (or a)
func (o *Cell) interior(slot, a int, xb []float64) (last int) {
	xa := o.Nodes[a]
	last = a
	n := float64(o.nsub)
	for i := 1; i < o.nsub; i++ {
		t := float64(i) / n
		id := o.addNode(xa[0]+t*(xb[0]-xa[0]), xa[1]+t*(xb[1]-xa[1]), xa[2]+t*(xb[2]-xa[2]), false)
		o.addElem(slot, last, id)
		last = id
	}
	return
}

// legTo adds the strut from existing node a to a new corner node at xb; returns the id of the new node
func (o *Cell) legTo(slot, a int, xb []float64) (b int) {
	last := o.interior(slot, a, xb)
	b = o.addNode(xb[0], xb[1], xb[2], true)
	o.addElem(slot, last, b)
	return
}

// legBetween adds the strut joining two existing nodes
func (o *Cell) legBetween(slot, a, b int) {
	last := o.interior(slot, a, o.Nodes[b])
	o.addElem(slot, last, b)
}
