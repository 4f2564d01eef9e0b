// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package lattice places unit cells on a grid and merges them into a global mesh
package lattice

import (
	"math"

	"github.com/longbiscuit/ABAQUS-preprocessor/cell"
	"github.com/longbiscuit/ABAQUS-preprocessor/mesh"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"
)

// Placer holds the data to place unit cells on a grid
type Placer struct {
	Kind     string    // kind of unit cell; e.g. "kagome"
	Nx       int       // number of cells along first basis vector
	Ny       int       // number of cells along second basis vector
	Nz       int       // number of cells along third basis vector (voxel only); 0 => 1
	Nsub     int       // number of beam elements per strut
	Length   float64   // size of cell; e.g. pitch of voxels
	AngleDeg float64   // strut angle (kagome only)
	Origin   []float64 // offset; origin of cell (0,0,0)
	Incl     *mesh.Box // inclusion box: only cells with origin inside are placed; nil => all
	NoMerge  *mesh.Box // nodes inside this box are never merged
	Centroid bool      // add centroid node referenced by all elements
	Verbose  bool      // show messages
}

// Stats holds results of placement
type Stats struct {
	Ncells  int // number of cells placed
	Nshared int // total number of corner nodes merged with existing ones
}

// Basis returns the lattice basis vectors
func (o *Placer) Basis() (a [3][3]float64, err error) {
	L := o.Length
	switch o.Kind {
	case "voxel":
		a[0] = [3]float64{L, 0, 0}
		a[1] = [3]float64{0, L, 0}
		a[2] = [3]float64{0, 0, L}
	case "kagome":
		θ := o.AngleDeg * math.Pi / 180.0
		a[0] = [3]float64{L, 0, 0}
		a[1] = [3]float64{L * math.Cos(θ), L * math.Sin(θ), 0}
	case "honeycomb":
		r := L / 2.0
		c := math.Cos(math.Pi / 6.0)
		a[0] = [3]float64{2 * r * c, 0, 0}
		a[1] = [3]float64{2 * r * c, 3 * r, 0}
	default:
		err = chk.Err("cannot compute basis of lattice with %q cells", o.Kind)
	}
	return
}

// CellOrigin computes the origin of cell (i,j,k)
func (o *Placer) CellOrigin(a [3][3]float64, i, j, k int) []float64 {
	x := make([]float64, 3)
	if len(o.Origin) == 3 {
		copy(x, o.Origin)
	}
	for d := 0; d < 3; d++ {
		x[d] += float64(i)*a[0][d] + float64(j)*a[1][d] + float64(k)*a[2][d]
	}
	return x
}

// Check checks input data
func (o *Placer) Check() error {
	info := cell.GetInfo(o.Kind)
	if info == nil {
		return chk.Err("cannot find cell kind %q; available: %v", o.Kind, cell.Kinds())
	}
	if o.Nx < 1 || o.Ny < 1 || o.Nz < 0 {
		return chk.Err("numbers of cells must be positive; got (%d,%d,%d)", o.Nx, o.Ny, o.Nz)
	}
	if o.Nz > 1 && o.Kind != "voxel" {
		return chk.Err("%s lattices are planar; nz=%d is invalid", o.Kind, o.Nz)
	}
	if o.Origin != nil && len(o.Origin) != 3 {
		return chk.Err("origin must have 3 coordinates; %v is invalid", o.Origin)
	}
	if err := o.Incl.Check(); err != nil {
		return err
	}
	if err := o.NoMerge.Check(); err != nil {
		return err
	}
	return cell.Params{Nsub: o.Nsub, Length: o.Length, AngleDeg: o.AngleDeg}.Check(info.Angle)
}

// Run places all cells and merges them into m
func (o *Placer) Run(m *mesh.Mesh) (stats Stats, err error) {

	// check
	if err = o.Check(); err != nil {
		return
	}
	a, err := o.Basis()
	if err != nil {
		return
	}
	nz := o.Nz
	if nz < 1 {
		nz = 1
	}

	// message
	if o.Verbose {
		io.Pf("> placing %d x %d x %d %s cells\n", o.Nx, o.Ny, nz, o.Kind)
	}

	// loop over grid
	for i := 0; i < o.Nx; i++ {
		for j := 0; j < o.Ny; j++ {
			for k := 0; k < nz; k++ {
				x := o.CellOrigin(a, i, j, k)
				if o.Incl != nil && !o.Incl.Contains(x) {
					continue
				}
				c, e := cell.New(o.Kind, cell.Params{X: x[0], Y: x[1], Z: x[2], Nsub: o.Nsub, Length: o.Length, AngleDeg: o.AngleDeg})
				if e != nil {
					return stats, e
				}
				shared, e := m.AddSuperElement(c, o.Centroid, o.NoMerge)
				if e != nil {
					return stats, chk.Err("cannot add cell (%d,%d,%d):\n%v", i, j, k, e)
				}
				stats.Ncells++
				stats.Nshared += shared
			}
		}
	}

	// message
	if o.Verbose {
		io.Pf("> %d cells placed; %d corner nodes shared\n", stats.Ncells, stats.Nshared)
		io.Pf("> nverts=%d nelems=%d nconn=%d\n", m.Nverts(), m.Nelems(), m.Nconnections())
	}
	return
}
