// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package inp implements the input data read from a (.lat) JSON file
package inp

import (
	"encoding/json"
	"os"
	"path/filepath"

	"github.com/longbiscuit/ABAQUS-preprocessor/lattice"
	"github.com/longbiscuit/ABAQUS-preprocessor/mesh"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"
)

// LatticeData holds the definition of a lattice
type LatticeData struct {
	Kind     string    `json:"kind"`     // kind of unit cell: "kagome", "honeycomb" or "voxel"
	Nx       int       `json:"nx"`       // number of cells along x (first basis vector)
	Ny       int       `json:"ny"`       // number of cells along y (second basis vector)
	Nz       int       `json:"nz"`       // number of cells along z (voxel only)
	Nsub     int       `json:"nsub"`     // number of beam elements per strut
	Length   float64   `json:"length"`   // size of cell
	Angle    float64   `json:"angle"`    // strut angle in degrees (kagome only)
	Origin   []float64 `json:"origin"`   // offset of lattice
	Incl     *mesh.Box `json:"incl"`     // inclusion box; cells with origin outside are skipped
	NoMerge  *mesh.Box `json:"nomerge"`  // nodes inside this box are never merged
	Centroid bool      `json:"centroid"` // add centroid node to each cell's elements
}

// PlaneSet holds the definition of a node set on a coordinate plane
type PlaneSet struct {
	Name  string  `json:"name"`  // name of set
	Dim   int     `json:"dim"`   // 0, 1 or 2 => x, y or z plane
	Value float64 `json:"value"` // coordinate of plane
}

// Job holds all data to generate an Abaqus mesh
type Job struct {

	// input data
	Desc     string      `json:"desc"`     // description; written to heading
	DirOut   string      `json:"dirout"`   // directory for output; e.g. /tmp/latmesh
	Matfile  string      `json:"matfile"`  // materials catalog (TOML) path; empty => default catalog
	Material string      `json:"material"` // name of material of struts
	ElemType string      `json:"elemtype"` // Abaqus element type; e.g. "B31"
	Elset    string      `json:"elset"`    // name of element set with all elements
	Prefix   string      `json:"prefix"`   // prefix of sections element sets
	Radius   float64     `json:"radius"`   // radius of circular cross-section of struts; 0 => no sections
	Lattice  LatticeData `json:"lattice"`  // lattice
	Planes   []*PlaneSet `json:"planes"`   // node sets on coordinate planes

	// derived
	Key  string // filename key; e.g. kagome01.lat => kagome01
	Mats *MatDb // materials catalog
}

// SetDefault sets default values
func (o *Job) SetDefault() {
	o.ElemType = "B31"
	o.Elset = "lattice"
	o.Prefix = mesh.SectionListName
	o.Lattice.Angle = 60
	o.Lattice.Nsub = 1
}

// ReadJob reads a job (.lat) file
func ReadJob(fnpath, alias string) (o *Job, err error) {

	// read file
	b, err := os.ReadFile(os.ExpandEnv(fnpath))
	if err != nil {
		return nil, chk.Err("cannot read job file %q:\n%v", fnpath, err)
	}

	// decode
	o = new(Job)
	o.SetDefault()
	err = json.Unmarshal(b, o)
	if err != nil {
		return nil, chk.Err("cannot unmarshal job file %q:\n%v", fnpath, err)
	}

	// filename key and output directory
	dir := filepath.Dir(os.ExpandEnv(fnpath))
	o.Key = io.FnKey(filepath.Base(fnpath))
	if alias != "" {
		o.Key += "-" + alias
	}
	if o.DirOut == "" {
		o.DirOut = "/tmp/latmesh/" + o.Key
	}

	// materials
	if o.Matfile == "" {
		o.Mats, err = DefaultMatDb()
	} else {
		fn := o.Matfile
		if !filepath.IsAbs(fn) {
			fn = filepath.Join(dir, fn)
		}
		o.Mats, err = ReadMatDb(fn)
	}
	if err != nil {
		return nil, err
	}
	if o.Material != "" && o.Mats.Get(o.Material) == nil {
		return nil, chk.Err("cannot find material %q in catalog; available: %v", o.Material, o.Mats.Names())
	}
	if o.Radius > 0 && o.Material == "" {
		return nil, chk.Err("material must be given in order to write beam sections")
	}
	return
}

// Placer returns the lattice placer corresponding to this job
func (o *Job) Placer(verbose bool) *lattice.Placer {
	l := o.Lattice
	return &lattice.Placer{
		Kind:     l.Kind,
		Nx:       l.Nx,
		Ny:       l.Ny,
		Nz:       l.Nz,
		Nsub:     l.Nsub,
		Length:   l.Length,
		AngleDeg: l.Angle,
		Origin:   l.Origin,
		Incl:     l.Incl,
		NoMerge:  l.NoMerge,
		Centroid: l.Centroid,
		Verbose:  verbose,
	}
}
