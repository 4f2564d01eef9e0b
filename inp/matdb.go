// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package inp

import (
	"bytes"

	"github.com/BurntSushi/toml"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"
)

// defaultMats holds the default materials catalog (English units: psi and lbf·s²/in⁴)
const defaultMats = `
[[material]]
name = "ultem_2200_polyetherimide_E"
desc = "Ultem 2200 polyetherimide; 0.0513 lb/in3"
E    = 986000.0
nu   = 0.38
rho  = 0.0001329

[[material]]
name = "Aluminum_E"
E    = 10.0e6
nu   = 0.3
rho  = 0.000253

[[material]]
name = "Steel_E"
E    = 28.0e6
nu   = 0.3
rho  = 0.000749
`

// Material holds the parameters of a linear elastic material
type Material struct {
	Name string  `toml:"name"` // name of material
	Desc string  `toml:"desc"` // description
	E    float64 `toml:"E"`    // Young's modulus
	Nu   float64 `toml:"nu"`   // Poisson's coefficient
	Rho  float64 `toml:"rho"`  // density
}

// MatDb holds a materials catalog
type MatDb struct {
	Materials []*Material `toml:"material"` // all materials
}

// DefaultMatDb returns the default materials catalog
func DefaultMatDb() (*MatDb, error) {
	return decodeMatDb(defaultMats, "default catalog")
}

// ReadMatDb reads a materials catalog from a TOML file
func ReadMatDb(fnpath string) (o *MatDb, err error) {
	o = new(MatDb)
	if _, err = toml.DecodeFile(fnpath, o); err != nil {
		return nil, chk.Err("cannot read materials catalog %q:\n%v", fnpath, err)
	}
	if err = o.check(fnpath); err != nil {
		return nil, err
	}
	return
}

// Get returns a material or nil if not found
func (o *MatDb) Get(name string) *Material {
	for _, mat := range o.Materials {
		if mat.Name == name {
			return mat
		}
	}
	return nil
}

// Names returns the names of all materials
func (o *MatDb) Names() (names []string) {
	for _, mat := range o.Materials {
		names = append(names, mat.Name)
	}
	return
}

// Write writes the Abaqus definition of material
func (o *Material) Write(buf *bytes.Buffer) {
	io.Ff(buf, "*MATERIAL, NAME=%s\n", o.Name)
	io.Ff(buf, "*ELASTIC\n")
	io.Ff(buf, "%g, %g\n", o.E, o.Nu)
	io.Ff(buf, "*DENSITY\n")
	io.Ff(buf, " %g\n", o.Rho)
	io.Ff(buf, "**End of %s material definitions\n", o.Name)
}

// auxiliary /////////////////////////////////////////////////////////////////////////////////////

func decodeMatDb(text, source string) (o *MatDb, err error) {
	o = new(MatDb)
	if _, err = toml.Decode(text, o); err != nil {
		return nil, chk.Err("cannot decode materials catalog (%s):\n%v", source, err)
	}
	if err = o.check(source); err != nil {
		return nil, err
	}
	return
}

func (o *MatDb) check(source string) error {
	names := make(map[string]bool)
	for i, mat := range o.Materials {
		if mat.Name == "" {
			return chk.Err("%s: material # %d has no name", source, i)
		}
		if names[mat.Name] {
			return chk.Err("%s: material %q is defined twice", source, mat.Name)
		}
		names[mat.Name] = true
		if !(mat.E > 0) || mat.Nu <= -1 || mat.Nu >= 0.5 || mat.Rho < 0 {
			return chk.Err("%s: parameters of material %q are invalid: E=%g nu=%g rho=%g", source, mat.Name, mat.E, mat.Nu, mat.Rho)
		}
	}
	return nil
}
