// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package inp

import (
	"bytes"

	"github.com/longbiscuit/ABAQUS-preprocessor/lattice"
	"github.com/longbiscuit/ABAQUS-preprocessor/mesh"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"
)

// Build generates the lattice mesh of job, including the node sets on coordinate planes
func (o *Job) Build(verbose bool) (m *mesh.Mesh, stats lattice.Stats, err error) {
	m = mesh.New()
	stats, err = o.Placer(verbose).Run(m)
	if err != nil {
		return nil, stats, err
	}
	for _, p := range o.Planes {
		if err = m.AddPlaneNset(p.Name, p.Dim, p.Value); err != nil {
			return nil, stats, err
		}
		if verbose {
			set, _ := m.Nset(p.Name)
			io.Pf("> node set %q: %d nodes\n", p.Name, len(set.Ids))
		}
	}
	return
}

// Encode writes the Abaqus geometry deck of m: heading, nodes, elements, sets, sections and material
func (o *Job) Encode(buf *bytes.Buffer, m *mesh.Mesh) (err error) {
	io.Ff(buf, "*HEADING\n")
	if o.Desc != "" {
		io.Ff(buf, "%s\n", o.Desc)
	}
	io.Ff(buf, "** %s lattice: %d nodes, %d elements\n", o.Lattice.Kind, m.Nverts(), m.Nelems())
	if err = m.WriteAll(buf, o.ElemType, o.Elset, o.Prefix); err != nil {
		return
	}
	if o.Radius > 0 {
		if err = m.WriteBeamSections(buf, o.Prefix, o.Material, o.Radius); err != nil {
			return
		}
	}
	if o.Material != "" {
		mat := o.Mats.Get(o.Material)
		if mat == nil {
			return chk.Err("cannot find material %q", o.Material)
		}
		mat.Write(buf)
	}
	return
}
