// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package mesh

import (
	"bytes"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"
)

// constants
const (
	IdShift = 1 // ids are 0-based internally and 1-based in Abaqus files
	SetWrap = 8 // number of members per line in sets
)

// WriteNodes writes the *NODE block
func (o *Mesh) WriteNodes(buf *bytes.Buffer) {
	io.Ff(buf, "*NODE\n")
	for i, x := range o.Verts {
		io.Ff(buf, "%d, %f, %f, %f\n", i+IdShift, x[0], x[1], x[2])
	}
}

// WriteElems writes the *ELEMENT block; e.g. elType = "B31"
func (o *Mesh) WriteElems(buf *bytes.Buffer, elType, elset string) {
	io.Ff(buf, "*ELEMENT, TYPE=%s", elType)
	if elset != "" {
		io.Ff(buf, ", ELSET=%s", elset)
	}
	io.Ff(buf, "\n")
	for i, nodes := range o.Elems {
		io.Ff(buf, "%d", i+IdShift)
		for _, n := range nodes {
			io.Ff(buf, ", %d", n+IdShift)
		}
		io.Ff(buf, "\n")
	}
}

// WriteNset writes one node set
func (o *Mesh) WriteNset(buf *bytes.Buffer, name string) error {
	set, err := o.Nset(name)
	if err != nil {
		return err
	}
	writeSet(buf, "NSET", name, set.Ids)
	return nil
}

// WriteElset writes one element set
func (o *Mesh) WriteElset(buf *bytes.Buffer, name string) error {
	set, err := o.Elset(name)
	if err != nil {
		return err
	}
	writeSet(buf, "ELSET", name, set.Ids)
	return nil
}

// SectionName returns the name of the element set of strut slot k (0-based)
func SectionName(prefix string, k int) string {
	return io.Sf("%s-%d", prefix, k+1)
}

// WriteSections writes one element set for each strut slot of the superElementSectionList
func (o *Mesh) WriteSections(buf *bytes.Buffer, prefix string) error {
	if o.Sections == nil {
		return chk.Err("%w: %s is empty since no unit cell has been added", ErrUndefinedSet, SectionListName)
	}
	for k, ids := range o.Sections {
		writeSet(buf, "ELSET", SectionName(prefix, k), ids)
	}
	return nil
}

// WriteBeamSections writes one circular *BEAM SECTION for each strut slot
func (o *Mesh) WriteBeamSections(buf *bytes.Buffer, prefix, material string, radius float64) error {
	if o.Sections == nil {
		return chk.Err("%w: %s is empty since no unit cell has been added", ErrUndefinedSet, SectionListName)
	}
	if !(radius > 0) {
		return chk.Err("radius of beam section must be positive. %g is invalid", radius)
	}
	for k := range o.Sections {
		io.Ff(buf, "*BEAM SECTION, ELSET=%s, MATERIAL=%s, SECTION=CIRC\n", SectionName(prefix, k), material)
		io.Ff(buf, "%g\n", radius)
	}
	return nil
}

// WriteAll writes nodes, elements, all named sets and the sections element sets
func (o *Mesh) WriteAll(buf *bytes.Buffer, elType, elset, prefix string) (err error) {
	o.WriteNodes(buf)
	o.WriteElems(buf, elType, elset)
	for _, set := range o.Nsets {
		writeSet(buf, "NSET", set.Name, set.Ids)
	}
	for _, set := range o.Elsets {
		writeSet(buf, "ELSET", set.Name, set.Ids)
	}
	if o.Sections != nil {
		err = o.WriteSections(buf, prefix)
	}
	return
}

// writeSet writes a set with SetWrap members per line
func writeSet(buf *bytes.Buffer, key, name string, ids []int) {
	io.Ff(buf, "*%s, %s=%s\n", key, key, name)
	for i, id := range ids {
		if i%SetWrap == 0 {
			io.Ff(buf, "%d", id+IdShift)
		} else {
			io.Ff(buf, ", %d", id+IdShift)
		}
		if (i+1)%SetWrap == 0 || i == len(ids)-1 {
			io.Ff(buf, "\n")
		}
	}
}
