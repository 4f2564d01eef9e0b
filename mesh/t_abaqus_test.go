// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package mesh

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"
)

func Test_abaqus01(tst *testing.T) {

	//verbose()
	chk.PrintTitle("abaqus01. nodes and elements")

	m := New()
	if _, err := m.AddSuperElement(newCell(tst, "voxel", 0, 0, 0, 1), false, nil); err != nil {
		tst.Errorf("AddSuperElement failed:\n%v", err)
		return
	}

	var buf bytes.Buffer
	m.WriteNodes(&buf)
	chk.String(tst, buf.String(), `*NODE
1, 1.000000, 0.000000, 0.000000
2, 0.000000, 0.000000, -1.000000
3, -1.000000, 0.000000, 0.000000
4, 0.000000, 0.000000, 1.000000
5, 0.000000, 1.000000, 0.000000
6, 0.000000, -1.000000, 0.000000
`)

	buf.Reset()
	m.WriteElems(&buf, "B31", "lattice")
	lines := strings.Split(buf.String(), "\n")
	chk.Int(tst, "nlines", len(lines), 1+12+1)
	chk.String(tst, lines[0], "*ELEMENT, TYPE=B31, ELSET=lattice")
	chk.String(tst, lines[1], "1, 1, 2")
	chk.String(tst, lines[4], "4, 4, 1")
	chk.String(tst, lines[12], "12, 4, 6")
	io.Pforan("%v", buf.String())
}

func Test_abaqus02(tst *testing.T) {

	//verbose()
	chk.PrintTitle("abaqus02. sets")

	m := New()
	if _, err := m.AddSuperElement(newCell(tst, "voxel", 0, 0, 0, 1), false, nil); err != nil {
		tst.Errorf("AddSuperElement failed:\n%v", err)
		return
	}
	m.AddElset("all", []int{0, 1, 2, 3, 4, 5, 6, 7, 8, 9, 10, 11})
	m.AddElset("eight", []int{0, 1, 2, 3, 4, 5, 6, 7})
	m.AddNset("empty", nil)

	var buf bytes.Buffer
	for _, name := range []string{"all", "eight"} {
		if err := m.WriteElset(&buf, name); err != nil {
			tst.Errorf("WriteElset failed:\n%v", err)
			return
		}
	}
	if err := m.WriteNset(&buf, "empty"); err != nil {
		tst.Errorf("WriteNset failed:\n%v", err)
		return
	}
	chk.String(tst, buf.String(), `*ELSET, ELSET=all
1, 2, 3, 4, 5, 6, 7, 8
9, 10, 11, 12
*ELSET, ELSET=eight
1, 2, 3, 4, 5, 6, 7, 8
*NSET, NSET=empty
`)

	// undefined
	if err := m.WriteNset(&buf, "all"); !errors.Is(err, ErrUndefinedSet) {
		tst.Errorf("node set 'all' must be undefined")
	}
	if err := m.WriteElset(&buf, "none"); !errors.Is(err, ErrUndefinedSet) {
		tst.Errorf("element set 'none' must be undefined")
	}
	if err := New().WriteSections(&buf, "strut"); !errors.Is(err, ErrUndefinedSet) {
		tst.Errorf("sections of empty mesh must be undefined")
	}
}

func Test_abaqus03(tst *testing.T) {

	//verbose()
	chk.PrintTitle("abaqus03. sections")

	m := New()
	for _, x := range []float64{0, 2, 4} {
		if _, err := m.AddSuperElement(newCell(tst, "kagome", x, 0, 0, 1), false, nil); err != nil {
			tst.Errorf("AddSuperElement failed:\n%v", err)
			return
		}
	}

	var buf bytes.Buffer
	if err := m.WriteSections(&buf, "strut"); err != nil {
		tst.Errorf("WriteSections failed:\n%v", err)
		return
	}
	blocks, err := ReadSets(&buf)
	if err != nil {
		tst.Errorf("ReadSets failed:\n%v", err)
		return
	}
	chk.Int(tst, "nblocks", len(blocks), 6)
	for k, b := range blocks {
		chk.String(tst, b.Key, "ELSET")
		chk.String(tst, b.Name, io.Sf("strut-%d", k+1))
		chk.Ints(tst, b.Name, b.Ids, []int{k, k + 6, k + 12})
	}

	buf.Reset()
	if err = m.WriteBeamSections(&buf, "strut", "Steel_E", 0.05); err != nil {
		tst.Errorf("WriteBeamSections failed:\n%v", err)
		return
	}
	lines := strings.Split(buf.String(), "\n")
	chk.String(tst, lines[0], "*BEAM SECTION, ELSET=strut-1, MATERIAL=Steel_E, SECTION=CIRC")
	chk.String(tst, lines[1], "0.05")
	if err = m.WriteBeamSections(&buf, "strut", "Steel_E", 0); err == nil {
		tst.Errorf("zero radius must fail")
	}
}

func Test_abaqus04(tst *testing.T) {

	//verbose()
	chk.PrintTitle("abaqus04. round trip of sets")

	ids := []int{17, 3, 0, 42, 5, 6, 7, 8, 9, 10, 11, 12, 13, 14, 15, 16, 1, 2, 99}
	var buf bytes.Buffer
	writeSet(&buf, "NSET", "top", ids)
	writeSet(&buf, "ELSET", "struts", ids[:16])
	io.Ff(&buf, "*NODE\n1, 0.0, 0.0, 0.0\n")

	blocks, err := ReadSets(&buf)
	if err != nil {
		tst.Errorf("ReadSets failed:\n%v", err)
		return
	}
	chk.Int(tst, "nblocks", len(blocks), 2)
	chk.String(tst, blocks[0].Key, "NSET")
	chk.String(tst, blocks[0].Name, "top")
	chk.Ints(tst, "top", blocks[0].Ids, ids)
	chk.String(tst, blocks[1].Key, "ELSET")
	chk.String(tst, blocks[1].Name, "struts")
	chk.Ints(tst, "struts", blocks[1].Ids, ids[:16])

	// errors
	_, err = ReadSets(strings.NewReader("*NSET, NSET=a\n1, x, 3\n"))
	if err == nil {
		tst.Errorf("invalid member must fail")
	}
	_, err = ReadSets(strings.NewReader("*ELSET, GENERATE\n1, 3, 1\n"))
	if err == nil {
		tst.Errorf("header without name must fail")
	}
}

func Test_abaqus06(tst *testing.T) {

	//verbose()
	chk.PrintTitle("abaqus06. generated sets")

	text := "*NSET, NSET=row, GENERATE\n1, 9, 1\n*ELSET, ELSET=odd, generate\n1, 7, 2\n11, 12\n*NSET, NSET=list\n1, 9, 1\n"
	blocks, err := ReadSets(strings.NewReader(text))
	if err != nil {
		tst.Errorf("ReadSets failed:\n%v", err)
		return
	}
	chk.Int(tst, "nblocks", len(blocks), 3)
	chk.Ints(tst, "row", blocks[0].Ids, []int{0, 1, 2, 3, 4, 5, 6, 7, 8})
	chk.Ints(tst, "odd", blocks[1].Ids, []int{0, 2, 4, 6, 10, 11})
	chk.Ints(tst, "list", blocks[2].Ids, []int{0, 8, 0})

	// errors
	for _, data := range []string{"9, 1, 1", "1, 9, 0", "1", "1, 2, 3, 4", "1, x"} {
		if _, err = ReadSets(strings.NewReader("*NSET, NSET=a, GENERATE\n" + data + "\n")); err == nil {
			tst.Errorf("generator %q must fail", data)
		}
	}
}

func Test_abaqus05(tst *testing.T) {

	//verbose()
	chk.PrintTitle("abaqus05. all")

	m := New()
	if _, err := m.AddSuperElement(newCell(tst, "honeycomb", 0, 0, 0, 1), false, nil); err != nil {
		tst.Errorf("AddSuperElement failed:\n%v", err)
		return
	}
	m.AddPlaneNset("bottom", 1, 0.5)

	var buf bytes.Buffer
	if err := m.WriteAll(&buf, "B31", "lattice", SectionListName); err != nil {
		tst.Errorf("WriteAll failed:\n%v", err)
		return
	}
	text := buf.String()
	for _, key := range []string{"*NODE\n", "*ELEMENT, TYPE=B31, ELSET=lattice\n", "*NSET, NSET=bottom\n2, 3\n", "*ELSET, ELSET=superElementSectionList-6\n6\n"} {
		if !strings.Contains(text, key) {
			tst.Errorf("output must contain %q", key)
		}
	}
	if chk.Verbose {
		io.Pf("%s", text)
	}
}
