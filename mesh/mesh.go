// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package mesh implements the global mesh of truss lattices assembled from unit cells
package mesh

import (
	"errors"

	"github.com/longbiscuit/ABAQUS-preprocessor/cell"

	"github.com/cpmech/gosl/chk"
)

// constants
const (
	Tol             = 1e-6                      // tolerance to merge corner nodes
	BinSize         = 1e-3                      // size of bins of connection nodes index
	SectionListName = "superElementSectionList" // name of group of elements sets by strut
)

// ErrUndefinedSet indicates a reference to a named set that does not exist
var ErrUndefinedSet = errors.New("undefined set")

// Set holds a named set of nodes or elements
type Set struct {
	Name string // name of set
	Ids  []int  // ids of members (0-based)
}

// Mesh holds the global mesh
//  Note: nodes, elements and sets are only appended; ids never change
type Mesh struct {
	Verts    [][]float64 // [nverts][3] coordinates of all nodes
	Elems    [][]int     // [nelems][2 or 3] nodes of elements
	Conn     *Index      // connection nodes: candidates for merging
	Nsets    []*Set      // node sets
	Elsets   []*Set      // element sets
	Sections [][]int     // [nstruts][...] superElementSectionList: elements of each strut role

	// auxiliary
	nsetIdx  map[string]int // name => index in Nsets
	elsetIdx map[string]int // name => index in Elsets
}

// New returns a new empty mesh
func New() *Mesh {
	return &Mesh{
		Conn:     NewIndex(BinSize),
		nsetIdx:  make(map[string]int),
		elsetIdx: make(map[string]int),
	}
}

// Nverts returns the number of nodes
func (o *Mesh) Nverts() int { return len(o.Verts) }

// Nelems returns the number of elements
func (o *Mesh) Nelems() int { return len(o.Elems) }

// Nconnections returns the number of connection nodes
func (o *Mesh) Nconnections() int { return o.Conn.Len() }

// AddNode appends a node that cannot be merged; returns its id
func (o *Mesh) AddNode(x []float64) (id int) {
	id = len(o.Verts)
	o.Verts = append(o.Verts, []float64{x[0], x[1], x[2]})
	return
}

// AddConnectionNode appends a node that is also a candidate for merging; returns its id
func (o *Mesh) AddConnectionNode(x []float64) (id int) {
	id = o.AddNode(x)
	o.Conn.Append(x, id)
	return
}

// AddElem appends an element; returns its id
func (o *Mesh) AddElem(nodes ...int) (id int, err error) {
	if len(nodes) < 2 {
		return -1, chk.Err("element must have at least 2 nodes. %v is invalid", nodes)
	}
	for _, n := range nodes {
		if n < 0 || n >= len(o.Verts) {
			return -1, chk.Err("cannot add element with nodes %v: node %d does not exist (nverts=%d)", nodes, n, len(o.Verts))
		}
	}
	id = len(o.Elems)
	o.Elems = append(o.Elems, append([]int{}, nodes...))
	return
}

// AddNset adds a named node set
func (o *Mesh) AddNset(name string, ids []int) error {
	if _, ok := o.nsetIdx[name]; ok {
		return chk.Err("node set %q exists already", name)
	}
	for _, id := range ids {
		if id < 0 || id >= len(o.Verts) {
			return chk.Err("node set %q: node %d does not exist", name, id)
		}
	}
	o.nsetIdx[name] = len(o.Nsets)
	o.Nsets = append(o.Nsets, &Set{name, append([]int{}, ids...)})
	return nil
}

// AddElset adds a named element set
func (o *Mesh) AddElset(name string, ids []int) error {
	if _, ok := o.elsetIdx[name]; ok {
		return chk.Err("element set %q exists already", name)
	}
	for _, id := range ids {
		if id < 0 || id >= len(o.Elems) {
			return chk.Err("element set %q: element %d does not exist", name, id)
		}
	}
	o.elsetIdx[name] = len(o.Elsets)
	o.Elsets = append(o.Elsets, &Set{name, append([]int{}, ids...)})
	return nil
}

// Nset returns a node set
func (o *Mesh) Nset(name string) (*Set, error) {
	idx, ok := o.nsetIdx[name]
	if !ok {
		return nil, chk.Err("%w: cannot find node set %q", ErrUndefinedSet, name)
	}
	return o.Nsets[idx], nil
}

// Elset returns an element set
func (o *Mesh) Elset(name string) (*Set, error) {
	idx, ok := o.elsetIdx[name]
	if !ok {
		return nil, chk.Err("%w: cannot find element set %q", ErrUndefinedSet, name)
	}
	return o.Elsets[idx], nil
}

// AddSuperElement merges unit cell c into the mesh. Corner nodes of c coinciding with existing
// connection nodes (within Tol) are merged, unless the existing node lies inside noMerge.
// If withCentroid is true, the centroid of c is added as a new node and all elements of c
// reference it as third node. The elements of each strut are appended to the corresponding
// slot of Sections. Returns the number of corner nodes merged with existing ones
func (o *Mesh) AddSuperElement(c *cell.Cell, withCentroid bool, noMerge *Box) (shared int, err error) {

	// check
	if c == nil {
		return 0, chk.Err("cannot add nil unit cell")
	}
	if o.Sections != nil && len(o.Sections) != len(c.Sections) {
		return 0, chk.Err("cannot add %s cell with %d struts to mesh with %d section slots", c.Kind, len(c.Sections), len(o.Sections))
	}
	if err = checkCell(c, withCentroid); err != nil {
		return
	}

	// nodes
	corner := make([]bool, len(c.Nodes))
	for _, i := range c.Shareable {
		corner[i] = true
	}
	l2g := make([]int, len(c.Nodes))
	for i, x := range c.Nodes {
		if !corner[i] {
			l2g[i] = o.AddNode(x)
			continue
		}
		if pos, found := o.Conn.Find(x, Tol, noMerge); found {
			l2g[i] = o.Conn.Id(pos)
			shared++
			continue
		}
		l2g[i] = o.AddConnectionNode(x)
	}

	// centroid
	centroid := -1
	if withCentroid {
		centroid = o.AddNode(c.Centroid)
	}

	// elements
	e2g := make([]int, len(c.Elems))
	for i, elem := range c.Elems {
		nodes := []int{l2g[elem[0]], l2g[elem[1]]}
		if withCentroid {
			nodes = append(nodes, centroid)
		}
		e2g[i] = len(o.Elems)
		o.Elems = append(o.Elems, nodes)
	}

	// sections
	if o.Sections == nil {
		o.Sections = make([][]int, len(c.Sections))
	}
	for k, sec := range c.Sections {
		for _, e := range sec {
			o.Sections[k] = append(o.Sections[k], e2g[e])
		}
	}
	return
}

// checkCell checks the local ids of c, so that nothing is appended to the mesh if c is inconsistent
func checkCell(c *cell.Cell, withCentroid bool) error {
	nnodes, nelems := len(c.Nodes), len(c.Elems)
	for i, x := range c.Nodes {
		if len(x) != 3 {
			return chk.Err("%s cell: node %d must have 3 coordinates; %v is invalid", c.Kind, i, x)
		}
	}
	if withCentroid && len(c.Centroid) != 3 {
		return chk.Err("%s cell: centroid must have 3 coordinates; %v is invalid", c.Kind, c.Centroid)
	}
	for _, i := range c.Shareable {
		if i < 0 || i >= nnodes {
			return chk.Err("%s cell: shareable node %d does not exist (nnodes=%d)", c.Kind, i, nnodes)
		}
	}
	for e, elem := range c.Elems {
		for _, i := range elem {
			if i < 0 || i >= nnodes {
				return chk.Err("%s cell: element %d references node %d which does not exist (nnodes=%d)", c.Kind, e, i, nnodes)
			}
		}
	}
	for k, sec := range c.Sections {
		for _, e := range sec {
			if e < 0 || e >= nelems {
				return chk.Err("%s cell: section %d references element %d which does not exist (nelems=%d)", c.Kind, k, e, nelems)
			}
		}
	}
	return nil
}

// AddPlaneNset adds a node set with all connection nodes with coordinate dim equal to value
func (o *Mesh) AddPlaneNset(name string, dim int, value float64) (err error) {
	if dim < 0 || dim > 2 {
		return chk.Err("node set %q: dim must be 0, 1 or 2. %d is invalid", name, dim)
	}
	return o.AddNset(name, o.Conn.FindOnPlane(dim, value, Tol))
}
