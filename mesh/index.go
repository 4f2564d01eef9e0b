// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package mesh

import "math"

// MaxBinsPerDim is the max number of bins scanned along each direction by Find. Queries with
// larger tolerances fall back to a linear scan
const MaxBinsPerDim = 4

// binKey identifies one bin of the uniform grid
type binKey [3]int64

// Index holds the connection nodes; i.e. the nodes that can be merged with new nodes
//  Note: positions in Index follow the insertion order
type Index struct {
	X    [][]float64      // [nconn][3] coordinates of connection nodes
	Ids  []int            // [nconn] global ids of connection nodes
	size float64          // size of bins
	bins map[binKey][]int // bin => positions (increasing)
}

// NewIndex returns a new index with bins of given size
//  Note: size <= 0 disables bins; i.e. Find performs a linear scan
func NewIndex(size float64) *Index {
	o := &Index{size: size}
	if size > 0 {
		o.bins = make(map[binKey][]int)
	}
	return o
}

// Len returns the number of connection nodes
func (o *Index) Len() int { return len(o.Ids) }

// Id returns the global id of connection node at position pos
func (o *Index) Id(pos int) int { return o.Ids[pos] }

// Append adds a new connection node. A copy of x is stored
func (o *Index) Append(x []float64, id int) (pos int) {
	pos = len(o.Ids)
	o.X = append(o.X, []float64{x[0], x[1], x[2]})
	o.Ids = append(o.Ids, id)
	if o.bins != nil {
		key := o.key(x[0], x[1], x[2])
		o.bins[key] = append(o.bins[key], pos)
	}
	return
}

// Find finds the first connection node (in insertion order) within a distance tol of x and
// outside the exclusion box. Nodes lying inside exclude are never returned
func (o *Index) Find(x []float64, tol float64, exclude *Box) (pos int, found bool) {
	if o.bins == nil || tol/o.size >= MaxBinsPerDim {
		for pos = range o.X {
			if o.match(pos, x, tol, exclude) {
				return pos, true
			}
		}
		return -1, false
	}
	lo := o.key(x[0]-tol, x[1]-tol, x[2]-tol)
	hi := o.key(x[0]+tol, x[1]+tol, x[2]+tol)
	pos = -1
	for i := lo[0]; i <= hi[0]; i++ {
		for j := lo[1]; j <= hi[1]; j++ {
			for k := lo[2]; k <= hi[2]; k++ {
				for _, p := range o.bins[binKey{i, j, k}] {
					if pos >= 0 && p > pos {
						break // positions in bin are increasing
					}
					if o.match(p, x, tol, exclude) {
						pos = p
						break
					}
				}
			}
		}
	}
	return pos, pos >= 0
}

// FindOnPlane returns the global ids of connection nodes with coordinate dim equal to value,
// within tolerance tol
func (o *Index) FindOnPlane(dim int, value, tol float64) (ids []int) {
	for pos, x := range o.X {
		if math.Abs(x[dim]-value) <= tol {
			ids = append(ids, o.Ids[pos])
		}
	}
	return
}

// auxiliary /////////////////////////////////////////////////////////////////////////////////////

func (o *Index) match(pos int, x []float64, tol float64, exclude *Box) bool {
	y := o.X[pos]
	if exclude.Contains(y) {
		return false
	}
	dx, dy, dz := x[0]-y[0], x[1]-y[1], x[2]-y[2]
	return math.Sqrt(dx*dx+dy*dy+dz*dz) <= tol
}

func (o *Index) key(x, y, z float64) binKey {
	return binKey{
		int64(math.Floor(x / o.size)),
		int64(math.Floor(y / o.size)),
		int64(math.Floor(z / o.size)),
	}
}
