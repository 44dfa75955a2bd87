// Copyright 2016 The Gopd Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package pd implements the peridynamic evaluation engine over particle clouds
package pd

import (
	"math"
	"sort"

	"github.com/cpmech/gosl/chk"
)

// constants
var (
	TolDelta = 1e-14 // tolerance added to the horizon when deciding whether a bond exists
)

// Neighbors holds the bond structure of a particle cloud in compressed-row layout.
// Each directed bond i--j appears once in row i and once in row j; rows are sorted
// by neighbor index
type Neighbors struct {
	Delta float64 // horizon radius used by the search
	Ptr   []int   // [n+1] pointers to the beginning of each row in Idx
	Idx   []int   // [Ptr[n]] neighbor indices
}

// Degree returns the number of bonds of point i
func (o *Neighbors) Degree(i int) int {
	return o.Ptr[i+1] - o.Ptr[i]
}

// Row returns the neighbor indices of point i
func (o *Neighbors) Row(i int) []int {
	return o.Idx[o.Ptr[i]:o.Ptr[i+1]]
}

// Find returns the position in Idx of the bond i--j, or found=false if the two
// points are not bonded
func (o *Neighbors) Find(i, j int) (k int, found bool) {
	row := o.Idx[o.Ptr[i]:o.Ptr[i+1]]
	m := sort.SearchInts(row, j)
	if m < len(row) && row[m] == j {
		return o.Ptr[i] + m, true
	}
	return -1, false
}

// BuildNeighbors finds all pairs of points closer than δ and returns the bond
// structure. Pairs at the horizon boundary, with |ξ| in (δ, δ+TolDelta), are
// kept as bonds. Coincident points are input errors
//  Input:
//   x -- [3*n] positions
//   n -- number of points
//   δ -- horizon radius
func BuildNeighbors(x []float64, n int, δ float64) (o *Neighbors, err error) {
	if n < 1 {
		return nil, chk.Err("neighbors: at least one point is required. n=%d is invalid\n", n)
	}
	if len(x) != 3*n {
		return nil, chk.Err("neighbors: positions array must have 3⋅n=%d components. len(x)=%d is invalid\n", 3*n, len(x))
	}
	if δ <= 0 {
		return nil, chk.Err("neighbors: horizon must be positive. δ=%g is invalid\n", δ)
	}
	rows, err := searchPairs(x, n, δ+TolDelta, true)
	if err != nil {
		return
	}
	o = &Neighbors{Delta: δ}
	o.Ptr = make([]int, n+1)
	for i := 0; i < n; i++ {
		sort.Ints(rows[i])
		o.Ptr[i+1] = o.Ptr[i] + len(rows[i])
	}
	o.Idx = make([]int, 0, o.Ptr[n])
	for i := 0; i < n; i++ {
		o.Idx = append(o.Idx, rows[i]...)
	}
	return
}

// auxiliary ////////////////////////////////////////////////////////////////////////////////////////

// cellGrid implements a uniform cell structure for radius searches
type cellGrid struct {
	xmin  []float64 // [3] lower corner
	ncell []int     // [3] number of cells along each direction
	size  []float64 // [3] cell sizes; at least equal to the search radius
	cells [][]int   // [ncx*ncy*ncz] point ids in each cell
}

// newCellGrid builds the cell structure and appends all points to their cells
func newCellGrid(x []float64, n int, radius float64) (o *cellGrid) {
	o = &cellGrid{
		xmin:  []float64{x[0], x[1], x[2]},
		ncell: make([]int, 3),
		size:  make([]float64, 3),
	}
	xmax := []float64{x[0], x[1], x[2]}
	for i := 1; i < n; i++ {
		for r := 0; r < 3; r++ {
			v := x[3*i+r]
			if v < o.xmin[r] {
				o.xmin[r] = v
			}
			if v > xmax[r] {
				xmax[r] = v
			}
		}
	}

	// number of cells; capped so sparse clouds with a small radius do not
	// produce huge empty grids
	ncap := int(math.Cbrt(float64(n))) + 1
	for r := 0; r < 3; r++ {
		nc := int((xmax[r] - o.xmin[r]) / radius)
		if nc < 1 {
			nc = 1
		}
		if nc > ncap {
			nc = ncap
		}
		o.ncell[r] = nc
		o.size[r] = (xmax[r] - o.xmin[r]) / float64(nc)
		if o.size[r] < radius {
			o.size[r] = radius
		}
	}

	// append points
	o.cells = make([][]int, o.ncell[0]*o.ncell[1]*o.ncell[2])
	for i := 0; i < n; i++ {
		cx, cy, cz := o.coords(x[3*i], x[3*i+1], x[3*i+2])
		idx := o.index(cx, cy, cz)
		o.cells[idx] = append(o.cells[idx], i)
	}
	return
}

// coords returns the cell coordinates containing position (px,py,pz)
func (o *cellGrid) coords(px, py, pz float64) (cx, cy, cz int) {
	cx = o.clamp(int((px-o.xmin[0])/o.size[0]), 0)
	cy = o.clamp(int((py-o.xmin[1])/o.size[1]), 1)
	cz = o.clamp(int((pz-o.xmin[2])/o.size[2]), 2)
	return
}

// index returns the flat cell index
func (o *cellGrid) index(cx, cy, cz int) int {
	return cx + cy*o.ncell[0] + cz*o.ncell[0]*o.ncell[1]
}

// clamp limits cell coordinate c to [0, ncell-1]
func (o *cellGrid) clamp(c, r int) int {
	if c < 0 {
		return 0
	}
	if c >= o.ncell[r] {
		return o.ncell[r] - 1
	}
	return c
}

// searchPairs returns, for each point, all other points strictly closer than
// radius, by scanning the 27 cells around each point. With material=true,
// coincident points cause an error; otherwise coincident pairs are skipped
func searchPairs(x []float64, n int, radius float64, material bool) (rows [][]int, err error) {
	g := newCellGrid(x, n, radius)
	r2 := radius * radius
	rows = make([][]int, n)
	for i := 0; i < n; i++ {
		px, py, pz := x[3*i], x[3*i+1], x[3*i+2]
		cx, cy, cz := g.coords(px, py, pz)
		for kz := cz - 1; kz <= cz+1; kz++ {
			if kz < 0 || kz >= g.ncell[2] {
				continue
			}
			for ky := cy - 1; ky <= cy+1; ky++ {
				if ky < 0 || ky >= g.ncell[1] {
					continue
				}
				for kx := cx - 1; kx <= cx+1; kx++ {
					if kx < 0 || kx >= g.ncell[0] {
						continue
					}
					for _, j := range g.cells[g.index(kx, ky, kz)] {
						if j == i {
							continue
						}
						dx := x[3*j] - px
						dy := x[3*j+1] - py
						dz := x[3*j+2] - pz
						d2 := dx*dx + dy*dy + dz*dz
						if d2 >= r2 {
							continue
						}
						if d2 == 0 {
							if material {
								return nil, chk.Err("neighbors: points %d and %d coincide\n", i, j)
							}
							continue
						}
						rows[i] = append(rows[i], j)
					}
				}
			}
		}
	}
	return
}
