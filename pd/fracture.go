// Copyright 2016 The Gopd Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package pd

import (
	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/utl"
)

// Fracture holds the bond failure state of a domain. Broken flags are aligned
// with the Idx array of the bond structure and are never cleared; a broken bond
// stays broken
type Fracture struct {
	Broken []bool // [nbonds] broken flags; both directions of a bond carry the same flag value
	Nofail []bool // [npoints] points whose bonds never break by stretching
	Nint   []int  // [npoints] number of intact bonds; refreshed by the force pass
}

// NewFracture allocates the failure state with all bonds intact
func NewFracture(bonds *Neighbors, n int) (o *Fracture) {
	o = &Fracture{
		Broken: make([]bool, bonds.Ptr[n]),
		Nofail: make([]bool, n),
		Nint:   make([]int, n),
	}
	for i := 0; i < n; i++ {
		o.Nint[i] = bonds.Degree(i)
	}
	return
}

// SetNofail marks all points inside the box [xmin,xmax] as no-fail points.
// A bond with a no-fail point at either end never breaks by stretching
func (o *Domain) SetNofail(xmin, xmax []float64) (err error) {
	if o.Frac == nil {
		return chk.Err("no-fail zones require fracture to be enabled\n")
	}
	if len(xmin) != 3 || len(xmax) != 3 {
		return chk.Err("no-fail box corners must have 3 components. len(xmin)=%d and len(xmax)=%d are invalid\n", len(xmin), len(xmax))
	}
	for i := 0; i < o.N; i++ {
		inside := true
		for r := 0; r < 3; r++ {
			if o.X[3*i+r] < xmin[r] || o.X[3*i+r] > xmax[r] {
				inside = false
				break
			}
		}
		if inside {
			o.Frac.Nofail[i] = true
		}
	}
	return
}

// AddPrenotch breaks all bonds whose reference segment crosses the rectangle
//
//   {p0 + a⋅v1 + b⋅v2 : 0 ≤ a ≤ 1, 0 ≤ b ≤ 1}
//
// The damage field is refreshed so the cut is visible before any force pass
func (o *Domain) AddPrenotch(p0, v1, v2 []float64) (err error) {
	if o.Frac == nil {
		return chk.Err("pre-notches require fracture to be enabled\n")
	}
	if len(p0) != 3 || len(v1) != 3 || len(v2) != 3 {
		return chk.Err("pre-notch data must have 3 components. len(p0)=%d, len(v1)=%d and len(v2)=%d are invalid\n", len(p0), len(v1), len(v2))
	}

	// plane normal and Gram matrix of the edge vectors
	nvec := make([]float64, 3)
	utl.Cross3d(nvec, v1, v2)
	g11 := dot3(v1, v1)
	g12 := dot3(v1, v2)
	g22 := dot3(v2, v2)
	det := g11*g22 - g12*g12
	if det <= 0 {
		return chk.Err("pre-notch edge vectors are parallel. v1=%v and v2=%v are invalid\n", v1, v2)
	}

	// cut crossing bonds
	xi := make([]float64, 3)
	xj := make([]float64, 3)
	for i := 0; i < o.N; i++ {
		copy(xi, o.X[3*i:3*i+3])
		for k := o.Bonds.Ptr[i]; k < o.Bonds.Ptr[i+1]; k++ {
			if o.Frac.Broken[k] {
				continue
			}
			j := o.Bonds.Idx[k]
			copy(xj, o.X[3*j:3*j+3])
			if segCrossesRect(xi, xj, p0, v1, v2, nvec, g11, g12, g22, det) {
				o.Frac.Broken[k] = true
			}
		}
	}
	o.refreshDamage()
	return
}

// refreshDamage recomputes the intact bond counters and the damage field from
// the broken flags
func (o *Domain) refreshDamage() {
	for i := 0; i < o.N; i++ {
		deg := o.Bonds.Degree(i)
		nbroken := 0
		for k := o.Bonds.Ptr[i]; k < o.Bonds.Ptr[i+1]; k++ {
			if o.Frac.Broken[k] {
				nbroken++
			}
		}
		o.Frac.Nint[i] = deg - nbroken
		if deg > 0 {
			o.Dmg[i] = float64(nbroken) / float64(deg)
		}
	}
}

// auxiliary ////////////////////////////////////////////////////////////////////////////////////////

// dot3 returns the dot product of two 3-component vectors
func dot3(u, v []float64) float64 {
	return u[0]*v[0] + u[1]*v[1] + u[2]*v[2]
}

// segCrossesRect tells whether the segment xi--xj crosses the closed rectangle
// {p0 + a⋅v1 + b⋅v2, a,b ∈ [0,1]}. Segments lying in the plane of the rectangle
// do not count as crossing
func segCrossesRect(xi, xj, p0, v1, v2, nvec []float64, g11, g12, g22, det float64) bool {

	// signed distances to the plane
	di := (xi[0]-p0[0])*nvec[0] + (xi[1]-p0[1])*nvec[1] + (xi[2]-p0[2])*nvec[2]
	dj := (xj[0]-p0[0])*nvec[0] + (xj[1]-p0[1])*nvec[1] + (xj[2]-p0[2])*nvec[2]
	if di*dj > 0 || di == dj {
		return false
	}

	// intersection point relative to p0
	t := di / (di - dj)
	var q [3]float64
	for r := 0; r < 3; r++ {
		q[r] = xi[r] + t*(xj[r]-xi[r]) - p0[r]
	}

	// coordinates in the (v1,v2) basis
	b1 := q[0]*v1[0] + q[1]*v1[1] + q[2]*v1[2]
	b2 := q[0]*v2[0] + q[1]*v2[1] + q[2]*v2[2]
	a := (b1*g22 - b2*g12) / det
	b := (b2*g11 - b1*g12) / det
	return a >= 0 && a <= 1 && b >= 0 && b <= 1
}
