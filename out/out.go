// Copyright 2016 The Gopd Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package out implements the access to results of peridynamic analyses for
// inspections and plotting
package out

import (
	"math"
	"sort"

	"github.com/cpmech/gopd/pd"
	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/gm"
	"github.com/cpmech/gosl/utl"
)

// constants
var (
	TolC = 1e-8 // tolerance to compare x-y-z coordinates
	Ndiv = 20   // bins n-division
)

// Point holds the id and reference coordinates of one point of the cloud
type Point struct {
	Id   int       // point id
	X    []float64 // reference coordinates
	Dist float64   // distance from the first end of a line, when selected by AlongLine
}

// Points is a set of points
type Points []*Point

// functions to implement Sort interface
func (o Points) Len() int           { return len(o) }
func (o Points) Swap(i, j int)      { o[i], o[j] = o[j], o[i] }
func (o Points) Less(i, j int) bool { return o[i].Dist < o[j].Dist }

// Ids returns the ids of all points in this set
func (o Points) Ids() (ids []int) {
	ids = make([]int, len(o))
	for k, p := range o {
		ids[k] = p.Id
	}
	return
}

// Global variables
var (

	// data set by Start
	Analysis *pd.Main   // the analysis structure
	Dom      *pd.Domain // [from Analysis] particle cloud and bond structure
	PtBins   gm.Bins    // bins for locating points
	Xmin     []float64  // [3] minimum reference coordinates among all points
	Xmax     []float64  // [3] maximum reference coordinates among all points
)

// Start (re)starts the handling of results of an existing analysis. The bins to
// locate points are built over the reference coordinates; thus queries such as
// AtPoint and AlongLine use reference coordinates, even after ApplyStretch
func Start(m *pd.Main) {

	// analysis structure
	if m == nil || m.Dom == nil {
		chk.Panic("an analysis with allocated domain is required")
	}
	Analysis = m
	Dom = m.Dom

	// limits
	Xmin = []float64{Dom.X[0], Dom.X[1], Dom.X[2]}
	Xmax = []float64{Dom.X[0], Dom.X[1], Dom.X[2]}
	for i := 1; i < Dom.N; i++ {
		for j := 0; j < 3; j++ {
			Xmin[j] = utl.Min(Xmin[j], Dom.X[3*i+j])
			Xmax[j] = utl.Max(Xmax[j], Dom.X[3*i+j])
		}
	}

	// bins
	δ := TolC * 2
	xi := []float64{Xmin[0] - δ, Xmin[1] - δ, Xmin[2] - δ}
	xf := []float64{Xmax[0] + δ, Xmax[1] + δ, Xmax[2] + δ}
	err := PtBins.Init(xi, xf, Ndiv)
	if err != nil {
		chk.Panic("cannot initialise bins for points: %v", err)
	}

	// add points to bins
	for i := 0; i < Dom.N; i++ {
		err = PtBins.Append(Dom.X[3*i:3*i+3], i)
		if err != nil {
			chk.Panic("cannot append point %d to bins: %v", i, err)
		}
	}
}

// AtPoint returns the id of the point with reference coordinates x.
// returns -1 if there is no point within TolC of x
func AtPoint(x []float64) int {
	id := PtBins.Find(x)
	if id < 0 {
		return -1
	}
	for j := 0; j < 3; j++ {
		if math.Abs(Dom.X[3*id+j]-x[j]) > TolC {
			return -1
		}
	}
	return id
}

// AlongLine returns the points near the straight segment from a to b, sorted by
// their distance from a
//   tol -- distance from the segment to catch points; e.g. half the cloud spacing
func AlongLine(a, b []float64, tol float64) (pts Points) {
	ids := PtBins.FindAlongSegment(a, b, tol)
	pts = make([]*Point, len(ids))
	for k, i := range ids {
		x := Dom.X[3*i : 3*i+3]
		pts[k] = &Point{i, x, dist3(x, a)}
	}
	sort.Sort(pts)
	return
}

// Val returns the current value of a named quantity at point i
//   key -- "ux", "uy", "uz", "fx", "fy", "fz", "w", "m", "theta",
//          "dmg", "vol", "temp" or "tdot"
func Val(key string, i int) float64 {
	switch key {
	case "ux":
		return Dom.U[3*i]
	case "uy":
		return Dom.U[3*i+1]
	case "uz":
		return Dom.U[3*i+2]
	case "fx":
		return Dom.F[3*i]
	case "fy":
		return Dom.F[3*i+1]
	case "fz":
		return Dom.F[3*i+2]
	case "w":
		return Dom.W[i]
	case "m":
		return Dom.M[i]
	case "theta":
		return Dom.Tht[i]
	case "dmg":
		return Dom.Dmg[i]
	case "vol":
		return Dom.Vol[i]
	case "temp":
		return Dom.Temp[i]
	case "tdot":
		return Dom.Tdot[i]
	}
	chk.Panic("quantity key %q is invalid", key)
	return 0
}

// Vals collects the current values of a named quantity at a set of points
func Vals(key string, pts Points) []float64 {
	res := make([]float64, len(pts))
	for k, p := range pts {
		res[k] = Val(key, p.Id)
	}
	return res
}

// GetDist collects the distances stored in a set of points selected by AlongLine
func GetDist(pts Points) []float64 {
	res := make([]float64, len(pts))
	for k, p := range pts {
		res[k] = p.Dist
	}
	return res
}

// auxiliary /////////////////////////////////////////////////////////////////////////////////////////

func dist3(x, y []float64) float64 {
	dx := x[0] - y[0]
	dy := x[1] - y[1]
	dz := x[2] - y[2]
	return math.Sqrt(dx*dx + dy*dy + dz*dz)
}
