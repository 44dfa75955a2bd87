// Copyright 2016 The Gopd Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package out

import (
	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/plt"
)

// PlotAlongLine plots the profile of a named quantity along a straight segment.
// The horizontal axis is the distance from a. Start must be called first
//   key  -- quantity key; e.g. "w" or "dmg". See Val
//   a, b -- coordinates of the ends of the segment
//   tol  -- distance from the segment to catch points
//   args -- plot arguments; may be nil
func PlotAlongLine(key string, a, b []float64, tol float64, args *plt.A) {
	pts := AlongLine(a, b, tol)
	if len(pts) < 1 {
		chk.Panic("there are no points near the line from %v to %v", a, b)
	}
	if args == nil {
		args = &plt.A{C: "b", M: ".", Ls: "-"}
	}
	plt.Plot(GetDist(pts), Vals(key, pts), args)
	plt.Gll("$d$", GetTexLabel(key, ""), nil)
}

// PlotDamage plots the damage profile along a straight segment
func PlotDamage(a, b []float64, tol float64, args *plt.A) {
	PlotAlongLine("dmg", a, b, tol, args)
}

// PlotEnergy plots the strain energy density profile along a straight segment
func PlotEnergy(a, b []float64, tol float64, args *plt.A) {
	PlotAlongLine("w", a, b, tol, args)
}
