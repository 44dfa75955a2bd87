// Copyright 2016 The Gopd Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package ana implements analytical and reference solutions
package ana

import "math"

// tolerance added to the horizon when collecting bonds; the same rule used by
// the bond search
const tolδ = 1e-14

// UniformStretch computes reference bond sums at points of a particle cloud
// under the displacement field
//
//   u(x) = s0 ⋅ x
//
// Every bond then carries the stretch s0 and deformed bond directions coincide
// with reference directions, so the sums hold for both the full and the
// linearised kinematics. The sums scan the whole cloud with the same horizon
// rule used by the bond search, hence they match the evaluated quantities point
// by point, including points near the boundary
type UniformStretch struct {
	Delta float64 // horizon radius
	S0    float64 // stretch magnitude
}

// WeightedVolume returns m = Σ ω(ξ)⋅ξ²⋅vol at point p, with the inverse-distance
// influence function ω(ξ) = 1/ξ
func (o UniformStretch) WeightedVolume(x, vol []float64, p int) (m float64) {
	o.scan(x, vol, p, func(ξ, v float64) {
		m += ξ * v
	})
	return
}

// Dilatation returns θ at point p; for interior points θ = 3⋅s0
func (o UniformStretch) Dilatation(x, vol []float64, p int) (θ float64) {
	m := o.WeightedVolume(x, vol, p)
	if m == 0 {
		return
	}
	o.scan(x, vol, p, func(ξ, v float64) {
		θ += 3.0 / m * o.S0 * ξ * v
	})
	return
}

// EnergyPMB returns the strain energy density at point p for a pairwise model
// with micro-modulus c
func (o UniformStretch) EnergyPMB(c float64, x, vol []float64, p int) (W float64) {
	o.scan(x, vol, p, func(ξ, v float64) {
		W += 0.25 * c * o.S0 * o.S0 * ξ * v
	})
	return
}

// EnergyLPS returns the strain energy density at point p for the linear
// peridynamic solid with bulk modulus kk and shear modulus gg
func (o UniformStretch) EnergyLPS(kk, gg float64, x, vol []float64, p int) (W float64) {
	m := o.WeightedVolume(x, vol, p)
	θ := o.Dilatation(x, vol, p)
	nb := 0
	o.scan(x, vol, p, func(ξ, v float64) {
		nb++
	})
	if nb == 0 {
		return
	}
	θcoef := 3.0*kk - 5.0*gg
	scoef := 15.0 * gg
	o.scan(x, vol, p, func(ξ, v float64) {
		W += 0.5*θcoef/3.0*θ*θ/float64(nb) + 0.5*scoef/m*(1.0/ξ)*o.S0*o.S0*ξ*ξ*v
	})
	return
}

// EnergyDensity returns the continuum strain energy density of an isotropic
// solid under the uniform dilatational strain s0
//
//   W = (9/2) ⋅ K ⋅ s0²
func (o UniformStretch) EnergyDensity(kk float64) float64 {
	return 4.5 * kk * o.S0 * o.S0
}

// scan visits all points within the horizon of point p, in ascending index
// order, passing the reference distance and the volume of each neighbor
func (o UniformStretch) scan(x, vol []float64, p int, visit func(ξ, v float64)) {
	n := len(vol)
	r2 := (o.Delta + tolδ) * (o.Delta + tolδ)
	for q := 0; q < n; q++ {
		if q == p {
			continue
		}
		dx := x[3*q] - x[3*p]
		dy := x[3*q+1] - x[3*p+1]
		dz := x[3*q+2] - x[3*p+2]
		d2 := dx*dx + dy*dy + dz*dz
		if d2 > 0 && d2 < r2 {
			visit(math.Sqrt(d2), vol[q])
		}
	}
}
