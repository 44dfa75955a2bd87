// Copyright 2016 The Gopd Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package bond

import (
	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/fun/dbf"
)

// LPS implements the linear peridynamic solid model. Forces carry a dilatational
// part weighted by 3K−5G and a deviatoric part weighted by 15G; both involve the
// weighted volumes and dilatations of the two neighborhoods. The "lin-lps" variant
// evaluates the linearised stretch along the reference bond direction, including
// inside the dilatation.
type LPS struct {

	// parameters
	δ  float64 // horizon radius
	K  float64 // bulk modulus
	G  float64 // shear modulus
	Gc float64 // critical energy release rate

	// derived
	θcoef float64 // dilatational coefficient 3K − 5G
	scoef float64 // deviatoric coefficient 15G
	data  Data    // capabilities and constants
}

// add model to factory
func init() {
	allocators["lps"] = func() Model {
		m := new(LPS)
		m.data.StateBased = true
		return m
	}
	allocators["lin-lps"] = func() Model {
		m := new(LPS)
		m.data.StateBased = true
		m.data.Linearized = true
		return m
	}
}

// Init initialises model
func (o *LPS) Init(prms dbf.Params) (err error) {

	// parameters
	var sc float64
	for _, p := range prms {
		switch p.N {
		case "delta":
			o.δ = p.V
		case "K":
			o.K = p.V
		case "G":
			o.G = p.V
		case "Gc":
			o.Gc = p.V
		case "sc":
			sc = p.V
		case "alp":
			o.data.Alpha = p.V
			o.data.HasTexp = true
		case "Tref":
			o.data.Tref = p.V
		case "kappa":
			o.data.Kappa = p.V
		case "rho":
			o.data.Rho = p.V
		case "cp":
			o.data.Cp = p.V
		default:
			return chk.Err("lps: parameter named %q is incorrect\n", p.N)
		}
	}

	// check
	if o.δ <= 0 {
		return chk.Err("lps: horizon radius 'delta' must be positive. delta=%g is invalid\n", o.δ)
	}
	if o.K <= 0 {
		return chk.Err("lps: bulk modulus 'K' must be positive. K=%g is invalid\n", o.K)
	}
	if o.G <= 0 {
		return chk.Err("lps: shear modulus 'G' must be positive. G=%g is invalid\n", o.G)
	}

	// derived
	o.θcoef = 3.0*o.K - 5.0*o.G
	o.scoef = 15.0 * o.G
	o.data.Delta = o.δ
	o.data.K = o.K
	err = o.data.setFracture(sc, o.Gc, "lps")
	if err != nil {
		return
	}
	return o.data.setThermal("lps")
}

// GetPrms gets (an example) of parameters
func (o *LPS) GetPrms() dbf.Params {
	return []*dbf.P{
		&dbf.P{N: "delta", V: 0.25},
		&dbf.P{N: "K", V: 1.0},
		&dbf.P{N: "G", V: 0.5},
	}
}

// Data returns capabilities and derived constants
func (o *LPS) Data() *Data {
	return &o.data
}

// Influence returns the influence function ω(ξ) = 1/ξ
func (o *LPS) Influence(ξ float64) float64 {
	return 1.0 / ξ
}

// WeightedVolume returns the contribution of one bond to the weighted volume m
func (o *LPS) WeightedVolume(ξ, vol float64) float64 {
	return o.Influence(ξ) * ξ * ξ * vol
}

// Dilatation returns the contribution of one bond to the dilatation θ
func (o *LPS) Dilatation(ξ, s, vol, m float64) float64 {
	return 3.0 / m * o.Influence(ξ) * s * ξ * ξ * vol
}

// ForceCoeff returns the force density coefficient of one bond
func (o *LPS) ForceCoeff(ξ, s, mi, mj, θi, θj, vol float64) float64 {
	return (o.θcoef*(θi/mi+θj/mj) + o.scoef*s*(1.0/mi+1.0/mj)) * o.Influence(ξ) * ξ * vol
}

// Energy returns the strain energy density contribution of one bond. The
// dilatational part is spread evenly over the nbonds bonds of the point.
func (o *LPS) Energy(ξ, s, mi, θi, vol float64, nbonds int) float64 {
	return 0.5*o.θcoef/3.0*θi*θi/float64(nbonds) + 0.5*o.scoef/mi*o.Influence(ξ)*s*s*ξ*ξ*vol
}
