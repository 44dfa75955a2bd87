// Copyright 2016 The Gopd Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package bond implements peridynamic bond force models
/*
 *               |   Force state along a bond i--j
 *  ==========================================================
 *               |
 *   BondBased   | f = c ⋅ s ⋅ vol_j
 *               | pairwise micromodulus c from bulk modulus
 *               |
 *  ----------------------------------------------------------
 *               |
 *   StateBased  | f = [θc(θi/mi + θj/mj) + sc⋅s(1/mi + 1/mj)]
 *               |     ⋅ ω(ξ) ⋅ ξ ⋅ vol_j
 *               | needs weighted volume m and dilatation θ
 *               | computed in a pass before forces
 */
package bond

import (
	"math"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/fun/dbf"
)

// Tkind indicates how temperature enters the bond stretch
type Tkind int

const (
	TempIndependent Tkind = iota // temperature plays no role
	TempDependent                // stretch shifted by α⋅(Tavg − Tref); temperatures given
	TempCoupled                  // as TempDependent, plus bond heat conduction pass
)

// Data holds capabilities and derived constants of an initialised bond model.
// All lengths and moduli refer to a 3D analysis.
type Data struct {

	// capabilities
	StateBased bool // weighted volume and dilatation must be computed before forces
	Linearized bool // use linearised stretch and reference bond direction

	// parameters
	Delta float64 // horizon radius δ
	K     float64 // bulk modulus

	// fracture
	HasFracture    bool    // critical stretch is available
	Sc             float64 // critical bond stretch s_c
	BondBreakCoeff float64 // (1+s_c)²

	// thermal
	Alpha   float64 // linear thermal expansion coefficient α
	Tref    float64 // reference temperature
	Kappa   float64 // thermal conductivity κ
	Rho     float64 // density ρ
	Cp      float64 // specific heat capacity c_p
	Kp      float64 // bond micro-conductivity 6κ/(πδ⁴)
	HasTexp bool    // α was given
	HasCond bool    // κ, ρ and c_p were given
}

// Model defines the interface for bond force models
type Model interface {
	Init(prms dbf.Params) error // initialises model
	GetPrms() dbf.Params        // gets (an example) of parameters
	Data() *Data                // returns capabilities and derived constants
}

// BondBased defines pairwise models whose force depends on the single bond only
type BondBased interface {
	ForceCoeff(s, vol float64) float64 // force density coefficient along the bond
	Energy(ξ, s, vol float64) float64  // strain energy density contribution of one bond
}

// StateBased defines models whose force depends on the deformation state of both
// neighborhoods; the engine computes m and θ in a first pass
type StateBased interface {
	Influence(ξ float64) float64                          // influence function ω(ξ)
	WeightedVolume(ξ, vol float64) float64                // contribution to m
	Dilatation(ξ, s, vol, m float64) float64              // contribution to θ
	ForceCoeff(ξ, s, mi, mj, θi, θj, vol float64) float64 // force density coefficient along the bond
	Energy(ξ, s, mi, θi, vol float64, nbonds int) float64 // strain energy density contribution of one bond
}

// New returns new bond model
func New(name string) (model Model, err error) {
	allocator, ok := allocators[name]
	if !ok {
		return nil, chk.Err("model %q is not available in 'bond' database", name)
	}
	return allocator(), nil
}

// allocators holds all available bond models; modelname => allocator
var allocators = map[string]func() Model{}

// auxiliary ////////////////////////////////////////////////////////////////////////////////////////

// setFracture records the critical stretch, either given directly ("sc") or derived
// from the critical energy release rate: s_c = √(5⋅Gc/(9⋅K⋅δ))
func (o *Data) setFracture(sc, Gc float64, name string) error {
	if sc < 0 || Gc < 0 {
		return chk.Err("%s: fracture parameters must be non-negative. sc=%g and Gc=%g are invalid\n", name, sc, Gc)
	}
	if sc == 0 && Gc > 0 {
		sc = math.Sqrt(5.0 * Gc / (9.0 * o.K * o.Delta))
	}
	if sc > 0 {
		o.HasFracture = true
		o.Sc = sc
		o.BondBreakCoeff = (1.0 + sc) * (1.0 + sc)
	}
	return nil
}

// setThermal checks thermal constants and computes the bond micro-conductivity
func (o *Data) setThermal(name string) error {
	if o.Alpha < 0 || o.Kappa < 0 || o.Rho < 0 || o.Cp < 0 {
		return chk.Err("%s: thermal parameters must be non-negative. alp=%g, kappa=%g, rho=%g, cp=%g\n", name, o.Alpha, o.Kappa, o.Rho, o.Cp)
	}
	if o.Kappa > 0 {
		if o.Rho <= 0 || o.Cp <= 0 {
			return chk.Err("%s: heat conduction needs positive 'rho' and 'cp'. rho=%g and cp=%g are invalid\n", name, o.Rho, o.Cp)
		}
		o.Kp = 6.0 * o.Kappa / (math.Pi * math.Pow(o.Delta, 4.0))
		o.HasCond = true
	}
	return nil
}
