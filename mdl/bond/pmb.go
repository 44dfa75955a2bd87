// Copyright 2016 The Gopd Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package bond

import (
	"math"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/fun/dbf"
)

// PMB implements the prototype microelastic brittle model. The force density along
// a bond grows linearly with the bond stretch. The "lin-pmb" variant evaluates the
// linearised stretch along the reference bond direction.
type PMB struct {

	// parameters
	δ  float64 // horizon radius
	K  float64 // bulk modulus
	Gc float64 // critical energy release rate

	// derived
	c    float64 // micromodulus 18K/(πδ⁴)
	data Data    // capabilities and constants
}

// add model to factory
func init() {
	allocators["pmb"] = func() Model { return new(PMB) }
	allocators["lin-pmb"] = func() Model {
		m := new(PMB)
		m.data.Linearized = true
		return m
	}
}

// Init initialises model
func (o *PMB) Init(prms dbf.Params) (err error) {

	// parameters
	var sc float64
	for _, p := range prms {
		switch p.N {
		case "delta":
			o.δ = p.V
		case "K":
			o.K = p.V
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
			return chk.Err("pmb: parameter named %q is incorrect\n", p.N)
		}
	}

	// check
	if o.δ <= 0 {
		return chk.Err("pmb: horizon radius 'delta' must be positive. delta=%g is invalid\n", o.δ)
	}
	if o.K <= 0 {
		return chk.Err("pmb: bulk modulus 'K' must be positive. K=%g is invalid\n", o.K)
	}

	// derived
	o.c = 18.0 * o.K / (math.Pi * math.Pow(o.δ, 4.0))
	o.data.Delta = o.δ
	o.data.K = o.K
	err = o.data.setFracture(sc, o.Gc, "pmb")
	if err != nil {
		return
	}
	return o.data.setThermal("pmb")
}

// GetPrms gets (an example) of parameters
func (o *PMB) GetPrms() dbf.Params {
	return []*dbf.P{
		&dbf.P{N: "delta", V: 0.25},
		&dbf.P{N: "K", V: 1.0},
		&dbf.P{N: "Gc", V: 1e-4},
	}
}

// Data returns capabilities and derived constants
func (o *PMB) Data() *Data {
	return &o.data
}

// C returns the micromodulus
func (o *PMB) C() float64 {
	return o.c
}

// ForceCoeff returns the force density coefficient of one bond
func (o *PMB) ForceCoeff(s, vol float64) float64 {
	return o.c * s * vol
}

// Energy returns the strain energy density contribution of one bond
func (o *PMB) Energy(ξ, s, vol float64) float64 {
	return 0.25 * o.c * s * s * ξ * vol
}
