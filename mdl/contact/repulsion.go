// Copyright 2016 The Gopd Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package contact

import (
	"math"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/fun/dbf"
)

// Repulsion implements a normal repulsion contact model. The force density is
// proportional to the overlap R_c − r and pushes the pair apart; the coefficient
// is negative for r < R_c.
type Repulsion struct {

	// parameters
	δ  float64 // horizon radius setting the stiffness scale
	Rc float64 // contact radius
	K  float64 // contact bulk modulus

	// derived
	c float64 // micromodulus 18K/(πδ⁴)
}

// add model to factory
func init() {
	allocators["repulsion"] = func() Model { return new(Repulsion) }
}

// Init initialises model
func (o *Repulsion) Init(prms dbf.Params) (err error) {
	for _, p := range prms {
		switch p.N {
		case "delta":
			o.δ = p.V
		case "Rc":
			o.Rc = p.V
		case "K":
			o.K = p.V
		default:
			return chk.Err("repulsion: parameter named %q is incorrect\n", p.N)
		}
	}
	if o.δ <= 0 {
		return chk.Err("repulsion: horizon radius 'delta' must be positive. delta=%g is invalid\n", o.δ)
	}
	if o.Rc <= 0 {
		return chk.Err("repulsion: contact radius 'Rc' must be positive. Rc=%g is invalid\n", o.Rc)
	}
	if o.K <= 0 {
		return chk.Err("repulsion: bulk modulus 'K' must be positive. K=%g is invalid\n", o.K)
	}
	o.c = 18.0 * o.K / (math.Pi * math.Pow(o.δ, 4.0))
	return
}

// GetPrms gets (an example) of parameters
func (o *Repulsion) GetPrms() dbf.Params {
	return []*dbf.P{
		&dbf.P{N: "delta", V: 0.25},
		&dbf.P{N: "Rc", V: 0.1},
		&dbf.P{N: "K", V: 1.0},
	}
}

// Radius returns the contact search radius
func (o *Repulsion) Radius() float64 {
	return o.Rc
}

// ForceCoeff returns the force density coefficient at current distance r
func (o *Repulsion) ForceCoeff(r, vol float64) float64 {
	return 15.0 * o.c * (r - o.Rc) / o.δ * vol
}
