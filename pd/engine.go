// Copyright 2016 The Gopd Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package pd

import (
	"math"

	"github.com/cpmech/gopd/mdl/bond"
	"github.com/cpmech/gopd/mdl/contact"
	"github.com/cpmech/gopd/par"
	"github.com/cpmech/gosl/chk"
)

// evaluation phases
const (
	phIdle   = iota // waiting for Initialize
	phInit          // accumulators cleared; m and θ ready
	phForce         // force densities accumulated
	phEnergy        // energy densities accumulated
)

// Engine evaluates force and energy densities over a domain. The calling
// sequence of one evaluation cycle is
//
//   Initialize → ComputeForce → ComputeEnergy → Reset
//
// ComputeHeat may run any time after Initialize and does not advance the cycle.
// Passes visit one point per kernel call and write only to the slots owned by
// that point, so any runner may execute them concurrently
type Engine struct {

	// input
	Dom *Domain    // domain
	Run par.Runner // parallel runner

	// resolved at construction
	bb     bond.BondBased  // pairwise force model; nil for state-based models
	sb     bond.StateBased // state-based force model; nil for pairwise models
	cm     contact.Model   // contact model; nil means no contact
	tshift bool            // stretches are shifted by the thermal expansion

	phase int // current phase
}

// NewEngine returns an engine with the model capabilities resolved
//  Input:
//   dom    -- domain with cloud, model and bond structure
//   cm     -- contact model; may be nil
//   runner -- parallel runner for the passes
func NewEngine(dom *Domain, cm contact.Model, runner par.Runner) (o *Engine, err error) {
	if dom == nil {
		return nil, chk.Err("engine: a domain is required\n")
	}
	if runner == nil {
		return nil, chk.Err("engine: a parallel runner is required\n")
	}
	o = &Engine{Dom: dom, Run: runner, cm: cm}
	if dom.Data.StateBased {
		sb, ok := dom.Mdl.(bond.StateBased)
		if !ok {
			return nil, chk.Err("engine: model is flagged state-based but does not implement the state-based interface\n")
		}
		o.sb = sb
	} else {
		bb, ok := dom.Mdl.(bond.BondBased)
		if !ok {
			return nil, chk.Err("engine: model is flagged bond-based but does not implement the bond-based interface\n")
		}
		o.bb = bb
	}
	o.tshift = dom.Tkind != bond.TempIndependent
	return
}

// Initialize clears the force, energy and rate accumulators and, for state-based
// models, computes the weighted volumes and dilatations over intact bonds
func (o *Engine) Initialize() (err error) {
	if o.phase != phIdle {
		return chk.Err("Initialize can only run from the idle phase; call Reset first\n")
	}
	d := o.Dom
	o.Run.For(d.N, func(i int) {
		d.F[3*i], d.F[3*i+1], d.F[3*i+2] = 0, 0, 0
		d.W[i] = 0
		d.Tdot[i] = 0
	})
	if o.sb != nil {
		o.Run.For(d.N, func(i int) { d.M[i] = o.weightedVolumeOf(i) })
		o.Run.For(d.N, func(i int) { d.Tht[i] = o.dilatationOf(i) })
	}
	o.phase = phInit
	return
}

// ComputeForce accumulates the bond force densities, breaking over-stretched
// bonds on the way, and then adds short-range contact forces if a contact model
// is present. Bonds broken in this pass contribute no force
func (o *Engine) ComputeForce() (err error) {
	if o.phase != phInit {
		return chk.Err("ComputeForce must run right after Initialize\n")
	}
	d := o.Dom
	o.Run.For(d.N, o.forcePoint)
	if o.cm != nil {
		err = o.contactPass()
		if err != nil {
			return
		}
	}
	o.phase = phForce
	return
}

// ComputeEnergy accumulates the strain energy densities over intact bonds and
// returns the total strain energy Φ = Σ W⋅vol
func (o *Engine) ComputeEnergy() (Φ float64, err error) {
	if o.phase != phForce {
		return 0, chk.Err("ComputeEnergy must run right after ComputeForce\n")
	}
	d := o.Dom
	o.Run.For(d.N, o.energyPoint)
	Φ = o.Run.ReduceSum(d.N, func(i int) float64 { return d.W[i] * d.Vol[i] })
	o.phase = phEnergy
	return
}

// ComputeHeat fills the temperature rates from bond heat conduction over intact
// bonds. The evaluation cycle is not advanced
func (o *Engine) ComputeHeat() (err error) {
	if o.Dom.Tkind != bond.TempCoupled {
		return chk.Err("ComputeHeat requires the coupled thermal kind\n")
	}
	if o.phase == phIdle {
		return chk.Err("ComputeHeat must run after Initialize\n")
	}
	d := o.Dom
	coef := d.Data.Kp / (d.Data.Rho * d.Data.Cp)
	o.Run.For(d.N, func(i int) {
		var sum float64
		for k := d.Bonds.Ptr[i]; k < d.Bonds.Ptr[i+1]; k++ {
			if d.Frac != nil && d.Frac.Broken[k] {
				continue
			}
			j := d.Bonds.Idx[k]
			ξx := d.X[3*j] - d.X[3*i]
			ξy := d.X[3*j+1] - d.X[3*i+1]
			ξz := d.X[3*j+2] - d.X[3*i+2]
			ξ := math.Sqrt(ξx*ξx + ξy*ξy + ξz*ξz)
			sum += (d.Temp[j] - d.Temp[i]) / ξ * d.Vol[j]
		}
		d.Tdot[i] = coef * sum
	})
	return
}

// Reset returns the engine to the idle phase so another cycle may start. Broken
// bonds are preserved; accumulators are cleared by the next Initialize
func (o *Engine) Reset() {
	o.phase = phIdle
}

// auxiliary ////////////////////////////////////////////////////////////////////////////////////////

// stretch returns the bond stretch of the directed bond i--j, including the
// thermal expansion shift
func (o *Engine) stretch(i, j int, ξ, r, dotξη float64) (s float64) {
	if o.Dom.Data.Linearized {
		s = dotξη / (ξ * ξ)
	} else {
		s = (r - ξ) / ξ
	}
	if o.tshift {
		s -= o.Dom.Data.Alpha * (0.5*(o.Dom.Temp[i]+o.Dom.Temp[j]) - o.Dom.Data.Tref)
	}
	return
}

// weightedVolumeOf returns m = Σ ω(ξ)⋅ξ²⋅vol over the intact bonds of point i
func (o *Engine) weightedVolumeOf(i int) (m float64) {
	d := o.Dom
	for k := d.Bonds.Ptr[i]; k < d.Bonds.Ptr[i+1]; k++ {
		if d.Frac != nil && d.Frac.Broken[k] {
			continue
		}
		j := d.Bonds.Idx[k]
		ξx := d.X[3*j] - d.X[3*i]
		ξy := d.X[3*j+1] - d.X[3*i+1]
		ξz := d.X[3*j+2] - d.X[3*i+2]
		ξ := math.Sqrt(ξx*ξx + ξy*ξy + ξz*ξz)
		m += o.sb.WeightedVolume(ξ, d.Vol[j])
	}
	return
}

// dilatationOf returns θ accumulated over the intact bonds of point i
func (o *Engine) dilatationOf(i int) (θ float64) {
	d := o.Dom
	for k := d.Bonds.Ptr[i]; k < d.Bonds.Ptr[i+1]; k++ {
		if d.Frac != nil && d.Frac.Broken[k] {
			continue
		}
		j := d.Bonds.Idx[k]
		ξx := d.X[3*j] - d.X[3*i]
		ξy := d.X[3*j+1] - d.X[3*i+1]
		ξz := d.X[3*j+2] - d.X[3*i+2]
		ηx := d.U[3*j] - d.U[3*i]
		ηy := d.U[3*j+1] - d.U[3*i+1]
		ηz := d.U[3*j+2] - d.U[3*i+2]
		rx, ry, rz := ξx+ηx, ξy+ηy, ξz+ηz
		ξ := math.Sqrt(ξx*ξx + ξy*ξy + ξz*ξz)
		r := math.Sqrt(rx*rx + ry*ry + rz*rz)
		s := o.stretch(i, j, ξ, r, ξx*ηx+ξy*ηy+ξz*ηz)
		θ += o.sb.Dilatation(ξ, s, d.Vol[j], d.M[i])
	}
	return
}

// forcePoint accumulates the force density of point i over its intact bonds,
// breaking bonds stretched beyond the critical stretch. The break test compares
// squared lengths, r² > (1+s_c)²⋅ξ², so both directions of a bond always agree
func (o *Engine) forcePoint(i int) {
	d := o.Dom
	nbroken := 0
	for k := d.Bonds.Ptr[i]; k < d.Bonds.Ptr[i+1]; k++ {
		j := d.Bonds.Idx[k]
		ξx := d.X[3*j] - d.X[3*i]
		ξy := d.X[3*j+1] - d.X[3*i+1]
		ξz := d.X[3*j+2] - d.X[3*i+2]
		ηx := d.U[3*j] - d.U[3*i]
		ηy := d.U[3*j+1] - d.U[3*i+1]
		ηz := d.U[3*j+2] - d.U[3*i+2]
		rx, ry, rz := ξx+ηx, ξy+ηy, ξz+ηz
		ξ2 := ξx*ξx + ξy*ξy + ξz*ξz
		r2 := rx*rx + ry*ry + rz*rz

		// fracture
		if d.Frac != nil {
			if d.Frac.Broken[k] {
				nbroken++
				continue
			}
			if r2 > d.Data.BondBreakCoeff*ξ2 && !d.Frac.Nofail[i] && !d.Frac.Nofail[j] {
				d.Frac.Broken[k] = true
				nbroken++
				continue
			}
		}

		// stretch and force coefficient
		ξ := math.Sqrt(ξ2)
		r := math.Sqrt(r2)
		s := o.stretch(i, j, ξ, r, ξx*ηx+ξy*ηy+ξz*ηz)
		var coeff float64
		if o.sb != nil {
			coeff = o.sb.ForceCoeff(ξ, s, d.M[i], d.M[j], d.Tht[i], d.Tht[j], d.Vol[j])
		} else {
			coeff = o.bb.ForceCoeff(s, d.Vol[j])
		}

		// accumulate along the bond direction
		if d.Data.Linearized {
			d.F[3*i] += coeff * ξx / ξ
			d.F[3*i+1] += coeff * ξy / ξ
			d.F[3*i+2] += coeff * ξz / ξ
		} else {
			d.F[3*i] += coeff * rx / r
			d.F[3*i+1] += coeff * ry / r
			d.F[3*i+2] += coeff * rz / r
		}
	}
	if d.Frac != nil {
		deg := d.Bonds.Degree(i)
		d.Frac.Nint[i] = deg - nbroken
		if deg > 0 {
			d.Dmg[i] = float64(nbroken) / float64(deg)
		}
	}
}

// energyPoint accumulates the strain energy density of point i over its intact
// bonds. For state-based models the dilatational part is spread over the number
// of intact bonds
func (o *Engine) energyPoint(i int) {
	d := o.Dom
	nb := d.Bonds.Degree(i)
	if d.Frac != nil {
		nb = d.Frac.Nint[i]
	}
	if nb == 0 {
		return
	}
	for k := d.Bonds.Ptr[i]; k < d.Bonds.Ptr[i+1]; k++ {
		if d.Frac != nil && d.Frac.Broken[k] {
			continue
		}
		j := d.Bonds.Idx[k]
		ξx := d.X[3*j] - d.X[3*i]
		ξy := d.X[3*j+1] - d.X[3*i+1]
		ξz := d.X[3*j+2] - d.X[3*i+2]
		ηx := d.U[3*j] - d.U[3*i]
		ηy := d.U[3*j+1] - d.U[3*i+1]
		ηz := d.U[3*j+2] - d.U[3*i+2]
		rx, ry, rz := ξx+ηx, ξy+ηy, ξz+ηz
		ξ := math.Sqrt(ξx*ξx + ξy*ξy + ξz*ξz)
		r := math.Sqrt(rx*rx + ry*ry + rz*rz)
		s := o.stretch(i, j, ξ, r, ξx*ηx+ξy*ηy+ξz*ηz)
		if o.sb != nil {
			d.W[i] += o.sb.Energy(ξ, s, d.M[i], d.Tht[i], d.Vol[j], nb)
		} else {
			d.W[i] += o.bb.Energy(ξ, s, d.Vol[j])
		}
	}
}

// contactPass adds short-range repulsion forces between points closer than the
// contact radius on the deformed configuration. Pairs joined by an intact bond
// are excluded; broken pairs and unbonded pairs interact
func (o *Engine) contactPass() (err error) {
	d := o.Dom
	y := make([]float64, 3*d.N)
	o.Run.For(d.N, func(i int) {
		y[3*i] = d.X[3*i] + d.U[3*i]
		y[3*i+1] = d.X[3*i+1] + d.U[3*i+1]
		y[3*i+2] = d.X[3*i+2] + d.U[3*i+2]
	})
	rows, err := searchPairs(y, d.N, o.cm.Radius(), false)
	if err != nil {
		return
	}
	o.Run.For(d.N, func(i int) {
		for _, j := range rows[i] {
			if k, found := d.Bonds.Find(i, j); found {
				if d.Frac == nil || !d.Frac.Broken[k] {
					continue
				}
			}
			rx := y[3*j] - y[3*i]
			ry := y[3*j+1] - y[3*i+1]
			rz := y[3*j+2] - y[3*i+2]
			r := math.Sqrt(rx*rx + ry*ry + rz*rz)
			coeff := o.cm.ForceCoeff(r, d.Vol[j])
			d.F[3*i] += coeff * rx / r
			d.F[3*i+1] += coeff * ry / r
			d.F[3*i+2] += coeff * rz / r
		}
	})
	return
}
