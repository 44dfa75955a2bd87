// Copyright 2016 The Gopd Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package pd

import (
	"github.com/cpmech/gopd/inp"
	"github.com/cpmech/gopd/mdl/bond"
	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/fun"
	"github.com/cpmech/gosl/la"
)

// Domain holds the particle cloud state and the bond structure of one analysis.
// Vector quantities are stored flat with 3 components per point
type Domain struct {

	// data
	N     int        // number of points
	Mdl   bond.Model // bond force model
	Data  *bond.Data // capabilities and constants of the model
	Tkind bond.Tkind // how temperature enters the stretch

	// state
	X    []float64 // [3*N] reference positions
	U    []float64 // [3*N] displacements
	V    []float64 // [3*N] velocities
	F    []float64 // [3*N] force densities; accumulated by the force pass
	Vol  []float64 // [N] volumes
	W    []float64 // [N] strain energy densities; accumulated by the energy pass
	M    []float64 // [N] weighted volumes; state-based models only
	Tht  []float64 // [N] dilatations; state-based models only
	Temp []float64 // [N] temperatures
	Tdot []float64 // [N] temperature rates; coupled thermal only
	Dmg  []float64 // [N] damage fraction = broken bonds over total bonds

	// bonds
	Bonds *Neighbors // bond structure within the horizon
	Frac  *Fracture  // bond failure state; nil means purely elastic
}

// NewDomain builds a domain from a particle cloud and an initialised bond model
//  Input:
//   cloud    -- particle positions and volumes
//   mdl      -- initialised bond model
//   tkind    -- thermal kind; must be compatible with the model parameters
//   fracture -- enable bond breaking; the model must have a critical stretch
func NewDomain(cloud *inp.Cloud, mdl bond.Model, tkind bond.Tkind, fracture bool) (o *Domain, err error) {

	// check input
	if cloud == nil || cloud.N < 1 {
		return nil, chk.Err("domain: a non-empty particle cloud is required\n")
	}
	if mdl == nil {
		return nil, chk.Err("domain: a bond model is required\n")
	}
	data := mdl.Data()
	if data.Delta <= 0 {
		return nil, chk.Err("domain: bond model must be initialised first. δ=%g is invalid\n", data.Delta)
	}
	if tkind != bond.TempIndependent && !data.HasTexp {
		return nil, chk.Err("domain: thermal analyses need the expansion coefficient 'alp' in the material\n")
	}
	if tkind == bond.TempCoupled && !data.HasCond {
		return nil, chk.Err("domain: coupled thermal analyses need 'kappa', 'rho' and 'cp' in the material\n")
	}
	if fracture && !data.HasFracture {
		return nil, chk.Err("domain: fracture needs 'sc' or 'Gc' in the material\n")
	}

	// allocate state
	o = &Domain{N: cloud.N, Mdl: mdl, Data: data, Tkind: tkind}
	o.X = make([]float64, 3*o.N)
	o.U = make([]float64, 3*o.N)
	o.V = make([]float64, 3*o.N)
	o.F = make([]float64, 3*o.N)
	o.Vol = make([]float64, o.N)
	o.W = make([]float64, o.N)
	o.M = make([]float64, o.N)
	o.Tht = make([]float64, o.N)
	o.Temp = make([]float64, o.N)
	o.Tdot = make([]float64, o.N)
	o.Dmg = make([]float64, o.N)
	la.VecCopy(o.X, 1, cloud.X)
	la.VecCopy(o.Vol, 1, cloud.Vol)
	la.VecFill(o.Temp, data.Tref)

	// bonds
	o.Bonds, err = BuildNeighbors(o.X, o.N, data.Delta)
	if err != nil {
		return nil, err
	}
	if fracture {
		o.Frac = NewFracture(o.Bonds, o.N)
	}
	return
}

// SetStretch imposes the uniform stretch field u = s0 ⋅ x
func (o *Domain) SetStretch(s0 float64) {
	for i := 0; i < 3*o.N; i++ {
		o.U[i] = s0 * o.X[i]
	}
}

// ApplyStretch imposes the stretch field u = s0 ⋅ f(t,x) ⋅ x where f may vary in
// time and space; a nil function means f = 1
func (o *Domain) ApplyStretch(s0 float64, fcn fun.TimeSpace, t float64) {
	if fcn == nil {
		o.SetStretch(s0)
		return
	}
	for i := 0; i < o.N; i++ {
		mult := s0 * fcn.F(t, o.X[3*i:3*i+3])
		for r := 0; r < 3; r++ {
			o.U[3*i+r] = mult * o.X[3*i+r]
		}
	}
}

// SetTemp sets the temperature field from a time-space function; a nil function
// resets all temperatures to the reference value
func (o *Domain) SetTemp(fcn fun.TimeSpace, t float64) {
	if fcn == nil {
		la.VecFill(o.Temp, o.Data.Tref)
		return
	}
	for i := 0; i < o.N; i++ {
		o.Temp[i] = fcn.F(t, o.X[3*i:3*i+3])
	}
}
