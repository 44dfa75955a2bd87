// Copyright 2016 The Gopd Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package pd

import (
	"time"

	"github.com/cpmech/gopd/inp"
	"github.com/cpmech/gopd/mdl/bond"
	"github.com/cpmech/gopd/mdl/contact"
	"github.com/cpmech/gopd/par"
	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/fun"
	"github.com/cpmech/gosl/io"
)

// Main holds all data of one peridynamic analysis driven by a simulation file
type Main struct {
	Sim     *inp.Simulation // simulation data
	Dom     *Domain         // particle cloud and bond structure
	Eng     *Engine         // evaluation engine
	ShowMsg bool            // show messages
}

// NewMain reads the simulation file and allocates the domain and the engine
//  Input:
//   simfilepath -- simulation (.sim) filename including full path
//   alias       -- word to be appended to simulation key
//   verbose     -- show messages
func NewMain(simfilepath, alias string, verbose bool) (o *Main) {

	// new Main object and input data
	o = new(Main)
	o.ShowMsg = verbose
	o.Sim = inp.ReadSim(simfilepath, alias, true)
	if o.ShowMsg {
		io.Pf("> Simulation (.sim) file read\n")
	}

	// bond material
	mat := o.Sim.MatModels.Get(o.Sim.Model.Mat)
	if mat == nil {
		chk.Panic("cannot find material named %q", o.Sim.Model.Mat)
	}
	if mat.Bond == nil {
		chk.Panic("material %q is not a bond material", o.Sim.Model.Mat)
	}
	tkind, err := o.Sim.Model.GetTkind()
	if err != nil {
		chk.Panic("cannot set thermal policy:\n%v", err)
	}

	// domain
	o.Dom, err = NewDomain(o.Sim.Pts, mat.Bond, tkind, o.Sim.Model.Fracture)
	if err != nil {
		chk.Panic("cannot allocate domain:\n%v", err)
	}
	for _, box := range o.Sim.Nofail {
		err = o.Dom.SetNofail(box.Xmin, box.Xmax)
		if err != nil {
			chk.Panic("cannot set no-fail zone:\n%v", err)
		}
	}
	for _, pn := range o.Sim.Prenotches {
		err = o.Dom.AddPrenotch(pn.P0, pn.V1, pn.V2)
		if err != nil {
			chk.Panic("cannot add pre-notch:\n%v", err)
		}
	}
	if o.ShowMsg {
		io.Pf("> Domain allocated: %d points and %d bonds\n", o.Dom.N, o.Dom.Bonds.Ptr[o.Dom.N]/2)
	}

	// contact material
	var cm contact.Model
	if o.Sim.Model.Contact != "" {
		cmat := o.Sim.MatModels.Get(o.Sim.Model.Contact)
		if cmat == nil {
			chk.Panic("cannot find contact material named %q", o.Sim.Model.Contact)
		}
		if cmat.Contact == nil {
			chk.Panic("material %q is not a contact material", o.Sim.Model.Contact)
		}
		cm = cmat.Contact
	}

	// engine
	runner, err := par.New(o.Sim.Run.Runner, o.Sim.Run.Nproc)
	if err != nil {
		chk.Panic("cannot allocate runner:\n%v", err)
	}
	o.Eng, err = NewEngine(o.Dom, cm, runner)
	if err != nil {
		chk.Panic("cannot allocate engine:\n%v", err)
	}
	return
}

// Run applies the imposed fields at the evaluation instant and performs one full
// evaluation cycle. It may be called repeatedly; bonds broken by earlier cycles
// stay broken
func (o *Main) Run() (Φ float64, err error) {

	// message
	cputime := time.Now()
	if o.ShowMsg {
		io.Pf("> Setting imposed fields\n")
	}

	// imposed fields
	t := o.Sim.Run.Time
	switch o.Sim.Imposed.Kind {
	case "", "none":
	case "stretch":
		var fcn fun.TimeSpace
		if o.Sim.Imposed.Fcn != "" {
			fcn, err = o.Sim.Functions.Get(o.Sim.Imposed.Fcn)
			if err != nil {
				return
			}
		}
		o.Dom.ApplyStretch(o.Sim.Imposed.S0, fcn, t)
	default:
		return 0, chk.Err("imposed field kind %q is invalid; options are \"none\" and \"stretch\"\n", o.Sim.Imposed.Kind)
	}
	if o.Sim.Imposed.Temp != "" {
		var tfcn fun.TimeSpace
		tfcn, err = o.Sim.Functions.Get(o.Sim.Imposed.Temp)
		if err != nil {
			return
		}
		o.Dom.SetTemp(tfcn, t)
	}

	// evaluation cycle
	if o.ShowMsg {
		io.Pf("> Running evaluation cycle\n")
	}
	o.Eng.Reset()
	err = o.Eng.Initialize()
	if err != nil {
		return
	}
	err = o.Eng.ComputeForce()
	if err != nil {
		return
	}
	Φ, err = o.Eng.ComputeEnergy()
	if err != nil {
		return
	}
	if o.Dom.Tkind == bond.TempCoupled {
		err = o.Eng.ComputeHeat()
		if err != nil {
			return
		}
	}

	// message
	if o.ShowMsg {
		io.PfGreen("> Success\n")
		io.Pf("> Total strain energy = %g\n", Φ)
		io.Pf("> CPU time = %v\n", time.Now().Sub(cputime))
	}
	return
}
