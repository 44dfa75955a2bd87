// Copyright 2016 The Gopd Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package inp implements the input data read from (.sim) and (.mat) JSON files
package inp

import (
	"encoding/json"
	goio "io"
	"os"
	"path/filepath"

	"github.com/cpmech/gopd/mdl/bond"
	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"
)

// Data holds global data for simulations
type Data struct {
	Desc    string `json:"desc"`    // description of simulation
	Matfile string `json:"matfile"` // materials file path
	DirOut  string `json:"dirout"`  // directory for output; e.g. /tmp/gopd
}

// ModelData selects material models and policies
type ModelData struct {
	Mat      string `json:"mat"`      // name of bond material
	Contact  string `json:"contact"`  // name of contact material; "" means no contact
	Fracture bool   `json:"fracture"` // bonds may break when stretched beyond the critical stretch
	Thermal  string `json:"thermal"`  // "" (independent), "dependent" or "coupled"
}

// GetTkind returns the thermal kind constant corresponding to the thermal
// policy word
func (o *ModelData) GetTkind() (tkind bond.Tkind, err error) {
	switch o.Thermal {
	case "", "none", "independent":
		tkind = bond.TempIndependent
	case "dependent":
		tkind = bond.TempDependent
	case "coupled":
		tkind = bond.TempCoupled
	default:
		err = chk.Err("thermal kind %q is invalid; options are \"dependent\" and \"coupled\"\n", o.Thermal)
	}
	return
}

// RunData holds evaluation options
type RunData struct {
	Runner string  `json:"runner"` // runner kind: "serial" or "threads"
	Nproc  int     `json:"nproc"`  // number of goroutines for "threads"; 0 means all CPUs
	Time   float64 `json:"time"`   // instant for evaluating imposed field functions
}

// SetDefault sets default values
func (o *RunData) SetDefault() {
	o.Runner = "serial"
}

// ImposedData holds imposed displacement and temperature fields
type ImposedData struct {
	Kind string  `json:"kind"` // "none" or "stretch" => u = s0 ⋅ f(t,x) ⋅ x
	S0   float64 `json:"s0"`   // stretch magnitude
	Fcn  string  `json:"fcn"`  // function name scaling s0 in time and space; "" means constant one
	Temp string  `json:"temp"` // function name with the temperature field; "" means reference temperature
}

// PrenotchData defines a rectangular pre-notch; bonds crossing the rectangle are
// broken at setup
type PrenotchData struct {
	P0 []float64 `json:"p0"` // [3] corner point
	V1 []float64 `json:"v1"` // [3] first edge vector
	V2 []float64 `json:"v2"` // [3] second edge vector
}

// NofailData defines a box where points never break bonds
type NofailData struct {
	Xmin []float64 `json:"xmin"` // [3] lower corner
	Xmax []float64 `json:"xmax"` // [3] upper corner
}

// Simulation holds all simulation data
type Simulation struct {

	// input
	Data       Data            `json:"data"`       // global simulation data
	Functions  FuncsData       `json:"functions"`  // time-space functions for imposed fields
	Cloud      CloudData       `json:"cloud"`      // particle cloud generation data
	Model      ModelData       `json:"model"`      // material models and policies
	Run        RunData         `json:"run"`        // evaluation options
	Imposed    ImposedData     `json:"imposed"`    // imposed displacement and temperature fields
	Prenotches []*PrenotchData `json:"prenotches"` // pre-notches cutting bonds at setup
	Nofail     []*NofailData   `json:"nofail"`     // boxes where points never break bonds

	// derived
	DirOut    string // directory to save results
	Key       string // simulation key; e.g. mysim01.sim => mysim01 or mysim01-alias
	MatModels *MatDb // materials and models database
	Pts       *Cloud // particle cloud
}

// ReadSim reads all simulation data from a .sim JSON file
func ReadSim(simfilepath, alias string, createDirOut bool) *Simulation {

	// new sim
	var o Simulation

	// read file
	b, err := io.ReadFile(simfilepath)
	if err != nil {
		chk.Panic("ReadSim: cannot read simulation file %q", simfilepath)
	}

	// set default values
	o.Run.SetDefault()

	// decode
	err = json.Unmarshal(b, &o)
	if err != nil {
		chk.Panic("ReadSim: cannot unmarshal simulation file %q", simfilepath)
	}

	// input directory and filename key
	dir := filepath.Dir(simfilepath)
	fn := filepath.Base(simfilepath)
	dir = os.ExpandEnv(dir)
	fnkey := io.FnKey(fn)
	o.Key = fnkey
	if alias != "" {
		o.Key += "-" + alias
	}

	// output directory
	o.DirOut = o.Data.DirOut
	if o.DirOut == "" {
		o.DirOut = "/tmp/gopd/" + fnkey
	}

	// create directory
	if createDirOut {
		err = os.MkdirAll(o.DirOut, 0777)
		if err != nil {
			chk.Panic("cannot create directory for output results (%s): %v", o.DirOut, err)
		}
	}

	// read materials database and initialise models
	o.MatModels, err = ReadMat(dir, o.Data.Matfile)
	if err != nil {
		chk.Panic("loading materials and initialising models failed:\n%v", err)
	}

	// build particle cloud
	o.Pts, err = NewCloud(&o.Cloud, dir)
	if err != nil {
		chk.Panic("building particle cloud failed:\n%v", err)
	}

	// results
	return &o
}

// auxiliary ///////////////////////////////////////////////////////////////////////////////////////

// GetInfo returns formatted information
func (o *Simulation) GetInfo(w goio.Writer) (err error) {
	b, err := json.MarshalIndent(o, "", "  ")
	if err != nil {
		return err
	}
	_, err = w.Write(b)
	return
}
