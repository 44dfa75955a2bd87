// Copyright 2016 The Gopd Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// +build ignore

package main

import (
	"encoding/json"

	"github.com/cpmech/gopd/inp"
	"github.com/cpmech/gopd/mdl/bond"
	"github.com/cpmech/gosl/io"
	"github.com/cpmech/gosl/plt"
	"github.com/cpmech/gosl/utl"
)

type Input struct {
	Dir     string  // directory with the .mat file
	MatFn   string  // materials filename
	MatName string  // bond material name
	Smin    float64 // lower bond stretch
	Smax    float64 // upper bond stretch
	Npts    int     // number of points along the sweep
	Xi      float64 // reference bond length
	Vol     float64 // volume of the neighbor point
	M0      float64 // weighted volume for state-based models
	Nb      int     // number of bonds for state-based energies
	FigEps  bool    // generate .eps instead of .png
	FigProp float64 // proportion of figure
	FigWid  float64 // width of figure

	// derived
	inpfn string
}

func (o *Input) PostProcess() {
	if o.Npts < 2 {
		o.Npts = 101
	}
	if o.Xi <= 0 {
		o.Xi = 0.1
	}
	if o.Vol <= 0 {
		o.Vol = 0.001
	}
	if o.Nb < 1 {
		o.Nb = 18
	}
	if o.FigProp < 0.1 {
		o.FigProp = 1.0
	}
	if o.FigWid < 10 {
		o.FigWid = 400
	}
}

func (o Input) String() (l string) {
	l = io.ArgsTable("INPUT ARGUMENTS",
		"input filename", "inpfn", o.inpfn,
		"directory with .mat file", "Dir", o.Dir,
		"materials filename", "MatFn", o.MatFn,
		"material name", "MatName", o.MatName,
		"lower bond stretch", "Smin", o.Smin,
		"upper bond stretch", "Smax", o.Smax,
		"number of points", "Npts", o.Npts,
		"reference bond length", "Xi", o.Xi,
		"neighbor volume", "Vol", o.Vol,
		"weighted volume", "M0", o.M0,
		"number of bonds", "Nb", o.Nb,
		"fig: generate .eps instead of .png", "FigEps", o.FigEps,
		"fig: proportion of figure", "FigProp", o.FigProp,
		"fig: width  of figure", "FigWid", o.FigWid,
	)
	return
}

func main() {

	// catch errors
	defer func() {
		if err := recover(); err != nil {
			io.PfRed("ERROR: %v\n", err)
		}
	}()

	// input data file
	var in Input
	in.inpfn, _ = io.ArgToFilename(0, "data/bonddrv1", ".inp", true)

	// read and parse input data
	b, err := io.ReadFile(in.inpfn)
	if err != nil {
		io.PfRed("cannot read %s\n", in.inpfn)
		return
	}
	err = json.Unmarshal(b, &in)
	if err != nil {
		io.PfRed("cannot parse %s\n", in.inpfn)
		return
	}
	in.PostProcess()

	// print input table
	io.Pf("%v\n", in)

	// load materials
	mdb, err := inp.ReadMat(in.Dir, in.MatFn)
	if err != nil {
		io.PfRed("cannot load materials: %v\n", err)
		return
	}
	mat := mdb.Get(in.MatName)
	if mat == nil {
		io.PfRed("cannot get material\n")
		return
	}
	mdl := mat.Bond
	if mdl == nil {
		io.PfRed("material %q is not a bond material\n", in.MatName)
		return
	}
	data := mdl.Data()

	// sweep the bond stretch; state-based models take the uniform-stretch
	// state θ = 3s with the given weighted volume
	ss := utl.LinSpace(in.Smin, in.Smax, in.Npts)
	ff := make([]float64, in.Npts)
	ww := make([]float64, in.Npts)
	if data.StateBased {
		sb := mdl.(bond.StateBased)
		m0 := in.M0
		if m0 <= 0 {
			m0 = in.Xi * in.Vol * float64(in.Nb)
		}
		for k, s := range ss {
			ff[k] = sb.ForceCoeff(in.Xi, s, m0, m0, 3*s, 3*s, in.Vol)
			ww[k] = sb.Energy(in.Xi, s, m0, 3*s, in.Vol, in.Nb)
		}
	} else {
		bb := mdl.(bond.BondBased)
		for k, s := range ss {
			ff[k] = bb.ForceCoeff(s, in.Vol)
			ww[k] = bb.Energy(in.Xi, s, in.Vol)
		}
	}

	// report the critical stretch
	if data.HasFracture {
		io.Pf("critical stretch sc = %g\n", data.Sc)
	}

	// line marking the critical stretch
	var scx, scf, scw []float64
	if data.HasFracture && data.Sc <= in.Smax {
		fmin, fmax, wmax := ff[0], ff[0], ww[0]
		for k := 1; k < in.Npts; k++ {
			fmin = utl.Min(fmin, ff[k])
			fmax = utl.Max(fmax, ff[k])
			wmax = utl.Max(wmax, ww[k])
		}
		scx = []float64{data.Sc, data.Sc}
		scf = []float64{fmin, fmax}
		scw = []float64{0, wmax}
	}

	// plot
	plt.Reset(true, &plt.A{Eps: in.FigEps, Prop: in.FigProp, WidthPt: in.FigWid})
	plt.Subplot(2, 1, 1)
	plt.Plot(ss, ff, &plt.A{C: "b", Ls: "-", L: in.MatName})
	if scx != nil {
		plt.Plot(scx, scf, &plt.A{C: "r", Ls: "--", L: "$s_c$"})
	}
	plt.Gll("$s$", "$f$", nil)
	plt.Subplot(2, 1, 2)
	plt.Plot(ss, ww, &plt.A{C: "g", Ls: "-", L: in.MatName})
	if scx != nil {
		plt.Plot(scx, scw, &plt.A{C: "r", Ls: "--", L: "$s_c$"})
	}
	plt.Gll("$s$", "$W$", nil)
	err = plt.Save("/tmp/gopd", "drv_"+in.MatName)
	if err != nil {
		io.PfRed("cannot save figure: %v\n", err)
	}
}
