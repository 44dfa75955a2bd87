// Copyright 2016 The Gopd Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"testing"

	"github.com/cpmech/gopd/tests"
	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"
)

func Test_uniform01(tst *testing.T) {

	//tests.Verbose()
	chk.PrintTitle("uniform01. pairwise model. full and linearised kinematics")

	main := tests.UniformStretch("data/upmb.sim", &tests.Check{
		Tst: tst, TolW: 1e-13, TolF: 1e-13, TolP: 1e-15, Verb: chk.Verbose,
	})
	if main == nil {
		return
	}

	// the pairwise model carries no dilatations
	dom := main.Dom
	chk.Vector(tst, "θ", 1e-17, dom.Tht, nil)
	chk.Vector(tst, "m", 1e-17, dom.M, nil)

	// under the uniform field both kinematics agree
	main = tests.UniformStretch("data/ulinpmb.sim", &tests.Check{
		Tst: tst, TolW: 1e-13, TolF: 1e-13, TolP: 1e-15, Verb: chk.Verbose,
	})
	if main == nil {
		return
	}
	io.Pforan("N = %v\n", main.Dom.N)
}

func Test_uniform02(tst *testing.T) {

	//tests.Verbose()
	chk.PrintTitle("uniform02. linear peridynamic solid on threads")

	main := tests.UniformStretch("data/ulps.sim", &tests.Check{
		Tst: tst, TolM: 1e-13, TolT: 1e-12, TolW: 1e-13, TolF: 1e-12, TolP: 1e-13, Verb: chk.Verbose,
	})
	if main == nil {
		return
	}

	// interior dilatations hold the continuum value
	dom := main.Dom
	dx := main.Sim.Pts.Dx
	s0 := main.Sim.Imposed.S0
	for _, i := range tests.Interior(dom, dom.Data.Delta+0.6*dx[0]) {
		chk.AnaNum(tst, io.Sf("θ%3d", i), 1e-12, dom.Tht[i], 3*s0, chk.Verbose)
	}
}

func Test_uniform03(tst *testing.T) {

	//tests.Verbose()
	chk.PrintTitle("uniform03. linearised solid with a scaled imposed field")

	main := tests.UniformStretch("data/ulin.sim", &tests.Check{
		Tst: tst, TolM: 1e-13, TolT: 1e-12, TolW: 1e-13, TolF: 1e-12, TolP: 1e-15, Verb: chk.Verbose,
	})
	if main == nil {
		return
	}

	// the imposed field was halved by the scaling function
	dom := main.Dom
	ux := dom.U[0]
	x := dom.X[0]
	chk.Float64(tst, "ux", 1e-15, ux, 0.5*main.Sim.Imposed.S0*x)
}
