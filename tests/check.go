// Copyright 2016 The Gopd Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package tests implements structures and functions to test peridynamic simulations
package tests

import (
	"testing"

	"github.com/cpmech/gopd/ana"
	"github.com/cpmech/gopd/mdl/bond"
	"github.com/cpmech/gopd/pd"
	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"
)

// Check holds settings for comparing one evaluation cycle with reference bond sums
type Check struct {
	Tst  *testing.T // test structure
	TolM float64    // tolerance for weighted volumes
	TolT float64    // tolerance for dilatations
	TolW float64    // tolerance for strain energy densities
	TolF float64    // tolerance for interior force densities
	TolP float64    // tolerance for the total strain energy
	Verb bool       // show comparison messages
}

// UniformStretch runs one evaluation cycle of a simulation imposing a uniform
// stretch and compares all points with reference bond sums over the same cloud.
// Interior points also carry vanishing force densities basically by symmetry.
// The scaling function of the imposed field, if any, must be constant in space.
// Returns the analysis structure for further checks
func UniformStretch(simfilepath string, ck *Check) *pd.Main {

	// run analysis
	main := pd.NewMain(simfilepath, "", ck.Verb)
	Φ, err := main.Run()
	if err != nil {
		ck.Tst.Errorf("Run failed:\n%v", err)
		return nil
	}

	// effective stretch
	s0 := main.Sim.Imposed.S0
	if main.Sim.Imposed.Fcn != "" {
		fcn, err := main.Sim.Functions.Get(main.Sim.Imposed.Fcn)
		if err != nil {
			ck.Tst.Errorf("cannot get scaling function:\n%v", err)
			return nil
		}
		s0 *= fcn.F(main.Sim.Run.Time, nil)
	}

	// reference sums
	dom := main.Dom
	data := dom.Data
	sol := ana.UniformStretch{Delta: data.Delta, S0: s0}

	// compare all points
	for i := 0; i < dom.N; i++ {
		if m, ok := dom.Mdl.(*bond.LPS); ok {
			chk.AnaNum(ck.Tst, io.Sf("m%3d", i), ck.TolM, dom.M[i], sol.WeightedVolume(dom.X, dom.Vol, i), ck.Verb)
			chk.AnaNum(ck.Tst, io.Sf("θ%3d", i), ck.TolT, dom.Tht[i], sol.Dilatation(dom.X, dom.Vol, i), ck.Verb)
			chk.AnaNum(ck.Tst, io.Sf("W%3d", i), ck.TolW, dom.W[i], sol.EnergyLPS(m.K, m.G, dom.X, dom.Vol, i), ck.Verb)
		}
		if m, ok := dom.Mdl.(*bond.PMB); ok {
			chk.AnaNum(ck.Tst, io.Sf("W%3d", i), ck.TolW, dom.W[i], sol.EnergyPMB(m.C(), dom.X, dom.Vol, i), ck.Verb)
		}
	}

	// interior force densities vanish
	margin := data.Delta
	if dx := main.Sim.Pts.Dx; dx != nil {
		margin += 0.6 * dx[0]
	}
	inner := Interior(dom, margin)
	if len(inner) < 1 {
		ck.Tst.Errorf("cloud has no interior points; widen the lattice\n")
		return nil
	}
	for _, i := range inner {
		for r := 0; r < 3; r++ {
			chk.AnaNum(ck.Tst, io.Sf("f%3d", i), ck.TolF, dom.F[3*i+r], 0, ck.Verb)
		}
	}

	// total strain energy is consistent with the point sums
	Φref := 0.0
	for i := 0; i < dom.N; i++ {
		Φref += dom.W[i] * dom.Vol[i]
	}
	chk.AnaNum(ck.Tst, "Φ", ck.TolP, Φ, Φref, ck.Verb)
	return main
}
