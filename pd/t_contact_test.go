// Copyright 2016 The Gopd Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package pd

import (
	"testing"

	"github.com/cpmech/gopd/inp"
	"github.com/cpmech/gopd/mdl/bond"
	"github.com/cpmech/gopd/mdl/contact"
	"github.com/cpmech/gopd/par"
	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/fun/dbf"
	"github.com/cpmech/gosl/io"
	"github.com/cpmech/gosl/la"
)

// testContact returns an initialised contact model
func testContact(tst *testing.T, prms dbf.Params) contact.Model {
	cm, err := contact.New("repulsion")
	if err != nil {
		tst.Errorf("contact.New failed: %v\n", err)
		return nil
	}
	err = cm.Init(prms)
	if err != nil {
		tst.Errorf("cannot initialise repulsion model: %v\n", err)
		return nil
	}
	return cm
}

func Test_pdcontact01(tst *testing.T) {

	//verbose()
	chk.PrintTitle("pdcontact01. repulsion between unbonded points")

	// three collinear unbonded points; the pair at exactly Rc does not interact
	Rc := 0.125
	cloud := &inp.Cloud{
		N: 3,
		X: []float64{
			0, 0, 0,
			0.0625, 0, 0,
			0.1875, 0, 0,
		},
		Vol: []float64{1, 1, 1},
	}
	mdl := testModel(tst, "pmb", dbf.Params{
		&dbf.P{N: "delta", V: 0.03},
		&dbf.P{N: "K", V: 1},
	})
	cm := testContact(tst, dbf.Params{
		&dbf.P{N: "delta", V: 0.03},
		&dbf.P{N: "K", V: 1},
		&dbf.P{N: "Rc", V: Rc},
	})
	if mdl == nil || cm == nil {
		return
	}
	dom, err := NewDomain(cloud, mdl, bond.TempIndependent, false)
	if err != nil {
		tst.Errorf("NewDomain failed:\n%v", err)
		return
	}
	chk.IntAssert(dom.Bonds.Ptr[dom.N], 0)
	runner, _ := par.New("serial", 0)
	eng, err := NewEngine(dom, cm, runner)
	if err != nil {
		tst.Errorf("NewEngine failed:\n%v", err)
		return
	}
	if _, ok := runCycle(tst, eng); !ok {
		return
	}

	// the close pair repels; forces are antisymmetric
	if dom.F[0] >= 0 {
		tst.Errorf("F[0]=%g must push the left point away\n", dom.F[0])
		return
	}
	if dom.F[3] <= 0 {
		tst.Errorf("F[3]=%g must push the right point away\n", dom.F[3])
		return
	}
	chk.Float64(tst, "F0+F1", 1e-17, dom.F[0]+dom.F[3], 0)
	io.Pforan("repulsion = %v\n", dom.F[0])

	// the far point sits exactly at the contact radius of its closest neighbor
	chk.Float64(tst, "F2", 1e-17, dom.F[6], 0)
}

func Test_pdcontact02(tst *testing.T) {

	//verbose()
	chk.PrintTitle("pdcontact02. intact bonds exclude contact")

	// bonded pair within the contact radius; the contact model must not act
	cloud := &inp.Cloud{
		N:   2,
		X:   []float64{0, 0, 0, 0.5, 0, 0},
		Vol: []float64{1, 1},
	}
	mdl := testModel(tst, "pmb", dbf.Params{
		&dbf.P{N: "delta", V: 1},
		&dbf.P{N: "K", V: 1},
	})
	cm := testContact(tst, dbf.Params{
		&dbf.P{N: "delta", V: 1},
		&dbf.P{N: "K", V: 1},
		&dbf.P{N: "Rc", V: 0.6},
	})
	if mdl == nil || cm == nil {
		return
	}
	dom, err := NewDomain(cloud, mdl, bond.TempIndependent, false)
	if err != nil {
		tst.Errorf("NewDomain failed:\n%v", err)
		return
	}
	dom.SetStretch(0.05)
	runner, _ := par.New("serial", 0)

	// without contact
	eng1, err := NewEngine(dom, nil, runner)
	if err != nil {
		tst.Errorf("NewEngine failed:\n%v", err)
		return
	}
	if _, ok := runCycle(tst, eng1); !ok {
		return
	}
	F1 := make([]float64, 3*dom.N)
	la.VecCopy(F1, 1, dom.F)

	// with contact
	eng2, err := NewEngine(dom, cm, runner)
	if err != nil {
		tst.Errorf("NewEngine failed:\n%v", err)
		return
	}
	if _, ok := runCycle(tst, eng2); !ok {
		return
	}
	chk.Vector(tst, "F", 1e-17, dom.F, F1)
}

func Test_pdcontact03(tst *testing.T) {

	//verbose()
	chk.PrintTitle("pdcontact03. broken pairs regain contact")

	cloud := &inp.Cloud{
		N:   2,
		X:   []float64{0, 0, 0, 0.5, 0, 0},
		Vol: []float64{1, 1},
	}
	mdl := testModel(tst, "pmb", dbf.Params{
		&dbf.P{N: "delta", V: 1},
		&dbf.P{N: "K", V: 1},
		&dbf.P{N: "sc", V: 0.01},
	})
	cm := testContact(tst, dbf.Params{
		&dbf.P{N: "delta", V: 1},
		&dbf.P{N: "K", V: 1},
		&dbf.P{N: "Rc", V: 0.8},
	})
	if mdl == nil || cm == nil {
		return
	}
	dom, err := NewDomain(cloud, mdl, bond.TempIndependent, true)
	if err != nil {
		tst.Errorf("NewDomain failed:\n%v", err)
		return
	}
	runner, _ := par.New("serial", 0)
	eng, err := NewEngine(dom, cm, runner)
	if err != nil {
		tst.Errorf("NewEngine failed:\n%v", err)
		return
	}

	// the over-stretched bond breaks and the pair, still inside the contact
	// radius, starts repelling in the same pass
	dom.SetStretch(0.1)
	if _, ok := runCycle(tst, eng); !ok {
		return
	}
	chk.Vector(tst, "Dmg", 1e-17, dom.Dmg, []float64{1, 1})
	if dom.F[0] >= 0 {
		tst.Errorf("F[0]=%g must be repulsive after the break\n", dom.F[0])
		return
	}

	// back at rest the fracture surfaces keep repelling
	eng.Reset()
	dom.SetStretch(0)
	if _, ok := runCycle(tst, eng); !ok {
		return
	}
	if dom.F[0] >= 0 {
		tst.Errorf("F[0]=%g must be repulsive at rest\n", dom.F[0])
		return
	}
	io.Pforan("repulsion at rest = %v\n", dom.F[0])

	// an intact pair at rest feels nothing
	intact, err := NewDomain(cloud, mdl, bond.TempIndependent, false)
	if err != nil {
		tst.Errorf("NewDomain failed:\n%v", err)
		return
	}
	ieng, err := NewEngine(intact, cm, runner)
	if err != nil {
		tst.Errorf("NewEngine failed:\n%v", err)
		return
	}
	if _, ok := runCycle(tst, ieng); !ok {
		return
	}
	chk.Float64(tst, "‖F‖ intact", 1e-17, la.VecNorm(intact.F), 0)
}
