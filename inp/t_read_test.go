// Copyright 2016 The Gopd Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package inp

import (
	"math"
	"testing"

	"github.com/cpmech/gopd/mdl/bond"
	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"
)

func Test_mat01(tst *testing.T) {

	//verbose()
	chk.PrintTitle("mat01. materials database")

	mdb, err := ReadMat("data", "bonds.mat")
	if err != nil {
		tst.Errorf("test failed:\n%v", err)
		return
	}
	io.Pforan("%d bond and %d contact materials\n", len(mdb.Bonds), len(mdb.Contacts))

	// pmb material
	steel := mdb.Get("steel")
	if steel == nil || steel.Bond == nil {
		tst.Errorf("cannot get bond material \"steel\"\n")
		return
	}
	data := steel.Bond.Data()
	chk.Float64(tst, "δ", 1e-17, data.Delta, 0.25)
	chk.Float64(tst, "K", 1e-17, data.K, 160)
	chk.Float64(tst, "sc", 1e-17, data.Sc, 0.05)
	if !data.HasFracture || data.StateBased || data.Linearized {
		tst.Errorf("capabilities of \"steel\" are wrong: %+v\n", data)
		return
	}
	c := steel.Bond.(*bond.PMB).C()
	chk.Float64(tst, "c", 1e-12, c, 18.0*160.0/(math.Pi*math.Pow(0.25, 4.0)))

	// lps material with derived critical stretch
	alloy := mdb.Get("alloy")
	if alloy == nil || alloy.Bond == nil {
		tst.Errorf("cannot get bond material \"alloy\"\n")
		return
	}
	data = alloy.Bond.Data()
	if !data.StateBased || !data.HasFracture || !data.HasTexp || data.HasCond {
		tst.Errorf("capabilities of \"alloy\" are wrong: %+v\n", data)
		return
	}
	chk.Float64(tst, "sc(Gc)", 1e-15, data.Sc, math.Sqrt(5.0*0.1/(9.0*160.0*0.25)))

	// thermally coupled material
	hot := mdb.Get("hotsteel")
	if hot == nil || hot.Bond == nil {
		tst.Errorf("cannot get bond material \"hotsteel\"\n")
		return
	}
	data = hot.Bond.Data()
	if !data.Linearized || !data.HasTexp || !data.HasCond {
		tst.Errorf("capabilities of \"hotsteel\" are wrong: %+v\n", data)
		return
	}
	chk.Float64(tst, "kp", 1e-12, data.Kp, 6.0*45.0/(math.Pi*math.Pow(0.25, 4.0)))

	// contact material
	walls := mdb.Get("walls")
	if walls == nil || walls.Contact == nil {
		tst.Errorf("cannot get contact material \"walls\"\n")
		return
	}
	chk.Float64(tst, "Rc", 1e-17, walls.Contact.Radius(), 0.1)

	// missing material
	if mdb.Get("gold") != nil {
		tst.Errorf("Get(\"gold\") must return nil\n")
		return
	}
}

func Test_mat02(tst *testing.T) {

	//verbose()
	chk.PrintTitle("mat02. materials database errors")

	_, err := ReadMat("data", "nonexistent.mat")
	if err == nil {
		tst.Errorf("reading a missing file must fail\n")
		return
	}
	io.Pforan("OK. missing file: %v\n", err)

	_, err = ReadMat("data", "bad-type.mat")
	if err == nil {
		tst.Errorf("reading a material with a wrong type must fail\n")
		return
	}
	io.Pforan("OK. wrong type: %v\n", err)

	_, err = ReadMat("data", "bad-model.mat")
	if err == nil {
		tst.Errorf("reading a material with an unknown model must fail\n")
		return
	}
	io.Pforan("OK. unknown model: %v\n", err)
}

func Test_cloud01(tst *testing.T) {

	//verbose()
	chk.PrintTitle("cloud01. lattice generation")

	cloud, err := NewCloud(&CloudData{
		Xmin: []float64{0, 0, 0},
		Xmax: []float64{1, 2, 3},
		Ndiv: []int{2, 4, 6},
	}, "")
	if err != nil {
		tst.Errorf("test failed:\n%v", err)
		return
	}
	chk.IntAssert(cloud.N, 2*4*6)
	chk.Vector(tst, "dx", 1e-15, cloud.Dx, []float64{0.5, 0.5, 0.5})

	// first point sits at the centre of the first cell; the x index runs fastest
	chk.Vector(tst, "x0", 1e-15, cloud.X[:3], []float64{0.25, 0.25, 0.25})
	chk.Vector(tst, "x1", 1e-15, cloud.X[3:6], []float64{0.75, 0.25, 0.25})
	chk.Vector(tst, "x2", 1e-15, cloud.X[6:9], []float64{0.25, 0.75, 0.25})

	// cell volumes add up to the box volume
	var sum float64
	for _, v := range cloud.Vol {
		sum += v
	}
	chk.Float64(tst, "Σvol", 1e-13, sum, 6.0)

	// perturbed lattices keep points inside their cells
	pert, err := NewCloud(&CloudData{
		Xmin:    []float64{0, 0, 0},
		Xmax:    []float64{1, 2, 3},
		Ndiv:    []int{2, 4, 6},
		Perturb: 0.3,
		Seed:    123,
	}, "")
	if err != nil {
		tst.Errorf("test failed:\n%v", err)
		return
	}
	moved := false
	for i := 0; i < 3*cloud.N; i++ {
		shift := math.Abs(pert.X[i] - cloud.X[i])
		if shift > 0.3*0.5+1e-15 {
			tst.Errorf("perturbation %g at component %d is too large\n", shift, i)
			return
		}
		if shift > 0 {
			moved = true
		}
	}
	if !moved {
		tst.Errorf("perturbation did not move any point\n")
		return
	}

	// invalid input
	if _, err := NewCloud(&CloudData{Xmin: []float64{0, 0}, Xmax: []float64{1, 1, 1}, Ndiv: []int{2, 2, 2}}, ""); err == nil {
		tst.Errorf("wrong xmin length must fail\n")
		return
	}
	if _, err := NewCloud(&CloudData{Xmin: []float64{0, 0, 0}, Xmax: []float64{1, 1, 1}, Ndiv: []int{2, 0, 2}}, ""); err == nil {
		tst.Errorf("zero ndiv must fail\n")
		return
	}
	if _, err := NewCloud(&CloudData{Xmin: []float64{0, 0, 0}, Xmax: []float64{1, 0, 1}, Ndiv: []int{2, 2, 2}}, ""); err == nil {
		tst.Errorf("empty box must fail\n")
		return
	}
	if _, err := NewCloud(&CloudData{Xmin: []float64{0, 0, 0}, Xmax: []float64{1, 1, 1}, Ndiv: []int{2, 2, 2}, Perturb: 0.7}, ""); err == nil {
		tst.Errorf("perturbation ≥ 0.5 must fail\n")
		return
	}
}

func Test_cloud02(tst *testing.T) {

	//verbose()
	chk.PrintTitle("cloud02. points file")

	cloud, err := NewCloud(&CloudData{Ptsfile: "cloud01.pts"}, "data")
	if err != nil {
		tst.Errorf("test failed:\n%v", err)
		return
	}
	chk.IntAssert(cloud.N, 4)
	if cloud.Dx != nil {
		tst.Errorf("point clouds from files have no lattice spacing\n")
		return
	}
	chk.Vector(tst, "x3", 1e-17, cloud.X[9:12], []float64{0.1, 0.1, 0.1})
	chk.Vector(tst, "vol", 1e-17, cloud.Vol, []float64{0.001, 0.001, 0.002, 0.002})

	_, err = NewCloud(&CloudData{Ptsfile: "bad-pts.pts"}, "data")
	if err == nil {
		tst.Errorf("reading a row with missing components must fail\n")
		return
	}
	io.Pforan("OK. bad row: %v\n", err)
}

func Test_sim01(tst *testing.T) {

	//verbose()
	chk.PrintTitle("sim01. simulation file")

	sim := ReadSim("data/uniform.sim", "", false)
	io.Pforan("%q: %s\n", sim.Key, sim.Data.Desc)
	chk.String(tst, sim.Key, "uniform")
	chk.String(tst, sim.Data.Matfile, "bonds.mat")
	chk.IntAssert(sim.Pts.N, 7*7*7)
	chk.String(tst, sim.Run.Runner, "threads")
	chk.IntAssert(sim.Run.Nproc, 2)
	chk.Float64(tst, "s0", 1e-17, sim.Imposed.S0, 0.02)
	if !sim.Model.Fracture {
		tst.Errorf("fracture must be enabled\n")
		return
	}

	// materials are initialised
	if sim.MatModels.Get("steel") == nil || sim.MatModels.Get("steel").Bond == nil {
		tst.Errorf("material \"steel\" is not initialised\n")
		return
	}

	// the scaling function evaluates to one
	fcn, err := sim.Functions.Get("ramp")
	if err != nil {
		tst.Errorf("cannot get function: %v\n", err)
		return
	}
	chk.Float64(tst, "f(0.5)", 1e-17, fcn.F(0.5, []float64{0, 0, 0}), 1)

	// default thermal kind
	tkind, err := sim.Model.GetTkind()
	if err != nil {
		tst.Errorf("GetTkind failed: %v\n", err)
		return
	}
	if tkind != bond.TempIndependent {
		tst.Errorf("default thermal kind must be temperature independent\n")
		return
	}

	// alias changes the key
	sim2 := ReadSim("data/uniform.sim", "check", false)
	chk.String(tst, sim2.Key, "uniform-check")
}

func Test_sim02(tst *testing.T) {

	//verbose()
	chk.PrintTitle("sim02. pre-notch, no-fail and contact input")

	sim := ReadSim("data/prenotch.sim", "", false)
	chk.String(tst, sim.Model.Contact, "walls")
	chk.IntAssert(len(sim.Prenotches), 1)
	chk.IntAssert(len(sim.Nofail), 1)
	chk.Vector(tst, "p0", 1e-17, sim.Prenotches[0].P0, []float64{0, -0.4, -0.1})
	chk.Vector(tst, "v1", 1e-17, sim.Prenotches[0].V1, []float64{0, 0.8, 0})
	chk.Vector(tst, "xmax", 1e-17, sim.Nofail[0].Xmax, []float64{-0.2, 0.3, 0.05})

	// the runner falls back to serial when not given
	chk.String(tst, sim.Run.Runner, "serial")

	// wrong thermal words are caught
	bad := ModelData{Thermal: "sideways"}
	if _, err := bad.GetTkind(); err == nil {
		tst.Errorf("invalid thermal kind must fail\n")
		return
	}
}
