// Copyright 2016 The Gopd Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package inp

import (
	"encoding/json"
	"path/filepath"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"
	"github.com/cpmech/gosl/rnd"
)

// CloudData holds input for building the particle cloud
type CloudData struct {
	Xmin    []float64 `json:"xmin"`    // [3] lower corner of lattice box
	Xmax    []float64 `json:"xmax"`    // [3] upper corner of lattice box
	Ndiv    []int     `json:"ndiv"`    // [3] number of cells along each direction
	Ptsfile string    `json:"ptsfile"` // file with points and volumes; overrides lattice data
	Perturb float64   `json:"perturb"` // lattice perturbation as a fraction of the spacing
	Seed    int       `json:"seed"`    // seed for the perturbation; 0 means use current time
}

// PtsData holds points read from a JSON file
type PtsData struct {
	Points [][]float64 `json:"points"` // [npoints][4] x,y,z coordinates and volume
}

// Cloud holds the particle cloud: reference positions and volumes
type Cloud struct {
	N   int       // number of points
	X   []float64 // [3*N] reference positions
	Vol []float64 // [N] volumes
	Dx  []float64 // [3] lattice spacings; nil for point files
}

// NewCloud builds a particle cloud, either as a uniform lattice with points at cell
// centres or from a points file
func NewCloud(cd *CloudData, dir string) (o *Cloud, err error) {

	// from points file
	if cd.Ptsfile != "" {
		return readPoints(filepath.Join(dir, cd.Ptsfile))
	}

	// check lattice data
	if len(cd.Xmin) != 3 || len(cd.Xmax) != 3 || len(cd.Ndiv) != 3 {
		return nil, chk.Err("cloud: 'xmin', 'xmax' and 'ndiv' must all have 3 components")
	}
	for k := 0; k < 3; k++ {
		if cd.Ndiv[k] < 1 {
			return nil, chk.Err("cloud: 'ndiv' components must be at least 1. ndiv=%v is invalid", cd.Ndiv)
		}
		if cd.Xmax[k] <= cd.Xmin[k] {
			return nil, chk.Err("cloud: box is empty along direction %d. xmin=%v, xmax=%v", k, cd.Xmin, cd.Xmax)
		}
	}
	if cd.Perturb < 0 || cd.Perturb >= 0.5 {
		return nil, chk.Err("cloud: 'perturb' must be in [0, 0.5). perturb=%g is invalid", cd.Perturb)
	}

	// lattice
	o = new(Cloud)
	nx, ny, nz := cd.Ndiv[0], cd.Ndiv[1], cd.Ndiv[2]
	o.N = nx * ny * nz
	o.X = make([]float64, 3*o.N)
	o.Vol = make([]float64, o.N)
	o.Dx = []float64{
		(cd.Xmax[0] - cd.Xmin[0]) / float64(nx),
		(cd.Xmax[1] - cd.Xmin[1]) / float64(ny),
		(cd.Xmax[2] - cd.Xmin[2]) / float64(nz),
	}
	vol := o.Dx[0] * o.Dx[1] * o.Dx[2]
	if cd.Perturb > 0 {
		rnd.Init(cd.Seed)
	}
	for k := 0; k < nz; k++ {
		for j := 0; j < ny; j++ {
			for i := 0; i < nx; i++ {
				p := i + j*nx + k*nx*ny
				o.X[3*p] = cd.Xmin[0] + (float64(i)+0.5)*o.Dx[0]
				o.X[3*p+1] = cd.Xmin[1] + (float64(j)+0.5)*o.Dx[1]
				o.X[3*p+2] = cd.Xmin[2] + (float64(k)+0.5)*o.Dx[2]
				if cd.Perturb > 0 {
					for r := 0; r < 3; r++ {
						o.X[3*p+r] += cd.Perturb * o.Dx[r] * rnd.Float64(-1, 1)
					}
				}
				o.Vol[p] = vol
			}
		}
	}
	return
}

// readPoints reads a cloud from a JSON points file
func readPoints(path string) (o *Cloud, err error) {
	b, err := io.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var pd PtsData
	err = json.Unmarshal(b, &pd)
	if err != nil {
		return nil, chk.Err("cloud: cannot unmarshal points file %q:\n%v", path, err)
	}
	if len(pd.Points) < 1 {
		return nil, chk.Err("cloud: points file %q has no points", path)
	}
	o = new(Cloud)
	o.N = len(pd.Points)
	o.X = make([]float64, 3*o.N)
	o.Vol = make([]float64, o.N)
	for p, q := range pd.Points {
		if len(q) != 4 {
			return nil, chk.Err("cloud: point %d must have 4 components (x,y,z,vol). %v is invalid", p, q)
		}
		if q[3] <= 0 {
			return nil, chk.Err("cloud: point %d has non-positive volume %g", p, q[3])
		}
		o.X[3*p] = q[0]
		o.X[3*p+1] = q[1]
		o.X[3*p+2] = q[2]
		o.Vol[p] = q[3]
	}
	return
}
