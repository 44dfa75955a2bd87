// Copyright 2016 The Gopd Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package tests

import (
	"github.com/cpmech/gopd/pd"
	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"
)

func init() {
	io.Verbose = false
}

func Verbose() {
	io.Verbose = true
	chk.Verbose = true
}

// Interior returns the ids of points at least margin away from the bounding box
// of the cloud; those points carry complete neighborhoods
func Interior(dom *pd.Domain, margin float64) (ids []int) {
	xmin := []float64{dom.X[0], dom.X[1], dom.X[2]}
	xmax := []float64{dom.X[0], dom.X[1], dom.X[2]}
	for i := 1; i < dom.N; i++ {
		for j := 0; j < 3; j++ {
			if dom.X[3*i+j] < xmin[j] {
				xmin[j] = dom.X[3*i+j]
			}
			if dom.X[3*i+j] > xmax[j] {
				xmax[j] = dom.X[3*i+j]
			}
		}
	}
	for i := 0; i < dom.N; i++ {
		in := true
		for j := 0; j < 3; j++ {
			x := dom.X[3*i+j]
			if x < xmin[j]+margin || x > xmax[j]-margin {
				in = false
				break
			}
		}
		if in {
			ids = append(ids, i)
		}
	}
	return
}
