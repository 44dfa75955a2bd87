// Copyright 2016 The Gopd Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package contact implements short-range contact models for particle clouds
package contact

import (
	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/fun/dbf"
)

// Model defines the interface for contact models. Contact acts between pairs of
// points closer than Radius in the current configuration.
type Model interface {
	Init(prms dbf.Params) error        // initialises model
	GetPrms() dbf.Params               // gets (an example) of parameters
	Radius() float64                   // contact search radius R_c
	ForceCoeff(r, vol float64) float64 // force density coefficient at current distance r < R_c
}

// New returns new contact model
func New(name string) (model Model, err error) {
	allocator, ok := allocators[name]
	if !ok {
		return nil, chk.Err("model %q is not available in 'contact' database", name)
	}
	return allocator(), nil
}

// allocators holds all available contact models; modelname => allocator
var allocators = map[string]func() Model{}
