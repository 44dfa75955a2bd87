// Copyright 2016 The Gopd Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package inp

import (
	"encoding/json"
	"path/filepath"

	"github.com/cpmech/gopd/mdl/bond"
	"github.com/cpmech/gopd/mdl/contact"
	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/fun/dbf"
	"github.com/cpmech/gosl/io"
)

// Material holds material data
type Material struct {

	// input
	Name  string     `json:"name"`  // name of material
	Type  string     `json:"type"`  // type of material; e.g. "bond", "contact"
	Model string     `json:"model"` // name of model; e.g. "pmb", "lps", "repulsion"
	Prms  dbf.Params `json:"prms"`  // all model parameters for this material

	// derived
	Bond    bond.Model    // pointer to actual bond model
	Contact contact.Model // pointer to actual contact model
}

// MatsData holds materials
type MatsData []*Material

// MatDb implements a database of materials
type MatDb struct {

	// input
	Functions FuncsData `json:"functions"` // all functions
	Materials MatsData  `json:"materials"` // all materials

	// derived
	Bonds    map[string]*Material // subset with materials/models: bond models
	Contacts map[string]*Material // subset with materials/models: contact models
}

// ReadMat reads all materials data from a .mat JSON file
func ReadMat(dir, fn string) (mdb *MatDb, err error) {

	// new database
	mdb = new(MatDb)

	// read file
	b, err := io.ReadFile(filepath.Join(dir, fn))
	if err != nil {
		return nil, err
	}

	// decode
	err = json.Unmarshal(b, mdb)
	if err != nil {
		return
	}

	// subsets
	mdb.Bonds = make(map[string]*Material)
	mdb.Contacts = make(map[string]*Material)
	for _, m := range mdb.Materials {
		switch m.Type {
		case "bond":
			mdb.Bonds[m.Name] = m
		case "contact":
			mdb.Contacts[m.Name] = m
		default:
			err = chk.Err("material type %q is incorrect; options are \"bond\" and \"contact\"", m.Type)
			return
		}
	}

	// alloc/init: bond models
	for _, m := range mdb.Bonds {
		m.Bond, err = bond.New(m.Model)
		if err != nil {
			return
		}
		err = m.Bond.Init(m.Prms)
		if err != nil {
			return
		}
	}

	// alloc/init: contact models
	for _, m := range mdb.Contacts {
		m.Contact, err = contact.New(m.Model)
		if err != nil {
			return
		}
		err = m.Contact.Init(m.Prms)
		if err != nil {
			return
		}
	}
	return
}

// Get returns a material
//  Note: returns nil if not found
func (o MatDb) Get(name string) *Material {
	for _, mat := range o.Materials {
		if mat.Name == name {
			return mat
		}
	}
	return nil
}
