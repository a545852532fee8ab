// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package inp

import (
	"encoding/json"
	"os"
	"path/filepath"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/utl"
	"github.com/cpmech/gosl/io"
)

// LoadoutData holds the materials and parameters of a gun
type LoadoutData struct {
	Preset string     `json:"preset"` // name of catalog preset; overrides the fields below
	Round  string     `json:"round"`  // round material name
	Barrel string     `json:"barrel"` // barrel material name
	Filler string     `json:"filler"` // filler material name; empty => same as round
	Prms   utl.Params `json:"prms"`   // scenario parameters: bafac, f2, f3, f4, fill, exp
}

// ShotData holds one impact computation
type ShotData struct {
	Name   string  `json:"name"`   // name of shot
	Target string  `json:"target"` // target material name
	LoadoutData                     // gun producing the round
	Az     float64 `json:"az"`     // azimuth obliquity [deg]
	El     float64 `json:"el"`     // elevation obliquity [deg]
	Layers int     `json:"layers"` // honeycomb layers
}

// TurretData holds the turret fractions
type TurretData struct {
	Tlen float64 `json:"tlen"` // length as fraction of hull length
	Tw   float64 `json:"tw"`   // width as fraction of hull width
	Th   float64 `json:"th"`   // height as fraction of hull height
}

// AngleData holds one pair of angles
type AngleData struct {
	Az float64 `json:"az"` // azimuth [deg]
	El float64 `json:"el"` // elevation [deg]
}

// HullData holds one vehicle
type HullData struct {
	Name     string       `json:"name"`       // name of vehicle
	Length   float64      `json:"length"`     // hull length [m]
	Front    float64      `json:"front"`      // front armour thickness [m]
	Ammo     bool         `json:"ammo"`       // carry ammunition
	Armor    string       `json:"armor"`      // armour material name; empty => steel
	Budget   float64      `json:"barrelMass"` // available barrel mass [kg]; zero => unlimited
	Heading  float64      `json:"heading"`    // initial heading [deg]
	Turret   *TurretData  `json:"turret"`     // turret fractions; nil => defaults
	Gun      *LoadoutData `json:"gun"`        // main gun; nil => default preset
	Traverse []AngleData  `json:"traverse"`   // sequence of turret orders [deg]
	Hits     []AngleData  `json:"hits"`       // incoming rounds fired by the hull's own gun [deg]
}

// Simulation holds all simulation data
type Simulation struct {

	// input
	Desc    string      `json:"desc"`    // description of simulation
	Matfile string      `json:"matfile"` // materials file path; empty => builtin factories
	HvlMeV  float64     `json:"hvlMeV"`  // photon energy used to select HVL entries [MeV]
	Shots   []*ShotData `json:"shots"`   // impacts
	Hulls   []*HullData `json:"hulls"`   // vehicles

	// derived
	Key   string // simulation key; e.g. demo.sim => demo
	MatDb *MatDb // materials database; nil => builtin factories
}

// ReadSim reads all simulation data from a .sim JSON file
func ReadSim(dir, fn string) (o *Simulation, err error) {

	// read file
	dir = os.ExpandEnv(dir)
	b, err := os.ReadFile(filepath.Join(dir, fn))
	if err != nil {
		return nil, chk.Err("ReadSim: cannot read simulation file %q:\n%v", fn, err)
	}

	// decode
	o = &Simulation{HvlMeV: 1}
	err = json.Unmarshal(b, o)
	if err != nil {
		return nil, chk.Err("ReadSim: cannot unmarshal simulation file %q:\n%v", fn, err)
	}
	o.Key = io.FnKey(fn)

	// materials database
	if o.Matfile != "" {
		o.MatDb, err = ReadMat(dir, o.Matfile)
		if err != nil {
			return nil, chk.Err("ReadSim: cannot read materials file:\n%v", err)
		}
	}

	// check
	if o.HvlMeV <= 0 {
		return nil, chk.Err("ReadSim: hvlMeV must be positive. %g is invalid", o.HvlMeV)
	}
	for i, s := range o.Shots {
		if s.Target == "" {
			return nil, chk.Err("ReadSim: shot # %d (%q) has no target material", i, s.Name)
		}
		if s.Layers < 0 {
			return nil, chk.Err("ReadSim: shot %q: number of layers must not be negative", s.Name)
		}
		if err = s.LoadoutData.check(); err != nil {
			return nil, chk.Err("ReadSim: shot %q: %v", s.Name, err)
		}
	}
	for i, h := range o.Hulls {
		if h.Name == "" {
			h.Name = io.Sf("hull%d", i)
		}
		if h.Length <= 0 || h.Front <= 0 {
			return nil, chk.Err("ReadSim: hull %q: length and front must be positive", h.Name)
		}
		if h.Budget < 0 {
			return nil, chk.Err("ReadSim: hull %q: barrel mass must not be negative", h.Name)
		}
		if h.Gun != nil {
			if err = h.Gun.check(); err != nil {
				return nil, chk.Err("ReadSim: hull %q: %v", h.Name, err)
			}
		}
	}
	return
}

// check verifies that either a preset or the round and barrel materials are given
func (o LoadoutData) check() error {
	if o.Preset != "" {
		return nil
	}
	if o.Round == "" || o.Barrel == "" {
		return chk.Err("gun requires a preset or both round and barrel materials")
	}
	return nil
}
