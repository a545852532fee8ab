// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package gun

import (
	"sort"

	"github.com/cpmech/gopen/mat"
	"github.com/cpmech/gopen/pen"
	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"
)

// Getter returns a new material by name
type Getter func(name string) (*mat.Material, error)

// Preset holds a historical gun and round combination
type Preset struct {
	Name     string  // name of preset
	Desc     string  // description
	Round    string  // round material
	Barrel   string  // barrel material
	Filler   string  // filler material; empty => same as round
	Bafac    float64 // round length-to-diameter factor
	Caliber  float64 // nominal caliber [m]
	Speed    float64 // muzzle speed [m/s]
	Strength float64 // strength factor of the barrel baseline
	Fill     float64 // filler volume fraction
	Exp      float64 // explosive fraction
}

// presets holds all available presets
var presets = map[string]*Preset{
	"9mm":      {Name: "9mm", Desc: "9 mm pistol", Round: "steel", Barrel: "steel", Bafac: 2, Caliber: 0.9 / mat.CmPerM, Speed: 360, Strength: 0.01},
	"7.62nato": {Name: "7.62nato", Desc: "7.62 mm NATO rifle", Round: "steel", Barrel: "steel", Bafac: 3.5, Caliber: 0.762 / mat.CmPerM, Speed: 840, Strength: 0.05},
	"kwk36":    {Name: "kwk36", Desc: "88 mm KwK 36 high-explosive", Round: "steel", Barrel: "steel", Filler: "fuel", Bafac: 4, Caliber: 8.8 / mat.CmPerM, Speed: 773, Strength: 30, Fill: 0.03, Exp: 1},
	"m829":     {Name: "m829", Desc: "120 mm M829 depleted uranium APFSDS", Round: "du", Barrel: "steel", Bafac: 22, Caliber: 2.7 / mat.CmPerM, Speed: 1670, Strength: 50},
	"m107he":   {Name: "m107he", Desc: "155 mm M107 high-explosive", Round: "steel", Barrel: "steel", Filler: "fuel", Bafac: 4.5, Caliber: 15.5 / mat.CmPerM, Speed: 684, Strength: 60, Fill: 0.15, Exp: 1},
}

// Presets returns the names of all presets
func Presets() (names []string) {
	for name := range presets {
		names = append(names, name)
	}
	sort.Strings(names)
	return
}

// GetPreset returns a copy of the preset
func GetPreset(name string) (*Preset, error) {
	p, ok := presets[name]
	if !ok {
		return nil, chk.Err("gun preset %q is not available", name)
	}
	q := *p
	return &q, nil
}

// Setup returns the loadout and scenario of this preset using the builtin materials
func (o *Preset) Setup() (l Loadout, s mat.Scenario, err error) {
	return o.SetupWith(mat.Get)
}

// SetupWith returns the loadout and scenario of this preset using materials from get
func (o *Preset) SetupWith(get Getter) (l Loadout, s mat.Scenario, err error) {
	l, err = NewLoadout(get, o.Round, o.Barrel, o.Filler)
	if err != nil {
		return
	}
	s = mat.Scenario{
		Bafac: o.Bafac,
		F2:    o.Caliber,
		F3:    o.Speed / l.Barrel.MaxSpeed,
		F4:    o.Strength,
		Fill:  o.Fill,
		Exp:   o.Exp,
	}
	err = s.Validate()
	return
}

// NewLoadout allocates the materials of a loadout
func NewLoadout(get Getter, round, barrel, filler string) (l Loadout, err error) {
	l.Round, err = get(round)
	if err != nil {
		return
	}
	l.Barrel, err = get(barrel)
	if err != nil {
		return
	}
	if filler != "" {
		l.Filler, err = get(filler)
		if err != nil {
			return
		}
	}
	err = l.check()
	return
}

// Demo holds the report of one preset
type Demo struct {
	Name     string     // name of preset
	Round    Round      // sized round
	Barrel   Barrel     // sized barrel
	Result   pen.Result // head-on penetration into steel
	PenCm    float64    // penetration [cm]
	BarrelCm float64    // barrel length [cm]
	Radius   float64    // lethality radius [m]
}

// Report sizes the preset and computes its head-on penetration into steel
func Report(name string) (o Demo, err error) {
	p, err := GetPreset(name)
	if err != nil {
		return
	}
	l, s, err := p.Setup()
	if err != nil {
		return
	}
	o.Name = name
	o.Round, o.Barrel, err = Size(l, s)
	if err != nil {
		return
	}
	o.Result, err = pen.PenetrateChecked(mat.Steel(), pen.Impact{Energy: o.Round.Energy, Diameter: o.Round.Diameter})
	if err != nil {
		return
	}
	o.PenCm = o.Result.Depth * mat.CmPerM
	o.BarrelCm = o.Barrel.Length * mat.CmPerM
	o.Radius = pen.LethalityRadius(mat.Skin(), o.Round.Energy)
	return
}

// String returns the (penetration [cm], barrel [cm], lethality radius [m]) line
func (o Demo) String() string {
	return io.Sf("%-9s pen = %8.3f cm  barrel = %8.2f cm  lethality radius = %6.3f m", o.Name, o.PenCm, o.BarrelCm, o.Radius)
}
