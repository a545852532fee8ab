// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package hull implements the vehicle design solver: armour and engine masses,
// engine power, turret traversal and impact routing
package hull

import (
	"errors"

	"github.com/cpmech/gopen/ana"
	"github.com/cpmech/gopen/diag"
	"github.com/cpmech/gopen/gun"
	"github.com/cpmech/gopen/mat"
	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"
)

// ErrNotInitialised is returned by queries on a hull that was not initialised
var ErrNotInitialised = errors.New("hull is not initialised; Init must be called first")

// constants
const (
	MaxShots      = 40     // rounds carried when Ammo is set
	ExtraFactor   = 3.5    // extra mass per engine mass
	DefaultPreset = "m829" // main gun
	DefaultLength = 7.9    // [m]
	DefaultFront  = 0.2    // [m]
)

// MassBreakdown holds the mass terms of a hull [kg]
type MassBreakdown struct {
	Front  float64 // front plate
	Side   float64 // both side plates
	Rear   float64 // rear plate
	Fuel   float64 // fuel
	Engine float64 // engine
	Extra  float64 // transmission, tracks and crew
	Barrel float64 // barrel and ammunition
}

// Total returns the sum of all terms
func (o MassBreakdown) Total() float64 {
	return o.Front + o.Side + o.Rear + o.Fuel + o.Engine + o.Extra + o.Barrel
}

// Hull holds a vehicle design
type Hull struct {

	// input
	Name    string  // name of vehicle
	Length  float64 // [m]
	Front   float64 // front armour thickness [m]
	Ammo    bool    // carry MaxShots rounds
	Heading float64 // hull heading [deg]
	THead   float64 // turret heading [deg]
	Tzh     float64 // gun elevation [deg]
	Tlen    float64 // turret length as fraction of Length
	Tw      float64 // turret width as fraction of Width
	Th      float64 // turret height as fraction of Height
	Budget  float64 // available barrel mass [kg]; zero => unlimited

	// materials and gun
	Armor    *mat.Material // armour
	Fuel     *mat.Material // fuel
	Air      *mat.Material // cooling air
	Gun      gun.Loadout   // main gun; empty => DefaultPreset
	Scenario mat.Scenario  // main gun scenario

	// derived
	Width  float64 // Length/2 [m]
	Height float64 // Width/2 [m]
	Side   float64 // Front/2 [m]
	Rear   float64 // Side/2 [m]
	Gear   float64 // gear ratio Φ⁻¹
	Masses MassBreakdown
	Mass   float64    // total mass [kg]
	Power  float64    // engine power [W]
	Round  gun.Round  // main gun round
	Barrel gun.Barrel // main gun barrel
	Scaled bool       // round was scaled down to fit Budget

	// turret
	Turret Turret

	// auxiliary
	get         gun.Getter // material source
	initialised bool
}

// New returns a new hull with builtin materials, default gun and turret
func New(name string, length float64, ammo bool, front float64) (*Hull, error) {
	return NewWith(mat.Get, name, length, ammo, front)
}

// NewWith returns a new hull taking armour, fuel, air and the default gun materials from get
func NewWith(get gun.Getter, name string, length float64, ammo bool, front float64) (o *Hull, err error) {
	o = &Hull{Name: name, Length: length, Front: front, Ammo: ammo, Tlen: 0.5, Tw: 0.7, Th: 0.4, get: get}
	if o.Armor, err = get("steel"); err != nil {
		return nil, err
	}
	if o.Fuel, err = get("fuel"); err != nil {
		return nil, err
	}
	if o.Air, err = get("N"); err != nil {
		return nil, err
	}
	return
}

// Design initialises h and returns it
func Design(h *Hull) (*Hull, error) {
	return h, h.Init()
}

// Init sizes the gun and computes dimensions, masses, power and turret dynamics
func (o *Hull) Init() (err error) {

	// check
	o.initialised = false
	if o.Length <= 0 || o.Front <= 0 {
		return chk.Err("hull %q: length and front armour must be positive. (%g, %g) is invalid", o.Name, o.Length, o.Front)
	}
	if o.Armor == nil || o.Fuel == nil || o.Air == nil {
		return chk.Err("hull %q: armour, fuel and air materials must be given", o.Name)
	}
	if o.Budget < 0 {
		return chk.Err("hull %q: barrel mass budget must not be negative. %g is invalid", o.Name, o.Budget)
	}
	if o.Tlen <= 0 || o.Tw <= 0 || o.Th <= 0 || o.Tlen > 1 || o.Tw > 1 || o.Th > 1 {
		return chk.Err("hull %q: turret fractions must be in (0,1]. (%g, %g, %g) is invalid", o.Name, o.Tlen, o.Tw, o.Th)
	}

	// gun
	if o.Gun.Round == nil && o.Gun.Barrel == nil {
		var p *gun.Preset
		if p, err = gun.GetPreset(DefaultPreset); err != nil {
			return
		}
		get := o.get
		if get == nil {
			get = mat.Get
		}
		if o.Gun, o.Scenario, err = p.SetupWith(get); err != nil {
			return
		}
	}
	o.Round, o.Barrel, err = gun.Size(o.Gun, o.Scenario)
	if err != nil {
		return chk.Err("hull %q: cannot size main gun:\n%v", o.Name, err)
	}
	o.Scaled = false
	if o.Budget > 0 {
		o.Round, o.Scaled = gun.ScaleToBarrelMass(o.Round, o.Barrel, o.Budget)
		if o.Scaled {
			o.Barrel.Mass = o.Budget
		}
	}

	// dimensions
	base := o.Armor.Base()
	o.Width = o.Length / 2.0
	o.Height = o.Width / 2.0
	o.Side = o.Front / 2.0
	o.Rear = o.Side / 2.0
	o.Gear = base.Matter

	// masses
	ρ := o.Armor.Density
	face := ana.Rectangle(o.Width, o.Height)
	flank := ana.Rectangle(o.Length, o.Height)
	o.Masses.Front = o.Front * face.A * ρ
	o.Masses.Side = 2.0 * o.Side * flank.A * ρ
	o.Masses.Rear = o.Rear * face.A * ρ
	h := o.Height
	o.Masses.Fuel = o.Fuel.Fill * h * h * h * o.Fuel.Density
	o.Masses.Engine = o.Masses.Fuel * o.Fuel.BondEnergy / o.Armor.BondEnergy * o.Gear
	o.Masses.Extra = ExtraFactor * o.Masses.Engine
	o.Masses.Barrel = o.Barrel.Mass
	if o.Ammo {
		o.Masses.Barrel += MaxShots * o.Round.Mass
	}
	o.Mass = o.Masses.Total()

	// power
	o.Power = o.Gethc() * o.Masses.Engine * o.Gear * base.Phi

	// turret
	o.Turret.init(o)
	o.initialised = true
	diag.Event("hull designed", "hull", o.Name, "mass", o.Mass, "power", o.Power)
	return
}

// HeatTransfer returns the airflow heat transfer coefficient [W/(m²・K)]
func (o *Hull) HeatTransfer() float64 {
	a := o.Air.Base().Alpha
	return o.Air.Density * o.Air.SpecificHeat * o.Air.SoundSpeed * a * a
}

// Gethc returns the heat rejected per armour mass [W/kg]. Undefined for zero HVL.
func (o *Hull) Gethc() float64 {
	air := ana.Ambient()
	hvl := o.Armor.HVL
	return hvl * hvl * o.HeatTransfer() * (o.Armor.MeltTemp - air.Θ) / (o.Armor.Density * hvl * hvl * hvl)
}

// Speed returns the top speed [m/s]
func (o *Hull) Speed() (float64, error) {
	if !o.initialised {
		return 0, ErrNotInitialised
	}
	return o.Power / (o.Mass * o.Armor.Base().G * o.Armor.Base().Pow(-5)), nil
}

// KineticEnergy returns the kinetic energy at top speed [J]
func (o *Hull) KineticEnergy() (float64, error) {
	v, err := o.Speed()
	if err != nil {
		return 0, err
	}
	return 0.5 * o.Mass * v * v, nil
}

// Initialised tells whether Init succeeded
func (o *Hull) Initialised() bool {
	return o.initialised
}

// String returns a summary of this hull
func (o *Hull) String() string {
	l := io.Sf("%s: %g x %g x %g m, front = %g m\n", o.Name, o.Length, o.Width, o.Height, o.Front)
	l += io.Sf("  mass  = %g kg\n", o.Mass)
	l += io.Sf("  power = %g W\n", o.Power)
	l += io.Sf("  gun   = %g mm, %g m/s, barrel %g m\n", o.Round.Diameter*1000, o.Round.Velocity, o.Barrel.Length)
	return l
}
