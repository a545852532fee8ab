// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package gun implements the round and barrel sizing solver.
//
//  The sizing is one pass through the pipeline
//
//     barrel material ── Baseline ──> Seed ── RoundFromSeed ──> Round ── BarrelFromRound ──> Barrel
//                                      │                          ▲
//                                      └── Buckling ── Damage ────┘
//
//  The caliber depends on the barrel wall and the barrel wall depends on the caliber;
//  the pipeline resolves this once and is never iterated to convergence.
package gun

import (
	"math"

	"github.com/cpmech/gopen/ana"
	"github.com/cpmech/gopen/mat"
	"github.com/cpmech/gosl/chk"
)

// Loadout holds the materials of a gun
type Loadout struct {
	Round  *mat.Material // projectile body
	Barrel *mat.Material // barrel
	Filler *mat.Material // filler of the round; nil => same as Round
}

// Seed holds the round-independent baseline derived from the barrel material
type Seed struct {
	Energy  float64 // baseline energy [J]
	Caliber float64 // nominal caliber [m]
}

// Round holds the sized projectile
type Round struct {
	Diameter   float64 // [m]
	Velocity   float64 // muzzle velocity [m/s]
	Length     float64 // [m]
	Volume     float64 // [m³]
	FrontMass  float64 // mass of the body [kg]
	FillerMass float64 // mass of the filler [kg]
	Mass       float64 // total mass [kg]
	Energy     float64 // kinetic energy [J]
	Explosive  float64 // energy released by the filler [J]
	Buckling   float64 // barrel buckling ratio used to size the caliber
	Damage     float64 // energy cap [J]
	Capped     bool    // kinetic energy was limited by the damage cap
}

// Barrel holds the sized barrel
type Barrel struct {
	Length   float64 // [m]
	Mass     float64 // [kg]
	Wall     float64 // wall thickness [m]
	Area     float64 // wall cross-sectional area [m²]
	Inertia  float64 // bending moment of inertia of the wall section [m⁴]
	Fineness float64 // fineness factor
	Corr     float64 // large-caliber correction
	Fallback bool    // fineness took the fallback value
}

// LenRatio is the load length per caliber used by the buckling ratio, as a power of Φ
const LenRatio = 8.0

// check checks the loadout and fills the default filler
func (o *Loadout) check() error {
	if o.Round == nil || o.Barrel == nil {
		return chk.Err("loadout requires round and barrel materials")
	}
	if o.Filler == nil {
		o.Filler = o.Round
	}
	return nil
}

// Baseline returns the round-independent energy baseline of the barrel
func Baseline(l Loadout, s mat.Scenario) Seed {
	return Seed{
		Energy:  l.Barrel.MeltEnergyHVL * s.F4,
		Caliber: s.F2,
	}
}

// Barmm returns the barrel wall cross-section area and thickness for bore d
func Barmm(b *mat.Material, d float64) (area, wall float64) {
	base := b.Base()
	wall = d*base.Phi + b.HVL*base.Agnosis
	tube := ana.Annulus(d, wall)
	return tube.A, wall
}

// Buckling returns the ratio of the barrel wall capacity to the baseline load, up to 1.
// Undefined for zero seed energy.
func Buckling(l Loadout, seed Seed) float64 {
	area, _ := Barmm(l.Barrel, seed.Caliber)
	load := seed.Energy / (seed.Caliber * l.Barrel.Base().Pow(LenRatio))
	return math.Min(1, area*l.Barrel.Strength/load)
}

// Damage returns the energy cap of the round
func Damage(seed Seed, buc float64) float64 {
	return seed.Energy * buc
}

// RoundFromSeed sizes the round from the seed
func RoundFromSeed(l Loadout, s mat.Scenario, seed Seed) (r Round) {
	if l.Filler == nil {
		l.Filler = l.Round
	}

	// caliber and speed
	r.Buckling = Buckling(l, seed)
	r.Damage = Damage(seed, r.Buckling)
	r.Diameter = seed.Caliber * math.Cbrt(r.Buckling)
	r.Velocity = s.F3 * l.Barrel.MaxSpeed

	// geometry and masses
	d := r.Diameter
	r.Length = d * s.Bafac
	r.Volume = ana.Circle(d).A * r.Length
	r.FrontMass = l.Round.Density * r.Volume * (1.0 - s.Fill)
	r.FillerMass = l.Filler.Density * r.Volume * s.Fill
	r.Mass = r.FrontMass + r.FillerMass

	// energy; undefined for zero mass when capped
	r.Energy = 0.5 * r.Mass * r.Velocity * r.Velocity
	if r.Energy > r.Damage {
		r.Energy = r.Damage
		r.Velocity = math.Sqrt(2.0 * r.Energy / r.Mass)
		r.Capped = true
	}
	r.Explosive = s.Exp * r.FillerMass * l.Filler.BondEnergy
	return
}

// RoundLenMass returns the ratio of total mass to front mass; 1 if the front mass is zero
func RoundLenMass(r Round) float64 {
	if r.FrontMass == 0 {
		return 1
	}
	return r.Mass / r.FrontMass
}

// Fineness returns |log2(1 - v/vmax)|, or Φ³ when this is not a positive finite number.
// Undefined for zero vmax.
func Fineness(b *mat.Material, v float64) (f float64, fallback bool) {
	f = math.Abs(math.Log2(1.0 - v/b.MaxSpeed))
	if !(f > 0) || math.IsInf(f, 0) {
		return b.Base().Totality, true
	}
	return f, false
}

// BarrelFromRound sizes the barrel that contains and accelerates r.
// Undefined for zero round diameter.
func BarrelFromRound(l Loadout, s mat.Scenario, r Round) (b Barrel) {
	base := l.Barrel.Base()
	d := r.Diameter

	// factors
	melt := l.Barrel.MeltTemp / l.Round.MeltTemp
	slender := r.Length / d * RoundLenMass(r)
	b.Fineness, b.Fallback = Fineness(l.Barrel, r.Velocity)
	b.Corr = 1
	cut := l.Barrel.HVL * base.Phi
	if d > cut {
		b.Corr = math.Pow(d/cut, base.Matter)
	}

	// length and mass
	b.Length = d * base.Pow(LenRatio) * melt * slender * b.Fineness * b.Corr
	b.Area, b.Wall = Barmm(l.Barrel, d)
	b.Inertia = ana.Annulus(d, b.Wall).I22
	b.Mass = b.Area * b.Length * l.Barrel.Density
	return
}

// Size sizes the round and its barrel
func Size(l Loadout, s mat.Scenario) (r Round, b Barrel, err error) {
	if err = l.check(); err != nil {
		return
	}
	if err = s.Validate(); err != nil {
		return
	}
	seed := Baseline(l, s)
	r = RoundFromSeed(l, s, seed)
	b = BarrelFromRound(l, s, r)
	return
}

// BarrelLength returns the length of the barrel sized for l and s
func BarrelLength(l Loadout, s mat.Scenario) (float64, error) {
	_, b, err := Size(l, s)
	if err != nil {
		return 0, err
	}
	return b.Length, nil
}

// ScaleToBarrelMass scales the round down to fit a barrel of the available mass.
// It returns false and r unchanged when the barrel already fits.
func ScaleToBarrelMass(r Round, b Barrel, available float64) (Round, bool) {
	if !(available < b.Mass) {
		return r, false
	}
	k := available / b.Mass
	kd := math.Pow(k, 5.0/4.0)
	km := math.Pow(k, 3.0/8.0)
	r.Diameter *= kd
	r.Length *= kd
	r.Velocity *= math.Pow(k, 11.0/12.0)
	r.Mass *= km
	r.FrontMass *= km
	r.FillerMass *= km
	r.Volume *= km
	r.Energy = 0.5 * r.Mass * r.Velocity * r.Velocity
	return r, true
}
