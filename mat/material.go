// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package mat implements material records with derived physical properties,
// a registry of named materials and the firing scenario that parameterises solvers
package mat

import (
	"math"

	"github.com/cpmech/gopen/cst"
	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"
)

// Material holds primitive and derived properties of one material.
// It is not modified after Init.
type Material struct {

	// input
	Name         string  // name of material
	MolarMass    float64 // molar mass [g/mol]
	Density      float64 // density [kg/m³]
	AtomicRadius float64 // atomic radius [m]
	AtomicNumber float64 // atomic number (mean value for compounds)
	Cohesive     float64 // cohesive energy [eV/atom]
	HVL          float64 // half-value length [m]; zero means derived
	Weak         float64 // derating multiplier of the strength estimate
	Fill         float64 // volume fill fraction
	MeltingPoint float64 // optional melting point [K]
	SpecificHeat float64 // optional specific heat [J/(kg・K)]
	Tensile      float64 // optional tensile strength [Pa]

	// derived
	AtomMass        float64 // mass of one atom [kg]
	NumberDensity   float64 // atoms per volume [1/m³]
	ElectronDensity float64 // electrons per volume [1/m³]
	BondEnergy      float64 // cohesive bond energy per mass [J/kg]
	HighEst         float64 // strength per mass; high estimate [J/kg]
	Strength        float64 // strength [Pa]
	MeltTemp        float64 // melting/vaporization temperature-equivalent [K]
	MeltEnergy      float64 // energy to melt and vaporize one kg [J/kg]
	HVLMass         float64 // mass of one HVL-volume [kg]
	MeltEnergyHVL   float64 // energy to melt one HVL-volume [J]
	Packing         float64 // atomic packing fraction
	SoundSpeed      float64 // sound-speed-like velocity [m/s]
	MaxSpeed        float64 // muzzle speed ceiling when used as barrel [m/s]
	EdHVL           float64 // penetration per sectional energy density [m/J]

	// constants used to derive the properties above
	base *cst.Base
}

// Init computes all derived properties
func (o *Material) Init(base *cst.Base) (err error) {

	// check input
	if base == nil {
		base = cst.Std
	}
	if o.MolarMass <= 0 {
		return chk.Err("material %q: molar mass must be positive. %g is invalid", o.Name, o.MolarMass)
	}
	if o.Density <= 0 {
		return chk.Err("material %q: density must be positive. %g is invalid", o.Name, o.Density)
	}
	if o.AtomicNumber <= 0 {
		return chk.Err("material %q: atomic number must be positive. %g is invalid", o.Name, o.AtomicNumber)
	}
	if o.Cohesive <= 0 {
		return chk.Err("material %q: cohesive energy must be positive. %g is invalid", o.Name, o.Cohesive)
	}
	if o.HVL < 0 || o.AtomicRadius < 0 {
		return chk.Err("material %q: HVL and atomic radius must not be negative", o.Name)
	}
	if o.Weak <= 0 {
		return chk.Err("material %q: weak factor must be positive. %g is invalid", o.Name, o.Weak)
	}
	if o.Fill < 0 || o.Fill > 1 {
		return chk.Err("material %q: fill fraction must be in [0,1]. %g is invalid", o.Name, o.Fill)
	}
	o.base = base

	// atoms
	o.AtomMass = o.MolarMass * 1e-3 / base.Na
	o.NumberDensity = o.Density / o.AtomMass
	o.ElectronDensity = o.NumberDensity * o.AtomicNumber

	// bonds and strength
	o.BondEnergy = o.Cohesive * base.Qe / o.AtomMass
	if o.Tensile > 0 {
		o.HighEst = o.Tensile / o.Density * o.Weak
	} else {
		o.HighEst = o.BondEnergy * base.Alpha * o.Weak
	}
	o.Strength = o.HighEst * o.Density

	// thermal
	if o.SpecificHeat <= 0 {
		o.SpecificHeat = 3.0 * base.Kb / o.AtomMass
	}
	o.MeltTemp = o.MeltingPoint
	if o.MeltTemp <= 0 {
		o.MeltTemp = base.EvToKelvin(o.Cohesive) / base.Pow(7)
	}
	o.MeltEnergy = o.SpecificHeat*o.MeltTemp + o.BondEnergy

	// attenuation
	if o.HVL == 0 {
		o.HVL = math.Ln2 / (base.SigmaE * o.ElectronDensity)
	}
	o.HVLMass = o.Density * o.HVL * o.HVL * o.HVL
	o.MeltEnergyHVL = o.HVLMass * o.MeltEnergy

	// velocities
	r := o.AtomicRadius
	o.Packing = o.NumberDensity * (4.0 / 3.0) * math.Pi * r * r * r
	o.SoundSpeed = base.Phi * math.Sqrt(2.0*o.BondEnergy*o.Packing)
	o.MaxSpeed = o.SoundSpeed * base.Phi

	// penetration
	o.EdHVL = 1.0 / (o.Strength * o.HVL * o.HVL)
	return
}

// Base returns the constants used by Init
func (o *Material) Base() *cst.Base {
	if o.base == nil {
		return cst.Std
	}
	return o.base
}

// String returns a summary of this material
func (o *Material) String() string {
	l := io.Sf("%s:\n", o.Name)
	l += io.Sf("  density       = %g [kg/m³]\n", o.Density)
	l += io.Sf("  HVL           = %g [m]\n", o.HVL)
	l += io.Sf("  bond energy   = %g [J/kg]\n", o.BondEnergy)
	l += io.Sf("  strength      = %g [Pa]\n", o.Strength)
	l += io.Sf("  melt temp     = %g [K]\n", o.MeltTemp)
	l += io.Sf("  melt E / HVL  = %g [J]\n", o.MeltEnergyHVL)
	l += io.Sf("  sound speed   = %g [m/s]\n", o.SoundSpeed)
	return l
}
