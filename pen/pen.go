// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package pen implements the penetration solver: base sectional penetration,
// thermal ceiling, obliquity law and honeycomb derating
package pen

import (
	"math"

	"github.com/cpmech/gopen/cst"
	"github.com/cpmech/gopen/mat"
	"github.com/cpmech/gosl/chk"
)

// skin is the reference organic material for lethality checks
var skin = mat.MustGet("skin")

// Impact holds the data of one projectile hitting a target
type Impact struct {
	Energy   float64 // kinetic energy [J]
	Diameter float64 // projectile diameter [m]
	Az       float64 // azimuth obliquity from surface normal [deg]; 0 = head-on
	El       float64 // elevation obliquity from surface normal [deg]; 0 = head-on
	Layers   int     // number of honeycomb layers; 0 = monolithic
}

// Validate checks the impact data
func (o Impact) Validate() error {
	if o.Energy < 0 {
		return chk.Err("impact energy must not be negative. %g is invalid", o.Energy)
	}
	if o.Diameter < 0 {
		return chk.Err("impact diameter must not be negative. %g is invalid", o.Diameter)
	}
	if o.Layers < 0 {
		return chk.Err("number of layers must not be negative. %d is invalid", o.Layers)
	}
	if math.IsNaN(o.Energy) || math.IsNaN(o.Diameter) || math.IsNaN(o.Az) || math.IsNaN(o.El) {
		return chk.Err("impact data must not contain NaN: %+v", o)
	}
	return nil
}

// Result holds the outcome of a penetration computation
type Result struct {
	Depth            float64 // final penetration depth [m]
	Base             float64 // zero-angle penetration before clamping [m]
	Ceiling          float64 // thermal ceiling [m]
	Obliquity        float64 // combined obliquity from surface normal [deg]
	Angle            float64 // pass angle between trajectory and surface [deg]; 90 = head-on
	ClampedByThermal bool    // base penetration exceeded the thermal ceiling
	AngleZero        bool    // pass angle is zero or negative; depth is exactly 0
	BelowLethality   bool    // energy is below the lethality threshold for this diameter
	LethalEnergy     float64 // lethality threshold [J]
	Invalid          bool    // impact data or target were rejected; all values are zero
}

// Fold folds any angle [deg] into [0, 90]
func Fold(a float64) float64 {
	a = math.Mod(a, 360)
	if a < 0 {
		a += 360
	}
	if a > 180 {
		a = 360 - a
	}
	if a > 90 {
		a = 180 - a
	}
	return a
}

// CombineAngles blends azimuth and elevation obliquities [deg] into one obliquity [deg].
// The second angle dominates as it approaches 90°.
func CombineAngles(az, el float64) float64 {
	u := Fold(az) / 90.0
	w := Fold(el) / 90.0
	return 90.0 * (1.0 - (1.0-u)*math.Pow(1.0-w, cst.Std.Phi))
}

// PassAngle converts an obliquity into the angle between trajectory and surface
func PassAngle(obliquity float64) float64 {
	return 90.0 - obliquity
}

// Sectional returns the sectional energy density measured in HVL units.
// The diameter is floored at one HVL.
func Sectional(m *mat.Material, E, d float64) float64 {
	x := d / m.HVL
	if x < 1 {
		x = 1
	}
	return E / (x * x)
}

// BasePen returns the zero-angle penetration [m]
func BasePen(m *mat.Material, E, d float64) float64 {
	return m.EdHVL * Sectional(m, E, d)
}

// ThermalMaxPen returns the penetration ceiling [m] from the energy needed to melt
// HVL-volumes of m. It does not depend on angle or diameter.
func ThermalMaxPen(m *mat.Material, E float64) float64 {
	b := m.Base()
	return m.HVL * b.Pow(4) * math.Pow(E/m.MeltEnergyHVL, b.Psyche)
}

// Obliquity applies the obliquity law to penetration p at pass angle a [deg].
// a ≤ 0 gives exactly 0.
func Obliquity(p, a float64) float64 {
	if a <= 0 {
		return 0
	}
	if a >= 90 {
		return p
	}
	return p / math.Pow(90.0/a, cst.Std.ObliquityExp)
}

// Honeycomb derates p over nlayers layers; each layer applies the obliquity law
// at the pass angle 90/(2L)² with L counting down to 1
func Honeycomb(p float64, nlayers int) float64 {
	if nlayers <= 0 {
		return p
	}
	l := float64(nlayers)
	return Honeycomb(Obliquity(p, 90.0/(4.0*l*l)), nlayers-1)
}

// LethalEnergy returns the energy needed by a projectile of diameter d to defeat
// one skin layer
func LethalEnergy(s *mat.Material, d float64) float64 {
	t := s.HVL * s.Base().Agnosis
	x := math.Max(d, t)
	return s.Strength * x * x * t
}

// LethalityRadius returns the radius [m] of the sphere of skin material that
// energy E can disrupt
func LethalityRadius(s *mat.Material, E float64) float64 {
	return math.Cbrt(3.0 * E / (4.0 * math.Pi * s.Strength * s.Base().Pow(-7)))
}

// PenetrateChecked validates the impact and computes the penetration into m
func PenetrateChecked(m *mat.Material, in Impact) (res Result, err error) {
	err = in.Validate()
	if err != nil {
		return
	}
	if m == nil {
		return res, chk.Err("target material must be given")
	}

	// zero-angle penetration, clamped by the thermal ceiling
	res.Base = BasePen(m, in.Energy, in.Diameter)
	res.Ceiling = ThermalMaxPen(m, in.Energy)
	p := res.Base
	if p > res.Ceiling {
		p = res.Ceiling
		res.ClampedByThermal = true
	}

	// obliquity
	res.Obliquity = CombineAngles(in.Az, in.El)
	res.Angle = PassAngle(res.Obliquity)
	if res.Angle <= 0 {
		res.AngleZero = true
	}
	p = Obliquity(p, res.Angle)

	// layers
	res.Depth = Honeycomb(p, in.Layers)

	// lethality
	res.LethalEnergy = LethalEnergy(skin, in.Diameter)
	res.BelowLethality = in.Energy < res.LethalEnergy
	return
}

// Penetrate computes the penetration into m. Invalid impacts give a zero result
// flagged Invalid; use PenetrateChecked to get the reason.
func Penetrate(m *mat.Material, in Impact) Result {
	res, err := PenetrateChecked(m, in)
	if err != nil {
		return Result{Invalid: true}
	}
	return res
}
