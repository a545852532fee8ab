// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package cst implements the base of derived universal constants shared by all models.
// Everything is computed once by New and never changed afterwards.
package cst

import "math"

// Base holds primitive and derived constants
type Base struct {

	// primitive
	Me   float64 // electron mass [kg]
	Qe   float64 // elementary charge [C]; also [J] per [eV]
	Kb   float64 // Boltzmann constant [J/K]
	C    float64 // speed of light [m/s]
	Hbar float64 // reduced Planck constant [J・s]
	G    float64 // gravity acceleration [m/s²]

	// golden ratio and its powers
	Phi      float64 // Φ
	Matter   float64 // Φ⁻¹
	Psyche   float64 // Φ⁻²
	Agnosis  float64 // Φ⁻³
	Nous     float64 // Φ²
	Totality float64 // Φ³

	// derived
	Alpha        float64 // fine-structure-like scale factor: 1/(360/Φ² - 2/Φ³)
	Mu           float64 // elementary mass scale: Me・6π⁵ [kg]
	Na           float64 // atoms per mol: 1e-3/Mu
	Re           float64 // classical electron radius: α・ħ/(Me・c) [m]
	SigmaE       float64 // attenuation cross-section per electron: (8π/3)・Re²・Φ⁻² [m²]
	ObliquityExp float64 // exponent of the obliquity law: 4^Φ
	Friction     float64 // friction coefficient: Φ⁻²
}

// Std is the process-wide read-only base
var Std = New()

// New computes a new set of constants
func New() (o *Base) {
	o = new(Base)

	o.Me = 9.1093837015e-31
	o.Qe = 1.602176634e-19
	o.Kb = 1.380649e-23
	o.C = 299792458.0
	o.Hbar = 1.054571817e-34
	o.G = 9.80665

	o.Phi = (1.0 + math.Sqrt(5.0)) / 2.0
	o.Matter = o.Pow(-1)
	o.Psyche = o.Pow(-2)
	o.Agnosis = o.Pow(-3)
	o.Nous = o.Pow(2)
	o.Totality = o.Pow(3)

	o.Alpha = 1.0 / (360.0/o.Nous - 2.0/o.Totality)
	o.Mu = o.Me * 6.0 * math.Pow(math.Pi, 5)
	o.Na = 1e-3 / o.Mu
	o.Re = o.Alpha * o.Hbar / (o.Me * o.C)
	o.SigmaE = (8.0 * math.Pi / 3.0) * o.Re * o.Re * o.Psyche
	o.ObliquityExp = math.Pow(4.0, o.Phi)
	o.Friction = o.Psyche
	return
}

// Pow returns Φⁿ
func (o *Base) Pow(n float64) float64 {
	return math.Pow(o.Phi, n)
}

// EvToKelvin converts an energy in [eV] to the equivalent temperature [K]
func (o *Base) EvToKelvin(ev float64) float64 {
	return ev * o.Qe / o.Kb
}
