// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package mat

import (
	"strings"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/utl"
)

// CmPerM converts metres to centimetres
const CmPerM = 100.0

// Scenario holds the multipliers describing one gun/round configuration.
// It is passed by value to the solvers; materials are never tuned in place.
type Scenario struct {
	Bafac float64 // round length-to-diameter factor
	F2    float64 // caliber seed [m]
	F3    float64 // velocity ratio: muzzle speed / barrel max speed
	F4    float64 // strength factor applied to the barrel energy baseline
	Fill  float64 // filler volume fraction of the round
	Exp   float64 // explosive fraction of the filler bond energy
}

// Neutral returns the neutral scenario: (1, 1, 1, 1) multipliers, no filler, no explosive
func Neutral() Scenario {
	return Scenario{Bafac: 1, F2: 1, F3: 1, F4: 1, Fill: 0, Exp: 0}
}

// ResetTuning returns s with the tuning multipliers set back to neutral values.
// The fill fraction is kept.
func ResetTuning(s Scenario) Scenario {
	n := Neutral()
	n.Fill = s.Fill
	return n
}

// Init sets this scenario from parameters. Missing parameters take neutral values.
func (o *Scenario) Init(prms utl.Params) (err error) {
	*o = Neutral()
	for _, p := range prms {
		switch strings.ToLower(p.N) {
		case "bafac":
			o.Bafac = p.V
		case "f2":
			o.F2 = p.V
		case "f3":
			o.F3 = p.V
		case "f4":
			o.F4 = p.V
		case "fill":
			o.Fill = p.V
		case "exp":
			o.Exp = p.V
		default:
			return chk.Err("scenario: parameter named %q is incorrect\n", p.N)
		}
	}
	return o.Validate()
}

// GetPrms gets (an example) of parameters
func (o Scenario) GetPrms(example bool) utl.Params {
	if example {
		return utl.Params{
			&utl.P{N: "bafac", V: 2},
			&utl.P{N: "f2", V: 0.9 / CmPerM},
			&utl.P{N: "f3", V: 0.0428},
			&utl.P{N: "f4", V: 0.01},
			&utl.P{N: "fill", V: 0},
			&utl.P{N: "exp", V: 0},
		}
	}
	return o.Params()
}

// Params returns the current values as parameters
func (o Scenario) Params() utl.Params {
	return utl.Params{
		&utl.P{N: "bafac", V: o.Bafac},
		&utl.P{N: "f2", V: o.F2},
		&utl.P{N: "f3", V: o.F3},
		&utl.P{N: "f4", V: o.F4},
		&utl.P{N: "fill", V: o.Fill},
		&utl.P{N: "exp", V: o.Exp},
	}
}

// Validate checks the ranges of all multipliers
func (o Scenario) Validate() error {
	if o.Bafac <= 0 || o.F2 <= 0 || o.F3 <= 0 || o.F4 <= 0 {
		return chk.Err("scenario: bafac, f2, f3 and f4 must be positive. (%g, %g, %g, %g) is invalid", o.Bafac, o.F2, o.F3, o.F4)
	}
	if o.Fill < 0 || o.Fill >= 1 {
		return chk.Err("scenario: fill must be in [0,1). %g is invalid", o.Fill)
	}
	if o.Exp < 0 {
		return chk.Err("scenario: exp must not be negative. %g is invalid", o.Exp)
	}
	return nil
}
