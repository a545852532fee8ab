// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package pen

// Warning defines the kinds of degenerate geometry reported by Result
type Warning int

// degenerate geometry kinds
const (
	WarnAngleZero      Warning = iota // pass angle is zero; depth is exactly 0
	WarnThermalClamp                  // depth limited by the thermal ceiling
	WarnBelowLethality                // energy below the lethality threshold
)

// String returns the name of the warning
func (o Warning) String() string {
	switch o {
	case WarnAngleZero:
		return "angle-zero"
	case WarnThermalClamp:
		return "thermal-clamp"
	case WarnBelowLethality:
		return "below-lethality"
	}
	return "unknown"
}

// Warnings lists the degenerate geometry conditions of this result
func (o Result) Warnings() (ws []Warning) {
	if o.AngleZero {
		ws = append(ws, WarnAngleZero)
	}
	if o.ClampedByThermal {
		ws = append(ws, WarnThermalClamp)
	}
	if o.BelowLethality {
		ws = append(ws, WarnBelowLethality)
	}
	return
}
