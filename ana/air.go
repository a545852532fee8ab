// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package ana

// DryAir handles the reference state of dry air
type DryAir struct {
	Θ float64 // reference temperature; default = 25°C or 298.15K
}

// Init initialises data
func (o *DryAir) Init() {
	o.Θ = 298.15 // [K] 25°C
}

// Ambient returns initialised dry air at the reference temperature
func Ambient() (o DryAir) {
	o.Init()
	return
}
