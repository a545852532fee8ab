// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package ana implements reference geometry and ambient properties
package ana

import (
	"math"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"
)

// CrossSection computes areas and bending moments of inertia of plates, rods and tubes
//
//   typ : rectangle
//         circle                         annulus
//                                            ,-----.
//   ^ 1       +-------+                    ,' ,---. `.
//   |         |       |                   /  /     \  \
//   |         |       |                  |  |   o-R-|  |
//   +----> 2  |       | h = hei          |  |       |  |
//             |       |                   \  \     /  /
//             |       |                    `. `---' ,'
//             +-------+                      `-----'
//              b = wid                     -->|  |<-- tw (wall)
//
type CrossSection struct {

	// input
	Type string  // "rectangle", "circle" or "annulus"
	Unit string  // unit of length
	Wid  float64 // width (b) if rectangle
	Hei  float64 // height (h) if rectangle
	Tw   float64 // wall thickness if annulus
	R    float64 // radius if circle; inner radius if annulus

	// derived
	A   float64 // cross-sectional area
	I22 float64 // moment of inertia about the 2-axis
}

// Init initialises structure and computes moment of inertia
func (o *CrossSection) Init(typ, unitLen string, wid, hei, tw, rad float64) {

	// input data
	o.Type, o.Unit, o.Wid, o.Hei, o.Tw, o.R = typ, unitLen, wid, hei, tw, rad

	// derived
	switch typ {
	case "rectangle":
		b, h := wid, hei
		o.A = b * h
		o.I22 = b * h * h * h / 12.0

	case "circle":
		r2 := rad * rad
		o.A = math.Pi * r2
		o.I22 = math.Pi * r2 * r2 / 4.0

	case "annulus":
		ri := rad
		ro := rad + tw
		o.A = math.Pi * tw * (2.0*ri + tw) // π(ro² - ri²)
		o.I22 = math.Pi * (ro*ro*ro*ro - ri*ri*ri*ri) / 4.0

	default:
		chk.Panic("cross-section type %q is unavailable", typ)
	}
}

// Rectangle returns an initialised rectangular section
func Rectangle(wid, hei float64) (o CrossSection) {
	o.Init("rectangle", "m", wid, hei, 0, 0)
	return
}

// Circle returns an initialised circular section with diameter d
func Circle(d float64) (o CrossSection) {
	o.Init("circle", "m", 0, 0, 0, d/2.0)
	return
}

// Annulus returns an initialised tube section with bore diameter d and wall thickness w
func Annulus(d, w float64) (o CrossSection) {
	o.Init("annulus", "m", 0, 0, w, d/2.0)
	return
}

// String returns a summary of this section
func (o CrossSection) String() string {
	l := io.Sf("%s: A = %g %s²", o.Type, o.A, o.Unit)
	l += io.Sf(", I22 = %g %s⁴", o.I22, o.Unit)
	return l
}
