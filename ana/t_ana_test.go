// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package ana

import (
	"math"
	"testing"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"
)

func verbose() {
	chk.Verbose = true
}

func Test_sections01(tst *testing.T) {

	//verbose()
	chk.PrintTitle("sections01. typical cross-sections")

	var rect CrossSection
	b, h := 4.0, 6.0
	rect.Init("rectangle", "in", b, h, 0, 0)
	io.Pforan("4 x 6 rectangle:\n%v\n", rect)
	chk.Float64(tst, "rect: A  ", 1e-17, rect.A, 24.0)
	chk.Float64(tst, "rect: I22", 1e-17, rect.I22, 72.0)

	rect = Rectangle(4, 4)
	chk.Float64(tst, "rect: A  ", 1e-17, rect.A, 16.0)
	chk.Float64(tst, "rect: I22", 1e-13, rect.I22, 21.3333333333333)

	circle := Circle(2)
	io.Pforan("\nd=2 circle:\n%v\n", circle)
	chk.Float64(tst, "circle: A  ", 1e-17, circle.A, math.Pi)
	chk.Float64(tst, "circle: I22", 1e-10, circle.I22, 0.7853981634)
}

func Test_sections02(tst *testing.T) {

	//verbose()
	chk.PrintTitle("sections02. annulus")

	tube := Annulus(2, 1)
	io.Pforan("%v\n", tube)
	chk.Float64(tst, "tube: A  ", 1e-14, tube.A, 3.0*math.Pi)
	chk.Float64(tst, "tube: I22", 1e-14, tube.I22, 15.0*math.Pi/4.0)
	chk.Float64(tst, "tube: I22 = outer - bore", 1e-14, tube.I22, Circle(4).I22-Circle(2).I22)

	// area equals outer circle minus bore
	d, w := 0.027, 0.05
	tube = Annulus(d, w)
	outer, bore := Circle(d+2*w), Circle(d)
	chk.Float64(tst, "tube: A = outer - bore", 1e-15, tube.A, outer.A-bore.A)
	chk.Float64(tst, "tube: A = π w (d + w)", 1e-15, tube.A, math.Pi*w*(d+w))

	// zero wall
	tube = Annulus(d, 0)
	chk.Float64(tst, "no wall", 1e-17, tube.A, 0)
}

func Test_air01(tst *testing.T) {

	//verbose()
	chk.PrintTitle("air01. reference state of dry air")

	air := Ambient()
	io.Pf("reference temperature: Θ = %g [K]\n", air.Θ)
	chk.Float64(tst, "Θ", 1e-15, air.Θ, 298.15)
}
