// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package hull

import (
	"errors"
	"math"
	"testing"

	"github.com/cpmech/gopen/gun"
	"github.com/cpmech/gopen/mat"
	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"
)

func verbose() {
	chk.Verbose = true
}

// mbt returns the default main battle tank
func mbt(tst *testing.T) *Hull {
	h, err := New("mbt", DefaultLength, true, DefaultFront)
	if err != nil {
		tst.Fatalf("New failed: %v\n", err)
	}
	h, err = Design(h)
	if err != nil {
		tst.Fatalf("Design failed: %v\n", err)
	}
	return h
}

func Test_hull01(tst *testing.T) {

	//verbose()
	chk.PrintTitle("hull01. dimensions and masses")

	h := mbt(tst)
	io.Pforan("%v", h)
	io.Pforan("masses = %+v\n", h.Masses)

	chk.Float64(tst, "width", 1e-15, h.Width, 3.95)
	chk.Float64(tst, "height", 1e-15, h.Height, 1.975)
	chk.Float64(tst, "side", 1e-15, h.Side, 0.1)
	chk.Float64(tst, "rear", 1e-15, h.Rear, 0.05)

	chk.Float64(tst, "front  ", 1e-9, h.Masses.Front, 12247.9625)
	chk.Float64(tst, "side   ", 1e-9, h.Masses.Side, 24495.925)
	chk.Float64(tst, "rear   ", 1e-9, h.Masses.Rear, 3061.990625)
	chk.Float64(tst, "fuel   ", 1e-9, h.Masses.Fuel, 1513.07935426074)
	chk.Float64(tst, "engine ", 1e-8, h.Masses.Engine, 5627.54392125721)
	chk.Float64(tst, "extra  ", 1e-8, h.Masses.Extra, 19696.4037244003)
	chk.Float64(tst, "barrel ", 1e-8, h.Masses.Barrel, 502.224421741771)
	chk.Float64(tst, "mass   ", 1e-7, h.Mass, 67145.12954666)

	// mass decomposition: armour + fuel + (engine + extra) + barrel
	armour := h.Masses.Front + h.Masses.Side + h.Masses.Rear
	drive := h.Masses.Engine + h.Masses.Extra
	chk.Float64(tst, "decomposition", 1e-9, h.Mass, armour+h.Masses.Fuel+drive+h.Masses.Barrel)
	chk.Float64(tst, "barrel term", 1e-10, h.Masses.Barrel, h.Barrel.Mass+MaxShots*h.Round.Mass)

	// without ammunition
	g, err := New("empty", DefaultLength, false, DefaultFront)
	if err != nil {
		tst.Errorf("New failed: %v\n", err)
		return
	}
	if err = g.Init(); err != nil {
		tst.Errorf("Init failed: %v\n", err)
		return
	}
	chk.Float64(tst, "barrel term without ammo", 1e-17, g.Masses.Barrel, g.Barrel.Mass)
	chk.Float64(tst, "ammo mass", 1e-9, h.Mass-g.Mass, MaxShots*h.Round.Mass)
}

func Test_hull02(tst *testing.T) {

	//verbose()
	chk.PrintTitle("hull02. power and speed")

	h := mbt(tst)
	chk.Float64(tst, "heat transfer", 1e-11, h.HeatTransfer(), 13.5257048877499)
	chk.Float64(tst, "gethc", 1e-9, h.Gethc(), 165.560532548285)
	chk.Float64(tst, "power", 1e-4, h.Power, 931699.168542208)

	v, err := h.Speed()
	if err != nil {
		tst.Errorf("Speed failed: %v\n", err)
		return
	}
	chk.Float64(tst, "speed", 1e-10, v, 15.6920151055925)
	ke, err := h.KineticEnergy()
	if err != nil {
		tst.Errorf("KineticEnergy failed: %v\n", err)
		return
	}
	chk.Float64(tst, "kinetic energy", 1e-3, ke, 8266886.12723603)

	chk.Float64(tst, "turret mass", 1e-8, h.Turret.Mass, 21244.0896166703)
	chk.Float64(tst, "turret radius", 1e-15, h.Turret.Radius, 1.3825)
	chk.Float64(tst, "omega", 1e-13, h.Turret.Omega, 0.291684644285238)
	chk.Float64(tst, "accel", 1e-12, h.Turret.Accel, 8.76794649659914)
}

func Test_hull03(tst *testing.T) {

	//verbose()
	chk.PrintTitle("hull03. queries require Init")

	h, err := New("raw", DefaultLength, true, DefaultFront)
	if err != nil {
		tst.Errorf("New failed: %v\n", err)
		return
	}
	if h.Initialised() {
		tst.Errorf("hull should not be initialised\n")
		return
	}
	_, err = h.Speed()
	if !errors.Is(err, ErrNotInitialised) {
		tst.Errorf("Speed: ErrNotInitialised expected. got %v\n", err)
		return
	}
	_, err = h.KineticEnergy()
	if !errors.Is(err, ErrNotInitialised) {
		tst.Errorf("KineticEnergy: ErrNotInitialised expected. got %v\n", err)
		return
	}
	_, err = h.TimeToTraverse(90, 0)
	if !errors.Is(err, ErrNotInitialised) {
		tst.Errorf("TimeToTraverse: ErrNotInitialised expected. got %v\n", err)
		return
	}
	_, err = h.TakeHit(0, 0, gun.Round{Energy: 1e6, Diameter: 0.02})
	if !errors.Is(err, ErrNotInitialised) {
		tst.Errorf("TakeHit: ErrNotInitialised expected. got %v\n", err)
		return
	}
	_, err = h.TurnHit(0, 0, gun.Round{Energy: 1e6, Diameter: 0.02})
	if !errors.Is(err, ErrNotInitialised) {
		tst.Errorf("TurnHit: ErrNotInitialised expected. got %v\n", err)
		return
	}

	// invalid input
	h.Length = 0
	if err = h.Init(); err == nil {
		tst.Errorf("zero length should have failed\n")
		return
	}
	io.Pforan("%v\n", err)
	h.Length, h.Tw = DefaultLength, 1.5
	if err = h.Init(); err == nil {
		tst.Errorf("turret wider than hull should have failed\n")
		return
	}
	io.Pforan("%v\n", err)
	if h.Initialised() {
		tst.Errorf("failed Init must leave the hull uninitialised\n")
	}
}

func Test_traverse01(tst *testing.T) {

	//verbose()
	chk.PrintTitle("traverse01. time to traverse and commit rule")

	h := mbt(tst)
	chk.Float64(tst, "max elevation", 1e-12, h.MaxElevation(), 35.4107391510048)
	chk.Float64(tst, "min elevation front", 1e-12, h.MinElevation(0), -11.3099324740202)
	chk.Float64(tst, "min elevation side", 1e-12, h.MinElevation(90), -21.8014094863518)
	chk.Float64(tst, "min elevation 45°", 1e-12, h.MinElevation(45), -15.793169048264)

	// speed limited
	t, err := h.TimeToTraverse(90, 0)
	if err != nil {
		tst.Errorf("TimeToTraverse failed: %v\n", err)
		return
	}
	io.Pforan("t = %+v\n", t)
	if !t.Ok || t.Braked {
		tst.Errorf("order should be reachable and not braked\n")
		return
	}
	chk.Float64(tst, "time 90°", 1e-12, t.Time, 5.3852554722038)
	chk.Float64(tst, "time = Δ/ω", 1e-15, t.Time, 90*math.Pi/180/h.Turret.Omega)
	chk.Float64(tst, "thead", 1e-15, h.THead, 90)

	// braked
	t, _ = h.TimeToTraverse(90.5, 5)
	if !t.Ok || !t.Braked {
		tst.Errorf("small order should be braked\n")
		return
	}
	chk.Float64(tst, "time 0.5°", 1e-14, t.Time, 0.0446159082402269)
	chk.Float64(tst, "time = √(2Δ/α)", 1e-15, t.Time, math.Sqrt(2*(0.5*math.Pi/180)/h.Turret.Accel))
	chk.Float64(tst, "thead", 1e-15, h.THead, 90.5)
	chk.Float64(tst, "tzh", 1e-15, h.Tzh, 5)

	// unreachable orders leave the turret where it was
	for _, order := range [][]float64{{180, 60}, {0, -30}, {270, -25}} {
		t, _ = h.TimeToTraverse(order[0], order[1])
		if t.Ok {
			tst.Errorf("order %v should be unreachable\n", order)
			return
		}
		chk.Float64(tst, "thead unchanged", 1e-15, h.THead, 90.5)
		chk.Float64(tst, "tzh unchanged", 1e-15, h.Tzh, 5)
	}

	// shortest way round and no motion
	h.THead = 350
	t, _ = h.TimeToTraverse(5, 0)
	chk.Float64(tst, "time 15° across north", 1e-12, t.Time, 0.897542578700633)
	t2, _ := h.TimeToTraverse(20, 0)
	chk.Float64(tst, "same distance, same time", 1e-12, t2.Time, t.Time)
	t, _ = h.TimeToTraverse(20, 0)
	chk.Float64(tst, "no motion", 1e-17, t.Time, 0)
}

func Test_hit01(tst *testing.T) {

	//verbose()
	chk.PrintTitle("hit01. facet routing")

	h := mbt(tst)
	r := h.Round
	chk.Float64(tst, "threshold", 1e-12, h.TurretThreshold(0), 34.3769410125095)
	if h.TurretThreshold(180) >= h.TurretThreshold(0) {
		tst.Errorf("threshold should decrease away from the turret heading\n")
		return
	}

	cases := []struct {
		az, el float64
		facet  string
		thick  float64
	}{
		{0, 0, FacetFront, 0.2},
		{30, 0, FacetFront, 0.2},
		{330, 5, FacetFront, 0.2},
		{100, 0, FacetSide, 0.1},
		{300, 0, FacetSide, 0.1},
		{180, 0, FacetRear, 0.05},
		{200, 10, FacetRear, 0.05},
		{0, 40, FacetTurret, 0.2 * h.Armor.Base().Matter},
		{180, 20, FacetTurret, 0.2 * h.Armor.Base().Matter},
	}
	for _, c := range cases {
		hit, err := h.TakeHit(c.az, c.el, r)
		if err != nil {
			tst.Errorf("TakeHit failed: %v\n", err)
			return
		}
		io.Pforan("(%5.1f, %4.1f) → %-6s depth = %.4f perforated = %v\n", c.az, c.el, hit.Facet, hit.Result.Depth, hit.Perforated)
		chk.String(tst, hit.Facet, c.facet)
		chk.Float64(tst, "thickness", 1e-15, hit.Thickness, c.thick)
	}

	// head-on: no obliquity
	hit, _ := h.TakeHit(0, 0, r)
	chk.Float64(tst, "pass angle", 1e-15, hit.Result.Angle, 90)
	if !hit.Perforated {
		tst.Errorf("head-on m829 should perforate 0.2 m\n")
		return
	}
	side, _ := h.TakeHit(100, 0, r)
	if side.Result.Depth >= hit.Result.Depth {
		tst.Errorf("oblique side hit should penetrate less than head-on\n")
		return
	}
}

func Test_hit02(tst *testing.T) {

	//verbose()
	chk.PrintTitle("hit02. turn to face the threat")

	h := mbt(tst)
	hit, err := h.TurnHit(100, 0, h.Round)
	if err != nil {
		tst.Errorf("TurnHit failed: %v\n", err)
		return
	}
	chk.Float64(tst, "heading", 1e-15, h.Heading, 100)
	chk.String(tst, hit.Facet, FacetFront)
	chk.Float64(tst, "pass angle", 1e-15, hit.Result.Angle, 90)

	hit, _ = h.TurnHit(-80, 0, h.Round)
	chk.Float64(tst, "heading", 1e-15, h.Heading, 280)
	chk.String(tst, hit.Facet, FacetFront)
}

func Test_hull04(tst *testing.T) {

	//verbose()
	chk.PrintTitle("hull04. materials from a given source")

	requested := make(map[string]int)
	get := func(name string) (*mat.Material, error) {
		requested[name]++
		return mat.Get(name)
	}
	h, err := NewWith(get, "src", DefaultLength, true, DefaultFront)
	if err != nil {
		tst.Errorf("NewWith failed: %v\n", err)
		return
	}
	if err = h.Init(); err != nil {
		tst.Errorf("Init failed: %v\n", err)
		return
	}
	io.Pforan("requested = %v\n", requested)
	for _, name := range []string{"steel", "fuel", "N", "du"} {
		if requested[name] == 0 {
			tst.Errorf("material %q should have been taken from the source\n", name)
			return
		}
	}

	// same materials give the same design
	g := mbt(tst)
	chk.Float64(tst, "mass", 1e-17, h.Mass, g.Mass)

	// unknown materials are reported
	_, err = NewWith(func(name string) (*mat.Material, error) {
		return nil, &mat.NotFoundError{Name: name}
	}, "none", DefaultLength, true, DefaultFront)
	if !mat.IsNotFound(err) {
		tst.Errorf("NotFoundError expected. got %v\n", err)
	}
}

func Test_hull05(tst *testing.T) {

	//verbose()
	chk.PrintTitle("hull05. smaller gun fits a barrel mass budget")

	full := mbt(tst)

	// budget larger than the barrel: nothing changes
	h, _ := New("roomy", DefaultLength, true, DefaultFront)
	h.Budget = 2 * full.Barrel.Mass
	if err := h.Init(); err != nil {
		tst.Errorf("Init failed: %v\n", err)
		return
	}
	if h.Scaled {
		tst.Errorf("round should not be scaled\n")
		return
	}
	chk.Float64(tst, "mass", 1e-17, h.Mass, full.Mass)

	// half the barrel mass
	k := 0.5
	h, _ = New("light", DefaultLength, true, DefaultFront)
	h.Budget = k * full.Barrel.Mass
	if err := h.Init(); err != nil {
		tst.Errorf("Init failed: %v\n", err)
		return
	}
	io.Pforan("scaled round = %+v\n", h.Round)
	if !h.Scaled {
		tst.Errorf("round should be scaled\n")
		return
	}
	chk.Float64(tst, "diameter", 1e-15, h.Round.Diameter, full.Round.Diameter*math.Pow(k, 5.0/4.0))
	chk.Float64(tst, "velocity", 1e-11, h.Round.Velocity, full.Round.Velocity*math.Pow(k, 11.0/12.0))
	chk.Float64(tst, "round mass", 1e-14, h.Round.Mass, full.Round.Mass*math.Pow(k, 3.0/8.0))
	chk.Float64(tst, "barrel mass", 1e-17, h.Barrel.Mass, h.Budget)
	chk.Float64(tst, "barrel term", 1e-10, h.Masses.Barrel, h.Budget+MaxShots*h.Round.Mass)
	if h.Mass >= full.Mass {
		tst.Errorf("lighter gun should give a lighter hull\n")
		return
	}

	// negative budget
	h.Budget = -1
	if err := h.Init(); err == nil {
		tst.Errorf("negative budget should have failed\n")
	}
}
