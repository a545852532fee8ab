// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"errors"
	"os"
	"path/filepath"
	"sort"

	"github.com/cpmech/gopen/cfg"
	"github.com/cpmech/gopen/diag"
	"github.com/cpmech/gopen/gun"
	"github.com/cpmech/gopen/hull"
	"github.com/cpmech/gopen/inp"
	"github.com/cpmech/gopen/mat"
	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"
	"github.com/cpmech/gosl/utl"
	"github.com/dustin/go-humanize"
)

func main() {

	// catch errors
	defer func() {
		if err := recover(); err != nil {
			io.PfRed("\nERROR: %v", err)
			io.Pf("See location of error below:\n")
			chk.Verbose = true
			for i := 5; i > 3; i-- {
				chk.CallerInfo(i)
			}
		}
	}()

	// read input parameters
	cfgdir := io.ArgToString(0, ".")
	demo := io.ArgToString(1, "")

	// configuration
	err := cfg.Load(cfgdir)
	if err != nil && !errors.Is(err, cfg.ErrNoConfigFile) {
		chk.Panic("cannot load configuration:\n%v", err)
	}
	if demo == "" {
		demo = cfg.GetString("demo")
	}
	err = diag.Setup(os.Stderr, cfg.GetString("logLevel"), cfg.GetBool("logConsole"))
	if err != nil {
		chk.Panic("invalid log level:\n%v", err)
	}

	// message
	io.PfWhite("\nGopen -- parametric design and penetration\n")
	io.Pf("\n%v\n", io.ArgsTable("INPUT ARGUMENTS",
		"configuration directory", "cfgdir", cfgdir,
		"demo: all, rounds, hull, sim, mats", "demo", demo,
	))

	// run
	get, names := materials()
	switch demo {
	case "all":
		mats(get, names)
		rounds()
		vehicle(get)
	case "rounds":
		rounds()
	case "hull":
		vehicle(get)
	case "sim":
		simulation(get)
	case "mats":
		mats(get, names)
	default:
		chk.Panic("demo %q is not available", demo)
	}
}

// materials returns the material source and the available names: the configured
// database and the builtin factories
func materials() (get gun.Getter, names []string) {
	fn := cfg.GetString("materials.file")
	if fn == "" {
		return mat.Get, mat.Names()
	}
	mdb, err := inp.ReadMat(filepath.Dir(fn), filepath.Base(fn))
	if err != nil {
		chk.Panic("cannot read materials database:\n%v", err)
	}
	return fromDb(mdb, cfg.GetFloat("materials.hvlMeV")), allNames(mdb)
}

// allNames returns the sorted names of the database and the builtin factories
func allNames(mdb *inp.MatDb) (names []string) {
	seen := make(map[string]bool)
	for _, name := range append(mdb.Names(), mat.Names()...) {
		if !seen[name] {
			seen[name] = true
			names = append(names, name)
		}
	}
	sort.Strings(names)
	return
}

// fromDb returns materials from mdb, falling back to the builtin factories
func fromDb(mdb *inp.MatDb, energyMeV float64) gun.Getter {
	return func(name string) (*mat.Material, error) {
		m, err := mdb.Get(name, energyMeV)
		if mat.IsNotFound(err) {
			return mat.Get(name)
		}
		return m, err
	}
}

// mats prints the table of materials
func mats(get gun.Getter, names []string) {
	io.Pf("\n%-9s %10s %10s %14s %10s %12s %10s\n", "name", "ρ[kg/m³]", "HVL[cm]", "strength", "Tm[K]", "E/HVL[J]", "vmax[m/s]")
	for _, name := range names {
		m, err := get(name)
		if err != nil {
			chk.Panic("%v", err)
		}
		io.Pf("%-9s %10s %10.3f %14s %10.0f %12s %10.0f\n", m.Name,
			humanize.Commaf(m.Density), m.HVL*mat.CmPerM,
			humanize.SIWithDigits(m.Strength, 3, "Pa"), m.MeltTemp,
			humanize.SIWithDigits(m.MeltEnergyHVL, 3, "J"), m.MaxSpeed)
	}
}

// rounds prints (penetration, barrel length, lethality radius) for all presets
func rounds() {
	io.Pf("\n(penetration_cm, barrel_cm, lethality_radius_m) against steel at (0°, 0°)\n")
	for _, name := range gun.Presets() {
		d, err := gun.Report(name)
		if err != nil {
			chk.Panic("%v", err)
		}
		io.Pf("%v\n", d)
		diag.Penetration(name, d.Result)
	}
}

// vehicle designs the configured hull and prints its diagnostics
func vehicle(get gun.Getter) {
	s := cfg.Hull()
	h, err := hull.NewWith(get, "default", s.Length, s.Ammo, s.Front)
	if err != nil {
		chk.Panic("%v", err)
	}
	if s.Preset != hull.DefaultPreset {
		p, err := gun.GetPreset(s.Preset)
		if err != nil {
			chk.Panic("%v", err)
		}
		h.Gun, h.Scenario, err = p.SetupWith(get)
		if err != nil {
			chk.Panic("%v", err)
		}
	}
	h.Budget = s.Budget
	report(h, nil, nil)
}

// report initialises h and prints masses, power, traverse orders and hits
func report(h *hull.Hull, orders, hits [][]float64) {
	err := h.Init()
	if err != nil {
		chk.Panic("%v", err)
	}
	v, _ := h.Speed()
	ke, _ := h.KineticEnergy()

	io.Pf("\n%s: %g m long, %g m front armour, gun %s mm\n", h.Name, h.Length, h.Front, humanize.FormatFloat("#.#", h.Round.Diameter*1000))
	if h.Scaled {
		io.Pf("  smaller gun fits: barrel limited to %s kg, round %s mm at %.0f m/s\n",
			humanize.Commaf(h.Budget), humanize.FormatFloat("#.#", h.Round.Diameter*1000), h.Round.Velocity)
	}
	io.Pf("  front  %12s kg\n", humanize.Commaf(h.Masses.Front))
	io.Pf("  side   %12s kg\n", humanize.Commaf(h.Masses.Side))
	io.Pf("  rear   %12s kg\n", humanize.Commaf(h.Masses.Rear))
	io.Pf("  fuel   %12s kg\n", humanize.Commaf(h.Masses.Fuel))
	io.Pf("  engine %12s kg\n", humanize.Commaf(h.Masses.Engine))
	io.Pf("  extra  %12s kg\n", humanize.Commaf(h.Masses.Extra))
	io.Pf("  barrel %12s kg\n", humanize.Commaf(h.Masses.Barrel))
	io.Pf("  total  %12s kg\n", humanize.Commaf(h.Mass))
	io.Pf("  power  %12s\n", humanize.SIWithDigits(h.Power, 3, "W"))
	io.Pf("  speed  %12.2f km/h\n", v*3.6)
	io.Pf("  energy %12s\n", humanize.SIWithDigits(ke, 3, "J"))
	io.Pf("  turret %12s kg, %.2f °/s, %.2f rad/s²\n", humanize.Commaf(h.Turret.Mass), h.Turret.Omega*180/3.141592653589793, h.Turret.Accel)

	// traverse
	if orders == nil {
		for _, az := range utl.LinSpace(0, 180, 5) {
			orders = append(orders, []float64{az, 0})
		}
		orders = append(orders, []float64{90, 60}, []float64{0, -30})
	}
	io.Pf("\n  %8s %8s %10s %6s %6s\n", "az", "el", "time[s]", "ok", "braked")
	for _, o := range orders {
		t, err := h.TimeToTraverse(o[0], o[1])
		if err != nil {
			chk.Panic("%v", err)
		}
		io.Pf("  %8.1f %8.1f %10.3f %6v %6v\n", o[0], o[1], t.Time, t.Ok, t.Braked)
	}

	// hits by its own round
	if hits == nil {
		hits = [][]float64{{0, 0}, {30, 5}, {90, 0}, {180, 0}, {0, 40}}
	}
	io.Pf("\n  %8s %8s %8s %10s %10s %11s\n", "az", "el", "facet", "thick[cm]", "depth[cm]", "perforated")
	for _, o := range hits {
		hit, err := h.TakeHit(o[0], o[1], h.Round)
		if err != nil {
			chk.Panic("%v", err)
		}
		io.Pf("  %8.1f %8.1f %8s %10.2f %10.3f %11v\n", o[0], o[1], hit.Facet, hit.Thickness*mat.CmPerM, hit.Result.Depth*mat.CmPerM, hit.Perforated)
	}
}
