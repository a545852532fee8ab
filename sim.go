// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"github.com/cpmech/gopen/cfg"
	"github.com/cpmech/gopen/diag"
	"github.com/cpmech/gopen/gun"
	"github.com/cpmech/gopen/hull"
	"github.com/cpmech/gopen/inp"
	"github.com/cpmech/gopen/mat"
	"github.com/cpmech/gopen/pen"
	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"
)

// simulation runs all shots and hulls of the configured .sim file
func simulation(get gun.Getter) {
	fn := cfg.GetString("sim.file")
	if fn == "" {
		chk.Panic("sim.file must be set in the configuration")
	}
	sim, err := inp.ReadSim(cfg.GetString("sim.dir"), fn)
	if err != nil {
		chk.Panic("%v", err)
	}
	if sim.MatDb != nil {
		get = fromDb(sim.MatDb, sim.HvlMeV)
	}
	io.Pf("\n%s: %s\n", sim.Key, sim.Desc)

	// shots
	if len(sim.Shots) > 0 {
		io.Pf("\n%-10s %-8s %12s %10s %10s %10s %s\n", "shot", "target", "energy[J]", "d[mm]", "depth[cm]", "angle", "warnings")
	}
	for _, s := range sim.Shots {
		l, sc, err := loadout(get, &s.LoadoutData)
		if err != nil {
			chk.Panic("shot %q: %v", s.Name, err)
		}
		r, _, err := gun.Size(l, sc)
		if err != nil {
			chk.Panic("shot %q: %v", s.Name, err)
		}
		target, err := get(s.Target)
		if err != nil {
			chk.Panic("shot %q: %v", s.Name, err)
		}
		res, err := pen.PenetrateChecked(target, pen.Impact{
			Energy:   r.Energy,
			Diameter: r.Diameter,
			Az:       s.Az,
			El:       s.El,
			Layers:   s.Layers,
		})
		if err != nil {
			chk.Panic("shot %q: %v", s.Name, err)
		}
		diag.Penetration(s.Name, res)
		io.Pf("%-10s %-8s %12.4g %10.2f %10.3f %10.2f %v\n", s.Name, s.Target, r.Energy, r.Diameter*1000, res.Depth*mat.CmPerM, res.Angle, res.Warnings())
	}

	// hulls
	for _, hd := range sim.Hulls {
		h, err := vehicleFromData(get, hd)
		if err != nil {
			chk.Panic("%v", err)
		}
		var orders, hits [][]float64
		for _, a := range hd.Traverse {
			orders = append(orders, []float64{a.Az, a.El})
		}
		for _, a := range hd.Hits {
			hits = append(hits, []float64{a.Az, a.El})
		}
		report(h, orders, hits)
	}
}

// loadout returns the gun materials and scenario of d
func loadout(get gun.Getter, d *inp.LoadoutData) (l gun.Loadout, s mat.Scenario, err error) {
	if d.Preset != "" {
		var p *gun.Preset
		if p, err = gun.GetPreset(d.Preset); err != nil {
			return
		}
		return p.SetupWith(get)
	}
	if l, err = gun.NewLoadout(get, d.Round, d.Barrel, d.Filler); err != nil {
		return
	}
	err = s.Init(d.Prms)
	return
}

// vehicleFromData allocates a hull from input data
func vehicleFromData(get gun.Getter, d *inp.HullData) (h *hull.Hull, err error) {
	if h, err = hull.NewWith(get, d.Name, d.Length, d.Ammo, d.Front); err != nil {
		return
	}
	h.Heading = d.Heading
	h.Budget = d.Budget
	armor := d.Armor
	if armor == "" {
		armor = "steel"
	}
	if h.Armor, err = get(armor); err != nil {
		return
	}
	if d.Turret != nil {
		h.Tlen, h.Tw, h.Th = d.Turret.Tlen, d.Turret.Tw, d.Turret.Th
	}
	if d.Gun != nil {
		h.Gun, h.Scenario, err = loadout(get, d.Gun)
	}
	return
}
