// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package hull

import (
	"github.com/cpmech/gopen/diag"
	"github.com/cpmech/gopen/gun"
	"github.com/cpmech/gopen/pen"
)

// facets
const (
	FacetFront  = "front"
	FacetSide   = "side"
	FacetRear   = "rear"
	FacetTurret = "turret"
)

// Hit holds the outcome of one impact on a hull
type Hit struct {
	Facet      string     // facet that took the hit
	Thickness  float64    // armour thickness of the facet [m]
	Result     pen.Result // penetration into the facet
	Perforated bool       // depth reached the thickness
}

// TurretThreshold returns the elevation [deg] above which a round coming from az hits
// the turret. The threshold decreases as az moves away from the turret heading.
func (o *Hull) TurretThreshold(az float64) float64 {
	base := o.Armor.Base()
	frac := delta(az, o.THead) / 180.0
	return 90.0 * base.Psyche * (1.0 - frac*base.Matter)
}

// facet selects the facet hit by a round from az, el [deg] and the azimuth
// obliquity on that facet
func (o *Hull) facet(az, el float64) (name string, thickness, obliq float64) {
	if el > o.TurretThreshold(az) {
		return FacetTurret, o.Front * o.Armor.Base().Matter, delta(az, o.THead)
	}
	rel := norm360(az - o.Heading)
	switch {
	case rel <= 45 || rel >= 315:
		return FacetFront, o.Front, delta(rel, 0)
	case rel <= 135:
		return FacetSide, o.Side, delta(rel, 90)
	case rel >= 225:
		return FacetSide, o.Side, delta(rel, 270)
	}
	return FacetRear, o.Rear, delta(rel, 180)
}

// TakeHit resolves a round arriving from azimuth az and elevation el [deg]
func (o *Hull) TakeHit(az, el float64, r gun.Round) (hit Hit, err error) {
	if !o.initialised {
		return hit, ErrNotInitialised
	}
	var obliq float64
	hit.Facet, hit.Thickness, obliq = o.facet(az, el)
	hit.Result, err = pen.PenetrateChecked(o.Armor, pen.Impact{
		Energy:   r.Energy,
		Diameter: r.Diameter,
		Az:       obliq,
		El:       el,
	})
	if err != nil {
		return
	}
	hit.Perforated = hit.Result.Depth >= hit.Thickness
	diag.Penetration(o.Name+"/"+hit.Facet, hit.Result)
	return
}

// TurnHit turns the hull to face az and then resolves the hit
func (o *Hull) TurnHit(az, el float64, r gun.Round) (hit Hit, err error) {
	if !o.initialised {
		return hit, ErrNotInitialised
	}
	o.Heading = norm360(az)
	return o.TakeHit(az, el, r)
}
