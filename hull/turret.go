// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package hull

import (
	"math"

	"github.com/cpmech/gopen/diag"
)

// Turret holds the turret geometry and traverse dynamics
type Turret struct {
	Length   float64 // [m]
	Width    float64 // [m]
	Height   float64 // [m]
	Surface  float64 // armoured surface [m²]
	Mass     float64 // armour and barrel [kg]
	Radius   float64 // ring radius [m]
	Friction float64 // friction torque [N・m]
	Drive    float64 // drive power [W]
	Omega    float64 // max angular speed [rad/s]
	Inertia  float64 // moment of inertia [kg・m²]
	Accel    float64 // angular acceleration [rad/s²]
}

// Traverse holds the outcome of a turret order
type Traverse struct {
	Time   float64 // time to reach the order [s]
	Ok     bool    // order is within the elevation envelope
	Braked bool    // the turret never reaches max speed
	Omega  float64 // max angular speed [rad/s]
	Accel  float64 // angular acceleration [rad/s²]
	MinEl  float64 // min elevation at the requested azimuth [deg]
	MaxEl  float64 // max elevation [deg]
}

// init computes the turret data of h. Undefined for zero power or turret mass.
func (o *Turret) init(h *Hull) {
	base := h.Armor.Base()
	o.Length = h.Tlen * h.Length
	o.Width = h.Tw * h.Width
	o.Height = h.Th * h.Height
	o.Surface = 2.0*(o.Length*o.Height+o.Width*o.Height) + o.Length*o.Width
	o.Mass = h.Front*base.Matter*o.Surface*h.Armor.Density + h.Barrel.Mass
	o.Radius = o.Width / 2.0
	o.Friction = o.Mass * base.G * base.Friction * o.Radius
	o.Drive = h.Power * base.Pow(-7)
	o.Omega = o.Drive / o.Friction
	o.Inertia = o.Mass * o.Radius * o.Radius / 2.0
	o.Accel = o.Friction * (base.Nous - 1.0) / o.Inertia
}

// norm360 maps an angle [deg] into [0, 360)
func norm360(a float64) float64 {
	a = math.Mod(a, 360)
	if a < 0 {
		a += 360
	}
	return a
}

// delta returns the shortest angular distance [deg] between a and b
func delta(a, b float64) float64 {
	d := norm360(a - b)
	if d > 180 {
		d = 360 - d
	}
	return d
}

// MaxElevation returns the max gun elevation [deg]
func (o *Hull) MaxElevation() float64 {
	return o.Armor.Base().Matter * 180.0 / math.Pi
}

// edge returns the distance from the hull centre to the hull edge along azimuth az
// relative to the hull heading [deg]
func (o *Hull) edge(az float64) float64 {
	rad := norm360(az-o.Heading) * math.Pi / 180.0
	c, s := math.Abs(math.Cos(rad)), math.Abs(math.Sin(rad))
	e := math.Inf(1)
	if c > 1e-12 {
		e = math.Min(e, o.Length/2.0/c)
	}
	if s > 1e-12 {
		e = math.Min(e, o.Width/2.0/s)
	}
	return e
}

// MinElevation returns the min gun elevation [deg] at azimuth az such that the muzzle
// clears the hull roof
func (o *Hull) MinElevation(az float64) float64 {
	reach := math.Min(o.Barrel.Length, o.edge(az))
	return -math.Atan(o.Turret.Height/reach) * 180.0 / math.Pi
}

// TimeToTraverse computes the time for the turret to reach (az, el) [deg].
// The turret heading and gun elevation are committed only if the order is reachable.
func (o *Hull) TimeToTraverse(az, el float64) (t Traverse, err error) {
	if !o.initialised {
		return t, ErrNotInitialised
	}
	t.Omega, t.Accel = o.Turret.Omega, o.Turret.Accel
	t.MinEl, t.MaxEl = o.MinElevation(az), o.MaxElevation()
	t.Ok = el <= t.MaxEl && el >= t.MinEl

	// greater of the speed-limited and accel-limited estimates
	d := delta(az, o.THead) * math.Pi / 180.0
	t1 := d / t.Omega
	t2 := math.Sqrt(2.0 * d / t.Accel)
	t.Time = math.Max(t1, t2)
	t.Braked = t2 > t1

	// commit
	if t.Ok {
		o.THead = norm360(az)
		o.Tzh = el
	}
	diag.Traverse(o.Name, az, el, t.Time, t.Ok, t.Braked)
	return
}
