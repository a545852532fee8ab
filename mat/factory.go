// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package mat

import (
	"errors"
	"sort"

	"github.com/cpmech/gopen/cst"
	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"
)

// NotFoundError is returned when a material name is not in the registry
type NotFoundError struct {
	Name string // requested name
}

// Error implements error
func (o *NotFoundError) Error() string {
	return io.Sf("material %q is not available in 'mat' database", o.Name)
}

// IsNotFound tells whether err is (or wraps) a NotFoundError
func IsNotFound(err error) bool {
	var nf *NotFoundError
	return errors.As(err, &nf)
}

// Get returns a new initialised material. Each call returns an independent instance.
func Get(name string) (*Material, error) {
	return GetWith(name, cst.Std)
}

// GetWith returns a new material initialised with the given constants
func GetWith(name string, base *cst.Base) (m *Material, err error) {
	allocator, ok := allocators[name]
	if !ok {
		return nil, &NotFoundError{Name: name}
	}
	m = allocator()
	err = m.Init(base)
	if err != nil {
		return nil, err
	}
	return
}

// MustGet returns a new material or panics
func MustGet(name string) *Material {
	m, err := Get(name)
	if err != nil {
		chk.Panic("%v", err)
	}
	return m
}

// Names returns the names of all registered materials
func Names() (names []string) {
	for name := range allocators {
		names = append(names, name)
	}
	sort.Strings(names)
	return
}

// Steel returns a new steel material
func Steel() *Material { return MustGet("steel") }

// DU returns a new depleted uranium material
func DU() *Material { return MustGet("du") }

// Fiber returns a new composite fiber material
func Fiber() *Material { return MustGet("fiber") }

// Air returns a new air material
func Air() *Material { return MustGet("N") }

// Skin returns a new organic material
func Skin() *Material { return MustGet("skin") }

// Fuel returns a new fuel blend material
func Fuel() *Material { return MustGet("fuel") }

// allocators holds all available materials
var allocators = map[string]func() *Material{

	// iron based armour steel. HVL @ 1 MeV
	"steel": func() *Material {
		return &Material{
			Name:         "steel",
			MolarMass:    55.845,
			Density:      7850,
			AtomicRadius: 1.26e-10,
			AtomicNumber: 26,
			Cohesive:     4.28,
			HVL:          0.0147,
			Weak:         1,
		}
	},

	// depleted uranium
	"du": func() *Material {
		return &Material{
			Name:         "du",
			MolarMass:    238.03,
			Density:      19050,
			AtomicRadius: 1.56e-10,
			AtomicNumber: 92,
			Cohesive:     5.55,
			HVL:          0.00469,
			Weak:         1,
		}
	},

	// carbon composite fiber; laminate derated by Φ⁻¹
	"fiber": func() *Material {
		return &Material{
			Name:         "fiber",
			MolarMass:    12.011,
			Density:      1600,
			AtomicRadius: 0.77e-10,
			AtomicNumber: 6,
			Cohesive:     7.37,
			HVL:          0.068,
			Weak:         0.6180339887498948,
		}
	},

	// air, represented by nitrogen; HVL derived
	"N": func() *Material {
		return &Material{
			Name:         "N",
			MolarMass:    14.007,
			Density:      1.225,
			AtomicRadius: 0.71e-10,
			AtomicNumber: 7,
			Cohesive:     4.9,
			Weak:         1,
		}
	},

	// soft tissue; mean values per atom
	"skin": func() *Material {
		return &Material{
			Name:         "skin",
			MolarMass:    6.0,
			Density:      1090,
			AtomicRadius: 0.53e-10,
			AtomicNumber: 3.3,
			Cohesive:     0.1,
			HVL:          0.082,
			Weak:         1,
		}
	},

	// diesel-like blend; bond energy ~ heat of combustion. fill = Φ⁻³
	"fuel": func() *Material {
		return &Material{
			Name:         "fuel",
			MolarMass:    4.77,
			Density:      832,
			AtomicRadius: 0.6e-10,
			AtomicNumber: 2.6,
			Cohesive:     2.2,
			HVL:          0.11,
			Weak:         1,
			Fill:         0.2360679774997897,
		}
	},

	// tungsten heavy alloy
	"tungsten": func() *Material {
		return &Material{
			Name:         "tungsten",
			MolarMass:    183.84,
			Density:      19250,
			AtomicRadius: 1.39e-10,
			AtomicNumber: 74,
			Cohesive:     8.90,
			HVL:          0.0049,
			Weak:         1,
		}
	},
}
