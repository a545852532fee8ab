// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package inp implements the input data read from (.mat) and (.sim) JSON files
package inp

import (
	"encoding/json"
	"math"
	"os"
	"path/filepath"
	"sort"
	"strconv"
	"strings"

	"github.com/cpmech/gopen/cst"
	"github.com/cpmech/gopen/mat"
	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"
)

// Material holds one material record
type Material struct {
	Name         string             `json:"name"`          // name of material
	MolarMass    float64            `json:"molar_mass"`    // molar mass [g/mol]
	Density      float64            `json:"density"`       // density [kg/m³]
	AtomicRadius float64            `json:"atomic_radius"` // atomic radius [m]
	AtomicNumber float64            `json:"atomic_number"` // atomic number
	Cohesive     float64            `json:"cohesive"`      // cohesive energy [eV/atom]
	MeltingPoint float64            `json:"melting_point"` // melting point [K]; optional
	SpecificHeat float64            `json:"specific_heat"` // specific heat [J/(kg・K)]; optional
	Tensile      float64            `json:"tensile"`       // tensile strength [Pa]; optional
	Weak         float64            `json:"weak"`          // derating multiplier; default = 1
	Fill         float64            `json:"fill"`          // fill fraction
	Hvl          map[string]float64 `json:"hvl"`           // half-value lengths [cm] by photon energy; e.g. "1MeV"
}

// MatsData holds materials
type MatsData []*Material

// MatDb implements a database of materials
type MatDb struct {

	// input
	Materials MatsData `json:"materials"` // all materials

	// derived
	byName map[string]*Material
}

// ReadMat reads all materials data from a .mat JSON file
func ReadMat(dir, fn string) (mdb *MatDb, err error) {

	// read file
	b, err := os.ReadFile(filepath.Join(dir, fn))
	if err != nil {
		return nil, err
	}
	return ParseMat(b)
}

// ParseMat decodes a materials database
func ParseMat(b []byte) (mdb *MatDb, err error) {

	// decode
	mdb = new(MatDb)
	err = json.Unmarshal(b, mdb)
	if err != nil {
		return nil, chk.Err("cannot decode materials database:\n%v", err)
	}

	// index and check
	mdb.byName = make(map[string]*Material)
	for i, m := range mdb.Materials {
		if m.Name == "" {
			return nil, chk.Err("material # %d has no name", i)
		}
		if _, ok := mdb.byName[m.Name]; ok {
			return nil, chk.Err("material %q is defined more than once", m.Name)
		}
		if m.MolarMass <= 0 || m.Density <= 0 || m.Cohesive <= 0 {
			return nil, chk.Err("material %q: molar_mass, density and cohesive must be given", m.Name)
		}
		if _, _, err = m.hvlAt(1); err != nil {
			return nil, err
		}
		mdb.byName[m.Name] = m
	}
	return
}

// Get returns a new initialised material. The half-value length is selected from
// the record's table entry whose energy is closest to energyMeV.
func (o MatDb) Get(name string, energyMeV float64) (*mat.Material, error) {
	rec, ok := o.byName[name]
	if !ok {
		return nil, &mat.NotFoundError{Name: name}
	}
	hvl, _, err := rec.hvlAt(energyMeV)
	if err != nil {
		return nil, err
	}
	weak := rec.Weak
	if weak == 0 {
		weak = 1
	}
	m := &mat.Material{
		Name:         rec.Name,
		MolarMass:    rec.MolarMass,
		Density:      rec.Density,
		AtomicRadius: rec.AtomicRadius,
		AtomicNumber: rec.AtomicNumber,
		Cohesive:     rec.Cohesive,
		HVL:          hvl,
		Weak:         weak,
		Fill:         rec.Fill,
		MeltingPoint: rec.MeltingPoint,
		SpecificHeat: rec.SpecificHeat,
		Tensile:      rec.Tensile,
	}
	err = m.Init(cst.Std)
	if err != nil {
		return nil, err
	}
	return m, nil
}

// Names returns the names of all materials in the database
func (o MatDb) Names() (names []string) {
	for _, m := range o.Materials {
		names = append(names, m.Name)
	}
	return
}

// hvlAt returns the HVL [m] of the entry closest to energy [MeV]. Zero means derived.
func (o *Material) hvlAt(energy float64) (hvl, at float64, err error) {
	if len(o.Hvl) == 0 {
		return
	}
	keys := make([]string, 0, len(o.Hvl))
	for key := range o.Hvl {
		keys = append(keys, key)
	}
	sort.Strings(keys)
	best := math.Inf(1)
	for _, key := range keys {
		e, err := strconv.ParseFloat(strings.TrimSuffix(strings.TrimSpace(key), "MeV"), 64)
		if err != nil || e <= 0 {
			return 0, 0, chk.Err("material %q: hvl key %q is invalid; e.g. \"1MeV\"", o.Name, key)
		}
		if o.Hvl[key] <= 0 {
			return 0, 0, chk.Err("material %q: hvl %q must be positive", o.Name, key)
		}
		if d := math.Abs(e - energy); d < best {
			best = d
			hvl, at = o.Hvl[key]/mat.CmPerM, e
		}
	}
	return
}

// String prints one material
func (o *Material) String() string {
	keys := make([]string, 0, len(o.Hvl))
	for key := range o.Hvl {
		keys = append(keys, key)
	}
	sort.Strings(keys)
	hvl := ""
	for i, key := range keys {
		if i > 0 {
			hvl += ", "
		}
		hvl += io.Sf("%q:%g", key, o.Hvl[key])
	}
	return io.Sf("    {\n      \"name\"          : %q,\n      \"molar_mass\"    : %g,\n      \"density\"       : %g,\n      \"atomic_radius\" : %g,\n      \"atomic_number\" : %g,\n      \"cohesive\"      : %g,\n      \"hvl\"           : {%s}\n    }",
		o.Name, o.MolarMass, o.Density, o.AtomicRadius, o.AtomicNumber, o.Cohesive, hvl)
}

// String prints materials
func (o MatsData) String() string {
	l := "  \"materials\" : [\n"
	for i, m := range o {
		if i > 0 {
			l += ",\n"
		}
		l += io.Sf("%v", m)
	}
	l += "\n  ]"
	return l
}

// String outputs all materials
func (o MatDb) String() string {
	return io.Sf("{\n%v\n}", o.Materials)
}
