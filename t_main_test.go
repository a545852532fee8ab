// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"testing"

	"github.com/cpmech/gopen/inp"
	"github.com/cpmech/gopen/mat"
	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"
)

func Test_materials01(tst *testing.T) {

	//chk.Verbose = true
	chk.PrintTitle("materials01. database and builtin materials")

	mdb, err := inp.ReadMat("data", "materials.mat")
	if err != nil {
		tst.Errorf("ReadMat failed: %v\n", err)
		return
	}

	// database-only names are listed with the builtin ones
	names := allNames(mdb)
	io.Pforan("names = %v\n", names)
	for _, name := range []string{"al", "ti", "w", "steel", "du", "fuel", "N"} {
		found := false
		for _, n := range names {
			if n == name {
				found = true
			}
		}
		if !found {
			tst.Errorf("%q should be listed\n", name)
			return
		}
	}
	seen := make(map[string]bool)
	for _, n := range names {
		if seen[n] {
			tst.Errorf("%q is listed twice\n", n)
			return
		}
		seen[n] = true
	}

	// database first, builtin factories for missing names
	get := fromDb(mdb, 1)
	w, err := get("w")
	if err != nil {
		tst.Errorf("get w failed: %v\n", err)
		return
	}
	chk.Float64(tst, "w: HVL", 1e-17, w.HVL, 0.008)
	du, err := get("du")
	if err != nil {
		tst.Errorf("get du failed: %v\n", err)
		return
	}
	chk.Float64(tst, "du: density", 1e-17, du.Density, mat.DU().Density)
	_, err = get("unobtainium")
	if !mat.IsNotFound(err) {
		tst.Errorf("NotFoundError expected. got %v\n", err)
	}
}
