//----------------------------------------------------------------------
// This file is part of aecore.
// Copyright (C) 2024-present Bernd Fix >Y<,  DO3YQ
//
// aecore is free software: you can redistribute it and/or modify it
// under the terms of the GNU Affero General Public License as published
// by the Free Software Foundation, either version 3 of the License,
// or (at your option) any later version.
//
// aecore is distributed in the hope that it will be useful, but
// WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the GNU
// Affero General Public License for more details.
//
// You should have received a copy of the GNU Affero General Public License
// along with this program.  If not, see <http://www.gnu.org/licenses/>.
//
// SPDX-License-Identifier: AGPL3.0-or-later
//----------------------------------------------------------------------

// afeditor drives the load -> normalize -> modify -> save pipeline from
// the command line, for use in scripted batch processing of airfoils.
package main

import (
	"flag"
	"log"
	"os"

	"github.com/jxjo/aecore/lib"
)

func main() {
	var (
		in, out   string
		teGap     float64
		leRadius  float64
		repanel   int
		doNorm    bool
	)
	fs := flag.NewFlagSet("afeditor", flag.ContinueOnError)
	fs.StringVar(&in, "in", "", "input airfoil file (.dat, .bez, .hicks)")
	fs.StringVar(&out, "out", "", "output airfoil file (defaults to -in)")
	fs.BoolVar(&doNorm, "normalize", false, "normalize before saving")
	fs.Float64Var(&teGap, "te-gap", -1, "set trailing edge gap (chord fraction); -1 leaves unchanged")
	fs.Float64Var(&leRadius, "le-radius", -1, "set leading edge radius (chord fraction); -1 leaves unchanged")
	fs.IntVar(&repanel, "repanel", 0, "panel count per side; 0 leaves unchanged")
	fs.Parse(os.Args[1:])

	if in == "" {
		fs.Usage()
		log.Fatal("missing -in")
	}
	if out == "" {
		out = in
	}

	af := lib.NewAirfoilFromPath(in)
	if err := af.Load(); err != nil {
		log.Fatal("load: ", err)
	}

	if doNorm {
		if err := af.Geo.Normalize(); err != nil {
			log.Fatal("normalize: ", err)
		}
	}
	if teGap >= 0 {
		if err := af.Geo.SetTEGap(teGap, 0.8); err != nil {
			log.Fatal("set-te-gap: ", err)
		}
	}
	if leRadius >= 0 {
		if err := af.Geo.SetLERadius(leRadius, 0.2); err != nil {
			log.Fatal("set-le-radius: ", err)
		}
	}
	if repanel > 0 {
		if err := af.Geo.Repanel(lib.RepanelFresh, repanel, repanel, lib.Cfg.Geometry.LEBunch, lib.Cfg.Geometry.TEBunch); err != nil {
			log.Fatal("repanel: ", err)
		}
	}

	if err := af.Save(out); err != nil {
		log.Fatal("save: ", err)
	}
	log.Printf("wrote %s (%d points)", out, len(af.Geo.X()))
}
