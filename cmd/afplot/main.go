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

// afplot exports shape, curvature, and polar charts to SVG via gonum/plot.
package main

import (
	"flag"
	"log"
	"os"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/vg"

	"github.com/jxjo/aecore/lib"
)

func main() {
	var (
		in, out, mode, polarFile string
	)
	fs := flag.NewFlagSet("afplot", flag.ContinueOnError)
	fs.StringVar(&in, "in", "", "input airfoil file")
	fs.StringVar(&polarFile, "polar", "", "polar file (for -mode polar)")
	fs.StringVar(&mode, "mode", "shape", "plot mode: shape, curvature, polar")
	fs.StringVar(&out, "out", "out.svg", "output SVG file")
	fs.Parse(os.Args[1:])

	if in == "" {
		fs.Usage()
		log.Fatal("missing -in")
	}
	af := lib.NewAirfoilFromPath(in)
	if err := af.Load(); err != nil {
		log.Fatal("load: ", err)
	}

	switch mode {
	case "shape":
		p, err := lib.PlotAirfoilShape(af.Geo, af.Name)
		if err != nil {
			log.Fatal("plot: ", err)
		}
		writeSVG(p, out)
	case "curvature":
		p, err := lib.PlotCurvature(af.Geo, af.Name+" curvature")
		if err != nil {
			log.Fatal("plot: ", err)
		}
		writeSVG(p, out)
	case "polar":
		if polarFile == "" {
			log.Fatal("missing -polar")
		}
		def := lib.NewPolarDefinition(1e6, 0, lib.T1)
		pol := lib.NewPolar(af.Name, def)
		if err := lib.LoadPolarFile(polarFile, pol); err != nil {
			log.Fatal("load polar: ", err)
		}
		p, err := lib.PlotPolar([]*lib.Polar{pol}, lib.ChAlpha, lib.ChCl, af.Name+" polar")
		if err != nil {
			log.Fatal("plot: ", err)
		}
		writeSVG(p, out)
	default:
		log.Fatalf("unknown mode %q", mode)
	}
	log.Printf("wrote %s", out)
}

func writeSVG(p *plot.Plot, out string) {
	f, err := os.Create(out)
	if err != nil {
		log.Fatal("create: ", err)
	}
	defer f.Close()
	if err := lib.WritePlot(p, f, 18*vg.Centimeter, 12*vg.Centimeter, "svg"); err != nil {
		log.Fatal("write: ", err)
	}
}
