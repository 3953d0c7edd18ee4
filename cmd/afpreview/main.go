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

// afpreview renders an airfoil outline (any loadable format) to SVG, and
// for .bez files additionally overlays the Bezier control polygons.
package main

import (
	"flag"
	"log"
	"os"
	"path/filepath"
	"strings"

	"github.com/jxjo/aecore/lib"
)

func main() {
	var (
		in, out      string
		width, height int
		overlay      bool
	)
	fs := flag.NewFlagSet("afpreview", flag.ContinueOnError)
	fs.StringVar(&in, "in", "", "input airfoil file")
	fs.StringVar(&out, "out", "", "output SVG file (defaults to <in>.svg)")
	fs.IntVar(&width, "width", 900, "canvas width in px")
	fs.IntVar(&height, "height", 300, "canvas height in px")
	fs.BoolVar(&overlay, "overlay", false, "also write a Bezier control-polygon overlay (.bez inputs only)")
	fs.Parse(os.Args[1:])

	if in == "" {
		fs.Usage()
		log.Fatal("missing -in")
	}
	if out == "" {
		out = in + ".svg"
	}

	af := lib.NewAirfoilFromPath(in)
	if err := af.Load(); err != nil {
		log.Fatal("load: ", err)
	}

	canvas := lib.NewOutlineCanvas(width, height)
	canvas.DrawContour(af.Geo, "#000000")
	canvas.DrawHighpoints(af.Geo)
	canvas.Finish()
	if err := canvas.WriteFile(out); err != nil {
		log.Fatal("write: ", err)
	}
	log.Printf("wrote %s", out)

	if overlay {
		if strings.ToLower(filepath.Ext(in)) != ".bez" {
			log.Fatal("-overlay requires a .bez input")
		}
		upper, lower, ok := af.BezierSides()
		if !ok {
			log.Fatal("-overlay: airfoil geometry is not Bezier-backed")
		}
		overlayPath := strings.TrimSuffix(out, filepath.Ext(out)) + "_overlay.svg"
		if err := lib.WriteBezierOverlay(overlayPath, upper, lower, 900); err != nil {
			log.Fatal("overlay: ", err)
		}
		log.Printf("wrote %s", overlayPath)
	}
}
