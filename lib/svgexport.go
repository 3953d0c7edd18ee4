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

package lib

import (
	"bytes"
	"fmt"
	"os"

	svg "github.com/ajstarks/svgo"
)

// OutlineCanvas renders a normalized airfoil contour as a standalone
// SVG document, scaled so the chord spans most of the canvas width.
type OutlineCanvas struct {
	svg    *svg.SVG
	buf    *bytes.Buffer
	width  int
	height int
	scale  float64
}

// NewOutlineCanvas creates a canvas of the given pixel size; scale maps
// chord-fraction coordinates into pixels.
func NewOutlineCanvas(width, height int) *OutlineCanvas {
	c := &OutlineCanvas{buf: new(bytes.Buffer), width: width, height: height}
	c.scale = float64(width) * 0.9
	c.svg = svg.New(c.buf)
	return c
}

// xlate maps normalized airfoil coordinates (x in [0,1], y roughly
// [-0.15,0.15]) into canvas pixels, flipping y since SVG grows downward.
func (c *OutlineCanvas) xlate(x, y float64) (int, int) {
	ox := float64(c.width) * 0.05
	oy := float64(c.height) / 2
	return int(ox + x*c.scale), int(oy - y*c.scale)
}

// DrawContour renders the airfoil's upper/lower contour as a closed
// polyline.
func (c *OutlineCanvas) DrawContour(geo *Geometry, strokeColor string) {
	c.svg.Start(c.width, c.height)
	x, y := geo.X(), geo.Y()
	xs := make([]int, len(x))
	ys := make([]int, len(y))
	for i := range x {
		xs[i], ys[i] = c.xlate(x[i], y[i])
	}
	c.svg.Polyline(xs, ys, fmt.Sprintf("fill:none;stroke:%s;stroke-width:1.5", strokeColor))
}

// DrawHighpoints overlays the thickness and camber highpoints as circles.
func (c *OutlineCanvas) DrawHighpoints(geo *Geometry) {
	if t := geo.Thickness(); t != nil {
		if xh, yh := t.Highpoint(); yh != 0 {
			cx, cy := c.xlate(xh, yh/2)
			c.svg.Circle(cx, cy, 3, "fill:red")
		}
	}
	if cam := geo.Camber(); cam != nil {
		if xh, yh := cam.Highpoint(); xh != 0 || yh != 0 {
			cx, cy := c.xlate(xh, yh)
			c.svg.Circle(cx, cy, 3, "fill:blue")
		}
	}
}

// Finish closes the SVG document.
func (c *OutlineCanvas) Finish() { c.svg.End() }

// Bytes returns the rendered document; valid only after Finish.
func (c *OutlineCanvas) Bytes() []byte { return c.buf.Bytes() }

// WriteFile writes the rendered document to path.
func (c *OutlineCanvas) WriteFile(path string) error {
	return os.WriteFile(path, c.buf.Bytes(), 0644)
}
