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
	"fmt"
	"os"

	"github.com/twpayne/go-svg"
	"github.com/twpayne/go-svg/svgpath"
)

// WriteBezierOverlay renders a .bez airfoil's fitted curves together
// with their control polygons, one color per side, to an SVG document.
// This is the structural counterpart to OutlineCanvas: it builds the
// document as a tree of elements rather than a streamed drawing, which
// is what lets it also carry the control points as data (one circle
// element per control point) instead of only pixels. The package has no
// reader for this document.
func WriteBezierOverlay(path string, upper, lower *BezierSide, scale float64) error {
	var elements []svg.Element

	curveColor := map[bool]string{true: "#cc0000", false: "#0000cc"}
	ctrlColor := map[bool]string{true: "#ffaaaa", false: "#aaaaff"}

	for _, side := range []*BezierSide{upper, lower} {
		if side == nil {
			continue
		}
		xs, ys := side.Sample(200)
		p := svgpath.New()
		p.MoveToAbs(scalePoint(xs[0], ys[0], scale))
		for i := 1; i < len(xs); i++ {
			p.LineToAbs(scalePoint(xs[i], ys[i], scale))
		}
		curve := svg.Path().
			Style(svg.String(fmt.Sprintf("stroke:%s;stroke-width:1.2;fill:none", curveColor[side.Upper]))).
			D(p)
		elements = append(elements, curve)

		px, py := side.ControlPoints()
		cp := svgpath.New()
		cp.MoveToAbs(scalePoint(px[0], py[0], scale))
		for i := 1; i < len(px); i++ {
			cp.LineToAbs(scalePoint(px[i], py[i], scale))
		}
		polygon := svg.Path().
			Style(svg.String(fmt.Sprintf("stroke:%s;stroke-width:0.6;stroke-dasharray:4,3;fill:none", ctrlColor[side.Upper]))).
			D(cp)
		elements = append(elements, polygon)

		for i := range px {
			cx, cy := scalePoint(px[i], py[i], scale)[0], scalePoint(px[i], py[i], scale)[1]
			elements = append(elements, svg.Circle().CXCYR(cx, cy, 2.5, svg.Number).Fill(ctrlColor[side.Upper]))
		}
	}

	graph := svg.New()
	graph.WidthHeight(scale*1.1, scale*0.6, svg.Number)
	graph.ViewBox(-scale*0.05, -scale*0.3, scale*1.1, scale*0.6)
	graph.AppendChildren(elements...)

	fp, err := os.Create(path)
	if err != nil {
		return WrapGeometryError(ErrIOPermission, "creating overlay SVG", err)
	}
	defer fp.Close()
	_, err = graph.WriteToIndent(fp, "", "  ")
	return err
}

func scalePoint(x, y, scale float64) []float64 {
	return []float64{x * scale, -y * scale}
}
