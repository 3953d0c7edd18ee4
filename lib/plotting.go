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
	"image/color"
	"io"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
)

// plotColors mirrors a small fixed palette, cycled by curve index.
var plotColors = []color.RGBA{
	{R: 255, G: 0, B: 0, A: 255},
	{R: 0, G: 0, B: 255, A: 255},
	{R: 0, G: 160, B: 0, A: 255},
	{R: 192, G: 0, B: 192, A: 255},
}

// PlotAirfoilShape renders an airfoil's upper/lower contour.
func PlotAirfoilShape(geo *Geometry, title string) (*plot.Plot, error) {
	p := plot.New()
	p.Title.Text = title
	p.X.Label.Text = "x/c"
	p.Y.Label.Text = "y/c"

	pts := make(plotter.XYs, len(geo.X()))
	for i := range pts {
		pts[i].X = geo.X()[i]
		pts[i].Y = geo.Y()[i]
	}
	line, err := plotter.NewLine(pts)
	if err != nil {
		return nil, err
	}
	line.Color = plotColors[0]
	line.Width = vg.Points(1.2)
	p.Add(line)
	p.Y.Min, p.Y.Max = -0.3, 0.3
	return p, nil
}

// PlotCurvature renders the upper/lower curvature distribution.
func PlotCurvature(geo *Geometry, title string) (*plot.Plot, error) {
	p := plot.New()
	p.Title.Text = title
	p.X.Label.Text = "x/c"
	p.Y.Label.Text = "curvature"

	c := geo.Curvature()
	upperPts := lineToXYs(c.Upper)
	lowerPts := lineToXYs(c.Lower)
	if err := addCurve(p, upperPts, "upper", 0); err != nil {
		return nil, err
	}
	if err := addCurve(p, lowerPts, "lower", 1); err != nil {
		return nil, err
	}
	return p, nil
}

// PlotPolar renders one channel against another for a set of polars,
// one curve per polar, legend keyed by each polar's canonical name.
func PlotPolar(polars []*Polar, xVar, yVar Channel, title string) (*plot.Plot, error) {
	p := plot.New()
	p.Title.Text = title
	p.X.Label.Text = xVar.String()
	p.Y.Label.Text = yVar.String()

	for i, pol := range polars {
		if !pol.IsLoaded {
			continue
		}
		xs, ys := pol.OfVars(xVar, yVar)
		pts := make(plotter.XYs, len(xs))
		for j := range pts {
			pts[j].X = xs[j]
			pts[j].Y = ys[j]
		}
		if err := addCurve(p, pts, pol.Def.CanonicalName(), i); err != nil {
			return nil, err
		}
	}
	return p, nil
}

func lineToXYs(l *Line) plotter.XYs {
	if l == nil {
		return nil
	}
	pts := make(plotter.XYs, len(l.X))
	for i := range pts {
		pts[i].X = l.X[i]
		pts[i].Y = l.Y[i]
	}
	return pts
}

func addCurve(p *plot.Plot, pts plotter.XYs, label string, idx int) error {
	if len(pts) == 0 {
		return nil
	}
	line, err := plotter.NewLine(pts)
	if err != nil {
		return err
	}
	line.Color = plotColors[idx%len(plotColors)]
	line.Width = vg.Points(1)
	if idx%2 == 1 {
		line.Dashes = []vg.Length{vg.Points(4), vg.Points(2)}
	}
	p.Add(line)
	p.Legend.Add(label, line)
	return nil
}

// WritePlot renders p to w in the given vg format ("svg", "png", ...) at
// the given physical size.
func WritePlot(p *plot.Plot, w io.Writer, width, height vg.Length, format string) error {
	wrt, err := p.WriterTo(width, height, format)
	if err != nil {
		return err
	}
	_, err = wrt.WriteTo(w)
	return err
}

// PlotToSVGString is a convenience wrapper returning the rendered SVG
// document as a string (used by cmd/afplot for quick file export).
func PlotToSVGString(p *plot.Plot, width, height vg.Length) (string, error) {
	buf := new(bytes.Buffer)
	if err := WritePlot(p, buf, width, height, "svg"); err != nil {
		return "", err
	}
	return buf.String(), nil
}
