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

import "math"

// Curvature holds the full-contour curvature samples, split into upper and
// lower Lines, plus LE extremum analysis used by the LE-radius setter.
type Curvature struct {
	Kappa []float64 // full contour, length n, index-aligned with Geometry.x/y
	ILe   int
	Upper *Line
	Lower *Line
}

// NewCurvature builds the curvature profile from the whole-contour 2-D
// spline, sampled at the given point set's arc-length parameters.
func NewCurvature(sp *Spline2D, x []float64, iLe int) *Curvature {
	n := len(sp.U())
	kappa := make([]float64, n)
	for i, u := range sp.U() {
		kappa[i] = sp.Curvature(u)
	}

	upperX := make([]float64, iLe+1)
	upperY := make([]float64, iLe+1)
	for i := 0; i <= iLe; i++ {
		upperX[i] = x[iLe-i]
		upperY[i] = kappa[iLe-i]
	}
	lowerX := append([]float64{}, x[iLe:]...)
	lowerY := append([]float64{}, kappa[iLe:]...)

	return &Curvature{
		Kappa: kappa,
		ILe:   iLe,
		Upper: NewLine(LineCurvature, upperX, upperY),
		Lower: NewLine(LineCurvature, lowerX, lowerY),
	}
}

// newCurvatureFromKappa builds a Curvature directly from a precomputed
// per-point curvature array, used by the Bezier strategy whose curvature
// comes from the two side curves rather than a single whole-contour spline.
func newCurvatureFromKappa(kappa, x []float64, iLe int) *Curvature {
	upperX := make([]float64, iLe+1)
	upperY := make([]float64, iLe+1)
	for i := 0; i <= iLe; i++ {
		upperX[i] = x[iLe-i]
		upperY[i] = kappa[iLe-i]
	}
	lowerX := append([]float64{}, x[iLe:]...)
	lowerY := append([]float64{}, kappa[iLe:]...)
	return &Curvature{
		Kappa: kappa,
		ILe:   iLe,
		Upper: NewLine(LineCurvature, upperX, upperY),
		Lower: NewLine(LineCurvature, lowerX, lowerY),
	}
}

// AtLE returns the curvature exactly at the leading-edge index.
func (c *Curvature) AtLE() float64 { return c.Kappa[c.ILe] }

// MaxAroundLE returns the maximum |curvature| within three samples of LE.
func (c *Curvature) MaxAroundLE() float64 {
	lo := c.ILe - 3
	hi := c.ILe + 3
	if lo < 0 {
		lo = 0
	}
	if hi > len(c.Kappa)-1 {
		hi = len(c.Kappa) - 1
	}
	best := 0.0
	for i := lo; i <= hi; i++ {
		if v := math.Abs(c.Kappa[i]); v > best {
			best = v
		}
	}
	return best
}

// bumpAtUpperLE reports whether the sample adjacent to LE on the upper
// side dips below the next-nearest sample (a single-index bump artifact).
func (c *Curvature) bumpAtUpperLE() bool {
	if c.ILe < 2 {
		return false
	}
	return math.Abs(c.Kappa[c.ILe-1]) < math.Abs(c.Kappa[c.ILe-2])
}

func (c *Curvature) bumpAtLowerLE() bool {
	if c.ILe+2 >= len(c.Kappa) {
		return false
	}
	return math.Abs(c.Kappa[c.ILe+1]) < math.Abs(c.Kappa[c.ILe+2])
}

// MaxUpperLE and MaxLowerLE report the curvature at the single sample
// adjacent to LE on each side.
func (c *Curvature) MaxUpperLE() float64 {
	if c.ILe < 1 {
		return c.AtLE()
	}
	return c.Kappa[c.ILe-1]
}

func (c *Curvature) MaxLowerLE() float64 {
	if c.ILe+1 >= len(c.Kappa) {
		return c.AtLE()
	}
	return c.Kappa[c.ILe+1]
}

// BestAroundLE applies the LE-smoothing heuristic: prefer a blend of the
// local max and the LE value, or average across a detected single-index
// bump, falling back to the plain LE value.
func (c *Curvature) BestAroundLE() float64 {
	atLe := c.AtLE()
	maxAround := c.MaxAroundLE()
	if maxAround > math.Abs(atLe) {
		return (maxAround + 2*atLe) / 3
	}
	if c.bumpAtUpperLE() && c.ILe >= 2 {
		return (c.Kappa[c.ILe] + c.Kappa[c.ILe-2]) / 2
	}
	if c.bumpAtLowerLE() && c.ILe+2 < len(c.Kappa) {
		return (c.Kappa[c.ILe] + c.Kappa[c.ILe+2]) / 2
	}
	return atLe
}
