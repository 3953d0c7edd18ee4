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

// BezierSide is one side (upper or lower) of a Bezier-strategy airfoil.
// p[0] is the LE (immovable at origin), p[1] fixes the LE tangent (x
// locked to 0), interior points range over 0.01<=x<=0.99, and the last
// point is the TE (x locked to 1).
type BezierSide struct {
	Upper bool
	Curve *Bezier
	x, y  []float64 // sampled curve, filled by Sample
}

// NewBezierSide builds a side from control points, validating the fixed
// conventions at LE and TE.
func NewBezierSide(upper bool, px, py []float64) (*BezierSide, error) {
	n := len(px)
	if n < 3 || len(py) != n {
		return nil, NewGeometryError(ErrInvalidCoordinates, "bezier side needs at least 3 control points")
	}
	if !IsNull(px[0]) || !IsNull(py[0]) {
		return nil, NewGeometryError(ErrInvalidCoordinates, "bezier side must start at LE (0,0)")
	}
	if !IsNull(px[1]) {
		return nil, NewGeometryError(ErrInvalidCoordinates, "bezier side LE tangent point must have x=0")
	}
	minY := 0.006
	if upper && py[1] < minY {
		return nil, NewGeometryError(ErrInvalidCoordinates, "upper LE tangent y below minimum 0.006")
	}
	if !upper && py[1] > -minY {
		return nil, NewGeometryError(ErrInvalidCoordinates, "lower LE tangent y above maximum -0.006")
	}
	if !IsClose(px[n-1], 1, 1e-9) {
		return nil, NewGeometryError(ErrInvalidCoordinates, "bezier side must end at TE (x=1)")
	}
	for i := 2; i < n-1; i++ {
		if px[i] < 0.01 || px[i] > 0.99 {
			return nil, NewGeometryError(ErrInvalidCoordinates, "bezier interior control point out of [0.01,0.99]")
		}
	}
	return &BezierSide{Upper: upper, Curve: NewBezier(px, py)}, nil
}

// nonUniformU returns the bunched u-distribution: density-at-LE factor 0.8
// and density-at-TE factor 0.5 of a linear step, growth 1.1 / 1.4.
func nonUniformU(n int) []float64 {
	u := make([]float64, n)
	if n < 2 {
		return u
	}
	half := n / 2
	step := 1.0 / float64(n-1)
	leStep := step * 0.8
	cur := 0.0
	vals := []float64{0}
	growth := 1.1
	for i := 1; i < half; i++ {
		cur += leStep
		vals = append(vals, cur)
		leStep *= growth
	}
	teStep := step * 0.5
	teVals := []float64{1.0}
	cur = 1.0
	growth = 1.4
	for i := n - 1; i > half; i-- {
		cur -= teStep
		teVals = append([]float64{cur}, teVals...)
		teStep *= growth
	}
	// stitch LE-bunched and TE-bunched halves, then renormalize monotonically
	combined := append(vals, teVals...)
	if len(combined) != n {
		// fall back to a plain cosine distribution on mismatch
		for i := 0; i < n; i++ {
			t := float64(i) / float64(n-1)
			u[i] = (1 - math.Cos(t*math.Pi)) / 2
		}
		return u
	}
	lo, hi := combined[0], combined[len(combined)-1]
	for i, v := range combined {
		u[i] = (v - lo) / (hi - lo)
	}
	return u
}

// Sample evaluates the curve at n non-uniformly spaced parameter values
// and caches the resulting (x,y) arrays.
func (s *BezierSide) Sample(n int) ([]float64, []float64) {
	us := nonUniformU(n)
	s.x = make([]float64, n)
	s.y = make([]float64, n)
	for i, u := range us {
		s.x[i], s.y[i] = s.Curve.Eval(u)
	}
	return s.x, s.y
}

// EvalYOnX returns y for a given target x via the underlying Bezier's
// bisection inversion.
func (s *BezierSide) EvalYOnX(x float64) float64 {
	return s.Curve.EvalYOnX(x, true)
}

// ControlPoints returns the raw control point arrays (for .bez I/O).
func (s *BezierSide) ControlPoints() ([]float64, []float64) {
	return s.Curve.px, s.Curve.py
}
