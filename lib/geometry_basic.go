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

// basicStrategy is the linear-interpolation baseline: upper/lower
// resampling uses plain linear interpolation between the airfoil's own
// points, and curvature comes from a Spline2D through the points as they
// are. No temporary normalization is made, whether or not the shape is
// normalized.
type basicStrategy struct {
	g *Geometry
}

func newBasicStrategy(g *Geometry) *basicStrategy { return &basicStrategy{g: g} }

func (s *basicStrategy) Kind() StrategyKind { return StrategyBasic }

func (s *basicStrategy) upperNewX(xs []float64) []float64 {
	u := s.g.Upper()
	return resampleLinear(u.X, u.Y, xs)
}

func (s *basicStrategy) lowerNewX(xs []float64) []float64 {
	l := s.g.Lower()
	return resampleLinear(l.X, l.Y, xs)
}

func (s *basicStrategy) curvature(x, y []float64, iLe int) *Curvature {
	sp, err := NewSpline2D(x, y)
	if err != nil {
		return &Curvature{Kappa: make([]float64, len(x)), ILe: iLe,
			Upper: NewLine(LineCurvature, nil, nil), Lower: NewLine(LineCurvature, nil, nil)}
	}
	return NewCurvature(sp, x, iLe)
}

func (s *basicStrategy) resetSpline() {}

// leReal for the basic strategy is just the point-index LE; the iterative
// splined convergence check in Normalize is skipped (realLE=false path).
func (s *basicStrategy) leReal(x, y []float64, iLe int) (float64, float64, error) {
	return 0, 0, errNotSupported
}

var errNotSupported = errBasicNoRealLE{}

type errBasicNoRealLE struct{}

func (errBasicNoRealLE) Error() string { return "basic strategy has no splined leading edge" }
