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

// bezierStrategy backs the airfoil with two BezierSides (upper, lower).
// x and y are the sampled curve; repanel only changes sampling density.
type bezierStrategy struct {
	g           *Geometry
	Upper, Lower *BezierSide
}

func newBezierStrategy(g *Geometry) *bezierStrategy { return &bezierStrategy{g: g} }

// SetSides installs the control-point sides once parsed from a .bez file
// or constructed from a seed airfoil fit.
func (s *bezierStrategy) SetSides(upper, lower *BezierSide) {
	s.Upper, s.Lower = upper, lower
}

func (s *bezierStrategy) Kind() StrategyKind { return StrategyBezier }

func (s *bezierStrategy) resetSpline() {}

func (s *bezierStrategy) leReal(x, y []float64, iLe int) (float64, float64, error) {
	return 0, 0, errNotSupported
}

func (s *bezierStrategy) curvature(x, y []float64, iLe int) *Curvature {
	if s.Upper == nil || s.Lower == nil {
		return &Curvature{Kappa: make([]float64, len(x)), ILe: iLe,
			Upper: NewLine(LineCurvature, nil, nil), Lower: NewLine(LineCurvature, nil, nil)}
	}
	n := len(x)
	kappa := make([]float64, n)
	us := nonUniformU(iLe + 1)
	for i := 0; i <= iLe; i++ {
		u := us[iLe-i]
		// upper curvature sign-flipped so the concatenation convention
		// matches the splined curve
		kappa[i] = -s.Upper.Curve.Curvature(u)
	}
	usl := nonUniformU(n - iLe)
	for i := iLe; i < n; i++ {
		kappa[i] = s.Lower.Curve.Curvature(usl[i-iLe])
	}
	return newCurvatureFromKappa(kappa, x, iLe)
}

// upperNewX evaluates the upper side's Bezier at the inverted x target.
func (s *bezierStrategy) upperNewX(xs []float64) []float64 {
	if s.Upper == nil {
		return nil
	}
	out := make([]float64, len(xs))
	for i, xt := range xs {
		out[i] = s.Upper.EvalYOnX(xt)
	}
	return out
}

func (s *bezierStrategy) lowerNewX(xs []float64) []float64 {
	if s.Lower == nil {
		return nil
	}
	out := make([]float64, len(xs))
	for i, xt := range xs {
		out[i] = s.Lower.EvalYOnX(xt)
	}
	return out
}
