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

// hicksHenneStrategy backs the airfoil with a seed curve per side plus a
// list of additive Hicks-Henne bump functions. The seed's x grid is
// master; resampling onto a new x target falls back to linear
// interpolation of the evaluated (seed+bumps) curve, same as Basic.
type hicksHenneStrategy struct {
	g            *Geometry
	Upper, Lower *HicksHenneSide
}

func newHicksHenneStrategy(g *Geometry) *hicksHenneStrategy { return &hicksHenneStrategy{g: g} }

func (s *hicksHenneStrategy) SetSides(upper, lower *HicksHenneSide) {
	s.Upper, s.Lower = upper, lower
}

func (s *hicksHenneStrategy) Kind() StrategyKind { return StrategyHicksHenne }

func (s *hicksHenneStrategy) resetSpline() {}

func (s *hicksHenneStrategy) leReal(x, y []float64, iLe int) (float64, float64, error) {
	return 0, 0, errNotSupported
}

func (s *hicksHenneStrategy) curvature(x, y []float64, iLe int) *Curvature {
	sp, err := NewSpline2D(x, y)
	if err != nil {
		return &Curvature{Kappa: make([]float64, len(x)), ILe: iLe,
			Upper: NewLine(LineCurvature, nil, nil), Lower: NewLine(LineCurvature, nil, nil)}
	}
	return NewCurvature(sp, x, iLe)
}

func (s *hicksHenneStrategy) upperNewX(xs []float64) []float64 {
	if s.Upper == nil {
		return nil
	}
	y := s.Upper.Eval()
	return resampleLinear(s.Upper.SeedX, y, xs)
}

func (s *hicksHenneStrategy) lowerNewX(xs []float64) []float64 {
	if s.Lower == nil {
		return nil
	}
	y := s.Lower.Eval()
	return resampleLinear(s.Lower.SeedX, y, xs)
}
