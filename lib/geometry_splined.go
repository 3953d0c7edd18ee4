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

// splinedStrategy backs the airfoil with a single 2-D arc-length spline
// over the whole contour, enabling accurate LE detection and repaneling.
type splinedStrategy struct {
	g  *Geometry
	sp *Spline2D
}

func newSplinedStrategy(g *Geometry) *splinedStrategy { return &splinedStrategy{g: g} }

func (s *splinedStrategy) Kind() StrategyKind { return StrategySplined }

func (s *splinedStrategy) ensure() *Spline2D {
	if s.sp == nil {
		sp, err := NewSpline2D(s.g.x, s.g.y)
		if err == nil {
			s.sp = sp
		}
	}
	return s.sp
}

func (s *splinedStrategy) resetSpline() { s.sp = nil }

func (s *splinedStrategy) leReal(x, y []float64, iLe int) (float64, float64, error) {
	sp, err := NewSpline2D(x, y)
	if err != nil {
		return 0, 0, err
	}
	uGuess := sp.U()[iLe]
	if iLe > 0 {
		uGuess = sp.U()[iLe-1]
	}
	_, lx, ly, ferr := sp.FindLE(uGuess)
	if ferr != nil {
		return 0, 0, ferr
	}
	return lx, ly, nil
}

func (s *splinedStrategy) curvature(x, y []float64, iLe int) *Curvature {
	sp, err := NewSpline2D(x, y)
	if err != nil {
		return &Curvature{Kappa: make([]float64, len(x)), ILe: iLe,
			Upper: NewLine(LineCurvature, nil, nil), Lower: NewLine(LineCurvature, nil, nil)}
	}
	s.sp = sp
	return NewCurvature(sp, x, iLe)
}

// upperNewX evaluates the contour spline at u obtained by a bounded
// Nelder-Mead root find of |x(u) - target| on [0, uLe].
func (s *splinedStrategy) upperNewX(xs []float64) []float64 {
	sp := s.ensure()
	if sp == nil {
		return nil
	}
	uLe := sp.U()[s.g.iLe]
	out := make([]float64, len(xs))
	for i, xt := range xs {
		fn := func(u float64) float64 { return sp.EvalX(u) - xt }
		u, err := FindRoot(fn, uLe/2, 0, uLe, 1e-9)
		if err != nil {
			out[i] = linInterp(s.g.Upper().X, s.g.Upper().Y, xt)
			continue
		}
		out[i] = sp.EvalY(u)
	}
	return out
}

// lowerNewX uses bounded Nelder-Mead on [uLe,1] for the first points,
// then switches to a secant refinement for speed on interior points.
func (s *splinedStrategy) lowerNewX(xs []float64) []float64 {
	sp := s.ensure()
	if sp == nil {
		return nil
	}
	uLe := sp.U()[s.g.iLe]
	out := make([]float64, len(xs))
	lastU := uLe
	for i, xt := range xs {
		var u float64
		if i <= 6 {
			fn := func(uu float64) float64 { return sp.EvalX(uu) - xt }
			var err error
			u, err = FindRoot(fn, (uLe+1)/2, uLe, 1, 1e-9)
			if err != nil {
				u = secantInvert(sp, xt, lastU)
			}
		} else {
			u = secantInvert(sp, xt, lastU)
		}
		out[i] = sp.EvalY(u)
		lastU = u
	}
	return out
}

func secantInvert(sp *Spline2D, xt, u0 float64) float64 {
	u1 := u0 + 0.01
	if u1 > 1 {
		u1 = u0 - 0.01
	}
	f0 := sp.EvalX(u0) - xt
	for i := 0; i < 4; i++ {
		f1 := sp.EvalX(u1) - xt
		if math.Abs(f1-f0) < 1e-14 {
			break
		}
		u2 := u1 - f1*(u1-u0)/(f1-f0)
		u0, f0 = u1, f1
		u1 = Clamp(u2, 0, 1)
	}
	return u1
}
