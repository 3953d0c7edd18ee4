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

// Bezier is a parametric Bezier curve of arbitrary degree, evaluated by
// de Casteljau's algorithm.
type Bezier struct {
	px, py []float64
	lastU  float64 // cache for EvalYOnX(fast=true)
}

// NewBezier stores the given control points.
func NewBezier(px, py []float64) *Bezier {
	return &Bezier{px: append([]float64{}, px...), py: append([]float64{}, py...)}
}

func (b *Bezier) NPoints() int { return len(b.px) }

// deCasteljau evaluates the curve and, if der>0, its der-th derivative at u.
func deCasteljau(p []float64, u float64, der int) float64 {
	pts := append([]float64{}, p...)
	n := len(pts)
	for d := 0; d < der; d++ {
		if n < 2 {
			return 0
		}
		deriv := make([]float64, n-1)
		deg := n - 1
		for i := 0; i < n-1; i++ {
			deriv[i] = float64(deg) * (pts[i+1] - pts[i])
		}
		pts = deriv
		n--
	}
	for k := 1; k < n; k++ {
		for i := 0; i < n-k; i++ {
			pts[i] = (1-u)*pts[i] + u*pts[i+1]
		}
	}
	return pts[0]
}

// Eval returns (x,y) at parameter u in [0,1].
func (b *Bezier) Eval(u float64) (float64, float64) {
	return deCasteljau(b.px, u, 0), deCasteljau(b.py, u, 0)
}

// Deriv returns (x'(u), y'(u)).
func (b *Bezier) Deriv(u float64) (float64, float64) {
	return deCasteljau(b.px, u, 1), deCasteljau(b.py, u, 1)
}

// Deriv2 returns (x''(u), y''(u)).
func (b *Bezier) Deriv2(u float64) (float64, float64) {
	return deCasteljau(b.px, u, 2), deCasteljau(b.py, u, 2)
}

// Curvature returns (x'y'' - y'x'') / (x'^2+y'^2)^1.5 at parameter u.
func (b *Bezier) Curvature(u float64) float64 {
	xp, yp := b.Deriv(u)
	xpp, ypp := b.Deriv2(u)
	denom := math.Pow(xp*xp+yp*yp, 1.5)
	if IsNull(denom) {
		return 0
	}
	return (xp*ypp - yp*xpp) / denom
}

// EvalYOnX inverts x(u) = target by bisection (the curve is x-monotone by
// construction for airfoil sides) and evaluates y at the found u. With
// fast=true, the search starts from the previously found u.
func (b *Bezier) EvalYOnX(x float64, fast bool) float64 {
	lo, hi := 0.0, 1.0
	xLo, _ := b.Eval(lo)
	sign := 1.0
	if xLo > x {
		sign = -1.0
	}
	guess := 0.5
	if fast && b.lastU > 0 && b.lastU < 1 {
		guess = b.lastU
	}
	if xg, _ := b.Eval(guess); sign*(xg-x) < 0 {
		lo = guess
	} else {
		hi = guess
	}
	for i := 0; i < 60; i++ {
		mid := 0.5 * (lo + hi)
		xm, _ := b.Eval(mid)
		if math.Abs(xm-x) < 1e-12 {
			lo, hi = mid, mid
			break
		}
		if sign*(xm-x) < 0 {
			lo = mid
		} else {
			hi = mid
		}
	}
	u := 0.5 * (lo + hi)
	b.lastU = u
	_, y := b.Eval(u)
	return y
}

// InvertX returns the parameter u such that x(u) = target, via 60 bisection
// steps on [0,1]. No further refinement is made, so a curve whose x(u) is
// not monotone yields one of its crossings, not necessarily the nearest.
func (b *Bezier) InvertX(target float64) float64 {
	lo, hi := 0.0, 1.0
	xLo, _ := b.Eval(lo)
	sign := 1.0
	if xLo > target {
		sign = -1.0
	}
	for i := 0; i < 60; i++ {
		mid := 0.5 * (lo + hi)
		xm, _ := b.Eval(mid)
		if sign*(xm-target) < 0 {
			lo = mid
		} else {
			hi = mid
		}
	}
	return 0.5 * (lo + hi)
}
