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

import "testing"

func TestBezierEvalEndpoints(t *testing.T) {
	px := []float64{0, 0.3, 0.7, 1}
	py := []float64{0, 0.1, -0.1, 0}
	b := NewBezier(px, py)
	x0, y0 := b.Eval(0)
	if !IsClose(x0, px[0], 1e-12) || !IsClose(y0, py[0], 1e-12) {
		t.Errorf("u=0: got (%v,%v) want (%v,%v)", x0, y0, px[0], py[0])
	}
	x1, y1 := b.Eval(1)
	if !IsClose(x1, px[len(px)-1], 1e-12) || !IsClose(y1, py[len(py)-1], 1e-12) {
		t.Errorf("u=1: got (%v,%v) want (%v,%v)", x1, y1, px[len(px)-1], py[len(py)-1])
	}
}

func TestBezierEvalYOnXMatchesEval(t *testing.T) {
	px := []float64{0, 0.25, 0.75, 1}
	py := []float64{0, 0.08, 0.04, 0}
	b := NewBezier(px, py)
	for _, u := range []float64{0.1, 0.4, 0.6, 0.9} {
		x, y := b.Eval(u)
		got := b.EvalYOnX(x, false)
		if !IsClose(got, y, 1e-6) {
			t.Errorf("x=%v: got y=%v want %v", x, got, y)
		}
	}
}

func TestBezierInvertXMatchesEval(t *testing.T) {
	px := []float64{0, 0.2, 0.8, 1}
	py := []float64{0, 0.1, -0.05, 0}
	b := NewBezier(px, py)
	for _, want := range []float64{0.05, 0.3, 0.65, 0.95} {
		x, _ := b.Eval(want)
		u := b.InvertX(x)
		if !IsClose(u, want, 1e-4) {
			t.Errorf("x=%v: got u=%v want %v", x, u, want)
		}
	}
}

func TestBezierCurvatureOfStraightLineIsZero(t *testing.T) {
	px := []float64{0, 1}
	py := []float64{0, 0}
	b := NewBezier(px, py)
	if c := b.Curvature(0.5); !IsClose(c, 0, 1e-9) {
		t.Errorf("got %v want 0", c)
	}
}
