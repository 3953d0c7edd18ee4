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
	"math"
	"testing"
)

func TestSplineCubicInterpolatesNodes(t *testing.T) {
	x := []float64{0, 1, 2, 3, 4}
	y := []float64{0, 1, 4, 9, 16}
	s, err := NewSplineCubic(x, y, NotAKnot)
	if err != nil {
		t.Fatal(err)
	}
	for i, xi := range x {
		got := s.Eval(xi, 0)
		if !IsClose(got, y[i], 1e-9) {
			t.Errorf("node %d: got %v want %v", i, got, y[i])
		}
	}
}

func TestSplineCubicRejectsShortOrNonMonotone(t *testing.T) {
	if _, err := NewSplineCubic([]float64{0, 1}, []float64{0, 1}, Natural); err == nil {
		t.Error("expected error for too few points")
	}
	if _, err := NewSplineCubic([]float64{0, 1, 0.5}, []float64{0, 1, 2}, Natural); err == nil {
		t.Error("expected error for non-increasing x")
	}
}

func TestSpline2DRoundTripsThroughNodes(t *testing.T) {
	x := []float64{1, 0.5, 0, 0.5, 1}
	y := []float64{0, 0.05, 0, -0.03, 0}
	s, err := NewSpline2D(x, y)
	if err != nil {
		t.Fatal(err)
	}
	u := s.U()
	if len(u) != len(x) {
		t.Fatalf("got %d u values, want %d", len(u), len(x))
	}
	for i, ui := range u {
		gx, gy := s.Eval(ui)
		if !IsClose(gx, x[i], 1e-6) || !IsClose(gy, y[i], 1e-6) {
			t.Errorf("node %d: got (%v,%v) want (%v,%v)", i, gx, gy, x[i], y[i])
		}
	}
}

func TestSpline2DFindLENearSymmetricNose(t *testing.T) {
	// A symmetric teardrop-ish contour with its nose at u=0.5.
	n := 21
	x := make([]float64, n)
	y := make([]float64, n)
	for i := 0; i < n; i++ {
		f := float64(i) / float64(n-1)
		x[i] = math.Abs(2*f - 1)
		y[i] = 0.1 * math.Sin(math.Pi*x[i])
		if f > 0.5 {
			y[i] = -y[i]
		}
	}
	s, err := NewSpline2D(x, y)
	if err != nil {
		t.Fatal(err)
	}
	u, xle, _, err := s.FindLE(0.5)
	if err != nil {
		t.Fatal(err)
	}
	if !IsClose(u, 0.5, 0.05) {
		t.Errorf("LE param: got %v want ~0.5", u)
	}
	if xle > 0.1 {
		t.Errorf("LE x: got %v want near 0", xle)
	}
}

func TestFindRootConverges(t *testing.T) {
	fn := func(u float64) float64 { return u - 0.3 }
	root, err := FindRoot(fn, 0.5, 0, 1, 1e-9)
	if err != nil {
		t.Fatal(err)
	}
	if !IsClose(root, 0.3, 1e-4) {
		t.Errorf("got %v want 0.3", root)
	}
}

func TestMinimize1DFindsMinimum(t *testing.T) {
	fn := func(u float64) float64 { return (u - 0.7) * (u - 0.7) }
	got := Minimize1D(fn, 0.1, 0, 1)
	if !IsClose(got, 0.7, 1e-3) {
		t.Errorf("got %v want 0.7", got)
	}
}
