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

func samplePolar() *Polar {
	def := NewPolarDefinition(200000, 0, T1)
	p := NewPolar("test0012", def)
	p.Points = []OperatingPoint{
		{Alpha: -2, Cl: -0.1, Cd: 0.008, Cm: -0.01},
		{Alpha: 0, Cl: 0.2, Cd: 0.006, Cm: -0.02},
		{Alpha: 2, Cl: 0.5, Cd: 0.007, Cm: -0.03},
		{Alpha: 4, Cl: 0.8, Cd: 0.009, Cm: -0.04},
	}
	p.IsLoaded = true
	return p
}

func TestPolarMarkErrorCountsAsLoaded(t *testing.T) {
	p := NewPolar("af", NewPolarDefinition(1e5, 0, T1))
	if p.IsLoaded {
		t.Error("fresh polar should not be loaded")
	}
	p.MarkError("xfoil did not converge")
	if !p.IsLoaded {
		t.Error("MarkError should mark the polar loaded")
	}
	if p.ErrorReason == "" {
		t.Error("ErrorReason should be recorded")
	}
}

func TestPolarOfVarsAlphaCl(t *testing.T) {
	p := samplePolar()
	xs, ys := p.OfVars(ChAlpha, ChCl)
	if len(xs) != 4 || len(ys) != 4 {
		t.Fatalf("got %d points", len(xs))
	}
	if xs[0] != -2 || ys[0] != -0.1 {
		t.Errorf("first point: (%v,%v)", xs[0], ys[0])
	}
}

func TestPolarGetInterpolatedMidpoint(t *testing.T) {
	p := samplePolar()
	cl, ok := p.GetInterpolated(ChAlpha, 1, ChCl, false)
	if !ok {
		t.Fatal("expected interpolation to succeed")
	}
	if !IsClose(cl, 0.35, 1e-9) {
		t.Errorf("got %v want 0.35", cl)
	}
}

func TestPolarGetInterpolatedOutsideRangeFails(t *testing.T) {
	p := samplePolar()
	if _, ok := p.GetInterpolated(ChAlpha, 10, ChCl, false); ok {
		t.Error("expected out-of-range interpolation to fail")
	}
	if _, ok := p.GetInterpolated(ChAlpha, 10, ChCl, true); !ok {
		t.Error("expected allowOutside=true to succeed")
	}
}

func TestPolarGetInterpolatedPointAllChannels(t *testing.T) {
	p := samplePolar()
	op, ok := p.GetInterpolatedPoint(ChAlpha, 2)
	if !ok {
		t.Fatal("expected interpolated point to succeed")
	}
	if !IsClose(op.Cl, 0.5, 1e-9) {
		t.Errorf("Cl: got %v want 0.5", op.Cl)
	}
}

func TestPolarIsEqualTo(t *testing.T) {
	p1 := samplePolar()
	p2 := samplePolar()
	if !p1.IsEqualTo(p2) {
		t.Error("polars built from equal definitions should be equal")
	}
	p3 := NewPolar("test0012", NewPolarDefinition(500000, 0, T1))
	if p1.IsEqualTo(p3) {
		t.Error("different Re should not be equal")
	}
}
