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

func TestHicksHenneEvalIsZeroAtEndpoints(t *testing.T) {
	h := HicksHenne{Strength: 0.01, Location: 0.3, Width: 1}
	if v := h.Eval(0); v != 0 {
		t.Errorf("Eval(0): got %v want 0", v)
	}
	if v := h.Eval(1); v != 0 {
		t.Errorf("Eval(1): got %v want 0", v)
	}
}

func TestHicksHenneEvalPeaksNearLocation(t *testing.T) {
	h := HicksHenne{Strength: 0.02, Location: 0.4, Width: 1}
	atLocation := h.Eval(h.Location)
	atFar := h.Eval(0.05)
	if atLocation <= atFar {
		t.Errorf("expected the bump to be larger near its location: at-loc=%v at-far=%v", atLocation, atFar)
	}
	if atLocation <= 0 {
		t.Errorf("expected a positive bump for positive strength, got %v", atLocation)
	}
}

func TestHicksHenneEvalScalesWithStrength(t *testing.T) {
	weak := HicksHenne{Strength: 0.01, Location: 0.4, Width: 1}
	strong := HicksHenne{Strength: 0.02, Location: 0.4, Width: 1}
	if strong.Eval(0.4) <= weak.Eval(0.4) {
		t.Error("expected a larger strength to produce a larger bump")
	}
}

func TestHicksHenneSideEvalAddsAllBumps(t *testing.T) {
	seedX := []float64{0, 0.25, 0.5, 0.75, 1}
	seedY := []float64{0, 0.02, 0.03, 0.02, 0}
	s := NewHicksHenneSide(true, seedX, seedY)
	s.AddBump(HicksHenne{Strength: 0.01, Location: 0.5, Width: 1})
	s.AddBump(HicksHenne{Strength: -0.005, Location: 0.5, Width: 1})

	y := s.Eval()
	want := seedY[2] + HicksHenne{Strength: 0.01, Location: 0.5, Width: 1}.Eval(0.5) +
		HicksHenne{Strength: -0.005, Location: 0.5, Width: 1}.Eval(0.5)
	if !IsClose(y[2], want, 1e-12) {
		t.Errorf("got %v want %v", y[2], want)
	}
}

func TestHicksHenneSideEvalLeavesSeedUntouched(t *testing.T) {
	seedX := []float64{0, 0.5, 1}
	seedY := []float64{0, 0.03, 0}
	s := NewHicksHenneSide(false, seedX, seedY)
	s.AddBump(HicksHenne{Strength: 0.01, Location: 0.5, Width: 1})
	_ = s.Eval()
	if s.SeedY[1] != 0.03 {
		t.Error("expected Eval to leave the stored seed values unmodified")
	}
}
