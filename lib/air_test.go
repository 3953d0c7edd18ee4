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

func TestReynoldsNumberAndVelocityRoundTrip(t *testing.T) {
	re := ReynoldsNumber(15, 0.25)
	if re <= 0 {
		t.Fatalf("got non-positive Re: %v", re)
	}
	v := VelocityFromRe(re, 0.25)
	if !IsClose(v, 15, 0.1) {
		t.Errorf("velocity round trip: got %v want ~15", v)
	}
}

func TestReynoldsTimesSqrtClPositiveForPositiveLoad(t *testing.T) {
	r := ReynoldsTimesSqrtCl(0.3, 5)
	if r <= 0 {
		t.Errorf("got %v, want positive", r)
	}
}

func TestClFromReSqrtClInvertsReynoldsTimesSqrtCl(t *testing.T) {
	chord, load := 0.3, 5.0
	reSqrtCl := ReynoldsTimesSqrtCl(chord, load)
	re := ReynoldsNumber(12, chord)
	cl := ClFromReSqrtCl(reSqrtCl, re)
	if cl <= 0 {
		t.Errorf("got non-positive Cl: %v", cl)
	}
}
