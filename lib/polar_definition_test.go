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

func TestPolarDefinitionIsCompatibleIgnoresReAndMach(t *testing.T) {
	a := NewPolarDefinition(200000, 0, T1)
	b := NewPolarDefinition(500000, 0.1, T1)
	if !a.IsCompatible(b) {
		t.Error("definitions differing only in Re/Mach should be compatible")
	}
}

func TestPolarDefinitionIsCompatibleRejectsDifferentType(t *testing.T) {
	a := NewPolarDefinition(200000, 0, T1)
	b := NewPolarDefinition(200000, 0, T2)
	if a.IsCompatible(b) {
		t.Error("T1 and T2 should not be compatible")
	}
}

func TestPolarDefinitionIsCompatibleRejectsDifferentFlap(t *testing.T) {
	a := NewPolarDefinition(200000, 0, T1)
	b := NewPolarDefinition(200000, 0, T1)
	b.Flap = FlapHinge{Active: true, XFlap: 0.7, YFlap: 0, YFlapSpec: "y/c"}
	if a.IsCompatible(b) {
		t.Error("differing flap state should not be compatible")
	}
}

func TestPolarDefinitionCanonicalNameReflectsRecipe(t *testing.T) {
	d := NewPolarDefinition(200000, 0, T1)
	name := d.CanonicalName()
	if name == "" {
		t.Fatal("empty canonical name")
	}
	d2 := NewPolarDefinition(300000, 0, T1)
	if d.CanonicalName() == d2.CanonicalName() {
		t.Error("different Re should produce different canonical names")
	}
}
