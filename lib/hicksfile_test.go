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
	"os"
	"path/filepath"
	"testing"
)

func TestHicksFileRoundTrip(t *testing.T) {
	seedX, seedY := symmetricTestAirfoil(15)
	iLe := argminX(seedX)
	seedUX := make([]float64, iLe+1)
	seedUY := make([]float64, iLe+1)
	for i := 0; i <= iLe; i++ {
		seedUX[i] = seedX[iLe-i]
		seedUY[i] = seedY[iLe-i]
	}
	seedLX := append([]float64{}, seedX[iLe:]...)
	seedLY := append([]float64{}, seedY[iLe:]...)

	upper := NewHicksHenneSide(true, seedUX, seedUY)
	upper.AddBump(HicksHenne{Strength: 0.01, Location: 0.3, Width: 1})
	lower := NewHicksHenneSide(false, seedLX, seedLY)
	lower.AddBump(HicksHenne{Strength: -0.005, Location: 0.4, Width: 1})

	dir := t.TempDir()
	path := filepath.Join(dir, "test.hicks")
	if err := SaveHicksFile(path, "testfoil", upper, lower); err != nil {
		t.Fatal(err)
	}

	geo, name, err := LoadHicksFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if name != "testfoil" {
		t.Errorf("got name %q", name)
	}
	if geo.Kind() != StrategyHicksHenne {
		t.Errorf("got strategy kind %v", geo.Kind())
	}
	if len(geo.X()) == 0 {
		t.Error("expected a non-empty reconstructed contour")
	}
}

func TestHicksFileRejectsEmptyFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "empty.hicks")
	if err := os.WriteFile(path, nil, 0644); err != nil {
		t.Fatal(err)
	}
	if _, _, err := LoadHicksFile(path); err == nil {
		t.Error("expected an error loading an empty .hicks file")
	}
}
