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

func TestBezFileRoundTrip(t *testing.T) {
	upper, err := NewBezierSide(true, []float64{0, 0, 0.1, 0.3, 0.6, 1}, []float64{0, 0.02, 0.06, 0.08, 0.05, 0})
	if err != nil {
		t.Fatal(err)
	}
	lower, err := NewBezierSide(false, []float64{0, 0, 0.1, 0.3, 0.6, 1}, []float64{0, -0.015, -0.04, -0.05, -0.03, 0})
	if err != nil {
		t.Fatal(err)
	}

	dir := t.TempDir()
	path := filepath.Join(dir, "test.bez")
	if err := SaveBezFile(path, "testfoil", upper, lower); err != nil {
		t.Fatal(err)
	}

	geo, name, err := LoadBezFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if name != "testfoil" {
		t.Errorf("got name %q", name)
	}
	if geo.Kind() != StrategyBezier {
		t.Errorf("got strategy kind %v", geo.Kind())
	}
	if !geo.normalized {
		t.Error("expected a loaded .bez geometry to be marked normalized")
	}
}

func TestReadBezBlockRejectsMismatchedMarkers(t *testing.T) {
	upper, _ := NewBezierSide(true, []float64{0, 0, 0.5, 1}, []float64{0, 0.02, 0.05, 0})
	lower, _ := NewBezierSide(false, []float64{0, 0, 0.5, 1}, []float64{0, -0.02, -0.04, 0})

	dir := t.TempDir()
	path := filepath.Join(dir, "broken.bez")
	if err := SaveBezFile(path, "broken", upper, lower); err != nil {
		t.Fatal(err)
	}
	// corrupt the file by truncating before the Bottom block
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	truncated := data[:len(data)/2]
	if err := os.WriteFile(path, truncated, 0644); err != nil {
		t.Fatal(err)
	}
	if _, _, err := LoadBezFile(path); err == nil {
		t.Error("expected an error loading a truncated .bez file")
	}
}
