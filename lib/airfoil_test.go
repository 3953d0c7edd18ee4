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
	"path/filepath"
	"testing"
)

func writeTestDat(t *testing.T, dir, name string) string {
	t.Helper()
	x, y := symmetricTestAirfoil(20)
	path := filepath.Join(dir, name+".dat")
	if err := SaveDatFile(path, name, x, y); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestAirfoilLoadSaveRoundTrip(t *testing.T) {
	dir := t.TempDir()
	path := writeTestDat(t, dir, "test0012")

	af := NewAirfoilFromPath(path)
	if af.Name != "test0012" {
		t.Errorf("Name: got %q", af.Name)
	}
	if err := af.Load(); err != nil {
		t.Fatal(err)
	}
	if af.Stem() != "test0012" {
		t.Errorf("Stem: got %q", af.Stem())
	}
	out := filepath.Join(dir, "out.dat")
	if err := af.Save(out); err != nil {
		t.Fatal(err)
	}

	reloaded := NewAirfoilFromPath(out)
	if err := reloaded.Load(); err != nil {
		t.Fatal(err)
	}
	if len(reloaded.Geo.X()) != len(af.Geo.X()) {
		t.Errorf("point count changed on round trip: %d vs %d", len(reloaded.Geo.X()), len(af.Geo.X()))
	}
}

func TestAirfoilLoadIsIdempotent(t *testing.T) {
	dir := t.TempDir()
	path := writeTestDat(t, dir, "idem")
	af := NewAirfoilFromPath(path)
	if err := af.Load(); err != nil {
		t.Fatal(err)
	}
	g1 := af.Geo
	if err := af.Load(); err != nil {
		t.Fatal(err)
	}
	if af.Geo != g1 {
		t.Error("second Load should be a no-op once loaded")
	}
}

func TestAirfoilAsCopyIsIndependent(t *testing.T) {
	dir := t.TempDir()
	path := writeTestDat(t, dir, "seed")
	af := NewAirfoilFromPath(path)
	if err := af.Load(); err != nil {
		t.Fatal(err)
	}
	cp, err := af.AsCopy("seed_copy", RoleDesign)
	if err != nil {
		t.Fatal(err)
	}
	if cp.UsedAs != RoleDesign {
		t.Errorf("role: got %v", cp.UsedAs)
	}
	cp.Geo.X()[0] = 999
	if af.Geo.X()[0] == 999 {
		t.Error("copy should not share backing arrays with the original")
	}
}

func TestAirfoilBezierSidesFalseForNonBezier(t *testing.T) {
	dir := t.TempDir()
	path := writeTestDat(t, dir, "plain")
	af := NewAirfoilFromPath(path)
	if err := af.Load(); err != nil {
		t.Fatal(err)
	}
	if _, _, ok := af.BezierSides(); ok {
		t.Error("expected ok=false for a non-Bezier airfoil")
	}
}

func TestAirfoilLoadRejectsUnsupportedExtension(t *testing.T) {
	af := NewAirfoilFromPath("/tmp/nonexistent.xyz")
	if err := af.Load(); err == nil {
		t.Error("expected error for unsupported extension")
	}
}
