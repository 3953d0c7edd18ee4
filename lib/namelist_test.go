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

func TestNamelistWriteParseRoundTrip(t *testing.T) {
	n := NewNamelist()
	opt := n.Group("optimization_options")
	opt.SetInt("shape_functions_count", 8)
	opt.SetFloat("initial_perturb", 0.025)
	opt.SetBool("show_details", true)
	cond := n.Group("operating_conditions")
	cond.SetFloats("re", []float64{200000, 300000})
	cond.Set("polar_name", "T1_Re200000")

	dir := t.TempDir()
	path := filepath.Join(dir, "case.nml")
	if err := n.Write(path); err != nil {
		t.Fatal(err)
	}

	reloaded, err := ParseNamelist(path)
	if err != nil {
		t.Fatal(err)
	}
	rOpt := reloaded.Group("optimization_options")
	if v, ok := rOpt.Get("shape_functions_count"); !ok || v != "8" {
		t.Errorf("shape_functions_count: got %q, ok=%v", v, ok)
	}
	if v, ok := rOpt.Get("show_details"); !ok || v != ".true." {
		t.Errorf("show_details: got %q, ok=%v", v, ok)
	}
	rCond := reloaded.Group("operating_conditions")
	if v, ok := rCond.Get("polar_name"); !ok || v != "'T1_Re200000'" {
		t.Errorf("polar_name: got %q, ok=%v", v, ok)
	}
}

func TestNamelistWriteOrdersCanonicalGroupsFirst(t *testing.T) {
	n := NewNamelist()
	n.Group("info").Set("comment", "trailing")
	n.Group("optimization_options").SetInt("x", 1)

	dir := t.TempDir()
	path := filepath.Join(dir, "case.nml")
	if err := n.Write(path); err != nil {
		t.Fatal(err)
	}
	reloaded, err := ParseNamelist(path)
	if err != nil {
		t.Fatal(err)
	}
	groups := reloaded.Groups()
	if len(groups) != 2 {
		t.Fatalf("got %d groups", len(groups))
	}
	if groups[0].Name != "optimization_options" || groups[1].Name != "info" {
		t.Errorf("got order %s, %s; want optimization_options before info", groups[0].Name, groups[1].Name)
	}
}

func TestNamelistPreservesUnknownKeys(t *testing.T) {
	n := NewNamelist()
	g := n.Group("a_future_group")
	g.SetInt("some_new_flag", 42)

	dir := t.TempDir()
	path := filepath.Join(dir, "case.nml")
	if err := n.Write(path); err != nil {
		t.Fatal(err)
	}
	reloaded, err := ParseNamelist(path)
	if err != nil {
		t.Fatal(err)
	}
	rg := reloaded.Group("a_future_group")
	if v, ok := rg.Get("some_new_flag"); !ok || v != "42" {
		t.Errorf("got %q, ok=%v", v, ok)
	}
}

func TestSplitAssignmentsRespectsQuotedCommas(t *testing.T) {
	parts := splitAssignments(`name = 'a, b', count = 3`)
	if len(parts) != 2 {
		t.Fatalf("got %d parts: %v", len(parts), parts)
	}
}

func TestCheckContentFailsForMissingExecutable(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "case.nml")
	n := NewNamelist()
	n.Group("optimization_options").SetInt("x", 1)
	if err := n.Write(path); err != nil {
		t.Fatal(err)
	}
	if err := CheckContent("/no/such/xoptfoil2", path); err == nil {
		t.Error("expected an error when the executable cannot be run")
	}
}
