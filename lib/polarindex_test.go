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

func TestPolarIndexPutGetRoundTrip(t *testing.T) {
	dir := t.TempDir()
	idx, err := OpenPolarIndex(filepath.Join(dir, "polars.db"))
	if err != nil {
		t.Fatal(err)
	}
	defer idx.Close()

	entry := &PolarIndexEntry{
		FileName: "/tmp/af_T1_Re200000.polar",
		MTime:    1700000000,
		Re:       200000,
		Mach:     0,
		Ncrit:    9,
		NPoints:  24,
		Valid:    true,
	}
	if err := idx.Put(entry); err != nil {
		t.Fatal(err)
	}

	got, ok, err := idx.Get(entry.FileName)
	if err != nil {
		t.Fatal(err)
	}
	if !ok {
		t.Fatal("expected a cache hit")
	}
	if got.NPoints != 24 || got.Re != 200000 || !got.Valid {
		t.Errorf("got %+v", got)
	}
	if !got.Fresh(1700000000) {
		t.Error("expected entry to be fresh at the recorded mtime")
	}
	if got.Fresh(1700000001) {
		t.Error("expected entry to be stale at a different mtime")
	}
}

func TestPolarIndexGetMissReturnsNotOk(t *testing.T) {
	dir := t.TempDir()
	idx, err := OpenPolarIndex(filepath.Join(dir, "polars.db"))
	if err != nil {
		t.Fatal(err)
	}
	defer idx.Close()

	_, ok, err := idx.Get("/nowhere.polar")
	if err != nil {
		t.Fatal(err)
	}
	if ok {
		t.Error("expected no cache hit for an unknown file")
	}
}

func TestPolarIndexPutReplacesExistingEntry(t *testing.T) {
	dir := t.TempDir()
	idx, err := OpenPolarIndex(filepath.Join(dir, "polars.db"))
	if err != nil {
		t.Fatal(err)
	}
	defer idx.Close()

	fname := "/tmp/af.polar"
	if err := idx.Put(&PolarIndexEntry{FileName: fname, MTime: 1, NPoints: 10, Valid: true}); err != nil {
		t.Fatal(err)
	}
	if err := idx.Put(&PolarIndexEntry{FileName: fname, MTime: 2, NPoints: 20, Valid: false}); err != nil {
		t.Fatal(err)
	}
	got, ok, err := idx.Get(fname)
	if err != nil {
		t.Fatal(err)
	}
	if !ok || got.MTime != 2 || got.NPoints != 20 || got.Valid {
		t.Errorf("got %+v", got)
	}
}

func TestFreshNilEntryIsNeverFresh(t *testing.T) {
	var e *PolarIndexEntry
	if e.Fresh(0) {
		t.Error("a nil entry must never be reported fresh")
	}
}
