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
	"database/sql"
	"encoding/json"
	"errors"

	_ "github.com/mattn/go-sqlite3"
)

// index initialization statement
var polarIndexIni = `
create table polar_header (
    fname   varchar(255) not null,  -- absolute polar file path
	mtime   integer not null,       -- source file modification time (unix)
    re      float not null,         -- recorded Reynolds number
    mach    float not null,         -- recorded Mach number
    ncrit   float not null,         -- recorded ncrit
	npoints integer not null,       -- number of operating points
	valid   integer not null,       -- 1 if the file parsed cleanly
	points  text not null default '' -- json-encoded []OperatingPoint
);
create unique index idx_polar_fname on polar_header(fname);
`

// PolarIndexEntry caches a parsed .polar file's header plus its decoded
// operating points, so a fresh cache hit can satisfy PolarSet.LoadOrGeneratePolars
// without LoadPolarFile touching the file again.
type PolarIndexEntry struct {
	FileName string
	MTime    int64
	Re       float64
	Mach     float64
	Ncrit    float64
	NPoints  int
	Valid    bool
	Points   []OperatingPoint
}

// PolarIndex is the on-disk cache of parsed polar file headers.
type PolarIndex struct {
	inst *sql.DB
}

// OpenPolarIndex opens (creating if necessary) the sqlite index file.
func OpenPolarIndex(fname string) (idx *PolarIndex, err error) {
	idx = new(PolarIndex)
	if idx.inst, err = sql.Open("sqlite3", fname); err == nil {
		var num int64
		row := idx.inst.QueryRow("select count(*) from polar_header")
		if err = row.Scan(&num); err != nil {
			_, err = idx.inst.Exec(polarIndexIni)
		}
	}
	return
}

// Close the index database.
func (idx *PolarIndex) Close() error {
	if idx.inst == nil {
		return errors.New("polar index not opened")
	}
	return idx.inst.Close()
}

// Put records (or replaces) a polar file's parsed header and points.
func (idx *PolarIndex) Put(e *PolarIndexEntry) error {
	stmt := "replace into polar_header(fname,mtime,re,mach,ncrit,npoints,valid,points) values(?,?,?,?,?,?,?,?)"
	valid := 0
	if e.Valid {
		valid = 1
	}
	points, err := json.Marshal(e.Points)
	if err != nil {
		return err
	}
	_, err = idx.inst.Exec(stmt, e.FileName, e.MTime, e.Re, e.Mach, e.Ncrit, e.NPoints, valid, string(points))
	return err
}

// Get looks up a cached header by file name, returning ok=false on miss.
func (idx *PolarIndex) Get(fname string) (e *PolarIndexEntry, ok bool, err error) {
	row := idx.inst.QueryRow(
		"select fname,mtime,re,mach,ncrit,npoints,valid,points from polar_header where fname=?", fname)
	e = new(PolarIndexEntry)
	var valid int
	var points string
	if serr := row.Scan(&e.FileName, &e.MTime, &e.Re, &e.Mach, &e.Ncrit, &e.NPoints, &valid, &points); serr != nil {
		if errors.Is(serr, sql.ErrNoRows) {
			return nil, false, nil
		}
		return nil, false, serr
	}
	e.Valid = valid != 0
	if points != "" {
		if jerr := json.Unmarshal([]byte(points), &e.Points); jerr != nil {
			return nil, false, jerr
		}
	}
	return e, true, nil
}

// Fresh reports whether the cached entry still matches the file's current
// modification time.
func (e *PolarIndexEntry) Fresh(mtime int64) bool {
	return e != nil && e.MTime == mtime
}
