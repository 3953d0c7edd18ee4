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
	"fmt"
	"os"
	"path/filepath"
)

// PolarSet is the per-airfoil collection of Polars, keyed by canonical
// name with duplicate removal. An optional rescale factor adjusts Re
// (rounded to the nearest 5000) and Mach (rounded to 2 dp) of every
// polar, used when this airfoil is a chord-scaled reference.
type PolarSet struct {
	AirfoilName  string
	AirfoilPath  string
	Polars       []*Polar
	RescaleChord float64 // 0 or 1 means "no rescale"

	Index *PolarIndex // optional header/point cache, see UseIndex
}

// NewPolarSet creates an empty set for the named airfoil.
func NewPolarSet(airfoilName, airfoilPath string) *PolarSet {
	return &PolarSet{AirfoilName: airfoilName, AirfoilPath: airfoilPath, RescaleChord: 1}
}

// UseIndex attaches a polar header/point cache opened by the caller
// (typically via Cfg.Cache.Path). LoadOrGeneratePolars consults it before
// touching any on-disk .polar file.
func (ps *PolarSet) UseIndex(idx *PolarIndex) { ps.Index = idx }

// AddDefinition appends a new Polar built from def, applying the current
// rescale factor and skipping the add if an equal polar already exists.
func (ps *PolarSet) AddDefinition(def *PolarDefinition) *Polar {
	if ps.RescaleChord != 0 && ps.RescaleChord != 1 {
		def.Re = RoundTo(def.Re*ps.RescaleChord, 5000)
		def.Mach = RoundDP(def.Mach*ps.RescaleChord, 2)
	}
	p := NewPolar(ps.AirfoilName, def)
	for _, existing := range ps.Polars {
		if existing.IsEqualTo(p) {
			return existing
		}
	}
	ps.Polars = append(ps.Polars, p)
	return p
}

// IsEqualTo reports whether two sets have the same rescale factor and
// every polar equal by definition (active flag ignored).
func (ps *PolarSet) IsEqualTo(other *PolarSet) bool {
	if !IsClose(ps.RescaleChord, other.RescaleChord, 1e-9) {
		return false
	}
	if len(ps.Polars) != len(other.Polars) {
		return false
	}
	for i, p := range ps.Polars {
		if !p.IsEqualTo(other.Polars[i]) {
			return false
		}
	}
	return true
}

// CanonicalPath returns the expected on-disk path of a polar file for
// this airfoil.
func (ps *PolarSet) CanonicalPath(def *PolarDefinition) string {
	return canonicalPolarPath(ps.AirfoilPath, def)
}

// canonicalPolarPath builds the deterministic <stem>_<canonicalName>.polar
// path for an airfoil file and a polar definition. Shared by PolarSet
// (for the UI domain) and PolarTask (for the Watchdog), since a task
// only ever knows the airfoil path it was launched against.
func canonicalPolarPath(airfoilPath string, def *PolarDefinition) string {
	dir := filepath.Dir(airfoilPath)
	stem := stemName(filepath.Base(airfoilPath), filepath.Ext(airfoilPath))
	return filepath.Join(dir, fmt.Sprintf("%s_%s.polar", stem, def.CanonicalName()))
}

// LoadOrGeneratePolars attempts to load each not-yet-loaded polar from
// its canonical file; any that remain missing are bundled into PolarTasks
// (one per compatibility group) via the given registry, and each task is
// started.
func (ps *PolarSet) LoadOrGeneratePolars(reg *PolarTaskRegistry, workingDir string) error {
	var pending []*Polar
	for _, p := range ps.Polars {
		if p.IsLoaded {
			continue
		}
		path := ps.CanonicalPath(p.Def)
		info, err := os.Stat(path)
		if err != nil {
			pending = append(pending, p)
			continue
		}
		mtime := info.ModTime().Unix()
		if ps.loadFromIndex(path, mtime, p) {
			continue
		}
		if lerr := LoadPolarFile(path, p); lerr != nil {
			p.MarkError(lerr.Error())
			ps.putIndex(path, mtime, p)
			continue
		}
		ps.putIndex(path, mtime, p)
	}

	for _, p := range pending {
		if p.IsLoaded {
			continue
		}
		task := reg.findCompatible(ps.AirfoilPath, p.Def)
		if task == nil {
			task = NewPolarTask(ps.AirfoilPath, workingDir, p)
			reg.Register(task)
		} else {
			task.AddPolar(p)
		}
	}
	for _, task := range reg.tasksFor(ps.AirfoilPath) {
		if !task.started {
			if err := task.Run(); err != nil {
				return err
			}
		}
	}
	return nil
}

// loadFromIndex satisfies p from the header/point cache when a fresh
// entry exists, skipping LoadPolarFile entirely. It reports whether the
// polar was resolved (loaded or marked as a known-invalid file).
func (ps *PolarSet) loadFromIndex(path string, mtime int64, p *Polar) bool {
	if ps.Index == nil {
		return false
	}
	entry, ok, err := ps.Index.Get(path)
	if err != nil || !ok || !entry.Fresh(mtime) {
		return false
	}
	if !entry.Valid {
		p.MarkError("cached as invalid as of last parse, not re-reading")
		return true
	}
	p.Points = entry.Points
	p.IsLoaded = true
	return true
}

// putIndex records the outcome of a LoadPolarFile attempt so the next
// LoadOrGeneratePolars call can skip it while the file's mtime is unchanged.
func (ps *PolarSet) putIndex(path string, mtime int64, p *Polar) {
	if ps.Index == nil {
		return
	}
	ps.Index.Put(&PolarIndexEntry{
		FileName: path,
		MTime:    mtime,
		Re:       p.Def.Re,
		Mach:     p.Def.Mach,
		Ncrit:    p.Def.Ncrit,
		NPoints:  len(p.Points),
		Valid:    p.IsLoaded,
		Points:   p.Points,
	})
}
