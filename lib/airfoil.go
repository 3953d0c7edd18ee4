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
	"path/filepath"
	"strings"
)

// Role classifies what an Airfoil is used for within a case.
type Role int

const (
	RoleNormal Role = iota
	RoleDesign
	RoleSeed
	RoleSeedDesign
	RoleReference
	RoleTarget
	RoleSecond
	RoleFinal
)

func (r Role) String() string {
	switch r {
	case RoleDesign:
		return "Design"
	case RoleSeed:
		return "Seed"
	case RoleSeedDesign:
		return "SeedDesign"
	case RoleReference:
		return "Reference"
	case RoleTarget:
		return "Target"
	case RoleSecond:
		return "Second"
	case RoleFinal:
		return "Final"
	default:
		return "Normal"
	}
}

// Airfoil is a file identity plus the geometry it owns. Loading is lazy:
// a path-constructed Airfoil defers parsing until Load is called.
type Airfoil struct {
	Name         string
	FileName     string
	PathFileName string
	WorkingDir   string
	UsedAs       Role

	Geo      *Geometry
	PolarSet *PolarSet

	IsModified     bool
	IsEdited       bool
	IsBlendAirfoil bool

	loaded bool
}

// NewAirfoilFromPath constructs an Airfoil identity from a file path
// without loading it yet.
func NewAirfoilFromPath(path string) *Airfoil {
	a := &Airfoil{
		PathFileName: path,
		FileName:     filepath.Base(path),
		WorkingDir:   filepath.Dir(path),
	}
	a.Name = stemName(a.FileName, filepath.Ext(a.FileName))
	return a
}

// NewAirfoilFromPoints constructs an already-loaded Airfoil from explicit
// coordinates.
func NewAirfoilFromPoints(name string, x, y []float64, kind StrategyKind) (*Airfoil, error) {
	geo, err := NewGeometry(kind, x, y)
	if err != nil {
		return nil, err
	}
	a := &Airfoil{Name: name, Geo: geo, loaded: true}
	geo.AirfoilID = name
	return a, nil
}

// Load parses the airfoil's file, dispatching by extension.
func (a *Airfoil) Load() error {
	if a.loaded {
		return nil
	}
	if a.PathFileName == "" {
		return NewGeometryError(ErrIOFileNotFound, "airfoil has no backing file")
	}
	ext := strings.ToLower(filepath.Ext(a.PathFileName))
	var (
		geo *Geometry
		err error
	)
	switch ext {
	case ".dat":
		geo, a.Name, err = LoadDatFile(a.PathFileName)
	case ".bez":
		geo, a.Name, err = LoadBezFile(a.PathFileName)
	case ".hicks":
		geo, a.Name, err = LoadHicksFile(a.PathFileName)
	default:
		return NewGeometryError(ErrInvalidCoordinates, fmt.Sprintf("unsupported airfoil extension %q", ext))
	}
	if err != nil {
		return err
	}
	geo.AirfoilID = a.Name
	a.Geo = geo
	a.loaded = true
	return nil
}

// Save writes the airfoil back to its current PathFileName (or the given
// one if non-empty), dispatching by extension.
func (a *Airfoil) Save(path string) error {
	if path == "" {
		path = a.PathFileName
	}
	ext := strings.ToLower(filepath.Ext(path))
	switch ext {
	case ".dat":
		return SaveDatFile(path, a.Name, a.Geo.X(), a.Geo.Y())
	case ".bez":
		bs, ok := a.Geo.strategy.(*bezierStrategy)
		if !ok {
			return NewGeometryError(ErrInvalidCoordinates, "airfoil geometry is not Bezier-backed")
		}
		return SaveBezFile(path, a.Name, bs.Upper, bs.Lower)
	case ".hicks":
		hs, ok := a.Geo.strategy.(*hicksHenneStrategy)
		if !ok {
			return NewGeometryError(ErrInvalidCoordinates, "airfoil geometry is not HicksHenne-backed")
		}
		return SaveHicksFile(path, a.Name, hs.Upper, hs.Lower)
	default:
		return NewGeometryError(ErrInvalidCoordinates, fmt.Sprintf("unsupported airfoil extension %q", ext))
	}
}

// AsCopy clones this Airfoil's geometry into a new one with a new name
// and role; the copy's modification history starts empty.
func (a *Airfoil) AsCopy(name string, role Role) (*Airfoil, error) {
	if err := a.Load(); err != nil {
		return nil, err
	}
	geo, err := NewGeometry(a.Geo.Kind(), a.Geo.X(), a.Geo.Y())
	if err != nil {
		return nil, err
	}
	geo.AirfoilID = name
	geo.normalized = a.Geo.normalized
	return &Airfoil{Name: name, UsedAs: role, Geo: geo, loaded: true}, nil
}

// Stem returns the bare file stem (no extension).
func (a *Airfoil) Stem() string {
	return stemName(a.FileName, filepath.Ext(a.FileName))
}

// BezierSides exposes the underlying control-point sides of a
// Bezier-backed airfoil, for callers (plotting, SVG export) outside the
// package that cannot reach the unexported strategy field directly.
func (a *Airfoil) BezierSides() (upper, lower *BezierSide, ok bool) {
	bs, isBezier := a.Geo.strategy.(*bezierStrategy)
	if !isBezier {
		return nil, nil, false
	}
	return bs.Upper, bs.Lower, true
}
