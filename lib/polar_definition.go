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

import "fmt"

// PolarType selects the Xfoil run mode: fixed Re (T1) or Re scaled with
// lift coefficient for constant-load comparisons (T2).
type PolarType int

const (
	T1 PolarType = iota
	T2
)

func (t PolarType) String() string {
	if t == T2 {
		return "T2"
	}
	return "T1"
}

// SpecVar names the swept independent variable of a polar (alpha or cl).
type SpecVar int

const (
	SpecAlpha SpecVar = iota
	SpecCl
)

func (v SpecVar) String() string {
	if v == SpecCl {
		return "cl"
	}
	return "alpha"
}

// FlapHinge describes an optional flap deflection recipe.
type FlapHinge struct {
	Active    bool
	XFlap     float64
	YFlap     float64
	YFlapSpec string // "y/c" or "y/t", matching the worker's flag
}

// PolarDefinition is the recipe that produces one Polar: everything the
// worker needs to know, plus the compatibility keys used for PolarTask
// grouping (see PolarDefinition.CompatKey).
type PolarDefinition struct {
	Type      PolarType
	Re        float64
	Mach      float64
	Ncrit     float64
	XtripTop  float64
	XtripBot  float64
	Flap      FlapHinge
	FlapAngle float64

	SpecVar   SpecVar
	ValMin    float64
	ValMax    float64
	ValStep   float64
	AutoRange bool
}

// NewPolarDefinition builds a definition with the package defaults applied
// for ncrit/xtrip/range when the caller leaves them at zero value.
func NewPolarDefinition(re, mach float64, t PolarType) *PolarDefinition {
	d := &PolarDefinition{
		Type: t, Re: re, Mach: mach,
		Ncrit: Cfg.Polar.Ncrit, XtripTop: Cfg.Polar.XtripTop, XtripBot: Cfg.Polar.XtripBot,
		SpecVar: SpecAlpha, AutoRange: Cfg.Polar.AutoRange,
		ValMin: Cfg.Polar.ValMin, ValMax: Cfg.Polar.ValMax, ValStep: Cfg.Polar.ValStep,
	}
	return d
}

// CompatKey is the tuple PolarTask grouping is keyed on: polar type,
// ncrit, xtrip top/bot, spec variable, value range, autoRange, flap hinge.
type CompatKey struct {
	Type               PolarType
	Ncrit              float64
	XtripTop, XtripBot float64
	SpecVar            SpecVar
	ValMin, ValMax, ValStep float64
	AutoRange          bool
	FlapActive         bool
	XFlap, YFlap       float64
	YFlapSpec          string
}

// Compat returns the grouping key for this definition.
func (d *PolarDefinition) Compat() CompatKey {
	return CompatKey{
		Type: d.Type, Ncrit: d.Ncrit, XtripTop: d.XtripTop, XtripBot: d.XtripBot,
		SpecVar: d.SpecVar, ValMin: d.ValMin, ValMax: d.ValMax, ValStep: d.ValStep,
		AutoRange: d.AutoRange,
		FlapActive: d.Flap.Active, XFlap: d.Flap.XFlap, YFlap: d.Flap.YFlap, YFlapSpec: d.Flap.YFlapSpec,
	}
}

// IsCompatible reports whether two definitions share every compatibility
// key and thus may be bundled into the same PolarTask.
func (d *PolarDefinition) IsCompatible(o *PolarDefinition) bool {
	return d.Compat() == o.Compat()
}

// CanonicalName is the filename stem the worker derives for this recipe
// (see FlappedSuffix for the flap part).
func (d *PolarDefinition) CanonicalName() string {
	base := fmt.Sprintf("%s_Re%.0f_M%.2f_N%.1f", d.Type, d.Re, d.Mach, d.Ncrit)
	if d.Flap.Active {
		base += FlappedSuffix(d.FlapAngle, d.Flap.XFlap, d.Flap.YFlap, d.Flap.YFlapSpec)
	}
	return base
}
