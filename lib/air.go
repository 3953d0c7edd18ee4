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

import "math"

// ReynoldsNumber computes Re = v*c*rho/eta for velocity v (m/s) and
// chord c (m), rounded to the nearest 1000 (the conventional Xfoil-case
// rounding).
func ReynoldsNumber(v, c float64) float64 {
	re := v * c * RhoSeaLevel / EtaSeaLevel
	return RoundTo(re, 1000)
}

// ReynoldsTimesSqrtCl computes the Re*sqrt(Cl) similarity number used to
// size a polar sweep for a given wing loading: Re*sqrt(Cl) =
// c*sqrt(rho)/eta * sqrt(2*g*load), load in kg/m^2.
func ReynoldsTimesSqrtCl(c, load float64) float64 {
	v := c * math.Sqrt(RhoSeaLevel) / EtaSeaLevel
	return RoundTo(v*math.Sqrt(2*GAccel*load), 1000)
}

// VelocityFromRe inverts ReynoldsNumber for a given chord, rounded to
// one decimal place.
func VelocityFromRe(re, c float64) float64 {
	v := re * EtaSeaLevel / (c * RhoSeaLevel)
	return RoundDP(v, 1)
}

// ClFromReSqrtCl recovers Cl from a Re*sqrt(Cl) similarity value and the
// actual flight Reynolds number: Cl = (ReSqrtCl / Re)^2.
func ClFromReSqrtCl(reSqrtCl, re float64) float64 {
	ratio := reSqrtCl / re
	return ratio * ratio
}
