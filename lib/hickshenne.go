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

// HicksHenne is a single localized bump function added to a seed curve:
// strength * sin(pi * x^e)^width with e = ln(0.5)/ln(location).
type HicksHenne struct {
	Strength float64
	Location float64
	Width    float64
}

// Eval returns the bump's contribution at x in [0,1].
func (h HicksHenne) Eval(x float64) float64 {
	if x <= 0 || x >= 1 || h.Location <= 0 || h.Location >= 1 {
		return 0
	}
	e := math.Log(0.5) / math.Log(h.Location)
	base := math.Sin(math.Pi * math.Pow(x, e))
	if base <= 0 {
		return 0
	}
	return h.Strength * math.Pow(base, h.Width)
}

// HicksHenneSide is a seed 1-D sequence plus a list of additive bumps.
// The seed's x grid is master: y(x) = y_seed(x) + sum(bump_i(x)).
type HicksHenneSide struct {
	Upper     bool
	SeedX     []float64
	SeedY     []float64
	Bumps     []HicksHenne
}

// NewHicksHenneSide wraps a seed curve with no bumps yet.
func NewHicksHenneSide(upper bool, seedX, seedY []float64) *HicksHenneSide {
	return &HicksHenneSide{Upper: upper, SeedX: append([]float64{}, seedX...), SeedY: append([]float64{}, seedY...)}
}

// AddBump appends a bump to the side.
func (s *HicksHenneSide) AddBump(b HicksHenne) {
	s.Bumps = append(s.Bumps, b)
}

// Eval evaluates the side's y at every seed x, including bump contributions.
func (s *HicksHenneSide) Eval() []float64 {
	y := make([]float64, len(s.SeedX))
	copy(y, s.SeedY)
	for i, x := range s.SeedX {
		for _, b := range s.Bumps {
			y[i] += b.Eval(x)
		}
	}
	return y
}
