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

// Global tolerances and constants
const (
	eps     = 1e-9 // lower bound for non-zero
	RectAng = math.Pi / 2
	CircAng = 2 * math.Pi
)

// IsNull returns true if value is zero within tolerance
func IsNull(f float64) bool {
	return math.Abs(f) < eps
}

// IsClose returns true if a and b are equal within tolerance tol
func IsClose(a, b, tol float64) bool {
	return math.Abs(a-b) <= tol
}

// InRange returns true if v is in [from,to] (with tolerance)
func InRange(v, from, to float64) bool {
	return v-from > -eps && to-v > -eps
}

// Sqr returns the square of a value
func Sqr(v float64) float64 {
	return v * v
}

// Clamp restricts v to [lo,hi]
func Clamp(v, lo, hi float64) float64 {
	return math.Max(lo, math.Min(hi, v))
}

// Sign returns the signum of v (0 counts as +1, used for "upper side" defaults)
func Sign(v float64) float64 {
	if v < 0 {
		return -1
	}
	return 1
}

// Lerp linearly interpolates between a and b at fraction t
func Lerp(a, b, t float64) float64 {
	return a + t*(b-a)
}

// Linspace returns n values evenly spaced over [a,b]
func Linspace(a, b float64, n int) []float64 {
	out := make([]float64, n)
	if n == 1 {
		out[0] = a
		return out
	}
	step := (b - a) / float64(n-1)
	for i := range out {
		out[i] = a + float64(i)*step
	}
	return out
}
