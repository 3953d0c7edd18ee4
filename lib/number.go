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
	"errors"
	"math"
	"strconv"
	"strings"
)

// magnitude suffixes used in Reynolds/Mach/frequency specs (e.g. "300k", "1.2M")
const mags = "fpnum kMGTP" // magnitudes from -15 to 15, the blank at index 5 is 10^0

// ParseNumber parses a float with an optional magnitude suffix ('k','M',...).
func ParseNumber(s string) (float64, error) {
	rs := []rune(strings.TrimSpace(s))
	lr := len(rs)
	if lr == 0 {
		return 0, errors.New("empty number string")
	}
	f := 1.
	if i := strings.IndexRune(mags, rs[lr-1]); i != -1 && i != 4 {
		f = math.Pow10(-15 + 3*i)
		rs = rs[:lr-1]
	}
	v, err := strconv.ParseFloat(strings.TrimSpace(string(rs)), 64)
	if err != nil {
		return 0, err
	}
	return f * v, nil
}

// RoundTo rounds v to the nearest multiple of step
func RoundTo(v, step float64) float64 {
	if step <= 0 {
		return v
	}
	return math.Round(v/step) * step
}

// RoundDP rounds v to n decimal places
func RoundDP(v float64, n int) float64 {
	p := math.Pow10(n)
	return math.Round(v*p) / p
}
