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
	"strings"
)

// timespan units in ascending order
var timespans = []struct {
	num  int64
	symb rune
}{{60, 's'}, {60, 'm'}, {24, 'h'}, {365, 'd'}, {-1, 'y'}}

// FormatDuration for a number of seconds, e.g. "1h 4m 12s"
func FormatDuration(v int64) string {
	if v == 0 {
		return "0s"
	}
	out := ""
	var r int64
	for idx := 0; v != 0; idx++ {
		d := timespans[idx].num
		if d < 0 {
			r, v = v, 0
		} else {
			r = v % d
			v /= d
		}
		out = fmt.Sprintf("%d%c ", r, timespans[idx].symb) + out
	}
	return strings.TrimRight(out, " ")
}

// stemName strips a known file extension, returning the bare stem.
func stemName(name, ext string) string {
	return strings.TrimSuffix(name, ext)
}
