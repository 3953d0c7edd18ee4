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
	"bufio"
	"fmt"
	"log"
	"os"
	"strconv"
	"strings"
)

// shoelaceArea returns twice the signed area of the point polygon; positive
// for counter-clockwise orientation.
func shoelaceArea(x, y []float64) float64 {
	n := len(x)
	sum := 0.0
	for i := 0; i < n; i++ {
		j := (i + 1) % n
		sum += x[i]*y[j] - x[j]*y[i]
	}
	return sum
}

func reverseInPlace(x, y []float64) {
	n := len(x)
	for i, j := 0, n-1; i < j; i, j = i+1, j-1 {
		x[i], x[j] = x[j], x[i]
		y[i], y[j] = y[j], y[i]
	}
}

// LoadDatFile parses a Selig-format .dat airfoil: line 1 is the name,
// subsequent lines are whitespace-separated "x y" pairs. Duplicate
// consecutive points are skipped with a warning. Orientation is forced
// counter-clockwise via the shoelace test.
func LoadDatFile(path string) (*Geometry, string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, "", WrapGeometryError(ErrIOFileNotFound, "opening .dat file", err)
	}
	defer f.Close()

	sc := bufio.NewScanner(f)
	if !sc.Scan() {
		return nil, "", NewGeometryError(ErrInputParseError, ".dat file is empty")
	}
	name := strings.TrimSpace(sc.Text())

	var x, y []float64
	for sc.Scan() {
		line := strings.TrimSpace(sc.Text())
		if line == "" {
			continue
		}
		fields := strings.Fields(line)
		if len(fields) < 2 {
			continue
		}
		xv, err1 := strconv.ParseFloat(fields[0], 64)
		yv, err2 := strconv.ParseFloat(fields[1], 64)
		if err1 != nil || err2 != nil {
			return nil, "", NewGeometryError(ErrInputParseError, fmt.Sprintf("malformed coordinate line %q", line))
		}
		if n := len(x); n > 0 && IsClose(x[n-1], xv, 1e-12) && IsClose(y[n-1], yv, 1e-12) {
			log.Printf("dat: skipping duplicate point (%.6f, %.6f)", xv, yv)
			continue
		}
		x = append(x, xv)
		y = append(y, yv)
	}
	if err := sc.Err(); err != nil {
		return nil, "", WrapGeometryError(ErrInputParseError, "scanning .dat file", err)
	}
	if len(x) < 2 {
		return nil, "", NewGeometryError(ErrInvalidCoordinates, ".dat file has too few points")
	}

	if shoelaceArea(x, y) < 0 {
		reverseInPlace(x, y)
	}

	geo, err := NewGeometry(StrategyBasic, x, y)
	if err != nil {
		return nil, "", err
	}
	return geo, name, nil
}

// SaveDatFile writes the Selig-format .dat file with %.7f coordinates.
func SaveDatFile(path, name string, x, y []float64) error {
	f, err := os.Create(path)
	if err != nil {
		return WrapGeometryError(ErrIOPermission, "creating .dat file", err)
	}
	defer f.Close()

	w := bufio.NewWriter(f)
	fmt.Fprintln(w, strings.TrimSpace(name))
	for i := range x {
		fmt.Fprintf(w, "%.7f %.7f\n", x[i], y[i])
	}
	return w.Flush()
}
