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
	"os"
	"strconv"
	"strings"
)

// LoadBezFile parses a .bez control-point file: name, then "Top
// Start"/"Top End" and "Bottom Start"/"Bottom End" blocks of "px py" pairs.
func LoadBezFile(path string) (*Geometry, string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, "", WrapGeometryError(ErrIOFileNotFound, "opening .bez file", err)
	}
	defer f.Close()

	sc := bufio.NewScanner(f)
	if !sc.Scan() {
		return nil, "", NewGeometryError(ErrInputParseError, ".bez file is empty")
	}
	name := strings.TrimSpace(sc.Text())

	upperPx, upperPy, err := readBezBlock(sc, "top")
	if err != nil {
		return nil, "", err
	}
	lowerPx, lowerPy, err := readBezBlock(sc, "bottom")
	if err != nil {
		return nil, "", err
	}

	upper, err := NewBezierSide(true, upperPx, upperPy)
	if err != nil {
		return nil, "", err
	}
	lower, err := NewBezierSide(false, lowerPx, lowerPy)
	if err != nil {
		return nil, "", err
	}

	n := 100
	ux, uy := upper.Sample(n)
	lx, ly := lower.Sample(n)

	geo := &Geometry{mods: make(map[ModKind]string)}
	bs := newBezierStrategy(geo)
	bs.SetSides(upper, lower)
	geo.strategy = bs
	geo.rebuildFromSides(ux, uy, lx, ly)
	geo.normalized = true

	return geo, name, nil
}

func readBezBlock(sc *bufio.Scanner, side string) (px, py []float64, err error) {
	foundStart := false
	for sc.Scan() {
		line := strings.TrimSpace(sc.Text())
		if line == "" {
			continue
		}
		lower := strings.ToLower(line)
		if strings.HasPrefix(lower, side+" start") {
			foundStart = true
			continue
		}
		if strings.HasPrefix(lower, side+" end") {
			if !foundStart {
				return nil, nil, NewGeometryError(ErrInputParseError, fmt.Sprintf("%s End without matching Start", side))
			}
			return px, py, nil
		}
		if !foundStart {
			continue
		}
		fields := strings.Fields(line)
		if len(fields) < 2 {
			return nil, nil, NewGeometryError(ErrInputParseError, fmt.Sprintf("malformed control point line %q", line))
		}
		x, e1 := strconv.ParseFloat(fields[0], 64)
		y, e2 := strconv.ParseFloat(fields[1], 64)
		if e1 != nil || e2 != nil {
			return nil, nil, NewGeometryError(ErrInputParseError, fmt.Sprintf("malformed control point line %q", line))
		}
		px = append(px, x)
		py = append(py, y)
	}
	return nil, nil, NewGeometryError(ErrInputParseError, fmt.Sprintf("missing %s Start/End markers", side))
}

// SaveBezFile writes the control points at 13.10f precision.
func SaveBezFile(path, name string, upper, lower *BezierSide) error {
	f, err := os.Create(path)
	if err != nil {
		return WrapGeometryError(ErrIOPermission, "creating .bez file", err)
	}
	defer f.Close()
	w := bufio.NewWriter(f)
	fmt.Fprintln(w, strings.TrimSpace(name))
	writeBezBlock(w, "Top", upper)
	writeBezBlock(w, "Bottom", lower)
	return w.Flush()
}

func writeBezBlock(w *bufio.Writer, side string, s *BezierSide) {
	fmt.Fprintf(w, "%s Start\n", side)
	px, py := s.ControlPoints()
	for i := range px {
		fmt.Fprintf(w, "%13.10f %13.10f\n", px[i], py[i])
	}
	fmt.Fprintf(w, "%s End\n", side)
}
