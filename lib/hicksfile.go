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

// LoadHicksFile parses a .hicks file: name, Top/Bottom blocks of
// "strength location width" triples, then a "Seedfoil Start" block
// holding a full inline .dat block (seed name + x/y pairs).
func LoadHicksFile(path string) (*Geometry, string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, "", WrapGeometryError(ErrIOFileNotFound, "opening .hicks file", err)
	}
	defer f.Close()

	sc := bufio.NewScanner(f)
	if !sc.Scan() {
		return nil, "", NewGeometryError(ErrInputParseError, ".hicks file is empty")
	}
	name := strings.TrimSpace(sc.Text())

	upperBumps, err := readHicksBlock(sc, "top")
	if err != nil {
		return nil, "", err
	}
	lowerBumps, err := readHicksBlock(sc, "bottom")
	if err != nil {
		return nil, "", err
	}

	seedX, seedY, seedName, err := readSeedBlock(sc)
	if err != nil {
		return nil, "", err
	}

	iLe := argminX(seedX)
	seedUX := make([]float64, iLe+1)
	seedUY := make([]float64, iLe+1)
	for i := 0; i <= iLe; i++ {
		seedUX[i] = seedX[iLe-i]
		seedUY[i] = seedY[iLe-i]
	}
	seedLX := append([]float64{}, seedX[iLe:]...)
	seedLY := append([]float64{}, seedY[iLe:]...)

	upperSide := NewHicksHenneSide(true, seedUX, seedUY)
	for _, b := range upperBumps {
		upperSide.AddBump(b)
	}
	lowerSide := NewHicksHenneSide(false, seedLX, seedLY)
	for _, b := range lowerBumps {
		lowerSide.AddBump(b)
	}

	uy := upperSide.Eval()
	ly := lowerSide.Eval()

	geo := &Geometry{mods: make(map[ModKind]string)}
	hs := newHicksHenneStrategy(geo)
	hs.SetSides(upperSide, lowerSide)
	geo.strategy = hs
	geo.rebuildFromSides(seedUX, uy, seedLX, ly)

	_ = seedName
	return geo, name, nil
}

func readHicksBlock(sc *bufio.Scanner, side string) ([]HicksHenne, error) {
	var bumps []HicksHenne
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
				return nil, NewGeometryError(ErrInputParseError, fmt.Sprintf("%s End without matching Start", side))
			}
			return bumps, nil
		}
		if !foundStart {
			continue
		}
		fields := strings.Fields(line)
		if len(fields) < 3 {
			return nil, NewGeometryError(ErrInputParseError, fmt.Sprintf("malformed hicks-henne line %q", line))
		}
		strength, e1 := strconv.ParseFloat(fields[0], 64)
		location, e2 := strconv.ParseFloat(fields[1], 64)
		width, e3 := strconv.ParseFloat(fields[2], 64)
		if e1 != nil || e2 != nil || e3 != nil {
			return nil, NewGeometryError(ErrInputParseError, fmt.Sprintf("malformed hicks-henne line %q", line))
		}
		bumps = append(bumps, HicksHenne{Strength: strength, Location: location, Width: width})
	}
	return nil, NewGeometryError(ErrInputParseError, fmt.Sprintf("missing %s Start/End markers", side))
}

func readSeedBlock(sc *bufio.Scanner) (x, y []float64, name string, err error) {
	foundStart := false
	for sc.Scan() {
		line := strings.TrimSpace(sc.Text())
		if line == "" {
			continue
		}
		if strings.EqualFold(line, "Seedfoil Start") {
			foundStart = true
			continue
		}
		if !foundStart {
			continue
		}
		if name == "" {
			name = line
			continue
		}
		fields := strings.Fields(line)
		if len(fields) < 2 {
			continue
		}
		xv, e1 := strconv.ParseFloat(fields[0], 64)
		yv, e2 := strconv.ParseFloat(fields[1], 64)
		if e1 != nil || e2 != nil {
			return nil, nil, "", NewGeometryError(ErrInputParseError, fmt.Sprintf("malformed seed coordinate line %q", line))
		}
		x = append(x, xv)
		y = append(y, yv)
	}
	if !foundStart || len(x) < 2 {
		return nil, nil, "", NewGeometryError(ErrInputParseError, "missing or incomplete Seedfoil block")
	}
	return x, y, name, nil
}

// SaveHicksFile writes bumps for both sides plus the inline seed .dat block.
func SaveHicksFile(path, name string, upper, lower *HicksHenneSide) error {
	f, err := os.Create(path)
	if err != nil {
		return WrapGeometryError(ErrIOPermission, "creating .hicks file", err)
	}
	defer f.Close()
	w := bufio.NewWriter(f)
	fmt.Fprintln(w, strings.TrimSpace(name))
	writeHicksBlock(w, "Top", upper.Bumps)
	writeHicksBlock(w, "Bottom", lower.Bumps)
	fmt.Fprintln(w, "Seedfoil Start")
	fmt.Fprintln(w, name+"_seed")
	n := len(upper.SeedX)
	for i := n - 1; i >= 0; i-- {
		fmt.Fprintf(w, " %.7f %.7f\n", upper.SeedX[i], upper.SeedY[i])
	}
	for i := 1; i < len(lower.SeedX); i++ {
		fmt.Fprintf(w, " %.7f %.7f\n", lower.SeedX[i], lower.SeedY[i])
	}
	return w.Flush()
}

func writeHicksBlock(w *bufio.Writer, side string, bumps []HicksHenne) {
	fmt.Fprintf(w, "%s Start\n", side)
	for _, b := range bumps {
		fmt.Fprintf(w, "%.7f %.7f %.7f\n", b.Strength, b.Location, b.Width)
	}
	fmt.Fprintf(w, "%s End\n", side)
}
