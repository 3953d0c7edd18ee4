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
	"math"
	"os"
	"strconv"
	"strings"
)

// LoadPolarFile parses an Xfoil-format .polar text file into the given
// Polar's point list, checking that the recorded Re/Ncrit match the
// definition.
func LoadPolarFile(path string, p *Polar) error {
	f, err := os.Open(path)
	if err != nil {
		return WrapGeometryError(ErrIOFileNotFound, "opening .polar file", err)
	}
	defer f.Close()

	sc := bufio.NewScanner(f)
	sawHeader := false
	inData := false
	var pts []OperatingPoint

	for sc.Scan() {
		line := sc.Text()
		trimmed := strings.TrimSpace(line)

		if strings.Contains(trimmed, "Calculated polar for:") {
			continue
		}
		if strings.Contains(trimmed, "Re =") && strings.Contains(trimmed, "Ncrit =") {
			re, ncrit, perr := parseReNcrit(trimmed)
			if perr != nil {
				return perr
			}
			if !IsClose(re, p.Def.Re, math.Max(1, p.Def.Re*0.01)) {
				return NewPolarError(ErrPolarLoadFailed, fmt.Sprintf("Re mismatch: file has %.0f, expected %.0f", re, p.Def.Re))
			}
			if !IsClose(ncrit, p.Def.Ncrit, 0.05) {
				return NewPolarError(ErrPolarLoadFailed, fmt.Sprintf("Ncrit mismatch: file has %.2f, expected %.2f", ncrit, p.Def.Ncrit))
			}
			sawHeader = true
			continue
		}
		if strings.HasPrefix(trimmed, "---") {
			if !sawHeader {
				return NewPolarError(ErrPolarLoadFailed, "data delimiter found before Re/Ncrit header")
			}
			inData = true
			continue
		}
		if !inData || trimmed == "" {
			continue
		}
		fields := strings.Fields(trimmed)
		if len(fields) != 7 && len(fields) != 11 {
			continue
		}
		vals := make([]float64, len(fields))
		for i, f := range fields {
			v, perr := strconv.ParseFloat(f, 64)
			if perr != nil {
				return NewPolarError(ErrPolarLoadFailed, fmt.Sprintf("malformed data row %q", trimmed))
			}
			vals[i] = v
		}
		op := OperatingPoint{
			Alpha: vals[0], Cl: vals[1], Cd: vals[2], Cdp: vals[3], Cm: vals[4],
			Xtrt: vals[5], Xtrb: vals[6],
		}
		if len(vals) == 11 {
			op.BubbleTopX0, op.BubbleTopX1 = vals[7], vals[8]
			op.BubbleBotX0, op.BubbleBotX1 = vals[9], vals[10]
			op.HasBubble = op.BubbleTopX0 != 0 && op.BubbleTopX1 != 0 && op.BubbleBotX0 != 0 && op.BubbleBotX1 != 0
		}
		pts = append(pts, op)
	}
	if err := sc.Err(); err != nil {
		return WrapGeometryError(ErrPolarLoadFailed, "scanning .polar file", err)
	}
	if !inData {
		return NewPolarError(ErrPolarLoadFailed, "no data delimiter found in .polar file")
	}
	p.Points = pts
	p.IsLoaded = true
	return nil
}

func parseReNcrit(line string) (re, ncrit float64, err error) {
	reIdx := strings.Index(line, "Re =")
	ncritIdx := strings.Index(line, "Ncrit =")
	if reIdx == -1 || ncritIdx == -1 {
		return 0, 0, NewPolarError(ErrPolarLoadFailed, "missing Re/Ncrit tokens")
	}
	reStr := strings.Fields(line[reIdx+4:])
	if len(reStr) == 0 {
		return 0, 0, NewPolarError(ErrPolarLoadFailed, "missing Re value")
	}
	re, err = strconv.ParseFloat(reStr[0], 64)
	if err != nil {
		return 0, 0, NewPolarError(ErrPolarLoadFailed, fmt.Sprintf("malformed Re value %q", reStr[0]))
	}
	ncritStr := strings.Fields(line[ncritIdx+7:])
	if len(ncritStr) == 0 {
		return 0, 0, NewPolarError(ErrPolarLoadFailed, "missing Ncrit value")
	}
	ncrit, err = strconv.ParseFloat(ncritStr[0], 64)
	if err != nil {
		return 0, 0, NewPolarError(ErrPolarLoadFailed, fmt.Sprintf("malformed Ncrit value %q", ncritStr[0]))
	}
	return re, ncrit, nil
}

// SavePolarFile writes p in the same format LoadPolarFile reads, used by
// tests to exercise the round-trip invariant.
func SavePolarFile(path string, p *Polar) error {
	f, err := os.Create(path)
	if err != nil {
		return WrapGeometryError(ErrIOPermission, "creating .polar file", err)
	}
	defer f.Close()
	w := bufio.NewWriter(f)
	fmt.Fprintf(w, "Calculated polar for: %s\n\n", p.airfoilName)
	fmt.Fprintf(w, " %s   Re = %.3e     Ncrit = %.3f\n\n", p.Def.Type, p.Def.Re, p.Def.Ncrit)
	fmt.Fprintln(w, "  alpha     CL        CD       CDp       CM      Top_Xtr  Bot_Xtr")
	fmt.Fprintln(w, "  ------- -------- --------- --------- -------- -------- --------")
	for _, op := range p.Points {
		fmt.Fprintf(w, " %7.3f  %8.4f %9.5f %9.5f %8.4f  %7.4f  %7.4f\n",
			op.Alpha, op.Cl, op.Cd, op.Cdp, op.Cm, op.Xtrt, op.Xtrb)
	}
	return w.Flush()
}
