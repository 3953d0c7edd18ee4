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
	"os/exec"
	"strconv"
	"strings"
)

// namelistGroupOrder is the canonical group ordering for Xoptfoil2 input
// files; unrecognized groups are appended after these in file order.
var namelistGroupOrder = []string{
	"optimization_options", "operating_conditions", "geometry_targets",
	"curvature", "constraints", "paneling_options", "particle_swarm_options",
	"xfoil_run_options", "hicks_henne_options", "bezier_options",
	"camb_thick_options", "info",
}

// NamelistGroup is one Fortran namelist group (&name ... /).
type NamelistGroup struct {
	Name  string
	keys  []string // preserves insertion/file order
	Value map[string]string
}

func newNamelistGroup(name string) *NamelistGroup {
	return &NamelistGroup{Name: name, Value: make(map[string]string)}
}

// Set stores a string value for a key, wrapped in single quotes as a
// Fortran character literal.
func (g *NamelistGroup) Set(key, value string) {
	if _, exists := g.Value[key]; !exists {
		g.keys = append(g.keys, key)
	}
	g.Value[key] = fmt.Sprintf("'%s'", value)
}

// SetFloat stores a scalar float value.
func (g *NamelistGroup) SetFloat(key string, v float64) {
	g.setRaw(key, strconv.FormatFloat(v, 'g', -1, 64))
}

// SetFloats stores a Fortran array literal.
func (g *NamelistGroup) SetFloats(key string, vs []float64) {
	parts := make([]string, len(vs))
	for i, v := range vs {
		parts[i] = strconv.FormatFloat(v, 'g', -1, 64)
	}
	g.setRaw(key, strings.Join(parts, ", "))
}

// SetInt stores a scalar integer value.
func (g *NamelistGroup) SetInt(key string, v int) {
	g.setRaw(key, strconv.Itoa(v))
}

// SetBool stores a Fortran logical value (.true./.false.).
func (g *NamelistGroup) SetBool(key string, v bool) {
	if v {
		g.setRaw(key, ".true.")
	} else {
		g.setRaw(key, ".false.")
	}
}

func (g *NamelistGroup) setRaw(key, raw string) {
	if _, exists := g.Value[key]; !exists {
		g.keys = append(g.keys, key)
	}
	g.Value[key] = raw
}

// Get returns the raw value string for a key.
func (g *NamelistGroup) Get(key string) (string, bool) {
	v, ok := g.Value[key]
	return v, ok
}

// Keys returns keys in file/insertion order.
func (g *NamelistGroup) Keys() []string { return g.keys }

// Namelist is an ordered collection of NamelistGroups, round-trip
// preserving for every recognized key; unknown keys pass through
// verbatim because they are stored the same way as recognized ones.
type Namelist struct {
	groupOrder []string
	groups     map[string]*NamelistGroup
}

// NewNamelist returns an empty namelist.
func NewNamelist() *Namelist {
	return &Namelist{groups: make(map[string]*NamelistGroup)}
}

// Group returns (creating if necessary) the named group.
func (n *Namelist) Group(name string) *NamelistGroup {
	g, ok := n.groups[name]
	if !ok {
		g = newNamelistGroup(name)
		n.groups[name] = g
		n.groupOrder = append(n.groupOrder, name)
	}
	return g
}

// Groups returns every group in file/insertion order.
func (n *Namelist) Groups() []*NamelistGroup {
	out := make([]*NamelistGroup, len(n.groupOrder))
	for i, name := range n.groupOrder {
		out[i] = n.groups[name]
	}
	return out
}

// ParseNamelist reads a Fortran namelist file: groups opened by "&name"
// and closed by "/", with "key = value" assignments (comma-separated
// multiple assignments per line are also accepted).
func ParseNamelist(path string) (*Namelist, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, WrapGeometryError(ErrIOFileNotFound, "opening namelist file", err)
	}
	defer f.Close()

	n := NewNamelist()
	sc := bufio.NewScanner(f)
	var cur *NamelistGroup
	for sc.Scan() {
		line := strings.TrimSpace(sc.Text())
		if line == "" || strings.HasPrefix(line, "!") {
			continue
		}
		if strings.HasPrefix(line, "&") {
			cur = n.Group(strings.TrimSpace(line[1:]))
			continue
		}
		if line == "/" {
			cur = nil
			continue
		}
		if cur == nil {
			continue
		}
		for _, assign := range splitAssignments(line) {
			eq := strings.Index(assign, "=")
			if eq == -1 {
				continue
			}
			key := strings.TrimSpace(assign[:eq])
			val := strings.TrimSpace(assign[eq+1:])
			cur.setRaw(key, val)
		}
	}
	if err := sc.Err(); err != nil {
		return nil, WrapGeometryError(ErrInputParseError, "scanning namelist file", err)
	}
	return n, nil
}

// splitAssignments splits a namelist line on commas that are not inside a
// quoted string.
func splitAssignments(line string) []string {
	var out []string
	inQuote := false
	start := 0
	for i, r := range line {
		switch r {
		case '\'', '"':
			inQuote = !inQuote
		case ',':
			if !inQuote {
				out = append(out, line[start:i])
				start = i + 1
			}
		}
	}
	out = append(out, line[start:])
	return out
}

// Write serializes the namelist in canonical group order (recognized
// groups first, then any unknown ones in file order).
func (n *Namelist) Write(path string) error {
	return WriteNamelist(path, n)
}

// WriteNamelist writes n to path.
func WriteNamelist(path string, n *Namelist) error {
	f, err := os.Create(path)
	if err != nil {
		return WrapGeometryError(ErrIOPermission, "creating namelist file", err)
	}
	defer f.Close()
	w := bufio.NewWriter(f)

	written := make(map[string]bool)
	order := append([]string{}, namelistGroupOrder...)
	for _, name := range n.groupOrder {
		if !contains(order, name) {
			order = append(order, name)
		}
	}
	for _, name := range order {
		g, ok := n.groups[name]
		if !ok || written[name] {
			continue
		}
		written[name] = true
		fmt.Fprintf(w, "&%s\n", g.Name)
		for _, k := range g.keys {
			fmt.Fprintf(w, "  %s = %s\n", k, g.Value[k])
		}
		fmt.Fprintln(w, "/")
		fmt.Fprintln(w)
	}
	return w.Flush()
}

func contains(s []string, v string) bool {
	for _, e := range s {
		if e == v {
			return true
		}
	}
	return false
}

// CheckContent invokes the optimizer's --check-input mode against a
// written namelist file and reports an InputError naming the offending
// group on failure.
func CheckContent(exePath, path string) error {
	out, err := exec.Command(exePath, "--check-input", path).CombinedOutput()
	if err == nil {
		return nil
	}
	group, msg := parseCheckOutput(string(out))
	return NewInputError(group, msg)
}

func parseCheckOutput(out string) (group, msg string) {
	lines := strings.Split(out, "\n")
	for _, l := range lines {
		l = strings.TrimSpace(l)
		if l == "" {
			continue
		}
		for _, g := range namelistGroupOrder {
			if strings.Contains(l, g) {
				return g, l
			}
		}
		msg = l
	}
	return "", msg
}
