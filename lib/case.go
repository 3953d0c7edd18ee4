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
	"math"
	"os"
	"path/filepath"
	"regexp"
	"sort"
	"strconv"
	"strings"

	"gonum.org/v1/gonum/mat"
)

// Case is the common surface of a design session: a sequence of design
// airfoils derived from one seed, backed by a scoped working directory.
type Case interface {
	Designs() []*Airfoil
	AddDesign(a *Airfoil) error
	RemoveDesign(a *Airfoil) (*Airfoil, error)
	GetFinalFromDesign(a *Airfoil) (*Airfoil, error)
	Close(removeDesigns bool) error
}

var designFilePattern = regexp.MustCompile(`^Design_(\d+)(\..+)$`)

// DirectDesignCase manages a <stem>_designs/ directory of Design_<nnn><ext>
// snapshots derived from a seed airfoil.
type DirectDesignCase struct {
	Seed       *Airfoil
	DesignDir  string
	ext        string
	designs    []*Airfoil
}

// NewDirectDesignCase constructs (or reopens) the design case for seed.
// If the design directory already holds Design_*<ext> files they are
// loaded and marked Role=Design; otherwise the first design is built by
// normalizing a Splined copy of seed and saving it as Design___0<ext>.
func NewDirectDesignCase(seed *Airfoil) (*DirectDesignCase, error) {
	if err := seed.Load(); err != nil {
		return nil, err
	}
	ext := filepath.Ext(seed.PathFileName)
	if ext == "" {
		ext = ".dat"
	}
	c := &DirectDesignCase{
		Seed:      seed,
		DesignDir: filepath.Join(seed.WorkingDir, seed.Stem()+"_designs"),
		ext:       ext,
	}
	if err := os.MkdirAll(c.DesignDir, 0755); err != nil {
		return nil, WrapGeometryError(ErrIOPermission, "creating design directory", err)
	}
	existing, err := c.scanDesigns()
	if err != nil {
		return nil, err
	}
	if len(existing) > 0 {
		c.designs = existing
		return c, nil
	}
	first, err := seed.AsCopy(seed.Name, RoleDesign)
	if err != nil {
		return nil, err
	}
	if first.Geo.Kind() != StrategySplined {
		splined, err := NewGeometry(StrategySplined, first.Geo.X(), first.Geo.Y())
		if err != nil {
			return nil, err
		}
		splined.AirfoilID = first.Name
		first.Geo = splined
	}
	if err := first.Geo.Normalize(); err != nil {
		return nil, err
	}
	first.PathFileName = filepath.Join(c.DesignDir, fmt.Sprintf("Design___0%s", ext))
	first.FileName = filepath.Base(first.PathFileName)
	if err := first.Save(""); err != nil {
		return nil, err
	}
	c.designs = []*Airfoil{first}
	return c, nil
}

func (c *DirectDesignCase) scanDesigns() ([]*Airfoil, error) {
	entries, err := os.ReadDir(c.DesignDir)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, WrapGeometryError(ErrIOPermission, "reading design directory", err)
	}
	var names []string
	for _, e := range entries {
		if !e.IsDir() && designFilePattern.MatchString(e.Name()) {
			names = append(names, e.Name())
		}
	}
	sort.Slice(names, func(i, j int) bool {
		return designIndex(names[i]) < designIndex(names[j])
	})
	out := make([]*Airfoil, 0, len(names))
	for _, name := range names {
		a := NewAirfoilFromPath(filepath.Join(c.DesignDir, name))
		a.UsedAs = RoleDesign
		if err := a.Load(); err != nil {
			return nil, err
		}
		out = append(out, a)
	}
	return out, nil
}

func designIndex(name string) int {
	m := designFilePattern.FindStringSubmatch(name)
	if m == nil {
		return -1
	}
	n, _ := strconv.Atoi(m[1])
	return n
}

// Designs returns the current design list in index order.
func (c *DirectDesignCase) Designs() []*Airfoil { return c.designs }

// AddDesign assigns the next free index, saves a into the design
// directory as Design_<nnn><ext>, and appends it to the list.
func (c *DirectDesignCase) AddDesign(a *Airfoil) error {
	next := 0
	for _, d := range c.designs {
		if i := designIndex(d.FileName); i >= next {
			next = i + 1
		}
	}
	a.PathFileName = filepath.Join(c.DesignDir, fmt.Sprintf("Design_%03d%s", next, c.ext))
	a.FileName = filepath.Base(a.PathFileName)
	a.UsedAs = RoleDesign
	if err := a.Save(""); err != nil {
		return err
	}
	c.designs = append(c.designs, a)
	return nil
}

// RemoveDesign deletes a's file, removes it from the list, and returns
// the neighbor design (the next one, or the previous if a was last).
func (c *DirectDesignCase) RemoveDesign(a *Airfoil) (*Airfoil, error) {
	idx := -1
	for i, d := range c.designs {
		if d == a {
			idx = i
			break
		}
	}
	if idx == -1 {
		return nil, NewGeometryError(ErrInvalidCoordinates, "design not found in case")
	}
	if err := os.Remove(a.PathFileName); err != nil && !os.IsNotExist(err) {
		return nil, WrapGeometryError(ErrIOPermission, "removing design file", err)
	}
	c.designs = append(c.designs[:idx], c.designs[idx+1:]...)
	if len(c.designs) == 0 {
		return nil, nil
	}
	if idx < len(c.designs) {
		return c.designs[idx], nil
	}
	return c.designs[idx-1], nil
}

// GetFinalFromDesign copies a, names it <seedName>_mod (or
// <seedName>_Design_<i> if the seed name already contains "mod"), and
// places it in the seed's own directory rather than the design dir.
func (c *DirectDesignCase) GetFinalFromDesign(a *Airfoil) (*Airfoil, error) {
	seedName := c.Seed.Name
	var finalName string
	if strings.Contains(strings.ToLower(seedName), "mod") {
		finalName = fmt.Sprintf("%s_Design_%d", seedName, designIndex(a.FileName))
	} else {
		finalName = seedName + "_mod"
	}
	final, err := a.AsCopy(finalName, RoleFinal)
	if err != nil {
		return nil, err
	}
	final.PathFileName = filepath.Join(c.Seed.WorkingDir, finalName+c.ext)
	final.FileName = filepath.Base(final.PathFileName)
	return final, nil
}

// Close optionally removes the entire design directory.
func (c *DirectDesignCase) Close(removeDesigns bool) error {
	if !removeDesigns {
		return nil
	}
	if err := os.RemoveAll(c.DesignDir); err != nil {
		return WrapGeometryError(ErrIOPermission, "removing design directory", err)
	}
	return nil
}

// AsBezierCase is a DirectDesignCase whose first design is a
// Bezier-converted copy of the normalized seed, and whose design
// directory name derives from the Bezier file name instead of the
// seed's own name.
type AsBezierCase struct {
	*DirectDesignCase
}

// NewAsBezierCase builds the Bezier design case. It normalizes a splined
// version of the seed, fits each side with fitBezierSide (8 control
// points, least squares), samples both sides at 100 points and saves the
// result as the first design. If the design directory already holds
// designs, those are reused and no fit is made.
func NewAsBezierCase(seed *Airfoil, bezierName string) (*AsBezierCase, error) {
	if err := seed.Load(); err != nil {
		return nil, err
	}
	if seed.Geo.Kind() != StrategySplined {
		splined, err := NewGeometry(StrategySplined, seed.Geo.X(), seed.Geo.Y())
		if err != nil {
			return nil, err
		}
		splined.AirfoilID = seed.Name
		seed.Geo = splined
	}
	if err := seed.Geo.Normalize(); err != nil {
		return nil, err
	}

	bezSeed := &Airfoil{
		Name:       bezierName,
		WorkingDir: seed.WorkingDir,
		UsedAs:     RoleSeed,
		loaded:     true,
	}
	bezSeed.PathFileName = filepath.Join(seed.WorkingDir, bezierName+".bez")
	bezSeed.FileName = filepath.Base(bezSeed.PathFileName)

	dc := &DirectDesignCase{
		Seed:      bezSeed,
		DesignDir: filepath.Join(seed.WorkingDir, bezierName+"_designs"),
		ext:       ".bez",
	}
	if err := os.MkdirAll(dc.DesignDir, 0755); err != nil {
		return nil, WrapGeometryError(ErrIOPermission, "creating design directory", err)
	}
	existing, err := dc.scanDesigns()
	if err != nil {
		return nil, err
	}
	if len(existing) > 0 {
		dc.designs = existing
		return &AsBezierCase{dc}, nil
	}

	upperX, upperY := splitSide(seed.Geo.Upper())
	lowerX, lowerY := splitSide(seed.Geo.Lower())
	upperSide, err := fitBezierSide(true, upperX, upperY)
	if err != nil {
		return nil, err
	}
	lowerSide, err := fitBezierSide(false, lowerX, lowerY)
	if err != nil {
		return nil, err
	}
	ux, uy := upperSide.Sample(100)
	lx, ly := lowerSide.Sample(100)
	geo := &Geometry{mods: make(map[ModKind]string), AirfoilID: bezierName}
	bs := newBezierStrategy(geo)
	bs.SetSides(upperSide, lowerSide)
	geo.strategy = bs
	geo.rebuildFromSides(ux, uy, lx, ly)

	first := &Airfoil{
		Name:       bezSeed.Name,
		WorkingDir: dc.DesignDir,
		UsedAs:     RoleSeedDesign,
		Geo:        geo,
		loaded:     true,
	}
	first.PathFileName = filepath.Join(dc.DesignDir, fmt.Sprintf("Design___0%s", dc.ext))
	first.FileName = filepath.Base(first.PathFileName)
	if err := first.Save(""); err != nil {
		return nil, err
	}
	dc.designs = []*Airfoil{first}
	return &AsBezierCase{dc}, nil
}

func splitSide(l *Line) ([]float64, []float64) {
	if l == nil {
		return nil, nil
	}
	return l.X, l.Y
}

// fitBezierSide fits an 8-point Bezier side through (x,y) by least squares:
// the LE (0,0) and TE (1,y[n-1]) control points are pinned, the interior
// control points' x are placed at the source sample's own fractional
// positions, and the remaining control point heights (including the LE
// tangent point) are the ones solved for, minimizing squared deviation
// from the chord-length-parameterized source samples.
func fitBezierSide(upper bool, x, y []float64) (*BezierSide, error) {
	n := len(x)
	if n < 4 {
		return nil, NewGeometryError(ErrInvalidCoordinates, "too few points to seed a Bezier side")
	}
	const nCtrl = 8
	deg := nCtrl - 1

	u := chordLengthU(x, y)

	px := make([]float64, nCtrl)
	py := make([]float64, nCtrl)
	px[0], py[0] = 0, 0
	px[1] = 0
	px[nCtrl-1], py[nCtrl-1] = 1, y[n-1]
	for i := 2; i < nCtrl-1; i++ {
		frac := float64(i-1) / float64(nCtrl-2)
		idx := int(frac * float64(n-1))
		px[i] = x[idx]
	}

	// free heights are control points 1..nCtrl-2; p[0] and p[nCtrl-1] are
	// pinned, so each row of the normal equations only needs their basis
	// functions subtracted from the target.
	nFree := nCtrl - 2
	ata := mat.NewDense(nFree, nFree, nil)
	atb := mat.NewVecDense(nFree, nil)
	basis := make([]float64, nFree)
	for i := 0; i < n; i++ {
		for k := 0; k < nFree; k++ {
			basis[k] = bernstein(deg, k+1, u[i])
		}
		target := y[i] - bernstein(deg, deg, u[i])*py[nCtrl-1]
		for r := 0; r < nFree; r++ {
			atb.SetVec(r, atb.AtVec(r)+basis[r]*target)
			for c := 0; c < nFree; c++ {
				ata.Set(r, c, ata.At(r, c)+basis[r]*basis[c])
			}
		}
	}
	var sol mat.VecDense
	if err := sol.SolveVec(ata, atb); err != nil {
		return nil, WrapGeometryError(ErrInvalidCoordinates, "bezier control point least-squares fit failed", err)
	}
	for k := 0; k < nFree; k++ {
		py[k+1] = sol.AtVec(k)
	}

	// the LE tangent point is bound by NewBezierSide's minimum-slope check;
	// the fit may undershoot it on a very thin side, so clamp.
	const minLETangent = 0.006
	if upper && py[1] < minLETangent {
		py[1] = minLETangent
	}
	if !upper && py[1] > -minLETangent {
		py[1] = -minLETangent
	}

	return NewBezierSide(upper, px, py)
}

// chordLengthU parameterizes a polyline by normalized cumulative chord
// length, giving each sample a u in [0,1] from LE (u=0) to TE (u=1).
func chordLengthU(x, y []float64) []float64 {
	n := len(x)
	u := make([]float64, n)
	cum := 0.0
	for i := 1; i < n; i++ {
		cum += math.Hypot(x[i]-x[i-1], y[i]-y[i-1])
		u[i] = cum
	}
	if cum > 0 {
		for i := range u {
			u[i] /= cum
		}
	}
	return u
}

// bernstein evaluates the k-th Bernstein basis polynomial of degree n at u.
func bernstein(n, k int, u float64) float64 {
	return binomial(n, k) * math.Pow(u, float64(k)) * math.Pow(1-u, float64(n-k))
}

func binomial(n, k int) float64 {
	result := 1.0
	for i := 0; i < k; i++ {
		result *= float64(n-i) / float64(i+1)
	}
	return result
}
