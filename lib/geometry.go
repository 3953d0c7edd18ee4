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
)

// StrategyKind names one of the four interchangeable geometry strategies.
type StrategyKind int

const (
	StrategyBasic StrategyKind = iota
	StrategySplined
	StrategyBezier
	StrategyHicksHenne
)

func (k StrategyKind) String() string {
	switch k {
	case StrategySplined:
		return "Splined"
	case StrategyBezier:
		return "Bezier"
	case StrategyHicksHenne:
		return "HicksHenne"
	default:
		return "Basic"
	}
}

// strategy is implemented by each of the four geometry variants. The
// shared Geometry methods (Normalize, Repanel's retain path, Blend) call
// back into these hooks instead of relying on subclass overrides.
type strategy interface {
	Kind() StrategyKind
	// upperNewX/lowerNewX resample this strategy's own curve at the given
	// target x values, each in the side's own local coordinate direction.
	upperNewX(xs []float64) []float64
	lowerNewX(xs []float64) []float64
	// curvature (re)computes curvature for the current x,y; nil if unsupported.
	curvature(x, y []float64, iLe int) *Curvature
	// resetSpline invalidates any cached spline/curve backing this strategy.
	resetSpline()
	// leReal returns the strategy's notion of the "real" (as opposed to
	// point-index) leading edge location, used by the normalization check.
	leReal(x, y []float64, iLe int) (float64, float64, error)
}

// Geometry is an airfoil's coordinate data plus a strategy. It owns
// lazily-built derived Lines, the modification dictionary, and fans out
// change notifications through the embedded Observable.
type Geometry struct {
	Observable

	AirfoilID string // for notification payloads

	xOrg, yOrg []float64 // immutable as-loaded coordinates
	x, y       []float64 // current working coordinates
	strategy   strategy

	iLe int

	upper, lower, thickness, camber *Line
	curv                            *Curvature
	linesValid                      bool

	normalized bool

	// modification dictionary: last label recorded per kind
	mods map[ModKind]string

	initThickX, initThickY float64
	initCambX, initCambY   float64
	initUpperX, initUpperY float64
	initLowerX, initLowerY float64
	initCaptured           bool
}

// NewGeometry builds a Geometry from an ordered, CCW-oriented point set
// for the given strategy kind.
func NewGeometry(kind StrategyKind, x, y []float64) (*Geometry, error) {
	if len(x) < 2 || len(y) != len(x) {
		return nil, NewGeometryError(ErrInvalidCoordinates, "airfoil needs at least 2 matching points")
	}
	for i := range x {
		if math.IsNaN(x[i]) || math.IsNaN(y[i]) {
			return nil, NewGeometryError(ErrInvalidCoordinates, "NaN coordinate")
		}
	}
	g := &Geometry{
		xOrg: append([]float64{}, x...), yOrg: append([]float64{}, y...),
		x: append([]float64{}, x...), y: append([]float64{}, y...),
		mods: make(map[ModKind]string),
	}
	g.iLe = argminX(g.x)
	g.strategy = newStrategy(kind, g)
	return g, nil
}

func argminX(x []float64) int {
	idx := 0
	for i := 1; i < len(x); i++ {
		if x[i] < x[idx] {
			idx = i
		}
	}
	return idx
}

func newStrategy(kind StrategyKind, g *Geometry) strategy {
	switch kind {
	case StrategySplined:
		return newSplinedStrategy(g)
	case StrategyBezier:
		return newBezierStrategy(g)
	case StrategyHicksHenne:
		return newHicksHenneStrategy(g)
	default:
		return newBasicStrategy(g)
	}
}

// Kind reports the active strategy.
func (g *Geometry) Kind() StrategyKind { return g.strategy.Kind() }

// X and Y return the current working coordinates.
func (g *Geometry) X() []float64 { return g.x }
func (g *Geometry) Y() []float64 { return g.y }

// ILe returns the point-index leading edge (argmin x).
func (g *Geometry) ILe() int { return g.iLe }

// IsNormalized reports whether the current coordinates satisfy the
// normalization invariant.
func (g *Geometry) IsNormalized() bool { return g.normalized }

func (g *Geometry) invalidateLines() {
	g.linesValid = false
	g.upper, g.lower, g.thickness, g.camber, g.curv = nil, nil, nil, nil, nil
	g.strategy.resetSpline()
}

func (g *Geometry) rebuildLines() {
	if g.linesValid {
		return
	}
	n := len(g.x)
	iLe := g.iLe

	ux := make([]float64, iLe+1)
	uy := make([]float64, iLe+1)
	for i := 0; i <= iLe; i++ {
		ux[i] = g.x[iLe-i]
		uy[i] = g.y[iLe-i]
	}
	lx := append([]float64{}, g.x[iLe:]...)
	ly := append([]float64{}, g.y[iLe:]...)
	g.upper = NewLine(LineUpper, ux, uy)
	g.lower = NewLine(LineLower, lx, ly)

	m := len(ux)
	if len(lx) < m {
		m = len(lx)
	}
	tx := make([]float64, m)
	ty := make([]float64, m)
	cx := make([]float64, m)
	cy := make([]float64, m)
	for i := 0; i < m; i++ {
		tx[i] = ux[i]
		ty[i] = uy[i] - ly[i]
		cx[i] = ux[i]
		cy[i] = (uy[i] + ly[i]) / 2
	}
	g.thickness = NewLine(LineThickness, tx, ty)
	g.camber = NewLine(LineCamber, cx, cy)

	g.curv = g.strategy.curvature(g.x, g.y, iLe)
	_ = n
	g.linesValid = true

	if !g.initCaptured && g.normalized {
		g.initThickX, g.initThickY = g.thickness.Highpoint()
		g.initCambX, g.initCambY = g.camber.Highpoint()
		g.initUpperX, g.initUpperY = g.upper.Highpoint()
		g.initLowerX, g.initLowerY = g.lower.Highpoint()
		g.initCaptured = true
	}
}

// Upper, Lower, Thickness, Camber, Curvature return the lazily built
// derived lines/curvature for the current coordinates.
func (g *Geometry) Upper() *Line         { g.rebuildLines(); return g.upper }
func (g *Geometry) Lower() *Line         { g.rebuildLines(); return g.lower }
func (g *Geometry) Thickness() *Line     { g.rebuildLines(); return g.thickness }
func (g *Geometry) Camber() *Line        { g.rebuildLines(); return g.camber }
func (g *Geometry) Curvature() *Curvature { g.rebuildLines(); return g.curv }

// Modifications returns the recorded modification dictionary.
func (g *Geometry) Modifications() map[ModKind]string { return g.mods }

func (g *Geometry) recordMod(kind ModKind, label string) {
	g.mods[kind] = label
	g.notifyGeometryChanged(g.AirfoilID, Modification{Kind: kind, Label: label})
}

func (g *Geometry) recordFailure(kind ModKind, label string) {
	g.notifyGeometryChanged(g.AirfoilID, Modification{Kind: ModFailed, Label: kind.String() + ": " + label})
}

// rebuildFromSides replaces x,y from the current upper/lower lines
// (reversing upper back to descending-x order and dropping its duplicated
// LE point from lower).
func (g *Geometry) rebuildFromSides(ux, uy, lx, ly []float64) {
	n := len(ux) + len(lx) - 1
	x := make([]float64, n)
	y := make([]float64, n)
	m := len(ux)
	for i := 0; i < m; i++ {
		x[i] = ux[m-1-i]
		y[i] = uy[m-1-i]
	}
	for i := 1; i < len(lx); i++ {
		x[m-1+i] = lx[i]
		y[m-1+i] = ly[i]
	}
	g.x, g.y = x, y
	g.iLe = m - 1
	g.invalidateLines()
}

// rebuildFromThicknessCamber reconstructs upper/lower from thickness and
// camber lines sharing the same x grid, then rebuilds x,y.
func (g *Geometry) rebuildFromThicknessCamber(tx, ty, cy []float64) {
	n := len(tx)
	uy := make([]float64, n)
	ly := make([]float64, n)
	for i := 0; i < n; i++ {
		uy[i] = cy[i] + ty[i]/2
		ly[i] = cy[i] - ty[i]/2
	}
	g.rebuildFromSides(tx, uy, tx, ly)
}

// Normalize translates/rotates/scales so the (strategy-specific) real LE
// lands at the origin and TE sits at x=1 with symmetric y.
func (g *Geometry) Normalize() error {
	const maxIter = 10
	x := append([]float64{}, g.x...)
	y := append([]float64{}, g.y...)

	for iter := 0; iter < maxIter; iter++ {
		n := len(x)
		xTE := (x[0] + x[n-1]) / 2
		yTE := (y[0] + y[n-1]) / 2

		iLe := argminX(x)
		xle, yle := x[iLe], y[iLe]
		realLE := true
		if lx, ly, err := g.strategy.leReal(x, y, iLe); err == nil {
			xle, yle = lx, ly
		} else {
			realLE = false
		}

		for i := range x {
			x[i] -= xle
			y[i] -= yle
		}
		xTE -= xle
		yTE -= yle

		theta := -math.Atan2(yTE, xTE)
		cosT, sinT := math.Cos(theta), math.Sin(theta)
		for i := range x {
			xr := x[i]*cosT - y[i]*sinT
			yr := x[i]*sinT + y[i]*cosT
			x[i], y[i] = xr, yr
		}

		iLe = argminX(x)
		if x[0] == 0 || x[len(x)-1] == 0 {
			g.recordFailure(ModNormalize, "degenerate trailing edge")
			return NewGeometryError(ErrNormalizationFailed, "trailing edge collapsed to LE")
		}
		su := 1 / x[0]
		sl := 1 / x[len(x)-1]
		for i := 0; i <= iLe; i++ {
			x[i] *= su
			y[i] *= su
		}
		for i := iLe; i < len(x); i++ {
			x[i] *= sl
			y[i] *= sl
		}
		x[iLe], y[iLe] = 0, 0
		x[0] = 1
		x[len(x)-1] = 1
		y[len(x)-1] = -y[0]

		if !realLE {
			break
		}
		_, _, errLe := g.strategy.leReal(x, y, iLe)
		if errLe == nil {
			lx, ly, _ := g.strategy.leReal(x, y, iLe)
			if math.Hypot(lx, ly) <= 1e-6 {
				break
			}
			if iter < maxIter-1 {
				// splined LE hasn't settled yet: repanel against the
				// strategy's curve at the shifted LE, retaining the
				// current density, before the next rigid-transform pass.
				g.x, g.y, g.iLe = x, y, iLe
				g.invalidateLines()
				if err := g.Repanel(RepanelRetain, 0, 0, 0, 0); err != nil {
					return err
				}
				x = append([]float64{}, g.x...)
				y = append([]float64{}, g.y...)
			}
		}
		if iter == maxIter-1 {
			g.recordFailure(ModNormalize, "splined LE did not converge")
			return NewGeometryError(ErrNormalizationFailed, "iterative splined normalization did not converge")
		}
	}

	g.x, g.y = x, y
	g.iLe = argminX(x)
	g.normalized = true
	g.invalidateLines()
	g.recordMod(ModNormalize, "normalized")
	return nil
}

// SetTEGap blends the trailing edge gap to newGap, decaying the
// perturbation toward LE with the given blend fraction.
func (g *Geometry) SetTEGap(newGap, xBlend float64) error {
	if xBlend <= 0 {
		xBlend = 0.8
	}
	newGap = Clamp(newGap, 0, 0.1)
	cur := g.y[0] - g.y[len(g.y)-1]
	dgap := newGap - cur

	x := append([]float64{}, g.x...)
	y := append([]float64{}, g.y...)
	iLe := g.iLe
	for i := range x {
		arg := math.Min((1-x[i])*(1/xBlend-1), 15)
		tfac := math.Exp(-arg)
		sign := 1.0
		if i > iLe {
			sign = -1.0
		}
		y[i] += sign * 0.5 * dgap * x[i] * tfac
	}
	g.x, g.y = x, y
	g.invalidateLines()
	g.recordMod(ModTEGap, "te gap set")
	return nil
}

// SetLERadius rescales the thickness distribution near LE to reach the
// target radius, preserving downstream thickness via an exponential blend.
func (g *Geometry) SetLERadius(rNew, xBlend float64) error {
	if xBlend <= 0 {
		xBlend = 0.1
	}
	xBlend = Clamp(xBlend, 0.001, 1)
	rNew = Clamp(rNew, 0.002, 0.05)

	curv := g.Curvature()
	atLe := curv.AtLE()
	if IsNull(atLe) {
		return NewGeometryError(ErrInvalidCoordinates, "cannot set LE radius: curvature at LE is zero")
	}
	rCur := 1 / math.Abs(atLe)
	factor := rNew / rCur

	th := g.Thickness()
	tx := append([]float64{}, th.X...)
	ty := append([]float64{}, th.Y...)
	for i := range tx {
		arg := math.Min(tx[i]/xBlend, 15)
		tfac := 1 - (1-math.Sqrt(math.Abs(factor)))*math.Exp(-arg)
		ty[i] *= tfac
	}
	cb := g.Camber()
	g.rebuildFromThicknessCamber(tx, ty, cb.Y)
	g.recordMod(ModLERadius, "le radius set")
	return nil
}

func (g *Geometry) lineByKind(t LineType) *Line {
	switch t {
	case LineUpper:
		return g.Upper()
	case LineLower:
		return g.Lower()
	case LineThickness:
		return g.Thickness()
	case LineCamber:
		return g.Camber()
	default:
		return nil
	}
}

// SetHighpointOf moves the extremum of the named derived line to (xn,yn)
// and rebuilds x,y from the appropriate route. Precondition: normalized.
func (g *Geometry) SetHighpointOf(t LineType, xn, yn float64) error {
	if !g.normalized {
		return NewGeometryError(ErrNormalizationFailed, "airfoil must be normalized before moving a highpoint")
	}
	switch t {
	case LineThickness:
		th := g.Thickness()
		xh, yh := th.Highpoint()
		if IsNull(yh) {
			g.recordMod(ModMaxThickness, "no-op: zero thickness highpoint")
			return nil
		}
		if IsClose(xn, xh, 1e-9) {
			// y-only change: scale upper/lower y directly, no line rebuild
			ratio := yn / yh
			for i := range g.y {
				g.y[i] *= ratio
			}
			g.invalidateLines()
			g.recordMod(ModMaxThickness, labelDelta(g.initThickX, g.initThickY, xn, yn))
			return nil
		}
		if err := th.SetHighpoint(xn, yn); err != nil {
			g.recordFailure(ModMaxThickness, err.Error())
			return err
		}
		g.rebuildFromThicknessCamber(th.X, th.Y, g.Camber().Y)
		g.recordMod(ModMaxThickness, labelDelta(g.initThickX, g.initThickY, xn, yn))
		return nil
	case LineCamber:
		cb := g.Camber()
		if err := cb.SetHighpoint(xn, yn); err != nil {
			g.recordFailure(ModMaxCamber, err.Error())
			return err
		}
		g.rebuildFromThicknessCamber(g.Thickness().X, g.Thickness().Y, cb.Y)
		g.recordMod(ModMaxCamber, labelDelta(g.initCambX, g.initCambY, xn, yn))
		return nil
	case LineUpper:
		up := g.Upper()
		if err := up.SetHighpoint(xn, yn); err != nil {
			g.recordFailure(ModUpperHighpoint, err.Error())
			return err
		}
		g.rebuildFromSides(up.X, up.Y, g.Lower().X, g.Lower().Y)
		g.recordMod(ModUpperHighpoint, labelDelta(g.initUpperX, g.initUpperY, xn, yn))
		return nil
	case LineLower:
		low := g.Lower()
		if err := low.SetHighpoint(xn, yn); err != nil {
			g.recordFailure(ModLowerHighpoint, err.Error())
			return err
		}
		g.rebuildFromSides(g.Upper().X, g.Upper().Y, low.X, low.Y)
		g.recordMod(ModLowerHighpoint, labelDelta(g.initLowerX, g.initLowerY, xn, yn))
		return nil
	default:
		return NewGeometryError(ErrInvalidCoordinates, "highpoint not supported for this line type")
	}
}

// labelDelta describes a highpoint's movement from its as-loaded position
// (x0,y0) to its current one (x1,y1), for the modification dictionary.
func labelDelta(x0, y0, x1, y1 float64) string {
	if IsClose(x0, x1, 1e-6) && IsClose(y0, y1, 1e-6) {
		return "unchanged"
	}
	return fmt.Sprintf("%.4f/%.4f -> %.4f/%.4f", x0, y0, x1, y1)
}

// RepanelMode selects how Repanel builds its new per-side parameter grid.
type RepanelMode int

const (
	// RepanelFresh regenerates a cosine-like bunched distribution per side
	// from nPanUp/nPanLow, leBunch and teBunch.
	RepanelFresh RepanelMode = iota
	// RepanelRetain keeps the current panel counts and relative spacing,
	// only renormalizing each side back to [0,1] after the LE has moved.
	RepanelRetain
)

// Repanel resamples onto a new panel count (RepanelFresh) or restretches
// the current grid after a coordinate change (RepanelRetain).
func (g *Geometry) Repanel(mode RepanelMode, nPanUp, nPanLow int, leBunch, teBunch float64) error {
	uOld, lOld := g.Upper(), g.Lower()

	var newUpperX, newLowerX []float64
	switch mode {
	case RepanelRetain:
		newUpperX = retainPanelX(uOld.X)
		newLowerX = retainPanelX(lOld.X)
	default:
		newUpperX = freshPanelX(nPanUp, leBunch, teBunch)
		newLowerX = freshPanelX(nPanLow, leBunch, teBunch)
	}

	newUpperY := g.strategy.upperNewX(newUpperX)
	if newUpperY == nil {
		newUpperY = resampleLinear(uOld.X, uOld.Y, newUpperX)
	}
	newLowerY := g.strategy.lowerNewX(newLowerX)
	if newLowerY == nil {
		newLowerY = resampleLinear(lOld.X, lOld.Y, newLowerX)
	}

	g.rebuildFromSides(newUpperX, newUpperY, newLowerX, newLowerY)
	g.recordMod(ModRepanel, "repaneled")
	return nil
}

// retainPanelX keeps a side's existing panel count and relative spacing,
// stretching it back onto [0,1] (its LE and TE may have drifted slightly
// off those bounds since the grid was last built).
func retainPanelX(u []float64) []float64 {
	n := len(u)
	out := make([]float64, n)
	if n < 2 || u[n-1] == u[0] {
		copy(out, u)
		return out
	}
	lo, hi := u[0], u[n-1]
	for i, v := range u {
		out[i] = (v - lo) / (hi - lo)
	}
	return out
}

// freshPanelX builds a cosine-like bunched distribution per side: LE bunch
// via a shifted cosine, TE bunch via geometric panel growth from a reduced
// final panel length, then normalizes to [0,1].
func freshPanelX(nPan int, leBunch, teBunch float64) []float64 {
	n := nPan + 1
	if n < 2 {
		n = 2
	}
	beta := Linspace((0.1-leBunch*0.1)*math.Pi, 0.65*math.Pi, n)
	u := make([]float64, n)
	for i, b := range beta {
		u[i] = (1 - math.Cos(b)) / 2
	}
	// trailing edge bunching: shrink the final panel, grow geometrically
	// backward until it matches the interior panel size
	duLinear := 1.0 / float64(n-1)
	teStep := (1 - teBunch*0.9) * duLinear
	pos := u[n-1]
	for i := n - 2; i >= 0 && teStep < u[i+1]-u[i]; i-- {
		pos -= teStep
		if pos <= u[i] {
			break
		}
		u[i+1] = pos
		teStep *= 1.2
	}
	lo, hi := u[0], u[n-1]
	for i := range u {
		u[i] = (u[i] - lo) / (hi - lo)
	}
	return u
}

func resampleLinear(x, y, xs []float64) []float64 {
	out := make([]float64, len(xs))
	for i, xt := range xs {
		out[i] = linInterp(x, y, xt)
	}
	return out
}

func linInterp(x, y []float64, xt float64) float64 {
	n := len(x)
	if xt <= x[0] {
		return y[0]
	}
	if xt >= x[n-1] {
		return y[n-1]
	}
	for i := 1; i < n; i++ {
		if xt <= x[i] {
			t := (xt - x[i-1]) / (x[i] - x[i-1])
			return y[i-1] + t*(y[i]-y[i-1])
		}
	}
	return y[n-1]
}

// Blend interpolates this geometry's shape t of the way from geo1 to geo2.
// The leading airfoil (share > 0.5) supplies the x-grid for both sides.
func Blend(geo1, geo2 *Geometry, t float64) (*Geometry, error) {
	if !geo1.IsNormalized() {
		if err := geo1.Normalize(); err != nil {
			return nil, err
		}
	}
	if !geo2.IsNormalized() {
		if err := geo2.Normalize(); err != nil {
			return nil, err
		}
	}
	leading, other := geo1, geo2
	if t > 0.5 {
		leading, other = geo2, geo1
	}
	ux := leading.Upper().X
	lx := leading.Lower().X

	u1y := geo1.Upper().Y
	l1y := geo1.Lower().Y
	if leading == geo2 {
		u1y = resampleStrategy(geo1, ux, true)
		l1y = resampleStrategy(geo1, lx, false)
	}
	u2y := geo2.Upper().Y
	l2y := geo2.Lower().Y
	if leading == geo1 {
		u2y = resampleStrategy(geo2, ux, true)
		l2y = resampleStrategy(geo2, lx, false)
	}
	_ = other

	uy := make([]float64, len(ux))
	ly := make([]float64, len(lx))
	for i := range ux {
		uy[i] = (1-t)*u1y[i] + t*u2y[i]
	}
	for i := range lx {
		ly[i] = (1-t)*l1y[i] + t*l2y[i]
	}

	g, err := buildFromSides(leading.Kind(), ux, uy, lx, ly)
	if err != nil {
		return nil, err
	}
	g.recordMod(ModBlend, "blended")
	return g, nil
}

func resampleStrategy(g *Geometry, xs []float64, upper bool) []float64 {
	if upper {
		if y := g.strategy.upperNewX(xs); y != nil {
			return y
		}
		return resampleLinear(g.Upper().X, g.Upper().Y, xs)
	}
	if y := g.strategy.lowerNewX(xs); y != nil {
		return y
	}
	return resampleLinear(g.Lower().X, g.Lower().Y, xs)
}

func buildFromSides(kind StrategyKind, ux, uy, lx, ly []float64) (*Geometry, error) {
	n := len(ux) + len(lx) - 1
	x := make([]float64, n)
	y := make([]float64, n)
	m := len(ux)
	for i := 0; i < m; i++ {
		x[i] = ux[m-1-i]
		y[i] = uy[m-1-i]
	}
	for i := 1; i < len(lx); i++ {
		x[m-1+i] = lx[i]
		y[m-1+i] = ly[i]
	}
	return NewGeometry(kind, x, y)
}
