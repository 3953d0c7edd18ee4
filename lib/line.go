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

// LineType classifies what a Line represents within a Geometry.
type LineType int

const (
	LineUpper LineType = iota
	LineLower
	LineThickness
	LineCamber
	LineCurvature
)

func (t LineType) String() string {
	switch t {
	case LineUpper:
		return "upper"
	case LineLower:
		return "lower"
	case LineThickness:
		return "thickness"
	case LineCamber:
		return "camber"
	case LineCurvature:
		return "curvature"
	default:
		return "unknown"
	}
}

// Line is a 1-D subcurve over x in [0,1] (upper, lower, thickness, camber,
// curvature). The upper line is the reversed upper half of the contour so
// that x runs monotonically 0 -> 1.
type Line struct {
	Type      LineType
	X, Y      []float64
	Threshold float64 // reversal detection threshold, default 0.1

	hpValid bool
	xh, yh  float64
}

// NewLine wraps the given coordinate arrays as a Line of the given type.
func NewLine(t LineType, x, y []float64) *Line {
	return &Line{Type: t, X: append([]float64{}, x...), Y: append([]float64{}, y...), Threshold: 0.1}
}

func (l *Line) invalidate() { l.hpValid = false }

// lowerSide reports whether this line's extremum is taken as a minimum
// rather than a maximum. Only the lower side is; camber and every other
// line type are treated as positive.
func (l *Line) lowerSide() bool {
	return l.Type == LineLower
}

// Highpoint returns the line's extremum (xh, yh): argmax(|y|) refined by a
// Nelder-Mead search over a small local spline.
func (l *Line) Highpoint() (float64, float64) {
	if l.hpValid {
		return l.xh, l.yh
	}
	n := len(l.X)
	if n == 0 {
		return 0, 0
	}
	imax := 0
	best := math.Abs(l.Y[0])
	for i := 1; i < n; i++ {
		if v := math.Abs(l.Y[i]); v > best {
			best = v
			imax = i
		}
	}
	lo := imax - 3
	hi := imax + 3
	if lo < 0 {
		lo = 0
	}
	if hi > n-1 {
		hi = n - 1
	}
	if hi-lo < 2 {
		l.xh, l.yh = l.X[imax], l.Y[imax]
		l.hpValid = true
		return l.xh, l.yh
	}
	helper, err := NewSplineCubic(l.X[lo:hi+1], l.Y[lo:hi+1], NotAKnot)
	if err != nil {
		l.xh, l.yh = l.X[imax], l.Y[imax]
		l.hpValid = true
		return l.xh, l.yh
	}
	sign := 1.0
	if l.Y[imax] < 0 {
		sign = -1.0
	}
	obj := func(x float64) float64 { return -sign * helper.Eval(x, 0) }
	xh := Minimize1D(obj, l.X[imax], l.X[lo], l.X[hi])
	l.xh, l.yh = xh, helper.Eval(xh, 0)
	l.hpValid = true
	return l.xh, l.yh
}

// Reversals returns every index i >= first x>=xStart where y changes sign
// and |y[i]| exceeds the threshold.
func (l *Line) Reversals(xStart float64) []int {
	var out []int
	for i := 1; i < len(l.X); i++ {
		if l.X[i] < xStart {
			continue
		}
		if l.Y[i]*l.Y[i-1] < 0 && math.Abs(l.Y[i]) >= l.Threshold {
			out = append(out, i)
		}
	}
	return out
}

// SetHighpoint moves the line's extremum to (xn, yn) via an independent
// y-move (scaling) and x-move (x-remap via a 2-D spline).
func (l *Line) SetHighpoint(xn, yn float64) error {
	xh, yh := l.Highpoint()

	if l.lowerSide() {
		yn = Clamp(yn, -0.5, -0.005)
	} else {
		yn = Clamp(yn, 0.005, 0.5)
	}
	xn = Clamp(xn, 0.1, 0.9)

	if !IsNull(yh) {
		scale := yn / yh
		for i := range l.Y {
			l.Y[i] *= scale
		}
	}

	if !IsClose(xn, xh, 1e-9) {
		if err := l.remapX(xh, xn); err != nil {
			return err
		}
	}
	l.invalidate()
	return nil
}

// remapX maps the highpoint location from xh to xn using a small cubic
// 2-D spline {0,xh,1} -> {0,xn,1}, then resamples y at the original x grid
// through an arccos-abscissa 1-D helper spline (to avoid LE oscillation).
func (l *Line) remapX(xh, xn float64) error {
	mapU := []float64{0, 0.5, 1}
	mapX := []float64{0, xh, 1}
	mapXn := []float64{0, xn, 1}
	mapSpline, err := NewSplineCubic(mapU, mapXn, NotAKnot)
	if err != nil {
		return WrapGeometryError(ErrNormalizationFailed, "highpoint x-remap spline failed", err)
	}
	srcSpline, err := NewSplineCubic(mapU, mapX, NotAKnot)
	if err != nil {
		return WrapGeometryError(ErrNormalizationFailed, "highpoint x-remap spline failed", err)
	}
	const nSample = 50
	xMapped := make([]float64, nSample)
	yMapped := make([]float64, nSample)
	helper, err := NewSplineCubic(l.X, l.Y, NotAKnot)
	if err != nil {
		return WrapGeometryError(ErrNormalizationFailed, "highpoint remap source spline failed", err)
	}
	for i := 0; i < nSample; i++ {
		theta := math.Pi * float64(i) / float64(nSample-1)
		u := (1 - math.Cos(theta)) / 2
		xOld := srcSpline.Eval(u, 0)
		xNew := mapSpline.Eval(u, 0)
		xMapped[i] = xNew
		yMapped[i] = helper.Eval(Clamp(xOld, l.X[0], l.X[len(l.X)-1]), 0)
	}
	for i := 1; i < nSample; i++ {
		if xMapped[i] <= xMapped[i-1] {
			xMapped[i] = xMapped[i-1] + 1e-9
		}
	}
	remapSpline, err := NewSplineCubic(xMapped, yMapped, NotAKnot)
	if err != nil {
		return WrapGeometryError(ErrNormalizationFailed, "highpoint remap resample spline failed", err)
	}
	y0, yEnd := l.Y[0], l.Y[len(l.Y)-1]
	for i, x := range l.X {
		l.Y[i] = remapSpline.Eval(Clamp(x, xMapped[0], xMapped[nSample-1]), 0)
	}
	l.Y[0] = y0
	l.Y[len(l.Y)-1] = yEnd
	return nil
}
