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
	"math"
	"sort"
)

// OperatingPoint is one row of a polar.
type OperatingPoint struct {
	Alpha, Cl, Cd, Cdp, Cm float64
	Xtrt, Xtrb             float64
	HasBubble              bool
	BubbleTopX0, BubbleTopX1 float64
	BubbleBotX0, BubbleBotX1 float64
}

// Channel names a polar-derived variable axis.
type Channel int

const (
	ChAlpha Channel = iota
	ChCl
	ChCd
	ChCdp
	ChCdf
	ChCm
	ChXtrt
	ChXtrb
	ChXtr
	ChGlide
	ChSink
	ChReCalc
)

// Polar is a PolarDefinition plus, after generation, its operating points.
// A Polar is "loaded" once it has at least one point or a recorded error.
type Polar struct {
	Def    *PolarDefinition
	Points []OperatingPoint

	IsLoaded    bool
	IsActive    bool
	ErrorReason string

	airfoilName string
}

// NewPolar wraps a definition; the polar starts unloaded and active.
func NewPolar(airfoilName string, def *PolarDefinition) *Polar {
	return &Polar{Def: def, IsActive: true, airfoilName: airfoilName}
}

// MarkError records a generation/load failure; the polar counts as loaded
// (with zero points) so PolarSet bookkeeping and the UI can render it.
func (p *Polar) MarkError(reason string) {
	p.ErrorReason = reason
	p.IsLoaded = true
}

// channelValue extracts one channel's value from an operating point given
// its Reynolds number (needed for re_calc).
func channelValue(op OperatingPoint, re float64, ch Channel) float64 {
	switch ch {
	case ChAlpha:
		return op.Alpha
	case ChCl:
		return op.Cl
	case ChCd:
		return op.Cd
	case ChCdp:
		return op.Cdp
	case ChCdf:
		return op.Cd - op.Cdp
	case ChCm:
		return op.Cm
	case ChXtrt:
		return op.Xtrt
	case ChXtrb:
		return op.Xtrb
	case ChXtr:
		return (op.Xtrt + op.Xtrb) / 2
	case ChGlide:
		if IsNull(op.Cd) {
			return 0
		}
		return op.Cl / op.Cd
	case ChSink:
		if IsNull(op.Cd) || op.Cl < 0 {
			return 0
		}
		return math.Pow(op.Cl, 1.5) / op.Cd
	case ChReCalc:
		if op.Cl <= 0 {
			return 0
		}
		return re / math.Sqrt(op.Cl)
	default:
		return 0
	}
}

// OfVars returns (x[], y[]) for the given axis pair, trimming leading
// entries with sink<=0 when either axis is sink.
func (p *Polar) OfVars(xVar, yVar Channel) ([]float64, []float64) {
	xs := make([]float64, 0, len(p.Points))
	ys := make([]float64, 0, len(p.Points))
	leading := true
	for _, op := range p.Points {
		xv := channelValue(op, p.Def.Re, xVar)
		yv := channelValue(op, p.Def.Re, yVar)
		if leading && ((xVar == ChSink && xv <= 0) || (yVar == ChSink && yv <= 0)) {
			continue
		}
		leading = false
		xs = append(xs, xv)
		ys = append(ys, yv)
	}
	return xs, ys
}

// GetInterpolated bisects x[] and linearly interpolates y at xVal. Returns
// ok=false if xVal lies outside the polar range and allowOutside is false.
// cd is rounded to 5 dp, every other channel to 3 dp.
func (p *Polar) GetInterpolated(xVar Channel, xVal float64, yVar Channel, allowOutside bool) (float64, bool) {
	xs, ys := p.OfVars(xVar, yVar)
	if len(xs) < 2 {
		return 0, false
	}
	asc := xs[0] < xs[len(xs)-1]
	if asc {
		if (xVal < xs[0] || xVal > xs[len(xs)-1]) && !allowOutside {
			return 0, false
		}
	} else {
		if (xVal > xs[0] || xVal < xs[len(xs)-1]) && !allowOutside {
			return 0, false
		}
	}
	i := bisectIndex(xs, xVal, asc)
	y := interpAt(xs, ys, xVal, i)
	if yVar == ChCd {
		return RoundDP(y, 5), true
	}
	return RoundDP(y, 3), true
}

func bisectIndex(xs []float64, xVal float64, asc bool) int {
	if asc {
		i := sort.SearchFloat64s(xs, xVal)
		if i == 0 {
			i = 1
		}
		if i >= len(xs) {
			i = len(xs) - 1
		}
		return i
	}
	// descending: search the reversed view
	n := len(xs)
	rev := make([]float64, n)
	for i, v := range xs {
		rev[n-1-i] = v
	}
	i := sort.SearchFloat64s(rev, xVal)
	if i == 0 {
		i = 1
	}
	if i >= n {
		i = n - 1
	}
	return n - i
}

func interpAt(xs, ys []float64, xVal float64, i int) float64 {
	if i <= 0 {
		i = 1
	}
	if i >= len(xs) {
		i = len(xs) - 1
	}
	x0, x1 := xs[i-1], xs[i]
	y0, y1 := ys[i-1], ys[i]
	if IsClose(x1, x0, 1e-15) {
		return y0
	}
	t := (xVal - x0) / (x1 - x0)
	return y0 + t*(y1-y0)
}

// GetInterpolatedPoint returns a full operating point with every channel
// interpolated at xVar=xVal. Fails if any channel is out of range.
func (p *Polar) GetInterpolatedPoint(xVar Channel, xVal float64) (OperatingPoint, bool) {
	var out OperatingPoint
	chans := []Channel{ChAlpha, ChCl, ChCd, ChCdp, ChCm, ChXtrt, ChXtrb}
	vals := make(map[Channel]float64)
	for _, ch := range chans {
		if ch == xVar {
			vals[ch] = xVal
			continue
		}
		v, ok := p.GetInterpolated(xVar, xVal, ch, false)
		if !ok {
			return out, false
		}
		vals[ch] = v
	}
	out.Alpha = vals[ChAlpha]
	out.Cl = vals[ChCl]
	out.Cd = vals[ChCd]
	out.Cdp = vals[ChCdp]
	out.Cm = vals[ChCm]
	out.Xtrt = vals[ChXtrt]
	out.Xtrb = vals[ChXtrb]
	return out, true
}

// IsEqualTo reports whether two polars are equal by definition, ignoring
// the active flag.
func (p *Polar) IsEqualTo(o *Polar) bool {
	return p.Def.Compat() == o.Def.Compat() && IsClose(p.Def.Re, o.Def.Re, 1e-6) && IsClose(p.Def.Mach, o.Def.Mach, 1e-6)
}
