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
	"testing"
)

func sampledBump(n int, peak float64) (x, y []float64) {
	x = make([]float64, n)
	y = make([]float64, n)
	for i := 0; i < n; i++ {
		x[i] = float64(i) / float64(n-1)
		y[i] = peak * math.Sin(math.Pi*x[i])
	}
	return
}

func TestLineHighpointFindsPeak(t *testing.T) {
	x, y := sampledBump(41, 0.08)
	l := NewLine(LineThickness, x, y)
	xh, yh := l.Highpoint()
	if !IsClose(xh, 0.5, 0.05) {
		t.Errorf("xh: got %v want ~0.5", xh)
	}
	if !IsClose(yh, 0.08, 0.01) {
		t.Errorf("yh: got %v want ~0.08", yh)
	}
}

func TestLineHighpointCaches(t *testing.T) {
	x, y := sampledBump(41, 0.05)
	l := NewLine(LineCamber, x, y)
	xh1, yh1 := l.Highpoint()
	xh2, yh2 := l.Highpoint()
	if xh1 != xh2 || yh1 != yh2 {
		t.Errorf("cached highpoint changed: (%v,%v) -> (%v,%v)", xh1, yh1, xh2, yh2)
	}
}

func TestLineReversalsDetectsSignChange(t *testing.T) {
	x := []float64{0, 0.2, 0.4, 0.6, 0.8, 1}
	y := []float64{0, 0.2, -0.2, 0.2, -0.2, 0}
	l := NewLine(LineCurvature, x, y)
	revs := l.Reversals(0)
	if len(revs) == 0 {
		t.Error("expected reversals to be detected")
	}
}

func TestLineSetHighpointMovesPeak(t *testing.T) {
	x, y := sampledBump(41, 0.08)
	l := NewLine(LineThickness, x, y)
	if err := l.SetHighpoint(0.35, 0.1); err != nil {
		t.Fatal(err)
	}
	xh, yh := l.Highpoint()
	if !IsClose(xh, 0.35, 0.05) {
		t.Errorf("xh: got %v want ~0.35", xh)
	}
	if !IsClose(yh, 0.1, 0.02) {
		t.Errorf("yh: got %v want ~0.1", yh)
	}
	if !IsClose(l.Y[0], y[0], 1e-9) || !IsClose(l.Y[len(l.Y)-1], y[len(y)-1], 1e-9) {
		t.Error("endpoints should be preserved by the x-remap")
	}
}

func TestLineSetHighpointClampsLowerSideNegative(t *testing.T) {
	x, y := sampledBump(41, -0.05)
	l := NewLine(LineLower, x, y)
	if err := l.SetHighpoint(0.4, 10); err != nil {
		t.Fatal(err)
	}
	_, yh := l.Highpoint()
	if yh > -0.005 {
		t.Errorf("expected clamp to keep yh negative, got %v", yh)
	}
}
