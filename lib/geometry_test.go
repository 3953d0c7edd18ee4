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

// symmetricTestAirfoil builds a closed NACA-0012-like symmetric contour:
// TE(1,0) -> LE(0,0) along the upper surface, then LE -> TE along the
// lower surface, cosine-spaced, matching the on-disk point ordering the
// rest of the package assumes.
func symmetricTestAirfoil(nPerSide int) (x, y []float64) {
	half := func(xx float64) float64 {
		return 0.6 * (0.2969*math.Sqrt(xx) - 0.126*xx - 0.3516*xx*xx + 0.2843*xx*xx*xx - 0.1015*xx*xx*xx*xx)
	}
	xs := make([]float64, nPerSide)
	for i := 0; i < nPerSide; i++ {
		theta := math.Pi * float64(i) / float64(nPerSide-1)
		xs[i] = (1 - math.Cos(theta)) / 2
	}
	x = make([]float64, 0, 2*nPerSide-1)
	y = make([]float64, 0, 2*nPerSide-1)
	for i := nPerSide - 1; i >= 0; i-- {
		x = append(x, xs[i])
		y = append(y, half(xs[i]))
	}
	for i := 1; i < nPerSide; i++ {
		x = append(x, xs[i])
		y = append(y, -half(xs[i]))
	}
	return
}

func TestNewGeometryRejectsBadInput(t *testing.T) {
	if _, err := NewGeometry(StrategySplined, []float64{0, 1}, []float64{0, 1, 2}); err == nil {
		t.Error("expected error for mismatched lengths")
	}
	if _, err := NewGeometry(StrategySplined, []float64{0}, []float64{0}); err == nil {
		t.Error("expected error for too few points")
	}
	if _, err := NewGeometry(StrategySplined, []float64{0, math.NaN()}, []float64{0, 1}); err == nil {
		t.Error("expected error for NaN coordinate")
	}
}

func TestGeometryILeIsArgminX(t *testing.T) {
	x, y := symmetricTestAirfoil(20)
	g, err := NewGeometry(StrategySplined, x, y)
	if err != nil {
		t.Fatal(err)
	}
	if x[g.ILe()] != 0 {
		t.Errorf("ILe points at x=%v, want 0", x[g.ILe()])
	}
}

func TestGeometryUpperLowerThicknessCamberShapes(t *testing.T) {
	x, y := symmetricTestAirfoil(20)
	g, err := NewGeometry(StrategySplined, x, y)
	if err != nil {
		t.Fatal(err)
	}
	up, low := g.Upper(), g.Lower()
	if up.X[0] != 0 || low.X[0] != 0 {
		t.Errorf("upper/lower must start at LE: up=%v low=%v", up.X[0], low.X[0])
	}
	th, cb := g.Thickness(), g.Camber()
	for i := range cb.Y {
		if !IsClose(cb.Y[i], 0, 1e-6) {
			t.Errorf("symmetric airfoil should have zero camber at %d: %v", i, cb.Y[i])
		}
	}
	if th.Y[len(th.Y)-1] < 0 {
		t.Error("thickness should be non-negative")
	}
}

func TestGeometryNormalizeSatisfiesInvariants(t *testing.T) {
	x, y := symmetricTestAirfoil(30)
	g, err := NewGeometry(StrategySplined, x, y)
	if err != nil {
		t.Fatal(err)
	}
	if err := g.Normalize(); err != nil {
		t.Fatal(err)
	}
	if !g.IsNormalized() {
		t.Error("IsNormalized should be true after Normalize")
	}
	gx, gy := g.X(), g.Y()
	if !IsClose(gx[0], 1, 1e-6) || !IsClose(gx[len(gx)-1], 1, 1e-6) {
		t.Errorf("TE x should be 1 at both ends: %v .. %v", gx[0], gx[len(gx)-1])
	}
	if !IsClose(gx[g.ILe()], 0, 1e-9) || !IsClose(gy[g.ILe()], 0, 1e-9) {
		t.Errorf("LE should sit at origin: (%v,%v)", gx[g.ILe()], gy[g.ILe()])
	}
}

func TestGeometryNormalizeIsIdempotent(t *testing.T) {
	x, y := symmetricTestAirfoil(30)
	g, err := NewGeometry(StrategySplined, x, y)
	if err != nil {
		t.Fatal(err)
	}
	if err := g.Normalize(); err != nil {
		t.Fatal(err)
	}
	x1 := append([]float64{}, g.X()...)
	if err := g.Normalize(); err != nil {
		t.Fatal(err)
	}
	for i := range x1 {
		if !IsClose(x1[i], g.X()[i], 1e-9) {
			t.Errorf("re-normalizing changed x[%d]: %v -> %v", i, x1[i], g.X()[i])
			break
		}
	}
}

func TestGeometrySetTEGapChangesGap(t *testing.T) {
	x, y := symmetricTestAirfoil(30)
	g, err := NewGeometry(StrategySplined, x, y)
	if err != nil {
		t.Fatal(err)
	}
	if err := g.Normalize(); err != nil {
		t.Fatal(err)
	}
	if err := g.SetTEGap(0.02, 0.8); err != nil {
		t.Fatal(err)
	}
	gy := g.Y()
	gap := gy[0] - gy[len(gy)-1]
	if !IsClose(gap, 0.02, 1e-3) {
		t.Errorf("TE gap: got %v want ~0.02", gap)
	}
}

func TestGeometryRepanelChangesPointCount(t *testing.T) {
	x, y := symmetricTestAirfoil(30)
	g, err := NewGeometry(StrategySplined, x, y)
	if err != nil {
		t.Fatal(err)
	}
	if err := g.Normalize(); err != nil {
		t.Fatal(err)
	}
	if err := g.Repanel(RepanelFresh, 50, 50, 0.3, 0.3); err != nil {
		t.Fatal(err)
	}
	if got := len(g.X()); got != 101 {
		t.Errorf("got %d points, want 101", got)
	}
}

func TestGeometryRepanelRetainKeepsPointCount(t *testing.T) {
	x, y := symmetricTestAirfoil(30)
	g, err := NewGeometry(StrategySplined, x, y)
	if err != nil {
		t.Fatal(err)
	}
	if err := g.Normalize(); err != nil {
		t.Fatal(err)
	}
	before := len(g.X())
	if err := g.Repanel(RepanelRetain, 0, 0, 0, 0); err != nil {
		t.Fatal(err)
	}
	if got := len(g.X()); got != before {
		t.Errorf("retain mode changed point count: got %d want %d", got, before)
	}
	if !IsClose(g.X()[g.ILe()], 0, 1e-9) {
		t.Errorf("LE x not at origin after retain repanel: got %v", g.X()[g.ILe()])
	}
}

func TestGeometrySetHighpointOfRecordsDeltaFromInitPosition(t *testing.T) {
	x, y := symmetricTestAirfoil(30)
	g, err := NewGeometry(StrategySplined, x, y)
	if err != nil {
		t.Fatal(err)
	}
	if err := g.Normalize(); err != nil {
		t.Fatal(err)
	}
	xh, yh := g.Thickness().Highpoint()
	if err := g.SetHighpointOf(LineThickness, xh+0.05, yh*0.8); err != nil {
		t.Fatal(err)
	}
	label := g.Modifications()[ModMaxThickness]
	if label == "moved" || label == "unchanged" || label == "" {
		t.Errorf("expected a real delta label, got %q", label)
	}
}

func TestBlendHalfwayIsSymmetricBetweenInputs(t *testing.T) {
	x1, y1 := symmetricTestAirfoil(25)
	g1, err := NewGeometry(StrategySplined, x1, y1)
	if err != nil {
		t.Fatal(err)
	}
	x2, y2 := symmetricTestAirfoil(25)
	for i := range y2 {
		y2[i] *= 1.5
	}
	g2, err := NewGeometry(StrategySplined, x2, y2)
	if err != nil {
		t.Fatal(err)
	}
	blended, err := Blend(g1, g2, 0.5)
	if err != nil {
		t.Fatal(err)
	}
	th := blended.Thickness()
	_, peak := th.Highpoint()
	if peak <= 0 {
		t.Errorf("blended thickness should be positive, got %v", peak)
	}
}
