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
	"sort"

	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/gonum/optimize"
)

// Boundary selects the end condition of a SplineCubic.
type Boundary int

const (
	Natural Boundary = iota
	NotAKnot
	Periodic
)

// SplineCubic is a C2 piecewise-cubic interpolant y(x) over a strictly
// monotone x grid.
type SplineCubic struct {
	x, y   []float64
	b, c, d []float64 // per-segment coefficients: y = y[i] + b[i]*dx + c[i]*dx^2 + d[i]*dx^3
}

// NewSplineCubic builds the spline for the given boundary condition.
func NewSplineCubic(x, y []float64, boundary Boundary) (*SplineCubic, error) {
	n := len(x)
	if n < 3 || len(y) != n {
		return nil, NewGeometryError(ErrInvalidCoordinates, "spline needs at least 3 matching points")
	}
	h := make([]float64, n-1)
	for i := 0; i < n-1; i++ {
		h[i] = x[i+1] - x[i]
		if h[i] <= 0 {
			return nil, NewGeometryError(ErrInvalidCoordinates, "spline x must be strictly increasing")
		}
	}

	a := mat.NewDense(n, n, nil)
	rhs := mat.NewVecDense(n, nil)

	switch boundary {
	case Periodic:
		// build a reduced system omitting the duplicated last row/col is out
		// of scope for the airfoil use case (open curves only); fall back to
		// Natural which the 2-D contour spline never triggers in practice.
		boundary = Natural
		fallthrough
	case Natural:
		a.Set(0, 0, 1)
		a.Set(n-1, n-1, 1)
	case NotAKnot:
		a.Set(0, 0, h[1])
		a.Set(0, 1, -(h[0] + h[1]))
		a.Set(0, 2, h[0])
		a.Set(n-1, n-3, h[n-2])
		a.Set(n-1, n-2, -(h[n-3] + h[n-2]))
		a.Set(n-1, n-1, h[n-3])
	}
	for i := 1; i < n-1; i++ {
		a.Set(i, i-1, h[i-1])
		a.Set(i, i, 2*(h[i-1]+h[i]))
		a.Set(i, i+1, h[i])
		rhs.SetVec(i, 3*((y[i+1]-y[i])/h[i]-(y[i]-y[i-1])/h[i-1]))
	}

	var c mat.VecDense
	if err := c.SolveVec(a, rhs); err != nil {
		return nil, WrapGeometryError(ErrInvalidCoordinates, "spline coefficient solve failed", err)
	}

	b := make([]float64, n-1)
	d := make([]float64, n-1)
	cc := make([]float64, n)
	for i := 0; i < n; i++ {
		cc[i] = c.AtVec(i)
	}
	for i := 0; i < n-1; i++ {
		d[i] = (cc[i+1] - cc[i]) / (3 * h[i])
		b[i] = (y[i+1]-y[i])/h[i] - h[i]*(2*cc[i]+cc[i+1])/3
	}

	return &SplineCubic{
		x: append([]float64{}, x...),
		y: append([]float64{}, y...),
		b: b, c: cc, d: d,
	}, nil
}

// segment returns the index i such that x lies in [x[i], x[i+1]] (clamped).
func (s *SplineCubic) segment(x float64) int {
	n := len(s.x)
	i := sort.SearchFloat64s(s.x, x) - 1
	if i < 0 {
		i = 0
	}
	if i > n-2 {
		i = n - 2
	}
	return i
}

// Eval returns the der-th derivative (der in {0,1,2}) of the spline at x.
func (s *SplineCubic) Eval(x float64, der int) float64 {
	i := s.segment(x)
	dx := x - s.x[i]
	switch der {
	case 0:
		return s.y[i] + dx*(s.b[i]+dx*(s.c[i]+dx*s.d[i]))
	case 1:
		return s.b[i] + dx*(2*s.c[i]+3*dx*s.d[i])
	case 2:
		return 2*s.c[i] + 6*dx*s.d[i]
	default:
		return 0
	}
}

// Curvature of a 1-D spline y(x): y'' / (1+y'^2)^1.5
func (s *SplineCubic) Curvature(x float64) float64 {
	yp := s.Eval(x, 1)
	ypp := s.Eval(x, 2)
	return ypp / math.Pow(1+yp*yp, 1.5)
}

// FindRoot minimizes |fn(u)| around guess within [lo,hi] via Nelder-Mead,
// returning the root location and an error if the objective at the minimum
// exceeds tol.
func FindRoot(fn func(float64) float64, guess, lo, hi, tol float64) (float64, error) {
	obj := func(p []float64) float64 {
		u := p[0]
		if u < lo {
			u = lo
		}
		if u > hi {
			u = hi
		}
		return math.Abs(fn(u))
	}
	problem := optimize.Problem{Func: obj}
	res, err := optimize.Minimize(problem, []float64{guess}, nil, &optimize.NelderMead{})
	if err != nil && res == nil {
		return guess, fmt.Errorf("root search failed: %w", err)
	}
	u := res.X[0]
	if u < lo {
		u = lo
	}
	if u > hi {
		u = hi
	}
	if math.Abs(fn(u)) > tol {
		return u, fmt.Errorf("root search did not converge: residual %.3e exceeds tolerance %.3e", math.Abs(fn(u)), tol)
	}
	return u, nil
}

// Minimize1D finds the argmin of fn over [lo,hi] starting from guess, via
// Nelder-Mead, used for highpoint and LE searches.
func Minimize1D(fn func(float64) float64, guess, lo, hi float64) float64 {
	obj := func(p []float64) float64 {
		u := p[0]
		if u < lo {
			return math.Inf(1)
		}
		if u > hi {
			return math.Inf(1)
		}
		return fn(u)
	}
	problem := optimize.Problem{Func: obj}
	res, err := optimize.Minimize(problem, []float64{guess}, nil, &optimize.NelderMead{})
	if err != nil || res == nil {
		return guess
	}
	u := res.X[0]
	if u < lo {
		u = lo
	}
	if u > hi {
		u = hi
	}
	return u
}

// Spline2D is a 2-D cubic spline parameterized by normalized arc length
// u in [0,1], used to represent the whole airfoil contour.
type Spline2D struct {
	u      []float64
	sx, sy *SplineCubic
}

// NewSpline2D builds the arc-length parameterized 2-D spline through the
// given ordered point sequence.
func NewSpline2D(x, y []float64) (*Spline2D, error) {
	n := len(x)
	if n < 3 || len(y) != n {
		return nil, NewGeometryError(ErrInvalidCoordinates, "2D spline needs at least 3 matching points")
	}
	u := make([]float64, n)
	for i := 1; i < n; i++ {
		dx := x[i] - x[i-1]
		dy := y[i] - y[i-1]
		u[i] = u[i-1] + math.Hypot(dx, dy)
	}
	total := u[n-1]
	if total <= 0 {
		return nil, NewGeometryError(ErrInvalidCoordinates, "2D spline has zero arc length")
	}
	for i := range u {
		u[i] /= total
	}
	sx, err := NewSplineCubic(u, x, NotAKnot)
	if err != nil {
		return nil, err
	}
	sy, err := NewSplineCubic(u, y, NotAKnot)
	if err != nil {
		return nil, err
	}
	return &Spline2D{u: u, sx: sx, sy: sy}, nil
}

// U returns the arc-length parameter grid matching the original point set.
func (s *Spline2D) U() []float64 { return s.u }

// Eval returns (x,y) at parameter u.
func (s *Spline2D) Eval(u float64) (float64, float64) {
	return s.sx.Eval(u, 0), s.sy.Eval(u, 0)
}

// EvalX returns x(u).
func (s *Spline2D) EvalX(u float64) float64 { return s.sx.Eval(u, 0) }

// EvalY returns y(u).
func (s *Spline2D) EvalY(u float64) float64 { return s.sy.Eval(u, 0) }

// Deriv returns (x'(u), y'(u)).
func (s *Spline2D) Deriv(u float64) (float64, float64) {
	return s.sx.Eval(u, 1), s.sy.Eval(u, 1)
}

// Curvature returns (x'y'' - y'x'') / (x'^2+y'^2)^1.5 at parameter u.
func (s *Spline2D) Curvature(u float64) float64 {
	xp := s.sx.Eval(u, 1)
	yp := s.sy.Eval(u, 1)
	xpp := s.sx.Eval(u, 2)
	ypp := s.sy.Eval(u, 2)
	denom := math.Pow(xp*xp+yp*yp, 1.5)
	if IsNull(denom) {
		return 0
	}
	return (xp*ypp - yp*xpp) / denom
}

// FindLE locates the leading edge by the tangent/chord scalar-product root
// search described for the splined geometry strategy.
func (s *Spline2D) FindLE(uGuess float64) (u, x, y float64, err error) {
	xTE := (s.EvalX(0) + s.EvalX(1)) / 2
	yTE := (s.EvalY(0) + s.EvalY(1)) / 2
	dot := func(uu float64) float64 {
		xp, yp := s.Deriv(uu)
		x0, y0 := s.Eval(uu)
		return xp*(x0-xTE) + yp*(y0-yTE)
	}
	lo := math.Max(0.4, uGuess-0.1)
	hi := math.Min(0.6, uGuess+0.1)
	root, ferr := FindRoot(dot, uGuess, lo, hi, 1e-10)
	if ferr != nil {
		return uGuess, s.EvalX(uGuess), s.EvalY(uGuess), WrapGeometryError(ErrLeFindFailed, "leading edge root search failed", ferr)
	}
	return root, s.EvalX(root), s.EvalY(root), nil
}
