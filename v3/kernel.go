/*
 * kernel.go, part of gopatchy.
 *
 * Copyright 2024 The gopatchy Authors
 *
 * This program is free software; you can redistribute it and/or modify
 * it under the terms of the GNU Lesser General Public License as
 * published by the Free Software Foundation; either version 2.1 of the
 * License, or (at your option) any later version.
 *
 * This program is distributed in the hope that it will be useful,
 * but WITHOUT ANY WARRANTY; without even the implied warranty of
 * MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
 * GNU General Public License for more details.
 *
 * You should have received a copy of the GNU Lesser General
 * Public License along with this program.  If not, see
 * <http://www.gnu.org/licenses/>.
 *
 */

package v3

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/floats"
)

// Wrap returns x folded into [0, side). Negative values wrap around,
// as with a floored modulo.
func Wrap(x, side float64) float64 {
	r := math.Mod(x, side)
	if r < 0 {
		r += side
	}
	//r+side can round up to side for tiny negative r.
	if r >= side {
		r = 0
	}
	return r
}

// PBCDelta returns the minimum-image separation between the coordinates a and b
// on a periodic axis of length side. side must be positive.
func PBCDelta(a, b, side float64) float64 {
	delta := math.Abs(Wrap(a, side) - Wrap(b, side))
	return math.Min(delta, side-delta)
}

// Dist returns the euclidean distance between p and q. If a box is given,
// the distance is computed using the minimum-image convention for
// an orthorhombic periodic box with those sides.
func Dist(p, q []float64, box ...[]float64) (float64, error) {
	if len(p) != len(q) {
		return 0, Error{fmt.Sprintf("Vectors not the same length: %d and %d", len(p), len(q)), []string{"Dist"}, true, ErrDimension}
	}
	if len(box) == 0 || box[0] == nil {
		return floats.Distance(p, q, 2), nil
	}
	b := box[0]
	if len(b) != len(p) {
		return 0, Error{fmt.Sprintf("Box of dimension %d for vectors of length %d", len(b), len(p)), []string{"Dist"}, true, ErrDimension}
	}
	var sq float64
	for i := range p {
		d := PBCDelta(p[i], q[i], b[i])
		sq += d * d
	}
	return math.Sqrt(sq), nil
}

// Magnitude returns the euclidean norm of p.
func Magnitude(p []float64) float64 {
	return floats.Norm(p, 2)
}

// Unit returns p scaled to unit length. A zero vector can't be
// normalized, and an error wrapping ErrZeroVector is returned.
func Unit(p []float64) ([]float64, error) {
	length := Magnitude(p)
	if length == 0 || math.IsNaN(length) {
		return nil, Error{"Can't normalize a zero vector", []string{"Unit"}, false, ErrZeroVector}
	}
	return ScalarDiv(p, length), nil
}

// Cross returns the cross product between the 3D vectors p and q.
func Cross(p, q []float64) ([]float64, error) {
	if len(p) != 3 || len(q) != 3 {
		return nil, Error{fmt.Sprintf("Vectors not of length 3: %d and %d", len(p), len(q)), []string{"Cross"}, true, ErrDimension}
	}
	return []float64{
		p[1]*q[2] - p[2]*q[1],
		p[2]*q[0] - p[0]*q[2],
		p[0]*q[1] - p[1]*q[0],
	}, nil
}

// Dot returns the dot product of p and q.
func Dot(p, q []float64) (float64, error) {
	if len(p) != len(q) {
		return 0, Error{fmt.Sprintf("Vectors not the same length: %d and %d", len(p), len(q)), []string{"Dot"}, true, ErrDimension}
	}
	return floats.Dot(p, q), nil
}

// Add returns the elementwise sum of p and q.
func Add(p, q []float64) ([]float64, error) {
	if len(p) != len(q) {
		return nil, Error{fmt.Sprintf("Vectors not the same length: %d and %d", len(p), len(q)), []string{"Add"}, true, ErrDimension}
	}
	return floats.AddTo(make([]float64, len(p)), p, q), nil
}

// ScalarDiv returns a new vector with each element of p divided by s.
func ScalarDiv(p []float64, s float64) []float64 {
	ret := make([]float64, len(p))
	for i, v := range p {
		ret[i] = v / s
	}
	return ret
}
