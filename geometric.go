/*
 * geometric.go, part of gopatchy.
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

package patchy

import (
	"math"

	v3 "github.com/rmera/gopatchy/v3"
	"gonum.org/v1/gonum/stat"
)

// PBCCenterOfMass returns the center of mass of the positions in pos, for an orthorhombic
// periodic box with the given sides. All particles have the same mass.
// Each axis is treated as a circle: coordinates are mapped to angles, and the center is
// the circular mean of those angles mapped back to [0, L), so particles that straddle the
// periodic boundary are not averaged to the middle of the box. The center of mass of an
// empty set is the zero vector.
func PBCCenterOfMass(pos *v3.Matrix, box []float64) ([]float64, error) {
	if len(box) != 3 {
		return nil, newError(ErrDimension, "PBCCenterOfMass", "Box with %d sides", len(box))
	}
	com := make([]float64, 3)
	n := pos.NVecs()
	if n == 0 {
		return com, nil
	}
	cos := make([]float64, n)
	sin := make([]float64, n)
	for k, L := range box {
		for i := 0; i < n; i++ {
			theta := 2 * math.Pi * pos.At(i, k) / L
			cos[i] = math.Cos(theta)
			sin[i] = math.Sin(theta)
		}
		mcos := stat.Mean(cos, nil)
		msin := stat.Mean(sin, nil)
		//rounding can land exactly on L
		com[k] = v3.Wrap(L/(2*math.Pi)*(math.Atan2(-msin, -mcos)+math.Pi), L)
	}
	return com, nil
}

// Recenter moves every position in pos by -com, and wraps the result into the box.
func Recenter(pos *v3.Matrix, com, box []float64) {
	for i := 0; i < pos.NVecs(); i++ {
		p := pos.Vec(i)
		for k := range p {
			p[k] = v3.Wrap(p[k]-com[k], box[k])
		}
	}
}
