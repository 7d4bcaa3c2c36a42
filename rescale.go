/*
 * rescale.go, part of gopatchy.
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
	"log"
	"math"
)

// DefaultDensity is the number density used when it can't be inferred from the
// configuration (no particles and a box of zero volume).
const DefaultDensity = 0.1

//scaling factors this close to 1 are rounding noise, not growth or shrinking.
const scalingTolerance = 1e-12

// TargetDensity returns the number density to keep when count particles are added to
// a configuration of n particles in the given volume. An explicit density (> 0) is returned as
// it is. Otherwise, the current density is used if there are particles, and, for an empty
// configuration, the density that keeps the current volume, if it is not zero. DefaultDensity
// is the last resort.
func TargetDensity(n, count int, volume, density float64) float64 {
	switch {
	case density > 0:
		return density
	case n > 0:
		return float64(n) / volume
	case volume > 0:
		return float64(n+count) / volume
	default:
		return DefaultDensity
	}
}

// ScalingFactor returns the factor by which the volume must be multiplied so count particles
// can be added to the n in the given volume at the target density (see TargetDensity).
// The box is never shrunk: a factor smaller than 1 returns an error wrapping ErrInvalidShrink.
// With no particles at all the factor is 1.
func ScalingFactor(n, count int, volume, density float64) (float64, error) {
	if n+count == 0 {
		return 1, nil
	}
	rho := TargetDensity(n, count, volume, density)
	target := float64(n+count) / rho
	if volume == 0 {
		return math.Inf(1), nil
	}
	factor := target / volume
	if math.Abs(factor-1) <= scalingTolerance {
		factor = 1
	}
	if factor < 1 {
		return 0, newError(ErrInvalidShrink, "ScalingFactor", "Keeping a density of %g with %d particles would require the volume to shrink from %g to %g", rho, n+count, volume, target)
	}
	return factor, nil
}

// Rescale grows the box of C isotropically so count more particles fit at the target density
// (see TargetDensity), after moving the center of mass of the particles in C to the origin, and
// wrapping them into the box. The recentering uses the old box. A box of zero volume becomes a
// cube with the target volume. On error, C is not modified.
func Rescale(C *Conf, count int, density float64) error {
	if len(C.Box) != 3 {
		return newError(ErrDimension, "Rescale", "Box with %d sides", len(C.Box))
	}
	n := C.Len()
	volume := C.Volume()
	if n > 0 && volume <= 0 {
		return newError(ErrMalformed, "Rescale", "%d particles in a box of volume %g", n, volume)
	}
	factor, err := ScalingFactor(n, count, volume, density)
	if err != nil {
		return errDecorate(err, "Rescale")
	}
	com, err := PBCCenterOfMass(C.Pos, C.Box)
	if err != nil {
		return errDecorate(err, "Rescale")
	}
	Recenter(C.Pos, com, C.Box)
	old := append([]float64(nil), C.Box...)
	if volume == 0 {
		side := math.Cbrt(float64(n+count) / TargetDensity(n, count, volume, density))
		for i := range C.Box {
			C.Box[i] = side
		}
	} else if factor != 1 {
		s := math.Cbrt(factor)
		for i := range C.Box {
			C.Box[i] *= s
		}
	}
	log.Printf("Box rescaled from %v to %v", old, C.Box)
	return nil
}
