/*
 * options.go, part of gopatchy.
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

const (
	//DefaultMinDist is the default minimum distance between particles.
	DefaultMinDist = 1.5
	//DefaultMaxTries is the default number of rejected positions after
	//which the insertion of a particle is abandoned.
	DefaultMaxTries = 1000000
)

// GrowOptions contains the parameters for growing a configuration.
// Each method returns the current value of the option, and sets it if
// a valid value is given.
type GrowOptions struct {
	minDist     float64
	density     float64
	preserveBox bool
	maxTries    int
	seed        uint64
}

// DefaultGrowOptions returns a GrowOptions with the default options: a minimum distance of
// DefaultMinDist, the box preserved, DefaultMaxTries tries per particle, and a random seed
// taken from the clock.
func DefaultGrowOptions() *GrowOptions {
	ret := new(GrowOptions)
	ret.minDist = DefaultMinDist
	ret.preserveBox = true
	ret.maxTries = DefaultMaxTries
	return ret
}

// MinDist returns the minimum distance between any two particles after the
// growth and sets it, if a non-negative value is given.
func (o *GrowOptions) MinDist(dist ...float64) float64 {
	ret := o.minDist
	if len(dist) > 0 && dist[0] >= 0 {
		o.minDist = dist[0]
	}
	return ret
}

// Density returns the number density to be kept when the box is rescaled, and sets it if
// a non-negative value is given. 0 means that the density is inferred from the configuration.
func (o *GrowOptions) Density(density ...float64) float64 {
	ret := o.density
	if len(density) > 0 && density[0] >= 0 {
		o.density = density[0]
	}
	return ret
}

// PreserveBox returns whether the box is kept as it is (true) or rescaled to keep
// the density (false), and sets the value to the one given, if any.
func (o *GrowOptions) PreserveBox(preserve ...bool) bool {
	ret := o.preserveBox
	if len(preserve) > 0 {
		o.preserveBox = preserve[0]
	}
	return ret
}

// MaxTries returns the number of rejected positions after which the insertion of
// one particle fails, and sets it if a positive value is given.
func (o *GrowOptions) MaxTries(tries ...int) int {
	ret := o.maxTries
	if len(tries) > 0 && tries[0] > 0 {
		o.maxTries = tries[0]
	}
	return ret
}

// Seed returns the seed for the random number generator, and sets it, if given.
// A seed of 0 means that the seed is taken from the clock.
func (o *GrowOptions) Seed(seed ...uint64) uint64 {
	ret := o.seed
	if len(seed) > 0 {
		o.seed = seed[0]
	}
	return ret
}
