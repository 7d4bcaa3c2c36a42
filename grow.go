/*
 * grow.go, part of gopatchy.
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
)

// Grow returns a new topology and configuration with count particles of species speciesID
// added to T and C. Unless the options ask to preserve the box, the box is first grown to
// keep the density (see Rescale). The new particles are placed at random with random
// orientations, at least MinDist away from any other particle (see Inserter).
// T and C are not modified, also when an error is returned.
func Grow(T *Topology, C *Conf, count, speciesID int, options ...*GrowOptions) (*Topology, *Conf, error) {
	return GrowWith(nil, T, C, count, speciesID, options...)
}

// GrowWith is like Grow, but the new particles are placed by the given Inserter.
// If I is nil, a new one is created from the options.
func GrowWith(I *Inserter, T *Topology, C *Conf, count, speciesID int, options ...*GrowOptions) (*Topology, *Conf, error) {
	var o *GrowOptions
	if len(options) > 0 && options[0] != nil {
		o = options[0]
	} else {
		o = DefaultGrowOptions()
	}
	if count < 0 {
		return nil, nil, newError(ErrDimension, "Grow", "Can't add a negative number of particles (%d)", count)
	}
	if T.NParticles != C.Len() {
		log.Printf("Topology has %d particles but the configuration has %d", T.NParticles, C.Len())
	}
	work := C.Copy()
	if !o.PreserveBox() {
		if err := Rescale(work, count, o.Density()); err != nil {
			return nil, nil, errDecorate(err, "Grow")
		}
	}
	if I == nil {
		I = NewInserter(nil, o)
	}
	added, err := I.Insert(work, count)
	if err != nil {
		return nil, nil, errDecorate(err, "Grow")
	}
	work.Extend(added)
	return T.Grow(count, speciesID), work, nil
}
