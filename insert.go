/*
 * insert.go, part of gopatchy.
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
	"time"

	v3 "github.com/rmera/gopatchy/v3"
	"golang.org/x/exp/rand"
	"gonum.org/v1/gonum/stat/distuv"
)

// Inserter adds particles at random positions and with random orientations to
// configurations, keeping a minimum distance between all particles. An Inserter
// is not safe for concurrent use.
type Inserter struct {
	o   *GrowOptions
	src rand.Source
}

// NewInserter returns an Inserter that draws its random numbers from src. If src is nil,
// a source seeded with the seed in the options (or the clock, if that is 0) is used.
func NewInserter(src rand.Source, options ...*GrowOptions) *Inserter {
	I := new(Inserter)
	if len(options) > 0 && options[0] != nil {
		I.o = options[0]
	} else {
		I.o = DefaultGrowOptions()
	}
	if src == nil {
		seed := I.o.Seed()
		if seed == 0 {
			seed = uint64(time.Now().UnixNano())
		}
		src = rand.NewSource(seed)
	}
	I.src = src
	return I
}

//uniform returns a random number in [0,max)
func (I *Inserter) uniform(max float64) float64 {
	return distuv.Uniform{Min: 0, Max: max, Src: I.src}.Rand()
}

func (I *Inserter) randVec() []float64 {
	return []float64{I.uniform(1), I.uniform(1), I.uniform(1)}
}

// Insert returns a configuration, in the box of C, with count new particles. Each new particle
// is at a minimum-image distance of at least MinDist from every particle of C and from the
// previously inserted ones. C is not modified. If no room is found for a particle
// after MaxTries random positions, a *PlacementError is returned.
func (I *Inserter) Insert(C *Conf, count int) (*Conf, error) {
	if len(C.Box) != 3 {
		return nil, newError(ErrDimension, "Insert", "Box with %d sides", len(C.Box))
	}
	if count > 0 {
		for _, side := range C.Box {
			if side <= 0 {
				return nil, newError(ErrMalformed, "Insert", "Can't insert particles in a box with sides %v", C.Box)
			}
		}
	}
	n := C.Len()
	placed := v3.Zeros(n + count)
	if n > 0 {
		placed.Stack(C.Pos, v3.Zeros(0))
	}
	R := NewConf(C.Box, count)
	R.Header = C.Header
	R.Energy = C.Energy
	for i := 0; i < count; i++ {
		p, err := I.Place(C.Box, placed.View(0, n+i))
		if err != nil {
			if pe, ok := err.(*PlacementError); ok {
				pe.Particle = i
			}
			return nil, errDecorate(err, "Insert")
		}
		placed.SetVec(n+i, p)
		P := &Particle{Pos: p} //the auxiliary values stay zero.
		P.A1, P.A3 = I.Orientation()
		R.SetParticle(i, P)
	}
	return R, nil
}

// Place returns a random position in the box at a minimum-image distance of at
// least MinDist from all the positions in occupied. After MaxTries rejected
// positions, a *PlacementError is returned.
func (I *Inserter) Place(box []float64, occupied *v3.Matrix) ([]float64, error) {
	mindist := I.o.MinDist()
	maxtries := I.o.MaxTries()
	p := make([]float64, 3)
	tries := 0
	for {
		for k, side := range box {
			p[k] = v3.Wrap(I.uniform(side), side)
		}
		ok, err := farFromAll(p, occupied, box, mindist)
		if err != nil {
			return nil, errDecorate(err, "Place")
		}
		if ok {
			return p, nil
		}
		tries++
		if tries >= maxtries {
			return nil, &PlacementError{Tries: tries, MinDist: mindist, deco: []string{"Place"}}
		}
	}
}

//farFromAll returns true if p is at least mindist away from all the positions in occupied.
func farFromAll(p []float64, occupied *v3.Matrix, box []float64, mindist float64) (bool, error) {
	for j := 0; j < occupied.NVecs(); j++ {
		d, err := v3.Dist(p, occupied.Vec(j), box)
		if err != nil {
			return false, err
		}
		if d < mindist {
			return false, nil
		}
	}
	return true, nil
}

//cross products shorter than this are taken as collinear vectors.
const collinearTol = 1e-10

// Orientation returns the a1 and a3 vectors of a random orthonormal frame.
// a1 is a normalized vector with components drawn from [0,1), which is not
// uniform over the sphere. a3 is the normalized cross product of a1 with another
// such vector, which is drawn again in the unlikely case that it is collinear with a1.
func (I *Inserter) Orientation() (a1, a3 []float64) {
	var err error
	for {
		a1, err = v3.Unit(I.randVec())
		if err == nil {
			break
		}
	}
	for {
		c, err := v3.Cross(a1, I.randVec())
		if err != nil {
			panic(err.Error()) //can't happen, both vectors have 3 elements
		}
		if v3.Magnitude(c) < collinearTol {
			continue
		}
		a3, err = v3.Unit(c)
		if err != nil {
			panic(err.Error())
		}
		return a1, a3
	}
}
