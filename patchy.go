/*
 * patchy.go, part of gopatchy.
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

	v3 "github.com/rmera/gopatchy/v3"
	"gonum.org/v1/gonum/floats"
)

const (
	//AuxLen is the number of auxiliary values per particle. They belong to the
	//simulator (velocities and angular momenta) and are zero for new particles.
	AuxLen = 6
	//ConfFields is the number of values in a particle line of a configuration.
	ConfFields = 3 + 3 + 3 + AuxLen
)

// Particle contains the data for one particle of a configuration:
// its position, the a1 and a3 vectors of its orientation frame, and the
// auxiliary values.
type Particle struct {
	Pos []float64
	A1  []float64
	A3  []float64
	Aux [AuxLen]float64
}

// A2 returns the second vector of the orientation frame, a1 x a3.
func (P *Particle) A2() []float64 {
	a2, err := v3.Cross(P.A1, P.A3)
	if err != nil {
		panic(err.Error())
	}
	return a2
}

// Conf is a configuration: a set of particles sharing an orthorhombic periodic box.
// Particles are kept in insertion order, which must be the order of the species in
// the companion Topology.
type Conf struct {
	Header string //timestep line, kept verbatim
	Energy string //energy line, kept verbatim
	Box    []float64
	Pos    *v3.Matrix
	A1     *v3.Matrix
	A3     *v3.Matrix
	Aux    [][AuxLen]float64
}

// NewConf returns a configuration with n zero-filled particles in the given box.
// The box slice is copied.
func NewConf(box []float64, n int) *Conf {
	C := new(Conf)
	C.Box = append([]float64(nil), box...)
	C.Pos = v3.Zeros(n)
	C.A1 = v3.Zeros(n)
	C.A3 = v3.Zeros(n)
	C.Aux = make([][AuxLen]float64, n)
	return C
}

// Len returns the number of particles in the configuration.
func (C *Conf) Len() int {
	return C.Pos.NVecs()
}

// Particle returns a copy of the ith particle.
func (C *Conf) Particle(i int) *Particle {
	P := new(Particle)
	P.Pos = append([]float64(nil), C.Pos.Vec(i)...)
	P.A1 = append([]float64(nil), C.A1.Vec(i)...)
	P.A3 = append([]float64(nil), C.A3.Vec(i)...)
	P.Aux = C.Aux[i]
	return P
}

// SetParticle copies P into the ith particle of the configuration.
func (C *Conf) SetParticle(i int, P *Particle) {
	C.Pos.SetVec(i, P.Pos)
	C.A1.SetVec(i, P.A1)
	C.A3.SetVec(i, P.A3)
	C.Aux[i] = P.Aux
}

// Copy returns a deep copy of the configuration.
func (C *Conf) Copy() *Conf {
	R := new(Conf)
	R.Header = C.Header
	R.Energy = C.Energy
	R.Box = append([]float64(nil), C.Box...)
	R.Pos = C.Pos.Clone()
	R.A1 = C.A1.Clone()
	R.A3 = C.A3.Clone()
	R.Aux = append([][AuxLen]float64(nil), C.Aux...)
	return R
}

// Extend appends the particles of B at the end of the receiver. The box
// of B is not used.
func (C *Conf) Extend(B *Conf) {
	C.Pos = v3.Append(C.Pos, B.Pos)
	C.A1 = v3.Append(C.A1, B.A1)
	C.A3 = v3.Append(C.A3, B.A3)
	C.Aux = append(C.Aux, B.Aux...)
}

// Volume returns the volume of the box.
func (C *Conf) Volume() float64 {
	if len(C.Box) == 0 {
		return 0
	}
	return floats.Prod(C.Box)
}

// Density returns the number density of the configuration, or 0
// for a zero volume.
func (C *Conf) Density() float64 {
	v := C.Volume()
	if v == 0 {
		return 0
	}
	return float64(C.Len()) / v
}

// Topology is the companion of a Conf: the species index of each particle,
// in the same order as the particles.
type Topology struct {
	NParticles int
	NSpecies   int
	Species    []int
	Extra      []string //lines after the species list, kept verbatim
}

// Copy returns a deep copy of the topology.
func (T *Topology) Copy() *Topology {
	R := new(Topology)
	*R = *T
	R.Species = append([]int(nil), T.Species...)
	R.Extra = append([]string(nil), T.Extra...)
	return R
}

// Grow returns a copy of the topology with count particles of species speciesID
// appended. The number of species is increased by one, as each growth stage
// is expected to introduce a new species.
func (T *Topology) Grow(count, speciesID int) *Topology {
	R := T.Copy()
	if len(R.Species) != R.NParticles {
		log.Printf("Topology declares %d particles but lists %d species indexes", R.NParticles, len(R.Species))
	}
	R.NParticles += count
	R.NSpecies++
	for i := 0; i < count; i++ {
		R.Species = append(R.Species, speciesID)
	}
	return R
}
