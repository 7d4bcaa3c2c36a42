/*
 * rescale_test.go, part of gopatchy.
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
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/exp/rand"
)

//gridConf returns a configuration with n particles on a line along the diagonal of a cubic box.
func gridConf(n int, side float64) *Conf {
	C := NewConf([]float64{side, side, side}, n)
	for i := 0; i < n; i++ {
		x := side * (float64(i) + 0.5) / float64(n)
		C.Pos.SetVec(i, []float64{x, x, x})
		C.A1.SetVec(i, []float64{1, 0, 0})
		C.A3.SetVec(i, []float64{0, 0, 1})
	}
	return C
}

func TestTargetDensity(Te *testing.T) {
	assert.Equal(Te, 0.5, TargetDensity(10, 5, 1000, 0.5))
	assert.Equal(Te, 0.01, TargetDensity(10, 5, 1000, 0))
	assert.Equal(Te, 0.005, TargetDensity(0, 5, 1000, 0))
	assert.Equal(Te, DefaultDensity, TargetDensity(0, 5, 0, 0))
}

func TestRescaleEmptyPresized(Te *testing.T) {
	C := NewConf([]float64{10, 10, 10}, 0)
	f, err := ScalingFactor(0, 5, C.Volume(), 0)
	require.NoError(Te, err)
	assert.Equal(Te, 1.0, f)
	require.NoError(Te, Rescale(C, 5, 0))
	assert.Equal(Te, []float64{10, 10, 10}, C.Box)
}

func TestRescaleKeepsDensity(Te *testing.T) {
	C := gridConf(10, 10)
	f, err := ScalingFactor(10, 10, C.Volume(), 0)
	require.NoError(Te, err)
	assert.InDelta(Te, 2, f, 1e-12)
	require.NoError(Te, Rescale(C, 10, 0))
	for _, side := range C.Box {
		assert.InDelta(Te, 10*math.Cbrt(2), side, 1e-9)
	}
	//recentered with the old box
	for i := 0; i < C.Len(); i++ {
		for _, v := range C.Pos.Vec(i) {
			assert.True(Te, v >= 0 && v < 10, "position %v out of the old box", C.Pos.Vec(i))
		}
	}
	assert.InDelta(Te, 0.01, float64(20)/C.Volume(), 1e-12)
}

func TestRescaleZeroVolume(Te *testing.T) {
	C := NewConf([]float64{0, 0, 0}, 0)
	require.NoError(Te, Rescale(C, 5, 0))
	for _, side := range C.Box {
		assert.InDelta(Te, math.Cbrt(50), side, 1e-12)
	}
	f, err := ScalingFactor(0, 0, 1000, 0)
	require.NoError(Te, err)
	assert.Equal(Te, 1.0, f)
	D := NewConf([]float64{0, 0, 0}, 0)
	require.NoError(Te, Rescale(D, 8, 1))
	assert.InDelta(Te, 2, D.Box[0], 1e-12)

	E := gridConf(3, 10)
	E.Box = []float64{0, 10, 10}
	assert.ErrorIs(Te, Rescale(E, 1, 0), ErrMalformed)
}

func TestRescaleShrink(Te *testing.T) {
	C := gridConf(10, 10)
	orig := C.Copy()
	err := Rescale(C, 10, 1)
	require.ErrorIs(Te, err, ErrInvalidShrink)
	assert.Equal(Te, orig.Box, C.Box)
	assert.Equal(Te, orig.Pos.RawMatrix().Data, C.Pos.RawMatrix().Data)
}

func TestRescaleNeverShrinks(Te *testing.T) {
	r := rand.New(rand.NewSource(42))
	for i := 0; i < 200; i++ {
		n := r.Intn(20)
		count := r.Intn(20)
		side := 1 + 20*r.Float64()
		density := 0.0
		if r.Intn(2) == 0 {
			density = 0.001 + r.Float64()
		}
		C := gridConf(n, side)
		C.Box[1] *= 1.5
		before := append([]float64(nil), C.Box...)
		target := float64(n+count) / TargetDensity(n, count, C.Volume(), density)
		err := Rescale(C, count, density)
		if target < C.Volume()*(1-scalingTolerance) {
			assert.ErrorIs(Te, err, ErrInvalidShrink)
			assert.Equal(Te, before, C.Box)
			continue
		}
		require.NoError(Te, err)
		for k := range before {
			assert.GreaterOrEqual(Te, C.Box[k], before[k])
		}
		assert.InDelta(Te, C.Box[0]/C.Box[1], before[0]/before[1], 1e-9, "the rescale must be isotropic")
	}
}
