/*
 * geometric_test.go, part of gopatchy.
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
	"testing"

	v3 "github.com/rmera/gopatchy/v3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/exp/rand"
)

const comTol = 1e-9

//samePeriodic asserts that a and b are the same point in the box, up to comTol.
func samePeriodic(Te *testing.T, a, b, box []float64) {
	Te.Helper()
	for k := range box {
		assert.InDeltaf(Te, 0, v3.PBCDelta(a[k], b[k], box[k]), comTol, "axis %d: %v vs %v", k, a, b)
	}
}

func TestCOMSingle(Te *testing.T) {
	box := []float64{10, 12, 7}
	for _, p := range [][]float64{{0.5, 3, 6.9}, {0, 0, 0}, {9.99, 11.5, 3.5}} {
		pos, err := v3.NewMatrix(append([]float64(nil), p...))
		require.NoError(Te, err)
		com, err := PBCCenterOfMass(pos, box)
		require.NoError(Te, err)
		samePeriodic(Te, p, com, box)
		for k := range com {
			assert.True(Te, com[k] >= 0 && com[k] < box[k], "center of mass out of the box: %v", com)
		}
	}
}

func TestCOMAcrossBoundary(Te *testing.T) {
	box := []float64{10, 10, 10}
	pos, err := v3.NewMatrix([]float64{0.5, 5, 5, 9.5, 5, 5})
	require.NoError(Te, err)
	com, err := PBCCenterOfMass(pos, box)
	require.NoError(Te, err)
	//the arithmetic mean would be 5 in x.
	samePeriodic(Te, []float64{0, 5, 5}, com, box)
}

func TestCOMShift(Te *testing.T) {
	r := rand.New(rand.NewSource(7))
	box := []float64{8, 10, 13}
	n := 25
	pos := v3.Zeros(n)
	for i := 0; i < n; i++ {
		//a cluster, so the circular mean is well defined
		pos.SetVec(i, []float64{1 + 2*r.Float64(), 4 + 2*r.Float64(), 9 + 3*r.Float64()})
	}
	com, err := PBCCenterOfMass(pos, box)
	require.NoError(Te, err)
	for _, shift := range [][]float64{{0.5, 0.5, 0.5}, {7, -3, 11}, {-20.25, 9.9, 4}} {
		moved := pos.Clone()
		for i := 0; i < n; i++ {
			p := moved.Vec(i)
			for k := range p {
				p[k] = v3.Wrap(p[k]+shift[k], box[k])
			}
		}
		scom, err := PBCCenterOfMass(moved, box)
		require.NoError(Te, err)
		want := make([]float64, 3)
		for k := range want {
			want[k] = v3.Wrap(com[k]+shift[k], box[k])
		}
		samePeriodic(Te, want, scom, box)
	}
}

func TestCOMEmpty(Te *testing.T) {
	com, err := PBCCenterOfMass(v3.Zeros(0), []float64{10, 10, 10})
	require.NoError(Te, err)
	assert.Equal(Te, []float64{0, 0, 0}, com)
	_, err = PBCCenterOfMass(v3.Zeros(0), []float64{10, 10})
	assert.ErrorIs(Te, err, ErrDimension)
}

func TestRecenter(Te *testing.T) {
	box := []float64{10, 10, 10}
	pos, err := v3.NewMatrix([]float64{0.5, 5, 5, 9.5, 5, 5})
	require.NoError(Te, err)
	Recenter(pos, []float64{1, 5, 5}, box)
	assert.InDelta(Te, 9.5, pos.At(0, 0), comTol)
	assert.InDelta(Te, 8.5, pos.At(1, 0), comTol)
	assert.Equal(Te, 0.0, pos.At(0, 1))
}
