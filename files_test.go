/*
 * files_test.go, part of gopatchy.
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
	"bytes"
	"errors"
	"os"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConfIO(Te *testing.T) {
	C, err := ConfRead("test/small.conf")
	require.NoError(Te, err)
	assert.Equal(Te, 4, C.Len())
	assert.Equal(Te, []float64{10, 10, 10}, C.Box)
	assert.Equal(Te, "t = 0", C.Header)
	assert.Equal(Te, "E = 0 0 0", C.Energy)
	P := C.Particle(2)
	assert.Equal(Te, []float64{5, 5, 5}, P.Pos)
	assert.Equal(Te, []float64{0, 1, 0}, P.A3)
	assert.Equal(Te, [AuxLen]float64{0.1, -0.2, 0.3, 0, 0, 0}, P.Aux)
	assert.Equal(Te, 2.0, C.Aux[3][5])

	var b bytes.Buffer
	require.NoError(Te, WriteConf(&b, C))
	orig, err := os.ReadFile("test/small.conf")
	require.NoError(Te, err)
	assert.Equal(Te, string(orig), b.String())
}

func TestConfEmpty(Te *testing.T) {
	C, err := ConfRead("test/empty.conf")
	require.NoError(Te, err)
	assert.Equal(Te, 0, C.Len())
	assert.Equal(Te, 1000.0, C.Volume())
	assert.Equal(Te, 0.0, C.Density())
}

func TestConfMalformed(Te *testing.T) {
	bad := map[string]string{
		"no box marker":    "t = 0\nx = 10 10 10\nE = 0\n",
		"short":            "t = 0\n",
		"negative side":    "t = 0\nb = 10 -1 10\nE = 0\n",
		"14 fields":        "t = 0\nb = 10 10 10\nE = 0\n1 1 1 1 0 0 0 0 1 0 0 0 0 0\n",
		"not a number":     "t = 0\nb = 10 10 10\nE = 0\n1 1 x 1 0 0 0 0 1 0 0 0 0 0 0\n",
		"box not a number": "t = 0\nb = 10 ten 10\nE = 0\n",
	}
	for name, text := range bad {
		_, err := ReadConf(strings.NewReader(text))
		assert.Truef(Te, errors.Is(err, ErrMalformed), "%s: expected a malformed input error, got %v", name, err)
	}
}

func TestConfNoEnergy(Te *testing.T) {
	C, err := ReadConf(strings.NewReader("t = 0\nb = 5 5 5\n"))
	require.NoError(Te, err)
	assert.Equal(Te, "", C.Energy)
	C.Extend(NewConf(C.Box, 2))
	var b bytes.Buffer
	require.NoError(Te, WriteConf(&b, C))
	D, err := ReadConf(&b)
	require.NoError(Te, err)
	assert.Equal(Te, 2, D.Len())
	assert.Equal(Te, DefaultEnergyLine, D.Energy)
}

func TestParseBox(Te *testing.T) {
	box, err := ParseBox("b = 1.5 2 3e1")
	require.NoError(Te, err)
	assert.Equal(Te, []float64{1.5, 2, 30}, box)
	_, err = ParseBox("box 1 2")
	assert.ErrorIs(Te, err, ErrMalformed)
	_, err = ParseBox("")
	assert.ErrorIs(Te, err, ErrMalformed)
}

func TestTopIO(Te *testing.T) {
	T, err := TopRead("test/small.top")
	require.NoError(Te, err)
	assert.Equal(Te, 4, T.NParticles)
	assert.Equal(Te, 1, T.NSpecies)
	assert.Equal(Te, []int{0, 0, 0, 0}, T.Species)
	G := T.Grow(3, 1)
	assert.Equal(Te, 7, G.NParticles)
	assert.Equal(Te, 2, G.NSpecies)
	assert.Equal(Te, []int{0, 0, 0, 0, 1, 1, 1}, G.Species)
	assert.Equal(Te, []int{0, 0, 0, 0}, T.Species, "the original topology must not change")
	var b bytes.Buffer
	require.NoError(Te, WriteTop(&b, G))
	assert.Equal(Te, "7 2\n0 0 0 0 1 1 1\n", b.String())

	_, err = ReadTop(strings.NewReader("4\n0 0 0 0\n"))
	assert.ErrorIs(Te, err, ErrMalformed)
	_, err = ReadTop(strings.NewReader("2 1\n0 a\n"))
	assert.ErrorIs(Te, err, ErrMalformed)
	_, err = ReadTop(strings.NewReader(""))
	assert.ErrorIs(Te, err, ErrMalformed)
}

func TestTopEmpty(Te *testing.T) {
	T, err := TopRead("test/empty.top")
	require.NoError(Te, err)
	assert.Equal(Te, 0, T.NParticles)
	G := T.Grow(2, 0)
	assert.Equal(Te, []int{0, 0}, G.Species)
	assert.Equal(Te, 1, G.NSpecies)
}

func TestErrorDecoration(Te *testing.T) {
	_, err := ConfRead("test/small.top")
	require.Error(Te, err)
	e, ok := err.(CError)
	require.True(Te, ok, "expected a CError, got %T", err)
	assert.Equal(Te, "test/small.top", e.FileName())
	assert.Contains(Te, e.Decorate(""), "ConfRead")
	assert.ErrorIs(Te, err, ErrMalformed)
}
