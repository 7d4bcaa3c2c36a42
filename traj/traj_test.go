/*
 * traj_test.go, part of gopatchy.
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

package traj

import (
	"bytes"
	"io"
	"path/filepath"
	"strings"
	"testing"

	patchy "github.com/rmera/gopatchy"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func readTest(Te *testing.T) []*Frame {
	Te.Helper()
	r, err := Open("../test/traj.dat")
	require.NoError(Te, err)
	defer r.Close()
	frames, err := Read(r)
	require.NoError(Te, err)
	return frames
}

func TestRead(Te *testing.T) {
	frames := readTest(Te)
	require.Len(Te, frames, 3)
	assert.Equal(Te, "t = 1000", frames[1].Header)
	assert.Equal(Te, "b = 12 12 12", frames[2].Box)
	assert.Equal(Te, "E = -0.5 0.1 0.2", frames[1].Energy)
	assert.Equal(Te, []int{1, 2, 3}, []int{frames[0].Len(), frames[1].Len(), frames[2].Len()})
	assert.Equal(Te, 3, MaxLen(frames))
}

func TestNormalise(Te *testing.T) {
	frames := readTest(Te)
	//the largest frame is the last one
	assert.Equal(Te, 3, Normalise(frames))
	for _, f := range frames {
		assert.Equal(Te, 3, f.Len())
	}
	assert.Equal(Te, ZeroParticle, frames[0].Particles[2])
	assert.Len(Te, strings.Fields(ZeroParticle), patchy.ConfFields)

	var b bytes.Buffer
	require.NoError(Te, Write(&b, frames))
	again, err := Read(&b)
	require.NoError(Te, err)
	assert.Equal(Te, frames, again)
}

func TestReadMalformed(Te *testing.T) {
	_, err := Read(strings.NewReader("b = 1 1 1\nt = 0\n"))
	assert.ErrorIs(Te, err, patchy.ErrMalformed)
	frames, err := Read(strings.NewReader(""))
	require.NoError(Te, err)
	assert.Empty(Te, frames)
	assert.Equal(Te, 0, Normalise(frames))
}

func TestNormaliseFileCompressed(Te *testing.T) {
	dir := Te.TempDir()
	for _, ext := range []string{"", ".gz", ".zst"} {
		in := filepath.Join(dir, "in.dat"+ext)
		out := filepath.Join(dir, "out.dat"+ext)
		w, err := Create(in)
		require.NoError(Te, err)
		require.NoError(Te, Write(w, readTest(Te)))
		require.NoError(Te, w.Close())

		n, err := NormaliseFile(in, out)
		require.NoError(Te, err, ext)
		assert.Equal(Te, 3, n)

		r, err := Open(out)
		require.NoError(Te, err)
		text, err := io.ReadAll(r)
		require.NoError(Te, err)
		require.NoError(Te, r.Close())
		frames, err := Read(bytes.NewReader(text))
		require.NoError(Te, err)
		require.Len(Te, frames, 3)
		assert.Equal(Te, 3, frames[0].Len(), ext)
		assert.Equal(Te, 3, frames[1].Len(), ext)
	}
}
