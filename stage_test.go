/*
 * stage_test.go, part of gopatchy.
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
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func copyFile(Te *testing.T, src, dst string) {
	Te.Helper()
	b, err := os.ReadFile(src)
	require.NoError(Te, err)
	require.NoError(Te, os.WriteFile(dst, b, 0644))
}

func TestSubstitute(Te *testing.T) {
	var b strings.Builder
	err := Substitute(&b, strings.NewReader("a [stage] b [nSteps]\n[stage]/x\nno newline [nSteps]"), "s1", "1e5")
	require.NoError(Te, err)
	assert.Equal(Te, "a s1 b 1e5\ns1/x\nno newline 1e5", b.String())
}

func TestGrowFiles(Te *testing.T) {
	dir := Te.TempDir()
	copyFile(Te, "test/small.top", filepath.Join(dir, "start.top"))
	copyFile(Te, "test/small.conf", filepath.Join(dir, "start.conf"))
	copyFile(Te, "test/input.template", filepath.Join(dir, "input"))
	o := DefaultGrowOptions()
	o.Seed(3)
	files := StageFiles{
		Top:   filepath.Join(dir, "start.top"),
		Conf:  filepath.Join(dir, "start.conf"),
		Stage: filepath.Join(dir, "stage1"),
		Input: filepath.Join(dir, "input"),
		Steps: "100000",
	}
	require.NoError(Te, GrowFiles(files, 8, 1, o))

	T, err := TopRead(filepath.Join(dir, "stage1", StageTopName))
	require.NoError(Te, err)
	assert.Equal(Te, 12, T.NParticles)
	assert.Equal(Te, 2, T.NSpecies)
	C, err := ConfRead(filepath.Join(dir, "stage1", StageConfName))
	require.NoError(Te, err)
	assert.Equal(Te, 12, C.Len())
	assert.Equal(Te, []float64{10, 10, 10}, C.Box)
	assert.Equal(Te, "E = 0 0 0", C.Energy)

	in, err := os.ReadFile(filepath.Join(dir, "input_stage1"))
	require.NoError(Te, err)
	assert.Contains(Te, string(in), "steps = 100000\n")
	assert.Contains(Te, string(in), "conf_file = stage1/init.conf\n")
	assert.NotContains(Te, string(in), "[stage]")
}

func TestGrowFilesNoPartialWrite(Te *testing.T) {
	dir := Te.TempDir()
	o := DefaultGrowOptions()
	o.MinDist(100)
	o.MaxTries(5)
	files := StageFiles{
		Top:   "test/small.top",
		Conf:  "test/small.conf",
		Stage: filepath.Join(dir, "stage1"),
		Input: "test/input.template",
		Steps: "10",
	}
	err := GrowFiles(files, 1, 1, o)
	assert.ErrorIs(Te, err, ErrPlacementExhausted)
	_, err = os.Stat(files.Stage)
	assert.True(Te, os.IsNotExist(err))
}
