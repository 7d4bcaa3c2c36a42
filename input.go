/*
 * input.go, part of gopatchy.
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
	"bufio"
	"io"
	"os"
	"path/filepath"
	"strings"
)

// Placeholders replaced in the simulator's run-input templates.
const (
	StagePlaceholder = "[stage]"
	StepsPlaceholder = "[nSteps]"
)

// Substitute copies the template in r to w, replacing the stage placeholder
// with stage and then the steps placeholder with nsteps, line by line.
func Substitute(w io.Writer, r io.Reader, stage, nsteps string) error {
	in := bufio.NewReader(r)
	out := bufio.NewWriter(w)
	for {
		line, err := in.ReadString('\n')
		if line != "" {
			line = strings.ReplaceAll(line, StagePlaceholder, stage)
			line = strings.ReplaceAll(line, StepsPlaceholder, nsteps)
			if _, werr := out.WriteString(line); werr != nil {
				return errDecorate(werr, "Substitute")
			}
		}
		if err == io.EOF {
			break
		}
		if err != nil {
			return errDecorate(err, "Substitute")
		}
	}
	if err := out.Flush(); err != nil {
		return errDecorate(err, "Substitute")
	}
	return nil
}

// InputWrite fills the run-input template in the file inputname for the given stage
// directory and number of steps. The stage is written relative to the directory of the
// template, and the result is written next to the template, as input_<stage>.
// Returns the name of the written file.
func InputWrite(inputname, stagepath, nsteps string) (string, error) {
	dir := filepath.Dir(inputname)
	rel, err := filepath.Rel(dir, stagepath)
	if err != nil {
		return "", errDecorate(err, "InputWrite")
	}
	in, err := os.Open(inputname)
	if err != nil {
		return "", err
	}
	defer in.Close()
	outname := filepath.Join(dir, "input_"+rel)
	out, err := os.Create(outname)
	if err != nil {
		return "", err
	}
	if err = Substitute(out, in, rel, nsteps); err != nil {
		out.Close()
		return "", errDecorate(err, "InputWrite")
	}
	return outname, out.Close()
}
