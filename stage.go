/*
 * stage.go, part of gopatchy.
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
)

// Names of the files written in each stage directory.
const (
	StageTopName  = "init.top"
	StageConfName = "init.conf"
)

// StageFiles contains the paths needed to prepare a growth stage of a simulation.
type StageFiles struct {
	Top   string //topology to grow from
	Conf  string //configuration to grow from
	Stage string //directory for the new stage, created if needed
	Input string //run-input template
	Steps string //number of steps, replaced verbatim in the template
}

// GrowFiles reads the topology and configuration in files, adds count particles of the
// species speciesID (see Grow), and writes the results as init.top and init.conf in the
// stage directory. It then writes the run input for the stage from the template (see
// InputWrite). Nothing is written if the growth fails.
func GrowFiles(files StageFiles, count, speciesID int, options ...*GrowOptions) error {
	T, err := TopRead(files.Top)
	if err != nil {
		return errDecorate(err, "GrowFiles")
	}
	C, err := ConfRead(files.Conf)
	if err != nil {
		return errDecorate(err, "GrowFiles")
	}
	T, C, err = Grow(T, C, count, speciesID, options...)
	if err != nil {
		return errDecorate(err, "GrowFiles")
	}
	if err = os.MkdirAll(files.Stage, 0755); err != nil {
		return err
	}
	if err = TopWrite(T, filepath.Join(files.Stage, StageTopName)); err != nil {
		return errDecorate(err, "GrowFiles")
	}
	if err = ConfWrite(C, filepath.Join(files.Stage, StageConfName)); err != nil {
		return errDecorate(err, "GrowFiles")
	}
	if _, err = InputWrite(files.Input, files.Stage, files.Steps); err != nil {
		return errDecorate(err, "GrowFiles")
	}
	return nil
}
