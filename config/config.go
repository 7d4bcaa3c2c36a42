/*
 * config.go, part of gopatchy.
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

package config

import (
	"fmt"
	"strings"

	patchy "github.com/rmera/gopatchy"
	"gopkg.in/gcfg.v1"
)

const ExampleGrowFile = `[Grow]

#######################
# Required Parameters #
#######################

# Species index of the new particles, and how many of them to add.
SpeciesID = 1
Count = 100

# Topology and configuration to grow from.
Top = path/to/last/stage/init.top
Conf = path/to/last/stage/last_conf.dat

# Directory for the new stage. init.top and init.conf are written here.
Stage = path/to/new/stage

# Run-input template. [stage] and [nSteps] are replaced, and the result is
# written next to the template as input_<stage>.
Input = path/to/input
Steps = 1e6

#######################
# Optional Parameters #
#######################

# Minimum distance between any two particles. Default is 1.5.
# MinDist = 1.5

# By default the box is kept as it is. With Rescale = true the box grows to
# keep the number density, which is taken from the configuration unless
# Density is set.
# Rescale = false
# Density = 0.1

# Random positions tried for each particle before giving up. Default is 1000000.
# MaxTries = 1000000

# Seed for the random numbers. 0 (the default) takes it from the clock.
# Seed = 0`

type GrowConfig struct {
	// Required
	SpeciesID, Count        int
	Top, Conf, Stage, Input string
	Steps                   string

	// Optional
	MinDist, Density float64
	Rescale          bool
	MaxTries         int
	Seed             int64
}

type GrowWrapper struct {
	Grow GrowConfig
}

func DefaultGrowWrapper() *GrowWrapper {
	con := GrowConfig{}
	con.SpeciesID = -1
	con.Count = -1
	con.MinDist = patchy.DefaultMinDist
	con.MaxTries = patchy.DefaultMaxTries
	return &GrowWrapper{con}
}

// ReadGrowFile reads the [Grow] section of the gcfg file fname on top of the defaults.
// The result is not checked (see Check), as other sources may still fill it in.
func ReadGrowFile(fname string) (*GrowConfig, error) {
	wrap := DefaultGrowWrapper()
	if err := gcfg.ReadFileInto(wrap, fname); err != nil {
		return nil, err
	}
	return &wrap.Grow, nil
}

// ReadGrowString is like ReadGrowFile, for configurations in a string.
func ReadGrowString(str string) (*GrowConfig, error) {
	wrap := DefaultGrowWrapper()
	if err := gcfg.ReadStringInto(wrap, str); err != nil {
		return nil, err
	}
	return &wrap.Grow, nil
}

func (con *GrowConfig) ValidSpeciesID() bool {
	return con.SpeciesID >= 0
}
func (con *GrowConfig) ValidCount() bool {
	return con.Count >= 0
}
func (con *GrowConfig) ValidFiles() bool {
	return con.Top != "" && con.Conf != "" && con.Stage != "" && con.Input != ""
}
func (con *GrowConfig) ValidSteps() bool {
	return strings.TrimSpace(con.Steps) != ""
}
func (con *GrowConfig) ValidMinDist() bool {
	return con.MinDist >= 0
}
func (con *GrowConfig) ValidDensity() bool {
	return con.Density >= 0
}
func (con *GrowConfig) ValidMaxTries() bool {
	return con.MaxTries > 0
}
func (con *GrowConfig) ValidSeed() bool {
	return con.Seed >= 0
}

// Check returns an error describing the first invalid parameter, if any.
func (con *GrowConfig) Check() error {
	switch {
	case !con.ValidSpeciesID():
		return fmt.Errorf("Need to specify a non-negative SpeciesID, got %d", con.SpeciesID)
	case !con.ValidCount():
		return fmt.Errorf("Need to specify a non-negative Count, got %d", con.Count)
	case !con.ValidFiles():
		return fmt.Errorf("Need to specify the Top, Conf, Stage and Input paths")
	case !con.ValidSteps():
		return fmt.Errorf("Need to specify the number of Steps")
	case !con.ValidMinDist():
		return fmt.Errorf("MinDist can't be negative, but is %g", con.MinDist)
	case !con.ValidDensity():
		return fmt.Errorf("Density can't be negative, but is %g", con.Density)
	case !con.ValidMaxTries():
		return fmt.Errorf("MaxTries must be positive, but is %d", con.MaxTries)
	case !con.ValidSeed():
		return fmt.Errorf("Seed can't be negative, but is %d", con.Seed)
	}
	return nil
}

// Options returns the growth options set in the configuration.
func (con *GrowConfig) Options() *patchy.GrowOptions {
	o := patchy.DefaultGrowOptions()
	o.MinDist(con.MinDist)
	o.Density(con.Density)
	o.PreserveBox(!con.Rescale)
	o.MaxTries(con.MaxTries)
	o.Seed(uint64(con.Seed))
	return o
}

// Files returns the paths for the growth stage set in the configuration.
func (con *GrowConfig) Files() patchy.StageFiles {
	return patchy.StageFiles{
		Top:   con.Top,
		Conf:  con.Conf,
		Stage: con.Stage,
		Input: con.Input,
		Steps: con.Steps,
	}
}
