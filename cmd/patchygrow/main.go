/*
 * main.go, part of gopatchy.
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

// patchygrow prepares a new stage of a growing patchy-particle simulation: it adds
// particles to the configuration and topology of a previous stage, and writes them,
// together with the run input for the stage, to the new stage directory.
package main

import (
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"strconv"

	patchy "github.com/rmera/gopatchy"
	"github.com/rmera/gopatchy/config"
)

const usage = `Usage: patchygrow [flags] speciesId count topPath confPath stagePath inputPath nSteps
       patchygrow [flags] -config file.gcfg

Flags given on the command line take precedence over the configuration file.
`

func main() {
	var (
		mindist  = flag.Float64("mindist", patchy.DefaultMinDist, "Minimum distance between particles.")
		density  = flag.Float64("density", 0, "Number density to keep when rescaling. 0 takes it from the configuration.")
		rescale  = flag.Bool("rescale", false, "Grow the box to keep the density, instead of keeping the box.")
		seed     = flag.Int64("seed", 0, "Seed for the random numbers. 0 takes it from the clock.")
		maxtries = flag.Int("maxtries", patchy.DefaultMaxTries, "Random positions to try for each particle before giving up.")
		cfile    = flag.String("config", "", "gcfg file with a [Grow] section.")
		example  = flag.Bool("example", false, "Print an example configuration file and exit.")
		quiet    = flag.Bool("q", false, "Only report errors.")
	)
	flag.Usage = func() {
		fmt.Fprint(os.Stderr, usage)
		flag.PrintDefaults()
	}
	flag.Parse()
	if *example {
		fmt.Println(config.ExampleGrowFile)
		return
	}
	fatal := log.New(os.Stderr, "patchygrow: ", 0)
	if *quiet {
		log.SetOutput(io.Discard)
	}
	con := &config.DefaultGrowWrapper().Grow
	var err error
	if *cfile != "" {
		con, err = config.ReadGrowFile(*cfile)
		if err != nil {
			fatal.Fatal(err.Error())
		}
	}
	args := flag.Args()
	switch len(args) {
	case 0:
		if *cfile == "" {
			flag.Usage()
			os.Exit(2)
		}
	case 7:
		if con.SpeciesID, err = strconv.Atoi(args[0]); err != nil {
			fatal.Fatalf("Invalid speciesId '%s'", args[0])
		}
		if con.Count, err = strconv.Atoi(args[1]); err != nil {
			fatal.Fatalf("Invalid count '%s'", args[1])
		}
		con.Top, con.Conf, con.Stage, con.Input, con.Steps = args[2], args[3], args[4], args[5], args[6]
	default:
		flag.Usage()
		os.Exit(2)
	}
	flag.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "mindist":
			con.MinDist = *mindist
		case "density":
			con.Density = *density
		case "rescale":
			con.Rescale = *rescale
		case "seed":
			con.Seed = *seed
		case "maxtries":
			con.MaxTries = *maxtries
		}
	})
	if err = con.Check(); err != nil {
		fatal.Fatal(err.Error())
	}
	if err = patchy.GrowFiles(con.Files(), con.Count, con.SpeciesID, con.Options()); err != nil {
		fatal.Fatal(err.Error())
	}
	log.Printf("Added %d particles of species %d. Stage written to %s", con.Count, con.SpeciesID, con.Stage)
}
