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

// normtraj pads every frame of a trajectory with all-zero particles, so all the
// frames have as many particles as the largest one. Names ending in .zst or .gz
// are read and written compressed.
package main

import (
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/rmera/gopatchy/traj"
)

func main() {
	flag.Usage = func() {
		fmt.Fprintln(os.Stderr, "Usage: normtraj readPath writePath")
		flag.PrintDefaults()
	}
	flag.Parse()
	if flag.NArg() != 2 {
		flag.Usage()
		os.Exit(2)
	}
	if _, err := traj.NormaliseFile(flag.Arg(0), flag.Arg(1)); err != nil {
		log.Fatal(err.Error())
	}
}
