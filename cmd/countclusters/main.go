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

// countclusters prints the number of clusters at the end of a patchy-particle simulation,
// from the clusters.txt log and the init.top topology in the simulation output directory.
// Particles bound to nothing count as their own clusters.
package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"path/filepath"

	"github.com/rmera/gopatchy/clusters"
)

func main() {
	stats := flag.Bool("stats", false, "Also print statistics of the cluster sizes.")
	plot := flag.String("plot", "", "Write a histogram of the cluster sizes to this file (png, svg, pdf).")
	flag.Usage = func() {
		fmt.Fprintln(os.Stderr, "Usage: countclusters [flags] dirPath")
		flag.PrintDefaults()
	}
	flag.Parse()
	if flag.NArg() != 1 {
		flag.Usage()
		os.Exit(2)
	}
	dir := flag.Arg(0)
	cl, n, err := clusters.ReadDir(dir)
	if err != nil {
		log.Fatal(err.Error())
	}
	fmt.Println(clusters.Count(cl, n))
	if !*stats && *plot == "" {
		return
	}
	sizes, err := clusters.Sizes(cl, n)
	if err != nil {
		log.Fatal(err.Error())
	}
	if *stats {
		fmt.Println(clusters.Stats(sizes))
	}
	if *plot != "" {
		if err = clusters.PlotSizes(sizes, "Cluster sizes, "+filepath.Base(dir), *plot); err != nil {
			log.Fatal(err.Error())
		}
	}
}
