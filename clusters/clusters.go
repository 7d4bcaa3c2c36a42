/*
 * clusters.go, part of gopatchy.
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

package clusters

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"regexp"
	"strconv"
	"strings"

	patchy "github.com/rmera/gopatchy"
)

// Names of the files read from a simulation output directory.
const (
	LogName = "clusters.txt"
	TopName = "init.top"
)

// each cluster in a log line is a parenthesized list of particle indexes, followed by two spaces.
var groupRE = regexp.MustCompile(`\(([0-9 ]+)\)  `)

// ReadLastLine returns the last line of r, without the line terminator. A log
// with no lines is an error.
func ReadLastLine(r io.Reader) (string, error) {
	var last string
	read := false
	in := bufio.NewReader(r)
	for {
		line, err := in.ReadString('\n')
		if line != "" {
			last = strings.TrimRight(line, "\r\n")
			read = true
		}
		if err == io.EOF {
			break
		}
		if err != nil {
			return "", errDecorate(err, "ReadLastLine")
		}
	}
	if !read {
		return "", Error{"empty cluster log", "", []string{"ReadLastLine"}, patchy.ErrMalformed}
	}
	return last, nil
}

// Parse returns the clusters in a line of the cluster log, each as the list
// of the indexes of the particles in it.
func Parse(line string) ([][]int, error) {
	var ret [][]int
	for _, m := range groupRE.FindAllStringSubmatch(line, -1) {
		fields := strings.Fields(m[1])
		c := make([]int, 0, len(fields))
		for _, f := range fields {
			id, err := strconv.Atoi(f)
			if err != nil {
				return nil, Error{fmt.Sprintf("Can't read particle index '%s': %s", f, err), "", []string{"Parse"}, patchy.ErrMalformed}
			}
			c = append(c, id)
		}
		ret = append(ret, c)
	}
	return ret, nil
}

// Count returns the number of clusters in a system of nparticles particles. Particles
// that are not in any of the given clusters are counted as clusters of their own.
func Count(clusters [][]int, nparticles int) int {
	bound := 0
	for _, c := range clusters {
		bound += len(c)
	}
	return len(clusters) + nparticles - bound
}

// CountDir counts the clusters in the last line of the cluster log of the simulation
// output directory dir. The number of particles is taken from the topology in the same
// directory.
func CountDir(dir string) (int, error) {
	clusters, n, err := ReadDir(dir)
	if err != nil {
		return 0, errDecorate(err, "CountDir")
	}
	return Count(clusters, n), nil
}

// ReadDir returns the clusters in the last line of the cluster log in the directory dir,
// and the number of particles in the topology in the same directory.
func ReadDir(dir string) ([][]int, int, error) {
	logname := filepath.Join(dir, LogName)
	f, err := os.Open(logname)
	if err != nil {
		return nil, 0, err
	}
	defer f.Close()
	last, err := ReadLastLine(f)
	if err != nil {
		return nil, 0, errFile(errDecorate(err, "ReadDir"), logname)
	}
	clusters, err := Parse(last)
	if err != nil {
		return nil, 0, errFile(errDecorate(err, "ReadDir"), logname)
	}
	T, err := patchy.TopRead(filepath.Join(dir, TopName))
	if err != nil {
		return nil, 0, errDecorate(err, "ReadDir")
	}
	return clusters, T.NParticles, nil
}

//Errors

// Error is the error type of the package. It fulfills patchy.Error.
type Error struct {
	message  string
	filename string
	deco     []string
	kind     error
}

func (err Error) Error() string {
	if err.filename == "" {
		return "clusters: " + err.message
	}
	return fmt.Sprintf("clusters: file %s: %s", err.filename, err.message)
}

// Decorate adds deco, if not empty, to the decoration slice and returns it.
func (err Error) Decorate(deco string) []string {
	if deco != "" {
		err.deco = append(err.deco, deco)
	}
	return err.deco
}

// FileName returns the file associated to the error, if any.
func (err Error) FileName() string { return err.filename }

func (err Error) Unwrap() error { return err.kind }

func errDecorate(err error, caller string) error {
	switch e := err.(type) {
	case Error:
		e.deco = append(e.deco, caller)
		return e
	case patchy.Error:
		e.Decorate(caller)
		return e
	}
	return fmt.Errorf("%s: %w", caller, err)
}

func errFile(err error, filename string) error {
	if e, ok := err.(Error); ok && e.filename == "" {
		e.filename = filename
		return e
	}
	return err
}
