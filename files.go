/*
 * files.go, part of gopatchy.
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
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	v3 "github.com/rmera/gopatchy/v3"
)

//readLines reads all the lines of r, without the line terminators.
func readLines(r io.Reader) ([]string, error) {
	var lines []string
	b := bufio.NewReader(r)
	for {
		line, err := b.ReadString('\n')
		if line != "" {
			lines = append(lines, strings.TrimRight(line, "\r\n"))
		}
		if err == io.EOF {
			return lines, nil
		}
		if err != nil {
			return nil, err
		}
	}
}

//fstr formats a float with the shortest representation that reads back
//to the same value.
func fstr(f float64) string {
	return strconv.FormatFloat(f, 'g', -1, 64)
}

// ParseBox parses a box line, "b = Lx Ly Lz". The sides are the last three fields.
func ParseBox(line string) ([]float64, error) {
	fields := strings.Fields(line)
	if len(line) == 0 || line[0] != 'b' || len(fields) < 4 {
		return nil, newError(ErrMalformed, "ParseBox", "Did not find box in line '%s'", line)
	}
	box := make([]float64, 3)
	var err error
	for i, v := range fields[len(fields)-3:] {
		box[i], err = strconv.ParseFloat(v, 64)
		if err != nil {
			return nil, newError(ErrMalformed, "ParseBox", "Can't read box side %d from '%s': %s", i, line, err)
		}
		if box[i] < 0 {
			return nil, newError(ErrMalformed, "ParseBox", "Negative box side %g in '%s'", box[i], line)
		}
	}
	return box, nil
}

// ReadConf reads a configuration: a timestep line, a box line, an energy line and one
// line with ConfFields values per particle (position, a1, a3 and the auxiliary values).
func ReadConf(r io.Reader) (*Conf, error) {
	lines, err := readLines(r)
	if err != nil {
		return nil, errDecorate(err, "ReadConf")
	}
	if len(lines) < 2 {
		return nil, newError(ErrMalformed, "ReadConf", "Configuration with %d lines, at least 2 (timestep and box) expected", len(lines))
	}
	box, err := ParseBox(lines[1])
	if err != nil {
		return nil, errDecorate(err, "ReadConf")
	}
	var particles []string
	energy := ""
	if len(lines) > 2 {
		energy = lines[2]
		for _, l := range lines[3:] {
			if strings.TrimSpace(l) != "" {
				particles = append(particles, l)
			}
		}
	}
	C := NewConf(box, len(particles))
	C.Header = lines[0]
	C.Energy = energy
	vals := make([]float64, ConfFields)
	for i, l := range particles {
		fields := strings.Fields(l)
		if len(fields) != ConfFields {
			return nil, newError(ErrMalformed, "ReadConf", "Particle line %d has %d fields, %d expected", i+4, len(fields), ConfFields)
		}
		for j, f := range fields {
			vals[j], err = strconv.ParseFloat(f, 64)
			if err != nil {
				return nil, newError(ErrMalformed, "ReadConf", "Can't parse value %d of particle line %d: %s", j, i+4, err)
			}
		}
		C.Pos.SetVec(i, vals[0:3])
		C.A1.SetVec(i, vals[3:6])
		C.A3.SetVec(i, vals[6:9])
		copy(C.Aux[i][:], vals[9:])
	}
	return C, nil
}

// DefaultEnergyLine is written for configurations without an energy line.
const DefaultEnergyLine = "E = 0 0 0"

// WriteConf writes C to w in the format read by ReadConf.
func WriteConf(w io.Writer, C *Conf) error {
	if len(C.Box) != 3 {
		return newError(ErrDimension, "WriteConf", "Box with %d sides", len(C.Box))
	}
	out := bufio.NewWriter(w)
	fmt.Fprintf(out, "%s\n", C.Header)
	fmt.Fprintf(out, "b = %s %s %s\n", fstr(C.Box[0]), fstr(C.Box[1]), fstr(C.Box[2]))
	energy := C.Energy
	if energy == "" {
		energy = DefaultEnergyLine
	}
	fmt.Fprintf(out, "%s\n", energy)
	vals := make([]string, 0, ConfFields)
	for i := 0; i < C.Len(); i++ {
		vals = vals[:0]
		for _, m := range []*v3.Matrix{C.Pos, C.A1, C.A3} {
			for _, v := range m.Vec(i) {
				vals = append(vals, fstr(v))
			}
		}
		for _, v := range C.Aux[i] {
			vals = append(vals, fstr(v))
		}
		fmt.Fprintf(out, "%s\n", strings.Join(vals, " "))
	}
	if err := out.Flush(); err != nil {
		return errDecorate(err, "WriteConf")
	}
	return nil
}

// ConfRead reads the configuration file with the given name.
func ConfRead(confname string) (*Conf, error) {
	f, err := os.Open(confname)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	C, err := ReadConf(f)
	if err != nil {
		return nil, errFile(errDecorate(err, "ConfRead"), confname)
	}
	return C, nil
}

// ConfWrite writes C to a file with the given name, which will be created or overwritten.
func ConfWrite(C *Conf, confname string) error {
	out, err := os.Create(confname)
	if err != nil {
		return err
	}
	if err = WriteConf(out, C); err != nil {
		out.Close()
		return errFile(errDecorate(err, "ConfWrite"), confname)
	}
	return out.Close()
}

// ReadTop reads a topology: a line with the number of particles and of species,
// followed by a line with the species index of each particle. Any other lines are
// kept verbatim.
func ReadTop(r io.Reader) (*Topology, error) {
	lines, err := readLines(r)
	if err != nil {
		return nil, errDecorate(err, "ReadTop")
	}
	if len(lines) == 0 {
		return nil, newError(ErrMalformed, "ReadTop", "Empty topology")
	}
	fields := strings.Fields(lines[0])
	if len(fields) != 2 {
		return nil, newError(ErrMalformed, "ReadTop", "First topology line should be 'nParticles nSpecies', got '%s'", lines[0])
	}
	T := new(Topology)
	if T.NParticles, err = strconv.Atoi(fields[0]); err != nil {
		return nil, newError(ErrMalformed, "ReadTop", "Can't read the number of particles from '%s'", lines[0])
	}
	if T.NSpecies, err = strconv.Atoi(fields[1]); err != nil {
		return nil, newError(ErrMalformed, "ReadTop", "Can't read the number of species from '%s'", lines[0])
	}
	if len(lines) < 2 {
		return T, nil
	}
	for _, s := range strings.Fields(lines[1]) {
		id, err := strconv.Atoi(s)
		if err != nil {
			return nil, newError(ErrMalformed, "ReadTop", "Can't read species index '%s'", s)
		}
		T.Species = append(T.Species, id)
	}
	T.Extra = append(T.Extra, lines[2:]...)
	return T, nil
}

// WriteTop writes T to w in the format read by ReadTop.
func WriteTop(w io.Writer, T *Topology) error {
	out := bufio.NewWriter(w)
	fmt.Fprintf(out, "%d %d\n", T.NParticles, T.NSpecies)
	if len(T.Species) > 0 || len(T.Extra) > 0 {
		ids := make([]string, len(T.Species))
		for i, v := range T.Species {
			ids[i] = strconv.Itoa(v)
		}
		fmt.Fprintf(out, "%s\n", strings.Join(ids, " "))
	}
	for _, l := range T.Extra {
		fmt.Fprintf(out, "%s\n", l)
	}
	if err := out.Flush(); err != nil {
		return errDecorate(err, "WriteTop")
	}
	return nil
}

// TopRead reads the topology file with the given name.
func TopRead(topname string) (*Topology, error) {
	f, err := os.Open(topname)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	T, err := ReadTop(f)
	if err != nil {
		return nil, errFile(errDecorate(err, "TopRead"), topname)
	}
	return T, nil
}

// TopWrite writes T to a file with the given name, which will be created or overwritten.
func TopWrite(T *Topology, topname string) error {
	out, err := os.Create(topname)
	if err != nil {
		return err
	}
	if err = WriteTop(out, T); err != nil {
		out.Close()
		return errFile(errDecorate(err, "TopWrite"), topname)
	}
	return out.Close()
}
