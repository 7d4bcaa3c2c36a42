/*
 * traj.go, part of gopatchy.
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
	"bufio"
	"compress/gzip"
	"fmt"
	"io"
	"log"
	"os"
	"strings"

	"github.com/klauspost/compress/zstd"
	patchy "github.com/rmera/gopatchy"
)

// Frame is one frame of a trajectory in the configuration format.
// All lines are kept verbatim, without their line terminators.
type Frame struct {
	Header    string //timestep line, starts with 't'
	Box       string //starts with 'b'
	Energy    string //starts with 'E'
	Particles []string
}

// Len returns the number of particles in the frame.
func (F *Frame) Len() int {
	return len(F.Particles)
}

// ZeroParticle is the particle line used to pad frames.
var ZeroParticle = strings.TrimSpace(strings.Repeat("0 ", patchy.ConfFields))

// Read reads all the frames in r. A line starting with 't' starts a new frame,
// lines starting with 'b' and 'E' are the box and energy lines of the current
// frame and lines with patchy.ConfFields fields are its particles. Other lines
// are ignored.
func Read(r io.Reader) ([]*Frame, error) {
	var frames []*Frame
	var cur *Frame
	in := bufio.NewReader(r)
	for lineno := 1; ; lineno++ {
		line, err := in.ReadString('\n')
		if err != nil && err != io.EOF {
			return nil, errDecorate(err, "Read")
		}
		line = strings.TrimRight(line, "\r\n")
		if line != "" {
			if line[0] == 't' {
				cur = new(Frame)
				cur.Header = line
				frames = append(frames, cur)
			} else if line[0] == 'b' || line[0] == 'E' || len(strings.Fields(line)) == patchy.ConfFields {
				if cur == nil {
					return nil, Error{fmt.Sprintf("line %d before the first frame header: '%s'", lineno, line), "", []string{"Read"}, patchy.ErrMalformed}
				}
				switch line[0] {
				case 'b':
					cur.Box = line
				case 'E':
					cur.Energy = line
				default:
					cur.Particles = append(cur.Particles, line)
				}
			}
		}
		if err == io.EOF {
			return frames, nil
		}
	}
}

// MaxLen returns the largest number of particles in any of the frames.
func MaxLen(frames []*Frame) int {
	max := 0
	for _, f := range frames {
		if f.Len() > max {
			max = f.Len()
		}
	}
	return max
}

// Normalise pads every frame with ZeroParticle lines, so all of them have as many
// particles as the largest one. It returns that number of particles.
func Normalise(frames []*Frame) int {
	max := MaxLen(frames)
	log.Printf("Increasing the number of particles in each frame to %d", max)
	for _, f := range frames {
		for f.Len() < max {
			f.Particles = append(f.Particles, ZeroParticle)
		}
	}
	return max
}

// Write writes the frames to w. Empty box and energy lines are omitted.
func Write(w io.Writer, frames []*Frame) error {
	out := bufio.NewWriter(w)
	for _, f := range frames {
		fmt.Fprintln(out, f.Header)
		if f.Box != "" {
			fmt.Fprintln(out, f.Box)
		}
		if f.Energy != "" {
			fmt.Fprintln(out, f.Energy)
		}
		for _, p := range f.Particles {
			fmt.Fprintln(out, p)
		}
	}
	if err := out.Flush(); err != nil {
		return errDecorate(err, "Write")
	}
	return nil
}

// NormaliseFile reads the trajectory in the file readname, normalises it (see Normalise)
// and writes it to writename. Files with names ending in ".zst" or ".gz" are read or
// written with zstd or gzip compression, respectively. Returns the number of particles
// in each frame of the written trajectory.
func NormaliseFile(readname, writename string) (int, error) {
	r, err := Open(readname)
	if err != nil {
		return 0, err
	}
	frames, err := Read(r)
	r.Close()
	if err != nil {
		return 0, errFile(errDecorate(err, "NormaliseFile"), readname)
	}
	n := Normalise(frames)
	w, err := Create(writename)
	if err != nil {
		return 0, err
	}
	if err = Write(w, frames); err != nil {
		w.Close()
		return 0, errFile(errDecorate(err, "NormaliseFile"), writename)
	}
	if err = w.Close(); err != nil {
		return 0, errFile(errDecorate(err, "NormaliseFile"), writename)
	}
	return n, nil
}

//Compression

// *zstd.Decoder doesn't implement io.ReadCloser, as its Close doesn't return anything.
type zstdReader struct {
	*zstd.Decoder
}

func (z zstdReader) Close() error {
	z.Decoder.Close()
	return nil
}

// fileCloser closes a decompressor/compressor and then the file under it.
type fileCloser struct {
	io.Reader
	io.Writer
	inner io.Closer
	f     *os.File
}

func (c *fileCloser) Close() error {
	var err error
	if c.inner != nil {
		err = c.inner.Close()
	}
	if ferr := c.f.Close(); err == nil {
		err = ferr
	}
	return err
}

// Open opens the file name for reading, decompressing it if its name ends in ".zst" or ".gz".
func Open(name string) (io.ReadCloser, error) {
	f, err := os.Open(name)
	if err != nil {
		return nil, err
	}
	var r io.ReadCloser
	switch {
	case strings.HasSuffix(name, ".zst"):
		var d *zstd.Decoder
		d, err = zstd.NewReader(bufio.NewReader(f))
		if err == nil {
			r = zstdReader{d}
		}
	case strings.HasSuffix(name, ".gz"):
		r, err = gzip.NewReader(bufio.NewReader(f))
	default:
		return f, nil
	}
	if err != nil {
		f.Close()
		return nil, Error{"Can't open compressed stream: " + err.Error(), name, []string{"Open"}, err}
	}
	return &fileCloser{Reader: r, inner: r, f: f}, nil
}

// Create creates the file name for writing, compressing it if its name ends in ".zst" or ".gz".
// The returned WriteCloser must be closed for the data to be complete.
func Create(name string) (io.WriteCloser, error) {
	f, err := os.Create(name)
	if err != nil {
		return nil, err
	}
	var w io.WriteCloser
	switch {
	case strings.HasSuffix(name, ".zst"):
		w, err = zstd.NewWriter(f, zstd.WithEncoderLevel(zstd.SpeedBestCompression))
	case strings.HasSuffix(name, ".gz"):
		w, err = gzip.NewWriterLevel(f, gzip.BestCompression)
	default:
		return f, nil
	}
	if err != nil {
		f.Close()
		return nil, Error{"Can't create compressed stream: " + err.Error(), name, []string{"Create"}, err}
	}
	return &fileCloser{Writer: w, inner: w, f: f}, nil
}

//Errors

// Error is the error type of the package. It fulfills patchy.Error.
type Error struct {
	message  string
	filename string //the trajectory with problems, if any
	deco     []string
	kind     error
}

func (err Error) Error() string {
	return fmt.Sprintf("trajectory %s error: %s", err.filename, err.message)
}

// Decorate adds deco, if not empty, to the decoration slice and returns it.
func (err Error) Decorate(deco string) []string {
	if deco != "" {
		err.deco = append(err.deco, deco)
	}
	return err.deco
}

// FileName returns the trajectory file associated to the error.
func (err Error) FileName() string { return err.filename }

func (err Error) Unwrap() error { return err.kind }

func errDecorate(err error, caller string) error {
	if e, ok := err.(Error); ok {
		e.deco = append(e.deco, caller)
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
