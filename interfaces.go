/*
 * interfaces.go, part of gopatchy.
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
	"errors"
	"fmt"

	v3 "github.com/rmera/gopatchy/v3"
)

//Errors

// Error is the interface for errors that all packages in this library implement. The Decorate method allows to add and retrieve info from the
// error, without changing its type or wrapping it around something else.
// The decoration slice contains a list of functions in the calling stack, plus, for each function, any relevant information, in the format
// "FunctionName: Extra info".
type Error interface {
	Error() string
	Decorate(string) []string
}

// The sentinels classify every error returned by the library and can be tested with errors.Is.
var (
	//operands of the wrong or mismatched lengths
	ErrDimension = v3.ErrDimension
	//no room left for a particle after the maximum number of tries
	ErrPlacementExhausted = errors.New("particle placement exhausted")
	//a density-preserving rescale would need to shrink the box
	ErrInvalidShrink = errors.New("box rescaling would shrink the box")
	//configuration, topology or trajectory text not in the expected layout
	ErrMalformed = errors.New("malformed input")
)

// CError is the general error of the package. It fulfills Error and
// unwraps to one of the package sentinels.
type CError struct {
	msg      string
	filename string
	deco     []string
	kind     error
}

func newError(kind error, caller, format string, args ...interface{}) CError {
	return CError{msg: fmt.Sprintf(format, args...), deco: []string{caller}, kind: kind}
}

func (err CError) Error() string {
	if err.filename != "" {
		return fmt.Sprintf("%s: %s", err.filename, err.msg)
	}
	return err.msg
}

// Decorate adds dec, if not empty, to the decoration slice, and returns the slice.
func (err CError) Decorate(dec string) []string {
	if dec != "" {
		err.deco = append(err.deco, dec)
	}
	return err.deco
}

// FileName returns the file associated to the error, or an empty string.
func (err CError) FileName() string { return err.filename }

// Unwrap returns the sentinel that classifies the error.
func (err CError) Unwrap() error { return err.kind }

// PlacementError is returned when no position at the minimum distance from all the
// other particles could be found for a new particle. It unwraps to ErrPlacementExhausted.
type PlacementError struct {
	Particle int     //index, among the particles being inserted, of the one that didn't fit
	Tries    int     //rejected positions
	MinDist  float64 //the minimum distance requested
	deco     []string
}

func (err *PlacementError) Error() string {
	return fmt.Sprintf("Tried %d times and still couldn't find room for new particle %d. Try increasing the box size (or decreasing the minimum distance %g)", err.Tries, err.Particle, err.MinDist)
}

// Decorate adds dec, if not empty, to the decoration slice, and returns the slice.
func (err *PlacementError) Decorate(dec string) []string {
	if dec != "" {
		err.deco = append(err.deco, dec)
	}
	return err.deco
}

func (err *PlacementError) Unwrap() error { return ErrPlacementExhausted }

//errDecorate adds the caller to the decoration of err and returns it.
//CErrors are returned as new values carrying the extra decoration. v3.Errors
//are turned into CErrors that unwrap to them. Errors that don't implement
//Error are wrapped.
func errDecorate(err error, caller string) error {
	switch e := err.(type) {
	case CError:
		e.deco = append(e.deco, caller)
		return e
	case v3.Error:
		deco := append([]string{}, e.Decorate("")...)
		return CError{msg: e.Error(), deco: append(deco, caller), kind: e}
	case Error:
		e.Decorate(caller)
		return e
	}
	return fmt.Errorf("%s: %w", caller, err)
}

//errFile attaches a file name to CErrors that don't have one.
func errFile(err error, filename string) error {
	if e, ok := err.(CError); ok && e.filename == "" {
		e.filename = filename
		return e
	}
	return err
}
