/*
 * gonum.go, part of gopatchy.
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

//gonum.go contains most of what is needed for handling the gonum/mat types.
//All the *Vec functions operate on row vectors, i.e. the cartesian coordinates
//of a point in 3D space.

package v3

import (
	"errors"
	"fmt"

	"gonum.org/v1/gonum/mat"
)

// Matrix is a set of vectors in 3D space, backed by a gonum Dense.
// Within the package it is understood that a "vector" is a row vector.
// A Matrix with zero vectors wraps an empty Dense.
type Matrix struct {
	*mat.Dense
}

// NewMatrix generates and returns a Matrix with 3 columns from data.
// data is used as backing storage, not copied.
func NewMatrix(data []float64) (*Matrix, error) {
	const cols int = 3
	l := len(data)
	rows := l / cols
	if l%cols != 0 {
		return nil, Error{fmt.Sprintf("Input slice length %d not divisible by %d: %d", l, cols, l%cols), []string{"NewMatrix"}, true, ErrDimension}
	}
	if rows == 0 {
		return Zeros(0), nil
	}
	return &Matrix{mat.NewDense(rows, cols, data)}, nil
}

// View returns a view of F starting from the ith vector and spanning r vectors.
func (F *Matrix) View(i, r int) *Matrix {
	if r == 0 {
		return Zeros(0)
	}
	ret := F.Dense.Slice(i, i+r, 0, 3).(*mat.Dense)
	return &Matrix{ret}
}

// Stack puts A stacked over B in F. F must have at least as
// many vectors as A and B together.
func (F *Matrix) Stack(A, B *Matrix) {
	ar := A.NVecs()
	br := B.NVecs()
	if F.NVecs() < ar+br {
		panic(ErrShape)
	}
	for i := 0; i < ar; i++ {
		F.SetRow(i, A.RawRowView(i))
	}
	for i := 0; i < br; i++ {
		F.SetRow(ar+i, B.RawRowView(i))
	}
}

// Append returns a new Matrix with the vectors of A followed by those of B.
// Neither A nor B are modified.
func Append(A, B *Matrix) *Matrix {
	F := Zeros(A.NVecs() + B.NVecs())
	if F.NVecs() == 0 {
		return F
	}
	F.Stack(A, B)
	return F
}

// Clone returns a deep copy of F.
func (F *Matrix) Clone() *Matrix {
	if F.NVecs() == 0 {
		return Zeros(0)
	}
	return &Matrix{mat.DenseCopyOf(F.Dense)}
}

//Errors

// ErrDimension is wrapped by every error returned because of operands
// with the wrong or mismatched lengths.
var ErrDimension = errors.New("v3: dimension mismatch")

// ErrZeroVector is wrapped by the error returned when a zero vector
// can't be normalized.
var ErrZeroVector = errors.New("v3: zero vector")

// Error is the error type of the package.
type Error struct {
	message  string
	deco     []string
	critical bool
	kind     error
}

// Error returns a string with an error message.
func (err Error) Error() string {
	return err.message
}

// Decorate will add the dec string to the decoration slice of strings of the error,
// and return the resulting slice.
func (err Error) Decorate(dec string) []string {
	if dec != "" {
		err.deco = append(err.deco, dec)
	}
	return err.deco
}

// Critical return whether the error is critical or it can be ignored
func (err Error) Critical() bool { return err.critical }

// Unwrap returns the sentinel error (ErrDimension, ErrZeroVector) that
// classifies err.
func (err Error) Unwrap() error { return err.kind }

//PanicMsg is a message used for panics, even though it does satisfy the error interface.
//for errors use Error.
type PanicMsg string

func (v PanicMsg) Error() string { return string(v) }

const (
	ErrNotXx3Matrix = PanicMsg("goPatchy/v3: A Matrix should have 3 columns")
	ErrShape        = PanicMsg("goPatchy/v3: Dimension mismatch")
)
