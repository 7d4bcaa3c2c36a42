/*
 * doc.go, part of gopatchy.
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

/*Package v3 implements a Matrix type representing a row-major 3D matrix (i.e. a Nx3 matrix),
and a small kernel of vector functions on plain float64 slices.

The v3.Matrix is used to represent positions and orientation vectors of sets of particles
in gopatchy. It is based on gonum's (gonum.org/v1/gonum/mat) Dense type, with some additional
restrictions because of the fixed number of columns. Contrary to a bare Dense, a Matrix can
hold zero vectors, which is the normal state of an empty configuration.

The kernel functions (Dist, PBCDelta, Cross, Unit...) take []float64 and check their
dimensions, returning an error that wraps ErrDimension on mismatch. Distances can be computed
with the minimum-image convention by passing the sides of an orthorhombic periodic box.

*/
package v3
