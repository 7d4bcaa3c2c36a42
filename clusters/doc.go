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

// Package clusters counts the clusters formed in a patchy-particle simulation, as
// written by the simulator's cluster observable, and provides statistics and
// plots of their sizes.
//
// The last line of the cluster log lists each cluster as the indexes of its
// particles between parentheses. Particles bound to nothing don't appear in
// the log, and count as clusters of their own.
package clusters
