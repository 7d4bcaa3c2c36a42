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

/*Package patchy prepares initial configurations for simulations of patchy particles
that grow in stages: each stage adds particles of a new species to the final
configuration of the previous one.



	**Capabilities**


    Reads/writes configurations (a timestep line, a box line, an energy line and
	one line per particle with its position, the a1 and a3 vectors of its
	orientation frame and 6 auxiliary values) and topologies.

    Adds particles at random positions and with random orientation frames,
	keeping a minimum distance between all particles under periodic boundary
	conditions (Insert, Grow).

    Optionally grows the box isotropically so the number density is kept, after
	moving the center of mass of the existing particles to the origin. The
	center of mass is the circular mean along each axis, which is correct
	across the periodic boundaries (PBCCenterOfMass, Rescale).

    Writes a whole stage: topology, configuration and run input filled in from
	a template (GrowFiles).

The v3 subpackage contains the sets of 3D vectors and the vector algebra used
by the library. The clusters package counts the clusters at the end of a
simulation, and the traj package normalises trajectories of growing systems.
The config package reads stage parameters from gcfg files, and the programs under
cmd/ expose all of that on the command line.

Functions return errors that fulfill the Error interface and can be classified
with errors.Is against the sentinels of this package: ErrDimension,
ErrPlacementExhausted, ErrInvalidShrink and ErrMalformed.

*/
package patchy
