/*
 * doc.go, part of godft.
 *
 * Copyright 2026 Raul Mera <rmera{at}chemDOThelsinkiDOTfi>
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

/*Package dft provides the building blocks for plane-wave density-functional-theory
calculations: orbital coefficient blocks, basis-set metadata, dense (generalized)
symmetric eigensolvers and the collaborator interfaces used by the iterative
diagonalizers in the subpackages.



	**godft Capabilities**

    Holds blocks of Kohn-Sham orbitals over spin channels and k-points, with
	band-wise norms, dot products, views and deterministic randomization.

    Diagonalizes a Kohn-Sham Hamiltonian with a block-Davidson iteration
	(package eigen), with inverse-kinetic preconditioning and distributed
	convergence accounting.

    Solves dense symmetric and generalized-symmetric eigenproblems in
	ascending eigenvalue order, wrapping gonum.

    Writes and reads compressed orbital/eigenvalue checkpoint files
	(package wfn).

    Plots convergence histories (package convplot).

The Hamiltonian itself, the distributed-communication backend and the progress
sink are external collaborators, injected through the interfaces defined in
interfaces.go. Serial, in-process implementations of the last two are provided
so the solvers work out of the box on a single partition.

Coefficients are real float64 throughout (the Gamma-point/real-spherical
representation), with bands stored as rows of gonum Dense matrices.
*/
package dft
