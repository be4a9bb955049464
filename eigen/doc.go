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

/*Package eigen implements iterative block diagonalization of a Kohn-Sham
Hamiltonian. The only solver at the moment is a block-Davidson engine: each
iteration it expands the trial subspace with preconditioned residuals of the
not-yet-converged bands, solves the dense generalized eigenproblem on the
expanded subspace, and truncates back to the requested number of bands plus a
buffer. Convergence is decided on the change of each eigenvalue between
iterations, agreed across all distributed partitions through the reduction
context, so every partition stops at the same iteration.

The engine owns the orbital block it is given for the duration of the call and
returns it, its operator image and the eigenvalues as a Result; it never
touches caller state.*/
package eigen
