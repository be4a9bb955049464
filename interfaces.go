/*
 * interfaces.go, part of godft.
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

package dft

import "time"

/*The idea is that the iterative solvers never know what the Hamiltonian is, where the
 * k-points live, or where the progress lines go. They only see these interfaces, so the same
 * engine runs on a toy dense matrix in a test, or on a real plane-wave operator split over
 * many partitions, without changing a line.*/

// Hamiltonian applies the Kohn-Sham (or any Hermitian) operator to a block of
// orbitals. Apply must be a pure function of C from the solver's point of view:
// same C, same result, no mutation of C.
type Hamiltonian interface {

	//Apply returns H|C>, with the same shape as C.
	Apply(C *Orbitals) (*Orbitals, error)
}

// Reducer is the reduction context over the set of distributed partitions
// holding k-points and/or basis splits. Every partition must make the same
// calls in the same order each iteration, or the backend may deadlock.
// Serial is the single-partition implementation.
type Reducer interface {

	//Sum returns the sum of x over all partitions.
	Sum(x float64) float64

	//Max returns the maximum of x over all partitions.
	Max(x float64) float64

	//Min returns the minimum of n over all partitions.
	Min(n int) int

	//Broadcast overwrites x on every partition with the values held by the
	//root partition, so redundant copies of the same quantity agree bitwise.
	Broadcast(x []float64)
}

// Step is one progress record from an iterative diagonalizer. DeigMax and
// NEigsDone are zero on the report emitted before the first iteration.
type Step struct {
	Iteration int
	Eband     float64 //weighted band-energy sum, reduced over partitions
	DeigMax   float64
	NEigsDone int
	Elapsed   time.Duration
	InnerLoop bool
	Converged bool
	//ConvergeFailed signals budget exhaustion on a standalone solve.
	ConvergeFailed bool
}

// Reporter is a sink for per-iteration progress records. The format and
// destination belong to the implementation, not to the solvers.
type Reporter interface {
	Report(s Step)
}

//Errors

// Error is the interface for errors that all packages in this library implement. The Decorate method allows to add and retrieve info from the
// error, without changing it's type or wrapping it around something else.
type Error interface {
	Error() string
	Decorate(string) []string //Each call appends the given string (if non-empty) to the decoration slice and returns the result. The slice should contain the names of the functions in the calling stack, plus, for each, any relevant information in the format "FunctionName: Extra info".
}

// CriticalError marks errors that cannot be recovered from locally, such as an
// infeasible solver configuration or a failed dense factorization.
type CriticalError interface {
	Error
	Critical() bool
}
