/*
 * basis.go, part of godft.
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

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/floats"
)

// Basis carries the plane-wave basis metadata the solvers need: the kinetic
// energy of every basis function per k-point, the k-point integration weights
// and the spin degeneracy weight. It says nothing about G-vectors or grids;
// those belong to whoever built the Hamiltonian.
type Basis struct {
	ke    [][]float64 //per k-point, per basis coefficient
	wk    []float64   //k-point weights, should sum to 1
	wspin float64     //spin weight: 2 for spin-restricted, 1 otherwise
	nmin  int
	nmax  int
}

//NewBasis builds a Basis from per-k-point kinetic energies and weights.
//wspin is typically 2/nspins.
func NewBasis(ke [][]float64, wk []float64, wspin float64) (*Basis, error) {
	if len(ke) == 0 || len(ke) != len(wk) {
		return nil, CError{fmt.Sprintf("NewBasis: %d kinetic-energy sets for %d k-point weights", len(ke), len(wk)), []string{"NewBasis"}, true}
	}
	B := &Basis{ke: ke, wk: wk, wspin: wspin}
	B.nmin = len(ke[0])
	for k, kek := range ke {
		if len(kek) == 0 {
			return nil, CError{fmt.Sprintf("NewBasis: empty basis for k-point %d", k), []string{"NewBasis"}, true}
		}
		if floats.Min(kek) < 0 {
			panic(ErrNegativeKinetic)
		}
		if len(kek) < B.nmin {
			B.nmin = len(kek)
		}
		if len(kek) > B.nmax {
			B.nmax = len(kek)
		}
	}
	return B, nil
}

//KE returns the kinetic energies of the basis functions of the kth k-point.
//The slice is not a copy.
func (B *Basis) KE(k int) []float64 { return B.ke[k] }

//NKpts returns the number of k-points described by B.
func (B *Basis) NKpts() int { return len(B.ke) }

//Size returns the basis size of the kth k-point.
func (B *Basis) Size(k int) int { return len(B.ke[k]) }

//NMin returns the smallest basis size over all k-points. The feasibility
//precondition of the iterative diagonalizers is stated against this number.
func (B *Basis) NMin() int { return B.nmin }

//Wk returns the weight of the kth k-point.
func (B *Basis) Wk(k int) float64 { return B.wk[k] }

//WSpin returns the spin degeneracy weight.
func (B *Basis) WSpin() float64 { return B.wspin }

//NormCut returns the norm below which a vector in this basis cannot be told
//apart from accumulated round-off, estimated from the largest basis size and
//double machine precision.
func (B *Basis) NormCut() float64 {
	return math.Sqrt(float64(B.nmax) * 1e-15)
}
