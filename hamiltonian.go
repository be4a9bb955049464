/*
 * hamiltonian.go, part of godft.
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

	"gonum.org/v1/gonum/mat"
)

// MatHamiltonian is a Hamiltonian given explicitly as one dense symmetric
// matrix per (spin,k) block. It is the reference implementation of the
// Hamiltonian interface: fixed-matrix diagonalizations, model Hamiltonians
// and the package tests all use it. Real plane-wave operators apply H|C>
// without ever forming the matrix and live outside this library.
type MatHamiltonian struct {
	M []*mat.SymDense //flat (spin,k) order, like Orbitals blocks
}

//NewMatHamiltonian builds a MatHamiltonian from the given per-block matrices.
func NewMatHamiltonian(ms ...*mat.SymDense) *MatHamiltonian {
	return &MatHamiltonian{M: ms}
}

//Apply returns H|C>. The error is critical if the block layout of C does not
//match the matrices of H.
func (H *MatHamiltonian) Apply(C *Orbitals) (*Orbitals, error) {
	if C == nil || C.NBlocks() == 0 {
		panic(ErrNilOrbitals)
	}
	if len(H.M) != C.NBlocks() {
		return nil, CError{fmt.Sprintf("Apply: Hamiltonian has %d blocks, orbitals %d", len(H.M), C.NBlocks()), []string{"MatHamiltonian.Apply"}, true}
	}
	HC := C.Copy()
	for i := 0; i < C.NBlocks(); i++ {
		cb := C.Block(i)
		_, cols := cb.Dims()
		if H.M[i].SymmetricDim() != cols {
			return nil, CError{fmt.Sprintf("Apply: block %d is %d wide but its Hamiltonian is %dx%d", i, cols, H.M[i].SymmetricDim(), H.M[i].SymmetricDim()), []string{"MatHamiltonian.Apply"}, true}
		}
		HC.Block(i).Mul(cb, H.M[i]) //M symmetric, so C*M = C*Mᵀ = (M*Cᵀ)ᵀ
	}
	return HC, nil
}
