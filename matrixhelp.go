/*
 * matrixhelp.go, part of godft.
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

//Dense eigensolve primitives used by the iterative diagonalizers. These are
//external primitives from the point of view of the iteration: the engines call
//them on small subspace matrices and propagate their failures unmodified.

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/mat"
)

const appzero float64 = 1e-12 //relative cutoff under which an overlap eigenvalue is considered zero, i.e. the overlap rank-deficient.

//SymProd returns the symmetrized product 0.5*(A*Bᵀ + B*Aᵀ) of two matrices
//with bands as rows. For B=H|A> this is the subspace Hamiltonian <A|H|A>,
//exactly symmetric regardless of round-off in the products.
func SymProd(A, B *mat.Dense) *mat.SymDense {
	ar, ac := A.Dims()
	br, bc := B.Dims()
	if ar != br || ac != bc {
		panic(ErrShape)
	}
	var p mat.Dense
	p.Mul(A, B.T())
	r := mat.NewSymDense(ar, nil)
	for i := 0; i < ar; i++ {
		for j := i; j < ar; j++ {
			r.SetSym(i, j, 0.5*(p.At(i, j)+p.At(j, i)))
		}
	}
	return r
}

//EigenSymAsc diagonalizes the symmetric matrix H, returning all eigenvalues
//in ascending order and the matrix whose columns are the corresponding
//eigenvectors.
func EigenSymAsc(H *mat.SymDense) ([]float64, *mat.Dense, error) {
	var eig mat.EigenSym
	if ok := eig.Factorize(H, true); !ok {
		return nil, nil, CError{"EigenSymAsc: eigendecomposition failed", []string{"EigenSymAsc"}, true}
	}
	E := eig.Values(nil)
	V := new(mat.Dense)
	eig.VectorsTo(V)
	return E, V, nil
}

//EigenGenSym solves the generalized symmetric eigenproblem H*V = O*V*diag(E)
//for a positive-definite overlap O, returning the eigenvalues in ascending
//order and the O-orthonormal eigenvectors as columns of V (Vᵀ*O*V = I).
//The problem is reduced to an ordinary one by congruence with O^(-1/2).
//A (near) rank-deficient overlap is a critical error: it means the caller fed
//linearly dependent expansion vectors, which this primitive does not repair.
func EigenGenSym(H, O *mat.SymDense) ([]float64, *mat.Dense, error) {
	n := O.SymmetricDim()
	if H.SymmetricDim() != n {
		panic(ErrShape)
	}
	s, U, err := EigenSymAsc(O)
	if err != nil {
		return nil, nil, errDecorate(err, "EigenGenSym: overlap")
	}
	if s[0] <= appzero*s[n-1] {
		return nil, nil, CError{fmt.Sprintf("EigenGenSym: overlap is rank deficient (eigenvalue range %g to %g)", s[0], s[n-1]), []string{"EigenGenSym"}, true}
	}
	//X = O^(-1/2) = U diag(1/sqrt(s)) Uᵀ
	inv := make([]float64, n)
	for i, v := range s {
		inv[i] = 1.0 / math.Sqrt(v)
	}
	var X mat.Dense
	X.Mul(U, mat.NewDiagDense(n, inv))
	X.Mul(&X, U.T())

	var Ht mat.Dense
	Ht.Mul(&X, H)
	Ht.Mul(&Ht, &X)
	Hs := mat.NewSymDense(n, nil)
	for i := 0; i < n; i++ {
		for j := i; j < n; j++ {
			Hs.SetSym(i, j, 0.5*(Ht.At(i, j)+Ht.At(j, i)))
		}
	}
	E, W, err := EigenSymAsc(Hs)
	if err != nil {
		return nil, nil, errDecorate(err, "EigenGenSym")
	}
	V := new(mat.Dense)
	V.Mul(&X, W)
	return E, V, nil
}
