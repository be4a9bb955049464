package eigen

import "gonum.org/v1/gonum/mat"

//Assembly of the expanded subspace matrices. Both are built into a SymDense,
//which stores a single triangle: writing the current-bands/expansion cross
//block defines its mirror image, so the two off-diagonal blocks are one
//number each and cannot drift apart through round-off, which would break the
//symmetric-solver precondition. The expansion-expansion blocks are computed
//as full products and explicitly symmetrized for the same reason.

//subspaceOverlap builds the (nCur+nExp) overlap matrix
//
//	[[ I,          <cur|exp> ],
//	 [ <exp|cur>,  <exp|exp> ]]
//
//The current bands are orthonormal from the previous rotation, hence the
//identity block.
func subspaceOverlap(cur, exp *mat.Dense) *mat.SymDense {
	nCur, _ := cur.Dims()
	nExp, _ := exp.Dims()
	var cross mat.Dense
	cross.Mul(cur, exp.T())
	var ee mat.Dense
	ee.Mul(exp, exp.T())
	S := mat.NewSymDense(nCur+nExp, nil)
	for i := 0; i < nCur; i++ {
		S.SetSym(i, i, 1.0)
	}
	for i := 0; i < nCur; i++ {
		for j := 0; j < nExp; j++ {
			S.SetSym(i, nCur+j, cross.At(i, j))
		}
	}
	for i := 0; i < nExp; i++ {
		for j := i; j < nExp; j++ {
			S.SetSym(nCur+i, nCur+j, 0.5*(ee.At(i, j)+ee.At(j, i)))
		}
	}
	return S
}

//subspaceHamiltonian builds the matching (nCur+nExp) Hamiltonian matrix
//
//	[[ diag(E),     <cur|H|exp> ],
//	 [ <exp|H|cur>, <exp|H|exp> ]]
//
//using the diagonal eigenvalue representation of the current bands and the
//operator image HCexp of the expansion bands, so the operator is applied to
//the expansion only.
func subspaceHamiltonian(E []float64, cur, exp, hcExp *mat.Dense) *mat.SymDense {
	nCur, _ := cur.Dims()
	nExp, _ := exp.Dims()
	var cross mat.Dense
	cross.Mul(cur, hcExp.T())
	var ee mat.Dense
	ee.Mul(exp, hcExp.T())
	H := mat.NewSymDense(nCur+nExp, nil)
	for i := 0; i < nCur; i++ {
		H.SetSym(i, i, E[i])
	}
	for i := 0; i < nCur; i++ {
		for j := 0; j < nExp; j++ {
			H.SetSym(i, nCur+j, cross.At(i, j))
		}
	}
	for i := 0; i < nExp; i++ {
		for j := i; j < nExp; j++ {
			H.SetSym(nCur+i, nCur+j, 0.5*(ee.At(i, j)+ee.At(j, i)))
		}
	}
	return H
}
