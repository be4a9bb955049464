/*
 * godft_test.go, part of godft.
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
	"testing"

	"gonum.org/v1/gonum/mat"
)

//TestEigenSymAsc diagonalizes [[2,1],[1,2]], whose eigenvalues are {1,3}.
func TestEigenSymAsc(Te *testing.T) {
	H := mat.NewSymDense(2, []float64{2, 1, 1, 2})
	E, V, err := EigenSymAsc(H)
	if err != nil {
		Te.Fatal(err)
	}
	if math.Abs(E[0]-1) > 1e-12 || math.Abs(E[1]-3) > 1e-12 {
		Te.Errorf("eigenvalues %v, want {1,3}", E)
	}
	//H v = E v for each column
	for j := 0; j < 2; j++ {
		for i := 0; i < 2; i++ {
			hv := H.At(i, 0)*V.At(0, j) + H.At(i, 1)*V.At(1, j)
			if math.Abs(hv-E[j]*V.At(i, j)) > 1e-12 {
				Te.Errorf("column %d is not an eigenvector", j)
			}
		}
	}
}

//TestEigenGenSym solves a 3x3 generalized problem and checks the residual
//H*V - O*V*diag(E) along with the O-orthonormality of the eigenvectors.
func TestEigenGenSym(Te *testing.T) {
	H := mat.NewSymDense(3, []float64{
		2, 0.5, 0.1,
		0.5, 3, 0.2,
		0.1, 0.2, 5,
	})
	O := mat.NewSymDense(3, []float64{
		1, 0.2, 0,
		0.2, 1, 0.1,
		0, 0.1, 1,
	})
	E, V, err := EigenGenSym(H, O)
	if err != nil {
		Te.Fatal(err)
	}
	fmt.Println("generalized eigenvalues:", E)
	for j := 0; j < 2; j++ {
		if E[j] > E[j+1] {
			Te.Errorf("eigenvalues not ascending: %v", E)
		}
	}
	var hv, ov mat.Dense
	hv.Mul(H, V)
	ov.Mul(O, V)
	for j := 0; j < 3; j++ {
		for i := 0; i < 3; i++ {
			if math.Abs(hv.At(i, j)-E[j]*ov.At(i, j)) > 1e-10 {
				Te.Errorf("residual of eigenpair %d too large", j)
			}
		}
	}
	var g mat.Dense
	g.Mul(V.T(), &ov)
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			want := 0.0
			if i == j {
				want = 1.0
			}
			if math.Abs(g.At(i, j)-want) > 1e-10 {
				Te.Errorf("eigenvectors not O-orthonormal: VᵀOV(%d,%d) = %g", i, j, g.At(i, j))
			}
		}
	}
}

//TestEigenGenSymSingular feeds a rank-deficient overlap, which must be
//refused with a critical error.
func TestEigenGenSymSingular(Te *testing.T) {
	H := mat.NewSymDense(2, []float64{1, 0, 0, 2})
	O := mat.NewSymDense(2, []float64{1, 1, 1, 1}) //rank 1
	_, _, err := EigenGenSym(H, O)
	if err == nil {
		Te.Fatal("a singular overlap should be refused")
	}
	if ce, ok := err.(CriticalError); !ok || !ce.Critical() {
		Te.Error("a singular overlap should be a critical error")
	}
}

//TestOrbitals exercises views, norms, scaling and reproducible
//randomization.
func TestOrbitals(Te *testing.T) {
	C, err := RandomOrbitals(1, 2, 3, []int{4, 6}, 99)
	if err != nil {
		Te.Fatal(err)
	}
	if C.NBands() != 3 || C.BasisSize(1) != 6 {
		Te.Errorf("layout wrong: %d bands, k1 size %d", C.NBands(), C.BasisSize(1))
	}
	//views share storage
	v := C.BandView(1, 3)
	if v.NBands() != 2 {
		Te.Errorf("view has %d bands, want 2", v.NBands())
	}
	v.Block(0).Set(0, 0, 42)
	if C.Block(0).At(1, 0) != 42 {
		Te.Error("view does not share storage with its parent")
	}
	//norms against a hand-built band
	D, err := NewOrbitals(1, 1, 2, []int{2})
	if err != nil {
		Te.Fatal(err)
	}
	D.Block(0).Set(0, 0, 3)
	D.Block(0).Set(0, 1, 4)
	n := D.Norms()
	if math.Abs(n[0][0]-5) > 1e-14 || n[0][1] != 0 {
		Te.Errorf("norms %v, want {5,0}", n[0])
	}
	D.ScaleBands([][]float64{{1.0 / 5.0, 1}})
	if math.Abs(D.Block(0).At(0, 1)-0.8) > 1e-14 {
		Te.Error("band scaling wrong")
	}
	//kinetic norms
	b, err := NewBasis([][]float64{{2, 10}}, []float64{1}, 2)
	if err != nil {
		Te.Fatal(err)
	}
	ke := D.KineticNorms(b)
	want := 2*0.6*0.6 + 10*0.8*0.8
	if math.Abs(ke[0][0]-want) > 1e-12 {
		Te.Errorf("kinetic norm %g, want %g", ke[0][0], want)
	}
	//deterministic randomization
	A, _ := NewOrbitals(1, 1, 2, []int{5})
	B, _ := NewOrbitals(1, 1, 2, []int{5})
	A.RandomizeBand(0, 1, 77)
	B.RandomizeBand(0, 1, 77)
	for g := 0; g < 5; g++ {
		if A.Block(0).At(1, g) != B.Block(0).At(1, g) {
			Te.Error("randomization not reproducible for equal seeds")
			break
		}
	}
	A.RandomizeBand(0, 0, 78)
	if A.Block(0).At(0, 0) == A.Block(0).At(1, 0) {
		Te.Error("different seeds gave the same coefficients")
	}
}

//TestMatHamiltonian applies a diagonal matrix Hamiltonian and checks the
//image, plus the layout-mismatch error.
func TestMatHamiltonian(Te *testing.T) {
	m := mat.NewSymDense(3, nil)
	for i := 0; i < 3; i++ {
		m.SetSym(i, i, float64(i+1))
	}
	h := NewMatHamiltonian(m)
	C, err := NewOrbitals(1, 1, 2, []int{3})
	if err != nil {
		Te.Fatal(err)
	}
	C.Block(0).Set(0, 0, 1)
	C.Block(0).Set(1, 2, 2)
	HC, err := h.Apply(C)
	if err != nil {
		Te.Fatal(err)
	}
	if HC.Block(0).At(0, 0) != 1 || HC.Block(0).At(1, 2) != 6 {
		Te.Errorf("wrong operator image: %v %v", HC.Block(0).At(0, 0), HC.Block(0).At(1, 2))
	}
	bad, err := NewOrbitals(1, 2, 2, []int{3, 3})
	if err != nil {
		Te.Fatal(err)
	}
	if _, err := h.Apply(bad); err == nil {
		Te.Error("a block-count mismatch should fail")
	}
}

//TestBasis checks the derived quantities of a Basis.
func TestBasis(Te *testing.T) {
	b, err := NewBasis([][]float64{{0, 1, 2, 3}, {0, 1, 2, 3, 4, 5}}, []float64{0.25, 0.75}, 2)
	if err != nil {
		Te.Fatal(err)
	}
	if b.NMin() != 4 {
		Te.Errorf("NMin %d, want 4", b.NMin())
	}
	if b.Size(1) != 6 || b.NKpts() != 2 {
		Te.Error("sizes wrong")
	}
	if b.NormCut() <= 0 || b.NormCut() > 1e-6 {
		Te.Errorf("norm cutoff %g out of the round-off ballpark", b.NormCut())
	}
	if _, err := NewBasis([][]float64{{1}}, []float64{0.5, 0.5}, 2); err == nil {
		Te.Error("mismatched weights should fail")
	}
}
