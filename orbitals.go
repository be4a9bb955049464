/*
 * orbitals.go, part of godft.
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

//Within the package it is understood that a band is a row vector, i.e. one row
//of the coefficient matrix of its (spin,k) block. The names of some functions
//in the library reflect this.

package dft

import (
	"fmt"
	"math"

	"golang.org/x/exp/rand"
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"
)

// Orbitals is a block of electronic orbitals: one dense coefficient matrix per
// (spin channel, k-point), with bands as rows and basis coefficients as
// columns. All blocks hold the same number of bands; different k-points may
// have different basis sizes.
type Orbitals struct {
	nspins int
	nk     int
	blocks []*mat.Dense //nspins*nk blocks, flat index spin*nk+k
}

//NewOrbitals returns a zero-filled Orbitals with nbands bands per block and
//the per-k-point basis sizes given in sizes.
func NewOrbitals(nspins, nk, nbands int, sizes []int) (*Orbitals, error) {
	if nspins < 1 || nk < 1 || nbands < 1 {
		return nil, CError{fmt.Sprintf("NewOrbitals: need at least one spin, k-point and band, got %d %d %d", nspins, nk, nbands), []string{"NewOrbitals"}, true}
	}
	if len(sizes) != nk {
		return nil, CError{fmt.Sprintf("NewOrbitals: %d basis sizes given for %d k-points", len(sizes), nk), []string{"NewOrbitals"}, true}
	}
	O := &Orbitals{nspins: nspins, nk: nk}
	O.blocks = make([]*mat.Dense, nspins*nk)
	for s := 0; s < nspins; s++ {
		for k := 0; k < nk; k++ {
			if sizes[k] < 1 {
				return nil, CError{fmt.Sprintf("NewOrbitals: empty basis for k-point %d", k), []string{"NewOrbitals"}, true}
			}
			O.blocks[s*nk+k] = mat.NewDense(nbands, sizes[k], nil)
		}
	}
	return O, nil
}

//RandomOrbitals returns an Orbitals filled with uniform random coefficients in
//[-0.5,0.5), reproducible for a given seed. It is the usual way to produce an
//initial guess for the iterative diagonalizers.
func RandomOrbitals(nspins, nk, nbands int, sizes []int, seed uint64) (*Orbitals, error) {
	O, err := NewOrbitals(nspins, nk, nbands, sizes)
	if err != nil {
		return nil, errDecorate(err, "RandomOrbitals")
	}
	r := rand.New(rand.NewSource(seed))
	for _, b := range O.blocks {
		raw := b.RawMatrix()
		for i := range raw.Data {
			raw.Data[i] = r.Float64() - 0.5
		}
	}
	return O, nil
}

//NSpins returns the number of spin channels.
func (O *Orbitals) NSpins() int { return O.nspins }

//NKpts returns the number of k-points held in this block.
func (O *Orbitals) NKpts() int { return O.nk }

//NBlocks returns the number of (spin,k-point) blocks.
func (O *Orbitals) NBlocks() int { return len(O.blocks) }

//NBands returns the number of bands, which is the same for every block.
func (O *Orbitals) NBands() int {
	r, _ := O.blocks[0].Dims()
	return r
}

//BasisSize returns the number of basis coefficients of the kth k-point.
func (O *Orbitals) BasisSize(k int) int {
	_, c := O.blocks[k].Dims() //same for every spin
	return c
}

//Block returns the coefficient matrix of the ith (spin,k) block, in flat
//order (spin-major). The returned matrix shares storage with O.
func (O *Orbitals) Block(i int) *mat.Dense {
	return O.blocks[i]
}

//BlockAt returns the coefficient matrix for the given spin channel and
//k-point. The returned matrix shares storage with O.
func (O *Orbitals) BlockAt(spin, k int) *mat.Dense {
	return O.blocks[spin*O.nk+k]
}

//Copy returns a deep copy of O.
func (O *Orbitals) Copy() *Orbitals {
	n := &Orbitals{nspins: O.nspins, nk: O.nk}
	n.blocks = make([]*mat.Dense, len(O.blocks))
	for i, b := range O.blocks {
		n.blocks[i] = mat.DenseCopyOf(b)
	}
	return n
}

//BandView returns an Orbitals whose blocks are views of the bands [lo,hi) of
//the blocks of O. Changes in the view are reflected in O and vice-versa.
func (O *Orbitals) BandView(lo, hi int) *Orbitals {
	if lo < 0 || hi > O.NBands() || lo >= hi {
		panic(ErrBandOutOfRange)
	}
	n := &Orbitals{nspins: O.nspins, nk: O.nk}
	n.blocks = make([]*mat.Dense, len(O.blocks))
	for i, b := range O.blocks {
		_, c := b.Dims()
		n.blocks[i] = b.Slice(lo, hi, 0, c).(*mat.Dense)
	}
	return n
}

//SetBlock replaces block i of O with m, which must keep the basis size of
//the block it replaces. Band counts may change, but the caller must leave
//every block with the same number of bands.
func (O *Orbitals) SetBlock(i int, m *mat.Dense) {
	_, oc := O.blocks[i].Dims()
	mr, mc := m.Dims()
	if mc != oc || mr < 1 {
		panic(ErrShape)
	}
	O.blocks[i] = m
}

//Norms returns the Euclidean norm of each band, per block.
func (O *Orbitals) Norms() [][]float64 {
	r := make([][]float64, len(O.blocks))
	for i, b := range O.blocks {
		rows, _ := b.Dims()
		r[i] = make([]float64, rows)
		for j := 0; j < rows; j++ {
			v := b.RawRowView(j)
			r[i][j] = math.Sqrt(floats.Dot(v, v))
		}
	}
	return r
}

//KineticNorms returns, per block and band, the kinetic-energy expectation
//value sum_g KE(g)*c(g)^2 in the basis B. It panics if B does not match the
//basis sizes of O.
func (O *Orbitals) KineticNorms(B *Basis) [][]float64 {
	r := make([][]float64, len(O.blocks))
	for i, b := range O.blocks {
		k := i % O.nk
		rows, cols := b.Dims()
		ke := B.KE(k)
		if len(ke) != cols {
			panic(ErrBasisMismatch)
		}
		r[i] = make([]float64, rows)
		for j := 0; j < rows; j++ {
			v := b.RawRowView(j)
			acc := 0.0
			for g, c := range v {
				acc += ke[g] * c * c
			}
			r[i][j] = acc
		}
	}
	return r
}

//ScaleBands multiplies each band of each block by the corresponding factor,
//in place. f must have one factor per block and band.
func (O *Orbitals) ScaleBands(f [][]float64) {
	if len(f) != len(O.blocks) {
		panic(ErrShape)
	}
	for i, b := range O.blocks {
		rows, _ := b.Dims()
		if len(f[i]) != rows {
			panic(ErrShape)
		}
		for j := 0; j < rows; j++ {
			floats.Scale(f[i][j], b.RawRowView(j))
		}
	}
}

//RandomizeBand overwrites band j of block i with uniform random coefficients
//in [-0.5,0.5). The result depends only on the seed, not on which partition
//runs the call, so redundant partitions stay bit-identical.
func (O *Orbitals) RandomizeBand(i, j int, seed uint64) {
	b := O.blocks[i]
	rows, _ := b.Dims()
	if j < 0 || j >= rows {
		panic(ErrBandOutOfRange)
	}
	r := rand.New(rand.NewSource(seed))
	v := b.RawRowView(j)
	for g := range v {
		v[g] = r.Float64() - 0.5
	}
}

//sameLayout panics unless A and B have identical spin/k/band/basis layout.
func sameLayout(A, B *Orbitals) {
	if A.nspins != B.nspins || A.nk != B.nk || len(A.blocks) != len(B.blocks) {
		panic(ErrBlockMismatch)
	}
	for i := range A.blocks {
		ar, ac := A.blocks[i].Dims()
		br, bc := B.blocks[i].Dims()
		if ar != br || ac != bc {
			panic(ErrBlockMismatch)
		}
	}
}

//SameLayout returns whether A and B have identical spin/k/band/basis layout.
func SameLayout(A, B *Orbitals) (ret bool) {
	defer func() {
		if r := recover(); r != nil {
			ret = false
		}
	}()
	sameLayout(A, B)
	return true
}
