/*
 * davidson.go, part of godft.
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

package eigen

import (
	"fmt"
	"time"

	dft "github.com/rmera/godft"
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"
)

// Davidson is a block-Davidson iterative diagonalizer for a Hamiltonian
// supplied through the dft.Hamiltonian interface. It refines nBands bands
// (plus a buffer of nBandsExtra which converge along but are never counted)
// until the change of every one of the first nBands eigenvalues between
// consecutive iterations falls below the threshold on every partition, or the
// iteration budget runs out.
type Davidson struct {
	h           dft.Hamiltonian
	basis       *dft.Basis
	nBands      int
	nBandsExtra int
	nIter       int
	thr         float64
	comm        dft.Reducer
	rep         dft.Reporter
	normCut     float64
}

// Options collects the optional knobs of a Davidson solver. The zero value of
// each field means "use the default".
type Options struct {
	NBandsExtra  int          //buffer bands on top of NBands. Default 0.
	NIterations  int          //iteration budget for standalone solves. Default 100.
	EigThreshold float64      //eigenvalue-change convergence threshold. Default 1e-8.
	Comm         dft.Reducer  //reduction context. Default dft.Serial.
	Reporter     dft.Reporter //progress sink. Default a dft.LogReporter with prefix "Davidson".
}

//DefaultOptions returns the options used when New is called without any.
func DefaultOptions() *Options {
	r := new(Options)
	r.NIterations = 100
	r.EigThreshold = 1e-8
	r.Comm = dft.Serial{}
	r.Reporter = dft.NewLogReporter("Davidson", nil)
	return r
}

//New prepares a Davidson solver for nBands bands of the Hamiltonian h on the
//basis b. It fails, with a critical error, if nBands plus the buffer bands
//reach half the smallest basis size over the k-points: past that point the
//expanded trial subspace cannot stay linearly independent and the generalized
//eigenproblem becomes ill-posed. This is checked here, before any operator
//application, and never retried.
func New(h dft.Hamiltonian, b *dft.Basis, nBands int, opts ...*Options) (*Davidson, error) {
	if h == nil || b == nil {
		return nil, Error{NilCollaborator, []string{"New"}, true}
	}
	o := DefaultOptions()
	if len(opts) > 0 && opts[0] != nil {
		given := opts[0]
		if given.NBandsExtra > 0 {
			o.NBandsExtra = given.NBandsExtra
		}
		if given.NIterations > 0 {
			o.NIterations = given.NIterations
		}
		if given.EigThreshold > 0 {
			o.EigThreshold = given.EigThreshold
		}
		if given.Comm != nil {
			o.Comm = given.Comm
		}
		if given.Reporter != nil {
			o.Reporter = given.Reporter
		}
	}
	if nBands < 1 {
		return nil, Error{fmt.Sprintf("need at least one band, got %d", nBands), []string{"New"}, true}
	}
	nMax := nBands + o.NBandsExtra
	if 2*nMax >= b.NMin() {
		return nil, Error{fmt.Sprintf("%s: n_bands+n_bands_extra = %d exceeds min(n_basis)/2 = %d", InfeasibleBands, nMax, b.NMin()/2), []string{"New"}, true}
	}
	D := &Davidson{
		h:           h,
		basis:       b,
		nBands:      nBands,
		nBandsExtra: o.NBandsExtra,
		nIter:       o.NIterations,
		thr:         o.EigThreshold,
		comm:        o.Comm,
		rep:         o.Reporter,
		normCut:     b.NormCut(),
	}
	return D, nil
}

// Result is the outcome of one diagonalization: the refined orbitals, their
// operator image (kept consistent with C through every rotation, never
// recomputed), the eigenvalues per (spin,k) block in ascending order, and the
// final convergence state. Non-convergence is not an error; standalone
// callers decide whether Converged=false is fatal for them.
type Result struct {
	C          *dft.Orbitals
	HC         *dft.Orbitals
	E          [][]float64
	Eband      float64
	Converged  bool
	Iterations int
	DeigMax    float64
	NEigsDone  int
}

//Run diagonalizes starting from the guess C, with the iteration budget and
//threshold the solver was built with. It is the standalone entry point:
//exhausting the budget without convergence is reported as a failure through
//the progress sink (and in the Result), though not returned as an error.
//The engine owns C for the duration of the call and hands it back, rotated
//into the eigenbasis, inside the Result.
func (D *Davidson) Run(C *dft.Orbitals) (*Result, error) {
	return D.run(C, D.nIter, D.thr, false, false)
}

//RunInner diagonalizes with a per-call iteration budget and threshold, for use
//embedded in an outer loop (e.g. one SCF cycle) where thresholds are relaxed
//and running out of iterations is expected. Failure to converge is not
//reported as a failure.
func (D *Davidson) RunInner(C *dft.Orbitals, nIterations int, eigThreshold float64) (*Result, error) {
	if nIterations <= 0 {
		nIterations = D.nIter
	}
	if eigThreshold <= 0 {
		eigThreshold = D.thr
	}
	return D.run(C, nIterations, eigThreshold, true, false)
}

//RunHelper behaves like Run but suppresses the failure report, for use when
//the result is handed to a successor solver that will keep refining it.
func (D *Davidson) RunHelper(C *dft.Orbitals) (*Result, error) {
	return D.run(C, D.nIter, D.thr, false, true)
}

func (D *Davidson) run(C *dft.Orbitals, nIter int, thr float64, inner, helper bool) (*Result, error) {
	if C == nil || C.NBlocks() == 0 {
		panic(dft.ErrNilOrbitals)
	}
	start := time.Now()
	nMax := D.nBands + D.nBandsExtra
	if nb0 := C.NBands(); nb0 < D.nBands || nb0 > nMax {
		return nil, Error{fmt.Sprintf("%s: %d bands given, want between %d and %d", BadInitialGuess, nb0, D.nBands, nMax), []string{"Run"}, true}
	}
	if C.NKpts() != D.basis.NKpts() {
		return nil, Error{fmt.Sprintf("guess holds %d k-points but the basis %d", C.NKpts(), D.basis.NKpts()), []string{"Run"}, true}
	}
	nb := C.NBlocks()

	//Initial subspace diagonalization: rotate the guess into its own
	//eigenbasis. The guess need not be orthonormal, only a reasonable
	//subspace (full band rank); solving the generalized problem against its
	//own overlap makes the rotated bands exactly orthonormal, so the
	//current-bands blocks are identity and diag(E) from here on. A
	//rank-deficient guess fails loudly here.
	HC, err := D.h.Apply(C)
	if err != nil {
		return nil, errDecorate(err, "Davidson.Run")
	}
	E := make([][]float64, nb)
	for i := 0; i < nb; i++ {
		Ei, V, err := dft.EigenGenSym(dft.SymProd(C.Block(i), HC.Block(i)), dft.SymProd(C.Block(i), C.Block(i)))
		if err != nil {
			return nil, errDecorate(err, "Davidson.Run: initial subspace")
		}
		E[i] = Ei
		rotateBlock(C.Block(i), V)
		rotateBlock(HC.Block(i), V)
	}
	D.report(0, E, 0, 0, inner, false, false, start)

	nEigsDone := 0
	deigMax := 0.0
	converged := false
	iterations := 0
	for iIter := 1; iIter <= nIter; iIter++ {
		iterations = iIter
		nCur := C.NBands()

		//Subspace expansion from the residuals of the unconverged bands only.
		//Bands below nEigsDone are globally converged and never re-expanded,
		//which is what keeps the converged count from sliding back.
		Csel, HCsel := C, HC
		if nEigsDone > 0 {
			Csel = C.BandView(nEigsDone, nCur)
			HCsel = HC.BandView(nEigsDone, nCur)
		}
		keRef := Csel.KineticNorms(D.basis)
		Cexp := HCsel.Copy()
		for i := 0; i < nb; i++ {
			eb := Cexp.Block(i)
			cb := Csel.Block(i)
			rows, _ := eb.Dims()
			for j := 0; j < rows; j++ {
				floats.AddScaled(eb.RawRowView(j), -E[i][nEigsDone+j], cb.RawRowView(j))
			}
		}
		precondition(Cexp, D.basis, keRef)
		norms := Cexp.Norms()
		D.regularize(Cexp, norms, uint64(iIter))
		for i := range norms {
			for j := range norms[i] {
				norms[i][j] = 1.0 / norms[i][j]
			}
		}
		Cexp.ScaleBands(norms)

		HCexp, err := D.h.Apply(Cexp)
		if err != nil {
			return nil, errDecorate(err, "Davidson.Run")
		}
		nExp := Cexp.NBands()
		nNew := nCur + nExp
		nNext := nNew
		if nNext > nMax {
			nNext = nMax
		}

		//Expanded subspace problem and fused truncation-rotation, block by
		//block. HC follows C through the same rotation; the operator is never
		//reapplied to the retained combination.
		dE := make([][]float64, nb)
		for i := 0; i < nb; i++ {
			Ov := subspaceOverlap(C.Block(i), Cexp.Block(i))
			Hm := subspaceHamiltonian(E[i], C.Block(i), Cexp.Block(i), HCexp.Block(i))
			Enew, V, err := dft.EigenGenSym(Hm, Ov)
			if err != nil {
				return nil, errDecorate(err, fmt.Sprintf("Davidson.Run: iteration %d, block %d", iIter, i))
			}
			Vcur := V.Slice(0, nCur, 0, nNext)
			Vexp := V.Slice(nCur, nNew, 0, nNext)
			C.SetBlock(i, rotTrunc(Vcur, Vexp, C.Block(i), Cexp.Block(i)))
			HC.SetBlock(i, rotTrunc(Vcur, Vexp, HC.Block(i), HCexp.Block(i)))
			dE[i] = make([]float64, nCur)
			for j := 0; j < nCur; j++ {
				dE[i][j] = abs(E[i][j] - Enew[j])
			}
			E[i] = Enew[:nNext]
		}

		deigMax, nEigsDone = D.checkDeigs(dE, thr)
		converged = nEigsDone >= D.nBands
		convergeFailed := iIter == nIter && !(inner || helper || converged)
		D.report(iIter, E, deigMax, nEigsDone, inner, converged, convergeFailed, start)
		if converged {
			break
		}
	}
	return &Result{
		C:          C,
		HC:         HC,
		E:          E,
		Eband:      D.eband(E),
		Converged:  converged,
		Iterations: iterations,
		DeigMax:    deigMax,
		NEigsDone:  nEigsDone,
	}, nil
}

func (D *Davidson) report(iter int, E [][]float64, deig float64, nDone int, inner, conv, failed bool, start time.Time) {
	D.rep.Report(dft.Step{
		Iteration:      iter,
		Eband:          D.eband(E),
		DeigMax:        deig,
		NEigsDone:      nDone,
		Elapsed:        time.Since(start),
		InnerLoop:      inner,
		Converged:      conv,
		ConvergeFailed: failed,
	})
}

//rotateBlock rotates the bands (rows) of b by the eigenvector matrix V, in
//place: b = Vᵀ*b.
func rotateBlock(b, V *mat.Dense) {
	var n mat.Dense
	n.Mul(V.T(), b)
	b.Copy(&n)
}

//rotTrunc returns the retained combination Vcurᵀ*cur + Vexpᵀ*exp in one step.
func rotTrunc(Vcur, Vexp mat.Matrix, cur, exp *mat.Dense) *mat.Dense {
	n := new(mat.Dense)
	n.Mul(Vcur.T(), cur)
	var t mat.Dense
	t.Mul(Vexp.T(), exp)
	n.Add(n, &t)
	return n
}

func abs(x float64) float64 {
	if x < 0 {
		return -x
	}
	return x
}
