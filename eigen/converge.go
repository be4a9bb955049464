package eigen

import (
	"golang.org/x/exp/slices"
	"gonum.org/v1/gonum/floats"
)

//Convergence accounting. Both quantities are reduced conservatively over the
//partitions: the eigenvalue change by a global max, and the converged count by
//a global min of the lowest still-unconverged index, so a band only counts as
//converged once every partition agrees it is.

//checkDeigs returns the largest change of the first nBands eigenvalues over
//all blocks and partitions, and the system-wide agreed count of eigenvalues
//converged from the bottom. dE holds per block the absolute eigenvalue
//changes of the bands that survived truncation; only the first nBands of
//them (the physically requested bands, not the buffer) are examined.
func (D *Davidson) checkDeigs(dE [][]float64, thr float64) (float64, int) {
	local := 0.0
	pending := D.nBands
	for _, d := range dE {
		n := D.nBands
		if len(d) < n {
			n = len(d)
		}
		if n == 0 {
			continue
		}
		if m := slices.Max(d[:n]); m > local {
			local = m
		}
		for j := 0; j < n; j++ {
			if d[j] > thr {
				if j < pending {
					pending = j
				}
				break
			}
		}
	}
	return D.comm.Max(local), D.comm.Min(pending)
}

//eband returns the band-energy sum of the first nBands eigenvalues, weighted
//by spin degeneracy and k-point weight and summed over the partitions, so the
//reported scalar is the same everywhere.
func (D *Davidson) eband(E [][]float64) float64 {
	local := 0.0
	nk := D.basis.NKpts()
	for i, Ei := range E {
		local += D.basis.WSpin() * D.basis.Wk(i%nk) * floats.Sum(Ei[:D.nBands])
	}
	return D.comm.Sum(local)
}
