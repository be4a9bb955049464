package eigen

import dft "github.com/rmera/godft"

//regularize replaces the near-null bands of the expansion block with random
//vectors, so a band with an identically zero residual (nothing left to
//correct) can neither stall the expansion at reduced rank nor divide by zero
//during normalization. A band counts as near-null when its norm falls below
//the basis round-off estimate dft.Basis.NormCut. The recorded norm of a
//regularized band is set to the nominal 1.0; the expansion overlap matrix
//absorbs the actual norm of the random vector.
//
//Partitions holding redundant copies of a block may have computed bit-different
//norms for it, so the norms are broadcast from the root partition before the
//cutoff comparison: either every copy regularizes a band, or none does. The
//random coefficients depend only on the iteration index and the band's
//position, never on the partition, so the copies also stay bit-identical
//afterwards.
func (D *Davidson) regularize(Cexp *dft.Orbitals, norms [][]float64, iIter uint64) {
	for _, n := range norms {
		D.comm.Broadcast(n)
	}
	for i, n := range norms {
		for j, v := range n {
			if v < D.normCut {
				Cexp.RandomizeBand(i, j, regSeed(iIter, i, j))
				n[j] = 1.0
			}
		}
	}
}

//regSeed folds the iteration index and the band's position into one seed.
//The iteration index goes in the high bits so successive iterations never
//reuse a seed for any band.
func regSeed(iIter uint64, block, band int) uint64 {
	return iIter<<40 | uint64(block)<<20 | uint64(band)
}
