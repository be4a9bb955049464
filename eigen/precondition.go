package eigen

import (
	"math"

	dft "github.com/rmera/godft"
)

//precondition applies the inverse-kinetic (Jacobi) preconditioner to the
//residual block Cerr, in place. Each coefficient is divided by
//x + exp(-x), with x the ratio of the basis-function kinetic energy to the
//band's reference kinetic energy keRef. The kinetic operator dominates the
//high-frequency end of the spectrum, so this is a cheap approximation to the
//inverse Hamiltonian there; the exp(-x) term keeps the divisor at 1 instead
//of 0 when x goes to 0, so low-energy coefficients pass through unchanged
//rather than blowing up.
func precondition(Cerr *dft.Orbitals, basis *dft.Basis, keRef [][]float64) {
	nk := basis.NKpts()
	for i := 0; i < Cerr.NBlocks(); i++ {
		ke := basis.KE(i % nk)
		b := Cerr.Block(i)
		rows, cols := b.Dims()
		for j := 0; j < rows; j++ {
			v := b.RawRowView(j)
			ref := keRef[i][j]
			for g := 0; g < cols; g++ {
				x := ke[g] / ref
				x += math.Exp(-x)
				v[g] /= x
			}
		}
	}
}
