package ham

import (
	"fmt"
	"math/cmplx"

	"gonum.org/v1/gonum/mat"
)

// Bloch returns the dense Bloch Hamiltonian at momentum k,
//
//	H(k) = Σ_dn exp(i k·(A·dn)) H(dn),
//
// as a gonum complex matrix. k must have one component per spatial
// dimension (ErrMomentumDim otherwise).
// Complexity: O(NumSites² + total nnz).
func (h *Hamiltonian) Bloch(k []float64) (*mat.CDense, error) {
	if len(k) != h.lat.Dim() {
		return nil, fmt.Errorf("momentum of length %d in %d dimensions: %w", len(k), h.lat.Dim(), ErrMomentumDim)
	}
	n := h.lat.NumSites()
	out := mat.NewCDense(n, n, nil)
	for _, hm := range h.harms {
		shift, err := h.lat.CellShift(hm.Dn)
		if err != nil {
			return nil, err
		}
		var phase float64
		for d := range k {
			phase += k[d] * shift[d]
		}
		factor := cmplx.Exp(complex(0, phase))
		m := hm.Mat
		rowIdx, colPtr, vals := m.RowIndices(), m.ColPtr(), m.Vals()
		for j := 0; j < m.Cols(); j++ {
			for p := colPtr[j]; p < colPtr[j+1]; p++ {
				i := rowIdx[p]
				out.Set(i, j, out.At(i, j)+factor*vals[p])
			}
		}
	}

	return out, nil
}
