// SPDX-License-Identifier: MIT

package sparse

import "gonum.org/v1/gonum/mat"

// ToCDense expands the matrix into a gonum dense complex matrix.
// Intended for small matrices, diagnostics and eigen-backends; the sparse
// form stays the source of truth.
// Complexity: O(rows×cols + nnz).
func (m *CSC) ToCDense() *mat.CDense {
	out := mat.NewCDense(m.rows, m.cols, nil)
	for j := 0; j < m.cols; j++ {
		for k := m.colPtr[j]; k < m.colPtr[j+1]; k++ {
			out.Set(m.rowIdx[k], j, m.vals[k])
		}
	}

	return out
}
