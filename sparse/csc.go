// SPDX-License-Identifier: MIT

package sparse

import (
	"fmt"
	"sort"
)

// Triplet is one (row, col, value) coordinate entry used for construction.
type Triplet struct {
	Row, Col int
	Val      complex128
}

// CSC is a compressed-sparse-column matrix of complex128 values.
//
// Storage: for column j, the stored entries occupy slots
// colPtr[j]..colPtr[j+1]-1 of rowIdx/vals, with rowIdx ascending inside
// each column. The layout (rowIdx, colPtr) never changes after
// construction; vals is the only mutable part.
type CSC struct {
	rows, cols int
	colPtr     []int        // length cols+1
	rowIdx     []int        // length NNZ
	vals       []complex128 // length NNZ
}

// FromTriplets builds a CSC matrix from coordinate entries.
// Duplicate (row, col) coordinates are merged by summation; entries may
// arrive in any order. Explicit zeros are kept as stored entries —
// the layout is part of the contract, values are not.
// Returns ErrBadShape for non-positive dimensions and ErrOutOfRange for
// entries outside the shape.
// Complexity: O(nnz log nnz) time, O(nnz) memory.
func FromTriplets(rows, cols int, entries []Triplet) (*CSC, error) {
	if rows <= 0 || cols <= 0 {
		return nil, fmt.Errorf("%dx%d: %w", rows, cols, ErrBadShape)
	}
	for _, e := range entries {
		if e.Row < 0 || e.Row >= rows || e.Col < 0 || e.Col >= cols {
			return nil, fmt.Errorf("entry (%d,%d) in %dx%d: %w", e.Row, e.Col, rows, cols, ErrOutOfRange)
		}
	}

	sorted := make([]Triplet, len(entries))
	copy(sorted, entries)
	sort.SliceStable(sorted, func(a, b int) bool {
		if sorted[a].Col != sorted[b].Col {
			return sorted[a].Col < sorted[b].Col
		}

		return sorted[a].Row < sorted[b].Row
	})

	m := &CSC{
		rows:   rows,
		cols:   cols,
		colPtr: make([]int, cols+1),
		rowIdx: make([]int, 0, len(sorted)),
		vals:   make([]complex128, 0, len(sorted)),
	}
	colCount := make([]int, cols)
	lastRow, lastCol := -1, -1
	for _, e := range sorted {
		if e.Row == lastRow && e.Col == lastCol {
			m.vals[len(m.vals)-1] += e.Val // duplicate coordinate: merge
			continue
		}
		m.rowIdx = append(m.rowIdx, e.Row)
		m.vals = append(m.vals, e.Val)
		colCount[e.Col]++
		lastRow, lastCol = e.Row, e.Col
	}
	for j := 0; j < cols; j++ {
		m.colPtr[j+1] = m.colPtr[j] + colCount[j]
	}

	return m, nil
}

// Rows returns the number of matrix rows. Complexity: O(1).
func (m *CSC) Rows() int { return m.rows }

// Cols returns the number of matrix columns. Complexity: O(1).
func (m *CSC) Cols() int { return m.cols }

// NNZ returns the number of stored entries. Complexity: O(1).
func (m *CSC) NNZ() int { return len(m.vals) }

// At returns the value at (i, j), zero when (i, j) is not stored.
// Returns ErrOutOfRange for indices outside the shape.
// Complexity: O(log nnz(column j)).
func (m *CSC) At(i, j int) (complex128, error) {
	if i < 0 || i >= m.rows || j < 0 || j >= m.cols {
		return 0, fmt.Errorf("(%d,%d) in %dx%d: %w", i, j, m.rows, m.cols, ErrOutOfRange)
	}
	lo, hi := m.colPtr[j], m.colPtr[j+1]
	k := lo + sort.SearchInts(m.rowIdx[lo:hi], i)
	if k < hi && m.rowIdx[k] == i {
		return m.vals[k], nil
	}

	return 0, nil
}

// Col returns the stored row indices and values of column j.
// Both slices alias internal storage: rows must not be modified, values
// may be (they are the live entries).
// Returns ErrOutOfRange for j outside [0, Cols).
// Complexity: O(1).
func (m *CSC) Col(j int) ([]int, []complex128, error) {
	if j < 0 || j >= m.cols {
		return nil, nil, fmt.Errorf("column %d of %d: %w", j, m.cols, ErrOutOfRange)
	}
	lo, hi := m.colPtr[j], m.colPtr[j+1]

	return m.rowIdx[lo:hi], m.vals[lo:hi], nil
}

// Vals returns the stored values as a mutable borrowed view.
// Index k of this slice is the "slot" identifier of the k-th stored entry.
func (m *CSC) Vals() []complex128 { return m.vals }

// RowIndices returns the row-index array. Borrowed, read-only by contract.
func (m *CSC) RowIndices() []int { return m.rowIdx }

// ColPtr returns the column-pointer array (length Cols+1).
// Borrowed, read-only by contract.
func (m *CSC) ColPtr() []int { return m.colPtr }

// Clone returns a deep copy sharing no storage with the receiver.
// Complexity: O(nnz + cols).
func (m *CSC) Clone() *CSC {
	out := &CSC{
		rows:   m.rows,
		cols:   m.cols,
		colPtr: make([]int, len(m.colPtr)),
		rowIdx: make([]int, len(m.rowIdx)),
		vals:   make([]complex128, len(m.vals)),
	}
	copy(out.colPtr, m.colPtr)
	copy(out.rowIdx, m.rowIdx)
	copy(out.vals, m.vals)

	return out
}

// SameLayout reports whether o shares the receiver's exact sparsity
// structure: shape, nonzero count, row indices and column pointers.
// Values are deliberately ignored.
// Complexity: O(nnz + cols).
func (m *CSC) SameLayout(o *CSC) bool {
	if o == nil || m.rows != o.rows || m.cols != o.cols || len(m.vals) != len(o.vals) {
		return false
	}
	for k := range m.rowIdx {
		if m.rowIdx[k] != o.rowIdx[k] {
			return false
		}
	}
	for j := range m.colPtr {
		if m.colPtr[j] != o.colPtr[j] {
			return false
		}
	}

	return true
}
