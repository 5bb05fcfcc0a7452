// SPDX-License-Identifier: MIT

package csr

import "math"

// IterMode selects which cells a traversal visits.
type IterMode int

const (
	// Strict visits stored (non-zero) entries only, row-major, column-ascending.
	// Complexity O(nnz + rows).
	Strict IterMode = iota
	// Full visits every logical cell (row, col), zeros included.
	// Complexity O(rows*cols).
	Full
)

// String returns the mode name.
func (mode IterMode) String() string {
	switch mode {
	case Strict:
		return "strict"
	case Full:
		return "full"
	default:
		return "unknown"
	}
}

// Do visits cells in row-major order and calls fn(row, col, v); it stops
// early when fn returns false. fn must not mutate m.
func (m *CSR) Do(mode IterMode, fn func(row, col int, v float64) bool) {
	var r, c, k int
	if mode != Full {
		for r = 0; r < m.rows; r++ {
			for k = m.rowIndex[r]; k < m.rowIndex[r+1]; k++ {
				if !fn(r, m.colIndex[k], m.v[k]) {
					return
				}
			}
		}
		return
	}

	var v float64
	for r = 0; r < m.rows; r++ {
		k = m.rowIndex[r]
		for c = 0; c < m.cols; c++ {
			v = 0
			if k < m.rowIndex[r+1] && m.colIndex[k] == c {
				v = m.v[k]
				k++
			}
			if !fn(r, c, v) {
				return
			}
		}
	}
}

// Map returns a NEW store whose cells are fn(row, col, v).
//
// Implementation:
//   - Stage 1: Validate the receiver and allocate an empty result.
//   - Stage 2: Drive Do(mode); each fn result is appended to the current row
//     unless it is zero or NaN, and row offsets are closed as rows advance.
//
// Behavior highlights:
//   - The receiver is never written, in either mode.
//   - Strict transforms stored entries only; absent cells stay zero.
//   - Full shows fn every cell and may populate previously empty ones.
//
// Complexity:
//   - Strict: Time O(nnz + rows). Full: Time O(rows*cols).
func (m *CSR) Map(mode IterMode, fn func(row, col int, v float64) float64) (*CSR, error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, csrErrorf(opMap, err)
	}

	hint := len(m.v)
	if mode == Full {
		hint = 0
	}
	out := newEmpty(m.rows, m.cols, hint)
	r := 0
	m.Do(mode, func(row, col int, v float64) bool {
		for ; r < row; r++ {
			out.rowIndex[r+1] = len(out.v)
		}
		if nv := fn(row, col, v); nv != 0 && !math.IsNaN(nv) {
			out.v = append(out.v, nv)
			out.colIndex = append(out.colIndex, col)
		}
		return true
	})
	for ; r < m.rows; r++ {
		out.rowIndex[r+1] = len(out.v)
	}

	return out, nil
}

// Scale returns alpha*m as a new store. alpha == 0 yields an empty store.
func (m *CSR) Scale(alpha float64) (*CSR, error) {
	return m.Map(Strict, func(_, _ int, v float64) float64 { return alpha * v })
}
