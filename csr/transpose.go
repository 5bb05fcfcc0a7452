// SPDX-License-Identifier: MIT

package csr

// Transpose returns mᵀ (cols×rows) via a two-pass bucket transpose.
//
// Implementation:
//   - Stage 1: Count stored entries per original column and prefix-sum the
//     counts into the output row offsets (len cols+1).
//   - Stage 2: Walk m row by row; each (row, col, v) goes to the next free slot
//     of output row col, with row recorded as its new column index.
//
// Behavior highlights:
//   - Output rows come out column-ascending because input rows are visited in
//     ascending order; no sort is needed.
//   - The result owns fresh buffers; m is never written.
//
// Inputs:
//   - m: non-nil store of any shape.
//
// Returns:
//   - ErrNilMatrix for a nil input.
//
// Complexity:
//   - Time O(nnz + rows + cols), Space O(nnz + cols).
func Transpose(m *CSR) (*CSR, error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, csrErrorf(opTranspose, err)
	}

	nnz := len(m.v)
	out := &CSR{
		rows:     m.cols,
		cols:     m.rows,
		v:        make([]float64, nnz),
		colIndex: make([]int, nnz),
		rowIndex: make([]int, m.cols+1),
	}

	// Stage 1: bucket sizes, then prefix sums.
	var c, r, k, dst int
	for k = 0; k < nnz; k++ {
		out.rowIndex[m.colIndex[k]+1]++
	}
	for c = 0; c < m.cols; c++ {
		out.rowIndex[c+1] += out.rowIndex[c]
	}

	// Stage 2: scatter with per-row write cursors.
	cursor := make([]int, m.cols)
	copy(cursor, out.rowIndex[:m.cols])
	for r = 0; r < m.rows; r++ {
		for k = m.rowIndex[r]; k < m.rowIndex[r+1]; k++ {
			c = m.colIndex[k]
			dst = cursor[c]
			out.v[dst] = m.v[k]
			out.colIndex[dst] = r
			cursor[c]++
		}
	}

	return out, nil
}

// T returns the transpose of m. See Transpose.
func (m *CSR) T() (*CSR, error) { return Transpose(m) }
