// SPDX-License-Identifier: MIT
// Package csr: determinant evaluation.
//
// Purpose:
//   - Det: reference cofactor (Laplace) expansion strictly along row 0. Only
//     stored row-0 entries contribute; sign is +1 for even columns, -1 for odd.
//   - Minor: structural submatrix extraction (delete one row and one column).
//   - DetLU: separate LU-based determinant (gonum) for larger inputs.
//
// Det is factorial in n for dense inputs and is meant for small matrices.
// Recursion depth is n; peak auxiliary memory is O(n²) minors.

package csr

import (
	"fmt"

	"gonum.org/v1/gonum/mat"
)

// Determinant computes det(m) by first-row cofactor expansion.
// Base cases: 0×0 → 1; 1×1 → m[0,0] (0 when absent).
// Errors: ErrNilMatrix, ErrNotSquare.
func Determinant(m *CSR, opts ...Option) (float64, error) {
	if err := ValidateSquare(m); err != nil {
		return 0, csrErrorf(opDet, err)
	}
	o := gatherOptions(opts...)
	if m.rows > o.detWarnSize {
		o.logger.Warn("csr: cofactor determinant on a large matrix; cost is factorial in n",
			"n", m.rows, "nnz", len(m.v), "warn_size", o.detWarnSize)
	}

	return cofactor(m), nil
}

// Det computes det(m). See Determinant.
func (m *CSR) Det() (float64, error) { return Determinant(m) }

// cofactor is the recursive kernel; m is square and non-nil.
func cofactor(m *CSR) float64 {
	switch m.rows {
	case 0:
		return 1
	case 1:
		if m.rowIndex[1] > 0 {
			return m.v[0]
		}
		return 0
	}

	var sum, sign float64
	var k, col int
	for k = m.rowIndex[0]; k < m.rowIndex[1]; k++ {
		col = m.colIndex[k]
		sign = 1
		if col%2 == 1 {
			sign = -1
		}
		sum += sign * m.v[k] * cofactor(m.minor(0, col))
	}

	return sum
}

// Minor returns the (rows-1)×(cols-1) store obtained by deleting row and col.
// Errors: ErrNilMatrix, ErrOutOfRange, ErrInvalidShape when exactly one
// dimension of the result would be zero (only 0×0 is a legal empty shape).
func (m *CSR) Minor(row, col int) (*CSR, error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, csrErrorf(opMinor, err)
	}
	if err := m.checkBounds(row, col); err != nil {
		return nil, cellErrorf(opMinor, row, col, err)
	}
	if (m.rows == 1) != (m.cols == 1) {
		return nil, cellErrorf(opMinor, row, col, ErrInvalidShape)
	}

	return m.minor(row, col), nil
}

// minor copies every row except row, skipping column col and shifting
// columns greater than col down by one; offsets are rebuilt from scratch.
func (m *CSR) minor(row, col int) *CSR {
	out := newEmpty(m.rows-1, m.cols-1, len(m.v))
	var r, k, c, dst int
	for r = 0; r < m.rows; r++ {
		if r == row {
			continue
		}
		for k = m.rowIndex[r]; k < m.rowIndex[r+1]; k++ {
			c = m.colIndex[k]
			if c == col {
				continue
			}
			if c > col {
				c--
			}
			out.v = append(out.v, m.v[k])
			out.colIndex = append(out.colIndex, c)
		}
		dst++
		out.rowIndex[dst] = len(out.v)
	}

	return out
}

// DetLU computes det(m) through an LU factorization of the dense projection
// (gonum mat.Det). It is a separate capability: O(n³) instead of factorial,
// with floating-point results that may differ from Det in the last bits.
// Errors: ErrNilMatrix, ErrNotSquare.
func (m *CSR) DetLU() (float64, error) {
	if err := ValidateSquare(m); err != nil {
		return 0, csrErrorf(opDetLU, err)
	}
	if m.rows == 0 {
		return 1, nil
	}

	d, err := m.toGonumDense()
	if err != nil {
		return 0, csrErrorf(opDetLU, fmt.Errorf("dense projection: %w", err))
	}

	return mat.Det(d), nil
}
