// SPDX-License-Identifier: MIT
// Package csr: merge algebra over sorted row segments.
//
// Purpose:
//   - Add/Sub: per-row accumulation keyed by column, zero results dropped.
//   - Hadamard: two-pointer merge; relies on strictly increasing columns.
//   - Mul: classic sparse×sparse row accumulation (Gustavson order).
//
// Every kernel validates first, then allocates one fresh result; operands are
// never mutated and the result never aliases them.

package csr

import "fmt"

// Operation name constants for unified error wrapping.
const (
	opAdd       = "Add"
	opSub       = "Sub"
	opMul       = "Mul"
	opHadamard  = "Hadamard"
	opTranspose = "Transpose"
	opMatVec    = "MatVec"
	opMap       = "Map"
	opDet       = "Det"
	opDetLU     = "DetLU"
	opMinor     = "Minor"
)

// addSub computes out = a + sign*b for sign ∈ {+1, -1}.
// Complexity: O(nnz(a) + nnz(b) + Σ_r w_r log w_r) for the per-row sort.
func addSub(a, b *CSR, sign float64, opTag string) (*CSR, error) {
	if err := ValidateBinarySameShape(a, b); err != nil {
		return nil, csrErrorf(opTag, err)
	}

	out := newEmpty(a.rows, a.cols, max(len(a.v), len(b.v)))
	acc := newAccumulator(a.cols)
	var r, k int
	for r = 0; r < a.rows; r++ {
		for k = a.rowIndex[r]; k < a.rowIndex[r+1]; k++ {
			acc.add(a.colIndex[k], a.v[k])
		}
		for k = b.rowIndex[r]; k < b.rowIndex[r+1]; k++ {
			acc.add(b.colIndex[k], sign*b.v[k])
		}
		acc.flushInto(out, r)
	}

	return out, nil
}

// Add returns a + b. Errors: ErrNilMatrix, ErrDimensionMismatch.
func Add(a, b *CSR) (*CSR, error) { return addSub(a, b, +1, opAdd) }

// Sub returns a − b. Errors: ErrNilMatrix, ErrDimensionMismatch.
func Sub(a, b *CSR) (*CSR, error) { return addSub(a, b, -1, opSub) }

// Hadamard returns the element-wise product a ⊙ b.
// Walks both row segments with two pointers, advancing the smaller column;
// on equal columns emits the product when non-zero.
// Complexity: O(nnz(a) + nnz(b)).
func Hadamard(a, b *CSR) (*CSR, error) {
	if err := ValidateBinarySameShape(a, b); err != nil {
		return nil, csrErrorf(opHadamard, err)
	}

	out := newEmpty(a.rows, a.cols, min(len(a.v), len(b.v)))
	var r, i, j, ea, eb int
	var p float64
	for r = 0; r < a.rows; r++ {
		i, ea = a.rowIndex[r], a.rowIndex[r+1]
		j, eb = b.rowIndex[r], b.rowIndex[r+1]
		for i < ea && j < eb {
			switch {
			case a.colIndex[i] < b.colIndex[j]:
				i++
			case a.colIndex[i] > b.colIndex[j]:
				j++
			default:
				if p = a.v[i] * b.v[j]; p != 0 {
					out.v = append(out.v, p)
					out.colIndex = append(out.colIndex, a.colIndex[i])
				}
				i++
				j++
			}
		}
		out.rowIndex[r+1] = len(out.v)
	}

	return out, nil
}

// Mul returns the matrix product a (m×k) · b (k×n) as an m×n store.
//
// Implementation:
//   - Stage 1: ValidateMulCompatible(a, b). Allocate the result and one
//     accumulator of width b.Cols().
//   - Stage 2: For each row i of a and each stored (k, aVal) in it, scan row k
//     of b and accumulate aVal*bVal per output column.
//   - Stage 3: Flush the accumulator into row i: touched columns sorted,
//     zero (cancelled) and NaN sums dropped.
//
// Inputs:
//   - a, b: non-nil stores with a.Cols() == b.Rows().
//
// Returns:
//   - ErrNilMatrix, or ErrDimensionMismatch when a.Cols() != b.Rows().
//
// Complexity:
//   - Time Σ_i Σ_{k∈row i} w_b(k) plus Σ_i t_i log t_i for the touched-column
//     sort; Space O(b.Cols() + nnz(result)).
func Mul(a, b *CSR) (*CSR, error) {
	// Stage 1: validation and allocation
	if err := ValidateMulCompatible(a, b); err != nil {
		return nil, csrErrorf(opMul, err)
	}

	out := newEmpty(a.rows, b.cols, 0)
	acc := newAccumulator(b.cols)
	var i, p, q, k int
	var av float64
	for i = 0; i < a.rows; i++ {
		// Stage 2: row i of a times the rows of b it selects
		for p = a.rowIndex[i]; p < a.rowIndex[i+1]; p++ {
			k, av = a.colIndex[p], a.v[p]
			for q = b.rowIndex[k]; q < b.rowIndex[k+1]; q++ {
				acc.add(b.colIndex[q], av*b.v[q])
			}
		}
		// Stage 3: close row i
		acc.flushInto(out, i)
	}

	return out, nil
}

// MatVec computes y = m·x for a dense vector x with len(x) == m.Cols().
// Complexity: O(nnz + rows).
func MatVec(m *CSR, x []float64) ([]float64, error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, csrErrorf(opMatVec, err)
	}
	if len(x) != m.cols {
		return nil, csrErrorf(opMatVec, fmt.Errorf("len(x)=%d, cols=%d: %w", len(x), m.cols, ErrDimensionMismatch))
	}

	y := make([]float64, m.rows)
	var r, k int
	var s float64
	for r = 0; r < m.rows; r++ {
		s = 0
		for k = m.rowIndex[r]; k < m.rowIndex[r+1]; k++ {
			s += m.v[k] * x[m.colIndex[k]]
		}
		y[r] = s
	}

	return y, nil
}

// Add returns m + b. See the package-level Add.
func (m *CSR) Add(b *CSR) (*CSR, error) { return Add(m, b) }

// Sub returns m − b. See the package-level Sub.
func (m *CSR) Sub(b *CSR) (*CSR, error) { return Sub(m, b) }

// Subtract is an alias for Sub.
func (m *CSR) Subtract(b *CSR) (*CSR, error) { return Sub(m, b) }

// Hadamard returns m ⊙ b. See the package-level Hadamard.
func (m *CSR) Hadamard(b *CSR) (*CSR, error) { return Hadamard(m, b) }

// Mul returns m · b. See the package-level Mul.
func (m *CSR) Mul(b *CSR) (*CSR, error) { return Mul(m, b) }

// MatVec returns m · x. See the package-level MatVec.
func (m *CSR) MatVec(x []float64) ([]float64, error) { return MatVec(m, x) }
