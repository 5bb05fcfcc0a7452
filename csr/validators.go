// SPDX-License-Identifier: MIT
// Package: csr
//
// Purpose:
//   - Provide a single, canonical source of truth for operand checks.
//   - Keep kernels minimal by delegating nil/shape/squareness checks here.
//
// Note:
//   - Composite validators follow a fixed sequence (NotNil → Shape).
//   - All checks are O(1) except ValidateLayout, which is O(rows + nnz).

package csr

import (
	"fmt"
	"math"
)

func validatorErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// ValidateNotNil ensures the store reference is non-nil.
func ValidateNotNil(m *CSR) error {
	if m == nil {
		return validatorErrorf("ValidateNotNil", ErrNilMatrix)
	}

	return nil
}

// ValidateSameShape ensures a and b have equal dimensions.
// Assumes both are non-nil.
func ValidateSameShape(a, b *CSR) error {
	if a.rows != b.rows {
		return validatorErrorf("ValidateSameShape: Rows", ErrDimensionMismatch)
	}
	if a.cols != b.cols {
		return validatorErrorf("ValidateSameShape: Columns", ErrDimensionMismatch)
	}

	return nil
}

// ValidateBinarySameShape – Composite: NotNil(a) → NotNil(b) → SameShape.
func ValidateBinarySameShape(a, b *CSR) error {
	if err := ValidateNotNil(a); err != nil {
		return validatorErrorf("ValidateBinarySameShape", err)
	}
	if err := ValidateNotNil(b); err != nil {
		return validatorErrorf("ValidateBinarySameShape", err)
	}
	if err := ValidateSameShape(a, b); err != nil {
		return validatorErrorf("ValidateBinarySameShape", err)
	}

	return nil
}

// ValidateMulCompatible – Composite: NotNil(a) → NotNil(b) → a.Cols == b.Rows.
func ValidateMulCompatible(a, b *CSR) error {
	if err := ValidateNotNil(a); err != nil {
		return validatorErrorf("ValidateMulCompatible", err)
	}
	if err := ValidateNotNil(b); err != nil {
		return validatorErrorf("ValidateMulCompatible", err)
	}
	if a.cols != b.rows {
		return validatorErrorf("ValidateMulCompatible", ErrDimensionMismatch)
	}

	return nil
}

// ValidateSquare – Composite: NotNil → Rows == Cols.
func ValidateSquare(m *CSR) error {
	if err := ValidateNotNil(m); err != nil {
		return validatorErrorf("ValidateSquare", err)
	}
	if m.rows != m.cols {
		return validatorErrorf("ValidateSquare", ErrNotSquare)
	}

	return nil
}

// ValidateLayout checks a raw CSR triple against the structural invariants.
//
// Implementation:
//   - Stage 1: Shape. Negative dims, or exactly one zero dim, are rejected.
//     Only the 0×0 store is a legal empty shape.
//   - Stage 2: Buffer lengths. len(v) == len(colIndex), len(rowIndex) == rows+1,
//     rowIndex[0] == 0 and rowIndex[rows] == len(v).
//   - Stage 3: Per row, the segment end is checked against its start and len(v)
//     BEFORE the segment is read; then columns are range-checked, strictly
//     ascending, and values non-zero and not NaN.
//
// Inputs:
//   - rows, cols: logical shape.
//   - v, colIndex, rowIndex: the three CSR buffers (read-only).
//
// Returns:
//   - ErrInvalidShape for a bad shape; ErrMalformed for any buffer violation.
//
// Complexity:
//   - Time O(rows + nnz), Space O(1).
func ValidateLayout(rows, cols int, v []float64, colIndex, rowIndex []int) error {
	// Stage 1: shape
	if rows < 0 || cols < 0 || (rows == 0) != (cols == 0) {
		return validatorErrorf("ValidateLayout", ErrInvalidShape)
	}

	// Stage 2: buffer lengths and outer offsets
	if len(v) != len(colIndex) {
		return validatorErrorf("ValidateLayout: len(V) != len(COL_INDEX)", ErrMalformed)
	}
	if len(rowIndex) != rows+1 {
		return validatorErrorf("ValidateLayout: len(ROW_INDEX) != rows+1", ErrMalformed)
	}
	if rowIndex[0] != 0 || rowIndex[rows] != len(v) {
		return validatorErrorf("ValidateLayout: ROW_INDEX bounds", ErrMalformed)
	}

	// Stage 3: per-row segments
	var r, k int
	for r = 0; r < rows; r++ {
		if rowIndex[r+1] < rowIndex[r] || rowIndex[r+1] > len(v) {
			return validatorErrorf(fmt.Sprintf("ValidateLayout: row %d offsets out of order", r), ErrMalformed)
		}
		for k = rowIndex[r]; k < rowIndex[r+1]; k++ {
			if colIndex[k] < 0 || colIndex[k] >= cols {
				return validatorErrorf(fmt.Sprintf("ValidateLayout: row %d column %d", r, colIndex[k]), ErrMalformed)
			}
			if k > rowIndex[r] && colIndex[k] <= colIndex[k-1] {
				return validatorErrorf(fmt.Sprintf("ValidateLayout: row %d columns not ascending", r), ErrMalformed)
			}
			if v[k] == 0 || math.IsNaN(v[k]) {
				return validatorErrorf(fmt.Sprintf("ValidateLayout: row %d explicit zero/NaN", r), ErrMalformed)
			}
		}
	}

	return nil
}
