// SPDX-License-Identifier: MIT
// Package csr: sentinel error set.
// All kernels return these sentinels (optionally wrapped with an op tag via
// csrErrorf) and tests match them with errors.Is. No kernel panics on
// user-triggered conditions.

package csr

import (
	"errors"
	"fmt"
)

// ERROR PRIORITY (enforced in kernels):
// nil operand -> shape/index/NaN -> dimension mismatch -> squareness -> layout.

var (
	// ErrInvalidShape is returned when requested dimensions are non-positive
	// (or negative for the zero-size-tolerant constructors).
	ErrInvalidShape = errors.New("csr: invalid shape")

	// ErrOutOfRange indicates that a row or column index is outside valid bounds.
	ErrOutOfRange = errors.New("csr: index out of range")

	// ErrDimensionMismatch indicates incompatible operand shapes, e.g. Add with
	// different shapes or Mul where a.Cols != b.Rows.
	ErrDimensionMismatch = errors.New("csr: dimension mismatch")

	// ErrNotSquare signals that a square matrix was required but the input wasn't.
	ErrNotSquare = errors.New("csr: matrix is not square")

	// ErrNilMatrix indicates that a nil *CSR (receiver or argument) was used.
	ErrNilMatrix = errors.New("csr: nil matrix")

	// ErrNaN signals a NaN value passed to Set.
	ErrNaN = errors.New("csr: NaN value")

	// ErrMalformed signals a persisted layout that violates the CSR invariants
	// (offsets, sorted columns, explicit zeros, buffer lengths).
	ErrMalformed = errors.New("csr: malformed layout")

	// ErrNilGenerator is returned by Random when no sample generator is supplied.
	ErrNilGenerator = errors.New("csr: nil generator")
)

// csrErrorf wraps err with an operation tag, preserving the sentinel via %w.
// Only call with err != nil.
func csrErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// cellErrorf wraps err with an operation tag and the offending coordinates.
func cellErrorf(tag string, row, col int, err error) error {
	return fmt.Errorf("CSR.%s(%d,%d): %w", tag, row, col, err)
}
