// SPDX-License-Identifier: MIT

package csr

import (
	"gonum.org/v1/gonum/mat"
)

// gonumView is a read-only mat.Matrix over a store. It shares the store's
// buffers; mutate the store through Set only when no view is in use.
type gonumView struct {
	m *CSR
}

var _ mat.Matrix = gonumView{}

// Gonum returns a read-only gonum mat.Matrix view of m. At panics on
// out-of-range indices, following gonum's convention.
func (m *CSR) Gonum() mat.Matrix { return gonumView{m: m} }

// Dims returns the dimensions of the view.
func (g gonumView) Dims() (r, c int) { return g.m.rows, g.m.cols }

// At returns the value at (i, j).
func (g gonumView) At(i, j int) float64 {
	v, err := g.m.At(i, j)
	if err != nil {
		panic(mat.ErrIndexOutOfRange)
	}

	return v
}

// T returns the implicit transpose of the view.
func (g gonumView) T() mat.Matrix { return mat.Transpose{Matrix: g} }

// FromGonum compresses any gonum matrix into a fresh store.
// Errors: ErrNilMatrix for a nil input, ErrInvalidShape for empty dimensions.
func FromGonum(src mat.Matrix, opts ...Option) (*CSR, error) {
	if src == nil {
		return nil, csrErrorf("FromGonum", ErrNilMatrix)
	}
	r, c := src.Dims()
	if r <= 0 || c <= 0 {
		return nil, csrErrorf("FromGonum", ErrInvalidShape)
	}

	dense := make([][]float64, r)
	var i, j int
	for i = 0; i < r; i++ {
		dense[i] = make([]float64, c)
		for j = 0; j < c; j++ {
			dense[i][j] = src.At(i, j)
		}
	}

	return New(r, c, dense, opts...)
}

// toGonumDense materializes m into a *mat.Dense. m must have positive dims.
func (m *CSR) toGonumDense() (*mat.Dense, error) {
	if m.rows == 0 || m.cols == 0 {
		return nil, ErrInvalidShape
	}
	flat := make([]float64, m.rows*m.cols)
	var r, k int
	for r = 0; r < m.rows; r++ {
		for k = m.rowIndex[r]; k < m.rowIndex[r+1]; k++ {
			flat[r*m.cols+m.colIndex[k]] = m.v[k]
		}
	}

	return mat.NewDense(m.rows, m.cols, flat), nil
}
