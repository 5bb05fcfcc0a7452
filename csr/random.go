// SPDX-License-Identifier: MIT

package csr

// Random builds a rows×cols store by calling gen once per logical cell in
// row-major order and compressing the result; exact-zero (or sub-tolerance)
// samples are dropped by the normal compression rule.
// Errors: ErrInvalidShape, ErrNilGenerator.
// Complexity: O(rows*cols) gen calls.
func Random(rows, cols int, gen func() float64, opts ...Option) (*CSR, error) {
	if rows <= 0 || cols <= 0 {
		return nil, csrErrorf("Random", ErrInvalidShape)
	}
	if gen == nil {
		return nil, csrErrorf("Random", ErrNilGenerator)
	}

	dense := make([][]float64, rows)
	var i, j int
	for i = 0; i < rows; i++ {
		dense[i] = make([]float64, cols)
		for j = 0; j < cols; j++ {
			dense[i][j] = gen()
		}
	}

	return New(rows, cols, dense, opts...)
}
