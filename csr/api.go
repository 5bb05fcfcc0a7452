// SPDX-License-Identifier: MIT
// Package csr — public API facades.
//
// Purpose:
//   - Provide thin entry points for common tasks; each facade delegates to the
//     canonical kernel and never duplicates its loops.
//   - Keep names intention-revealing for discoverability.

package csr

// Sum is an alias for Add: a + b.
func Sum(a, b *CSR) (*CSR, error) { return Add(a, b) }

// Diff is an alias for Sub: a − b.
func Diff(a, b *CSR) (*CSR, error) { return Sub(a, b) }

// Product is an alias for Mul: a · b.
func Product(a, b *CSR) (*CSR, error) { return Mul(a, b) }

// HadamardProd is an alias for Hadamard: a ⊙ b.
func HadamardProd(a, b *CSR) (*CSR, error) { return Hadamard(a, b) }

// T is an alias for Transpose: mᵀ.
func T(m *CSR) (*CSR, error) { return Transpose(m) }

// ZerosLike returns an empty store with the same shape as m.
func ZerosLike(m *CSR) (*CSR, error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, csrErrorf("ZerosLike", err)
	}

	return newEmpty(m.rows, m.cols, 0), nil
}

// Symmetrize returns (m + mᵀ)/2. Composition: Transpose → Add → Scale.
func Symmetrize(m *CSR) (*CSR, error) {
	mt, err := Transpose(m)
	if err != nil {
		return nil, csrErrorf("Symmetrize", err)
	}
	sum, err := Add(m, mt)
	if err != nil {
		return nil, csrErrorf("Symmetrize", err)
	}

	return sum.Scale(0.5)
}

// RowSums returns r where r[i] = Σ_j m[i,j]. Implementation: MatVec(m, ones).
func RowSums(m *CSR) ([]float64, error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, csrErrorf("RowSums", err)
	}

	return MatVec(m, ones(m.cols))
}

// ColSums returns c where c[j] = Σ_i m[i,j]. Implementation: T(m) then MatVec.
func ColSums(m *CSR) ([]float64, error) {
	mt, err := Transpose(m)
	if err != nil {
		return nil, csrErrorf("ColSums", err)
	}

	return MatVec(mt, ones(mt.cols))
}

func ones(n int) []float64 {
	v := make([]float64, n)
	for i := range v {
		v[i] = 1
	}

	return v
}
