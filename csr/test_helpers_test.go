// SPDX-License-Identifier: MIT
// Package csr_test contains test helpers.
//
// Purpose:
//   - Provide small deterministic fixtures and invariant checks shared by the
//     store, algebra, transpose and determinant tests.

package csr_test

import (
	"math/rand/v2"
	"testing"

	"github.com/katalvlaran/sparsenet/csr"
	"github.com/stretchr/testify/require"
)

// MustCSR compresses dense into a rows×cols store or fails the test.
func MustCSR(t testing.TB, rows, cols int, dense [][]float64) *csr.CSR {
	t.Helper()
	m, err := csr.New(rows, cols, dense)
	if err != nil {
		t.Fatalf("New(%d,%d): %v", rows, cols, err)
	}

	return m
}

// RequireInvariants asserts the three structural CSR invariants:
// sorted unique columns per row, no explicit zeros, monotone offsets.
func RequireInvariants(t testing.TB, m *csr.CSR) {
	t.Helper()
	v, ci, ri := m.Values(), m.ColIndex(), m.RowIndex()
	require.Len(t, ri, m.Rows()+1, "ROW_INDEX length")
	require.Equal(t, 0, ri[0], "ROW_INDEX[0]")
	require.Equal(t, len(v), ri[m.Rows()], "ROW_INDEX[rows] == nnz")
	require.Len(t, ci, len(v), "COL_INDEX aligned with V")
	for r := 0; r < m.Rows(); r++ {
		require.LessOrEqual(t, ri[r], ri[r+1], "offsets non-decreasing at row %d", r)
		for k := ri[r]; k < ri[r+1]; k++ {
			require.NotZero(t, v[k], "explicit zero at row %d", r)
			require.GreaterOrEqual(t, ci[k], 0)
			require.Less(t, ci[k], m.Cols())
			if k > ri[r] {
				require.Less(t, ci[k-1], ci[k], "columns not strictly increasing in row %d", r)
			}
		}
	}
}

// randomDense returns a rows×cols grid of small integers with roughly the
// given density; integer values keep sums and products exact.
func randomDense(rows, cols int, density float64, seed uint64) [][]float64 {
	rng := rand.New(rand.NewPCG(seed, seed+1))
	out := make([][]float64, rows)
	for i := range out {
		out[i] = make([]float64, cols)
		for j := range out[i] {
			if rng.Float64() < density {
				out[i][j] = float64(rng.IntN(19) - 9)
			}
		}
	}

	return out
}

// eyeBySet builds the identity by populating Identity(n) through Set.
func eyeBySet(t testing.TB, n int) *csr.CSR {
	t.Helper()
	m, err := csr.Identity(n)
	require.NoError(t, err)
	for i := 0; i < n; i++ {
		require.NoError(t, m.Set(i, i, 1))
	}

	return m
}
