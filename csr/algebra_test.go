// SPDX-License-Identifier: MIT
package csr_test

import (
	"fmt"
	"testing"

	"github.com/katalvlaran/sparsenet/csr"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/mat"
)

func TestHadamardLiteral(t *testing.T) {
	a := MustCSR(t, 2, 2, [][]float64{{2, 5}, {1, 7}})
	b := MustCSR(t, 2, 2, [][]float64{{3, 7}, {2, 9}})

	h, err := a.Hadamard(b)
	require.NoError(t, err)
	require.Equal(t, [][]float64{{6, 35}, {2, 63}}, h.Data())
	RequireInvariants(t, h)
}

func TestHadamardCommutative(t *testing.T) {
	for seed := uint64(1); seed <= 5; seed++ {
		a := MustCSR(t, 7, 9, randomDense(7, 9, 0.4, seed))
		b := MustCSR(t, 7, 9, randomDense(7, 9, 0.4, seed+100))

		ab, err := csr.Hadamard(a, b)
		require.NoError(t, err)
		ba, err := csr.Hadamard(b, a)
		require.NoError(t, err)
		require.True(t, ab.Equal(ba), "seed %d", seed)
		RequireInvariants(t, ab)
	}
}

func TestAddSubAdditiveInverse(t *testing.T) {
	for seed := uint64(1); seed <= 5; seed++ {
		a := MustCSR(t, 6, 8, randomDense(6, 8, 0.35, seed))
		b := MustCSR(t, 6, 8, randomDense(6, 8, 0.35, seed+50))

		sum, err := a.Add(b)
		require.NoError(t, err)
		RequireInvariants(t, sum)

		back, err := sum.Subtract(b)
		require.NoError(t, err)
		RequireInvariants(t, back)
		require.Equal(t, a.ToArray(), back.ToArray(), "seed %d", seed)
	}
}

func TestAddDropsCancellation(t *testing.T) {
	a := MustCSR(t, 2, 3, [][]float64{{1, 2, 0}, {0, 0, 3}})
	b := MustCSR(t, 2, 3, [][]float64{{-1, 0, 4}, {5, 0, -3}})

	sum, err := csr.Add(a, b)
	require.NoError(t, err)
	RequireInvariants(t, sum)
	require.Equal(t, 3, sum.NNZ())
	require.Equal(t, [][]float64{{0, 2, 4}, {5, 0, 0}}, sum.ToArray())

	diff, err := csr.Sub(a, a)
	require.NoError(t, err)
	require.Zero(t, diff.NNZ())
}

func TestAlgebraDoesNotMutateOperands(t *testing.T) {
	a := MustCSR(t, 3, 3, randomDense(3, 3, 0.6, 9))
	b := MustCSR(t, 3, 3, randomDense(3, 3, 0.6, 10))
	a0, b0 := a.Clone(), b.Clone()

	for name, op := range map[string]func(x, y *csr.CSR) (*csr.CSR, error){
		"Add": csr.Add, "Sub": csr.Sub, "Hadamard": csr.Hadamard, "Mul": csr.Mul,
	} {
		out, err := op(a, b)
		require.NoError(t, err, name)
		require.NoError(t, out.Set(0, 0, 123), name)
		require.True(t, a.Equal(a0), name)
		require.True(t, b.Equal(b0), name)
	}
}

func TestBinaryDimensionMismatch(t *testing.T) {
	a := MustCSR(t, 2, 3, [][]float64{{1, 2, 3}, {4, 5, 6}})
	b := MustCSR(t, 2, 2, [][]float64{{1, 2}, {3, 4}})

	_, err := a.Mul(b)
	require.ErrorIs(t, err, csr.ErrDimensionMismatch)
	_, err = a.Add(b)
	require.ErrorIs(t, err, csr.ErrDimensionMismatch)
	_, err = a.Sub(b)
	require.ErrorIs(t, err, csr.ErrDimensionMismatch)
	_, err = a.Hadamard(b)
	require.ErrorIs(t, err, csr.ErrDimensionMismatch)
	_, err = csr.Add(nil, b)
	require.ErrorIs(t, err, csr.ErrNilMatrix)
	_, err = csr.Mul(a, nil)
	require.ErrorIs(t, err, csr.ErrNilMatrix)
}

func TestMulSmall(t *testing.T) {
	a := MustCSR(t, 2, 3, [][]float64{{1, 0, 2}, {0, 3, 0}})
	b := MustCSR(t, 3, 2, [][]float64{{0, 4}, {5, 0}, {6, 0}})

	c, err := a.Mul(b)
	require.NoError(t, err)
	require.Equal(t, 2, c.Rows())
	require.Equal(t, 2, c.Cols())
	require.Equal(t, [][]float64{{12, 4}, {15, 0}}, c.ToArray())
	RequireInvariants(t, c)
}

func TestMulCancellationDropped(t *testing.T) {
	a := MustCSR(t, 1, 2, [][]float64{{1, 1}})
	b := MustCSR(t, 2, 1, [][]float64{{2}, {-2}})

	c, err := csr.Mul(a, b)
	require.NoError(t, err)
	require.Zero(t, c.NNZ())
}

func TestMulMatchesGonum(t *testing.T) {
	for _, dims := range [][3]int{{4, 5, 3}, {8, 8, 8}, {1, 6, 9}, {10, 3, 7}} {
		m, k, n := dims[0], dims[1], dims[2]
		t.Run(fmt.Sprintf("%dx%dx%d", m, k, n), func(t *testing.T) {
			a := MustCSR(t, m, k, randomDense(m, k, 0.3, uint64(m*k)))
			b := MustCSR(t, k, n, randomDense(k, n, 0.3, uint64(k*n+1)))

			got, err := a.Mul(b)
			require.NoError(t, err)
			RequireInvariants(t, got)

			var want mat.Dense
			want.Mul(a.Gonum(), b.Gonum())
			gd := got.ToArray()
			for i := 0; i < m; i++ {
				for j := 0; j < n; j++ {
					require.Equal(t, want.At(i, j), gd[i][j], "(%d,%d)", i, j)
				}
			}
		})
	}
}

func TestMatVec(t *testing.T) {
	m := MustCSR(t, 2, 3, [][]float64{{1, 0, 2}, {0, -1, 0}})

	y, err := m.MatVec([]float64{3, 4, 5})
	require.NoError(t, err)
	require.Equal(t, []float64{13, -4}, y)

	_, err = m.MatVec([]float64{1, 2})
	require.ErrorIs(t, err, csr.ErrDimensionMismatch)
}

func TestScale(t *testing.T) {
	m := MustCSR(t, 2, 2, [][]float64{{1, 0}, {0, -2}})

	s, err := m.Scale(3)
	require.NoError(t, err)
	require.Equal(t, [][]float64{{3, 0}, {0, -6}}, s.ToArray())

	z, err := m.Scale(0)
	require.NoError(t, err)
	require.Zero(t, z.NNZ())
}
