// SPDX-License-Identifier: MIT
package csr_test

import (
	"testing"

	"github.com/katalvlaran/sparsenet/csr"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/mat"
)

func TestFacadeAliases(t *testing.T) {
	a := MustCSR(t, 2, 2, [][]float64{{1, 2}, {0, 3}})
	b := MustCSR(t, 2, 2, [][]float64{{4, 0}, {5, 6}})

	sum, err := csr.Sum(a, b)
	require.NoError(t, err)
	require.Equal(t, [][]float64{{5, 2}, {5, 9}}, sum.ToArray())

	diff, err := csr.Diff(a, b)
	require.NoError(t, err)
	require.Equal(t, [][]float64{{-3, 2}, {-5, -3}}, diff.ToArray())

	prod, err := csr.Product(a, b)
	require.NoError(t, err)
	require.Equal(t, [][]float64{{14, 12}, {15, 18}}, prod.ToArray())

	had, err := csr.HadamardProd(a, b)
	require.NoError(t, err)
	require.Equal(t, [][]float64{{4, 0}, {0, 18}}, had.ToArray())

	at, err := csr.T(a)
	require.NoError(t, err)
	require.Equal(t, [][]float64{{1, 0}, {2, 3}}, at.ToArray())
}

func TestSymmetrizeAndSums(t *testing.T) {
	a := MustCSR(t, 2, 2, [][]float64{{1, 4}, {0, 3}})

	s, err := csr.Symmetrize(a)
	require.NoError(t, err)
	require.Equal(t, [][]float64{{1, 2}, {2, 3}}, s.ToArray())

	rs, err := csr.RowSums(a)
	require.NoError(t, err)
	require.Equal(t, []float64{5, 3}, rs)

	cs, err := csr.ColSums(a)
	require.NoError(t, err)
	require.Equal(t, []float64{1, 7}, cs)

	z, err := csr.ZerosLike(a)
	require.NoError(t, err)
	require.Zero(t, z.NNZ())
	require.Equal(t, 2, z.Cols())
}

func TestGonumInterop(t *testing.T) {
	a := MustCSR(t, 2, 3, [][]float64{{1, 0, 2}, {0, 3}})

	g := a.Gonum()
	r, c := g.Dims()
	require.Equal(t, 2, r)
	require.Equal(t, 3, c)
	require.Equal(t, 2.0, g.At(0, 2))
	require.Equal(t, 3.0, g.T().At(1, 1))
	require.Panics(t, func() { g.At(2, 0) })

	back, err := csr.FromGonum(mat.DenseCopyOf(g))
	require.NoError(t, err)
	require.True(t, a.Equal(back))

	_, err = csr.FromGonum(nil)
	require.ErrorIs(t, err, csr.ErrNilMatrix)
}

func TestPackageLoggerDefaults(t *testing.T) {
	require.NotNil(t, csr.Logger())
	csr.SetLogger(nil)
	require.NotNil(t, csr.Logger())
}
