// SPDX-License-Identifier: MIT
package csr_test

import (
	"testing"

	"github.com/katalvlaran/sparsenet/csr"
	"github.com/stretchr/testify/require"
)

type cell struct {
	r, c int
	v    float64
}

func TestDoStrictOrder(t *testing.T) {
	m := MustCSR(t, 3, 3, [][]float64{{0, 2, 1}, {}, {4}})
	require.NoError(t, m.Set(0, 0, 7))

	var got []cell
	m.Do(csr.Strict, func(r, c int, v float64) bool {
		got = append(got, cell{r, c, v})
		return true
	})
	require.Equal(t, []cell{{0, 0, 7}, {0, 1, 2}, {0, 2, 1}, {2, 0, 4}}, got)
}

func TestDoFullVisitsEveryCell(t *testing.T) {
	m := MustCSR(t, 2, 2, [][]float64{{0, 5}})

	var got []cell
	m.Do(csr.Full, func(r, c int, v float64) bool {
		got = append(got, cell{r, c, v})
		return true
	})
	require.Equal(t, []cell{{0, 0, 0}, {0, 1, 5}, {1, 0, 0}, {1, 1, 0}}, got)
}

func TestDoEarlyStop(t *testing.T) {
	m := MustCSR(t, 2, 2, [][]float64{{1, 2}, {3, 4}})
	for _, mode := range []csr.IterMode{csr.Strict, csr.Full} {
		calls := 0
		m.Do(mode, func(int, int, float64) bool {
			calls++
			return calls < 2
		})
		require.Equal(t, 2, calls, mode.String())
	}
}

func TestMapNeverMutatesReceiver(t *testing.T) {
	m := MustCSR(t, 2, 3, [][]float64{{1, 0, 2}, {0, 3}})
	orig := m.Clone()

	strict, err := m.Map(csr.Strict, func(_, _ int, v float64) float64 { return v * 10 })
	require.NoError(t, err)
	require.True(t, m.Equal(orig))
	require.Equal(t, [][]float64{{10, 0, 20}, {0, 30, 0}}, strict.ToArray())

	full, err := m.Map(csr.Full, func(r, c int, v float64) float64 { return v + 1 })
	require.NoError(t, err)
	require.True(t, m.Equal(orig))
	require.Equal(t, [][]float64{{2, 1, 3}, {1, 4, 1}}, full.ToArray())
	RequireInvariants(t, full)
	require.Equal(t, 6, full.NNZ())
}

func TestMapDropsZeros(t *testing.T) {
	m := MustCSR(t, 3, 2, [][]float64{{1, 2}, {3, 4}, {5, 6}})

	odd, err := m.Map(csr.Strict, func(_, _ int, v float64) float64 {
		if int(v)%2 == 0 {
			return 0
		}
		return v
	})
	require.NoError(t, err)
	RequireInvariants(t, odd)
	require.Equal(t, []int{0, 1, 2, 3}, odd.RowIndex())

	// Full mode with trailing empty rows.
	firstRow, err := m.Map(csr.Full, func(r, _ int, v float64) float64 {
		if r > 0 {
			return 0
		}
		return v
	})
	require.NoError(t, err)
	RequireInvariants(t, firstRow)
	require.Equal(t, []int{0, 2, 2, 2}, firstRow.RowIndex())
}

func TestMapNil(t *testing.T) {
	var m *csr.CSR
	_, err := m.Map(csr.Strict, func(_, _ int, v float64) float64 { return v })
	require.ErrorIs(t, err, csr.ErrNilMatrix)
}
