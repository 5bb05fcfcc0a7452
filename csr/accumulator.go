// SPDX-License-Identifier: MIT

package csr

import (
	"math"
	"slices"
)

// accumulator is a per-row (column → value) scratch map backed by dense
// arrays of length cols. It is reused across rows of one kernel call: reset
// touches only the columns written since the previous flush.
type accumulator struct {
	vals    []float64
	seen    []bool
	touched []int
}

func newAccumulator(cols int) *accumulator {
	return &accumulator{
		vals: make([]float64, cols),
		seen: make([]bool, cols),
	}
}

// add accumulates x into column col.
func (a *accumulator) add(col int, x float64) {
	if !a.seen[col] {
		a.seen[col] = true
		a.touched = append(a.touched, col)
	}
	a.vals[col] += x
}

// flushInto appends the non-zero, non-NaN accumulated entries to dst in ascending
// column order, closes row r, and resets the scratch for the next row.
func (a *accumulator) flushInto(dst *CSR, r int) {
	slices.Sort(a.touched)
	for _, col := range a.touched {
		if x := a.vals[col]; x != 0 && !math.IsNaN(x) {
			dst.v = append(dst.v, x)
			dst.colIndex = append(dst.colIndex, col)
		}
		a.vals[col] = 0
		a.seen[col] = false
	}
	a.touched = a.touched[:0]
	dst.rowIndex[r+1] = len(dst.v)
}
