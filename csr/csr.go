// SPDX-License-Identifier: MIT

// Package csr - Compressed Sparse Row storage & safe accessors.
//
// Purpose:
//   - Hold only non-zero entries in three aligned buffers (v, colIndex, rowIndex).
//   - Guarantee safety at the public surface: At/Set return errors instead of panicking.
//   - Keep the three structural invariants after every call:
//     1. columns strictly increasing inside each row segment,
//     2. no stored value is zero,
//     3. rowIndex non-decreasing with rowIndex[0] == 0 and rowIndex[rows] == nnz.
//
// Complexity quicksheet:
//   - New: O(rows*cols) scan of the dense input; At: O(log w); Set: O(w + rows);
//     Clone: O(nnz + rows); ToArray: O(rows*cols). (w = stored width of the row)
package csr

import (
	"fmt"
	"math"
	"slices"
	"strings"
)

// ---------- error context tags ----------

const (
	ctxAt  = "At"
	ctxSet = "Set"
)

// ---------- Formatting literals ----------
const (
	_fmtRowOpen  = "["
	_fmtRowClose = "]\n"
	_fmtSep      = ", "
)

// CSR is a rows×cols matrix in Compressed Sparse Row form.
// Each instance exclusively owns its three buffers; no two stores alias.
type CSR struct {
	rows, cols int
	v          []float64 // stored non-zero values, row-major, column-ascending
	colIndex   []int     // column of v[k]
	rowIndex   []int     // len rows+1; row r occupies [rowIndex[r], rowIndex[r+1])
}

var _ fmt.Stringer = (*CSR)(nil)

// New creates a rows×cols store, compressing dense when it is non-nil.
// A cell (i,j) is stored only if row i exists in dense, column j exists in
// that row, the value is a number (not NaN) and it is non-zero. Cells outside
// the source bounds are zero; source data beyond rows/cols is ignored.
//
// Errors: ErrInvalidShape when rows <= 0 or cols <= 0.
// Complexity: O(rows*cols) time, O(nnz + rows) space.
func New(rows, cols int, dense [][]float64, opts ...Option) (*CSR, error) {
	if rows <= 0 || cols <= 0 {
		return nil, csrErrorf("New", ErrInvalidShape)
	}
	o := gatherOptions(opts...)
	m := newEmpty(rows, cols, 0)

	var i, j, dropped int
	var row []float64
	for i = 0; i < rows; i++ {
		if i < len(dense) {
			row = dense[i]
			for j = 0; j < cols && j < len(row); j++ {
				if o.isDropped(row[j]) {
					if row[j] != 0 {
						dropped++
					}
					continue
				}
				m.v = append(m.v, row[j])
				m.colIndex = append(m.colIndex, j)
			}
		}
		m.rowIndex[i+1] = len(m.v)
	}
	if dropped > 0 {
		o.logger.Debug("csr: dropped non-numeric or sub-tolerance cells",
			"rows", rows, "cols", cols, "dropped", dropped)
	}

	return m, nil
}

// NewFromCells is New over loosely typed cells, e.g. decoded JSON.
// Signed/unsigned integers, float32/float64 and json.Number-like values
// (anything with a Float64() (float64, error) method) count as numeric; every
// other cell (nil, strings, bools, nested values) is treated as absent.
func NewFromCells(rows, cols int, cells [][]any, opts ...Option) (*CSR, error) {
	if rows <= 0 || cols <= 0 {
		return nil, csrErrorf("NewFromCells", ErrInvalidShape)
	}
	dense := make([][]float64, min(rows, len(cells)))
	var i, j int
	var ok bool
	for i = range dense {
		dense[i] = make([]float64, min(cols, len(cells[i])))
		for j = range dense[i] {
			if dense[i][j], ok = numeric(cells[i][j]); !ok {
				dense[i][j] = math.NaN() // non-numeric: dropped by New
			}
		}
	}

	return New(rows, cols, dense, opts...)
}

// numeric converts a loosely typed cell into float64.
func numeric(c any) (float64, bool) {
	switch x := c.(type) {
	case float64:
		return x, true
	case float32:
		return float64(x), true
	case int:
		return float64(x), true
	case int8:
		return float64(x), true
	case int16:
		return float64(x), true
	case int32:
		return float64(x), true
	case int64:
		return float64(x), true
	case uint:
		return float64(x), true
	case uint8:
		return float64(x), true
	case uint16:
		return float64(x), true
	case uint32:
		return float64(x), true
	case uint64:
		return float64(x), true
	case interface{ Float64() (float64, error) }:
		f, err := x.Float64()
		return f, err == nil
	default:
		return 0, false
	}
}

// FromArray builds a 1×n row matrix from values.
// Errors: ErrInvalidShape when values is empty.
func FromArray(values []float64, opts ...Option) (*CSR, error) {
	if len(values) == 0 {
		return nil, csrErrorf("FromArray", ErrInvalidShape)
	}

	return New(1, len(values), [][]float64{values}, opts...)
}

// Zeros returns a rows×cols store with no stored entries.
func Zeros(rows, cols int) (*CSR, error) {
	if rows <= 0 || cols <= 0 {
		return nil, csrErrorf("Zeros", ErrInvalidShape)
	}

	return newEmpty(rows, cols, 0), nil
}

// Identity returns an n×n store of the right shape with NO stored entries.
// Callers populate the diagonal explicitly (see Eye for a populated one).
// n == 0 yields a legal 0×0 store.
func Identity(n int) (*CSR, error) {
	if n < 0 {
		return nil, csrErrorf("Identity", ErrInvalidShape)
	}

	return newEmpty(n, n, 0), nil
}

// Eye returns I_n with ones on the diagonal. n == 0 yields a 0×0 store.
func Eye(n int) (*CSR, error) {
	if n < 0 {
		return nil, csrErrorf("Eye", ErrInvalidShape)
	}
	m := newEmpty(n, n, n)
	for i := 0; i < n; i++ {
		m.v = append(m.v, 1)
		m.colIndex = append(m.colIndex, i)
		m.rowIndex[i+1] = i + 1
	}

	return m, nil
}

// newEmpty allocates a store with zero entries; rows/cols may be 0.
// nnzHint pre-sizes the value/column buffers.
func newEmpty(rows, cols, nnzHint int) *CSR {
	return &CSR{
		rows:     rows,
		cols:     cols,
		v:        make([]float64, 0, nnzHint),
		colIndex: make([]int, 0, nnzHint),
		rowIndex: make([]int, rows+1),
	}
}

// Rows returns the row count. Complexity: O(1).
func (m *CSR) Rows() int { return m.rows }

// Cols returns the column count. Complexity: O(1).
func (m *CSR) Cols() int { return m.cols }

// Shape packs Rows() and Cols() into a single call.
func (m *CSR) Shape() (rows, cols int) { return m.rows, m.cols }

// NNZ returns the number of stored entries.
func (m *CSR) NNZ() int { return len(m.v) }

// RowNNZ returns the number of stored entries in row r, or 0 when r is out of range.
func (m *CSR) RowNNZ(r int) int {
	if r < 0 || r >= m.rows {
		return 0
	}

	return m.rowIndex[r+1] - m.rowIndex[r]
}

// Values returns a copy of the stored values.
func (m *CSR) Values() []float64 { return slices.Clone(m.v) }

// ColIndex returns a copy of the column index buffer.
func (m *CSR) ColIndex() []int { return slices.Clone(m.colIndex) }

// RowIndex returns a copy of the row offset buffer (len rows+1).
func (m *CSR) RowIndex() []int { return slices.Clone(m.rowIndex) }

// locate finds col inside row's segment.
// Returns the absolute position and whether the column is stored; when absent,
// pos is the sorted insertion point.
func (m *CSR) locate(row, col int) (pos int, found bool) {
	start, end := m.rowIndex[row], m.rowIndex[row+1]
	pos, found = slices.BinarySearch(m.colIndex[start:end], col)

	return start + pos, found
}

func (m *CSR) checkBounds(row, col int) error {
	if row < 0 || row >= m.rows || col < 0 || col >= m.cols {
		return ErrOutOfRange
	}

	return nil
}

// At returns the value at (row, col): the stored value or 0 when absent.
// Errors: ErrOutOfRange.
func (m *CSR) At(row, col int) (float64, error) {
	if err := m.checkBounds(row, col); err != nil {
		return 0, cellErrorf(ctxAt, row, col, err)
	}
	if pos, found := m.locate(row, col); found {
		return m.v[pos], nil
	}

	return 0, nil
}

// Set writes v at (row, col) in place.
//
// Implementation:
//   - Stage 1: Validate bounds and reject NaN; nothing is mutated on error.
//   - Stage 2: Binary-search the row segment for col (sorted insertion point).
//   - Stage 3: Apply one of three cases:
//     v != 0 and present: overwrite;
//     v == 0 and present: delete the entry, later row offsets -1;
//     v != 0 and absent: insert at the sorted position, later row offsets +1.
//     Writing 0 to an absent cell is a no-op.
//
// Inputs:
//   - row, col: 0-based indices, row in [0, Rows()), col in [0, Cols()).
//   - v: any non-NaN value; ±Inf is stored as is.
//
// Returns:
//   - ErrOutOfRange or ErrNaN, wrapped with the coordinates.
//
// Complexity:
//   - Time O(log w + nnz + rows) for the buffer shift, Space O(1) amortized.
func (m *CSR) Set(row, col int, v float64) error {
	// Stage 1: validation
	if err := m.checkBounds(row, col); err != nil {
		return cellErrorf(ctxSet, row, col, err)
	}
	if math.IsNaN(v) {
		return cellErrorf(ctxSet, row, col, ErrNaN)
	}

	// Stage 2: locate
	pos, found := m.locate(row, col)

	// Stage 3: overwrite / delete / insert
	var r int
	switch {
	case found && v != 0:
		m.v[pos] = v
	case found: // v == 0
		m.v = slices.Delete(m.v, pos, pos+1)
		m.colIndex = slices.Delete(m.colIndex, pos, pos+1)
		for r = row + 1; r <= m.rows; r++ {
			m.rowIndex[r]--
		}
	case v != 0:
		m.v = slices.Insert(m.v, pos, v)
		m.colIndex = slices.Insert(m.colIndex, pos, col)
		for r = row + 1; r <= m.rows; r++ {
			m.rowIndex[r]++
		}
	}

	return nil
}

// Clone returns a deep copy; all three buffers are freshly allocated.
func (m *CSR) Clone() *CSR {
	return &CSR{
		rows:     m.rows,
		cols:     m.cols,
		v:        slices.Clone(m.v),
		colIndex: slices.Clone(m.colIndex),
		rowIndex: slices.Clone(m.rowIndex),
	}
}

// ToArray materializes the full rows×cols grid, zero-filling absent cells.
// Complexity: O(rows*cols).
func (m *CSR) ToArray() [][]float64 {
	out := make([][]float64, m.rows)
	var r, k int
	for r = 0; r < m.rows; r++ {
		out[r] = make([]float64, m.cols)
		for k = m.rowIndex[r]; k < m.rowIndex[r+1]; k++ {
			out[r][m.colIndex[k]] = m.v[k]
		}
	}

	return out
}

// Data is the dense projection; identical to ToArray.
func (m *CSR) Data() [][]float64 { return m.ToArray() }

// Equal reports whether m and other have the same shape and the same logical
// entries. Both stores are canonical, so buffer equality is logical equality.
func (m *CSR) Equal(other *CSR) bool {
	if m == nil || other == nil {
		return m == other
	}

	return m.rows == other.rows && m.cols == other.cols &&
		slices.Equal(m.rowIndex, other.rowIndex) &&
		slices.Equal(m.colIndex, other.colIndex) &&
		slices.Equal(m.v, other.v)
}

// AllClose checks |a-b| <= atol + rtol*|b| on every logical cell.
// Negative tolerances are normalized to their absolute value.
// Errors: ErrNilMatrix, ErrDimensionMismatch.
func (m *CSR) AllClose(other *CSR, rtol, atol float64) (bool, error) {
	if err := ValidateBinarySameShape(m, other); err != nil {
		return false, csrErrorf("AllClose", err)
	}
	rtol, atol = math.Abs(rtol), math.Abs(atol)

	near := func(a, b float64) bool {
		if a == b {
			return true
		}
		return math.Abs(a-b) <= atol+rtol*math.Abs(b)
	}

	var r, i, j, ea, eb int
	for r = 0; r < m.rows; r++ {
		i, ea = m.rowIndex[r], m.rowIndex[r+1]
		j, eb = other.rowIndex[r], other.rowIndex[r+1]
		for i < ea || j < eb {
			switch {
			case j >= eb || (i < ea && m.colIndex[i] < other.colIndex[j]):
				if !near(m.v[i], 0) {
					return false, nil
				}
				i++
			case i >= ea || other.colIndex[j] < m.colIndex[i]:
				if !near(0, other.v[j]) {
					return false, nil
				}
				j++
			default:
				if !near(m.v[i], other.v[j]) {
					return false, nil
				}
				i++
				j++
			}
		}
	}

	return true, nil
}

// String provides a readable row-wise dump of the dense projection.
// Intended for diagnostics; O(rows*cols).
func (m *CSR) String() string {
	var b strings.Builder
	var r, c, k int
	for r = 0; r < m.rows; r++ {
		b.WriteString(_fmtRowOpen)
		k = m.rowIndex[r]
		for c = 0; c < m.cols; c++ {
			if k < m.rowIndex[r+1] && m.colIndex[k] == c {
				b.WriteString(fmt.Sprintf("%g", m.v[k]))
				k++
			} else {
				b.WriteString("0")
			}
			if c+1 < m.cols {
				b.WriteString(_fmtSep)
			}
		}
		b.WriteString(_fmtRowClose)
	}

	return b.String()
}
