// SPDX-License-Identifier: MIT
// Package csr: persisted form and codecs.
//
// The persisted form is the raw CSR triple plus shape:
//
//	{ "rows": 2, "cols": 2, "V": [...], "COL_INDEX": [...], "ROW_INDEX": [...] }
//
// Round-tripping reproduces the identical logical matrix. Decoding validates
// every structural invariant and never shares buffers with the input.

package csr

import (
	"encoding/json"
	"slices"

	"gopkg.in/yaml.v3"
)

// Persisted is the serialization-facing view of a store.
type Persisted struct {
	Rows     int       `json:"rows" yaml:"rows"`
	Cols     int       `json:"cols" yaml:"cols"`
	V        []float64 `json:"V" yaml:"V"`
	ColIndex []int     `json:"COL_INDEX" yaml:"COL_INDEX"`
	RowIndex []int     `json:"ROW_INDEX" yaml:"ROW_INDEX"`
}

// Persist returns the persisted form of m with copied buffers.
func (m *CSR) Persist() Persisted {
	return Persisted{
		Rows:     m.rows,
		Cols:     m.cols,
		V:        slices.Clone(m.v),
		ColIndex: slices.Clone(m.colIndex),
		RowIndex: slices.Clone(m.rowIndex),
	}
}

// FromPersisted rebuilds a store from its persisted form.
// Errors: ErrInvalidShape for negative dims; ErrMalformed when any CSR
// invariant is violated.
func FromPersisted(p Persisted, opts ...Option) (*CSR, error) {
	if err := ValidateLayout(p.Rows, p.Cols, p.V, p.ColIndex, p.RowIndex); err != nil {
		return nil, csrErrorf("FromPersisted", err)
	}
	o := gatherOptions(opts...)
	o.logger.Debug("csr: decoded persisted store", "rows", p.Rows, "cols", p.Cols, "nnz", len(p.V))

	return &CSR{
		rows:     p.Rows,
		cols:     p.Cols,
		v:        append(make([]float64, 0, len(p.V)), p.V...),
		colIndex: append(make([]int, 0, len(p.ColIndex)), p.ColIndex...),
		rowIndex: slices.Clone(p.RowIndex),
	}, nil
}

var (
	_ json.Marshaler   = (*CSR)(nil)
	_ json.Unmarshaler = (*CSR)(nil)
	_ yaml.Marshaler   = (*CSR)(nil)
	_ yaml.Unmarshaler = (*CSR)(nil)
)

// MarshalJSON encodes m in its persisted form.
func (m *CSR) MarshalJSON() ([]byte, error) {
	return json.Marshal(m.Persist())
}

// UnmarshalJSON decodes a persisted form into m, replacing its contents only
// when the payload is valid.
func (m *CSR) UnmarshalJSON(data []byte) error {
	var p Persisted
	if err := json.Unmarshal(data, &p); err != nil {
		return csrErrorf("UnmarshalJSON", err)
	}
	res, err := FromPersisted(p)
	if err != nil {
		return csrErrorf("UnmarshalJSON", err)
	}
	*m = *res

	return nil
}

// MarshalYAML encodes m in its persisted form.
func (m *CSR) MarshalYAML() (interface{}, error) {
	return m.Persist(), nil
}

// UnmarshalYAML decodes a persisted form into m, replacing its contents only
// when the payload is valid.
func (m *CSR) UnmarshalYAML(node *yaml.Node) error {
	var p Persisted
	if err := node.Decode(&p); err != nil {
		return csrErrorf("UnmarshalYAML", err)
	}
	res, err := FromPersisted(p)
	if err != nil {
		return csrErrorf("UnmarshalYAML", err)
	}
	*m = *res

	return nil
}
