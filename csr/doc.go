// Package csr implements a sparse matrix engine in Compressed Sparse Row form.
//
// The package provides:
//
//   - CSR: three aligned buffers (values, column indices, row offsets) with
//     safe point access (At) and in-place point mutation (Set).
//   - Structural iteration over stored entries (Strict) or the full grid
//     (Full), and a non-mutating Map.
//   - Merge algebra: Add, Sub, Hadamard, Mul, MatVec. Each call returns a
//     freshly allocated store and leaves its operands untouched.
//   - Transpose via a two-pass bucket scatter.
//   - Det by first-row cofactor expansion (small matrices), and DetLU backed by
//     gonum for larger ones.
//   - A persisted form (JSON and YAML) consumed by model serialization, and
//     interop with gonum's mat.Matrix.
//
// Stores are not safe for concurrent mutation; clone before mutating from
// several goroutines or funnel writes through a single owner.
package csr
