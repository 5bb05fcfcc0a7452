// Package sparsenet is a small numeric substrate for neural-network weights,
// built around a Compressed Sparse Row (CSR) matrix engine.
//
// What is inside:
//
//	csr/      — CSR storage, point access & mutation, structural iteration,
//	            merge algebra (Add, Sub, Hadamard, Mul), bucket transpose,
//	            cofactor determinant, persisted form (JSON/YAML), gonum interop
//	randinit/ — stateful samplers (polar Box–Muller normal, uniform) used to
//	            initialize weight stores through csr.Random
//
// Every algebraic operation allocates and returns a fresh store; only
// (*csr.CSR).Set mutates in place.
//
// Quick example:
//
//	a, _ := csr.New(2, 2, [][]float64{{1, 2}, {3, 4}})
//	det, _ := a.Det() // -2
//
//	go get github.com/katalvlaran/sparsenet
package sparsenet
