// Package randinit provides stateful samplers used to initialize weight
// stores: a polar Box–Muller normal sampler and a uniform sampler.
//
// Samplers are generator objects, not closures: Normal keeps the second
// deviate of each accepted polar trial in an explicit spare field and hands
// it out on the next call. Use Func to adapt any Generator to the
// zero-argument form consumed by csr.Random:
//
//	g := randinit.NewNormal(randinit.WithStdDev(0.1), randinit.WithSeed(7))
//	w, err := csr.Random(64, 32, randinit.Func(g))
//
// Generators are not safe for concurrent use.
package randinit
