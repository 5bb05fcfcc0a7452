// SPDX-License-Identifier: MIT

package randinit

import (
	"math"
	"math/rand/v2"
)

// Generator produces one sample per call.
type Generator interface {
	Sample() float64
}

// Func adapts g to the zero-argument form consumed by csr.Random.
func Func(g Generator) func() float64 { return g.Sample }

// Normal samples N(mean, stdDev²) with the polar Box–Muller method.
// Each accepted trial yields two independent deviates; the second one is kept
// in spare and consumed (then cleared) by the next Sample call.
type Normal struct {
	mean, stdDev float64
	round        bool
	rng          *rand.Rand

	spare    float64
	hasSpare bool
}

var _ Generator = (*Normal)(nil)

// NewNormal builds a normal sampler. Defaults: mean 0, sd 1, no rounding,
// non-deterministic seed.
func NewNormal(opts ...Option) *Normal {
	c := gatherOptions(opts...)

	return &Normal{
		mean:   c.mean,
		stdDev: c.stdDev,
		round:  c.round,
		rng:    rand.New(c.src),
	}
}

// Sample returns the next normal deviate.
func (n *Normal) Sample() float64 {
	return n.finish(n.standard())
}

// HasSpare reports whether the next Sample will be served from the cache.
func (n *Normal) HasSpare() bool { return n.hasSpare }

// standard returns a N(0,1) deviate, serving the cached spare first.
func (n *Normal) standard() float64 {
	if n.hasSpare {
		n.hasSpare = false
		return n.spare
	}

	var u, v, s float64
	for {
		u = 2*n.rng.Float64() - 1
		v = 2*n.rng.Float64() - 1
		s = u*u + v*v
		if s > 0 && s < 1 {
			break
		}
	}
	mul := math.Sqrt(-2 * math.Log(s) / s)
	n.spare, n.hasSpare = v*mul, true

	return u * mul
}

func (n *Normal) finish(z float64) float64 {
	x := n.mean + n.stdDev*z
	if n.round {
		return math.Round(x)
	}

	return x
}

// Uniform samples the half-open interval [lo, hi).
type Uniform struct {
	lo, hi float64
	round  bool
	rng    *rand.Rand
}

var _ Generator = (*Uniform)(nil)

// NewUniform builds a uniform sampler. Defaults: [0, 1), no rounding.
func NewUniform(opts ...Option) *Uniform {
	c := gatherOptions(opts...)

	return &Uniform{lo: c.lo, hi: c.hi, round: c.round, rng: rand.New(c.src)}
}

// Sample returns the next uniform sample.
func (u *Uniform) Sample() float64 {
	x := u.lo + (u.hi-u.lo)*u.rng.Float64()
	if u.round {
		return math.Round(x)
	}

	return x
}
