// SPDX-License-Identifier: MIT

package randinit

import (
	"math"
	"math/rand/v2"
)

// ---------- Defaults (single source of truth) ----------

const (
	// DefaultMean is the center of the normal sampler.
	DefaultMean = 0.0
	// DefaultStdDev is the standard deviation of the normal sampler.
	DefaultStdDev = 1.0
	// DefaultLow and DefaultHigh bound the uniform sampler to [DefaultLow, DefaultHigh).
	DefaultLow  = 0.0
	DefaultHigh = 1.0
	// DefaultRounding disables integer rounding of samples.
	DefaultRounding = false
)

const (
	panicMeanInvalid   = "randinit: WithMean: mean must be finite"
	panicStdDevInvalid = "randinit: WithStdDev: sd must be finite, non-negative"
	panicRangeInvalid  = "randinit: WithRange: bounds must be finite with lo <= hi"
	panicSourceNil     = "randinit: WithSource: nil source"
)

// Option configures a sampler. Constructors panic on nonsensical values
// (programmer error), never at sampling time.
//
// Both samplers share one option set. WithMean and WithStdDev apply to
// NewNormal only; WithRange applies to NewUniform only. A sampler ignores
// options that belong to the other one. WithRounding, WithSeed and
// WithSource apply to both.
type Option func(*config)

type config struct {
	mean, stdDev float64
	lo, hi       float64
	round        bool
	src          rand.Source
}

// WithMean sets the normal sampler's mean. Ignored by NewUniform.
func WithMean(mean float64) Option {
	if math.IsNaN(mean) || math.IsInf(mean, 0) {
		panic(panicMeanInvalid)
	}

	return func(c *config) { c.mean = mean }
}

// WithStdDev sets the normal sampler's standard deviation. Ignored by NewUniform.
func WithStdDev(sd float64) Option {
	if sd < 0 || math.IsNaN(sd) || math.IsInf(sd, 0) {
		panic(panicStdDevInvalid)
	}

	return func(c *config) { c.stdDev = sd }
}

// WithRange sets the uniform sampler's half-open interval [lo, hi).
// Ignored by NewNormal.
func WithRange(lo, hi float64) Option {
	if math.IsNaN(lo) || math.IsNaN(hi) || math.IsInf(lo, 0) || math.IsInf(hi, 0) || lo > hi {
		panic(panicRangeInvalid)
	}

	return func(c *config) { c.lo, c.hi = lo, hi }
}

// WithRounding rounds every sample to the nearest integer (half away from zero).
func WithRounding(on bool) Option {
	return func(c *config) { c.round = on }
}

// WithSeed makes the sampler deterministic by seeding a PCG source.
func WithSeed(seed uint64) Option {
	return func(c *config) { c.src = rand.NewPCG(seed, seed^0x9e3779b97f4a7c15) }
}

// WithSource draws uniform bits from src.
func WithSource(src rand.Source) Option {
	if src == nil {
		panic(panicSourceNil)
	}

	return func(c *config) { c.src = src }
}

func gatherOptions(user ...Option) config {
	c := config{
		mean:   DefaultMean,
		stdDev: DefaultStdDev,
		lo:     DefaultLow,
		hi:     DefaultHigh,
		round:  DefaultRounding,
	}
	for _, set := range user {
		set(&c)
	}
	if c.src == nil {
		c.src = rand.NewPCG(rand.Uint64(), rand.Uint64())
	}

	return c
}
