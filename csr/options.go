// SPDX-License-Identifier: MIT

// Package csr: functional configuration for ingestion and diagnostics.
// This file defines:
//   - Option / Options (functional options with internal state),
//   - documented defaults (constants),
//   - WithX constructors with strong validation (panic on nonsensical values),
//   - gatherOptions helper that resolves setters against the defaults.
//
// Options only affect how a store is BUILT (compression threshold, logger).
// Stores produced by algebra always use the exact-zero rule.
package csr

import (
	"log/slog"
	"math"
)

// ---------- Defaults (single source of truth) ----------

const (
	// DefaultDropTolerance is the magnitude at or below which an ingested value
	// is treated as zero. 0 means only exact zeros are dropped.
	DefaultDropTolerance = 0.0

	// DefaultDetWarnSize is the order above which Det logs a warning about its
	// factorial cost.
	DefaultDetWarnSize = 9
)

const (
	panicDropToleranceInvalid = "csr: WithDropTolerance: tol must be finite, non-negative"
	panicDetWarnSizeInvalid   = "csr: WithDetWarnSize: n must be non-negative"
)

// Option mutates internal options. Safe to apply repeatedly.
type Option func(*Options)

// Options stores the effective configuration after applying Option setters.
type Options struct {
	dropTol     float64      // >= 0
	detWarnSize int          // >= 0
	logger      *slog.Logger // nil => package logger
}

// WithDropTolerance treats |v| <= tol as zero during compression.
// Panics when tol is negative, NaN or ±Inf.
func WithDropTolerance(tol float64) Option {
	if tol < 0 || math.IsNaN(tol) || math.IsInf(tol, 0) {
		panic(panicDropToleranceInvalid)
	}

	return func(o *Options) { o.dropTol = tol }
}

// WithDetWarnSize sets the order above which Determinant emits a warning.
func WithDetWarnSize(n int) Option {
	if n < 0 {
		panic(panicDetWarnSizeInvalid)
	}

	return func(o *Options) { o.detWarnSize = n }
}

// WithLogger routes diagnostics of a single call to l instead of the
// package logger. A nil logger is ignored.
func WithLogger(l *slog.Logger) Option {
	return func(o *Options) {
		if l != nil {
			o.logger = l
		}
	}
}

// gatherOptions applies user setters on top of the defaults (last writer wins).
func gatherOptions(user ...Option) Options {
	o := Options{
		dropTol:     DefaultDropTolerance,
		detWarnSize: DefaultDetWarnSize,
	}
	for _, set := range user {
		set(&o)
	}
	if o.logger == nil {
		o.logger = Logger()
	}

	return o
}

// isDropped reports whether v must not be stored under the resolved policy.
// NaN counts as non-numeric and is always dropped.
func (o Options) isDropped(v float64) bool {
	if math.IsNaN(v) {
		return true
	}
	if o.dropTol == 0 {
		return v == 0
	}

	return math.Abs(v) <= o.dropTol
}
