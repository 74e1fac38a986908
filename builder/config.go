// SPDX-License-Identifier: MIT
// Package builder: functional options resolved into an immutable config.
// No global state; every Build call resolves its own configuration.

package builder

import (
	mapset "github.com/deckarep/golang-set/v2"

	"github.com/quantakit/qdag/commute"
)

// Option configures a single Build call.
type Option func(*config)

// config holds the resolved build configuration.
type config struct {
	oracle    commute.Func // explicit oracle; wins over tolerance/cache knobs
	tolerance float64      // tolerance for the default oracle
	useCache  bool         // wrap the default oracle in a commute.Cache

	// qubitUniverse/clbitUniverse, when non-nil, demarcate the legal
	// resource ids; operations outside them fail with ErrInvalidSequence.
	qubitUniverse mapset.Set[int]
	clbitUniverse mapset.Set[int]
}

// newConfig resolves options into a config with defaults applied.
func newConfig(opts ...Option) config {
	cfg := config{tolerance: commute.DefaultTolerance}
	for _, opt := range opts {
		opt(&cfg)
	}

	return cfg
}

// resolveOracle picks the commutation oracle for this build: an explicit
// WithOracle takes precedence; otherwise the default predicate at the
// configured tolerance, optionally memoized.
func (c config) resolveOracle() commute.Func {
	if c.oracle != nil {
		return c.oracle
	}
	if c.useCache {
		return commute.NewCache(commute.WithTolerance(c.tolerance)).Commutes
	}

	return commute.Oracle(commute.WithTolerance(c.tolerance))
}

// WithOracle returns an Option that replaces the commutation oracle
// entirely. The function must be pure; its verdicts define the graph.
// Use this to refine the conservative non-unitary rules without touching
// the builder or the graph.
func WithOracle(fn commute.Func) Option {
	return func(c *config) { c.oracle = fn }
}

// WithTolerance returns an Option that sets the numeric tolerance of the
// default oracle. Ignored when WithOracle is also given.
func WithTolerance(tol float64) Option {
	return func(c *config) { c.tolerance = tol }
}

// WithCache returns an Option that memoizes the default oracle across the
// build, deduplicating repeated gate patterns. Ignored when WithOracle is
// also given.
func WithCache() Option {
	return func(c *config) { c.useCache = true }
}

// WithUniverse returns an Option that fixes the resource universe to qubits
// 0..numQubits-1 and clbits 0..numClbits-1. Operations outside it fail the
// build with ErrInvalidSequence. Without this option no validation is
// performed (delegated to the surrounding circuit representation).
func WithUniverse(numQubits, numClbits int) Option {
	return func(c *config) {
		c.qubitUniverse = rangeSet(numQubits)
		c.clbitUniverse = rangeSet(numClbits)
	}
}

// rangeSet builds the set {0, ..., n-1}.
func rangeSet(n int) mapset.Set[int] {
	s := mapset.NewThreadUnsafeSet[int]()
	for i := 0; i < n; i++ {
		s.Add(i)
	}

	return s
}
