// SPDX-License-Identifier: MIT
// Package: clifford/rb
//
// options.go: functional options for Engine.
//
// Contract:
//   • Option constructors validate and PANIC on meaningless inputs.
//     Engine methods never panic.
//   • Determinism is explicit: seeding is done via WithSeed or WithRand.

package rb

import (
	"math/rand"

	"github.com/katalvlaran/clifford/table"
)

// Option customizes an Engine before first use.
// Complexity: applying N options costs O(N) time, O(1) space.
type Option func(*engineConfig)

// WithSeed creates a new *rand.Rand with the given seed (deterministic).
func WithSeed(seed int64) Option {
	return func(c *engineConfig) {
		c.rng = rand.New(rand.NewSource(seed))
	}
}

// WithRand provides an explicit RNG. Panics on nil.
// The Engine takes ownership: do not draw from r elsewhere.
func WithRand(r *rand.Rand) Option {
	if r == nil {
		panic("rb: WithRand(nil)")
	}
	return func(c *engineConfig) {
		c.rng = r
	}
}

// WithTableProvider sets the source of tables for n > table.MaxBuildQubits,
// typically table.DirProvider. Panics on nil.
func WithTableProvider(p table.Provider) Option {
	if p == nil {
		panic("rb: WithTableProvider(nil)")
	}
	return func(c *engineConfig) {
		c.provider = p
	}
}

// WithTableDir is WithTableProvider(table.DirProvider{Dir: dir}).
// An empty dir means the working directory.
func WithTableDir(dir string) Option {
	return WithTableProvider(table.DirProvider{Dir: dir})
}

// WithParallelism bounds the workers used when building tables.
// Panics if k < 1.
func WithParallelism(k int) Option {
	if k < 1 {
		panic("rb: WithParallelism(k<1)")
	}
	return func(c *engineConfig) {
		c.buildOpts = append(c.buildOpts, table.WithParallelism(k))
	}
}
