// SPDX-License-Identifier: MIT
// Package: clifford/rb
//
// config.go: internal configuration and deterministic defaults.
//
// Deterministic defaults:
//   • rng       = rand.New(rand.NewSource(DefaultSeed))
//   • provider  = nil   (n > 2 in table mode fails with ErrMissingPrecomputedTable)
//   • buildOpts = none  (table.DefaultOptions)

package rb

import (
	"math/rand"

	"github.com/katalvlaran/clifford/table"
)

// DefaultSeed seeds the Engine's RNG when neither WithSeed nor WithRand is given.
const DefaultSeed int64 = 1

// engineConfig aggregates all Engine knobs.
type engineConfig struct {
	rng       *rand.Rand
	provider  table.Provider
	buildOpts []table.Option
}

// newEngineConfig applies options in order over the defaults; last wins.
func newEngineConfig(opts ...Option) engineConfig {
	cfg := engineConfig{}
	for _, opt := range opts {
		opt(&cfg)
	}
	if cfg.rng == nil {
		cfg.rng = rand.New(rand.NewSource(DefaultSeed))
	}
	return cfg
}
