// Package rb contains unit tests for the configuration primitives
// (engineConfig and Option) to ensure correct application and override behavior.
package rb

import (
	"math/rand"
	"testing"

	"github.com/katalvlaran/clifford/table"
)

// TestRNGOptions verifies the default seed and last-wins ordering.
func TestRNGOptions(t *testing.T) {
	t.Parallel()

	// 1. Default rng is seeded with DefaultSeed
	want := rand.New(rand.NewSource(DefaultSeed)).Int63()
	if got := newEngineConfig().rng.Int63(); got != want {
		t.Errorf("default rng: expected %d, got %d", want, got)
	}

	// 2. WithSeed after WithRand wins
	r := rand.New(rand.NewSource(99))
	cfg := newEngineConfig(WithRand(r), WithSeed(5))
	if cfg.rng == r {
		t.Error("WithSeed did not override WithRand")
	}
	if got, want := cfg.rng.Int63(), rand.New(rand.NewSource(5)).Int63(); got != want {
		t.Errorf("WithSeed(5): expected %d, got %d", want, got)
	}

	// 3. WithRand keeps the caller's source
	if cfg := newEngineConfig(WithRand(r)); cfg.rng != r {
		t.Error("WithRand: rng not attached")
	}
}

// TestProviderOptions checks provider and parallelism wiring.
func TestProviderOptions(t *testing.T) {
	t.Parallel()

	if cfg := newEngineConfig(); cfg.provider != nil || len(cfg.buildOpts) != 0 {
		t.Errorf("defaults: expected no provider and no build options, got %v / %d", cfg.provider, len(cfg.buildOpts))
	}
	cfg := newEngineConfig(WithTableDir("tables"), WithParallelism(2))
	dp, ok := cfg.provider.(table.DirProvider)
	if !ok || dp.Dir != "tables" {
		t.Errorf("WithTableDir: expected DirProvider{tables}, got %#v", cfg.provider)
	}
	if len(cfg.buildOpts) != 1 {
		t.Errorf("WithParallelism: expected 1 build option, got %d", len(cfg.buildOpts))
	}
}

// TestOptionPanics verifies that constructors reject nonsense eagerly.
func TestOptionPanics(t *testing.T) {
	t.Parallel()

	cases := map[string]func(){
		"WithRand(nil)":          func() { WithRand(nil) },
		"WithTableProvider(nil)": func() { WithTableProvider(nil) },
		"WithParallelism(0)":     func() { WithParallelism(0) },
	}
	for name, fn := range cases {
		func() {
			defer func() {
				if recover() == nil {
					t.Errorf("%s: expected panic", name)
				}
			}()
			fn()
		}()
	}
}
