package table

import (
	"context"
	"fmt"
	"runtime"

	"github.com/katalvlaran/clifford/clifford"
)

// Option configures Build via functional arguments.
// An invalid Option is recorded and surfaced as ErrOptionViolation when
// Build is invoked.
type Option func(*BuildOptions)

// BuildOptions holds parameters and callbacks for Build.
type BuildOptions struct {
	// Ctx allows cancellation; it is checked once per closure level and
	// once per worker chunk.
	Ctx context.Context

	// Parallelism bounds the number of goroutines expanding one level.
	// 1 runs the closure on the calling goroutine.
	Parallelism int

	// OnDiscover is called, in table order, for every newly inserted element
	// with its closure depth. Returning an error aborts Build.
	OnDiscover func(e *clifford.Element, depth int) error

	// internal error recorded during option parsing
	err error
}

// DefaultOptions returns Background context, GOMAXPROCS workers and a no-op hook.
func DefaultOptions() BuildOptions {
	return BuildOptions{
		Ctx:         context.Background(),
		Parallelism: runtime.GOMAXPROCS(0),
		OnDiscover:  func(*clifford.Element, int) error { return nil },
	}
}

// WithContext sets a custom context for cancellation.
func WithContext(ctx context.Context) Option {
	return func(o *BuildOptions) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}

// WithParallelism sets the worker count.
//
//	k > 0: use k workers
//	k <= 0: invalid option → ErrOptionViolation
func WithParallelism(k int) Option {
	return func(o *BuildOptions) {
		if k <= 0 {
			o.err = fmt.Errorf("%w: Parallelism must be positive (%d)", ErrOptionViolation, k)
			return
		}
		o.Parallelism = k
	}
}

// WithOnDiscover registers a callback run for every new element.
func WithOnDiscover(fn func(e *clifford.Element, depth int) error) Option {
	return func(o *BuildOptions) {
		if fn != nil {
			o.OnDiscover = fn
		}
	}
}
