package rb

import (
	"errors"
	"fmt"
	"math/rand"
	"sync"

	"github.com/katalvlaran/clifford/clifford"
	"github.com/katalvlaran/clifford/invert"
	"github.com/katalvlaran/clifford/sample"
	"github.com/katalvlaran/clifford/table"
)

// ErrInvalidLength is returned by Sequence for a negative length.
var ErrInvalidLength = errors.New("rb: sequence length must be non-negative")

// Engine samples and inverts Clifford elements. Its methods are safe for
// concurrent use; draws are serialized on the single RNG.
type Engine struct {
	mu     sync.Mutex // guards rng
	rng    *rand.Rand
	tables *table.Cache
}

// New returns an Engine configured by opts.
func New(opts ...Option) *Engine {
	cfg := newEngineConfig(opts...)
	return &Engine{
		rng:    cfg.rng,
		tables: table.NewCache(cfg.provider, cfg.buildOpts...),
	}
}

// BuildTable returns the complete table for n: built by closure for
// n ≤ table.MaxBuildQubits, otherwise loaded from the configured provider.
// Tables are memoized per Engine.
func (e *Engine) BuildTable(n int) (*table.Table, error) {
	t, err := e.tables.Table(n)
	if err != nil {
		return nil, fmt.Errorf("BuildTable(%d): %w", n, err)
	}
	return t, nil
}

// Sample returns a uniformly random n-qubit element.
func (e *Engine) Sample(n int, useTable bool) (*clifford.Element, error) {
	if n < 1 {
		return nil, fmt.Errorf("Sample(%d): %w", n, clifford.ErrInvalidQubitCount)
	}
	var tbl *table.Table
	if useTable {
		var err error
		if tbl, err = e.BuildTable(n); err != nil {
			return nil, fmt.Errorf("Sample: %w", err)
		}
	}

	e.mu.Lock()
	defer e.mu.Unlock()
	return e.draw(n, tbl)
}

// draw samples from tbl when non-nil, otherwise on the fly. Caller holds mu.
func (e *Engine) draw(n int, tbl *table.Table) (*clifford.Element, error) {
	var (
		el  *clifford.Element
		err error
	)
	if tbl != nil {
		el, err = sample.FromTable(tbl, e.rng)
	} else {
		el, err = sample.OnTheFly(n, e.rng)
	}
	if err != nil {
		return nil, fmt.Errorf("Sample(n=%d, table=%t): %w", n, tbl != nil, err)
	}
	return el, nil
}

// Invert returns the inverse of el. In table mode tbl is searched; a nil tbl
// means the Engine's own table for el.N(). On-the-fly mode ignores tbl.
func (e *Engine) Invert(el *clifford.Element, tbl *table.Table, useTable bool) (*clifford.Element, error) {
	if !useTable {
		return invert.Direct(el)
	}
	if tbl == nil {
		var err error
		if tbl, err = e.BuildTable(el.N()); err != nil {
			return nil, fmt.Errorf("Invert: %w", err)
		}
	}
	return invert.FromTable(el, tbl)
}

// Sequence is one randomized-benchmarking sequence: Length random elements
// followed by the recovery element that inverts their product.
type Sequence struct {
	Elements []*clifford.Element
	Recovery *clifford.Element
}

// Circuit returns the gates of all elements and the recovery, in order.
func (s Sequence) Circuit() clifford.Circuit {
	var c clifford.Circuit
	for _, el := range s.Elements {
		c = append(c, el.Circuit()...)
	}
	if s.Recovery != nil {
		c = append(c, s.Recovery.Circuit()...)
	}
	return c
}

// Sequence draws length elements on n qubits and appends the recovery
// element, so the whole sequence composes to identity.
// Complexity: O(length·n³).
func (e *Engine) Sequence(n, length int, useTable bool) (Sequence, error) {
	if length < 0 {
		return Sequence{}, fmt.Errorf("Sequence(length=%d): %w", length, ErrInvalidLength)
	}
	if n < 1 {
		return Sequence{}, fmt.Errorf("Sequence(%d): %w", n, clifford.ErrInvalidQubitCount)
	}
	var tbl *table.Table
	if useTable {
		var err error
		if tbl, err = e.BuildTable(n); err != nil {
			return Sequence{}, fmt.Errorf("Sequence: %w", err)
		}
	}
	total, err := clifford.Identity(n)
	if err != nil {
		return Sequence{}, err
	}

	seq := Sequence{Elements: make([]*clifford.Element, 0, length)}
	e.mu.Lock()
	for i := 0; i < length; i++ {
		el, derr := e.draw(n, tbl)
		if derr != nil {
			e.mu.Unlock()
			return Sequence{}, fmt.Errorf("Sequence: element %d: %w", i, derr)
		}
		seq.Elements = append(seq.Elements, el)
		if total, derr = clifford.Compose(total, el); derr != nil {
			e.mu.Unlock()
			return Sequence{}, fmt.Errorf("Sequence: element %d: %w", i, derr)
		}
	}
	e.mu.Unlock()

	if seq.Recovery, err = e.Invert(total, tbl, useTable); err != nil {
		return Sequence{}, fmt.Errorf("Sequence: recovery: %w", err)
	}
	return seq, nil
}
