package table

import (
	"context"
	"fmt"

	"golang.org/x/sync/errgroup"

	"github.com/katalvlaran/clifford/clifford"
)

// minChunk is the smallest slice of a frontier handed to one worker.
const minChunk = 64

// closure encapsulates mutable closure state.
type closure struct {
	opts     BuildOptions
	ctx      context.Context
	gens     clifford.Circuit
	table    *Table
	frontier []*clifford.Element
	depth    int
}

// Build enumerates the n-qubit Clifford group by breadth-first closure.
// Returns ErrInvalidQubitCount for n < 1, ErrMissingPrecomputedTable for
// n > MaxBuildQubits, ErrOptionViolation for bad options, the context error
// on cancellation, any OnDiscover error, and ErrInternalConsistency wrapping
// ErrTableSizeMismatch if the result is not the whole group.
func Build(n int, opts ...Option) (*Table, error) {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, o.err
	}
	if n < 1 {
		return nil, fmt.Errorf("table.Build(%d): %w", n, clifford.ErrInvalidQubitCount)
	}
	if n > MaxBuildQubits {
		return nil, fmt.Errorf("table.Build(%d): closure is limited to n ≤ %d, load n=%d from a provider: %w",
			n, MaxBuildQubits, n, ErrMissingPrecomputedTable)
	}

	order, err := GroupOrder(n)
	if err != nil {
		return nil, err
	}
	gens, err := clifford.Generators(n)
	if err != nil {
		return nil, err
	}
	id, err := clifford.Identity(n)
	if err != nil {
		return nil, err
	}

	c := &closure{
		opts:  o,
		ctx:   o.Ctx,
		gens:  gens,
		table: newTable(n, int(order.Int64())),
	}
	if err = c.discover(id); err != nil {
		return nil, err
	}
	if err = c.loop(); err != nil {
		return nil, err
	}

	if int64(c.table.Len()) != order.Int64() {
		return nil, fmt.Errorf("table.Build(%d): %d elements, want %s: %w: %w",
			n, c.table.Len(), order, clifford.ErrInternalConsistency, ErrTableSizeMismatch)
	}
	return c.table, nil
}

// discover inserts e at the current depth and, if new, queues it for the
// next level and runs the hook.
func (c *closure) discover(e *clifford.Element) error {
	if !c.table.insert(e, c.depth) {
		return nil
	}
	c.frontier = append(c.frontier, e)
	if err := c.opts.OnDiscover(e, c.depth); err != nil {
		return fmt.Errorf("table.Build: OnDiscover at key %s: %w", e.Key(), err)
	}
	return nil
}

// loop expands levels until the frontier is empty or an error occurs.
func (c *closure) loop() error {
	for len(c.frontier) > 0 {
		// cancellation check (once per level)
		select {
		case <-c.ctx.Done():
			return c.ctx.Err()
		default:
		}

		level := c.frontier
		c.frontier = nil
		c.depth++

		succ, err := c.expand(level)
		if err != nil {
			return err
		}
		// sequential merge in frontier/generator order keeps the table deterministic
		for _, row := range succ {
			for _, e := range row {
				if e == nil {
					continue
				}
				if err = c.discover(e); err != nil {
					return err
				}
			}
		}
	}
	return nil
}

// expand computes "e, then g" for every e in level and every generator.
// succ[i][j] is nil when the successor is already in the table. The table
// is only read here; all writes happen in loop after Wait.
func (c *closure) expand(level []*clifford.Element) ([][]*clifford.Element, error) {
	succ := make([][]*clifford.Element, len(level))

	workers := c.opts.Parallelism
	chunk := (len(level) + workers - 1) / workers
	if chunk < minChunk {
		chunk = minChunk
	}

	g, ctx := errgroup.WithContext(c.ctx)
	g.SetLimit(workers)
	for lo := 0; lo < len(level); lo += chunk {
		hi := min(lo+chunk, len(level))
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			for i := lo; i < hi; i++ {
				row := make([]*clifford.Element, len(c.gens))
				for j, gen := range c.gens {
					next, err := level[i].Apply(gen)
					if err != nil {
						return fmt.Errorf("table.Build: expand %s by %s: %w", level[i].Key(), gen, err)
					}
					if _, seen := c.table.index[next.Key()]; !seen {
						row[j] = next
					}
				}
				succ[i] = row
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return succ, nil
}
