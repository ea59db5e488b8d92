package table

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/golang/snappy"
	"github.com/pkg/errors"

	"github.com/katalvlaran/clifford/clifford"
)

// Provider supplies the table for a qubit count.
type Provider interface {
	Table(n int) (*Table, error)
}

// FileName returns the name of the precomputed table file for n qubits.
func FileName(n int) string {
	return fmt.Sprintf("qubits_%d_cnots_0.dat", n)
}

// DirProvider loads precomputed tables from FileName(n) inside Dir.
type DirProvider struct {
	Dir string
}

// Table opens and decodes Dir/FileName(n). A missing file yields
// ErrMissingPrecomputedTable naming n and the expected path.
func (p DirProvider) Table(n int) (*Table, error) {
	if n < 1 {
		return nil, fmt.Errorf("DirProvider.Table(%d): %w", n, clifford.ErrInvalidQubitCount)
	}
	path := filepath.Join(p.Dir, FileName(n))
	f, err := os.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("no table for n=%d at %s, run the external precomputation for %d qubits: %w",
				n, path, n, ErrMissingPrecomputedTable)
		}
		return nil, errors.Wrapf(err, "open %s", path)
	}
	defer f.Close()

	t, err := Load(f, n)
	if err != nil {
		return nil, errors.WithMessagef(err, "load %s", path)
	}
	return t, nil
}

// Load decodes a snappy-framed stream of text lines, one circuit per line in
// the clifford.Circuit text form ("h 0; cx 0 1"), the identity written as
// "id". Blank lines and lines starting with '#' are skipped. Every circuit is
// replayed to obtain its key.
func Load(r io.Reader, n int) (*Table, error) {
	if n < 1 {
		return nil, fmt.Errorf("table.Load(%d): %w", n, clifford.ErrInvalidQubitCount)
	}
	sc := bufio.NewScanner(snappy.NewReader(r))
	sc.Buffer(make([]byte, 0, 64*1024), 1<<20)

	var elems []*clifford.Element
	line := 0
	for sc.Scan() {
		line++
		text := strings.TrimSpace(sc.Text())
		if text == "" || strings.HasPrefix(text, "#") {
			continue
		}
		c, err := clifford.ParseCircuit(text)
		if err != nil {
			return nil, fmt.Errorf("line %d: %w", line, err)
		}
		e, err := clifford.FromCircuit(n, c)
		if err != nil {
			return nil, fmt.Errorf("line %d: %w", line, err)
		}
		elems = append(elems, e)
	}
	if err := sc.Err(); err != nil {
		return nil, errors.WithStack(err)
	}
	if len(elems) == 0 {
		return nil, fmt.Errorf("table.Load(%d): %w", n, ErrEmptyTable)
	}
	return New(n, elems)
}

// Cache builds tables for n ≤ MaxBuildQubits on first use, asks Fallback
// for larger n, and memoizes both. It is safe for concurrent use.
type Cache struct {
	Fallback Provider // may be nil
	Options  []Option // passed to Build

	mu     sync.Mutex
	tables map[int]*Table
}

// NewCache returns a Cache with the given fallback provider and build options.
func NewCache(fallback Provider, opts ...Option) *Cache {
	return &Cache{Fallback: fallback, Options: opts}
}

// Table returns the memoized table for n.
func (c *Cache) Table(n int) (*Table, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if t, ok := c.tables[n]; ok {
		return t, nil
	}
	var (
		t   *Table
		err error
	)
	switch {
	case n < 1:
		return nil, fmt.Errorf("Cache.Table(%d): %w", n, clifford.ErrInvalidQubitCount)
	case n <= MaxBuildQubits:
		t, err = Build(n, c.Options...)
	case c.Fallback != nil:
		t, err = c.Fallback.Table(n)
	default:
		err = fmt.Errorf("no provider for n=%d: %w", n, ErrMissingPrecomputedTable)
	}
	if err != nil {
		return nil, err
	}
	if t.N() != n {
		return nil, fmt.Errorf("Cache.Table(%d): provider returned n=%d: %w", n, t.N(), clifford.ErrDimensionMismatch)
	}
	if c.tables == nil {
		c.tables = make(map[int]*Table)
	}
	c.tables[n] = t
	return t, nil
}
