package table

import (
	"fmt"
	"math/big"
	"sort"

	"github.com/katalvlaran/clifford/clifford"
)

// MaxBuildQubits is the largest n Build enumerates.
const MaxBuildQubits = 2

// Entry is one group element of a table together with the closure level at
// which it was discovered (0 for the identity; -1 for loaded tables).
type Entry struct {
	Element *clifford.Element
	Depth   int
}

// Table maps canonical keys to representative elements of the n-qubit
// Clifford group. Entries keep insertion order, which is what index-based
// sampling draws from.
type Table struct {
	n       int
	entries []Entry
	index   map[clifford.Key]int
}

// newTable returns an empty table with capacity hint.
func newTable(n, capacity int) *Table {
	return &Table{
		n:       n,
		entries: make([]Entry, 0, capacity),
		index:   make(map[clifford.Key]int, capacity),
	}
}

// insert adds e when its key is new and reports whether it did.
func (t *Table) insert(e *clifford.Element, depth int) bool {
	k := e.Key()
	if _, seen := t.index[k]; seen {
		return false
	}
	t.index[k] = len(t.entries)
	t.entries = append(t.entries, Entry{Element: e, Depth: depth})
	return true
}

// New builds a table from externally supplied elements, in the given order.
// All elements must act on n qubits and have distinct keys.
func New(n int, elems []*clifford.Element) (*Table, error) {
	if n < 1 {
		return nil, fmt.Errorf("table.New(%d): %w", n, clifford.ErrInvalidQubitCount)
	}
	t := newTable(n, len(elems))
	for i, e := range elems {
		if e.N() != n {
			return nil, fmt.Errorf("table.New: element %d has n=%d, want %d: %w",
				i, e.N(), n, clifford.ErrDimensionMismatch)
		}
		if !t.insert(e, -1) {
			return nil, fmt.Errorf("table.New: element %d key %s: %w: %w",
				i, e.Key(), clifford.ErrInternalConsistency, ErrDuplicateKey)
		}
	}
	return t, nil
}

// N returns the qubit count.
func (t *Table) N() int { return t.n }

// Len returns the number of entries.
func (t *Table) Len() int { return len(t.entries) }

// Entry returns entry i.
func (t *Table) Entry(i int) (Entry, error) {
	if i < 0 || i >= len(t.entries) {
		return Entry{}, fmt.Errorf("Table.Entry(%d) of %d: %w", i, len(t.entries), ErrIndexOutOfRange)
	}
	return t.entries[i], nil
}

// Lookup returns the element stored under k.
func (t *Table) Lookup(k clifford.Key) (*clifford.Element, bool) {
	i, ok := t.index[k]
	if !ok {
		return nil, false
	}
	return t.entries[i].Element, true
}

// IndexOf returns the position of k in insertion order.
func (t *Table) IndexOf(k clifford.Key) (int, bool) {
	i, ok := t.index[k]
	return i, ok
}

// Keys returns all keys in insertion order.
func (t *Table) Keys() []clifford.Key {
	out := make([]clifford.Key, len(t.entries))
	for i, e := range t.entries {
		out[i] = e.Element.Key()
	}
	return out
}

// Circuits returns the text form of every stored circuit, sorted, with the
// empty circuit written as "id". The result is the line format Load reads.
func (t *Table) Circuits() []string {
	out := make([]string, len(t.entries))
	for i, e := range t.entries {
		out[i] = e.Element.Circuit().String()
		if out[i] == "" {
			out[i] = "id"
		}
	}
	sort.Strings(out)
	return out
}

// MaxDepth returns the deepest closure level present, -1 for loaded tables.
func (t *Table) MaxDepth() int {
	d := -1
	for _, e := range t.entries {
		if e.Depth > d {
			d = e.Depth
		}
	}
	return d
}

// Complete reports whether the table holds the whole group.
func (t *Table) Complete() bool {
	order, err := GroupOrder(t.n)
	if err != nil || !order.IsInt64() {
		return false
	}
	return order.Int64() == int64(len(t.entries))
}

// GroupOrder returns |C_n| = 2^(n²+2n) · ∏_{j=1..n} (4^j − 1), the order of
// the n-qubit Clifford group modulo global phase: 24, 11520, 92897280, ...
func GroupOrder(n int) (*big.Int, error) {
	if n < 1 {
		return nil, fmt.Errorf("GroupOrder(%d): %w", n, clifford.ErrInvalidQubitCount)
	}
	order := new(big.Int).Lsh(big.NewInt(1), uint(n*n+2*n))
	four := big.NewInt(4)
	one := big.NewInt(1)
	term := new(big.Int)
	for j := 1; j <= n; j++ {
		term.Exp(four, big.NewInt(int64(j)), nil)
		term.Sub(term, one)
		order.Mul(order, term)
	}
	return order, nil
}
