package clifford

import (
	"fmt"
)

// Element is an immutable n-qubit Clifford group element holding both its
// tableau and a circuit that realizes it.
type Element struct {
	tab     *Tableau
	circuit Circuit
	key     Key
}

// Identity returns the identity element with an empty circuit.
func Identity(n int) (*Element, error) {
	t, err := NewTableau(n)
	if err != nil {
		return nil, fmt.Errorf("Identity: %w", err)
	}
	return &Element{tab: t, key: t.Key()}, nil
}

// FromCircuit replays c from the identity.
func FromCircuit(n int, c Circuit) (*Element, error) {
	t, err := NewTableau(n)
	if err != nil {
		return nil, fmt.Errorf("FromCircuit: %w", err)
	}
	if err = t.ApplyCircuit(c); err != nil {
		return nil, fmt.Errorf("FromCircuit: %w", err)
	}
	return &Element{tab: t, circuit: c.Clone(), key: t.Key()}, nil
}

// NewElement pairs a tableau with a circuit after checking that the tableau
// is symplectic and that replaying the circuit reproduces it exactly.
// Both inputs are copied.
func NewElement(t *Tableau, c Circuit) (*Element, error) {
	if !t.IsSymplectic() {
		return nil, fmt.Errorf("NewElement: %w", ErrNotSymplectic)
	}
	replay, err := NewTableau(t.n)
	if err != nil {
		return nil, fmt.Errorf("NewElement: %w", err)
	}
	if err = replay.ApplyCircuit(c); err != nil {
		return nil, fmt.Errorf("NewElement: %w", err)
	}
	if !replay.Equal(t) {
		return nil, fmt.Errorf("NewElement: n=%d, %d gates: %w", t.n, len(c), ErrCircuitMismatch)
	}
	return &Element{tab: replay, circuit: c.Clone(), key: replay.Key()}, nil
}

// N returns the qubit count.
func (e *Element) N() int { return e.tab.n }

// Tableau returns a mutable copy of the tableau.
func (e *Element) Tableau() *Tableau { return e.tab.Clone() }

// Circuit returns a copy of the realizing gate sequence.
func (e *Element) Circuit() Circuit { return e.circuit.Clone() }

// Key returns the canonical key.
func (e *Element) Key() Key { return e.key }

// Len returns the number of gates in the circuit.
func (e *Element) Len() int { return len(e.circuit) }

// IsIdentity reports whether e is the group identity.
func (e *Element) IsIdentity() bool { return e.tab.IsIdentity() }

// Equal reports whether e and o are the same group element.
// Circuits are ignored.
func (e *Element) Equal(o *Element) bool { return e.key == o.key }

// Apply returns the element "e, then gates".
func (e *Element) Apply(gates ...Gate) (*Element, error) {
	t := e.tab.Clone()
	if err := t.ApplyCircuit(gates); err != nil {
		return nil, fmt.Errorf("Element.Apply: %w", err)
	}
	c := make(Circuit, 0, len(e.circuit)+len(gates))
	c = append(c, e.circuit...)
	c = append(c, gates...)
	return &Element{tab: t, circuit: c, key: t.Key()}, nil
}

// Validate re-checks both invariants: the tableau is symplectic and the
// circuit reproduces it.
func (e *Element) Validate() error {
	if !e.tab.IsSymplectic() {
		return fmt.Errorf("Element.Validate: %w", ErrNotSymplectic)
	}
	replay, err := FromCircuit(e.tab.n, e.circuit)
	if err != nil {
		return fmt.Errorf("Element.Validate: %w", err)
	}
	if replay.key != e.key {
		return fmt.Errorf("Element.Validate: key %s, replay %s: %w", e.key, replay.key, ErrCircuitMismatch)
	}
	return nil
}

// String renders "n=2 [h 0; cx 0 1]".
func (e *Element) String() string {
	return fmt.Sprintf("n=%d [%s]", e.tab.n, e.circuit)
}
