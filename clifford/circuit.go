package clifford

import (
	"fmt"
	"strings"
)

// Circuit is a gate sequence in time order.
type Circuit []Gate

// circuitSep separates gates in the text form.
const circuitSep = "; "

// String renders the circuit as "h 0; s 0; cx 0 1". The empty circuit renders
// as the empty string.
func (c Circuit) String() string {
	parts := make([]string, len(c))
	for i, g := range c {
		parts[i] = g.String()
	}
	return strings.Join(parts, circuitSep)
}

// ParseCircuit parses the String form. Blank input and the token "id" yield
// no gates, so "id" can stand for the identity where an empty line cannot.
func ParseCircuit(s string) (Circuit, error) {
	var out Circuit
	for _, part := range strings.Split(s, ";") {
		part = strings.TrimSpace(part)
		if part == "" || strings.EqualFold(part, "id") {
			continue
		}
		g, err := ParseGate(part)
		if err != nil {
			return nil, fmt.Errorf("ParseCircuit: %w", err)
		}
		out = append(out, g)
	}
	return out, nil
}

// Inverse returns the circuit undoing c: gates reversed, each inverted.
func (c Circuit) Inverse() Circuit {
	out := make(Circuit, len(c))
	for i, g := range c {
		out[len(c)-1-i] = g.Inverse()
	}
	return out
}

// Clone returns an independent copy.
func (c Circuit) Clone() Circuit {
	if c == nil {
		return nil
	}
	out := make(Circuit, len(c))
	copy(out, c)
	return out
}

// Validate checks every gate against an n-qubit register.
func (c Circuit) Validate(n int) error {
	for i, g := range c {
		if err := g.Validate(n); err != nil {
			return fmt.Errorf("circuit[%d]: %w", i, err)
		}
	}
	return nil
}

// CountKind returns how many gates of kind k appear in c.
func (c Circuit) CountKind(k GateKind) int {
	cnt := 0
	for _, g := range c {
		if g.Kind == k {
			cnt++
		}
	}
	return cnt
}

// Generators returns the generating set for n qubits in its fixed order:
// H(q) and S(q) for every q, then CX(c, t) for every ordered pair c ≠ t.
func Generators(n int) (Circuit, error) {
	if n < 1 {
		return nil, fmt.Errorf("Generators(%d): %w", n, ErrInvalidQubitCount)
	}
	gens := make(Circuit, 0, 2*n+n*(n-1))
	for q := 0; q < n; q++ {
		gens = append(gens, H(q), S(q))
	}
	for c := 0; c < n; c++ {
		for t := 0; t < n; t++ {
			if c != t {
				gens = append(gens, CX(c, t))
			}
		}
	}
	return gens, nil
}
