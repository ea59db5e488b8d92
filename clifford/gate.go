package clifford

import (
	"fmt"
	"strconv"
	"strings"
)

// GateKind enumerates the elementary Clifford gates.
type GateKind uint8

const (
	GateH   GateKind = iota + 1 // Hadamard
	GateS                       // phase, diag(1, i)
	GateSdg                     // S†
	GateX                       // Pauli X
	GateY                       // Pauli Y
	GateZ                       // Pauli Z
	GateCX                      // CNOT, control Q0, target Q1
	GateCZ                      // controlled-Z, symmetric in Q0/Q1
)

var gateNames = map[GateKind]string{
	GateH:   "h",
	GateS:   "s",
	GateSdg: "sdg",
	GateX:   "x",
	GateY:   "y",
	GateZ:   "z",
	GateCX:  "cx",
	GateCZ:  "cz",
}

var gateByName = map[string]GateKind{
	"h":    GateH,
	"s":    GateS,
	"sdg":  GateSdg,
	"x":    GateX,
	"y":    GateY,
	"z":    GateZ,
	"cx":   GateCX,
	"cnot": GateCX,
	"cz":   GateCZ,
}

// String returns the lowercase gate mnemonic.
func (k GateKind) String() string {
	if s, ok := gateNames[k]; ok {
		return s
	}
	return "GateKind(" + strconv.Itoa(int(k)) + ")"
}

// Arity returns 1 or 2 for known kinds and 0 otherwise.
func (k GateKind) Arity() int {
	switch k {
	case GateH, GateS, GateSdg, GateX, GateY, GateZ:
		return 1
	case GateCX, GateCZ:
		return 2
	}
	return 0
}

// Gate is one elementary operation. Q1 is only meaningful for two-qubit kinds.
type Gate struct {
	Kind GateKind
	Q0   int // target of one-qubit gates, control of CX
	Q1   int // target of CX
}

// H returns a Hadamard on q.
func H(q int) Gate { return Gate{Kind: GateH, Q0: q} }

// S returns a phase gate on q.
func S(q int) Gate { return Gate{Kind: GateS, Q0: q} }

// Sdg returns an inverse phase gate on q.
func Sdg(q int) Gate { return Gate{Kind: GateSdg, Q0: q} }

// X returns a Pauli X on q.
func X(q int) Gate { return Gate{Kind: GateX, Q0: q} }

// Y returns a Pauli Y on q.
func Y(q int) Gate { return Gate{Kind: GateY, Q0: q} }

// Z returns a Pauli Z on q.
func Z(q int) Gate { return Gate{Kind: GateZ, Q0: q} }

// CX returns a CNOT with the given control and target.
func CX(control, target int) Gate { return Gate{Kind: GateCX, Q0: control, Q1: target} }

// CZ returns a controlled-Z on a and b.
func CZ(a, b int) Gate { return Gate{Kind: GateCZ, Q0: a, Q1: b} }

// Inverse returns the gate undoing g. Every kind is self-inverse up to a
// global phase except S and Sdg, which swap.
func (g Gate) Inverse() Gate {
	switch g.Kind {
	case GateS:
		g.Kind = GateSdg
	case GateSdg:
		g.Kind = GateS
	}
	return g
}

// Validate checks the kind and qubit indices against an n-qubit register.
func (g Gate) Validate(n int) error {
	switch g.Kind.Arity() {
	case 1:
		if g.Q0 < 0 || g.Q0 >= n {
			return fmt.Errorf("gate %s: qubit %d not in [0,%d): %w", g, g.Q0, n, ErrQubitOutOfRange)
		}
	case 2:
		if g.Q0 < 0 || g.Q0 >= n || g.Q1 < 0 || g.Q1 >= n {
			return fmt.Errorf("gate %s: qubits not in [0,%d): %w", g, n, ErrQubitOutOfRange)
		}
		if g.Q0 == g.Q1 {
			return fmt.Errorf("gate %s: repeated qubit: %w", g, ErrQubitOutOfRange)
		}
	default:
		return fmt.Errorf("gate kind %d: %w", g.Kind, ErrUnknownGate)
	}
	return nil
}

// String renders "h 0" or "cx 0 1".
func (g Gate) String() string {
	if g.Kind.Arity() == 2 {
		return g.Kind.String() + " " + strconv.Itoa(g.Q0) + " " + strconv.Itoa(g.Q1)
	}
	return g.Kind.String() + " " + strconv.Itoa(g.Q0)
}

// ParseGate parses the String form of a gate. Qubit ranges are not checked;
// use Validate for that.
func ParseGate(s string) (Gate, error) {
	fields := strings.Fields(s)
	if len(fields) == 0 {
		return Gate{}, fmt.Errorf("ParseGate(%q): empty: %w", s, ErrUnknownGate)
	}
	kind, ok := gateByName[strings.ToLower(fields[0])]
	if !ok {
		return Gate{}, fmt.Errorf("ParseGate(%q): %w", s, ErrUnknownGate)
	}
	if len(fields) != 1+kind.Arity() {
		return Gate{}, fmt.Errorf("ParseGate(%q): want %d qubit(s): %w", s, kind.Arity(), ErrUnknownGate)
	}
	qs := make([]int, kind.Arity())
	for i := range qs {
		q, err := strconv.Atoi(fields[1+i])
		if err != nil {
			return Gate{}, fmt.Errorf("ParseGate(%q): %w", s, err)
		}
		qs[i] = q
	}
	g := Gate{Kind: kind, Q0: qs[0]}
	if kind.Arity() == 2 {
		g.Q1 = qs[1]
	}
	return g, nil
}
