package clifford

import (
	"fmt"
	"strings"

	"github.com/katalvlaran/clifford/gf2"
)

// Tableau is the mutable symplectic form of a Clifford element: 2n rows of
// 2n bits (x-part then z-part) and one sign bit per row.
// Row i < n is the image of X_i, row n+i the image of Z_i.
type Tableau struct {
	n     int
	rows  *gf2.Matrix // 2n × 2n
	phase *gf2.Vector // 2n
}

// NewTableau returns the identity tableau on n qubits.
func NewTableau(n int) (*Tableau, error) {
	if n < 1 {
		return nil, fmt.Errorf("NewTableau(%d): %w", n, ErrInvalidQubitCount)
	}
	rows, err := gf2.Identity(2 * n)
	if err != nil {
		return nil, fmt.Errorf("NewTableau(%d): %w", n, err)
	}
	phase, err := gf2.NewVector(2 * n)
	if err != nil {
		return nil, fmt.Errorf("NewTableau(%d): %w", n, err)
	}
	return &Tableau{n: n, rows: rows, phase: phase}, nil
}

// TableauFrom builds a tableau from a 2n×2n matrix and a 2n-bit phase vector.
// The inputs are copied. The matrix must be symplectic.
func TableauFrom(m *gf2.Matrix, phase *gf2.Vector) (*Tableau, error) {
	if m.Rows() != m.Cols() || m.Rows()%2 != 0 || m.Rows() == 0 {
		return nil, fmt.Errorf("TableauFrom: shape %dx%d: %w", m.Rows(), m.Cols(), ErrInvalidQubitCount)
	}
	if phase.Len() != m.Rows() {
		return nil, fmt.Errorf("TableauFrom: phase length %d, want %d: %w", phase.Len(), m.Rows(), ErrDimensionMismatch)
	}
	if !gf2.IsSymplectic(m) {
		return nil, fmt.Errorf("TableauFrom: %w", ErrNotSymplectic)
	}
	return &Tableau{n: m.Rows() / 2, rows: m.Clone(), phase: phase.Clone()}, nil
}

// N returns the qubit count.
func (t *Tableau) N() int { return t.n }

// X reports the x-bit of row r on qubit q.
func (t *Tableau) X(r, q int) bool { return t.rows.Row(r).Bit(q) }

// Z reports the z-bit of row r on qubit q.
func (t *Tableau) Z(r, q int) bool { return t.rows.Row(r).Bit(t.n + q) }

// Sign reports the phase bit of row r (true means a minus sign).
func (t *Tableau) Sign(r int) bool { return t.phase.Bit(r) }

// Row returns a copy of row r as a 2n-bit vector.
func (t *Tableau) Row(r int) *gf2.Vector { return t.rows.Row(r).Clone() }

// Matrix returns a copy of the symplectic matrix.
func (t *Tableau) Matrix() *gf2.Matrix { return t.rows.Clone() }

// Phases returns a copy of the phase vector.
func (t *Tableau) Phases() *gf2.Vector { return t.phase.Clone() }

// Clone returns a deep copy.
func (t *Tableau) Clone() *Tableau {
	return &Tableau{n: t.n, rows: t.rows.Clone(), phase: t.phase.Clone()}
}

// Equal reports identical qubit count, matrix and phases.
func (t *Tableau) Equal(o *Tableau) bool {
	return t.n == o.n && t.rows.Equal(o.rows) && t.phase.Equal(o.phase)
}

// IsIdentity reports whether t is the identity element (identity matrix, zero phases).
func (t *Tableau) IsIdentity() bool {
	return t.rows.IsIdentity() && t.phase.IsZero()
}

// IsSymplectic reports whether the matrix preserves the symplectic form.
func (t *Tableau) IsSymplectic() bool { return gf2.IsSymplectic(t.rows) }

// Apply conjugates every row by g, i.e. appends g to the realized circuit.
func (t *Tableau) Apply(g Gate) error {
	if err := g.Validate(t.n); err != nil {
		return fmt.Errorf("Tableau.Apply: %w", err)
	}
	t.apply(g)
	return nil
}

// ApplyCircuit applies every gate of c in order.
func (t *Tableau) ApplyCircuit(c Circuit) error {
	if err := c.Validate(t.n); err != nil {
		return fmt.Errorf("Tableau.ApplyCircuit: %w", err)
	}
	for _, g := range c {
		t.apply(g)
	}
	return nil
}

// apply holds the per-row conjugation rules; g is already validated.
//
//	H:   r ^= x·z; swap(x, z)
//	S:   r ^= x·z; z ^= x
//	Sdg: z ^= x;   r ^= x·z
//	X:   r ^= z
//	Z:   r ^= x
//	Y:   r ^= x ^ z
//	CX:  r ^= x_c·z_t·(x_t ^ z_c ^ 1); x_t ^= x_c; z_c ^= z_t
func (t *Tableau) apply(g Gate) {
	if g.Kind == GateCZ {
		t.apply(H(g.Q1))
		t.apply(CX(g.Q0, g.Q1))
		t.apply(H(g.Q1))
		return
	}
	n := t.n
	a, b := g.Q0, g.Q1
	for r := 0; r < 2*n; r++ {
		row := t.rows.Row(r)
		xa, za := row.Bit(a), row.Bit(n+a)
		switch g.Kind {
		case GateH:
			if xa && za {
				t.phase.Flip(r)
			}
			row.Set(a, za)
			row.Set(n+a, xa)
		case GateS:
			if xa && za {
				t.phase.Flip(r)
			}
			row.Set(n+a, za != xa)
		case GateSdg:
			za = za != xa
			row.Set(n+a, za)
			if xa && za {
				t.phase.Flip(r)
			}
		case GateX:
			if za {
				t.phase.Flip(r)
			}
		case GateZ:
			if xa {
				t.phase.Flip(r)
			}
		case GateY:
			if xa != za {
				t.phase.Flip(r)
			}
		case GateCX:
			xb, zb := row.Bit(b), row.Bit(n+b)
			if xa && zb && (xb == za) {
				t.phase.Flip(r)
			}
			row.Set(b, xb != xa)
			row.Set(n+a, za != zb)
		}
	}
}

// PauliString renders row r as a signed Pauli string, qubit 0 first, e.g. "-XIZ".
func (t *Tableau) PauliString(r int) string {
	var sb strings.Builder
	sb.Grow(t.n + 1)
	if t.Sign(r) {
		sb.WriteByte('-')
	} else {
		sb.WriteByte('+')
	}
	for q := 0; q < t.n; q++ {
		sb.WriteByte(pauliLetter(t.X(r, q), t.Z(r, q)))
	}
	return sb.String()
}

func pauliLetter(x, z bool) byte {
	switch {
	case x && z:
		return 'Y'
	case x:
		return 'X'
	case z:
		return 'Z'
	}
	return 'I'
}

// String lists the image of every generator, one per line.
func (t *Tableau) String() string {
	var sb strings.Builder
	for r := 0; r < 2*t.n; r++ {
		if r < t.n {
			fmt.Fprintf(&sb, "X%d -> %s\n", r, t.PauliString(r))
		} else {
			fmt.Fprintf(&sb, "Z%d -> %s\n", r-t.n, t.PauliString(r))
		}
	}
	return sb.String()
}
