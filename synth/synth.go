package synth

import (
	"fmt"

	"github.com/katalvlaran/clifford/clifford"
)

// reducer holds the working tableau and the gates applied so far.
type reducer struct {
	t     *clifford.Tableau
	n     int
	gates clifford.Circuit
}

// Reduce returns gates G such that applying t and then G is the identity.
// G is therefore a circuit for t⁻¹. t is not modified.
// Returns clifford.ErrNotSymplectic when t is not a valid tableau and
// clifford.ErrInternalConsistency if the reduction does not reach identity.
// Complexity: O(n²) gates, O(n³) work.
func Reduce(t *clifford.Tableau) (clifford.Circuit, error) {
	if !t.IsSymplectic() {
		return nil, fmt.Errorf("synth.Reduce: %w", clifford.ErrNotSymplectic)
	}
	r := &reducer{t: t.Clone(), n: t.N()}
	for q := 0; q < r.n; q++ {
		if err := r.reduceDestabilizer(q); err != nil {
			return nil, err
		}
		r.reduceStabilizer(q)
	}
	r.clearSigns()
	if !r.t.IsIdentity() {
		return nil, fmt.Errorf("synth.Reduce: n=%d residual tableau:\n%s: %w",
			r.n, r.t, clifford.ErrInternalConsistency)
	}
	return r.gates, nil
}

// Circuit returns a circuit that realizes t (first gate first).
func Circuit(t *clifford.Tableau) (clifford.Circuit, error) {
	g, err := Reduce(t)
	if err != nil {
		return nil, err
	}
	return g.Inverse(), nil
}

// Element synthesizes a circuit for t and pairs the two into an Element,
// re-checking by replay that they agree.
func Element(t *clifford.Tableau) (*clifford.Element, error) {
	c, err := Circuit(t)
	if err != nil {
		return nil, err
	}
	e, err := clifford.NewElement(t, c)
	if err != nil {
		return nil, fmt.Errorf("synth.Element: %w: %w", clifford.ErrInternalConsistency, err)
	}
	return e, nil
}

func (r *reducer) push(g clifford.Gate) {
	// gates are generated from in-range qubits only
	_ = r.t.Apply(g)
	r.gates = append(r.gates, g)
}

// reduceDestabilizer turns row q (the image of X_q) into ±X_q.
// Rows of earlier qubits are already ±X_j / ±Z_j, so row q has no support
// on qubits < q and every gate below touches only qubits ≥ q.
func (r *reducer) reduceDestabilizer(q int) error {
	row := q
	// 1) ensure x_q = 1
	if !r.t.X(row, q) {
		k := r.firstX(row, q)
		if k < 0 {
			k = r.firstZ(row, q)
			if k < 0 {
				return fmt.Errorf("synth.Reduce: row %d empty on qubits ≥ %d: %w",
					row, q, clifford.ErrInternalConsistency)
			}
			r.push(clifford.H(k))
		}
		if k != q {
			r.push(clifford.CX(k, q))
		}
	}
	// 2) clear x on the other qubits
	for k := q + 1; k < r.n; k++ {
		if r.t.X(row, k) {
			r.push(clifford.CX(q, k))
		}
	}
	// 3) clear z: S on q, then H+CX for every other qubit
	if r.t.Z(row, q) {
		r.push(clifford.S(q))
	}
	for k := q + 1; k < r.n; k++ {
		if r.t.Z(row, k) {
			r.push(clifford.H(k))
			r.push(clifford.CX(q, k))
		}
	}
	return nil
}

// reduceStabilizer turns row n+q (the image of Z_q) into ±Z_q while
// keeping row q equal to ±X_q: only gates on qubits > q, CX(k, q) and
// H·S·H on q are used, all of which fix X_q.
func (r *reducer) reduceStabilizer(q int) {
	row := r.n + q
	for k := q + 1; k < r.n; k++ {
		if r.t.X(row, k) {
			if r.t.Z(row, k) {
				r.push(clifford.S(k))
			}
			r.push(clifford.H(k))
		}
	}
	for k := q + 1; k < r.n; k++ {
		if r.t.Z(row, k) {
			r.push(clifford.CX(k, q))
		}
	}
	if r.t.X(row, q) {
		r.push(clifford.H(q))
		r.push(clifford.S(q))
		r.push(clifford.H(q))
	}
}

// clearSigns fixes -X_q with Z(q) and -Z_q with X(q).
func (r *reducer) clearSigns() {
	for q := 0; q < r.n; q++ {
		if r.t.Sign(q) {
			r.push(clifford.Z(q))
		}
		if r.t.Sign(r.n + q) {
			r.push(clifford.X(q))
		}
	}
}

func (r *reducer) firstX(row, from int) int {
	for k := from; k < r.n; k++ {
		if r.t.X(row, k) {
			return k
		}
	}
	return -1
}

func (r *reducer) firstZ(row, from int) int {
	for k := from; k < r.n; k++ {
		if r.t.Z(row, k) {
			return k
		}
	}
	return -1
}
