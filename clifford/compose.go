package clifford

import (
	"fmt"

	"github.com/katalvlaran/clifford/gf2"
)

// Compose returns the element "apply a, then b". Each row of a is pushed
// through b's tableau with exact phase tracking; the circuit is a's gates
// followed by b's.
// Returns ErrDimensionMismatch when a and b act on different qubit counts.
// Complexity: O(n³).
func Compose(a, b *Element) (*Element, error) {
	if a.N() != b.N() {
		return nil, fmt.Errorf("Compose: n=%d vs n=%d: %w", a.N(), b.N(), ErrDimensionMismatch)
	}
	t, err := composeTableau(a.tab, b.tab)
	if err != nil {
		return nil, fmt.Errorf("Compose: %w", err)
	}
	c := make(Circuit, 0, len(a.circuit)+len(b.circuit))
	c = append(c, a.circuit...)
	c = append(c, b.circuit...)
	return &Element{tab: t, circuit: c, key: t.Key()}, nil
}

// ComposeTableau is Compose on bare tableaus.
func ComposeTableau(a, b *Tableau) (*Tableau, error) {
	if a.n != b.n {
		return nil, fmt.Errorf("ComposeTableau: n=%d vs n=%d: %w", a.n, b.n, ErrDimensionMismatch)
	}
	return composeTableau(a, b)
}

func composeTableau(a, b *Tableau) (*Tableau, error) {
	size := 2 * a.n
	out := a.Clone()
	for r := 0; r < size; r++ {
		img, sign, err := b.conjugate(a.rows.Row(r), a.phase.Bit(r))
		if err != nil {
			return nil, err
		}
		if err = out.rows.SetRow(r, img); err != nil {
			return nil, err
		}
		out.phase.Set(r, sign)
	}
	return out, nil
}

// InverseTableau returns the tableau of e⁻¹. The matrix is Λ·Mᵀ·Λ; the sign
// of row k is the sign e assigns to σ(rowₖ(M⁻¹)), which makes e(e⁻¹(P)) = P
// for every generator P.
// Complexity: O(n³).
func InverseTableau(t *Tableau) (*Tableau, error) {
	inv, err := gf2.SymplecticInverse(t.rows)
	if err != nil {
		return nil, fmt.Errorf("InverseTableau: %w", err)
	}
	size := 2 * t.n
	phase, err := gf2.NewVector(size)
	if err != nil {
		return nil, fmt.Errorf("InverseTableau: %w", err)
	}
	for r := 0; r < size; r++ {
		img, sign, err := t.conjugate(inv.Row(r), false)
		if err != nil {
			return nil, fmt.Errorf("InverseTableau: %w", err)
		}
		if !isBasis(img, r) {
			return nil, fmt.Errorf("InverseTableau: row %d does not map back to its generator: %w",
				r, ErrNotSymplectic)
		}
		phase.Set(r, sign)
	}
	return &Tableau{n: t.n, rows: inv, phase: phase}, nil
}

// isBasis reports whether v is the r-th standard basis vector.
func isBasis(v *gf2.Vector, r int) bool {
	return v.Weight() == 1 && v.Bit(r)
}
