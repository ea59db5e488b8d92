package clifford

import (
	"fmt"

	"github.com/katalvlaran/clifford/gf2"
)

// productExponent returns g such that σ(x1,z1)·σ(x2,z2) = i^g · σ(x1^x2, z1^z2)
// for single-qubit Paulis σ(0,0)=I, σ(1,0)=X, σ(0,1)=Z, σ(1,1)=Y.
func productExponent(x1, z1, x2, z2 bool) int {
	switch {
	case x1 && z1: // Y
		return b2i(z2) - b2i(x2)
	case x1: // X
		return b2i(z2) * (2*b2i(x2) - 1)
	case z1: // Z
		return b2i(x2) * (1 - 2*b2i(z2))
	}
	return 0
}

func b2i(b bool) int {
	if b {
		return 1
	}
	return 0
}

// conjugate returns t's image of the signed Pauli (-1)^sign · σ(v), where v is
// a 2n-bit (x | z) vector. The image is accumulated as i^e · σ(acc):
//
//	e   starts at 2·sign + Σ_j x_j·z_j   (σ(1,1) = i·X·Z)
//	acc is multiplied on the right by row j for every x_j, then row n+j for every z_j
//
// A Hermitian result has even e; the returned sign is e/2 mod 2.
func (t *Tableau) conjugate(v *gf2.Vector, sign bool) (*gf2.Vector, bool, error) {
	n := t.n
	acc := v.Clone()
	acc.Reset()
	e := 2 * b2i(sign)
	for j := 0; j < n; j++ {
		if v.Bit(j) && v.Bit(n+j) {
			e++
		}
	}
	mul := func(r int) {
		row := t.rows.Row(r)
		e += 2 * b2i(t.phase.Bit(r))
		for q := 0; q < n; q++ {
			e += productExponent(acc.Bit(q), acc.Bit(n+q), row.Bit(q), row.Bit(n+q))
		}
		_ = acc.Add(row)
	}
	for j := 0; j < n; j++ {
		if v.Bit(j) {
			mul(j)
		}
		if v.Bit(n + j) {
			mul(n + j)
		}
	}
	e = ((e % 4) + 4) % 4
	if e%2 != 0 {
		return nil, false, fmt.Errorf("conjugate: odd phase exponent %d: %w", e, ErrInternalConsistency)
	}
	return acc, e == 2, nil
}
