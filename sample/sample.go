package sample

import (
	"errors"
	"fmt"
	"math/rand"

	"github.com/katalvlaran/clifford/clifford"
	"github.com/katalvlaran/clifford/gf2"
	"github.com/katalvlaran/clifford/synth"
	"github.com/katalvlaran/clifford/table"
)

// ErrNilRand is returned when no random source is supplied.
var ErrNilRand = errors.New("sample: random source is nil")

// FromTable returns a uniformly chosen entry of tbl.
func FromTable(tbl *table.Table, rng *rand.Rand) (*clifford.Element, error) {
	if rng == nil {
		return nil, fmt.Errorf("sample.FromTable: %w", ErrNilRand)
	}
	if tbl == nil || tbl.Len() == 0 {
		return nil, fmt.Errorf("sample.FromTable: %w", table.ErrEmptyTable)
	}
	entry, err := tbl.Entry(rng.Intn(tbl.Len()))
	if err != nil {
		return nil, fmt.Errorf("sample.FromTable: %w", err)
	}
	return entry.Element, nil
}

// OnTheFly returns a uniformly random n-qubit Clifford element with a
// synthesized circuit.
func OnTheFly(n int, rng *rand.Rand) (*clifford.Element, error) {
	t, err := Tableau(n, rng)
	if err != nil {
		return nil, err
	}
	e, err := synth.Element(t)
	if err != nil {
		return nil, fmt.Errorf("sample.OnTheFly(n=%d): %w", n, err)
	}
	return e, nil
}

// Tableau returns a uniformly random tableau: a uniform symplectic matrix
// and an independent uniform 2n-bit phase vector.
func Tableau(n int, rng *rand.Rand) (*clifford.Tableau, error) {
	m, err := Symplectic(n, rng)
	if err != nil {
		return nil, err
	}
	phase, err := randomVector(2*n, rng)
	if err != nil {
		return nil, err
	}
	t, err := clifford.TableauFrom(m, phase)
	if err != nil {
		return nil, fmt.Errorf("sample.Tableau(n=%d): %w: %w", n, clifford.ErrInternalConsistency, err)
	}
	return t, nil
}

// Symplectic returns a uniformly random 2n×2n symplectic matrix in the
// row convention of clifford.Tableau.
func Symplectic(n int, rng *rand.Rand) (*gf2.Matrix, error) {
	if n < 1 {
		return nil, fmt.Errorf("sample.Symplectic(%d): %w", n, clifford.ErrInvalidQubitCount)
	}
	if rng == nil {
		return nil, fmt.Errorf("sample.Symplectic: %w", ErrNilRand)
	}
	return symplectic(n, rng)
}

// symplectic draws the pair for qubit 0, recurses for the rest, then pushes
// every row of the block matrix through the transvections.
func symplectic(n int, rng *rand.Rand) (*gf2.Matrix, error) {
	size := 2 * n

	// 1) images of X_0 and Z_0
	v, err := randomNonZero(size, rng)
	if err != nil {
		return nil, err
	}
	w, err := randomPartner(v, rng)
	if err != nil {
		return nil, err
	}

	// 2) block matrix: identity on qubit 0, recursive draw elsewhere
	block, err := gf2.Identity(size)
	if err != nil {
		return nil, err
	}
	if n > 1 {
		sub, err := symplectic(n-1, rng)
		if err != nil {
			return nil, err
		}
		embed(block, sub, n)
	}

	// 3) transvections carrying (X_0, Z_0) to (v, w)
	hs, err := pairTransvections(n, v, w)
	if err != nil {
		return nil, err
	}
	for r := 0; r < size; r++ {
		row := block.Row(r)
		for _, h := range hs {
			if err = gf2.Transvect(row, h); err != nil {
				return nil, err
			}
		}
	}
	return block, nil
}

// embed writes the (n-1)-qubit matrix sub into block on qubits 1..n-1:
// sub coordinate j (x) maps to j+1 and n-1+j (z) maps to n+j+1.
func embed(block, sub *gf2.Matrix, n int) {
	m := n - 1
	place := func(k int) int {
		if k < m {
			return k + 1
		}
		return k - m + n + 1
	}
	for r := 0; r < 2*m; r++ {
		dst := block.Row(place(r))
		dst.Reset()
		src := sub.Row(r)
		for c := 0; c < 2*m; c++ {
			if src.Bit(c) {
				dst.Set(place(c), true)
			}
		}
	}
}

// pairTransvections returns transvections that, applied in order, map
// e_0 → v and e_n → w, given ⟨v,w⟩ = 1. The later ones fix v.
func pairTransvections(n int, v, w *gf2.Vector) ([]*gf2.Vector, error) {
	size := 2 * n
	e0, _ := gf2.NewVector(size)
	e0.Set(0, true)
	f0, _ := gf2.NewVector(size)
	f0.Set(n, true)

	hs, err := gf2.FindTransvections(e0, v)
	if err != nil {
		return nil, err
	}
	for _, h := range hs {
		if err = gf2.Transvect(f0, h); err != nil {
			return nil, err
		}
	}
	if f0.Equal(w) {
		return hs, nil
	}

	// f0 and w both pair to 1 with v; pick transvections orthogonal to v
	p, err := gf2.SymplecticProduct(f0, w)
	if err != nil {
		return nil, err
	}
	h, _ := gf2.Sum(f0, w)
	if p == 1 {
		return append(hs, h), nil
	}
	// z = v + w is a bridge: ⟨f0,z⟩ = ⟨z,w⟩ = ⟨v,z⟩ = 1
	if err = h.Add(v); err != nil {
		return nil, err
	}
	return append(hs, h, v.Clone()), nil
}

// randomVector draws size independent fair bits.
func randomVector(size int, rng *rand.Rand) (*gf2.Vector, error) {
	v, err := gf2.NewVector(size)
	if err != nil {
		return nil, err
	}
	for i := 0; i < size; i++ {
		if rng.Intn(2) == 1 {
			v.Set(i, true)
		}
	}
	return v, nil
}

// randomNonZero draws uniformly from the non-zero vectors by rejection.
func randomNonZero(size int, rng *rand.Rand) (*gf2.Vector, error) {
	for {
		v, err := randomVector(size, rng)
		if err != nil {
			return nil, err
		}
		if !v.IsZero() {
			return v, nil
		}
	}
}

// randomPartner draws uniformly from {w : ⟨v,w⟩ = 1} by rejection;
// exactly half of all vectors qualify.
func randomPartner(v *gf2.Vector, rng *rand.Rand) (*gf2.Vector, error) {
	for {
		w, err := randomVector(v.Len(), rng)
		if err != nil {
			return nil, err
		}
		p, err := gf2.SymplecticProduct(v, w)
		if err != nil {
			return nil, err
		}
		if p == 1 {
			return w, nil
		}
	}
}
