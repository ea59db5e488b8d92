// SPDX-License-Identifier: MIT
// Package: gf2
//
// symplectic.go: the symplectic structure on GF(2)^{2n}.
//
// Layout: a vector of length 2n is (x | z) with x in bits [0,n) and z in
// bits [n,2n). The form is ⟨u,v⟩ = Σ_j u_j·v_{n+j} + u_{n+j}·v_j (mod 2),
// i.e. u·Λ·vᵀ with Λ = [[0, I], [I, 0]].
//
// Row convention: a matrix M whose rows are the images of the basis vectors
// acts on row vectors (v ↦ v·M); M is symplectic iff M·Λ·Mᵀ = Λ.

package gf2

import "fmt"

// Lambda returns the 2n×2n standard symplectic form [[0, I], [I, 0]].
func Lambda(n int) (*Matrix, error) {
	if n <= 0 {
		return nil, fmt.Errorf("Lambda(%d): %w", n, ErrBadShape)
	}
	m := newMatrix(2*n, 2*n)
	for i := 0; i < n; i++ {
		m.rows[i].Set(n+i, true)
		m.rows[n+i].Set(i, true)
	}

	return m, nil
}

// SymplecticProduct returns ⟨u,v⟩.
// Returns ErrDimensionMismatch for different lengths and ErrOddLength for odd ones.
func SymplecticProduct(u, v *Vector) (uint8, error) {
	if u.n != v.n {
		return 0, fmt.Errorf("SymplecticProduct: %d vs %d: %w", u.n, v.n, ErrDimensionMismatch)
	}
	if u.n%2 != 0 {
		return 0, fmt.Errorf("SymplecticProduct: length %d: %w", u.n, ErrOddLength)
	}

	return symplecticProduct(u, v), nil
}

// symplecticProduct assumes equal even lengths.
func symplecticProduct(u, v *Vector) uint8 {
	n := u.n / 2
	var acc uint8
	for j := 0; j < n; j++ {
		if u.Bit(j) && v.Bit(n+j) {
			acc ^= 1
		}
		if u.Bit(n+j) && v.Bit(j) {
			acc ^= 1
		}
	}

	return acc
}

// SwapHalves returns Λ·v, the vector with its x and z halves exchanged.
func SwapHalves(v *Vector) (*Vector, error) {
	if v.n%2 != 0 {
		return nil, fmt.Errorf("SwapHalves: length %d: %w", v.n, ErrOddLength)
	}

	return swapHalves(v), nil
}

func swapHalves(v *Vector) *Vector {
	n := v.n / 2
	out := mustVector(v.n)
	for j := 0; j < n; j++ {
		out.Set(j, v.Bit(n+j))
		out.Set(n+j, v.Bit(j))
	}

	return out
}

// IsSymplectic reports whether M·Λ·Mᵀ = Λ, checked row pair by row pair:
// ⟨rowᵢ, rowⱼ⟩ must be 1 exactly when |i−j| = n.
// Complexity: O(n³).
func IsSymplectic(m *Matrix) bool {
	if m.r != m.c || m.r%2 != 0 {
		return false
	}
	n := m.r / 2
	var i, j int
	var want uint8
	for i = 0; i < m.r; i++ {
		for j = i; j < m.r; j++ {
			want = 0
			if j-i == n {
				want = 1
			}
			if symplecticProduct(m.rows[i], m.rows[j]) != want {
				return false
			}
		}
	}

	return true
}

// SymplecticInverse returns M⁻¹ = Λ·Mᵀ·Λ for a symplectic M.
// It does not verify that M is symplectic; callers that need the guarantee
// check IsSymplectic first (or use Inverse, which works for any invertible M).
// Complexity: O(n²).
func SymplecticInverse(m *Matrix) (*Matrix, error) {
	if m.r != m.c {
		return nil, fmt.Errorf("SymplecticInverse: non-square %dx%d: %w", m.r, m.c, ErrDimensionMismatch)
	}
	if m.r%2 != 0 {
		return nil, fmt.Errorf("SymplecticInverse: size %d: %w", m.r, ErrOddLength)
	}
	n := m.r / 2
	swap := func(k int) int {
		if k < n {
			return k + n
		}
		return k - n
	}
	out := newMatrix(m.r, m.c)
	// (Λ·Mᵀ·Λ)[i][j] = Mᵀ[σ(i)][σ(j)] = M[σ(j)][σ(i)]
	for i := 0; i < m.r; i++ {
		for j := 0; j < m.c; j++ {
			if m.rows[swap(j)].Bit(swap(i)) {
				out.rows[i].Set(j, true)
			}
		}
	}

	return out, nil
}

// Transvect applies the symplectic transvection Z_h to u in place:
// u ← u + ⟨u,h⟩·h.
func Transvect(u, h *Vector) error {
	if u.n != h.n {
		return fmt.Errorf("Transvect: %d vs %d: %w", u.n, h.n, ErrDimensionMismatch)
	}
	if u.n%2 != 0 {
		return fmt.Errorf("Transvect: length %d: %w", u.n, ErrOddLength)
	}
	if symplecticProduct(u, h) == 1 {
		u.bits.InPlaceSymmetricDifference(h.bits)
	}

	return nil
}

// FindTransvections returns at most two vectors h₁, h₂ such that applying
// Z_{h₁} and then Z_{h₂} maps x to y. Both x and y must be non-zero.
//
//	x == y          → no transvection
//	⟨x,y⟩ = 1       → h = x + y
//	otherwise       → pick z with ⟨x,z⟩ = ⟨z,y⟩ = 1; h₁ = x + z, h₂ = z + y
//
// Such a z always exists: Λx and Λy are distinct non-zero functionals.
func FindTransvections(x, y *Vector) ([]*Vector, error) {
	if x.n != y.n {
		return nil, fmt.Errorf("FindTransvections: %d vs %d: %w", x.n, y.n, ErrDimensionMismatch)
	}
	if x.n%2 != 0 {
		return nil, fmt.Errorf("FindTransvections: length %d: %w", x.n, ErrOddLength)
	}
	if x.IsZero() || y.IsZero() {
		return nil, fmt.Errorf("FindTransvections: zero vector: %w", ErrSingular)
	}
	if x.Equal(y) {
		return nil, nil
	}
	if symplecticProduct(x, y) == 1 {
		h := x.Clone()
		h.bits.InPlaceSymmetricDifference(y.bits)
		return []*Vector{h}, nil
	}

	z := bridge(x, y)
	h1 := x.Clone()
	h1.bits.InPlaceSymmetricDifference(z.bits)
	h2 := z
	h2.bits.InPlaceSymmetricDifference(y.bits)

	return []*Vector{h1, h2}, nil
}

// bridge returns z with ⟨x,z⟩ = ⟨y,z⟩ = 1 for distinct non-zero x, y.
// With a = Λx and b = Λy: a shared 1 at index j gives z = e_j; otherwise
// z = e_j + e_k where a_j = 1, b_j = 0 and a_k = 0, b_k = 1.
func bridge(x, y *Vector) *Vector {
	a, b := swapHalves(x), swapHalves(y)
	z := mustVector(x.n)
	onlyA, onlyB := -1, -1
	for j := 0; j < x.n; j++ {
		switch {
		case a.Bit(j) && b.Bit(j):
			z.Set(j, true)
			return z
		case a.Bit(j) && onlyA < 0:
			onlyA = j
		case b.Bit(j) && onlyB < 0:
			onlyB = j
		}
	}
	z.Set(onlyA, true)
	z.Set(onlyB, true)

	return z
}
