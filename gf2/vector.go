package gf2

import (
	"fmt"
	"strings"

	"github.com/bits-and-blooms/bitset"
)

// Vector is a fixed-length vector over GF(2).
// The zero value is not usable; construct with NewVector or VectorFromBits.
type Vector struct {
	n    int            // logical length
	bits *bitset.BitSet // backing storage, Len() == n
}

// NewVector returns the all-zero vector of length n.
// Returns ErrBadShape when n <= 0.
// Complexity: O(n/64).
func NewVector(n int) (*Vector, error) {
	if n <= 0 {
		return nil, fmt.Errorf("NewVector(%d): %w", n, ErrBadShape)
	}

	return &Vector{n: n, bits: bitset.New(uint(n))}, nil
}

// mustVector is NewVector for internal callers that already validated n.
func mustVector(n int) *Vector {
	return &Vector{n: n, bits: bitset.New(uint(n))}
}

// VectorFromBits builds a vector from a slice of 0/1 values.
// Any non-zero entry is treated as 1.
func VectorFromBits(vals []uint8) (*Vector, error) {
	v, err := NewVector(len(vals))
	if err != nil {
		return nil, err
	}
	for i, b := range vals {
		if b != 0 {
			v.bits.Set(uint(i))
		}
	}

	return v, nil
}

// Len returns the vector length.
func (v *Vector) Len() int { return v.n }

// Bit reports whether bit i is set. i must lie in [0, Len()).
func (v *Vector) Bit(i int) bool { return v.bits.Test(uint(i)) }

// Uint8 returns bit i as 0 or 1.
func (v *Vector) Uint8(i int) uint8 {
	if v.bits.Test(uint(i)) {
		return 1
	}
	return 0
}

// Set assigns bit i. i must lie in [0, Len()).
func (v *Vector) Set(i int, b bool) { v.bits.SetTo(uint(i), b) }

// Flip toggles bit i. i must lie in [0, Len()).
func (v *Vector) Flip(i int) { v.bits.Flip(uint(i)) }

// Swap exchanges bits i and j.
func (v *Vector) Swap(i, j int) {
	bi, bj := v.Bit(i), v.Bit(j)
	v.Set(i, bj)
	v.Set(j, bi)
}

// Add sets v = v + u (bitwise XOR) and returns v.
// Returns ErrDimensionMismatch when lengths differ.
// Complexity: O(n/64).
func (v *Vector) Add(u *Vector) error {
	if v.n != u.n {
		return fmt.Errorf("Vector.Add: %d vs %d: %w", v.n, u.n, ErrDimensionMismatch)
	}
	v.bits.InPlaceSymmetricDifference(u.bits)

	return nil
}

// Sum returns a fresh vector a + b.
func Sum(a, b *Vector) (*Vector, error) {
	out := a.Clone()
	if err := out.Add(b); err != nil {
		return nil, err
	}

	return out, nil
}

// Dot returns the GF(2) inner product Σ a_i·b_i mod 2.
// Returns ErrDimensionMismatch when lengths differ.
// Complexity: O(n/64) via popcount of the intersection.
func Dot(a, b *Vector) (uint8, error) {
	if a.n != b.n {
		return 0, fmt.Errorf("Dot: %d vs %d: %w", a.n, b.n, ErrDimensionMismatch)
	}

	return uint8(a.bits.IntersectionCardinality(b.bits) & 1), nil
}

// Weight returns the number of set bits.
func (v *Vector) Weight() int { return int(v.bits.Count()) }

// IsZero reports whether every bit is clear.
func (v *Vector) IsZero() bool { return v.bits.None() }

// Clone returns a deep copy.
func (v *Vector) Clone() *Vector {
	return &Vector{n: v.n, bits: v.bits.Clone()}
}

// Equal reports whether v and u have equal length and identical bits.
func (v *Vector) Equal(u *Vector) bool {
	if v == nil || u == nil {
		return v == u
	}

	return v.n == u.n && v.bits.Equal(u.bits)
}

// Reset clears every bit.
func (v *Vector) Reset() { v.bits.ClearAll() }

// String renders the vector as a string of '0'/'1' characters, index 0 first.
func (v *Vector) String() string {
	var sb strings.Builder
	sb.Grow(v.n)
	for i := 0; i < v.n; i++ {
		if v.Bit(i) {
			sb.WriteByte('1')
		} else {
			sb.WriteByte('0')
		}
	}

	return sb.String()
}
