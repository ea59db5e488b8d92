// Package gf2 provides linear algebra over the two-element field GF(2).
//
// The package offers:
//
//   - Vector: a fixed-length bit vector backed by bits-and-blooms/bitset,
//     with XOR addition and parity dot products.
//   - Matrix: a row-major binary matrix with multiplication, transpose
//     and Gauss–Jordan inversion.
//   - Symplectic helpers: the standard form Λ = [[0, I], [I, 0]], the
//     symplectic inner product, transvections and the closed-form
//     symplectic inverse Λ·Mᵀ·Λ.
//
// Vectors of length 2n use the "x-first" layout: bits [0, n) are the
// x-part and bits [n, 2n) the z-part of an n-qubit Pauli operator.
//
// All exported functions validate shapes and return sentinel errors
// (ErrBadShape, ErrDimensionMismatch, ErrSingular, ErrOddLength); they
// never panic on user input.
package gf2
