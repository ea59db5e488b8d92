// Package sample draws uniformly random Clifford group elements.
//
// Two modes share one contract: the result is uniform over the n-qubit
// Clifford group (modulo global phase) and fully determined by the caller's
// *rand.Rand.
//
//   - FromTable indexes a complete table uniformly.
//   - OnTheFly builds a uniform symplectic matrix pair by pair with
//     transvections, draws 2n independent sign bits, and synthesizes a
//     circuit for the resulting tableau. No enumeration, any n.
//
// The uniform symplectic matrix is built recursively: a uniform non-zero v
// and a uniform w with ⟨v,w⟩ = 1 become the images of X_0 and Z_0; a fixed
// product T of at most four transvections carries (X_0, Z_0) to (v, w); a
// uniform symplectic S on the remaining qubits (which fixes X_0, Z_0) is
// drawn recursively, and M = T∘S. Every symplectic map with those two
// images factors uniquely this way, so M is uniform.
package sample
