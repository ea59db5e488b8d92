// Package clifford implements the n-qubit Clifford group element used by the
// randomized-benchmarking engine.
//
// An Element carries two equivalent representations that are kept consistent
// at all times:
//
//   - a symplectic tableau: a 2n×2n binary matrix whose row i (i < n) is the
//     image of X_i and whose row n+i is the image of Z_i under conjugation
//     P ↦ U·P·U†, plus a 2n-bit phase vector holding the sign of every row;
//   - a circuit: the gate sequence (H, S, Sdg, X, Y, Z, CX, CZ) realizing U,
//     first gate first.
//
// Composition convention: Compose(a, b) is "apply a, then b". Appending a
// gate to a circuit is therefore Compose(e, gate) and updates every tableau
// row by conjugation with that gate.
//
// Elements are immutable; every operation returns a new Element. Key returns
// the canonical bit-packed encoding of tableau and phases, independent of the
// circuit, suitable as a map key.
//
// Tableau is the mutable working form used by synthesis and table building.
package clifford
