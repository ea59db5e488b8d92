// Package synth turns a Clifford tableau into a gate circuit.
//
// The decomposition is a canonical qubit-by-qubit reduction: for qubit
// i = 0..n-1 it applies H, S and CX gates until the image of X_i is ±X_i
// and the image of Z_i is ±Z_i, without disturbing qubits already reduced;
// a final layer of X and Z gates clears the signs. The reducing gates G
// satisfy "T, then G" = I, so G is a circuit for T⁻¹ and G reversed and
// inverted is a circuit for T.
//
// The output depends only on the tableau, never on how it was produced.
package synth
