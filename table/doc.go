// Package table enumerates small Clifford groups and serves them as lookup
// tables.
//
// Build computes the full n-qubit Clifford group for n ∈ {1, 2} by
// breadth-first closure over the generating set (H and S on every qubit,
// CX on every ordered pair), starting from the identity:
//
//	frontier ← {identity}
//	repeat: for every frontier element e and generator g, e' = "e, then g";
//	        insert e' if its canonical key is new; new keys form the next frontier
//
// Successors of one level are computed in parallel (errgroup) and merged in
// frontier/generator order, so the table order and every stored circuit are
// deterministic regardless of parallelism. The finished table must contain
// exactly GroupOrder(n) elements (24 for n=1, 11520 for n=2); anything else
// is an internal consistency error.
//
// Tables for n ≥ 3 are never built here. They come from a Provider; the
// DirProvider reads the externally precomputed files qubits_<n>_cnots_0.dat
// (snappy-compressed, one circuit per line).
//
// A Table is immutable once returned and safe for concurrent readers.
package table
