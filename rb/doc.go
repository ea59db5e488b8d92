// SPDX-License-Identifier: MIT
// Package: clifford/rb
//
// Package rb is the public surface of the randomized-benchmarking engine.
//
// An Engine owns one random source and a lazily filled table cache. It
// builds (or loads) group tables, samples uniformly random Clifford
// elements, inverts them, and assembles RB sequences whose final recovery
// element returns the register to identity.
//
// Modes:
//   - table mode (useTable = true) indexes a complete table; available for
//     n ≤ 2 out of the box and for larger n through WithTableProvider.
//   - on-the-fly mode (useTable = false) draws a uniform symplectic tableau
//     directly and synthesizes its circuit; any n.
//
// Determinism: two Engines created with the same seed and driven by the same
// call sequence return identical elements and circuits. The default seed is
// DefaultSeed.
package rb
