// Package clifford is a Clifford-group algebra engine for randomized
// benchmarking (RB) of n-qubit quantum registers.
//
// It represents group elements by their stabilizer tableau (a 2n×2n
// symplectic matrix over GF(2) plus 2n sign bits) together with a gate
// circuit, and provides:
//
//	gf2/       bit-packed vectors and matrices over GF(2), symplectic form, transvections
//	clifford/  gates, circuits, tableaus, canonical keys, elements and composition
//	synth/     tableau → circuit synthesis by row/column reduction
//	table/     exhaustive group tables for n ≤ 2 and loaders for precomputed ones
//	sample/    uniform sampling from a table or directly from a random symplectic tableau
//	invert/    group inverse by table lookup or direct tableau inversion
//	rb/        the Engine: seeded sampling, inversion and RB sequences
//	cmd/cliffordrb command-line front end
//
// Composition is fixed as "apply a, then b"; every element's circuit replays
// to its tableau. All randomness flows through an explicit *rand.Rand, so
// equal seeds give equal results.
//
// Quick start:
//
//	eng := rb.New(rb.WithSeed(0))
//	el, _ := eng.Sample(2, true)        // table mode
//	inv, _ := eng.Invert(el, nil, true) // el then inv is the identity
//
// See the individual package docs for details.
package clifford
