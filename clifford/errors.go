// SPDX-License-Identifier: MIT
// Package clifford: sentinel error set.
//
// Error policy:
//   • Only package-level sentinels are exposed; callers branch with errors.Is.
//   • Implementations attach context with fmt.Errorf("Op: ...: %w", ErrX).
//   • ErrInternalConsistency marks algebra defects. It is never retried and
//     never suppressed; other packages wrap it together with a more specific
//     sentinel.

package clifford

import "errors"

var (
	// ErrDimensionMismatch is returned when two operands have different qubit counts.
	ErrDimensionMismatch = errors.New("clifford: qubit count mismatch")

	// ErrInvalidQubitCount is returned for n < 1.
	ErrInvalidQubitCount = errors.New("clifford: invalid qubit count")

	// ErrInternalConsistency signals a violated algebraic invariant
	// (e.g. wrong table size, inverse key missing, odd phase exponent).
	ErrInternalConsistency = errors.New("clifford: internal consistency error")

	// ErrNotSymplectic is returned when a tableau fails the symplectic check.
	ErrNotSymplectic = errors.New("clifford: tableau is not symplectic")

	// ErrCircuitMismatch is returned when a circuit does not reproduce the
	// tableau it is paired with.
	ErrCircuitMismatch = errors.New("clifford: circuit does not match tableau")

	// ErrUnknownGate is returned for an unrecognized gate name or kind.
	ErrUnknownGate = errors.New("clifford: unknown gate")

	// ErrQubitOutOfRange is returned when a gate addresses a qubit outside
	// [0, n) or a two-qubit gate uses the same qubit twice.
	ErrQubitOutOfRange = errors.New("clifford: qubit out of range")
)
