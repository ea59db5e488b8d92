package table

import "errors"

var (
	// ErrMissingPrecomputedTable is returned when a table for n ≥ 3 is
	// requested but no precomputed source is available.
	ErrMissingPrecomputedTable = errors.New("table: missing precomputed table")

	// ErrTableSizeMismatch is returned (together with
	// clifford.ErrInternalConsistency) when closure does not reach the group order.
	ErrTableSizeMismatch = errors.New("table: size does not match group order")

	// ErrDuplicateKey is returned when two table entries share a canonical key.
	ErrDuplicateKey = errors.New("table: duplicate canonical key")

	// ErrEmptyTable is returned when an operation needs at least one entry.
	ErrEmptyTable = errors.New("table: empty table")

	// ErrIndexOutOfRange is returned by Entry for an index outside [0, Len()).
	ErrIndexOutOfRange = errors.New("table: index out of range")

	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("table: invalid option supplied")
)
