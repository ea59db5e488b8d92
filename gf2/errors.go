// SPDX-License-Identifier: MIT
// Package gf2: sentinel error set.
// Algorithms return these sentinels (optionally wrapped with %w and method
// context); tests match them with errors.Is.

package gf2

import "errors"

var (
	// ErrBadShape is returned when a requested length or shape is not positive.
	ErrBadShape = errors.New("gf2: invalid shape")

	// ErrDimensionMismatch indicates incompatible operand sizes,
	// e.g. Mul where a.Cols() != b.Rows(), or Dot on vectors of different length.
	ErrDimensionMismatch = errors.New("gf2: dimension mismatch")

	// ErrOutOfRange indicates that a bit, row or column index is outside bounds.
	ErrOutOfRange = errors.New("gf2: index out of range")

	// ErrSingular is returned when Gauss–Jordan elimination finds no pivot.
	ErrSingular = errors.New("gf2: singular matrix")

	// ErrOddLength signals that a symplectic operation received a vector or
	// matrix whose size is not even (2n).
	ErrOddLength = errors.New("gf2: symplectic size must be even")
)
