// Package invert returns the group inverse of a Clifford element, either by
// looking the inverse tableau up in a precomputed table or by synthesizing
// a fresh circuit for it.
package invert

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/clifford/clifford"
	"github.com/katalvlaran/clifford/synth"
	"github.com/katalvlaran/clifford/table"
)

// ErrInverseNotFound is returned (together with
// clifford.ErrInternalConsistency) when a table lacks an element's inverse.
var ErrInverseNotFound = errors.New("invert: inverse key not in table")

// FromTable returns the table's representative of e⁻¹.
// Returns clifford.ErrDimensionMismatch when tbl and e act on different
// qubit counts. A complete table always holds the inverse, so a miss is an
// internal consistency error.
func FromTable(e *clifford.Element, tbl *table.Table) (*clifford.Element, error) {
	if tbl == nil {
		return nil, fmt.Errorf("invert.FromTable: %w", table.ErrEmptyTable)
	}
	if e.N() != tbl.N() {
		return nil, fmt.Errorf("invert.FromTable: element n=%d, table n=%d: %w",
			e.N(), tbl.N(), clifford.ErrDimensionMismatch)
	}
	inv, err := clifford.InverseTableau(e.Tableau())
	if err != nil {
		return nil, fmt.Errorf("invert.FromTable: %w", err)
	}
	k := inv.Key()
	found, ok := tbl.Lookup(k)
	if !ok {
		return nil, fmt.Errorf("invert.FromTable: n=%d key %s: %w: %w",
			e.N(), k, clifford.ErrInternalConsistency, ErrInverseNotFound)
	}
	return found, nil
}

// Direct computes e⁻¹ from the tableau alone and synthesizes its circuit.
// Works for any n.
func Direct(e *clifford.Element) (*clifford.Element, error) {
	inv, err := clifford.InverseTableau(e.Tableau())
	if err != nil {
		return nil, fmt.Errorf("invert.Direct: %w", err)
	}
	out, err := synth.Element(inv)
	if err != nil {
		return nil, fmt.Errorf("invert.Direct(n=%d): %w", e.N(), err)
	}
	return out, nil
}
