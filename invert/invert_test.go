package invert_test

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/clifford/clifford"
	"github.com/katalvlaran/clifford/invert"
	"github.com/katalvlaran/clifford/sample"
	"github.com/katalvlaran/clifford/table"
)

func requireIdentity(t *testing.T, e, inv *clifford.Element) {
	t.Helper()
	id, err := clifford.Identity(e.N())
	require.NoError(t, err)

	for _, pair := range [][2]*clifford.Element{{e, inv}, {inv, e}} {
		p, err := clifford.Compose(pair[0], pair[1])
		require.NoError(t, err)
		require.Equal(t, id.Key(), p.Key())
		require.True(t, p.IsIdentity())

		// the concatenated circuit replays to identity as well
		replay, err := clifford.FromCircuit(e.N(), p.Circuit())
		require.NoError(t, err)
		require.True(t, replay.IsIdentity())
	}
}

func TestFromTableEveryElement(t *testing.T) {
	for n := 1; n <= 2; n++ {
		tbl, err := table.Build(n)
		require.NoError(t, err)
		step := 1
		if n == 2 {
			step = 37
		}
		for i := 0; i < tbl.Len(); i += step {
			entry, err := tbl.Entry(i)
			require.NoError(t, err)
			inv, err := invert.FromTable(entry.Element, tbl)
			require.NoError(t, err)
			requireIdentity(t, entry.Element, inv)
		}
	}
}

func TestDirectOnTheFly(t *testing.T) {
	rng := rand.New(rand.NewSource(17))
	for n := 1; n <= 10; n++ {
		for i := 0; i < 5; i++ {
			e, err := sample.OnTheFly(n, rng)
			require.NoError(t, err)
			inv, err := invert.Direct(e)
			require.NoError(t, err)
			require.NoError(t, inv.Validate())
			requireIdentity(t, e, inv)
		}
	}
}

func TestDirectMatchesTable(t *testing.T) {
	tbl, err := table.Build(1)
	require.NoError(t, err)
	for i := 0; i < tbl.Len(); i++ {
		entry, err := tbl.Entry(i)
		require.NoError(t, err)
		a, err := invert.FromTable(entry.Element, tbl)
		require.NoError(t, err)
		b, err := invert.Direct(entry.Element)
		require.NoError(t, err)
		require.Equal(t, a.Key(), b.Key())
	}
}

// TestFiveQubitsSeedSeven inverts the seed-7 five-qubit sample directly.
func TestFiveQubitsSeedSeven(t *testing.T) {
	e, err := sample.OnTheFly(5, rand.New(rand.NewSource(7)))
	require.NoError(t, err)
	inv, err := invert.Direct(e)
	require.NoError(t, err)
	requireIdentity(t, e, inv)
}

func TestFromTableErrors(t *testing.T) {
	tbl, err := table.Build(1)
	require.NoError(t, err)

	e2, err := clifford.FromCircuit(2, clifford.Circuit{clifford.CX(0, 1)})
	require.NoError(t, err)
	_, err = invert.FromTable(e2, tbl)
	require.ErrorIs(t, err, clifford.ErrDimensionMismatch)

	// a table holding only the identity lacks the inverse of H
	id, err := clifford.Identity(1)
	require.NoError(t, err)
	partial, err := table.New(1, []*clifford.Element{id})
	require.NoError(t, err)
	h, err := clifford.FromCircuit(1, clifford.Circuit{clifford.H(0), clifford.S(0)})
	require.NoError(t, err)
	_, err = invert.FromTable(h, partial)
	require.ErrorIs(t, err, clifford.ErrInternalConsistency)
	require.ErrorIs(t, err, invert.ErrInverseNotFound)

	_, err = invert.FromTable(h, nil)
	require.ErrorIs(t, err, table.ErrEmptyTable)
}
