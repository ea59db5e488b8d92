package clifford_test

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/clifford/clifford"
)

// randomCircuit draws length gates from the full gate alphabet.
func randomCircuit(rng *rand.Rand, n, length int) clifford.Circuit {
	one := []func(int) clifford.Gate{clifford.H, clifford.S, clifford.Sdg, clifford.X, clifford.Y, clifford.Z}
	c := make(clifford.Circuit, 0, length)
	for len(c) < length {
		if n > 1 && rng.Intn(3) == 0 {
			a := rng.Intn(n)
			b := (a + 1 + rng.Intn(n-1)) % n
			if rng.Intn(2) == 0 {
				c = append(c, clifford.CX(a, b))
			} else {
				c = append(c, clifford.CZ(a, b))
			}
			continue
		}
		c = append(c, one[rng.Intn(len(one))](rng.Intn(n)))
	}
	return c
}

func mustCircuit(t *testing.T, n int, c clifford.Circuit) *clifford.Element {
	t.Helper()
	e, err := clifford.FromCircuit(n, c)
	require.NoError(t, err)
	return e
}

func TestIdentity(t *testing.T) {
	for n := 1; n <= 5; n++ {
		e, err := clifford.Identity(n)
		require.NoError(t, err)
		require.True(t, e.IsIdentity())
		require.Equal(t, n, e.Key().Qubits())
		require.Empty(t, e.Circuit())
	}
	_, err := clifford.Identity(0)
	require.ErrorIs(t, err, clifford.ErrInvalidQubitCount)
}

func TestGateImages(t *testing.T) {
	cases := []struct {
		name string
		c    clifford.Circuit
		want []string // images of X0, Z0
	}{
		{"H", clifford.Circuit{clifford.H(0)}, []string{"+Z", "+X"}},
		{"S", clifford.Circuit{clifford.S(0)}, []string{"+Y", "+Z"}},
		{"Sdg", clifford.Circuit{clifford.Sdg(0)}, []string{"-Y", "+Z"}},
		{"X", clifford.Circuit{clifford.X(0)}, []string{"+X", "-Z"}},
		{"Y", clifford.Circuit{clifford.Y(0)}, []string{"-X", "-Z"}},
		{"Z", clifford.Circuit{clifford.Z(0)}, []string{"-X", "+Z"}},
		{"HS", clifford.Circuit{clifford.H(0), clifford.S(0)}, []string{"+Z", "+Y"}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			tab := mustCircuit(t, 1, tc.c).Tableau()
			require.Equal(t, tc.want[0], tab.PauliString(0))
			require.Equal(t, tc.want[1], tab.PauliString(1))
		})
	}
}

func TestCXImages(t *testing.T) {
	tab := mustCircuit(t, 2, clifford.Circuit{clifford.CX(0, 1)}).Tableau()
	require.Equal(t, "+XX", tab.PauliString(0)) // X0
	require.Equal(t, "+IX", tab.PauliString(1)) // X1
	require.Equal(t, "+ZI", tab.PauliString(2)) // Z0
	require.Equal(t, "+ZZ", tab.PauliString(3)) // Z1
}

func TestGateIdentities(t *testing.T) {
	same := func(n int, a, b clifford.Circuit) {
		t.Helper()
		require.Equal(t, mustCircuit(t, n, a).Key(), mustCircuit(t, n, b).Key(), "%s vs %s", a, b)
	}
	h, s := clifford.H(0), clifford.S(0)
	same(1, clifford.Circuit{s, s}, clifford.Circuit{clifford.Z(0)})
	same(1, clifford.Circuit{s, s, s, s}, nil)
	same(1, clifford.Circuit{h, s, h, s, h, s}, nil) // (HS)³ = e^{iπ/4}·I
	same(1, clifford.Circuit{h, clifford.Z(0), h}, clifford.Circuit{clifford.X(0)})
	same(1, clifford.Circuit{s, clifford.Sdg(0)}, nil)
	same(1, clifford.Circuit{clifford.X(0), clifford.Z(0)}, clifford.Circuit{clifford.Y(0)})

	same(2, clifford.Circuit{clifford.CX(0, 1), clifford.CX(0, 1)}, nil)
	same(2, clifford.Circuit{clifford.CZ(0, 1)}, clifford.Circuit{clifford.CZ(1, 0)})
	same(2,
		clifford.Circuit{clifford.H(0), clifford.H(1), clifford.CX(0, 1), clifford.H(0), clifford.H(1)},
		clifford.Circuit{clifford.CX(1, 0)})
	// swap via three CNOTs moves X0 to X1
	sw := mustCircuit(t, 2, clifford.Circuit{clifford.CX(0, 1), clifford.CX(1, 0), clifford.CX(0, 1)}).Tableau()
	require.Equal(t, "+IX", sw.PauliString(0))
	require.Equal(t, "+IZ", sw.PauliString(2))
}

func TestCompose_MatchesReplay(t *testing.T) {
	rng := rand.New(rand.NewSource(3))
	for n := 1; n <= 5; n++ {
		for trial := 0; trial < 30; trial++ {
			ca, cb := randomCircuit(rng, n, 25), randomCircuit(rng, n, 25)
			a, b := mustCircuit(t, n, ca), mustCircuit(t, n, cb)

			got, err := clifford.Compose(a, b)
			require.NoError(t, err)
			want := mustCircuit(t, n, append(ca.Clone(), cb...))
			require.Equal(t, want.Key(), got.Key(), "n=%d a=%s b=%s", n, ca, cb)
			require.NoError(t, got.Validate())
		}
	}
}

func TestCompose_Associative(t *testing.T) {
	rng := rand.New(rand.NewSource(5))
	n := 3
	a := mustCircuit(t, n, randomCircuit(rng, n, 20))
	b := mustCircuit(t, n, randomCircuit(rng, n, 20))
	c := mustCircuit(t, n, randomCircuit(rng, n, 20))

	ab, err := clifford.Compose(a, b)
	require.NoError(t, err)
	left, err := clifford.Compose(ab, c)
	require.NoError(t, err)
	bc, err := clifford.Compose(b, c)
	require.NoError(t, err)
	right, err := clifford.Compose(a, bc)
	require.NoError(t, err)
	require.True(t, left.Equal(right))
}

func TestCompose_DimensionMismatch(t *testing.T) {
	a, _ := clifford.Identity(1)
	b, _ := clifford.Identity(2)
	_, err := clifford.Compose(a, b)
	require.ErrorIs(t, err, clifford.ErrDimensionMismatch)
}

func TestInverseTableau(t *testing.T) {
	rng := rand.New(rand.NewSource(9))
	for n := 1; n <= 6; n++ {
		for trial := 0; trial < 20; trial++ {
			c := randomCircuit(rng, n, 30)
			e := mustCircuit(t, n, c)

			inv, err := clifford.InverseTableau(e.Tableau())
			require.NoError(t, err)
			require.True(t, inv.IsSymplectic())

			// the inverse circuit realizes exactly the algebraic inverse
			require.Equal(t, mustCircuit(t, n, c.Inverse()).Key(), inv.Key())

			invElem, err := clifford.NewElement(inv, c.Inverse())
			require.NoError(t, err)
			for _, pair := range [][2]*clifford.Element{{e, invElem}, {invElem, e}} {
				id, err := clifford.Compose(pair[0], pair[1])
				require.NoError(t, err)
				require.True(t, id.IsIdentity())
			}
		}
	}
}

func TestNewElement_Mismatch(t *testing.T) {
	tab := mustCircuit(t, 1, clifford.Circuit{clifford.H(0)}).Tableau()
	_, err := clifford.NewElement(tab, clifford.Circuit{clifford.S(0)})
	require.ErrorIs(t, err, clifford.ErrCircuitMismatch)

	_, err = clifford.NewElement(tab, clifford.Circuit{clifford.H(3)})
	require.ErrorIs(t, err, clifford.ErrQubitOutOfRange)
}

func TestElement_Immutable(t *testing.T) {
	e := mustCircuit(t, 2, clifford.Circuit{clifford.H(0), clifford.CX(0, 1)})
	key := e.Key()

	c := e.Circuit()
	c[0] = clifford.S(1)
	tab := e.Tableau()
	require.NoError(t, tab.Apply(clifford.S(0)))

	require.Equal(t, key, e.Key())
	require.Equal(t, "h 0; cx 0 1", e.Circuit().String())

	next, err := e.Apply(clifford.S(0))
	require.NoError(t, err)
	require.Equal(t, tab.Key(), next.Key())
	require.Equal(t, 2, e.Len())
	require.Equal(t, 3, next.Len())
}

func TestKey(t *testing.T) {
	id1, _ := clifford.Identity(1)
	v, ok := id1.Key().Uint64()
	require.True(t, ok)
	// rows 10, 01 → bits 0 and 3 set
	require.Equal(t, uint64(0b1001), v)
	require.Equal(t, "0109", id1.Key().String())

	id4, _ := clifford.Identity(4)
	_, ok = id4.Key().Uint64()
	require.False(t, ok)

	// different circuits, same element, same key
	a := mustCircuit(t, 1, clifford.Circuit{clifford.S(0), clifford.S(0)})
	b := mustCircuit(t, 1, clifford.Circuit{clifford.Z(0)})
	require.Equal(t, a.Key(), b.Key())
	require.NotEqual(t, a.Circuit().String(), b.Circuit().String())
}

func TestParseCircuit(t *testing.T) {
	c, err := clifford.ParseCircuit("h 0; s 1;cx 0 1 ; sdg 2; CZ 1 2")
	require.NoError(t, err)
	require.Equal(t, clifford.Circuit{
		clifford.H(0), clifford.S(1), clifford.CX(0, 1), clifford.Sdg(2), clifford.CZ(1, 2),
	}, c)
	require.Equal(t, "h 0; s 1; cx 0 1; sdg 2; cz 1 2", c.String())

	empty, err := clifford.ParseCircuit("  ")
	require.NoError(t, err)
	require.Empty(t, empty)

	for _, bad := range []string{"t 0", "cx 0", "h x", "h 0 1"} {
		_, err = clifford.ParseCircuit(bad)
		require.Error(t, err, bad)
	}
	_, err = clifford.ParseCircuit("t 0")
	require.ErrorIs(t, err, clifford.ErrUnknownGate)
}

func TestCircuitValidate(t *testing.T) {
	require.ErrorIs(t, clifford.Circuit{clifford.CX(1, 1)}.Validate(2), clifford.ErrQubitOutOfRange)
	require.ErrorIs(t, clifford.Circuit{clifford.H(-1)}.Validate(2), clifford.ErrQubitOutOfRange)
	require.ErrorIs(t, clifford.Circuit{{Kind: 99}}.Validate(2), clifford.ErrUnknownGate)
	require.NoError(t, clifford.Circuit{clifford.CZ(0, 1)}.Validate(2))
}

func TestGenerators(t *testing.T) {
	gens, err := clifford.Generators(3)
	require.NoError(t, err)
	require.Len(t, gens, 2*3+3*2)
	require.Equal(t, "h 0; s 0; h 1; s 1; h 2; s 2; cx 0 1; cx 0 2; cx 1 0; cx 1 2; cx 2 0; cx 2 1", gens.String())

	_, err = clifford.Generators(0)
	require.ErrorIs(t, err, clifford.ErrInvalidQubitCount)
}

func TestCircuitInverse(t *testing.T) {
	c := clifford.Circuit{clifford.H(0), clifford.S(1), clifford.CX(0, 1)}
	require.Equal(t, "cx 0 1; sdg 1; h 0", c.Inverse().String())
	require.Equal(t, 1, c.CountKind(clifford.GateCX))
}
