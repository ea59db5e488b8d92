package synth_test

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/clifford/clifford"
	"github.com/katalvlaran/clifford/synth"
)

func randomCircuit(rng *rand.Rand, n, length int) clifford.Circuit {
	c := make(clifford.Circuit, 0, length)
	for len(c) < length {
		switch k := rng.Intn(5); {
		case k == 0 && n > 1:
			a := rng.Intn(n)
			c = append(c, clifford.CX(a, (a+1+rng.Intn(n-1))%n))
		case k == 1:
			c = append(c, clifford.S(rng.Intn(n)))
		case k == 2:
			c = append(c, clifford.X(rng.Intn(n)))
		case k == 3:
			c = append(c, clifford.Z(rng.Intn(n)))
		default:
			c = append(c, clifford.H(rng.Intn(n)))
		}
	}
	return c
}

func TestCircuit_ReproducesTableau(t *testing.T) {
	rng := rand.New(rand.NewSource(21))
	for n := 1; n <= 8; n++ {
		for trial := 0; trial < 25; trial++ {
			src, err := clifford.FromCircuit(n, randomCircuit(rng, n, 10*n))
			require.NoError(t, err)

			c, err := synth.Circuit(src.Tableau())
			require.NoError(t, err)
			got, err := clifford.FromCircuit(n, c)
			require.NoError(t, err)
			require.Equal(t, src.Key(), got.Key(), "n=%d source %s", n, src.Circuit())
		}
	}
}

func TestReduce_IsInverse(t *testing.T) {
	rng := rand.New(rand.NewSource(22))
	for n := 1; n <= 6; n++ {
		src, err := clifford.FromCircuit(n, randomCircuit(rng, n, 40))
		require.NoError(t, err)

		g, err := synth.Reduce(src.Tableau())
		require.NoError(t, err)
		id, err := src.Apply(g...)
		require.NoError(t, err)
		require.True(t, id.IsIdentity())
	}
}

func TestCircuit_IdentityIsEmpty(t *testing.T) {
	for n := 1; n <= 4; n++ {
		tab, err := clifford.NewTableau(n)
		require.NoError(t, err)
		c, err := synth.Circuit(tab)
		require.NoError(t, err)
		require.Empty(t, c)
	}
}

// TestCircuit_Canonical checks that different circuits for the same element
// synthesize to the same gate list.
func TestCircuit_Canonical(t *testing.T) {
	a, err := clifford.FromCircuit(2, clifford.Circuit{clifford.CZ(0, 1)})
	require.NoError(t, err)
	b, err := clifford.FromCircuit(2, clifford.Circuit{clifford.H(0), clifford.CX(1, 0), clifford.H(0)})
	require.NoError(t, err)
	require.Equal(t, a.Key(), b.Key())

	ca, err := synth.Circuit(a.Tableau())
	require.NoError(t, err)
	cb, err := synth.Circuit(b.Tableau())
	require.NoError(t, err)
	require.Equal(t, ca, cb)
}

func TestElement(t *testing.T) {
	src, err := clifford.FromCircuit(3, clifford.Circuit{clifford.H(0), clifford.CX(0, 2), clifford.S(1), clifford.Y(2)})
	require.NoError(t, err)
	e, err := synth.Element(src.Tableau())
	require.NoError(t, err)
	require.True(t, e.Equal(src))
	require.NoError(t, e.Validate())
}

func BenchmarkCircuit(b *testing.B) {
	rng := rand.New(rand.NewSource(1))
	const n = 10
	src, _ := clifford.FromCircuit(n, randomCircuit(rng, n, 200))
	tab := src.Tableau()

	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = synth.Circuit(tab)
	}
}
