package clifford_test

import (
	"fmt"

	"github.com/katalvlaran/clifford/clifford"
)

// ExampleFromCircuit prints the tableau of a Bell-pair preparation circuit:
// the image of each Pauli generator under conjugation.
func ExampleFromCircuit() {
	e, err := clifford.FromCircuit(2, clifford.Circuit{clifford.H(0), clifford.CX(0, 1)})
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Print(e.Tableau())

	// Output:
	// X0 -> +ZI
	// X1 -> +IX
	// Z0 -> +XX
	// Z1 -> +ZZ
}

// ExampleCompose shows that composing an element with its inverse circuit
// yields the identity.
func ExampleCompose() {
	a, _ := clifford.FromCircuit(1, clifford.Circuit{clifford.H(0), clifford.S(0)})
	b, _ := clifford.FromCircuit(1, a.Circuit().Inverse())

	id, err := clifford.Compose(a, b)
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Println(id.IsIdentity(), id.Circuit())

	// Output:
	// true h 0; s 0; sdg 0; h 0
}
