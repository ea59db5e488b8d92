package clifford

import (
	"encoding/hex"
)

// Key is the canonical encoding of a tableau and its phases: one byte holding
// n, then the 4n² matrix bits row-major, then the 2n phase bits, packed
// least-significant bit first. It is a string so it is comparable and can
// index a map; two elements with equal tableau and phases always share a Key
// no matter which circuit realizes them.
type Key string

// keyBits returns the number of payload bits for n qubits.
func keyBits(n int) int { return 4*n*n + 2*n }

// Key computes the canonical key of t.
// Complexity: O(n²).
func (t *Tableau) Key() Key {
	n := t.n
	size := 2 * n
	buf := make([]byte, 1+(keyBits(n)+7)/8)
	buf[0] = byte(n)
	bit := 0
	put := func(b bool) {
		if b {
			buf[1+bit/8] |= 1 << uint(bit%8)
		}
		bit++
	}
	for r := 0; r < size; r++ {
		row := t.rows.Row(r)
		for c := 0; c < size; c++ {
			put(row.Bit(c))
		}
	}
	for r := 0; r < size; r++ {
		put(t.phase.Bit(r))
	}
	return Key(buf)
}

// Qubits returns the qubit count encoded in k, or 0 for an empty key.
func (k Key) Qubits() int {
	if len(k) == 0 {
		return 0
	}
	return int(k[0])
}

// Uint64 returns the payload as an integer when it fits in 64 bits (n ≤ 3).
func (k Key) Uint64() (uint64, bool) {
	n := k.Qubits()
	if n == 0 || keyBits(n) > 64 {
		return 0, false
	}
	var v uint64
	for i := len(k) - 1; i >= 1; i-- {
		v = v<<8 | uint64(k[i])
	}
	return v, true
}

// String renders the key in hex.
func (k Key) String() string { return hex.EncodeToString([]byte(k)) }
