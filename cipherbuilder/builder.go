// Package cipherbuilder produces the next oracle query from the current
// blinded ciphertext (or plaintext) and a candidate multiplier. It is a
// direct, Go-idiomatic port of Pkcs1Attack.prepareMsg/multiply from the
// TLS-Attacker Java source: the same multiply-then-serialize, branching
// only on whether the oracle wants a ciphertext (blind with s^e mod n) or
// a plaintext (multiply by s directly).
package cipherbuilder

import (
	"math/big"

	"github.com/rwinch/bleichenbacher/bigint"
	"github.com/rwinch/bleichenbacher/oracle"
)

// Prepare computes the next query for candidate multiplier s against base
// message m (c0 for the main loop, c for step 1), and serializes it as a
// blockSize-byte big-endian string.
//
// If kind is oracle.Ciphertext: t = m * (s^e mod n) mod n.
// If kind is oracle.Plaintext:  t = m * s mod n.
func Prepare(kind oracle.Kind, m, s, n, e *big.Int, blockSize int) ([]byte, error) {
	t := Multiply(kind, m, s, n, e)
	return bigint.FixedWidthBytes(t, blockSize)
}

// Multiply returns the integer (not yet serialized) that Prepare would
// encode: m * (s^e mod n) mod n for a ciphertext oracle, or m * s mod n for
// a plaintext oracle. Exposed separately because the engine needs the raw
// integer for c0 (it reinterprets the prepared bytes back as an integer
// after step 1; computing it directly avoids a redundant round trip).
func Multiply(kind oracle.Kind, m, s, n, e *big.Int) *big.Int {
	factor := s
	if kind == oracle.Ciphertext {
		factor = new(big.Int).Exp(s, e, n)
	}
	t := new(big.Int).Mul(m, factor)
	return t.Mod(t, n)
}

// PrepareRaw serializes v mod n as a blockSize-byte big-endian string with
// no multiplication — used when the caller already has the integer it
// wants the oracle to see (e.g. the initial blinded ciphertext c0 itself).
func PrepareRaw(v, n *big.Int, blockSize int) ([]byte, error) {
	t := new(big.Int).Mod(v, n)
	return bigint.FixedWidthBytes(t, blockSize)
}
