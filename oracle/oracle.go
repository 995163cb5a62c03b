// Package oracle defines the padding-validity oracle boundary the
// Bleichenbacher engine drives, and two concrete implementations: a real
// RSA ciphertext oracle and a plaintext simulation oracle for testing.
//
// The Java original expresses "ciphertext oracle" vs "plaintext oracle" as
// an inheritance hierarchy. Go has no classes; Kind plus the two query
// methods on the Oracle interface is the equivalent tagged-variant
// abstraction, and it is strictly simpler.
package oracle

import "math/big"

// Kind tags whether an Oracle expects ciphertexts (it will exponentiate the
// multiplier itself) or plaintexts (the multiplier is applied directly).
type Kind int

const (
	// Ciphertext oracles decrypt what they're given; the engine must blind
	// with s^e mod n before multiplying.
	Ciphertext Kind = iota
	// Plaintext oracles interpret their input directly as a plaintext
	// integer; the engine multiplies by s with no exponentiation. Used to
	// exercise the search loop against a trusted PKCS#1 decoder without a
	// full RSA keypair.
	Plaintext
)

// Oracle is the padding-validity boundary the engine consumes. It is the
// only interface the engine depends on — everything about transport,
// network failures, and the real decryption that produces the boolean
// answer is the oracle's concern, not the engine's.
type Oracle interface {
	// PublicKey returns the modulus and public exponent. Stable across
	// calls for the lifetime of an attack.
	PublicKey() (n, e *big.Int)

	// BlockSize returns k, the byte length every submitted ciphertext must
	// have. Stable across calls.
	BlockSize() int

	// Kind reports whether this oracle expects ciphertexts or plaintexts,
	// telling the engine how to interpret multipliers when building the
	// next query.
	Kind() Kind

	// CheckConformant reports whether buf, interpreted as a k-byte
	// big-endian integer, is a valid PKCS#1 v1.5 type-2 encoding. May
	// return an OracleError on transport/protocol failure; the engine
	// propagates that unchanged.
	CheckConformant(buf []byte) (bool, error)

	// QueryCount returns the number of CheckConformant calls made so far.
	// Monotonically non-decreasing; used for observability and, by the
	// engine, to enforce Config.MaxQueries.
	QueryCount() uint64
}

// IsPlaintextOracle reports whether o expects plaintexts rather than
// ciphertexts.
func IsPlaintextOracle(o Oracle) bool {
	return o.Kind() == Plaintext
}
