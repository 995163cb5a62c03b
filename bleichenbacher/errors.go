package bleichenbacher

import "fmt"

// NoCandidates is returned when step 3 produces an empty interval set.
// Fatal: it indicates the oracle is lying, the ciphertext was wrong, or the
// modulus/exponent the engine was given does not match the oracle's.
type NoCandidates struct {
	Iteration int
}

func (e *NoCandidates) Error() string {
	return fmt.Sprintf("bleichenbacher: step 3 produced no candidate intervals at iteration %d", e.Iteration)
}

// NotInvertible is returned when s0^-1 mod n does not exist, i.e.
// gcd(s0, n) != 1. Fatal, and near-impossible against a real RSA modulus —
// it implies s0 shares a factor with n.
type NotInvertible struct {
	S0 fmt.Stringer
}

func (e *NotInvertible) Error() string {
	return fmt.Sprintf("bleichenbacher: s0 = %s has no modular inverse mod n", e.S0)
}

// InputTooLarge is raised at construction when the initial ciphertext is
// not less than the modulus, or when the declared block size is smaller
// than the modulus requires.
type InputTooLarge struct {
	Reason string
}

func (e *InputTooLarge) Error() string {
	return "bleichenbacher: " + e.Reason
}

// Cancelled is returned when cooperative cancellation (context.Context or
// Config.MaxQueries) interrupts the search. It carries enough state for
// diagnosis: the iteration, the multiplier being tried, and the current
// interval set. The caller may inspect these; M still satisfies the usual
// bounds and ordering invariants at the point of cancellation.
type Cancelled struct {
	Iteration     int
	Si            fmt.Stringer
	M             Set
	OracleQueries uint64
}

func (e *Cancelled) Error() string {
	return fmt.Sprintf("bleichenbacher: cancelled at iteration %d after %d oracle queries", e.Iteration, e.OracleQueries)
}
