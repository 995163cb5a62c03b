// Package bigint wraps math/big with the Euclidean ceil/floor division and
// modular-inverse semantics the Bleichenbacher search depends on. Every
// division in the attack is a ceiling or a floor over non-negative
// operands; getting the off-by-one wrong here ruins convergence, so the two
// helpers below are the only place divmod happens.
package bigint

import "math/big"

// CeilDiv returns ceil(x/y) for positive y (x may be of either sign),
// computed as the floor quotient plus one whenever the Euclidean remainder
// is non-zero. Mirrors the ceilingDiv helper used throughout the teacher's
// RSA breaker. math/big's DivMod is Euclidean (remainder always in
// [0, y)), which is exactly what makes this formula correct for negative x
// as well as positive — step 3's r_lo/r_hi computations rely on that.
func CeilDiv(x, y *big.Int) *big.Int {
	q, r := new(big.Int), new(big.Int)
	q.DivMod(x, y, r)
	if r.Sign() != 0 {
		q.Add(q, one)
	}
	return q
}

// FloorDiv returns floor(x/y) for positive y (x may be of either sign).
// math/big's Div implements Euclidean division, which coincides with floor
// division whenever y > 0.
func FloorDiv(x, y *big.Int) *big.Int {
	q := new(big.Int)
	q.Div(x, y)
	return q
}

// Max returns the larger of x and y. Neither argument is mutated.
func Max(x, y *big.Int) *big.Int {
	if x.Cmp(y) >= 0 {
		return new(big.Int).Set(x)
	}
	return new(big.Int).Set(y)
}

// Min returns the smaller of x and y. Neither argument is mutated.
func Min(x, y *big.Int) *big.Int {
	if x.Cmp(y) <= 0 {
		return new(big.Int).Set(x)
	}
	return new(big.Int).Set(y)
}

// ByteLen returns the number of bytes needed to hold z, i.e. the smallest k
// such that 256^k >= z (for z > 0).
func ByteLen(z *big.Int) int {
	return (z.BitLen() + 7) / 8
}

var (
	zero = big.NewInt(0)
	one  = big.NewInt(1)
	two  = big.NewInt(2)
)

// Zero, One, Two are shared immutable constants. Callers must not mutate the
// returned pointers; copy with new(big.Int).Set first.
func Zero() *big.Int { return zero }
func One() *big.Int  { return one }
func Two() *big.Int  { return two }

// PowerOfTwo returns 2^bits.
func PowerOfTwo(bits int) *big.Int {
	return new(big.Int).Lsh(one, uint(bits))
}

// ModInverse returns a^-1 mod n, or ok=false if gcd(a, n) != 1 (the inverse
// does not exist). Callers turn a false ok into NotInvertible.
func ModInverse(a, n *big.Int) (inv *big.Int, ok bool) {
	inv = new(big.Int).ModInverse(a, n)
	return inv, inv != nil
}
