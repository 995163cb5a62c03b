package bleichenbacher

import (
	"math/big"

	"github.com/rwinch/bleichenbacher/bigint"
)

// finalize implements step 4's success path and result extraction: once M
// has collapsed to a singleton [a, a], the plaintext is m = s0^-1 * a mod
// n. Ports Bleichenbacher.java's stepFour.
func (e *Engine) finalize(a *big.Int) (*Result, error) {
	inv, ok := bigint.ModInverse(e.s0, e.n)
	if !ok {
		return nil, &NotInvertible{S0: e.s0}
	}

	sol := new(big.Int).Mul(inv, a)
	sol.Mod(sol, e.n)

	return &Result{
		SolutionInt:   sol,
		SolutionBytes: sol.Bytes(),
		S0:            new(big.Int).Set(e.s0),
		Iterations:    e.i,
		OracleQueries: e.oc.QueryCount(),
	}, nil
}
