package bleichenbacher

import (
	"context"
	"math/big"

	"github.com/rwinch/bleichenbacher/bigint"
)

var (
	two   = big.NewInt(2)
	three = big.NewInt(3)
)

// runSearch dispatches to step 2a, 2b, or 2c, mirroring
// Bleichenbacher.java's stepTwo: 2a on the very first iteration, 2b while
// more than one interval remains, 2c once the set has narrowed to a single
// interval.
func (e *Engine) runSearch(ctx context.Context) error {
	switch {
	case e.i == 1:
		return e.searchStepA(ctx)
	case len(e.m) >= 2:
		return e.searchStepB(ctx)
	default:
		return e.searchStepC(ctx)
	}
}

// searchStepA is step 2a: start at ceil(n / 3B) and increment by 1 until
// the oracle says conformant.
func (e *Engine) searchStepA(ctx context.Context) error {
	e.logger.Debugf("step 2a: starting the search")
	threeB := new(big.Int).Mul(three, e.bigB)
	s := bigint.CeilDiv(e.n, threeB)

	for {
		ok, err := e.query(ctx, e.c0, s)
		if err != nil {
			return err
		}
		if ok {
			e.si = s
			e.logger.Debugf("found s_%d = %s", e.i, e.si)
			return nil
		}
		s = new(big.Int).Add(s, big.NewInt(1))
	}
}

// searchStepB is step 2b: more than one interval remains, so simply
// continue incrementing from the last s_i.
func (e *Engine) searchStepB(ctx context.Context) error {
	e.logger.Debugf("step 2b: searching with more than one interval left")
	s := new(big.Int).Add(e.si, big.NewInt(1))

	for {
		ok, err := e.query(ctx, e.c0, s)
		if err != nil {
			return err
		}
		if ok {
			e.si = s
			e.logger.Debugf("found s_%d = %s", e.i, e.si)
			return nil
		}
		s = new(big.Int).Add(s, big.NewInt(1))
	}
}

// searchStepC is step 2c: exactly one interval [a, b] remains. Search over
// (r, s) pairs, starting r at ceil(2*(b*s_prev - 2B)/n), matching
// Bleichenbacher.java's stepTwoC verbatim — the factor of 2 there is a
// convergence heuristic from the original source with no correctness
// derivation behind it, not a bug to be "fixed".
func (e *Engine) searchStepC(ctx context.Context) error {
	e.logger.Debugf("step 2c: searching with one interval left")
	a, b := e.m[0].Lo, e.m[0].Hi

	twoB := new(big.Int).Mul(two, e.bigB)

	r := new(big.Int).Mul(b, e.si)
	r.Sub(r, twoB)
	r.Mul(r, two)
	r = bigint.CeilDiv(r, e.n)

	sLo, sHi := e.step2cWindow(r, a, b)
	s := new(big.Int).Set(sLo)

	for {
		if s.Cmp(sHi) > 0 {
			r = new(big.Int).Add(r, big.NewInt(1))
			sLo, sHi = e.step2cWindow(r, a, b)
			s = new(big.Int).Set(sLo)
		}

		ok, err := e.query(ctx, e.c0, s)
		if err != nil {
			return err
		}
		if ok {
			e.si = s
			e.logger.Debugf("found s_%d = %s", e.i, e.si)
			return nil
		}
		s = new(big.Int).Add(s, big.NewInt(1))
	}
}

// step2cWindow computes the [sLo, sHi] window for a given r, matching
// Bleichenbacher.java's stepTwoC: sLo = ceil((2B + r*n) / b),
// sHi = floor((3B - 1 + r*n) / a). The asymmetry is intentional: the lower
// bound divides by b (the interval's upper bound) and the upper bound
// divides by a (the interval's lower bound) — that is correct, not a typo.
func (e *Engine) step2cWindow(r, a, b *big.Int) (sLo, sHi *big.Int) {
	twoB := new(big.Int).Mul(two, e.bigB)
	threeBm1 := new(big.Int).Sub(new(big.Int).Mul(three, e.bigB), big.NewInt(1))

	rn := new(big.Int).Mul(r, e.n)

	loNumerator := new(big.Int).Add(twoB, rn)
	sLo = bigint.CeilDiv(loNumerator, b)

	hiNumerator := new(big.Int).Add(threeBm1, rn)
	sHi = bigint.FloorDiv(hiNumerator, a)

	return sLo, sHi
}
