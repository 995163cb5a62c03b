package bleichenbacher

import (
	"context"
	"math/big"

	"github.com/rwinch/bleichenbacher/cipherbuilder"
)

// runBlinding implements initialization plus step 1: find a multiplier s0
// such that c*s0 is conformant. When msgIsPKCS is set, blinding is
// trivially skipped (s0=1, c0=c) because the caller already knows the
// target ciphertext is conformant — this mirrors Bleichenbacher.java's
// attack() method checking msgIsPKCS before calling stepOne() at all.
func (e *Engine) runBlinding(ctx context.Context) error {
	lo, hi := e.conformanceRange()

	if e.msgIsPKCS {
		e.logger.Infof("step skipped: message is considered PKCS#1 conformant")
		e.s0 = big.NewInt(1)
		e.c0 = new(big.Int).Set(e.c)
		e.si = big.NewInt(1)
		e.m = Set{{Lo: lo, Hi: hi}}
		e.i = 1
		return nil
	}

	e.state = stateBlinding
	s := big.NewInt(0)
	for {
		s = new(big.Int).Add(s, big.NewInt(1))
		ok, err := e.query(ctx, e.c, s)
		if err != nil {
			return err
		}
		if ok {
			break
		}
	}

	e.s0 = new(big.Int).Set(s)
	e.si = new(big.Int).Set(s)
	// c0 is (c * s0^e) mod n for a ciphertext oracle, or (c * s0) mod n for
	// a plaintext oracle — exactly what the just-accepted query computed.
	e.c0 = cipherbuilder.Multiply(e.oc.Kind(), e.c, s, e.n, e.pubE)
	e.m = Set{{Lo: lo, Hi: hi}}
	e.i = 1

	e.logger.Infof("found s0 = %s", e.s0)
	return nil
}
