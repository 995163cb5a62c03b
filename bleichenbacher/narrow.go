package bleichenbacher

import (
	"math/big"

	"github.com/rwinch/bleichenbacher/bigint"
)

// narrowStep implements step 3: given the current M_i and the just-found
// s_i, produce M_{i+1}. Ports Bleichenbacher.java's
// stepThree, cross-checked against the teacher's generateIntervals, which
// is the same double loop (over intervals, then over r) restructured as Go
// slices instead of an ArrayList.
func (e *Engine) narrowStep(m Set, si *big.Int) (Set, error) {
	twoB := new(big.Int).Mul(two, e.bigB)
	threeBm1 := new(big.Int).Sub(new(big.Int).Mul(three, e.bigB), big.NewInt(1))

	var next Set
	for _, iv := range m {
		a, b := iv.Lo, iv.Hi

		// r_lo = floor((a*si - 3B + 1) / n)
		rLoNum := new(big.Int).Mul(a, si)
		rLoNum.Sub(rLoNum, threeBm1)
		rLo := bigint.FloorDiv(rLoNum, e.n)

		// r_hi = ceil((b*si - 2B) / n)
		rHiNum := new(big.Int).Mul(b, si)
		rHiNum.Sub(rHiNum, twoB)
		rHi := bigint.CeilDiv(rHiNum, e.n)

		for r := new(big.Int).Set(rLo); r.Cmp(rHi) <= 0; r = new(big.Int).Add(r, big.NewInt(1)) {
			rn := new(big.Int).Mul(r, e.n)

			newLoNum := new(big.Int).Add(twoB, rn)
			newLo := bigint.CeilDiv(newLoNum, si)
			newLo = bigint.Max(a, newLo)

			newHiNum := new(big.Int).Add(threeBm1, rn)
			newHi := bigint.FloorDiv(newHiNum, si)
			newHi = bigint.Min(b, newHi)

			if newLo.Cmp(newHi) <= 0 {
				next = append(next, Interval{Lo: newLo, Hi: newHi})
			}
		}
	}

	if len(next) == 0 {
		return nil, &NoCandidates{Iteration: e.i}
	}
	return next, nil
}
