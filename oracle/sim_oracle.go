package oracle

import (
	"math/big"

	perrors "github.com/pkg/errors"
)

// SimOracle is a plaintext oracle: it interprets its input directly as a
// candidate plaintext integer and checks PKCS#1 v1.5 conformance by range
// membership, with no RSA keypair or decryption involved at all. It lets
// the engine be exercised against a trusted reference implementation of
// PKCS#1 decoding for test reproducibility, without needing a full RSA
// decryption per query.
type SimOracle struct {
	n, e      *big.Int
	blockSize int
	twoB      *big.Int
	threeBm1  *big.Int
	queries   uint64
}

// NewSimOracle builds a plaintext oracle for the given (n, e, blockSize).
// The conformance set follows the PKCS#1 v1.5 type-2 definition:
// B = 2^(8*(k-2)), conformant iff x is in [2B, 3B-1].
func NewSimOracle(n, e *big.Int, blockSize int) *SimOracle {
	b := new(big.Int).Lsh(big.NewInt(1), uint(8*(blockSize-2)))
	twoB := new(big.Int).Mul(big.NewInt(2), b)
	threeBm1 := new(big.Int).Sub(new(big.Int).Mul(big.NewInt(3), b), big.NewInt(1))
	return &SimOracle{
		n:         new(big.Int).Set(n),
		e:         new(big.Int).Set(e),
		blockSize: blockSize,
		twoB:      twoB,
		threeBm1:  threeBm1,
	}
}

func (o *SimOracle) PublicKey() (n, e *big.Int) {
	return new(big.Int).Set(o.n), new(big.Int).Set(o.e)
}

func (o *SimOracle) BlockSize() int { return o.blockSize }

func (o *SimOracle) Kind() Kind { return Plaintext }

func (o *SimOracle) QueryCount() uint64 { return o.queries }

func (o *SimOracle) CheckConformant(buf []byte) (bool, error) {
	o.queries++
	if len(buf) != o.blockSize {
		return false, &OracleError{Query: o.queries, Err: perrors.Errorf(
			"sim oracle: message is %d bytes, want %d", len(buf), o.blockSize)}
	}
	x := new(big.Int).SetBytes(buf)
	return x.Cmp(o.twoB) >= 0 && x.Cmp(o.threeBm1) <= 0, nil
}
