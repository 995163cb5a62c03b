package oracle

import (
	"crypto/rsa"
	"crypto/subtle"
	"math/big"

	perrors "github.com/pkg/errors"
)

// RSAOracle is a real padding-validity oracle backed by an RSA private key.
// It decrypts the raw textbook RSA value (no PKCS#1 unwrapping helper from
// crypto/rsa, since those return only an error, not the padded bytes) and
// inspects the leading two bytes itself, the way prep-gpg's
// decryptPKCS1v15Common inspects its decrypted EM block.
type RSAOracle struct {
	priv      *rsa.PrivateKey
	blockSize int
	queries   uint64
}

// NewRSAOracle builds a ciphertext oracle around priv. blockSize is the
// byte length every query must have; it is derived from the modulus and
// kept as an explicit field since every other Oracle method needs it too.
func NewRSAOracle(priv *rsa.PrivateKey) *RSAOracle {
	return &RSAOracle{
		priv:      priv,
		blockSize: (priv.N.BitLen() + 7) / 8,
	}
}

func (o *RSAOracle) PublicKey() (n, e *big.Int) {
	return new(big.Int).Set(o.priv.N), big.NewInt(int64(o.priv.E))
}

func (o *RSAOracle) BlockSize() int { return o.blockSize }

func (o *RSAOracle) Kind() Kind { return Ciphertext }

func (o *RSAOracle) QueryCount() uint64 { return o.queries }

// CheckConformant decrypts buf with the private key and reports whether the
// result begins with 0x00 0x02, the PKCS#1 v1.5 type-2 conformance test. A
// malformed buf (wrong length, out of range) is a caller/protocol bug, not
// a padding verdict, and is reported as an OracleError rather than false.
func (o *RSAOracle) CheckConformant(buf []byte) (bool, error) {
	o.queries++
	if len(buf) != o.blockSize {
		return false, &OracleError{Query: o.queries, Err: perrors.Errorf(
			"ciphertext is %d bytes, want %d", len(buf), o.blockSize)}
	}

	c := new(big.Int).SetBytes(buf)
	if c.Cmp(o.priv.N) >= 0 {
		return false, &OracleError{Query: o.queries, Err: perrors.New("ciphertext >= modulus")}
	}

	m := new(big.Int).Exp(c, o.priv.D, o.priv.N)
	em := leftPad(m.Bytes(), o.blockSize)

	firstIsZero := subtle.ConstantTimeByteEq(em[0], 0x00)
	secondIsTwo := subtle.ConstantTimeByteEq(em[1], 0x02)
	return firstIsZero&secondIsTwo == 1, nil
}

// leftPad returns a width-byte slice with src right-aligned, matching
// prep-gpg/agent/rsa.go's leftPad used before inspecting the same two bytes.
func leftPad(src []byte, width int) []byte {
	if len(src) >= width {
		return src[len(src)-width:]
	}
	out := make([]byte, width)
	copy(out[width-len(src):], src)
	return out
}
