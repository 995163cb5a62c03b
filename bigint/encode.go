package bigint

import (
	"math/big"

	"github.com/pkg/errors"
)

// ErrDoesNotFit is returned by FixedWidthBytes when the integer's minimal
// encoding is wider than the requested width.
var ErrDoesNotFit = errors.New("bigint: value does not fit in requested width")

// FixedWidthBytes serializes z as a big-endian byte string of exactly width
// bytes, left-padded with zeros. It fails if z is negative or does not fit
// in width bytes — every ciphertext submitted to an oracle must be exactly
// the modulus's block size, so silently truncating here would corrupt the
// attack instead of merely being imprecise.
func FixedWidthBytes(z *big.Int, width int) ([]byte, error) {
	if z.Sign() < 0 {
		return nil, errors.New("bigint: cannot encode a negative integer")
	}
	raw := z.Bytes()
	if len(raw) > width {
		return nil, errors.Wrapf(ErrDoesNotFit, "value needs %d bytes, width is %d", len(raw), width)
	}
	out := make([]byte, width)
	copy(out[width-len(raw):], raw)
	return out, nil
}

// ParseFixedWidth interprets buf as an unsigned big-endian integer. It does
// not itself enforce a width; callers that require exactly k bytes check
// len(buf) before calling this.
func ParseFixedWidth(buf []byte) *big.Int {
	return new(big.Int).SetBytes(buf)
}
