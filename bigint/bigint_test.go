package bigint

import (
	"math/big"
	"testing"
)

func TestCeilDiv(t *testing.T) {
	cases := []struct {
		x, y, want int64
	}{
		{10, 5, 2},
		{11, 5, 3},
		{1, 5, 1},
		{0, 5, 0},
		{9, 3, 3},
	}
	for _, c := range cases {
		got := CeilDiv(big.NewInt(c.x), big.NewInt(c.y))
		if got.Cmp(big.NewInt(c.want)) != 0 {
			t.Errorf("CeilDiv(%d, %d) = %v, want %d", c.x, c.y, got, c.want)
		}
	}
}

func TestFloorDiv(t *testing.T) {
	cases := []struct {
		x, y, want int64
	}{
		{10, 5, 2},
		{11, 5, 2},
		{1, 5, 0},
		{9, 3, 3},
	}
	for _, c := range cases {
		got := FloorDiv(big.NewInt(c.x), big.NewInt(c.y))
		if got.Cmp(big.NewInt(c.want)) != 0 {
			t.Errorf("FloorDiv(%d, %d) = %v, want %d", c.x, c.y, got, c.want)
		}
	}
}

func TestMinMax(t *testing.T) {
	a, b := big.NewInt(3), big.NewInt(7)
	if Min(a, b).Cmp(a) != 0 {
		t.Errorf("Min(3, 7) != 3")
	}
	if Max(a, b).Cmp(b) != 0 {
		t.Errorf("Max(3, 7) != 7")
	}
	// Arguments must not be mutated by Min/Max.
	orig := new(big.Int).Set(a)
	Min(a, b).Add(a, big.NewInt(100))
	if a.Cmp(orig) != 0 {
		t.Errorf("Min mutated its argument")
	}
}

func TestByteLen(t *testing.T) {
	cases := []struct {
		z    int64
		want int
	}{
		{0, 0},
		{1, 1},
		{255, 1},
		{256, 2},
		{65535, 2},
		{65536, 3},
	}
	for _, c := range cases {
		got := ByteLen(big.NewInt(c.z))
		if got != c.want {
			t.Errorf("ByteLen(%d) = %d, want %d", c.z, got, c.want)
		}
	}
}

func TestPowerOfTwo(t *testing.T) {
	got := PowerOfTwo(8)
	if got.Cmp(big.NewInt(256)) != 0 {
		t.Errorf("PowerOfTwo(8) = %v, want 256", got)
	}
}

func TestModInverse(t *testing.T) {
	n := big.NewInt(77) // 7 * 11
	inv, ok := ModInverse(big.NewInt(2), n)
	if !ok {
		t.Fatalf("expected invertible")
	}
	product := new(big.Int).Mod(new(big.Int).Mul(big.NewInt(2), inv), n)
	if product.Cmp(big.NewInt(1)) != 0 {
		t.Errorf("2 * inv mod 77 = %v, want 1", product)
	}

	// gcd(7, 77) = 7 != 1, not invertible.
	if _, ok := ModInverse(big.NewInt(7), n); ok {
		t.Errorf("expected 7 to not be invertible mod 77")
	}
}
