package cipherbuilder

import (
	"math/big"
	"testing"

	"github.com/rwinch/bleichenbacher/oracle"
)

func TestPrepareCiphertextOracle(t *testing.T) {
	n := big.NewInt(77)
	e := big.NewInt(17)
	m := big.NewInt(5)
	s := big.NewInt(3)

	buf, err := Prepare(oracle.Ciphertext, m, s, n, e, 2)
	if err != nil {
		t.Fatal(err)
	}
	got := new(big.Int).SetBytes(buf)

	want := new(big.Int).Exp(s, e, n)
	want.Mul(want, m)
	want.Mod(want, n)

	if got.Cmp(want) != 0 {
		t.Errorf("Prepare(ciphertext) = %v, want %v", got, want)
	}
}

func TestPreparePlaintextOracle(t *testing.T) {
	n := big.NewInt(77)
	e := big.NewInt(17)
	m := big.NewInt(5)
	s := big.NewInt(3)

	buf, err := Prepare(oracle.Plaintext, m, s, n, e, 2)
	if err != nil {
		t.Fatal(err)
	}
	got := new(big.Int).SetBytes(buf)

	want := new(big.Int).Mul(m, s)
	want.Mod(want, n)

	if got.Cmp(want) != 0 {
		t.Errorf("Prepare(plaintext) = %v, want %v", got, want)
	}
}

func TestPrepareFixedWidth(t *testing.T) {
	n := big.NewInt(77)
	e := big.NewInt(17)
	buf, err := Prepare(oracle.Ciphertext, big.NewInt(1), big.NewInt(1), n, e, 4)
	if err != nil {
		t.Fatal(err)
	}
	if len(buf) != 4 {
		t.Errorf("len(buf) = %d, want 4", len(buf))
	}
}

func TestPrepareRaw(t *testing.T) {
	n := big.NewInt(77)
	buf, err := PrepareRaw(big.NewInt(200), n, 2)
	if err != nil {
		t.Fatal(err)
	}
	got := new(big.Int).SetBytes(buf)
	want := new(big.Int).Mod(big.NewInt(200), n)
	if got.Cmp(want) != 0 {
		t.Errorf("PrepareRaw = %v, want %v", got, want)
	}
}

func TestMultiplyMatchesPrepare(t *testing.T) {
	n := big.NewInt(9797)
	e := big.NewInt(65537)
	m := big.NewInt(1234)
	s := big.NewInt(17)

	direct := Multiply(oracle.Ciphertext, m, s, n, e)
	buf, err := Prepare(oracle.Ciphertext, m, s, n, e, 2)
	if err != nil {
		t.Fatal(err)
	}
	fromBytes := new(big.Int).SetBytes(buf)
	if direct.Cmp(fromBytes) != 0 {
		t.Errorf("Multiply and Prepare disagree: %v vs %v", direct, fromBytes)
	}
}
