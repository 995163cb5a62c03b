package bleichenbacher

import (
	"context"
	"crypto/rand"
	"crypto/rsa"
	"math/big"
	"testing"

	"github.com/rwinch/bleichenbacher/bigint"
	"github.com/rwinch/bleichenbacher/oracle"
)

func TestNewRejectsCiphertextNotLessThanModulus(t *testing.T) {
	n := big.NewInt(77)
	e := big.NewInt(17)
	o := oracle.NewSimOracle(n, e, 2)

	buf, err := bigint.FixedWidthBytes(big.NewInt(77), 2)
	if err != nil {
		t.Fatal(err)
	}
	_, err = New(buf, n, e, 2, true, o, Config{})
	if _, ok := err.(*InputTooLarge); !ok {
		t.Errorf("expected *InputTooLarge, got %T: %v", err, err)
	}
}

func TestNewRejectsMismatchedBlockSize(t *testing.T) {
	n := big.NewInt(77)
	e := big.NewInt(17)
	o := oracle.NewSimOracle(n, e, 4)

	buf, err := bigint.FixedWidthBytes(big.NewInt(2), 2)
	if err != nil {
		t.Fatal(err)
	}
	_, err = New(buf, n, e, 2, true, o, Config{})
	if _, ok := err.(*InputTooLarge); !ok {
		t.Errorf("expected *InputTooLarge, got %T: %v", err, err)
	}
}

func TestRunTinyPlaintextOracleSingleIteration(t *testing.T) {
	n := big.NewInt(77)
	e := big.NewInt(17)
	o := oracle.NewSimOracle(n, e, 2)

	buf, err := bigint.FixedWidthBytes(big.NewInt(2), 2)
	if err != nil {
		t.Fatal(err)
	}
	eng, err := New(buf, n, e, 2, true, o, Config{})
	if err != nil {
		t.Fatal(err)
	}

	result, err := eng.Run(context.Background())
	if err != nil {
		t.Fatal(err)
	}
	if result.SolutionInt.Cmp(big.NewInt(2)) != 0 {
		t.Errorf("SolutionInt = %s, want 2", result.SolutionInt)
	}
	if result.Iterations != 1 {
		t.Errorf("Iterations = %d, want 1", result.Iterations)
	}
}

func TestRunRequiresBlindingWhenNotPKCS(t *testing.T) {
	priv, err := rsa.GenerateKey(rand.Reader, 512)
	if err != nil {
		t.Fatal(err)
	}
	o := oracle.NewRSAOracle(priv)
	blockSize := o.BlockSize()

	plaintext := []byte("bb98")
	// Build a non-conformant ciphertext deliberately: encrypt, then flip a
	// ciphertext byte. RSA decryption has no locality, so the tampered
	// ciphertext decrypts to unrelated garbage that is vanishingly
	// unlikely to still start with 00 02 — the oracle rejects it
	// unblinded, forcing the engine's search loop to actually run.
	ciphertext, err := rsa.EncryptPKCS1v15(rand.Reader, &priv.PublicKey, plaintext)
	if err != nil {
		t.Fatal(err)
	}
	ciphertext[len(ciphertext)-1] ^= 0xFF

	n := priv.PublicKey.N
	e := big.NewInt(int64(priv.PublicKey.E))

	eng, err := New(ciphertext, n, e, blockSize, false, o, Config{})
	if err != nil {
		t.Fatal(err)
	}

	if err := eng.runBlinding(context.Background()); err != nil {
		t.Fatal(err)
	}
	if eng.s0 == nil || eng.s0.Sign() <= 0 {
		t.Fatalf("s0 = %v, want a positive multiplier", eng.s0)
	}

	// RSAOracle is a ciphertext oracle, so c0 is a ciphertext; it is its
	// decryption that must lie in [2B, 3B-1].
	m0 := new(big.Int).Exp(eng.c0, priv.D, n)
	lo, hi := eng.conformanceRange()
	if m0.Cmp(lo) < 0 || m0.Cmp(hi) > 0 {
		t.Errorf("c0 = %s decrypts to %s, not conformant after blinding, want in [%s, %s]", eng.c0, m0, lo, hi)
	}
}
