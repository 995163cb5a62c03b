// Command demo wires the Bleichenbacher engine against a simulated
// plaintext oracle end to end, the way set6/48/main.go wires decrypt around
// newRSABreaker: generate a key, build an oracle, read lines of text from
// stdin, print back the recovered plaintext.
package main

import (
	"bufio"
	"context"
	"crypto/rand"
	"fmt"
	"io"
	"math/big"
	"os"

	"github.com/rwinch/bleichenbacher/bleichenbacher"
	"github.com/rwinch/bleichenbacher/oracle"
)

func main() {
	if err := run(os.Stdin, os.Stdout); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run(in io.Reader, out io.Writer) error {
	const (
		blockSize = 32 // bytes; B = 2^(8*(blockSize-2))
		exponent  = 65537
	)

	n, err := rand.Prime(rand.Reader, 8*blockSize)
	if err != nil {
		return err
	}
	e := big.NewInt(exponent)
	o := oracle.NewSimOracle(n, e, blockSize)

	scanner := bufio.NewScanner(in)
	for scanner.Scan() {
		line := scanner.Text()
		ciphertextBytes, err := encodeConformant(line, n, blockSize)
		if err != nil {
			return err
		}

		eng, err := bleichenbacher.New(ciphertextBytes, n, e, blockSize, true, o, bleichenbacher.Config{
			Logger: bleichenbacher.NewStdLogger(),
		})
		if err != nil {
			return err
		}

		result, err := eng.Run(context.Background())
		if err != nil {
			return err
		}
		fmt.Fprintf(out, "%x (s0=%s, iterations=%d, queries=%d)\n",
			result.SolutionBytes, result.S0, result.Iterations, result.OracleQueries)
	}
	return scanner.Err()
}

// encodeConformant embeds line's bytes in a PKCS#1 v1.5 conformant
// plaintext (00 02 <random nonzero padding> 00 <line>) and returns it as a
// fixed-width ciphertext buffer — "ciphertext" here because the demo's
// oracle is a plaintext oracle, so the engine treats this buffer as the
// message directly.
func encodeConformant(line string, n *big.Int, blockSize int) ([]byte, error) {
	msg := []byte(line)
	if len(msg)+3 > blockSize {
		return nil, fmt.Errorf("line too long for block size %d", blockSize)
	}
	padLen := blockSize - len(msg) - 3
	padding := make([]byte, padLen)
	if _, err := io.ReadFull(rand.Reader, padding); err != nil {
		return nil, err
	}
	for i, b := range padding {
		for b == 0 {
			if _, err := io.ReadFull(rand.Reader, padding[i:i+1]); err != nil {
				return nil, err
			}
			b = padding[i]
		}
	}

	buf := make([]byte, 0, blockSize)
	buf = append(buf, 0x00, 0x02)
	buf = append(buf, padding...)
	buf = append(buf, 0x00)
	buf = append(buf, msg...)

	z := new(big.Int).SetBytes(buf)
	if z.Cmp(n) >= 0 {
		return nil, fmt.Errorf("encoded plaintext does not fit under modulus")
	}
	return buf, nil
}
