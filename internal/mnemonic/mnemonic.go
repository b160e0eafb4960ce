// Package mnemonic implements the bijection between a non-negative integer
// and its word-sequence representation: base-1024 digits, least-significant
// word first, drawn from internal/wordlist.
package mnemonic

import (
	"math/big"
	"strings"

	"github.com/mrz1836/mnemosss/internal/wordlist"
)

var (
	radix     = big.NewInt(wordlist.Radix)
	radixBits = uint(wordlist.RadixBits)
)

// Encode converts n into its mnemonic word sequence. n must be >= 0.
// Encode(0) returns the empty string — callers never encode the zero value,
// since the framed share/secret integers this codec serves are always >= 1.
func Encode(n *big.Int) (string, error) {
	if n.Sign() < 0 {
		return "", wordlist.ErrInvalidWord
	}
	if n.Sign() == 0 {
		return "", nil
	}

	remaining := new(big.Int).Set(n)
	digit := new(big.Int)
	var words []string

	for remaining.Sign() != 0 {
		remaining.DivMod(remaining, radix, digit)
		w, err := wordlist.WordOf(int(digit.Int64()))
		if err != nil {
			return "", err
		}
		words = append(words, w)
	}

	return strings.Join(words, " "), nil
}

// Decode converts a whitespace-separated mnemonic back into its integer
// value. The empty string decodes to 0. Any token not present in the
// wordlist surfaces wordlist.ErrInvalidWord.
func Decode(s string) (*big.Int, error) {
	fields := strings.Fields(s)

	n := new(big.Int)
	if len(fields) == 0 {
		return n, nil
	}

	for i := len(fields) - 1; i >= 0; i-- {
		idx, err := wordlist.IndexOf(fields[i])
		if err != nil {
			return nil, err
		}
		n.Lsh(n, radixBits)
		n.Or(n, big.NewInt(int64(idx)))
	}

	return n, nil
}
