package mnemonic

import (
	"math/big"
	"testing"

	"github.com/mrz1836/mnemosss/internal/wordlist"
)

func TestEncodeZero(t *testing.T) {
	s, err := Encode(big.NewInt(0))
	if err != nil {
		t.Fatalf("Encode(0) error = %v", err)
	}
	if s != "" {
		t.Fatalf("Encode(0) = %q, want empty string", s)
	}
}

func TestDecodeEmpty(t *testing.T) {
	n, err := Decode("")
	if err != nil {
		t.Fatalf("Decode(\"\") error = %v", err)
	}
	if n.Sign() != 0 {
		t.Fatalf("Decode(\"\") = %v, want 0", n)
	}
}

func TestEncode1023IsLastWordAlone(t *testing.T) {
	want, err := wordlist.WordOf(1023)
	if err != nil {
		t.Fatalf("WordOf(1023) error = %v", err)
	}
	s, err := Encode(big.NewInt(1023))
	if err != nil {
		t.Fatalf("Encode(1023) error = %v", err)
	}
	if s != want {
		t.Fatalf("Encode(1023) = %q, want %q", s, want)
	}
	n, err := Decode(s)
	if err != nil {
		t.Fatalf("Decode(%q) error = %v", s, err)
	}
	if n.Cmp(big.NewInt(1023)) != 0 {
		t.Fatalf("Decode(%q) = %v, want 1023", s, n)
	}
}

func TestRoundTripSmall(t *testing.T) {
	for _, n := range []int64{1, 2, 1024, 1025, 1048576, 123456789} {
		s, err := Encode(big.NewInt(n))
		if err != nil {
			t.Fatalf("Encode(%d) error = %v", n, err)
		}
		got, err := Decode(s)
		if err != nil {
			t.Fatalf("Decode(%q) error = %v", s, err)
		}
		if got.Cmp(big.NewInt(n)) != 0 {
			t.Fatalf("round trip %d: got %v", n, got)
		}
	}
}

func TestRoundTripLarge(t *testing.T) {
	// 2^1000, to exercise the property-test bound from the spec (n up to 2^1000).
	n := new(big.Int).Lsh(big.NewInt(1), 1000)
	s, err := Encode(n)
	if err != nil {
		t.Fatalf("Encode(2^1000) error = %v", err)
	}
	got, err := Decode(s)
	if err != nil {
		t.Fatalf("Decode error = %v", err)
	}
	if got.Cmp(n) != 0 {
		t.Fatalf("round trip 2^1000 failed")
	}
}

func TestDecodeInvalidWord(t *testing.T) {
	_, err := Decode("not a real word sequence")
	if err == nil {
		t.Fatalf("Decode() expected error for invalid word")
	}
}
