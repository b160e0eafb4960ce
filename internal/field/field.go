// Package field implements modular arithmetic over the two fixed primes
// the engine operates under, and the extended-Euclidean modular inverse
// Combine's Lagrange interpolation needs.
package field

import "math/big"

// Field wraps a prime modulus and offers the arithmetic primitives used by
// internal/sss: addition, subtraction, multiplication, and inverse, all
// reduced into the canonical residue [0, P).
type Field struct {
	P *big.Int
}

// PShort is the 12th Mersenne prime, 2^127 - 1. It is the default prime for
// Split and the one auto-detected by Combine when the decoded share
// integer's bit length does not exceed 256 (spec.md §3/§9).
var PShort = mersenne(127)

// PLong is the 13th Mersenne prime, 2^521 - 1. Selected by the caller's
// "long" flag during Split and auto-detected during Combine when the
// decoded share integer's bit length exceeds 256.
var PLong = mersenne(521)

func mersenne(exponent uint) *big.Int {
	p := new(big.Int).Lsh(big.NewInt(1), exponent)
	return p.Sub(p, big.NewInt(1))
}

// New returns a Field over the given prime modulus.
func New(p *big.Int) *Field {
	return &Field{P: p}
}

// Short returns the field over PShort.
func Short() *Field { return New(PShort) }

// Long returns the field over PLong.
func Long() *Field { return New(PLong) }

// reduce returns n mod P as a canonical residue in [0, P).
func (f *Field) reduce(n *big.Int) *big.Int {
	r := new(big.Int).Mod(n, f.P)
	if r.Sign() < 0 {
		r.Add(r, f.P)
	}
	return r
}

// Add returns (a + b) mod P.
func (f *Field) Add(a, b *big.Int) *big.Int {
	return f.reduce(new(big.Int).Add(a, b))
}

// Sub returns (a - b) mod P.
func (f *Field) Sub(a, b *big.Int) *big.Int {
	return f.reduce(new(big.Int).Sub(a, b))
}

// Mul returns (a * b) mod P.
func (f *Field) Mul(a, b *big.Int) *big.Int {
	return f.reduce(new(big.Int).Mul(a, b))
}

// Inverse returns the modular multiplicative inverse of a mod P, computed
// via the extended Euclidean algorithm.
func (f *Field) Inverse(a *big.Int) *big.Int {
	return f.reduce(new(big.Int).ModInverse(a, f.P))
}

// Div returns (a * b^-1) mod P.
func (f *Field) Div(a, b *big.Int) *big.Int {
	return f.Mul(a, f.Inverse(b))
}
