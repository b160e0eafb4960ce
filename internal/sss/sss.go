// Package sss implements Shamir's Secret Sharing over a prime field: Split
// samples a random polynomial and evaluates it at N points, Combine
// reconstructs the polynomial's value at 0 via Lagrange interpolation. It
// also implements the recovery wrapper (spec.md §4.7) that turns a list of
// mnemonic share strings into the recovered secret mnemonic, composing
// internal/mnemonic, internal/frame, and internal/field.
package sss

import (
	"crypto/rand"
	"fmt"
	"io"
	"math/big"
	"strings"

	"github.com/mrz1836/mnemosss/internal/field"
	"github.com/mrz1836/mnemosss/internal/frame"
	"github.com/mrz1836/mnemosss/internal/mnemonic"
	"github.com/mrz1836/mnemosss/internal/secure"
)

// autoDetectBitLen is the threshold spec.md §9 Open Question 3 resolves:
// a decoded share integer whose bit length exceeds this many bits was
// framed over PLong; otherwise it was framed over PShort.
const autoDetectBitLen = 256

// Point is a single (x, y) evaluation of the secret-carrying polynomial.
type Point struct {
	X int
	Y *big.Int
}

// MaxParties is the largest threshold or share count the frame format can
// carry (x and K are each packed into one byte).
const MaxParties = 255

// uniformBelow draws a uniform value in [0, max) from rng.
func uniformBelow(rng io.Reader, max *big.Int) (*big.Int, error) {
	return rand.Int(rng, max)
}

// splitPoints samples a random degree-(k-1) polynomial over f.P and
// evaluates it at x = 1..n, returning the secret (the constant term) and
// the n evaluation points.
func splitPoints(k, n int, f *field.Field, rng io.Reader) (*big.Int, []Point, error) {
	if k < 2 {
		return nil, nil, ErrThresholdTooSmall
	}
	if k > MaxParties || n > MaxParties {
		return nil, nil, ErrTooManyShares
	}
	if n < k {
		return nil, nil, ErrNotEnoughShares
	}

	secret, err := uniformBelow(rng, f.P)
	if err != nil {
		return nil, nil, fmt.Errorf("sampling secret: %w", err)
	}
	// The secret lives in [1, P) (spec.md §3); resample the unlikely zero draw.
	for secret.Sign() == 0 {
		secret, err = uniformBelow(rng, f.P)
		if err != nil {
			return nil, nil, fmt.Errorf("sampling secret: %w", err)
		}
	}

	coeffs := make([]*big.Int, k)
	coeffs[0] = secret
	for j := 1; j < k; j++ {
		a, aErr := uniformBelow(rng, f.P)
		if aErr != nil {
			return nil, nil, fmt.Errorf("sampling coefficient %d: %w", j, aErr)
		}
		coeffs[j] = a
	}

	points := make([]Point, n)
	for i := 1; i <= n; i++ {
		x := big.NewInt(int64(i))
		points[i-1] = Point{X: i, Y: evalPoly(f, coeffs, x)}
	}

	return secret, points, nil
}

// evalPoly evaluates the polynomial with the given coefficients (lowest
// degree first) at x using Horner's rule, reduced mod f.P.
func evalPoly(f *field.Field, coeffs []*big.Int, x *big.Int) *big.Int {
	val := new(big.Int).Set(coeffs[len(coeffs)-1])
	for i := len(coeffs) - 2; i >= 0; i-- {
		val = f.Add(f.Mul(val, x), coeffs[i])
	}
	return val
}

// combinePoints reconstructs f(0) from distinct points via Lagrange
// interpolation at zero.
func combinePoints(points []Point, f *field.Field) (*big.Int, error) {
	if len(points) < 2 {
		return nil, ErrNotEnoughShares
	}

	seen := make(map[int]struct{}, len(points))
	for _, p := range points {
		if _, dup := seen[p.X]; dup {
			return nil, ErrDuplicateShare
		}
		seen[p.X] = struct{}{}
	}

	secret := big.NewInt(0)
	for i, pi := range points {
		num := big.NewInt(1)
		den := big.NewInt(1)
		xi := big.NewInt(int64(pi.X))

		for j, pj := range points {
			if i == j {
				continue
			}
			xj := big.NewInt(int64(pj.X))
			num = f.Mul(num, f.Sub(big.NewInt(0), xj))
			den = f.Mul(den, f.Sub(xi, xj))
		}

		ratio := f.Div(num, den)
		term := f.Mul(pi.Y, ratio)
		secret = f.Add(secret, term)
	}

	return secret, nil
}

// Split generates a random secret and n shares requiring k of them to
// reconstruct, returning the secret's mnemonic, each share's mnemonic, and
// the secret's bit length. long selects PLong instead of the default
// PShort. rng is the caller-supplied randomness source — production
// callers pass crypto/rand.Reader.
func Split(k, n int, long bool, rng io.Reader) (secretMnemonic string, shareMnemonics []string, secretBitLen int, err error) {
	f := field.Short()
	if long {
		f = field.Long()
	}

	secret, points, err := splitPoints(k, n, f, rng)
	if err != nil {
		return "", nil, 0, err
	}

	// Hold the secret's raw bytes in locked, zero-on-destroy memory for the
	// brief window between sampling and encoding it into its mnemonic form.
	secretBuf := secure.FromSlice(secret.Bytes())
	defer secretBuf.Destroy()

	secretMnemonic, err = mnemonic.Encode(secret)
	if err != nil {
		return "", nil, 0, err
	}

	shareMnemonics = make([]string, len(points))
	for i, p := range points {
		packed, packErr := frame.Pack(p.Y, k, p.X)
		if packErr != nil {
			return "", nil, 0, packErr
		}
		m, encErr := mnemonic.Encode(packed)
		if encErr != nil {
			return "", nil, 0, encErr
		}
		shareMnemonics[i] = m
	}

	return secretMnemonic, shareMnemonics, secret.BitLen(), nil
}

// decodedShare is an unframed share annotated with the prime field it was
// detected to belong to.
type decodedShare struct {
	point Point
	k     int
	field *field.Field
}

// Combine recovers the secret mnemonic from a collection of share
// mnemonics. Decode/unframe failures are wrapped in InvalidShareError
// naming the offending share's position. If fewer shares are supplied than
// the threshold the shares themselves advertise, InsufficientSharesError
// is returned.
func Combine(shares []string) (string, error) {
	decoded := make([]decodedShare, 0, len(shares))
	need := 0

	for i, raw := range shares {
		s := strings.TrimSpace(raw)

		framed, err := mnemonic.Decode(s)
		if err != nil {
			return "", &InvalidShareError{Index: i, Cause: err}
		}

		f := field.Short()
		if framed.BitLen() > autoDetectBitLen {
			f = field.Long()
		}

		y, k, x, err := frame.Unpack(framed)
		if err != nil {
			return "", &InvalidShareError{Index: i, Cause: err}
		}

		if k > need {
			need = k
		}

		decoded = append(decoded, decodedShare{point: Point{X: x, Y: y}, k: k, field: f})
	}

	if len(decoded) < need {
		return "", &InsufficientSharesError{Have: len(decoded), Need: need}
	}

	points := make([]Point, len(decoded))
	for i, d := range decoded {
		points[i] = d.point
	}
	f := decoded[0].field

	secret, err := combinePoints(points, f)
	if err != nil {
		return "", err
	}

	return mnemonic.Encode(secret)
}
