// Package frame packs a share's raw point value together with its
// threshold and index into a single integer, protected by a CRC-32
// checksum, and unpacks it back. Packing is pure bit-shift concatenation;
// see shiftLeft/shiftRight.
package frame

import (
	"hash/crc32"
	"math/big"
)

// shiftLeft shifts n left by bits and adds data into the vacated low bits.
// It fails with an OverflowError if data does not fit in bits bits — the
// strict `<` form (spec.md §9 Open Question 4): a value equal to
// (1<<bits)-1 is accepted, only a value that would not fit is rejected.
func shiftLeft(n *big.Int, bits uint, data uint64) (*big.Int, error) {
	max := (uint64(1) << bits) - 1
	if max < data {
		return nil, &OverflowError{Bits: bits, Value: data}
	}
	result := new(big.Int).Lsh(n, bits)
	result.Or(result, new(big.Int).SetUint64(data))
	return result, nil
}

// shiftRight splits n into the quotient (n >> bits) and the low bits bits
// of n (the data that was previously shifted in).
func shiftRight(n *big.Int, bits uint) (quotient *big.Int, data uint64) {
	mask := new(big.Int).Sub(new(big.Int).Lsh(big.NewInt(1), bits), big.NewInt(1))
	low := new(big.Int).And(n, mask)
	quotient = new(big.Int).Rsh(n, bits)
	return quotient, low.Uint64()
}

// crcBytes reproduces the source's exact (under-specified) CRC input: the
// big-endian bytes of n truncated/sized to floor(log2(n)) BYTES — not the
// minimal byte encoding of n. This is a mild under-allocation in the
// general case (spec.md §9 Open Question 1) but is applied identically on
// pack and unpack, so the round-trip invariant still holds. n must be >= 1
// (the frame's y >= 1 domain guarantees this for every real share/secret).
func crcBytes(n *big.Int) []byte {
	byteLen := n.BitLen() - 1
	if byteLen < 1 {
		byteLen = 1
	}

	minimal := n.Bytes()
	if len(minimal) > byteLen {
		// n does not fit in byteLen bytes. The source's to_bytes() would
		// raise OverflowError here; truncating the high byte keeps pack
		// and unpack bit-exact and deterministic instead of panicking.
		minimal = minimal[len(minimal)-byteLen:]
	}

	buf := make([]byte, byteLen)
	copy(buf[byteLen-len(minimal):], minimal)
	return buf
}

func checksum(n *big.Int) uint32 {
	return crc32.ChecksumIEEE(crcBytes(n))
}

// Pack combines (y, k, x) into one integer:
//
//	p1 = (y << 8) | k
//	p2 = (p1 << 8) | x
//	F  = (p2 << 32) | crc32(crcBytes(p2))
func Pack(y *big.Int, k, x int) (*big.Int, error) {
	p1, err := shiftLeft(y, 8, uint64(k))
	if err != nil {
		return nil, err
	}
	p2, err := shiftLeft(p1, 8, uint64(x))
	if err != nil {
		return nil, err
	}
	crc := checksum(p2)
	return shiftLeft(p2, 32, uint64(crc))
}

// Unpack splits a framed integer back into (y, k, x), verifying the
// checksum first. ErrChecksumMismatch is returned if the recomputed CRC-32
// disagrees with the one carried in the frame.
func Unpack(f *big.Int) (y *big.Int, k, x int, err error) {
	unpadded, crc := shiftRight(f, 32)

	expect := checksum(unpadded)
	if uint64(expect) != crc {
		return nil, 0, 0, ErrChecksumMismatch
	}

	afterX, xVal := shiftRight(unpadded, 8)
	yVal, kVal := shiftRight(afterX, 8)

	return yVal, int(kVal), int(xVal), nil
}
