// Package sha2engine32 implements the shared SHA-224/SHA-256
// compression function (FIPS 180-4): 64 steps over 512-bit blocks.
// The two algorithms differ only in IV and output truncation, so one
// engine serves both, parameterized by IV.
package sha2engine32

import (
	"github.com/classichash/classichash/internal/bitops"
	"github.com/classichash/classichash/internal/diag"
)

// BlockSize is the SHA-224/SHA-256 block size in bytes.
const BlockSize = 64

// IV256 and IV224 are the published FIPS 180-4 initialization
// vectors — the first 32 bits of the fractional parts of the square
// roots of the first 8 (SHA-256) or 9th-16th (SHA-224) primes,
// embedded as literal constants rather than derived from
// floating-point square roots at run time.
var IV256 = [8]uint32{
	0x6a09e667, 0xbb67ae85, 0x3c6ef372, 0xa54ff53a,
	0x510e527f, 0x9b05688c, 0x1f83d9ab, 0x5be0cd19,
}

var IV224 = [8]uint32{
	0xc1059ed8, 0x367cd507, 0x3070dd17, 0xf70e5939,
	0xffc00b31, 0x68581511, 0x64f98fa7, 0xbefa4fa4,
}

// k is the FIPS 180-4 round-constant table: the first 32 bits of the
// fractional parts of the cube roots of the first 64 primes.
var k = [64]uint32{
	0x428a2f98, 0x71374491, 0xb5c0fbcf, 0xe9b5dba5,
	0x3956c25b, 0x59f111f1, 0x923f82a4, 0xab1c5ed5,
	0xd807aa98, 0x12835b01, 0x243185be, 0x550c7dc3,
	0x72be5d74, 0x80deb1fe, 0x9bdc06a7, 0xc19bf174,
	0xe49b69c1, 0xefbe4786, 0x0fc19dc6, 0x240ca1cc,
	0x2de92c6f, 0x4a7484aa, 0x5cb0a9dc, 0x76f988da,
	0x983e5152, 0xa831c66d, 0xb00327c8, 0xbf597fc7,
	0xc6e00bf3, 0xd5a79147, 0x06ca6351, 0x14292967,
	0x27b70a85, 0x2e1b2138, 0x4d2c6dfc, 0x53380d13,
	0x650a7354, 0x766a0abb, 0x81c2c92e, 0x92722c85,
	0xa2bfe8a1, 0xa81a664b, 0xc24b8b70, 0xc76c51a3,
	0xd192e819, 0xd6990624, 0xf40e3585, 0x106aa070,
	0x19a4c116, 0x1e376c08, 0x2748774c, 0x34b0bcb5,
	0x391c0cb3, 0x4ed8aa4a, 0x5b9cca4f, 0x682e6ff3,
	0x748f82ee, 0x78a5636f, 0x84c87814, 0x8cc70208,
	0x90befffa, 0xa4506ceb, 0xbef9a3f7, 0xc67178f2,
}

func bigSigma0(x uint32) uint32 {
	return bitops.Rotr32(x, 2) ^ bitops.Rotr32(x, 13) ^ bitops.Rotr32(x, 22)
}

func bigSigma1(x uint32) uint32 {
	return bitops.Rotr32(x, 6) ^ bitops.Rotr32(x, 11) ^ bitops.Rotr32(x, 25)
}

func smallSigma0(x uint32) uint32 {
	return bitops.Rotr32(x, 7) ^ bitops.Rotr32(x, 18) ^ (x >> 3)
}

func smallSigma1(x uint32) uint32 {
	return bitops.Rotr32(x, 17) ^ bitops.Rotr32(x, 19) ^ (x >> 10)
}

func ch(x, y, z uint32) uint32  { return (x & y) ^ (^x & z) }
func maj(x, y, z uint32) uint32 { return (x & y) ^ (x & z) ^ (y & z) }

// Sum computes the digest of data seeded with iv, and returns the
// full 8-word (32-byte) state. Callers truncate to 28 bytes for
// SHA-224 or serialize all 32 for SHA-256.
func Sum(data []byte, iv [8]uint32) [8]uint32 {
	state := iv
	padded := pad(data)

	for off := 0; off < len(padded); off += BlockSize {
		block(&state, padded[off:off+BlockSize])
	}
	return state
}

func block(state *[8]uint32, chunk []byte) {
	diag.Check("sha2-32", len(chunk) == BlockSize, "block length %d != %d", len(chunk), BlockSize)

	var w [64]uint32
	for i := 0; i < 16; i++ {
		w[i] = uint32(chunk[i*4])<<24 | uint32(chunk[i*4+1])<<16 |
			uint32(chunk[i*4+2])<<8 | uint32(chunk[i*4+3])
	}
	for t := 16; t < 64; t++ {
		w[t] = smallSigma1(w[t-2]) + w[t-7] + smallSigma0(w[t-15]) + w[t-16]
	}

	a, b, c, d, e, f, g, h := state[0], state[1], state[2], state[3], state[4], state[5], state[6], state[7]

	for t := 0; t < 64; t++ {
		t1 := h + bigSigma1(e) + ch(e, f, g) + k[t] + w[t]
		t2 := bigSigma0(a) + maj(a, b, c)
		h, g, f, e, d, c, b, a = g, f, e, d+t1, c, b, a, t1+t2
	}

	state[0] += a
	state[1] += b
	state[2] += c
	state[3] += d
	state[4] += e
	state[5] += f
	state[6] += g
	state[7] += h
}

// pad appends SHA-family padding identical in shape to SHA-0/SHA-1's:
// 0x80, zero bytes to 56 mod 64, then the 64-bit big-endian bit
// length.
func pad(data []byte) []byte {
	bitLen := uint64(len(data)) * 8
	padded := make([]byte, len(data), len(data)+BlockSize+8)
	copy(padded, data)
	padded = append(padded, 0x80)
	for len(padded)%BlockSize != 56 {
		padded = append(padded, 0)
	}
	for i := 7; i >= 0; i-- {
		padded = append(padded, byte(bitLen>>(8*uint(i))))
	}
	diag.Check("sha2-32", len(padded)%BlockSize == 0,
		"padded length %d is not a multiple of %d", len(padded), BlockSize)
	return padded
}
