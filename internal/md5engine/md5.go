// Package md5engine implements the MD5 compression function (RFC
// 1321): 4 rounds of 16 steps over 512-bit blocks.
package md5engine

import (
	"github.com/classichash/classichash/internal/bitops"
	"github.com/classichash/classichash/internal/diag"
)

// Size is the MD5 digest size in bytes.
const Size = 16

// BlockSize is the MD5 block size in bytes.
const BlockSize = 64

const (
	init0 = 0x67452301
	init1 = 0xefcdab89
	init2 = 0x98badcfe
	init3 = 0x10325476
)

// t holds T[i] = floor(|sin(i+1)| * 2^32) for i = 0..63, the RFC 1321
// Appendix A constants, embedded as a literal table rather than
// recomputed from sin() at run time.
var t = [64]uint32{
	0xd76aa478, 0xe8c7b756, 0x242070db, 0xc1bdceee,
	0xf57c0faf, 0x4787c62a, 0xa8304613, 0xfd469501,
	0x698098d8, 0x8b44f7af, 0xffff5bb1, 0x895cd7be,
	0x6b901122, 0xfd987193, 0xa679438e, 0x49b40821,
	0xf61e2562, 0xc040b340, 0x265e5a51, 0xe9b6c7aa,
	0xd62f105d, 0x02441453, 0xd8a1e681, 0xe7d3fbc8,
	0x21e1cde6, 0xc33707d6, 0xf4d50d87, 0x455a14ed,
	0xa9e3e905, 0xfcefa3f8, 0x676f02d9, 0x8d2a4c8a,
	0xfffa3942, 0x8771f681, 0x6d9d6122, 0xfde5380c,
	0xa4beea44, 0x4bdecfa9, 0xf6bb4b60, 0xbebfbc70,
	0x289b7ec6, 0xeaa127fa, 0xd4ef3085, 0x04881d05,
	0xd9d4d039, 0xe6db99e5, 0x1fa27cf8, 0xc4ac5665,
	0xf4292244, 0x432aff97, 0xab9423a7, 0xfc93a039,
	0x655b59c3, 0x8f0ccc92, 0xffeff47d, 0x85845dd1,
	0x6fa87e4f, 0xfe2ce6e0, 0xa3014314, 0x4e0811a1,
	0xf7537e82, 0xbd3af235, 0x2ad7d2bb, 0xeb86d391,
}

var shift = [4][4]uint{
	{7, 12, 17, 22},
	{5, 9, 14, 20},
	{4, 11, 16, 23},
	{6, 10, 15, 21},
}

func f(x, y, z uint32) uint32 { return (x & y) | (^x & z) }
func g(x, y, z uint32) uint32 { return (x & z) | (y & ^z) }
func h(x, y, z uint32) uint32 { return x ^ y ^ z }
func i(x, y, z uint32) uint32 { return y ^ (x | ^z) }

// gIndex, hIndex, iIndex give the message-word index schedule for
// rounds 2, 3, 4 (round 1 uses k directly).
func gIndex(k int) int { return (5*k + 1) % 16 }
func hIndex(k int) int { return (3*k + 5) % 16 }
func iIndex(k int) int { return (7 * k) % 16 }

// Sum computes the MD5 digest of data and returns the raw 16-byte
// result.
func Sum(data []byte) [Size]byte {
	state := [4]uint32{init0, init1, init2, init3}
	padded := pad(data)

	for off := 0; off < len(padded); off += BlockSize {
		block(&state, padded[off:off+BlockSize])
	}

	var digest [Size]byte
	for idx, s := range state {
		digest[idx*4] = byte(s)
		digest[idx*4+1] = byte(s >> 8)
		digest[idx*4+2] = byte(s >> 16)
		digest[idx*4+3] = byte(s >> 24)
	}
	return digest
}

func block(state *[4]uint32, chunk []byte) {
	diag.Check("md5", len(chunk) == BlockSize, "block length %d != %d", len(chunk), BlockSize)

	var m [16]uint32
	for idx := 0; idx < 16; idx++ {
		m[idx] = uint32(chunk[idx*4]) | uint32(chunk[idx*4+1])<<8 |
			uint32(chunk[idx*4+2])<<16 | uint32(chunk[idx*4+3])<<24
	}

	a, b, c, d := state[0], state[1], state[2], state[3]

	for k := 0; k < 64; k++ {
		var phi, mk uint32
		var s uint
		switch {
		case k < 16:
			phi, mk, s = f(b, c, d), m[k], shift[0][k%4]
		case k < 32:
			phi, mk, s = g(b, c, d), m[gIndex(k)], shift[1][k%4]
		case k < 48:
			phi, mk, s = h(b, c, d), m[hIndex(k)], shift[2][k%4]
		default:
			phi, mk, s = i(b, c, d), m[iIndex(k)], shift[3][k%4]
		}
		sum := a + phi + mk + t[k]
		newB := b + bitops.Rotl32(sum, s)
		a, b, c, d = d, newB, b, c
	}

	state[0] += a
	state[1] += b
	state[2] += c
	state[3] += d
}

// pad appends RFC 1321 padding: a 0x80 byte, zero bytes until the
// length mod 64 equals 56, then the bit length as a 64-bit
// little-endian integer.
func pad(data []byte) []byte {
	bitLen := uint64(len(data)) * 8
	padded := make([]byte, len(data), len(data)+BlockSize+8)
	copy(padded, data)
	padded = append(padded, 0x80)
	for len(padded)%BlockSize != 56 {
		padded = append(padded, 0)
	}
	for idx := 0; idx < 8; idx++ {
		padded = append(padded, byte(bitLen>>(8*uint(idx))))
	}
	diag.Check("md5", len(padded)%BlockSize == 0,
		"padded length %d is not a multiple of %d", len(padded), BlockSize)
	return padded
}
