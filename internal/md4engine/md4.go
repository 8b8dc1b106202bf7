// Package md4engine implements the MD4 compression function (RFC
// 1320): 3 rounds of 16 steps over 512-bit blocks.
package md4engine

import (
	"github.com/classichash/classichash/internal/bitops"
	"github.com/classichash/classichash/internal/diag"
)

// Size is the MD4 digest size in bytes.
const Size = 16

// BlockSize is the MD4 block size in bytes.
const BlockSize = 64

const (
	init0 = 0x67452301
	init1 = 0xefcdab89
	init2 = 0x98badcfe
	init3 = 0x10325476

	round2Const = 0x5a827999
	round3Const = 0x6ed9eba1
)

var round2Index = [16]int{0, 4, 8, 12, 1, 5, 9, 13, 2, 6, 10, 14, 3, 7, 11, 15}
var round3Index = [16]int{0, 8, 4, 12, 2, 10, 6, 14, 1, 9, 5, 13, 3, 11, 7, 15}

var round1Shift = [4]uint{3, 7, 11, 19}
var round2Shift = [4]uint{3, 5, 9, 13}
var round3Shift = [4]uint{3, 9, 11, 15}

func f(x, y, z uint32) uint32 { return (x & y) | (^x & z) }
func g(x, y, z uint32) uint32 { return (x & y) | (x & z) | (y & z) }
func h(x, y, z uint32) uint32 { return x ^ y ^ z }

// Sum computes the MD4 digest of data and returns the raw 16-byte
// result.
func Sum(data []byte) [Size]byte {
	state := [4]uint32{init0, init1, init2, init3}
	padded := pad(data)

	for off := 0; off < len(padded); off += BlockSize {
		block(&state, padded[off:off+BlockSize])
	}

	var digest [Size]byte
	for i, s := range state {
		digest[i*4] = byte(s)
		digest[i*4+1] = byte(s >> 8)
		digest[i*4+2] = byte(s >> 16)
		digest[i*4+3] = byte(s >> 24)
	}
	return digest
}

func block(state *[4]uint32, chunk []byte) {
	diag.Check("md4", len(chunk) == BlockSize, "block length %d != %d", len(chunk), BlockSize)

	var m [16]uint32
	for i := 0; i < 16; i++ {
		m[i] = uint32(chunk[i*4]) | uint32(chunk[i*4+1])<<8 |
			uint32(chunk[i*4+2])<<16 | uint32(chunk[i*4+3])<<24
	}

	// v holds the working variables (a,b,c,d); active is the index
	// of the variable due for its next update. Per RFC 1320 the
	// update order is a,d,c,b,a,d,c,b,... — index 0,3,2,1 repeating,
	// and each update of v[j] mixes the other three in the order
	// they appear walking forward from j, exactly as the reference
	// FF/GG/HH macros apply when chained a,d,c,b.
	v := [4]uint32{state[0], state[1], state[2], state[3]}
	active := 0

	apply := func(mk, k uint32, s uint, phi func(x, y, z uint32) uint32) {
		j := active
		x, y, z := v[(j+1)%4], v[(j+2)%4], v[(j+3)%4]
		v[j] = bitops.Rotl32(v[j]+phi(x, y, z)+mk+k, s)
		active = (active + 3) % 4
	}

	for k := 0; k < 16; k++ {
		apply(m[k], 0, round1Shift[k%4], f)
	}
	for k := 0; k < 16; k++ {
		idx := round2Index[k]
		apply(m[idx], round2Const, round2Shift[k%4], g)
	}
	for k := 0; k < 16; k++ {
		idx := round3Index[k]
		apply(m[idx], round3Const, round3Shift[k%4], h)
	}

	state[0] += v[0]
	state[1] += v[1]
	state[2] += v[2]
	state[3] += v[3]
}

// pad appends RFC 1320 padding: a 0x80 byte, zero bytes until the
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
	for i := 0; i < 8; i++ {
		padded = append(padded, byte(bitLen>>(8*uint(i))))
	}
	diag.Check("md4", len(padded)%BlockSize == 0,
		"padded length %d is not a multiple of %d", len(padded), BlockSize)
	return padded
}
