// Package classichash implements the classical Merkle-Damgard hash
// family from their published standards: MD2 (RFC 1319), MD4 (RFC
// 1320), MD5 (RFC 1321), SHA-0 (FIPS 180, 1993), SHA-1, SHA-224,
// SHA-256, SHA-384, SHA-512, SHA-512/224, and SHA-512/256 (FIPS
// 180-4).
//
// Every function has the same shape: arbitrary-length bytes in,
// lowercase hexadecimal digest out. There is no streaming API, no
// HMAC or KDF construction layered on top, and no command-line
// driver. The functions are total: there is no error return, because
// there is no byte sequence that is invalid input to a
// Merkle-Damgard hash.
package classichash

import (
	"github.com/classichash/classichash/internal/bitops"
	"github.com/classichash/classichash/internal/md2engine"
	"github.com/classichash/classichash/internal/md4engine"
	"github.com/classichash/classichash/internal/md5engine"
	"github.com/classichash/classichash/internal/sha1engine"
	"github.com/classichash/classichash/internal/sha2engine32"
	"github.com/classichash/classichash/internal/sha2engine64"
)

// MD2 returns the lowercase hex MD2 digest of data (RFC 1319, 32
// hex chars).
func MD2(data []byte) string {
	sum := md2engine.Sum(data)
	return bitops.HexBytes(sum[:])
}

// MD4 returns the lowercase hex MD4 digest of data (RFC 1320, 32
// hex chars).
func MD4(data []byte) string {
	sum := md4engine.Sum(data)
	return bitops.HexBytes(sum[:])
}

// MD5 returns the lowercase hex MD5 digest of data (RFC 1321, 32
// hex chars).
func MD5(data []byte) string {
	sum := md5engine.Sum(data)
	return bitops.HexBytes(sum[:])
}

// SHA0 returns the lowercase hex SHA-0 digest of data (FIPS 180,
// 1993, 40 hex chars). SHA-0 is the original, withdrawn-and-replaced
// revision of SHA-1; it exists here for standards completeness, not
// because it is fit for any use.
func SHA0(data []byte) string {
	sum := sha1engine.Sum(data, true)
	return bitops.HexBytes(sum[:])
}

// SHA1 returns the lowercase hex SHA-1 digest of data (FIPS 180-4,
// 40 hex chars).
func SHA1(data []byte) string {
	sum := sha1engine.Sum(data, false)
	return bitops.HexBytes(sum[:])
}

// SHA224 returns the lowercase hex SHA-224 digest of data (FIPS
// 180-4, 56 hex chars): the first 7 of SHA-256's 8 output words.
func SHA224(data []byte) string {
	state := sha2engine32.Sum(data, sha2engine32.IV224)
	return bitops.HexBytes(serialize32(state[:7]))
}

// SHA256 returns the lowercase hex SHA-256 digest of data (FIPS
// 180-4, 64 hex chars).
func SHA256(data []byte) string {
	state := sha2engine32.Sum(data, sha2engine32.IV256)
	return bitops.HexBytes(serialize32(state[:]))
}

// SHA384 returns the lowercase hex SHA-384 digest of data (FIPS
// 180-4, 96 hex chars): the first 6 of SHA-512's 8 output words.
func SHA384(data []byte) string {
	state := sha2engine64.Sum(data, sha2engine64.IV384)
	return bitops.HexBytes(serialize64(state[:6]))
}

// SHA512 returns the lowercase hex SHA-512 digest of data (FIPS
// 180-4, 128 hex chars).
func SHA512(data []byte) string {
	state := sha2engine64.Sum(data, sha2engine64.IV512)
	return bitops.HexBytes(serialize64(state[:]))
}

// SHA512_224 returns the lowercase hex SHA-512/224 digest of data
// (FIPS 180-4, 56 hex chars): the big-endian serialization of the
// first 4 words of the SHA-512/224-seeded state, truncated to 28
// bytes.
func SHA512_224(data []byte) string {
	state := sha2engine64.Sum(data, sha2engine64.IV512_224)
	return bitops.HexBytes(serialize64(state[:4])[:28])
}

// SHA512_256 returns the lowercase hex SHA-512/256 digest of data
// (FIPS 180-4, 64 hex chars): the first 4 words of the
// SHA-512/256-seeded state.
func SHA512_256(data []byte) string {
	state := sha2engine64.Sum(data, sha2engine64.IV512_256)
	return bitops.HexBytes(serialize64(state[:4]))
}

// serialize32 renders each 32-bit word big-endian, in order, matching
// SHA-family output byte order.
func serialize32(words []uint32) []byte {
	out := make([]byte, len(words)*4)
	for i, w := range words {
		out[i*4] = byte(w >> 24)
		out[i*4+1] = byte(w >> 16)
		out[i*4+2] = byte(w >> 8)
		out[i*4+3] = byte(w)
	}
	return out
}

// serialize64 renders each 64-bit word big-endian, in order.
func serialize64(words []uint64) []byte {
	out := make([]byte, len(words)*8)
	for i, w := range words {
		out[i*8] = byte(w >> 56)
		out[i*8+1] = byte(w >> 48)
		out[i*8+2] = byte(w >> 40)
		out[i*8+3] = byte(w >> 32)
		out[i*8+4] = byte(w >> 24)
		out[i*8+5] = byte(w >> 16)
		out[i*8+6] = byte(w >> 8)
		out[i*8+7] = byte(w)
	}
	return out
}
