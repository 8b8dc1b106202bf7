// Package md2engine implements the MD2 message digest (RFC 1319): a
// 16-byte byte-oriented design with a substitution table and a
// running checksum, unlike every other algorithm in classichash.
package md2engine

import "github.com/classichash/classichash/internal/diag"

// Size is the MD2 digest size in bytes.
const Size = 16

// blockSize is MD2's block size in bytes.
const blockSize = 16

// sbox is the 256-entry pi-derived substitution table from RFC 1319
// Appendix A.
var sbox = [256]byte{
	41, 46, 67, 201, 162, 216, 124, 1, 61, 54, 84, 161, 236, 240, 6,
	19, 98, 167, 5, 243, 192, 199, 115, 140, 152, 147, 43, 217, 188,
	76, 130, 202, 30, 155, 87, 60, 253, 212, 224, 22, 103, 66, 111, 24,
	138, 23, 229, 18, 190, 78, 196, 214, 218, 158, 222, 73, 160, 251,
	245, 142, 187, 47, 238, 122, 169, 104, 121, 145, 21, 178, 7, 63,
	148, 194, 16, 137, 11, 34, 95, 33, 128, 127, 93, 154, 90, 144, 50,
	39, 53, 62, 204, 231, 191, 247, 151, 3, 255, 25, 48, 179, 72, 165,
	181, 209, 215, 94, 146, 42, 172, 86, 170, 198, 79, 184, 56, 210,
	150, 164, 125, 182, 118, 252, 107, 226, 156, 116, 4, 241, 69, 157,
	112, 89, 100, 113, 135, 32, 134, 91, 207, 101, 230, 45, 168, 2, 27,
	96, 37, 173, 174, 176, 185, 246, 28, 70, 97, 105, 52, 64, 126, 15,
	85, 71, 163, 35, 221, 81, 175, 58, 195, 92, 249, 206, 186, 197,
	234, 38, 44, 83, 13, 110, 133, 40, 132, 9, 211, 223, 205, 244, 65,
	129, 77, 82, 106, 220, 55, 200, 108, 193, 171, 250, 36, 225, 123,
	8, 12, 189, 177, 74, 120, 136, 149, 139, 227, 99, 232, 109, 233,
	203, 213, 254, 59, 0, 29, 57, 242, 239, 183, 14, 102, 88, 208, 228,
	166, 119, 114, 248, 235, 117, 75, 10, 49, 68, 80, 180, 143, 237,
	31, 26, 219, 153, 141, 51, 159, 17, 131, 20,
}

// Sum computes the MD2 digest of data and returns the raw 16-byte
// result. Callers render it to hex.
func Sum(data []byte) [Size]byte {
	padded := pad(data)
	checksum := computeChecksum(padded)
	padded = append(padded, checksum[:]...)

	var x [48]byte
	for off := 0; off < len(padded); off += blockSize {
		block := padded[off : off+blockSize]
		copy(x[16:32], block)
		for i := 0; i < 16; i++ {
			x[32+i] = x[i] ^ x[16+i]
		}

		var t byte
		for j := 0; j < 18; j++ {
			for k := 0; k < 48; k++ {
				x[k] ^= sbox[t]
				t = x[k]
			}
			t = byte(int(t) + j)
		}
	}

	var digest [Size]byte
	copy(digest[:], x[:16])
	return digest
}

// pad appends RFC 1319 padding: r copies of the byte r, where
// r = 16 - (len(data) mod 16). Padding is always in [1, 16] bytes.
func pad(data []byte) []byte {
	r := blockSize - len(data)%blockSize
	padded := make([]byte, 0, len(data)+r)
	padded = append(padded, data...)
	for i := 0; i < r; i++ {
		padded = append(padded, byte(r))
	}
	diag.Check("md2", len(padded)%blockSize == 0,
		"padded length %d is not a multiple of the MD2 block size", len(padded))
	return padded
}

// computeChecksum runs RFC 1319's checksum pass over the padded
// message, carrying a one-byte register L across every 16-byte block.
func computeChecksum(padded []byte) [16]byte {
	var c [16]byte
	var l byte
	for off := 0; off < len(padded); off += blockSize {
		block := padded[off : off+blockSize]
		for i := 0; i < blockSize; i++ {
			c[i] ^= sbox[block[i]^l]
			l = c[i]
		}
	}
	return c
}
