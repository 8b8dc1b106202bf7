package md4engine

import (
	"encoding/hex"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestSumVectors(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{"", "31d6cfe0d16ae931b73c59d7e0c089c0"},
		{"a", "bde52cb31de33e46245e05fbdbd6fb24"},
		{"abc", "a448017aaf21d8525fc10ae87aa6729d"},
		{"message digest", "d9130a8164549fe818874806e1c7014b"},
	}
	for _, c := range cases {
		sum := Sum([]byte(c.in))
		require.Equal(t, c.want, hex.EncodeToString(sum[:]), "MD4(%q)", c.in)
	}
}

func TestSumBlockBoundary(t *testing.T) {
	// 55 bytes: padding (0x80 + zero bytes + 8-byte length) fits in
	// the same 64-byte block. 56 bytes: it spills into a second block.
	for _, n := range []int{55, 56} {
		in := make([]byte, n)
		sum := Sum(in)
		require.Len(t, sum, Size)
	}
}
