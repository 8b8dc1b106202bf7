package sha2engine32

import (
	stdsha256 "crypto/sha256"
	"encoding/hex"
	"testing"

	"github.com/stretchr/testify/require"
)

func serialize(words []uint32) []byte {
	out := make([]byte, len(words)*4)
	for i, w := range words {
		out[i*4] = byte(w >> 24)
		out[i*4+1] = byte(w >> 16)
		out[i*4+2] = byte(w >> 8)
		out[i*4+3] = byte(w)
	}
	return out
}

func TestSHA256Vectors(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{"", "e3b0c44298fc1c149afbf4c8996fb92427ae41e4649b934ca495991b7852b855"},
		{"abc", "ba7816bf8f01cfea414140de5dae2223b00361a396177a9cb410ff61f20015ad"},
	}
	for _, c := range cases {
		state := Sum([]byte(c.in), IV256)
		require.Equal(t, c.want, hex.EncodeToString(serialize(state[:])), "SHA256(%q)", c.in)
	}
}

func TestSHA224Empty(t *testing.T) {
	state := Sum(nil, IV224)
	got := hex.EncodeToString(serialize(state[:7]))
	require.Equal(t, "d14a028c2a3a2bc9476102bb288234c415a2b01f828ea62ac5b3e42f", got)
}

func TestSHA256MatchesStdlib(t *testing.T) {
	inputs := [][]byte{
		nil,
		{0x00},
		[]byte("abc"),
		make([]byte, 55),
		make([]byte, 56),
		make([]byte, 64),
		make([]byte, 1000),
	}
	for _, in := range inputs {
		state := Sum(in, IV256)
		got := serialize(state[:])
		want := stdsha256.Sum256(in)
		require.Equal(t, want[:], got, "SHA256 differs from stdlib for len=%d", len(in))
	}
}

func TestSHA224MatchesStdlib(t *testing.T) {
	inputs := [][]byte{nil, []byte("abc"), make([]byte, 56), make([]byte, 1000)}
	for _, in := range inputs {
		state := Sum(in, IV224)
		got := serialize(state[:7])
		want := stdsha256.Sum224(in)
		require.Equal(t, want[:], got, "SHA224 differs from stdlib for len=%d", len(in))
	}
}
