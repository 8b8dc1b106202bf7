package bitops

import "testing"

func TestRotl32NoOp(t *testing.T) {
	if got := Rotl32(0x12345678, 0); got != 0x12345678 {
		t.Fatalf("Rotl32(x, 0) = %#x, want %#x", got, uint32(0x12345678))
	}
}

func TestRotr32NoOp(t *testing.T) {
	if got := Rotr32(0x12345678, 0); got != 0x12345678 {
		t.Fatalf("Rotr32(x, 0) = %#x, want %#x", got, uint32(0x12345678))
	}
}

func TestRotl32RoundTrip(t *testing.T) {
	x := uint32(0xdeadbeef)
	for n := uint(0); n < 32; n++ {
		if got := Rotr32(Rotl32(x, n), n); got != x {
			t.Fatalf("Rotr32(Rotl32(x, %d), %d) = %#x, want %#x", n, n, got, x)
		}
	}
}

func TestRotl64RoundTrip(t *testing.T) {
	x := uint64(0x0123456789abcdef)
	for n := uint(0); n < 64; n++ {
		if got := Rotr64(Rotl64(x, n), n); got != x {
			t.Fatalf("Rotr64(Rotl64(x, %d), %d) = %#x, want %#x", n, n, got, x)
		}
	}
}

func TestRotl32KnownValue(t *testing.T) {
	// 0x00000001 rotated left by 1 is 0x00000002.
	if got := Rotl32(1, 1); got != 2 {
		t.Fatalf("Rotl32(1, 1) = %#x, want 2", got)
	}
	// 0x80000000 rotated left by 1 wraps to 0x00000001.
	if got := Rotl32(0x80000000, 1); got != 1 {
		t.Fatalf("Rotl32(0x80000000, 1) = %#x, want 1", got)
	}
}

func TestHexBytes(t *testing.T) {
	got := HexBytes([]byte{0x00, 0xff, 0x1a, 0xb2})
	want := "00ff1ab2"
	if got != want {
		t.Fatalf("HexBytes = %q, want %q", got, want)
	}
}

func TestHexBytesCharset(t *testing.T) {
	b := make([]byte, 256)
	for i := range b {
		b[i] = byte(i)
	}
	for _, c := range HexBytes(b) {
		if !((c >= '0' && c <= '9') || (c >= 'a' && c <= 'f')) {
			t.Fatalf("HexBytes produced out-of-charset rune %q", c)
		}
	}
}
