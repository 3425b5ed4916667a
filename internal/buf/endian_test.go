package buf

import "testing"

func TestEndianHelpers(t *testing.T) {
	data := []byte{0x01, 0x23, 0x45, 0x67, 0x89, 0xab, 0xcd, 0xef}

	if got := U16LE(data); got != 0x2301 {
		t.Fatalf("U16LE = 0x%x, want 0x2301", got)
	}
	if got := U32LE(data); got != 0x67452301 {
		t.Fatalf("U32LE = 0x%x, want 0x67452301", got)
	}
	if got := U64LE(data); got != 0xefcdab8967452301 {
		t.Fatalf("U64LE = 0x%x, want 0xefcdab8967452301", got)
	}

	short := []byte{0xAA}
	if U16LE(short) != 0 || U32LE(short) != 0 || U64LE(short) != 0 {
		t.Fatalf("short reads should return 0")
	}
}

func TestAppendHelpers(t *testing.T) {
	var b []byte
	b = AppendU16LE(b, 0x2301)
	b = AppendU32LE(b, 0x67452301)
	b = AppendU64LE(b, 0xefcdab8967452301)

	if len(b) != 14 {
		t.Fatalf("len = %d, want 14", len(b))
	}
	if got := U16LE(b); got != 0x2301 {
		t.Fatalf("U16LE after append = 0x%x", got)
	}
	if got := U32LE(b[2:]); got != 0x67452301 {
		t.Fatalf("U32LE after append = 0x%x", got)
	}
	if got := U64LE(b[6:]); got != 0xefcdab8967452301 {
		t.Fatalf("U64LE after append = 0x%x", got)
	}
}
