package codec

import (
	"bytes"
	"testing"
)

func TestCompactSizeRoundTrip(t *testing.T) {
	cases := []uint64{0, 1, 0xFC, 0xFD, 0xFE, 0xFFFF, 0x10000, 0xFFFFFFFF, 0x100000000, 1 << 63}
	for _, n := range cases {
		w := NewWriter()
		w.CompactSize(n)
		r := NewReader(w.Finish())
		got, err := r.CompactSize()
		if err != nil {
			t.Fatalf("CompactSize(%d): unexpected error: %v", n, err)
		}
		if got != n {
			t.Fatalf("CompactSize(%d): got %d", n, got)
		}
		if r.Remaining() != 0 {
			t.Fatalf("CompactSize(%d): %d bytes left over", n, r.Remaining())
		}
	}
}

func TestCompactSizeEncodingLength(t *testing.T) {
	w := NewWriter()
	w.CompactSize(0xFC)
	if len(w.Finish()) != 1 {
		t.Fatalf("0xFC should encode in 1 byte")
	}

	w = NewWriter()
	w.CompactSize(0xFD)
	if len(w.Finish()) != 3 {
		t.Fatalf("0xFD should encode in 3 bytes")
	}

	w = NewWriter()
	w.CompactSize(0x10000)
	if len(w.Finish()) != 5 {
		t.Fatalf("0x10000 should encode in 5 bytes")
	}

	w = NewWriter()
	w.CompactSize(0x100000000)
	if len(w.Finish()) != 9 {
		t.Fatalf("0x100000000 should encode in 9 bytes")
	}
}

func TestVarBytesRoundTrip(t *testing.T) {
	payload := bytes.Repeat([]byte{0xAB}, 300)
	w := NewWriter()
	w.VarBytes(payload)
	r := NewReader(w.Finish())
	got, err := r.VarBytes()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !bytes.Equal(got, payload) {
		t.Fatalf("round trip mismatch")
	}
}

func TestIntegerRoundTrip(t *testing.T) {
	w := NewWriter()
	w.U8(0xFE)
	w.U32(0xDEADBEEF)
	w.I32(-12345)
	r := NewReader(w.Finish())

	u8, err := r.U8()
	if err != nil || u8 != 0xFE {
		t.Fatalf("U8: got %d, err %v", u8, err)
	}
	u32, err := r.U32()
	if err != nil || u32 != 0xDEADBEEF {
		t.Fatalf("U32: got %x, err %v", u32, err)
	}
	i32, err := r.I32()
	if err != nil || i32 != -12345 {
		t.Fatalf("I32: got %d, err %v", i32, err)
	}
}

func TestReaderTruncatedInput(t *testing.T) {
	r := NewReader([]byte{0x01, 0x02})
	if _, err := r.U32(); err != ErrTruncatedInput {
		t.Fatalf("expected ErrTruncatedInput, got %v", err)
	}
}

func TestReaderUnexpectedEOF(t *testing.T) {
	r := NewReader([]byte{})
	if _, err := r.U8(); err != ErrUnexpectedEOF {
		t.Fatalf("expected ErrUnexpectedEOF, got %v", err)
	}
}

func TestReaderTruncatedCompactSize(t *testing.T) {
	r := &Reader{b: []byte{0xFD, 0x00}}
	if _, err := r.CompactSize(); err != ErrTruncatedInput {
		t.Fatalf("expected truncated read on short 0xFD payload, got %v", err)
	}
}
