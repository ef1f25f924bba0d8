package wire

import (
	"bytes"
	"encoding/binary"
	"math"
	"testing"
)

func mustDecode(t *testing.T, b []byte) (Kind, []byte) {
	t.Helper()
	k, p, err := Decode(b)
	if err != nil {
		t.Fatalf("Decode error: %v", err)
	}
	return k, p
}

func TestRoundTripKinds(t *testing.T) {
	cases := []struct {
		kind    Kind
		payload []byte
	}{
		{KindNumeral, []byte("MCMLXXXIV")},
		{KindText, []byte("mcmlxxxiv")},
		{KindText, nil},
		{KindFailure, EncodeFailure(Failure{Class: FailOverflow})},
	}
	for _, tc := range cases {
		enc := Encode(tc.kind, tc.payload)
		k, p := mustDecode(t, enc)
		if k != tc.kind {
			t.Fatalf("kind mismatch: got %s want %s", k, tc.kind)
		}
		if !bytes.Equal(p, tc.payload) {
			t.Fatalf("payload mismatch: got %x want %x", p, tc.payload)
		}
	}
}

func TestRejectsTrailingBytes(t *testing.T) {
	enc := Encode(KindNumeral, []byte("X"))
	enc = append(enc, 0xDE, 0xAD) // add junk
	if _, _, err := Decode(enc); err == nil {
		t.Fatalf("expected error on trailing bytes")
	}
}

func TestCorruptHeadersAndLengths(t *testing.T) {
	enc := Encode(KindText, []byte("abc"))

	// bad magic
	badMagic := append([]byte(nil), enc...)
	badMagic[0] = 'C'
	if _, _, err := Decode(badMagic); err == nil {
		t.Fatalf("expected error on bad magic")
	}

	// wrong version
	badVer := append([]byte(nil), enc...)
	badVer[4] = version + 1
	if _, _, err := Decode(badVer); err == nil {
		t.Fatalf("expected error on bad version")
	}

	// unknown kinds
	for _, k := range []byte{0, 4, 0xFF} {
		badKind := append([]byte(nil), enc...)
		badKind[5] = k
		if _, _, err := Decode(badKind); err == nil {
			t.Fatalf("expected error on kind %d", k)
		}
	}

	// vlen too large (announce more than available)
	tooLong := append([]byte(nil), enc...)
	// vlen is at offset 6..9 (4 magic +1 ver +1 kind)
	binary.BigEndian.PutUint32(tooLong[6:10], uint32(len("abc")+1))
	if _, _, err := Decode(tooLong); err == nil {
		t.Fatalf("expected error on vlen beyond buffer")
	}

	// huge vlen must not wrap
	huge := append([]byte(nil), enc...)
	binary.BigEndian.PutUint32(huge[6:10], math.MaxUint32)
	if _, _, err := Decode(huge); err == nil {
		t.Fatalf("expected error on huge vlen")
	}

	// truncated buffer
	trunc := enc[:len(enc)-1]
	if _, _, err := Decode(trunc); err == nil {
		t.Fatalf("expected error on truncated buffer")
	}

	// header only, shorter than the fixed prefix
	if _, _, err := Decode(enc[:hdrLen-1]); err == nil {
		t.Fatalf("expected error on short header")
	}
}

func TestZeroCopyPayload(t *testing.T) {
	enc := Encode(KindText, []byte("Z"))
	_, p := mustDecode(t, enc)
	if len(p) != 1 {
		t.Fatalf("unexpected payload len")
	}
	// mutate payload slice. should mutate underlying enc bytes (zero-copy)
	p[0] = 'Q'
	_, p2 := mustDecode(t, enc)
	if p2[0] != 'Q' {
		t.Fatalf("expected zero-copy slice into enc buffer")
	}
}

func TestFailureRoundTrip(t *testing.T) {
	cases := []Failure{
		{Class: FailInvalidDigit, Offset: 0},
		{Class: FailInvalidDigit, Offset: 1 << 20},
		{Class: FailOutOfRange, Value: 0},
		{Class: FailOutOfRange, Value: 65000},
		{Class: FailOutOfRange, Value: -3},
		{Class: FailOverflow},
	}
	for _, f := range cases {
		got, err := DecodeFailure(EncodeFailure(f))
		if err != nil {
			t.Fatalf("DecodeFailure(%+v): %v", f, err)
		}
		if got != f {
			t.Fatalf("failure mismatch: got %+v want %+v", got, f)
		}
	}
}

func TestFailureCorrupt(t *testing.T) {
	cases := [][]byte{
		nil,
		{0},
		{9},
		{FailInvalidDigit, 0, 0},
		{FailOutOfRange, 1, 2, 3},
		{FailOverflow, 0},
	}
	for _, p := range cases {
		if _, err := DecodeFailure(p); err == nil {
			t.Fatalf("expected error for payload %x", p)
		}
	}
}
