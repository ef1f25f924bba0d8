// Package wire frames memo entries before they reach a provider.
//
// Entry: magic(4 "XVII") | ver(1) | kind(1) | vlen(u32 be) | payload(vlen)
//
// The frame lets a reader tell a numeral from formatted text or a cached
// failure, and reject bytes written by anything else under the same key.
package wire

import (
	"bytes"
	"encoding/binary"
	"errors"
)

const version byte = 1

// Kind tags what an entry payload holds.
type Kind byte

const (
	KindNumeral Kind = 1 // codec-encoded roman.Numeral
	KindText    Kind = 2 // formatted numeral text
	KindFailure Kind = 3 // encoded parse failure, see EncodeFailure
)

const hdrLen = 4 + 1 + 1 + 4

var (
	ErrCorrupt = errors.New("roman/memo: corrupt entry")
	magic4     = [...]byte{'X', 'V', 'I', 'I'}
)

func hasMagic(b []byte) bool {
	return len(b) >= 4 && bytes.Equal(b[:4], magic4[:])
}

func (k Kind) valid() bool { return k >= KindNumeral && k <= KindFailure }

func (k Kind) String() string {
	switch k {
	case KindNumeral:
		return "numeral"
	case KindText:
		return "text"
	case KindFailure:
		return "failure"
	default:
		return "unknown"
	}
}

// Encode frames payload as an entry of the given kind.
func Encode(kind Kind, payload []byte) []byte {
	var buf bytes.Buffer
	buf.Grow(hdrLen + len(payload))

	buf.Write(magic4[:])
	buf.WriteByte(version)
	buf.WriteByte(byte(kind))

	var u4 [4]byte
	binary.BigEndian.PutUint32(u4[:], uint32(len(payload)))
	buf.Write(u4[:])

	buf.Write(payload)
	return buf.Bytes()
}

// Decode validates an entry and returns its kind and payload. The payload
// aliases b. Trailing bytes after the payload are treated as corruption.
func Decode(b []byte) (Kind, []byte, error) {
	if len(b) < hdrLen || !hasMagic(b) || b[4] != version {
		return 0, nil, ErrCorrupt
	}
	kind := Kind(b[5])
	if !kind.valid() {
		return 0, nil, ErrCorrupt
	}

	off := 6
	vlen := int(binary.BigEndian.Uint32(b[off : off+4]))
	off += 4
	if vlen < 0 || vlen != len(b)-off { // exact length; overflow-safe
		return 0, nil, ErrCorrupt
	}
	return kind, b[off : off+vlen], nil
}

// Failure classes stored in a KindFailure payload.
const (
	FailInvalidDigit byte = 1 // class | offset(u32 be)
	FailOutOfRange   byte = 2 // class | value(i64 be)
	FailOverflow     byte = 3 // class
)

// Failure is the decoded form of a KindFailure payload.
type Failure struct {
	Class  byte
	Offset int // FailInvalidDigit
	Value  int // FailOutOfRange
}

// EncodeFailure returns the KindFailure payload for f.
func EncodeFailure(f Failure) []byte {
	switch f.Class {
	case FailInvalidDigit:
		out := make([]byte, 5)
		out[0] = f.Class
		binary.BigEndian.PutUint32(out[1:], uint32(f.Offset))
		return out
	case FailOutOfRange:
		out := make([]byte, 9)
		out[0] = f.Class
		binary.BigEndian.PutUint64(out[1:], uint64(int64(f.Value)))
		return out
	default:
		return []byte{f.Class}
	}
}

// DecodeFailure parses a KindFailure payload.
func DecodeFailure(p []byte) (Failure, error) {
	if len(p) == 0 {
		return Failure{}, ErrCorrupt
	}
	switch p[0] {
	case FailInvalidDigit:
		if len(p) != 5 {
			return Failure{}, ErrCorrupt
		}
		return Failure{Class: p[0], Offset: int(binary.BigEndian.Uint32(p[1:]))}, nil
	case FailOutOfRange:
		if len(p) != 9 {
			return Failure{}, ErrCorrupt
		}
		return Failure{Class: p[0], Value: int(int64(binary.BigEndian.Uint64(p[1:])))}, nil
	case FailOverflow:
		if len(p) != 1 {
			return Failure{}, ErrCorrupt
		}
		return Failure{Class: p[0]}, nil
	default:
		return Failure{}, ErrCorrupt
	}
}
