package codec

import "github.com/unkn0wn-root/roman"

// Bytes is an identity codec for []byte values.
type Bytes struct{}

func (Bytes) Encode(b []byte) ([]byte, error) { return b, nil }
func (Bytes) Decode(b []byte) ([]byte, error) { return b, nil }

// String is a trivial codec for Go string values. By convention this assumes
// UTF-8 and performs no validation. memo uses it for formatted numerals.
type String struct{}

func (String) Encode(s string) ([]byte, error) { return []byte(s), nil }
func (String) Decode(b []byte) (string, error) { return string(b), nil }

// Text stores a roman.Numeral as its bare numeral text, the most compact and
// human-readable form. Style only affects Encode; Decode accepts either case.
// The zero value writes upper case and is the memo default.
type Text struct {
	Style roman.Style
}

var _ Codec[roman.Numeral] = Text{}

func (c Text) Encode(n roman.Numeral) ([]byte, error) {
	if !n.Valid() {
		return nil, &roman.RangeError{Value: n.Value()}
	}
	return n.Format(c.Style).AppendTo(make([]byte, 0, roman.MaxLen)), nil
}

func (Text) Decode(b []byte) (roman.Numeral, error) { return roman.ParseBytes(b) }
