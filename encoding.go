package roman

import (
	"encoding/json"
	"fmt"

	"github.com/fxamacker/cbor/v2"
	"github.com/vmihailenco/msgpack/v5"
)

var (
	_ msgpack.CustomEncoder = Numeral{}
	_ msgpack.CustomDecoder = (*Numeral)(nil)
	_ cbor.Marshaler        = Numeral{}
	_ cbor.Unmarshaler      = (*Numeral)(nil)
)

// AppendText appends the upper-case numeral to b.
// It fails with a *RangeError when r is not in 1..=Max.
func (r Numeral) AppendText(b []byte) ([]byte, error) {
	if !r.Valid() {
		return b, &RangeError{Value: int(r.v)}
	}
	return r.Format(Upper).AppendTo(b), nil
}

// MarshalText implements encoding.TextMarshaler.
func (r Numeral) MarshalText() ([]byte, error) {
	return r.AppendText(make([]byte, 0, MaxLen))
}

// UnmarshalText implements encoding.TextUnmarshaler using Parse.
func (r *Numeral) UnmarshalText(text []byte) error {
	v, err := ParseBytes(text)
	if err != nil {
		return err
	}
	*r = v
	return nil
}

// UnmarshalJSON accepts a numeral string ("XLII") or a plain JSON number (42).
// null leaves r unchanged.
func (r *Numeral) UnmarshalJSON(data []byte) error {
	if string(data) == "null" {
		return nil
	}
	if len(data) > 0 && data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return fmt.Errorf("roman: decode json string: %w", err)
		}
		return r.UnmarshalText([]byte(s))
	}
	var n int
	if err := json.Unmarshal(data, &n); err != nil {
		return fmt.Errorf("roman: decode json number: %w", err)
	}
	v, err := NewChecked(n)
	if err != nil {
		return err
	}
	*r = v
	return nil
}

// EncodeMsgpack writes r as a msgpack string.
func (r Numeral) EncodeMsgpack(enc *msgpack.Encoder) error {
	text, err := r.MarshalText()
	if err != nil {
		return err
	}
	return enc.EncodeString(string(text))
}

// DecodeMsgpack reads a msgpack string and parses it.
func (r *Numeral) DecodeMsgpack(dec *msgpack.Decoder) error {
	s, err := dec.DecodeString()
	if err != nil {
		return err
	}
	return r.UnmarshalText([]byte(s))
}

// MarshalCBOR writes r as a CBOR text string.
func (r Numeral) MarshalCBOR() ([]byte, error) {
	text, err := r.MarshalText()
	if err != nil {
		return nil, err
	}
	return cbor.Marshal(string(text))
}

// UnmarshalCBOR reads a CBOR text string and parses it.
func (r *Numeral) UnmarshalCBOR(data []byte) error {
	var s string
	if err := cbor.Unmarshal(data, &s); err != nil {
		return err
	}
	return r.UnmarshalText([]byte(s))
}
