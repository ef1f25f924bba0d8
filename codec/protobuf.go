package codec

import (
	"google.golang.org/protobuf/proto"
	"google.golang.org/protobuf/types/known/wrapperspb"

	"github.com/unkn0wn-root/roman"
)

// Protobuf encodes any proto.Message.
type Protobuf[T proto.Message] struct {
	new func() T // constructor for a concrete message, e.g. func() *wrapperspb.StringValue { return &wrapperspb.StringValue{} }
}

func NewProtobuf[T proto.Message](ctor func() T) Protobuf[T] {
	return Protobuf[T]{new: ctor}
}

func (c Protobuf[T]) Encode(v T) ([]byte, error) {
	return proto.Marshal(v)
}
func (c Protobuf[T]) Decode(b []byte) (T, error) {
	m := c.new()
	err := proto.Unmarshal(b, m)
	return m, err
}

// NumeralProto carries a roman.Numeral as a google.protobuf.StringValue holding
// the upper-case numeral, so peers without this package can still read it.
// The zero value is ready to use.
type NumeralProto struct{}

var _ Codec[roman.Numeral] = NumeralProto{}

var stringValue = NewProtobuf(func() *wrapperspb.StringValue { return &wrapperspb.StringValue{} })

func (NumeralProto) Encode(n roman.Numeral) ([]byte, error) {
	text, err := n.MarshalText()
	if err != nil {
		return nil, err
	}
	return stringValue.Encode(wrapperspb.String(string(text)))
}

func (NumeralProto) Decode(b []byte) (roman.Numeral, error) {
	m, err := stringValue.Decode(b)
	if err != nil {
		return roman.Numeral{}, err
	}
	return roman.Parse(m.GetValue())
}
