// Package codec turns values into bytes and back. The memo package stores
// parse results through a Codec[roman.Numeral]; the generic codecs work for any
// type that embeds a roman.Numeral, since Numeral carries its own JSON,
// msgpack and CBOR encodings.
package codec

// Codec encodes/decodes values V to []byte for storage.
type Codec[V any] interface {
	Encode(V) ([]byte, error)
	Decode([]byte) (V, error)
}
