package codec

import (
	"github.com/fxamacker/cbor/v2"
)

// CBOROptions configure NewCBOR.
type CBOROptions struct {
	// Deterministic selects RFC 8949 Core Deterministic encoding, for entries
	// that are hashed or compared byte for byte. A roman.Numeral is always a
	// CBOR text string, so it only matters for the values around it.
	Deterministic bool
	// MaxNestedLevels bounds decode depth. 0 => 16, which is plenty for a
	// numeral inside a record.
	MaxNestedLevels int
}

// CBOR is a Codec backed by fxamacker/cbor. Build it with NewCBOR or MustCBOR;
// the zero value has no modes and panics.
type CBOR[V any] struct {
	enc cbor.EncMode
	dec cbor.DecMode
}

var _ Codec[struct{}] = CBOR[struct{}]{}

// NewCBOR builds the encode and decode modes once. Decoding rejects duplicate
// map keys.
func NewCBOR[V any](o CBOROptions) (CBOR[V], error) {
	eo := cbor.PreferredUnsortedEncOptions()
	if o.Deterministic {
		eo = cbor.CoreDetEncOptions()
	}
	eo.Time = cbor.TimeRFC3339Nano
	em, err := eo.EncMode()
	if err != nil {
		return CBOR[V]{}, err
	}

	do := cbor.DecOptions{
		DupMapKey:       cbor.DupMapKeyEnforcedAPF,
		MaxNestedLevels: coalesceInt(o.MaxNestedLevels, 16),
	}
	dm, err := do.DecMode()
	if err != nil {
		return CBOR[V]{}, err
	}
	return CBOR[V]{enc: em, dec: dm}, nil
}

// MustCBOR is NewCBOR for package-level variables; it panics on bad options.
func MustCBOR[V any](o CBOROptions) CBOR[V] {
	c, err := NewCBOR[V](o)
	if err != nil {
		panic(err)
	}
	return c
}

func (c CBOR[V]) Encode(v V) ([]byte, error) { return c.enc.Marshal(v) }

func (c CBOR[V]) Decode(b []byte) (V, error) {
	var v V
	err := c.dec.Unmarshal(b, &v)
	return v, err
}

func coalesceInt(v, def int) int {
	if v == 0 {
		return def
	}
	return v
}
