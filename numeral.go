package roman

import "cmp"

// Max is the largest value a Numeral can hold. Four repetitions of M are
// allowed, so the ceiling is 4999 (MMMMCMXCIX).
const Max = 4999

// Numeral is a Roman numeral value.
//
// The zero Numeral holds no value and is reported by IsZero. Every Numeral
// returned by New, NewChecked, MustNew or Parse holds a value in 1..=Max.
// Numerals are comparable and may be used as map keys; ordering follows the
// underlying integer (see Compare).
type Numeral struct {
	v uint16
}

// New returns the Numeral for n. The boolean is false when n is 0, negative
// or above Max, because such values cannot be written with the seven standard
// symbols.
func New(n int) (Numeral, bool) {
	if n < 1 || n > Max {
		return Numeral{}, false
	}
	return Numeral{v: uint16(n)}, true
}

// NewChecked is like New but reports a *RangeError for values outside 1..=Max.
func NewChecked(n int) (Numeral, error) {
	r, ok := New(n)
	if !ok {
		return Numeral{}, &RangeError{Value: n}
	}
	return r, nil
}

// MustNew is like New but panics when n is out of range.
// Handy for package-level values and tests.
func MustNew(n int) Numeral {
	r, err := NewChecked(n)
	if err != nil {
		panic(err)
	}
	return r
}

// FromUnchecked wraps n without validation. Callers must have checked the
// range themselves: 0 formats as the empty string and values above Max format
// as long runs of M. Neither panics.
func FromUnchecked(n uint16) Numeral {
	return Numeral{v: n}
}

// Value returns the integer value of r.
func (r Numeral) Value() int { return int(r.v) }

// IsZero reports whether r is the zero Numeral.
func (r Numeral) IsZero() bool { return r.v == 0 }

// Valid reports whether r holds a value in 1..=Max.
func (r Numeral) Valid() bool { return r.v >= 1 && r.v <= Max }

// Format returns a lazy view that renders r in the given style. The view, not
// Numeral, implements fmt.Formatter.
func (r Numeral) Format(style Style) Formatter {
	return Formatter{value: r.v, style: style}
}

// Upper returns r as an upper-case numeral, e.g. "XLII".
func (r Numeral) Upper() string { return r.Format(Upper).String() }

// Lower returns r as a lower-case numeral, e.g. "xlii".
func (r Numeral) Lower() string { return r.Format(Lower).String() }

// String implements fmt.Stringer. It is equivalent to Upper.
func (r Numeral) String() string { return r.Upper() }

// Compare returns -1, 0 or +1 depending on whether a is less than, equal to
// or greater than b.
func Compare(a, b Numeral) int {
	return cmp.Compare(a.v, b.v)
}
