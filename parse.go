package roman

import "math"

// Parse reads a Roman numeral, in any mix of upper and lower case.
//
// The whole input must be numeral digits; there is no trimming. Non-canonical
// forms are accepted (see the package documentation). On failure the returned
// Numeral is zero and the error is an *InvalidDigitError, a *RangeError or
// ErrOverflow.
func Parse(s string) (Numeral, error) {
	if s == "" {
		return Numeral{}, &InvalidDigitError{empty: true}
	}

	sum := 0
	for u, err := range units(s) {
		if err != nil {
			return Numeral{}, err
		}
		// a negative unit or a sum past uint16 cannot be represented
		if u < 0 || u > math.MaxUint16-sum {
			return Numeral{}, ErrOverflow
		}
		sum += u
	}
	return NewChecked(sum)
}

// ParseBytes is like Parse but takes the numeral as a byte slice.
func ParseBytes(b []byte) (Numeral, error) {
	return Parse(string(b))
}
