package roman

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidDigit matches errors for bytes that are not numeral digits.
	ErrInvalidDigit = errors.New("roman: invalid digit")
	// ErrOutOfRange matches errors for values outside 1..=Max.
	ErrOutOfRange = errors.New("roman: value out of range")
	// ErrOverflow reports a numeral whose running sum does not fit in 16 bits.
	ErrOverflow = errors.New("roman: value overflows 16 bits")
)

// InvalidDigitError reports a byte that is not one of M D C L X V I.
type InvalidDigitError struct {
	Digit  byte // offending byte
	Offset int  // byte offset into the input

	empty bool
}

func (e *InvalidDigitError) Error() string {
	if e.empty {
		return "roman: empty numeral"
	}
	return fmt.Sprintf("roman: invalid digit %q at offset %d", e.Digit, e.Offset)
}

// Empty reports whether the error was caused by empty input.
func (e *InvalidDigitError) Empty() bool { return e.empty }

func (e *InvalidDigitError) Is(target error) bool { return target == ErrInvalidDigit }

// RangeError reports a value that is 0, negative or above Max.
type RangeError struct {
	Value int
}

func (e *RangeError) Error() string {
	return fmt.Sprintf("roman: value out of range: %d", e.Value)
}

func (e *RangeError) Is(target error) bool { return target == ErrOutOfRange }
