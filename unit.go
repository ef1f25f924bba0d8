package roman

import "iter"

// accumulator collects a run of equal digits. Its worth is count*value.
type accumulator struct {
	value uint16
	count int
}

func (a accumulator) active() bool { return a.count > 0 }
func (a accumulator) total() int   { return a.count * int(a.value) }

// units yields the value of each unit of s, left to right.
//
// A unit is a maximal run of one digit ("III" is 3) or a run followed by a
// larger digit ("IX" is 9, "IIIX" is 7). A larger digit closes the run by
// subtracting the run's whole worth from itself, so a unit can be negative
// for input such as "IIIIIIV"; the caller decides what that means.
// On an invalid byte the sequence yields one error and stops.
func units(s string) iter.Seq2[int, error] {
	return func(yield func(int, error) bool) {
		var acc accumulator
		for i := 0; i < len(s); i++ {
			v, ok := digit(s[i])
			if !ok {
				yield(0, &InvalidDigitError{Digit: s[i], Offset: i})
				return
			}
			switch {
			case !acc.active():
				acc = accumulator{value: v, count: 1}
			case v == acc.value:
				acc.count++
			case v > acc.value:
				u := int(v) - acc.total()
				acc = accumulator{}
				if !yield(u, nil) {
					return
				}
			default:
				u := acc.total()
				acc = accumulator{value: v, count: 1}
				if !yield(u, nil) {
					return
				}
			}
		}
		if acc.active() {
			yield(acc.total(), nil)
		}
	}
}

// digit maps one numeral byte, in either case, to its value.
func digit(b byte) (uint16, bool) {
	switch b {
	case 'M', 'm':
		return 1000, true
	case 'D', 'd':
		return 500, true
	case 'C', 'c':
		return 100, true
	case 'L', 'l':
		return 50, true
	case 'X', 'x':
		return 10, true
	case 'V', 'v':
		return 5, true
	case 'I', 'i':
		return 1, true
	default:
		return 0, false
	}
}
