package roman

// rung is one step of the formatting ladder.
type rung struct {
	upper string
	lower string
	value uint16
}

func (r rung) symbol(s Style) string {
	if s == Lower {
		return r.lower
	}
	return r.upper
}

// ladder is strictly descending by value. Together the subtractive rungs
// (900, 400, 90, 40, 9, 4) and the base rungs cover every value in 1..=Max.
var ladder = [...]rung{
	{"M", "m", 1000},
	{"CM", "cm", 900},
	{"D", "d", 500},
	{"CD", "cd", 400},
	{"C", "c", 100},
	{"XC", "xc", 90},
	{"L", "l", 50},
	{"XL", "xl", 40},
	{"X", "x", 10},
	{"IX", "ix", 9},
	{"V", "v", 5},
	{"IV", "iv", 4},
	{"I", "i", 1},
}

// MaxLen is the longest numeral Format produces for a value in range:
// 4888 is MMMMDCCCLXXXVIII. Values up to 3999 stay within 15.
const MaxLen = 16
