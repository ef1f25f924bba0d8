package roman

import (
	"fmt"
	"io"
	"strings"
)

// Style selects the symbol case used when formatting.
type Style uint8

const (
	// Upper formats as XVII.
	Upper Style = iota
	// Lower formats as xvii.
	Lower
)

func (s Style) String() string {
	switch s {
	case Upper:
		return "upper"
	case Lower:
		return "lower"
	default:
		return fmt.Sprintf("Style(%d)", uint8(s))
	}
}

// ParseStyle maps "upper"/"lower" (any case, also "u"/"l") to a Style.
func ParseStyle(s string) (Style, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "upper", "u", "":
		return Upper, nil
	case "lower", "l":
		return Lower, nil
	default:
		return Upper, fmt.Errorf("roman: unknown style %q", s)
	}
}

// Formatter renders a numeral on demand. It is a small value; copying it is
// free and nothing is computed until one of its methods runs.
//
// Formatter implements fmt.Stringer, fmt.Formatter and io.WriterTo, so it can
// be dropped into Printf verbs or streamed into a writer without building an
// intermediate string.
type Formatter struct {
	value uint16
	style Style
}

// steps calls emit with each symbol of the numeral, in order.
func (f Formatter) steps(emit func(string) bool) {
	rem := f.value
	for _, r := range ladder {
		for rem >= r.value {
			if !emit(r.symbol(f.style)) {
				return
			}
			rem -= r.value
		}
	}
}

// Len returns the number of bytes the numeral occupies.
func (f Formatter) Len() int {
	n := 0
	f.steps(func(s string) bool {
		n += len(s)
		return true
	})
	return n
}

// AppendTo appends the numeral to dst and returns the extended slice.
func (f Formatter) AppendTo(dst []byte) []byte {
	f.steps(func(s string) bool {
		dst = append(dst, s...)
		return true
	})
	return dst
}

// WriteTo writes the numeral to w symbol by symbol.
func (f Formatter) WriteTo(w io.Writer) (int64, error) {
	var (
		total int64
		err   error
	)
	f.steps(func(s string) bool {
		var n int
		n, err = io.WriteString(w, s)
		total += int64(n)
		return err == nil
	})
	return total, err
}

func (f Formatter) String() string {
	var b strings.Builder
	b.Grow(MaxLen)
	_, _ = f.WriteTo(&b)
	return b.String()
}

// Format implements fmt.Formatter. %s and %v write the numeral, %q quotes it
// and %d prints the integer value. Width and flags are honored.
func (f Formatter) Format(st fmt.State, verb rune) {
	switch verb {
	case 's', 'v':
		_, hasWidth := st.Width()
		_, hasPrec := st.Precision()
		if !hasWidth && !hasPrec {
			_, _ = f.WriteTo(st)
			return
		}
		fmt.Fprintf(st, fmt.FormatString(st, verb), f.String())
	case 'q':
		fmt.Fprintf(st, fmt.FormatString(st, verb), f.String())
	case 'd':
		fmt.Fprintf(st, fmt.FormatString(st, verb), f.value)
	default:
		fmt.Fprintf(st, "%%!%c(roman.Formatter=%s)", verb, f.String())
	}
}
