package roman_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/unkn0wn-root/roman"
)

func TestParse_Values(t *testing.T) {
	cases := []struct {
		in   string
		want int
	}{
		{"I", 1},
		{"i", 1},
		{"IX", 9},
		{"ix", 9},
		{"XVII", 17},
		{"MCMLXXXIV", 1984},
		{"mCmLxXxIv", 1984},
		{"MMMCMXCIX", 3999},
		{"MMMMCMXCIX", 4999},
		// non-canonical forms are accepted
		{"IIII", 4},
		{"XXXX", 40},
		{"VIIII", 9},
		{"IIIIIX", 5},
		{"iiiiix", 5},
		{"IIX", 8},
		{"MDCCCCX", 1910},
	}
	for _, tc := range cases {
		t.Run(tc.in, func(t *testing.T) {
			r, err := roman.Parse(tc.in)
			require.NoError(t, err)
			assert.Equal(t, tc.want, r.Value())
		})
	}
}

func TestParse_InvalidDigit(t *testing.T) {
	cases := []struct {
		name   string
		in     string
		digit  byte
		offset int
	}{
		{"Letter", "A", 'A', 0},
		{"Trailing", "XIIA", 'A', 3},
		{"Space", "X I", ' ', 1},
		{"Digit", "12", '1', 0},
		{"Unicode", "Ⅻ", "Ⅻ"[0], 0},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			r, err := roman.Parse(tc.in)
			require.ErrorIs(t, err, roman.ErrInvalidDigit)
			assert.True(t, r.IsZero())

			var de *roman.InvalidDigitError
			require.ErrorAs(t, err, &de)
			assert.Equal(t, tc.digit, de.Digit)
			assert.Equal(t, tc.offset, de.Offset)
			assert.False(t, de.Empty())
		})
	}
}

func TestParse_Empty(t *testing.T) {
	_, err := roman.Parse("")
	require.ErrorIs(t, err, roman.ErrInvalidDigit)

	var de *roman.InvalidDigitError
	require.ErrorAs(t, err, &de)
	assert.True(t, de.Empty())
	assert.EqualError(t, err, "roman: empty numeral")
}

func TestParse_OutOfRange(t *testing.T) {
	cases := []struct {
		name string
		in   string
		sum  int
	}{
		{"FiveM", "MMMMM", 5000},
		{"JustAbove", "MMMMCMXCIXI", 5000},
		{"ZeroUnit", "IIIIIV", 0},
		{"SixtyFiveM", strings.Repeat("M", 65), 65000},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := roman.Parse(tc.in)
			require.ErrorIs(t, err, roman.ErrOutOfRange)
			require.NotErrorIs(t, err, roman.ErrOverflow)

			var re *roman.RangeError
			require.ErrorAs(t, err, &re)
			assert.Equal(t, tc.sum, re.Value)
		})
	}
}

func TestParse_Overflow(t *testing.T) {
	cases := map[string]string{
		"SixtySixM":       strings.Repeat("M", 66),
		"LongMRun":        strings.Repeat("M", 150),
		"MRunThenCM":      strings.Repeat("M", 65) + "CM",
		"RepeatedCM":      strings.Repeat("CM", 100),
		"MixedPairs":      strings.Repeat("M", 37) + strings.Repeat("CM", 20) + strings.Repeat("CD", 60),
		"NegativeUnit":    "IIIIIIV",
		"NegativeLongRun": strings.Repeat("X", 20) + "C",
	}
	for name, in := range cases {
		t.Run(name, func(t *testing.T) {
			_, err := roman.Parse(in)
			require.ErrorIs(t, err, roman.ErrOverflow)
			require.NotErrorIs(t, err, roman.ErrOutOfRange)
		})
	}
}

func TestParse_CaseInsensitive(t *testing.T) {
	for _, s := range []string{"MdClXvI", "xLiI", "mmmmCMxcix", "iV"} {
		r, err := roman.Parse(s)
		require.NoError(t, err)
		up, err := roman.Parse(strings.ToUpper(s))
		require.NoError(t, err)
		low, err := roman.Parse(strings.ToLower(s))
		require.NoError(t, err)
		assert.Equal(t, r, up)
		assert.Equal(t, r, low)
	}
}

func TestParse_RoundTrip(t *testing.T) {
	for v := 1; v <= roman.Max; v++ {
		r := roman.MustNew(v)
		for _, style := range []roman.Style{roman.Upper, roman.Lower} {
			got, err := roman.Parse(r.Format(style).String())
			require.NoError(t, err, "v=%d style=%s", v, style)
			require.Equal(t, v, got.Value(), "style=%s", style)
		}
	}
}

func TestParseBytes(t *testing.T) {
	r, err := roman.ParseBytes([]byte("xvii"))
	require.NoError(t, err)
	assert.Equal(t, 17, r.Value())
}
