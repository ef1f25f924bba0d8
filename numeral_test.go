package roman_test

import (
	"sort"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/unkn0wn-root/roman"
)

func TestNew_Bounds(t *testing.T) {
	cases := []struct {
		name string
		in   int
		ok   bool
	}{
		{"Zero", 0, false},
		{"Negative", -7, false},
		{"One", 1, true},
		{"Max", roman.Max, true},
		{"AboveMax", roman.Max + 1, false},
		{"Uint16Max", 65535, false},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			r, ok := roman.New(tc.in)
			require.Equal(t, tc.ok, ok)
			if tc.ok {
				assert.Equal(t, tc.in, r.Value())
				assert.True(t, r.Valid())
			} else {
				assert.True(t, r.IsZero())
			}
		})
	}
}

func TestNewChecked_RangeError(t *testing.T) {
	_, err := roman.NewChecked(5000)
	require.ErrorIs(t, err, roman.ErrOutOfRange)

	var re *roman.RangeError
	require.ErrorAs(t, err, &re)
	assert.Equal(t, 5000, re.Value)
	assert.EqualError(t, err, "roman: value out of range: 5000")

	r, err := roman.NewChecked(17)
	require.NoError(t, err)
	assert.Equal(t, 17, r.Value())
}

func TestMustNew_Panics(t *testing.T) {
	assert.Panics(t, func() { roman.MustNew(0) })
	assert.NotPanics(t, func() { roman.MustNew(1) })
}

func TestFromUnchecked_DoesNotPanic(t *testing.T) {
	assert.Equal(t, "", roman.FromUnchecked(0).String())
	assert.Equal(t, "MMMMMM", roman.FromUnchecked(6000).String())
	assert.False(t, roman.FromUnchecked(6000).Valid())
	assert.Equal(t, 42, roman.FromUnchecked(42).Value())
}

func TestNumeral_EqualityOrderingAndHashing(t *testing.T) {
	a := roman.MustNew(4)
	b, _ := roman.Parse("IIII")
	c := roman.MustNew(9)

	assert.Equal(t, a, b)
	assert.True(t, a == b)
	assert.Equal(t, 0, roman.Compare(a, b))
	assert.Equal(t, -1, roman.Compare(a, c))
	assert.Equal(t, 1, roman.Compare(c, a))

	set := map[roman.Numeral]string{a: "four"}
	assert.Equal(t, "four", set[b])

	ns := []roman.Numeral{roman.MustNew(50), c, a, roman.MustNew(1)}
	sort.Slice(ns, func(i, j int) bool { return roman.Compare(ns[i], ns[j]) < 0 })
	assert.Equal(t, []int{1, 4, 9, 50}, []int{ns[0].Value(), ns[1].Value(), ns[2].Value(), ns[3].Value()})
}
