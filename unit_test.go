package roman

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func collect(t *testing.T, s string) []int {
	t.Helper()
	var out []int
	for u, err := range units(s) {
		require.NoError(t, err)
		out = append(out, u)
	}
	return out
}

func TestDigit(t *testing.T) {
	for _, b := range []byte("mDcLxVi") {
		_, ok := digit(b)
		assert.True(t, ok, "%q", b)
	}
	for _, b := range []byte("aBeFgH0 -\x00") {
		_, ok := digit(b)
		assert.False(t, ok, "%q", b)
	}
}

func TestUnits(t *testing.T) {
	cases := []struct {
		in   string
		want []int
	}{
		{"I", []int{1}},
		{"III", []int{3}},
		{"IX", []int{9}},
		{"XII", []int{10, 2}},
		{"MCMLXXXIV", []int{1000, 900, 50, 30, 4}},
		{"IIIIIX", []int{5}},
		{"IIIIIIV", []int{-1}},
		{"DCCCC", []int{500, 400}},
	}
	for _, tc := range cases {
		t.Run(tc.in, func(t *testing.T) {
			assert.Equal(t, tc.want, collect(t, tc.in))
		})
	}
}

func TestUnits_StopsAtInvalidDigit(t *testing.T) {
	var (
		got  []int
		errs []error
	)
	for u, err := range units("XIIA") {
		if err != nil {
			errs = append(errs, err)
			continue
		}
		got = append(got, u)
	}
	assert.Equal(t, []int{10}, got)
	require.Len(t, errs, 1)
	assert.ErrorIs(t, errs[0], ErrInvalidDigit)
}

func TestUnits_EarlyBreak(t *testing.T) {
	n := 0
	for range units("MDCLXVI") {
		n++
		if n == 2 {
			break
		}
	}
	assert.Equal(t, 2, n)
}

func TestLadder_Descending(t *testing.T) {
	require.Len(t, ladder, 13)
	for i := 1; i < len(ladder); i++ {
		assert.Greater(t, ladder[i-1].value, ladder[i].value)
	}
	for _, r := range ladder {
		assert.Equal(t, r.lower, r.symbol(Lower))
		assert.Equal(t, r.upper, r.symbol(Upper))
	}
}
