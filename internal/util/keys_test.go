package util

import (
	"strings"
	"testing"
)

func TestKeyShortMembersVerbatim(t *testing.T) {
	if got := Key("parse:ns", "MCMLXXXIV"); got != "parse:ns:v:MCMLXXXIV" {
		t.Fatalf("got %q", got)
	}
	long := strings.Repeat("M", MaxMember)
	if got := Key("p", long); got != "p:v:"+long {
		t.Fatalf("member of MaxMember bytes should be verbatim, got %q", got)
	}
}

func TestKeyLongMembersHashed(t *testing.T) {
	a := Key("p", strings.Repeat("M", 100))
	b := Key("p", strings.Repeat("M", 101))
	if a == b {
		t.Fatalf("distinct members collided: %q", a)
	}
	if !strings.HasPrefix(a, "p:h:") || len(a) != len("p:h:")+64 {
		t.Fatalf("unexpected hashed key length %d (%q)", len(a), a)
	}
	if a != Key("p", strings.Repeat("M", 100)) {
		t.Fatalf("hashing must be deterministic")
	}
}

func TestKeyVerbatimCannotSpellHash(t *testing.T) {
	hashed := Key("p", strings.Repeat("I", 100))
	// The hashed member, written out by hand, still lands in the verbatim space.
	forged := strings.TrimPrefix(hashed, "p:h:")[:MaxMember]
	if got := Key("p", forged); got == hashed || !strings.HasPrefix(got, "p:v:") {
		t.Fatalf("verbatim member %q produced %q", forged, got)
	}
	if got := Key("p", "h:"+forged[:MaxMember-2]); strings.HasPrefix(got, "p:h:") {
		t.Fatalf("verbatim member with h: tag escaped its space: %q", got)
	}
}

func TestUpperASCII(t *testing.T) {
	cases := map[string]string{
		"":          "",
		"MCM":       "MCM",
		"mcmLxxxiv": "MCMLXXXIV",
		"x-ij ß":    "X-IJ ß",
	}
	for in, want := range cases {
		if got := UpperASCII(in); got != want {
			t.Fatalf("UpperASCII(%q) = %q, want %q", in, got, want)
		}
		if len(UpperASCII(in)) != len(in) {
			t.Fatalf("length changed for %q", in)
		}
	}
}
