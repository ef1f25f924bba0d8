package util

import (
	"crypto/sha256"
	"encoding/hex"
)

// MaxMember is the longest member kept verbatim in a storage key. Every
// numeral Format produces fits; longer parse inputs are hashed.
const MaxMember = 32

// Key returns prefix + ":v:" + member, or prefix + ":h:" + hex(SHA-256(member))
// when member is longer than MaxMember. The "v:" and "h:" tags keep verbatim
// members from ever spelling out a hashed key.
func Key(prefix, member string) string {
	if len(member) <= MaxMember {
		return prefix + ":v:" + member
	}
	sum := sha256.Sum256([]byte(member))
	return prefix + ":h:" + hex.EncodeToString(sum[:])
}

// UpperASCII upper-cases ASCII letters and leaves every other byte alone, so
// the result has the same length and byte offsets as s.
func UpperASCII(s string) string {
	i := 0
	for ; i < len(s); i++ {
		if c := s[i]; 'a' <= c && c <= 'z' {
			break
		}
	}
	if i == len(s) {
		return s
	}
	b := []byte(s)
	for ; i < len(b); i++ {
		if c := b[i]; 'a' <= c && c <= 'z' {
			b[i] = c - ('a' - 'A')
		}
	}
	return string(b)
}
