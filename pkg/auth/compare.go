package auth

import (
	"crypto/hmac"
	"encoding/hex"
)

// hexDigestsEqual reports whether two hex-encoded digests decode to the
// same bytes.
//
// The decoded bytes are compared with hmac.Equal so execution time does
// not depend on where the digests first differ, only on their length.
// Malformed hex and digests of different lengths are simply not equal;
// short-circuiting on either leaks nothing an attacker doesn't already
// control.
func hexDigestsEqual(a, b string) bool {
	rawA, err := hex.DecodeString(a)
	if err != nil {
		return false
	}
	rawB, err := hex.DecodeString(b)
	if err != nil {
		return false
	}
	if len(rawA) != len(rawB) {
		return false
	}
	return hmac.Equal(rawA, rawB)
}
