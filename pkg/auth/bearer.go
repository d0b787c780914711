package auth

import (
	"crypto/hmac"
	"strings"
)

const bearerPrefix = "Bearer "

// bearerToken extracts the token from an Authorization header value.
// The scheme prefix is matched case-insensitively per RFC 6750; a
// missing or malformed header yields "" (no token presented).
func bearerToken(authorization string) string {
	if len(authorization) <= len(bearerPrefix) {
		return ""
	}
	if !strings.EqualFold(authorization[:len(bearerPrefix)], bearerPrefix) {
		return ""
	}
	return authorization[len(bearerPrefix):]
}

// verifyBearer attempts bearer-token authentication. The second return
// value reports whether the token matched; a false result is not itself
// a rejection, the caller falls through to signature verification.
func (v *Verifier) verifyBearer(req Request) (Verdict, bool) {
	token := bearerToken(req.Authorization)
	if token == "" {
		return Verdict{}, false
	}
	if !hmac.Equal([]byte(token), []byte(v.secrets.BearerToken)) {
		return Verdict{}, false
	}
	return accepted(ModeBearer, v.clock.Now().UnixMilli()), true
}
