package auth

import (
	"strconv"

	"github.com/benbjohnson/clock"
)

// Sign produces the authentication headers a genuine caller sends
// alongside body, timestamped at the clock's current time.
//
// The signature is computed over the exact bytes of body; callers must
// send those same bytes on the wire unmodified.
func Sign(secrets Secrets, clk clock.Clock, body []byte) *Headers {
	if clk == nil {
		clk = clock.New()
	}
	return SignAt(secrets, clk.Now().Unix(), body)
}

// SignAt is Sign with an explicit timestamp, in seconds since the Unix
// epoch. Signing is deterministic for a fixed timestamp, which lets a
// verifier re-derive the headers it expects.
func SignAt(secrets Secrets, timestamp int64, body []byte) *Headers {
	h := &Headers{}
	if secrets.BearerToken != "" {
		h.Authorization = bearerPrefix + secrets.BearerToken
	}
	if secrets.Configured() {
		h.Timestamp = strconv.FormatInt(timestamp, 10)
		h.Signature = computeSignature(secrets.signingKey(), h.Timestamp, body)
	}
	return h
}
