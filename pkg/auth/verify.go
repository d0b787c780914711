// Package auth authenticates webhook requests exchanged between RPA
// workers and the EllipseSearch platform.
//
// Two schemes are supported: legacy shared bearer tokens and
// timestamp-bound HMAC-SHA256 signatures over the raw request body.
// Verification is a pure function of the request, the configured
// secrets, and a clock; it holds no state across calls and is safe for
// unlimited concurrent use.
package auth

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"net/http"
	"strconv"
	"time"

	"github.com/benbjohnson/clock"
)

// Verifier decides whether an inbound webhook request is genuine.
//
// All inputs are attacker-controlled except the secrets; Verify is
// total over them and never panics. It never logs, retries, or blocks.
type Verifier struct {
	secrets Secrets
	clock   clock.Clock
}

// NewVerifier creates a verifier for the given secrets. A nil clk uses
// the real clock; tests pass a mocked clock to pin the replay window.
func NewVerifier(secrets Secrets, clk clock.Clock) *Verifier {
	if clk == nil {
		clk = clock.New()
	}
	return &Verifier{secrets: secrets, clock: clk}
}

// Verify classifies one request. The bearer path is tried first when a
// bearer token is configured, as the simpler legacy scheme; a bearer
// miss is not terminal and falls through to signature verification,
// which produces the definitive rejection. Only a deployment with no
// secrets at all short-circuits.
func (v *Verifier) Verify(req Request) Verdict {
	if v.secrets.BearerToken != "" {
		if verdict, ok := v.verifyBearer(req); ok {
			return verdict
		}
	}

	if !v.secrets.Configured() {
		return rejected(http.StatusUnauthorized, ErrSecretNotConfigured)
	}

	return v.verifySignature(req)
}

// verifySignature checks the timestamp-bound HMAC-SHA256 signature.
// Each step is a distinct failure point with its own sentinel.
func (v *Verifier) verifySignature(req Request) Verdict {
	if req.Timestamp == "" || req.Signature == "" {
		return rejected(http.StatusUnauthorized, ErrMissingSignatureHeader)
	}

	ts, err := strconv.ParseInt(req.Timestamp, 10, 64)
	if err != nil || ts <= 0 {
		return rejected(http.StatusBadRequest, ErrInvalidTimestamp)
	}

	// Replay window: a captured request becomes unusable once its
	// timestamp drifts out of the window. The boundary is inclusive.
	skew := v.clock.Now().Unix() - ts
	if skew < 0 {
		skew = -skew
	}
	if skew > int64(v.secrets.maxSkew()/time.Second) {
		return rejected(http.StatusUnauthorized, ErrTimestampOutsideWindow)
	}

	expected := computeSignature(v.secrets.signingKey(), req.Timestamp, req.Body)
	if !hexDigestsEqual(expected, req.Signature) {
		return rejected(http.StatusUnauthorized, ErrInvalidSignature)
	}

	return accepted(ModeHMAC, ts*1000)
}

// computeSignature computes the lowercase hex HMAC-SHA256 digest of
// "<timestamp>.<body>". The timestamp is signed exactly as presented
// and the body exactly as received.
func computeSignature(key, timestamp string, body []byte) string {
	mac := hmac.New(sha256.New, []byte(key))
	mac.Write([]byte(timestamp))
	mac.Write([]byte{'.'})
	mac.Write(body)
	return hex.EncodeToString(mac.Sum(nil))
}
