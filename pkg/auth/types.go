package auth

import (
	"time"
)

// DefaultMaxSkew is the replay window applied when Secrets does not
// override it: a signed request whose timestamp is further than this
// from the verifier's clock is rejected as stale.
const DefaultMaxSkew = 300 * time.Second

// Mode identifies which authentication scheme accepted a request.
type Mode string

const (
	// ModeBearer is shared-token authentication via the Authorization
	// header. It is the legacy scheme used by older RPA workers.
	ModeBearer Mode = "bearer"

	// ModeHMAC is timestamp-bound HMAC-SHA256 signature authentication.
	ModeHMAC Mode = "hmac"
)

// Secrets is the shared-secret material used to authenticate webhook
// requests. It is supplied explicitly by the caller; the verifier never
// reads process-wide state.
//
// Either secret may be empty, but at least one must be set for
// verification to be attemptable. When SigningKey is empty the
// BearerToken doubles as the HMAC key, preserving single-secret
// deployments. Whether that key reuse is acceptable is a deployment
// decision; prefer a dedicated SigningKey.
type Secrets struct {
	BearerToken string // legacy shared token
	SigningKey  string // dedicated HMAC-SHA256 key

	// MaxSkew overrides the replay window. Zero means DefaultMaxSkew.
	MaxSkew time.Duration
}

// Configured reports whether at least one secret is set.
func (s Secrets) Configured() bool {
	return s.BearerToken != "" || s.SigningKey != ""
}

// signingKey returns the key HMAC signatures are computed with.
func (s Secrets) signingKey() string {
	if s.SigningKey != "" {
		return s.SigningKey
	}
	return s.BearerToken
}

func (s Secrets) maxSkew() time.Duration {
	if s.MaxSkew > 0 {
		return s.MaxSkew
	}
	return DefaultMaxSkew
}

// Request is the raw material of one inbound webhook request. Body must
// be the exact bytes received on the wire: the signature is computed
// over that exact representation, so any re-serialization before
// verification invalidates it.
type Request struct {
	Body          []byte
	Authorization string // Authorization header value, or empty
	Timestamp     string // X-Webhook-Timestamp header value, or empty
	Signature     string // X-Webhook-Signature header value, or empty
}

// Verdict is the outcome of verifying one request. It is either
// accepted or rejected, never both: Err is nil exactly when the request
// is accepted. A verdict never contains secret material, so Reason is
// always safe to log.
type Verdict struct {
	// Mode is the scheme that accepted the request. Empty on rejection.
	Mode Mode

	// Timestamp is in milliseconds since the Unix epoch. For ModeHMAC it
	// is the timestamp the caller presented (and signed); for ModeBearer,
	// which carries no intrinsic timestamp, it is the verification time.
	Timestamp int64

	// StatusHint is the HTTP status the rejection maps to naturally,
	// 401 or 400. Zero on acceptance. The caller owns the actual
	// response; this is only a hint.
	StatusHint int

	// Err is the rejection cause, one of the sentinel errors in this
	// package. Nil on acceptance.
	Err error
}

// Accepted reports whether the request passed verification.
func (v Verdict) Accepted() bool {
	return v.Err == nil
}

// Reason returns the rejection reason, or "" for accepted verdicts.
func (v Verdict) Reason() string {
	if v.Err == nil {
		return ""
	}
	return v.Err.Error()
}

func accepted(mode Mode, timestampMillis int64) Verdict {
	return Verdict{Mode: mode, Timestamp: timestampMillis}
}

func rejected(statusHint int, err error) Verdict {
	return Verdict{StatusHint: statusHint, Err: err}
}
