package auth

import (
	"errors"
)

// Every rejection a Verifier can produce carries exactly one of these
// sentinel errors, so callers can enumerate terminal outcomes with
// errors.Is. None of them ever contain secret material.
var (
	ErrSecretNotConfigured    = errors.New("webhook secret not configured")
	ErrMissingSignatureHeader = errors.New("missing webhook signature headers")
	ErrInvalidTimestamp       = errors.New("invalid webhook timestamp")
	ErrTimestampOutsideWindow = errors.New("timestamp outside allowed window")
	ErrInvalidSignature       = errors.New("invalid webhook signature")
)
