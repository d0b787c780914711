package ingestsdk

import (
	"time"

	"github.com/benbjohnson/clock"
	"github.com/rs/zerolog"

	"go.ellipsesearch.dev/ingest-sdk/internal/client"
	"go.ellipsesearch.dev/ingest-sdk/pkg/auth"
)

// Option is a function that can be passed to New to configure the SDK.
type Option func(config *client.Config)

// WithHost configures the SDK to use the specified platform base URL.
func WithHost(host string) Option {
	return func(config *client.Config) {
		config.Host = host
	}
}

// WithSecrets configures the webhook secrets used to sign outbound
// requests and verify inbound ones. Secrets are held by the caller;
// the SDK never reads them from the process environment.
func WithSecrets(secrets auth.Secrets) Option {
	return func(config *client.Config) {
		config.Secrets = secrets
	}
}

// WithMaxSkew overrides the replay window for inbound webhook
// verification. The default is [auth.DefaultMaxSkew]. It may be given
// in any order relative to WithSecrets.
func WithMaxSkew(maxSkew time.Duration) Option {
	return func(config *client.Config) {
		config.MaxSkew = maxSkew
	}
}

// WithLogger configures the logger used by the SDK's webhook handlers
// when none is passed to them explicitly. If not specified nothing is
// logged.
func WithLogger(logger zerolog.Logger) Option {
	return func(config *client.Config) {
		config.Logger = &logger
	}
}

// WithClock configures the SDK to use the specified clock.
//
// This is useful for testing with a mocked clock, if not
// specified a real clock will be used.
func WithClock(clock clock.Clock) Option {
	return func(config *client.Config) {
		config.Clock = clock
	}
}
