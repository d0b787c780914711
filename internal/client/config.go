package client

import (
	"time"

	"github.com/benbjohnson/clock"
	"github.com/rs/zerolog"

	"go.ellipsesearch.dev/ingest-sdk/pkg/auth"
)

// Config is the configuration for the client.
type Config struct {
	Host    string       // Base URL of the EllipseSearch platform
	Clock   clock.Clock  // The clock to use
	Secrets auth.Secrets // Webhook secrets, shared with the platform

	// Logger receives handler-level events. Nil means no logging.
	Logger *zerolog.Logger

	// MaxSkew overrides the replay window of Secrets when positive. It
	// is applied at client construction, so option order doesn't matter.
	MaxSkew time.Duration
}
