package ingestsdk

import (
	"github.com/benbjohnson/clock"

	"go.ellipsesearch.dev/ingest-sdk/internal/client"
	"go.ellipsesearch.dev/ingest-sdk/internal/conf"
	"go.ellipsesearch.dev/ingest-sdk/rpaingest"
)

// New creates a new SDK with the specified options.
func New(options ...Option) *SDK {
	// Create the raw client
	cfg := &client.Config{
		Clock: clock.New(),
	}
	for _, option := range options {
		option(cfg)
	}
	rawClient := client.New(cfg)

	// Now create the SDK struct
	return &SDK{
		RPAIngest: rpaingest.NewClient(rawClient),
	}
}

// FromConfigFile creates a new SDK configured from the TOML file at
// path. Options given here are applied after the file, so they win
// over file values.
func FromConfigFile(path string, options ...Option) (*SDK, error) {
	f, err := conf.Load(path)
	if err != nil {
		return nil, err
	}

	fileOptions := []Option{
		WithHost(f.Host),
		WithSecrets(f.Secrets()),
	}
	return New(append(fileOptions, options...)...), nil
}

// SDK is the main SDK for communicating with the EllipseSearch platform.
type SDK struct {
	// RPAIngest is the client for the platform's RPA result ingest
	// API, including the webhook handler for the receiving side.
	RPAIngest *rpaingest.Client
}
