package client

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"net/http"

	jsoniter "github.com/json-iterator/go"
	"github.com/rs/zerolog"

	"go.ellipsesearch.dev/ingest-sdk/pkg/auth"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// Client is the underlying raw client for communicating with the
// EllipseSearch platform ingest API.
//
// It is injected into each service struct by the main [ingestsdk] package.
type Client struct {
	cfg      *Config
	verifier *auth.Verifier
}

func New(cfg *Config) *Client {
	if cfg.MaxSkew > 0 {
		cfg.Secrets.MaxSkew = cfg.MaxSkew
	}
	if cfg.Logger == nil {
		nop := zerolog.Nop()
		cfg.Logger = &nop
	}
	return &Client{
		cfg:      cfg,
		verifier: auth.NewVerifier(cfg.Secrets, cfg.Clock),
	}
}

// Logger returns the logger handlers fall back to when none is given
// explicitly. Never nil.
func (c *Client) Logger() *zerolog.Logger {
	return c.cfg.Logger
}

// SignedPost performs a signed POST request to the specified path.
func (c *Client) SignedPost(ctx context.Context, path string, body, response any) error {
	return c.signedDo(ctx, http.MethodPost, path, body, response)
}

// SignedPut performs a signed PUT request to the specified path.
func (c *Client) SignedPut(ctx context.Context, path string, body, response any) error {
	return c.signedDo(ctx, http.MethodPut, path, body, response)
}

func (c *Client) signedDo(ctx context.Context, method, path string, body, response any) error {
	bodyBytes, err := json.Marshal(body)
	if err != nil {
		return fmt.Errorf("failed to marshal request body: %w", err)
	}

	// Sign the exact bytes going on the wire. Marshalling again after
	// this point would invalidate the signature.
	headers := auth.Sign(c.cfg.Secrets, c.cfg.Clock, bodyBytes)

	req, err := http.NewRequestWithContext(
		ctx, method, fmt.Sprintf("%s%s", c.cfg.Host, path), bytes.NewReader(bodyBytes),
	)
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}

	req.Header.Set("User-Agent", "EllipseSearch-Ingest-SDK")
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")
	req.Header.Set("Cache-Control", "no-cache")
	headers.Apply(req.Header)

	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		return fmt.Errorf("failed to make request: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()
	if resp.StatusCode != http.StatusOK && resp.StatusCode != http.StatusCreated {
		return fmt.Errorf("unexpected response status %s", resp.Status)
	}

	if response == nil {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(response); err != nil {
		return fmt.Errorf("failed to decode response: %w", err)
	}

	return nil
}

// VerifyRequest reads the request body and classifies the request's
// authenticity. The body bytes are returned so the caller can decode
// them after an accepted verdict; req.Body is consumed either way.
func (c *Client) VerifyRequest(req *http.Request) ([]byte, auth.Verdict, error) {
	bodyBytes, err := io.ReadAll(req.Body)
	if err != nil {
		return nil, auth.Verdict{}, fmt.Errorf("unable to read request body: %w", err)
	}

	verdict := c.verifier.Verify(auth.FromHTTPRequest(req, bodyBytes))
	return bodyBytes, verdict, nil
}
