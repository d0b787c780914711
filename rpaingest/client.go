package rpaingest

import (
	"go.ellipsesearch.dev/ingest-sdk/internal/client"
)

// Client is the SDK for the platform's RPA ingest API: it pushes run
// results to the platform and authenticates result webhooks pushed to
// a receiving endpoint.
type Client struct {
	client *client.Client
}

func NewClient(client *client.Client) *Client {
	return &Client{client}
}
