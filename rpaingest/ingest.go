package rpaingest

import (
	"context"
	"fmt"

	"go.ellipsesearch.dev/ingest-sdk/rpaingest/types"
)

// ingestPath is the platform's RPA ingest endpoint. Batches are
// registered with PUT, events are delivered with POST.
const ingestPath = "/api/analysis/rpa-ingest"

// CreateBatch registers an RPA run with the platform before prompts
// execute and returns the batch ID results should be reported under.
func (c *Client) CreateBatch(ctx context.Context, params *types.BatchParams) (string, error) {
	if err := params.Validate(); err != nil {
		return "", fmt.Errorf("invalid batch params: %w", err)
	}

	resp := &types.BatchResponse{}
	if err := c.client.SignedPut(ctx, ingestPath, params, resp); err != nil {
		return "", fmt.Errorf("unable to create analysis batch: %w", err)
	}

	return resp.BatchID, nil
}

// SendResult delivers a single prompt_completed event to the platform
// for storage and analysis. It returns the platform's ingest response
// and any error encountered.
func (c *Client) SendResult(ctx context.Context, event *types.Envelope) (*types.IngestResponse, error) {
	if event.Event == "" {
		event.Event = types.EventPromptCompleted
	}
	if err := event.Validate(); err != nil {
		return nil, fmt.Errorf("invalid %s event: %w", types.EventPromptCompleted, err)
	}

	resp := &types.IngestResponse{}
	if err := c.client.SignedPost(ctx, ingestPath, event, resp); err != nil {
		return nil, fmt.Errorf("unable to send prompt result: %w", err)
	}

	return resp, nil
}

// CompleteRun notifies the platform that the RPA run has finished.
func (c *Client) CompleteRun(ctx context.Context, event *types.Envelope) error {
	if event.Event == "" {
		event.Event = types.EventRunCompleted
	}
	if err := event.Validate(); err != nil {
		return fmt.Errorf("invalid %s event: %w", types.EventRunCompleted, err)
	}

	if err := c.client.SignedPost(ctx, ingestPath, event, nil); err != nil {
		return fmt.Errorf("unable to send run completion: %w", err)
	}

	return nil
}
