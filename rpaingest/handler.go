package rpaingest

import (
	"context"
	"fmt"
	"net/http"

	jsoniter "github.com/json-iterator/go"
	"github.com/rs/zerolog"

	"go.ellipsesearch.dev/ingest-sdk/internal/jsonerr"
	"go.ellipsesearch.dev/ingest-sdk/rpaingest/types"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// EventCallback is invoked for each authenticated, decoded ingest
// event. Returning an error nacks the delivery with a 500 so the
// sender can retry.
type EventCallback = func(ctx context.Context, event *types.Envelope) error

// WebhookHandler returns an [http.HandlerFunc] that receives RPA
// ingest events pushed over HTTP.
//
// Each request is authenticated against the SDK's configured webhook
// secrets before any decoding happens; rejected requests are answered
// with the verdict's status hint and reason. The reason string never
// contains secret material and is logged at warn level. Authenticated
// requests are decoded, validated, and handed to the callback.
//
// A nil logger falls back to the SDK's configured logger (WithLogger).
func (c *Client) WebhookHandler(logger *zerolog.Logger, callback EventCallback) http.HandlerFunc {
	if logger == nil {
		logger = c.client.Logger()
	}
	return func(w http.ResponseWriter, req *http.Request) {
		body, verdict, err := c.client.VerifyRequest(req)
		if err != nil {
			logger.Err(err).Msg("error while reading ingest webhook request")
			jsonerr.Error(w, err, http.StatusInternalServerError)
			return
		}
		if !verdict.Accepted() {
			logger.Warn().
				Int("status", verdict.StatusHint).
				Str("reason", verdict.Reason()).
				Msg("rejected ingest webhook request")
			jsonerr.Reject(w, verdict)
			return
		}

		event := &types.Envelope{}
		if err := json.Unmarshal(body, event); err != nil {
			logger.Err(err).Msg("error while decoding ingest webhook event")
			jsonerr.Error(w, fmt.Errorf("unable to decode event: %w", err), http.StatusBadRequest)
			return
		}
		if err := event.Validate(); err != nil {
			logger.Err(err).Str("event", event.Event).Msg("invalid ingest webhook event")
			jsonerr.Error(w, err, http.StatusBadRequest)
			return
		}

		logger.Debug().
			Str("event", event.Event).
			Str("run_id", event.RunID).
			Str("mode", string(verdict.Mode)).
			Msg("accepted ingest webhook event")

		if err := callback(req.Context(), event); err != nil {
			logger.Err(err).Str("event", event.Event).Msg("error while handling ingest webhook event")
			jsonerr.Error(w, err, http.StatusInternalServerError)
			return
		}

		jsonerr.Error(w, nil, 0)
	}
}
