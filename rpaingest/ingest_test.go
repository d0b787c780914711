package rpaingest

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/benbjohnson/clock"
	qt "github.com/frankban/quicktest"

	"go.ellipsesearch.dev/ingest-sdk/internal/client"
	"go.ellipsesearch.dev/ingest-sdk/pkg/auth"
	"go.ellipsesearch.dev/ingest-sdk/rpaingest/types"
)

// newIngestServer stands in for the platform's ingest endpoint: it
// authenticates each request with the same secrets the worker signs
// with and answers with the given JSON body.
func newIngestServer(c *qt.C, secrets auth.Secrets, clk clock.Clock, respond string) *httptest.Server {
	verifier := client.New(&client.Config{Clock: clk, Secrets: secrets})
	return httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, req *http.Request) {
		_, verdict, err := verifier.VerifyRequest(req)
		c.Check(err, qt.IsNil)
		if !verdict.Accepted() {
			http.Error(w, verdict.Reason(), verdict.StatusHint)
			return
		}
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(respond))
	}))
}

func TestCreateBatch(t *testing.T) {
	t.Parallel()
	c := qt.New(t)

	secrets := auth.Secrets{SigningKey: "signing-key"}
	mockClock := clock.NewMock()
	mockClock.Set(time.Unix(1700000000, 0))

	server := newIngestServer(c, secrets, mockClock, `{"batch_id":"batch_42"}`)
	defer server.Close()

	sdkClient := NewClient(client.New(&client.Config{
		Host:    server.URL,
		Clock:   mockClock,
		Secrets: secrets,
	}))

	batchID, err := sdkClient.CreateBatch(context.Background(), &types.BatchParams{
		BrandID:   "brand_123",
		PromptIDs: []string{"p1", "p2"},
		Engines:   []string{"chatgpt", "gemini"},
		RunID:     "20240101_120000",
	})
	c.Assert(err, qt.IsNil)
	c.Assert(batchID, qt.Equals, "batch_42")

	// Invalid params never reach the wire.
	_, err = sdkClient.CreateBatch(context.Background(), &types.BatchParams{BrandID: "brand_123"})
	c.Assert(err, qt.ErrorMatches, `invalid batch params: .*`)
}

func TestSendResultAndCompleteRun(t *testing.T) {
	t.Parallel()
	c := qt.New(t)

	secrets := auth.Secrets{BearerToken: "shared-secret"}
	mockClock := clock.NewMock()
	mockClock.Set(time.Unix(1700000000, 0))

	server := newIngestServer(c, secrets, mockClock, `{"simulation_id":"sim_7","is_visible":true}`)
	defer server.Close()

	sdkClient := NewClient(client.New(&client.Config{
		Host:    server.URL,
		Clock:   mockClock,
		Secrets: secrets,
	}))

	resp, err := sdkClient.SendResult(context.Background(), &types.Envelope{
		RunID:   "20240101_120000",
		BrandID: "brand_123",
		Result:  []byte(`{"engine":"chatgpt","visible":true}`),
	})
	c.Assert(err, qt.IsNil)
	c.Assert(resp.SimulationID, qt.Equals, "sim_7")
	c.Assert(resp.IsVisible, qt.Equals, true)

	err = sdkClient.CompleteRun(context.Background(), &types.Envelope{
		RunID:   "20240101_120000",
		Summary: []byte(`{"total":2,"visible":1}`),
	})
	c.Assert(err, qt.IsNil)

	// An event with no payload fails validation locally.
	_, err = sdkClient.SendResult(context.Background(), &types.Envelope{RunID: "r1"})
	c.Assert(err, qt.ErrorMatches, `invalid prompt_completed event: .*`)
}

func TestSignedRequestRejectedWithWrongSecret(t *testing.T) {
	t.Parallel()
	c := qt.New(t)

	mockClock := clock.NewMock()
	mockClock.Set(time.Unix(1700000000, 0))

	// Server and worker disagree on the secret.
	server := newIngestServer(c, auth.Secrets{SigningKey: "server-key"}, mockClock, `{}`)
	defer server.Close()

	sdkClient := NewClient(client.New(&client.Config{
		Host:    server.URL,
		Clock:   mockClock,
		Secrets: auth.Secrets{SigningKey: "worker-key"},
	}))

	err := sdkClient.CompleteRun(context.Background(), &types.Envelope{
		RunID:   "r1",
		Summary: []byte(`{"total":0}`),
	})
	c.Assert(err, qt.ErrorMatches, `unable to send run completion: unexpected response status .*`)
}
