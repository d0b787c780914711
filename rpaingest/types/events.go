package types

import (
	"encoding/json"
	"errors"
)

// Event names carried in the envelope's "event" field.
const (
	EventPromptCompleted = "prompt_completed"
	EventRunCompleted    = "run_completed"
)

// Envelope is the wire format of every RPA ingest webhook event. A
// prompt_completed event carries Result; a run_completed event carries
// Summary.
type Envelope struct {
	Event           string          `json:"event"`
	RunID           string          `json:"run_id"`
	Timestamp       string          `json:"timestamp,omitempty"` // sender-local ISO 8601, informational only
	BrandID         string          `json:"brand_id,omitempty"`
	AnalysisBatchID string          `json:"analysis_batch_id,omitempty"`
	Language        string          `json:"language,omitempty"`
	Region          string          `json:"region,omitempty"`
	Result          json.RawMessage `json:"result,omitempty"`
	Summary         json.RawMessage `json:"summary,omitempty"`
}

func (e *Envelope) Validate() error {
	switch e.Event {
	case EventPromptCompleted:
		if len(e.Result) == 0 {
			return errors.New("prompt_completed event without a result")
		}
	case EventRunCompleted:
		if len(e.Summary) == 0 {
			return errors.New("run_completed event without a summary")
		}
	case "":
		return errors.New("event must be provided")
	default:
		return errors.New("unknown event " + e.Event)
	}
	if e.RunID == "" {
		return errors.New("run_id must be provided")
	}
	return nil
}

// BatchParams registers an RPA run with the platform before any
// prompts execute, so results can be tracked against a batch.
type BatchParams struct {
	BrandID   string   `json:"brand_id"`
	PromptIDs []string `json:"prompt_ids"`
	Engines   []string `json:"engines"`
	Language  string   `json:"language,omitempty"`
	Region    string   `json:"region,omitempty"`
	RunID     string   `json:"run_id"`
}

func (p *BatchParams) Validate() error {
	if p.BrandID == "" {
		return errors.New("brand_id must be provided")
	}
	if len(p.PromptIDs) == 0 {
		return errors.New("prompt_ids must be provided")
	}
	if len(p.Engines) == 0 {
		return errors.New("engines must be provided")
	}
	return nil
}

// BatchResponse is the platform's answer to batch creation.
type BatchResponse struct {
	BatchID string `json:"batch_id"`
}

// IngestResponse is the platform's answer to a prompt_completed event.
type IngestResponse struct {
	SimulationID string `json:"simulation_id,omitempty"`
	IsVisible    bool   `json:"is_visible,omitempty"`
}
