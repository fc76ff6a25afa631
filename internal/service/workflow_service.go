package service

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log"
	"net/http"
	"time"
	"wallcheck/internal/config"
	"wallcheck/internal/model"

	"github.com/google/uuid"
)

// ErrWorkflowNotConfigured is returned when the workflow credential is missing
var ErrWorkflowNotConfigured = errors.New("DIFY_API_KEY is not configured")

// WorkflowFailedError carries the error text of a run that ended as "failed"
type WorkflowFailedError struct {
	Message string
}

func (e *WorkflowFailedError) Error() string {
	return e.Message
}

// WorkflowOutcome is a successful upstream run
type WorkflowOutcome struct {
	Analysis string
	Raw      json.RawMessage
}

// WorkflowService forwards analyze requests to the upstream AI workflow
type WorkflowService struct {
	config     *config.WorkflowConfig
	client     *http.Client
	extractors []Extractor
	newUserID  func() string
}

// NewWorkflowService creates a new workflow service
func NewWorkflowService(cfg *config.WorkflowConfig) *WorkflowService {
	return &WorkflowService{
		config: cfg,
		client: &http.Client{
			Timeout: time.Duration(cfg.TimeoutMS) * time.Millisecond,
		},
		extractors: DefaultExtractors,
		newUserID:  func() string { return "user-" + uuid.NewString() },
	}
}

// IsEnabled returns true if the workflow credential is configured
func (s *WorkflowService) IsEnabled() bool {
	return s.config.IsEnabled()
}

// BuildRequest turns an analyze request into the upstream workflow body
func (s *WorkflowService) BuildRequest(req *model.AnalyzeRequest) *model.WorkflowRequest {
	return &model.WorkflowRequest{
		Inputs: model.WorkflowInputs{
			HumanInternal:       string(req.Scores.HumanInternal),
			ResourceInternal:    string(req.Scores.ResourceInternal),
			HumanExternal:       string(req.Scores.HumanExternal),
			EnvironmentExternal: string(req.Scores.EnvironmentExternal),
			BottleneckAxis:      string(req.BottleneckAxis),
			LowestQuestions:     req.LowestQuestions,
			FreeText:            req.FreeText,
		},
		ResponseMode: "blocking",
		User:         s.newUserID(),
	}
}

// Run makes exactly one call to the workflow. It returns ErrWorkflowNotConfigured
// without touching the network when the credential is missing, and a
// *WorkflowFailedError when the run itself reports failure.
func (s *WorkflowService) Run(ctx context.Context, req *model.AnalyzeRequest) (*WorkflowOutcome, error) {
	if !s.config.IsEnabled() {
		return nil, ErrWorkflowNotConfigured
	}

	payload := s.BuildRequest(req)
	jsonBody, err := json.Marshal(payload)
	if err != nil {
		return nil, err
	}

	log.Printf("workflow request: url=%s key=%s bottleneck=%s lowest=%q", s.config.URL, s.config.MaskedKey(), payload.Inputs.BottleneckAxis, payload.Inputs.LowestQuestions)

	httpReq, err := http.NewRequestWithContext(ctx, "POST", s.config.URL, bytes.NewBuffer(jsonBody))
	if err != nil {
		return nil, err
	}
	httpReq.Header.Set("Authorization", "Bearer "+s.config.APIKey)
	httpReq.Header.Set("Content-Type", "application/json")

	resp, err := s.client.Do(httpReq)
	if err != nil {
		return nil, fmt.Errorf("workflow request: %w", err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("read workflow response: %w", err)
	}

	var body any
	if err := json.Unmarshal(raw, &body); err != nil {
		return nil, fmt.Errorf("decode workflow response (status %d): %w", resp.StatusCode, err)
	}
	log.Printf("workflow response: status=%d bytes=%d", resp.StatusCode, len(raw))

	if msg, failed := WorkflowFailure(body); failed {
		return nil, &WorkflowFailedError{Message: msg}
	}
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		var msg string
		if obj, ok := body.(map[string]any); ok {
			msg, _ = obj["message"].(string)
		}
		return nil, fmt.Errorf("workflow returned status %d: %s", resp.StatusCode, msg)
	}

	return &WorkflowOutcome{
		Analysis: ExtractAnalysis(body, s.extractors),
		Raw:      json.RawMessage(raw),
	}, nil
}
