package service

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log"
	"net/http"
	"time"
	"wallcheck/internal/config"
	"wallcheck/internal/model"
	"wallcheck/internal/scoring"
)

// AnalysisClient is the caller side of the analyze endpoint. One Analyze call
// is one request: no retries, no caching.
type AnalysisClient struct {
	config *config.ClientConfig
	scheme *scoring.Scheme
	client *http.Client
}

// NewAnalysisClient creates a new analysis client
func NewAnalysisClient(cfg *config.ClientConfig, scheme *scoring.Scheme) *AnalysisClient {
	return &AnalysisClient{
		config: cfg,
		scheme: scheme,
		client: &http.Client{
			Timeout: time.Duration(cfg.TimeoutMS) * time.Millisecond,
		},
	}
}

// Analyze sends the diagnostic to the responder and returns displayable text in
// every case. Failures carry a fallback built from the scores alone.
func (c *AnalysisClient) Analyze(ctx context.Context, scores model.ScoreSet, answers model.AnswerSet, freeText string) model.AnalysisResult {
	bottleneck := c.scheme.ClassifyBottleneck(scores)
	lowest := c.scheme.DigestLowestQuestions(answers)

	if c.config.UseMock {
		return model.AnalysisResult{
			Success:  true,
			Analysis: MockNarrative(c.scheme, bottleneck, lowest),
		}
	}

	resp, err := c.post(ctx, &model.AnalyzeRequest{
		Scores:          model.NewWireScores(scores),
		BottleneckAxis:  bottleneck,
		LowestQuestions: lowest,
		FreeText:        freeText,
	})
	if err != nil {
		log.Printf("analysis request failed: %v", err)
		return c.failure(scores, err.Error())
	}

	if !resp.Success {
		msg := resp.Error
		if msg == "" {
			msg = resp.Message
		}
		if msg == "" {
			msg = "API request failed"
		}
		log.Printf("analysis rejected: %s", msg)
		return c.failure(scores, msg)
	}

	analysis := CleanResponse(resp.Analysis)
	if analysis == "" {
		log.Println("analysis response carried no text")
		return c.failure(scores, "empty analysis")
	}

	return model.AnalysisResult{
		Success:  true,
		Analysis: analysis,
		Raw:      resp.Raw,
	}
}

func (c *AnalysisClient) failure(scores model.ScoreSet, msg string) model.AnalysisResult {
	return model.AnalysisResult{
		Success:  false,
		Error:    msg,
		Fallback: FallbackNarrative(c.scheme, scores),
	}
}

// post performs the single round trip. Error replies (4xx/5xx) that still carry
// a JSON body are returned as a decoded response so their message survives.
func (c *AnalysisClient) post(ctx context.Context, payload *model.AnalyzeRequest) (*model.AnalyzeResponse, error) {
	jsonBody, err := json.Marshal(payload)
	if err != nil {
		return nil, err
	}

	req, err := http.NewRequestWithContext(ctx, "POST", c.config.Endpoint, bytes.NewBuffer(jsonBody))
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.client.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, err
	}

	var out model.AnalyzeResponse
	if err := json.Unmarshal(body, &out); err != nil {
		return nil, fmt.Errorf("decode analysis response (status %d): %w", resp.StatusCode, err)
	}
	if resp.StatusCode != http.StatusOK && out.Success {
		return nil, fmt.Errorf("analysis endpoint returned status %d", resp.StatusCode)
	}
	return &out, nil
}
