package model

import (
	"bytes"
	"encoding/json"
	"strconv"
)

// AnalysisResult is the caller-side outcome of one analysis round trip.
// Analysis is meaningful when Success is true, Fallback otherwise.
type AnalysisResult struct {
	Success  bool            `json:"success"`
	Analysis string          `json:"analysis,omitempty"`
	Raw      json.RawMessage `json:"raw,omitempty"` // Upstream payload, diagnostics only
	Error    string          `json:"error,omitempty"`
	Fallback string          `json:"fallback,omitempty"`
}

// Text returns whichever narrative is meaningful for the result
func (r AnalysisResult) Text() string {
	if r.Success {
		return r.Analysis
	}
	return r.Fallback
}

// ScoreText is a score carried as text on the wire. It also accepts a bare JSON number.
type ScoreText string

// UnmarshalJSON accepts "3.40", 3.4 or null
func (t *ScoreText) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if bytes.Equal(data, []byte("null")) {
		*t = ""
		return nil
	}
	if len(data) > 0 && data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		*t = ScoreText(s)
		return nil
	}
	var n json.Number
	if err := json.Unmarshal(data, &n); err != nil {
		return err
	}
	*t = ScoreText(n.String())
	return nil
}

// FormatScore renders a score the way it travels on the wire
func FormatScore(v float64) ScoreText {
	return ScoreText(strconv.FormatFloat(v, 'f', 2, 64))
}

// WireScores is the scores object of an analyze request
type WireScores struct {
	HumanInternal       ScoreText `json:"human_internal"`
	ResourceInternal    ScoreText `json:"resource_internal"`
	HumanExternal       ScoreText `json:"human_external"`
	EnvironmentExternal ScoreText `json:"environment_external"`
}

// NewWireScores converts a ScoreSet to its wire form
func NewWireScores(s ScoreSet) WireScores {
	return WireScores{
		HumanInternal:       FormatScore(s.HumanInternal),
		ResourceInternal:    FormatScore(s.ResourceInternal),
		HumanExternal:       FormatScore(s.HumanExternal),
		EnvironmentExternal: FormatScore(s.EnvironmentExternal),
	}
}

// AnalyzeRequest is the body the caller posts to the responder
type AnalyzeRequest struct {
	Scores          WireScores `json:"scores"`
	BottleneckAxis  Axis       `json:"bottleneckAxis"`
	LowestQuestions string     `json:"lowestQuestions"`
	FreeText        string     `json:"free_text"`
}

// AnalyzeResponse is the responder's reply
type AnalyzeResponse struct {
	Success  bool            `json:"success"`
	Analysis string          `json:"analysis,omitempty"`
	Raw      json.RawMessage `json:"raw,omitempty"`
	Error    string          `json:"error,omitempty"`
	Message  string          `json:"message,omitempty"` // User-facing text for server errors
}

// WorkflowInputs are the named inputs of the upstream workflow
type WorkflowInputs struct {
	HumanInternal       string `json:"human_internal"`
	ResourceInternal    string `json:"resource_internal"`
	HumanExternal       string `json:"human_external"`
	EnvironmentExternal string `json:"environment_external"`
	BottleneckAxis      string `json:"bottleneck_axis"`
	LowestQuestions     string `json:"lowest_questions"`
	FreeText            string `json:"free_text"`
}

// WorkflowRequest is the body posted to the upstream workflow run endpoint
type WorkflowRequest struct {
	Inputs       WorkflowInputs `json:"inputs"`
	ResponseMode string         `json:"response_mode"` // always "blocking"
	User         string         `json:"user"`
}
