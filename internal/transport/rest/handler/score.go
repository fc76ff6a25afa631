package handler

import (
	"net/http"
	"wallcheck/internal/model"
	"wallcheck/internal/scoring"
)

// ScoreHandler exposes the scoring engine
type ScoreHandler struct {
	scheme *scoring.Scheme
}

// NewScoreHandler creates a new score handler
func NewScoreHandler(scheme *scoring.Scheme) *ScoreHandler {
	return &ScoreHandler{scheme: scheme}
}

// ScoreRequest is the request body for scoring answers
type ScoreRequest struct {
	Answers model.AnswerSet `json:"answers"`
}

// Score handles POST /api/scores
func (h *ScoreHandler) Score(w http.ResponseWriter, r *http.Request) {
	var req ScoreRequest
	if !decodeBody(w, r, &req) {
		return
	}

	writeJSON(w, http.StatusOK, h.scheme.Diagnose(req.Answers))
}
