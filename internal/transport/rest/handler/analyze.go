package handler

import (
	"errors"
	"log"
	"net"
	"net/http"
	"strings"
	"wallcheck/internal/cache"
	"wallcheck/internal/model"
	"wallcheck/internal/service"
)

// AnalyzeHandler proxies diagnostics to the upstream AI workflow
type AnalyzeHandler struct {
	workflowSvc *service.WorkflowService
	limiter     cache.RateLimiter
	trustProxy  bool
}

// NewAnalyzeHandler creates a new analyze handler; limiter may be nil.
// X-Forwarded-For is only consulted for rate limiting when trustProxy is set.
func NewAnalyzeHandler(workflowSvc *service.WorkflowService, limiter cache.RateLimiter, trustProxy bool) *AnalyzeHandler {
	return &AnalyzeHandler{
		workflowSvc: workflowSvc,
		limiter:     limiter,
		trustProxy:  trustProxy,
	}
}

// Analyze handles POST /api/analyze. Every request gets exactly one reply and
// at most one upstream call.
func (h *AnalyzeHandler) Analyze(w http.ResponseWriter, r *http.Request) {
	if r.Method == http.MethodOptions {
		w.WriteHeader(http.StatusOK)
		return
	}
	if r.Method != http.MethodPost {
		MethodNotAllowed(w, r)
		return
	}

	if !h.workflowSvc.IsEnabled() {
		log.Println("analyze: DIFY_API_KEY is not configured")
		writeJSON(w, http.StatusInternalServerError, model.AnalyzeResponse{
			Success: false,
			Error:   service.ErrWorkflowNotConfigured.Error(),
			Message: "Server configuration error: the analysis API key is not set",
		})
		return
	}

	if h.limiter != nil {
		allowed, err := h.limiter.Allow(r.Context(), h.clientID(r))
		if err != nil {
			// Fail open when the limiter store is unreachable
			log.Printf("analyze: rate limiter unavailable: %v", err)
		} else if !allowed {
			writeError(w, http.StatusTooManyRequests, "too many analysis requests, try again in a minute")
			return
		}
	}

	var req model.AnalyzeRequest
	if !decodeBody(w, r, &req) {
		return
	}

	outcome, err := h.workflowSvc.Run(r.Context(), &req)
	if err != nil {
		var failed *service.WorkflowFailedError
		if errors.As(err, &failed) {
			log.Printf("analyze: workflow failed: %s", failed.Message)
			writeJSON(w, http.StatusBadRequest, model.AnalyzeResponse{
				Success: false,
				Error:   failed.Message,
			})
			return
		}

		log.Printf("analyze: workflow error: %v", err)
		writeJSON(w, http.StatusInternalServerError, model.AnalyzeResponse{
			Success: false,
			Error:   err.Error(),
			Message: "Could not connect to the analysis workflow",
		})
		return
	}

	writeJSON(w, http.StatusOK, model.AnalyzeResponse{
		Success:  true,
		Analysis: outcome.Analysis,
		Raw:      outcome.Raw,
	})
}

// clientID identifies the caller for rate limiting. The peer address is used
// unless the server sits behind a trusted proxy that sets X-Forwarded-For.
func (h *AnalyzeHandler) clientID(r *http.Request) string {
	if h.trustProxy {
		if fwd := r.Header.Get("X-Forwarded-For"); fwd != "" {
			if first := strings.TrimSpace(strings.Split(fwd, ",")[0]); first != "" {
				return first
			}
		}
	}
	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return r.RemoteAddr
	}
	return host
}
