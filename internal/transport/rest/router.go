package rest

import (
	"net/http"
	"wallcheck/internal/cache"
	"wallcheck/internal/config"
	"wallcheck/internal/scoring"
	"wallcheck/internal/service"
	"wallcheck/internal/transport/rest/handler"

	"github.com/gorilla/mux"
)

// Container holds all dependencies for the router
type Container struct {
	Scheme          *scoring.Scheme
	CORS            config.CORSConfig
	WorkflowService *service.WorkflowService
	QuestionService *service.QuestionService
	RateLimiter     cache.RateLimiter // optional

	TrustProxyHeaders bool
}

// NewRouter creates the API router with all endpoints
func NewRouter(c *Container) http.Handler {
	r := mux.NewRouter()
	r.MethodNotAllowedHandler = http.HandlerFunc(handler.MethodNotAllowed)

	// Initialize handlers
	analyzeHandler := handler.NewAnalyzeHandler(c.WorkflowService, c.RateLimiter, c.TrustProxyHeaders)
	scoreHandler := handler.NewScoreHandler(c.Scheme)
	questionHandler := handler.NewQuestionHandler(c.QuestionService)

	// CORS middleware (apply first)
	r.Use(corsMiddleware(c.CORS))

	// Health check
	r.HandleFunc("/health", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		w.Write([]byte(`{"status":"ok"}`))
	}).Methods("GET")

	// Routes stay on the root router so a method mismatch reaches
	// MethodNotAllowedHandler instead of a subrouter 404.
	// The analyze handler validates methods itself.
	r.HandleFunc("/api/analyze", analyzeHandler.Analyze)
	r.HandleFunc("/api/scores", scoreHandler.Score).Methods("POST", "OPTIONS")
	r.HandleFunc("/api/questions", questionHandler.List).Methods("GET", "OPTIONS")
	r.HandleFunc("/api/questions/{questionId}", questionHandler.Get).Methods("GET", "OPTIONS")

	return r
}

func corsMiddleware(cfg config.CORSConfig) mux.MiddlewareFunc {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Header().Set("Access-Control-Allow-Origin", cfg.AllowedOrigins)
			w.Header().Set("Access-Control-Allow-Methods", cfg.AllowedMethods)
			w.Header().Set("Access-Control-Allow-Headers", cfg.AllowedHeaders)

			if r.Method == "OPTIONS" {
				w.WriteHeader(http.StatusOK)
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}
