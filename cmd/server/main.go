package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"
	"wallcheck/internal/cache"
	"wallcheck/internal/config"
	"wallcheck/internal/repository"
	"wallcheck/internal/scoring"
	"wallcheck/internal/service"
	"wallcheck/internal/transport/rest"

	"github.com/redis/go-redis/v9"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// @title Wallcheck Diagnostic API
// @version 1.0
// @description Scoring and AI analysis proxy for the AI redesign wall diagnostic
// @host localhost:8080
// @BasePath /api
func main() {
	log.Println("started")
	ctx := context.Background()

	cfg := config.Load()
	scheme := scoring.DefaultScheme()

	log.Printf("Workflow Config:")
	log.Printf("  URL:     %s", cfg.Workflow.URL)
	log.Printf("  Timeout: %dms", cfg.Workflow.TimeoutMS)
	if cfg.Workflow.IsEnabled() {
		log.Printf("  API Key: configured ✓ (%s)", cfg.Workflow.MaskedKey())
	} else {
		log.Println("  API Key: NOT SET (/api/analyze will answer 500)")
	}

	// MongoDB connection (question catalog)
	var questionRepo repository.QuestionRepo
	if cfg.Mongo.URI == "" {
		log.Println("Warning: MONGO_URI not set, serving built-in questions")
	} else {
		mongoClient, err := mongo.Connect(ctx, options.Client().ApplyURI(cfg.Mongo.URI))
		if err != nil {
			log.Fatal("Failed to connect to MongoDB:", err)
		}
		defer mongoClient.Disconnect(ctx)

		pingCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
		defer cancel()
		if err := mongoClient.Ping(pingCtx, nil); err != nil {
			log.Fatal("Failed to ping MongoDB:", err)
		}
		log.Println("Connected to MongoDB")

		questionRepo = repository.NewQuestionRepo(mongoClient.Database(cfg.Mongo.Database))
	}

	// Redis connection (analyze rate limit)
	var limiter cache.RateLimiter
	switch {
	case cfg.Redis.Addr == "":
		log.Println("Warning: REDIS_URI not set, analyze rate limit disabled")
	case cfg.RateLimitPerMinute <= 0:
		log.Println("Analyze rate limit disabled by RATE_LIMIT_PER_MINUTE")
	default:
		rdb := redis.NewClient(&redis.Options{
			Addr: cfg.Redis.Addr,
		})
		defer rdb.Close()

		if _, err := rdb.Ping(ctx).Result(); err != nil {
			log.Fatal("Failed to ping Redis:", err)
		}
		log.Printf("Connected to Redis (analyze limit %d/min)", cfg.RateLimitPerMinute)

		limiter = cache.NewRateLimiter(rdb, cfg.RateLimitPerMinute, time.Minute)
	}

	// Initialize services
	workflowSvc := service.NewWorkflowService(cfg.Workflow)
	questionSvc := service.NewQuestionService(questionRepo, scheme)

	container := &rest.Container{
		Scheme:          scheme,
		CORS:            cfg.CORS,
		WorkflowService: workflowSvc,
		QuestionService: questionSvc,
		RateLimiter:     limiter,

		TrustProxyHeaders: cfg.TrustProxyHeaders,
	}

	router := rest.NewRouter(container)

	srv := &http.Server{
		Addr:    ":" + cfg.HTTPPort,
		Handler: router,
	}

	go func() {
		log.Printf("Server starting on :%s", cfg.HTTPPort)
		log.Println("Endpoints:")
		log.Println("  POST /api/analyze")
		log.Println("  POST /api/scores")
		log.Println("  GET  /api/questions")
		log.Println("  GET  /api/questions/{questionId}")
		log.Println("  GET  /health")

		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal("ListenAndServe:", err)
		}
	}()

	// Wait for interrupt
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Println("Shutting down server...")

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer shutdownCancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Fatal("Server forced to shutdown:", err)
	}

	log.Println("Server exited")
}
