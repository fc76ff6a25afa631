package main

import (
	"context"
	"log"
	"time"
	"wallcheck/internal/config"
	"wallcheck/internal/repository"
	"wallcheck/internal/scoring"
	"wallcheck/internal/service"

	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

func main() {
	cfg := config.Load()
	mongoURI := cfg.Mongo.URI
	if mongoURI == "" {
		mongoURI = "mongodb://localhost:27017"
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	client, err := mongo.Connect(ctx, options.Client().ApplyURI(mongoURI))
	if err != nil {
		log.Fatalf("Failed to connect to MongoDB: %v", err)
	}
	defer client.Disconnect(ctx)

	questionRepo := repository.NewQuestionRepo(client.Database(cfg.Mongo.Database))
	questionSvc := service.NewQuestionService(questionRepo, scoring.DefaultScheme())

	n, err := questionSvc.Seed(ctx)
	if err != nil {
		log.Fatalf("Failed to seed questions: %v", err)
	}
	log.Printf("Seeded %d questions into %s.questions", n, cfg.Mongo.Database)
}
