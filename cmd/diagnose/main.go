package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"log"
	"os"
	"wallcheck/internal/config"
	"wallcheck/internal/model"
	"wallcheck/internal/scoring"
	"wallcheck/internal/service"
)

func main() {
	var (
		answersPath = flag.String("answers", "", "JSON file with answers, e.g. {\"Q1\": 4, \"Q2\": 6}")
		freeText    = flag.String("free-text", "", "Optional free-text commentary")
		endpoint    = flag.String("endpoint", "", "Analyze endpoint (default: ANALYZE_ENDPOINT)")
		mock        = flag.Bool("mock", false, "Use the canned report instead of calling the endpoint")
	)
	flag.Parse()

	if *answersPath == "" {
		log.Fatal("--answers is required")
	}
	blob, err := os.ReadFile(*answersPath)
	if err != nil {
		log.Fatalf("read answers: %v", err)
	}
	var answers model.AnswerSet
	if err := json.Unmarshal(blob, &answers); err != nil {
		log.Fatalf("parse answers: %v", err)
	}

	cfg := config.Load()
	if *endpoint != "" {
		cfg.Client.Endpoint = *endpoint
	}
	if *mock {
		cfg.Client.UseMock = true
	}

	scheme := scoring.DefaultScheme()
	d := scheme.Diagnose(answers)

	fmt.Println("Scores:")
	for _, p := range d.Chart.Points {
		fmt.Printf("  %-18s %.2f  (sd %.2f)\n", p.Label, p.Value, d.StdDev[p.Axis])
	}
	fmt.Printf("Bottleneck: %s (%s)\n", d.BottleneckLabel, d.BottleneckAxis)
	fmt.Printf("Lowest questions: %s\n\n", d.LowestQuestions)

	client := service.NewAnalysisClient(cfg.Client, scheme)
	res := client.Analyze(context.Background(), d.Scores, answers, *freeText)
	if !res.Success {
		log.Printf("analysis unavailable: %s", res.Error)
	}
	fmt.Println(res.Text())
}
