package service

import (
	"context"
	"log"
	"wallcheck/internal/model"
	"wallcheck/internal/repository"
	"wallcheck/internal/scoring"
)

// QuestionService serves the question catalog. Without a repository it serves
// the built-in catalog.
type QuestionService struct {
	questionRepo repository.QuestionRepo
	scheme       *scoring.Scheme
}

// NewQuestionService creates a new question service; questionRepo may be nil
func NewQuestionService(questionRepo repository.QuestionRepo, scheme *scoring.Scheme) *QuestionService {
	return &QuestionService{
		questionRepo: questionRepo,
		scheme:       scheme,
	}
}

// List returns every question in order
func (s *QuestionService) List(ctx context.Context) ([]*model.Question, error) {
	if s.questionRepo == nil {
		return DefaultQuestions(s.scheme), nil
	}

	questions, err := s.questionRepo.GetAll(ctx)
	if err != nil {
		return nil, err
	}
	if len(questions) == 0 {
		log.Println("question catalog is empty, serving built-in questions (run cmd/seed)")
		return DefaultQuestions(s.scheme), nil
	}
	return questions, nil
}

// Get returns one question, or nil if it does not exist
func (s *QuestionService) Get(ctx context.Context, id string) (*model.Question, error) {
	if s.questionRepo != nil {
		q, err := s.questionRepo.GetByID(ctx, id)
		if err != nil || q != nil {
			return q, err
		}
	}
	for _, q := range DefaultQuestions(s.scheme) {
		if q.ID == id {
			return q, nil
		}
	}
	return nil, nil
}

// Seed writes the built-in catalog into the repository
func (s *QuestionService) Seed(ctx context.Context) (int, error) {
	if s.questionRepo == nil {
		return 0, nil
	}
	questions := DefaultQuestions(s.scheme)
	for _, q := range questions {
		if err := s.questionRepo.Upsert(ctx, q); err != nil {
			return 0, err
		}
	}
	return len(questions), nil
}
