package service

import (
	"context"
	"errors"
	"sort"
	"testing"
	"wallcheck/internal/model"
	"wallcheck/internal/scoring"
)

type memQuestionRepo struct {
	questions map[string]*model.Question
	err       error
}

func newMemQuestionRepo() *memQuestionRepo {
	return &memQuestionRepo{questions: map[string]*model.Question{}}
}

func (r *memQuestionRepo) Upsert(ctx context.Context, q *model.Question) error {
	if r.err != nil {
		return r.err
	}
	r.questions[q.ID] = q
	return nil
}

func (r *memQuestionRepo) GetByID(ctx context.Context, id string) (*model.Question, error) {
	if r.err != nil {
		return nil, r.err
	}
	return r.questions[id], nil
}

func (r *memQuestionRepo) GetAll(ctx context.Context) ([]*model.Question, error) {
	if r.err != nil {
		return nil, r.err
	}
	out := make([]*model.Question, 0, len(r.questions))
	for _, q := range r.questions {
		out = append(out, q)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Order < out[j].Order })
	return out, nil
}

func TestDefaultQuestionsMatchScheme(t *testing.T) {
	scheme := scoring.DefaultScheme()
	questions := DefaultQuestions(scheme)
	if len(questions) != 20 {
		t.Fatalf("questions = %d, want 20", len(questions))
	}
	for i, q := range questions {
		axis, ok := scheme.AxisOf(q.ID)
		if !ok || axis != q.Axis {
			t.Fatalf("%s axis = %s, scheme says %s", q.ID, q.Axis, axis)
		}
		if q.Order != i+1 {
			t.Fatalf("%s order = %d, want %d", q.ID, q.Order, i+1)
		}
		if q.Text == "" || q.Wall != scheme.Label(q.Axis) {
			t.Fatalf("incomplete question %+v", q)
		}
	}
	if questions[0].ID != "Q1" || questions[19].ID != "Q20" {
		t.Fatalf("unexpected ids %s..%s", questions[0].ID, questions[19].ID)
	}
}

func TestQuestionServiceWithoutRepo(t *testing.T) {
	svc := NewQuestionService(nil, scoring.DefaultScheme())
	questions, err := svc.List(context.Background())
	if err != nil || len(questions) != 20 {
		t.Fatalf("List = %d, %v", len(questions), err)
	}
	q, err := svc.Get(context.Background(), "Q12")
	if err != nil || q == nil || q.Axis != model.AxisHumanExternal {
		t.Fatalf("Get(Q12) = %+v, %v", q, err)
	}
	if q, _ := svc.Get(context.Background(), "Q99"); q != nil {
		t.Fatalf("Get(Q99) = %+v, want nil", q)
	}
	if n, err := svc.Seed(context.Background()); n != 0 || err != nil {
		t.Fatalf("Seed without repo = %d, %v", n, err)
	}
}

func TestQuestionServiceSeedAndRead(t *testing.T) {
	repo := newMemQuestionRepo()
	svc := NewQuestionService(repo, scoring.DefaultScheme())

	n, err := svc.Seed(context.Background())
	if err != nil || n != 20 {
		t.Fatalf("Seed = %d, %v", n, err)
	}

	repo.questions["Q1"] = &model.Question{ID: "Q1", Order: 1, Axis: model.AxisHumanInternal, Text: "edited"}
	questions, err := svc.List(context.Background())
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if len(questions) != 20 || questions[0].Text != "edited" {
		t.Fatalf("repo content not served: %d %q", len(questions), questions[0].Text)
	}
}

func TestQuestionServiceRepoErrors(t *testing.T) {
	repo := newMemQuestionRepo()
	repo.err = errors.New("mongo down")
	svc := NewQuestionService(repo, scoring.DefaultScheme())

	if _, err := svc.List(context.Background()); err == nil {
		t.Fatal("expected List error")
	}
	if _, err := svc.Seed(context.Background()); err == nil {
		t.Fatal("expected Seed error")
	}
}
