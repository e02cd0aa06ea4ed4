package usecase

import (
	"context"
	"errors"
	"testing"

	"panduan-karier/internal/repository"

	"github.com/google/uuid"
)

type mockFeedbackRepo struct {
	inserted  []repository.Feedback
	insertErr error
	analytics repository.FeedbackAnalytics
}

func (m *mockFeedbackRepo) Insert(_ context.Context, fb repository.Feedback) error {
	if m.insertErr != nil {
		return m.insertErr
	}
	m.inserted = append(m.inserted, fb)
	return nil
}

func (m *mockFeedbackRepo) Analytics(context.Context) (repository.FeedbackAnalytics, error) {
	return m.analytics, nil
}

func TestFeedbackUsecase_Submit(t *testing.T) {
	repo := &mockFeedbackRepo{}
	uc := NewFeedbackUsecase(repo)

	id, err := uc.Submit(context.Background(), FeedbackInput{
		PersonaName:  "Si Realistis yang Kreatif",
		TopThree:     []string{"R", "A", "S"},
		TopMajors:    []string{"Teknik Mesin"},
		Accuracy:     4,
		Satisfaction: 5,
	})
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if id == uuid.Nil {
		t.Fatalf("expected a feedback id")
	}
	if len(repo.inserted) != 1 {
		t.Fatalf("expected 1 insert, got %d", len(repo.inserted))
	}
	if repo.inserted[0].TopThree != "RAS" {
		t.Fatalf("expected joined topThree RAS, got %q", repo.inserted[0].TopThree)
	}
	if repo.inserted[0].CreatedAt.IsZero() {
		t.Fatalf("expected a server timestamp")
	}
}

func TestFeedbackUsecase_Submit_RequiresRatings(t *testing.T) {
	uc := NewFeedbackUsecase(&mockFeedbackRepo{})

	cases := []FeedbackInput{
		{Accuracy: 0, Satisfaction: 5},
		{Accuracy: 4, Satisfaction: 0},
		{Accuracy: 6, Satisfaction: 3},
		{Accuracy: 3, Satisfaction: -1},
	}
	for _, in := range cases {
		if _, err := uc.Submit(context.Background(), in); !errors.Is(err, ErrInvalidInput) {
			t.Fatalf("expected ErrInvalidInput for %+v, got %v", in, err)
		}
	}
}

func TestFeedbackUsecase_Submit_RepoError(t *testing.T) {
	uc := NewFeedbackUsecase(&mockFeedbackRepo{insertErr: errors.New("db down")})

	if _, err := uc.Submit(context.Background(), FeedbackInput{Accuracy: 3, Satisfaction: 3}); !errors.Is(err, ErrInternal) {
		t.Fatalf("expected ErrInternal, got %v", err)
	}
}

func TestFeedbackUsecase_Analytics(t *testing.T) {
	repo := &mockFeedbackRepo{analytics: repository.FeedbackAnalytics{
		TotalFeedback:   2,
		AvgAccuracy:     4.5,
		AvgSatisfaction: 4.0,
	}}
	uc := NewFeedbackUsecase(repo)

	out, err := uc.Analytics(context.Background())
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if out.TotalFeedback != 2 || out.AvgAccuracy != 4.5 {
		t.Fatalf("unexpected analytics: %+v", out)
	}
}
