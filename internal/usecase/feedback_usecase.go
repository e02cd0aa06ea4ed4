package usecase

import (
	"context"
	"strings"
	"time"

	"panduan-karier/internal/repository"

	"github.com/google/uuid"
)

// FeedbackInput is the validated submission payload. Accuracy and
// satisfaction are the two required ratings; everything else is optional
// display context echoed back by the client.
type FeedbackInput struct {
	PersonaName        string
	TopThree           []string
	TopMajors          []string
	TopCareers         []string
	Accuracy           int
	Satisfaction       int
	MostInteresting    string
	AdditionalComments string
	UserAgent          string
	ClientIP           string
}

type FeedbackUsecase interface {
	Submit(ctx context.Context, in FeedbackInput) (uuid.UUID, error)
	Analytics(ctx context.Context) (repository.FeedbackAnalytics, error)
}

type FeedbackService struct {
	repo repository.FeedbackRepository
	now  func() time.Time
}

func NewFeedbackUsecase(repo repository.FeedbackRepository) *FeedbackService {
	return &FeedbackService{repo: repo, now: time.Now}
}

func (s *FeedbackService) Submit(ctx context.Context, in FeedbackInput) (uuid.UUID, error) {
	if !isValidRating(in.Accuracy) || !isValidRating(in.Satisfaction) {
		return uuid.Nil, ErrInvalidInput
	}

	fb := repository.Feedback{
		ID:                 uuid.New(),
		PersonaName:        strings.TrimSpace(in.PersonaName),
		TopThree:           strings.Join(in.TopThree, ""),
		Accuracy:           in.Accuracy,
		Satisfaction:       in.Satisfaction,
		MostInteresting:    strings.TrimSpace(in.MostInteresting),
		AdditionalComments: strings.TrimSpace(in.AdditionalComments),
		TopMajors:          in.TopMajors,
		TopCareers:         in.TopCareers,
		UserAgent:          in.UserAgent,
		ClientIP:           in.ClientIP,
		CreatedAt:          s.now().UTC(),
	}

	if err := s.repo.Insert(ctx, fb); err != nil {
		return uuid.Nil, ErrInternal
	}
	return fb.ID, nil
}

func (s *FeedbackService) Analytics(ctx context.Context) (repository.FeedbackAnalytics, error) {
	out, err := s.repo.Analytics(ctx)
	if err != nil {
		return repository.FeedbackAnalytics{}, ErrInternal
	}
	return out, nil
}

func isValidRating(v int) bool {
	return v >= 1 && v <= 5
}
