package usecase

import (
	"context"
	"errors"
	"time"

	"panduan-karier/internal/catalog"
	"panduan-karier/internal/domain/riasec"
	"panduan-karier/internal/infrastructure/cache"
	"panduan-karier/internal/repository"
)

var (
	ErrInvalidInput = errors.New("invalid input")
	ErrInternal     = errors.New("internal error")
)

const (
	cacheKeyMajors  = "catalog:majors"
	cacheKeyCareers = "catalog:careers"
)

// Report is the assembled analysis the presentation layer consumes: the
// normalized profile, curated recommendations for both reference collections,
// and the persona narrative.
type Report struct {
	UserProfile           riasec.UserProfile
	MajorRecommendations  riasec.CuratedRecommendations
	CareerRecommendations riasec.CuratedRecommendations
	Motivation            string
}

type ReportUsecase interface {
	BuildReport(ctx context.Context, rawScores map[string]int, mode string) (Report, error)
}

type ReportService struct {
	catalogRepo  repository.CatalogRepository
	cache        *cache.Redis
	displayNames map[riasec.Category]string
	motivations  map[string]string
}

func NewReportUsecase(catalogRepo repository.CatalogRepository, redis *cache.Redis) *ReportService {
	return &ReportService{
		catalogRepo:  catalogRepo,
		cache:        redis,
		displayNames: catalog.DisplayNames(),
		motivations:  catalog.Motivations(),
	}
}

// BuildReport runs the whole scoring pipeline over loose string-keyed raw
// totals. Keys outside the six-category set are silently dropped; an input
// with no valid category at all is rejected. Partial inputs degrade inside
// the core rather than erroring.
func (s *ReportService) BuildReport(ctx context.Context, rawScores map[string]int, mode string) (Report, error) {
	bank, err := bankForMode(mode)
	if err != nil {
		return Report{}, err
	}

	scores := make(riasec.ScoreVector, len(rawScores))
	for key, total := range rawScores {
		c, ok := riasec.ParseCategory(key)
		if !ok {
			continue
		}
		scores[c] = total
	}
	if len(scores) == 0 {
		return Report{}, ErrInvalidInput
	}

	majors, err := s.fetchCatalog(ctx, cacheKeyMajors, s.catalogRepo.ListMajors)
	if err != nil {
		return Report{}, ErrInternal
	}
	careers, err := s.fetchCatalog(ctx, cacheKeyCareers, s.catalogRepo.ListCareers)
	if err != nil {
		return Report{}, ErrInternal
	}

	profile := riasec.BuildProfile(scores, bank, s.displayNames)

	return Report{
		UserProfile:           profile,
		MajorRecommendations:  riasec.Curate(riasec.Match(profile, majors)),
		CareerRecommendations: riasec.Curate(riasec.Match(profile, careers)),
		Motivation:            riasec.ResolveMotivation(profile.TopTwoCode, s.motivations),
	}, nil
}

func (s *ReportService) fetchCatalog(
	ctx context.Context,
	key string,
	load func(context.Context) ([]riasec.ReferenceItem, error),
) ([]riasec.ReferenceItem, error) {
	var cached []riasec.ReferenceItem
	if ok, _ := s.cache.GetJSON(ctx, key, &cached); ok && len(cached) > 0 {
		return cached, nil
	}

	items, err := load(ctx)
	if err != nil {
		return nil, err
	}
	if len(items) > 0 {
		s.cache.SetJSON(ctx, key, items, 1*time.Hour)
	}
	return items, nil
}

func bankForMode(mode string) (riasec.Bank, error) {
	switch mode {
	case "", catalog.ModeFull:
		return riasec.FullBank, nil
	case catalog.ModeQuick:
		return riasec.QuickBank, nil
	default:
		return riasec.Bank{}, ErrInvalidInput
	}
}
