package handler

import (
	"errors"
	"strconv"

	"panduan-karier/internal/delivery/http/dto"
	"panduan-karier/internal/delivery/http/middleware"
	"panduan-karier/internal/domain/riasec"
	"panduan-karier/internal/pkg/response"
	"panduan-karier/internal/usecase"

	"github.com/gofiber/fiber/v3"
)

type ReportHandler struct {
	uc usecase.ReportUsecase
}

func NewReportHandler(uc usecase.ReportUsecase) *ReportHandler {
	return &ReportHandler{uc: uc}
}

func (h *ReportHandler) RegisterRoutes(r fiber.Router) {
	if r == nil {
		return
	}
	r.Get("/report", h.GetReport)
}

// GetReport reads the six category totals from query parameters, e.g.
// /api/v1/report?R=52&I=38&mode=full. Absent categories are simply omitted
// from the score vector; a present but non-numeric value is a client error.
func (h *ReportHandler) GetReport(c fiber.Ctx) error {
	scores := make(map[string]int, len(riasec.Categories))
	for _, cat := range riasec.Categories {
		raw := c.Query(string(cat))
		if raw == "" {
			continue
		}
		v, err := strconv.Atoi(raw)
		if err != nil {
			return middleware.NewAppError(fiber.StatusBadRequest, "Skor harus berupa angka", nil, err)
		}
		scores[string(cat)] = v
	}

	rep, err := h.uc.BuildReport(c.Context(), scores, c.Query("mode"))
	if err != nil {
		return mapReportUsecaseError(err)
	}

	return response.Success(c, fiber.StatusOK, response.MessageOK, toReportResponse(rep))
}

func mapReportUsecaseError(err error) error {
	if err == nil {
		return nil
	}

	switch {
	case errors.Is(err, usecase.ErrInvalidInput):
		return middleware.NewAppError(fiber.StatusBadRequest, "Bad request", nil, err)
	default:
		return middleware.NewAppError(fiber.StatusInternalServerError, response.MessageInternalServerError, nil, err)
	}
}

func toReportResponse(rep usecase.Report) dto.ReportResponse {
	return dto.ReportResponse{
		Profile:    toProfileResponse(rep.UserProfile),
		Majors:     toCuratedResponse(rep.MajorRecommendations),
		Careers:    toCuratedResponse(rep.CareerRecommendations),
		Motivation: rep.Motivation,
	}
}

func toProfileResponse(p riasec.UserProfile) dto.ProfileResponse {
	out := dto.ProfileResponse{
		Scores:      make([]dto.ScoreEntryResponse, 0, len(p.Scores)),
		TopThree:    make([]string, 0, len(p.TopThree)),
		TopTwoCode:  p.TopTwoCode,
		PersonaName: p.PersonaName,
	}

	// Scores and Percentages carry the same categories in the same order.
	for i, sp := range p.Scores {
		entry := dto.ScoreEntryResponse{Category: string(sp.Category), Value: sp.Value}
		if i < len(p.Percentages) {
			entry.Percentage = p.Percentages[i].Value
		}
		out.Scores = append(out.Scores, entry)
	}
	for _, cat := range p.TopThree {
		out.TopThree = append(out.TopThree, string(cat))
	}
	return out
}

func toCuratedResponse(cur riasec.CuratedRecommendations) dto.CuratedResponse {
	out := dto.CuratedResponse{
		TopPicks:     make(map[string]dto.RecommendationResponse, len(cur.TopPicks)),
		Alternatives: make(map[string][]dto.RecommendationResponse, len(cur.Alternatives)),
		TotalCount:   cur.TotalCount,
	}
	for tag, item := range cur.TopPicks {
		out.TopPicks[tag] = toRecommendationResponse(item)
	}
	for tag, items := range cur.Alternatives {
		group := make([]dto.RecommendationResponse, 0, len(items))
		for _, item := range items {
			group = append(group, toRecommendationResponse(item))
		}
		out.Alternatives[tag] = group
	}
	return out
}

func toRecommendationResponse(m riasec.MatchResult) dto.RecommendationResponse {
	return dto.RecommendationResponse{
		ID:              m.ID,
		Name:            m.Name,
		Description:     m.Description,
		Subcategory:     m.Subcategory,
		MatchedType:     string(m.MatchedType),
		MatchScore:      m.MatchScore,
		ConfidenceScore: m.ConfidenceScore,
		Reasoning:       m.Reasoning,
	}
}
