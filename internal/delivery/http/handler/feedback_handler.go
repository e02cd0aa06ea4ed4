package handler

import (
	"errors"

	"panduan-karier/internal/delivery/http/dto"
	"panduan-karier/internal/delivery/http/middleware"
	"panduan-karier/internal/pkg/response"
	"panduan-karier/internal/usecase"

	"github.com/gofiber/fiber/v3"
)

type FeedbackHandler struct {
	uc usecase.FeedbackUsecase
}

func NewFeedbackHandler(uc usecase.FeedbackUsecase) *FeedbackHandler {
	return &FeedbackHandler{uc: uc}
}

func (h *FeedbackHandler) RegisterRoutes(r fiber.Router) {
	if r == nil {
		return
	}
	r.Post("/feedback", h.Submit)
}

func (h *FeedbackHandler) RegisterProtectedRoutes(r fiber.Router) {
	if r == nil {
		return
	}
	r.Get("/feedback/analytics", h.Analytics)
}

func (h *FeedbackHandler) Submit(c fiber.Ctx) error {
	var req dto.FeedbackRequest
	if err := c.Bind().Body(&req); err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, "Bad request", nil, err)
	}

	id, err := h.uc.Submit(c.Context(), usecase.FeedbackInput{
		PersonaName:        req.PersonaName,
		TopThree:           req.TopThree,
		TopMajors:          req.TopMajors,
		TopCareers:         req.TopCareers,
		Accuracy:           req.Accuracy,
		Satisfaction:       req.Satisfaction,
		MostInteresting:    req.MostInteresting,
		AdditionalComments: req.AdditionalComments,
		UserAgent:          c.Get("User-Agent"),
		ClientIP:           c.IP(),
	})
	if err != nil {
		return mapFeedbackUsecaseError(err)
	}

	return response.Success(c, fiber.StatusCreated, response.MessageOK, dto.FeedbackResponse{ID: id.String()})
}

func (h *FeedbackHandler) Analytics(c fiber.Ctx) error {
	stats, err := h.uc.Analytics(c.Context())
	if err != nil {
		return mapFeedbackUsecaseError(err)
	}

	out := dto.FeedbackAnalyticsResponse{
		TotalFeedback:   stats.TotalFeedback,
		AvgAccuracy:     stats.AvgAccuracy,
		AvgSatisfaction: stats.AvgSatisfaction,
		PopularMajors:   make([]dto.PopularRecommendationResponse, 0, len(stats.PopularMajors)),
		PopularCareers:  make([]dto.PopularRecommendationResponse, 0, len(stats.PopularCareers)),
	}
	for _, p := range stats.PopularMajors {
		out.PopularMajors = append(out.PopularMajors, dto.PopularRecommendationResponse{Name: p.Name, Count: p.Count})
	}
	for _, p := range stats.PopularCareers {
		out.PopularCareers = append(out.PopularCareers, dto.PopularRecommendationResponse{Name: p.Name, Count: p.Count})
	}

	return response.Success(c, fiber.StatusOK, response.MessageOK, out)
}

func mapFeedbackUsecaseError(err error) error {
	if err == nil {
		return nil
	}

	switch {
	case errors.Is(err, usecase.ErrInvalidInput):
		return middleware.NewAppError(fiber.StatusBadRequest, "Penilaian harus antara 1 dan 5", nil, err)
	default:
		return middleware.NewAppError(fiber.StatusInternalServerError, response.MessageInternalServerError, nil, err)
	}
}
