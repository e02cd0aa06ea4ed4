package handler

import (
	"panduan-karier/internal/catalog"
	"panduan-karier/internal/delivery/http/dto"
	"panduan-karier/internal/delivery/http/middleware"
	"panduan-karier/internal/pkg/response"

	"github.com/gofiber/fiber/v3"
)

type QuestionHandler struct{}

func NewQuestionHandler() *QuestionHandler {
	return &QuestionHandler{}
}

func (h *QuestionHandler) RegisterRoutes(r fiber.Router) {
	if r == nil {
		return
	}
	r.Get("/questions", h.ListQuestions)
}

func (h *QuestionHandler) ListQuestions(c fiber.Ctx) error {
	var bank catalog.Bank
	switch c.Query("mode", catalog.ModeFull) {
	case catalog.ModeFull:
		bank = catalog.FullQuestionBank()
	case catalog.ModeQuick:
		bank = catalog.QuickQuestionBank()
	default:
		return middleware.NewAppError(fiber.StatusBadRequest, "Mode tidak dikenal", nil, nil)
	}

	out := dto.QuestionBankResponse{
		Mode:      bank.Mode,
		Questions: make([]dto.QuestionResponse, 0, len(bank.Questions)),
	}
	for _, q := range bank.Questions {
		out.Questions = append(out.Questions, dto.QuestionResponse{
			ID:       q.ID,
			Text:     q.Text,
			Category: string(q.Category),
		})
	}

	return response.Success(c, fiber.StatusOK, response.MessageOK, out)
}
