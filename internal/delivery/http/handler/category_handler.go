package handler

import (
	"panduan-karier/internal/catalog"
	"panduan-karier/internal/delivery/http/dto"
	"panduan-karier/internal/pkg/response"

	"github.com/gofiber/fiber/v3"
)

type CategoryHandler struct{}

func NewCategoryHandler() *CategoryHandler {
	return &CategoryHandler{}
}

func (h *CategoryHandler) RegisterRoutes(r fiber.Router) {
	if r == nil {
		return
	}
	r.Get("/categories", h.ListCategories)
}

func (h *CategoryHandler) ListCategories(c fiber.Ctx) error {
	details := catalog.Details()

	out := make([]dto.CategoryResponse, 0, len(details))
	for _, d := range details {
		out = append(out, dto.CategoryResponse{
			Code:        string(d.Code),
			Name:        d.Name,
			Description: d.Description,
			Keywords:    d.Keywords,
			Careers:     d.Careers,
			Majors:      d.Majors,
		})
	}

	return response.Success(c, fiber.StatusOK, response.MessageOK, out)
}
