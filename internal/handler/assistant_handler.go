package handler

import (
	"ringkas-aset/internal/middleware"
	"ringkas-aset/internal/service"

	"github.com/gofiber/fiber/v2"
)

type AssistantHandler struct {
	service service.AssistantService
}

func NewAssistantHandler(s service.AssistantService) *AssistantHandler {
	return &AssistantHandler{service: s}
}

// Ask answers a natural-language question over the caller's visible
// inventory. Assistant failures come back as a 200 with the Indonesian
// apology string, never as an error status.
// POST /api/v1/assistant/ask
func (h *AssistantHandler) Ask(c *fiber.Ctx) error {
	var req struct {
		Query string `json:"query"`
	}
	if err := c.BodyParser(&req); err != nil || req.Query == "" {
		return c.Status(400).JSON(fiber.Map{"error": "Query is required"})
	}

	user := middleware.CurrentUser(c)
	answer, err := h.service.Ask(c.Context(), user, req.Query)
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Internal Server Error"})
	}
	return c.JSON(fiber.Map{"answer": answer})
}
