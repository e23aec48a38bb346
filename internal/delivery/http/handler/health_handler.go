package handler

import (
	"time"

	"jobmatch/internal/pkg/response"

	"github.com/gofiber/fiber/v3"
)

type HealthHandler struct {
	environment string
	now         func() time.Time
}

func NewHealthHandler(environment string) *HealthHandler {
	return &HealthHandler{environment: environment, now: time.Now}
}

func (h *HealthHandler) RegisterRoutes(r fiber.Router) {
	if r == nil {
		return
	}

	r.Get("/", h.Health)
	r.Get("/health", h.Health)
}

func (h *HealthHandler) Health(c fiber.Ctx) error {
	data := map[string]any{
		"status":      "ok",
		"timestamp":   h.now().UTC().Format(time.RFC3339),
		"environment": h.environment,
	}
	return response.Success(c, fiber.StatusOK, "Service is healthy", data)
}
