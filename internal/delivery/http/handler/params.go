package handler

import (
	"errors"
	"strconv"
	"strings"

	"jobmatch/internal/delivery/http/middleware"
	"jobmatch/internal/pkg/response"
	"jobmatch/internal/usecase"

	"github.com/gofiber/fiber/v3"
)

// parseOptionalQueryInt returns nil when the key is absent or empty and an
// error when present but not an integer.
func parseOptionalQueryInt(c fiber.Ctx, key string) (*int, error) {
	s := strings.TrimSpace(c.Query(key))
	if s == "" {
		return nil, nil
	}
	v, err := strconv.Atoi(s)
	if err != nil {
		return nil, middleware.NewAppError(fiber.StatusBadRequest, key+" must be an integer", nil, err)
	}
	return &v, nil
}

func parseSkillsQuery(s string) []string {
	if s == "" {
		return nil
	}
	parts := strings.Split(s, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		p = strings.TrimSpace(p)
		if p == "" {
			continue
		}
		out = append(out, p)
	}
	return out
}

func bindBody(c fiber.Ctx, out any) error {
	if err := c.Bind().Body(out); err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, "Invalid request body", nil, err)
	}
	return nil
}

// badRequest keeps the message of a use-case validation error.
func badRequest(err error) error {
	var vErr *usecase.ValidationError
	if errors.As(err, &vErr) {
		return middleware.NewAppError(fiber.StatusBadRequest, vErr.Message, nil, err)
	}
	return middleware.NewAppError(fiber.StatusBadRequest, "Bad request", nil, err)
}

func internalError(err error) error {
	return middleware.NewAppError(fiber.StatusInternalServerError, response.MessageInternalServerError, nil, err)
}
