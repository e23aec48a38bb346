package handler

import (
	"net/http/httptest"
	"testing"

	"jobmatch/internal/delivery/http/middleware"

	"github.com/gofiber/fiber/v3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseSkillsQuery(t *testing.T) {
	tests := []struct {
		in   string
		want []string
	}{
		{in: "", want: nil},
		{in: "React", want: []string{"React"}},
		{in: " React , ,Node.js,", want: []string{"React", "Node.js"}},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, parseSkillsQuery(tt.in), tt.in)
	}
}

func TestParseOptionalQueryInt(t *testing.T) {
	app := fiber.New()
	app.Use(middleware.NewErrorMiddleware(nil).Middleware())
	app.Get("/", func(c fiber.Ctx) error {
		v, err := parseOptionalQueryInt(c, "score")
		if err != nil {
			return err
		}
		if v == nil {
			return c.SendString("absent")
		}
		return c.SendString("present")
	})

	cases := map[string]int{
		"/":          fiber.StatusOK,
		"/?score=":   fiber.StatusOK,
		"/?score=42": fiber.StatusOK,
		"/?score=-1": fiber.StatusOK,
		"/?score=4x": fiber.StatusBadRequest,
	}
	for path, want := range cases {
		resp, err := app.Test(httptest.NewRequest(fiber.MethodGet, path, nil))
		require.NoError(t, err)
		assert.Equal(t, want, resp.StatusCode, path)
		_ = resp.Body.Close()
	}
}
