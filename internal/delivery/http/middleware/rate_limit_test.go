package middleware

import (
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gofiber/fiber/v3"
	"github.com/stretchr/testify/require"
)

func TestRateLimit_AllowsBurstThenRejects(t *testing.T) {
	rl := NewRateLimitMiddleware(1, 2)
	now := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	rl.now = func() time.Time { return now }

	require.True(t, rl.allow("1.2.3.4"))
	require.True(t, rl.allow("1.2.3.4"))
	require.False(t, rl.allow("1.2.3.4"))
	require.True(t, rl.allow("5.6.7.8"))

	now = now.Add(time.Second)
	require.True(t, rl.allow("1.2.3.4"))
}

func TestRateLimit_ForgetsIdleVisitors(t *testing.T) {
	rl := NewRateLimitMiddleware(1, 1)
	now := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	rl.now = func() time.Time { return now }

	rl.allow("1.2.3.4")
	now = now.Add(limiterIdleTTL + time.Second)
	rl.allow("5.6.7.8")

	rl.mu.Lock()
	defer rl.mu.Unlock()
	require.Len(t, rl.visitors, 1)
}

func TestRateLimit_SweepsAtMostOncePerIdleTTL(t *testing.T) {
	rl := NewRateLimitMiddleware(1, 1)
	now := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	rl.now = func() time.Time { return now }

	rl.allow("1.2.3.4")
	now = now.Add(limiterIdleTTL + time.Second)
	swept := now.Add(-time.Minute)
	rl.lastSweep = swept

	// 1.2.3.4 is idle, but the last sweep is too recent to run another.
	rl.allow("5.6.7.8")
	rl.mu.Lock()
	require.Len(t, rl.visitors, 2)
	require.Equal(t, swept, rl.lastSweep)
	rl.mu.Unlock()

	now = swept.Add(limiterIdleTTL + time.Second)
	rl.allow("5.6.7.8")
	rl.mu.Lock()
	defer rl.mu.Unlock()
	require.Len(t, rl.visitors, 1)
	require.Equal(t, now, rl.lastSweep)
}

func TestRateLimit_MiddlewareReturns429(t *testing.T) {
	app := fiber.New()
	app.Use(NewErrorMiddleware(nil).Middleware())
	app.Post("/login", NewRateLimitMiddleware(0.001, 1).Middleware(), func(c fiber.Ctx) error {
		return c.SendStatus(fiber.StatusOK)
	})

	resp, err := app.Test(httptest.NewRequest(fiber.MethodPost, "/login", nil))
	require.NoError(t, err)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)

	resp, err = app.Test(httptest.NewRequest(fiber.MethodPost, "/login", nil))
	require.NoError(t, err)
	require.Equal(t, fiber.StatusTooManyRequests, resp.StatusCode)
}
