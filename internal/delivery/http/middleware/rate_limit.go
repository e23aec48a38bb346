package middleware

import (
	"sync"
	"time"

	"github.com/gofiber/fiber/v3"
	"golang.org/x/time/rate"
)

const limiterIdleTTL = 10 * time.Minute

type visitor struct {
	limiter  *rate.Limiter
	lastSeen time.Time
}

// RateLimitMiddleware applies a token bucket per client IP.
type RateLimitMiddleware struct {
	mu        sync.Mutex
	visitors  map[string]*visitor
	lastSweep time.Time
	limit     rate.Limit
	burst     int
	now       func() time.Time
}

func NewRateLimitMiddleware(rps float64, burst int) *RateLimitMiddleware {
	if burst <= 0 {
		burst = 1
	}
	return &RateLimitMiddleware{
		visitors: make(map[string]*visitor),
		limit:    rate.Limit(rps),
		burst:    burst,
		now:      time.Now,
	}
}

func (m *RateLimitMiddleware) Middleware() fiber.Handler {
	return func(c fiber.Ctx) error {
		if !m.allow(c.IP()) {
			return NewAppError(fiber.StatusTooManyRequests, "Too many requests", nil, nil)
		}
		return c.Next()
	}
}

func (m *RateLimitMiddleware) allow(key string) bool {
	now := m.now()

	m.mu.Lock()
	defer m.mu.Unlock()

	if now.Sub(m.lastSweep) > limiterIdleTTL {
		m.sweep(now)
	}

	v, ok := m.visitors[key]
	if !ok {
		v = &visitor{limiter: rate.NewLimiter(m.limit, m.burst)}
		m.visitors[key] = v
	}
	v.lastSeen = now
	return v.limiter.AllowN(now, 1)
}

// sweep drops visitors idle for longer than limiterIdleTTL. Callers hold mu.
func (m *RateLimitMiddleware) sweep(now time.Time) {
	for k, v := range m.visitors {
		if now.Sub(v.lastSeen) > limiterIdleTTL {
			delete(m.visitors, k)
		}
	}
	m.lastSweep = now
}
