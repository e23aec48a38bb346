package middleware

import (
	"log"
	"time"

	"github.com/gofiber/fiber/v3"
	"github.com/google/uuid"
)

const HeaderRequestID = "X-Request-ID"

type AccessLogMiddleware struct {
	logger *log.Logger
}

func NewAccessLogMiddleware(logger *log.Logger) *AccessLogMiddleware {
	if logger == nil {
		logger = log.Default()
	}
	return &AccessLogMiddleware{logger: logger}
}

func (m *AccessLogMiddleware) Middleware() fiber.Handler {
	return func(c fiber.Ctx) error {
		start := time.Now()

		rid := c.Get(HeaderRequestID)
		if rid == "" {
			rid = uuid.NewString()
		}
		c.Set(HeaderRequestID, rid)

		err := c.Next()

		m.logger.Printf(
			"[HTTP] access | rid=%s ip=%s method=%s path=%s status=%d latency=%s ua=%q",
			rid, c.IP(), c.Method(), c.OriginalURL(), c.Response().StatusCode(), time.Since(start), c.Get("User-Agent"),
		)

		return err
	}
}
