package app

import (
	"context"
	"fmt"
	"log"
	"strings"

	"jobmatch/internal/config"
	"jobmatch/internal/delivery/http/handler"
	"jobmatch/internal/delivery/http/middleware"
	"jobmatch/internal/delivery/http/routes"
	"jobmatch/internal/ws"

	"github.com/gofiber/fiber/v3"
	"github.com/gofiber/fiber/v3/middleware/adaptor"
)

type App struct {
	Fiber     *fiber.App
	Container *Container
}

// New builds the HTTP application on top of an existing container.
func New(c *Container) *App {
	f := fiber.New(fiber.Config{AppName: c.Config.App.AppName})

	registerGlobalMiddleware(f, c.Logger)
	registerRoutes(f, c)

	return &App{Fiber: f, Container: c}
}

func Bootstrap(ctx context.Context, cfg config.Config, logger *log.Logger) (*App, func() error, error) {
	c, err := NewContainer(ctx, cfg, logger)
	if err != nil {
		return nil, nil, err
	}
	return New(c), c.Close, nil
}

func registerGlobalMiddleware(app *fiber.App, logger *log.Logger) {
	if app == nil {
		return
	}

	accessLog := middleware.NewAccessLogMiddleware(logger)
	errMw := middleware.NewErrorMiddleware(logger)
	app.Use(accessLog.Middleware())
	app.Use(errMw.Middleware())
}

func registerRoutes(app *fiber.App, c *Container) {
	if app == nil {
		return
	}

	authMw := middleware.NewAuthMiddleware(c.Auth)
	rateLimit := middleware.NewRateLimitMiddleware(c.Config.Auth.RateLimitRPS, c.Config.Auth.RateLimitBurst)

	registry := routes.NewRegistry(
		handler.NewHealthHandler(c.Config.App.Environment),
		adaptor.HTTPHandler(ws.NewHandler(c.Hub, c.Logger)),
		handler.NewAuthHandler(c.Auth, authMw, rateLimit.Middleware()),
		handler.NewUserHandler(c.Users, authMw),
		handler.NewJobHandler(c.Jobs, c.Applications, c.Matching),
		handler.NewApplicationHandler(c.Applications),
		handler.NewCandidateHandler(c.Candidates, c.Matching),
		handler.NewAssessmentHandler(c.Assessments, authMw),
	)
	registry.Register(app)
}

func ListenAddr(port string) (string, error) {
	p := strings.TrimSpace(port)
	if p == "" {
		return "", fmt.Errorf("empty HTTP port")
	}
	if strings.HasPrefix(p, ":") {
		return p, nil
	}
	return ":" + p, nil
}
