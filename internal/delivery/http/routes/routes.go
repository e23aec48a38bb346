package routes

import (
	"jobmatch/internal/delivery/http/handler"

	"github.com/gofiber/fiber/v3"
)

// Route registers its endpoints on a router.
type Route interface {
	RegisterRoutes(r fiber.Router)
}

type Registry struct {
	health *handler.HealthHandler
	api    []Route
	events fiber.Handler
}

// NewRegistry collects the handlers. events serves the websocket stream and
// may be nil.
func NewRegistry(health *handler.HealthHandler, events fiber.Handler, api ...Route) *Registry {
	return &Registry{health: health, api: api, events: events}
}

func (r *Registry) Register(app *fiber.App) {
	if app == nil {
		return
	}

	r.registerHealth(app)
	r.registerAPI(app)
	r.registerEvents(app)
}

func (r *Registry) registerHealth(app *fiber.App) {
	if r.health == nil {
		return
	}
	r.health.RegisterRoutes(app)
}

func (r *Registry) registerAPI(app *fiber.App) {
	for _, route := range r.api {
		if route == nil {
			continue
		}
		route.RegisterRoutes(app)
	}
}

func (r *Registry) registerEvents(app *fiber.App) {
	if r.events == nil {
		return
	}
	app.Get("/ws/events", r.events)
}
