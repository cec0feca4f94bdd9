package router

import (
	"github.com/gofiber/fiber/v3"

	"github.com/emtaxi/emtaxi_backend/internal/api/http/handler"
	"github.com/emtaxi/emtaxi_backend/internal/api/http/middleware"
)

// registerContactRoutes mounts the contact flow under path. Preflights are
// answered by the CORS middleware; any method other than POST gets 405.
func (r *Router) registerContactRoutes(app *fiber.App, path string, h *handler.ContactHandler) {
	g := app.Group(path, middleware.CORS(r.p.Cfg.Server.CORS))

	g.Get("/info", h.Info)

	if r.p.Cfg.RateLimit.Enabled {
		g.Post("/", middleware.NewContactLimiter(r.p.Cfg.RateLimit, r.p.Redis, h.TooManyRequests), h.Submit)
	} else {
		g.Post("/", h.Submit)
	}

	g.All("/", h.MethodNotAllowed)
}
