package router

import (
	"github.com/gofiber/fiber/v3"
	"github.com/gofiber/fiber/v3/middleware/adaptor"
	"github.com/gofiber/fiber/v3/middleware/healthcheck"
	"github.com/gofiber/fiber/v3/middleware/static"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/redis/go-redis/v9"
	"go.uber.org/fx"

	"github.com/emtaxi/emtaxi_backend/config"
	"github.com/emtaxi/emtaxi_backend/internal/api/http/handler"
	"github.com/emtaxi/emtaxi_backend/internal/service/contact"
)

// Module provides the Router to the fx graph.
var Module = fx.Module("router", fx.Provide(NewRouter))

type Params struct {
	fx.In

	Cfg        *config.Config
	Redis      *redis.Client `optional:"true"`
	ContactSvc contact.Service
}

type Router struct {
	p Params
}

func NewRouter(p Params) *Router {
	return &Router{p: p}
}

func (r *Router) Register(app *fiber.App) {
	// 1. Health & Metrics
	r.registerSystemRoutes(app)

	// 2. Contact flow, on its canonical path and the legacy one
	contactH := handler.NewContactHandler(r.p.ContactSvc)
	r.registerContactRoutes(app, r.p.Cfg.Contact.Path, contactH)
	if legacy := r.p.Cfg.Contact.LegacyPath; legacy != "" && legacy != r.p.Cfg.Contact.Path {
		r.registerContactRoutes(app, legacy, contactH)
	}

	// 3. Built site, last so API routes win
	if dir := r.p.Cfg.Server.StaticDir; dir != "" {
		app.Get("/*", static.New(dir))
	}
}

func (r *Router) registerSystemRoutes(app *fiber.App) {
	app.Get(healthcheck.LivenessEndpoint, healthcheck.New())
	app.Get(healthcheck.ReadinessEndpoint, healthcheck.New(healthcheck.Config{
		Probe: func(c fiber.Ctx) bool {
			if r.p.Redis == nil {
				return true
			}
			return r.p.Redis.Ping(c.Context()).Err() == nil
		},
	}))
	app.Get(healthcheck.StartupEndpoint, healthcheck.New())

	if r.p.Cfg.Observability.Enabled && r.p.Cfg.Observability.Metrics.Enabled {
		path := r.p.Cfg.Observability.Metrics.Path
		if path == "" {
			path = "/metrics"
		}
		app.Get(path, adaptor.HTTPHandler(promhttp.Handler()))
	}
}
