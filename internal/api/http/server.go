package http

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"time"

	"github.com/gofiber/fiber/v3"
	"github.com/gofiber/fiber/v3/middleware/healthcheck"
	"github.com/gofiber/fiber/v3/middleware/helmet"
	"github.com/gofiber/fiber/v3/middleware/logger"
	recoverer "github.com/gofiber/fiber/v3/middleware/recover"
	"go.uber.org/fx"

	"github.com/emtaxi/emtaxi_backend/config"
	"github.com/emtaxi/emtaxi_backend/internal/api/http/handler"
	"github.com/emtaxi/emtaxi_backend/internal/api/http/middleware"
	"github.com/emtaxi/emtaxi_backend/internal/api/http/router"
	"github.com/emtaxi/emtaxi_backend/pkg/constants"
	"github.com/emtaxi/emtaxi_backend/pkg/observability"
)

// Module provides the HTTP Server to the fx graph.
var Module = fx.Module("http", fx.Provide(NewServer))

type Params struct {
	fx.In

	Lifecycle fx.Lifecycle
	Cfg       *config.Config
	Router    *router.Router
	OTel      *observability.Provider `optional:"true"`
}

func NewServer(p Params) *fiber.App {
	app := NewApp(p.Cfg, p.Router, p.OTel != nil && p.Cfg.Observability.Tracing.Enabled)

	p.Lifecycle.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			addr := fmt.Sprintf(":%d", p.Cfg.Server.Port)
			// Bind synchronously so a busy port fails startup instead of a goroutine.
			ln, err := net.Listen(fiber.NetworkTCP4, addr)
			if err != nil {
				return fmt.Errorf("listen %s: %w", addr, err)
			}
			slog.Info("http server listening", "addr", addr, "contact_path", p.Cfg.Contact.Path)
			go func() {
				if err := app.Listener(ln, fiber.ListenConfig{DisableStartupMessage: true}); err != nil && !errors.Is(err, net.ErrClosed) {
					slog.Error("HTTP server error", "error", err)
				}
			}()
			return nil
		},
		OnStop: func(ctx context.Context) error {
			return app.ShutdownWithContext(ctx)
		},
	})

	return app
}

// NewApp builds the fiber app with global middleware and every route.
func NewApp(cfg *config.Config, r *router.Router, tracing bool) *fiber.App {
	timeout := time.Duration(cfg.Server.TimeoutSeconds) * time.Second
	app := fiber.New(fiber.Config{
		AppName:      constants.AppName,
		BodyLimit:    bodyLimit(cfg.Server.BodyLimitKB),
		ReadTimeout:  timeout,
		WriteTimeout: timeout,
		ErrorHandler: handler.ErrorHandler,
	})

	configureGlobalMiddleware(app, cfg, tracing)

	r.Register(app)

	return app
}

func configureGlobalMiddleware(app *fiber.App, cfg *config.Config, tracing bool) {
	app.Use(middleware.RequestID())
	app.Use(recoverer.New())

	if tracing {
		app.Use(observability.FiberMiddleware(
			healthcheck.LivenessEndpoint,
			healthcheck.ReadinessEndpoint,
			healthcheck.StartupEndpoint,
			cfg.Observability.Metrics.Path,
		))
	}

	if cfg.Server.Environment == constants.EnvProduction {
		app.Use(helmet.New(helmet.Config{
			XSSProtection:      cfg.Server.Headers.XSSProtection,
			ContentTypeNosniff: cfg.Server.Headers.ContentTypeNosniff,
			XFrameOptions:      cfg.Server.Headers.XFrameOptions,
			ReferrerPolicy:     cfg.Server.Headers.ReferrerPolicy,
		}))
	}

	app.Use(logger.New(logger.Config{
		Format: "${ip} - [${time}] [req_id=${locals:request_id}] ${method} ${url} ${status} ${latency}\n",
	}))
}

func bodyLimit(kb int) int {
	if kb <= 0 {
		return 64 * 1024
	}
	return kb * 1024
}
