package http

import (
	"time"

	"github.com/gofiber/fiber/v3"
	"go.uber.org/fx"

	"github.com/emtaxi/emtaxi_backend/config"
	"github.com/emtaxi/emtaxi_backend/internal/api/http/router"
	"github.com/emtaxi/emtaxi_backend/internal/app"
)

// Options assembles the full server graph. The start command runs it and
// tests validate it with fx.ValidateApp.
func Options(cfg *config.Config, timeout time.Duration) fx.Option {
	return fx.Options(
		fx.Supply(cfg),
		app.InfraModule,
		app.ServiceModule,
		router.Module,
		Module,

		// Invoke *fiber.App because that's what NewServer returns; it forces
		// construction and so registers the OnStart hook.
		fx.Invoke(func(*fiber.App) {}),

		fx.StopTimeout(timeout),
	)
}
