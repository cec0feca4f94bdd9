package middleware

import (
	"strings"

	"github.com/gofiber/fiber/v3"

	"github.com/emtaxi/emtaxi_backend/config"
)

// CORS sets the allow headers on every response under its prefix and
// answers OPTIONS with 200 and an empty body. fiber's cors middleware
// replies 204 to preflights, which older clients of this endpoint reject.
func CORS(cfg config.CORSConfig) fiber.Handler {
	origin := cfg.AllowOrigin
	if origin == "" {
		origin = "*"
	}
	methods := strings.Join(cfg.AllowMethods, ", ")
	if methods == "" {
		methods = "POST, OPTIONS"
	}
	headers := strings.Join(cfg.AllowHeaders, ", ")
	if headers == "" {
		headers = fiber.HeaderContentType
	}

	return func(c fiber.Ctx) error {
		c.Set(fiber.HeaderAccessControlAllowOrigin, origin)
		c.Set(fiber.HeaderAccessControlAllowMethods, methods)
		c.Set(fiber.HeaderAccessControlAllowHeaders, headers)
		if origin != "*" {
			c.Vary(fiber.HeaderOrigin)
		}

		if c.Method() == fiber.MethodOptions {
			return c.Status(fiber.StatusOK).Send(nil)
		}
		return c.Next()
	}
}
