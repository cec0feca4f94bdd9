package middleware

import (
	"time"

	"github.com/gofiber/fiber/v3"
	"github.com/gofiber/fiber/v3/middleware/limiter"
	fiberredis "github.com/gofiber/storage/redis/v3"
	"github.com/redis/go-redis/v9"

	"github.com/emtaxi/emtaxi_backend/config"
)

// NewContactLimiter throttles submissions per client IP with a sliding
// window. Counters live in redis when rdb is set so every replica shares
// them, in process memory otherwise.
func NewContactLimiter(cfg config.RateLimitConfig, rdb *redis.Client, limitReached fiber.Handler) fiber.Handler {
	limit := cfg.RequestsPerWindow
	if limit <= 0 {
		limit = 5
	}
	window := time.Duration(cfg.WindowSeconds) * time.Second
	if window <= 0 {
		window = time.Minute
	}

	lc := limiter.Config{
		Max:               limit,
		Expiration:        window,
		LimiterMiddleware: limiter.SlidingWindow{},
		KeyGenerator: func(c fiber.Ctx) string {
			return "contact:" + c.IP()
		},
		LimitReached: limitReached,
	}
	if rdb != nil {
		lc.Storage = fiberredis.NewFromConnection(rdb)
	}
	return limiter.New(lc)
}
