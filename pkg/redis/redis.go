// Package redis opens the optional Redis connection backing the contact
// rate limiter, so several instances share one submission budget per client.
package redis

import (
	"context"
	"fmt"
	"time"

	goredis "github.com/redis/go-redis/v9"

	"github.com/emtaxi/emtaxi_backend/config"
)

const (
	defaultPoolSize     = 10
	defaultMinIdleConns = 2
	defaultDialTimeout  = 5 * time.Second
	defaultIOTimeout    = 3 * time.Second
)

// Options maps central config to go-redis options, filling defaults for
// unset pool sizes and timeouts.
func Options(cfg config.RedisConfig) *goredis.Options {
	opts := &goredis.Options{
		Addr:         cfg.Addr,
		Username:     cfg.Username,
		Password:     cfg.Password,
		DB:           cfg.DB,
		PoolSize:     orInt(cfg.PoolSize, defaultPoolSize),
		MinIdleConns: orInt(cfg.MinIdleConns, defaultMinIdleConns),
		DialTimeout:  seconds(cfg.DialTimeoutSeconds, defaultDialTimeout),
		ReadTimeout:  seconds(cfg.ReadTimeoutSeconds, defaultIOTimeout),
		WriteTimeout: seconds(cfg.WriteTimeoutSeconds, defaultIOTimeout),
	}
	return opts
}

// NewRedisFromCentral connects and pings. A disabled config yields nil, nil.
func NewRedisFromCentral(ctx context.Context, cfg config.RedisConfig) (*goredis.Client, error) {
	if !cfg.Enabled {
		return nil, nil
	}
	if cfg.Addr == "" {
		return nil, fmt.Errorf("redis addr is empty")
	}

	rdb := goredis.NewClient(Options(cfg))

	if err := rdb.Ping(ctx).Err(); err != nil {
		_ = rdb.Close()
		return nil, fmt.Errorf("redis ping failed: %w", err)
	}

	return rdb, nil
}

func orInt(v, def int) int {
	if v > 0 {
		return v
	}
	return def
}

func seconds(v int, def time.Duration) time.Duration {
	if v > 0 {
		return time.Duration(v) * time.Second
	}
	return def
}
