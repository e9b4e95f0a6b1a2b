// Package redis holds the Redis connection shared by Redis-backed stores.
package redis

import (
	"context"
	"fmt"

	goredis "github.com/redis/go-redis/v9"

	"github.com/heartmarshall/studydocs-backend/internal/config"
)

// Open creates a client without contacting the server. go-redis dials
// lazily and reconnects on its own.
func Open(cfg config.RedisConfig) *goredis.Client {
	return goredis.NewClient(&goredis.Options{
		Addr:        cfg.Addr,
		Password:    cfg.Password,
		DB:          cfg.DB,
		DialTimeout: cfg.DialTimeout,
	})
}

// Ping checks the connection within the configured dial timeout.
func Ping(ctx context.Context, rdb goredis.UniversalClient, cfg config.RedisConfig) error {
	if cfg.DialTimeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, cfg.DialTimeout)
		defer cancel()
	}
	if err := rdb.Ping(ctx).Err(); err != nil {
		return fmt.Errorf("redis ping: %w", err)
	}
	return nil
}
