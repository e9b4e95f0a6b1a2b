package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/heartmarshall/studydocs-backend/internal/config"
)

const (
	applicationName = "studydocs-backend"

	// pingAttempts covers a database container that is still starting.
	pingAttempts = 5
	pingBackoff  = time.Second
)

// NewPool opens a pool from DatabaseConfig and waits until the database
// answers a ping. application_name defaults to the service name so sessions
// are identifiable in pg_stat_activity.
func NewPool(ctx context.Context, cfg config.DatabaseConfig) (*pgxpool.Pool, error) {
	poolCfg, err := pgxpool.ParseConfig(cfg.DSN)
	if err != nil {
		return nil, fmt.Errorf("parse database DSN: %w", err)
	}

	poolCfg.MaxConns = cfg.MaxConns
	poolCfg.MinConns = cfg.MinConns
	poolCfg.MaxConnLifetime = cfg.MaxConnLifetime
	poolCfg.MaxConnIdleTime = cfg.MaxConnIdleTime
	if poolCfg.ConnConfig.RuntimeParams["application_name"] == "" {
		poolCfg.ConnConfig.RuntimeParams["application_name"] = applicationName
	}

	pool, err := pgxpool.NewWithConfig(ctx, poolCfg)
	if err != nil {
		return nil, fmt.Errorf("create connection pool: %w", err)
	}

	if err := pingWithRetry(ctx, pool, pingAttempts, pingBackoff); err != nil {
		pool.Close()
		return nil, err
	}
	return pool, nil
}

type pinger interface {
	Ping(ctx context.Context) error
}

// pingWithRetry pings up to attempts times, doubling the wait between tries.
func pingWithRetry(ctx context.Context, db pinger, attempts int, backoff time.Duration) error {
	var err error
	for i := range attempts {
		if err = db.Ping(ctx); err == nil {
			return nil
		}
		if i == attempts-1 {
			break
		}
		select {
		case <-ctx.Done():
			return fmt.Errorf("ping database: %w", ctx.Err())
		case <-time.After(backoff):
		}
		backoff *= 2
	}
	return fmt.Errorf("ping database after %d attempts: %w", attempts, err)
}
