package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/heartmarshall/studydocs-backend/internal/adapter/postgres"
	redisadapter "github.com/heartmarshall/studydocs-backend/internal/adapter/redis"
	"github.com/heartmarshall/studydocs-backend/internal/config"
)

// Run is the application entry point. It loads configuration, connects to
// PostgreSQL and Redis, wires services and serves HTTP until ctx is
// cancelled, then shuts down in reverse order.
func Run(ctx context.Context) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	logger := NewLogger(cfg.Log)

	logger.Info("starting application",
		slog.String("version", BuildVersion()),
		slog.String("log_level", cfg.Log.Level),
	)

	// Database
	pool, err := postgres.NewPool(ctx, cfg.Database)
	if err != nil {
		return fmt.Errorf("connect to database: %w", err)
	}
	defer pool.Close()

	if cfg.Database.AutoMigrate {
		if err := postgres.Migrate(ctx, pool, logger); err != nil {
			return fmt.Errorf("migrate: %w", err)
		}
	}

	// Redis only backs recent quiz results, so the service starts without it.
	rdb := redisadapter.Open(cfg.Redis)
	defer rdb.Close()
	if err := redisadapter.Ping(ctx, rdb, cfg.Redis); err != nil {
		logger.Warn("redis unavailable, recent quiz results degraded",
			slog.String("addr", cfg.Redis.Addr),
			slog.String("error", err.Error()),
		)
	}

	stack, err := NewStack(ctx, cfg, logger, pool, rdb)
	if err != nil {
		return err
	}
	defer stack.Close()

	// Background work lives until the server has drained.
	bgCtx, stopBackground := context.WithCancel(context.WithoutCancel(ctx))
	defer stopBackground()

	stack.Processing.Start(bgCtx)
	if n, err := stack.Processing.RecoverStale(ctx, cfg.Scheduler.StaleAfter); err != nil {
		logger.Warn("stale document recovery failed", slog.String("error", err.Error()))
	} else if n > 0 {
		logger.Info("stale documents failed at startup", slog.Int("count", n))
	}

	if cfg.Scheduler.Enabled {
		scheduler, err := newScheduler(bgCtx, cfg.Scheduler, stack.Search, stack.Processing, logger)
		if err != nil {
			return err
		}
		scheduler.Start()
		defer func() { <-scheduler.Stop().Done() }()
	}

	srv := &http.Server{
		Addr:              cfg.Server.Addr(),
		Handler:           stack.Handler,
		ReadHeaderTimeout: 10 * time.Second,
		ReadTimeout:       cfg.Server.ReadTimeout,
		WriteTimeout:      cfg.Server.WriteTimeout,
		IdleTimeout:       cfg.Server.IdleTimeout,
	}

	serveErr := serve(ctx, srv, cfg.Server.ShutdownTimeout, logger)

	// Documents cut off mid-extraction are failed by the next stale sweep.
	stopBackground()
	stack.Processing.Wait()
	logger.Info("application stopped")

	return serveErr
}

// serve runs srv until ctx is cancelled or the listener fails, then shuts
// it down within timeout.
func serve(ctx context.Context, srv *http.Server, timeout time.Duration, logger *slog.Logger) error {
	errCh := make(chan error, 1)
	go func() {
		logger.Info("http server listening", slog.String("addr", srv.Addr))
		errCh <- srv.ListenAndServe()
	}()

	select {
	case <-ctx.Done():
		logger.Info("shutting down http server")
		shutdownCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), timeout)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			return fmt.Errorf("http shutdown: %w", err)
		}
		return nil
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return fmt.Errorf("http server: %w", err)
	}
}
