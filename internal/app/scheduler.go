package app

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/robfig/cron/v3"

	"github.com/heartmarshall/studydocs-backend/internal/config"
)

type reindexer interface {
	ReindexAll(ctx context.Context) (int, error)
}

type staleRecoverer interface {
	RecoverStale(ctx context.Context, olderThan time.Duration) (int, error)
}

// cronLogger adapts slog to cron.Logger.
type cronLogger struct {
	log *slog.Logger
}

func (l cronLogger) Info(msg string, keysAndValues ...any) {
	l.log.Debug(msg, keysAndValues...)
}

func (l cronLogger) Error(err error, msg string, keysAndValues ...any) {
	l.log.Error(msg, append(keysAndValues, "error", err.Error())...)
}

// newScheduler registers the maintenance jobs: a full search reindex and
// the sweep that fails documents stuck in PROCESSING. Overlapping runs of
// the same job are skipped. Jobs run under ctx, bounded by cfg.JobTimeout.
func newScheduler(
	ctx context.Context,
	cfg config.SchedulerConfig,
	search reindexer,
	processing staleRecoverer,
	logger *slog.Logger,
) (*cron.Cron, error) {
	log := logger.With("component", "scheduler")
	cl := cronLogger{log: log}

	c := cron.New(
		cron.WithLogger(cl),
		cron.WithChain(cron.Recover(cl), cron.SkipIfStillRunning(cl)),
	)

	jobs := []struct {
		name string
		spec string
		run  func(ctx context.Context) (int, error)
	}{
		{"reindex", cfg.ReindexSpec, search.ReindexAll},
		{"stale_cleanup", cfg.CleanupSpec, func(ctx context.Context) (int, error) {
			return processing.RecoverStale(ctx, cfg.StaleAfter)
		}},
	}

	for _, job := range jobs {
		if job.spec == "" {
			log.Info("job disabled", slog.String("job", job.name))
			continue
		}
		if _, err := c.AddFunc(job.spec, func() {
			runJob(ctx, log, job.name, cfg.JobTimeout, job.run)
		}); err != nil {
			return nil, fmt.Errorf("schedule %s %q: %w", job.name, job.spec, err)
		}
	}
	return c, nil
}

func runJob(ctx context.Context, log *slog.Logger, name string, timeout time.Duration, run func(context.Context) (int, error)) {
	if timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, timeout)
		defer cancel()
	}

	start := time.Now()
	n, err := run(ctx)
	if err != nil {
		log.ErrorContext(ctx, "job failed",
			slog.String("job", name),
			slog.String("error", err.Error()),
		)
		return
	}
	log.InfoContext(ctx, "job completed",
		slog.String("job", name),
		slog.Int("affected", n),
		slog.Duration("duration", time.Since(start)),
	)
}
