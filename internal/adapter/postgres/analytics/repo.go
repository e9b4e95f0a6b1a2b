// Package analytics implements the global usage counters using PostgreSQL.
package analytics

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/heartmarshall/studydocs-backend/internal/adapter/postgres"
	"github.com/heartmarshall/studydocs-backend/internal/domain"
)

// Repo provides counter persistence backed by PostgreSQL.
type Repo struct {
	pool *pgxpool.Pool
}

// New creates a new analytics repository.
func New(pool *pgxpool.Pool) *Repo {
	return &Repo{pool: pool}
}

const incrementSearchSQL = `
INSERT INTO analytics_counters (id, total_searches, updated_at) VALUES (1, 1, now())
ON CONFLICT (id) DO UPDATE
   SET total_searches = analytics_counters.total_searches + 1, updated_at = now()`

const incrementAISQL = `
INSERT INTO analytics_counters (id, ai_interactions, updated_at) VALUES (1, 1, now())
ON CONFLICT (id) DO UPDATE
   SET ai_interactions = analytics_counters.ai_interactions + 1, updated_at = now()`

// IncrementSearch adds one to the search counter.
func (r *Repo) IncrementSearch(ctx context.Context) error {
	if _, err := postgres.QuerierFromCtx(ctx, r.pool).Exec(ctx, incrementSearchSQL); err != nil {
		return fmt.Errorf("increment searches: %w", err)
	}
	return nil
}

// IncrementAI adds one to the AI interaction counter.
func (r *Repo) IncrementAI(ctx context.Context) error {
	if _, err := postgres.QuerierFromCtx(ctx, r.pool).Exec(ctx, incrementAISQL); err != nil {
		return fmt.Errorf("increment ai interactions: %w", err)
	}
	return nil
}

// Get returns the counters; zeros when none have been recorded yet.
func (r *Repo) Get(ctx context.Context) (domain.AnalyticsCounters, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	var c domain.AnalyticsCounters
	err := q.QueryRow(ctx,
		`SELECT total_searches, ai_interactions, updated_at FROM analytics_counters WHERE id = 1`,
	).Scan(&c.TotalSearches, &c.AIInteractions, &c.UpdatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return domain.AnalyticsCounters{}, nil
	}
	if err != nil {
		return domain.AnalyticsCounters{}, fmt.Errorf("get analytics counters: %w", err)
	}
	return c, nil
}
