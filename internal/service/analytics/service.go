// Package analytics aggregates usage counters and document statistics for
// the dashboard.
package analytics

import (
	"context"
	"log/slog"
	"time"

	"github.com/heartmarshall/studydocs-backend/internal/domain"
)

type counterRepo interface {
	Get(ctx context.Context) (domain.AnalyticsCounters, error)
}

type documentRepo interface {
	List(ctx context.Context, f domain.DocumentFilter) ([]domain.Document, error)
	Stats(ctx context.Context, since time.Time) (domain.DocumentStats, error)
}

type quizCounter interface {
	Count(ctx context.Context) (int, error)
}

// Service builds analytics views.
type Service struct {
	counters counterRepo
	docs     documentRepo
	quizzes  quizCounter
	now      func() time.Time
	log      *slog.Logger
}

// NewService creates an analytics Service.
func NewService(log *slog.Logger, counters counterRepo, docs documentRepo, quizzes quizCounter) *Service {
	return &Service{
		counters: counters,
		docs:     docs,
		quizzes:  quizzes,
		now:      time.Now,
		log:      log.With("service", "analytics"),
	}
}
