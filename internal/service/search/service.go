// Package search answers queries against the content index and keeps the
// index in step with processed documents.
package search

import (
	"context"
	"log/slog"

	"github.com/google/uuid"

	"github.com/heartmarshall/studydocs-backend/internal/config"
	"github.com/heartmarshall/studydocs-backend/internal/domain"
)

type indexRepo interface {
	Search(ctx context.Context, q domain.SearchQuery) ([]domain.SearchResult, error)
	Suggestions(ctx context.Context, prefix string, limit int) ([]string, error)
	Stats(ctx context.Context) (domain.IndexStats, error)
	Replace(ctx context.Context, documentID uuid.UUID, entries []domain.IndexEntry) error
	DeleteDocument(ctx context.Context, documentID uuid.UUID) error
	PruneIncomplete(ctx context.Context) (int, error)
}

type documentRepo interface {
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Document, error)
	List(ctx context.Context, f domain.DocumentFilter) ([]domain.Document, error)
}

type contentRepo interface {
	ListByDocument(ctx context.Context, documentID uuid.UUID) ([]domain.DocumentContent, error)
}

type usageCounter interface {
	IncrementSearch(ctx context.Context) error
}

type recorder interface {
	Search(kind string)
}

type txManager interface {
	RunInTx(ctx context.Context, fn func(ctx context.Context) error) error
}

// Service implements search and index maintenance.
type Service struct {
	index    indexRepo
	docs     documentRepo
	contents contentRepo
	usage    usageCounter
	metrics  recorder
	tx       txManager
	cfg      config.SearchConfig
	log      *slog.Logger
}

// NewService creates a search Service.
func NewService(
	log *slog.Logger,
	cfg config.SearchConfig,
	index indexRepo,
	docs documentRepo,
	contents contentRepo,
	usage usageCounter,
	metrics recorder,
	tx txManager,
) *Service {
	if cfg.DefaultMaxResults <= 0 {
		cfg.DefaultMaxResults = 20
	}
	if cfg.MaxSuggestions <= 0 {
		cfg.MaxSuggestions = 10
	}
	if cfg.PageSize <= 0 {
		cfg.PageSize = DefaultPageSize
	}
	if cfg.SnippetChars <= 0 {
		cfg.SnippetChars = DefaultSnippetChars
	}
	if cfg.ReindexWorkers <= 0 {
		cfg.ReindexWorkers = 1
	}
	return &Service{
		index:    index,
		docs:     docs,
		contents: contents,
		usage:    usage,
		metrics:  metrics,
		tx:       tx,
		cfg:      cfg,
		log:      log.With("service", "search"),
	}
}

// track counts a user-facing search. Counter failures are logged only.
func (s *Service) track(ctx context.Context, kind string) {
	if s.metrics != nil {
		s.metrics.Search(kind)
	}
	if s.usage == nil {
		return
	}
	if err := s.usage.IncrementSearch(ctx); err != nil {
		s.log.WarnContext(ctx, "increment search counter", slog.String("error", err.Error()))
	}
}
