package search

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/heartmarshall/studydocs-backend/internal/domain"
)

// Search kinds reported to metrics.
const (
	KindBasic       = "basic"
	KindAdvanced    = "advanced"
	KindSuggestions = "suggestions"
)

// Plan turns raw user input into an index query.
//
// Empty input matches everything. Up to three words without wildcard or
// grouping characters are matched as a substring; anything else goes to full
// text. "dbms" also matches its spelled-out forms.
func Plan(raw string) domain.SearchQuery {
	q := strings.TrimSpace(raw)
	if q == "" {
		return domain.SearchQuery{Mode: domain.SearchModeAll}
	}

	mode := domain.SearchModeFullText
	if len(strings.Fields(q)) <= 3 && !strings.ContainsAny(q, "*?()") && len(q) > 1 {
		mode = domain.SearchModeSubstring
	}

	terms := []string{q}
	if strings.Contains(strings.ToLower(q), "dbms") {
		terms = append(terms, "database", "database management system")
	}
	return domain.SearchQuery{Mode: mode, Terms: terms}
}

// Search runs a query. Empty input returns every entry and ignores maxResults.
func (s *Service) Search(ctx context.Context, query string, maxResults int) ([]domain.SearchResult, error) {
	s.track(ctx, KindBasic)

	q := Plan(query)
	if q.Mode != domain.SearchModeAll {
		q.Limit = s.limit(maxResults)
	}
	results, err := s.run(ctx, query, q)
	if err != nil {
		return nil, fmt.Errorf("search.Search: %w", err)
	}
	return results, nil
}

// SearchWithFilters runs a query restricted by filename and topic substrings.
func (s *Service) SearchWithFilters(ctx context.Context, query, filename, topic string, maxResults int) ([]domain.SearchResult, error) {
	s.track(ctx, KindAdvanced)

	q := Plan(query)
	q.Filename = filename
	q.Topic = topic
	q.Limit = s.limit(maxResults)
	results, err := s.run(ctx, query, q)
	if err != nil {
		return nil, fmt.Errorf("search.SearchWithFilters: %w", err)
	}
	return results, nil
}

// run executes q. A failing full-text query is retried as a content
// substring match on the lowercased input.
func (s *Service) run(ctx context.Context, raw string, q domain.SearchQuery) ([]domain.SearchResult, error) {
	results, err := s.index.Search(ctx, q)
	if err == nil || q.Mode != domain.SearchModeFullText || errors.Is(err, context.Canceled) {
		return results, err
	}

	s.log.WarnContext(ctx, "full-text query failed, using fallback",
		slog.String("query", raw),
		slog.String("error", err.Error()),
	)
	q.Mode = domain.SearchModeContentSubstring
	q.Terms = []string{strings.ToLower(strings.TrimSpace(raw))}
	return s.index.Search(ctx, q)
}

func (s *Service) limit(n int) int {
	if n <= 0 {
		return s.cfg.DefaultMaxResults
	}
	return n
}

// Suggestions returns up to max distinct words extending prefix.
func (s *Service) Suggestions(ctx context.Context, prefix string, max int) ([]string, error) {
	s.track(ctx, KindSuggestions)

	prefix = strings.TrimSpace(prefix)
	if prefix == "" {
		return []string{}, nil
	}
	if max <= 0 {
		max = s.cfg.MaxSuggestions
	}
	words, err := s.index.Suggestions(ctx, prefix, max)
	if err != nil {
		return nil, fmt.Errorf("search.Suggestions: %w", err)
	}
	return words, nil
}

// Stats describes the index.
func (s *Service) Stats(ctx context.Context) (domain.IndexStats, error) {
	st, err := s.index.Stats(ctx)
	if err != nil {
		return domain.IndexStats{}, fmt.Errorf("search.Stats: %w", err)
	}
	return st, nil
}

// All returns every indexed entry in upload order without counting a search.
func (s *Service) All(ctx context.Context) ([]domain.SearchResult, error) {
	results, err := s.index.Search(ctx, domain.SearchQuery{Mode: domain.SearchModeAll})
	if err != nil {
		return nil, fmt.Errorf("search.All: %w", err)
	}
	return results, nil
}
