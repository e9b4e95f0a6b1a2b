package document

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/heartmarshall/studydocs-backend/internal/domain"
)

// List returns documents newest first, optionally filtered by status.
func (s *Service) List(ctx context.Context, input ListInput) ([]domain.Document, error) {
	f, err := input.filter()
	if err != nil {
		return nil, err
	}
	docs, err := s.docs.List(ctx, f)
	if err != nil {
		return nil, fmt.Errorf("document.List: %w", err)
	}
	return docs, nil
}

// ListByStatus returns documents in the given status.
func (s *Service) ListByStatus(ctx context.Context, status string) ([]domain.Document, error) {
	return s.List(ctx, ListInput{Status: status})
}

// Get returns one document.
func (s *Service) Get(ctx context.Context, id uuid.UUID) (*domain.Document, error) {
	doc, err := s.docs.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("document.Get: %w", err)
	}
	return doc, nil
}

// Stats aggregates document counts.
func (s *Service) Stats(ctx context.Context) (domain.DocumentStats, error) {
	st, err := s.docs.Stats(ctx, s.now().Add(-RecentWindow))
	if err != nil {
		return domain.DocumentStats{}, fmt.Errorf("document.Stats: %w", err)
	}
	return st, nil
}

// Contents returns a document's content blocks ordered by page, then slide.
func (s *Service) Contents(ctx context.Context, id uuid.UUID) ([]domain.DocumentContent, error) {
	if _, err := s.docs.GetByID(ctx, id); err != nil {
		return nil, fmt.Errorf("document.Contents: %w", err)
	}
	blocks, err := s.contents.ListByDocument(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("document.Contents: %w", err)
	}
	return blocks, nil
}
