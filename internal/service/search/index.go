package search

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"github.com/heartmarshall/studydocs-backend/internal/domain"
)

// Index replaces the index entries of doc with blocks.
func (s *Service) Index(ctx context.Context, doc domain.Document, blocks []domain.DocumentContent) error {
	if err := s.index.Replace(ctx, doc.ID, entries(doc, blocks)); err != nil {
		return fmt.Errorf("search.Index: %w", err)
	}
	return nil
}

func entries(doc domain.Document, blocks []domain.DocumentContent) []domain.IndexEntry {
	out := make([]domain.IndexEntry, len(blocks))
	for i, b := range blocks {
		out[i] = domain.IndexEntry{
			ContentID:    b.ID,
			DocumentID:   doc.ID,
			Filename:     doc.OriginalFilename,
			Content:      b.Content,
			Topic:        b.Topic,
			SectionTitle: b.SectionTitle,
			PageNumber:   b.PageNumber,
			SlideNumber:  b.SlideNumber,
			UploadedAt:   doc.UploadDate,
		}
	}
	return out
}

// Reindex rebuilds the entries of one document from its stored content.
// Documents that are not COMPLETED only lose their entries.
func (s *Service) Reindex(ctx context.Context, documentID uuid.UUID) error {
	doc, err := s.docs.GetByID(ctx, documentID)
	if err != nil {
		return fmt.Errorf("search.Reindex: %w", err)
	}
	if err := s.reindex(ctx, *doc); err != nil {
		return fmt.Errorf("search.Reindex: %w", err)
	}
	s.log.InfoContext(ctx, "document reindexed",
		slog.String("document_id", documentID.String()),
		slog.String("filename", doc.OriginalFilename),
	)
	return nil
}

func (s *Service) reindex(ctx context.Context, doc domain.Document) error {
	return s.tx.RunInTx(ctx, func(ctx context.Context) error {
		if doc.Status != domain.DocumentStatusCompleted {
			return s.index.DeleteDocument(ctx, doc.ID)
		}
		blocks, err := s.contents.ListByDocument(ctx, doc.ID)
		if err != nil {
			return err
		}
		return s.index.Replace(ctx, doc.ID, entries(doc, blocks))
	})
}

// ReindexAll rebuilds the index from every COMPLETED document and returns
// how many were reindexed. Entries of other documents are dropped first.
// It stops at the first failure.
func (s *Service) ReindexAll(ctx context.Context) (int, error) {
	pruned, err := s.index.PruneIncomplete(ctx)
	if err != nil {
		return 0, fmt.Errorf("search.ReindexAll: %w", err)
	}
	if pruned > 0 {
		s.log.InfoContext(ctx, "orphan index entries removed", slog.Int("entries", pruned))
	}

	status := domain.DocumentStatusCompleted
	docs, err := s.docs.List(ctx, domain.DocumentFilter{Status: &status})
	if err != nil {
		return 0, fmt.Errorf("search.ReindexAll: %w", err)
	}

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(s.cfg.ReindexWorkers)
	for _, doc := range docs {
		g.Go(func() error {
			if err := s.reindex(gctx, doc); err != nil {
				return fmt.Errorf("document %s: %w", doc.ID, err)
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return 0, fmt.Errorf("search.ReindexAll: %w", err)
	}

	s.log.InfoContext(ctx, "index rebuilt", slog.Int("documents", len(docs)))
	return len(docs), nil
}

// DeleteDocument removes a document's entries from the index.
func (s *Service) DeleteDocument(ctx context.Context, documentID uuid.UUID) error {
	if err := s.index.DeleteDocument(ctx, documentID); err != nil {
		return fmt.Errorf("search.DeleteDocument: %w", err)
	}
	return nil
}
