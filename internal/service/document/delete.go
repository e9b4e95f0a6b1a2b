package document

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/heartmarshall/studydocs-backend/internal/domain"
)

// Delete removes a document from the index and the database, then deletes
// its stored file. A missing file is logged and ignored.
func (s *Service) Delete(ctx context.Context, id uuid.UUID) error {
	doc, err := s.docs.GetByID(ctx, id)
	if err != nil {
		return fmt.Errorf("document.Delete: %w", err)
	}

	err = s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		if err := s.index.DeleteDocument(txCtx, id); err != nil {
			return fmt.Errorf("remove from index: %w", err)
		}
		if err := s.docs.Delete(txCtx, id); err != nil {
			return fmt.Errorf("delete row: %w", err)
		}
		return nil
	})
	if err != nil {
		return fmt.Errorf("document.Delete: %w", err)
	}

	if doc.FilePath != "" {
		if err := s.files.Delete(doc.FilePath); err != nil {
			level := slog.LevelError
			if errors.Is(err, domain.ErrNotFound) {
				level = slog.LevelWarn
			}
			s.log.Log(ctx, level, "stored file not removed",
				slog.String("document_id", id.String()),
				slog.String("path", doc.FilePath),
				slog.String("error", err.Error()),
			)
		}
	}

	s.log.InfoContext(ctx, "document deleted", slog.String("document_id", id.String()))
	return nil
}

// DeleteAll deletes every document and returns how many were removed.
// Documents that fail to delete are logged and skipped.
func (s *Service) DeleteAll(ctx context.Context) (int, error) {
	docs, err := s.docs.List(ctx, domain.DocumentFilter{})
	if err != nil {
		return 0, fmt.Errorf("document.DeleteAll: %w", err)
	}

	deleted := 0
	for _, doc := range docs {
		if err := s.Delete(ctx, doc.ID); err != nil {
			s.log.ErrorContext(ctx, "delete document failed",
				slog.String("document_id", doc.ID.String()),
				slog.String("error", err.Error()),
			)
			continue
		}
		deleted++
	}
	return deleted, nil
}
