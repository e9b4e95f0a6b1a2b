package document

import (
	"context"
	"fmt"
	"log/slog"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/google/uuid"

	"github.com/heartmarshall/studydocs-backend/internal/domain"
)

// Upload stores the file, records it as PROCESSING and queues extraction.
// A failure to queue is logged; the document stays PROCESSING until the
// stale-document cleanup marks it FAILED.
func (s *Service) Upload(ctx context.Context, input UploadInput) (*domain.Document, error) {
	if err := input.Validate(s.maxUpload); err != nil {
		return nil, err
	}

	original := strings.TrimSpace(filepath.Base(input.Filename))
	now := s.now()
	stored := strconv.FormatInt(now.UnixMilli(), 10) + "_" + original

	path, size, err := s.files.Save(ctx, stored, input.Body)
	if err != nil {
		return nil, fmt.Errorf("document.Upload: save file: %w", err)
	}
	if size == 0 {
		_ = s.files.Delete(path)
		return nil, domain.NewValidationError("file", MsgFileEmpty)
	}

	doc := &domain.Document{
		ID:               uuid.New(),
		Filename:         stored,
		OriginalFilename: original,
		FileSize:         size,
		FileType:         domain.FileExt(original),
		Status:           domain.DocumentStatusProcessing,
		FilePath:         path,
		UploadDate:       now,
		UpdatedAt:        now,
	}
	if err := s.docs.Create(ctx, doc); err != nil {
		if rmErr := s.files.Delete(path); rmErr != nil {
			s.log.WarnContext(ctx, "remove orphaned upload", slog.String("path", path), slog.String("error", rmErr.Error()))
		}
		return nil, fmt.Errorf("document.Upload: create: %w", err)
	}

	if err := s.processor.Enqueue(*doc); err != nil {
		s.log.WarnContext(ctx, "failed to start processing",
			slog.String("document_id", doc.ID.String()),
			slog.String("error", err.Error()),
		)
	}

	s.log.InfoContext(ctx, "document uploaded",
		slog.String("document_id", doc.ID.String()),
		slog.String("filename", original),
		slog.Int64("size", size),
	)
	return doc, nil
}
