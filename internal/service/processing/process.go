package processing

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/heartmarshall/studydocs-backend/internal/domain"
)

// ErrNoContent means extraction produced no content blocks.
var ErrNoContent = errors.New("no content could be extracted from the document")

// Process extracts doc, stores and indexes its blocks and marks it COMPLETED.
// Any failure marks it FAILED; the error is also returned. A document that
// left PROCESSING meanwhile, such as one failed by the stale sweep, keeps its
// status and the extracted blocks are discarded.
func (s *Service) Process(ctx context.Context, doc domain.Document) error {
	start := s.now()
	log := s.log.With(slog.String("document_id", doc.ID.String()), slog.String("filename", doc.OriginalFilename))
	log.InfoContext(ctx, "processing started", slog.String("file_type", doc.FileType))

	blocks, err := s.extractDocument(ctx, doc)
	if err == nil && len(blocks) == 0 {
		err = ErrNoContent
	}
	if err == nil {
		err = s.store(ctx, doc, blocks)
	}

	elapsed := s.now().Sub(start)
	if errors.Is(err, domain.ErrConflict) {
		log.WarnContext(ctx, "document no longer processing, result discarded",
			slog.String("elapsed", FormatDuration(elapsed)),
		)
		s.record(doc.FileType, false, elapsed)
		return fmt.Errorf("processing.Process: %w", err)
	}
	if err != nil {
		log.ErrorContext(ctx, "processing failed",
			slog.String("error", err.Error()),
			slog.String("elapsed", FormatDuration(elapsed)),
		)
		s.markFailed(context.WithoutCancel(ctx), doc)
		s.record(doc.FileType, false, elapsed)
		return fmt.Errorf("processing.Process: %w", err)
	}

	log.InfoContext(ctx, "processing completed",
		slog.Int("blocks", len(blocks)),
		slog.String("elapsed", FormatDuration(elapsed)),
	)
	s.record(doc.FileType, true, elapsed)
	return nil
}

func (s *Service) store(ctx context.Context, doc domain.Document, blocks []domain.DocumentContent) error {
	summary := Summary(blocks[0].Content, s.cfg.SummaryMaxChars)
	return s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		if err := s.contents.Replace(txCtx, doc.ID, blocks); err != nil {
			return fmt.Errorf("save contents: %w", err)
		}
		if err := s.index.Index(txCtx, doc, blocks); err != nil {
			return fmt.Errorf("index contents: %w", err)
		}
		if err := s.docs.FinishProcessing(txCtx, doc.ID, domain.DocumentStatusCompleted, &summary); err != nil {
			return fmt.Errorf("update status: %w", err)
		}
		return nil
	})
}

func (s *Service) markFailed(ctx context.Context, doc domain.Document) {
	err := s.docs.FinishProcessing(ctx, doc.ID, domain.DocumentStatusFailed, nil)
	if err != nil && !errors.Is(err, domain.ErrConflict) {
		s.log.ErrorContext(ctx, "mark document failed",
			slog.String("document_id", doc.ID.String()),
			slog.String("error", err.Error()),
		)
	}
}

func (s *Service) record(fileType string, ok bool, d time.Duration) {
	if s.metrics != nil {
		s.metrics.DocumentProcessed(fileType, ok, d)
	}
}

// RecoverStale marks documents stuck in PROCESSING for longer than olderThan as FAILED.
func (s *Service) RecoverStale(ctx context.Context, olderThan time.Duration) (int, error) {
	n, err := s.docs.FailStale(ctx, s.now().Add(-olderThan))
	if err != nil {
		return 0, fmt.Errorf("processing.RecoverStale: %w", err)
	}
	if n > 0 {
		s.log.WarnContext(ctx, "stale documents marked failed", slog.Int("count", n))
	}
	return n, nil
}

// Summary returns the first max runes of content.
func Summary(content string, max int) string {
	r := []rune(content)
	if len(r) <= max {
		return content
	}
	return string(r[:max])
}
