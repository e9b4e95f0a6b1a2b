package processing

import (
	"context"
	"log/slog"
	"os"
	"sync"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/heartmarshall/studydocs-backend/internal/adapter/extract"
	"github.com/heartmarshall/studydocs-backend/internal/domain"
)

// extractZip processes supported archive entries concurrently. A failing
// entry is logged and skipped. Blocks keep archive order and their section
// titles are prefixed with the entry name. When ZipTimeout passes, the blocks
// collected so far are returned and entries still running are discarded.
func (s *Service) extractZip(ctx context.Context, doc domain.Document) ([]domain.DocumentContent, error) {
	log := s.log.With(slog.String("document_id", doc.ID.String()))

	if info, err := os.Stat(doc.FilePath); err == nil && s.cfg.ZipWarnBytes > 0 && info.Size() > s.cfg.ZipWarnBytes {
		log.WarnContext(ctx, "large zip file, processing may take a long time",
			slog.String("size", domain.FormatFileSize(info.Size())),
		)
	}

	archive, err := s.extract.OpenArchive(doc.FilePath)
	if err != nil {
		return nil, err
	}
	defer archive.Close()

	entries := selectEntries(archive.Entries(), s.cfg.ZipMaxEntries)
	log.InfoContext(ctx, "zip entries selected", slog.Int("supported", len(entries)))

	if s.cfg.ZipTimeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, s.cfg.ZipTimeout)
		defer cancel()
	}

	results := make([][]domain.DocumentContent, len(entries))
	var (
		mu     sync.Mutex
		failed int
		closed bool
	)

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(s.cfg.Workers)
	done := make(chan struct{})
	go func() {
		defer close(done)
		for i, entry := range entries {
			g.Go(func() error {
				if gctx.Err() != nil {
					return nil
				}
				start := time.Now()
				blocks, err := s.extractEntry(gctx, doc, archive, entry)

				mu.Lock()
				defer mu.Unlock()
				if closed {
					log.WarnContext(gctx, "zip entry finished after timeout, discarded", slog.String("entry", entry.Name))
					return nil
				}
				if err != nil {
					failed++
					log.WarnContext(gctx, "zip entry skipped",
						slog.String("entry", entry.Name),
						slog.String("error", err.Error()),
					)
					return nil
				}
				results[i] = blocks
				log.DebugContext(gctx, "zip entry processed",
					slog.String("entry", entry.Name),
					slog.Int("blocks", len(blocks)),
					slog.String("elapsed", FormatDuration(time.Since(start))),
				)
				return nil
			})
		}
		_ = g.Wait()
	}()

	select {
	case <-done:
	case <-ctx.Done():
		log.WarnContext(ctx, "zip processing stopped by timeout")
	}

	mu.Lock()
	closed = true
	var all []domain.DocumentContent
	for _, blocks := range results {
		all = append(all, blocks...)
	}
	skipped := failed
	mu.Unlock()

	log.InfoContext(ctx, "zip processing complete",
		slog.Int("entries", len(entries)),
		slog.Int("failed", skipped),
		slog.Int("blocks", len(all)),
	)
	return all, nil
}

func (s *Service) extractEntry(ctx context.Context, doc domain.Document, archive *extract.Archive, entry extract.ArchiveEntry) ([]domain.DocumentContent, error) {
	tmp, err := archive.ExtractTemp(ctx, entry.Name, s.tempDir)
	if err != nil {
		return nil, err
	}
	defer func() {
		if err := os.Remove(tmp); err != nil {
			s.log.WarnContext(ctx, "remove temp file", slog.String("path", tmp), slog.String("error", err.Error()))
		}
	}()

	blocks, err := s.extractFile(doc.ID, tmp, domain.FileExt(entry.Name))
	if err != nil {
		return nil, err
	}
	for i := range blocks {
		blocks[i].SectionTitle = entry.Name + " - " + blocks[i].SectionTitle
	}
	return blocks, nil
}

// selectEntries keeps the first max entries of the archive, then drops
// directories, OS metadata and unsupported types.
func selectEntries(entries []extract.ArchiveEntry, max int) []extract.ArchiveEntry {
	if len(entries) > max {
		entries = entries[:max]
	}
	out := make([]extract.ArchiveEntry, 0, len(entries))
	for _, e := range entries {
		if e.IsDir || e.Hidden() || !domain.IsArchiveEntryType(domain.FileExt(e.Name)) {
			continue
		}
		out = append(out, e)
	}
	return out
}
