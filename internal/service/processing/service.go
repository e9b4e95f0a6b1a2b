// Package processing extracts text from uploaded documents in a background
// worker pool and indexes the result.
package processing

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/heartmarshall/studydocs-backend/internal/adapter/extract"
	"github.com/heartmarshall/studydocs-backend/internal/config"
	"github.com/heartmarshall/studydocs-backend/internal/domain"
)

type documentRepo interface {
	FinishProcessing(ctx context.Context, id uuid.UUID, status domain.DocumentStatus, summary *string) error
	FailStale(ctx context.Context, olderThan time.Time) (int, error)
}

type contentRepo interface {
	Replace(ctx context.Context, documentID uuid.UUID, blocks []domain.DocumentContent) error
}

type indexer interface {
	Index(ctx context.Context, doc domain.Document, blocks []domain.DocumentContent) error
}

type extractor interface {
	PlainText(path string) (string, error)
	PDFPages(path string) ([]extract.Page, error)
	DocxParagraphs(path string) ([]string, error)
	PptxSlides(path string) ([]string, error)
	LegacyText(path string) (string, error)
	RTFText(path string) (string, error)
	OpenArchive(path string) (*extract.Archive, error)
}

type txManager interface {
	RunInTx(ctx context.Context, fn func(ctx context.Context) error) error
}

type recorder interface {
	DocumentProcessed(fileType string, ok bool, d time.Duration)
}

// Service runs document extraction.
type Service struct {
	docs     documentRepo
	contents contentRepo
	index    indexer
	extract  extractor
	tx       txManager
	metrics  recorder
	cfg      config.ProcessingConfig
	tempDir  string
	now      func() time.Time
	log      *slog.Logger

	queue   chan domain.Document
	wg      sync.WaitGroup
	mu      sync.RWMutex
	running bool
}

// NewService creates a processing Service. Call Start before Enqueue.
func NewService(
	log *slog.Logger,
	cfg config.ProcessingConfig,
	docs documentRepo,
	contents contentRepo,
	index indexer,
	ext extractor,
	tx txManager,
	metrics recorder,
) *Service {
	if cfg.Workers <= 0 {
		cfg.Workers = 1
	}
	if cfg.QueueSize <= 0 {
		cfg.QueueSize = cfg.Workers * 16
	}
	if cfg.DocxChunkChars <= 0 {
		cfg.DocxChunkChars = 5000
	}
	if cfg.SummaryMaxChars <= 0 {
		cfg.SummaryMaxChars = 200
	}
	if cfg.ZipMaxEntries <= 0 {
		cfg.ZipMaxEntries = 100
	}
	return &Service{
		docs:     docs,
		contents: contents,
		index:    index,
		extract:  ext,
		tx:       tx,
		metrics:  metrics,
		cfg:      cfg,
		now:      time.Now,
		log:      log.With("service", "processing"),
		queue:    make(chan domain.Document, cfg.QueueSize),
	}
}
