package document

import (
	"context"
	"io"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/heartmarshall/studydocs-backend/internal/domain"
)

type documentRepo interface {
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Document, error)
	List(ctx context.Context, f domain.DocumentFilter) ([]domain.Document, error)
	Stats(ctx context.Context, since time.Time) (domain.DocumentStats, error)
	Create(ctx context.Context, doc *domain.Document) error
	Delete(ctx context.Context, id uuid.UUID) error
}

type contentRepo interface {
	ListByDocument(ctx context.Context, documentID uuid.UUID) ([]domain.DocumentContent, error)
}

type fileStore interface {
	Save(ctx context.Context, name string, r io.Reader) (string, int64, error)
	Open(path string) (io.ReadCloser, error)
	Delete(path string) error
}

type searchIndex interface {
	DeleteDocument(ctx context.Context, documentID uuid.UUID) error
}

type processor interface {
	Enqueue(doc domain.Document) error
}

type txManager interface {
	RunInTx(ctx context.Context, fn func(ctx context.Context) error) error
}

// RecentWindow is the age limit for DocumentStats.RecentDocumentsCount.
const RecentWindow = 7 * 24 * time.Hour

// Service manages uploaded documents and their stored files.
type Service struct {
	docs      documentRepo
	contents  contentRepo
	files     fileStore
	index     searchIndex
	processor processor
	tx        txManager
	maxUpload int64
	now       func() time.Time
	log       *slog.Logger
}

// NewService creates a document Service. maxUpload <= 0 uses domain.MaxUploadBytes.
func NewService(
	log *slog.Logger,
	docs documentRepo,
	contents contentRepo,
	files fileStore,
	index searchIndex,
	processor processor,
	tx txManager,
	maxUpload int64,
) *Service {
	if maxUpload <= 0 {
		maxUpload = domain.MaxUploadBytes
	}
	return &Service{
		docs:      docs,
		contents:  contents,
		files:     files,
		index:     index,
		processor: processor,
		tx:        tx,
		maxUpload: maxUpload,
		now:       time.Now,
		log:       log.With("service", "document"),
	}
}
