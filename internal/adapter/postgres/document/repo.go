// Package document implements the Document repository using PostgreSQL.
package document

import (
	"context"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/heartmarshall/studydocs-backend/internal/adapter/postgres"
	"github.com/heartmarshall/studydocs-backend/internal/domain"
)

// Repo provides document persistence backed by PostgreSQL.
type Repo struct {
	pool *pgxpool.Pool
}

// New creates a new document repository.
func New(pool *pgxpool.Pool) *Repo {
	return &Repo{pool: pool}
}

var documentColumns = []string{
	"id", "filename", "original_filename", "file_size", "file_type",
	"status", "file_path", "content_summary", "upload_date", "updated_at",
}

// ---------------------------------------------------------------------------
// Read operations
// ---------------------------------------------------------------------------

// GetByID returns a document by primary key.
func (r *Repo) GetByID(ctx context.Context, id uuid.UUID) (*domain.Document, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	row, err := postgres.QueryRowBuilt(ctx, q, postgres.Builder.
		Select(documentColumns...).
		From("documents").
		Where(squirrel.Eq{"id": id}))
	if err != nil {
		return nil, err
	}

	doc, err := scanDocument(row)
	if err != nil {
		return nil, postgres.MapError(err, "document", id)
	}
	return doc, nil
}

// List returns documents newest first, narrowed by the filter.
func (r *Repo) List(ctx context.Context, f domain.DocumentFilter) ([]domain.Document, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	b := postgres.Builder.
		Select(documentColumns...).
		From("documents").
		OrderBy("upload_date DESC", "id DESC")
	if f.Status != nil {
		b = b.Where(squirrel.Eq{"status": string(*f.Status)})
	}
	if f.UploadedBefore != nil {
		b = b.Where(squirrel.Lt{"upload_date": *f.UploadedBefore})
	}
	if f.Limit > 0 {
		b = b.Limit(uint64(f.Limit))
	}

	rows, err := postgres.QueryBuilt(ctx, q, b)
	if err != nil {
		return nil, fmt.Errorf("list documents: %w", err)
	}
	defer rows.Close()

	docs := make([]domain.Document, 0)
	for rows.Next() {
		doc, err := scanDocument(rows)
		if err != nil {
			return nil, fmt.Errorf("scan document: %w", err)
		}
		docs = append(docs, *doc)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list documents: %w", err)
	}
	return docs, nil
}

const statsSQL = `
SELECT count(*),
       count(*) FILTER (WHERE status = 'PROCESSING'),
       count(*) FILTER (WHERE status = 'COMPLETED'),
       count(*) FILTER (WHERE status = 'FAILED'),
       coalesce(sum(file_size) FILTER (WHERE status = 'COMPLETED'), 0),
       count(*) FILTER (WHERE upload_date >= $1)
  FROM documents`

// Stats aggregates document counts. Documents uploaded at or after since
// count as recent.
func (r *Repo) Stats(ctx context.Context, since time.Time) (domain.DocumentStats, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	var s domain.DocumentStats
	err := q.QueryRow(ctx, statsSQL, since).Scan(
		&s.TotalDocuments, &s.ProcessingCount, &s.CompletedCount,
		&s.FailedCount, &s.TotalFileSize, &s.RecentDocumentsCount,
	)
	if err != nil {
		return domain.DocumentStats{}, fmt.Errorf("document stats: %w", err)
	}
	return s, nil
}

// ---------------------------------------------------------------------------
// Write operations
// ---------------------------------------------------------------------------

const insertSQL = `
INSERT INTO documents (id, filename, original_filename, file_size, file_type, status, file_path, content_summary, upload_date, updated_at)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)`

// Create inserts a new document.
func (r *Repo) Create(ctx context.Context, doc *domain.Document) error {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	_, err := q.Exec(ctx, insertSQL,
		doc.ID, doc.Filename, doc.OriginalFilename, doc.FileSize, doc.FileType,
		string(doc.Status), doc.FilePath, doc.ContentSummary, doc.UploadDate, doc.UpdatedAt,
	)
	if err != nil {
		return postgres.MapError(err, "document", doc.ID)
	}
	return nil
}

const finishSQL = `
UPDATE documents
   SET status = $2, content_summary = coalesce($3, content_summary), updated_at = now()
 WHERE id = $1 AND status = 'PROCESSING'`

// FinishProcessing moves a PROCESSING document to status and, when summary is
// non-nil, sets its content summary. A document that already left PROCESSING
// yields ErrConflict.
func (r *Repo) FinishProcessing(ctx context.Context, id uuid.UUID, status domain.DocumentStatus, summary *string) error {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	tag, err := q.Exec(ctx, finishSQL, id, string(status), summary)
	if err != nil {
		return postgres.MapError(err, "document", id)
	}
	if tag.RowsAffected() > 0 {
		return nil
	}

	var exists bool
	if err := q.QueryRow(ctx, `SELECT EXISTS (SELECT 1 FROM documents WHERE id = $1)`, id).Scan(&exists); err != nil {
		return postgres.MapError(err, "document", id)
	}
	if exists {
		return fmt.Errorf("document %s is no longer processing: %w", id, domain.ErrConflict)
	}
	return fmt.Errorf("document %s: %w", id, domain.ErrNotFound)
}

const failStaleSQL = `
UPDATE documents
   SET status = 'FAILED', updated_at = now()
 WHERE status = 'PROCESSING' AND upload_date < $1`

// FailStale marks documents still processing since before olderThan as FAILED
// and returns how many were changed.
func (r *Repo) FailStale(ctx context.Context, olderThan time.Time) (int, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	tag, err := q.Exec(ctx, failStaleSQL, olderThan)
	if err != nil {
		return 0, fmt.Errorf("fail stale documents: %w", err)
	}
	return int(tag.RowsAffected()), nil
}

// Delete removes a document; contents and index entries cascade.
func (r *Repo) Delete(ctx context.Context, id uuid.UUID) error {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	tag, err := q.Exec(ctx, `DELETE FROM documents WHERE id = $1`, id)
	if err != nil {
		return postgres.MapError(err, "document", id)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("document %s: %w", id, domain.ErrNotFound)
	}
	return nil
}

// ---------------------------------------------------------------------------
// Scanning
// ---------------------------------------------------------------------------

func scanDocument(row pgx.Row) (*domain.Document, error) {
	var (
		d      domain.Document
		status string
	)
	if err := row.Scan(
		&d.ID, &d.Filename, &d.OriginalFilename, &d.FileSize, &d.FileType,
		&status, &d.FilePath, &d.ContentSummary, &d.UploadDate, &d.UpdatedAt,
	); err != nil {
		return nil, err
	}
	d.Status = domain.DocumentStatus(status)
	return &d, nil
}
