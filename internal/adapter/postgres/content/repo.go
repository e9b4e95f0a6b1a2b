// Package content implements the DocumentContent repository using PostgreSQL.
package content

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/heartmarshall/studydocs-backend/internal/adapter/postgres"
	"github.com/heartmarshall/studydocs-backend/internal/domain"
)

// Repo provides extracted content persistence backed by PostgreSQL.
type Repo struct {
	pool *pgxpool.Pool
}

// New creates a new content repository.
func New(pool *pgxpool.Pool) *Repo {
	return &Repo{pool: pool}
}

// ---------------------------------------------------------------------------
// Read operations
// ---------------------------------------------------------------------------

const listByDocumentSQL = `
SELECT id, document_id, page_number, slide_number, content, topic, section_title, content_hash, word_count, created_at
  FROM document_contents
 WHERE document_id = $1
 ORDER BY coalesce(page_number, 0), coalesce(slide_number, 0), created_at, id`

// ListByDocument returns a document's content blocks ordered by page, then slide.
func (r *Repo) ListByDocument(ctx context.Context, documentID uuid.UUID) ([]domain.DocumentContent, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	rows, err := q.Query(ctx, listByDocumentSQL, documentID)
	if err != nil {
		return nil, fmt.Errorf("list document_contents: %w", err)
	}
	defer rows.Close()

	out := make([]domain.DocumentContent, 0)
	for rows.Next() {
		var c domain.DocumentContent
		if err := rows.Scan(
			&c.ID, &c.DocumentID, &c.PageNumber, &c.SlideNumber, &c.Content,
			&c.Topic, &c.SectionTitle, &c.ContentHash, &c.WordCount, &c.CreatedAt,
		); err != nil {
			return nil, fmt.Errorf("scan document_content: %w", err)
		}
		out = append(out, c)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list document_contents: %w", err)
	}
	return out, nil
}

// ---------------------------------------------------------------------------
// Write operations
// ---------------------------------------------------------------------------

const insertSQL = `
INSERT INTO document_contents (id, document_id, page_number, slide_number, content, topic, section_title, content_hash, word_count, created_at)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, coalesce($10, now()))`

// Replace deletes the document's existing blocks and inserts blocks in one batch.
// Callers run it inside a transaction to make the swap atomic.
func (r *Repo) Replace(ctx context.Context, documentID uuid.UUID, blocks []domain.DocumentContent) error {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	if _, err := q.Exec(ctx, `DELETE FROM document_contents WHERE document_id = $1`, documentID); err != nil {
		return postgres.MapError(err, "document_content", documentID)
	}
	if len(blocks) == 0 {
		return nil
	}

	batch := &pgx.Batch{}
	for _, c := range blocks {
		var createdAt any
		if !c.CreatedAt.IsZero() {
			createdAt = c.CreatedAt
		}
		batch.Queue(insertSQL,
			c.ID, documentID, c.PageNumber, c.SlideNumber, c.Content,
			c.Topic, c.SectionTitle, c.ContentHash, c.WordCount, createdAt,
		)
	}

	br := q.SendBatch(ctx, batch)
	defer br.Close()

	for range blocks {
		if _, err := br.Exec(); err != nil {
			return postgres.MapError(err, "document_content", documentID)
		}
	}
	return nil
}

// Count returns the total number of stored content blocks.
func (r *Repo) Count(ctx context.Context) (int, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	var n int
	if err := q.QueryRow(ctx, `SELECT count(*) FROM document_contents`).Scan(&n); err != nil {
		return 0, fmt.Errorf("count document_contents: %w", err)
	}
	return n, nil
}
