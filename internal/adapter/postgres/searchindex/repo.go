// Package searchindex implements the full-text search index over extracted
// document content using a generated tsvector column in PostgreSQL.
package searchindex

import (
	"context"
	"fmt"
	"strings"

	"github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/heartmarshall/studydocs-backend/internal/adapter/postgres"
	"github.com/heartmarshall/studydocs-backend/internal/domain"
)

// Directory is reported as the index location in stats.
const Directory = "postgres:search_entries"

// Repo provides search index persistence backed by PostgreSQL.
type Repo struct {
	pool *pgxpool.Pool
}

// New creates a new search index repository.
func New(pool *pgxpool.Pool) *Repo {
	return &Repo{pool: pool}
}

// ---------------------------------------------------------------------------
// Search
// ---------------------------------------------------------------------------

// Search runs q and returns results in upload order: uploaded_at, document id,
// page (nil as 0), slide (nil as 0).
func (r *Repo) Search(ctx context.Context, q domain.SearchQuery) ([]domain.SearchResult, error) {
	b, err := buildSearch(q)
	if err != nil {
		return nil, err
	}

	rows, err := postgres.QueryBuilt(ctx, postgres.QuerierFromCtx(ctx, r.pool), b)
	if err != nil {
		return nil, fmt.Errorf("search entries: %w", err)
	}
	defer rows.Close()

	results := make([]domain.SearchResult, 0)
	for rows.Next() {
		var res domain.SearchResult
		if err := rows.Scan(
			&res.DocumentID, &res.ContentID, &res.Content, &res.Filename, &res.Topic,
			&res.SectionTitle, &res.PageNumber, &res.SlideNumber, &res.UploadedAt, &res.Score,
		); err != nil {
			return nil, fmt.Errorf("scan search entry: %w", err)
		}
		results = append(results, res)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("search entries: %w", err)
	}
	return results, nil
}

func buildSearch(q domain.SearchQuery) (squirrel.SelectBuilder, error) {
	b := postgres.Builder.
		Select("document_id", "content_id", "content", "filename", "topic",
			"section_title", "page_number", "slide_number", "uploaded_at").
		From("search_entries")

	terms := nonEmpty(q.Terms)
	switch q.Mode {
	case domain.SearchModeAll:
		b = b.Column("1.0::float8 AS score")
	case domain.SearchModeSubstring, domain.SearchModeContentSubstring:
		if len(terms) == 0 {
			return b, fmt.Errorf("search entries: %w", domain.NewValidationError("q", "query has no terms"))
		}
		fields := []string{"content", "filename", "topic", "section_title"}
		if q.Mode == domain.SearchModeContentSubstring {
			fields = fields[:1]
		}
		match := squirrel.Or{}
		for _, t := range terms {
			for _, f := range fields {
				match = append(match, squirrel.ILike{f: containsPattern(t)})
			}
		}
		b = b.Column("1.0::float8 AS score").Where(match)
	case domain.SearchModeFullText:
		if len(terms) == 0 {
			return b, fmt.Errorf("search entries: %w", domain.NewValidationError("q", "query has no terms"))
		}
		tsq, args := tsQuery(terms)
		b = b.Column(squirrel.Expr("ts_rank(search_vector, "+tsq+")::float8 AS score", args...)).
			Where(squirrel.Expr("search_vector @@ "+tsq, args...))
	default:
		return b, fmt.Errorf("search entries: unknown mode %d", q.Mode)
	}

	if f := strings.TrimSpace(q.Filename); f != "" {
		b = b.Where(squirrel.ILike{"filename": containsPattern(f)})
	}
	if t := strings.TrimSpace(q.Topic); t != "" {
		b = b.Where(squirrel.ILike{"topic": containsPattern(t)})
	}

	b = b.OrderBy("uploaded_at", "document_id", "coalesce(page_number, 0)", "coalesce(slide_number, 0)")
	if q.Limit > 0 {
		b = b.Limit(uint64(q.Limit))
	}
	return b, nil
}

// tsQuery ORs websearch_to_tsquery over all terms.
func tsQuery(terms []string) (string, []any) {
	parts := make([]string, len(terms))
	args := make([]any, len(terms))
	for i, t := range terms {
		parts[i] = "websearch_to_tsquery('english', ?)"
		args[i] = t
	}
	return "(" + strings.Join(parts, " || ") + ")", args
}

var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

func containsPattern(s string) string {
	return "%" + likeEscaper.Replace(s) + "%"
}

func nonEmpty(in []string) []string {
	out := make([]string, 0, len(in))
	for _, s := range in {
		if s = strings.TrimSpace(s); s != "" {
			out = append(out, s)
		}
	}
	return out
}

// ---------------------------------------------------------------------------
// Suggestions / stats
// ---------------------------------------------------------------------------

const suggestionsSQL = `
SELECT DISTINCT w
  FROM search_entries, regexp_split_to_table(lower(content), '\s+') AS w
 WHERE starts_with(w, $1) AND length(w) > length($1)
 ORDER BY w
 LIMIT $2`

// Suggestions returns distinct lowercased words that extend prefix, alphabetically.
func (r *Repo) Suggestions(ctx context.Context, prefix string, limit int) ([]string, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	rows, err := q.Query(ctx, suggestionsSQL, strings.ToLower(prefix), limit)
	if err != nil {
		return nil, fmt.Errorf("search suggestions: %w", err)
	}
	words, err := pgx.CollectRows(rows, pgx.RowTo[string])
	if err != nil {
		return nil, fmt.Errorf("search suggestions: %w", err)
	}
	return words, nil
}

// Stats returns the number of indexed documents and entries.
func (r *Repo) Stats(ctx context.Context) (domain.IndexStats, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	s := domain.IndexStats{IndexDirectory: Directory}
	err := q.QueryRow(ctx, `SELECT count(DISTINCT document_id), count(*) FROM search_entries`).
		Scan(&s.TotalDocuments, &s.IndexSize)
	if err != nil {
		return domain.IndexStats{}, fmt.Errorf("search index stats: %w", err)
	}
	return s, nil
}

// ---------------------------------------------------------------------------
// Write operations
// ---------------------------------------------------------------------------

const insertSQL = `
INSERT INTO search_entries (content_id, document_id, filename, content, topic, section_title, page_number, slide_number, uploaded_at)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
ON CONFLICT (content_id) DO UPDATE
   SET filename = EXCLUDED.filename, content = EXCLUDED.content, topic = EXCLUDED.topic,
       section_title = EXCLUDED.section_title, page_number = EXCLUDED.page_number,
       slide_number = EXCLUDED.slide_number, uploaded_at = EXCLUDED.uploaded_at`

// Replace swaps the document's index entries for entries.
func (r *Repo) Replace(ctx context.Context, documentID uuid.UUID, entries []domain.IndexEntry) error {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	if err := r.deleteDocument(ctx, q, documentID); err != nil {
		return err
	}
	if len(entries) == 0 {
		return nil
	}

	batch := &pgx.Batch{}
	for _, e := range entries {
		batch.Queue(insertSQL,
			e.ContentID, documentID, e.Filename, e.Content, e.Topic,
			e.SectionTitle, e.PageNumber, e.SlideNumber, e.UploadedAt,
		)
	}

	br := q.SendBatch(ctx, batch)
	defer br.Close()

	for range entries {
		if _, err := br.Exec(); err != nil {
			return postgres.MapError(err, "search_entry", documentID)
		}
	}
	return nil
}

// DeleteDocument removes all index entries of a document.
func (r *Repo) DeleteDocument(ctx context.Context, documentID uuid.UUID) error {
	return r.deleteDocument(ctx, postgres.QuerierFromCtx(ctx, r.pool), documentID)
}

func (r *Repo) deleteDocument(ctx context.Context, q postgres.Querier, documentID uuid.UUID) error {
	if _, err := q.Exec(ctx, `DELETE FROM search_entries WHERE document_id = $1`, documentID); err != nil {
		return postgres.MapError(err, "search_entry", documentID)
	}
	return nil
}

// PruneIncomplete drops the entries of every document that is not COMPLETED
// and returns how many were removed.
func (r *Repo) PruneIncomplete(ctx context.Context) (int, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)
	tag, err := q.Exec(ctx, `
DELETE FROM search_entries e
 WHERE NOT EXISTS (
       SELECT 1 FROM documents d
        WHERE d.id = e.document_id AND d.status = $1)`, domain.DocumentStatusCompleted.String())
	if err != nil {
		return 0, postgres.MapError(err, "search_entry", uuid.Nil)
	}
	return int(tag.RowsAffected()), nil
}
