package testhelper

import (
	"context"
	"strconv"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/heartmarshall/studydocs-backend/internal/domain"
)

// uniqueSuffix returns a short unique string for generating non-conflicting test data.
func uniqueSuffix() string {
	return uuid.New().String()[:8]
}

// SeedUser creates a user with a placeholder password hash.
func SeedUser(t *testing.T, pool *pgxpool.Pool) domain.User {
	t.Helper()
	ctx := context.Background()

	suffix := uniqueSuffix()
	now := time.Now().UTC().Truncate(time.Microsecond)
	user := domain.User{
		ID:           uuid.New(),
		Username:     "student-" + suffix,
		PasswordHash: "$2a$04$placeholderplaceholderplaceholderplaceholderpla",
		Name:         "Student " + suffix,
		PhotoURL:     "https://ui-avatars.com/api/?name=Student+" + suffix,
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	_, err := pool.Exec(ctx,
		`INSERT INTO users (id, username, password_hash, name, photo_url, created_at, updated_at)
		 VALUES ($1, $2, $3, $4, $5, $6, $7)`,
		user.ID, user.Username, user.PasswordHash, user.Name, user.PhotoURL, user.CreatedAt, user.UpdatedAt,
	)
	if err != nil {
		t.Fatalf("testhelper: SeedUser: %v", err)
	}

	return user
}

// SeedDocument creates a document row with the given status and original filename.
func SeedDocument(t *testing.T, pool *pgxpool.Pool, originalFilename string, status domain.DocumentStatus) domain.Document {
	t.Helper()
	ctx := context.Background()

	now := time.Now().UTC().Truncate(time.Microsecond)
	stored := uniqueSuffix() + "_" + originalFilename
	doc := domain.Document{
		ID:               uuid.New(),
		Filename:         stored,
		OriginalFilename: originalFilename,
		FileSize:         2048,
		FileType:         domain.FileExt(originalFilename),
		Status:           status,
		FilePath:         "/tmp/uploads/" + stored,
		UploadDate:       now,
		UpdatedAt:        now,
	}

	_, err := pool.Exec(ctx,
		`INSERT INTO documents (id, filename, original_filename, file_size, file_type, status, file_path, content_summary, upload_date, updated_at)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)`,
		doc.ID, doc.Filename, doc.OriginalFilename, doc.FileSize, doc.FileType, string(doc.Status),
		doc.FilePath, doc.ContentSummary, doc.UploadDate, doc.UpdatedAt,
	)
	if err != nil {
		t.Fatalf("testhelper: SeedDocument: %v", err)
	}

	return doc
}

// SeedContent creates a page-numbered content block for the document.
func SeedContent(t *testing.T, pool *pgxpool.Pool, documentID uuid.UUID, page int, text string) domain.DocumentContent {
	t.Helper()
	ctx := context.Background()

	c := domain.NewDocumentContent(documentID, text, "General Content", "Page "+strconv.Itoa(page))
	c.PageNumber = &page
	c.CreatedAt = time.Now().UTC().Truncate(time.Microsecond)

	_, err := pool.Exec(ctx,
		`INSERT INTO document_contents (id, document_id, page_number, slide_number, content, topic, section_title, content_hash, word_count, created_at)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)`,
		c.ID, c.DocumentID, c.PageNumber, c.SlideNumber, c.Content, c.Topic, c.SectionTitle, c.ContentHash, c.WordCount, c.CreatedAt,
	)
	if err != nil {
		t.Fatalf("testhelper: SeedContent: %v", err)
	}

	return c
}
