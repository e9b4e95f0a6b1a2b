package domain

import (
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"
)

// MaxUploadBytes is the hard upper bound for a single upload.
const MaxUploadBytes int64 = 100 * 1024 * 1024

// Document is an uploaded file and its processing state.
type Document struct {
	ID               uuid.UUID
	Filename         string
	OriginalFilename string
	FileSize         int64
	FileType         string
	Status           DocumentStatus
	FilePath         string
	ContentSummary   string
	UploadDate       time.Time
	UpdatedAt        time.Time
}

// DocumentContent is one extracted unit of text: a page, a slide or a section.
type DocumentContent struct {
	ID           uuid.UUID
	DocumentID   uuid.UUID
	PageNumber   *int
	SlideNumber  *int
	Content      string
	Topic        string
	SectionTitle string
	ContentHash  string
	WordCount    int
	CreatedAt    time.Time
}

// NewDocumentContent builds a content block and fills in its hash and word count.
func NewDocumentContent(documentID uuid.UUID, content, topic, sectionTitle string) DocumentContent {
	return DocumentContent{
		ID:           uuid.New(),
		DocumentID:   documentID,
		Content:      content,
		Topic:        topic,
		SectionTitle: sectionTitle,
		ContentHash:  ContentHash(content),
		WordCount:    WordCount(content),
	}
}

// Location returns "Page N", "Slide N" or "Unknown".
func (c DocumentContent) Location() string {
	return FormatLocation(c.PageNumber, c.SlideNumber, "Unknown")
}

// DocumentStats aggregates counts over all documents.
type DocumentStats struct {
	TotalDocuments       int
	ProcessingCount      int
	CompletedCount       int
	FailedCount          int
	TotalFileSize        int64
	RecentDocumentsCount int
}

// ContentHash returns the hex sha256 of content.
func ContentHash(content string) string {
	sum := sha256.Sum256([]byte(content))
	return hex.EncodeToString(sum[:])
}

// FormatLocation renders a page or slide reference, or fallback when neither is set.
func FormatLocation(page, slide *int, fallback string) string {
	switch {
	case page != nil:
		return "Page " + strconv.Itoa(*page)
	case slide != nil:
		return "Slide " + strconv.Itoa(*slide)
	default:
		return fallback
	}
}

// FileExt returns the lowercased extension of name including the dot.
func FileExt(name string) string {
	return strings.ToLower(filepath.Ext(name))
}

var uploadTypes = map[string]bool{
	".zip": true, ".pdf": true, ".doc": true, ".docx": true, ".ppt": true, ".pptx": true,
}

var archiveEntryTypes = map[string]bool{
	".pdf": true, ".doc": true, ".docx": true, ".ppt": true, ".pptx": true, ".txt": true, ".rtf": true,
}

// IsUploadType reports whether ext may be uploaded directly.
func IsUploadType(ext string) bool { return uploadTypes[ext] }

// IsArchiveEntryType reports whether a ZIP entry with ext is processed.
func IsArchiveEntryType(ext string) bool { return archiveEntryTypes[ext] }

// IsQuizSource reports whether a completed document of this type can feed a quiz.
func IsQuizSource(ext string) bool {
	switch ext {
	case ".pdf", ".doc", ".docx", ".ppt", ".pptx":
		return true
	}
	return false
}

// Ptr returns a pointer to v.
func Ptr[T any](v T) *T { return &v }

// DocumentFilter narrows a document listing. Zero values mean no restriction.
type DocumentFilter struct {
	Status *DocumentStatus
	// UploadedBefore restricts to documents uploaded strictly before this time.
	UploadedBefore *time.Time
	Limit          int
}

// FormatFileSize renders bytes as "N B" or with one decimal in KB..EB.
func FormatFileSize(bytes int64) string {
	if bytes < 1024 {
		return fmt.Sprintf("%d B", bytes)
	}
	const units = "KMGTPE"
	size := float64(bytes)
	exp := -1
	for size >= 1024 && exp < len(units)-1 {
		size /= 1024
		exp++
	}
	return fmt.Sprintf("%.1f %cB", size, units[exp])
}
