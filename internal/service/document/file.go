package document

import (
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/google/uuid"
)

// File is an opened stored document.
type File struct {
	Body        io.ReadCloser
	Name        string
	ContentType string
	Size        int64
}

// OpenFile opens the stored file of a document for download.
func (s *Service) OpenFile(ctx context.Context, id uuid.UUID) (*File, error) {
	doc, err := s.docs.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("document.OpenFile: %w", err)
	}
	rc, err := s.files.Open(doc.FilePath)
	if err != nil {
		return nil, fmt.Errorf("document.OpenFile: %w", err)
	}
	return &File{
		Body:        rc,
		Name:        doc.OriginalFilename,
		ContentType: ContentType(doc.OriginalFilename),
		Size:        doc.FileSize,
	}, nil
}

// ContentType picks the response type for a stored file by extension.
func ContentType(name string) string {
	lower := strings.ToLower(name)
	switch {
	case strings.HasSuffix(lower, ".pdf"):
		return "application/pdf"
	case strings.HasSuffix(lower, ".png"):
		return "image/png"
	case strings.HasSuffix(lower, ".jpg"), strings.HasSuffix(lower, ".jpeg"):
		return "image/jpeg"
	case strings.HasSuffix(lower, ".gif"):
		return "image/gif"
	default:
		return "application/octet-stream"
	}
}
