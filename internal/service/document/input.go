package document

import (
	"fmt"
	"io"
	"strings"

	"github.com/heartmarshall/studydocs-backend/internal/domain"
)

// Upload validation messages shown to clients.
const (
	MsgFileEmpty       = "File is empty"
	MsgInvalidFilename = "Invalid filename"
	MsgFileTooLarge    = "File size exceeds maximum limit of 100MB"
	MsgUnsupportedType = "Unsupported file type. Supported types: PDF, DOC, DOCX, PPT, PPTX, ZIP"
	MsgInvalidStatus   = "Invalid status"
)

// UploadInput is one uploaded file.
type UploadInput struct {
	Filename string
	Size     int64
	Body     io.Reader
}

// Validate reports the first failing rule, in the order clients expect.
func (i UploadInput) Validate(maxBytes int64) error {
	if i.Size <= 0 || i.Body == nil {
		return domain.NewValidationError("file", MsgFileEmpty)
	}
	if strings.TrimSpace(i.Filename) == "" {
		return domain.NewValidationError("filename", MsgInvalidFilename)
	}
	if i.Size > maxBytes {
		msg := MsgFileTooLarge
		if maxBytes != domain.MaxUploadBytes {
			msg = fmt.Sprintf("File size exceeds maximum limit of %dMB", maxBytes/(1024*1024))
		}
		return domain.NewValidationError("file", msg)
	}
	if !domain.IsUploadType(domain.FileExt(i.Filename)) {
		return domain.NewValidationError("file", MsgUnsupportedType)
	}
	return nil
}

// ListInput filters a document listing.
type ListInput struct {
	Status string
	Limit  int
}

func (i ListInput) filter() (domain.DocumentFilter, error) {
	f := domain.DocumentFilter{Limit: max(i.Limit, 0)}
	if strings.TrimSpace(i.Status) != "" {
		st, ok := domain.ParseDocumentStatus(i.Status)
		if !ok {
			return f, domain.NewValidationError("status", MsgInvalidStatus)
		}
		f.Status = &st
	}
	return f, nil
}
