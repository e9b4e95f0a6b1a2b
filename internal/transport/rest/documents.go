package rest

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"mime"
	"net/http"
	"strconv"

	"github.com/google/uuid"

	"github.com/heartmarshall/studydocs-backend/internal/domain"
	"github.com/heartmarshall/studydocs-backend/internal/service/document"
)

type documentService interface {
	Upload(ctx context.Context, input document.UploadInput) (*domain.Document, error)
	List(ctx context.Context, input document.ListInput) ([]domain.Document, error)
	ListByStatus(ctx context.Context, status string) ([]domain.Document, error)
	Get(ctx context.Context, id uuid.UUID) (*domain.Document, error)
	Stats(ctx context.Context) (domain.DocumentStats, error)
	Contents(ctx context.Context, id uuid.UUID) ([]domain.DocumentContent, error)
	OpenFile(ctx context.Context, id uuid.UUID) (*document.File, error)
	Delete(ctx context.Context, id uuid.UUID) error
	DeleteAll(ctx context.Context) (int, error)
}

type overviewProvider interface {
	Overview(ctx context.Context) (domain.Overview, error)
}

// DocumentHandler serves /api/documents.
type DocumentHandler struct {
	svc       documentService
	overview  overviewProvider
	maxUpload int64
	log       *slog.Logger
}

// NewDocumentHandler creates a DocumentHandler.
func NewDocumentHandler(svc documentService, overview overviewProvider, maxUpload int64, logger *slog.Logger) *DocumentHandler {
	return &DocumentHandler{
		svc:       svc,
		overview:  overview,
		maxUpload: maxUpload,
		log:       logger.With("handler", "documents"),
	}
}

// multipartSlack covers multipart framing around the file part.
const multipartSlack = 1 << 20

const uploadSuccessMessage = "Document uploaded successfully and processing started"

type uploadResponse struct {
	documentResponse
	Message  string            `json:"message"`
	Success  bool              `json:"success"`
	Document *documentResponse `json:"document,omitempty"`
}

func uploadFailure(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, map[string]any{"success": false, "message": message})
}

// Upload handles POST /api/documents/upload.
func (h *DocumentHandler) Upload(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, h.maxUpload+multipartSlack)

	file, header, err := r.FormFile("file")
	if err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			uploadFailure(w, http.StatusBadRequest, "Validation error: "+document.MsgFileTooLarge)
			return
		}
		uploadFailure(w, http.StatusBadRequest, "No file provided")
		return
	}
	defer file.Close()

	doc, err := h.svc.Upload(r.Context(), document.UploadInput{
		Filename: header.Filename,
		Size:     header.Size,
		Body:     file,
	})
	if err != nil {
		if errors.Is(err, domain.ErrValidation) {
			uploadFailure(w, http.StatusBadRequest, "Validation error: "+domain.ValidationMessage(err))
			return
		}
		h.log.ErrorContext(r.Context(), "upload failed",
			slog.String("filename", header.Filename),
			slog.String("error", err.Error()))
		uploadFailure(w, http.StatusInternalServerError, "Error uploading document")
		return
	}

	dto := toDocument(*doc)
	writeJSON(w, http.StatusOK, uploadResponse{
		documentResponse: dto,
		Message:          uploadSuccessMessage,
		Success:          true,
		Document:         &dto,
	})
}

// List handles GET /api/documents?status=&limit=.
func (h *DocumentHandler) List(w http.ResponseWriter, r *http.Request) {
	docs, err := h.svc.List(r.Context(), document.ListInput{
		Status: r.URL.Query().Get("status"),
		Limit:  queryInt(r, "limit", 0),
	})
	if err != nil {
		respondError(w, r, h.log, err)
		return
	}
	writeJSON(w, http.StatusOK, toDocuments(docs))
}

// ByStatus handles GET /api/documents/status/{status}.
func (h *DocumentHandler) ByStatus(w http.ResponseWriter, r *http.Request) {
	docs, err := h.svc.ListByStatus(r.Context(), r.PathValue("status"))
	if err != nil {
		respondError(w, r, h.log, err)
		return
	}
	writeJSON(w, http.StatusOK, toDocuments(docs))
}

// Get handles GET /api/documents/{id}.
func (h *DocumentHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, ok := pathUUID(w, r, "id")
	if !ok {
		return
	}
	doc, err := h.svc.Get(r.Context(), id)
	if err != nil {
		respondError(w, r, h.log, err)
		return
	}
	writeJSON(w, http.StatusOK, toDocument(*doc))
}

// Content handles GET /api/documents/{id}/content.
func (h *DocumentHandler) Content(w http.ResponseWriter, r *http.Request) {
	id, ok := pathUUID(w, r, "id")
	if !ok {
		return
	}
	blocks, err := h.svc.Contents(r.Context(), id)
	if err != nil {
		respondError(w, r, h.log, err)
		return
	}
	writeJSON(w, http.StatusOK, toContents(blocks))
}

// File handles GET /api/documents/{id}/file, serving the upload inline.
func (h *DocumentHandler) File(w http.ResponseWriter, r *http.Request) {
	id, ok := pathUUID(w, r, "id")
	if !ok {
		return
	}
	f, err := h.svc.OpenFile(r.Context(), id)
	if err != nil {
		respondError(w, r, h.log, err)
		return
	}
	defer f.Body.Close()

	w.Header().Set("Content-Type", f.ContentType)
	w.Header().Set("Content-Disposition", mime.FormatMediaType("inline", map[string]string{"filename": f.Name}))
	if f.Size > 0 {
		w.Header().Set("Content-Length", strconv.FormatInt(f.Size, 10))
	}
	w.WriteHeader(http.StatusOK)
	if _, err := io.Copy(w, f.Body); err != nil {
		h.log.WarnContext(r.Context(), "file download interrupted",
			slog.String("document_id", id.String()),
			slog.String("error", err.Error()))
	}
}

// Nested handles GET /api/documents/{id}/{part}. ServeMux rejects
// /status/{status} next to /{id}/file as conflicting patterns, so both shapes
// share this route.
func (h *DocumentHandler) Nested(w http.ResponseWriter, r *http.Request) {
	part := r.PathValue("part")
	if r.PathValue("id") == "status" {
		r.SetPathValue("status", part)
		h.ByStatus(w, r)
		return
	}
	switch part {
	case "file":
		h.File(w, r)
	case "content":
		h.Content(w, r)
	default:
		writeError(w, http.StatusNotFound, "not found")
	}
}

// Delete handles DELETE /api/documents/{id}.
func (h *DocumentHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, ok := pathUUID(w, r, "id")
	if !ok {
		return
	}
	if err := h.svc.Delete(r.Context(), id); err != nil {
		respondError(w, r, h.log, err)
		return
	}
	writeMessage(w, http.StatusOK, "Document deleted successfully")
}

// DeleteAll handles DELETE /api/documents/all.
func (h *DocumentHandler) DeleteAll(w http.ResponseWriter, r *http.Request) {
	n, err := h.svc.DeleteAll(r.Context())
	if err != nil {
		respondError(w, r, h.log, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{
		"message":      fmt.Sprintf("Successfully deleted %d documents", n),
		"deletedCount": n,
	})
}

// Stats handles GET /api/documents/stats. It prefers the analytics overview
// and falls back to plain document stats. activityPeriod and metricsPeriod
// are accepted for compatibility; the overview always covers seven days.
func (h *DocumentHandler) Stats(w http.ResponseWriter, r *http.Request) {
	ov, err := h.overview.Overview(r.Context())
	if err == nil {
		writeJSON(w, http.StatusOK, toOverview(ov))
		return
	}
	h.log.WarnContext(r.Context(), "overview unavailable, serving document stats",
		slog.String("error", err.Error()))

	stats, err := h.svc.Stats(r.Context())
	if err != nil {
		respondError(w, r, h.log, err)
		return
	}
	writeJSON(w, http.StatusOK, toDocumentStats(stats))
}

// Health handles GET /api/documents/health.
func (h *DocumentHandler) Health(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "UP", "service": "Document Service"})
}
