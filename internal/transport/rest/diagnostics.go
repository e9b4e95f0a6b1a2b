package rest

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/google/uuid"

	"github.com/heartmarshall/studydocs-backend/internal/domain"
	"github.com/heartmarshall/studydocs-backend/internal/service/document"
)

type diagnosticsDocs interface {
	List(ctx context.Context, input document.ListInput) ([]domain.Document, error)
	Get(ctx context.Context, id uuid.UUID) (*domain.Document, error)
	Contents(ctx context.Context, id uuid.UUID) ([]domain.DocumentContent, error)
	Stats(ctx context.Context) (domain.DocumentStats, error)
}

// DiagnosticsHandler serves the /api/test endpoints used to check a
// deployment by hand.
type DiagnosticsHandler struct {
	docs diagnosticsDocs
	log  *slog.Logger
}

// NewDiagnosticsHandler creates a DiagnosticsHandler.
func NewDiagnosticsHandler(docs diagnosticsDocs, logger *slog.Logger) *DiagnosticsHandler {
	return &DiagnosticsHandler{docs: docs, log: logger.With("handler", "diagnostics")}
}

// Ping handles GET /api/test/ping.
func (h *DiagnosticsHandler) Ping(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "OK", "message": "Backend is running"})
}

// Documents handles GET /api/test/documents.
func (h *DiagnosticsHandler) Documents(w http.ResponseWriter, r *http.Request) {
	docs, err := h.docs.List(r.Context(), document.ListInput{})
	if err != nil {
		respondError(w, r, h.log, err)
		return
	}
	writeJSON(w, http.StatusOK, toDocuments(docs))
}

// Status handles GET /api/test/documents/{id}/status.
func (h *DiagnosticsHandler) Status(w http.ResponseWriter, r *http.Request) {
	id, ok := pathUUID(w, r, "id")
	if !ok {
		return
	}
	doc, err := h.docs.Get(r.Context(), id)
	if err != nil {
		respondError(w, r, h.log, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{
		"id":         doc.ID,
		"filename":   doc.OriginalFilename,
		"status":     doc.Status,
		"uploadDate": doc.UploadDate,
		"fileSize":   doc.FileSize,
	})
}

// Content handles GET /api/test/documents/{id}/content.
func (h *DiagnosticsHandler) Content(w http.ResponseWriter, r *http.Request) {
	id, ok := pathUUID(w, r, "id")
	if !ok {
		return
	}
	blocks, err := h.docs.Contents(r.Context(), id)
	if err != nil {
		respondError(w, r, h.log, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{
		"documentId":   id,
		"contentCount": len(blocks),
		"contents":     toContents(blocks),
	})
}

// Stats handles GET /api/test/stats.
func (h *DiagnosticsHandler) Stats(w http.ResponseWriter, r *http.Request) {
	st, err := h.docs.Stats(r.Context())
	if err != nil {
		respondError(w, r, h.log, err)
		return
	}
	writeJSON(w, http.StatusOK, toDocumentStats(st))
}
