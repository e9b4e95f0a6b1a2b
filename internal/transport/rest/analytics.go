package rest

import (
	"context"
	"log/slog"
	"mime"
	"net/http"
	"strconv"

	"github.com/heartmarshall/studydocs-backend/internal/domain"
	"github.com/heartmarshall/studydocs-backend/internal/service/analytics"
)

type analyticsService interface {
	Overview(ctx context.Context) (domain.Overview, error)
	Export(ctx context.Context) ([]byte, error)
	Activity(ctx context.Context, limit int) ([]domain.ActivityItem, error)
}

// AnalyticsHandler serves /api/analytics.
type AnalyticsHandler struct {
	svc analyticsService
	log *slog.Logger
}

// NewAnalyticsHandler creates an AnalyticsHandler.
func NewAnalyticsHandler(svc analyticsService, logger *slog.Logger) *AnalyticsHandler {
	return &AnalyticsHandler{svc: svc, log: logger.With("handler", "analytics")}
}

// Overview handles GET /api/analytics/overview.
func (h *AnalyticsHandler) Overview(w http.ResponseWriter, r *http.Request) {
	ov, err := h.svc.Overview(r.Context())
	if err != nil {
		respondError(w, r, h.log, err)
		return
	}
	writeJSON(w, http.StatusOK, toOverview(ov))
}

// Export handles GET /api/analytics/export as a CSV attachment.
func (h *AnalyticsHandler) Export(w http.ResponseWriter, r *http.Request) {
	body, err := h.svc.Export(r.Context())
	if err != nil {
		respondError(w, r, h.log, err)
		return
	}
	w.Header().Set("Content-Type", "text/csv; charset=utf-8")
	w.Header().Set("Content-Disposition",
		mime.FormatMediaType("attachment", map[string]string{"filename": analytics.ExportFilename}))
	w.Header().Set("Content-Length", strconv.Itoa(len(body)))
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(body)
}

// Activity handles GET /api/analytics/activity?limit=.
func (h *AnalyticsHandler) Activity(w http.ResponseWriter, r *http.Request) {
	items, err := h.svc.Activity(r.Context(), queryInt(r, "limit", analytics.DefaultActivityLimit))
	if err != nil {
		respondError(w, r, h.log, err)
		return
	}
	writeJSON(w, http.StatusOK, toActivity(items))
}
