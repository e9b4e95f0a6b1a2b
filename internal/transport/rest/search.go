package rest

import (
	"context"
	"log/slog"
	"net/http"
	"strings"

	"github.com/google/uuid"

	"github.com/heartmarshall/studydocs-backend/internal/domain"
	"github.com/heartmarshall/studydocs-backend/internal/service/search"
)

type searchService interface {
	Search(ctx context.Context, query string, maxResults int) ([]domain.SearchResult, error)
	SearchWithFilters(ctx context.Context, query, filename, topic string, maxResults int) ([]domain.SearchResult, error)
	Suggestions(ctx context.Context, prefix string, max int) ([]string, error)
	Stats(ctx context.Context) (domain.IndexStats, error)
	SearchPage(ctx context.Context, in search.PageInput) (search.PageView, error)
	Reindex(ctx context.Context, documentID uuid.UUID) error
	ReindexAll(ctx context.Context) (int, error)
}

// SearchHandler serves /api/search.
type SearchHandler struct {
	svc searchService
	log *slog.Logger
}

// NewSearchHandler creates a SearchHandler.
func NewSearchHandler(svc searchService, logger *slog.Logger) *SearchHandler {
	return &SearchHandler{svc: svc, log: logger.With("handler", "search")}
}

// Search handles GET /api/search?q=&maxResults=.
func (h *SearchHandler) Search(w http.ResponseWriter, r *http.Request) {
	results, err := h.svc.Search(r.Context(), r.URL.Query().Get("q"), queryInt(r, "maxResults", 20))
	if err != nil {
		respondError(w, r, h.log, err)
		return
	}
	writeJSON(w, http.StatusOK, toSearchResults(results))
}

// Advanced handles GET /api/search/advanced?q=&filename=&topic=&maxResults=.
func (h *SearchHandler) Advanced(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	results, err := h.svc.SearchWithFilters(r.Context(),
		q.Get("q"), q.Get("filename"), q.Get("topic"), queryInt(r, "maxResults", 20))
	if err != nil {
		respondError(w, r, h.log, err)
		return
	}
	writeJSON(w, http.StatusOK, toSearchResults(results))
}

// Suggestions handles GET /api/search/suggestions?q=&maxSuggestions=.
func (h *SearchHandler) Suggestions(w http.ResponseWriter, r *http.Request) {
	words, err := h.svc.Suggestions(r.Context(), r.URL.Query().Get("q"), queryInt(r, "maxSuggestions", 10))
	if err != nil {
		respondError(w, r, h.log, err)
		return
	}
	if words == nil {
		words = []string{}
	}
	writeJSON(w, http.StatusOK, words)
}

// Stats handles GET /api/search/stats.
func (h *SearchHandler) Stats(w http.ResponseWriter, r *http.Request) {
	st, err := h.svc.Stats(r.Context())
	if err != nil {
		respondError(w, r, h.log, err)
		return
	}
	writeJSON(w, http.StatusOK, indexStatsResponse(st))
}

type hitResponse struct {
	searchResultResponse
	Snippet  string `json:"snippet"`
	Location string `json:"location"`
}

type pageResponse struct {
	Query         string        `json:"query"`
	Sort          string        `json:"sort"`
	Mode          string        `json:"mode"`
	Items         []hitResponse `json:"items"`
	Page          int           `json:"page"`
	PageSize      int           `json:"pageSize"`
	TotalPages    int           `json:"totalPages"`
	TotalElements int           `json:"totalElements"`
	HasPrev       bool          `json:"hasPrev"`
	HasNext       bool          `json:"hasNext"`
	Window        []int         `json:"window"`
}

// Page handles GET /api/search/page?q=&page=&sort=&mode=.
func (h *SearchHandler) Page(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	view, err := h.svc.SearchPage(r.Context(), search.PageInput{
		Query: strings.TrimSpace(q.Get("q")),
		Page:  queryInt(r, "page", 1),
		Sort:  q.Get("sort"),
		Mode:  q.Get("mode"),
	})
	if err != nil {
		respondError(w, r, h.log, err)
		return
	}

	res := view.Results
	items := make([]hitResponse, len(res.Items))
	for i, hit := range res.Items {
		items[i] = hitResponse{
			searchResultResponse: toSearchResult(hit.Result),
			Snippet:              hit.Snippet,
			Location:             hit.Location,
		}
	}
	writeJSON(w, http.StatusOK, pageResponse{
		Query:         view.Query,
		Sort:          view.Sort,
		Mode:          view.Mode,
		Items:         items,
		Page:          res.Page,
		PageSize:      res.PageSize,
		TotalPages:    res.TotalPages,
		TotalElements: res.TotalElements,
		HasPrev:       res.HasPrev,
		HasNext:       res.HasNext,
		Window:        res.Window,
	})
}

// ReindexAll handles POST /api/search/reindex.
func (h *SearchHandler) ReindexAll(w http.ResponseWriter, r *http.Request) {
	n, err := h.svc.ReindexAll(r.Context())
	if err != nil {
		respondError(w, r, h.log, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{
		"message":          "Reindexing completed successfully",
		"documentsIndexed": n,
	})
}

// Reindex handles POST /api/search/reindex/{documentId}.
func (h *SearchHandler) Reindex(w http.ResponseWriter, r *http.Request) {
	id, ok := pathUUID(w, r, "documentId")
	if !ok {
		return
	}
	if err := h.svc.Reindex(r.Context(), id); err != nil {
		respondError(w, r, h.log, err)
		return
	}
	writeMessage(w, http.StatusOK, "Document reindexed successfully")
}

// Health handles GET /api/search/health.
func (h *SearchHandler) Health(w http.ResponseWriter, r *http.Request) {
	writeText(w, http.StatusOK, "Search service is running")
}
