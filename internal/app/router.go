package app

import (
	"net/http"

	"github.com/heartmarshall/studydocs-backend/internal/config"
	"github.com/heartmarshall/studydocs-backend/internal/transport/middleware"
	"github.com/heartmarshall/studydocs-backend/internal/transport/rest"
)

// handlers groups every REST handler mounted by the router.
type handlers struct {
	health      *rest.HealthHandler
	documents   *rest.DocumentHandler
	search      *rest.SearchHandler
	ai          *rest.AIHandler
	quizzes     *rest.QuizHandler
	analytics   *rest.AnalyticsHandler
	auth        *rest.AuthHandler
	diagnostics *rest.DiagnosticsHandler
}

// newRouter registers all routes on a ServeMux. Upload and AI routes get
// per-client rate limits on top of the global middleware chain.
func newRouter(h handlers, metrics http.Handler, limiter *middleware.RateLimiter, cfg config.RateLimitConfig) *http.ServeMux {
	mux := http.NewServeMux()

	uploadLimit := limiter.Limit(cfg.UploadPerMinute)
	aiLimit := limiter.Limit(cfg.AIPerMinute)
	limited := func(mw middleware.Middleware, fn http.HandlerFunc) http.Handler {
		return mw(fn)
	}

	// Probes and metrics
	mux.HandleFunc("GET /live", h.health.Live)
	mux.HandleFunc("GET /ready", h.health.Ready)
	mux.HandleFunc("GET /health", h.health.Health)
	mux.Handle("GET /metrics", metrics)

	// Documents
	mux.Handle("POST /api/documents/upload", limited(uploadLimit, h.documents.Upload))
	mux.HandleFunc("GET /api/documents", h.documents.List)
	mux.HandleFunc("GET /api/documents/stats", h.documents.Stats)
	mux.HandleFunc("GET /api/documents/health", h.documents.Health)
	mux.HandleFunc("DELETE /api/documents/all", h.documents.DeleteAll)
	mux.HandleFunc("GET /api/documents/{id}", h.documents.Get)
	mux.HandleFunc("GET /api/documents/{id}/{part}", h.documents.Nested)
	mux.HandleFunc("DELETE /api/documents/{id}", h.documents.Delete)

	// Search
	mux.HandleFunc("GET /api/search", h.search.Search)
	mux.HandleFunc("GET /api/search/advanced", h.search.Advanced)
	mux.HandleFunc("GET /api/search/suggestions", h.search.Suggestions)
	mux.HandleFunc("GET /api/search/page", h.search.Page)
	mux.HandleFunc("GET /api/search/stats", h.search.Stats)
	mux.HandleFunc("POST /api/search/reindex", h.search.ReindexAll)
	mux.HandleFunc("POST /api/search/reindex/{documentId}", h.search.Reindex)
	mux.HandleFunc("GET /api/search/health", h.search.Health)

	// AI
	mux.Handle("POST /api/ai/qa", limited(aiLimit, h.ai.Answer))
	mux.Handle("POST /api/ai/summarize", limited(aiLimit, h.ai.Summarize))
	mux.Handle("POST /api/ai/quiz", limited(aiLimit, h.ai.Quiz))
	mux.Handle("POST /api/ai/flashcards", limited(aiLimit, h.ai.Flashcards))
	mux.Handle("POST /api/ai/concepts", limited(aiLimit, h.ai.Concepts))
	mux.Handle("POST /api/ai/test", limited(aiLimit, h.ai.Test))
	mux.HandleFunc("GET /api/ai/health", h.ai.Health)

	// Quizzes
	mux.HandleFunc("GET /api/quizzes", h.quizzes.List)
	mux.HandleFunc("GET /api/quizzes/recent", h.quizzes.Recent)
	mux.HandleFunc("GET /api/quizzes/{id}", h.quizzes.Get)
	mux.HandleFunc("POST /api/quizzes/{id}/submit", h.quizzes.Submit)

	// Analytics
	mux.HandleFunc("GET /api/analytics/overview", h.analytics.Overview)
	mux.HandleFunc("GET /api/analytics/export", h.analytics.Export)
	mux.HandleFunc("GET /api/analytics/activity", h.analytics.Activity)

	// Auth
	mux.HandleFunc("POST /api/auth/register", h.auth.Register)
	mux.HandleFunc("POST /api/auth/login", h.auth.Login)
	mux.HandleFunc("POST /api/auth/logout", h.auth.Logout)
	mux.HandleFunc("GET /api/auth/me", h.auth.Me)

	// Diagnostics
	mux.HandleFunc("GET /api/test/ping", h.diagnostics.Ping)
	mux.HandleFunc("GET /api/test/documents", h.diagnostics.Documents)
	mux.HandleFunc("GET /api/test/documents/{id}/status", h.diagnostics.Status)
	mux.HandleFunc("GET /api/test/documents/{id}/content", h.diagnostics.Content)
	mux.HandleFunc("GET /api/test/stats", h.diagnostics.Stats)

	return mux
}
