package app

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/jackc/pgx/v5/pgxpool"
	goredis "github.com/redis/go-redis/v9"

	"github.com/heartmarshall/studydocs-backend/internal/adapter/extract"
	"github.com/heartmarshall/studydocs-backend/internal/adapter/postgres"
	analyticsrepo "github.com/heartmarshall/studydocs-backend/internal/adapter/postgres/analytics"
	contentrepo "github.com/heartmarshall/studydocs-backend/internal/adapter/postgres/content"
	documentrepo "github.com/heartmarshall/studydocs-backend/internal/adapter/postgres/document"
	quizrepo "github.com/heartmarshall/studydocs-backend/internal/adapter/postgres/quiz"
	"github.com/heartmarshall/studydocs-backend/internal/adapter/postgres/searchindex"
	userrepo "github.com/heartmarshall/studydocs-backend/internal/adapter/postgres/user"
	"github.com/heartmarshall/studydocs-backend/internal/adapter/provider/gemini"
	"github.com/heartmarshall/studydocs-backend/internal/adapter/redis/recentquiz"
	"github.com/heartmarshall/studydocs-backend/internal/adapter/storage/localfs"
	"github.com/heartmarshall/studydocs-backend/internal/auth"
	"github.com/heartmarshall/studydocs-backend/internal/config"
	"github.com/heartmarshall/studydocs-backend/internal/metrics"
	"github.com/heartmarshall/studydocs-backend/internal/service/ai"
	"github.com/heartmarshall/studydocs-backend/internal/service/analytics"
	authservice "github.com/heartmarshall/studydocs-backend/internal/service/auth"
	"github.com/heartmarshall/studydocs-backend/internal/service/document"
	"github.com/heartmarshall/studydocs-backend/internal/service/processing"
	"github.com/heartmarshall/studydocs-backend/internal/service/quiz"
	"github.com/heartmarshall/studydocs-backend/internal/service/search"
	"github.com/heartmarshall/studydocs-backend/internal/transport/middleware"
	"github.com/heartmarshall/studydocs-backend/internal/transport/rest"
)

// Stack is the wired application: the HTTP handler plus the services that
// run outside request handling.
type Stack struct {
	Handler    http.Handler
	Processing *processing.Service
	Search     *search.Service
	JWT        *auth.JWTManager

	limiter *middleware.RateLimiter
}

// Close releases resources owned by the stack itself.
func (s *Stack) Close() { s.limiter.Stop() }

// NewStack builds repositories, services and the HTTP handler chain over an
// open pool and Redis client. Processing workers are not started.
func NewStack(ctx context.Context, cfg *config.Config, logger *slog.Logger, pool *pgxpool.Pool, rdb goredis.UniversalClient) (*Stack, error) {
	files, err := localfs.New(cfg.Storage.UploadDir)
	if err != nil {
		return nil, fmt.Errorf("open upload dir: %w", err)
	}

	generator, err := gemini.New(ctx, cfg.AI, logger)
	if err != nil {
		return nil, fmt.Errorf("create ai generator: %w", err)
	}

	collector := metrics.NewCollector()

	// Repositories
	txm := postgres.NewTxManager(pool)
	docs := documentrepo.New(pool)
	contents := contentrepo.New(pool)
	index := searchindex.New(pool)
	quizzes := quizrepo.New(pool)
	counters := analyticsrepo.New(pool)
	users := userrepo.New(pool)

	// Services
	searchSvc := search.NewService(logger, cfg.Search, index, docs, contents, counters, collector, txm)
	processingSvc := processing.NewService(logger, cfg.Processing, docs, contents, searchSvc, extract.New(), txm, collector)
	documentSvc := document.NewService(logger, docs, contents, files, searchSvc, processingSvc, txm, cfg.Storage.MaxUploadBytes)
	aiSvc := ai.NewService(logger, generator, searchSvc, counters, collector)
	quizSvc := quiz.NewService(logger, quizzes, aiSvc, recentquiz.New(rdb, cfg.Redis.KeyPrefix, cfg.Redis.RecentLimit))
	analyticsSvc := analytics.NewService(logger, counters, docs, quizzes)
	jwtManager := auth.NewJWTManager(cfg.Auth.JWTSecret, cfg.Auth.JWTIssuer, cfg.Auth.SessionTTL)
	authSvc := authservice.NewService(logger, users, jwtManager, cfg.Auth)

	// HTTP
	limiter := middleware.NewRateLimiter(cfg.RateLimit.CleanupInterval)

	h := handlers{
		health: rest.NewHealthHandler(BuildVersion(),
			rest.Check{Name: "database", Ping: pool.Ping, Critical: true},
			rest.Check{Name: "redis", Ping: func(ctx context.Context) error { return rdb.Ping(ctx).Err() }},
		),
		documents:   rest.NewDocumentHandler(documentSvc, analyticsSvc, cfg.Storage.MaxUploadBytes, logger),
		search:      rest.NewSearchHandler(searchSvc, logger),
		ai:          rest.NewAIHandler(aiSvc, quizSvc, logger),
		quizzes:     rest.NewQuizHandler(quizSvc, logger),
		analytics:   rest.NewAnalyticsHandler(analyticsSvc, logger),
		auth:        rest.NewAuthHandler(authSvc, cfg.Auth, logger),
		diagnostics: rest.NewDiagnosticsHandler(documentSvc, logger),
	}
	mux := newRouter(h, collector.Handler(), limiter, cfg.RateLimit)

	// An empty origin list serves same-origin clients only.
	var cors middleware.Middleware
	if cfg.CORS.AllowedOrigins != "" {
		cors = middleware.CORS(cfg.CORS)
	}

	handler := middleware.Chain(
		middleware.Recovery(logger),
		middleware.RequestID(),
		middleware.Logger(logger),
		middleware.Metrics(collector),
		cors,
		middleware.Auth(jwtManager, cfg.Auth.CookieName, logger),
		middleware.Route(),
	)(mux)

	return &Stack{
		Handler:    handler,
		Processing: processingSvc,
		Search:     searchSvc,
		JWT:        jwtManager,
		limiter:    limiter,
	}, nil
}
