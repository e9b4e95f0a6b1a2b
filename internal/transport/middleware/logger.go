package middleware

import (
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/heartmarshall/studydocs-backend/pkg/ctxutil"
)

// Logger logs each request with its route, status, size and duration.
// Health probes and metric scrapes log at debug.
func Logger(logger *slog.Logger) Middleware {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()
			sw := &statusWriter{ResponseWriter: w, status: http.StatusOK}
			r, info := withRequestInfo(r)

			next.ServeHTTP(sw, r)
			info.fill(r)

			attrs := []slog.Attr{
				slog.String("method", r.Method),
				slog.String("path", r.URL.Path),
				slog.Int("status", sw.status),
				slog.Int64("bytes", sw.written),
				slog.Duration("duration", time.Since(start)),
				slog.String("request_id", ctxutil.RequestIDFromCtx(r.Context())),
			}
			if info.route != "" {
				attrs = append(attrs, slog.String("route", info.route))
			}
			if info.userID != uuid.Nil {
				attrs = append(attrs, slog.String("user_id", info.userID.String()))
			}

			logger.LogAttrs(r.Context(), levelFor(r, sw.status), "http.request", attrs...)
		})
	}
}

func levelFor(r *http.Request, status int) slog.Level {
	switch {
	case status >= 500:
		return slog.LevelError
	case r.URL.Path == "/metrics", strings.HasPrefix(r.URL.Path, "/health"), r.URL.Path == "/live", r.URL.Path == "/ready":
		return slog.LevelDebug
	case status >= 400:
		return slog.LevelWarn
	default:
		return slog.LevelInfo
	}
}

// statusWriter wraps http.ResponseWriter to capture the status code and body size.
type statusWriter struct {
	http.ResponseWriter
	status      int
	written     int64
	wroteHeader bool
}

func (w *statusWriter) WriteHeader(code int) {
	if !w.wroteHeader {
		w.status = code
		w.wroteHeader = true
	}
	w.ResponseWriter.WriteHeader(code)
}

func (w *statusWriter) Write(b []byte) (int, error) {
	w.wroteHeader = true
	n, err := w.ResponseWriter.Write(b)
	w.written += int64(n)
	return n, err
}

// Unwrap lets http.ResponseController reach the underlying writer.
func (w *statusWriter) Unwrap() http.ResponseWriter { return w.ResponseWriter }
