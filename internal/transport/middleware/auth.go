package middleware

import (
	"log/slog"
	"net/http"
	"strings"

	"github.com/google/uuid"

	"github.com/heartmarshall/studydocs-backend/pkg/ctxutil"
)

type tokenValidator interface {
	ValidateToken(token string) (uuid.UUID, error)
}

// Auth attaches the session user to the request context. The token is read
// from the session cookie first, then from a Bearer header. Requests without
// a usable token continue anonymously.
func Auth(validator tokenValidator, cookieName string, logger *slog.Logger) Middleware {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			token := extractToken(r, cookieName)
			if token == "" {
				next.ServeHTTP(w, r) // Anonymous
				return
			}
			userID, err := validator.ValidateToken(token)
			if err != nil {
				logger.DebugContext(r.Context(), "session token rejected", slog.String("error", err.Error()))
				next.ServeHTTP(w, r)
				return
			}
			ctx := ctxutil.WithUserID(r.Context(), userID)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

func extractToken(r *http.Request, cookieName string) string {
	if c, err := r.Cookie(cookieName); err == nil && c.Value != "" {
		return c.Value
	}
	auth := r.Header.Get("Authorization")
	if !strings.HasPrefix(auth, "Bearer ") {
		return ""
	}
	return strings.TrimPrefix(auth, "Bearer ")
}
