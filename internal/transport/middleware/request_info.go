package middleware

import (
	"context"
	"net/http"

	"github.com/google/uuid"

	"github.com/heartmarshall/studydocs-backend/pkg/ctxutil"
)

// requestInfo carries facts learned below Logger and Metrics in the chain.
// Inner middleware copy the request, so outer ones never see the matched
// pattern or the session user on their own request value.
type requestInfo struct {
	route  string
	userID uuid.UUID
}

type requestInfoKey struct{}

func withRequestInfo(r *http.Request) (*http.Request, *requestInfo) {
	if info, ok := r.Context().Value(requestInfoKey{}).(*requestInfo); ok {
		return r, info
	}
	info := &requestInfo{}
	return r.WithContext(context.WithValue(r.Context(), requestInfoKey{}, info)), info
}

// fill copies what r knows into info without overwriting earlier findings.
func (info *requestInfo) fill(r *http.Request) {
	if info.route == "" {
		info.route = r.Pattern
	}
	if info.userID == uuid.Nil {
		if id, ok := ctxutil.UserIDFromCtx(r.Context()); ok {
			info.userID = id
		}
	}
}

// Route reports the matched ServeMux pattern and the session user back to
// Logger and Metrics. It belongs directly above the mux.
func Route() Middleware {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			next.ServeHTTP(w, r)
			if info, ok := r.Context().Value(requestInfoKey{}).(*requestInfo); ok {
				info.fill(r)
			}
		})
	}
}
