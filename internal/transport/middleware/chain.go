// Package middleware holds the HTTP middleware wrapped around the API mux.
// The server order, outermost first, is Recovery, RequestID, Logger,
// Metrics, CORS, Auth, Route.
package middleware

import "net/http"

// Middleware wraps an http.Handler.
type Middleware func(http.Handler) http.Handler

// Chain composes mws so the first one runs outermost. Nil entries are
// skipped, which lets optional layers be switched off in place.
func Chain(mws ...Middleware) Middleware {
	return func(h http.Handler) http.Handler {
		for i := len(mws) - 1; i >= 0; i-- {
			if mws[i] != nil {
				h = mws[i](h)
			}
		}
		return h
	}
}
