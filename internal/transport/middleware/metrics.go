package middleware

import (
	"net/http"
	"time"
)

type httpRecorder interface {
	InFlight(delta float64)
	ObserveHTTP(method, route string, status int, d time.Duration)
}

// Metrics records request counts and latency labelled by the matched
// ServeMux pattern.
func Metrics(rec httpRecorder) Middleware {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()
			sw := &statusWriter{ResponseWriter: w, status: http.StatusOK}
			r, info := withRequestInfo(r)

			rec.InFlight(1)
			defer rec.InFlight(-1)

			next.ServeHTTP(sw, r)
			info.fill(r)

			rec.ObserveHTTP(r.Method, info.route, sw.status, time.Since(start))
		})
	}
}
