package middleware

import (
	"math"
	"net"
	"net/http"
	"strconv"
	"sync"
	"time"

	"golang.org/x/time/rate"
)

// RateLimiter implements per-IP token bucket rate limiting.
type RateLimiter struct {
	mu      sync.Mutex
	clients map[string]*client
	stop    chan struct{}
	once    sync.Once
}

type client struct {
	limiters map[int]*rate.Limiter
	lastSeen time.Time
}

// NewRateLimiter creates a rate limiter with background cleanup.
// Call Stop() on shutdown.
func NewRateLimiter(cleanupInterval time.Duration) *RateLimiter {
	rl := &RateLimiter{
		clients: make(map[string]*client),
		stop:    make(chan struct{}),
	}
	go rl.cleanup(cleanupInterval)
	return rl
}

// Stop terminates the background cleanup goroutine.
func (rl *RateLimiter) Stop() {
	rl.once.Do(func() { close(rl.stop) })
}

const rateLimitedBody = `{"error":"rate limit exceeded"}`

// Limit returns middleware that rate-limits requests to maxPerMinute per IP.
// A non-positive limit disables limiting.
func (rl *RateLimiter) Limit(maxPerMinute int) Middleware {
	return func(next http.Handler) http.Handler {
		if maxPerMinute <= 0 {
			return next
		}
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			lim := rl.limiter(clientIP(r), maxPerMinute)
			if !lim.Allow() {
				retryAfter := math.Ceil(60.0 / float64(maxPerMinute))
				w.Header().Set("Retry-After", strconv.Itoa(int(retryAfter)))
				w.Header().Set("Content-Type", "application/json")
				w.WriteHeader(http.StatusTooManyRequests)
				_, _ = w.Write([]byte(rateLimitedBody))
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}

// limiter returns the bucket for ip at the given per-minute rate. Each rate
// has its own bucket per IP.
func (rl *RateLimiter) limiter(ip string, maxPerMinute int) *rate.Limiter {
	rl.mu.Lock()
	defer rl.mu.Unlock()

	c, ok := rl.clients[ip]
	if !ok {
		c = &client{limiters: make(map[int]*rate.Limiter)}
		rl.clients[ip] = c
	}
	c.lastSeen = time.Now()

	lim, ok := c.limiters[maxPerMinute]
	if !ok {
		lim = rate.NewLimiter(rate.Limit(float64(maxPerMinute)/60.0), maxPerMinute)
		c.limiters[maxPerMinute] = lim
	}
	return lim
}

func clientIP(r *http.Request) string {
	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return r.RemoteAddr
	}
	return host
}

func (rl *RateLimiter) cleanup(interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-rl.stop:
			return
		case <-ticker.C:
			now := time.Now()
			rl.mu.Lock()
			for ip, c := range rl.clients {
				if now.Sub(c.lastSeen) > 10*time.Minute {
					delete(rl.clients, ip)
				}
			}
			rl.mu.Unlock()
		}
	}
}
