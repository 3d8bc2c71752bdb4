// ABOUTME: Rate limiting middleware for API endpoints
// ABOUTME: Per-client token buckets from golang.org/x/time/rate

package middleware

import (
	"net"
	"net/http"
	"strconv"
	"strings"
	"sync"
	"time"

	"golang.org/x/time/rate"
)

// RateLimiter hands out one token bucket per client key. Each bucket holds
// limit tokens and refills limit tokens per window.
type RateLimiter struct {
	mu       sync.Mutex
	visitors map[string]*visitor
	limit    int
	window   time.Duration
	every    rate.Limit
	stop     chan struct{}
	once     sync.Once
}

type visitor struct {
	limiter  *rate.Limiter
	lastSeen time.Time
}

// NewRateLimiter creates a new rate limiter
func NewRateLimiter(limit int, window time.Duration) *RateLimiter {
	rl := &RateLimiter{
		visitors: make(map[string]*visitor),
		limit:    limit,
		window:   window,
		every:    rate.Every(window / time.Duration(limit)),
		stop:     make(chan struct{}),
	}

	go rl.cleanup()

	return rl
}

// Stop ends the background cleanup
func (rl *RateLimiter) Stop() {
	rl.once.Do(func() { close(rl.stop) })
}

// cleanup drops buckets idle for longer than a window; a fresh bucket is full
// again, so forgetting them changes nothing for the client
func (rl *RateLimiter) cleanup() {
	ticker := time.NewTicker(rl.window)
	defer ticker.Stop()

	for {
		select {
		case <-rl.stop:
			return
		case now := <-ticker.C:
			rl.mu.Lock()
			for key, v := range rl.visitors {
				if now.Sub(v.lastSeen) > rl.window {
					delete(rl.visitors, key)
				}
			}
			rl.mu.Unlock()
		}
	}
}

// Allow checks if a request from the given key is allowed
func (rl *RateLimiter) Allow(key string) bool {
	rl.mu.Lock()
	v, ok := rl.visitors[key]
	if !ok {
		v = &visitor{limiter: rate.NewLimiter(rl.every, rl.limit)}
		rl.visitors[key] = v
	}
	v.lastSeen = time.Now()
	rl.mu.Unlock()

	return v.limiter.Allow()
}

// extractIP gets the client IP from the request
func extractIP(r *http.Request) string {
	// Nearest proxy hop wins
	if xff := r.Header.Get("X-Forwarded-For"); xff != "" {
		parts := strings.Split(xff, ",")
		return strings.TrimSpace(parts[len(parts)-1])
	}

	if xri := r.Header.Get("X-Real-IP"); xri != "" {
		return xri
	}

	if host, _, err := net.SplitHostPort(r.RemoteAddr); err == nil {
		return host
	}
	return r.RemoteAddr
}

// RateLimitMiddleware creates a middleware that enforces rate limits
func RateLimitMiddleware(limiter *RateLimiter) func(http.Handler) http.Handler {
	limit := strconv.Itoa(limiter.limit)
	retryAfter := strconv.Itoa(int(limiter.window.Seconds()))

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Header().Set("X-RateLimit-Limit", limit)
			w.Header().Set("X-RateLimit-Window", limiter.window.String())

			if !limiter.Allow(extractIP(r)) {
				w.Header().Set("Content-Type", "application/json")
				w.Header().Set("Retry-After", retryAfter)
				w.WriteHeader(http.StatusTooManyRequests)
				_, _ = w.Write([]byte(`{"error":"Too many requests","message":"Rate limit exceeded. Please try again later."}`))
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}
