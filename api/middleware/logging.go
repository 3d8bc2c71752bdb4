// ABOUTME: Request logging middleware for API endpoints
// ABOUTME: Logs request details, response status, and timing information

package middleware

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"stackpages-api/core/interfaces"

	"github.com/google/uuid"
)

// SlowRequestThreshold marks requests logged as slow
const SlowRequestThreshold = 5 * time.Second

// RequestIDHeader carries the request ID in and out
const RequestIDHeader = "X-Request-ID"

// responseWriter wraps http.ResponseWriter to capture status code
type responseWriter struct {
	http.ResponseWriter
	statusCode int
	written    bool
}

func (rw *responseWriter) WriteHeader(code int) {
	if !rw.written {
		rw.statusCode = code
		rw.ResponseWriter.WriteHeader(code)
		rw.written = true
	}
}

func (rw *responseWriter) Write(b []byte) (int, error) {
	if !rw.written {
		rw.WriteHeader(http.StatusOK)
	}
	return rw.ResponseWriter.Write(b)
}

// RequestIDKey is the context key for request ID
type RequestIDKey struct{}

// RequestIDFromContext returns the request ID stored by the logging middleware
func RequestIDFromContext(ctx context.Context) string {
	id, _ := ctx.Value(RequestIDKey{}).(string)
	return id
}

// RequestLoggingMiddleware creates a middleware that logs all requests. An
// incoming X-Request-ID is kept, otherwise a UUID is generated.
func RequestLoggingMiddleware(logger interfaces.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			requestID := r.Header.Get(RequestIDHeader)
			if requestID == "" {
				requestID = uuid.New().String()
			}
			w.Header().Set(RequestIDHeader, requestID)
			r = r.WithContext(context.WithValue(r.Context(), RequestIDKey{}, requestID))

			start := time.Now()
			wrapped := &responseWriter{
				ResponseWriter: w,
				statusCode:     http.StatusOK,
			}

			logger.Info("Request started", map[string]interface{}{
				"request_id": requestID,
				"method":     r.Method,
				"path":       r.URL.Path,
				"remote_ip":  extractIP(r),
				"user_agent": r.UserAgent(),
			})

			next.ServeHTTP(wrapped, r)

			duration := time.Since(start)
			fields := ResponseLogFields(wrapped.statusCode, duration)
			fields["request_id"] = requestID
			fields["method"] = r.Method
			fields["path"] = r.URL.Path
			logger.Info("Request completed", fields)

			if duration > SlowRequestThreshold {
				logger.Warn("Slow request detected", map[string]interface{}{
					"request_id": requestID,
					"method":     r.Method,
					"path":       r.URL.Path,
					"duration":   duration.String(),
				})
			}

			if wrapped.statusCode >= 500 {
				logger.Error("Request failed with server error", map[string]interface{}{
					"request_id": requestID,
					"method":     r.Method,
					"path":       r.URL.Path,
					"status":     wrapped.statusCode,
				})
			}
		})
	}
}

// GetRequestID retrieves the request ID from the request context, falling
// back to the request header
func GetRequestID(r *http.Request) string {
	if id := RequestIDFromContext(r.Context()); id != "" {
		return id
	}
	return r.Header.Get(RequestIDHeader)
}

// RequestLogFields extracts common log fields from a request
func RequestLogFields(r *http.Request) map[string]interface{} {
	return map[string]interface{}{
		"method":       r.Method,
		"path":         r.URL.Path,
		"query":        r.URL.RawQuery,
		"remote_ip":    extractIP(r),
		"user_agent":   r.UserAgent(),
		"request_id":   GetRequestID(r),
		"host":         r.Host,
		"proto":        r.Proto,
		"content_type": r.Header.Get("Content-Type"),
	}
}

// ResponseLogFields creates log fields for a response
func ResponseLogFields(statusCode int, duration time.Duration) map[string]interface{} {
	return map[string]interface{}{
		"status":      statusCode,
		"duration":    duration.String(),
		"duration_ms": duration.Milliseconds(),
		"status_text": fmt.Sprintf("%d %s", statusCode, http.StatusText(statusCode)),
	}
}
