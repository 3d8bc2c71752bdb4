// ABOUTME: Standard HTTP client implementation with optional retries and timeout support
// ABOUTME: Fetches upstream feed documents; retries with exponential backoff only when configured

package standard

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"time"

	"stackpages-api/core/interfaces"
)

const (
	userAgent    = "StackPagesAPI/1.0"
	acceptHeader = "application/rss+xml, application/atom+xml, application/xml;q=0.9, text/xml;q=0.8, */*;q=0.5"
)

// StandardHTTPClient implements the HTTPClient interface using standard library
type StandardHTTPClient struct {
	client  *http.Client
	retries int
}

// Option configures a StandardHTTPClient
type Option func(*StandardHTTPClient)

// WithRetries sets how many extra attempts follow a network error or 5xx.
// The default is 0: one attempt, no retry.
func WithRetries(n int) Option {
	return func(c *StandardHTTPClient) {
		if n > 0 {
			c.retries = n
		}
	}
}

// NewStandardHTTPClient creates a new HTTP client with the specified timeout
func NewStandardHTTPClient(timeout time.Duration, opts ...Option) *StandardHTTPClient {
	c := &StandardHTTPClient{
		client: &http.Client{
			Timeout: timeout,
		},
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Get performs an HTTP GET request
func (c *StandardHTTPClient) Get(ctx context.Context, url string) (interfaces.Response, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, err
	}

	req.Header.Set("User-Agent", userAgent)
	req.Header.Set("Accept", acceptHeader)

	var resp *http.Response
	var lastErr error

	for attempt := 0; attempt <= c.retries; attempt++ {
		if attempt > 0 {
			// Exponential backoff: 100ms, 200ms, 400ms
			backoff := time.Duration(100*(1<<(attempt-1))) * time.Millisecond
			select {
			case <-time.After(backoff):
			case <-ctx.Done():
				return nil, ctx.Err()
			}
		}

		resp, err = c.client.Do(req)
		if err != nil {
			resp = nil
			lastErr = err
			continue
		}

		// Don't retry on success or 4xx errors
		if resp.StatusCode < 500 || attempt == c.retries {
			break
		}

		// Close body for retry
		resp.Body.Close()
		lastErr = fmt.Errorf("server returned %d", resp.StatusCode)
		resp = nil
	}

	if resp == nil {
		return nil, lastErr
	}

	return &httpResponse{
		statusCode: resp.StatusCode,
		body:       resp.Body,
		headers:    resp.Header,
	}, nil
}

// httpResponse implements the Response interface
type httpResponse struct {
	statusCode int
	body       io.ReadCloser
	headers    http.Header
}

// StatusCode returns the HTTP status code
func (r *httpResponse) StatusCode() int {
	return r.statusCode
}

// Body returns the response body
func (r *httpResponse) Body() io.ReadCloser {
	return r.body
}

// Header returns the value of the specified header
func (r *httpResponse) Header(key string) string {
	return r.headers.Get(key)
}
