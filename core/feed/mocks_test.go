package feed

import (
	"context"
	"io"
	"strings"
	"sync"
	"time"

	"stackpages-api/core/interfaces"
)

// mockHTTPClient is a mock implementation of the HTTPClient interface
type mockHTTPClient struct {
	getFunc func(ctx context.Context, url string) (interfaces.Response, error)
}

func (m *mockHTTPClient) Get(ctx context.Context, url string) (interfaces.Response, error) {
	if m.getFunc != nil {
		return m.getFunc(ctx, url)
	}
	return nil, nil
}

// mockResponse is a mock implementation of the Response interface
type mockResponse struct {
	statusCode int
	body       string
	headers    map[string]string
}

func (m *mockResponse) StatusCode() int {
	return m.statusCode
}

func (m *mockResponse) Body() io.ReadCloser {
	return io.NopCloser(strings.NewReader(m.body))
}

func (m *mockResponse) Header(key string) string {
	if m.headers != nil {
		return m.headers[key]
	}
	return ""
}

// mockCache is a mock implementation of the Cache interface
type mockCache struct {
	getFunc    func(ctx context.Context, key string) ([]byte, error)
	setFunc    func(ctx context.Context, key string, value []byte, ttl time.Duration) error
	deleteFunc func(ctx context.Context, key string) (bool, error)
}

func (m *mockCache) Get(ctx context.Context, key string) ([]byte, error) {
	if m.getFunc != nil {
		return m.getFunc(ctx, key)
	}
	return nil, interfaces.ErrCacheMiss
}

func (m *mockCache) Set(ctx context.Context, key string, value []byte, ttl time.Duration) error {
	if m.setFunc != nil {
		return m.setFunc(ctx, key, value, ttl)
	}
	return nil
}

func (m *mockCache) Delete(ctx context.Context, key string) (bool, error) {
	if m.deleteFunc != nil {
		return m.deleteFunc(ctx, key)
	}
	return false, nil
}

// mapCache is a map-backed Cache that records the TTL of each write
type mapCache struct {
	mu      sync.Mutex
	entries map[string][]byte
	ttls    map[string]time.Duration
}

func newMapCache() *mapCache {
	return &mapCache{entries: map[string][]byte{}, ttls: map[string]time.Duration{}}
}

func (m *mapCache) Get(ctx context.Context, key string) ([]byte, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	v, ok := m.entries[key]
	if !ok {
		return nil, interfaces.ErrCacheMiss
	}
	return v, nil
}

func (m *mapCache) Set(ctx context.Context, key string, value []byte, ttl time.Duration) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.entries[key] = value
	m.ttls[key] = ttl
	return nil
}

func (m *mapCache) Delete(ctx context.Context, key string) (bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	_, ok := m.entries[key]
	delete(m.entries, key)
	return ok, nil
}

// countingClient serves a fixed body and counts requests
type countingClient struct {
	mu     sync.Mutex
	calls  int
	status int
	body   string
	err    error
}

func (c *countingClient) Get(ctx context.Context, url string) (interfaces.Response, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.calls++
	if c.err != nil {
		return nil, c.err
	}
	status := c.status
	if status == 0 {
		status = 200
	}
	return &mockResponse{statusCode: status, body: c.body}, nil
}

func (c *countingClient) Calls() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.calls
}

// mockLogger is a mock implementation of the Logger interface
type mockLogger struct {
	debugFunc func(msg string, fields map[string]interface{})
	infoFunc  func(msg string, fields map[string]interface{})
	warnFunc  func(msg string, fields map[string]interface{})
	errorFunc func(msg string, fields map[string]interface{})
}

func (m *mockLogger) Debug(msg string, fields map[string]interface{}) {
	if m.debugFunc != nil {
		m.debugFunc(msg, fields)
	}
}

func (m *mockLogger) Info(msg string, fields map[string]interface{}) {
	if m.infoFunc != nil {
		m.infoFunc(msg, fields)
	}
}

func (m *mockLogger) Warn(msg string, fields map[string]interface{}) {
	if m.warnFunc != nil {
		m.warnFunc(msg, fields)
	}
}

func (m *mockLogger) Error(msg string, fields map[string]interface{}) {
	if m.errorFunc != nil {
		m.errorFunc(msg, fields)
	}
}