// ABOUTME: Load tests for the content endpoints
// ABOUTME: Drives the full stack against a local upstream and checks the cache absorbs the load

package loadtest

import (
	"io"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"slices"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"stackpages-api/api"
	"stackpages-api/api/handlers"
	"stackpages-api/core/domain"
	"stackpages-api/core/feed"
	"stackpages-api/core/interfaces"
	"stackpages-api/infrastructure/cache/memory"
	stdhttp "stackpages-api/infrastructure/http/standard"
)

type staticResolver map[domain.FeedKind]string

func (r staticResolver) FeedURL(kind domain.FeedKind) string {
	return r[kind]
}

// LoadTestMetrics tracks performance metrics
type LoadTestMetrics struct {
	TotalRequests  int64
	SuccessfulReqs int64
	FailedReqs     int64
	TotalDuration  time.Duration
	MinLatency     time.Duration
	MaxLatency     time.Duration
	AvgLatency     time.Duration
	P95Latency     time.Duration
	P99Latency     time.Duration
	RequestsPerSec float64
}

type stack struct {
	server        *httptest.Server
	upstreamCalls *atomic.Int64
}

func newStack(t *testing.T) stack {
	t.Helper()

	blog, err := os.ReadFile(filepath.Join("..", "core", "parser", "testdata", "blog.xml"))
	if err != nil {
		t.Fatalf("read fixture: %v", err)
	}

	calls := &atomic.Int64{}
	upstream := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
		w.Header().Set("Content-Type", "application/rss+xml")
		_, _ = w.Write(blog)
	}))
	t.Cleanup(upstream.Close)

	deps := interfaces.Dependencies{
		Cache:      memory.NewMemoryCache(),
		HTTPClient: stdhttp.NewStandardHTTPClient(5 * time.Second),
	}
	svc := feed.NewFeedService(deps)
	resolver := staticResolver{domain.KindBlog: upstream.URL + "/feed"}

	apiInstance, router := api.NewAPI()
	handlers.NewContentHandler(svc, resolver).RegisterRoutes(apiInstance)
	handlers.NewCacheHandler(svc, resolver, nil).RegisterRoutes(apiInstance)

	server := httptest.NewServer(router)
	t.Cleanup(server.Close)

	return stack{server: server, upstreamCalls: calls}
}

func get(t *testing.T, client *http.Client, url string) int {
	t.Helper()
	resp, err := client.Get(url)
	if err != nil {
		return 0
	}
	_, _ = io.Copy(io.Discard, resp.Body)
	resp.Body.Close()
	return resp.StatusCode
}

func TestPostsEndpoint_100ConcurrentRequests(t *testing.T) {
	if testing.Short() {
		t.Skip("load test")
	}
	s := newStack(t)

	// Warm the cache so every concurrent request is a hit
	if code := get(t, http.DefaultClient, s.server.URL+"/api/posts"); code != http.StatusOK {
		t.Fatalf("warm-up status = %d", code)
	}

	concurrency := 100
	requestsPerWorker := 10
	totalRequests := concurrency * requestsPerWorker

	var (
		successCount int64
		failCount    int64
		latencies    []time.Duration
		mu           sync.Mutex
	)

	var wg sync.WaitGroup
	wg.Add(concurrency)
	startTime := time.Now()

	for i := 0; i < concurrency; i++ {
		go func() {
			defer wg.Done()
			client := &http.Client{Timeout: 30 * time.Second}

			for j := 0; j < requestsPerWorker; j++ {
				reqStart := time.Now()
				code := get(t, client, s.server.URL+"/api/posts?page=1&limit=2")
				latency := time.Since(reqStart)

				mu.Lock()
				latencies = append(latencies, latency)
				mu.Unlock()

				if code == http.StatusOK {
					atomic.AddInt64(&successCount, 1)
				} else {
					atomic.AddInt64(&failCount, 1)
				}
			}
		}()
	}

	wg.Wait()
	totalDuration := time.Since(startTime)

	metrics := calculateMetrics(latencies, totalDuration, totalRequests)
	metrics.SuccessfulReqs = successCount
	metrics.FailedReqs = failCount

	t.Logf("Load Test Results - 100 Concurrent Requests")
	t.Logf("==========================================")
	t.Logf("Total Requests: %d", metrics.TotalRequests)
	t.Logf("Successful: %d", metrics.SuccessfulReqs)
	t.Logf("Failed: %d", metrics.FailedReqs)
	t.Logf("Requests/sec: %.2f", metrics.RequestsPerSec)
	t.Logf("Avg Latency: %v", metrics.AvgLatency)
	t.Logf("P95 Latency: %v", metrics.P95Latency)
	t.Logf("P99 Latency: %v", metrics.P99Latency)

	if metrics.FailedReqs > 0 {
		t.Errorf("Had %d failed requests", metrics.FailedReqs)
	}
	if got := s.upstreamCalls.Load(); got != 1 {
		t.Errorf("upstream fetched %d times, want 1", got)
	}
	if metrics.P95Latency > 1*time.Second {
		t.Errorf("P95 latency too high: %v", metrics.P95Latency)
	}
}

func TestPostsEndpoint_ClearCacheForcesRefetch(t *testing.T) {
	if testing.Short() {
		t.Skip("load test")
	}
	s := newStack(t)

	for i := 0; i < 20; i++ {
		get(t, http.DefaultClient, s.server.URL+"/api/posts")
	}
	if got := s.upstreamCalls.Load(); got != 1 {
		t.Fatalf("upstream fetched %d times before clear, want 1", got)
	}

	resp, err := http.Post(s.server.URL+"/api/clear-cache", "application/json", nil)
	if err != nil {
		t.Fatalf("clear-cache: %v", err)
	}
	resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("clear-cache status = %d", resp.StatusCode)
	}

	get(t, http.DefaultClient, s.server.URL+"/api/posts")
	if got := s.upstreamCalls.Load(); got != 2 {
		t.Errorf("upstream fetched %d times after clear, want 2", got)
	}
}

func calculateMetrics(latencies []time.Duration, totalDuration time.Duration, totalRequests int) LoadTestMetrics {
	if len(latencies) == 0 {
		return LoadTestMetrics{}
	}

	sorted := slices.Clone(latencies)
	slices.Sort(sorted)

	var sum time.Duration
	for _, l := range latencies {
		sum += l
	}

	p95Index := int(float64(len(sorted)) * 0.95)
	p99Index := int(float64(len(sorted)) * 0.99)

	return LoadTestMetrics{
		TotalRequests:  int64(totalRequests),
		TotalDuration:  totalDuration,
		MinLatency:     sorted[0],
		MaxLatency:     sorted[len(sorted)-1],
		AvgLatency:     sum / time.Duration(len(latencies)),
		P95Latency:     sorted[p95Index],
		P99Latency:     sorted[p99Index],
		RequestsPerSec: float64(totalRequests) / totalDuration.Seconds(),
	}
}
