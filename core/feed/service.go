// ABOUTME: Feed service fetches, parses and caches the four content feeds
// ABOUTME: Callers always get a well-typed, possibly empty result

package feed

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"stackpages-api/core/domain"
	coreerrors "stackpages-api/core/errors"
	"stackpages-api/core/interfaces"
	"stackpages-api/core/parser"
)

const (
	// DefaultTTL is the freshness window of a cached parse result
	DefaultTTL = 180 * time.Second

	// maxFeedSize bounds how much of an upstream body is read
	maxFeedSize = 10 << 20
)

// FeedService handles feed fetching, parsing and caching
type FeedService struct {
	deps interfaces.Dependencies
	ttl  time.Duration
	now  func() time.Time
}

// Option configures a FeedService
type Option func(*FeedService)

// WithTTL overrides the freshness window. Non-positive values are ignored.
func WithTTL(ttl time.Duration) Option {
	return func(s *FeedService) {
		if ttl > 0 {
			s.ttl = ttl
		}
	}
}

// NewFeedService creates a new feed service instance
func NewFeedService(deps interfaces.Dependencies, opts ...Option) *FeedService {
	s := &FeedService{
		deps: deps,
		ttl:  DefaultTTL,
		now:  time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// TTL reports the freshness window entries are stored with
func (s *FeedService) TTL() time.Duration {
	return s.ttl
}

// cacheEntry is the stored unit: the parse result plus when and for how long
// it was considered fresh.
type cacheEntry struct {
	StoredAt time.Time       `json:"storedAt"`
	MaxAge   int             `json:"maxAge"`
	Kind     domain.FeedKind `json:"kind"`
	Data     json.RawMessage `json:"data"`
}

// CacheKey is the substrate key a feed URL's entry lives under
func CacheKey(feedURL string) string {
	return fmt.Sprintf("feed:%s", feedURL)
}

// GetBlog returns the blog feed at feedURL
func (s *FeedService) GetBlog(ctx context.Context, feedURL string, forceRefresh bool) domain.BlogFeed {
	return getCached(ctx, s, domain.KindBlog, feedURL, forceRefresh, parser.ParseBlog, domain.EmptyBlogFeed)
}

// GetVideos returns the videos of the Atom feed at feedURL
func (s *FeedService) GetVideos(ctx context.Context, feedURL string, forceRefresh bool) []domain.Video {
	return getCached(ctx, s, domain.KindVideo, feedURL, forceRefresh, parser.ParseVideos, func() []domain.Video {
		return []domain.Video{}
	})
}

// GetPodcasts returns the episodes of the podcast feed at feedURL
func (s *FeedService) GetPodcasts(ctx context.Context, feedURL string, forceRefresh bool) []domain.PodcastEpisode {
	return getCached(ctx, s, domain.KindPodcast, feedURL, forceRefresh, parser.ParsePodcasts, func() []domain.PodcastEpisode {
		return []domain.PodcastEpisode{}
	})
}

// GetEvents returns the events of the event feed at feedURL
func (s *FeedService) GetEvents(ctx context.Context, feedURL string, forceRefresh bool) []domain.Event {
	return getCached(ctx, s, domain.KindEvent, feedURL, forceRefresh, parser.ParseEvents, func() []domain.Event {
		return []domain.Event{}
	})
}

// GetCached returns the parse result for kind. The dynamic type is
// domain.BlogFeed for blogs and a slice of the kind's item type otherwise.
// The only error is an unknown kind; fetch and parse problems degrade to an
// empty result.
func (s *FeedService) GetCached(ctx context.Context, kind domain.FeedKind, feedURL string, forceRefresh bool) (any, error) {
	switch kind {
	case domain.KindBlog:
		return s.GetBlog(ctx, feedURL, forceRefresh), nil
	case domain.KindVideo:
		return s.GetVideos(ctx, feedURL, forceRefresh), nil
	case domain.KindPodcast:
		return s.GetPodcasts(ctx, feedURL, forceRefresh), nil
	case domain.KindEvent:
		return s.GetEvents(ctx, feedURL, forceRefresh), nil
	default:
		return nil, &coreerrors.ValidationError{Field: "kind", Message: fmt.Sprintf("unknown feed kind %q", kind)}
	}
}

func getCached[T any](ctx context.Context, s *FeedService, kind domain.FeedKind, feedURL string, forceRefresh bool, parse func(string) T, empty func() T) T {
	if feedURL == "" {
		return empty()
	}

	if !forceRefresh {
		if cached, ok := readEntry[T](ctx, s, kind, feedURL); ok {
			return cached
		}
	}

	body, err := s.fetch(ctx, feedURL)
	if err != nil {
		s.logger().Error("Failed to fetch feed", map[string]interface{}{
			"url":   feedURL,
			"kind":  string(kind),
			"error": err.Error(),
		})
		if forceRefresh {
			if cached, ok := readEntry[T](ctx, s, kind, feedURL); ok {
				s.logger().Warn("Serving last known good entry after failed refresh", map[string]interface{}{
					"url":  feedURL,
					"kind": string(kind),
				})
				return cached
			}
		}
		return empty()
	}

	if got, want := parser.Detect(body), parser.ExpectedFormat(kind); got != want {
		s.logger().Warn("Feed format differs from expected", map[string]interface{}{
			"url":      feedURL,
			"kind":     string(kind),
			"detected": string(got),
			"expected": string(want),
		})
	}

	result := parse(body)
	s.writeEntry(ctx, kind, feedURL, result)
	return result
}

func readEntry[T any](ctx context.Context, s *FeedService, kind domain.FeedKind, feedURL string) (T, bool) {
	var zero T
	if s.deps.Cache == nil {
		return zero, false
	}

	data, err := s.deps.Cache.Get(ctx, CacheKey(feedURL))
	if err != nil {
		if !errors.Is(err, interfaces.ErrCacheMiss) {
			s.logger().Warn("Cache read failed", map[string]interface{}{
				"url":   feedURL,
				"error": err.Error(),
			})
		} else {
			s.logger().Debug("Cache miss", map[string]interface{}{"url": feedURL})
		}
		return zero, false
	}

	var entry cacheEntry
	if err := json.Unmarshal(data, &entry); err != nil || entry.Kind != kind {
		s.logger().Warn("Ignoring unusable cache entry", map[string]interface{}{
			"url":  feedURL,
			"kind": string(kind),
		})
		return zero, false
	}

	var result T
	if err := json.Unmarshal(entry.Data, &result); err != nil {
		s.logger().Warn("Ignoring undecodable cache entry", map[string]interface{}{
			"url":   feedURL,
			"error": err.Error(),
		})
		return zero, false
	}

	s.logger().Debug("Cache hit", map[string]interface{}{
		"url": feedURL,
		"age": s.now().Sub(entry.StoredAt).String(),
	})
	return result, true
}

func (s *FeedService) writeEntry(ctx context.Context, kind domain.FeedKind, feedURL string, result any) {
	if s.deps.Cache == nil {
		return
	}

	data, err := json.Marshal(result)
	if err != nil {
		return
	}
	entry, err := json.Marshal(cacheEntry{
		StoredAt: s.now().UTC(),
		MaxAge:   int(s.ttl / time.Second),
		Kind:     kind,
		Data:     data,
	})
	if err != nil {
		return
	}

	if err := s.deps.Cache.Set(ctx, CacheKey(feedURL), entry, s.ttl); err != nil {
		s.logger().Warn("Cache write failed", map[string]interface{}{
			"url":   feedURL,
			"error": err.Error(),
		})
	}
}

// fetch downloads feedURL. Network failures, non-2xx responses and bodies
// over maxFeedSize are errors.
func (s *FeedService) fetch(ctx context.Context, feedURL string) (string, error) {
	if s.deps.HTTPClient == nil {
		return "", errors.New("HTTP client not configured")
	}

	resp, err := s.deps.HTTPClient.Get(ctx, feedURL)
	if err != nil {
		return "", err
	}
	body := resp.Body()
	defer body.Close()

	if resp.StatusCode() < 200 || resp.StatusCode() > 299 {
		return "", &coreerrors.ExternalAPIError{
			StatusCode: resp.StatusCode(),
			Message:    http.StatusText(resp.StatusCode()),
			API:        hostOf(feedURL),
		}
	}

	// One byte past the limit tells an oversized body from one that fits exactly
	data, err := io.ReadAll(io.LimitReader(body, maxFeedSize+1))
	if err != nil {
		return "", coreerrors.WrapError(err, "read feed body")
	}
	if len(data) > maxFeedSize {
		return "", fmt.Errorf("feed body from %s exceeds %d bytes", hostOf(feedURL), maxFeedSize)
	}
	return string(data), nil
}

func hostOf(rawURL string) string {
	if u, err := url.Parse(rawURL); err == nil && u.Host != "" {
		return u.Host
	}
	return rawURL
}

func (s *FeedService) logger() interfaces.Logger {
	if s.deps.Logger == nil {
		return nopLogger{}
	}
	return s.deps.Logger
}

type nopLogger struct{}

func (nopLogger) Debug(string, map[string]interface{}) {}
func (nopLogger) Info(string, map[string]interface{})  {}
func (nopLogger) Warn(string, map[string]interface{})  {}
func (nopLogger) Error(string, map[string]interface{}) {}
