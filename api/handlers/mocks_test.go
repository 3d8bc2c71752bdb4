package handlers

import (
	"context"

	"stackpages-api/core/domain"
	"stackpages-api/core/feed"
	"stackpages-api/core/interfaces"
)

// mockFeedService implements FeedService for testing
type mockFeedService struct {
	blog       domain.BlogFeed
	videos     []domain.Video
	podcasts   []domain.PodcastEpisode
	events     []domain.Event
	requested  []string
	invalidate func(ctx context.Context, resolver interfaces.FeedURLResolver) (feed.InvalidateResult, error)
}

func (m *mockFeedService) GetBlog(_ context.Context, url string, _ bool) domain.BlogFeed {
	m.requested = append(m.requested, url)
	if url == "" {
		return domain.EmptyBlogFeed()
	}
	return m.blog
}

func (m *mockFeedService) GetVideos(_ context.Context, url string, _ bool) []domain.Video {
	m.requested = append(m.requested, url)
	if url == "" {
		return []domain.Video{}
	}
	return m.videos
}

func (m *mockFeedService) GetPodcasts(_ context.Context, url string, _ bool) []domain.PodcastEpisode {
	m.requested = append(m.requested, url)
	if url == "" {
		return []domain.PodcastEpisode{}
	}
	return m.podcasts
}

func (m *mockFeedService) GetEvents(_ context.Context, url string, _ bool) []domain.Event {
	m.requested = append(m.requested, url)
	if url == "" {
		return []domain.Event{}
	}
	return m.events
}

func (m *mockFeedService) InvalidateConfigured(ctx context.Context, resolver interfaces.FeedURLResolver) (feed.InvalidateResult, error) {
	if m.invalidate != nil {
		return m.invalidate(ctx, resolver)
	}
	return feed.InvalidateResult{Cleared: []string{}}, nil
}

type staticResolver map[domain.FeedKind]string

func (r staticResolver) FeedURL(kind domain.FeedKind) string {
	return r[kind]
}

type nopLogger struct{}

func (nopLogger) Debug(string, map[string]interface{}) {}
func (nopLogger) Info(string, map[string]interface{})  {}
func (nopLogger) Warn(string, map[string]interface{})  {}
func (nopLogger) Error(string, map[string]interface{}) {}
