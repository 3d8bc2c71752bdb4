// ABOUTME: Content handlers for the Huma API
// ABOUTME: Paginated lists and single-item lookups for every configured feed kind

package handlers

import (
	"context"
	"net/http"

	"stackpages-api/api/dto/mappers"
	"stackpages-api/api/dto/requests"
	"stackpages-api/api/dto/responses"
	"stackpages-api/core/domain"
	coreerrors "stackpages-api/core/errors"
	"stackpages-api/core/feed"
	"stackpages-api/core/interfaces"

	"github.com/danielgtaylor/huma/v2"
)

// FeedService defines the methods needed from the feed service
type FeedService interface {
	GetBlog(ctx context.Context, feedURL string, forceRefresh bool) domain.BlogFeed
	GetVideos(ctx context.Context, feedURL string, forceRefresh bool) []domain.Video
	GetPodcasts(ctx context.Context, feedURL string, forceRefresh bool) []domain.PodcastEpisode
	GetEvents(ctx context.Context, feedURL string, forceRefresh bool) []domain.Event
	InvalidateConfigured(ctx context.Context, resolver interfaces.FeedURLResolver) (feed.InvalidateResult, error)
}

// ContentHandler serves normalized feed items
type ContentHandler struct {
	feeds    FeedService
	resolver interfaces.FeedURLResolver
}

// NewContentHandler creates a new content handler
func NewContentHandler(feeds FeedService, resolver interfaces.FeedURLResolver) *ContentHandler {
	return &ContentHandler{feeds: feeds, resolver: resolver}
}

type (
	// PostsOutput is one page of blog posts
	PostsOutput = responses.Output[responses.PageBody[domain.BlogPost]]
	// VideosOutput is one page of videos
	VideosOutput = responses.Output[responses.PageBody[domain.Video]]
	// PodcastsOutput is one page of podcast episodes
	PodcastsOutput = responses.Output[responses.PageBody[domain.PodcastEpisode]]
	// EventsOutput is one page of events
	EventsOutput = responses.Output[responses.PageBody[domain.Event]]

	PostOutput     = responses.Output[domain.BlogPost]
	VideoOutput    = responses.Output[domain.Video]
	PodcastOutput  = responses.Output[domain.PodcastEpisode]
	EventOutput    = responses.Output[domain.Event]
	MetadataOutput = responses.Output[domain.ChannelMetadata]
)

// RegisterRoutes registers all content routes
func (h *ContentHandler) RegisterRoutes(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "listPosts",
		Method:      http.MethodGet,
		Path:        "/api/posts",
		Summary:     "List blog posts",
		Tags:        []string{"Blog"},
	}, h.ListPosts)

	huma.Register(api, huma.Operation{
		OperationID: "getPost",
		Method:      http.MethodGet,
		Path:        "/api/post/{slug}",
		Summary:     "Get a blog post by slug",
		Tags:        []string{"Blog"},
	}, h.GetPost)

	huma.Register(api, huma.Operation{
		OperationID: "getMetadata",
		Method:      http.MethodGet,
		Path:        "/api/metadata",
		Summary:     "Get blog channel metadata",
		Tags:        []string{"Blog"},
	}, h.GetMetadata)

	huma.Register(api, huma.Operation{
		OperationID: "listVideos",
		Method:      http.MethodGet,
		Path:        "/api/videos",
		Summary:     "List videos",
		Tags:        []string{"Videos"},
	}, h.ListVideos)

	huma.Register(api, huma.Operation{
		OperationID: "getVideo",
		Method:      http.MethodGet,
		Path:        "/api/video/{id}",
		Summary:     "Get a video by id",
		Tags:        []string{"Videos"},
	}, h.GetVideo)

	huma.Register(api, huma.Operation{
		OperationID: "listPodcasts",
		Method:      http.MethodGet,
		Path:        "/api/podcasts",
		Summary:     "List podcast episodes",
		Tags:        []string{"Podcasts"},
	}, h.ListPodcasts)

	huma.Register(api, huma.Operation{
		OperationID: "getPodcast",
		Method:      http.MethodGet,
		Path:        "/api/podcast/{id}",
		Summary:     "Get a podcast episode by guid or slug",
		Tags:        []string{"Podcasts"},
	}, h.GetPodcast)

	huma.Register(api, huma.Operation{
		OperationID: "listEvents",
		Method:      http.MethodGet,
		Path:        "/api/events",
		Summary:     "List events",
		Tags:        []string{"Events"},
	}, h.ListEvents)

	huma.Register(api, huma.Operation{
		OperationID: "getEvent",
		Method:      http.MethodGet,
		Path:        "/api/event/{slug}",
		Summary:     "Get an event by slug",
		Tags:        []string{"Events"},
	}, h.GetEvent)
}

// ListPosts handles GET /api/posts
func (h *ContentHandler) ListPosts(ctx context.Context, input *requests.ListInput) (*PostsOutput, error) {
	blog := h.feeds.GetBlog(ctx, h.resolver.FeedURL(domain.KindBlog), false)
	return pageOf(blog.Posts, input), nil
}

// GetPost handles GET /api/post/{slug}
func (h *ContentHandler) GetPost(ctx context.Context, input *requests.SlugInput) (*PostOutput, error) {
	url, err := h.configured(domain.KindBlog)
	if err != nil {
		return nil, toHumaError(err)
	}
	post, ok := feed.FindPost(h.feeds.GetBlog(ctx, url, false).Posts, input.Slug)
	if !ok {
		return nil, toHumaError(&coreerrors.NotFoundError{Resource: "post", ID: input.Slug})
	}
	return &PostOutput{Body: post}, nil
}

// GetMetadata handles GET /api/metadata
func (h *ContentHandler) GetMetadata(ctx context.Context, _ *struct{}) (*MetadataOutput, error) {
	blog := h.feeds.GetBlog(ctx, h.resolver.FeedURL(domain.KindBlog), false)
	return &MetadataOutput{Body: blog.Metadata}, nil
}

// ListVideos handles GET /api/videos
func (h *ContentHandler) ListVideos(ctx context.Context, input *requests.ListInput) (*VideosOutput, error) {
	videos := h.feeds.GetVideos(ctx, h.resolver.FeedURL(domain.KindVideo), false)
	return pageOf(videos, input), nil
}

// GetVideo handles GET /api/video/{id}
func (h *ContentHandler) GetVideo(ctx context.Context, input *requests.IDInput) (*VideoOutput, error) {
	url, err := h.configured(domain.KindVideo)
	if err != nil {
		return nil, toHumaError(err)
	}
	video, ok := feed.FindVideo(h.feeds.GetVideos(ctx, url, false), input.ID)
	if !ok {
		return nil, toHumaError(&coreerrors.NotFoundError{Resource: "video", ID: input.ID})
	}
	return &VideoOutput{Body: video}, nil
}

// ListPodcasts handles GET /api/podcasts
func (h *ContentHandler) ListPodcasts(ctx context.Context, input *requests.ListInput) (*PodcastsOutput, error) {
	episodes := h.feeds.GetPodcasts(ctx, h.resolver.FeedURL(domain.KindPodcast), false)
	return pageOf(episodes, input), nil
}

// GetPodcast handles GET /api/podcast/{id}
func (h *ContentHandler) GetPodcast(ctx context.Context, input *requests.IDInput) (*PodcastOutput, error) {
	url, err := h.configured(domain.KindPodcast)
	if err != nil {
		return nil, toHumaError(err)
	}
	episode, ok := feed.FindEpisode(h.feeds.GetPodcasts(ctx, url, false), input.ID)
	if !ok {
		return nil, toHumaError(&coreerrors.NotFoundError{Resource: "podcast episode", ID: input.ID})
	}
	return &PodcastOutput{Body: episode}, nil
}

// ListEvents handles GET /api/events
func (h *ContentHandler) ListEvents(ctx context.Context, input *requests.ListInput) (*EventsOutput, error) {
	events := h.feeds.GetEvents(ctx, h.resolver.FeedURL(domain.KindEvent), false)
	return pageOf(events, input), nil
}

// GetEvent handles GET /api/event/{slug}
func (h *ContentHandler) GetEvent(ctx context.Context, input *requests.SlugInput) (*EventOutput, error) {
	url, err := h.configured(domain.KindEvent)
	if err != nil {
		return nil, toHumaError(err)
	}
	event, ok := feed.FindEvent(h.feeds.GetEvents(ctx, url, false), input.Slug)
	if !ok {
		return nil, toHumaError(&coreerrors.NotFoundError{Resource: "event", ID: input.Slug})
	}
	return &EventOutput{Body: event}, nil
}

func (h *ContentHandler) configured(kind domain.FeedKind) (string, error) {
	url := h.resolver.FeedURL(kind)
	if url == "" {
		return "", &coreerrors.ConfigurationError{Setting: string(kind) + " feed"}
	}
	return url, nil
}

func pageOf[T any](items []T, input *requests.ListInput) *responses.Output[responses.PageBody[T]] {
	input.ApplyDefaults()
	return &responses.Output[responses.PageBody[T]]{
		Body: mappers.ToPageBody(feed.Paginate(items, input.Page, input.Limit)),
	}
}
