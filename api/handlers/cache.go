// ABOUTME: Cache administration handlers for the Huma API
// ABOUTME: Clears the cached entry of every configured feed

package handlers

import (
	"context"
	"net/http"

	"stackpages-api/api/dto/mappers"
	"stackpages-api/api/dto/responses"
	"stackpages-api/core/interfaces"

	"github.com/danielgtaylor/huma/v2"
)

// CacheHandler handles cache administration requests
type CacheHandler struct {
	feeds    FeedService
	resolver interfaces.FeedURLResolver
	logger   interfaces.Logger
}

// NewCacheHandler creates a new cache handler
func NewCacheHandler(feeds FeedService, resolver interfaces.FeedURLResolver, logger interfaces.Logger) *CacheHandler {
	return &CacheHandler{feeds: feeds, resolver: resolver, logger: logger}
}

// ClearCacheOutput reports the invalidation; Status is 500 when any delete failed
type ClearCacheOutput struct {
	Status int
	Body   responses.ClearCacheBody
}

// RegisterRoutes registers cache routes
func (h *CacheHandler) RegisterRoutes(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "clearCache",
		Method:      http.MethodPost,
		Path:        "/api/clear-cache",
		Summary:     "Clear cached feeds",
		Description: "Deletes the cached entry of every configured feed URL",
		Tags:        []string{"Cache"},
	}, h.ClearCache)

	huma.Register(api, huma.Operation{
		OperationID: "forceClearCache",
		Method:      http.MethodGet,
		Path:        "/api/force-clear-cache",
		Summary:     "Clear cached feeds (GET alias)",
		Tags:        []string{"Cache"},
	}, h.ClearCache)
}

// ClearCache handles POST /api/clear-cache and GET /api/force-clear-cache
func (h *CacheHandler) ClearCache(ctx context.Context, _ *struct{}) (*ClearCacheOutput, error) {
	result, err := h.feeds.InvalidateConfigured(ctx, h.resolver)

	out := &ClearCacheOutput{Status: http.StatusOK, Body: mappers.ToClearCacheBody(result, err)}
	if err != nil {
		out.Status = http.StatusInternalServerError
		if h.logger != nil {
			h.logger.Error("Cache clear failed", map[string]interface{}{
				"cleared": len(result.Cleared),
				"error":   err.Error(),
			})
		}
	}
	return out, nil
}
