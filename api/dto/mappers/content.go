// ABOUTME: Mappers for converting between core results and API DTOs
// ABOUTME: Keeps pagination and invalidation types out of the handler layer

package mappers

import (
	"fmt"

	"stackpages-api/api/dto/responses"
	"stackpages-api/core/feed"
)

// ToPageBody converts a core page to its response DTO
func ToPageBody[T any](p feed.Page[T]) responses.PageBody[T] {
	items := p.Items
	if items == nil {
		items = []T{}
	}
	return responses.PageBody[T]{
		Items:   items,
		Total:   p.Total,
		Page:    p.Page,
		Limit:   p.Limit,
		HasMore: p.HasMore,
	}
}

// ToClearCacheBody converts an invalidation result and its joined error
func ToClearCacheBody(result feed.InvalidateResult, err error) responses.ClearCacheBody {
	cleared := result.Cleared
	if cleared == nil {
		cleared = []string{}
	}

	body := responses.ClearCacheBody{
		Success:     err == nil,
		ClearedURLs: cleared,
		Deleted:     result.Deleted,
	}
	switch {
	case err != nil:
		body.Message = fmt.Sprintf("Cleared %d feed(s) with errors: %v", len(cleared), err)
	case len(cleared) == 0:
		body.Message = "No feeds configured"
	default:
		body.Message = fmt.Sprintf("Cache cleared for %d feed(s)", len(cleared))
	}
	return body
}
