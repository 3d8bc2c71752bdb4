// ABOUTME: Pagination utilities for feed items
// ABOUTME: Provides functions to paginate feed items for API responses

package feed

// DefaultPageSize is used when a caller passes a non-positive limit
const DefaultPageSize = 10

// Page is one window over an item list
type Page[T any] struct {
	Items   []T
	Total   int
	Page    int
	Limit   int
	HasMore bool
}

// Paginate returns the page'th window of limit items. Page numbers start at 1;
// out-of-range pages yield an empty, non-nil item slice.
func Paginate[T any](items []T, page, limit int) Page[T] {
	// Handle invalid page
	if page < 1 {
		page = 1
	}

	// Handle invalid limit
	if limit < 1 {
		limit = DefaultPageSize
	}

	result := Page[T]{Items: []T{}, Total: len(items), Page: page, Limit: limit}

	// Compare page counts before multiplying so huge page numbers cannot overflow
	pages := len(items) / limit
	if len(items)%limit != 0 {
		pages++
	}
	if page > pages {
		return result
	}
	start := (page - 1) * limit

	end := start + limit
	if end > len(items) {
		end = len(items)
	}

	result.Items = items[start:end]
	result.HasMore = end < len(items)
	return result
}
