package parser

import (
	"slices"

	timeutil "stackpages-api/pkg/utils/time"
)

// sortNewestFirst orders items by descending publication date. Items whose
// date cannot be parsed go last, keeping their document order.
func sortNewestFirst[T any](items []T, date func(T) string) {
	slices.SortStableFunc(items, func(a, b T) int {
		return timeutil.NewestFirst(date(a), date(b))
	})
}
