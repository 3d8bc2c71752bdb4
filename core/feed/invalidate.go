// ABOUTME: Cache invalidation for feed entries
// ABOUTME: Deletes per-URL entries and reports which ones actually existed

package feed

import (
	"context"
	"errors"

	"stackpages-api/core/domain"
	coreerrors "stackpages-api/core/errors"
	"stackpages-api/core/interfaces"
)

// InvalidateResult describes one invalidation pass
type InvalidateResult struct {
	// Cleared lists every URL a delete was issued for, in request order
	Cleared []string
	// Deleted counts the entries that existed and were removed
	Deleted int
}

// Invalidate removes the cache entries of urls. Empty and repeated URLs are
// skipped. Every URL is attempted even when one delete fails; the failures
// are joined into the returned error.
func (s *FeedService) Invalidate(ctx context.Context, urls ...string) (InvalidateResult, error) {
	result := InvalidateResult{Cleared: []string{}}
	if s.deps.Cache == nil {
		return result, nil
	}

	seen := make(map[string]bool, len(urls))
	var errs []error
	for _, u := range urls {
		if u == "" || seen[u] {
			continue
		}
		seen[u] = true

		existed, err := s.deps.Cache.Delete(ctx, CacheKey(u))
		if err != nil {
			s.logger().Error("Failed to invalidate cache entry", map[string]interface{}{
				"url":   u,
				"error": err.Error(),
			})
			errs = append(errs, coreerrors.WrapError(err, u))
			continue
		}
		result.Cleared = append(result.Cleared, u)
		if existed {
			result.Deleted++
		}
	}

	s.logger().Info("Invalidated feed cache", map[string]interface{}{
		"cleared": len(result.Cleared),
		"deleted": result.Deleted,
	})
	return result, errors.Join(errs...)
}

// InvalidateConfigured removes the entries of every feed resolver knows about
func (s *FeedService) InvalidateConfigured(ctx context.Context, resolver interfaces.FeedURLResolver) (InvalidateResult, error) {
	urls := make([]string, 0, len(domain.AllKinds))
	for _, kind := range domain.AllKinds {
		urls = append(urls, resolver.FeedURL(kind))
	}
	return s.Invalidate(ctx, urls...)
}
