// ABOUTME: Collaborator interfaces consumed by the feed core
// ABOUTME: Feed URLs come from configuration owned outside the core

package interfaces

import "stackpages-api/core/domain"

// FeedURLResolver maps a feed kind to its configured source URL.
// An empty string means the kind is not configured.
type FeedURLResolver interface {
	FeedURL(kind domain.FeedKind) string
}
