// Package core contains the business logic for the StackPages API.
// It is designed to be framework-agnostic and can be used independently
// of any web framework or infrastructure concerns.
//
// The core package is organized into several sub-packages:
//
// - domain: Normalized item models (BlogPost, Video, PodcastEpisode, Event)
// - parser: Tolerant parsers turning feed documents into domain items
// - feed: The feed cache: fetch, parse, store and invalidate per URL
// - errors: Custom error types for better error handling
// - interfaces: Contracts for external dependencies (cache, HTTP, logger)
//
// # Design Principles
//
// The core package follows clean architecture principles:
// - No web framework dependencies
// - All external dependencies are injected via interfaces
// - Business logic is testable in isolation
// - Parsers never fail; malformed input yields fewer items
//
// # Usage Example
//
//	import (
//	    "stackpages-api/core/feed"
//	    "stackpages-api/core/interfaces"
//	)
//
//	deps := interfaces.Dependencies{
//	    Cache:      myCache,      // implements interfaces.Cache
//	    HTTPClient: myHTTPClient, // implements interfaces.HTTPClient
//	    Logger:     myLogger,     // implements interfaces.Logger
//	}
//
//	feedService := feed.NewFeedService(deps, feed.WithTTL(3*time.Minute))
//
//	blog := feedService.GetBlog(ctx, "https://example.substack.com/feed", false)
//	videos := feedService.GetVideos(ctx, youtubeFeedURL, false)
package core
