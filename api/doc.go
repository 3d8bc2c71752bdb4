// Package api provides the HTTP API layer for StackPages.
// It uses the Huma framework to provide automatic OpenAPI documentation,
// request/response validation, and a clean handler interface.
//
// # Architecture
//
// The API package is structured as follows:
//
// - server.go: Huma API configuration and setup
// - handlers/: content and cache administration handlers
// - dto/: Data Transfer Objects for requests and responses
// - middleware/: request logging and per-client rate limiting
//
// # Routes
//
//	GET  /api/posts, /api/videos, /api/podcasts, /api/events   ?page=&limit=
//	GET  /api/post/{slug}, /api/video/{id}, /api/podcast/{id}, /api/event/{slug}
//	GET  /api/metadata
//	POST /api/clear-cache   (GET /api/force-clear-cache)
//
// The OpenAPI spec is served at /openapi.json and the docs UI at /docs.
//
// # Usage Example
//
//	humaAPI, router := api.NewAPIWithMiddleware(api.APIConfig{
//	    Logger:     logger,
//	    RateLimit:  100,
//	    RateWindow: time.Minute,
//	})
//
//	handlers.NewContentHandler(feedService, cfg.Feeds).RegisterRoutes(humaAPI)
//	handlers.NewCacheHandler(feedService, cfg.Feeds, logger).RegisterRoutes(humaAPI)
//
//	http.ListenAndServe(":8000", router)
//
// # Error Handling
//
// Errors use the RFC 7807 problem format. A feed that is not configured, and
// an item missing from a configured feed, both map to 404.
package api
