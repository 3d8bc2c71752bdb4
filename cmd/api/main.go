// ABOUTME: Main entry point for the StackPages API server
// ABOUTME: Wires together all components and starts the HTTP server

package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"stackpages-api/api"
	"stackpages-api/api/handlers"
	"stackpages-api/core/domain"
	"stackpages-api/core/feed"
	"stackpages-api/core/interfaces"
	"stackpages-api/infrastructure/cache"
	stdhttp "stackpages-api/infrastructure/http/standard"
	"stackpages-api/infrastructure/logger/structured"
	"stackpages-api/pkg/config"
)

func main() {
	// Load configuration (.env is optional)
	cfg, err := config.Load(".env")
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	if err := cfg.Validate(); err != nil {
		log.Fatalf("Invalid configuration: %v", err)
	}

	logger := structured.NewFromConfig(cfg.Log)
	logger.Info("Starting StackPages API", map[string]interface{}{
		"port":       cfg.Server.Port,
		"cache_type": cfg.Cache.Type,
		"cache_ttl":  cfg.Cache.TTL.String(),
	})

	for _, kind := range domain.AllKinds {
		if cfg.Feeds.FeedURL(kind) == "" {
			logger.Warn("Feed not configured", map[string]interface{}{
				"kind":    string(kind),
				"setting": cfg.Feeds.Setting(kind),
			})
		}
	}

	store := cache.New(cfg.Cache, logger)
	defer func() {
		if err := store.Close(); err != nil {
			logger.Error("Failed to close cache", map[string]interface{}{
				"backend": store.Backend,
				"error":   err.Error(),
			})
		}
	}()

	httpClient := stdhttp.NewStandardHTTPClient(cfg.Fetch.Timeout, stdhttp.WithRetries(cfg.Fetch.Retries))

	deps := interfaces.Dependencies{
		Cache:      store,
		HTTPClient: httpClient,
		Logger:     logger,
	}
	feedService := feed.NewFeedService(deps, feed.WithTTL(cfg.Cache.TTL))

	humaAPI, router := api.NewAPIWithMiddleware(api.APIConfig{
		Logger:     logger,
		RateLimit:  cfg.Server.RateLimit,
		RateWindow: cfg.Server.RateWindow,
	})

	handlers.NewContentHandler(feedService, cfg.Feeds).RegisterRoutes(humaAPI)
	handlers.NewCacheHandler(feedService, cfg.Feeds, logger).RegisterRoutes(humaAPI)

	srv := &http.Server{
		Addr:         ":" + cfg.Server.Port,
		Handler:      router,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: cfg.Fetch.Timeout + 15*time.Second,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		logger.Info("HTTP server starting", map[string]interface{}{
			"address": srv.Addr,
		})
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error("HTTP server error", map[string]interface{}{
				"error": err.Error(),
			})
			log.Fatalf("Server failed to start: %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("Shutting down server...", nil)

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		logger.Error("Server forced to shutdown", map[string]interface{}{
			"error": err.Error(),
		})
		return
	}

	logger.Info("Server stopped", nil)
}

func init() {
	fmt.Println(`
   _____ __             __   ____
  / ___// /_____ ______/ /__/ __ \____ _____ ____  _____
  \__ \/ __/ __ '/ ___/ //_/ /_/ / __ '/ __ '/ _ \/ ___/
 ___/ / /_/ /_/ / /__/ ,< / ____/ /_/ / /_/ /  __(__  )
/____/\__/\__,_/\___/_/|_/_/    \__,_/\__, /\___/____/
                                     /____/
	`)
}
