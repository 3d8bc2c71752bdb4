// ABOUTME: Operations CLI for the feed cache
// ABOUTME: Fetches, sniffs and invalidates feeds against the configured substrate

package main

import (
	"os"

	"github.com/alecthomas/kong"

	"stackpages-api/core/feed"
	"stackpages-api/core/interfaces"
	"stackpages-api/infrastructure/cache"
	stdhttp "stackpages-api/infrastructure/http/standard"
	"stackpages-api/infrastructure/logger/structured"
	"stackpages-api/pkg/config"
)

func main() {
	var cli CLI
	kctx := kong.Parse(&cli,
		kong.Name("feedctl"),
		kong.Description("Inspect and maintain the StackPages feed cache."),
		kong.UsageOnError(),
	)

	cfg, err := config.Load(cli.EnvFile)
	kctx.FatalIfErrorf(err)
	kctx.FatalIfErrorf(cfg.Validate())

	// Logs go to stderr so command output stays pipeable
	logger := structured.New(structured.Options{
		Level:  cli.LogLevel,
		Format: "text",
		Output: os.Stderr,
	})

	store := cache.New(cfg.Cache, logger)
	defer store.Close()

	client := stdhttp.NewStandardHTTPClient(cfg.Fetch.Timeout, stdhttp.WithRetries(cfg.Fetch.Retries))
	deps := interfaces.Dependencies{Cache: store, HTTPClient: client, Logger: logger}

	app := &App{
		Feeds:    feed.NewFeedService(deps, feed.WithTTL(cfg.Cache.TTL)),
		Client:   client,
		Resolver: cfg.Feeds,
		Out:      os.Stdout,
	}
	kctx.FatalIfErrorf(kctx.Run(app))
}
