// ABOUTME: feedctl subcommands
// ABOUTME: Each command runs against an App holding the wired collaborators

package main

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"

	"stackpages-api/core/domain"
	"stackpages-api/core/feed"
	"stackpages-api/core/interfaces"
	"stackpages-api/core/parser"
)

// CLI is the feedctl command tree
type CLI struct {
	EnvFile  string `name:"env-file" default:".env" help:"Optional .env file loaded before the environment."`
	LogLevel string `name:"log-level" default:"warn" enum:"debug,info,warn,error" help:"Log level written to stderr."`

	Fetch  FetchCmd  `cmd:"" help:"Fetch a feed through the cache and print the normalized JSON."`
	Detect DetectCmd `cmd:"" help:"Download a feed and print its sniffed format."`
	Clear  ClearCmd  `cmd:"" help:"Delete cached feed entries."`
}

// App holds what the commands need
type App struct {
	Feeds    *feed.FeedService
	Client   interfaces.HTTPClient
	Resolver interfaces.FeedURLResolver
	Out      io.Writer
}

// FetchCmd prints a feed's parse result
type FetchCmd struct {
	Kind  string `required:"" enum:"blog,video,podcast,event" help:"Feed kind: blog, video, podcast or event."`
	Force bool   `help:"Bypass a fresh cache entry."`
	URL   string `arg:"" optional:"" help:"Feed URL. Defaults to the configured URL for the kind."`
}

// Run fetches the feed and writes indented JSON
func (c *FetchCmd) Run(app *App) error {
	kind, err := domain.ParseFeedKind(c.Kind)
	if err != nil {
		return err
	}

	url := c.URL
	if url == "" {
		url = app.Resolver.FeedURL(kind)
	}
	if url == "" {
		return fmt.Errorf("no URL given and no %s feed configured", kind)
	}

	result, err := app.Feeds.GetCached(context.Background(), kind, url, c.Force)
	if err != nil {
		return err
	}

	enc := json.NewEncoder(app.Out)
	enc.SetIndent("", "  ")
	return enc.Encode(result)
}

// DetectCmd prints the upstream document's format
type DetectCmd struct {
	URL string `arg:"" help:"Feed URL."`
}

// Run downloads the document without touching the cache
func (c *DetectCmd) Run(app *App) error {
	resp, err := app.Client.Get(context.Background(), c.URL)
	if err != nil {
		return err
	}
	body := resp.Body()
	defer body.Close()

	if resp.StatusCode() < 200 || resp.StatusCode() >= 300 {
		return fmt.Errorf("unexpected status %d from %s", resp.StatusCode(), c.URL)
	}

	data, err := io.ReadAll(io.LimitReader(body, 10<<20))
	if err != nil {
		return err
	}

	_, err = fmt.Fprintln(app.Out, parser.Detect(string(data)))
	return err
}

// ClearCmd deletes cache entries
type ClearCmd struct {
	URLs []string `arg:"" optional:"" name:"url" help:"Feed URLs to clear. Defaults to every configured feed."`
}

// Run invalidates the named URLs, or every configured one
func (c *ClearCmd) Run(app *App) error {
	ctx := context.Background()

	var (
		result feed.InvalidateResult
		err    error
	)
	if len(c.URLs) == 0 {
		result, err = app.Feeds.InvalidateConfigured(ctx, app.Resolver)
	} else {
		result, err = app.Feeds.Invalidate(ctx, c.URLs...)
	}

	for _, u := range result.Cleared {
		fmt.Fprintf(app.Out, "cleared %s\n", u)
	}
	fmt.Fprintf(app.Out, "%d entr%s deleted\n", result.Deleted, plural(result.Deleted, "y", "ies"))

	if err != nil {
		return errors.Join(errors.New("some entries could not be cleared"), err)
	}
	return nil
}

func plural(n int, one, many string) string {
	if n == 1 {
		return one
	}
	return many
}
