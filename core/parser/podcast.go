// ABOUTME: Podcast RSS parser with audio enclosure discovery
// ABOUTME: Falls back to a typed audio <link> when no enclosure is present

package parser

import (
	"stackpages-api/core/domain"
	htmlutil "stackpages-api/pkg/utils/html"
	"stackpages-api/pkg/utils/text"
)

const (
	// UntitledEpisode replaces a missing <title>
	UntitledEpisode = "Sans titre"

	// MissingLink replaces a missing <link>
	MissingLink = "#"
)

// ParsePodcasts extracts every <item> of a podcast feed, newest first
func ParsePodcasts(xml string) []domain.PodcastEpisode {
	blocks := newDocument(xml).blocks("item")
	episodes := make([]domain.PodcastEpisode, 0, len(blocks))

	for _, block := range blocks {
		ep := domain.PodcastEpisode{
			Title:       UntitledEpisode,
			Link:        MissingLink,
			GUID:        block.textOr("guid"),
			PubDate:     block.textOr("pubDate"),
			Description: block.textOr("description"),
		}
		if title, ok := block.text("title"); ok {
			ep.Title = title
		}
		if link := block.textOr("link"); link != "" {
			ep.Link = link
		}
		ep.Content = ep.Description
		ep.AudioURL = domain.StringPtr(audioURL(block.raw))
		ep.Image = domain.StringPtr(episodeImage(block.raw, ep.Description))

		ep.Slug = text.FirstSlug(ep.Title, ep.GUID)
		if ep.Slug == "" {
			ep.Slug = "episode-" + block.fingerprint()
		}

		episodes = append(episodes, ep)
	}

	sortNewestFirst(episodes, func(e domain.PodcastEpisode) string { return e.PubDate })
	return episodes
}

// audioURL prefers a non-image <enclosure>, then a <link> typed audio/*
func audioURL(block string) string {
	notImage := func(a htmlutil.Attrs) bool { return !htmlutil.TypePrefix("image/")(a) }
	if u, ok := htmlutil.FindAttr(block, "enclosure", "url", notImage); ok {
		return u
	}
	if u, ok := htmlutil.FindAttr(block, "link", "href", htmlutil.TypePrefix("audio/")); ok {
		return u
	}
	return ""
}

func episodeImage(block, description string) string {
	if u, ok := htmlutil.ExtractEnclosureImage(block); ok {
		return u
	}
	if u, ok := htmlutil.FindAttr(block, "itunes:image", "href", nil); ok {
		return u
	}
	u, _ := htmlutil.ExtractFirstImage(description)
	return u
}
