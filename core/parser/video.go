// ABOUTME: Video (YouTube Atom) parser with media:group extensions
// ABOUTME: Entries without a yt:videoId are dropped

package parser

import (
	"stackpages-api/core/domain"
	htmlutil "stackpages-api/pkg/utils/html"
)

// WatchURLPrefix builds the canonical watch link from a video id
const WatchURLPrefix = "https://www.youtube.com/watch?v="

// ParseVideos extracts every <entry> carrying a video id, newest first
func ParseVideos(xml string) []domain.Video {
	blocks := newDocument(xml).blocks("entry")
	videos := make([]domain.Video, 0, len(blocks))

	for _, block := range blocks {
		id := block.textOr("yt:videoId")
		if id == "" {
			continue
		}

		video := domain.Video{
			ID:        id,
			Slug:      id,
			Title:     block.textOr("title"),
			Published: block.textOr("published"),
			Link:      WatchURLPrefix + id,
		}

		if group, ok := block.inner("media:group"); ok {
			video.Thumbnail, _ = htmlutil.FindAttr(group.raw, "media:thumbnail", "url", nil)
			video.Description = group.textOr("media:description")
		}
		video.Content = video.Description

		videos = append(videos, video)
	}

	sortNewestFirst(videos, func(v domain.Video) string { return v.Published })
	return videos
}
