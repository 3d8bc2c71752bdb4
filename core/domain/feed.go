// ABOUTME: Feed kinds and channel-level metadata for syndication feeds
// ABOUTME: A feed kind selects which parser and item shape a feed URL maps to

package domain

import "fmt"

// FeedKind identifies the syndication format a feed URL is parsed as
type FeedKind string

const (
	// KindBlog is an RSS 2.0 blog feed with content:encoded bodies
	KindBlog FeedKind = "blog"

	// KindVideo is a YouTube-style Atom feed with media:group extensions
	KindVideo FeedKind = "video"

	// KindPodcast is a podcast RSS feed with audio enclosures
	KindPodcast FeedKind = "podcast"

	// KindEvent is a Meetup-style event RSS feed
	KindEvent FeedKind = "event"
)

// AllKinds lists every supported feed kind in a stable order
var AllKinds = []FeedKind{KindBlog, KindVideo, KindPodcast, KindEvent}

// Valid reports whether k is one of the supported kinds
func (k FeedKind) Valid() bool {
	switch k {
	case KindBlog, KindVideo, KindPodcast, KindEvent:
		return true
	}
	return false
}

// ParseFeedKind converts a selector string into a FeedKind
func ParseFeedKind(s string) (FeedKind, error) {
	k := FeedKind(s)
	if !k.Valid() {
		return "", fmt.Errorf("unknown feed kind %q", s)
	}
	return k, nil
}

// ChannelMetadata is decoded once per blog feed document, independent of items
type ChannelMetadata struct {
	BlogTitle       string `json:"blogTitle,omitempty"`
	BlogURL         string `json:"blogUrl,omitempty"`
	LastBuildDate   string `json:"lastBuildDate,omitempty"`
	BlogDescription string `json:"blogDescription,omitempty"`
}

// BlogFeed is the parse result of a blog feed: channel metadata plus posts
type BlogFeed struct {
	Metadata ChannelMetadata `json:"metadata"`
	Posts    []BlogPost      `json:"posts"`
}

// EmptyBlogFeed is the degraded result returned when a blog feed is
// unconfigured or cannot be fetched
func EmptyBlogFeed() BlogFeed {
	return BlogFeed{Posts: []BlogPost{}}
}
