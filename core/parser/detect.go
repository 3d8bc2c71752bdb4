// ABOUTME: Feed format sniffing on top of gofeed's detector
// ABOUTME: Used to warn when an upstream serves an unexpected format

package parser

import (
	"strings"

	"github.com/mmcdole/gofeed"

	"stackpages-api/core/domain"
)

// Format is the syndication format a document looks like
type Format string

const (
	FormatUnknown Format = "unknown"
	FormatRSS     Format = "rss"
	FormatAtom    Format = "atom"
	FormatJSON    Format = "json"
)

// Detect sniffs the document's syndication format
func Detect(xml string) Format {
	switch gofeed.DetectFeedType(strings.NewReader(xml)) {
	case gofeed.FeedTypeRSS:
		return FormatRSS
	case gofeed.FeedTypeAtom:
		return FormatAtom
	case gofeed.FeedTypeJSON:
		return FormatJSON
	default:
		return FormatUnknown
	}
}

// ExpectedFormat is the format each feed kind's parser is written against
func ExpectedFormat(kind domain.FeedKind) Format {
	if kind == domain.KindVideo {
		return FormatAtom
	}
	return FormatRSS
}

// Parse dispatches the document to the parser for kind. The result has the
// kind's outward shape: domain.BlogFeed for blogs, a slice otherwise.
func Parse(kind domain.FeedKind, xml string) any {
	switch kind {
	case domain.KindBlog:
		return ParseBlog(xml)
	case domain.KindVideo:
		return ParseVideos(xml)
	case domain.KindPodcast:
		return ParsePodcasts(xml)
	case domain.KindEvent:
		return ParseEvents(xml)
	default:
		return nil
	}
}
