// ABOUTME: Blog (RSS 2.0) parser with content:encoded support
// ABOUTME: Produces channel metadata plus posts sorted newest first

package parser

import (
	"stackpages-api/core/domain"
	htmlutil "stackpages-api/pkg/utils/html"
	"stackpages-api/pkg/utils/text"
)

// ParseChannelMetadata decodes title, link, lastBuildDate and description
// from inside <channel>, ignoring anything that belongs to an <item>.
func ParseChannelMetadata(xml string) domain.ChannelMetadata {
	channel, ok := newDocument(xml).inner("channel")
	if !ok {
		return domain.ChannelMetadata{}
	}
	header := channel.without("item")

	return domain.ChannelMetadata{
		BlogTitle:       header.textOr("title"),
		BlogURL:         header.textOr("link"),
		LastBuildDate:   header.textOr("lastBuildDate"),
		BlogDescription: header.textOr("description"),
	}
}

// ParseBlogPosts extracts every <item> of an RSS document. Missing tags yield
// empty fields; no item is ever dropped.
func ParseBlogPosts(xml string) []domain.BlogPost {
	blocks := newDocument(xml).blocks("item")
	posts := make([]domain.BlogPost, 0, len(blocks))

	for _, block := range blocks {
		post := domain.BlogPost{
			Title:       block.textOr("title"),
			Link:        block.textOr("link"),
			PubDate:     block.textOr("pubDate"),
			Description: block.textOr("description"),
		}

		if encoded, ok := block.text("content:encoded"); ok {
			post.Content = htmlutil.CleanContent(encoded)
		} else {
			post.Content = post.Description
		}

		image, ok := htmlutil.ExtractEnclosureImage(block.raw)
		if !ok {
			image, _ = htmlutil.ExtractFirstImage(post.Content)
		}
		post.Image = domain.StringPtr(image)

		post.Slug = text.FirstSlug(post.Title, post.Link)
		if post.Slug == "" {
			post.Slug = "post-" + block.fingerprint()
		}

		posts = append(posts, post)
	}

	sortNewestFirst(posts, func(p domain.BlogPost) string { return p.PubDate })
	return posts
}

// ParseBlog parses a complete blog feed document
func ParseBlog(xml string) domain.BlogFeed {
	return domain.BlogFeed{
		Metadata: ParseChannelMetadata(xml),
		Posts:    ParseBlogPosts(xml),
	}
}
