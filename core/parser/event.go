// ABOUTME: Event (Meetup-style RSS) parser
// ABOUTME: Pulls location, fee and contact out of the free-text description

package parser

import (
	"regexp"
	"strings"

	"stackpages-api/core/domain"
	htmlutil "stackpages-api/pkg/utils/html"
	"stackpages-api/pkg/utils/text"
)

// SummaryLength is the rune count the outward event description is cut to
const SummaryLength = 300

var (
	locationPattern = regexp.MustCompile(`(?i)(?:📍\s*(?:Lieu|Location)?|\bLieu|\bLocation)[:\s]+(?:<strong>)?([^<\n]+)`)
	feePattern      = regexp.MustCompile(`(?i)(?:💶\s*(?:Prix|Fee)?|\bPrix|\bFee)[:\s]+(?:<strong>)?([^<\n]+)`)
	contactPattern  = regexp.MustCompile(`(?i)(?:📱\s*(?:Contact)?|\bContact)[:\s]+(?:<strong>)?([^<\n]+)`)
)

// ParseEvents extracts every <item> of an event feed, newest first
func ParseEvents(xml string) []domain.Event {
	blocks := newDocument(xml).blocks("item")
	events := make([]domain.Event, 0, len(blocks))

	for _, block := range blocks {
		description := block.textOr("description")
		content := htmlutil.CleanContent(description)

		ev := domain.Event{
			Title:       block.textOr("title"),
			Link:        block.textOr("link"),
			GUID:        block.textOr("guid"),
			PubDate:     block.textOr("pubDate"),
			Description: text.Truncate(content, SummaryLength),
			Content:     content,
			Location:    domain.StringPtr(firstGroup(locationPattern, description)),
			Fee:         domain.StringPtr(firstGroup(feePattern, description)),
			Contact:     domain.StringPtr(firstGroup(contactPattern, description)),
			Type:        domain.EventType,
		}
		if ev.GUID == "" {
			ev.GUID = ev.Link
		}

		image, ok := htmlutil.ExtractEnclosureImage(block.raw)
		if !ok {
			image, _ = htmlutil.ExtractFirstImage(description)
		}
		ev.Image = domain.StringPtr(image)

		ev.Slug = text.FirstSlug(ev.Title, ev.GUID)
		if ev.Slug == "" {
			ev.Slug = "event-" + block.fingerprint()
		}

		events = append(events, ev)
	}

	sortNewestFirst(events, func(e domain.Event) string { return e.PubDate })
	return events
}

func firstGroup(re *regexp.Regexp, s string) string {
	m := re.FindStringSubmatch(s)
	if m == nil {
		return ""
	}
	return strings.TrimSpace(m[1])
}
