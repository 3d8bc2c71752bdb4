// ABOUTME: Normalized item models produced by the feed parsers
// ABOUTME: Optional fields are pointers so an absent value is distinct from an empty one

package domain

// BlogPost is a single entry of a blog feed
type BlogPost struct {
	Title       string  `json:"title"`
	Link        string  `json:"link"`
	PubDate     string  `json:"pubDate"`
	Description string  `json:"description"`
	Slug        string  `json:"slug"`
	Content     string  `json:"content"`
	Image       *string `json:"image"`
}

// Video is a single entry of a video (Atom) feed. Slug always equals ID.
type Video struct {
	ID          string `json:"id"`
	Title       string `json:"title"`
	Published   string `json:"published"`
	Thumbnail   string `json:"thumbnail"`
	Description string `json:"description"`
	Content     string `json:"content"`
	Link        string `json:"link"`
	Slug        string `json:"slug"`
}

// PodcastEpisode is a single entry of a podcast feed
type PodcastEpisode struct {
	Title       string  `json:"title"`
	Slug        string  `json:"slug"`
	GUID        string  `json:"guid"`
	Link        string  `json:"link"`
	PubDate     string  `json:"pubDate"`
	Description string  `json:"description"`
	Content     string  `json:"content"`
	AudioURL    *string `json:"audioUrl"`
	Image       *string `json:"image"`
}

// Event is a single entry of an event feed. Description is the truncated
// summary; Content keeps the full cleaned body.
type Event struct {
	Title       string  `json:"title"`
	Link        string  `json:"link"`
	PubDate     string  `json:"pubDate"`
	Description string  `json:"description"`
	Slug        string  `json:"slug"`
	Content     string  `json:"content"`
	Image       *string `json:"image"`
	GUID        string  `json:"guid"`
	Location    *string `json:"location"`
	Fee         *string `json:"fee"`
	Contact     *string `json:"contact"`
	Type        string  `json:"type"`
}

// EventType is the constant discriminator carried by every Event
const EventType = "event"

// StringPtr returns a pointer to s, or nil when s is empty
func StringPtr(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}

// Deref returns the pointed-to string or "" for nil
func Deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
