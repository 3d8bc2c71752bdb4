package feed

import "stackpages-api/core/domain"

// Find returns the first item satisfying match
func Find[T any](items []T, match func(T) bool) (T, bool) {
	for _, item := range items {
		if match(item) {
			return item, true
		}
	}
	var zero T
	return zero, false
}

// FindPost looks a blog post up by slug
func FindPost(posts []domain.BlogPost, slug string) (domain.BlogPost, bool) {
	return Find(posts, func(p domain.BlogPost) bool { return p.Slug == slug })
}

// FindVideo looks a video up by its platform id
func FindVideo(videos []domain.Video, id string) (domain.Video, bool) {
	return Find(videos, func(v domain.Video) bool { return v.ID == id })
}

// FindEpisode looks an episode up by guid, falling back to slug
func FindEpisode(episodes []domain.PodcastEpisode, id string) (domain.PodcastEpisode, bool) {
	if ep, ok := Find(episodes, func(e domain.PodcastEpisode) bool { return e.GUID != "" && e.GUID == id }); ok {
		return ep, true
	}
	return Find(episodes, func(e domain.PodcastEpisode) bool { return e.Slug == id })
}

// FindEvent looks an event up by slug
func FindEvent(events []domain.Event, slug string) (domain.Event, bool) {
	return Find(events, func(e domain.Event) bool { return e.Slug == slug })
}
