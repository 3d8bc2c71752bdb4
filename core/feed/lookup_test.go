package feed

import (
	"testing"

	"stackpages-api/core/domain"
)

func TestFindEpisode_GUIDThenSlug(t *testing.T) {
	episodes := []domain.PodcastEpisode{
		{GUID: "", Slug: "pilot"},
		{GUID: "pilot", Slug: "second"},
	}

	ep, ok := FindEpisode(episodes, "pilot")
	if !ok || ep.Slug != "second" {
		t.Errorf("guid match should win, got %+v", ep)
	}

	ep, ok = FindEpisode(episodes, "second")
	if !ok || ep.GUID != "pilot" {
		t.Errorf("slug fallback failed, got %+v", ep)
	}

	if _, ok := FindEpisode(episodes, "missing"); ok {
		t.Error("missing id should not be found")
	}
}

func TestFindByRoutingID(t *testing.T) {
	if _, ok := FindPost([]domain.BlogPost{{Slug: "a"}}, "a"); !ok {
		t.Error("FindPost")
	}
	if _, ok := FindVideo([]domain.Video{{ID: "v1", Slug: "v1"}}, "v1"); !ok {
		t.Error("FindVideo")
	}
	if _, ok := FindEvent([]domain.Event{{Slug: "go-night"}}, "go-night"); !ok {
		t.Error("FindEvent")
	}
	if _, ok := FindEvent(nil, "x"); ok {
		t.Error("FindEvent on nil slice")
	}
}
