// ABOUTME: Request DTOs for the content API endpoints
// ABOUTME: Query and path parameters with validation tags and defaults

package requests

// DefaultLimit is the page size used when limit is omitted
const DefaultLimit = 10

// MaxLimit caps the page size a client can request
const MaxLimit = 100

// ListInput selects one page of a feed's items
type ListInput struct {
	// Page is the page number for pagination (1-based)
	Page int `query:"page" minimum:"1" default:"1" doc:"Page number (1-based)"`

	// Limit is the number of items per page
	Limit int `query:"limit" minimum:"1" maximum:"100" default:"10" doc:"Number of items per page"`
}

// ApplyDefaults sets default values for omitted fields
func (r *ListInput) ApplyDefaults() {
	if r.Page < 1 {
		r.Page = 1
	}
	if r.Limit < 1 {
		r.Limit = DefaultLimit
	}
	if r.Limit > MaxLimit {
		r.Limit = MaxLimit
	}
}

// SlugInput addresses a post or event by slug
type SlugInput struct {
	Slug string `path:"slug" minLength:"1" doc:"Item slug"`
}

// IDInput addresses a video by id, or a podcast episode by guid or slug
type IDInput struct {
	ID string `path:"id" minLength:"1" doc:"Item identifier"`
}
