// ABOUTME: Response DTOs for the content API endpoints
// ABOUTME: Paginated lists, single items and cache-clear reports

package responses

// PageBody is one page of normalized feed items
type PageBody[T any] struct {
	Items   []T  `json:"items" doc:"Items on this page, newest first"`
	Total   int  `json:"total" doc:"Total number of items in the feed"`
	Page    int  `json:"page" doc:"Current page number"`
	Limit   int  `json:"limit" doc:"Items per page"`
	HasMore bool `json:"hasMore" doc:"Whether a later page has items"`
}

// Output wraps any body for a Huma handler
type Output[T any] struct {
	Body T
}

// ClearCacheBody reports a cache invalidation pass
type ClearCacheBody struct {
	Success     bool     `json:"success" doc:"Whether every delete succeeded"`
	Message     string   `json:"message" doc:"Human-readable summary"`
	ClearedURLs []string `json:"clearedUrls" doc:"Feed URLs whose entries were cleared"`
	Deleted     int      `json:"deleted" doc:"Number of entries that existed and were removed"`
}
