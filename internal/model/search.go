package model

// SearchResult is a single entry extracted from the search results page.
// Only Title is guaranteed non-empty; URL and Snippet may be blank.
type SearchResult struct {
	Title   string `json:"title"`
	URL     string `json:"url,omitempty"`
	Snippet string `json:"snippet,omitempty"`
}
