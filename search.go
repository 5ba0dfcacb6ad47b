package querysum

import "context"

// MaxResults is the number of results read from the engine per query.
const MaxResults = 3

// SearchResult represents one ranked match reported by the search engine.
type SearchResult struct {
	Score      int    `json:"score"`
	DocumentID string `json:"documentId"`
	URL        string `json:"url"`
}

// Searcher runs queries against the search engine.
type Searcher interface {
	// Search sends a query and returns at most MaxResults results in the
	// order the engine ranked them.
	// Returns EUNAVAILABLE if the engine can no longer be reached.
	Search(ctx context.Context, query string) ([]SearchResult, error)

	// Close shuts the engine down gracefully.
	Close() error
}
