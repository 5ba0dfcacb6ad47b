package querysum

import "context"

// DocumentStore reads stored pages by the document ID the engine reports.
type DocumentStore interface {
	// ReadDocument returns the raw HTML of a document.
	// Returns ENOTFOUND if the document does not exist.
	ReadDocument(ctx context.Context, id string) (string, error)
}
