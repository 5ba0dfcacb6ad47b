// Package fs provides a file-backed implementation of querysum.DocumentStore
// over the page directory written by the crawler.
package fs

import (
	"context"
	"errors"
	"os"

	"github.com/fwojciec/querysum"
)

// Ensure DocumentStore implements querysum.DocumentStore at compile time.
var _ querysum.DocumentStore = (*DocumentStore)(nil)

// DocumentStore reads pages from a directory of files named by document ID.
type DocumentStore struct {
	baseDir string
}

// NewDocumentStore creates a new DocumentStore.
// Paths are formed by appending the document ID to baseDir as-is, so
// baseDir normally ends with a path separator.
func NewDocumentStore(baseDir string) *DocumentStore {
	return &DocumentStore{baseDir: baseDir}
}

// Path returns the file path of a document.
func (s *DocumentStore) Path(id string) string {
	return s.baseDir + id
}

// ReadDocument returns the raw contents of the document file.
// The path is not checked up front: a missing file is reported as ENOTFOUND.
func (s *DocumentStore) ReadDocument(ctx context.Context, id string) (string, error) {
	path := s.Path(id)

	data, err := os.ReadFile(path)
	if errors.Is(err, os.ErrNotExist) {
		return "", querysum.Errorf(querysum.ENOTFOUND, "document %q not found at %s", id, path)
	} else if err != nil {
		return "", querysum.Errorf(querysum.EINTERNAL, "cannot read document %q: %v", id, err)
	}

	return string(data), nil
}
