package ports

import "context"

// Snippet is one passage returned by a document search.
type Snippet struct {
	DocumentID string
	Text       string
}

// DocumentSearcher retrieves passages from an identity's uploaded documents.
// An empty slice with a nil error means nothing matched.
type DocumentSearcher interface {
	Search(ctx context.Context, identity, query string) ([]Snippet, error)
}
