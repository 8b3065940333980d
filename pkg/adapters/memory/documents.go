package memory

import (
	"context"
	"strings"
	"sync"

	"github.com/shlokkku/Ageis-AI/pkg/ports"
)

type document struct {
	id   string
	text string
}

// DocumentIndex implements ports.DocumentSearcher with naive keyword
// matching over per-identity documents.
type DocumentIndex struct {
	mu   sync.RWMutex
	docs map[string][]document
}

// NewDocumentIndex creates an empty index.
func NewDocumentIndex() *DocumentIndex {
	return &DocumentIndex{
		docs: make(map[string][]document),
	}
}

// Add registers a document for an identity.
func (d *DocumentIndex) Add(identity, docID, text string) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.docs[identity] = append(d.docs[identity], document{id: docID, text: text})
}

// Search implements ports.DocumentSearcher. A document matches when it
// shares at least one meaningful word with the query.
func (d *DocumentIndex) Search(_ context.Context, identity, query string) ([]ports.Snippet, error) {
	d.mu.RLock()
	defer d.mu.RUnlock()

	words := meaningfulWords(query)
	var out []ports.Snippet
	for _, doc := range d.docs[identity] {
		lower := strings.ToLower(doc.text)
		for _, w := range words {
			if strings.Contains(lower, w) {
				out = append(out, ports.Snippet{DocumentID: doc.id, Text: doc.text})
				break
			}
		}
	}
	return out, nil
}

var stopwords = map[string]bool{
	"what": true, "does": true, "my": true, "the": true, "a": true,
	"an": true, "is": true, "are": true, "about": true, "say": true,
	"uploaded": true, "document": true, "pdf": true,
}

func meaningfulWords(query string) []string {
	var out []string
	for _, w := range strings.Fields(strings.ToLower(query)) {
		w = strings.Trim(w, "?.,!:;")
		if len(w) > 2 && !stopwords[w] {
			out = append(out, w)
		}
	}
	return out
}
