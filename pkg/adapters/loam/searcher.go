// Package loam implements the document searcher over a Loam markdown
// repository. Uploaded plan documents live as markdown files with YAML
// frontmatter naming their owner.
package loam

import (
	"context"
	"fmt"
	"path/filepath"
	"sort"
	"strings"
	"unicode/utf8"

	"github.com/aretw0/loam"
	"github.com/shlokkku/Ageis-AI/pkg/ports"
)

// DocMetadata is the frontmatter of one uploaded document.
type DocMetadata struct {
	ID    string   `json:"id" mapstructure:"id"`
	Owner string   `json:"owner" mapstructure:"owner"`
	Title string   `json:"title" mapstructure:"title"`
	Tags  []string `json:"tags" mapstructure:"tags"`
}

// Searcher adapts a Loam repository to the DocumentSearcher port.
type Searcher struct {
	repo       *loam.TypedRepository[DocMetadata]
	maxResults int
}

// Option configures a Searcher.
type Option func(*Searcher)

// WithMaxResults caps how many snippets a search returns.
func WithMaxResults(n int) Option {
	return func(s *Searcher) { s.maxResults = n }
}

// New creates a Searcher over an existing typed repository.
func New(repo *loam.TypedRepository[DocMetadata], opts ...Option) *Searcher {
	s := &Searcher{
		repo:       repo,
		maxResults: 3,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Open initializes a Loam repository at path and wraps it in a Searcher.
// The repository is opened strict and read-only; searching never mutates
// the document store.
func Open(path string, opts ...Option) (*Searcher, error) {
	absPath, err := filepath.Abs(path)
	if err != nil {
		return nil, fmt.Errorf("invalid path: %w", err)
	}

	repo, err := loam.Init(absPath,
		loam.WithStrict(true),
		loam.WithReadOnly(true),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize loam: %w", err)
	}

	return New(loam.NewTypedRepository[DocMetadata](repo), opts...), nil
}

type scoredSnippet struct {
	snippet ports.Snippet
	score   int
}

// Search implements ports.DocumentSearcher. A document is visible to its
// owner and to everyone when it names no owner. Ranking is plain keyword
// overlap; ties break on document ID for deterministic output.
func (s *Searcher) Search(ctx context.Context, identity, query string) ([]ports.Snippet, error) {
	docs, err := s.repo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("loam list failed: %w", err)
	}

	words := queryWords(query)
	var matches []scoredSnippet
	for _, doc := range docs {
		if doc.Data.Owner != "" && doc.Data.Owner != identity {
			continue
		}
		score := overlap(doc.Content, words)
		if score == 0 {
			continue
		}
		matches = append(matches, scoredSnippet{
			snippet: ports.Snippet{
				DocumentID: doc.ID,
				Text:       excerpt(doc.Content, words),
			},
			score: score,
		})
	}

	sort.Slice(matches, func(i, j int) bool {
		if matches[i].score != matches[j].score {
			return matches[i].score > matches[j].score
		}
		return matches[i].snippet.DocumentID < matches[j].snippet.DocumentID
	})

	if len(matches) > s.maxResults {
		matches = matches[:s.maxResults]
	}
	out := make([]ports.Snippet, 0, len(matches))
	for _, m := range matches {
		out = append(out, m.snippet)
	}
	return out, nil
}

var queryStopwords = map[string]bool{
	"what": true, "does": true, "the": true, "about": true, "say": true,
	"are": true, "can": true, "how": true, "uploaded": true, "document": true,
	"pdf": true,
}

func queryWords(query string) []string {
	var out []string
	for _, w := range strings.Fields(strings.ToLower(query)) {
		w = strings.Trim(w, "?.,!:;")
		if len(w) > 2 && !queryStopwords[w] {
			out = append(out, w)
		}
	}
	return out
}

func overlap(content string, words []string) int {
	lower := strings.ToLower(content)
	score := 0
	for _, w := range words {
		if strings.Contains(lower, w) {
			score++
		}
	}
	return score
}

// excerpt returns the first paragraph containing a query word, falling
// back to the document head.
func excerpt(content string, words []string) string {
	paragraphs := strings.Split(content, "\n\n")
	for _, p := range paragraphs {
		lower := strings.ToLower(p)
		for _, w := range words {
			if strings.Contains(lower, w) {
				return truncate(strings.TrimSpace(p), 400)
			}
		}
	}
	return truncate(strings.TrimSpace(content), 400)
}

// truncate cuts at a rune boundary so multi-byte text never yields an
// invalid snippet.
func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	for n > 0 && !utf8.RuneStart(s[n]) {
		n--
	}
	return s[:n] + "…"
}
