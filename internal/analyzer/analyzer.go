// Package analyzer implements the specialist analysis stage. One Analyzer
// instance serves one kind (risk, fraud or projection); all kinds share the
// same score-then-narrate shape and degradation ladder.
package analyzer

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/shlokkku/Ageis-AI/pkg/domain"
	"github.com/shlokkku/Ageis-AI/pkg/ports"
)

// DefaultNarrationTimeout bounds the narrator call. Narration is optional
// flavor; it must never stall the pipeline.
const DefaultNarrationTimeout = 3 * time.Second

// Analyzer produces a StageResult for its kind. It never returns an error:
// every failure mode degrades into the result itself.
type Analyzer struct {
	kind       domain.StageKind
	records    ports.RecordAccessor
	classifier ports.Classifier
	narrator   ports.Narrator
	docs       ports.DocumentSearcher
	timeout    time.Duration
	logger     *slog.Logger
	hooks      domain.LifecycleHooks
}

// Option configures an Analyzer.
type Option func(*Analyzer)

// WithDocumentSearcher enables the uploaded-document branch.
func WithDocumentSearcher(d ports.DocumentSearcher) Option {
	return func(a *Analyzer) { a.docs = d }
}

// WithNarrationTimeout overrides the narration deadline.
func WithNarrationTimeout(d time.Duration) Option {
	return func(a *Analyzer) { a.timeout = d }
}

// WithLogger sets a structured logger.
func WithLogger(l *slog.Logger) Option {
	return func(a *Analyzer) { a.logger = l }
}

// WithLifecycleHooks registers observability hooks for collaborator calls.
func WithLifecycleHooks(h domain.LifecycleHooks) Option {
	return func(a *Analyzer) { a.hooks = h }
}

// New creates an analyzer for the given kind.
func New(kind domain.StageKind, records ports.RecordAccessor, classifier ports.Classifier, narrator ports.Narrator, opts ...Option) *Analyzer {
	a := &Analyzer{
		kind:       kind,
		records:    records,
		classifier: classifier,
		narrator:   narrator,
		timeout:    DefaultNarrationTimeout,
		logger:     slog.Default(),
	}
	for _, opt := range opts {
		opt(a)
	}
	return a
}

// Kind returns the specialist kind this analyzer serves.
func (a *Analyzer) Kind() domain.StageKind {
	return a.kind
}

// Analyze runs scoring then narration against the query's own identity.
// The returned result encodes partial failure instead of raising it.
func (a *Analyzer) Analyze(ctx context.Context, s *domain.State) domain.StageResult {
	res := domain.StageResult{Kind: a.kind, Source: domain.SourceRecords}

	var snippets []ports.Snippet
	if a.docs != nil && referencesDocuments(s.Query.Text) {
		found, err := a.search(ctx, s.Query)
		if err != nil {
			a.logger.Warn("document search failed", "kind", a.kind, "err", err)
		}
		snippets = found
		res.Source = domain.SourceDocuments
		if len(snippets) == 0 {
			res.DataAvailable = false
			res.Source = domain.SourceNone
			a.logger.Info("no matching documents", "kind", a.kind, "identity", s.Query.Identity)
			return res
		}
	}

	rec, err := a.fetch(ctx, s.Query.Identity)
	if err != nil {
		if len(snippets) > 0 {
			// Document content alone can still carry the answer.
			res.DataAvailable = true
			res.Explanation = a.narrate(ctx, snippetPrompt(s.Query.Text, snippets))
			return res
		}
		if errors.Is(err, domain.ErrRecordNotFound) {
			a.logger.Info("record not found", "kind", a.kind, "identity", s.Query.Identity)
		} else {
			a.logger.Warn("record accessor unavailable", "kind", a.kind, "err", err)
		}
		res.DataAvailable = false
		res.Source = domain.SourceNone
		return res
	}

	res.DataAvailable = true

	features := featuresFor(a.kind, rec)
	score, err := a.score(ctx, features)
	if err != nil {
		a.logger.Warn("classifier failed, continuing without score", "kind", a.kind, "err", err)
	} else {
		res.Score = &score
	}

	a.attachPayload(&res, rec, s.Query.Text)

	prompt := buildPrompt(a.kind, res, rec)
	if len(snippets) > 0 {
		prompt = snippetPrompt(s.Query.Text, snippets) + "\n" + prompt
	}
	res.Explanation = a.narrate(ctx, prompt)

	return res
}

func (a *Analyzer) fetch(ctx context.Context, identity string) (*domain.Record, error) {
	a.emitCall("record_accessor")
	rec, err := a.records.Fetch(ctx, identity)
	a.emitReturn("record_accessor", err != nil)
	return rec, err
}

func (a *Analyzer) search(ctx context.Context, q domain.Query) ([]ports.Snippet, error) {
	a.emitCall("document_searcher")
	snippets, err := a.docs.Search(ctx, q.Identity, q.Text)
	a.emitReturn("document_searcher", err != nil)
	return snippets, err
}

func (a *Analyzer) score(ctx context.Context, features map[string]float64) (float64, error) {
	a.emitCall("classifier")
	score, err := a.classifier.Score(ctx, a.kind, features)
	a.emitReturn("classifier", err != nil)
	return score, err
}

// narrate calls the narrator under the configured deadline. A timeout or
// failure yields an empty explanation; the score already computed stands.
func (a *Analyzer) narrate(ctx context.Context, prompt string) string {
	nctx, cancel := context.WithTimeout(ctx, a.timeout)
	defer cancel()

	a.emitCall("narrator")
	text, err := a.narrator.Narrate(nctx, prompt)
	a.emitReturn("narrator", err != nil)
	if err != nil {
		a.logger.Warn("narration unavailable", "kind", a.kind, "err", err)
		return ""
	}
	return text
}

func (a *Analyzer) emitCall(collaborator string) {
	if a.hooks.OnCollaboratorCall != nil {
		a.hooks.OnCollaboratorCall(context.Background(), &domain.CollaboratorEvent{
			EventBase:    domain.EventBase{Timestamp: time.Now(), Type: domain.EventCollaboratorCall},
			Stage:        string(a.kind),
			Collaborator: collaborator,
		})
	}
}

func (a *Analyzer) emitReturn(collaborator string, isErr bool) {
	if a.hooks.OnCollaboratorReturn != nil {
		a.hooks.OnCollaboratorReturn(context.Background(), &domain.CollaboratorEvent{
			EventBase:    domain.EventBase{Timestamp: time.Now(), Type: domain.EventCollaboratorReturn},
			Stage:        string(a.kind),
			Collaborator: collaborator,
			IsError:      isErr,
		})
	}
}
