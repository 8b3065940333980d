package ageis

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/shlokkku/Ageis-AI/internal/analyzer"
	"github.com/shlokkku/Ageis-AI/internal/orchestrator"
	"github.com/shlokkku/Ageis-AI/internal/summarizer"
	"github.com/shlokkku/Ageis-AI/internal/visualizer"
	"github.com/shlokkku/Ageis-AI/pkg/adapters/rules"
	"github.com/shlokkku/Ageis-AI/pkg/domain"
	"github.com/shlokkku/Ageis-AI/pkg/ports"
)

// Pipeline is the high-level entry point for the Ageis library.
// It wraps the internal engine and provides a simplified API for consumers.
type Pipeline struct {
	engine *orchestrator.Engine

	records          ports.RecordAccessor
	documents        ports.DocumentSearcher
	classifier       ports.Classifier
	narrator         ports.Narrator
	general          ports.GeneralResponder
	hooks            domain.LifecycleHooks
	logger           *slog.Logger
	narrationTimeout time.Duration
}

// Option defines a functional option for configuring the Pipeline.
type Option func(*Pipeline)

// WithRecords injects the record accessor backing the specialists.
func WithRecords(r ports.RecordAccessor) Option {
	return func(p *Pipeline) {
		p.records = r
	}
}

// WithDocuments injects a document searcher, enabling the document branch
// of the projection specialist.
func WithDocuments(d ports.DocumentSearcher) Option {
	return func(p *Pipeline) {
		p.documents = d
	}
}

// WithClassifier overrides the default rule-based scorer.
func WithClassifier(c ports.Classifier) Option {
	return func(p *Pipeline) {
		p.classifier = c
	}
}

// WithNarrator overrides the default deterministic narrator.
func WithNarrator(n ports.Narrator) Option {
	return func(p *Pipeline) {
		p.narrator = n
	}
}

// WithGeneralResponder overrides the fallback responder for questions
// no specialist claims.
func WithGeneralResponder(g ports.GeneralResponder) Option {
	return func(p *Pipeline) {
		p.general = g
	}
}

// WithLifecycleHooks registers observability hooks.
func WithLifecycleHooks(hooks domain.LifecycleHooks) Option {
	return func(p *Pipeline) {
		p.hooks = hooks
	}
}

// WithLogger sets a custom structured logger for the pipeline.
func WithLogger(logger *slog.Logger) Option {
	return func(p *Pipeline) {
		p.logger = logger
	}
}

// WithNarrationTimeout bounds each narration call.
func WithNarrationTimeout(d time.Duration) Option {
	return func(p *Pipeline) {
		p.narrationTimeout = d
	}
}

// New initializes a new Ageis Pipeline.
// A record accessor is required; everything else falls back to the
// deterministic rule-based collaborators.
func New(records ports.RecordAccessor, opts ...Option) (*Pipeline, error) {
	if records == nil {
		return nil, fmt.Errorf("a record accessor is required")
	}

	p := &Pipeline{
		records:          records,
		classifier:       rules.NewClassifier(),
		narrator:         rules.NewNarrator(),
		general:          rules.NewResponder(),
		logger:           slog.Default(),
		narrationTimeout: analyzer.DefaultNarrationTimeout,
	}
	for _, opt := range opts {
		opt(p)
	}

	analyzerOpts := []analyzer.Option{
		analyzer.WithLogger(p.logger),
		analyzer.WithLifecycleHooks(p.hooks),
		analyzer.WithNarrationTimeout(p.narrationTimeout),
	}
	if p.documents != nil {
		analyzerOpts = append(analyzerOpts, analyzer.WithDocumentSearcher(p.documents))
	}

	analyzers := []orchestrator.Analyzer{
		analyzer.New(domain.KindRisk, p.records, p.classifier, p.narrator, analyzerOpts...),
		analyzer.New(domain.KindFraud, p.records, p.classifier, p.narrator, analyzerOpts...),
		analyzer.New(domain.KindProjection, p.records, p.classifier, p.narrator, analyzerOpts...),
	}

	p.engine = orchestrator.NewEngine(
		analyzers,
		visualizer.New(p.logger),
		summarizer.New(p.logger),
		p.general,
		orchestrator.WithLogger(p.logger),
		orchestrator.WithLifecycleHooks(p.hooks),
	)

	return p, nil
}

// Ask runs one query through the pipeline to a terminal answer.
func (p *Pipeline) Ask(ctx context.Context, q domain.Query) (*domain.Answer, error) {
	return p.engine.Run(ctx, q)
}
