package orchestrator

import (
	"context"
	"log/slog"
	"time"

	"github.com/shlokkku/Ageis-AI/pkg/domain"
	"github.com/shlokkku/Ageis-AI/pkg/ports"
)

// maxDecisions bounds the run loop. The longest legal path is
// specialist -> visualizer -> summarizer, which needs three decisions;
// the budget leaves one spare so a violation surfaces as an error instead
// of an infinite loop.
const maxDecisions = 4

// Analyzer is a specialist stage as the engine sees it.
type Analyzer interface {
	Kind() domain.StageKind
	Analyze(ctx context.Context, s *domain.State) domain.StageResult
}

// Visualizer is the chart stage as the engine sees it.
type Visualizer interface {
	Visualize(s *domain.State) (*domain.Visualization, error)
}

// Summarizer is the terminal stage as the engine sees it.
type Summarizer interface {
	Summarize(s *domain.State) domain.Answer
}

// Engine owns the per-query control loop. It executes stages, feeds the
// orchestrator's decisions, and guarantees the summarizer terminates every
// run that does not abort on a protocol violation.
type Engine struct {
	orch       *Orchestrator
	analyzers  map[domain.StageKind]Analyzer
	visualizer Visualizer
	summarizer Summarizer
	general    ports.GeneralResponder
	hooks      domain.LifecycleHooks
	logger     *slog.Logger
}

// EngineOption configures the engine.
type EngineOption func(*Engine)

// WithLifecycleHooks registers observability hooks.
func WithLifecycleHooks(h domain.LifecycleHooks) EngineOption {
	return func(e *Engine) { e.hooks = h }
}

// WithLogger sets a structured logger.
func WithLogger(l *slog.Logger) EngineOption {
	return func(e *Engine) { e.logger = l }
}

// NewEngine wires the stages together.
func NewEngine(analyzers []Analyzer, viz Visualizer, sum Summarizer, general ports.GeneralResponder, opts ...EngineOption) *Engine {
	e := &Engine{
		analyzers:  make(map[domain.StageKind]Analyzer, len(analyzers)),
		visualizer: viz,
		summarizer: sum,
		general:    general,
		logger:     slog.Default(),
	}
	for _, a := range analyzers {
		e.analyzers[a.Kind()] = a
	}
	for _, opt := range opts {
		opt(e)
	}
	e.orch = New(e.logger)
	return e
}

// Run executes one query to its terminal answer. Cancellation is honored
// at stage boundaries only; a running stage always completes or degrades.
func (e *Engine) Run(ctx context.Context, q domain.Query) (*domain.Answer, error) {
	if err := q.Validate(); err != nil {
		return nil, err
	}

	if topic, blocked := BlockedTopic(q.Text); blocked {
		e.logger.Info("query refused by guardrail", "topic", topic, "identity", q.Identity)
		return &domain.Answer{
			Text: "I can't help with " + topic + ". I can answer questions about " +
				"your pension savings, risk profile, account activity, and retirement projections.",
			Provenance: domain.ProvenanceGeneralKnowledge,
		}, nil
	}

	s := domain.NewState(q)

	for step := 0; step < maxDecisions; step++ {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		decision, err := e.orch.DecideNext(s)
		if err != nil {
			return nil, err
		}
		e.emitDecision(ctx, q.Identity, decision, step)
		e.logger.Debug("routing decision", "step", step, "decision", decision)

		switch decision {
		case domain.RouteRisk, domain.RouteFraud, domain.RouteProjection:
			if err := e.runAnalyzer(ctx, s, domain.StageKind(decision)); err != nil {
				return nil, err
			}

		case domain.RouteGeneral:
			if err := e.runGeneral(ctx, s); err != nil {
				return nil, err
			}

		case domain.RouteVisualizer:
			if err := e.runVisualizer(ctx, s); err != nil {
				return nil, err
			}

		case domain.RouteSummarizer:
			ans := e.runSummarizer(ctx, s)
			return &ans, nil

		default:
			return nil, domain.NewProtocolViolation("engine", "unknown routing decision "+string(decision))
		}
	}

	return nil, domain.NewProtocolViolation("engine", "summarizer not reached within decision budget")
}

func (e *Engine) runAnalyzer(ctx context.Context, s *domain.State, kind domain.StageKind) error {
	a, ok := e.analyzers[kind]
	if !ok {
		return domain.NewProtocolViolation("engine", "no analyzer configured for "+string(kind))
	}

	e.emitStage(ctx, s, string(kind), domain.EventStageEnter)
	res := a.Analyze(ctx, s)
	e.emitStage(ctx, s, string(kind), domain.EventStageLeave)

	s.RecordVisit(string(kind))
	return s.AttachResult(res)
}

func (e *Engine) runGeneral(ctx context.Context, s *domain.State) error {
	e.emitStage(ctx, s, string(domain.KindGeneral), domain.EventStageEnter)
	text, err := e.general.Respond(ctx, s.Query.Text)
	e.emitStage(ctx, s, string(domain.KindGeneral), domain.EventStageLeave)
	if err != nil {
		e.logger.Warn("general responder failed", "err", err)
		text = ""
	}

	s.RecordVisit(string(domain.KindGeneral))
	return s.AttachResult(domain.StageResult{
		Kind:        domain.KindGeneral,
		Explanation: text,
		Source:      domain.SourceNone,
	})
}

func (e *Engine) runVisualizer(ctx context.Context, s *domain.State) error {
	e.emitStage(ctx, s, StageVisualizer, domain.EventStageEnter)
	v, err := e.visualizer.Visualize(s)
	e.emitStage(ctx, s, StageVisualizer, domain.EventStageLeave)
	if err != nil {
		return err
	}

	s.RecordVisit(StageVisualizer)
	if v == nil {
		// NotVisualizable recovers locally as "no chart".
		return nil
	}
	return s.AttachVisualization(v)
}

func (e *Engine) runSummarizer(ctx context.Context, s *domain.State) domain.Answer {
	e.emitStage(ctx, s, StageSummarizer, domain.EventStageEnter)
	ans := e.summarizer.Summarize(s)
	e.emitStage(ctx, s, StageSummarizer, domain.EventStageLeave)
	s.RecordVisit(StageSummarizer)
	ans.Trace = s.Trace
	return ans
}

func (e *Engine) emitStage(ctx context.Context, s *domain.State, stage string, typ domain.EventType) {
	var hook func(context.Context, *domain.StageEvent)
	switch typ {
	case domain.EventStageEnter:
		hook = e.hooks.OnStageEnter
	case domain.EventStageLeave:
		hook = e.hooks.OnStageLeave
	}
	if hook == nil {
		return
	}
	hook(ctx, &domain.StageEvent{
		EventBase: domain.EventBase{Timestamp: time.Now(), Type: typ, Identity: s.Query.Identity},
		Stage:     stage,
	})
}

func (e *Engine) emitDecision(ctx context.Context, identity string, decision domain.RoutingDecision, step int) {
	if e.hooks.OnRouteDecision == nil {
		return
	}
	e.hooks.OnRouteDecision(ctx, &domain.RouteEvent{
		EventBase: domain.EventBase{Timestamp: time.Now(), Type: domain.EventRouteDecision, Identity: identity},
		Decision:  decision,
		Step:      step,
	})
}
