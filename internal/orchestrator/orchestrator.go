// Package orchestrator is the single decision authority of the pipeline.
// Stages never talk to each other; every hop between them is a routing
// decision computed here from the execution state alone.
package orchestrator

import (
	"log/slog"

	"github.com/shlokkku/Ageis-AI/pkg/domain"
)

// Stage names as they appear in the execution trace.
const (
	StageVisualizer = "visualizer"
	StageSummarizer = "summarizer"
)

// Orchestrator computes routing decisions. It carries no per-query state;
// everything it needs lives in the State it is handed.
type Orchestrator struct {
	logger *slog.Logger
}

// New creates an orchestrator.
func New(logger *slog.Logger) *Orchestrator {
	if logger == nil {
		logger = slog.Default()
	}
	return &Orchestrator{logger: logger}
}

// DecideNext is a pure function of the execution state. The decision
// sequence for any query is: Phase A picks one specialist (or the general
// fallback), Phase B picks visualize-or-summarize, Phase C always
// summarizes. Any state shape outside those phases is a protocol violation.
func (o *Orchestrator) DecideNext(s *domain.State) (domain.RoutingDecision, error) {
	if s.Visited(StageSummarizer) {
		return "", domain.NewProtocolViolation("orchestrator", "decision requested after terminal stage")
	}

	// Phase C: a visualization attempt happened, charted or not.
	if s.VisualizerRan {
		return domain.RouteSummarizer, nil
	}

	// Phase B: exactly one specialist has reported.
	if res := s.PrimaryResult(); res != nil {
		return o.decideAfterAnalysis(s, res), nil
	}

	// Phase A: fresh state, classify intent.
	route, ok := classifyIntent(s.Query.Text)
	if !ok {
		// Fixed fallback, never a guess between specialists.
		o.logger.Info("no intent matched, using general responder", "identity", s.Query.Identity)
		return domain.RouteGeneral, nil
	}
	if s.Visited(string(route)) {
		return "", domain.NewProtocolViolation("orchestrator", "re-entry into visited specialist "+string(route))
	}
	return route, nil
}

func (o *Orchestrator) decideAfterAnalysis(s *domain.State, res *domain.StageResult) domain.RoutingDecision {
	// The general responder's output is never charted.
	if res.Kind == domain.KindGeneral {
		return domain.RouteSummarizer
	}
	// Degraded data cannot be charted either; no retries, no loops.
	if !res.DataAvailable {
		o.logger.Info("skipping visualization, stage had no data", "kind", res.Kind)
		return domain.RouteSummarizer
	}
	if wantsVisualization(s.Query.Text, res.Kind) {
		return domain.RouteVisualizer
	}
	return domain.RouteSummarizer
}

// BlockedTopic exposes the guardrail check to the run loop.
func BlockedTopic(text string) (string, bool) {
	return blockedTopic(text)
}
