package domain

// State is the per-query execution aggregate. Exactly one stage owns it at
// any moment; it is never persisted and discarded once the answer exists.
type State struct {
	// Query is the immutable input that started the run.
	Query Query

	// Results holds at most one contribution per specialist kind.
	Results map[StageKind]*StageResult

	// Order preserves the sequence in which results were attached.
	Order []StageKind

	// Visualization is the single chart descriptor, if any.
	Visualization *Visualization

	// VisualizerRan guards the at-most-once visualization invariant.
	VisualizerRan bool

	// Trace is the append-only list of visited stages.
	Trace []string
}

// NewState creates a clean state for one query.
func NewState(q Query) *State {
	return &State{
		Query:   q,
		Results: make(map[StageKind]*StageResult),
	}
}

// RecordVisit appends a stage to the trace.
func (s *State) RecordVisit(stage string) {
	s.Trace = append(s.Trace, stage)
}

// Visited reports whether a stage already ran.
func (s *State) Visited(stage string) bool {
	for _, v := range s.Trace {
		if v == stage {
			return true
		}
	}
	return false
}

// AttachResult stores a specialist contribution. A second result for the
// same kind means a stage ran twice, which the protocol forbids.
func (s *State) AttachResult(res StageResult) error {
	if _, ok := s.Results[res.Kind]; ok {
		return NewProtocolViolation(string(res.Kind), "duplicate stage result")
	}
	s.Results[res.Kind] = &res
	s.Order = append(s.Order, res.Kind)
	return nil
}

// PrimaryResult returns the first attached result, or nil before Phase B.
func (s *State) PrimaryResult() *StageResult {
	if len(s.Order) == 0 {
		return nil
	}
	return s.Results[s.Order[0]]
}

// MarkVisualizerRun enforces the at-most-once visualization invariant.
// The guard trips even when the first run produced no artifact.
func (s *State) MarkVisualizerRun() error {
	if s.VisualizerRan {
		return NewProtocolViolation("visualizer", "invoked twice for one query")
	}
	s.VisualizerRan = true
	return nil
}

// AttachVisualization stores the chart descriptor.
func (s *State) AttachVisualization(v *Visualization) error {
	if s.Visualization != nil {
		return NewProtocolViolation("visualizer", "duplicate visualization artifact")
	}
	s.Visualization = v
	return nil
}
