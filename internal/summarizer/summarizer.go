// Package summarizer consolidates the execution state into the terminal
// Answer. It is the only stage guaranteed to run for every query, and it
// never fails: whatever the upstream stages managed becomes the answer.
package summarizer

import (
	"fmt"
	"log/slog"
	"strings"

	"github.com/shlokkku/Ageis-AI/pkg/domain"
)

// Summarizer builds the final answer.
type Summarizer struct {
	logger *slog.Logger
}

// New creates a summarizer.
func New(logger *slog.Logger) *Summarizer {
	if logger == nil {
		logger = slog.Default()
	}
	return &Summarizer{logger: logger}
}

// Summarize merges every stage contribution into one Answer. The result is
// always structurally valid, even when no stage produced data.
func (s *Summarizer) Summarize(state *domain.State) domain.Answer {
	ans := domain.Answer{
		Provenance: provenance(state),
	}

	var parts []string
	figures := make(map[string]map[string]float64)

	for _, kind := range state.Order {
		res := state.Results[kind]
		if len(res.Figures) > 0 {
			figures[string(kind)] = res.Figures
		}
		if text := contribution(res); text != "" {
			parts = append(parts, text)
		}
	}

	if len(figures) > 0 {
		ans.Figures = figures
	}
	if state.Visualization != nil {
		ans.Visualizations = []domain.Visualization{*state.Visualization}
	}

	if len(parts) == 0 {
		parts = append(parts, unavailableText)
	}

	ans.Text = strings.Join(parts, "\n\n")
	s.logger.Info("answer assembled",
		"provenance", ans.Provenance,
		"stages", len(state.Order),
		"charts", len(ans.Visualizations),
	)
	return ans
}

const unavailableText = "I couldn't access your records right now, so I can't " +
	"give you a personalised answer. Please try again shortly, or check that " +
	"your account is linked to a pension record."

// contribution renders one stage result as answer text, honoring the
// degradation ladder: narrative beats raw score beats an honest gap notice.
func contribution(res *domain.StageResult) string {
	if res.Explanation != "" {
		return res.Explanation
	}
	if !res.DataAvailable {
		if res.Kind == domain.KindGeneral {
			return ""
		}
		return unavailableText
	}
	if res.Score != nil {
		return scoreLine(res)
	}
	return "The " + string(res.Kind) + " analysis completed, but no explanation is available."
}

func scoreLine(res *domain.StageResult) string {
	var b strings.Builder
	b.WriteString("Your ")
	switch res.Kind {
	case domain.KindRisk:
		b.WriteString("risk score is ")
	case domain.KindFraud:
		b.WriteString("fraud risk score is ")
	case domain.KindProjection:
		b.WriteString("progress toward your retirement goal is ")
	default:
		b.WriteString("score is ")
	}
	b.WriteString(formatScore(res))
	b.WriteString(".")
	return b.String()
}

func formatScore(res *domain.StageResult) string {
	if res.Kind == domain.KindProjection {
		return fmt.Sprintf("%.0f%%", res.ScoreValue()*100)
	}
	return fmt.Sprintf("%.2f", res.ScoreValue())
}

// provenance picks the single source label for the answer. Documents win
// over records when both contributed; general knowledge is the floor.
func provenance(state *domain.State) domain.Provenance {
	sawRecords := false
	for _, res := range state.Results {
		if !res.DataAvailable {
			continue
		}
		switch res.Source {
		case domain.SourceDocuments:
			return domain.ProvenanceDocumentSearch
		case domain.SourceRecords:
			sawRecords = true
		}
	}
	if sawRecords {
		return domain.ProvenanceRecordData
	}
	return domain.ProvenanceGeneralKnowledge
}
