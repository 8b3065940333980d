package orchestrator

import (
	"strings"

	"github.com/shlokkku/Ageis-AI/pkg/domain"
)

// vizVocabulary are the explicit requests for a chart. Any one of these in
// the query triggers visualization regardless of specialist kind.
var vizVocabulary = []string{
	"chart", "graph", "plot", "visualize", "visually", "show me", "display", "draw",
}

// capabilityTriggers fire only when every listed word appears. They cover
// phrasings that imply a chart without naming one, and are deliberately
// strict: a bare mention of a specialist's own topic word must not force a
// chart the user never asked for.
var capabilityTriggers = map[domain.StageKind][][]string{
	domain.KindProjection: {{"growth", "time"}, {"growth", "over"}},
	domain.KindRisk:       {{"risk", "breakdown"}},
	domain.KindFraud:      {{"fraud", "pattern"}},
}

// wantsVisualization implements the Phase B trigger table.
func wantsVisualization(text string, kind domain.StageKind) bool {
	lower := strings.ToLower(text)

	for _, word := range vizVocabulary {
		if strings.Contains(lower, word) {
			return true
		}
	}
	for _, combo := range capabilityTriggers[kind] {
		all := true
		for _, word := range combo {
			if !strings.Contains(lower, word) {
				all = false
				break
			}
		}
		if all {
			return true
		}
	}
	return false
}
