package orchestrator

import (
	"testing"

	"github.com/shlokkku/Ageis-AI/pkg/domain"
	"github.com/stretchr/testify/assert"
)

func TestWantsVisualization(t *testing.T) {
	tests := []struct {
		name string
		text string
		kind domain.StageKind
		want bool
	}{
		{"explicit chart word", "Show a chart of my pension growth over the next 5 years", domain.KindProjection, true},
		{"show me phrasing", "show me my fraud exposure", domain.KindFraud, true},
		{"graph word", "graph my risk please", domain.KindRisk, true},
		{"visually word", "explain my savings visually", domain.KindProjection, true},
		{"capability pair projection", "how does my growth develop over time", domain.KindProjection, true},
		{"capability pair risk", "give me a risk breakdown", domain.KindRisk, true},
		{"capability pair fraud", "is there a fraud pattern here", domain.KindFraud, true},
		{"bare risk question stays textual", "What's my risk score?", domain.KindRisk, false},
		{"bare fraud question stays textual", "was that transaction fraud?", domain.KindFraud, false},
		{"bare projection question stays textual", "project my pension", domain.KindProjection, false},
		{"half a capability pair is not enough", "what's my growth outlook", domain.KindProjection, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, wantsVisualization(tt.text, tt.kind))
		})
	}
}
