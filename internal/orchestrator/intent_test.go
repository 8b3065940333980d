package orchestrator

import (
	"testing"

	"github.com/shlokkku/Ageis-AI/pkg/domain"
	"github.com/stretchr/testify/assert"
)

func TestClassifyIntent(t *testing.T) {
	tests := []struct {
		name  string
		text  string
		want  domain.RoutingDecision
		match bool
	}{
		{"risk keyword", "What's my risk score?", domain.RouteRisk, true},
		{"volatility maps to risk", "is my portfolio volatility too high", domain.RouteRisk, true},
		{"fraud keyword", "any suspicious transactions lately?", domain.RouteFraud, true},
		{"projection keyword", "project my pension growth", domain.RouteProjection, true},
		{"retirement phrasing", "when can I retire?", domain.RouteProjection, true},
		{"document reference routes to projection", "what does my uploaded pdf say?", domain.RouteProjection, true},
		{"risk beats fraud on tie", "is this transaction a risk?", domain.RouteRisk, true},
		{"risk beats projection on tie", "how risky are my savings?", domain.RouteRisk, true},
		{"fraud beats projection on tie", "fraudulent activity on my pension?", domain.RouteFraud, true},
		{"no match", "what's the weather like today?", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := classifyIntent(tt.text)
			assert.Equal(t, tt.match, ok)
			if tt.match {
				assert.Equal(t, tt.want, got)
			}
		})
	}
}

func TestBlockedTopic(t *testing.T) {
	tests := []struct {
		text    string
		blocked bool
	}{
		{"should I vote for lower pension taxes?", true},
		{"which stocks should I buy?", true},
		{"does my religion affect my pension?", true},
		{"what's my risk score?", false},
	}

	for _, tt := range tests {
		_, blocked := blockedTopic(tt.text)
		assert.Equal(t, tt.blocked, blocked, tt.text)
	}
}
