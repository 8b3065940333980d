package orchestrator

import (
	"strings"

	"github.com/shlokkku/Ageis-AI/pkg/domain"
)

// Intent keyword tables. Matching is case-insensitive substring matching;
// the first table that matches wins, so order encodes the tie-break
// priority risk > fraud > projection.
var intentRules = []struct {
	route    domain.RoutingDecision
	keywords []string
}{
	{domain.RouteRisk, []string{"risk", "volatility", "diversity", "debt"}},
	{domain.RouteFraud, []string{"fraud", "suspicious", "anomaly", "transaction"}},
	{domain.RouteProjection, []string{
		"projection", "growth", "future", "years", "retire",
		"savings", "income", "contribution", "pension",
	}},
}

// documentKeywords route document questions to the projection specialist,
// which owns the document-search branch.
var documentKeywords = []string{"uploaded", "document", "pdf", "plan", "policy"}

// classifyIntent maps a query to exactly one specialist, or reports no
// match. It never guesses.
func classifyIntent(text string) (domain.RoutingDecision, bool) {
	lower := strings.ToLower(text)

	for _, kw := range documentKeywords {
		if strings.Contains(lower, kw) {
			return domain.RouteProjection, true
		}
	}
	for _, rule := range intentRules {
		for _, kw := range rule.keywords {
			if strings.Contains(lower, kw) {
				return rule.route, true
			}
		}
	}
	return "", false
}

// blockedTopics are refused outright, before any routing happens.
var blockedTopics = []struct {
	label    string
	keywords []string
}{
	{"religious advice", []string{"religion", "religious", "pray", "faith-based"}},
	{"political advice", []string{"politics", "political", "election", "vote for"}},
	{"investment strategy", []string{"which stocks", "stock picks", "buy bitcoin", "crypto tips", "investment advice"}},
}

// blockedTopic reports whether the query hits a guardrail, and which one.
func blockedTopic(text string) (string, bool) {
	lower := strings.ToLower(text)
	for _, topic := range blockedTopics {
		for _, kw := range topic.keywords {
			if strings.Contains(lower, kw) {
				return topic.label, true
			}
		}
	}
	return "", false
}
