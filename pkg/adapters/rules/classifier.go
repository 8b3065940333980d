// Package rules provides deterministic, dependency-free implementations of
// the pipeline's collaborator ports. They are the degradation targets when
// no model-backed adapter is configured or reachable.
package rules

import (
	"context"
	"fmt"

	"github.com/shlokkku/Ageis-AI/pkg/domain"
)

// Classifier scores feature vectors with fixed threshold rules.
type Classifier struct{}

// NewClassifier creates the rule-based classifier.
func NewClassifier() *Classifier {
	return &Classifier{}
}

// Score implements ports.Classifier. The same features always yield the
// same score.
func (c *Classifier) Score(_ context.Context, kind domain.StageKind, features map[string]float64) (float64, error) {
	switch kind {
	case domain.KindRisk:
		return riskScore(features), nil
	case domain.KindFraud:
		return fraudScore(features), nil
	case domain.KindProjection:
		return progressScore(features), nil
	default:
		return 0, fmt.Errorf("no scoring rules for kind %q", kind)
	}
}

func riskScore(f map[string]float64) float64 {
	score := 0.5
	if f["debt_level"] > 0.5*f["annual_income"] {
		score += 0.2
	}
	if f["volatility"] > 0.7 {
		score += 0.15
	}
	if f["portfolio_diversity"] < 0.3 {
		score += 0.1
	}
	return clamp01(score)
}

func fraudScore(f map[string]float64) float64 {
	score := 0.3
	if f["debt_level"] > 2*f["annual_income"] {
		score += 0.3
	}
	if f["volatility"] > 0.8 {
		score += 0.2
	}
	if f["portfolio_diversity"] < 0.2 {
		score += 0.2
	}
	if f["suspicious_flag"] >= 1 {
		score += 0.2
	}
	return clamp01(score)
}

// progressScore measures savings against the 10x annual income retirement
// goal, so the projection "score" reads as progress toward the goal.
func progressScore(f map[string]float64) float64 {
	goal := 10 * f["annual_income"]
	if goal <= 0 {
		return 0
	}
	return clamp01(f["current_savings"] / goal)
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}

// RiskBand maps a risk score to its qualitative label.
func RiskBand(score float64) string {
	switch {
	case score > 0.7:
		return "High"
	case score < 0.4:
		return "Low"
	default:
		return "Medium"
	}
}

// FraudBand maps a fraud score to its qualitative label.
func FraudBand(score float64) string {
	if score > 0.6 {
		return "High"
	}
	return "Low"
}
