package analyzer

import (
	"fmt"
	"strings"

	"github.com/shlokkku/Ageis-AI/pkg/adapters/rules"
	"github.com/shlokkku/Ageis-AI/pkg/domain"
	"github.com/shlokkku/Ageis-AI/pkg/ports"
)

// docKeywords signal that the user is asking about uploaded material rather
// than their structured record.
var docKeywords = []string{"uploaded", "document", "pdf", "plan", "policy"}

func referencesDocuments(text string) bool {
	lower := strings.ToLower(text)
	for _, kw := range docKeywords {
		if strings.Contains(lower, kw) {
			return true
		}
	}
	return false
}

// featuresFor derives the kind-specific feature vector from a record.
func featuresFor(kind domain.StageKind, rec *domain.Record) map[string]float64 {
	switch kind {
	case domain.KindRisk:
		return map[string]float64{
			"annual_income":       rec.AnnualIncome,
			"debt_level":          rec.DebtLevel,
			"volatility":          rec.Volatility,
			"portfolio_diversity": rec.PortfolioDiversity,
		}
	case domain.KindFraud:
		f := map[string]float64{
			"annual_income":       rec.AnnualIncome,
			"debt_level":          rec.DebtLevel,
			"volatility":          rec.Volatility,
			"portfolio_diversity": rec.PortfolioDiversity,
			"anomaly_score":       rec.AnomalyScore,
			"transaction_amount":  rec.TransactionAmount,
		}
		if rec.SuspiciousFlag {
			f["suspicious_flag"] = 1
		}
		return f
	case domain.KindProjection:
		return map[string]float64{
			"annual_income":       rec.AnnualIncome,
			"current_savings":     rec.CurrentSavings,
			"contribution_amount": rec.ContributionAmount,
			"annual_return_rate":  rec.AnnualReturnRate,
		}
	default:
		return nil
	}
}

// attachPayload fills the chartable fields of a result from the record.
func (a *Analyzer) attachPayload(res *domain.StageResult, rec *domain.Record, queryText string) {
	switch a.kind {
	case domain.KindRisk:
		res.Factors = riskFactors(rec)
		res.Figures = map[string]float64{
			"debt_level":          rec.DebtLevel,
			"annual_income":       rec.AnnualIncome,
			"volatility":          rec.Volatility,
			"portfolio_diversity": rec.PortfolioDiversity,
		}
	case domain.KindFraud:
		// The breakdown derives from the score; without one there is
		// nothing to chart.
		if res.Score != nil {
			breakdown := fraudBreakdown(*res.Score)
			res.Factors = []domain.Factor{
				{Label: "low", Weight: breakdown["low"]},
				{Label: "medium", Weight: breakdown["medium"]},
				{Label: "high", Weight: breakdown["high"]},
			}
		}
		res.Figures = map[string]float64{
			"transaction_amount": rec.TransactionAmount,
			"anomaly_score":      rec.AnomalyScore,
		}
	case domain.KindProjection:
		years := horizonYears(queryText, rec)
		res.Series = futureValueSeries(rec, years)
		res.Figures = map[string]float64{
			"current_savings": rec.CurrentSavings,
			"horizon_years":   float64(years),
			"retirement_goal": retirementGoal(rec),
			"projected_value": finalValue(res.Series, rec.CurrentSavings),
			"annual_return":   cappedRate(rec.AnnualReturnRate, years),
			"annual_contrib":  rec.ContributionAmount + rec.EmployerContribution,
		}
	}
}

// riskFactors expresses each driver on a comparable 0..1 scale for charting.
func riskFactors(rec *domain.Record) []domain.Factor {
	debtRatio := 0.0
	if rec.AnnualIncome > 0 {
		debtRatio = rec.DebtLevel / rec.AnnualIncome
		if debtRatio > 1 {
			debtRatio = 1
		}
	}
	return []domain.Factor{
		{Label: "Debt burden", Weight: debtRatio},
		{Label: "Volatility", Weight: rec.Volatility},
		{Label: "Diversity gap", Weight: 1 - rec.PortfolioDiversity},
	}
}

// fraudBreakdown spreads a fraud score across the fixed low/medium/high
// buckets a pie chart expects. The three shares always sum to one.
func fraudBreakdown(score float64) map[string]float64 {
	return map[string]float64{
		"low":    (1 - score) * (1 - score),
		"medium": 2 * score * (1 - score),
		"high":   score * score,
	}
}

func retirementGoal(rec *domain.Record) float64 {
	return 10 * rec.AnnualIncome
}

func finalValue(series []domain.Point, fallback float64) float64 {
	if len(series) == 0 {
		return fallback
	}
	return series[len(series)-1].Value
}

// buildPrompt assembles the fact sheet narration works from: the minimum
// facts needed to explain the result, plus the score sentence only when a
// score was actually computed. Narration never invents a number the
// classifier did not produce.
func buildPrompt(kind domain.StageKind, res domain.StageResult, rec *domain.Record) string {
	switch kind {
	case domain.KindRisk:
		facts := fmt.Sprintf(
			"Debt of %.2f against an income of %.2f, volatility %.2f, diversification %.2f.",
			rec.DebtLevel, rec.AnnualIncome, rec.Volatility, rec.PortfolioDiversity,
		)
		if res.Score == nil {
			return facts
		}
		return fmt.Sprintf("Your portfolio risk score is %.2f (%s). %s",
			*res.Score, rules.RiskBand(*res.Score), facts)
	case domain.KindFraud:
		facts := fmt.Sprintf(
			"Latest transaction %.2f, anomaly score %.2f.",
			rec.TransactionAmount, rec.AnomalyScore,
		)
		if res.Score == nil {
			return facts
		}
		return fmt.Sprintf("Your fraud risk score is %.2f (%s). %s",
			*res.Score, rules.FraudBand(*res.Score), facts)
	case domain.KindProjection:
		base := fmt.Sprintf(
			"Projected pension value of %.2f in %.0f years, from savings of %.2f and annual contributions of %.2f at a %.1f%% return.",
			res.Figures["projected_value"], res.Figures["horizon_years"],
			rec.CurrentSavings, res.Figures["annual_contrib"],
			res.Figures["annual_return"]*100,
		)
		if res.Score == nil {
			return base
		}
		return fmt.Sprintf("%s You are at %.0f%% of your retirement goal of %.2f.",
			base, *res.Score*100, res.Figures["retirement_goal"])
	default:
		return ""
	}
}

// snippetPrompt folds retrieved document passages into the fact sheet.
func snippetPrompt(question string, snippets []ports.Snippet) string {
	var b strings.Builder
	b.WriteString("From your uploaded documents, regarding: ")
	b.WriteString(question)
	for _, sn := range snippets {
		b.WriteString("\n- ")
		b.WriteString(sn.Text)
	}
	return b.String()
}
