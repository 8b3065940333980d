package presentation_test

import (
	"testing"

	"github.com/shlokkku/Ageis-AI/internal/presentation"
	"github.com/shlokkku/Ageis-AI/pkg/domain"
	"github.com/stretchr/testify/assert"
)

func TestFormatAnswer_FiguresAndChart(t *testing.T) {
	ans := &domain.Answer{
		Text: "Your balance could reach $130,750 in two years.",
		Figures: map[string]map[string]float64{
			"projection": {
				"current_savings": 50000,
				"projected_value": 130750,
			},
		},
		Visualizations: []domain.Visualization{
			{
				Kind:   domain.ChartLine,
				Title:  "Projected Savings Growth",
				XTitle: "Year",
				YTitle: "Balance",
				Points: []domain.Point{
					{Label: "Year 1", Value: 115000},
					{Label: "Year 2", Value: 130750},
				},
			},
		},
		Provenance: domain.ProvenanceRecordData,
	}

	out := presentation.FormatAnswer(ans)

	assert.Contains(t, out, "Your balance could reach")
	assert.Contains(t, out, "### Figures: projection")
	assert.Contains(t, out, "| current_savings | 50000.00 |")
	assert.Contains(t, out, "### Projected Savings Growth (line chart)")
	assert.Contains(t, out, "| Year | Balance |")
	assert.Contains(t, out, "| Year 2 | 130750.00 |")
	assert.Contains(t, out, "_Source: RECORD_DATA_")
}

func TestFormatAnswer_TextOnly(t *testing.T) {
	ans := &domain.Answer{
		Text:       "Pensions are long-term savings plans.",
		Provenance: domain.ProvenanceGeneralKnowledge,
	}

	out := presentation.FormatAnswer(ans)

	assert.NotContains(t, out, "### Figures")
	assert.Contains(t, out, "_Source: GENERAL_KNOWLEDGE_")
}
