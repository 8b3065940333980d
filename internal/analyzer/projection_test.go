package analyzer

import (
	"testing"

	"github.com/shlokkku/Ageis-AI/pkg/domain"
	"github.com/stretchr/testify/assert"
)

func TestHorizonYears(t *testing.T) {
	rec := &domain.Record{Age: 40, RetirementAgeGoal: 65}

	tests := []struct {
		name string
		text string
		want int
	}{
		{"explicit retire in", "I want to retire in 5 years", 5},
		{"retire at age", "what if I retire at age 55?", 15},
		{"retire at without age word", "can I retire at 50", 10},
		{"next year", "I plan to retire next year", 1},
		{"retire early caps at five", "what if I retire early?", 5},
		{"generic in N years", "what will I have in 12 years", 12},
		{"default from record", "project my savings", 25},
		{"never below one", "retire in 0 years", 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, horizonYears(tt.text, rec))
		})
	}
}

func TestCappedRate(t *testing.T) {
	assert.InDelta(t, 0.06, cappedRate(0.09, 25), 1e-9)
	assert.InDelta(t, 0.07, cappedRate(0.09, 15), 1e-9)
	assert.InDelta(t, 0.09, cappedRate(0.09, 5), 1e-9)
	assert.InDelta(t, 0.05, cappedRate(0, 5), 1e-9)
}

func TestFutureValueSeries(t *testing.T) {
	rec := &domain.Record{
		CurrentSavings:     100000,
		ContributionAmount: 10000,
		AnnualReturnRate:   0.05,
	}

	series := futureValueSeries(rec, 3)
	assert.Len(t, series, 3)

	// Year 1: 100000*1.05 + 10000 = 115000
	assert.InDelta(t, 115000, series[0].Value, 0.01)
	// Year 2: 100000*1.1025 + 10000*2.05 = 130750
	assert.InDelta(t, 130750, series[1].Value, 0.01)
}
