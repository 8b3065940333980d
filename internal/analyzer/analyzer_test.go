package analyzer_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/shlokkku/Ageis-AI/internal/analyzer"
	"github.com/shlokkku/Ageis-AI/pkg/adapters/memory"
	"github.com/shlokkku/Ageis-AI/pkg/adapters/rules"
	"github.com/shlokkku/Ageis-AI/pkg/domain"
	"github.com/shlokkku/Ageis-AI/pkg/ports"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fixedClassifier struct{ score float64 }

func (f fixedClassifier) Score(context.Context, domain.StageKind, map[string]float64) (float64, error) {
	return f.score, nil
}

type failingClassifier struct{}

func (failingClassifier) Score(context.Context, domain.StageKind, map[string]float64) (float64, error) {
	return 0, errors.New("model offline")
}

type slowNarrator struct{ delay time.Duration }

func (s slowNarrator) Narrate(ctx context.Context, prompt string) (string, error) {
	select {
	case <-time.After(s.delay):
		return "done", nil
	case <-ctx.Done():
		return "", ctx.Err()
	}
}

func testRecord() domain.Record {
	return domain.Record{
		ID:                 "user-1",
		AnnualIncome:       60000,
		DebtLevel:          10000,
		Volatility:         0.2,
		PortfolioDiversity: 0.8,
		CurrentSavings:     50000,
		Age:                40,
		RetirementAgeGoal:  65,
		ContributionAmount: 6000,
		AnnualReturnRate:   0.05,
	}
}

func newState(text string) *domain.State {
	return domain.NewState(domain.Query{Text: text, Identity: "user-1"})
}

func TestAnalyzer_ScoreAndNarrate(t *testing.T) {
	records := memory.NewRecordStore()
	records.Seed(testRecord())

	a := analyzer.New(domain.KindRisk, records, fixedClassifier{score: 0.42}, rules.NewNarrator())
	res := a.Analyze(context.Background(), newState("What's my risk score?"))

	assert.Equal(t, domain.KindRisk, res.Kind)
	assert.True(t, res.DataAvailable)
	assert.Equal(t, domain.SourceRecords, res.Source)
	require.NotNil(t, res.Score)
	assert.InDelta(t, 0.42, *res.Score, 1e-9)
	assert.NotEmpty(t, res.Explanation)
	assert.Len(t, res.Factors, 3)
}

func TestAnalyzer_RecordNotFound_DegradesToUnavailable(t *testing.T) {
	records := memory.NewRecordStore() // empty

	a := analyzer.New(domain.KindProjection, records, rules.NewClassifier(), rules.NewNarrator())
	res := a.Analyze(context.Background(), newState("project my pension"))

	assert.False(t, res.DataAvailable)
	assert.Nil(t, res.Score)
	assert.Empty(t, res.Explanation)
	assert.Equal(t, domain.SourceNone, res.Source)
}

func TestAnalyzer_NarrationTimeout_KeepsScore(t *testing.T) {
	records := memory.NewRecordStore()
	records.Seed(testRecord())

	a := analyzer.New(domain.KindRisk, records, fixedClassifier{score: 0.42}, slowNarrator{delay: time.Second},
		analyzer.WithNarrationTimeout(10*time.Millisecond))

	start := time.Now()
	res := a.Analyze(context.Background(), newState("am I at risk?"))

	assert.Less(t, time.Since(start), 500*time.Millisecond)
	require.NotNil(t, res.Score)
	assert.InDelta(t, 0.42, *res.Score, 1e-9)
	assert.Empty(t, res.Explanation)
	assert.True(t, res.DataAvailable)
}

func TestAnalyzer_ClassifierFailure_KeepsData(t *testing.T) {
	records := memory.NewRecordStore()
	records.Seed(testRecord())

	a := analyzer.New(domain.KindRisk, records, failingClassifier{}, rules.NewNarrator())
	res := a.Analyze(context.Background(), newState("how risky is my debt?"))

	assert.True(t, res.DataAvailable)
	assert.Nil(t, res.Score)
	assert.NotEmpty(t, res.Figures)

	// The narration still explains the facts, but must not quote a score
	// that was never computed.
	assert.Contains(t, res.Explanation, "Debt of 10000.00")
	assert.NotContains(t, res.Explanation, "risk score is")
	assert.NotContains(t, res.Explanation, "0.00 (")
}

func TestAnalyzer_ClassifierFailure_NoFraudBreakdown(t *testing.T) {
	records := memory.NewRecordStore()
	records.Seed(testRecord())

	a := analyzer.New(domain.KindFraud, records, failingClassifier{}, rules.NewNarrator())
	res := a.Analyze(context.Background(), newState("any fraud on my account?"))

	assert.True(t, res.DataAvailable)
	assert.Nil(t, res.Score)
	assert.Empty(t, res.Factors, "score-derived breakdown needs a score")
	assert.NotEmpty(t, res.Figures)
	assert.NotContains(t, res.Explanation, "fraud risk score is")
}

func TestAnalyzer_ProjectionSeries(t *testing.T) {
	records := memory.NewRecordStore()
	records.Seed(testRecord())

	a := analyzer.New(domain.KindProjection, records, rules.NewClassifier(), rules.NewNarrator())
	res := a.Analyze(context.Background(), newState("show my pension growth if I retire in 5 years"))

	assert.Len(t, res.Series, 5)
	assert.Equal(t, "Year 1", res.Series[0].Label)
	assert.Equal(t, "Year 5", res.Series[4].Label)
	for i := 1; i < len(res.Series); i++ {
		assert.Greater(t, res.Series[i].Value, res.Series[i-1].Value)
	}
	assert.InDelta(t, 5, res.Figures["horizon_years"], 1e-9)
}

func TestAnalyzer_DocumentBranch(t *testing.T) {
	records := memory.NewRecordStore()
	records.Seed(testRecord())

	docs := memory.NewDocumentIndex()
	docs.Add("user-1", "plan.md", "Your plan allows early withdrawal at age 55 with a 2% penalty.")

	a := analyzer.New(domain.KindProjection, records, rules.NewClassifier(), rules.NewNarrator(),
		analyzer.WithDocumentSearcher(docs))
	res := a.Analyze(context.Background(), newState("what does my uploaded plan say about withdrawal?"))

	assert.True(t, res.DataAvailable)
	assert.Equal(t, domain.SourceDocuments, res.Source)
	assert.Contains(t, res.Explanation, "withdrawal")
}

func TestAnalyzer_DocumentBranch_NoMatches(t *testing.T) {
	records := memory.NewRecordStore()
	records.Seed(testRecord())

	a := analyzer.New(domain.KindProjection, records, rules.NewClassifier(), rules.NewNarrator(),
		analyzer.WithDocumentSearcher(memory.NewDocumentIndex()))
	res := a.Analyze(context.Background(), newState("what does my uploaded policy cover?"))

	assert.False(t, res.DataAvailable)
	assert.Equal(t, domain.SourceNone, res.Source)
}

var _ ports.Classifier = fixedClassifier{}
var _ ports.Narrator = slowNarrator{}
