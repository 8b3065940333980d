package visualizer_test

import (
	"testing"

	"github.com/shlokkku/Ageis-AI/internal/visualizer"
	"github.com/shlokkku/Ageis-AI/pkg/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func stateWith(t *testing.T, res domain.StageResult) *domain.State {
	t.Helper()
	s := domain.NewState(domain.Query{Text: "q", Identity: "u"})
	require.NoError(t, s.AttachResult(res))
	return s
}

func TestVisualize_ProjectionLineChart(t *testing.T) {
	s := stateWith(t, domain.StageResult{
		Kind:          domain.KindProjection,
		DataAvailable: true,
		Series: []domain.Point{
			{Label: "Year 1", Value: 110},
			{Label: "Year 2", Value: 121},
			{Label: "Year 3", Value: 133},
			{Label: "Year 4", Value: 146},
			{Label: "Year 5", Value: 161},
		},
	})

	v, err := visualizer.New(nil).Visualize(s)
	require.NoError(t, err)
	require.NotNil(t, v)

	assert.Equal(t, domain.ChartLine, v.Kind)
	assert.Len(t, v.Points, 5)
	assert.Equal(t, "Year 1", v.Points[0].Label)
	assert.Equal(t, "Year", v.XTitle)
}

func TestVisualize_RiskBarChart(t *testing.T) {
	s := stateWith(t, domain.StageResult{
		Kind:          domain.KindRisk,
		DataAvailable: true,
		Factors: []domain.Factor{
			{Label: "Debt burden", Weight: 0.17},
			{Label: "Volatility", Weight: 0.2},
		},
	})

	v, err := visualizer.New(nil).Visualize(s)
	require.NoError(t, err)
	require.NotNil(t, v)
	assert.Equal(t, domain.ChartBar, v.Kind)
	assert.Len(t, v.Points, 2)
}

func TestVisualize_FraudPieChart(t *testing.T) {
	s := stateWith(t, domain.StageResult{
		Kind:          domain.KindFraud,
		DataAvailable: true,
		Factors: []domain.Factor{
			{Label: "low", Weight: 0.49},
			{Label: "medium", Weight: 0.42},
			{Label: "high", Weight: 0.09},
		},
	})

	v, err := visualizer.New(nil).Visualize(s)
	require.NoError(t, err)
	require.NotNil(t, v)
	assert.Equal(t, domain.ChartPie, v.Kind)
}

func TestVisualize_TableFallback(t *testing.T) {
	s := stateWith(t, domain.StageResult{
		Kind:          domain.StageKind("audit"),
		DataAvailable: true,
		Figures:       map[string]float64{"b": 2, "a": 1},
	})

	v, err := visualizer.New(nil).Visualize(s)
	require.NoError(t, err)
	require.NotNil(t, v)
	assert.Equal(t, domain.ChartTable, v.Kind)
	assert.Equal(t, "a", v.Points[0].Label, "table rows are sorted for determinism")
}

func TestVisualize_MalformedSeries_NoChart(t *testing.T) {
	s := stateWith(t, domain.StageResult{
		Kind:          domain.KindProjection,
		DataAvailable: true,
		Series:        []domain.Point{{Label: "Year 1", Value: 110}},
	})

	v, err := visualizer.New(nil).Visualize(s)
	require.NoError(t, err)
	assert.Nil(t, v, "a single point is not a trend")
}

func TestVisualize_NoData_NoChart(t *testing.T) {
	s := stateWith(t, domain.StageResult{Kind: domain.KindRisk, DataAvailable: false})

	v, err := visualizer.New(nil).Visualize(s)
	require.NoError(t, err)
	assert.Nil(t, v)
}

func TestVisualize_SecondCallIsProtocolViolation(t *testing.T) {
	s := stateWith(t, domain.StageResult{
		Kind:          domain.KindRisk,
		DataAvailable: true,
		Factors:       []domain.Factor{{Label: "Volatility", Weight: 0.2}},
	})

	viz := visualizer.New(nil)
	_, err := viz.Visualize(s)
	require.NoError(t, err)

	_, err = viz.Visualize(s)
	require.Error(t, err)
	assert.True(t, domain.IsProtocolViolation(err))
}
