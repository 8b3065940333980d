// Package visualizer maps specialist results onto declarative chart
// descriptors. It holds no rendering logic and runs at most once per query.
package visualizer

import (
	"fmt"
	"log/slog"
	"sort"

	"github.com/shlokkku/Ageis-AI/pkg/domain"
)

// Visualizer builds at most one Visualization per execution state.
type Visualizer struct {
	logger *slog.Logger
}

// New creates a visualizer.
func New(logger *slog.Logger) *Visualizer {
	if logger == nil {
		logger = slog.Default()
	}
	return &Visualizer{logger: logger}
}

// Visualize derives a chart descriptor from the state's primary result.
// A nil descriptor with a nil error means the result was not chartable;
// that is a normal outcome, not a failure. A non-nil error is always a
// protocol violation.
func (v *Visualizer) Visualize(s *domain.State) (*domain.Visualization, error) {
	if err := s.MarkVisualizerRun(); err != nil {
		v.logger.Error("rejected duplicate visualization attempt", "err", err)
		return nil, err
	}

	res := s.PrimaryResult()
	if res == nil || !res.DataAvailable {
		v.logger.Info("nothing to visualize", "reason", "no usable stage result")
		return nil, nil
	}

	chart := v.chartFor(res)
	if chart == nil {
		v.logger.Info("result not visualizable", "kind", res.Kind)
		return nil, nil
	}
	return chart, nil
}

func (v *Visualizer) chartFor(res *domain.StageResult) *domain.Visualization {
	switch res.Kind {
	case domain.KindProjection:
		return lineChart(res)
	case domain.KindRisk:
		return barChart(res)
	case domain.KindFraud:
		return pieChart(res)
	default:
		return tableChart(res)
	}
}

// lineChart plots a projection series over time. A single point is not a
// trend, so fewer than two points yields no chart.
func lineChart(res *domain.StageResult) *domain.Visualization {
	if len(res.Series) < 2 {
		return nil
	}
	points := make([]domain.Point, len(res.Series))
	copy(points, res.Series)
	return &domain.Visualization{
		Kind:   domain.ChartLine,
		Title:  "Projected pension value",
		XTitle: "Year",
		YTitle: "Value",
		Points: points,
	}
}

func barChart(res *domain.StageResult) *domain.Visualization {
	if len(res.Factors) == 0 {
		return nil
	}
	points := make([]domain.Point, 0, len(res.Factors))
	for _, f := range res.Factors {
		points = append(points, domain.Point{Label: f.Label, Value: f.Weight})
	}
	return &domain.Visualization{
		Kind:   domain.ChartBar,
		Title:  "Risk factor breakdown",
		XTitle: "Factor",
		YTitle: "Contribution",
		Points: points,
	}
}

func pieChart(res *domain.StageResult) *domain.Visualization {
	if len(res.Factors) == 0 {
		return nil
	}
	points := make([]domain.Point, 0, len(res.Factors))
	for _, f := range res.Factors {
		points = append(points, domain.Point{Label: f.Label, Value: f.Weight})
	}
	return &domain.Visualization{
		Kind:   domain.ChartPie,
		Title:  "Fraud risk distribution",
		Points: points,
	}
}

// tableChart is the generic fallback for results that carry figures but no
// dedicated chart shape.
func tableChart(res *domain.StageResult) *domain.Visualization {
	if len(res.Figures) == 0 {
		return nil
	}
	keys := make([]string, 0, len(res.Figures))
	for k := range res.Figures {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	points := make([]domain.Point, 0, len(keys))
	for _, k := range keys {
		points = append(points, domain.Point{Label: k, Value: res.Figures[k]})
	}
	return &domain.Visualization{
		Kind:   domain.ChartTable,
		Title:  fmt.Sprintf("%s figures", res.Kind),
		Points: points,
	}
}
