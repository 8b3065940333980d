// Package observability wires pipeline lifecycle hooks into Prometheus
// metrics. It is optional: the pipeline runs identically without it.
package observability

import (
	"context"
	"sync"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/shlokkku/Ageis-AI/pkg/domain"
)

// Metrics holds the pipeline's Prometheus collectors.
type Metrics struct {
	stageVisits    *prometheus.CounterVec
	stageDuration  *prometheus.HistogramVec
	routeDecisions *prometheus.CounterVec
	collabCalls    *prometheus.CounterVec
	collabErrors   *prometheus.CounterVec

	mu      sync.Mutex
	entered map[string]time.Time
}

// NewMetrics creates and registers the collectors on reg.
func NewMetrics(reg prometheus.Registerer) *Metrics {
	m := &Metrics{
		stageVisits: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "ageis_stage_visits_total",
				Help: "Total number of stage executions",
			},
			[]string{"stage"},
		),
		stageDuration: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Name: "ageis_stage_duration_seconds",
				Help: "Duration of stage executions",
			},
			[]string{"stage"},
		),
		routeDecisions: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "ageis_route_decisions_total",
				Help: "Total routing decisions by target",
			},
			[]string{"decision"},
		),
		collabCalls: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "ageis_collaborator_calls_total",
				Help: "Total collaborator invocations",
			},
			[]string{"collaborator"},
		),
		collabErrors: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "ageis_collaborator_errors_total",
				Help: "Total failed collaborator invocations",
			},
			[]string{"collaborator"},
		),
		entered: make(map[string]time.Time),
	}

	reg.MustRegister(m.stageVisits, m.stageDuration, m.routeDecisions, m.collabCalls, m.collabErrors)
	return m
}

// Hooks returns lifecycle hooks that feed the collectors.
func (m *Metrics) Hooks() domain.LifecycleHooks {
	return domain.LifecycleHooks{
		OnStageEnter: func(_ context.Context, e *domain.StageEvent) {
			m.stageVisits.WithLabelValues(e.Stage).Inc()
			m.mu.Lock()
			m.entered[e.Identity+"/"+e.Stage] = e.Timestamp
			m.mu.Unlock()
		},
		OnStageLeave: func(_ context.Context, e *domain.StageEvent) {
			key := e.Identity + "/" + e.Stage
			m.mu.Lock()
			start, ok := m.entered[key]
			delete(m.entered, key)
			m.mu.Unlock()
			if ok {
				m.stageDuration.WithLabelValues(e.Stage).Observe(e.Timestamp.Sub(start).Seconds())
			}
		},
		OnRouteDecision: func(_ context.Context, e *domain.RouteEvent) {
			m.routeDecisions.WithLabelValues(string(e.Decision)).Inc()
		},
		OnCollaboratorCall: func(_ context.Context, e *domain.CollaboratorEvent) {
			m.collabCalls.WithLabelValues(e.Collaborator).Inc()
		},
		OnCollaboratorReturn: func(_ context.Context, e *domain.CollaboratorEvent) {
			if e.IsError {
				m.collabErrors.WithLabelValues(e.Collaborator).Inc()
			}
		},
	}
}
