package domain

import (
	"context"
	"time"
)

// EventType defines the category of the event.
type EventType string

const (
	EventStageEnter         EventType = "stage_enter"
	EventStageLeave         EventType = "stage_leave"
	EventRouteDecision      EventType = "route_decision"
	EventCollaboratorCall   EventType = "collaborator_call"
	EventCollaboratorReturn EventType = "collaborator_return"
)

// EventBase contains common fields for all events.
type EventBase struct {
	Timestamp time.Time `json:"timestamp"`
	Type      EventType `json:"type"`
	Identity  string    `json:"identity"`
}

// StageEvent represents entry into or exit from a pipeline stage.
type StageEvent struct {
	EventBase
	Stage string `json:"stage"`
}

// RouteEvent represents one orchestrator decision.
type RouteEvent struct {
	EventBase
	Decision RoutingDecision `json:"decision"`
	Step     int             `json:"step"`
}

// CollaboratorEvent represents a call to an external collaborator
// (record accessor, classifier, narrator, document searcher).
type CollaboratorEvent struct {
	EventBase
	Stage        string `json:"stage"`
	Collaborator string `json:"collaborator"`
	IsError      bool   `json:"is_error,omitempty"`
}

// LifecycleHooks defines callbacks for pipeline observability.
type LifecycleHooks struct {
	OnStageEnter         func(context.Context, *StageEvent)
	OnStageLeave         func(context.Context, *StageEvent)
	OnRouteDecision      func(context.Context, *RouteEvent)
	OnCollaboratorCall   func(context.Context, *CollaboratorEvent)
	OnCollaboratorReturn func(context.Context, *CollaboratorEvent)
}
