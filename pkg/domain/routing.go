package domain

// RoutingDecision is the closed set of targets the orchestrator may pick.
// Stages never route to each other; every hop goes through a decision.
type RoutingDecision string

const (
	RouteRisk       RoutingDecision = "risk"
	RouteFraud      RoutingDecision = "fraud"
	RouteProjection RoutingDecision = "projection"
	RouteGeneral    RoutingDecision = "general"
	RouteVisualizer RoutingDecision = "visualizer"
	RouteSummarizer RoutingDecision = "summarizer"
)
