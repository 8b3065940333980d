package domain

// ChartKind enumerates the renderer-agnostic chart shapes.
type ChartKind string

const (
	ChartBar   ChartKind = "bar"
	ChartLine  ChartKind = "line"
	ChartPie   ChartKind = "pie"
	ChartTable ChartKind = "table"
)

// Visualization is a declarative chart descriptor. It carries data and
// structure only; rendering belongs to the presentation layer.
type Visualization struct {
	Kind   ChartKind `json:"kind"`
	Title  string    `json:"title"`
	XTitle string    `json:"x_title,omitempty"`
	YTitle string    `json:"y_title,omitempty"`
	Points []Point   `json:"points"`
}
