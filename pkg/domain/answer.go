package domain

// Provenance labels where the substance of an answer came from.
// Exactly one value is set per answer.
type Provenance string

const (
	ProvenanceRecordData       Provenance = "RECORD_DATA"
	ProvenanceDocumentSearch   Provenance = "DOCUMENT_SEARCH"
	ProvenanceGeneralKnowledge Provenance = "GENERAL_KNOWLEDGE"
)

// Answer is the terminal output of a pipeline run. It is always
// structurally valid, even when every upstream stage degraded.
type Answer struct {
	Text           string                        `json:"text"`
	Figures        map[string]map[string]float64 `json:"figures,omitempty"`
	Visualizations []Visualization               `json:"visualizations,omitempty"`
	Provenance     Provenance                    `json:"provenance"`

	// Trace lists the stages visited for this answer, in order.
	Trace []string `json:"trace,omitempty"`
}
