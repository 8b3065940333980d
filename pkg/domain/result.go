package domain

// StageKind identifies which specialist produced a result.
type StageKind string

const (
	KindRisk       StageKind = "risk"
	KindFraud      StageKind = "fraud"
	KindProjection StageKind = "projection"

	// KindGeneral marks the fallback responder's contribution for queries
	// that match no specialist intent.
	KindGeneral StageKind = "general"
)

// DataSource tells where a stage's figures actually came from.
type DataSource string

const (
	SourceRecords   DataSource = "records"
	SourceDocuments DataSource = "documents"
	SourceNone      DataSource = "none"
)

// Factor is a named contribution to a score, used for bar charts.
type Factor struct {
	Label  string  `json:"label"`
	Weight float64 `json:"weight"`
}

// Point is one ordered label/value pair of a chartable series.
type Point struct {
	Label string  `json:"label"`
	Value float64 `json:"value"`
}

// StageResult is a specialist's contribution to the execution state.
// Failures are encoded here, never raised: a missing score with
// DataAvailable=false means the data path failed, a present score with an
// empty Explanation means narration failed.
type StageResult struct {
	Kind          StageKind          `json:"kind"`
	Score         *float64           `json:"score,omitempty"`
	Explanation   string             `json:"explanation,omitempty"`
	DataAvailable bool               `json:"data_available"`
	Source        DataSource         `json:"source"`
	Figures       map[string]float64 `json:"figures,omitempty"`
	Factors       []Factor           `json:"factors,omitempty"`
	Series        []Point            `json:"series,omitempty"`
}

// ScoreValue returns the score or 0 when absent.
func (r *StageResult) ScoreValue() float64 {
	if r.Score == nil {
		return 0
	}
	return *r.Score
}
