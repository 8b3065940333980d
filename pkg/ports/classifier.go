package ports

import (
	"context"

	"github.com/shlokkku/Ageis-AI/pkg/domain"
)

// Classifier turns a feature vector into a score in [0, 1] for the given
// specialist kind. Implementations must be deterministic for a fixed input.
type Classifier interface {
	Score(ctx context.Context, kind domain.StageKind, features map[string]float64) (float64, error)
}
