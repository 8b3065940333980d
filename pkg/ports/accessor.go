package ports

import (
	"context"

	"github.com/shlokkku/Ageis-AI/pkg/domain"
)

// RecordAccessor fetches the financial record for one identity.
// Implementations must return domain.ErrRecordNotFound when the identity
// has no record; any other error means the backing store is unreachable.
type RecordAccessor interface {
	Fetch(ctx context.Context, identity string) (*domain.Record, error)
}
