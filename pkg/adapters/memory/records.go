// Package memory provides in-process implementations of the record and
// document ports, used for tests, demos, and single-binary deployments.
package memory

import (
	"context"
	"sync"

	"github.com/shlokkku/Ageis-AI/pkg/domain"
)

// RecordStore implements ports.RecordAccessor over a mutex-guarded map.
// Fetch returns value copies, so callers can never mutate stored records.
type RecordStore struct {
	mu      sync.RWMutex
	records map[string]domain.Record
}

// NewRecordStore creates an empty store.
func NewRecordStore() *RecordStore {
	return &RecordStore{
		records: make(map[string]domain.Record),
	}
}

// Seed loads records keyed by their ID.
func (s *RecordStore) Seed(records ...domain.Record) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, rec := range records {
		s.records[rec.ID] = rec
	}
}

// Fetch implements ports.RecordAccessor.
func (s *RecordStore) Fetch(_ context.Context, identity string) (*domain.Record, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	rec, ok := s.records[identity]
	if !ok {
		return nil, domain.ErrRecordNotFound
	}
	copied := rec
	return &copied, nil
}
